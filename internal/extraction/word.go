package extraction

import (
	"bytes"
	"strings"

	"code.sajari.com/docconv"
)

// extractWordDocument converts a DOCX or legacy DOC upload in process.
func extractWordDocument(mime string, up *Upload, progress *tracker) (string, error) {
	progress.Set(20)

	res, err := docconv.Convert(bytes.NewReader(up.Data), mime, true)
	if err != nil {
		return "", &Error{Message: "failed to extract text from document", Cause: err}
	}
	progress.Set(50)

	if res == nil || strings.TrimSpace(res.Body) == "" {
		return "", &Error{Message: "could not extract text from document, the file may be corrupted"}
	}
	progress.Set(90)

	text := res.Body
	progress.Set(100)
	return text, nil
}

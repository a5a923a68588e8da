package extraction

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MIME types dispatched by the extractor.
const (
	MIMEPDF   = "application/pdf"
	MIMEDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEDOC   = "application/msword"
	MIMEXLSX  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MIMEXLS   = "application/vnd.ms-excel"
	MIMEPlain = "text/plain"
)

// mimeByExtension maps common document extensions to their declared MIME
// type, for callers that build uploads from the filesystem.
var mimeByExtension = map[string]string{
	".pdf":  MIMEPDF,
	".docx": MIMEDOCX,
	".doc":  MIMEDOC,
	".xlsx": MIMEXLSX,
	".xls":  MIMEXLS,
	".txt":  MIMEPlain,
}

// Upload is an in-memory uploaded file with its declared type.
type Upload struct {
	Name string
	MIME string
	Size int64
	Data []byte
}

// NewUploadFromFile reads a file into an Upload, inferring the MIME type
// from the extension. Unknown extensions produce an empty MIME, which the
// extractor rejects as unsupported.
func NewUploadFromFile(path string) (*Upload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload %s: %w", path, err)
	}
	return &Upload{
		Name: filepath.Base(path),
		MIME: mimeByExtension[strings.ToLower(filepath.Ext(path))],
		Size: int64(len(data)),
		Data: data,
	}, nil
}

// ProgressFunc receives monotonically non-decreasing integer progress in
// [0,100]. Intermediate checkpoint values are adapter-specific; only
// monotonicity and completion to 100 on success are contractual.
type ProgressFunc func(percent int)

// Service extracts plain text from uploads. PDF extraction delegates to the
// remote conversion service; the other formats are parsed in process.
type Service struct {
	PDF *PDFCoClient
}

// NewService creates an extraction service. pdf may be nil, in which case
// PDF uploads fail with a configuration error.
func NewService(pdf *PDFCoClient) *Service {
	return &Service{PDF: pdf}
}

// Extract converts the upload to plain text, dispatching on the declared
// MIME type.
func (s *Service) Extract(ctx context.Context, up *Upload, onProgress ProgressFunc) (string, error) {
	progress := newTracker(onProgress)
	mime := strings.ToLower(up.MIME)

	switch {
	case mime == MIMEPlain:
		progress.Set(30)
		text := string(up.Data)
		progress.Set(100)
		return text, nil
	case mime == MIMEPDF:
		if s.PDF == nil {
			return "", &Error{Message: "PDF conversion service is not configured"}
		}
		return s.extractPDF(ctx, up, progress)
	case mime == MIMEDOCX || mime == MIMEDOC:
		return extractWordDocument(mime, up, progress)
	case strings.Contains(mime, "excel") || strings.Contains(mime, "spreadsheet"):
		return extractSpreadsheet(up, progress)
	default:
		return "", &Error{Message: fmt.Sprintf("unsupported file type: %s", up.MIME)}
	}
}

// tracker enforces monotonic, clamped progress reporting.
type tracker struct {
	fn   ProgressFunc
	last int
}

func newTracker(fn ProgressFunc) *tracker {
	return &tracker{fn: fn}
}

func (t *tracker) Set(percent int) {
	if percent < t.last {
		percent = t.last
	}
	if percent > 100 {
		percent = 100
	}
	t.last = percent
	if t.fn != nil {
		t.fn(percent)
	}
}

package extraction

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// extractSpreadsheet converts a workbook to text: per sheet, a "Sheet: name"
// header followed by the rows serialized as CSV, in declared sheet order.
func extractSpreadsheet(up *Upload, progress *tracker) (string, error) {
	progress.Set(20)

	f, err := excelize.OpenReader(bytes.NewReader(up.Data))
	if err != nil {
		return "", &Error{Message: "could not read spreadsheet, the file may be corrupted", Cause: err}
	}
	defer func() { _ = f.Close() }()
	progress.Set(40)

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", &Error{Message: "spreadsheet has no sheets"}
	}
	progress.Set(70)

	var sb strings.Builder
	for _, name := range sheets {
		rows, err := f.GetRows(name)
		if err != nil {
			return "", &Error{Message: fmt.Sprintf("failed to read sheet %q", name), Cause: err}
		}

		sb.WriteString("Sheet: " + name + "\n")
		w := csv.NewWriter(&sb)
		for _, row := range rows {
			_ = w.Write(row)
		}
		w.Flush()
		sb.WriteString("\n")
	}

	progress.Set(100)
	return sb.String(), nil
}

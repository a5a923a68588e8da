package extraction

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleText = "Hello World, this is a test CV with enough characters to pass the minimum length check."

func collectProgress(values *[]int) ProgressFunc {
	return func(p int) { *values = append(*values, p) }
}

func assertMonotonicTo100(t *testing.T, values []int) {
	t.Helper()
	require.NotEmpty(t, values)
	last := 0
	for _, v := range values {
		assert.GreaterOrEqual(t, v, last)
		assert.LessOrEqual(t, v, 100)
		last = v
	}
	assert.Equal(t, 100, values[len(values)-1])
}

func TestExtract_PlainText(t *testing.T) {
	svc := NewService(nil)

	var progress []int
	text, err := svc.Extract(context.Background(), &Upload{
		Name: "cv.txt",
		MIME: MIMEPlain,
		Data: []byte(sampleText),
	}, collectProgress(&progress))

	require.NoError(t, err)
	assert.Equal(t, sampleText, text)
	assertMonotonicTo100(t, progress)
}

func TestExtract_UnsupportedType(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.Extract(context.Background(), &Upload{
		Name: "cv.png",
		MIME: "image/png",
		Data: []byte{0x89, 0x50},
	}, nil)

	var extErr *Error
	require.ErrorAs(t, err, &extErr)
	assert.Contains(t, extErr.Error(), "unsupported file type: image/png")
}

func TestExtract_PDFWithoutClient(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.Extract(context.Background(), &Upload{
		Name: "cv.pdf",
		MIME: MIMEPDF,
		Data: []byte("%PDF-1.4"),
	}, nil)

	var extErr *Error
	require.ErrorAs(t, err, &extErr)
	assert.Contains(t, extErr.Error(), "not configured")
}

func TestExtract_CorruptWordDocument(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.Extract(context.Background(), &Upload{
		Name: "cv.docx",
		MIME: MIMEDOCX,
		Data: []byte("definitely not a zip archive"),
	}, nil)

	var extErr *Error
	require.ErrorAs(t, err, &extErr)
}

func TestExtract_Spreadsheet(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Skill"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "Years"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "Go"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", 3))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	svc := NewService(nil)

	var progress []int
	text, err := svc.Extract(context.Background(), &Upload{
		Name: "skills.xlsx",
		MIME: MIMEXLSX,
		Data: buf.Bytes(),
	}, collectProgress(&progress))

	require.NoError(t, err)
	assert.Contains(t, text, "Sheet: Sheet1")
	assert.Contains(t, text, "Skill,Years")
	assert.Contains(t, text, "Go,3")
	assertMonotonicTo100(t, progress)
}

func TestExtract_CorruptSpreadsheet(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.Extract(context.Background(), &Upload{
		Name: "cv.xlsx",
		MIME: MIMEXLSX,
		Data: []byte("not a workbook"),
	}, nil)

	var extErr *Error
	require.ErrorAs(t, err, &extErr)
	assert.Contains(t, extErr.Error(), "corrupted")
}

func TestTracker_MonotonicAndClamped(t *testing.T) {
	var values []int
	tr := newTracker(collectProgress(&values))

	tr.Set(40)
	tr.Set(20)  // must not regress
	tr.Set(150) // must clamp

	assert.Equal(t, []int{40, 40, 100}, values)
}

func TestTracker_NilCallback(t *testing.T) {
	tr := newTracker(nil)
	assert.NotPanics(t, func() { tr.Set(50) })
}

func TestNewUploadFromFile_InfersMIME(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{name: "PDF", filename: "cv.PDF", expected: MIMEPDF},
		{name: "DOCX", filename: "cv.docx", expected: MIMEDOCX},
		{name: "Plain text", filename: "cv.txt", expected: MIMEPlain},
		{name: "Unknown extension", filename: "cv.png", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))

			up, err := NewUploadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, up.MIME)
			assert.Equal(t, int64(7), up.Size)
		})
	}
}

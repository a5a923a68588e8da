package extraction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPDFCoClient(serverURL string) *PDFCoClient {
	c := NewPDFCoClient("test-key")
	c.BaseURL = serverURL
	return c
}

func TestExtract_PDF_TwoStepConversion(t *testing.T) {
	const extracted = "Jane Doe\nSenior Engineer\nSkills: Go, SQL, Kubernetes"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))

		switch r.URL.Path {
		case "/file/upload":
			require.NoError(t, r.ParseMultipartForm(10<<20))
			_, header, err := r.FormFile("file")
			require.NoError(t, err)
			assert.Equal(t, "cv.pdf", header.Filename)
			_ = json.NewEncoder(w).Encode(map[string]any{"url": "https://files.example/cv.pdf"})
		case "/pdf/convert/to/text":
			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "https://files.example/cv.pdf", payload["url"])
			assert.Equal(t, false, payload["async"])
			assert.Equal(t, true, payload["inline"])
			_ = json.NewEncoder(w).Encode(map[string]any{"body": extracted})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	svc := NewService(newTestPDFCoClient(server.URL))

	var progress []int
	text, err := svc.Extract(context.Background(), &Upload{
		Name: "cv.pdf",
		MIME: MIMEPDF,
		Data: []byte("%PDF-1.4 fake"),
	}, collectProgress(&progress))

	require.NoError(t, err)
	assert.Equal(t, extracted, text)
	assertMonotonicTo100(t, progress)
	assert.Contains(t, progress, 10)
	assert.Contains(t, progress, 40)
}

func TestPDFCoClient_Upload_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "credits exhausted"})
	}))
	defer server.Close()

	client := newTestPDFCoClient(server.URL)
	_, err := client.Upload(context.Background(), "cv.pdf", []byte("data"))

	var extErr *Error
	require.ErrorAs(t, err, &extErr)
	assert.Contains(t, extErr.Error(), "failed to upload PDF")
	assert.Contains(t, extErr.Error(), "credits exhausted")
}

func TestPDFCoClient_Upload_MissingURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{})
	}))
	defer server.Close()

	client := newTestPDFCoClient(server.URL)
	_, err := client.Upload(context.Background(), "cv.pdf", []byte("data"))

	var extErr *Error
	require.ErrorAs(t, err, &extErr)
	assert.Contains(t, extErr.Error(), "failed to get uploaded file URL")
}

func TestPDFCoClient_ConvertToText_ServiceReportedError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// PDF.co reports some failures with HTTP 200 and an error flag.
		_ = json.NewEncoder(w).Encode(map[string]any{"error": true, "message": "file is password protected"})
	}))
	defer server.Close()

	client := newTestPDFCoClient(server.URL)
	_, err := client.ConvertToText(context.Background(), "https://files.example/cv.pdf")

	var extErr *Error
	require.ErrorAs(t, err, &extErr)
	assert.Contains(t, extErr.Error(), "password protected")
}

func TestPDFCoClient_ConvertToText_MissingBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"url": "ignored"})
	}))
	defer server.Close()

	client := newTestPDFCoClient(server.URL)
	_, err := client.ConvertToText(context.Background(), "https://files.example/cv.pdf")

	var extErr *Error
	require.ErrorAs(t, err, &extErr)
	assert.Contains(t, extErr.Error(), "failed to extract text content from PDF")
}

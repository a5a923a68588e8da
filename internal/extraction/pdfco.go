package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// defaultPDFCoBaseURL is the production endpoint of the conversion service.
const defaultPDFCoBaseURL = "https://api.pdf.co/v1"

// pdfCoTimeout bounds each conversion-service HTTP call.
const pdfCoTimeout = 60 * time.Second

// PDFCoClient talks to the PDF.co conversion service: binary upload returns
// a reference URL, then a second call converts that reference to text.
type PDFCoClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// NewPDFCoClient creates a client with production defaults.
func NewPDFCoClient(apiKey string) *PDFCoClient {
	return &PDFCoClient{
		APIKey:     apiKey,
		BaseURL:    defaultPDFCoBaseURL,
		HTTPClient: &http.Client{Timeout: pdfCoTimeout},
	}
}

// pdfCoResponse covers the fields used from both service endpoints.
type pdfCoResponse struct {
	URL     string `json:"url"`
	Body    string `json:"body"`
	IsError bool   `json:"error"`
	Message string `json:"message"`
}

// extractPDF runs the two-step remote conversion with the staged progress
// checkpoints the UI expects.
func (s *Service) extractPDF(ctx context.Context, up *Upload, progress *tracker) (string, error) {
	progress.Set(10)

	progress.Set(20)
	fileURL, err := s.PDF.Upload(ctx, up.Name, up.Data)
	if err != nil {
		return "", err
	}
	progress.Set(40)

	text, err := s.PDF.ConvertToText(ctx, fileURL)
	if err != nil {
		return "", err
	}
	progress.Set(70)

	progress.Set(100)
	return text, nil
}

// Upload sends the binary document to the conversion service and returns
// the reference URL for subsequent conversion calls.
func (c *PDFCoClient) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", &Error{Message: "failed to build upload request", Cause: err}
	}
	if _, err := part.Write(data); err != nil {
		return "", &Error{Message: "failed to build upload request", Cause: err}
	}
	if err := mw.Close(); err != nil {
		return "", &Error{Message: "failed to build upload request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/file/upload", &buf)
	if err != nil {
		return "", &Error{Message: "failed to build upload request", Cause: err}
	}
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	parsed, err := c.do(req, "failed to upload PDF")
	if err != nil {
		return "", err
	}
	if parsed.URL == "" {
		return "", &Error{Message: "failed to get uploaded file URL from conversion service"}
	}
	return parsed.URL, nil
}

// ConvertToText requests text conversion for a previously uploaded file.
func (c *PDFCoClient) ConvertToText(ctx context.Context, fileURL string) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"url":    fileURL,
		"async":  false,
		"inline": true,
	})
	if err != nil {
		return "", &Error{Message: "failed to build conversion request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/pdf/convert/to/text", bytes.NewReader(payload))
	if err != nil {
		return "", &Error{Message: "failed to build conversion request", Cause: err}
	}
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	parsed, err := c.do(req, "PDF text extraction failed")
	if err != nil {
		return "", err
	}
	if parsed.Body == "" {
		return "", &Error{Message: "failed to extract text content from PDF"}
	}
	return parsed.Body, nil
}

// do executes a request and decodes the service response, mapping non-2xx
// statuses and service-reported errors to extraction errors carrying the
// upstream message.
func (c *PDFCoClient) do(req *http.Request, failurePrefix string) (*pdfCoResponse, error) {
	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: pdfCoTimeout}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{Message: failurePrefix, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Message: failurePrefix + ": failed to read response", Cause: err}
	}

	var parsed pdfCoResponse
	_ = json.Unmarshal(body, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || parsed.IsError {
		message := parsed.Message
		if message == "" {
			message = resp.Status
		}
		return nil, &Error{Message: fmt.Sprintf("%s: %s", failurePrefix, message)}
	}
	return &parsed, nil
}

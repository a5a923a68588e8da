// Package workflow orchestrates the user-facing document flows: CV review,
// job matching, and cover letter generation. Each flow runs entry guards,
// drives extraction and analysis, validates the result, and persists it,
// reporting state transitions through an event callback.
package workflow

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-studio/internal/extraction"
)

// State is a workflow lifecycle phase.
type State string

// Workflow states. A run moves Idle -> Extracting -> Analyzing -> Complete,
// or to Failed from any active state. Uploading is reported by callers that
// stream the file in; the library receives uploads fully buffered.
const (
	StateIdle       State = "idle"
	StateUploading  State = "uploading"
	StateExtracting State = "extracting"
	StateAnalyzing  State = "analyzing"
	StateComplete   State = "complete"
	StateFailed     State = "failed"
)

// Event is a progress update emitted during a workflow run. Progress is
// meaningful during extraction; elsewhere it is 0 or 100.
type Event struct {
	State    State
	Progress int
	Message  string
}

// EventFunc receives workflow events. May be nil.
type EventFunc func(Event)

// maxUploadSize is the upload size limit, checked at selection time.
const maxUploadSize = 5 << 20

// minExtractedChars is the minimum trimmed text length required before the
// analysis call is made. Guards near-empty documents away from the paid
// upstream call.
const minExtractedChars = 50

// reviewMIMETypes are the declared types accepted by the review flow.
var reviewMIMETypes = map[string]bool{
	extraction.MIMEPDF:   true,
	extraction.MIMEDOC:   true,
	extraction.MIMEDOCX:  true,
	extraction.MIMEXLS:   true,
	extraction.MIMEXLSX:  true,
	extraction.MIMEPlain: true,
}

// matchMIMETypes are the declared types accepted by the job match flow.
var matchMIMETypes = map[string]bool{
	extraction.MIMEPDF: true,
}

func emit(fn EventFunc, state State, progress int, message string) {
	if fn != nil {
		fn(Event{State: state, Progress: progress, Message: message})
	}
}

// validateUpload runs the selection-time guards shared by the upload flows.
func validateUpload(up *extraction.Upload, allowed map[string]bool) error {
	if up == nil || len(up.Data) == 0 {
		return &ValidationError{Message: "please upload a CV file"}
	}
	if up.Size > maxUploadSize {
		return &ValidationError{Message: "file too large: maximum file size is 5MB"}
	}
	if !allowed[strings.ToLower(up.MIME)] {
		return &ValidationError{Message: fmt.Sprintf("unsupported file type: %s", up.MIME)}
	}
	return nil
}

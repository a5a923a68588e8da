// Package extraction converts uploaded binary documents into plain text,
// reporting fractional progress to a caller-supplied callback.
package extraction

import "fmt"

// Error represents a text extraction failure: an unsupported file type, a
// corrupt document, or an upstream conversion-service failure. Upstream
// messages are carried in Message when available.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

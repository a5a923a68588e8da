// Package analysis obtains structured CV assessments from a generative
// language service: a review scored against an ATS rubric, and a match of a
// CV against a job description. Responses are free-form text expected to
// contain one embedded JSON object, which is located, parsed, and validated
// here so downstream code only ever sees typed results.
package analysis

import "fmt"

// TimeoutError indicates the analysis call exceeded its wall-clock bound.
type TimeoutError struct {
	Seconds int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("analysis request timed out after %d seconds", e.Seconds)
}

// UpstreamError indicates a failed call to the generative language service.
type UpstreamError struct {
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// FormatError indicates the service responded, but with no parseable JSON
// object or one that does not match the expected shape.
type FormatError struct {
	Message string
	Cause   error
}

func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("AI returned an invalid format: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("AI returned an invalid format: %s", e.Message)
}

func (e *FormatError) Unwrap() error {
	return e.Cause
}

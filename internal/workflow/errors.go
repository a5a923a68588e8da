package workflow

// ValidationError indicates a missing or invalid input caught before a
// workflow starts. The message is user-facing.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

package store

import "fmt"

// PersistenceError represents a storage write failure. Reads never surface
// this; a corrupt or missing partition reads as empty by policy.
type PersistenceError struct {
	Partition string
	Message   string
	Cause     error
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("persistence error in %s: %s: %v", e.Partition, e.Message, e.Cause)
	}
	return fmt.Sprintf("persistence error in %s: %s", e.Partition, e.Message)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

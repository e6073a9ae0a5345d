package engine

import "fmt"

// ValidationError rejects a request at the boundary. Nothing is
// mutated when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

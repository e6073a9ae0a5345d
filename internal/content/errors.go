package content

import (
	"errors"
	"fmt"
)

// ErrSynthesisTimeout indicates a synthesis call exceeded its deadline.
// Non-fatal: the service falls back to the seed bank.
var ErrSynthesisTimeout = errors.New("content synthesis timed out")

// VerificationError describes why a synthesized payload failed a check.
type VerificationError struct {
	Check     string // Name of the check that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether re-synthesis is likely to fix this
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("check %q: %s", e.Check, e.Message)
}

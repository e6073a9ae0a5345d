package engine

import (
	"context"

	"github.com/abhisek/codetutor/internal/content"
)

// Runner executes a coding submission against its test cases. It is
// an external capability; the engine degrades gracefully without one.
type Runner interface {
	Run(ctx context.Context, code string, tests []content.TestCase) (RunResult, error)
}

// RunResult is the outcome of executing a coding submission.
type RunResult struct {
	// Passed is true when every test case produced its expected output.
	Passed bool

	// Output is the combined runner output: failures, tracebacks, or
	// timeout notices. It feeds the execution-signature diagnosis.
	Output string
}

package diagnosis

import "github.com/abhisek/codetutor/internal/content"

// Input holds the context for diagnosing an incorrect response.
type Input struct {
	// Question is the question the student answered.
	Question *content.QuestionPayload

	// Response is the student's raw response: the selected option key
	// for MCQ questions, the submitted code for coding questions.
	Response string

	// ExecutionOutput is the runtime output (stderr, traceback, or
	// timeout notice) from the external execution capability. Empty
	// when no execution happened.
	ExecutionOutput string
}

// Match is a single misconception candidate produced by a check.
type Match struct {
	Tag        string
	Confidence float64
	// Specificity orders matches: higher means the pattern is narrower
	// and more diagnostic.
	Specificity int
	// Source names the check or capability that produced this match.
	Source string
}

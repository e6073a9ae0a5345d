package content

import (
	"fmt"
	"strings"

	"github.com/abhisek/codetutor/internal/misconception"
)

// mcqOptionKeys are the declared option keys every MCQ must carry.
var mcqOptionKeys = []string{"A", "B", "C", "D"}

// LessonCheck validates one aspect of a lesson payload.
// Implementations should be stateless and safe for concurrent use.
type LessonCheck interface {
	// Name returns a short identifier for this check (for error
	// messages and logging), e.g. "lesson-structural".
	Name() string

	// Check returns nil if the payload passes, or a VerificationError.
	Check(l *LessonPayload, input SynthesisInput) *VerificationError
}

// QuestionCheck validates one aspect of a question payload.
type QuestionCheck interface {
	Name() string
	Check(q *QuestionPayload, input SynthesisInput) *VerificationError
}

// Verifier runs ordered check chains over synthesized payloads.
// The first failure stops the chain.
type Verifier struct {
	lessonChecks   []LessonCheck
	questionChecks []QuestionCheck
}

// NewVerifier creates a Verifier with the standard check chains.
func NewVerifier() *Verifier {
	return &Verifier{
		lessonChecks: []LessonCheck{
			&LessonStructuralCheck{},
		},
		questionChecks: []QuestionCheck{
			&QuestionConceptCheck{},
			&MCQStructuralCheck{},
			&CodingScaffoldCheck{},
		},
	}
}

// VerifyLesson runs the lesson check chain.
func (v *Verifier) VerifyLesson(l *LessonPayload, input SynthesisInput) *VerificationError {
	for _, c := range v.lessonChecks {
		if err := c.Check(l, input); err != nil {
			return err
		}
	}
	return nil
}

// VerifyQuestion runs the question check chain.
func (v *Verifier) VerifyQuestion(q *QuestionPayload, input SynthesisInput) *VerificationError {
	for _, c := range v.questionChecks {
		if err := c.Check(q, input); err != nil {
			return err
		}
	}
	return nil
}

// LessonStructuralCheck requires at least one content bullet and a title.
type LessonStructuralCheck struct{}

func (c *LessonStructuralCheck) Name() string { return "lesson-structural" }

func (c *LessonStructuralCheck) Check(l *LessonPayload, _ SynthesisInput) *VerificationError {
	if l.Title == "" {
		return &VerificationError{
			Check:     c.Name(),
			Message:   "title is empty",
			Retryable: true,
		}
	}
	if len(l.Bullets) == 0 {
		return &VerificationError{
			Check:     c.Name(),
			Message:   "lesson has no content bullets",
			Retryable: true,
		}
	}
	for i, b := range l.Bullets {
		if strings.TrimSpace(b) == "" {
			return &VerificationError{
				Check:     c.Name(),
				Message:   fmt.Sprintf("bullet %d is empty", i),
				Retryable: true,
			}
		}
	}
	return nil
}

// QuestionConceptCheck requires the payload to target the requested concept.
type QuestionConceptCheck struct{}

func (c *QuestionConceptCheck) Name() string { return "question-concept" }

func (c *QuestionConceptCheck) Check(q *QuestionPayload, input SynthesisInput) *VerificationError {
	if q.ConceptID != input.ConceptID {
		return &VerificationError{
			Check:     c.Name(),
			Message:   fmt.Sprintf("payload concept %q does not match requested %q", q.ConceptID, input.ConceptID),
			Retryable: false,
		}
	}
	if q.Prompt == "" {
		return &VerificationError{
			Check:     c.Name(),
			Message:   "prompt is empty",
			Retryable: true,
		}
	}
	return nil
}

// MCQStructuralCheck requires all declared option keys, exactly one
// designated correct key, and registry-valid misconception mappings.
type MCQStructuralCheck struct{}

func (c *MCQStructuralCheck) Name() string { return "mcq-structural" }

func (c *MCQStructuralCheck) Check(q *QuestionPayload, _ SynthesisInput) *VerificationError {
	if q.Kind != KindMCQ {
		return nil
	}

	if len(q.Options) != len(mcqOptionKeys) {
		return &VerificationError{
			Check:     c.Name(),
			Message:   fmt.Sprintf("expected %d options, got %d", len(mcqOptionKeys), len(q.Options)),
			Retryable: true,
		}
	}
	for _, key := range mcqOptionKeys {
		text, ok := q.Options[key]
		if !ok {
			return &VerificationError{
				Check:     c.Name(),
				Message:   fmt.Sprintf("option key %q is missing", key),
				Retryable: true,
			}
		}
		if strings.TrimSpace(text) == "" {
			return &VerificationError{
				Check:     c.Name(),
				Message:   fmt.Sprintf("option %q is empty", key),
				Retryable: true,
			}
		}
	}

	if _, ok := q.Options[q.CorrectKey]; !ok {
		return &VerificationError{
			Check:     c.Name(),
			Message:   fmt.Sprintf("correct key %q is not an option", q.CorrectKey),
			Retryable: true,
		}
	}

	for key, tag := range q.OptionMisconceptions {
		if key == q.CorrectKey {
			return &VerificationError{
				Check:     c.Name(),
				Message:   fmt.Sprintf("correct key %q must not map to a misconception", key),
				Retryable: true,
			}
		}
		if _, ok := q.Options[key]; !ok {
			return &VerificationError{
				Check:     c.Name(),
				Message:   fmt.Sprintf("misconception mapping references unknown option %q", key),
				Retryable: true,
			}
		}
		if !misconception.Exists(tag) {
			return &VerificationError{
				Check:     c.Name(),
				Message:   fmt.Sprintf("option %q maps to unknown misconception tag %q", key, tag),
				Retryable: true,
			}
		}
	}

	return nil
}

// CodingScaffoldCheck requires a scaffold consistent with a coding
// exercise: a function stub and at least one test case.
type CodingScaffoldCheck struct{}

func (c *CodingScaffoldCheck) Name() string { return "coding-scaffold" }

func (c *CodingScaffoldCheck) Check(q *QuestionPayload, _ SynthesisInput) *VerificationError {
	if q.Kind != KindCoding {
		return nil
	}

	if strings.TrimSpace(q.StarterCode) == "" {
		return &VerificationError{
			Check:     c.Name(),
			Message:   "starter code is empty",
			Retryable: true,
		}
	}
	if !strings.Contains(q.StarterCode, "def ") {
		return &VerificationError{
			Check:     c.Name(),
			Message:   "starter code has no function scaffold",
			Retryable: true,
		}
	}
	if len(q.TestCases) == 0 {
		return &VerificationError{
			Check:     c.Name(),
			Message:   "coding question has no test cases",
			Retryable: true,
		}
	}
	if strings.TrimSpace(q.Solution) == "" {
		return &VerificationError{
			Check:     c.Name(),
			Message:   "reference solution is empty",
			Retryable: true,
		}
	}
	return nil
}

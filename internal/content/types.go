package content

import (
	"github.com/abhisek/codetutor/internal/mastery"
)

// LessonPayload is a synthesized micro-lesson for a concept.
type LessonPayload struct {
	// ConceptID is the concept this lesson teaches.
	ConceptID string

	// Title is a short lesson heading.
	Title string

	// Bullets are the explanation points. At least one is required.
	Bullets []string

	// WorkedExample is a commented code example. Optional.
	WorkedExample string

	// Pitfall describes one common mistake to avoid. Optional.
	Pitfall string

	// QuickCheck is a short comprehension question. Optional.
	QuickCheck string

	// TargetMisconceptions lists the misconception tags this lesson
	// was synthesized to address. Empty for a first-time TEACH.
	TargetMisconceptions []string

	// Fallback is true when the payload came from the seed bank rather
	// than live synthesis.
	Fallback bool
}

// QuestionKind discriminates question payloads.
type QuestionKind string

const (
	KindMCQ    QuestionKind = "mcq"
	KindCoding QuestionKind = "coding"
)

// QuestionPayload is a synthesized assessment question.
type QuestionPayload struct {
	// ID uniquely identifies this question instance.
	ID string

	ConceptID  string
	Kind       QuestionKind
	Difficulty mastery.Difficulty

	// Prompt is the question text shown to the student.
	Prompt string

	// Options maps option keys ("A".."D") to option text.
	// Populated only for MCQ questions.
	Options map[string]string

	// CorrectKey is the designated correct option key for MCQ questions.
	CorrectKey string

	// OptionMisconceptions maps each incorrect option key to the
	// misconception tag it was authored to detect. Zero-or-one tag per
	// key; keys without a known pattern are absent.
	OptionMisconceptions map[string]string

	// StarterCode is the scaffold for coding questions.
	StarterCode string

	// Solution is the reference solution for coding questions.
	Solution string

	// TestCases describe input/expected pairs for coding questions.
	TestCases []TestCase

	// Explanation is shown to the student after answering.
	Explanation string

	// TargetMisconceptions lists tags this question was synthesized
	// to probe.
	TargetMisconceptions []string

	// Fallback is true when the payload came from the seed bank.
	Fallback bool
}

// TestCase is a single input/expected pair for a coding question.
type TestCase struct {
	Input    string
	Expected string
}

// SynthesisInput holds all context needed to synthesize content.
type SynthesisInput struct {
	// ConceptID and ConceptName identify the target concept.
	ConceptID   string
	ConceptName string

	// TargetMisconceptions are tags to address (RETEACH) or probe (TEST).
	TargetMisconceptions []string

	// Difficulty is selected from the student's current mastery.
	Difficulty mastery.Difficulty

	// Baseline is the student's registration-time level.
	Baseline mastery.BaselineLevel

	// Kind selects MCQ or coding for question synthesis.
	Kind QuestionKind

	// PriorPrompts are recent question prompts to avoid duplicating.
	PriorPrompts []string
}

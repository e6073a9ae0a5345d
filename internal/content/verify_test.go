package content

import "testing"

func validMCQ() *QuestionPayload {
	return &QuestionPayload{
		ID:        "q1",
		ConceptID: "loops",
		Kind:      KindMCQ,
		Prompt:    "What does range(3) produce?",
		Options: map[string]string{
			"A": "0, 1, 2",
			"B": "1, 2, 3",
			"C": "0, 1, 2, 3",
			"D": "1, 2",
		},
		CorrectKey: "A",
		OptionMisconceptions: map[string]string{
			"B": "off_by_one",
			"C": "off_by_one",
		},
		Explanation: "range(n) starts at 0 and stops before n.",
	}
}

func TestVerifyLesson_RequiresBullet(t *testing.T) {
	v := NewVerifier()
	input := SynthesisInput{ConceptID: "loops"}

	l := &LessonPayload{ConceptID: "loops", Title: "Loops", Bullets: []string{"for loops iterate"}}
	if err := v.VerifyLesson(l, input); err != nil {
		t.Fatalf("valid lesson rejected: %v", err)
	}

	l.Bullets = nil
	err := v.VerifyLesson(l, input)
	if err == nil {
		t.Fatal("expected failure for lesson with no bullets")
	}
	if !err.Retryable {
		t.Error("missing bullets should be retryable")
	}
}

func TestVerifyQuestion_ValidMCQPasses(t *testing.T) {
	v := NewVerifier()
	if err := v.VerifyQuestion(validMCQ(), SynthesisInput{ConceptID: "loops"}); err != nil {
		t.Fatalf("valid mcq rejected: %v", err)
	}
}

func TestVerifyQuestion_MissingOptionKey(t *testing.T) {
	v := NewVerifier()
	q := validMCQ()
	delete(q.Options, "D")
	if err := v.VerifyQuestion(q, SynthesisInput{ConceptID: "loops"}); err == nil {
		t.Fatal("expected failure for missing option key")
	}
}

func TestVerifyQuestion_CorrectKeyNotAnOption(t *testing.T) {
	v := NewVerifier()
	q := validMCQ()
	q.CorrectKey = "E"
	if err := v.VerifyQuestion(q, SynthesisInput{ConceptID: "loops"}); err == nil {
		t.Fatal("expected failure when correct key is not among options")
	}
}

func TestVerifyQuestion_CorrectKeyMappedToMisconception(t *testing.T) {
	v := NewVerifier()
	q := validMCQ()
	q.OptionMisconceptions["A"] = "off_by_one"
	if err := v.VerifyQuestion(q, SynthesisInput{ConceptID: "loops"}); err == nil {
		t.Fatal("expected failure when correct key maps to a misconception")
	}
}

func TestVerifyQuestion_UnknownMisconceptionTag(t *testing.T) {
	v := NewVerifier()
	q := validMCQ()
	q.OptionMisconceptions["B"] = "made_up_tag"
	if err := v.VerifyQuestion(q, SynthesisInput{ConceptID: "loops"}); err == nil {
		t.Fatal("expected failure for unregistered misconception tag")
	}
}

func TestVerifyQuestion_ConceptMismatchNotRetryable(t *testing.T) {
	v := NewVerifier()
	q := validMCQ()
	q.ConceptID = "arrays"
	err := v.VerifyQuestion(q, SynthesisInput{ConceptID: "loops"})
	if err == nil {
		t.Fatal("expected failure for concept mismatch")
	}
	if err.Retryable {
		t.Error("concept mismatch should not be retryable")
	}
}

func TestVerifyQuestion_CodingScaffold(t *testing.T) {
	v := NewVerifier()
	input := SynthesisInput{ConceptID: "loops"}

	q := &QuestionPayload{
		ID:          "q2",
		ConceptID:   "loops",
		Kind:        KindCoding,
		Prompt:      "Count the even numbers in a list.",
		StarterCode: "def count_even(nums):\n    pass",
		Solution:    "def count_even(nums):\n    return sum(1 for n in nums if n % 2 == 0)",
		TestCases:   []TestCase{{Input: "[2, 3]", Expected: "1"}},
	}
	if err := v.VerifyQuestion(q, input); err != nil {
		t.Fatalf("valid coding question rejected: %v", err)
	}

	q.StarterCode = "x = 1"
	if err := v.VerifyQuestion(q, input); err == nil {
		t.Fatal("expected failure for scaffold without a function stub")
	}

	q.StarterCode = "def count_even(nums):\n    pass"
	q.TestCases = nil
	if err := v.VerifyQuestion(q, input); err == nil {
		t.Fatal("expected failure for coding question with no test cases")
	}
}

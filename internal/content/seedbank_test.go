package content

import (
	"testing"

	"github.com/abhisek/codetutor/internal/conceptgraph"
	"github.com/abhisek/codetutor/internal/mastery"
)

// Every seed template must pass verification: the fallback path is the
// last line of defense and can never itself be rejected.
func TestSeedBank_AllTemplatesVerify(t *testing.T) {
	bank := NewSeedBank()
	v := NewVerifier()

	for _, c := range conceptgraph.All() {
		input := SynthesisInput{
			ConceptID:   c.ID,
			ConceptName: c.Name,
			Difficulty:  mastery.DifficultyMedium,
		}

		l := bank.Lesson(input)
		if !l.Fallback {
			t.Errorf("%s: lesson not marked as fallback", c.ID)
		}
		if err := v.VerifyLesson(l, input); err != nil {
			t.Errorf("%s: seed lesson failed verification: %v", c.ID, err)
		}

		for _, kind := range []QuestionKind{KindMCQ, KindCoding} {
			input.Kind = kind
			q := bank.Question(input)
			if !q.Fallback {
				t.Errorf("%s/%s: question not marked as fallback", c.ID, kind)
			}
			if q.ID == "" {
				t.Errorf("%s/%s: question has no ID", c.ID, kind)
			}
			if err := v.VerifyQuestion(q, input); err != nil {
				t.Errorf("%s/%s: seed question failed verification: %v", c.ID, kind, err)
			}
		}
	}
}

func TestSeedBank_DeterministicContent(t *testing.T) {
	bank := NewSeedBank()
	input := SynthesisInput{ConceptID: "loops", ConceptName: "Loops", Kind: KindMCQ}

	a := bank.Question(input)
	b := bank.Question(input)
	if a.Prompt != b.Prompt || a.CorrectKey != b.CorrectKey {
		t.Error("seed bank content should be identical across lookups")
	}
	if a.ID == b.ID {
		t.Error("question instances should get distinct IDs")
	}
}

func TestSeedBank_CarriesTargetMisconceptions(t *testing.T) {
	bank := NewSeedBank()
	input := SynthesisInput{
		ConceptID:            "loops",
		TargetMisconceptions: []string{"off_by_one"},
		Kind:                 KindMCQ,
	}

	l := bank.Lesson(input)
	if len(l.TargetMisconceptions) != 1 || l.TargetMisconceptions[0] != "off_by_one" {
		t.Errorf("lesson target misconceptions = %v", l.TargetMisconceptions)
	}
}

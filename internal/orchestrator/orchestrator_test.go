package orchestrator

import (
	"reflect"
	"testing"
	"time"

	"github.com/abhisek/codetutor/internal/mastery"
)

func TestDecide_FreshStudentGetsTeach(t *testing.T) {
	o := New(DefaultConfig())
	d := o.Decide(State{})
	if d.Action != ActionTeach {
		t.Fatalf("action = %q, want TEACH", d.Action)
	}
	if d.Concept != "variables" {
		t.Errorf("concept = %q, want variables (first in topological order)", d.Concept)
	}
}

func TestDecide_NoAttemptOnCurrentConcept(t *testing.T) {
	o := New(DefaultConfig())
	d := o.Decide(State{CurrentConcept: "loops"})
	if d.Action != ActionTeach || d.Concept != "loops" {
		t.Errorf("got %q on %q, want TEACH on loops", d.Action, d.Concept)
	}
}

func TestDecide_AfterTeachComesTest(t *testing.T) {
	o := New(DefaultConfig())
	d := o.Decide(State{
		CurrentConcept:  "loops",
		LessonDelivered: true,
	})
	if d.Action != ActionTest {
		t.Errorf("action = %q, want TEST after a lesson", d.Action)
	}
}

func TestDecide_CorrectBelowThresholdKeepsTesting(t *testing.T) {
	o := New(DefaultConfig())
	d := o.Decide(State{
		CurrentConcept:     "loops",
		MasteryScores:      map[string]float64{"loops": 0.6},
		AttemptsOnConcept:  2,
		LastAttemptCorrect: true,
		LessonDelivered:    true,
	})
	if d.Action != ActionTest {
		t.Errorf("action = %q, want TEST", d.Action)
	}
}

func TestDecide_AdvanceRequiresThresholdAndMinAttempts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinAttempts = 2
	o := New(cfg)

	base := State{
		CurrentConcept:     "variables",
		MasteryScores:      map[string]float64{"variables": 0.85},
		LastAttemptCorrect: true,
		LessonDelivered:    true,
	}

	// Above threshold but not enough attempts: no advance.
	s := base
	s.AttemptsOnConcept = 1
	if d := o.Decide(s); d.Action != ActionTest {
		t.Errorf("one attempt: action = %q, want TEST", d.Action)
	}

	// Threshold and attempt floor both met.
	s.AttemptsOnConcept = 2
	d := o.Decide(s)
	if d.Action != ActionAdvance {
		t.Fatalf("action = %q, want ADVANCE", d.Action)
	}
	if d.Struggling {
		t.Error("mastery advance should not flag struggling")
	}
	if d.Concept != "types" {
		t.Errorf("advance target = %q, want types", d.Concept)
	}
}

func TestDecide_IncorrectBelowReteachThreshold(t *testing.T) {
	o := New(DefaultConfig())
	d := o.Decide(State{
		CurrentConcept:     "loops",
		MasteryScores:      map[string]float64{"loops": 0.25},
		RecentTags:         []string{"off_by_one"},
		AttemptsOnConcept:  2,
		LastAttemptCorrect: false,
		LessonDelivered:    true,
	})
	if d.Action != ActionReteach {
		t.Fatalf("action = %q, want RETEACH", d.Action)
	}
	if len(d.TargetMisconceptions) != 1 || d.TargetMisconceptions[0] != "off_by_one" {
		t.Errorf("targets = %v, want [off_by_one]", d.TargetMisconceptions)
	}
}

func TestDecide_UnclassifiedTagsMeanGenericReteach(t *testing.T) {
	o := New(DefaultConfig())
	d := o.Decide(State{
		CurrentConcept:     "loops",
		MasteryScores:      map[string]float64{"loops": 0.2},
		RecentTags:         []string{"unclassified"},
		AttemptsOnConcept:  1,
		LastAttemptCorrect: false,
		LessonDelivered:    true,
	})
	if d.Action != ActionReteach {
		t.Fatalf("action = %q, want RETEACH", d.Action)
	}
	if len(d.TargetMisconceptions) != 0 {
		t.Errorf("targets = %v, want empty for generic remediation", d.TargetMisconceptions)
	}
}

func TestDecide_IncorrectAboveReteachThresholdKeepsTesting(t *testing.T) {
	o := New(DefaultConfig())
	d := o.Decide(State{
		CurrentConcept:     "loops",
		MasteryScores:      map[string]float64{"loops": 0.55},
		AttemptsOnConcept:  3,
		LastAttemptCorrect: false,
		LessonDelivered:    true,
	})
	if d.Action != ActionTest {
		t.Errorf("action = %q, want TEST", d.Action)
	}
}

func TestDecide_AttemptCapForcesAdvance(t *testing.T) {
	o := New(DefaultConfig())
	d := o.Decide(State{
		CurrentConcept:     "variables",
		MasteryScores:      map[string]float64{"variables": 0.3},
		AttemptsOnConcept:  5,
		LastAttemptCorrect: false,
		LessonDelivered:    true,
	})
	if d.Action != ActionAdvance {
		t.Fatalf("action = %q, want forward-progress ADVANCE", d.Action)
	}
	if !d.Struggling {
		t.Error("forced advance must flag the student as struggling")
	}
}

func TestDecide_SkippedConceptIsNotRevisited(t *testing.T) {
	o := New(DefaultConfig())
	// Student was forced past variables, then mastered types.
	d := o.Decide(State{
		CurrentConcept:     "types",
		MasteryScores:      map[string]float64{"types": 0.9},
		AttemptsOnConcept:  2,
		LastAttemptCorrect: true,
		LessonDelivered:    true,
		Skipped:            map[string]bool{"variables": true},
	})
	if d.Action != ActionAdvance {
		t.Fatalf("action = %q, want ADVANCE", d.Action)
	}
	if d.Concept == "variables" {
		t.Error("advance must not return to a skipped concept")
	}
}

func TestDecide_AllCompletedIsTerminal(t *testing.T) {
	o := New(DefaultConfig())
	completed := map[string]bool{}
	for _, id := range []string{"variables", "types", "operators", "conditionals", "loops", "functions", "arrays", "strings", "complexity"} {
		completed[id] = true
	}
	d := o.Decide(State{CurrentConcept: "complexity", Completed: completed})
	if d.Action != ActionComplete {
		t.Errorf("action = %q, want COMPLETE", d.Action)
	}
}

func TestDecide_Deterministic(t *testing.T) {
	o := New(DefaultConfig())
	state := State{
		CurrentConcept:     "loops",
		MasteryScores:      map[string]float64{"loops": 0.35},
		RecentTags:         []string{"off_by_one"},
		AttemptsOnConcept:  2,
		LastAttemptCorrect: false,
		LessonDelivered:    true,
	}

	first := o.Decide(state)
	for i := 0; i < 10; i++ {
		if got := o.Decide(state); !reflect.DeepEqual(got, first) {
			t.Fatalf("decision diverged on call %d: %+v vs %+v", i, got, first)
		}
	}
}

// A student at score 0.2 answering correctly with alpha 0.3 follows
// 0.44, 0.608, 0.7256, 0.80792: the advance fires on the attempt whose
// updated score first reaches 0.8, never earlier.
func TestDecide_ConsecutiveCorrectTrajectory(t *testing.T) {
	o := New(DefaultConfig())
	tracker := mastery.NewTracker(mastery.Config{Alpha: 0.3, LowBaselineScale: 1.0})

	state := State{
		CurrentConcept: "loops",
		MasteryScores:  map[string]float64{"loops": 0.2},
	}
	ms := mastery.State{Score: 0.2}

	var actions []Action

	d := o.Decide(state)
	actions = append(actions, d.Action) // TEACH
	state.LessonDelivered = true

	for i := 0; i < 10; i++ {
		d = o.Decide(state)
		actions = append(actions, d.Action)
		if d.Action != ActionTest {
			break
		}

		// Student answers the served question correctly.
		ms = tracker.Update(ms, true, mastery.BaselineMedium, time.Unix(0, 0))
		state.MasteryScores["loops"] = ms.Score
		state.AttemptsOnConcept++
		state.LastAttemptCorrect = true
	}

	want := []Action{ActionTeach, ActionTest, ActionTest, ActionTest, ActionTest, ActionAdvance}
	if !reflect.DeepEqual(actions, want) {
		t.Fatalf("decision sequence = %v, want %v", actions, want)
	}
	if ms.Score < 0.8 {
		t.Errorf("final score %v should be at the advance threshold", ms.Score)
	}
	if got := state.AttemptsOnConcept; got != 4 {
		t.Errorf("attempts at advance = %d, want 4 (score first reaches 0.8 on the fourth update)", got)
	}
}

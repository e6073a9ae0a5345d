package mastery

import (
	"math"
	"testing"
	"time"
)

func TestUpdate_CorrectFromPointFour(t *testing.T) {
	tr := NewTracker(Config{Alpha: 0.3, LowBaselineScale: 1.0})
	state := State{Score: 0.4}

	got := tr.Update(state, true, BaselineMedium, time.Now())
	if math.Abs(got.Score-0.58) > 1e-9 {
		t.Errorf("correct attempt: got %v, want 0.58", got.Score)
	}
	if got.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", got.Attempts)
	}
}

func TestUpdate_IncorrectFromPointFour(t *testing.T) {
	tr := NewTracker(Config{Alpha: 0.3, LowBaselineScale: 1.0})
	state := State{Score: 0.4}

	got := tr.Update(state, false, BaselineMedium, time.Now())
	if math.Abs(got.Score-0.28) > 1e-9 {
		t.Errorf("incorrect attempt: got %v, want 0.28", got.Score)
	}
}

func TestUpdate_ClampsToUnitInterval(t *testing.T) {
	tr := NewTracker(DefaultConfig())

	state := State{Score: 0.99}
	for i := 0; i < 50; i++ {
		state = tr.Update(state, true, BaselineMedium, time.Now())
		if state.Score < 0 || state.Score > 1 {
			t.Fatalf("score %v out of [0,1] after %d correct attempts", state.Score, i+1)
		}
	}

	state = State{Score: 0.01}
	for i := 0; i < 50; i++ {
		state = tr.Update(state, false, BaselineMedium, time.Now())
		if state.Score < 0 || state.Score > 1 {
			t.Fatalf("score %v out of [0,1] after %d incorrect attempts", state.Score, i+1)
		}
	}
}

func TestUpdate_LowBaselineAdaptsSlower(t *testing.T) {
	tr := NewTracker(Config{Alpha: 0.3, LowBaselineScale: 0.8})
	state := State{Score: 0.4}

	low := tr.Update(state, true, BaselineLow, time.Now())
	med := tr.Update(state, true, BaselineMedium, time.Now())
	if low.Score >= med.Score {
		t.Errorf("low baseline should move less: low=%v medium=%v", low.Score, med.Score)
	}
	// 0.4 + 0.24*(1-0.4) = 0.544
	if math.Abs(low.Score-0.544) > 1e-9 {
		t.Errorf("low baseline score: got %v, want 0.544", low.Score)
	}
}

func TestUpdate_TrajectoryIsReproducible(t *testing.T) {
	outcomes := []bool{true, false, true, true, false, true}

	run := func() []float64 {
		tr := NewTracker(DefaultConfig())
		state := State{}
		scores := make([]float64, 0, len(outcomes))
		for _, c := range outcomes {
			state = tr.Update(state, c, BaselineHigh, time.Unix(0, 0))
			scores = append(scores, state.Score)
		}
		return scores
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("trajectories diverge at step %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestUpdate_DoesNotMutateInput(t *testing.T) {
	tr := NewTracker(DefaultConfig())
	state := State{Score: 0.5, Attempts: 3}
	tr.Update(state, true, BaselineMedium, time.Now())
	if state.Score != 0.5 || state.Attempts != 3 {
		t.Errorf("input state mutated: %+v", state)
	}
}

func TestDifficultyFor(t *testing.T) {
	cases := []struct {
		score float64
		want  Difficulty
	}{
		{0.0, DifficultyEasy},
		{0.39, DifficultyEasy},
		{0.4, DifficultyMedium},
		{0.69, DifficultyMedium},
		{0.7, DifficultyHard},
		{1.0, DifficultyHard},
	}
	for _, c := range cases {
		if got := DifficultyFor(c.score); got != c.want {
			t.Errorf("DifficultyFor(%v) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestOverall(t *testing.T) {
	if got := Overall(nil); got != 0 {
		t.Errorf("empty scores: got %v, want 0", got)
	}
	scores := map[string]float64{"a": 0.2, "b": 0.8}
	if got := Overall(scores); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("got %v, want 0.5", got)
	}
}

func TestValidBaseline(t *testing.T) {
	for _, b := range []BaselineLevel{BaselineLow, BaselineMedium, BaselineHigh} {
		if !ValidBaseline(b) {
			t.Errorf("%q should be valid", b)
		}
	}
	if ValidBaseline("expert") {
		t.Error("unknown baseline should be invalid")
	}
}

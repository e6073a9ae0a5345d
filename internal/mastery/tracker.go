package mastery

import (
	"os"
	"strconv"
	"time"
)

// Config holds the mastery update parameters.
type Config struct {
	// Alpha is the exponential moving average learning rate.
	Alpha float64

	// LowBaselineScale multiplies Alpha for students with a "low"
	// baseline, slowing adaptation to avoid premature advancement.
	LowBaselineScale float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Alpha:            0.3,
		LowBaselineScale: 0.8,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CODETUTOR_MASTERY_ALPHA"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f <= 1 {
			cfg.Alpha = f
		}
	}
	if v := os.Getenv("CODETUTOR_MASTERY_LOW_BASELINE_SCALE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f <= 1 {
			cfg.LowBaselineScale = f
		}
	}

	return cfg
}

// Tracker applies the mastery update rule. It carries no per-student
// state; callers pass the current State in and store the result.
type Tracker struct {
	cfg Config
}

// NewTracker creates a Tracker with the given config.
func NewTracker(cfg Config) *Tracker {
	return &Tracker{cfg: cfg}
}

// alphaFor returns the effective learning rate for a baseline level.
func (t *Tracker) alphaFor(baseline BaselineLevel) float64 {
	if baseline == BaselineLow {
		return t.cfg.Alpha * t.cfg.LowBaselineScale
	}
	return t.cfg.Alpha
}

// Update applies one attempt outcome to a mastery state and returns the
// new state. The score moves toward the outcome by the effective learning
// rate and is clamped to [0,1] on every write. Identical inputs from a
// clean state reproduce identical trajectories.
func (t *Tracker) Update(state State, correct bool, baseline BaselineLevel, at time.Time) State {
	outcome := 0.0
	if correct {
		outcome = 1.0
	}

	return State{
		Score:       Apply(state.Score, outcome, t.alphaFor(baseline)),
		Attempts:    state.Attempts + 1,
		LastUpdated: at,
	}
}

// Apply computes clamp(score + alpha*(outcome - score), 0, 1).
func Apply(score, outcome, alpha float64) float64 {
	return clamp(score+alpha*(outcome-score), 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Overall returns the mean mastery score across concepts, 0 if empty.
func Overall(scores map[string]float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

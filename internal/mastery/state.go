package mastery

import "time"

// BaselineLevel is a student's self-reported starting proficiency,
// recorded once at registration.
type BaselineLevel string

const (
	BaselineLow    BaselineLevel = "low"
	BaselineMedium BaselineLevel = "medium"
	BaselineHigh   BaselineLevel = "high"
)

// ValidBaseline reports whether b is one of the known baseline levels.
func ValidBaseline(b BaselineLevel) bool {
	switch b {
	case BaselineLow, BaselineMedium, BaselineHigh:
		return true
	}
	return false
}

// State holds the mastery record for a single (student, concept) pair.
// Only Tracker.Update mutates it.
type State struct {
	Score       float64
	Attempts    int
	LastUpdated time.Time
}

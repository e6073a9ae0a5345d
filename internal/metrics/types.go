// Package metrics computes research and instructor analytics as pure
// functions over an immutable view of the attempt log and student
// roster. Nothing here mutates state, so snapshots may run concurrently
// with live attempt ingestion.
package metrics

import (
	"time"

	"github.com/abhisek/codetutor/internal/mastery"
)

// Attempt is one row of the attempt log as the analytics see it.
type Attempt struct {
	StudentID  string
	QuestionID string
	ConceptID  string
	Response   string
	Correct    bool
	Tags       []string
	Timestamp  time.Time
}

// Student is one roster entry with its current mastery map.
type Student struct {
	ID            string
	Baseline      mastery.BaselineLevel
	Active        bool
	MasteryScores map[string]float64
}

// LabeledAttempt pairs a system diagnosis with an instructor's label
// for the same attempt, for agreement analysis.
type LabeledAttempt struct {
	AttemptID     string
	SystemTag     string
	InstructorTag string
}

// Dataset is the fixed-cursor input to a snapshot. Everything is read
// before the cursor; the engine never queries storage itself.
type Dataset struct {
	Cursor   time.Time
	Students []Student
	Attempts []Attempt

	// PreScores and PostScores hold assessment fractions in [0,1] per
	// student, for the pre/post effect-size section. Students present
	// in only one map are excluded from the pairing.
	PreScores  map[string]float64
	PostScores map[string]float64

	// Labeled is the instructor-labeled subset for kappa.
	Labeled []LabeledAttempt

	// ReteachCounts maps misconception tag to the number of RETEACH
	// decisions it has driven, from the decision event log.
	ReteachCounts map[string]int

	// StudentReteach maps student ID to that student's total RETEACH
	// cycles, for priority scoring.
	StudentReteach map[string]int
}

// activeStudents returns the students currently marked active.
func (d Dataset) activeStudents() []Student {
	var out []Student
	for _, s := range d.Students {
		if s.Active {
			out = append(out, s)
		}
	}
	return out
}

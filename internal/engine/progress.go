package engine

import (
	"context"
	"fmt"

	"github.com/abhisek/codetutor/internal/mastery"
	"github.com/abhisek/codetutor/internal/store"
)

// Progress is the per-student view served at the query boundary.
type Progress struct {
	StudentID string
	Username  string
	Baseline  string

	CurrentConcept    string
	MasteryScores     map[string]float64
	OverallMastery    float64
	ConceptsCompleted []string
	ConceptsSkipped   []string

	// MisconceptionHistory counts every diagnosed tag over the
	// student's attempt log.
	MisconceptionHistory map[string]int

	TotalAttempts int
	Accuracy      float64
}

// Progress reports mastery and misconception history for one student.
func (e *Engine) Progress(ctx context.Context, studentID string) (*Progress, error) {
	stu, err := e.students.Get(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if stu == nil {
		return nil, validation("student_id", fmt.Sprintf("unknown student %q", studentID))
	}

	attempts, err := e.events.Attempts(ctx, store.QueryOpts{StudentID: studentID})
	if err != nil {
		return nil, err
	}

	history := make(map[string]int)
	correct := 0
	for _, a := range attempts {
		if a.Correct {
			correct++
		}
		for _, tag := range a.Tags {
			history[tag]++
		}
	}

	p := &Progress{
		StudentID:            stu.ID,
		Username:             stu.Username,
		Baseline:             stu.Baseline,
		CurrentConcept:       stu.CurrentConcept,
		MasteryScores:        stu.MasteryScores,
		OverallMastery:       mastery.Overall(stu.MasteryScores),
		ConceptsCompleted:    stu.Completed,
		ConceptsSkipped:      stu.Skipped,
		MisconceptionHistory: history,
		TotalAttempts:        len(attempts),
	}
	if len(attempts) > 0 {
		p.Accuracy = float64(correct) / float64(len(attempts))
	}
	return p, nil
}

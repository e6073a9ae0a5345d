package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendMastery(ctx context.Context, data MasteryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.MasteryEvent.Create().
		SetSequence(seqNum).
		SetStudentID(data.StudentID).
		SetConceptID(data.ConceptID).
		SetFromScore(data.FromScore).
		SetToScore(data.ToScore).
		SetCorrect(data.Correct).
		SetBaselineLevel(data.Baseline).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}
	return nil
}

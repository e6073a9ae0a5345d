package store

import (
	"context"
	"fmt"

	"github.com/abhisek/codetutor/ent"
	"github.com/abhisek/codetutor/ent/decisionevent"
)

func (r *eventRepo) AppendDecision(ctx context.Context, data DecisionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.DecisionEvent.Create().
		SetSequence(seqNum).
		SetStudentID(data.StudentID).
		SetAction(data.Action).
		SetConceptID(data.ConceptID).
		SetReason(data.Reason).
		SetTargetMisconceptions(data.TargetMisconceptions).
		SetStruggling(data.Struggling).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save decision event: %w", err)
	}
	return nil
}

func (r *eventRepo) ReteachCountsByTag(ctx context.Context) (map[string]int, error) {
	rows, err := r.client.DecisionEvent.Query().
		Where(decisionevent.Action("RETEACH")).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query reteach decisions: %w", err)
	}

	counts := make(map[string]int)
	for _, row := range rows {
		for _, tag := range row.TargetMisconceptions {
			counts[tag]++
		}
	}
	return counts, nil
}

func (r *eventRepo) ReteachCountsByStudent(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		StudentID string `json:"student_id"`
		Count     int    `json:"count"`
	}
	err := r.client.DecisionEvent.Query().
		Where(decisionevent.Action("RETEACH")).
		GroupBy(decisionevent.FieldStudentID).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("count reteach decisions: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.StudentID] = row.Count
	}
	return counts, nil
}

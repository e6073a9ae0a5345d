package store

import (
	"context"
	"fmt"

	"github.com/abhisek/codetutor/ent"
	"github.com/abhisek/codetutor/ent/instructorlabelevent"
)

func (r *eventRepo) AppendInstructorLabel(ctx context.Context, data InstructorLabelEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.InstructorLabelEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetStudentID(data.StudentID).
		SetSystemTag(data.SystemTag).
		SetInstructorTag(data.InstructorTag).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save instructor label event: %w", err)
	}
	return nil
}

func (r *eventRepo) InstructorLabels(ctx context.Context) ([]InstructorLabelEventData, error) {
	rows, err := r.client.InstructorLabelEvent.Query().
		Order(ent.Asc(instructorlabelevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query instructor labels: %w", err)
	}

	out := make([]InstructorLabelEventData, len(rows))
	for i, row := range rows {
		out[i] = InstructorLabelEventData{
			AttemptID:     row.AttemptID,
			StudentID:     row.StudentID,
			SystemTag:     row.SystemTag,
			InstructorTag: row.InstructorTag,
		}
	}
	return out, nil
}

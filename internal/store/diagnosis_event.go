package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendDiagnosis(ctx context.Context, data DiagnosisEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.DiagnosisEvent.Create().
		SetSequence(seqNum).
		SetStudentID(data.StudentID).
		SetQuestionID(data.QuestionID).
		SetConceptID(data.ConceptID).
		SetTags(data.Tags).
		SetSource(data.Source).
		SetConfidence(data.Confidence).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save diagnosis event: %w", err)
	}
	return nil
}

package store

import (
	"context"
	"fmt"

	"github.com/abhisek/codetutor/ent"
	"github.com/abhisek/codetutor/ent/attemptevent"
)

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) (int64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetStudentID(data.StudentID).
		SetQuestionID(data.QuestionID).
		SetConceptID(data.ConceptID).
		SetQuestionKind(data.QuestionKind).
		SetResponse(data.Response).
		SetCorrect(data.Correct).
		SetTags(data.Tags)

	if data.ExecutionOutput != "" {
		builder = builder.SetExecutionOutput(data.ExecutionOutput)
	}

	if _, err := builder.Save(ctx); err != nil {
		return 0, fmt.Errorf("save attempt event: %w", err)
	}
	return seqNum, nil
}

func (r *eventRepo) Attempts(ctx context.Context, opts QueryOpts) ([]AttemptEventData, error) {
	q := r.client.AttemptEvent.Query()

	if opts.StudentID != "" {
		q = q.Where(attemptevent.StudentID(opts.StudentID))
	}
	if opts.ConceptID != "" {
		q = q.Where(attemptevent.ConceptID(opts.ConceptID))
	}
	if opts.After > 0 {
		q = q.Where(attemptevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(attemptevent.SequenceLTE(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(attemptevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(attemptevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.Order(ent.Asc(attemptevent.FieldSequence)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	out := make([]AttemptEventData, len(rows))
	for i, row := range rows {
		out[i] = AttemptEventData{
			Sequence:        row.Sequence,
			Timestamp:       row.Timestamp,
			StudentID:       row.StudentID,
			QuestionID:      row.QuestionID,
			ConceptID:       row.ConceptID,
			QuestionKind:    row.QuestionKind,
			Response:        row.Response,
			Correct:         row.Correct,
			Tags:            row.Tags,
			ExecutionOutput: row.ExecutionOutput,
		}
	}
	return out, nil
}

package engine

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/codetutor/internal/store"
)

// attemptRecord is the flat export shape for one attempt-log row.
type attemptRecord struct {
	StudentID      string    `json:"student_id"`
	QuestionID     string    `json:"question_id"`
	Concept        string    `json:"concept"`
	Response       string    `json:"response"`
	IsCorrect      bool      `json:"is_correct"`
	Misconceptions []string  `json:"misconceptions"`
	Timestamp      time.Time `json:"timestamp"`
}

// ExportAttemptsJSON writes the raw attempt log as a JSON array.
func (e *Engine) ExportAttemptsJSON(ctx context.Context, w io.Writer) error {
	records, err := e.attemptRecords(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// ExportAttemptsCSV writes the raw attempt log as CSV with a header
// row. Tag lists are semicolon-joined inside their column.
func (e *Engine) ExportAttemptsCSV(ctx context.Context, w io.Writer) error {
	records, err := e.attemptRecords(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{"student_id", "question_id", "concept", "response", "is_correct", "misconceptions", "timestamp"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.StudentID,
			r.QuestionID,
			r.Concept,
			r.Response,
			strconv.FormatBool(r.IsCorrect),
			strings.Join(r.Misconceptions, ";"),
			r.Timestamp.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportReport writes the latest persisted analytics report, computing
// a fresh one when none has been saved yet.
func (e *Engine) ExportReport(ctx context.Context, w io.Writer) error {
	if e.snapshots != nil {
		latest, err := e.snapshots.Latest(ctx)
		if err != nil {
			return err
		}
		if latest != nil {
			_, err = w.Write(append(latest.Data.Report, '\n'))
			return err
		}
	}

	snap, err := e.Snapshot(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

func (e *Engine) attemptRecords(ctx context.Context) ([]attemptRecord, error) {
	attempts, err := e.events.Attempts(ctx, store.QueryOpts{})
	if err != nil {
		return nil, err
	}

	records := make([]attemptRecord, len(attempts))
	for i, a := range attempts {
		records[i] = attemptRecord{
			StudentID:      a.StudentID,
			QuestionID:     a.QuestionID,
			Concept:        a.ConceptID,
			Response:       a.Response,
			IsCorrect:      a.Correct,
			Misconceptions: a.Tags,
			Timestamp:      a.Timestamp,
		}
	}
	return records, nil
}

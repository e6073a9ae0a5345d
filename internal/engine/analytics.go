package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/codetutor/internal/mastery"
	"github.com/abhisek/codetutor/internal/metrics"
	"github.com/abhisek/codetutor/internal/store"
)

// Dashboard serves the instructor analytics boundary.
func (e *Engine) Dashboard(ctx context.Context) (*metrics.Dashboard, error) {
	ds, err := e.loadDataset(ctx)
	if err != nil {
		return nil, err
	}
	dash := metrics.BuildDashboard(e.analytics.Config(), ds)
	return &dash, nil
}

// Snapshot computes a full analytics report up to the current log
// cursor and persists it for later export.
func (e *Engine) Snapshot(ctx context.Context) (*metrics.Snapshot, error) {
	ds, err := e.loadDataset(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := e.analytics.Snapshot(ctx, ds)
	if err != nil {
		return nil, err
	}

	if e.snapshots != nil {
		report, err := json.Marshal(snap)
		if err != nil {
			return nil, fmt.Errorf("marshal report: %w", err)
		}
		cursor, err := e.events.LastSequence(ctx)
		if err != nil {
			return nil, err
		}
		if err := e.snapshots.Save(ctx, &store.Snapshot{
			Sequence:  cursor,
			Timestamp: snap.Cursor,
			Data:      store.SnapshotData{Version: 1, Report: report},
		}); err != nil {
			return nil, err
		}
	}
	return snap, nil
}

// LabelAttempt records an instructor's misconception label for the
// student's most recent attempt on a question, pairing it with the
// system's primary tag for agreement analysis.
func (e *Engine) LabelAttempt(ctx context.Context, studentID, questionID, instructorTag string) error {
	if instructorTag == "" {
		return validation("instructor_tag", "must not be empty")
	}

	attempts, err := e.events.Attempts(ctx, store.QueryOpts{StudentID: studentID})
	if err != nil {
		return err
	}

	var latest *store.AttemptEventData
	for i := range attempts {
		if attempts[i].QuestionID == questionID {
			latest = &attempts[i]
		}
	}
	if latest == nil {
		return validation("question_id", fmt.Sprintf("no attempt by %q on %q", studentID, questionID))
	}

	systemTag := ""
	if len(latest.Tags) > 0 {
		systemTag = latest.Tags[0]
	}

	return e.events.AppendInstructorLabel(ctx, store.InstructorLabelEventData{
		AttemptID:     fmt.Sprintf("%d", latest.Sequence),
		StudentID:     studentID,
		SystemTag:     systemTag,
		InstructorTag: instructorTag,
	})
}

// loadDataset assembles the fixed-cursor analytics input. Everything
// is read up to the sequence observed at entry, so a snapshot may run
// concurrently with live ingestion and simply not see newer events.
func (e *Engine) loadDataset(ctx context.Context) (metrics.Dataset, error) {
	cursor, err := e.events.LastSequence(ctx)
	if err != nil {
		return metrics.Dataset{}, err
	}

	students, err := e.students.All(ctx)
	if err != nil {
		return metrics.Dataset{}, err
	}

	attempts, err := e.events.Attempts(ctx, store.QueryOpts{Before: cursor})
	if err != nil {
		return metrics.Dataset{}, err
	}

	labels, err := e.events.InstructorLabels(ctx)
	if err != nil {
		return metrics.Dataset{}, err
	}

	byTag, err := e.events.ReteachCountsByTag(ctx)
	if err != nil {
		return metrics.Dataset{}, err
	}
	byStudent, err := e.events.ReteachCountsByStudent(ctx)
	if err != nil {
		return metrics.Dataset{}, err
	}

	ds := metrics.Dataset{
		Cursor:         time.Now().UTC(),
		PreScores:      map[string]float64{},
		PostScores:     map[string]float64{},
		ReteachCounts:  byTag,
		StudentReteach: byStudent,
	}

	for _, s := range students {
		ds.Students = append(ds.Students, metrics.Student{
			ID:            s.ID,
			Baseline:      mastery.BaselineLevel(s.Baseline),
			Active:        s.Active,
			MasteryScores: s.MasteryScores,
		})
		if s.PretestScore != nil {
			ds.PreScores[s.ID] = *s.PretestScore
		}
		if s.PosttestScore != nil {
			ds.PostScores[s.ID] = *s.PosttestScore
		}
	}

	for _, a := range attempts {
		ds.Attempts = append(ds.Attempts, metrics.Attempt{
			StudentID:  a.StudentID,
			QuestionID: a.QuestionID,
			ConceptID:  a.ConceptID,
			Response:   a.Response,
			Correct:    a.Correct,
			Tags:       a.Tags,
			Timestamp:  a.Timestamp,
		})
	}

	for _, l := range labels {
		ds.Labeled = append(ds.Labeled, metrics.LabeledAttempt{
			AttemptID:     l.AttemptID,
			SystemTag:     l.SystemTag,
			InstructorTag: l.InstructorTag,
		})
	}

	e.logger.Debug("analytics dataset loaded",
		zap.Int64("cursor", cursor),
		zap.Int("students", len(ds.Students)),
		zap.Int("attempts", len(ds.Attempts)))
	return ds, nil
}

package store

import (
	"context"
	"fmt"

	"github.com/abhisek/codetutor/ent"
	entstudent "github.com/abhisek/codetutor/ent/student"
)

// studentRepo implements StudentRepo using the ent client.
type studentRepo struct {
	client *ent.Client
}

func (r *studentRepo) Create(ctx context.Context, s *Student) error {
	builder := r.client.Student.Create().
		SetStudentID(s.ID).
		SetUsername(s.Username).
		SetBaselineLevel(s.Baseline).
		SetActive(s.Active).
		SetCurrentConcept(s.CurrentConcept).
		SetMasteryScores(s.MasteryScores).
		SetRecentTags(s.RecentTags).
		SetAttemptsOnConcept(s.AttemptsOnConcept).
		SetLastAttemptCorrect(s.LastAttemptCorrect).
		SetLessonDelivered(s.LessonDelivered).
		SetCompleted(s.Completed).
		SetSkipped(s.Skipped)

	if s.PretestScore != nil {
		builder = builder.SetPretestScore(*s.PretestScore)
	}
	if s.PosttestScore != nil {
		builder = builder.SetPosttestScore(*s.PosttestScore)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	s.CreatedAt = row.CreatedAt
	return nil
}

func (r *studentRepo) Get(ctx context.Context, id string) (*Student, error) {
	row, err := r.client.Student.Query().
		Where(entstudent.StudentID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get student: %w", err)
	}
	return entStudentToStudent(row), nil
}

func (r *studentRepo) GetByUsername(ctx context.Context, username string) (*Student, error) {
	row, err := r.client.Student.Query().
		Where(entstudent.Username(username)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get student by username: %w", err)
	}
	return entStudentToStudent(row), nil
}

func (r *studentRepo) All(ctx context.Context) ([]*Student, error) {
	rows, err := r.client.Student.Query().
		Order(ent.Asc(entstudent.FieldUsername)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	out := make([]*Student, len(rows))
	for i, row := range rows {
		out[i] = entStudentToStudent(row)
	}
	return out, nil
}

func (r *studentRepo) Update(ctx context.Context, s *Student) error {
	builder := r.client.Student.Update().
		Where(entstudent.StudentID(s.ID)).
		SetActive(s.Active).
		SetCurrentConcept(s.CurrentConcept).
		SetMasteryScores(s.MasteryScores).
		SetRecentTags(s.RecentTags).
		SetAttemptsOnConcept(s.AttemptsOnConcept).
		SetLastAttemptCorrect(s.LastAttemptCorrect).
		SetLessonDelivered(s.LessonDelivered).
		SetCompleted(s.Completed).
		SetSkipped(s.Skipped)

	if s.PretestScore != nil {
		builder = builder.SetPretestScore(*s.PretestScore)
	}
	if s.PosttestScore != nil {
		builder = builder.SetPosttestScore(*s.PosttestScore)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("update student: no row for id %q", s.ID)
	}
	return nil
}

// entStudentToStudent converts an ent row to the repo type, never
// returning nil maps for score and tag fields.
func entStudentToStudent(row *ent.Student) *Student {
	s := &Student{
		ID:                 row.StudentID,
		Username:           row.Username,
		Baseline:           row.BaselineLevel,
		Active:             row.Active,
		CurrentConcept:     row.CurrentConcept,
		MasteryScores:      row.MasteryScores,
		RecentTags:         row.RecentTags,
		AttemptsOnConcept:  row.AttemptsOnConcept,
		LastAttemptCorrect: row.LastAttemptCorrect,
		LessonDelivered:    row.LessonDelivered,
		Completed:          row.Completed,
		Skipped:            row.Skipped,
		PretestScore:       row.PretestScore,
		PosttestScore:      row.PosttestScore,
		CreatedAt:          row.CreatedAt,
	}
	if s.MasteryScores == nil {
		s.MasteryScores = map[string]float64{}
	}
	return s
}

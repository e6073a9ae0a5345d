package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/codetutor/internal/mastery"
	"github.com/abhisek/codetutor/internal/store"
)

// Register creates a new active student with the given baseline level.
func (e *Engine) Register(ctx context.Context, username string, baseline mastery.BaselineLevel) (*store.Student, error) {
	if username == "" {
		return nil, validation("username", "must not be empty")
	}
	if !mastery.ValidBaseline(baseline) {
		return nil, validation("baseline", fmt.Sprintf("unknown level %q", baseline))
	}

	existing, err := e.students.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, validation("username", fmt.Sprintf("%q is already registered", username))
	}

	stu := &store.Student{
		ID:            uuid.NewString(),
		Username:      username,
		Baseline:      string(baseline),
		Active:        true,
		MasteryScores: map[string]float64{},
	}
	if err := e.students.Create(ctx, stu); err != nil {
		return nil, fmt.Errorf("register student: %w", err)
	}

	e.logger.Info("student registered",
		zap.String("student_id", stu.ID),
		zap.String("baseline", stu.Baseline))
	return stu, nil
}

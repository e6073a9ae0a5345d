package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Assessment phases bracketing the learning loop. The pre score is
// taken at registration time, the post score after the concept graph
// is finished; together they feed the cohort effect-size metric.
const (
	PhasePre  = "pre"
	PhasePost = "post"
)

// RecordAssessment stores a student's pretest or posttest score.
// Recording a phase again overwrites the earlier score.
func (e *Engine) RecordAssessment(ctx context.Context, studentID, phase string, score float64) error {
	if phase != PhasePre && phase != PhasePost {
		return validation("phase", fmt.Sprintf("must be %q or %q, got %q", PhasePre, PhasePost, phase))
	}
	if score < 0 || score > 1 {
		return validation("score", fmt.Sprintf("must be in [0,1], got %v", score))
	}

	mu := e.lockFor(studentID)
	mu.Lock()
	defer mu.Unlock()

	stu, err := e.students.Get(ctx, studentID)
	if err != nil {
		return err
	}
	if stu == nil {
		return validation("student_id", fmt.Sprintf("unknown student %q", studentID))
	}

	if phase == PhasePre {
		stu.PretestScore = &score
	} else {
		stu.PosttestScore = &score
	}
	if err := e.students.Update(ctx, stu); err != nil {
		return err
	}

	e.logger.Info("assessment recorded",
		zap.String("student_id", studentID),
		zap.String("phase", phase),
		zap.Float64("score", score))
	return nil
}

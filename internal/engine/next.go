package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/codetutor/internal/conceptgraph"
	"github.com/abhisek/codetutor/internal/content"
	"github.com/abhisek/codetutor/internal/mastery"
	"github.com/abhisek/codetutor/internal/orchestrator"
	"github.com/abhisek/codetutor/internal/store"
)

// Payload is what one loop step serves to the student.
type Payload struct {
	Decision orchestrator.Decision

	// Lesson is set for TEACH and RETEACH.
	Lesson *content.LessonPayload

	// Question is set for TEST and RETEACH (the follow-up probe).
	Question *content.QuestionPayload
}

// Next evaluates the policy for the student, applies any state
// transition, and serves the corresponding content. Calling Next again
// before attempting the served question is safe: the policy is
// deterministic over the unchanged state.
func (e *Engine) Next(ctx context.Context, studentID string) (*Payload, error) {
	mu := e.lockFor(studentID)
	mu.Lock()
	defer mu.Unlock()

	stu, err := e.students.Get(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if stu == nil {
		return nil, validation("student_id", fmt.Sprintf("unknown student %q", studentID))
	}

	decision := e.orch.Decide(stateFromStudent(stu))
	if err := e.recordDecision(ctx, stu.ID, decision); err != nil {
		return nil, err
	}

	payload := &Payload{Decision: decision}
	switch decision.Action {
	case orchestrator.ActionTeach:
		if err := e.serveTeach(ctx, stu, decision, payload); err != nil {
			return nil, err
		}
	case orchestrator.ActionTest:
		if err := e.serveTest(ctx, stu, decision, payload); err != nil {
			return nil, err
		}
	case orchestrator.ActionReteach:
		if err := e.serveReteach(ctx, stu, decision, payload); err != nil {
			return nil, err
		}
	case orchestrator.ActionAdvance:
		if err := e.applyAdvance(ctx, stu, decision); err != nil {
			return nil, err
		}
	case orchestrator.ActionComplete:
		// Terminal; nothing to serve.
	}

	e.logger.Info("decision served",
		zap.String("student_id", stu.ID),
		zap.String("action", string(decision.Action)),
		zap.String("concept", decision.Concept),
		zap.Bool("struggling", decision.Struggling))
	return payload, nil
}

func (e *Engine) serveTeach(ctx context.Context, stu *store.Student, d orchestrator.Decision, p *Payload) error {
	input, err := e.synthesisInput(stu, d.Concept, nil)
	if err != nil {
		return err
	}
	p.Lesson = e.content.Lesson(ctx, input)

	stu.CurrentConcept = d.Concept
	stu.LessonDelivered = true
	return e.students.Update(ctx, stu)
}

func (e *Engine) serveTest(ctx context.Context, stu *store.Student, d orchestrator.Decision, p *Payload) error {
	input, err := e.synthesisInput(stu, d.Concept, nil)
	if err != nil {
		return err
	}
	input.Kind = questionKindFor(stu.MasteryScores[d.Concept])

	q := e.content.Question(ctx, input)
	e.questions.Store(q.ID, q)
	p.Question = q
	return nil
}

func (e *Engine) serveReteach(ctx context.Context, stu *store.Student, d orchestrator.Decision, p *Payload) error {
	input, err := e.synthesisInput(stu, d.Concept, d.TargetMisconceptions)
	if err != nil {
		return err
	}
	p.Lesson = e.content.Lesson(ctx, input)

	// A remedial lesson comes with a follow-up probe on the same tags.
	input.Kind = questionKindFor(stu.MasteryScores[d.Concept])
	q := e.content.Question(ctx, input)
	e.questions.Store(q.ID, q)
	p.Question = q
	return nil
}

// applyAdvance moves the student past the current concept: into the
// completed set when mastered, into the skipped set when forced at the
// attempt cap. Per-concept loop state resets for the destination.
func (e *Engine) applyAdvance(ctx context.Context, stu *store.Student, d orchestrator.Decision) error {
	if d.Struggling {
		stu.Skipped = append(stu.Skipped, stu.CurrentConcept)
	} else {
		stu.Completed = append(stu.Completed, stu.CurrentConcept)
	}

	stu.CurrentConcept = d.Concept
	stu.AttemptsOnConcept = 0
	stu.LastAttemptCorrect = false
	stu.LessonDelivered = false
	stu.RecentTags = nil
	return e.students.Update(ctx, stu)
}

func (e *Engine) synthesisInput(stu *store.Student, conceptID string, targets []string) (content.SynthesisInput, error) {
	concept, err := conceptgraph.Get(conceptID)
	if err != nil {
		return content.SynthesisInput{}, validation("concept_id", err.Error())
	}
	return content.SynthesisInput{
		ConceptID:            concept.ID,
		ConceptName:          concept.Name,
		TargetMisconceptions: targets,
		Difficulty:           mastery.DifficultyFor(stu.MasteryScores[conceptID]),
		Baseline:             mastery.BaselineLevel(stu.Baseline),
	}, nil
}

// questionKindFor serves MCQs while a concept is fresh and switches to
// coding questions once the student shows footing.
func questionKindFor(score float64) content.QuestionKind {
	if score >= 0.5 {
		return content.KindCoding
	}
	return content.KindMCQ
}

func (e *Engine) recordDecision(ctx context.Context, studentID string, d orchestrator.Decision) error {
	return e.events.AppendDecision(ctx, store.DecisionEventData{
		StudentID:            studentID,
		Action:               string(d.Action),
		ConceptID:            d.Concept,
		Reason:               d.Reason,
		TargetMisconceptions: d.TargetMisconceptions,
		Struggling:           d.Struggling,
	})
}

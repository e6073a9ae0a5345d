package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/codetutor/internal/content"
	"github.com/abhisek/codetutor/internal/diagnosis"
	"github.com/abhisek/codetutor/internal/mastery"
	"github.com/abhisek/codetutor/internal/misconception"
	"github.com/abhisek/codetutor/internal/orchestrator"
	"github.com/abhisek/codetutor/internal/store"
)

// AttemptResult is the ingestion boundary's response.
type AttemptResult struct {
	Correct        bool
	Misconceptions []string
	Feedback       string

	// Decision previews the next loop step after this attempt. Next
	// applies it; the preview and the applied decision are identical
	// because the policy is deterministic over the updated state.
	Decision orchestrator.Decision

	// Sequence is the attempt's position in the event log.
	Sequence int64
}

// Submit ingests one attempt: grade, diagnose, update mastery, append
// to the log, and preview the next decision. Processing is serialized
// per student; concurrent submissions from the same student cannot
// interleave past the mastery update.
func (e *Engine) Submit(ctx context.Context, studentID, questionID, response string) (*AttemptResult, error) {
	if strings.TrimSpace(response) == "" {
		return nil, validation("response", "must not be empty")
	}

	q, ok := e.lookupQuestion(questionID)
	if !ok {
		return nil, validation("question_id", fmt.Sprintf("unknown question %q", questionID))
	}

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

	correct, execOutput, err := e.grade(ctx, q, response)
	if err != nil {
		return nil, err
	}

	tags := e.diagnoser.Diagnose(ctx, diagnosis.Input{
		Question:        q,
		Response:        response,
		ExecutionOutput: execOutput,
	}, correct)

	baseline := mastery.BaselineLevel(stu.Baseline)
	before := mastery.State{
		Score:    stu.MasteryScores[q.ConceptID],
		Attempts: stu.AttemptsOnConcept,
	}
	after := e.tracker.Update(before, correct, baseline, time.Now().UTC())

	seq, err := e.appendAttemptEvents(ctx, stu, q, response, correct, execOutput, tags, before.Score, after.Score)
	if err != nil {
		return nil, err
	}

	stu.MasteryScores[q.ConceptID] = after.Score
	if q.ConceptID == stu.CurrentConcept {
		stu.AttemptsOnConcept++
		stu.LastAttemptCorrect = correct
		if correct {
			stu.RecentTags = nil
		} else {
			stu.RecentTags = tags
		}
	}
	if err := e.students.Update(ctx, stu); err != nil {
		return nil, err
	}

	decision := e.orch.Decide(stateFromStudent(stu))

	e.logger.Info("attempt ingested",
		zap.String("student_id", stu.ID),
		zap.String("question_id", q.ID),
		zap.Bool("correct", correct),
		zap.Strings("tags", tags),
		zap.Float64("score", after.Score))

	return &AttemptResult{
		Correct:        correct,
		Misconceptions: tags,
		Feedback:       feedbackFor(q, correct, tags),
		Decision:       decision,
		Sequence:       seq,
	}, nil
}

func (e *Engine) lookupQuestion(questionID string) (*content.QuestionPayload, bool) {
	v, ok := e.questions.Load(questionID)
	if !ok {
		return nil, false
	}
	return v.(*content.QuestionPayload), true
}

// grade scores the response. MCQ answers must name a declared option
// key; coding answers run through the execution capability when one
// is configured and otherwise grade incorrect with an explanation, so
// the loop never stalls on a missing runner.
func (e *Engine) grade(ctx context.Context, q *content.QuestionPayload, response string) (bool, string, error) {
	switch q.Kind {
	case content.KindMCQ:
		key := strings.ToUpper(strings.TrimSpace(response))
		if _, ok := q.Options[key]; !ok {
			return false, "", validation("response", fmt.Sprintf("%q is not an option key", response))
		}
		return key == q.CorrectKey, "", nil

	case content.KindCoding:
		if e.runner == nil {
			return false, "execution unavailable: no runner configured", nil
		}
		res, err := e.runner.Run(ctx, response, q.TestCases)
		if err != nil {
			// Runner failures are environmental, not the student's
			// fault; grade incorrect and keep the output for diagnosis.
			e.logger.Warn("runner failed", zap.String("question_id", q.ID), zap.Error(err))
			return false, fmt.Sprintf("execution failed: %v", err), nil
		}
		return res.Passed, res.Output, nil

	default:
		return false, "", validation("question_id", fmt.Sprintf("unknown question kind %q", q.Kind))
	}
}

func (e *Engine) appendAttemptEvents(
	ctx context.Context,
	stu *store.Student,
	q *content.QuestionPayload,
	response string,
	correct bool,
	execOutput string,
	tags []string,
	fromScore, toScore float64,
) (int64, error) {
	seq, err := e.events.AppendAttempt(ctx, store.AttemptEventData{
		StudentID:       stu.ID,
		QuestionID:      q.ID,
		ConceptID:       q.ConceptID,
		QuestionKind:    string(q.Kind),
		Response:        response,
		Correct:         correct,
		Tags:            tags,
		ExecutionOutput: execOutput,
	})
	if err != nil {
		return 0, err
	}

	if err := e.events.AppendMastery(ctx, store.MasteryEventData{
		StudentID: stu.ID,
		ConceptID: q.ConceptID,
		FromScore: fromScore,
		ToScore:   toScore,
		Correct:   correct,
		Baseline:  stu.Baseline,
	}); err != nil {
		return 0, err
	}

	if !correct {
		if err := e.events.AppendDiagnosis(ctx, store.DiagnosisEventData{
			StudentID:  stu.ID,
			QuestionID: q.ID,
			ConceptID:  q.ConceptID,
			Tags:       tags,
			Source:     diagnosisSource(q),
		}); err != nil {
			return 0, err
		}
	}
	return seq, nil
}

func diagnosisSource(q *content.QuestionPayload) string {
	if q.Kind == content.KindMCQ {
		return "mcq-map"
	}
	return "signature"
}

// feedbackFor builds the student-facing message: the explanation on a
// correct answer, the remediation hint for the primary tag otherwise.
func feedbackFor(q *content.QuestionPayload, correct bool, tags []string) string {
	if correct {
		if q.Explanation != "" {
			return "Correct. " + q.Explanation
		}
		return "Correct."
	}

	for _, tag := range tags {
		if m := misconception.Get(tag); m != nil && m.RemediationHint != "" {
			return fmt.Sprintf("Not quite. %s", m.RemediationHint)
		}
	}
	if q.Explanation != "" {
		return "Not quite. " + q.Explanation
	}
	return "Not quite. Review the lesson and try again."
}

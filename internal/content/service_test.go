package content

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// scriptedSynthesizer returns canned results or errors in FIFO order.
type scriptedSynthesizer struct {
	lessons   []lessonResult
	questions []questionResult
	calls     atomic.Int32
}

type lessonResult struct {
	payload *LessonPayload
	err     error
}

type questionResult struct {
	payload *QuestionPayload
	err     error
}

func (s *scriptedSynthesizer) SynthesizeLesson(_ context.Context, _ SynthesisInput) (*LessonPayload, error) {
	s.calls.Add(1)
	if len(s.lessons) == 0 {
		return nil, errors.New("no scripted lesson")
	}
	r := s.lessons[0]
	s.lessons = s.lessons[1:]
	return r.payload, r.err
}

func (s *scriptedSynthesizer) SynthesizeQuestion(_ context.Context, _ SynthesisInput) (*QuestionPayload, error) {
	s.calls.Add(1)
	if len(s.questions) == 0 {
		return nil, errors.New("no scripted question")
	}
	r := s.questions[0]
	s.questions = s.questions[1:]
	return r.payload, r.err
}

func goodLesson() *LessonPayload {
	return &LessonPayload{
		ConceptID: "loops",
		Title:     "Loops",
		Bullets:   []string{"for loops iterate over sequences"},
	}
}

func testConfig() Config {
	return Config{MaxRetries: 2, SynthesisTimeout: time.Second, MaxTokens: 256, Temperature: 0.7}
}

func TestService_LessonFirstAttemptSucceeds(t *testing.T) {
	synth := &scriptedSynthesizer{lessons: []lessonResult{{payload: goodLesson()}}}
	svc := NewService(synth, testConfig(), nil)

	l := svc.Lesson(context.Background(), SynthesisInput{ConceptID: "loops"})
	if l.Fallback {
		t.Error("successful synthesis should not be marked fallback")
	}
	if got := synth.calls.Load(); got != 1 {
		t.Errorf("synthesis calls = %d, want 1", got)
	}
}

func TestService_TimeoutFallsBackToVerifiedPayload(t *testing.T) {
	// Every attempt times out; the service must exhaust the budget and
	// serve a seed-bank payload that passes verification.
	synth := &scriptedSynthesizer{
		lessons: []lessonResult{
			{err: context.DeadlineExceeded},
			{err: context.DeadlineExceeded},
			{err: context.DeadlineExceeded},
		},
	}
	cfg := testConfig()
	svc := NewService(synth, cfg, nil)

	input := SynthesisInput{ConceptID: "loops", ConceptName: "Loops"}
	l := svc.Lesson(context.Background(), input)

	if !l.Fallback {
		t.Fatal("expected fallback payload after repeated timeouts")
	}
	if err := NewVerifier().VerifyLesson(l, input); err != nil {
		t.Errorf("fallback payload failed verification: %v", err)
	}
	if got := synth.calls.Load(); got != int32(cfg.MaxRetries+1) {
		t.Errorf("synthesis calls = %d, want %d (bounded budget)", got, cfg.MaxRetries+1)
	}
}

func TestService_VerificationFailureRetriesThenSucceeds(t *testing.T) {
	bad := &LessonPayload{ConceptID: "loops", Title: "Loops"} // no bullets
	synth := &scriptedSynthesizer{
		lessons: []lessonResult{{payload: bad}, {payload: goodLesson()}},
	}
	svc := NewService(synth, testConfig(), nil)

	l := svc.Lesson(context.Background(), SynthesisInput{ConceptID: "loops"})
	if l.Fallback {
		t.Error("expected live payload after one retry")
	}
	if got := synth.calls.Load(); got != 2 {
		t.Errorf("synthesis calls = %d, want 2", got)
	}
}

func TestService_CallerCancellationStopsRetrying(t *testing.T) {
	synth := &scriptedSynthesizer{
		lessons: []lessonResult{
			{err: context.Canceled},
			{payload: goodLesson()},
		},
	}
	svc := NewService(synth, testConfig(), nil)

	l := svc.Lesson(context.Background(), SynthesisInput{ConceptID: "loops", ConceptName: "Loops"})
	if !l.Fallback {
		t.Error("cancellation should go straight to fallback, not retry")
	}
	if got := synth.calls.Load(); got != 1 {
		t.Errorf("synthesis calls = %d, want 1", got)
	}
}

func TestService_QuestionFallbackByKind(t *testing.T) {
	synth := &scriptedSynthesizer{} // always errors
	svc := NewService(synth, testConfig(), nil)

	input := SynthesisInput{ConceptID: "loops", ConceptName: "Loops", Kind: KindCoding}
	q := svc.Question(context.Background(), input)
	if !q.Fallback {
		t.Fatal("expected fallback question")
	}
	if q.Kind != KindCoding {
		t.Errorf("fallback kind = %q, want coding", q.Kind)
	}
	if err := NewVerifier().VerifyQuestion(q, input); err != nil {
		t.Errorf("fallback question failed verification: %v", err)
	}
}

// Retry budgets are per-call: a timed-out call must not leak attempts
// into the next call's budget.
func TestService_RetryBudgetResetsPerCall(t *testing.T) {
	synth := &scriptedSynthesizer{
		lessons: []lessonResult{
			{err: context.DeadlineExceeded},
			{err: context.DeadlineExceeded},
			{err: context.DeadlineExceeded},
			{payload: goodLesson()},
		},
	}
	svc := NewService(synth, testConfig(), nil)

	first := svc.Lesson(context.Background(), SynthesisInput{ConceptID: "loops", ConceptName: "Loops"})
	if !first.Fallback {
		t.Fatal("first call should fall back")
	}

	second := svc.Lesson(context.Background(), SynthesisInput{ConceptID: "loops", ConceptName: "Loops"})
	if second.Fallback {
		t.Error("second call should get a fresh budget and succeed")
	}
}

package content

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Service wraps a Synthesizer with verification, bounded retry, and
// deterministic seed-bank fallback. Synthesis failures are non-fatal:
// both Lesson and Question always return a verified payload.
type Service struct {
	synth    Synthesizer
	verifier *Verifier
	bank     *SeedBank
	cfg      Config
	logger   *zap.Logger
}

// NewService creates a content service.
func NewService(synth Synthesizer, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		synth:    synth,
		verifier: NewVerifier(),
		bank:     NewSeedBank(),
		cfg:      cfg,
		logger:   logger,
	}
}

// Lesson synthesizes and verifies a lesson payload, retrying within the
// budget and falling back to the seed bank.
func (s *Service) Lesson(ctx context.Context, input SynthesisInput) *LessonPayload {
	budget := s.cfg.MaxRetries + 1
	for attempt := 0; attempt < budget; attempt++ {
		payload, err := s.synthesizeLesson(ctx, input)
		if err != nil {
			s.logSynthesisFailure("lesson", input.ConceptID, attempt, err)
			if !s.shouldRetry(err) {
				break
			}
			continue
		}

		if verr := s.verifier.VerifyLesson(payload, input); verr != nil {
			s.logger.Warn("lesson verification failed",
				zap.String("concept", input.ConceptID),
				zap.Int("attempt", attempt),
				zap.String("check", verr.Check),
				zap.String("message", verr.Message))
			if !verr.Retryable {
				break
			}
			continue
		}

		return payload
	}

	s.logger.Info("serving fallback lesson", zap.String("concept", input.ConceptID))
	return s.bank.Lesson(input)
}

// Question synthesizes and verifies a question payload, retrying within
// the budget and falling back to the seed bank.
func (s *Service) Question(ctx context.Context, input SynthesisInput) *QuestionPayload {
	budget := s.cfg.MaxRetries + 1
	for attempt := 0; attempt < budget; attempt++ {
		payload, err := s.synthesizeQuestion(ctx, input)
		if err != nil {
			s.logSynthesisFailure("question", input.ConceptID, attempt, err)
			if !s.shouldRetry(err) {
				break
			}
			continue
		}

		if verr := s.verifier.VerifyQuestion(payload, input); verr != nil {
			s.logger.Warn("question verification failed",
				zap.String("concept", input.ConceptID),
				zap.Int("attempt", attempt),
				zap.String("check", verr.Check),
				zap.String("message", verr.Message))
			if !verr.Retryable {
				break
			}
			continue
		}

		return payload
	}

	s.logger.Info("serving fallback question",
		zap.String("concept", input.ConceptID),
		zap.String("kind", string(input.Kind)))
	return s.bank.Question(input)
}

// synthesizeLesson runs one bounded synthesis attempt.
func (s *Service) synthesizeLesson(ctx context.Context, input SynthesisInput) (*LessonPayload, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.SynthesisTimeout)
	defer cancel()

	payload, err := s.synth.SynthesizeLesson(ctx, input)
	if err != nil {
		return nil, s.mapSynthesisError(err)
	}
	return payload, nil
}

func (s *Service) synthesizeQuestion(ctx context.Context, input SynthesisInput) (*QuestionPayload, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.SynthesisTimeout)
	defer cancel()

	payload, err := s.synth.SynthesizeQuestion(ctx, input)
	if err != nil {
		return nil, s.mapSynthesisError(err)
	}
	return payload, nil
}

func (s *Service) mapSynthesisError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrSynthesisTimeout, err)
	}
	return err
}

// shouldRetry reports whether a synthesis failure is worth another
// attempt. Caller cancellation is terminal; everything else, including
// per-attempt timeouts, is retried within the budget.
func (s *Service) shouldRetry(err error) bool {
	return !errors.Is(err, context.Canceled)
}

func (s *Service) logSynthesisFailure(kind, concept string, attempt int, err error) {
	if errors.Is(err, ErrSynthesisTimeout) {
		s.logger.Warn("synthesis timed out",
			zap.String("kind", kind),
			zap.String("concept", concept),
			zap.Int("attempt", attempt))
		return
	}
	s.logger.Warn("synthesis failed",
		zap.String("kind", kind),
		zap.String("concept", concept),
		zap.Int("attempt", attempt),
		zap.Error(err))
}

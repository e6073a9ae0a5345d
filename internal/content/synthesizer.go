package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/codetutor/internal/llm"
)

// Synthesizer produces lesson and question payloads.
// Implementations may be nondeterministic; verification and fallback
// happen in the Service wrapping them.
type Synthesizer interface {
	// SynthesizeLesson produces an unverified lesson payload.
	SynthesizeLesson(ctx context.Context, input SynthesisInput) (*LessonPayload, error)

	// SynthesizeQuestion produces an unverified question payload of
	// input.Kind.
	SynthesizeQuestion(ctx context.Context, input SynthesisInput) (*QuestionPayload, error)
}

// LLMSynthesizer implements Synthesizer using the LLM provider.
type LLMSynthesizer struct {
	provider llm.Provider
	cfg      Config
}

// NewLLMSynthesizer creates a synthesizer backed by the given provider.
func NewLLMSynthesizer(provider llm.Provider, cfg Config) *LLMSynthesizer {
	return &LLMSynthesizer{provider: provider, cfg: cfg}
}

// lessonOutput is the raw LLM lesson response before verification.
type lessonOutput struct {
	Title         string   `json:"title"`
	Bullets       []string `json:"bullets"`
	WorkedExample string   `json:"worked_example"`
	Pitfall       string   `json:"pitfall"`
	QuickCheck    string   `json:"quick_check"`
}

func (s *LLMSynthesizer) SynthesizeLesson(ctx context.Context, input SynthesisInput) (*LessonPayload, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeLessonSynthesis)

	req := llm.Request{
		System: lessonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildLessonMessage(input)},
		},
		Schema:      LessonSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("lesson synthesis: %w", err)
	}

	var out lessonOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse lesson response: %w", err)
	}

	return &LessonPayload{
		ConceptID:            input.ConceptID,
		Title:                out.Title,
		Bullets:              out.Bullets,
		WorkedExample:        out.WorkedExample,
		Pitfall:              out.Pitfall,
		QuickCheck:           out.QuickCheck,
		TargetMisconceptions: input.TargetMisconceptions,
	}, nil
}

// mcqOutput is the raw LLM MCQ response before verification.
type mcqOutput struct {
	Prompt               string            `json:"prompt"`
	Options              map[string]string `json:"options"`
	CorrectAnswer        string            `json:"correct_answer"`
	OptionMisconceptions map[string]string `json:"option_misconceptions"`
	Explanation          string            `json:"explanation"`
}

// codingOutput is the raw LLM coding response before verification.
type codingOutput struct {
	Prompt      string `json:"prompt"`
	StarterCode string `json:"starter_code"`
	TestCases   []struct {
		Input    string `json:"input"`
		Expected string `json:"expected"`
	} `json:"test_cases"`
	Solution    string `json:"solution"`
	Explanation string `json:"explanation"`
}

func (s *LLMSynthesizer) SynthesizeQuestion(ctx context.Context, input SynthesisInput) (*QuestionPayload, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionSynthesis)

	if input.Kind == KindCoding {
		return s.synthesizeCoding(ctx, input)
	}
	return s.synthesizeMCQ(ctx, input)
}

func (s *LLMSynthesizer) synthesizeMCQ(ctx context.Context, input SynthesisInput) (*QuestionPayload, error) {
	req := llm.Request{
		System: mcqSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuestionMessage(input)},
		},
		Schema:      MCQSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("mcq synthesis: %w", err)
	}

	var out mcqOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse mcq response: %w", err)
	}

	return &QuestionPayload{
		ID:                   uuid.NewString(),
		ConceptID:            input.ConceptID,
		Kind:                 KindMCQ,
		Difficulty:           input.Difficulty,
		Prompt:               out.Prompt,
		Options:              out.Options,
		CorrectKey:           out.CorrectAnswer,
		OptionMisconceptions: out.OptionMisconceptions,
		Explanation:          out.Explanation,
		TargetMisconceptions: input.TargetMisconceptions,
	}, nil
}

func (s *LLMSynthesizer) synthesizeCoding(ctx context.Context, input SynthesisInput) (*QuestionPayload, error) {
	req := llm.Request{
		System: codingSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuestionMessage(input)},
		},
		Schema:      CodingSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("coding synthesis: %w", err)
	}

	var out codingOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse coding response: %w", err)
	}

	cases := make([]TestCase, len(out.TestCases))
	for i, tc := range out.TestCases {
		cases[i] = TestCase{Input: tc.Input, Expected: tc.Expected}
	}

	return &QuestionPayload{
		ID:                   uuid.NewString(),
		ConceptID:            input.ConceptID,
		Kind:                 KindCoding,
		Difficulty:           input.Difficulty,
		Prompt:               out.Prompt,
		StarterCode:          out.StarterCode,
		Solution:             out.Solution,
		TestCases:            cases,
		Explanation:          out.Explanation,
		TargetMisconceptions: input.TargetMisconceptions,
	}, nil
}

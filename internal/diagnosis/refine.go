package diagnosis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/abhisek/codetutor/internal/llm"
	"github.com/abhisek/codetutor/internal/misconception"
)

// RefinerConfig holds configuration for LLM-based refinement.
type RefinerConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultRefinerConfig returns sensible defaults.
func DefaultRefinerConfig() RefinerConfig {
	return RefinerConfig{
		MaxTokens:   256,
		Temperature: 0.0,
	}
}

// Refiner performs LLM-based misconception identification for free-form
// responses that no signature check matched. Grading logic never depends
// on it: the Diagnoser caches results by normalized response so repeated
// diagnosis is stable.
type Refiner struct {
	provider llm.Provider
	cfg      RefinerConfig
}

// NewRefiner creates an LLM-backed refiner.
func NewRefiner(provider llm.Provider, cfg RefinerConfig) *Refiner {
	return &Refiner{provider: provider, cfg: cfg}
}

// refineRequest is the input for LLM misconception identification.
type refineRequest struct {
	ConceptID    string
	QuestionText string
	Response     string
	Candidates   []*misconception.Misconception
}

// refineOutput is the raw LLM response.
type refineOutput struct {
	MisconceptionID *string `json:"misconception_id"`
	Confidence      float64 `json:"confidence"`
	Reasoning       string  `json:"reasoning"`
}

// Refine asks the LLM whether the response matches a candidate
// misconception. Returns ("", 0, nil) when there is no match.
func (r *Refiner) Refine(ctx context.Context, req refineRequest) (string, float64, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeDiagnosisRefinement)

	userMsg, err := buildRefineMessage(req)
	if err != nil {
		return "", 0, fmt.Errorf("build refinement prompt: %w", err)
	}

	llmReq := llm.Request{
		System: refineSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      RefineSchema,
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: r.cfg.Temperature,
	}

	resp, err := r.provider.Generate(ctx, llmReq)
	if err != nil {
		return "", 0, fmt.Errorf("LLM refinement failed: %w", err)
	}

	var raw refineOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return "", 0, fmt.Errorf("parse refinement response: %w", err)
	}

	if raw.MisconceptionID == nil {
		return "", raw.Confidence, nil
	}

	// Discard IDs outside the candidate list.
	for _, c := range req.Candidates {
		if c.ID == *raw.MisconceptionID {
			return c.ID, raw.Confidence, nil
		}
	}
	return "", raw.Confidence, nil
}

const refineSystemPrompt = `You are an expert programming education diagnostician. A student answered a programming question incorrectly. Determine whether their error matches a known misconception pattern.

Instructions:
- If the student's error clearly matches one of the listed misconceptions, return its ID.
- If the error does not match any listed misconception, return null for misconception_id.
- Do NOT invent new misconception IDs. Only use IDs from the list provided.
- Provide a confidence score (0.0-1.0) reflecting how well the error matches.
- Keep reasoning to one sentence.`

var refineUserTemplate = template.Must(template.New("refine").Parse(`Concept: {{.ConceptID}}
Question: {{.QuestionText}}
Student's response:
{{.Response}}

Known misconceptions for this concept:
{{range .Candidates}}- {{.ID}}: {{.Description}}
{{end}}`))

func buildRefineMessage(req refineRequest) (string, error) {
	var buf bytes.Buffer
	if err := refineUserTemplate.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RefineSchema defines the JSON schema for LLM refinement responses.
var RefineSchema = &llm.Schema{
	Name:        "misconception-refinement",
	Description: "Classification of an incorrect response against a known misconception taxonomy",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"misconception_id": map[string]any{
				"type":        []any{"string", "null"},
				"description": "The ID of the matching misconception from the candidate list, or null if no match",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "Confidence score (0.0-1.0) reflecting how well the error matches",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "Brief one-sentence explanation of the classification",
			},
		},
		"required":             []any{"misconception_id", "confidence", "reasoning"},
		"additionalProperties": false,
	},
}

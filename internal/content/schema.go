package content

import "github.com/abhisek/codetutor/internal/llm"

// LessonSchema defines the JSON schema for synthesized micro-lessons.
var LessonSchema = &llm.Schema{
	Name:        "micro-lesson",
	Description: "A concise micro-lesson teaching one programming concept",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short lesson heading",
			},
			"bullets": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    1,
				"description": "3-6 short explanation points",
			},
			"worked_example": map[string]any{
				"type":        "string",
				"description": "A commented Python code example",
			},
			"pitfall": map[string]any{
				"type":        "string",
				"description": "One common mistake to avoid",
			},
			"quick_check": map[string]any{
				"type":        "string",
				"description": "A simple question to verify understanding",
			},
		},
		"required":             []any{"title", "bullets", "worked_example", "pitfall", "quick_check"},
		"additionalProperties": false,
	},
}

// MCQSchema defines the JSON schema for synthesized multiple-choice questions.
var MCQSchema = &llm.Schema{
	Name:        "mcq-question",
	Description: "A multiple-choice programming question with misconception-based distractors",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt": map[string]any{
				"type":        "string",
				"description": "The question text, including any code snippet",
			},
			"options": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"A": map[string]any{"type": "string"},
					"B": map[string]any{"type": "string"},
					"C": map[string]any{"type": "string"},
					"D": map[string]any{"type": "string"},
				},
				"required":             []any{"A", "B", "C", "D"},
				"additionalProperties": false,
				"description":          "Four answer options keyed A-D",
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"enum":        []any{"A", "B", "C", "D"},
				"description": "The correct option key",
			},
			"option_misconceptions": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type": "string",
				},
				"description": "Map from each incorrect option key to the misconception tag its distractor targets. Only use tags from the provided list.",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Why the correct answer is correct, shown after answering",
			},
		},
		"required":             []any{"prompt", "options", "correct_answer", "option_misconceptions", "explanation"},
		"additionalProperties": false,
	},
}

// CodingSchema defines the JSON schema for synthesized coding questions.
var CodingSchema = &llm.Schema{
	Name:        "coding-question",
	Description: "A coding exercise with starter scaffold, test cases, and reference solution",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt": map[string]any{
				"type":        "string",
				"description": "Problem description with clear requirements",
			},
			"starter_code": map[string]any{
				"type":        "string",
				"description": "Python starter scaffold the student fills in (a def with a pass body)",
			},
			"test_cases": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"input":    map[string]any{"type": "string"},
						"expected": map[string]any{"type": "string"},
					},
					"required":             []any{"input", "expected"},
					"additionalProperties": false,
				},
				"minItems":    1,
				"description": "Input/expected pairs used to grade submissions",
			},
			"solution": map[string]any{
				"type":        "string",
				"description": "Reference solution passing all test cases",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Explanation of the approach, shown after answering",
			},
		},
		"required":             []any{"prompt", "starter_code", "test_cases", "solution", "explanation"},
		"additionalProperties": false,
	},
}

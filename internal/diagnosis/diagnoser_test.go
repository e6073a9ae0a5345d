package diagnosis

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/abhisek/codetutor/internal/content"
	"github.com/abhisek/codetutor/internal/llm"
)

func mcqQuestion() *content.QuestionPayload {
	return &content.QuestionPayload{
		ID:        "q1",
		ConceptID: "loops",
		Kind:      content.KindMCQ,
		Prompt:    "What does range(2, 5) produce?",
		Options: map[string]string{
			"A": "2 3 4 5", "B": "2 3 4", "C": "1 2 3 4", "D": "3 4 5",
		},
		CorrectKey: "B",
		OptionMisconceptions: map[string]string{
			"A": "off_by_one",
			"C": "off_by_one",
		},
	}
}

func codingQuestion() *content.QuestionPayload {
	return &content.QuestionPayload{
		ID:        "q2",
		ConceptID: "loops",
		Kind:      content.KindCoding,
		Prompt:    "Count the even numbers in a list.",
	}
}

func TestDiagnose_CorrectAnswerYieldsNoTags(t *testing.T) {
	d := NewDiagnoser(DefaultConfig(), nil, nil)
	tags := d.Diagnose(context.Background(), Input{Question: mcqQuestion(), Response: "B"}, true)
	if tags != nil {
		t.Errorf("correct answer should yield no tags, got %v", tags)
	}
}

func TestDiagnose_MCQMappedOption(t *testing.T) {
	d := NewDiagnoser(DefaultConfig(), nil, nil)

	tags := d.Diagnose(context.Background(), Input{Question: mcqQuestion(), Response: "A"}, false)
	if len(tags) != 1 || tags[0] != "off_by_one" {
		t.Errorf("got %v, want [off_by_one]", tags)
	}

	// Lowercase key normalizes to the same mapping.
	tags = d.Diagnose(context.Background(), Input{Question: mcqQuestion(), Response: " a "}, false)
	if len(tags) != 1 || tags[0] != "off_by_one" {
		t.Errorf("normalized key: got %v, want [off_by_one]", tags)
	}
}

func TestDiagnose_MCQUnmappedOptionIsUnclassified(t *testing.T) {
	d := NewDiagnoser(DefaultConfig(), nil, nil)
	tags := d.Diagnose(context.Background(), Input{Question: mcqQuestion(), Response: "D"}, false)
	if len(tags) != 1 || tags[0] != "unclassified" {
		t.Errorf("got %v, want [unclassified]", tags)
	}
}

func TestDiagnose_SignatureChecks(t *testing.T) {
	d := NewDiagnoser(DefaultConfig(), nil, nil)

	cases := []struct {
		name string
		code string
		want string
	}{
		{"assignment in condition", "def f(x):\n    if x = 5:\n        return True\n    return False", "assignment_vs_equality"},
		{"range len plus one", "def f(nums):\n    total = 0\n    for i in range(len(nums) + 1):\n        total += nums[i]\n    return total", "off_by_one"},
		{"index at len", "def f(nums):\n    return nums[len(nums)]", "array_indexing_error"},
		{"while true no break", "def f():\n    while True:\n        x = 1", "infinite_loop"},
		{"string index assign", "def f(s):\n    s[0] = 'x'\n    return s", "string_immutability"},
		{"print instead of return", "def f(x):\n    print(x * 2)", "return_vs_print"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tags := d.Diagnose(context.Background(), Input{Question: codingQuestion(), Response: c.code}, false)
			if len(tags) != 1 || tags[0] != c.want {
				t.Errorf("got %v, want [%s]", tags, c.want)
			}
		})
	}
}

func TestDiagnose_ExecutionOutputOutranksStructural(t *testing.T) {
	d := NewDiagnoser(DefaultConfig(), nil, nil)

	// Code matches print-instead-of-return structurally, but the runtime
	// IndexError is more diagnostic.
	input := Input{
		Question:        codingQuestion(),
		Response:        "def f(nums):\n    print(nums[5])",
		ExecutionOutput: "Traceback (most recent call last):\nIndexError: list index out of range",
	}
	tags := d.Diagnose(context.Background(), input, false)
	if len(tags) != 1 || tags[0] != "array_indexing_error" {
		t.Errorf("got %v, want [array_indexing_error]", tags)
	}
}

func TestDiagnose_ExecutionTimeout(t *testing.T) {
	d := NewDiagnoser(DefaultConfig(), nil, nil)
	input := Input{
		Question:        codingQuestion(),
		Response:        "def f(n):\n    return f(n)",
		ExecutionOutput: "execution timeout after 5s",
	}
	tags := d.Diagnose(context.Background(), input, false)
	if len(tags) != 1 || tags[0] != "infinite_loop" {
		t.Errorf("got %v, want [infinite_loop]", tags)
	}
}

func TestDiagnose_NoMatchIsUnclassified(t *testing.T) {
	d := NewDiagnoser(DefaultConfig(), nil, nil)
	tags := d.Diagnose(context.Background(), Input{
		Question: codingQuestion(),
		Response: "def f(nums):\n    return sum(nums)",
	}, false)
	if len(tags) != 1 || tags[0] != "unclassified" {
		t.Errorf("got %v, want [unclassified]", tags)
	}
}

func TestDiagnose_TopKCapsOutput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TopK = 2
	d := NewDiagnoser(cfg, nil, nil)

	// Matches both index-at-len and print-instead-of-return.
	code := "def f(nums):\n    print(nums[len(nums)])"
	tags := d.Diagnose(context.Background(), Input{Question: codingQuestion(), Response: code}, false)
	if len(tags) != 2 {
		t.Fatalf("got %d tags, want 2: %v", len(tags), tags)
	}
	// Higher specificity first.
	if tags[0] != "array_indexing_error" || tags[1] != "return_vs_print" {
		t.Errorf("got %v, want [array_indexing_error return_vs_print]", tags)
	}
}

func TestDiagnose_ConfidenceThresholdFilters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConfidenceThreshold = 0.95
	d := NewDiagnoser(cfg, nil, nil)

	// print-instead-of-return has confidence 0.7, below the threshold.
	tags := d.Diagnose(context.Background(), Input{
		Question: codingQuestion(),
		Response: "def f(x):\n    print(x)",
	}, false)
	if len(tags) != 1 || tags[0] != "unclassified" {
		t.Errorf("got %v, want [unclassified]", tags)
	}
}

func TestDiagnose_Determinism(t *testing.T) {
	d := NewDiagnoser(DefaultConfig(), nil, nil)
	input := Input{
		Question: codingQuestion(),
		Response: "def f(nums):\n    for i in range(len(nums) + 1):\n        print(nums[i])",
	}

	first := d.Diagnose(context.Background(), input, false)
	for i := 0; i < 10; i++ {
		got := d.Diagnose(context.Background(), input, false)
		if !reflect.DeepEqual(got, first) {
			t.Fatalf("call %d diverged: %v vs %v", i, got, first)
		}
	}
}

func TestDiagnose_RefinementIsCached(t *testing.T) {
	resp := json.RawMessage(`{"misconception_id":"wrong_loop_condition","confidence":0.8,"reasoning":"loop exits too early"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})

	refiner := NewRefiner(mock, DefaultRefinerConfig())
	d := NewDiagnoser(DefaultConfig(), refiner, nil)

	// No signature check matches this code, so refinement runs.
	input := Input{
		Question: codingQuestion(),
		Response: "def f(nums):\n    i = 0\n    while i < len(nums) - 1:\n        i += 1\n    return i",
	}

	first := d.Diagnose(context.Background(), input, false)
	if len(first) != 1 || first[0] != "wrong_loop_condition" {
		t.Fatalf("got %v, want [wrong_loop_condition]", first)
	}

	// The mock queue is empty now; a cache miss would yield a provider
	// error and an unclassified tag.
	second := d.Diagnose(context.Background(), input, false)
	if !reflect.DeepEqual(second, first) {
		t.Errorf("cached result differs: %v vs %v", second, first)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", mock.CallCount())
	}

	// Whitespace-only reformatting hits the same cache entry.
	reformatted := input
	reformatted.Response = "def f(nums):\n\n    i = 0\n    while i < len(nums) - 1:\n        i  +=  1\n    return i"
	third := d.Diagnose(context.Background(), reformatted, false)
	if !reflect.DeepEqual(third, first) {
		t.Errorf("normalized cache key missed: %v vs %v", third, first)
	}
}

func TestDiagnose_RefinementBelowThresholdIsUnclassified(t *testing.T) {
	resp := json.RawMessage(`{"misconception_id":"wrong_loop_condition","confidence":0.3,"reasoning":"weak match"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})

	d := NewDiagnoser(DefaultConfig(), NewRefiner(mock, DefaultRefinerConfig()), nil)
	tags := d.Diagnose(context.Background(), Input{
		Question: codingQuestion(),
		Response: "def f(nums):\n    return nums",
	}, false)
	if len(tags) != 1 || tags[0] != "unclassified" {
		t.Errorf("got %v, want [unclassified]", tags)
	}
}

package diagnosis

import (
	"regexp"
	"strings"
)

// SignatureCheck is a structural heuristic for one known bug class in
// free-form code responses. Implementations are stateless.
type SignatureCheck interface {
	// Name returns a short identifier for logging.
	Name() string

	// Tag returns the misconception tag this check detects.
	Tag() string

	// Specificity orders competing matches: higher means narrower.
	Specificity() int

	// Match returns a confidence in [0,1], 0 if the pattern is absent.
	Match(code string) float64
}

// DefaultSignatureChecks returns the signature registry in insertion
// order. Order matters only as the final tie-breaker; specificity and
// severity are applied first.
func DefaultSignatureChecks() []SignatureCheck {
	return []SignatureCheck{
		&assignmentInConditionCheck{},
		&rangeOffByOneCheck{},
		&indexAtLenCheck{},
		&whileTrueNoBreakCheck{},
		&stringIndexAssignCheck{},
		&printInsteadOfReturnCheck{},
	}
}

var assignmentInConditionRe = regexp.MustCompile(`(?m)^\s*(?:if|elif|while)\s+[A-Za-z_]\w*\s*=[^=]`)

// assignmentInConditionCheck flags a single = inside a condition.
type assignmentInConditionCheck struct{}

func (c *assignmentInConditionCheck) Name() string     { return "assignment-in-condition" }
func (c *assignmentInConditionCheck) Tag() string      { return "assignment_vs_equality" }
func (c *assignmentInConditionCheck) Specificity() int { return 90 }

func (c *assignmentInConditionCheck) Match(code string) float64 {
	if assignmentInConditionRe.MatchString(code) {
		return 0.9
	}
	return 0
}

var (
	rangeLenPlusOneRe = regexp.MustCompile(`range\(\s*len\(\w+\)\s*\+\s*1\s*\)`)
	lessEqualLenRe    = regexp.MustCompile(`<=\s*len\(`)
)

// rangeOffByOneCheck flags loop bounds that overrun by one.
type rangeOffByOneCheck struct{}

func (c *rangeOffByOneCheck) Name() string     { return "range-off-by-one" }
func (c *rangeOffByOneCheck) Tag() string      { return "off_by_one" }
func (c *rangeOffByOneCheck) Specificity() int { return 85 }

func (c *rangeOffByOneCheck) Match(code string) float64 {
	if rangeLenPlusOneRe.MatchString(code) || lessEqualLenRe.MatchString(code) {
		return 0.85
	}
	return 0
}

var indexAtLenRe = regexp.MustCompile(`\w+\[\s*len\(\w+\)\s*\]`)

// indexAtLenCheck flags direct indexing at len(list).
type indexAtLenCheck struct{}

func (c *indexAtLenCheck) Name() string     { return "index-at-len" }
func (c *indexAtLenCheck) Tag() string      { return "array_indexing_error" }
func (c *indexAtLenCheck) Specificity() int { return 88 }

func (c *indexAtLenCheck) Match(code string) float64 {
	if indexAtLenRe.MatchString(code) {
		return 0.9
	}
	return 0
}

// whileTrueNoBreakCheck flags an unconditional loop with no exit.
type whileTrueNoBreakCheck struct{}

func (c *whileTrueNoBreakCheck) Name() string     { return "while-true-no-break" }
func (c *whileTrueNoBreakCheck) Tag() string      { return "infinite_loop" }
func (c *whileTrueNoBreakCheck) Specificity() int { return 70 }

func (c *whileTrueNoBreakCheck) Match(code string) float64 {
	if strings.Contains(code, "while True") && !strings.Contains(code, "break") &&
		!strings.Contains(code, "return") {
		return 0.8
	}
	return 0
}

var stringIndexAssignRe = regexp.MustCompile(`\w+\[\s*-?\d+\s*\]\s*=\s*['"]`)

// stringIndexAssignCheck flags in-place character assignment.
type stringIndexAssignCheck struct{}

func (c *stringIndexAssignCheck) Name() string     { return "string-index-assign" }
func (c *stringIndexAssignCheck) Tag() string      { return "string_immutability" }
func (c *stringIndexAssignCheck) Specificity() int { return 80 }

func (c *stringIndexAssignCheck) Match(code string) float64 {
	if stringIndexAssignRe.MatchString(code) {
		return 0.75
	}
	return 0
}

// printInsteadOfReturnCheck flags a function body that prints its result
// but never returns.
type printInsteadOfReturnCheck struct{}

func (c *printInsteadOfReturnCheck) Name() string     { return "print-instead-of-return" }
func (c *printInsteadOfReturnCheck) Tag() string      { return "return_vs_print" }
func (c *printInsteadOfReturnCheck) Specificity() int { return 60 }

func (c *printInsteadOfReturnCheck) Match(code string) float64 {
	if strings.Contains(code, "def ") && strings.Contains(code, "print(") &&
		!strings.Contains(code, "return") {
		return 0.7
	}
	return 0
}

// executionSignature maps a runtime output marker to a misconception.
type executionSignature struct {
	needle      string
	tag         string
	confidence  float64
	insensitive bool
}

// executionSignatures are ordered most-diagnostic first. Runtime output
// is stronger evidence than any structural pattern, so these carry the
// highest specificity.
var executionSignatures = []executionSignature{
	{needle: "IndexError", tag: "array_indexing_error", confidence: 0.95},
	{needle: "TypeError", tag: "type_coercion_error", confidence: 0.9},
	{needle: "RecursionError", tag: "infinite_loop", confidence: 0.9},
	{needle: "timeout", tag: "infinite_loop", confidence: 0.85, insensitive: true},
	{needle: "NameError", tag: "scope_confusion", confidence: 0.8},
}

const executionSpecificity = 100

// matchExecutionOutput scans runtime output for known error markers.
func matchExecutionOutput(output string) []Match {
	if output == "" {
		return nil
	}
	lower := strings.ToLower(output)

	var matches []Match
	for _, sig := range executionSignatures {
		hit := false
		if sig.insensitive {
			hit = strings.Contains(lower, strings.ToLower(sig.needle))
		} else {
			hit = strings.Contains(output, sig.needle)
		}
		if hit {
			matches = append(matches, Match{
				Tag:         sig.tag,
				Confidence:  sig.confidence,
				Specificity: executionSpecificity,
				Source:      "execution-output",
			})
		}
	}
	return matches
}

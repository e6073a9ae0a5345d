package metrics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attempt(student, question string, correct bool) Attempt {
	return Attempt{
		StudentID:  student,
		QuestionID: question,
		ConceptID:  "loops",
		Correct:    correct,
	}
}

func TestAnalyzeItems_PValue(t *testing.T) {
	attempts := []Attempt{
		attempt("s1", "q1", true),
		attempt("s2", "q1", true),
		attempt("s3", "q1", false),
		attempt("s4", "q1", false),
	}

	items := AnalyzeItems(attempts)
	require.Len(t, items, 1)
	assert.Equal(t, "q1", items[0].QuestionID)
	assert.Equal(t, 4, items[0].Attempts)
	assert.InDelta(t, 0.5, items[0].PValue, 1e-9)
}

func TestAnalyzeItems_DiscriminationSeparatesCohorts(t *testing.T) {
	// Ten students; the strong half gets q1 right, the weak half gets
	// it wrong. A second question spreads the overall ranking.
	var attempts []Attempt
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("s%02d", i)
		strong := i < 5
		attempts = append(attempts,
			attempt(id, "q1", strong),
			attempt(id, "q2", strong),
		)
	}

	items := AnalyzeItems(attempts)
	require.Len(t, items, 2)

	q1 := items[0]
	require.True(t, q1.Valid)
	assert.InDelta(t, 1.0, q1.Discrimination, 1e-9,
		"top cohort all correct, bottom cohort all wrong")
}

func TestAnalyzeItems_NegativeDiscrimination(t *testing.T) {
	// q1 is answered correctly only by the weakest students, a classic
	// miskeyed-item signal.
	var attempts []Attempt
	for i := 0; i < 8; i++ {
		id := fmt.Sprintf("s%d", i)
		strong := i < 4
		attempts = append(attempts,
			attempt(id, "anchor1", strong),
			attempt(id, "anchor2", strong),
			attempt(id, "q1", !strong),
		)
	}

	items := AnalyzeItems(attempts)
	for _, it := range items {
		if it.QuestionID != "q1" {
			continue
		}
		require.True(t, it.Valid)
		assert.Less(t, it.Discrimination, 0.0)
		assert.GreaterOrEqual(t, it.Discrimination, -1.0)
	}
}

func TestAnalyzeItems_TooFewStudentsForDiscrimination(t *testing.T) {
	attempts := []Attempt{
		attempt("s1", "q1", true),
		attempt("s2", "q1", false),
		attempt("s3", "q1", true),
	}

	items := AnalyzeItems(attempts)
	require.Len(t, items, 1)
	assert.False(t, items[0].Valid)
	assert.Zero(t, items[0].Discrimination)
}

func TestAnalyzeItems_Bounds(t *testing.T) {
	// Pseudo-random but deterministic correctness pattern.
	var attempts []Attempt
	for s := 0; s < 12; s++ {
		for q := 0; q < 5; q++ {
			attempts = append(attempts, attempt(
				fmt.Sprintf("s%02d", s),
				fmt.Sprintf("q%d", q),
				(s*7+q*3)%5 < 3,
			))
		}
	}

	for _, it := range AnalyzeItems(attempts) {
		assert.GreaterOrEqual(t, it.PValue, 0.0)
		assert.LessOrEqual(t, it.PValue, 1.0)
		if it.Valid {
			assert.GreaterOrEqual(t, it.Discrimination, -1.0)
			assert.LessOrEqual(t, it.Discrimination, 1.0)
		}
	}
}

func TestAnalyzeItems_OrderedByQuestionID(t *testing.T) {
	attempts := []Attempt{
		attempt("s1", "q3", true),
		attempt("s1", "q1", true),
		attempt("s1", "q2", false),
	}

	items := AnalyzeItems(attempts)
	require.Len(t, items, 3)
	assert.Equal(t, "q1", items[0].QuestionID)
	assert.Equal(t, "q2", items[1].QuestionID)
	assert.Equal(t, "q3", items[2].QuestionID)
}

package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/codetutor/internal/mastery"
)

func priorityDataset(cursor time.Time, students ...Student) Dataset {
	return Dataset{Cursor: cursor, Students: students}
}

func TestRankPriority_LowerMasteryScoresHigher(t *testing.T) {
	cursor := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ds := priorityDataset(cursor,
		student("weak", mastery.BaselineMedium, map[string]float64{"loops": 0.2}),
		student("strong", mastery.BaselineMedium, map[string]float64{"loops": 0.9}),
	)

	ranked := RankPriority(DefaultConfig(), ds)
	require.Len(t, ranked, 2)
	assert.Equal(t, "weak", ranked[0].StudentID)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
	assert.True(t, ranked[0].NeedsAttention)
	assert.False(t, ranked[1].NeedsAttention)
}

func TestRankPriority_StrictlyMonotonicInEachFactor(t *testing.T) {
	cfg := DefaultConfig()
	cursor := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	base := student("a", mastery.BaselineMedium, map[string]float64{"loops": 0.5})

	score := func(ds Dataset) float64 {
		ranked := RankPriority(cfg, ds)
		require.Len(t, ranked, 1)
		return ranked[0].Score
	}

	// Worsening mastery raises the score.
	lower := base
	lower.MasteryScores = map[string]float64{"loops": 0.4}
	assert.Greater(t,
		score(priorityDataset(cursor, lower)),
		score(priorityDataset(cursor, base)))

	// A more recent misconception raises the score.
	recent := priorityDataset(cursor, base)
	recent.Attempts = []Attempt{{
		StudentID: "a", QuestionID: "q1", ConceptID: "loops",
		Tags: []string{"off_by_one"}, Timestamp: cursor.Add(-1 * time.Hour),
	}}
	stale := priorityDataset(cursor, base)
	stale.Attempts = []Attempt{{
		StudentID: "a", QuestionID: "q1", ConceptID: "loops",
		Tags: []string{"off_by_one"}, Timestamp: cursor.Add(-48 * time.Hour),
	}}
	assert.Greater(t, score(recent), score(stale))
	assert.Greater(t, score(stale), score(priorityDataset(cursor, base)))

	// Each additional RETEACH cycle raises the score.
	prev := score(priorityDataset(cursor, base))
	for cycles := 1; cycles <= 6; cycles++ {
		ds := priorityDataset(cursor, base)
		ds.StudentReteach = map[string]int{"a": cycles}
		got := score(ds)
		assert.Greater(t, got, prev, "cycle %d must outrank cycle %d", cycles, cycles-1)
		prev = got
	}
}

func TestRankPriority_InactiveStudentsExcluded(t *testing.T) {
	inactive := student("gone", mastery.BaselineMedium, map[string]float64{"loops": 0.1})
	inactive.Active = false
	ds := priorityDataset(time.Now(),
		inactive,
		student("here", mastery.BaselineMedium, map[string]float64{"loops": 0.6}),
	)

	ranked := RankPriority(DefaultConfig(), ds)
	require.Len(t, ranked, 1)
	assert.Equal(t, "here", ranked[0].StudentID)
}

func TestRankPriority_TiesBreakOnStudentID(t *testing.T) {
	cursor := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ds := priorityDataset(cursor,
		student("b", mastery.BaselineMedium, map[string]float64{"loops": 0.5}),
		student("a", mastery.BaselineMedium, map[string]float64{"loops": 0.5}),
	)

	ranked := RankPriority(DefaultConfig(), ds)
	require.Len(t, ranked, 2)
	assert.Equal(t, "a", ranked[0].StudentID)
	assert.Equal(t, "b", ranked[1].StudentID)
}

func TestRankPriority_CapsList(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPriority = 3

	ds := Dataset{Cursor: time.Now(), Students: roster(10)}
	for i := range ds.Students {
		ds.Students[i].MasteryScores = map[string]float64{"loops": float64(i) / 10}
	}

	ranked := RankPriority(cfg, ds)
	require.Len(t, ranked, 3)
	// The three lowest-mastery students, most urgent first.
	assert.Equal(t, "s00", ranked[0].StudentID)
	assert.Equal(t, "s01", ranked[1].StudentID)
	assert.Equal(t, "s02", ranked[2].StudentID)
}

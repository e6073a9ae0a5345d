package metrics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/codetutor/internal/mastery"
)

func snapshotDataset() Dataset {
	cursor := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ds := Dataset{
		Cursor:   cursor,
		Students: roster(10),
		PreScores: map[string]float64{
			"s00": 0.3, "s01": 0.4, "s02": 0.5,
		},
		PostScores: map[string]float64{
			"s00": 0.6, "s01": 0.7, "s02": 0.8,
		},
		Labeled: labeled(
			[2]string{"off_by_one", "off_by_one"},
			[2]string{"infinite_loop", "off_by_one"},
			[2]string{"infinite_loop", "infinite_loop"},
		),
		ReteachCounts:  map[string]int{"off_by_one": 2},
		StudentReteach: map[string]int{"s00": 2},
	}

	for i := range ds.Students {
		ds.Students[i].MasteryScores = map[string]float64{"loops": 0.1 * float64(i)}
	}
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("s%02d", i)
		correct := i >= 4
		a := Attempt{
			StudentID:  id,
			QuestionID: "q1",
			ConceptID:  "loops",
			Correct:    correct,
			Timestamp:  cursor.Add(-time.Duration(i) * time.Hour),
		}
		if !correct {
			a.Tags = []string{"off_by_one"}
		}
		ds.Attempts = append(ds.Attempts, a)
	}
	return ds
}

func TestEngine_SnapshotPopulatesAllSections(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)
	snap, err := e.Snapshot(context.Background(), snapshotDataset())
	require.NoError(t, err)

	assert.Len(t, snap.Items, 1)
	assert.Equal(t, 3, snap.Effect.Pairs)
	assert.Equal(t, 3, snap.Agreement.Labeled)
	assert.NotEmpty(t, snap.Equity.GroupMeans)
	assert.NotEmpty(t, snap.Clusters)
	assert.Len(t, snap.Priority, 10)

	assert.Equal(t, 10, snap.Summary.TotalStudents)
	assert.Equal(t, 10, snap.Summary.ActiveStudents)
	assert.Equal(t, 10, snap.Summary.TotalAttempts)
	assert.InDelta(t, 0.6, snap.Summary.OverallAccuracy, 1e-9)
	assert.InDelta(t, 0.45, snap.Summary.AverageMastery, 1e-9)
}

func TestEngine_SnapshotIsReproducible(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)
	ds := snapshotDataset()

	first, err := e.Snapshot(context.Background(), ds)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		got, err := e.Snapshot(context.Background(), ds)
		require.NoError(t, err)
		assert.Equal(t, first, got, "run %d", i)
	}
}

func TestEngine_SnapshotClusterSeverity(t *testing.T) {
	// Four of ten active students carry off_by_one: the cluster must
	// come back high severity.
	e := NewEngine(DefaultConfig(), nil)
	snap, err := e.Snapshot(context.Background(), snapshotDataset())
	require.NoError(t, err)

	require.NotEmpty(t, snap.Clusters)
	assert.Equal(t, "off_by_one", snap.Clusters[0].Tag)
	assert.Equal(t, "high", snap.Clusters[0].Severity)
}

func TestBuildDashboard(t *testing.T) {
	ds := snapshotDataset()
	dash := BuildDashboard(DefaultConfig(), ds)

	assert.Equal(t, 10, dash.TotalStudents)
	// Mastery 0.0-0.3 puts s00..s03 below the struggling threshold.
	assert.Equal(t, []string{"s00", "s01", "s02", "s03"}, dash.StrugglingStudents)

	cell := dash.ConceptHeatmap["loops"]
	assert.Equal(t, 4, cell.Struggling)
	assert.Equal(t, 4, cell.Developing)
	assert.Equal(t, 2, cell.Mastered)

	require.NotEmpty(t, dash.Suggestions)
	assert.Contains(t, dash.Suggestions[0], "occurrences")
}

func TestBuildDashboard_QuietClass(t *testing.T) {
	students := []Student{
		student("s1", mastery.BaselineMedium, map[string]float64{"loops": 0.9}),
		student("s2", mastery.BaselineMedium, map[string]float64{"loops": 0.85}),
	}
	dash := BuildDashboard(DefaultConfig(), Dataset{Students: students})

	assert.Empty(t, dash.StrugglingStudents)
	assert.Empty(t, dash.Clusters)
	require.Len(t, dash.Suggestions, 1)
	assert.Contains(t, dash.Suggestions[0], "progressing well")
}

package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/codetutor/internal/mastery"
)

func student(id string, baseline mastery.BaselineLevel, scores map[string]float64) Student {
	return Student{ID: id, Baseline: baseline, Active: true, MasteryScores: scores}
}

func TestAnalyzeEquity_GapAcrossGroups(t *testing.T) {
	students := []Student{
		student("s1", mastery.BaselineLow, map[string]float64{"loops": 0.3, "arrays": 0.5}),
		student("s2", mastery.BaselineLow, map[string]float64{"loops": 0.4}),
		student("s3", mastery.BaselineHigh, map[string]float64{"loops": 0.8}),
		student("s4", mastery.BaselineHigh, map[string]float64{"loops": 0.9, "arrays": 0.7}),
	}

	report := AnalyzeEquity(students)
	require.Len(t, report.GroupMeans, 2)
	assert.InDelta(t, 0.4, report.GroupMeans[mastery.BaselineLow], 1e-9)
	assert.InDelta(t, 0.8, report.GroupMeans[mastery.BaselineHigh], 1e-9)
	assert.InDelta(t, 0.4, report.Gap, 1e-9)
	assert.Equal(t, "concerning", report.Status)
}

func TestAnalyzeEquity_StudentsWithoutScoresExcluded(t *testing.T) {
	students := []Student{
		student("s1", mastery.BaselineLow, map[string]float64{"loops": 0.6}),
		student("s2", mastery.BaselineLow, nil),
	}

	report := AnalyzeEquity(students)
	assert.Equal(t, 1, report.GroupSizes[mastery.BaselineLow])
	assert.InDelta(t, 0.6, report.GroupMeans[mastery.BaselineLow], 1e-9)
}

func TestAnalyzeEquity_SingleGroupHasNoGap(t *testing.T) {
	students := []Student{
		student("s1", mastery.BaselineMedium, map[string]float64{"loops": 0.2}),
		student("s2", mastery.BaselineMedium, map[string]float64{"loops": 0.9}),
	}

	report := AnalyzeEquity(students)
	assert.Zero(t, report.Gap)
	assert.Equal(t, "good", report.Status)
}

func TestEquityStatus_Bands(t *testing.T) {
	assert.Equal(t, "good", equityStatus(0.05))
	assert.Equal(t, "good", equityStatus(0.099))
	assert.Equal(t, "moderate", equityStatus(0.1))
	assert.Equal(t, "moderate", equityStatus(0.19))
	assert.Equal(t, "concerning", equityStatus(0.2))
	assert.Equal(t, "concerning", equityStatus(0.5))
}

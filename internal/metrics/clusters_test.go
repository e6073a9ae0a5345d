package metrics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/codetutor/internal/mastery"
)

// roster builds n active students s00..s(n-1).
func roster(n int) []Student {
	out := make([]Student, n)
	for i := range out {
		out[i] = Student{
			ID:       fmt.Sprintf("s%02d", i),
			Baseline: mastery.BaselineMedium,
			Active:   true,
		}
	}
	return out
}

func tagged(student, tag string) Attempt {
	return Attempt{
		StudentID:  student,
		QuestionID: "q1",
		ConceptID:  "loops",
		Tags:       []string{tag},
	}
}

func TestClusterMisconceptions_HighSeverityShare(t *testing.T) {
	// Four of ten active students share off_by_one: 40% is above the
	// 30% threshold.
	ds := Dataset{Students: roster(10)}
	for i := 0; i < 4; i++ {
		ds.Attempts = append(ds.Attempts, tagged(fmt.Sprintf("s%02d", i), "off_by_one"))
	}

	clusters := ClusterMisconceptions(DefaultConfig(), ds)
	require.Len(t, clusters, 1)
	assert.Equal(t, "off_by_one", clusters[0].Tag)
	assert.Len(t, clusters[0].Students, 4)
	assert.InDelta(t, 0.4, clusters[0].Share, 1e-9)
	assert.Equal(t, "high", clusters[0].Severity)
}

func TestClusterMisconceptions_MediumAndLow(t *testing.T) {
	ds := Dataset{Students: roster(10)}
	// 20% share: medium.
	ds.Attempts = append(ds.Attempts,
		tagged("s00", "infinite_loop"),
		tagged("s01", "infinite_loop"),
		// 10% share: low.
		tagged("s02", "return_vs_print"),
	)

	clusters := ClusterMisconceptions(DefaultConfig(), ds)
	require.Len(t, clusters, 2)
	assert.Equal(t, "infinite_loop", clusters[0].Tag)
	assert.Equal(t, "medium", clusters[0].Severity)
	assert.Equal(t, "return_vs_print", clusters[1].Tag)
	assert.Equal(t, "low", clusters[1].Severity)
}

func TestClusterMisconceptions_ReteachEscalation(t *testing.T) {
	// One affected student out of twenty is a 5% share, but the tag
	// has driven repeated RETEACH cycles.
	ds := Dataset{
		Students:      roster(20),
		Attempts:      []Attempt{tagged("s00", "off_by_one")},
		ReteachCounts: map[string]int{"off_by_one": 3},
	}

	clusters := ClusterMisconceptions(DefaultConfig(), ds)
	require.Len(t, clusters, 1)
	assert.Equal(t, "high", clusters[0].Severity)
}

func TestClusterMisconceptions_DuplicateAttemptsCountStudentsOnce(t *testing.T) {
	ds := Dataset{Students: roster(10)}
	for i := 0; i < 5; i++ {
		ds.Attempts = append(ds.Attempts, tagged("s00", "off_by_one"))
	}

	clusters := ClusterMisconceptions(DefaultConfig(), ds)
	require.Len(t, clusters, 1)
	assert.Len(t, clusters[0].Students, 1)
	assert.InDelta(t, 0.1, clusters[0].Share, 1e-9)
}

func TestClusterMisconceptions_UnclassifiedExcluded(t *testing.T) {
	ds := Dataset{
		Students: roster(5),
		Attempts: []Attempt{
			tagged("s00", "unclassified"),
			tagged("s01", "not_a_registered_tag"),
		},
	}
	assert.Empty(t, ClusterMisconceptions(DefaultConfig(), ds))
}

func TestClusterMisconceptions_InactiveStudentsExcluded(t *testing.T) {
	students := roster(10)
	students[0].Active = false
	ds := Dataset{
		Students: students,
		Attempts: []Attempt{
			tagged("s00", "off_by_one"), // inactive, ignored
			tagged("s01", "off_by_one"),
		},
	}

	clusters := ClusterMisconceptions(DefaultConfig(), ds)
	require.Len(t, clusters, 1)
	assert.Equal(t, []string{"s01"}, clusters[0].Students)
	// Denominator is the 9 active students.
	assert.InDelta(t, 1.0/9.0, clusters[0].Share, 1e-9)
}

func TestClusterMisconceptions_GroupSessionIntervention(t *testing.T) {
	ds := Dataset{Students: roster(10)}
	for i := 0; i < 5; i++ {
		ds.Attempts = append(ds.Attempts, tagged(fmt.Sprintf("s%02d", i), "off_by_one"))
	}

	clusters := ClusterMisconceptions(DefaultConfig(), ds)
	require.Len(t, clusters, 1)
	assert.Contains(t, clusters[0].Intervention, "Group session: ")

	// Below the group-session size the recommendation shrinks.
	small := Dataset{Students: roster(10), Attempts: []Attempt{tagged("s00", "off_by_one")}}
	clusters = ClusterMisconceptions(DefaultConfig(), small)
	require.Len(t, clusters, 1)
	assert.Contains(t, clusters[0].Intervention, "Small-group work: ")
}

func TestClusterMisconceptions_SortedBySizeThenTag(t *testing.T) {
	ds := Dataset{Students: roster(10)}
	ds.Attempts = append(ds.Attempts,
		tagged("s00", "return_vs_print"),
		tagged("s01", "return_vs_print"),
		tagged("s02", "infinite_loop"),
		tagged("s03", "off_by_one"),
	)

	clusters := ClusterMisconceptions(DefaultConfig(), ds)
	require.Len(t, clusters, 3)
	assert.Equal(t, "return_vs_print", clusters[0].Tag)
	assert.Equal(t, "infinite_loop", clusters[1].Tag)
	assert.Equal(t, "off_by_one", clusters[2].Tag)
}

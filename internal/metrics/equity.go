package metrics

import (
	"github.com/abhisek/codetutor/internal/mastery"
)

// EquityReport compares average mastery across baseline-level groups.
type EquityReport struct {
	// GroupMeans maps each baseline level with at least one student to
	// the group's mean of per-student average mastery.
	GroupMeans map[mastery.BaselineLevel]float64

	// GroupSizes counts the students contributing to each mean.
	GroupSizes map[mastery.BaselineLevel]int

	// Gap is the difference between the best and worst group means.
	Gap float64

	// Status is good below 0.1, moderate below 0.2, else concerning.
	Status string
}

// AnalyzeEquity groups students by baseline level and reports the
// mastery gap between groups. Students with no mastery data yet are
// excluded so empty maps do not drag a group to zero.
func AnalyzeEquity(students []Student) EquityReport {
	sums := make(map[mastery.BaselineLevel]float64)
	sizes := make(map[mastery.BaselineLevel]int)

	for _, s := range students {
		if len(s.MasteryScores) == 0 {
			continue
		}
		sums[s.Baseline] += mastery.Overall(s.MasteryScores)
		sizes[s.Baseline]++
	}

	report := EquityReport{
		GroupMeans: make(map[mastery.BaselineLevel]float64, len(sums)),
		GroupSizes: sizes,
	}

	first := true
	var lo, hi float64
	for level, sum := range sums {
		m := sum / float64(sizes[level])
		report.GroupMeans[level] = m
		if first {
			lo, hi = m, m
			first = false
			continue
		}
		if m < lo {
			lo = m
		}
		if m > hi {
			hi = m
		}
	}

	if len(report.GroupMeans) > 1 {
		report.Gap = hi - lo
	}
	report.Status = equityStatus(report.Gap)
	return report
}

func equityStatus(gap float64) string {
	switch {
	case gap < 0.1:
		return "good"
	case gap < 0.2:
		return "moderate"
	default:
		return "concerning"
	}
}

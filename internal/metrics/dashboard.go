package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/codetutor/internal/conceptgraph"
	"github.com/abhisek/codetutor/internal/mastery"
	"github.com/abhisek/codetutor/internal/misconception"
)

// HeatmapCell counts students in each mastery band for one concept.
type HeatmapCell struct {
	Struggling int
	Developing int
	Mastered   int
}

// Dashboard is the instructor-facing aggregate view.
type Dashboard struct {
	TotalStudents      int
	StrugglingStudents []string
	ConceptHeatmap     map[string]HeatmapCell
	Clusters           []Cluster
	Priority           []PriorityEntry
	Suggestions        []string
}

// BuildDashboard assembles the instructor analytics from one dataset.
func BuildDashboard(cfg Config, ds Dataset) Dashboard {
	return Dashboard{
		TotalStudents:      len(ds.Students),
		StrugglingStudents: strugglingStudents(cfg, ds.Students),
		ConceptHeatmap:     conceptHeatmap(cfg, ds.Students),
		Clusters:           ClusterMisconceptions(cfg, ds),
		Priority:           RankPriority(cfg, ds),
		Suggestions:        suggestions(cfg, ds),
	}
}

// strugglingStudents lists students whose average mastery sits below
// the struggling threshold. Students with no data yet are not counted.
func strugglingStudents(cfg Config, students []Student) []string {
	var out []string
	for _, s := range students {
		if len(s.MasteryScores) == 0 {
			continue
		}
		if mastery.Overall(s.MasteryScores) < cfg.StrugglingThreshold {
			out = append(out, s.ID)
		}
	}
	sort.Strings(out)
	return out
}

// conceptHeatmap bands every student score per concept: struggling
// below the struggling threshold, mastered at the completion
// threshold, developing between.
func conceptHeatmap(cfg Config, students []Student) map[string]HeatmapCell {
	heatmap := make(map[string]HeatmapCell)
	for _, c := range conceptgraph.All() {
		heatmap[c.ID] = HeatmapCell{}
	}

	for _, s := range students {
		for conceptID, score := range s.MasteryScores {
			cell, ok := heatmap[conceptID]
			if !ok {
				continue
			}
			switch {
			case score < cfg.StrugglingThreshold:
				cell.Struggling++
			case score < conceptgraph.CompletionThreshold:
				cell.Developing++
			default:
				cell.Mastered++
			}
			heatmap[conceptID] = cell
		}
	}
	return heatmap
}

// suggestions derives class-level interventions: the most widespread
// misconceptions first, then baseline groups falling behind.
func suggestions(cfg Config, ds Dataset) []string {
	var out []string

	counts := make(map[string]int)
	for _, a := range ds.Attempts {
		for _, tag := range a.Tags {
			if tag == misconception.TagUnclassified {
				continue
			}
			counts[tag]++
		}
	}

	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})
	if len(tags) > 3 {
		tags = tags[:3]
	}
	for _, tag := range tags {
		label, concepts := tag, "related concepts"
		if m := misconception.Get(tag); m != nil {
			label = m.Label
			if len(m.Concepts) > 0 {
				concepts = strings.Join(m.Concepts, ", ")
			}
		}
		out = append(out, fmt.Sprintf("Address %q (%d occurrences): review %s", label, counts[tag], concepts))
	}

	equity := AnalyzeEquity(ds.Students)
	for _, level := range []mastery.BaselineLevel{mastery.BaselineLow, mastery.BaselineMedium, mastery.BaselineHigh} {
		if m, ok := equity.GroupMeans[level]; ok && m < 0.5 {
			out = append(out, fmt.Sprintf("Consider additional support for %s-baseline students (avg mastery %.0f%%)", level, m*100))
		}
	}

	if len(out) == 0 {
		out = append(out, "Class is progressing well; consider introducing more advanced topics")
	}
	return out
}

package metrics

import (
	"fmt"
	"sort"

	"github.com/abhisek/codetutor/internal/misconception"
)

// Cluster groups the active students sharing a misconception tag.
type Cluster struct {
	Tag      string
	Students []string

	// Share is the fraction of active students affected.
	Share float64

	// Severity is high above the share threshold or under repeated
	// RETEACH escalation, medium above the lower threshold, else low.
	Severity string

	// Intervention is the recommended remediation for this cluster.
	Intervention string
}

// ClusterMisconceptions groups attempts by diagnosed tag and
// classifies each cluster's severity against the active-student share.
// Unclassified tags and inactive students are excluded.
func ClusterMisconceptions(cfg Config, ds Dataset) []Cluster {
	active := make(map[string]bool)
	for _, s := range ds.activeStudents() {
		active[s.ID] = true
	}
	if len(active) == 0 {
		return nil
	}

	affected := make(map[string]map[string]bool)
	for _, a := range ds.Attempts {
		if !active[a.StudentID] {
			continue
		}
		for _, tag := range a.Tags {
			if tag == misconception.TagUnclassified || !misconception.Exists(tag) {
				continue
			}
			if affected[tag] == nil {
				affected[tag] = make(map[string]bool)
			}
			affected[tag][a.StudentID] = true
		}
	}

	clusters := make([]Cluster, 0, len(affected))
	for tag, students := range affected {
		ids := make([]string, 0, len(students))
		for id := range students {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		share := float64(len(ids)) / float64(len(active))
		clusters = append(clusters, Cluster{
			Tag:          tag,
			Students:     ids,
			Share:        share,
			Severity:     clusterSeverity(cfg, share, len(ids), ds.ReteachCounts[tag]),
			Intervention: intervention(cfg, tag, len(ids)),
		})
	}

	sort.Slice(clusters, func(i, j int) bool {
		if len(clusters[i].Students) != len(clusters[j].Students) {
			return len(clusters[i].Students) > len(clusters[j].Students)
		}
		return clusters[i].Tag < clusters[j].Tag
	})
	if len(clusters) > cfg.MaxClusters {
		clusters = clusters[:cfg.MaxClusters]
	}
	return clusters
}

// clusterSeverity applies the share thresholds, promoting to high when
// the tag keeps driving RETEACH cycles for its students.
func clusterSeverity(cfg Config, share float64, students, reteaches int) string {
	if share > cfg.HighShareThreshold {
		return "high"
	}
	if students > 0 && float64(reteaches)/float64(students) >= cfg.ReteachEscalation {
		return "high"
	}
	if share > cfg.MediumShareThreshold {
		return "medium"
	}
	return "low"
}

// intervention builds the recommended action from the registry's
// remediation hint, scaled to the cluster size.
func intervention(cfg Config, tag string, students int) string {
	hint := fmt.Sprintf("targeted practice on %s", tag)
	if m := misconception.Get(tag); m != nil && m.RemediationHint != "" {
		hint = m.RemediationHint
	}
	if students >= cfg.GroupSessionSize {
		return "Group session: " + hint
	}
	return "Small-group work: " + hint
}

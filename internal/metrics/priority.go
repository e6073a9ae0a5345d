package metrics

import (
	"sort"

	"github.com/abhisek/codetutor/internal/mastery"
)

// Priority score weights. They sum to one so the score stays in [0,1].
const (
	weightMastery = 0.5
	weightRecency = 0.3
	weightReteach = 0.2
)

// PriorityEntry ranks one student for instructor attention. Higher
// scores mean more urgent.
type PriorityEntry struct {
	StudentID string

	// Score is a weighted combination of low mastery, misconception
	// recency, and RETEACH cycles. It strictly increases as any of the
	// three worsens, so the dashboard ordering is stable.
	Score float64

	AvgMastery     float64
	ReteachCycles  int
	NeedsAttention bool
}

// RankPriority scores every active student and returns them most
// urgent first. Ties break on student ID so the order is reproducible.
func RankPriority(cfg Config, ds Dataset) []PriorityEntry {
	lastTagged := make(map[string]int64)
	for _, a := range ds.Attempts {
		if len(a.Tags) == 0 {
			continue
		}
		if ts := a.Timestamp.Unix(); ts > lastTagged[a.StudentID] {
			lastTagged[a.StudentID] = ts
		}
	}

	entries := make([]PriorityEntry, 0, len(ds.Students))
	for _, s := range ds.activeStudents() {
		avg := mastery.Overall(s.MasteryScores)
		reteach := ds.StudentReteach[s.ID]

		e := PriorityEntry{
			StudentID:      s.ID,
			AvgMastery:     avg,
			ReteachCycles:  reteach,
			NeedsAttention: avg < cfg.StrugglingThreshold,
		}
		e.Score = weightMastery*(1-avg) +
			weightRecency*recencyFactor(ds.Cursor.Unix(), lastTagged[s.ID]) +
			weightReteach*saturate(reteach)
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].StudentID < entries[j].StudentID
	})
	if len(entries) > cfg.MaxPriority {
		entries = entries[:cfg.MaxPriority]
	}
	return entries
}

// recencyFactor maps the age of the latest diagnosed misconception to
// (0,1]: one hour ago scores higher than one day ago, and a student
// with no diagnosed misconceptions scores zero.
func recencyFactor(cursor, last int64) float64 {
	if last == 0 {
		return 0
	}
	ageHours := float64(cursor-last) / 3600
	if ageHours < 0 {
		ageHours = 0
	}
	return 1 / (1 + ageHours)
}

// saturate maps a count to [0,1) while staying strictly increasing, so
// a fifth RETEACH still outranks a fourth.
func saturate(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n) / float64(n+1)
}

package conceptgraph

// DifficultyTier buckets concepts by expected difficulty for question generation.
type DifficultyTier string

const (
	TierFoundation   DifficultyTier = "foundation"   // No or few prerequisites, introductory
	TierCore         DifficultyTier = "core"         // Builds directly on foundations
	TierIntermediate DifficultyTier = "intermediate" // Combines multiple prior concepts
)

// Concept represents a single programming concept node in the graph.
// Concepts are immutable reference data loaded once at startup.
type Concept struct {
	ID            string
	Name          string
	Description   string
	Tier          DifficultyTier
	Prerequisites []string
	// Misconceptions lists the canonical misconception tags commonly
	// observed on this concept, in authoring order.
	Misconceptions []string
}

// CompletionThreshold is the mastery score at or above which a concept can be
// marked completed, provided all prerequisites are completed too.
const CompletionThreshold = 0.8

// IsCompleted reports whether a concept counts as completed given a mastery
// score and the set of already-completed concepts. A concept completes only
// when its score reaches the threshold and every prerequisite is completed.
func IsCompleted(id string, score float64, completed map[string]bool) bool {
	c, ok := g.byID[id]
	if !ok {
		return false
	}
	if score < CompletionThreshold {
		return false
	}
	for _, prereqID := range c.Prerequisites {
		if !completed[prereqID] {
			return false
		}
	}
	return true
}

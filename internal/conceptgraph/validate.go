package conceptgraph

import (
	"fmt"
	"strings"
)

// validateConcepts performs all structural checks on the given concept set.
// Returns a combined error describing all problems found, or nil if valid.
// A cycle here is fatal for the whole engine: the orchestrator's prerequisite
// logic assumes acyclicity, so callers must refuse to start on error.
func validateConcepts(concepts []Concept) error {
	var errs []string

	idSet := make(map[string]bool, len(concepts))

	for _, c := range concepts {
		if idSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate concept ID: %q", c.ID))
		}
		idSet[c.ID] = true
	}

	// Dangling prerequisites.
	for _, c := range concepts {
		for _, prereqID := range c.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("concept %q references nonexistent prerequisite %q", c.ID, prereqID))
			}
		}
	}

	// Cycle check using Kahn's algorithm.
	inDegree := make(map[string]int, len(concepts))
	adjList := make(map[string][]string)
	for _, c := range concepts {
		inDegree[c.ID] = len(c.Prerequisites)
		for _, prereqID := range c.Prerequisites {
			adjList[prereqID] = append(adjList[prereqID], c.ID)
		}
	}

	var queue []string
	for _, c := range concepts {
		if inDegree[c.ID] == 0 {
			queue = append(queue, c.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(concepts) {
		var cycleNodes []string
		for _, c := range concepts {
			if inDegree[c.ID] > 0 {
				cycleNodes = append(cycleNodes, c.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving concepts: %s", strings.Join(cycleNodes, ", ")))
	}

	// At least one root.
	hasRoot := false
	for _, c := range concepts {
		if len(c.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if !hasRoot {
		errs = append(errs, "no root concepts found (at least one concept must have no prerequisites)")
	}

	// Tier values must be known.
	for _, c := range concepts {
		switch c.Tier {
		case TierFoundation, TierCore, TierIntermediate:
		default:
			errs = append(errs, fmt.Sprintf("concept %q has unknown difficulty tier %q", c.ID, c.Tier))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("concept graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

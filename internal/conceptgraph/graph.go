package conceptgraph

import (
	"fmt"
	"slices"
	"sort"
)

// graph holds the concept DAG with precomputed indices.
type graph struct {
	concepts   []Concept
	byID       map[string]*Concept
	roots      []Concept
	dependents map[string][]string
	topoOrder  []Concept
	topoIndex  map[string]int
}

// g is the package-level graph singleton, set by init() in seed.go.
var g *graph

// buildGraph constructs the graph from a slice of concepts.
// It builds all indices including topological order (Kahn's algorithm).
func buildGraph(concepts []Concept) *graph {
	gr := &graph{
		concepts:   concepts,
		byID:       make(map[string]*Concept, len(concepts)),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(concepts)),
	}

	for i := range gr.concepts {
		gr.byID[gr.concepts[i].ID] = &gr.concepts[i]
	}

	// Reverse edges (dependents).
	for i := range gr.concepts {
		for _, prereqID := range gr.concepts[i].Prerequisites {
			gr.dependents[prereqID] = append(gr.dependents[prereqID], gr.concepts[i].ID)
		}
	}

	// Topological sort (Kahn's algorithm).
	inDegree := make(map[string]int, len(concepts))
	for i := range concepts {
		inDegree[concepts[i].ID] = len(concepts[i].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	// Sort initial queue for deterministic ordering.
	sort.Strings(queue)

	var topoOrder []Concept
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		topoOrder = append(topoOrder, *gr.byID[id])

		deps := slices.Clone(gr.dependents[id])
		sort.Strings(deps)
		for _, depID := range deps {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	gr.topoOrder = topoOrder
	for i, c := range gr.topoOrder {
		gr.topoIndex[c.ID] = i
	}

	for i := range gr.concepts {
		if len(gr.concepts[i].Prerequisites) == 0 {
			gr.roots = append(gr.roots, gr.concepts[i])
		}
	}

	return gr
}

// Get returns a concept by ID, or an error if not found.
func Get(id string) (Concept, error) {
	c, ok := g.byID[id]
	if !ok {
		return Concept{}, fmt.Errorf("concept not found: %q", id)
	}
	return *c, nil
}

// Exists reports whether a concept ID is in the graph.
func Exists(id string) bool {
	_, ok := g.byID[id]
	return ok
}

// All returns all concepts in the graph.
func All() []Concept {
	return slices.Clone(g.concepts)
}

// Roots returns all concepts with no prerequisites.
func Roots() []Concept {
	return slices.Clone(g.roots)
}

// Prerequisites returns the direct prerequisite concepts for a given ID.
func Prerequisites(id string) []Concept {
	c, ok := g.byID[id]
	if !ok {
		return nil
	}
	result := make([]Concept, 0, len(c.Prerequisites))
	for _, prereqID := range c.Prerequisites {
		if p, ok := g.byID[prereqID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Dependents returns concepts that directly depend on the given ID.
func Dependents(id string) []Concept {
	depIDs := g.dependents[id]
	result := make([]Concept, 0, len(depIDs))
	for _, depID := range depIDs {
		if c, ok := g.byID[depID]; ok {
			result = append(result, *c)
		}
	}
	return result
}

// IsUnlocked returns true if all prerequisites for the given concept are in
// the completed set.
func IsUnlocked(id string, completed map[string]bool) bool {
	c, ok := g.byID[id]
	if !ok {
		return false
	}
	for _, prereqID := range c.Prerequisites {
		if !completed[prereqID] {
			return false
		}
	}
	return true
}

// NextUnlocked returns the first concept in topological order that is
// unlocked but not yet completed, skipping already-completed concepts.
// Returns false when every concept is completed.
func NextUnlocked(completed map[string]bool) (Concept, bool) {
	for _, c := range g.topoOrder {
		if !completed[c.ID] && IsUnlocked(c.ID, completed) {
			return c, true
		}
	}
	return Concept{}, false
}

// AllCompleted reports whether every concept in the graph is completed.
func AllCompleted(completed map[string]bool) bool {
	for _, c := range g.concepts {
		if !completed[c.ID] {
			return false
		}
	}
	return true
}

// TopologicalOrder returns all concepts in a valid topological order.
func TopologicalOrder() []Concept {
	return slices.Clone(g.topoOrder)
}

// MisconceptionsFor returns the misconception tags associated with a concept.
func MisconceptionsFor(id string) []string {
	c, ok := g.byID[id]
	if !ok {
		return nil
	}
	return slices.Clone(c.Misconceptions)
}

// Validate checks the graph for structural issues.
// It delegates to validateConcepts with the graph's concept set.
func Validate() error {
	return validateConcepts(g.concepts)
}

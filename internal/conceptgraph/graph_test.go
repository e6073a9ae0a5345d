package conceptgraph

import (
	"testing"
)

func TestGet_Exists(t *testing.T) {
	c, err := Get("loops")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Loops" {
		t.Errorf("got name %q, want %q", c.Name, "Loops")
	}
	if c.Tier != TierCore {
		t.Errorf("got tier %q, want %q", c.Tier, TierCore)
	}
}

func TestGet_NotFound(t *testing.T) {
	_, err := Get("nonexistent")
	if err == nil {
		t.Fatal("expected error for nonexistent concept, got nil")
	}
}

func TestAll_Count(t *testing.T) {
	all := All()
	if len(all) != 9 {
		t.Errorf("got %d concepts, want 9", len(all))
	}
}

func TestRoots(t *testing.T) {
	roots := Roots()
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	if roots[0].ID != "variables" {
		t.Errorf("root concept: got %q, want %q", roots[0].ID, "variables")
	}
}

func TestPrerequisites(t *testing.T) {
	prereqs := Prerequisites("arrays")
	if len(prereqs) != 2 {
		t.Fatalf("arrays: got %d prereqs, want 2", len(prereqs))
	}
	ids := map[string]bool{}
	for _, p := range prereqs {
		ids[p.ID] = true
	}
	if !ids["loops"] || !ids["variables"] {
		t.Errorf("arrays prereqs: got %v", ids)
	}

	if got := Prerequisites("variables"); len(got) != 0 {
		t.Errorf("variables: got %d prereqs, want 0", len(got))
	}
}

func TestDependents(t *testing.T) {
	deps := Dependents("loops")
	depIDs := map[string]bool{}
	for _, d := range deps {
		depIDs[d.ID] = true
	}
	for _, id := range []string{"arrays", "complexity"} {
		if !depIDs[id] {
			t.Errorf("loops missing dependent %q", id)
		}
	}
}

func TestIsUnlocked(t *testing.T) {
	empty := map[string]bool{}

	if !IsUnlocked("variables", empty) {
		t.Error("variables should be unlocked with empty completed set")
	}
	if IsUnlocked("arrays", empty) {
		t.Error("arrays should be locked with empty completed set")
	}
	if IsUnlocked("arrays", map[string]bool{"loops": true}) {
		t.Error("arrays should be locked with only one of two prereqs")
	}
	if !IsUnlocked("arrays", map[string]bool{"loops": true, "variables": true}) {
		t.Error("arrays should be unlocked with both prereqs completed")
	}
}

func TestNextUnlocked(t *testing.T) {
	c, ok := NextUnlocked(map[string]bool{})
	if !ok {
		t.Fatal("expected a next concept with nothing completed")
	}
	if c.ID != "variables" {
		t.Errorf("first concept: got %q, want %q", c.ID, "variables")
	}

	completed := map[string]bool{"variables": true}
	c, ok = NextUnlocked(completed)
	if !ok {
		t.Fatal("expected a next concept")
	}
	if completed[c.ID] {
		t.Errorf("NextUnlocked returned completed concept %q", c.ID)
	}
	if !IsUnlocked(c.ID, completed) {
		t.Errorf("NextUnlocked returned locked concept %q", c.ID)
	}

	all := map[string]bool{}
	for _, cc := range All() {
		all[cc.ID] = true
	}
	if _, ok := NextUnlocked(all); ok {
		t.Error("NextUnlocked should report false when everything is completed")
	}
	if !AllCompleted(all) {
		t.Error("AllCompleted should be true when everything is completed")
	}
}

func TestTopologicalOrder(t *testing.T) {
	topo := TopologicalOrder()
	if len(topo) != 9 {
		t.Fatalf("got %d concepts in topo order, want 9", len(topo))
	}

	posMap := make(map[string]int, len(topo))
	for i, c := range topo {
		posMap[c.ID] = i
	}

	for _, c := range topo {
		for _, prereqID := range c.Prerequisites {
			prereqPos, ok := posMap[prereqID]
			if !ok {
				t.Errorf("prerequisite %q of %q not found in topo order", prereqID, c.ID)
				continue
			}
			if prereqPos >= posMap[c.ID] {
				t.Errorf("concept %q (pos %d) appears before prerequisite %q (pos %d)",
					c.ID, posMap[c.ID], prereqID, prereqPos)
			}
		}
	}
}

func TestIsCompleted(t *testing.T) {
	// High score but prerequisite chain incomplete.
	if IsCompleted("loops", 0.95, map[string]bool{}) {
		t.Error("loops should not complete with incomplete prerequisites")
	}

	prereqs := map[string]bool{"variables": true, "types": true, "operators": true, "conditionals": true}
	if !IsCompleted("loops", 0.85, prereqs) {
		t.Error("loops should complete at 0.85 with all prerequisites completed")
	}
	if IsCompleted("loops", 0.79, prereqs) {
		t.Error("loops should not complete below the completion threshold")
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	a := All()
	a[0].Name = "MUTATED"
	b := All()
	if b[0].Name == "MUTATED" {
		t.Error("All did not return a defensive copy")
	}
}

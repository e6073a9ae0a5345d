package conceptgraph

import (
	"strings"
	"testing"
)

func TestValidate_SeedGraphPasses(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed graph validation failed: %v", err)
	}
}

func TestValidateConcepts_DetectsCycle(t *testing.T) {
	concepts := []Concept{
		{ID: "a", Tier: TierCore, Prerequisites: []string{"b"}},
		{ID: "b", Tier: TierCore, Prerequisites: []string{"a"}},
		{ID: "root", Tier: TierFoundation, Prerequisites: nil},
	}
	err := validateConcepts(concepts)
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention cycle, got: %v", err)
	}
}

func TestValidateConcepts_DetectsDanglingPrereq(t *testing.T) {
	concepts := []Concept{
		{ID: "a", Tier: TierFoundation, Prerequisites: nil},
		{ID: "b", Tier: TierCore, Prerequisites: []string{"nonexistent"}},
	}
	err := validateConcepts(concepts)
	if err == nil {
		t.Fatal("expected error for dangling prerequisite, got nil")
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("error should mention the missing ID, got: %v", err)
	}
}

func TestValidateConcepts_DetectsDuplicateID(t *testing.T) {
	concepts := []Concept{
		{ID: "a", Tier: TierFoundation, Prerequisites: nil},
		{ID: "a", Tier: TierFoundation, Prerequisites: nil},
	}
	err := validateConcepts(concepts)
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateConcepts_RequiresAtLeastOneRoot(t *testing.T) {
	concepts := []Concept{
		{ID: "a", Tier: TierCore, Prerequisites: []string{"b"}},
		{ID: "b", Tier: TierCore, Prerequisites: []string{"a"}},
	}
	err := validateConcepts(concepts)
	if err == nil {
		t.Fatal("expected error for no roots, got nil")
	}
	if !strings.Contains(err.Error(), "root") {
		t.Errorf("error should mention root, got: %v", err)
	}
}

func TestValidateConcepts_RejectsUnknownTier(t *testing.T) {
	concepts := []Concept{
		{ID: "a", Tier: DifficultyTier("bogus"), Prerequisites: nil},
	}
	err := validateConcepts(concepts)
	if err == nil {
		t.Fatal("expected error for unknown tier, got nil")
	}
	if !strings.Contains(err.Error(), "tier") {
		t.Errorf("error should mention tier, got: %v", err)
	}
}

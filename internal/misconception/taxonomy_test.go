package misconception

import "testing"

func TestGet_Exists(t *testing.T) {
	m := Get("off_by_one")
	if m == nil {
		t.Fatal("off_by_one should exist in the registry")
	}
	if m.Severity != SeverityHigh {
		t.Errorf("severity = %q, want high", m.Severity)
	}
	if m.RemediationHint == "" {
		t.Error("remediation hint should not be empty")
	}
}

func TestGet_NotFound(t *testing.T) {
	if m := Get("nonexistent"); m != nil {
		t.Errorf("expected nil for unknown tag, got %+v", m)
	}
}

func TestByConcept(t *testing.T) {
	loops := ByConcept("loops")
	ids := map[string]bool{}
	for _, m := range loops {
		ids[m.ID] = true
	}
	for _, want := range []string{"off_by_one", "wrong_loop_condition", "infinite_loop", "nested_loop_complexity"} {
		if !ids[want] {
			t.Errorf("loops missing misconception %q", want)
		}
	}
}

func TestAll_InsertionOrderAndCount(t *testing.T) {
	all := All()
	if len(all) != 18 {
		t.Fatalf("got %d misconceptions, want 18", len(all))
	}
	for i, m := range all {
		if m.Order() != i {
			t.Errorf("misconception %q has order %d at position %d", m.ID, m.Order(), i)
		}
	}
}

func TestSeverity_Ordering(t *testing.T) {
	if !SeverityHigh.MoreSevere(SeverityMedium) {
		t.Error("high should outrank medium")
	}
	if !SeverityMedium.MoreSevere(SeverityLow) {
		t.Error("medium should outrank low")
	}
	if SeverityLow.MoreSevere(SeverityHigh) {
		t.Error("low should not outrank high")
	}
}

func TestRegistry_ConceptsAreConsistent(t *testing.T) {
	// Every misconception must name at least one concept.
	for _, m := range All() {
		if len(m.Concepts) == 0 {
			t.Errorf("misconception %q has no associated concepts", m.ID)
		}
	}
}

package misconception

import "slices"

// Severity ranks how damaging a misconception is when left unaddressed.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// rank maps severities to an ordering value for tie-breaking (higher wins).
func (s Severity) rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// MoreSevere reports whether s outranks other.
func (s Severity) MoreSevere(other Severity) bool {
	return s.rank() > other.rank()
}

// Misconception defines a known misconception pattern in the fixed registry.
type Misconception struct {
	ID              string
	Label           string
	Description     string
	Concepts        []string
	Severity        Severity
	RemediationHint string
	// order is the registry insertion position, used as the final
	// tie-breaker when ordering diagnosis matches.
	order int
}

// Order returns the registry insertion position for this misconception.
func (m *Misconception) Order() int { return m.order }

// TagUnclassified is assigned when an incorrect answer matches no registry
// pattern. Mastery still updates from correctness alone.
const TagUnclassified = "unclassified"

// registry is the package-level misconception registry, keyed by ID.
var registry map[string]*Misconception

// byConcept indexes misconceptions by associated concept.
var byConcept map[string][]*Misconception

func init() {
	registry = make(map[string]*Misconception, len(seedMisconceptions))
	byConcept = make(map[string][]*Misconception)
	for i := range seedMisconceptions {
		m := &seedMisconceptions[i]
		m.order = i
		registry[m.ID] = m
		for _, c := range m.Concepts {
			byConcept[c] = append(byConcept[c], m)
		}
	}
}

// Get returns a misconception by ID, or nil if not found.
func Get(id string) *Misconception {
	return registry[id]
}

// Exists reports whether a tag is in the registry.
func Exists(id string) bool {
	_, ok := registry[id]
	return ok
}

// ByConcept returns all misconceptions associated with a concept, in
// registry insertion order.
func ByConcept(conceptID string) []*Misconception {
	return slices.Clone(byConcept[conceptID])
}

// All returns every misconception in the registry, in insertion order.
func All() []*Misconception {
	result := make([]*Misconception, 0, len(registry))
	for i := range seedMisconceptions {
		result = append(result, &seedMisconceptions[i])
	}
	return result
}

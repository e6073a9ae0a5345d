package orchestrator

import (
	"fmt"

	"github.com/abhisek/codetutor/internal/conceptgraph"
	"github.com/abhisek/codetutor/internal/misconception"
)

// Orchestrator is the deterministic decision policy. Given identical
// state it always produces the identical decision; the only admissible
// nondeterminism lives behind the content-synthesis boundary.
type Orchestrator struct {
	cfg Config
}

// New creates an Orchestrator with the given policy config.
func New(cfg Config) *Orchestrator {
	return &Orchestrator{cfg: cfg}
}

// Decide evaluates the transition policy over explicit state. The rules
// are checked in a fixed order; the first that applies wins.
func (o *Orchestrator) Decide(state State) Decision {
	finished := state.Finished()

	if conceptgraph.AllCompleted(finished) {
		return Decision{
			Action: ActionComplete,
			Reason: "all concepts completed",
		}
	}

	// A fresh student has no current concept yet.
	if state.CurrentConcept == "" {
		next, ok := conceptgraph.NextUnlocked(finished)
		if !ok {
			return Decision{
				Action: ActionComplete,
				Reason: "no unlocked concepts remain",
			}
		}
		return Decision{
			Action:  ActionTeach,
			Concept: next.ID,
			Reason:  fmt.Sprintf("starting first concept %q", next.ID),
		}
	}

	score := state.MasteryScores[state.CurrentConcept]

	// No prior attempt and no lesson yet: teach first.
	if state.AttemptsOnConcept == 0 && !state.LessonDelivered {
		return Decision{
			Action:  ActionTeach,
			Concept: state.CurrentConcept,
			Reason:  fmt.Sprintf("no prior attempt on %q", state.CurrentConcept),
		}
	}

	// Mastery reached with enough evidence: advance.
	if score >= o.cfg.AdvanceThreshold && state.AttemptsOnConcept >= o.cfg.MinAttempts {
		return o.advance(state, false,
			fmt.Sprintf("mastery %.3f reached advance threshold %.2f", score, o.cfg.AdvanceThreshold))
	}

	// Attempt cap reached without mastery: advance anyway and flag the
	// student for instructor attention.
	if state.AttemptsOnConcept >= o.cfg.MaxAttempts {
		return o.advance(state, true,
			fmt.Sprintf("attempt cap %d reached on %q without mastery", o.cfg.MaxAttempts, state.CurrentConcept))
	}

	// Incorrect and struggling: remediate against the diagnosed tags.
	if state.AttemptsOnConcept > 0 && !state.LastAttemptCorrect && score < o.cfg.ReteachThreshold {
		return Decision{
			Action:               ActionReteach,
			Concept:              state.CurrentConcept,
			Reason:               fmt.Sprintf("mastery %.3f below reteach threshold %.2f", score, o.cfg.ReteachThreshold),
			TargetMisconceptions: reteachTags(state.RecentTags),
		}
	}

	// After a lesson, or progressing but below threshold: keep testing.
	return Decision{
		Action:  ActionTest,
		Concept: state.CurrentConcept,
		Reason:  fmt.Sprintf("testing %q at mastery %.3f", state.CurrentConcept, score),
	}
}

// advance picks the next unlocked, non-finished concept in topological
// order, excluding the one being left. With nothing left to unlock the
// student is done.
func (o *Orchestrator) advance(state State, struggling bool, reason string) Decision {
	finished := state.Finished()
	// The concept being left never comes back, mastered or not.
	finished[state.CurrentConcept] = true

	next, ok := conceptgraph.NextUnlocked(finished)
	if !ok {
		return Decision{
			Action:     ActionComplete,
			Reason:     "no unlocked concepts remain",
			Struggling: struggling,
		}
	}

	return Decision{
		Action:     ActionAdvance,
		Concept:    next.ID,
		Reason:     reason,
		Struggling: struggling,
	}
}

// reteachTags filters the recent tags down to registry entries worth
// targeting. An unclassified-only history means generic remediation.
func reteachTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		if t == misconception.TagUnclassified {
			continue
		}
		if misconception.Exists(t) {
			out = append(out, t)
		}
	}
	return out
}

package orchestrator

// Action is the pedagogical action the orchestrator selects.
type Action string

const (
	// ActionTeach serves a lesson only, no question.
	ActionTeach Action = "TEACH"
	// ActionTest serves a question on the current concept.
	ActionTest Action = "TEST"
	// ActionReteach serves remedial content targeted at the student's
	// recent misconceptions.
	ActionReteach Action = "RETEACH"
	// ActionAdvance moves the student to the next unlocked concept.
	ActionAdvance Action = "ADVANCE"
	// ActionComplete is terminal: every concept is completed.
	ActionComplete Action = "COMPLETE"
)

// State is the explicit decision input, passed in and returned by the
// caller. The orchestrator holds no per-student state of its own.
type State struct {
	// CurrentConcept is the concept the student is working on. Empty
	// for a freshly registered student.
	CurrentConcept string

	// MasteryScores maps concept IDs to current mastery in [0,1].
	MasteryScores map[string]float64

	// RecentTags are the misconception tags from the latest incorrect
	// attempt on the current concept.
	RecentTags []string

	// AttemptsOnConcept counts attempts on the current concept.
	AttemptsOnConcept int

	// LastAttemptCorrect reports the most recent attempt's outcome.
	// Meaningful only when AttemptsOnConcept > 0.
	LastAttemptCorrect bool

	// LessonDelivered is true once a TEACH has been served for the
	// current concept.
	LessonDelivered bool

	// Completed marks concepts that satisfy the completion invariant:
	// mastery at threshold and all prerequisites completed.
	Completed map[string]bool

	// Skipped marks concepts left via a forward-progress ADVANCE at
	// the attempt cap. They count as finished for sequencing but are
	// never reported as completed.
	Skipped map[string]bool
}

// Finished returns the union of completed and skipped concepts, the set
// the sequencing policy treats as behind the student.
func (s State) Finished() map[string]bool {
	out := make(map[string]bool, len(s.Completed)+len(s.Skipped))
	for id, done := range s.Completed {
		if done {
			out[id] = true
		}
	}
	for id, done := range s.Skipped {
		if done {
			out[id] = true
		}
	}
	return out
}

// Decision is the ephemeral output of one policy evaluation. It is
// recomputed per request; only the resulting attempt is persisted.
type Decision struct {
	Action Action

	// Concept is the target concept: the current one for TEACH, TEST,
	// and RETEACH, the destination for ADVANCE, empty for COMPLETE.
	Concept string

	// Reason is a human-readable explanation of the decision.
	Reason string

	// TargetMisconceptions carry the tags RETEACH content should
	// address. Empty means a generic remedial template.
	TargetMisconceptions []string

	// Struggling is set on a forward-progress ADVANCE taken at the
	// attempt cap without reaching the advance threshold.
	Struggling bool
}

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// DecisionEvent is the predicate function for decisionevent builders.
type DecisionEvent func(*sql.Selector)

// DiagnosisEvent is the predicate function for diagnosisevent builders.
type DiagnosisEvent func(*sql.Selector)

// InstructorLabelEvent is the predicate function for instructorlabelevent builders.
type InstructorLabelEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// MasteryEvent is the predicate function for masteryevent builders.
type MasteryEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// Student is the predicate function for student builders.
type Student func(*sql.Selector)

// Code generated by ent, DO NOT EDIT.

package masteryevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/codetutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldStudentID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldConceptID, v))
}

// FromScore applies equality check predicate on the "from_score" field. It's identical to FromScoreEQ.
func FromScore(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldFromScore, v))
}

// ToScore applies equality check predicate on the "to_score" field. It's identical to ToScoreEQ.
func ToScore(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldToScore, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldCorrect, v))
}

// BaselineLevel applies equality check predicate on the "baseline_level" field. It's identical to BaselineLevelEQ.
func BaselineLevel(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldBaselineLevel, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldTimestamp, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContainsFold(FieldStudentID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContainsFold(FieldConceptID, v))
}

// FromScoreEQ applies the EQ predicate on the "from_score" field.
func FromScoreEQ(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldFromScore, v))
}

// FromScoreNEQ applies the NEQ predicate on the "from_score" field.
func FromScoreNEQ(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldFromScore, v))
}

// FromScoreIn applies the In predicate on the "from_score" field.
func FromScoreIn(vs ...float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldFromScore, vs...))
}

// FromScoreNotIn applies the NotIn predicate on the "from_score" field.
func FromScoreNotIn(vs ...float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldFromScore, vs...))
}

// FromScoreGT applies the GT predicate on the "from_score" field.
func FromScoreGT(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldFromScore, v))
}

// FromScoreGTE applies the GTE predicate on the "from_score" field.
func FromScoreGTE(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldFromScore, v))
}

// FromScoreLT applies the LT predicate on the "from_score" field.
func FromScoreLT(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldFromScore, v))
}

// FromScoreLTE applies the LTE predicate on the "from_score" field.
func FromScoreLTE(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldFromScore, v))
}

// ToScoreEQ applies the EQ predicate on the "to_score" field.
func ToScoreEQ(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldToScore, v))
}

// ToScoreNEQ applies the NEQ predicate on the "to_score" field.
func ToScoreNEQ(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldToScore, v))
}

// ToScoreIn applies the In predicate on the "to_score" field.
func ToScoreIn(vs ...float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldToScore, vs...))
}

// ToScoreNotIn applies the NotIn predicate on the "to_score" field.
func ToScoreNotIn(vs ...float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldToScore, vs...))
}

// ToScoreGT applies the GT predicate on the "to_score" field.
func ToScoreGT(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldToScore, v))
}

// ToScoreGTE applies the GTE predicate on the "to_score" field.
func ToScoreGTE(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldToScore, v))
}

// ToScoreLT applies the LT predicate on the "to_score" field.
func ToScoreLT(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldToScore, v))
}

// ToScoreLTE applies the LTE predicate on the "to_score" field.
func ToScoreLTE(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldToScore, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldCorrect, v))
}

// BaselineLevelEQ applies the EQ predicate on the "baseline_level" field.
func BaselineLevelEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldBaselineLevel, v))
}

// BaselineLevelNEQ applies the NEQ predicate on the "baseline_level" field.
func BaselineLevelNEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldBaselineLevel, v))
}

// BaselineLevelIn applies the In predicate on the "baseline_level" field.
func BaselineLevelIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldBaselineLevel, vs...))
}

// BaselineLevelNotIn applies the NotIn predicate on the "baseline_level" field.
func BaselineLevelNotIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldBaselineLevel, vs...))
}

// BaselineLevelGT applies the GT predicate on the "baseline_level" field.
func BaselineLevelGT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldBaselineLevel, v))
}

// BaselineLevelGTE applies the GTE predicate on the "baseline_level" field.
func BaselineLevelGTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldBaselineLevel, v))
}

// BaselineLevelLT applies the LT predicate on the "baseline_level" field.
func BaselineLevelLT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldBaselineLevel, v))
}

// BaselineLevelLTE applies the LTE predicate on the "baseline_level" field.
func BaselineLevelLTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldBaselineLevel, v))
}

// BaselineLevelContains applies the Contains predicate on the "baseline_level" field.
func BaselineLevelContains(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContains(FieldBaselineLevel, v))
}

// BaselineLevelHasPrefix applies the HasPrefix predicate on the "baseline_level" field.
func BaselineLevelHasPrefix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasPrefix(FieldBaselineLevel, v))
}

// BaselineLevelHasSuffix applies the HasSuffix predicate on the "baseline_level" field.
func BaselineLevelHasSuffix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasSuffix(FieldBaselineLevel, v))
}

// BaselineLevelEqualFold applies the EqualFold predicate on the "baseline_level" field.
func BaselineLevelEqualFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEqualFold(FieldBaselineLevel, v))
}

// BaselineLevelContainsFold applies the ContainsFold predicate on the "baseline_level" field.
func BaselineLevelContainsFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContainsFold(FieldBaselineLevel, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MasteryEvent) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MasteryEvent) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MasteryEvent) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.NotPredicates(p))
}

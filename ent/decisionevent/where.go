// Code generated by ent, DO NOT EDIT.

package decisionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/codetutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldStudentID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldAction, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldConceptID, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldReason, v))
}

// Struggling applies equality check predicate on the "struggling" field. It's identical to StrugglingEQ.
func Struggling(v bool) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldStruggling, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldStudentID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldAction, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldConceptID, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldReason, v))
}

// TargetMisconceptionsIsNil applies the IsNil predicate on the "target_misconceptions" field.
func TargetMisconceptionsIsNil() predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIsNull(FieldTargetMisconceptions))
}

// TargetMisconceptionsNotNil applies the NotNil predicate on the "target_misconceptions" field.
func TargetMisconceptionsNotNil() predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotNull(FieldTargetMisconceptions))
}

// StrugglingEQ applies the EQ predicate on the "struggling" field.
func StrugglingEQ(v bool) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldStruggling, v))
}

// StrugglingNEQ applies the NEQ predicate on the "struggling" field.
func StrugglingNEQ(v bool) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldStruggling, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DecisionEvent) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DecisionEvent) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DecisionEvent) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.NotPredicates(p))
}

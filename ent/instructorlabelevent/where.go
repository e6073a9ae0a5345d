// Code generated by ent, DO NOT EDIT.

package instructorlabelevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/codetutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldEQ(FieldAttemptID, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldEQ(FieldStudentID, v))
}

// SystemTag applies equality check predicate on the "system_tag" field. It's identical to SystemTagEQ.
func SystemTag(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldEQ(FieldSystemTag, v))
}

// InstructorTag applies equality check predicate on the "instructor_tag" field. It's identical to InstructorTagEQ.
func InstructorTag(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldEQ(FieldInstructorTag, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldContainsFold(FieldAttemptID, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldContainsFold(FieldStudentID, v))
}

// SystemTagEQ applies the EQ predicate on the "system_tag" field.
func SystemTagEQ(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldEQ(FieldSystemTag, v))
}

// SystemTagNEQ applies the NEQ predicate on the "system_tag" field.
func SystemTagNEQ(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldNEQ(FieldSystemTag, v))
}

// SystemTagIn applies the In predicate on the "system_tag" field.
func SystemTagIn(vs ...string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldIn(FieldSystemTag, vs...))
}

// SystemTagNotIn applies the NotIn predicate on the "system_tag" field.
func SystemTagNotIn(vs ...string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldNotIn(FieldSystemTag, vs...))
}

// SystemTagGT applies the GT predicate on the "system_tag" field.
func SystemTagGT(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldGT(FieldSystemTag, v))
}

// SystemTagGTE applies the GTE predicate on the "system_tag" field.
func SystemTagGTE(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldGTE(FieldSystemTag, v))
}

// SystemTagLT applies the LT predicate on the "system_tag" field.
func SystemTagLT(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldLT(FieldSystemTag, v))
}

// SystemTagLTE applies the LTE predicate on the "system_tag" field.
func SystemTagLTE(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldLTE(FieldSystemTag, v))
}

// SystemTagContains applies the Contains predicate on the "system_tag" field.
func SystemTagContains(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldContains(FieldSystemTag, v))
}

// SystemTagHasPrefix applies the HasPrefix predicate on the "system_tag" field.
func SystemTagHasPrefix(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldHasPrefix(FieldSystemTag, v))
}

// SystemTagHasSuffix applies the HasSuffix predicate on the "system_tag" field.
func SystemTagHasSuffix(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldHasSuffix(FieldSystemTag, v))
}

// SystemTagEqualFold applies the EqualFold predicate on the "system_tag" field.
func SystemTagEqualFold(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldEqualFold(FieldSystemTag, v))
}

// SystemTagContainsFold applies the ContainsFold predicate on the "system_tag" field.
func SystemTagContainsFold(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldContainsFold(FieldSystemTag, v))
}

// InstructorTagEQ applies the EQ predicate on the "instructor_tag" field.
func InstructorTagEQ(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldEQ(FieldInstructorTag, v))
}

// InstructorTagNEQ applies the NEQ predicate on the "instructor_tag" field.
func InstructorTagNEQ(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldNEQ(FieldInstructorTag, v))
}

// InstructorTagIn applies the In predicate on the "instructor_tag" field.
func InstructorTagIn(vs ...string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldIn(FieldInstructorTag, vs...))
}

// InstructorTagNotIn applies the NotIn predicate on the "instructor_tag" field.
func InstructorTagNotIn(vs ...string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldNotIn(FieldInstructorTag, vs...))
}

// InstructorTagGT applies the GT predicate on the "instructor_tag" field.
func InstructorTagGT(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldGT(FieldInstructorTag, v))
}

// InstructorTagGTE applies the GTE predicate on the "instructor_tag" field.
func InstructorTagGTE(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldGTE(FieldInstructorTag, v))
}

// InstructorTagLT applies the LT predicate on the "instructor_tag" field.
func InstructorTagLT(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldLT(FieldInstructorTag, v))
}

// InstructorTagLTE applies the LTE predicate on the "instructor_tag" field.
func InstructorTagLTE(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldLTE(FieldInstructorTag, v))
}

// InstructorTagContains applies the Contains predicate on the "instructor_tag" field.
func InstructorTagContains(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldContains(FieldInstructorTag, v))
}

// InstructorTagHasPrefix applies the HasPrefix predicate on the "instructor_tag" field.
func InstructorTagHasPrefix(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldHasPrefix(FieldInstructorTag, v))
}

// InstructorTagHasSuffix applies the HasSuffix predicate on the "instructor_tag" field.
func InstructorTagHasSuffix(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldHasSuffix(FieldInstructorTag, v))
}

// InstructorTagEqualFold applies the EqualFold predicate on the "instructor_tag" field.
func InstructorTagEqualFold(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldEqualFold(FieldInstructorTag, v))
}

// InstructorTagContainsFold applies the ContainsFold predicate on the "instructor_tag" field.
func InstructorTagContainsFold(v string) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.FieldContainsFold(FieldInstructorTag, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InstructorLabelEvent) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InstructorLabelEvent) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InstructorLabelEvent) predicate.InstructorLabelEvent {
	return predicate.InstructorLabelEvent(sql.NotPredicates(p))
}

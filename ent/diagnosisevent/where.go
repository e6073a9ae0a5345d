// Code generated by ent, DO NOT EDIT.

package diagnosisevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/codetutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldTimestamp, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldStudentID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldQuestionID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldConceptID, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSource, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldConfidence, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldTimestamp, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContainsFold(FieldStudentID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContainsFold(FieldConceptID, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContainsFold(FieldSource, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldConfidence, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DiagnosisEvent) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DiagnosisEvent) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DiagnosisEvent) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.NotPredicates(p))
}

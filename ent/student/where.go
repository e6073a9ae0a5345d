// Code generated by ent, DO NOT EDIT.

package student

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/codetutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldStudentID, v))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldUsername, v))
}

// BaselineLevel applies equality check predicate on the "baseline_level" field. It's identical to BaselineLevelEQ.
func BaselineLevel(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldBaselineLevel, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldActive, v))
}

// CurrentConcept applies equality check predicate on the "current_concept" field. It's identical to CurrentConceptEQ.
func CurrentConcept(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldCurrentConcept, v))
}

// AttemptsOnConcept applies equality check predicate on the "attempts_on_concept" field. It's identical to AttemptsOnConceptEQ.
func AttemptsOnConcept(v int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldAttemptsOnConcept, v))
}

// LastAttemptCorrect applies equality check predicate on the "last_attempt_correct" field. It's identical to LastAttemptCorrectEQ.
func LastAttemptCorrect(v bool) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldLastAttemptCorrect, v))
}

// LessonDelivered applies equality check predicate on the "lesson_delivered" field. It's identical to LessonDeliveredEQ.
func LessonDelivered(v bool) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldLessonDelivered, v))
}

// PretestScore applies equality check predicate on the "pretest_score" field. It's identical to PretestScoreEQ.
func PretestScore(v float64) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldPretestScore, v))
}

// PosttestScore applies equality check predicate on the "posttest_score" field. It's identical to PosttestScoreEQ.
func PosttestScore(v float64) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldPosttestScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldCreatedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldStudentID, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldUsername, v))
}

// BaselineLevelEQ applies the EQ predicate on the "baseline_level" field.
func BaselineLevelEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldBaselineLevel, v))
}

// BaselineLevelNEQ applies the NEQ predicate on the "baseline_level" field.
func BaselineLevelNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldBaselineLevel, v))
}

// BaselineLevelIn applies the In predicate on the "baseline_level" field.
func BaselineLevelIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldBaselineLevel, vs...))
}

// BaselineLevelNotIn applies the NotIn predicate on the "baseline_level" field.
func BaselineLevelNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldBaselineLevel, vs...))
}

// BaselineLevelGT applies the GT predicate on the "baseline_level" field.
func BaselineLevelGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldBaselineLevel, v))
}

// BaselineLevelGTE applies the GTE predicate on the "baseline_level" field.
func BaselineLevelGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldBaselineLevel, v))
}

// BaselineLevelLT applies the LT predicate on the "baseline_level" field.
func BaselineLevelLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldBaselineLevel, v))
}

// BaselineLevelLTE applies the LTE predicate on the "baseline_level" field.
func BaselineLevelLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldBaselineLevel, v))
}

// BaselineLevelContains applies the Contains predicate on the "baseline_level" field.
func BaselineLevelContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldBaselineLevel, v))
}

// BaselineLevelHasPrefix applies the HasPrefix predicate on the "baseline_level" field.
func BaselineLevelHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldBaselineLevel, v))
}

// BaselineLevelHasSuffix applies the HasSuffix predicate on the "baseline_level" field.
func BaselineLevelHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldBaselineLevel, v))
}

// BaselineLevelEqualFold applies the EqualFold predicate on the "baseline_level" field.
func BaselineLevelEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldBaselineLevel, v))
}

// BaselineLevelContainsFold applies the ContainsFold predicate on the "baseline_level" field.
func BaselineLevelContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldBaselineLevel, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldActive, v))
}

// CurrentConceptEQ applies the EQ predicate on the "current_concept" field.
func CurrentConceptEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldCurrentConcept, v))
}

// CurrentConceptNEQ applies the NEQ predicate on the "current_concept" field.
func CurrentConceptNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldCurrentConcept, v))
}

// CurrentConceptIn applies the In predicate on the "current_concept" field.
func CurrentConceptIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldCurrentConcept, vs...))
}

// CurrentConceptNotIn applies the NotIn predicate on the "current_concept" field.
func CurrentConceptNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldCurrentConcept, vs...))
}

// CurrentConceptGT applies the GT predicate on the "current_concept" field.
func CurrentConceptGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldCurrentConcept, v))
}

// CurrentConceptGTE applies the GTE predicate on the "current_concept" field.
func CurrentConceptGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldCurrentConcept, v))
}

// CurrentConceptLT applies the LT predicate on the "current_concept" field.
func CurrentConceptLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldCurrentConcept, v))
}

// CurrentConceptLTE applies the LTE predicate on the "current_concept" field.
func CurrentConceptLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldCurrentConcept, v))
}

// CurrentConceptContains applies the Contains predicate on the "current_concept" field.
func CurrentConceptContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldCurrentConcept, v))
}

// CurrentConceptHasPrefix applies the HasPrefix predicate on the "current_concept" field.
func CurrentConceptHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldCurrentConcept, v))
}

// CurrentConceptHasSuffix applies the HasSuffix predicate on the "current_concept" field.
func CurrentConceptHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldCurrentConcept, v))
}

// CurrentConceptEqualFold applies the EqualFold predicate on the "current_concept" field.
func CurrentConceptEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldCurrentConcept, v))
}

// CurrentConceptContainsFold applies the ContainsFold predicate on the "current_concept" field.
func CurrentConceptContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldCurrentConcept, v))
}

// MasteryScoresIsNil applies the IsNil predicate on the "mastery_scores" field.
func MasteryScoresIsNil() predicate.Student {
	return predicate.Student(sql.FieldIsNull(FieldMasteryScores))
}

// MasteryScoresNotNil applies the NotNil predicate on the "mastery_scores" field.
func MasteryScoresNotNil() predicate.Student {
	return predicate.Student(sql.FieldNotNull(FieldMasteryScores))
}

// RecentTagsIsNil applies the IsNil predicate on the "recent_tags" field.
func RecentTagsIsNil() predicate.Student {
	return predicate.Student(sql.FieldIsNull(FieldRecentTags))
}

// RecentTagsNotNil applies the NotNil predicate on the "recent_tags" field.
func RecentTagsNotNil() predicate.Student {
	return predicate.Student(sql.FieldNotNull(FieldRecentTags))
}

// AttemptsOnConceptEQ applies the EQ predicate on the "attempts_on_concept" field.
func AttemptsOnConceptEQ(v int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldAttemptsOnConcept, v))
}

// AttemptsOnConceptNEQ applies the NEQ predicate on the "attempts_on_concept" field.
func AttemptsOnConceptNEQ(v int) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldAttemptsOnConcept, v))
}

// AttemptsOnConceptIn applies the In predicate on the "attempts_on_concept" field.
func AttemptsOnConceptIn(vs ...int) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldAttemptsOnConcept, vs...))
}

// AttemptsOnConceptNotIn applies the NotIn predicate on the "attempts_on_concept" field.
func AttemptsOnConceptNotIn(vs ...int) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldAttemptsOnConcept, vs...))
}

// AttemptsOnConceptGT applies the GT predicate on the "attempts_on_concept" field.
func AttemptsOnConceptGT(v int) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldAttemptsOnConcept, v))
}

// AttemptsOnConceptGTE applies the GTE predicate on the "attempts_on_concept" field.
func AttemptsOnConceptGTE(v int) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldAttemptsOnConcept, v))
}

// AttemptsOnConceptLT applies the LT predicate on the "attempts_on_concept" field.
func AttemptsOnConceptLT(v int) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldAttemptsOnConcept, v))
}

// AttemptsOnConceptLTE applies the LTE predicate on the "attempts_on_concept" field.
func AttemptsOnConceptLTE(v int) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldAttemptsOnConcept, v))
}

// LastAttemptCorrectEQ applies the EQ predicate on the "last_attempt_correct" field.
func LastAttemptCorrectEQ(v bool) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldLastAttemptCorrect, v))
}

// LastAttemptCorrectNEQ applies the NEQ predicate on the "last_attempt_correct" field.
func LastAttemptCorrectNEQ(v bool) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldLastAttemptCorrect, v))
}

// LessonDeliveredEQ applies the EQ predicate on the "lesson_delivered" field.
func LessonDeliveredEQ(v bool) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldLessonDelivered, v))
}

// LessonDeliveredNEQ applies the NEQ predicate on the "lesson_delivered" field.
func LessonDeliveredNEQ(v bool) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldLessonDelivered, v))
}

// CompletedIsNil applies the IsNil predicate on the "completed" field.
func CompletedIsNil() predicate.Student {
	return predicate.Student(sql.FieldIsNull(FieldCompleted))
}

// CompletedNotNil applies the NotNil predicate on the "completed" field.
func CompletedNotNil() predicate.Student {
	return predicate.Student(sql.FieldNotNull(FieldCompleted))
}

// SkippedIsNil applies the IsNil predicate on the "skipped" field.
func SkippedIsNil() predicate.Student {
	return predicate.Student(sql.FieldIsNull(FieldSkipped))
}

// SkippedNotNil applies the NotNil predicate on the "skipped" field.
func SkippedNotNil() predicate.Student {
	return predicate.Student(sql.FieldNotNull(FieldSkipped))
}

// PretestScoreEQ applies the EQ predicate on the "pretest_score" field.
func PretestScoreEQ(v float64) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldPretestScore, v))
}

// PretestScoreNEQ applies the NEQ predicate on the "pretest_score" field.
func PretestScoreNEQ(v float64) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldPretestScore, v))
}

// PretestScoreIn applies the In predicate on the "pretest_score" field.
func PretestScoreIn(vs ...float64) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldPretestScore, vs...))
}

// PretestScoreNotIn applies the NotIn predicate on the "pretest_score" field.
func PretestScoreNotIn(vs ...float64) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldPretestScore, vs...))
}

// PretestScoreGT applies the GT predicate on the "pretest_score" field.
func PretestScoreGT(v float64) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldPretestScore, v))
}

// PretestScoreGTE applies the GTE predicate on the "pretest_score" field.
func PretestScoreGTE(v float64) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldPretestScore, v))
}

// PretestScoreLT applies the LT predicate on the "pretest_score" field.
func PretestScoreLT(v float64) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldPretestScore, v))
}

// PretestScoreLTE applies the LTE predicate on the "pretest_score" field.
func PretestScoreLTE(v float64) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldPretestScore, v))
}

// PretestScoreIsNil applies the IsNil predicate on the "pretest_score" field.
func PretestScoreIsNil() predicate.Student {
	return predicate.Student(sql.FieldIsNull(FieldPretestScore))
}

// PretestScoreNotNil applies the NotNil predicate on the "pretest_score" field.
func PretestScoreNotNil() predicate.Student {
	return predicate.Student(sql.FieldNotNull(FieldPretestScore))
}

// PosttestScoreEQ applies the EQ predicate on the "posttest_score" field.
func PosttestScoreEQ(v float64) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldPosttestScore, v))
}

// PosttestScoreNEQ applies the NEQ predicate on the "posttest_score" field.
func PosttestScoreNEQ(v float64) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldPosttestScore, v))
}

// PosttestScoreIn applies the In predicate on the "posttest_score" field.
func PosttestScoreIn(vs ...float64) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldPosttestScore, vs...))
}

// PosttestScoreNotIn applies the NotIn predicate on the "posttest_score" field.
func PosttestScoreNotIn(vs ...float64) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldPosttestScore, vs...))
}

// PosttestScoreGT applies the GT predicate on the "posttest_score" field.
func PosttestScoreGT(v float64) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldPosttestScore, v))
}

// PosttestScoreGTE applies the GTE predicate on the "posttest_score" field.
func PosttestScoreGTE(v float64) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldPosttestScore, v))
}

// PosttestScoreLT applies the LT predicate on the "posttest_score" field.
func PosttestScoreLT(v float64) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldPosttestScore, v))
}

// PosttestScoreLTE applies the LTE predicate on the "posttest_score" field.
func PosttestScoreLTE(v float64) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldPosttestScore, v))
}

// PosttestScoreIsNil applies the IsNil predicate on the "posttest_score" field.
func PosttestScoreIsNil() predicate.Student {
	return predicate.Student(sql.FieldIsNull(FieldPosttestScore))
}

// PosttestScoreNotNil applies the NotNil predicate on the "posttest_score" field.
func PosttestScoreNotNil() predicate.Student {
	return predicate.Student(sql.FieldNotNull(FieldPosttestScore))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Student) predicate.Student {
	return predicate.Student(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Student) predicate.Student {
	return predicate.Student(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Student) predicate.Student {
	return predicate.Student(sql.NotPredicates(p))
}

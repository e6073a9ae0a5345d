// Code generated by ent, DO NOT EDIT.

package student

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the student type in the database.
	Label = "student"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldBaselineLevel holds the string denoting the baseline_level field in the database.
	FieldBaselineLevel = "baseline_level"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldCurrentConcept holds the string denoting the current_concept field in the database.
	FieldCurrentConcept = "current_concept"
	// FieldMasteryScores holds the string denoting the mastery_scores field in the database.
	FieldMasteryScores = "mastery_scores"
	// FieldRecentTags holds the string denoting the recent_tags field in the database.
	FieldRecentTags = "recent_tags"
	// FieldAttemptsOnConcept holds the string denoting the attempts_on_concept field in the database.
	FieldAttemptsOnConcept = "attempts_on_concept"
	// FieldLastAttemptCorrect holds the string denoting the last_attempt_correct field in the database.
	FieldLastAttemptCorrect = "last_attempt_correct"
	// FieldLessonDelivered holds the string denoting the lesson_delivered field in the database.
	FieldLessonDelivered = "lesson_delivered"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldSkipped holds the string denoting the skipped field in the database.
	FieldSkipped = "skipped"
	// FieldPretestScore holds the string denoting the pretest_score field in the database.
	FieldPretestScore = "pretest_score"
	// FieldPosttestScore holds the string denoting the posttest_score field in the database.
	FieldPosttestScore = "posttest_score"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the student in the database.
	Table = "students"
)

// Columns holds all SQL columns for student fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldUsername,
	FieldBaselineLevel,
	FieldActive,
	FieldCurrentConcept,
	FieldMasteryScores,
	FieldRecentTags,
	FieldAttemptsOnConcept,
	FieldLastAttemptCorrect,
	FieldLessonDelivered,
	FieldCompleted,
	FieldSkipped,
	FieldPretestScore,
	FieldPosttestScore,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	UsernameValidator func(string) error
	// DefaultBaselineLevel holds the default value on creation for the "baseline_level" field.
	DefaultBaselineLevel string
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCurrentConcept holds the default value on creation for the "current_concept" field.
	DefaultCurrentConcept string
	// DefaultAttemptsOnConcept holds the default value on creation for the "attempts_on_concept" field.
	DefaultAttemptsOnConcept int
	// DefaultLastAttemptCorrect holds the default value on creation for the "last_attempt_correct" field.
	DefaultLastAttemptCorrect bool
	// DefaultLessonDelivered holds the default value on creation for the "lesson_delivered" field.
	DefaultLessonDelivered bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Student queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByBaselineLevel orders the results by the baseline_level field.
func ByBaselineLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaselineLevel, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByCurrentConcept orders the results by the current_concept field.
func ByCurrentConcept(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentConcept, opts...).ToFunc()
}

// ByAttemptsOnConcept orders the results by the attempts_on_concept field.
func ByAttemptsOnConcept(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptsOnConcept, opts...).ToFunc()
}

// ByLastAttemptCorrect orders the results by the last_attempt_correct field.
func ByLastAttemptCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAttemptCorrect, opts...).ToFunc()
}

// ByLessonDelivered orders the results by the lesson_delivered field.
func ByLessonDelivered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonDelivered, opts...).ToFunc()
}

// ByPretestScore orders the results by the pretest_score field.
func ByPretestScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPretestScore, opts...).ToFunc()
}

// ByPosttestScore orders the results by the posttest_score field.
func ByPosttestScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosttestScore, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

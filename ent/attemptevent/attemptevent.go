// Code generated by ent, DO NOT EDIT.

package attemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attemptevent type in the database.
	Label = "attempt_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldQuestionKind holds the string denoting the question_kind field in the database.
	FieldQuestionKind = "question_kind"
	// FieldResponse holds the string denoting the response field in the database.
	FieldResponse = "response"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldExecutionOutput holds the string denoting the execution_output field in the database.
	FieldExecutionOutput = "execution_output"
	// Table holds the table name of the attemptevent in the database.
	Table = "attempt_events"
)

// Columns holds all SQL columns for attemptevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldStudentID,
	FieldQuestionID,
	FieldConceptID,
	FieldQuestionKind,
	FieldResponse,
	FieldCorrect,
	FieldTags,
	FieldExecutionOutput,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	ConceptIDValidator func(string) error
	// DefaultQuestionKind holds the default value on creation for the "question_kind" field.
	DefaultQuestionKind string
)

// OrderOption defines the ordering options for the AttemptEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// ByQuestionKind orders the results by the question_kind field.
func ByQuestionKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionKind, opts...).ToFunc()
}

// ByResponse orders the results by the response field.
func ByResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponse, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByExecutionOutput orders the results by the execution_output field.
func ByExecutionOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionOutput, opts...).ToFunc()
}

// Code generated by ent, DO NOT EDIT.

package masteryevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the masteryevent type in the database.
	Label = "mastery_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldFromScore holds the string denoting the from_score field in the database.
	FieldFromScore = "from_score"
	// FieldToScore holds the string denoting the to_score field in the database.
	FieldToScore = "to_score"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldBaselineLevel holds the string denoting the baseline_level field in the database.
	FieldBaselineLevel = "baseline_level"
	// Table holds the table name of the masteryevent in the database.
	Table = "mastery_events"
)

// Columns holds all SQL columns for masteryevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldStudentID,
	FieldConceptID,
	FieldFromScore,
	FieldToScore,
	FieldCorrect,
	FieldBaselineLevel,
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
	// ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	ConceptIDValidator func(string) error
	// DefaultBaselineLevel holds the default value on creation for the "baseline_level" field.
	DefaultBaselineLevel string
)

// OrderOption defines the ordering options for the MasteryEvent queries.
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

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// ByFromScore orders the results by the from_score field.
func ByFromScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromScore, opts...).ToFunc()
}

// ByToScore orders the results by the to_score field.
func ByToScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToScore, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByBaselineLevel orders the results by the baseline_level field.
func ByBaselineLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaselineLevel, opts...).ToFunc()
}

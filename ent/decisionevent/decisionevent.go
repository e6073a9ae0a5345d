// Code generated by ent, DO NOT EDIT.

package decisionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the decisionevent type in the database.
	Label = "decision_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldTargetMisconceptions holds the string denoting the target_misconceptions field in the database.
	FieldTargetMisconceptions = "target_misconceptions"
	// FieldStruggling holds the string denoting the struggling field in the database.
	FieldStruggling = "struggling"
	// Table holds the table name of the decisionevent in the database.
	Table = "decision_events"
)

// Columns holds all SQL columns for decisionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldStudentID,
	FieldAction,
	FieldConceptID,
	FieldReason,
	FieldTargetMisconceptions,
	FieldStruggling,
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
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultConceptID holds the default value on creation for the "concept_id" field.
	DefaultConceptID string
	// DefaultReason holds the default value on creation for the "reason" field.
	DefaultReason string
	// DefaultStruggling holds the default value on creation for the "struggling" field.
	DefaultStruggling bool
)

// OrderOption defines the ordering options for the DecisionEvent queries.
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

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByStruggling orders the results by the struggling field.
func ByStruggling(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStruggling, opts...).ToFunc()
}

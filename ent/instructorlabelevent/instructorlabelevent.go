// Code generated by ent, DO NOT EDIT.

package instructorlabelevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the instructorlabelevent type in the database.
	Label = "instructor_label_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAttemptID holds the string denoting the attempt_id field in the database.
	FieldAttemptID = "attempt_id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldSystemTag holds the string denoting the system_tag field in the database.
	FieldSystemTag = "system_tag"
	// FieldInstructorTag holds the string denoting the instructor_tag field in the database.
	FieldInstructorTag = "instructor_tag"
	// Table holds the table name of the instructorlabelevent in the database.
	Table = "instructor_label_events"
)

// Columns holds all SQL columns for instructorlabelevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAttemptID,
	FieldStudentID,
	FieldSystemTag,
	FieldInstructorTag,
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
	// AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	AttemptIDValidator func(string) error
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// DefaultSystemTag holds the default value on creation for the "system_tag" field.
	DefaultSystemTag string
	// InstructorTagValidator is a validator for the "instructor_tag" field. It is called by the builders before save.
	InstructorTagValidator func(string) error
)

// OrderOption defines the ordering options for the InstructorLabelEvent queries.
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

// ByAttemptID orders the results by the attempt_id field.
func ByAttemptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// BySystemTag orders the results by the system_tag field.
func BySystemTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemTag, opts...).ToFunc()
}

// ByInstructorTag orders the results by the instructor_tag field.
func ByInstructorTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstructorTag, opts...).ToFunc()
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/codetutor/ent/instructorlabelevent"
)

// InstructorLabelEvent is the model entity for the InstructorLabelEvent schema.
type InstructorLabelEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Question instance the label refers to
	AttemptID string `json:"attempt_id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// SystemTag holds the value of the "system_tag" field.
	SystemTag string `json:"system_tag,omitempty"`
	// InstructorTag holds the value of the "instructor_tag" field.
	InstructorTag string `json:"instructor_tag,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InstructorLabelEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case instructorlabelevent.FieldID, instructorlabelevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case instructorlabelevent.FieldAttemptID, instructorlabelevent.FieldStudentID, instructorlabelevent.FieldSystemTag, instructorlabelevent.FieldInstructorTag:
			values[i] = new(sql.NullString)
		case instructorlabelevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InstructorLabelEvent fields.
func (_m *InstructorLabelEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case instructorlabelevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case instructorlabelevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case instructorlabelevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case instructorlabelevent.FieldAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				_m.AttemptID = value.String
			}
		case instructorlabelevent.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case instructorlabelevent.FieldSystemTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_tag", values[i])
			} else if value.Valid {
				_m.SystemTag = value.String
			}
		case instructorlabelevent.FieldInstructorTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instructor_tag", values[i])
			} else if value.Valid {
				_m.InstructorTag = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InstructorLabelEvent.
// This includes values selected through modifiers, order, etc.
func (_m *InstructorLabelEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InstructorLabelEvent.
// Note that you need to call InstructorLabelEvent.Unwrap() before calling this method if this InstructorLabelEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InstructorLabelEvent) Update() *InstructorLabelEventUpdateOne {
	return NewInstructorLabelEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InstructorLabelEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InstructorLabelEvent) Unwrap() *InstructorLabelEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InstructorLabelEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InstructorLabelEvent) String() string {
	var builder strings.Builder
	builder.WriteString("InstructorLabelEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("attempt_id=")
	builder.WriteString(_m.AttemptID)
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("system_tag=")
	builder.WriteString(_m.SystemTag)
	builder.WriteString(", ")
	builder.WriteString("instructor_tag=")
	builder.WriteString(_m.InstructorTag)
	builder.WriteByte(')')
	return builder.String()
}

// InstructorLabelEvents is a parsable slice of InstructorLabelEvent.
type InstructorLabelEvents []*InstructorLabelEvent

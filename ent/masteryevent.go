// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/codetutor/ent/masteryevent"
)

// MasteryEvent is the model entity for the MasteryEvent schema.
type MasteryEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// ConceptID holds the value of the "concept_id" field.
	ConceptID string `json:"concept_id,omitempty"`
	// FromScore holds the value of the "from_score" field.
	FromScore float64 `json:"from_score,omitempty"`
	// ToScore holds the value of the "to_score" field.
	ToScore float64 `json:"to_score,omitempty"`
	// Outcome that drove the update
	Correct bool `json:"correct,omitempty"`
	// BaselineLevel holds the value of the "baseline_level" field.
	BaselineLevel string `json:"baseline_level,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MasteryEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case masteryevent.FieldCorrect:
			values[i] = new(sql.NullBool)
		case masteryevent.FieldFromScore, masteryevent.FieldToScore:
			values[i] = new(sql.NullFloat64)
		case masteryevent.FieldID, masteryevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case masteryevent.FieldStudentID, masteryevent.FieldConceptID, masteryevent.FieldBaselineLevel:
			values[i] = new(sql.NullString)
		case masteryevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MasteryEvent fields.
func (_m *MasteryEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case masteryevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case masteryevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case masteryevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case masteryevent.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case masteryevent.FieldConceptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value.Valid {
				_m.ConceptID = value.String
			}
		case masteryevent.FieldFromScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field from_score", values[i])
			} else if value.Valid {
				_m.FromScore = value.Float64
			}
		case masteryevent.FieldToScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field to_score", values[i])
			} else if value.Valid {
				_m.ToScore = value.Float64
			}
		case masteryevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case masteryevent.FieldBaselineLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field baseline_level", values[i])
			} else if value.Valid {
				_m.BaselineLevel = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MasteryEvent.
// This includes values selected through modifiers, order, etc.
func (_m *MasteryEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MasteryEvent.
// Note that you need to call MasteryEvent.Unwrap() before calling this method if this MasteryEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MasteryEvent) Update() *MasteryEventUpdateOne {
	return NewMasteryEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MasteryEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MasteryEvent) Unwrap() *MasteryEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MasteryEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MasteryEvent) String() string {
	var builder strings.Builder
	builder.WriteString("MasteryEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("concept_id=")
	builder.WriteString(_m.ConceptID)
	builder.WriteString(", ")
	builder.WriteString("from_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.FromScore))
	builder.WriteString(", ")
	builder.WriteString("to_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToScore))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("baseline_level=")
	builder.WriteString(_m.BaselineLevel)
	builder.WriteByte(')')
	return builder.String()
}

// MasteryEvents is a parsable slice of MasteryEvent.
type MasteryEvents []*MasteryEvent

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/codetutor/ent/decisionevent"
)

// DecisionEvent is the model entity for the DecisionEvent schema.
type DecisionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// TEACH, TEST, RETEACH, ADVANCE, or COMPLETE
	Action string `json:"action,omitempty"`
	// ConceptID holds the value of the "concept_id" field.
	ConceptID string `json:"concept_id,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// TargetMisconceptions holds the value of the "target_misconceptions" field.
	TargetMisconceptions []string `json:"target_misconceptions,omitempty"`
	// Set on a forced advance at the attempt cap
	Struggling   bool `json:"struggling,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DecisionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case decisionevent.FieldTargetMisconceptions:
			values[i] = new([]byte)
		case decisionevent.FieldStruggling:
			values[i] = new(sql.NullBool)
		case decisionevent.FieldID, decisionevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case decisionevent.FieldStudentID, decisionevent.FieldAction, decisionevent.FieldConceptID, decisionevent.FieldReason:
			values[i] = new(sql.NullString)
		case decisionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DecisionEvent fields.
func (_m *DecisionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case decisionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case decisionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case decisionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case decisionevent.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case decisionevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case decisionevent.FieldConceptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value.Valid {
				_m.ConceptID = value.String
			}
		case decisionevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case decisionevent.FieldTargetMisconceptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field target_misconceptions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TargetMisconceptions); err != nil {
					return fmt.Errorf("unmarshal field target_misconceptions: %w", err)
				}
			}
		case decisionevent.FieldStruggling:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field struggling", values[i])
			} else if value.Valid {
				_m.Struggling = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DecisionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *DecisionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DecisionEvent.
// Note that you need to call DecisionEvent.Unwrap() before calling this method if this DecisionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DecisionEvent) Update() *DecisionEventUpdateOne {
	return NewDecisionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DecisionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DecisionEvent) Unwrap() *DecisionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DecisionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DecisionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("DecisionEvent(")
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
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("concept_id=")
	builder.WriteString(_m.ConceptID)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("target_misconceptions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetMisconceptions))
	builder.WriteString(", ")
	builder.WriteString("struggling=")
	builder.WriteString(fmt.Sprintf("%v", _m.Struggling))
	builder.WriteByte(')')
	return builder.String()
}

// DecisionEvents is a parsable slice of DecisionEvent.
type DecisionEvents []*DecisionEvent

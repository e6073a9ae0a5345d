// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/codetutor/ent/diagnosisevent"
)

// DiagnosisEvent is the model entity for the DiagnosisEvent schema.
type DiagnosisEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// ConceptID holds the value of the "concept_id" field.
	ConceptID string `json:"concept_id,omitempty"`
	// Assigned misconception tags, at least unclassified
	Tags []string `json:"tags,omitempty"`
	// mcq-map, execution, signature, or refined
	Source string `json:"source,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence   float64 `json:"confidence,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DiagnosisEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case diagnosisevent.FieldTags:
			values[i] = new([]byte)
		case diagnosisevent.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case diagnosisevent.FieldID, diagnosisevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case diagnosisevent.FieldStudentID, diagnosisevent.FieldQuestionID, diagnosisevent.FieldConceptID, diagnosisevent.FieldSource:
			values[i] = new(sql.NullString)
		case diagnosisevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DiagnosisEvent fields.
func (_m *DiagnosisEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case diagnosisevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case diagnosisevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case diagnosisevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case diagnosisevent.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case diagnosisevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case diagnosisevent.FieldConceptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value.Valid {
				_m.ConceptID = value.String
			}
		case diagnosisevent.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case diagnosisevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case diagnosisevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DiagnosisEvent.
// This includes values selected through modifiers, order, etc.
func (_m *DiagnosisEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DiagnosisEvent.
// Note that you need to call DiagnosisEvent.Unwrap() before calling this method if this DiagnosisEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DiagnosisEvent) Update() *DiagnosisEventUpdateOne {
	return NewDiagnosisEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DiagnosisEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DiagnosisEvent) Unwrap() *DiagnosisEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DiagnosisEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DiagnosisEvent) String() string {
	var builder strings.Builder
	builder.WriteString("DiagnosisEvent(")
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
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("concept_id=")
	builder.WriteString(_m.ConceptID)
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteByte(')')
	return builder.String()
}

// DiagnosisEvents is a parsable slice of DiagnosisEvent.
type DiagnosisEvents []*DiagnosisEvent

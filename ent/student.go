// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/codetutor/ent/student"
)

// Student is the model entity for the Student schema.
type Student struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// External UUID identifier
	StudentID string `json:"student_id,omitempty"`
	// Username holds the value of the "username" field.
	Username string `json:"username,omitempty"`
	// Self-reported starting proficiency: low, medium, high
	BaselineLevel string `json:"baseline_level,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// Concept the student is working on, empty before first decision
	CurrentConcept string `json:"current_concept,omitempty"`
	// Concept ID to mastery score in [0,1]
	MasteryScores map[string]float64 `json:"mastery_scores,omitempty"`
	// Misconception tags from the latest incorrect attempt
	RecentTags []string `json:"recent_tags,omitempty"`
	// AttemptsOnConcept holds the value of the "attempts_on_concept" field.
	AttemptsOnConcept int `json:"attempts_on_concept,omitempty"`
	// LastAttemptCorrect holds the value of the "last_attempt_correct" field.
	LastAttemptCorrect bool `json:"last_attempt_correct,omitempty"`
	// LessonDelivered holds the value of the "lesson_delivered" field.
	LessonDelivered bool `json:"lesson_delivered,omitempty"`
	// Concepts finished at the completion threshold
	Completed []string `json:"completed,omitempty"`
	// Concepts left via a forced advance without mastery
	Skipped []string `json:"skipped,omitempty"`
	// PretestScore holds the value of the "pretest_score" field.
	PretestScore *float64 `json:"pretest_score,omitempty"`
	// PosttestScore holds the value of the "posttest_score" field.
	PosttestScore *float64 `json:"posttest_score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Student) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case student.FieldMasteryScores, student.FieldRecentTags, student.FieldCompleted, student.FieldSkipped:
			values[i] = new([]byte)
		case student.FieldActive, student.FieldLastAttemptCorrect, student.FieldLessonDelivered:
			values[i] = new(sql.NullBool)
		case student.FieldPretestScore, student.FieldPosttestScore:
			values[i] = new(sql.NullFloat64)
		case student.FieldID, student.FieldAttemptsOnConcept:
			values[i] = new(sql.NullInt64)
		case student.FieldStudentID, student.FieldUsername, student.FieldBaselineLevel, student.FieldCurrentConcept:
			values[i] = new(sql.NullString)
		case student.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Student fields.
func (_m *Student) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case student.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case student.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case student.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case student.FieldBaselineLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field baseline_level", values[i])
			} else if value.Valid {
				_m.BaselineLevel = value.String
			}
		case student.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case student.FieldCurrentConcept:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_concept", values[i])
			} else if value.Valid {
				_m.CurrentConcept = value.String
			}
		case student.FieldMasteryScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MasteryScores); err != nil {
					return fmt.Errorf("unmarshal field mastery_scores: %w", err)
				}
			}
		case student.FieldRecentTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recent_tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RecentTags); err != nil {
					return fmt.Errorf("unmarshal field recent_tags: %w", err)
				}
			}
		case student.FieldAttemptsOnConcept:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts_on_concept", values[i])
			} else if value.Valid {
				_m.AttemptsOnConcept = int(value.Int64)
			}
		case student.FieldLastAttemptCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field last_attempt_correct", values[i])
			} else if value.Valid {
				_m.LastAttemptCorrect = value.Bool
			}
		case student.FieldLessonDelivered:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_delivered", values[i])
			} else if value.Valid {
				_m.LessonDelivered = value.Bool
			}
		case student.FieldCompleted:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Completed); err != nil {
					return fmt.Errorf("unmarshal field completed: %w", err)
				}
			}
		case student.FieldSkipped:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skipped", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Skipped); err != nil {
					return fmt.Errorf("unmarshal field skipped: %w", err)
				}
			}
		case student.FieldPretestScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pretest_score", values[i])
			} else if value.Valid {
				_m.PretestScore = new(float64)
				*_m.PretestScore = value.Float64
			}
		case student.FieldPosttestScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field posttest_score", values[i])
			} else if value.Valid {
				_m.PosttestScore = new(float64)
				*_m.PosttestScore = value.Float64
			}
		case student.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Student.
// This includes values selected through modifiers, order, etc.
func (_m *Student) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Student.
// Note that you need to call Student.Unwrap() before calling this method if this Student
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Student) Update() *StudentUpdateOne {
	return NewStudentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Student entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Student) Unwrap() *Student {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Student is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Student) String() string {
	var builder strings.Builder
	builder.WriteString("Student(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	builder.WriteString("baseline_level=")
	builder.WriteString(_m.BaselineLevel)
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("current_concept=")
	builder.WriteString(_m.CurrentConcept)
	builder.WriteString(", ")
	builder.WriteString("mastery_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryScores))
	builder.WriteString(", ")
	builder.WriteString("recent_tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecentTags))
	builder.WriteString(", ")
	builder.WriteString("attempts_on_concept=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptsOnConcept))
	builder.WriteString(", ")
	builder.WriteString("last_attempt_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastAttemptCorrect))
	builder.WriteString(", ")
	builder.WriteString("lesson_delivered=")
	builder.WriteString(fmt.Sprintf("%v", _m.LessonDelivered))
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	builder.WriteString("skipped=")
	builder.WriteString(fmt.Sprintf("%v", _m.Skipped))
	builder.WriteString(", ")
	if v := _m.PretestScore; v != nil {
		builder.WriteString("pretest_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PosttestScore; v != nil {
		builder.WriteString("posttest_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Students is a parsable slice of Student.
type Students []*Student

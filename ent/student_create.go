// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/codetutor/ent/student"
)

// StudentCreate is the builder for creating a Student entity.
type StudentCreate struct {
	config
	mutation *StudentMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *StudentCreate) SetStudentID(v string) *StudentCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetUsername sets the "username" field.
func (_c *StudentCreate) SetUsername(v string) *StudentCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetBaselineLevel sets the "baseline_level" field.
func (_c *StudentCreate) SetBaselineLevel(v string) *StudentCreate {
	_c.mutation.SetBaselineLevel(v)
	return _c
}

// SetNillableBaselineLevel sets the "baseline_level" field if the given value is not nil.
func (_c *StudentCreate) SetNillableBaselineLevel(v *string) *StudentCreate {
	if v != nil {
		_c.SetBaselineLevel(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *StudentCreate) SetActive(v bool) *StudentCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *StudentCreate) SetNillableActive(v *bool) *StudentCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCurrentConcept sets the "current_concept" field.
func (_c *StudentCreate) SetCurrentConcept(v string) *StudentCreate {
	_c.mutation.SetCurrentConcept(v)
	return _c
}

// SetNillableCurrentConcept sets the "current_concept" field if the given value is not nil.
func (_c *StudentCreate) SetNillableCurrentConcept(v *string) *StudentCreate {
	if v != nil {
		_c.SetCurrentConcept(*v)
	}
	return _c
}

// SetMasteryScores sets the "mastery_scores" field.
func (_c *StudentCreate) SetMasteryScores(v map[string]float64) *StudentCreate {
	_c.mutation.SetMasteryScores(v)
	return _c
}

// SetRecentTags sets the "recent_tags" field.
func (_c *StudentCreate) SetRecentTags(v []string) *StudentCreate {
	_c.mutation.SetRecentTags(v)
	return _c
}

// SetAttemptsOnConcept sets the "attempts_on_concept" field.
func (_c *StudentCreate) SetAttemptsOnConcept(v int) *StudentCreate {
	_c.mutation.SetAttemptsOnConcept(v)
	return _c
}

// SetNillableAttemptsOnConcept sets the "attempts_on_concept" field if the given value is not nil.
func (_c *StudentCreate) SetNillableAttemptsOnConcept(v *int) *StudentCreate {
	if v != nil {
		_c.SetAttemptsOnConcept(*v)
	}
	return _c
}

// SetLastAttemptCorrect sets the "last_attempt_correct" field.
func (_c *StudentCreate) SetLastAttemptCorrect(v bool) *StudentCreate {
	_c.mutation.SetLastAttemptCorrect(v)
	return _c
}

// SetNillableLastAttemptCorrect sets the "last_attempt_correct" field if the given value is not nil.
func (_c *StudentCreate) SetNillableLastAttemptCorrect(v *bool) *StudentCreate {
	if v != nil {
		_c.SetLastAttemptCorrect(*v)
	}
	return _c
}

// SetLessonDelivered sets the "lesson_delivered" field.
func (_c *StudentCreate) SetLessonDelivered(v bool) *StudentCreate {
	_c.mutation.SetLessonDelivered(v)
	return _c
}

// SetNillableLessonDelivered sets the "lesson_delivered" field if the given value is not nil.
func (_c *StudentCreate) SetNillableLessonDelivered(v *bool) *StudentCreate {
	if v != nil {
		_c.SetLessonDelivered(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *StudentCreate) SetCompleted(v []string) *StudentCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetSkipped sets the "skipped" field.
func (_c *StudentCreate) SetSkipped(v []string) *StudentCreate {
	_c.mutation.SetSkipped(v)
	return _c
}

// SetPretestScore sets the "pretest_score" field.
func (_c *StudentCreate) SetPretestScore(v float64) *StudentCreate {
	_c.mutation.SetPretestScore(v)
	return _c
}

// SetNillablePretestScore sets the "pretest_score" field if the given value is not nil.
func (_c *StudentCreate) SetNillablePretestScore(v *float64) *StudentCreate {
	if v != nil {
		_c.SetPretestScore(*v)
	}
	return _c
}

// SetPosttestScore sets the "posttest_score" field.
func (_c *StudentCreate) SetPosttestScore(v float64) *StudentCreate {
	_c.mutation.SetPosttestScore(v)
	return _c
}

// SetNillablePosttestScore sets the "posttest_score" field if the given value is not nil.
func (_c *StudentCreate) SetNillablePosttestScore(v *float64) *StudentCreate {
	if v != nil {
		_c.SetPosttestScore(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StudentCreate) SetCreatedAt(v time.Time) *StudentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StudentCreate) SetNillableCreatedAt(v *time.Time) *StudentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the StudentMutation object of the builder.
func (_c *StudentCreate) Mutation() *StudentMutation {
	return _c.mutation
}

// Save creates the Student in the database.
func (_c *StudentCreate) Save(ctx context.Context) (*Student, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudentCreate) SaveX(ctx context.Context) *Student {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudentCreate) defaults() {
	if _, ok := _c.mutation.BaselineLevel(); !ok {
		v := student.DefaultBaselineLevel
		_c.mutation.SetBaselineLevel(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := student.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CurrentConcept(); !ok {
		v := student.DefaultCurrentConcept
		_c.mutation.SetCurrentConcept(v)
	}
	if _, ok := _c.mutation.AttemptsOnConcept(); !ok {
		v := student.DefaultAttemptsOnConcept
		_c.mutation.SetAttemptsOnConcept(v)
	}
	if _, ok := _c.mutation.LastAttemptCorrect(); !ok {
		v := student.DefaultLastAttemptCorrect
		_c.mutation.SetLastAttemptCorrect(v)
	}
	if _, ok := _c.mutation.LessonDelivered(); !ok {
		v := student.DefaultLessonDelivered
		_c.mutation.SetLessonDelivered(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := student.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudentCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "Student.student_id"`)}
	}
	if _, ok := _c.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "Student.username"`)}
	}
	if v, ok := _c.mutation.Username(); ok {
		if err := student.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "Student.username": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BaselineLevel(); !ok {
		return &ValidationError{Name: "baseline_level", err: errors.New(`ent: missing required field "Student.baseline_level"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Student.active"`)}
	}
	if _, ok := _c.mutation.CurrentConcept(); !ok {
		return &ValidationError{Name: "current_concept", err: errors.New(`ent: missing required field "Student.current_concept"`)}
	}
	if _, ok := _c.mutation.AttemptsOnConcept(); !ok {
		return &ValidationError{Name: "attempts_on_concept", err: errors.New(`ent: missing required field "Student.attempts_on_concept"`)}
	}
	if _, ok := _c.mutation.LastAttemptCorrect(); !ok {
		return &ValidationError{Name: "last_attempt_correct", err: errors.New(`ent: missing required field "Student.last_attempt_correct"`)}
	}
	if _, ok := _c.mutation.LessonDelivered(); !ok {
		return &ValidationError{Name: "lesson_delivered", err: errors.New(`ent: missing required field "Student.lesson_delivered"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Student.created_at"`)}
	}
	return nil
}

func (_c *StudentCreate) sqlSave(ctx context.Context) (*Student, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudentCreate) createSpec() (*Student, *sqlgraph.CreateSpec) {
	var (
		_node = &Student{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(student.Table, sqlgraph.NewFieldSpec(student.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(student.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(student.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.BaselineLevel(); ok {
		_spec.SetField(student.FieldBaselineLevel, field.TypeString, value)
		_node.BaselineLevel = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(student.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CurrentConcept(); ok {
		_spec.SetField(student.FieldCurrentConcept, field.TypeString, value)
		_node.CurrentConcept = value
	}
	if value, ok := _c.mutation.MasteryScores(); ok {
		_spec.SetField(student.FieldMasteryScores, field.TypeJSON, value)
		_node.MasteryScores = value
	}
	if value, ok := _c.mutation.RecentTags(); ok {
		_spec.SetField(student.FieldRecentTags, field.TypeJSON, value)
		_node.RecentTags = value
	}
	if value, ok := _c.mutation.AttemptsOnConcept(); ok {
		_spec.SetField(student.FieldAttemptsOnConcept, field.TypeInt, value)
		_node.AttemptsOnConcept = value
	}
	if value, ok := _c.mutation.LastAttemptCorrect(); ok {
		_spec.SetField(student.FieldLastAttemptCorrect, field.TypeBool, value)
		_node.LastAttemptCorrect = value
	}
	if value, ok := _c.mutation.LessonDelivered(); ok {
		_spec.SetField(student.FieldLessonDelivered, field.TypeBool, value)
		_node.LessonDelivered = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(student.FieldCompleted, field.TypeJSON, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.Skipped(); ok {
		_spec.SetField(student.FieldSkipped, field.TypeJSON, value)
		_node.Skipped = value
	}
	if value, ok := _c.mutation.PretestScore(); ok {
		_spec.SetField(student.FieldPretestScore, field.TypeFloat64, value)
		_node.PretestScore = &value
	}
	if value, ok := _c.mutation.PosttestScore(); ok {
		_spec.SetField(student.FieldPosttestScore, field.TypeFloat64, value)
		_node.PosttestScore = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(student.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// StudentCreateBulk is the builder for creating many Student entities in bulk.
type StudentCreateBulk struct {
	config
	err      error
	builders []*StudentCreate
}

// Save creates the Student entities in the database.
func (_c *StudentCreateBulk) Save(ctx context.Context) ([]*Student, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Student, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StudentCreateBulk) SaveX(ctx context.Context) []*Student {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

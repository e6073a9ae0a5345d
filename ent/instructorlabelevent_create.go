// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/codetutor/ent/instructorlabelevent"
)

// InstructorLabelEventCreate is the builder for creating a InstructorLabelEvent entity.
type InstructorLabelEventCreate struct {
	config
	mutation *InstructorLabelEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *InstructorLabelEventCreate) SetSequence(v int64) *InstructorLabelEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *InstructorLabelEventCreate) SetTimestamp(v time.Time) *InstructorLabelEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *InstructorLabelEventCreate) SetNillableTimestamp(v *time.Time) *InstructorLabelEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *InstructorLabelEventCreate) SetAttemptID(v string) *InstructorLabelEventCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *InstructorLabelEventCreate) SetStudentID(v string) *InstructorLabelEventCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetSystemTag sets the "system_tag" field.
func (_c *InstructorLabelEventCreate) SetSystemTag(v string) *InstructorLabelEventCreate {
	_c.mutation.SetSystemTag(v)
	return _c
}

// SetNillableSystemTag sets the "system_tag" field if the given value is not nil.
func (_c *InstructorLabelEventCreate) SetNillableSystemTag(v *string) *InstructorLabelEventCreate {
	if v != nil {
		_c.SetSystemTag(*v)
	}
	return _c
}

// SetInstructorTag sets the "instructor_tag" field.
func (_c *InstructorLabelEventCreate) SetInstructorTag(v string) *InstructorLabelEventCreate {
	_c.mutation.SetInstructorTag(v)
	return _c
}

// Mutation returns the InstructorLabelEventMutation object of the builder.
func (_c *InstructorLabelEventCreate) Mutation() *InstructorLabelEventMutation {
	return _c.mutation
}

// Save creates the InstructorLabelEvent in the database.
func (_c *InstructorLabelEventCreate) Save(ctx context.Context) (*InstructorLabelEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InstructorLabelEventCreate) SaveX(ctx context.Context) *InstructorLabelEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InstructorLabelEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InstructorLabelEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InstructorLabelEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := instructorlabelevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.SystemTag(); !ok {
		v := instructorlabelevent.DefaultSystemTag
		_c.mutation.SetSystemTag(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InstructorLabelEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "InstructorLabelEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "InstructorLabelEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "InstructorLabelEvent.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := instructorlabelevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "InstructorLabelEvent.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "InstructorLabelEvent.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := instructorlabelevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "InstructorLabelEvent.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SystemTag(); !ok {
		return &ValidationError{Name: "system_tag", err: errors.New(`ent: missing required field "InstructorLabelEvent.system_tag"`)}
	}
	if _, ok := _c.mutation.InstructorTag(); !ok {
		return &ValidationError{Name: "instructor_tag", err: errors.New(`ent: missing required field "InstructorLabelEvent.instructor_tag"`)}
	}
	if v, ok := _c.mutation.InstructorTag(); ok {
		if err := instructorlabelevent.InstructorTagValidator(v); err != nil {
			return &ValidationError{Name: "instructor_tag", err: fmt.Errorf(`ent: validator failed for field "InstructorLabelEvent.instructor_tag": %w`, err)}
		}
	}
	return nil
}

func (_c *InstructorLabelEventCreate) sqlSave(ctx context.Context) (*InstructorLabelEvent, error) {
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

func (_c *InstructorLabelEventCreate) createSpec() (*InstructorLabelEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &InstructorLabelEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(instructorlabelevent.Table, sqlgraph.NewFieldSpec(instructorlabelevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(instructorlabelevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(instructorlabelevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(instructorlabelevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(instructorlabelevent.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.SystemTag(); ok {
		_spec.SetField(instructorlabelevent.FieldSystemTag, field.TypeString, value)
		_node.SystemTag = value
	}
	if value, ok := _c.mutation.InstructorTag(); ok {
		_spec.SetField(instructorlabelevent.FieldInstructorTag, field.TypeString, value)
		_node.InstructorTag = value
	}
	return _node, _spec
}

// InstructorLabelEventCreateBulk is the builder for creating many InstructorLabelEvent entities in bulk.
type InstructorLabelEventCreateBulk struct {
	config
	err      error
	builders []*InstructorLabelEventCreate
}

// Save creates the InstructorLabelEvent entities in the database.
func (_c *InstructorLabelEventCreateBulk) Save(ctx context.Context) ([]*InstructorLabelEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InstructorLabelEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InstructorLabelEventMutation)
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
func (_c *InstructorLabelEventCreateBulk) SaveX(ctx context.Context) []*InstructorLabelEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InstructorLabelEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InstructorLabelEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

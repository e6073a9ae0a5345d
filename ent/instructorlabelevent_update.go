// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/codetutor/ent/instructorlabelevent"
	"github.com/abhisek/codetutor/ent/predicate"
)

// InstructorLabelEventUpdate is the builder for updating InstructorLabelEvent entities.
type InstructorLabelEventUpdate struct {
	config
	hooks    []Hook
	mutation *InstructorLabelEventMutation
}

// Where appends a list predicates to the InstructorLabelEventUpdate builder.
func (_u *InstructorLabelEventUpdate) Where(ps ...predicate.InstructorLabelEvent) *InstructorLabelEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *InstructorLabelEventUpdate) SetAttemptID(v string) *InstructorLabelEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *InstructorLabelEventUpdate) SetNillableAttemptID(v *string) *InstructorLabelEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *InstructorLabelEventUpdate) SetStudentID(v string) *InstructorLabelEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *InstructorLabelEventUpdate) SetNillableStudentID(v *string) *InstructorLabelEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSystemTag sets the "system_tag" field.
func (_u *InstructorLabelEventUpdate) SetSystemTag(v string) *InstructorLabelEventUpdate {
	_u.mutation.SetSystemTag(v)
	return _u
}

// SetNillableSystemTag sets the "system_tag" field if the given value is not nil.
func (_u *InstructorLabelEventUpdate) SetNillableSystemTag(v *string) *InstructorLabelEventUpdate {
	if v != nil {
		_u.SetSystemTag(*v)
	}
	return _u
}

// SetInstructorTag sets the "instructor_tag" field.
func (_u *InstructorLabelEventUpdate) SetInstructorTag(v string) *InstructorLabelEventUpdate {
	_u.mutation.SetInstructorTag(v)
	return _u
}

// SetNillableInstructorTag sets the "instructor_tag" field if the given value is not nil.
func (_u *InstructorLabelEventUpdate) SetNillableInstructorTag(v *string) *InstructorLabelEventUpdate {
	if v != nil {
		_u.SetInstructorTag(*v)
	}
	return _u
}

// Mutation returns the InstructorLabelEventMutation object of the builder.
func (_u *InstructorLabelEventUpdate) Mutation() *InstructorLabelEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InstructorLabelEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstructorLabelEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InstructorLabelEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstructorLabelEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstructorLabelEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := instructorlabelevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "InstructorLabelEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := instructorlabelevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "InstructorLabelEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InstructorTag(); ok {
		if err := instructorlabelevent.InstructorTagValidator(v); err != nil {
			return &ValidationError{Name: "instructor_tag", err: fmt.Errorf(`ent: validator failed for field "InstructorLabelEvent.instructor_tag": %w`, err)}
		}
	}
	return nil
}

func (_u *InstructorLabelEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(instructorlabelevent.Table, instructorlabelevent.Columns, sqlgraph.NewFieldSpec(instructorlabelevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(instructorlabelevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(instructorlabelevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemTag(); ok {
		_spec.SetField(instructorlabelevent.FieldSystemTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.InstructorTag(); ok {
		_spec.SetField(instructorlabelevent.FieldInstructorTag, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{instructorlabelevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InstructorLabelEventUpdateOne is the builder for updating a single InstructorLabelEvent entity.
type InstructorLabelEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InstructorLabelEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *InstructorLabelEventUpdateOne) SetAttemptID(v string) *InstructorLabelEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *InstructorLabelEventUpdateOne) SetNillableAttemptID(v *string) *InstructorLabelEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *InstructorLabelEventUpdateOne) SetStudentID(v string) *InstructorLabelEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *InstructorLabelEventUpdateOne) SetNillableStudentID(v *string) *InstructorLabelEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSystemTag sets the "system_tag" field.
func (_u *InstructorLabelEventUpdateOne) SetSystemTag(v string) *InstructorLabelEventUpdateOne {
	_u.mutation.SetSystemTag(v)
	return _u
}

// SetNillableSystemTag sets the "system_tag" field if the given value is not nil.
func (_u *InstructorLabelEventUpdateOne) SetNillableSystemTag(v *string) *InstructorLabelEventUpdateOne {
	if v != nil {
		_u.SetSystemTag(*v)
	}
	return _u
}

// SetInstructorTag sets the "instructor_tag" field.
func (_u *InstructorLabelEventUpdateOne) SetInstructorTag(v string) *InstructorLabelEventUpdateOne {
	_u.mutation.SetInstructorTag(v)
	return _u
}

// SetNillableInstructorTag sets the "instructor_tag" field if the given value is not nil.
func (_u *InstructorLabelEventUpdateOne) SetNillableInstructorTag(v *string) *InstructorLabelEventUpdateOne {
	if v != nil {
		_u.SetInstructorTag(*v)
	}
	return _u
}

// Mutation returns the InstructorLabelEventMutation object of the builder.
func (_u *InstructorLabelEventUpdateOne) Mutation() *InstructorLabelEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the InstructorLabelEventUpdate builder.
func (_u *InstructorLabelEventUpdateOne) Where(ps ...predicate.InstructorLabelEvent) *InstructorLabelEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InstructorLabelEventUpdateOne) Select(field string, fields ...string) *InstructorLabelEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InstructorLabelEvent entity.
func (_u *InstructorLabelEventUpdateOne) Save(ctx context.Context) (*InstructorLabelEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstructorLabelEventUpdateOne) SaveX(ctx context.Context) *InstructorLabelEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InstructorLabelEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstructorLabelEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstructorLabelEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := instructorlabelevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "InstructorLabelEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := instructorlabelevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "InstructorLabelEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InstructorTag(); ok {
		if err := instructorlabelevent.InstructorTagValidator(v); err != nil {
			return &ValidationError{Name: "instructor_tag", err: fmt.Errorf(`ent: validator failed for field "InstructorLabelEvent.instructor_tag": %w`, err)}
		}
	}
	return nil
}

func (_u *InstructorLabelEventUpdateOne) sqlSave(ctx context.Context) (_node *InstructorLabelEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(instructorlabelevent.Table, instructorlabelevent.Columns, sqlgraph.NewFieldSpec(instructorlabelevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InstructorLabelEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, instructorlabelevent.FieldID)
		for _, f := range fields {
			if !instructorlabelevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != instructorlabelevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(instructorlabelevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(instructorlabelevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemTag(); ok {
		_spec.SetField(instructorlabelevent.FieldSystemTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.InstructorTag(); ok {
		_spec.SetField(instructorlabelevent.FieldInstructorTag, field.TypeString, value)
	}
	_node = &InstructorLabelEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{instructorlabelevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

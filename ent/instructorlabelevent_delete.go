// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/codetutor/ent/instructorlabelevent"
	"github.com/abhisek/codetutor/ent/predicate"
)

// InstructorLabelEventDelete is the builder for deleting a InstructorLabelEvent entity.
type InstructorLabelEventDelete struct {
	config
	hooks    []Hook
	mutation *InstructorLabelEventMutation
}

// Where appends a list predicates to the InstructorLabelEventDelete builder.
func (_d *InstructorLabelEventDelete) Where(ps ...predicate.InstructorLabelEvent) *InstructorLabelEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InstructorLabelEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InstructorLabelEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InstructorLabelEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(instructorlabelevent.Table, sqlgraph.NewFieldSpec(instructorlabelevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// InstructorLabelEventDeleteOne is the builder for deleting a single InstructorLabelEvent entity.
type InstructorLabelEventDeleteOne struct {
	_d *InstructorLabelEventDelete
}

// Where appends a list predicates to the InstructorLabelEventDelete builder.
func (_d *InstructorLabelEventDeleteOne) Where(ps ...predicate.InstructorLabelEvent) *InstructorLabelEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InstructorLabelEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{instructorlabelevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InstructorLabelEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/codetutor/ent/decisionevent"
	"github.com/abhisek/codetutor/ent/predicate"
)

// DecisionEventUpdate is the builder for updating DecisionEvent entities.
type DecisionEventUpdate struct {
	config
	hooks    []Hook
	mutation *DecisionEventMutation
}

// Where appends a list predicates to the DecisionEventUpdate builder.
func (_u *DecisionEventUpdate) Where(ps ...predicate.DecisionEvent) *DecisionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *DecisionEventUpdate) SetStudentID(v string) *DecisionEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableStudentID(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *DecisionEventUpdate) SetAction(v string) *DecisionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableAction(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *DecisionEventUpdate) SetConceptID(v string) *DecisionEventUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableConceptID(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *DecisionEventUpdate) SetReason(v string) *DecisionEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableReason(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetTargetMisconceptions sets the "target_misconceptions" field.
func (_u *DecisionEventUpdate) SetTargetMisconceptions(v []string) *DecisionEventUpdate {
	_u.mutation.SetTargetMisconceptions(v)
	return _u
}

// AppendTargetMisconceptions appends value to the "target_misconceptions" field.
func (_u *DecisionEventUpdate) AppendTargetMisconceptions(v []string) *DecisionEventUpdate {
	_u.mutation.AppendTargetMisconceptions(v)
	return _u
}

// ClearTargetMisconceptions clears the value of the "target_misconceptions" field.
func (_u *DecisionEventUpdate) ClearTargetMisconceptions() *DecisionEventUpdate {
	_u.mutation.ClearTargetMisconceptions()
	return _u
}

// SetStruggling sets the "struggling" field.
func (_u *DecisionEventUpdate) SetStruggling(v bool) *DecisionEventUpdate {
	_u.mutation.SetStruggling(v)
	return _u
}

// SetNillableStruggling sets the "struggling" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableStruggling(v *bool) *DecisionEventUpdate {
	if v != nil {
		_u.SetStruggling(*v)
	}
	return _u
}

// Mutation returns the DecisionEventMutation object of the builder.
func (_u *DecisionEventUpdate) Mutation() *DecisionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DecisionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DecisionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionEventUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := decisionevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := decisionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decisionevent.Table, decisionevent.Columns, sqlgraph.NewFieldSpec(decisionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(decisionevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(decisionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(decisionevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(decisionevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetMisconceptions(); ok {
		_spec.SetField(decisionevent.FieldTargetMisconceptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetMisconceptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, decisionevent.FieldTargetMisconceptions, value)
		})
	}
	if _u.mutation.TargetMisconceptionsCleared() {
		_spec.ClearField(decisionevent.FieldTargetMisconceptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Struggling(); ok {
		_spec.SetField(decisionevent.FieldStruggling, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DecisionEventUpdateOne is the builder for updating a single DecisionEvent entity.
type DecisionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DecisionEventMutation
}

// SetStudentID sets the "student_id" field.
func (_u *DecisionEventUpdateOne) SetStudentID(v string) *DecisionEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableStudentID(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *DecisionEventUpdateOne) SetAction(v string) *DecisionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableAction(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *DecisionEventUpdateOne) SetConceptID(v string) *DecisionEventUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableConceptID(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *DecisionEventUpdateOne) SetReason(v string) *DecisionEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableReason(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetTargetMisconceptions sets the "target_misconceptions" field.
func (_u *DecisionEventUpdateOne) SetTargetMisconceptions(v []string) *DecisionEventUpdateOne {
	_u.mutation.SetTargetMisconceptions(v)
	return _u
}

// AppendTargetMisconceptions appends value to the "target_misconceptions" field.
func (_u *DecisionEventUpdateOne) AppendTargetMisconceptions(v []string) *DecisionEventUpdateOne {
	_u.mutation.AppendTargetMisconceptions(v)
	return _u
}

// ClearTargetMisconceptions clears the value of the "target_misconceptions" field.
func (_u *DecisionEventUpdateOne) ClearTargetMisconceptions() *DecisionEventUpdateOne {
	_u.mutation.ClearTargetMisconceptions()
	return _u
}

// SetStruggling sets the "struggling" field.
func (_u *DecisionEventUpdateOne) SetStruggling(v bool) *DecisionEventUpdateOne {
	_u.mutation.SetStruggling(v)
	return _u
}

// SetNillableStruggling sets the "struggling" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableStruggling(v *bool) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetStruggling(*v)
	}
	return _u
}

// Mutation returns the DecisionEventMutation object of the builder.
func (_u *DecisionEventUpdateOne) Mutation() *DecisionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DecisionEventUpdate builder.
func (_u *DecisionEventUpdateOne) Where(ps ...predicate.DecisionEvent) *DecisionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DecisionEventUpdateOne) Select(field string, fields ...string) *DecisionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DecisionEvent entity.
func (_u *DecisionEventUpdateOne) Save(ctx context.Context) (*DecisionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionEventUpdateOne) SaveX(ctx context.Context) *DecisionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DecisionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionEventUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := decisionevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := decisionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionEventUpdateOne) sqlSave(ctx context.Context) (_node *DecisionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decisionevent.Table, decisionevent.Columns, sqlgraph.NewFieldSpec(decisionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DecisionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, decisionevent.FieldID)
		for _, f := range fields {
			if !decisionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != decisionevent.FieldID {
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
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(decisionevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(decisionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(decisionevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(decisionevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetMisconceptions(); ok {
		_spec.SetField(decisionevent.FieldTargetMisconceptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetMisconceptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, decisionevent.FieldTargetMisconceptions, value)
		})
	}
	if _u.mutation.TargetMisconceptionsCleared() {
		_spec.ClearField(decisionevent.FieldTargetMisconceptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Struggling(); ok {
		_spec.SetField(decisionevent.FieldStruggling, field.TypeBool, value)
	}
	_node = &DecisionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/codetutor/ent/masteryevent"
	"github.com/abhisek/codetutor/ent/predicate"
)

// MasteryEventUpdate is the builder for updating MasteryEvent entities.
type MasteryEventUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryEventMutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdate) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *MasteryEventUpdate) SetStudentID(v string) *MasteryEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableStudentID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *MasteryEventUpdate) SetConceptID(v string) *MasteryEventUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableConceptID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetFromScore sets the "from_score" field.
func (_u *MasteryEventUpdate) SetFromScore(v float64) *MasteryEventUpdate {
	_u.mutation.ResetFromScore()
	_u.mutation.SetFromScore(v)
	return _u
}

// SetNillableFromScore sets the "from_score" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableFromScore(v *float64) *MasteryEventUpdate {
	if v != nil {
		_u.SetFromScore(*v)
	}
	return _u
}

// AddFromScore adds value to the "from_score" field.
func (_u *MasteryEventUpdate) AddFromScore(v float64) *MasteryEventUpdate {
	_u.mutation.AddFromScore(v)
	return _u
}

// SetToScore sets the "to_score" field.
func (_u *MasteryEventUpdate) SetToScore(v float64) *MasteryEventUpdate {
	_u.mutation.ResetToScore()
	_u.mutation.SetToScore(v)
	return _u
}

// SetNillableToScore sets the "to_score" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableToScore(v *float64) *MasteryEventUpdate {
	if v != nil {
		_u.SetToScore(*v)
	}
	return _u
}

// AddToScore adds value to the "to_score" field.
func (_u *MasteryEventUpdate) AddToScore(v float64) *MasteryEventUpdate {
	_u.mutation.AddToScore(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *MasteryEventUpdate) SetCorrect(v bool) *MasteryEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableCorrect(v *bool) *MasteryEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetBaselineLevel sets the "baseline_level" field.
func (_u *MasteryEventUpdate) SetBaselineLevel(v string) *MasteryEventUpdate {
	_u.mutation.SetBaselineLevel(v)
	return _u
}

// SetNillableBaselineLevel sets the "baseline_level" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableBaselineLevel(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetBaselineLevel(*v)
	}
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdate) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := masteryevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := masteryevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.concept_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(masteryevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(masteryevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromScore(); ok {
		_spec.SetField(masteryevent.FieldFromScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFromScore(); ok {
		_spec.AddField(masteryevent.FieldFromScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ToScore(); ok {
		_spec.SetField(masteryevent.FieldToScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedToScore(); ok {
		_spec.AddField(masteryevent.FieldToScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(masteryevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BaselineLevel(); ok {
		_spec.SetField(masteryevent.FieldBaselineLevel, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryEventUpdateOne is the builder for updating a single MasteryEvent entity.
type MasteryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryEventMutation
}

// SetStudentID sets the "student_id" field.
func (_u *MasteryEventUpdateOne) SetStudentID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableStudentID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *MasteryEventUpdateOne) SetConceptID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableConceptID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetFromScore sets the "from_score" field.
func (_u *MasteryEventUpdateOne) SetFromScore(v float64) *MasteryEventUpdateOne {
	_u.mutation.ResetFromScore()
	_u.mutation.SetFromScore(v)
	return _u
}

// SetNillableFromScore sets the "from_score" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableFromScore(v *float64) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetFromScore(*v)
	}
	return _u
}

// AddFromScore adds value to the "from_score" field.
func (_u *MasteryEventUpdateOne) AddFromScore(v float64) *MasteryEventUpdateOne {
	_u.mutation.AddFromScore(v)
	return _u
}

// SetToScore sets the "to_score" field.
func (_u *MasteryEventUpdateOne) SetToScore(v float64) *MasteryEventUpdateOne {
	_u.mutation.ResetToScore()
	_u.mutation.SetToScore(v)
	return _u
}

// SetNillableToScore sets the "to_score" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableToScore(v *float64) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetToScore(*v)
	}
	return _u
}

// AddToScore adds value to the "to_score" field.
func (_u *MasteryEventUpdateOne) AddToScore(v float64) *MasteryEventUpdateOne {
	_u.mutation.AddToScore(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *MasteryEventUpdateOne) SetCorrect(v bool) *MasteryEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableCorrect(v *bool) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetBaselineLevel sets the "baseline_level" field.
func (_u *MasteryEventUpdateOne) SetBaselineLevel(v string) *MasteryEventUpdateOne {
	_u.mutation.SetBaselineLevel(v)
	return _u
}

// SetNillableBaselineLevel sets the "baseline_level" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableBaselineLevel(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetBaselineLevel(*v)
	}
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdateOne) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdateOne) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryEventUpdateOne) Select(field string, fields ...string) *MasteryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryEvent entity.
func (_u *MasteryEventUpdateOne) Save(ctx context.Context) (*MasteryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) SaveX(ctx context.Context) *MasteryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := masteryevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := masteryevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.concept_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdateOne) sqlSave(ctx context.Context) (_node *MasteryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryevent.FieldID)
		for _, f := range fields {
			if !masteryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryevent.FieldID {
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
		_spec.SetField(masteryevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(masteryevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromScore(); ok {
		_spec.SetField(masteryevent.FieldFromScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFromScore(); ok {
		_spec.AddField(masteryevent.FieldFromScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ToScore(); ok {
		_spec.SetField(masteryevent.FieldToScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedToScore(); ok {
		_spec.AddField(masteryevent.FieldToScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(masteryevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BaselineLevel(); ok {
		_spec.SetField(masteryevent.FieldBaselineLevel, field.TypeString, value)
	}
	_node = &MasteryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

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
	"github.com/abhisek/codetutor/ent/attemptevent"
	"github.com/abhisek/codetutor/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *AttemptEventUpdate) SetStudentID(v string) *AttemptEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableStudentID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AttemptEventUpdate) SetQuestionID(v string) *AttemptEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuestionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *AttemptEventUpdate) SetConceptID(v string) *AttemptEventUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableConceptID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetQuestionKind sets the "question_kind" field.
func (_u *AttemptEventUpdate) SetQuestionKind(v string) *AttemptEventUpdate {
	_u.mutation.SetQuestionKind(v)
	return _u
}

// SetNillableQuestionKind sets the "question_kind" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuestionKind(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuestionKind(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *AttemptEventUpdate) SetResponse(v string) *AttemptEventUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableResponse(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdate) SetCorrect(v bool) *AttemptEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrect(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *AttemptEventUpdate) SetTags(v []string) *AttemptEventUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *AttemptEventUpdate) AppendTags(v []string) *AttemptEventUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *AttemptEventUpdate) ClearTags() *AttemptEventUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetExecutionOutput sets the "execution_output" field.
func (_u *AttemptEventUpdate) SetExecutionOutput(v string) *AttemptEventUpdate {
	_u.mutation.SetExecutionOutput(v)
	return _u
}

// SetNillableExecutionOutput sets the "execution_output" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableExecutionOutput(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetExecutionOutput(*v)
	}
	return _u
}

// ClearExecutionOutput clears the value of the "execution_output" field.
func (_u *AttemptEventUpdate) ClearExecutionOutput() *AttemptEventUpdate {
	_u.mutation.ClearExecutionOutput()
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := attemptevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := attemptevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := attemptevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.concept_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(attemptevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(attemptevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(attemptevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionKind(); ok {
		_spec.SetField(attemptevent.FieldQuestionKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(attemptevent.FieldResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(attemptevent.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(attemptevent.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExecutionOutput(); ok {
		_spec.SetField(attemptevent.FieldExecutionOutput, field.TypeString, value)
	}
	if _u.mutation.ExecutionOutputCleared() {
		_spec.ClearField(attemptevent.FieldExecutionOutput, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetStudentID sets the "student_id" field.
func (_u *AttemptEventUpdateOne) SetStudentID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableStudentID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AttemptEventUpdateOne) SetQuestionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuestionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *AttemptEventUpdateOne) SetConceptID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableConceptID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetQuestionKind sets the "question_kind" field.
func (_u *AttemptEventUpdateOne) SetQuestionKind(v string) *AttemptEventUpdateOne {
	_u.mutation.SetQuestionKind(v)
	return _u
}

// SetNillableQuestionKind sets the "question_kind" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuestionKind(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuestionKind(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *AttemptEventUpdateOne) SetResponse(v string) *AttemptEventUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableResponse(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdateOne) SetCorrect(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrect(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *AttemptEventUpdateOne) SetTags(v []string) *AttemptEventUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *AttemptEventUpdateOne) AppendTags(v []string) *AttemptEventUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *AttemptEventUpdateOne) ClearTags() *AttemptEventUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetExecutionOutput sets the "execution_output" field.
func (_u *AttemptEventUpdateOne) SetExecutionOutput(v string) *AttemptEventUpdateOne {
	_u.mutation.SetExecutionOutput(v)
	return _u
}

// SetNillableExecutionOutput sets the "execution_output" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableExecutionOutput(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetExecutionOutput(*v)
	}
	return _u
}

// ClearExecutionOutput clears the value of the "execution_output" field.
func (_u *AttemptEventUpdateOne) ClearExecutionOutput() *AttemptEventUpdateOne {
	_u.mutation.ClearExecutionOutput()
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := attemptevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := attemptevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := attemptevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.concept_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
		_spec.SetField(attemptevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(attemptevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(attemptevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionKind(); ok {
		_spec.SetField(attemptevent.FieldQuestionKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(attemptevent.FieldResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(attemptevent.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(attemptevent.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExecutionOutput(); ok {
		_spec.SetField(attemptevent.FieldExecutionOutput, field.TypeString, value)
	}
	if _u.mutation.ExecutionOutputCleared() {
		_spec.ClearField(attemptevent.FieldExecutionOutput, field.TypeString)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

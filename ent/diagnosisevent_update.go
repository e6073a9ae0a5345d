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
	"github.com/abhisek/codetutor/ent/diagnosisevent"
	"github.com/abhisek/codetutor/ent/predicate"
)

// DiagnosisEventUpdate is the builder for updating DiagnosisEvent entities.
type DiagnosisEventUpdate struct {
	config
	hooks    []Hook
	mutation *DiagnosisEventMutation
}

// Where appends a list predicates to the DiagnosisEventUpdate builder.
func (_u *DiagnosisEventUpdate) Where(ps ...predicate.DiagnosisEvent) *DiagnosisEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *DiagnosisEventUpdate) SetStudentID(v string) *DiagnosisEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableStudentID(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *DiagnosisEventUpdate) SetQuestionID(v string) *DiagnosisEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableQuestionID(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *DiagnosisEventUpdate) SetConceptID(v string) *DiagnosisEventUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableConceptID(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *DiagnosisEventUpdate) SetTags(v []string) *DiagnosisEventUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *DiagnosisEventUpdate) AppendTags(v []string) *DiagnosisEventUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *DiagnosisEventUpdate) SetSource(v string) *DiagnosisEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableSource(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DiagnosisEventUpdate) SetConfidence(v float64) *DiagnosisEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableConfidence(v *float64) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DiagnosisEventUpdate) AddConfidence(v float64) *DiagnosisEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the DiagnosisEventMutation object of the builder.
func (_u *DiagnosisEventUpdate) Mutation() *DiagnosisEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiagnosisEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosisEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiagnosisEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosisEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosisEventUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := diagnosisevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := diagnosisevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := diagnosisevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.concept_id": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosisEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosisevent.Table, diagnosisevent.Columns, sqlgraph.NewFieldSpec(diagnosisevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(diagnosisevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(diagnosisevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(diagnosisevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(diagnosisevent.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, diagnosisevent.FieldTags, value)
		})
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(diagnosisevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(diagnosisevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(diagnosisevent.FieldConfidence, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiagnosisEventUpdateOne is the builder for updating a single DiagnosisEvent entity.
type DiagnosisEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiagnosisEventMutation
}

// SetStudentID sets the "student_id" field.
func (_u *DiagnosisEventUpdateOne) SetStudentID(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableStudentID(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *DiagnosisEventUpdateOne) SetQuestionID(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableQuestionID(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *DiagnosisEventUpdateOne) SetConceptID(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableConceptID(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *DiagnosisEventUpdateOne) SetTags(v []string) *DiagnosisEventUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *DiagnosisEventUpdateOne) AppendTags(v []string) *DiagnosisEventUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *DiagnosisEventUpdateOne) SetSource(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableSource(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DiagnosisEventUpdateOne) SetConfidence(v float64) *DiagnosisEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableConfidence(v *float64) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DiagnosisEventUpdateOne) AddConfidence(v float64) *DiagnosisEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the DiagnosisEventMutation object of the builder.
func (_u *DiagnosisEventUpdateOne) Mutation() *DiagnosisEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DiagnosisEventUpdate builder.
func (_u *DiagnosisEventUpdateOne) Where(ps ...predicate.DiagnosisEvent) *DiagnosisEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiagnosisEventUpdateOne) Select(field string, fields ...string) *DiagnosisEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DiagnosisEvent entity.
func (_u *DiagnosisEventUpdateOne) Save(ctx context.Context) (*DiagnosisEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosisEventUpdateOne) SaveX(ctx context.Context) *DiagnosisEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiagnosisEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosisEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosisEventUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := diagnosisevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := diagnosisevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := diagnosisevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.concept_id": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosisEventUpdateOne) sqlSave(ctx context.Context) (_node *DiagnosisEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosisevent.Table, diagnosisevent.Columns, sqlgraph.NewFieldSpec(diagnosisevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DiagnosisEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, diagnosisevent.FieldID)
		for _, f := range fields {
			if !diagnosisevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != diagnosisevent.FieldID {
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
		_spec.SetField(diagnosisevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(diagnosisevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(diagnosisevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(diagnosisevent.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, diagnosisevent.FieldTags, value)
		})
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(diagnosisevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(diagnosisevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(diagnosisevent.FieldConfidence, field.TypeFloat64, value)
	}
	_node = &DiagnosisEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

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
	"github.com/abhisek/codetutor/ent/predicate"
	"github.com/abhisek/codetutor/ent/student"
)

// StudentUpdate is the builder for updating Student entities.
type StudentUpdate struct {
	config
	hooks    []Hook
	mutation *StudentMutation
}

// Where appends a list predicates to the StudentUpdate builder.
func (_u *StudentUpdate) Where(ps ...predicate.Student) *StudentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUsername sets the "username" field.
func (_u *StudentUpdate) SetUsername(v string) *StudentUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableUsername(v *string) *StudentUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetBaselineLevel sets the "baseline_level" field.
func (_u *StudentUpdate) SetBaselineLevel(v string) *StudentUpdate {
	_u.mutation.SetBaselineLevel(v)
	return _u
}

// SetNillableBaselineLevel sets the "baseline_level" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableBaselineLevel(v *string) *StudentUpdate {
	if v != nil {
		_u.SetBaselineLevel(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *StudentUpdate) SetActive(v bool) *StudentUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableActive(v *bool) *StudentUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCurrentConcept sets the "current_concept" field.
func (_u *StudentUpdate) SetCurrentConcept(v string) *StudentUpdate {
	_u.mutation.SetCurrentConcept(v)
	return _u
}

// SetNillableCurrentConcept sets the "current_concept" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableCurrentConcept(v *string) *StudentUpdate {
	if v != nil {
		_u.SetCurrentConcept(*v)
	}
	return _u
}

// SetMasteryScores sets the "mastery_scores" field.
func (_u *StudentUpdate) SetMasteryScores(v map[string]float64) *StudentUpdate {
	_u.mutation.SetMasteryScores(v)
	return _u
}

// ClearMasteryScores clears the value of the "mastery_scores" field.
func (_u *StudentUpdate) ClearMasteryScores() *StudentUpdate {
	_u.mutation.ClearMasteryScores()
	return _u
}

// SetRecentTags sets the "recent_tags" field.
func (_u *StudentUpdate) SetRecentTags(v []string) *StudentUpdate {
	_u.mutation.SetRecentTags(v)
	return _u
}

// AppendRecentTags appends value to the "recent_tags" field.
func (_u *StudentUpdate) AppendRecentTags(v []string) *StudentUpdate {
	_u.mutation.AppendRecentTags(v)
	return _u
}

// ClearRecentTags clears the value of the "recent_tags" field.
func (_u *StudentUpdate) ClearRecentTags() *StudentUpdate {
	_u.mutation.ClearRecentTags()
	return _u
}

// SetAttemptsOnConcept sets the "attempts_on_concept" field.
func (_u *StudentUpdate) SetAttemptsOnConcept(v int) *StudentUpdate {
	_u.mutation.ResetAttemptsOnConcept()
	_u.mutation.SetAttemptsOnConcept(v)
	return _u
}

// SetNillableAttemptsOnConcept sets the "attempts_on_concept" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableAttemptsOnConcept(v *int) *StudentUpdate {
	if v != nil {
		_u.SetAttemptsOnConcept(*v)
	}
	return _u
}

// AddAttemptsOnConcept adds value to the "attempts_on_concept" field.
func (_u *StudentUpdate) AddAttemptsOnConcept(v int) *StudentUpdate {
	_u.mutation.AddAttemptsOnConcept(v)
	return _u
}

// SetLastAttemptCorrect sets the "last_attempt_correct" field.
func (_u *StudentUpdate) SetLastAttemptCorrect(v bool) *StudentUpdate {
	_u.mutation.SetLastAttemptCorrect(v)
	return _u
}

// SetNillableLastAttemptCorrect sets the "last_attempt_correct" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableLastAttemptCorrect(v *bool) *StudentUpdate {
	if v != nil {
		_u.SetLastAttemptCorrect(*v)
	}
	return _u
}

// SetLessonDelivered sets the "lesson_delivered" field.
func (_u *StudentUpdate) SetLessonDelivered(v bool) *StudentUpdate {
	_u.mutation.SetLessonDelivered(v)
	return _u
}

// SetNillableLessonDelivered sets the "lesson_delivered" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableLessonDelivered(v *bool) *StudentUpdate {
	if v != nil {
		_u.SetLessonDelivered(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *StudentUpdate) SetCompleted(v []string) *StudentUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// AppendCompleted appends value to the "completed" field.
func (_u *StudentUpdate) AppendCompleted(v []string) *StudentUpdate {
	_u.mutation.AppendCompleted(v)
	return _u
}

// ClearCompleted clears the value of the "completed" field.
func (_u *StudentUpdate) ClearCompleted() *StudentUpdate {
	_u.mutation.ClearCompleted()
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *StudentUpdate) SetSkipped(v []string) *StudentUpdate {
	_u.mutation.SetSkipped(v)
	return _u
}

// AppendSkipped appends value to the "skipped" field.
func (_u *StudentUpdate) AppendSkipped(v []string) *StudentUpdate {
	_u.mutation.AppendSkipped(v)
	return _u
}

// ClearSkipped clears the value of the "skipped" field.
func (_u *StudentUpdate) ClearSkipped() *StudentUpdate {
	_u.mutation.ClearSkipped()
	return _u
}

// SetPretestScore sets the "pretest_score" field.
func (_u *StudentUpdate) SetPretestScore(v float64) *StudentUpdate {
	_u.mutation.ResetPretestScore()
	_u.mutation.SetPretestScore(v)
	return _u
}

// SetNillablePretestScore sets the "pretest_score" field if the given value is not nil.
func (_u *StudentUpdate) SetNillablePretestScore(v *float64) *StudentUpdate {
	if v != nil {
		_u.SetPretestScore(*v)
	}
	return _u
}

// AddPretestScore adds value to the "pretest_score" field.
func (_u *StudentUpdate) AddPretestScore(v float64) *StudentUpdate {
	_u.mutation.AddPretestScore(v)
	return _u
}

// ClearPretestScore clears the value of the "pretest_score" field.
func (_u *StudentUpdate) ClearPretestScore() *StudentUpdate {
	_u.mutation.ClearPretestScore()
	return _u
}

// SetPosttestScore sets the "posttest_score" field.
func (_u *StudentUpdate) SetPosttestScore(v float64) *StudentUpdate {
	_u.mutation.ResetPosttestScore()
	_u.mutation.SetPosttestScore(v)
	return _u
}

// SetNillablePosttestScore sets the "posttest_score" field if the given value is not nil.
func (_u *StudentUpdate) SetNillablePosttestScore(v *float64) *StudentUpdate {
	if v != nil {
		_u.SetPosttestScore(*v)
	}
	return _u
}

// AddPosttestScore adds value to the "posttest_score" field.
func (_u *StudentUpdate) AddPosttestScore(v float64) *StudentUpdate {
	_u.mutation.AddPosttestScore(v)
	return _u
}

// ClearPosttestScore clears the value of the "posttest_score" field.
func (_u *StudentUpdate) ClearPosttestScore() *StudentUpdate {
	_u.mutation.ClearPosttestScore()
	return _u
}

// Mutation returns the StudentMutation object of the builder.
func (_u *StudentUpdate) Mutation() *StudentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentUpdate) check() error {
	if v, ok := _u.mutation.Username(); ok {
		if err := student.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "Student.username": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(student.Table, student.Columns, sqlgraph.NewFieldSpec(student.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(student.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaselineLevel(); ok {
		_spec.SetField(student.FieldBaselineLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(student.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CurrentConcept(); ok {
		_spec.SetField(student.FieldCurrentConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryScores(); ok {
		_spec.SetField(student.FieldMasteryScores, field.TypeJSON, value)
	}
	if _u.mutation.MasteryScoresCleared() {
		_spec.ClearField(student.FieldMasteryScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.RecentTags(); ok {
		_spec.SetField(student.FieldRecentTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecentTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, student.FieldRecentTags, value)
		})
	}
	if _u.mutation.RecentTagsCleared() {
		_spec.ClearField(student.FieldRecentTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.AttemptsOnConcept(); ok {
		_spec.SetField(student.FieldAttemptsOnConcept, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptsOnConcept(); ok {
		_spec.AddField(student.FieldAttemptsOnConcept, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAttemptCorrect(); ok {
		_spec.SetField(student.FieldLastAttemptCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LessonDelivered(); ok {
		_spec.SetField(student.FieldLessonDelivered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(student.FieldCompleted, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompleted(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, student.FieldCompleted, value)
		})
	}
	if _u.mutation.CompletedCleared() {
		_spec.ClearField(student.FieldCompleted, field.TypeJSON)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(student.FieldSkipped, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkipped(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, student.FieldSkipped, value)
		})
	}
	if _u.mutation.SkippedCleared() {
		_spec.ClearField(student.FieldSkipped, field.TypeJSON)
	}
	if value, ok := _u.mutation.PretestScore(); ok {
		_spec.SetField(student.FieldPretestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPretestScore(); ok {
		_spec.AddField(student.FieldPretestScore, field.TypeFloat64, value)
	}
	if _u.mutation.PretestScoreCleared() {
		_spec.ClearField(student.FieldPretestScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PosttestScore(); ok {
		_spec.SetField(student.FieldPosttestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPosttestScore(); ok {
		_spec.AddField(student.FieldPosttestScore, field.TypeFloat64, value)
	}
	if _u.mutation.PosttestScoreCleared() {
		_spec.ClearField(student.FieldPosttestScore, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{student.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudentUpdateOne is the builder for updating a single Student entity.
type StudentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudentMutation
}

// SetUsername sets the "username" field.
func (_u *StudentUpdateOne) SetUsername(v string) *StudentUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableUsername(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetBaselineLevel sets the "baseline_level" field.
func (_u *StudentUpdateOne) SetBaselineLevel(v string) *StudentUpdateOne {
	_u.mutation.SetBaselineLevel(v)
	return _u
}

// SetNillableBaselineLevel sets the "baseline_level" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableBaselineLevel(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetBaselineLevel(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *StudentUpdateOne) SetActive(v bool) *StudentUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableActive(v *bool) *StudentUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCurrentConcept sets the "current_concept" field.
func (_u *StudentUpdateOne) SetCurrentConcept(v string) *StudentUpdateOne {
	_u.mutation.SetCurrentConcept(v)
	return _u
}

// SetNillableCurrentConcept sets the "current_concept" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableCurrentConcept(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetCurrentConcept(*v)
	}
	return _u
}

// SetMasteryScores sets the "mastery_scores" field.
func (_u *StudentUpdateOne) SetMasteryScores(v map[string]float64) *StudentUpdateOne {
	_u.mutation.SetMasteryScores(v)
	return _u
}

// ClearMasteryScores clears the value of the "mastery_scores" field.
func (_u *StudentUpdateOne) ClearMasteryScores() *StudentUpdateOne {
	_u.mutation.ClearMasteryScores()
	return _u
}

// SetRecentTags sets the "recent_tags" field.
func (_u *StudentUpdateOne) SetRecentTags(v []string) *StudentUpdateOne {
	_u.mutation.SetRecentTags(v)
	return _u
}

// AppendRecentTags appends value to the "recent_tags" field.
func (_u *StudentUpdateOne) AppendRecentTags(v []string) *StudentUpdateOne {
	_u.mutation.AppendRecentTags(v)
	return _u
}

// ClearRecentTags clears the value of the "recent_tags" field.
func (_u *StudentUpdateOne) ClearRecentTags() *StudentUpdateOne {
	_u.mutation.ClearRecentTags()
	return _u
}

// SetAttemptsOnConcept sets the "attempts_on_concept" field.
func (_u *StudentUpdateOne) SetAttemptsOnConcept(v int) *StudentUpdateOne {
	_u.mutation.ResetAttemptsOnConcept()
	_u.mutation.SetAttemptsOnConcept(v)
	return _u
}

// SetNillableAttemptsOnConcept sets the "attempts_on_concept" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableAttemptsOnConcept(v *int) *StudentUpdateOne {
	if v != nil {
		_u.SetAttemptsOnConcept(*v)
	}
	return _u
}

// AddAttemptsOnConcept adds value to the "attempts_on_concept" field.
func (_u *StudentUpdateOne) AddAttemptsOnConcept(v int) *StudentUpdateOne {
	_u.mutation.AddAttemptsOnConcept(v)
	return _u
}

// SetLastAttemptCorrect sets the "last_attempt_correct" field.
func (_u *StudentUpdateOne) SetLastAttemptCorrect(v bool) *StudentUpdateOne {
	_u.mutation.SetLastAttemptCorrect(v)
	return _u
}

// SetNillableLastAttemptCorrect sets the "last_attempt_correct" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableLastAttemptCorrect(v *bool) *StudentUpdateOne {
	if v != nil {
		_u.SetLastAttemptCorrect(*v)
	}
	return _u
}

// SetLessonDelivered sets the "lesson_delivered" field.
func (_u *StudentUpdateOne) SetLessonDelivered(v bool) *StudentUpdateOne {
	_u.mutation.SetLessonDelivered(v)
	return _u
}

// SetNillableLessonDelivered sets the "lesson_delivered" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableLessonDelivered(v *bool) *StudentUpdateOne {
	if v != nil {
		_u.SetLessonDelivered(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *StudentUpdateOne) SetCompleted(v []string) *StudentUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// AppendCompleted appends value to the "completed" field.
func (_u *StudentUpdateOne) AppendCompleted(v []string) *StudentUpdateOne {
	_u.mutation.AppendCompleted(v)
	return _u
}

// ClearCompleted clears the value of the "completed" field.
func (_u *StudentUpdateOne) ClearCompleted() *StudentUpdateOne {
	_u.mutation.ClearCompleted()
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *StudentUpdateOne) SetSkipped(v []string) *StudentUpdateOne {
	_u.mutation.SetSkipped(v)
	return _u
}

// AppendSkipped appends value to the "skipped" field.
func (_u *StudentUpdateOne) AppendSkipped(v []string) *StudentUpdateOne {
	_u.mutation.AppendSkipped(v)
	return _u
}

// ClearSkipped clears the value of the "skipped" field.
func (_u *StudentUpdateOne) ClearSkipped() *StudentUpdateOne {
	_u.mutation.ClearSkipped()
	return _u
}

// SetPretestScore sets the "pretest_score" field.
func (_u *StudentUpdateOne) SetPretestScore(v float64) *StudentUpdateOne {
	_u.mutation.ResetPretestScore()
	_u.mutation.SetPretestScore(v)
	return _u
}

// SetNillablePretestScore sets the "pretest_score" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillablePretestScore(v *float64) *StudentUpdateOne {
	if v != nil {
		_u.SetPretestScore(*v)
	}
	return _u
}

// AddPretestScore adds value to the "pretest_score" field.
func (_u *StudentUpdateOne) AddPretestScore(v float64) *StudentUpdateOne {
	_u.mutation.AddPretestScore(v)
	return _u
}

// ClearPretestScore clears the value of the "pretest_score" field.
func (_u *StudentUpdateOne) ClearPretestScore() *StudentUpdateOne {
	_u.mutation.ClearPretestScore()
	return _u
}

// SetPosttestScore sets the "posttest_score" field.
func (_u *StudentUpdateOne) SetPosttestScore(v float64) *StudentUpdateOne {
	_u.mutation.ResetPosttestScore()
	_u.mutation.SetPosttestScore(v)
	return _u
}

// SetNillablePosttestScore sets the "posttest_score" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillablePosttestScore(v *float64) *StudentUpdateOne {
	if v != nil {
		_u.SetPosttestScore(*v)
	}
	return _u
}

// AddPosttestScore adds value to the "posttest_score" field.
func (_u *StudentUpdateOne) AddPosttestScore(v float64) *StudentUpdateOne {
	_u.mutation.AddPosttestScore(v)
	return _u
}

// ClearPosttestScore clears the value of the "posttest_score" field.
func (_u *StudentUpdateOne) ClearPosttestScore() *StudentUpdateOne {
	_u.mutation.ClearPosttestScore()
	return _u
}

// Mutation returns the StudentMutation object of the builder.
func (_u *StudentUpdateOne) Mutation() *StudentMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudentUpdate builder.
func (_u *StudentUpdateOne) Where(ps ...predicate.Student) *StudentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudentUpdateOne) Select(field string, fields ...string) *StudentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Student entity.
func (_u *StudentUpdateOne) Save(ctx context.Context) (*Student, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentUpdateOne) SaveX(ctx context.Context) *Student {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentUpdateOne) check() error {
	if v, ok := _u.mutation.Username(); ok {
		if err := student.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "Student.username": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentUpdateOne) sqlSave(ctx context.Context) (_node *Student, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(student.Table, student.Columns, sqlgraph.NewFieldSpec(student.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Student.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, student.FieldID)
		for _, f := range fields {
			if !student.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != student.FieldID {
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
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(student.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaselineLevel(); ok {
		_spec.SetField(student.FieldBaselineLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(student.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CurrentConcept(); ok {
		_spec.SetField(student.FieldCurrentConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryScores(); ok {
		_spec.SetField(student.FieldMasteryScores, field.TypeJSON, value)
	}
	if _u.mutation.MasteryScoresCleared() {
		_spec.ClearField(student.FieldMasteryScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.RecentTags(); ok {
		_spec.SetField(student.FieldRecentTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecentTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, student.FieldRecentTags, value)
		})
	}
	if _u.mutation.RecentTagsCleared() {
		_spec.ClearField(student.FieldRecentTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.AttemptsOnConcept(); ok {
		_spec.SetField(student.FieldAttemptsOnConcept, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptsOnConcept(); ok {
		_spec.AddField(student.FieldAttemptsOnConcept, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAttemptCorrect(); ok {
		_spec.SetField(student.FieldLastAttemptCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LessonDelivered(); ok {
		_spec.SetField(student.FieldLessonDelivered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(student.FieldCompleted, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompleted(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, student.FieldCompleted, value)
		})
	}
	if _u.mutation.CompletedCleared() {
		_spec.ClearField(student.FieldCompleted, field.TypeJSON)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(student.FieldSkipped, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkipped(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, student.FieldSkipped, value)
		})
	}
	if _u.mutation.SkippedCleared() {
		_spec.ClearField(student.FieldSkipped, field.TypeJSON)
	}
	if value, ok := _u.mutation.PretestScore(); ok {
		_spec.SetField(student.FieldPretestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPretestScore(); ok {
		_spec.AddField(student.FieldPretestScore, field.TypeFloat64, value)
	}
	if _u.mutation.PretestScoreCleared() {
		_spec.ClearField(student.FieldPretestScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PosttestScore(); ok {
		_spec.SetField(student.FieldPosttestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPosttestScore(); ok {
		_spec.AddField(student.FieldPosttestScore, field.TypeFloat64, value)
	}
	if _u.mutation.PosttestScoreCleared() {
		_spec.ClearField(student.FieldPosttestScore, field.TypeFloat64)
	}
	_node = &Student{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{student.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

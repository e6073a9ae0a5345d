package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent is one row of the append-only attempt log: the raw
// response, its grading, and the diagnosed misconception tags. It is
// immutable once recorded and is the sole input to the analytics.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").NotEmpty(),
		field.String("question_id").NotEmpty(),
		field.String("concept_id").NotEmpty(),
		field.String("question_kind").
			Default("mcq").
			Comment("mcq or coding"),
		field.Text("response"),
		field.Bool("correct"),
		field.JSON("tags", []string{}).
			Optional().
			Comment("Diagnosed misconception tags, empty for correct attempts"),
		field.Text("execution_output").
			Optional().
			Comment("Runner output for coding attempts"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("question_id"),
		index.Fields("concept_id"),
	}
}

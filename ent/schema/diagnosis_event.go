package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DiagnosisEvent records the diagnosis of a single incorrect attempt:
// which tags were assigned and where they came from.
type DiagnosisEvent struct {
	ent.Schema
}

func (DiagnosisEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DiagnosisEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").NotEmpty(),
		field.String("question_id").NotEmpty(),
		field.String("concept_id").NotEmpty(),
		field.JSON("tags", []string{}).
			Comment("Assigned misconception tags, at least unclassified"),
		field.String("source").
			Default("signature").
			Comment("mcq-map, execution, signature, or refined"),
		field.Float("confidence").
			Default(0),
	}
}

func (DiagnosisEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("concept_id"),
	}
}

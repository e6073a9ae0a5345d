package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryEvent records one mastery score update for audit and
// analytics, keeping the full trajectory replayable.
type MasteryEvent struct {
	ent.Schema
}

func (MasteryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MasteryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").NotEmpty(),
		field.String("concept_id").NotEmpty(),
		field.Float("from_score"),
		field.Float("to_score"),
		field.Bool("correct").
			Comment("Outcome that drove the update"),
		field.String("baseline_level").
			Default("medium"),
	}
}

func (MasteryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("concept_id"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DecisionEvent records each orchestrator decision. Decisions are
// recomputed per request, so this log exists for analytics (RETEACH
// cycle counts, struggling flags), not for restoring state.
type DecisionEvent struct {
	ent.Schema
}

func (DecisionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DecisionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("TEACH, TEST, RETEACH, ADVANCE, or COMPLETE"),
		field.String("concept_id").
			Default(""),
		field.String("reason").
			Default(""),
		field.JSON("target_misconceptions", []string{}).
			Optional(),
		field.Bool("struggling").
			Default(false).
			Comment("Set on a forced advance at the attempt cap"),
	}
}

func (DecisionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("action"),
	}
}

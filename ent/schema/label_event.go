package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InstructorLabelEvent pairs an instructor's misconception label with
// the system's diagnosis for the same attempt. The labeled subset
// feeds the diagnostic-agreement (kappa) analysis.
type InstructorLabelEvent struct {
	ent.Schema
}

func (InstructorLabelEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (InstructorLabelEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("Question instance the label refers to"),
		field.String("student_id").NotEmpty(),
		field.String("system_tag").
			Default(""),
		field.String("instructor_tag").
			NotEmpty(),
	}
}

func (InstructorLabelEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
	}
}

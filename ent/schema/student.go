package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Student is the roster entry plus the learner's current loop state.
// Mastery history lives in the event log; this row holds the current
// view the orchestrator reads and writes.
type Student struct {
	ent.Schema
}

func (Student) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			Unique().
			Immutable().
			Comment("External UUID identifier"),
		field.String("username").
			NotEmpty().
			Unique(),
		field.String("baseline_level").
			Default("medium").
			Comment("Self-reported starting proficiency: low, medium, high"),
		field.Bool("active").
			Default(true),
		field.String("current_concept").
			Default("").
			Comment("Concept the student is working on, empty before first decision"),
		field.JSON("mastery_scores", map[string]float64{}).
			Optional().
			Comment("Concept ID to mastery score in [0,1]"),
		field.JSON("recent_tags", []string{}).
			Optional().
			Comment("Misconception tags from the latest incorrect attempt"),
		field.Int("attempts_on_concept").
			Default(0),
		field.Bool("last_attempt_correct").
			Default(false),
		field.Bool("lesson_delivered").
			Default(false),
		field.JSON("completed", []string{}).
			Optional().
			Comment("Concepts finished at the completion threshold"),
		field.JSON("skipped", []string{}).
			Optional().
			Comment("Concepts left via a forced advance without mastery"),
		field.Float("pretest_score").
			Optional().
			Nillable(),
		field.Float("posttest_score").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Student) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username"),
		index.Fields("active"),
	}
}

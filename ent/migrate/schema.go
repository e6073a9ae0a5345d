// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "student_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "question_kind", Type: field.TypeString, Default: "mcq"},
		{Name: "response", Type: field.TypeString, Size: 2147483647},
		{Name: "correct", Type: field.TypeBool},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "execution_output", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_student_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_concept_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[5]},
			},
		},
	}
	// DecisionEventsColumns holds the columns for the "decision_events" table.
	DecisionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "student_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString, Default: ""},
		{Name: "reason", Type: field.TypeString, Default: ""},
		{Name: "target_misconceptions", Type: field.TypeJSON, Nullable: true},
		{Name: "struggling", Type: field.TypeBool, Default: false},
	}
	// DecisionEventsTable holds the schema information for the "decision_events" table.
	DecisionEventsTable = &schema.Table{
		Name:       "decision_events",
		Columns:    DecisionEventsColumns,
		PrimaryKey: []*schema.Column{DecisionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "decisionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[1]},
			},
			{
				Name:    "decisionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[2]},
			},
			{
				Name:    "decisionevent_student_id",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[3]},
			},
			{
				Name:    "decisionevent_action",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[4]},
			},
		},
	}
	// DiagnosisEventsColumns holds the columns for the "diagnosis_events" table.
	DiagnosisEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "student_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "tags", Type: field.TypeJSON},
		{Name: "source", Type: field.TypeString, Default: "signature"},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
	}
	// DiagnosisEventsTable holds the schema information for the "diagnosis_events" table.
	DiagnosisEventsTable = &schema.Table{
		Name:       "diagnosis_events",
		Columns:    DiagnosisEventsColumns,
		PrimaryKey: []*schema.Column{DiagnosisEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "diagnosisevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{DiagnosisEventsColumns[1]},
			},
			{
				Name:    "diagnosisevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DiagnosisEventsColumns[2]},
			},
			{
				Name:    "diagnosisevent_student_id",
				Unique:  false,
				Columns: []*schema.Column{DiagnosisEventsColumns[3]},
			},
			{
				Name:    "diagnosisevent_concept_id",
				Unique:  false,
				Columns: []*schema.Column{DiagnosisEventsColumns[5]},
			},
		},
	}
	// InstructorLabelEventsColumns holds the columns for the "instructor_label_events" table.
	InstructorLabelEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString},
		{Name: "system_tag", Type: field.TypeString, Default: ""},
		{Name: "instructor_tag", Type: field.TypeString},
	}
	// InstructorLabelEventsTable holds the schema information for the "instructor_label_events" table.
	InstructorLabelEventsTable = &schema.Table{
		Name:       "instructor_label_events",
		Columns:    InstructorLabelEventsColumns,
		PrimaryKey: []*schema.Column{InstructorLabelEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "instructorlabelevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{InstructorLabelEventsColumns[1]},
			},
			{
				Name:    "instructorlabelevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InstructorLabelEventsColumns[2]},
			},
			{
				Name:    "instructorlabelevent_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{InstructorLabelEventsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// MasteryEventsColumns holds the columns for the "mastery_events" table.
	MasteryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "student_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "from_score", Type: field.TypeFloat64},
		{Name: "to_score", Type: field.TypeFloat64},
		{Name: "correct", Type: field.TypeBool},
		{Name: "baseline_level", Type: field.TypeString, Default: "medium"},
	}
	// MasteryEventsTable holds the schema information for the "mastery_events" table.
	MasteryEventsTable = &schema.Table{
		Name:       "mastery_events",
		Columns:    MasteryEventsColumns,
		PrimaryKey: []*schema.Column{MasteryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[1]},
			},
			{
				Name:    "masteryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[2]},
			},
			{
				Name:    "masteryevent_student_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[3]},
			},
			{
				Name:    "masteryevent_concept_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// StudentsColumns holds the columns for the "students" table.
	StudentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString, Unique: true},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "baseline_level", Type: field.TypeString, Default: "medium"},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "current_concept", Type: field.TypeString, Default: ""},
		{Name: "mastery_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "recent_tags", Type: field.TypeJSON, Nullable: true},
		{Name: "attempts_on_concept", Type: field.TypeInt, Default: 0},
		{Name: "last_attempt_correct", Type: field.TypeBool, Default: false},
		{Name: "lesson_delivered", Type: field.TypeBool, Default: false},
		{Name: "completed", Type: field.TypeJSON, Nullable: true},
		{Name: "skipped", Type: field.TypeJSON, Nullable: true},
		{Name: "pretest_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "posttest_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StudentsTable holds the schema information for the "students" table.
	StudentsTable = &schema.Table{
		Name:       "students",
		Columns:    StudentsColumns,
		PrimaryKey: []*schema.Column{StudentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "student_username",
				Unique:  false,
				Columns: []*schema.Column{StudentsColumns[2]},
			},
			{
				Name:    "student_active",
				Unique:  false,
				Columns: []*schema.Column{StudentsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		DecisionEventsTable,
		DiagnosisEventsTable,
		InstructorLabelEventsTable,
		LlmRequestEventsTable,
		MasteryEventsTable,
		SnapshotsTable,
		StudentsTable,
	}
)

func init() {
}

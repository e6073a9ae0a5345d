// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/codetutor/ent/attemptevent"
	"github.com/abhisek/codetutor/ent/decisionevent"
	"github.com/abhisek/codetutor/ent/diagnosisevent"
	"github.com/abhisek/codetutor/ent/instructorlabelevent"
	"github.com/abhisek/codetutor/ent/llmrequestevent"
	"github.com/abhisek/codetutor/ent/masteryevent"
	"github.com/abhisek/codetutor/ent/schema"
	"github.com/abhisek/codetutor/ent/snapshot"
	"github.com/abhisek/codetutor/ent/student"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescStudentID is the schema descriptor for student_id field.
	attempteventDescStudentID := attempteventFields[0].Descriptor()
	// attemptevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	attemptevent.StudentIDValidator = attempteventDescStudentID.Validators[0].(func(string) error)
	// attempteventDescQuestionID is the schema descriptor for question_id field.
	attempteventDescQuestionID := attempteventFields[1].Descriptor()
	// attemptevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	attemptevent.QuestionIDValidator = attempteventDescQuestionID.Validators[0].(func(string) error)
	// attempteventDescConceptID is the schema descriptor for concept_id field.
	attempteventDescConceptID := attempteventFields[2].Descriptor()
	// attemptevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	attemptevent.ConceptIDValidator = attempteventDescConceptID.Validators[0].(func(string) error)
	// attempteventDescQuestionKind is the schema descriptor for question_kind field.
	attempteventDescQuestionKind := attempteventFields[3].Descriptor()
	// attemptevent.DefaultQuestionKind holds the default value on creation for the question_kind field.
	attemptevent.DefaultQuestionKind = attempteventDescQuestionKind.Default.(string)
	decisioneventMixin := schema.DecisionEvent{}.Mixin()
	decisioneventMixinFields0 := decisioneventMixin[0].Fields()
	_ = decisioneventMixinFields0
	decisioneventFields := schema.DecisionEvent{}.Fields()
	_ = decisioneventFields
	// decisioneventDescTimestamp is the schema descriptor for timestamp field.
	decisioneventDescTimestamp := decisioneventMixinFields0[1].Descriptor()
	// decisionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	decisionevent.DefaultTimestamp = decisioneventDescTimestamp.Default.(func() time.Time)
	// decisioneventDescStudentID is the schema descriptor for student_id field.
	decisioneventDescStudentID := decisioneventFields[0].Descriptor()
	// decisionevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	decisionevent.StudentIDValidator = decisioneventDescStudentID.Validators[0].(func(string) error)
	// decisioneventDescAction is the schema descriptor for action field.
	decisioneventDescAction := decisioneventFields[1].Descriptor()
	// decisionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	decisionevent.ActionValidator = decisioneventDescAction.Validators[0].(func(string) error)
	// decisioneventDescConceptID is the schema descriptor for concept_id field.
	decisioneventDescConceptID := decisioneventFields[2].Descriptor()
	// decisionevent.DefaultConceptID holds the default value on creation for the concept_id field.
	decisionevent.DefaultConceptID = decisioneventDescConceptID.Default.(string)
	// decisioneventDescReason is the schema descriptor for reason field.
	decisioneventDescReason := decisioneventFields[3].Descriptor()
	// decisionevent.DefaultReason holds the default value on creation for the reason field.
	decisionevent.DefaultReason = decisioneventDescReason.Default.(string)
	// decisioneventDescStruggling is the schema descriptor for struggling field.
	decisioneventDescStruggling := decisioneventFields[5].Descriptor()
	// decisionevent.DefaultStruggling holds the default value on creation for the struggling field.
	decisionevent.DefaultStruggling = decisioneventDescStruggling.Default.(bool)
	diagnosiseventMixin := schema.DiagnosisEvent{}.Mixin()
	diagnosiseventMixinFields0 := diagnosiseventMixin[0].Fields()
	_ = diagnosiseventMixinFields0
	diagnosiseventFields := schema.DiagnosisEvent{}.Fields()
	_ = diagnosiseventFields
	// diagnosiseventDescTimestamp is the schema descriptor for timestamp field.
	diagnosiseventDescTimestamp := diagnosiseventMixinFields0[1].Descriptor()
	// diagnosisevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	diagnosisevent.DefaultTimestamp = diagnosiseventDescTimestamp.Default.(func() time.Time)
	// diagnosiseventDescStudentID is the schema descriptor for student_id field.
	diagnosiseventDescStudentID := diagnosiseventFields[0].Descriptor()
	// diagnosisevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	diagnosisevent.StudentIDValidator = diagnosiseventDescStudentID.Validators[0].(func(string) error)
	// diagnosiseventDescQuestionID is the schema descriptor for question_id field.
	diagnosiseventDescQuestionID := diagnosiseventFields[1].Descriptor()
	// diagnosisevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	diagnosisevent.QuestionIDValidator = diagnosiseventDescQuestionID.Validators[0].(func(string) error)
	// diagnosiseventDescConceptID is the schema descriptor for concept_id field.
	diagnosiseventDescConceptID := diagnosiseventFields[2].Descriptor()
	// diagnosisevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	diagnosisevent.ConceptIDValidator = diagnosiseventDescConceptID.Validators[0].(func(string) error)
	// diagnosiseventDescSource is the schema descriptor for source field.
	diagnosiseventDescSource := diagnosiseventFields[4].Descriptor()
	// diagnosisevent.DefaultSource holds the default value on creation for the source field.
	diagnosisevent.DefaultSource = diagnosiseventDescSource.Default.(string)
	// diagnosiseventDescConfidence is the schema descriptor for confidence field.
	diagnosiseventDescConfidence := diagnosiseventFields[5].Descriptor()
	// diagnosisevent.DefaultConfidence holds the default value on creation for the confidence field.
	diagnosisevent.DefaultConfidence = diagnosiseventDescConfidence.Default.(float64)
	instructorlabeleventMixin := schema.InstructorLabelEvent{}.Mixin()
	instructorlabeleventMixinFields0 := instructorlabeleventMixin[0].Fields()
	_ = instructorlabeleventMixinFields0
	instructorlabeleventFields := schema.InstructorLabelEvent{}.Fields()
	_ = instructorlabeleventFields
	// instructorlabeleventDescTimestamp is the schema descriptor for timestamp field.
	instructorlabeleventDescTimestamp := instructorlabeleventMixinFields0[1].Descriptor()
	// instructorlabelevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	instructorlabelevent.DefaultTimestamp = instructorlabeleventDescTimestamp.Default.(func() time.Time)
	// instructorlabeleventDescAttemptID is the schema descriptor for attempt_id field.
	instructorlabeleventDescAttemptID := instructorlabeleventFields[0].Descriptor()
	// instructorlabelevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	instructorlabelevent.AttemptIDValidator = instructorlabeleventDescAttemptID.Validators[0].(func(string) error)
	// instructorlabeleventDescStudentID is the schema descriptor for student_id field.
	instructorlabeleventDescStudentID := instructorlabeleventFields[1].Descriptor()
	// instructorlabelevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	instructorlabelevent.StudentIDValidator = instructorlabeleventDescStudentID.Validators[0].(func(string) error)
	// instructorlabeleventDescSystemTag is the schema descriptor for system_tag field.
	instructorlabeleventDescSystemTag := instructorlabeleventFields[2].Descriptor()
	// instructorlabelevent.DefaultSystemTag holds the default value on creation for the system_tag field.
	instructorlabelevent.DefaultSystemTag = instructorlabeleventDescSystemTag.Default.(string)
	// instructorlabeleventDescInstructorTag is the schema descriptor for instructor_tag field.
	instructorlabeleventDescInstructorTag := instructorlabeleventFields[3].Descriptor()
	// instructorlabelevent.InstructorTagValidator is a validator for the "instructor_tag" field. It is called by the builders before save.
	instructorlabelevent.InstructorTagValidator = instructorlabeleventDescInstructorTag.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescCostUsd is the schema descriptor for cost_usd field.
	llmrequesteventDescCostUsd := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultCostUsd holds the default value on creation for the cost_usd field.
	llmrequestevent.DefaultCostUsd = llmrequesteventDescCostUsd.Default.(float64)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescStudentID is the schema descriptor for student_id field.
	masteryeventDescStudentID := masteryeventFields[0].Descriptor()
	// masteryevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	masteryevent.StudentIDValidator = masteryeventDescStudentID.Validators[0].(func(string) error)
	// masteryeventDescConceptID is the schema descriptor for concept_id field.
	masteryeventDescConceptID := masteryeventFields[1].Descriptor()
	// masteryevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	masteryevent.ConceptIDValidator = masteryeventDescConceptID.Validators[0].(func(string) error)
	// masteryeventDescBaselineLevel is the schema descriptor for baseline_level field.
	masteryeventDescBaselineLevel := masteryeventFields[5].Descriptor()
	// masteryevent.DefaultBaselineLevel holds the default value on creation for the baseline_level field.
	masteryevent.DefaultBaselineLevel = masteryeventDescBaselineLevel.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	studentFields := schema.Student{}.Fields()
	_ = studentFields
	// studentDescUsername is the schema descriptor for username field.
	studentDescUsername := studentFields[1].Descriptor()
	// student.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	student.UsernameValidator = studentDescUsername.Validators[0].(func(string) error)
	// studentDescBaselineLevel is the schema descriptor for baseline_level field.
	studentDescBaselineLevel := studentFields[2].Descriptor()
	// student.DefaultBaselineLevel holds the default value on creation for the baseline_level field.
	student.DefaultBaselineLevel = studentDescBaselineLevel.Default.(string)
	// studentDescActive is the schema descriptor for active field.
	studentDescActive := studentFields[3].Descriptor()
	// student.DefaultActive holds the default value on creation for the active field.
	student.DefaultActive = studentDescActive.Default.(bool)
	// studentDescCurrentConcept is the schema descriptor for current_concept field.
	studentDescCurrentConcept := studentFields[4].Descriptor()
	// student.DefaultCurrentConcept holds the default value on creation for the current_concept field.
	student.DefaultCurrentConcept = studentDescCurrentConcept.Default.(string)
	// studentDescAttemptsOnConcept is the schema descriptor for attempts_on_concept field.
	studentDescAttemptsOnConcept := studentFields[7].Descriptor()
	// student.DefaultAttemptsOnConcept holds the default value on creation for the attempts_on_concept field.
	student.DefaultAttemptsOnConcept = studentDescAttemptsOnConcept.Default.(int)
	// studentDescLastAttemptCorrect is the schema descriptor for last_attempt_correct field.
	studentDescLastAttemptCorrect := studentFields[8].Descriptor()
	// student.DefaultLastAttemptCorrect holds the default value on creation for the last_attempt_correct field.
	student.DefaultLastAttemptCorrect = studentDescLastAttemptCorrect.Default.(bool)
	// studentDescLessonDelivered is the schema descriptor for lesson_delivered field.
	studentDescLessonDelivered := studentFields[9].Descriptor()
	// student.DefaultLessonDelivered holds the default value on creation for the lesson_delivered field.
	student.DefaultLessonDelivered = studentDescLessonDelivered.Default.(bool)
	// studentDescCreatedAt is the schema descriptor for created_at field.
	studentDescCreatedAt := studentFields[14].Descriptor()
	// student.DefaultCreatedAt holds the default value on creation for the created_at field.
	student.DefaultCreatedAt = studentDescCreatedAt.Default.(func() time.Time)
}

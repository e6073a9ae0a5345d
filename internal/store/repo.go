package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	StudentID string    // filter by student (empty = all)
	ConceptID string    // filter by concept (empty = all)
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence <= Before (0 = no cursor)
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
}

// Student is the roster row plus the learner's current loop state.
type Student struct {
	ID                 string
	Username           string
	Baseline           string
	Active             bool
	CurrentConcept     string
	MasteryScores      map[string]float64
	RecentTags         []string
	AttemptsOnConcept  int
	LastAttemptCorrect bool
	LessonDelivered    bool
	Completed          []string
	Skipped            []string
	PretestScore       *float64
	PosttestScore      *float64
	CreatedAt          time.Time
}

// StudentRepo manages the student roster. Lookups return nil without
// error when no row matches.
type StudentRepo interface {
	Create(ctx context.Context, s *Student) error
	Get(ctx context.Context, id string) (*Student, error)
	GetByUsername(ctx context.Context, username string) (*Student, error)
	All(ctx context.Context) ([]*Student, error)

	// Update overwrites the mutable loop state and scores for the
	// student identified by s.ID.
	Update(ctx context.Context, s *Student) error
}

// AttemptEventData is one row of the append-only attempt log.
// Sequence and Timestamp are assigned on append and populated on read.
type AttemptEventData struct {
	Sequence        int64
	Timestamp       time.Time
	StudentID       string
	QuestionID      string
	ConceptID       string
	QuestionKind    string
	Response        string
	Correct         bool
	Tags            []string
	ExecutionOutput string
}

// MasteryEventData records one mastery score update.
type MasteryEventData struct {
	StudentID string
	ConceptID string
	FromScore float64
	ToScore   float64
	Correct   bool
	Baseline  string
}

// DiagnosisEventData records the tags assigned to one incorrect attempt.
type DiagnosisEventData struct {
	StudentID  string
	QuestionID string
	ConceptID  string
	Tags       []string
	Source     string
	Confidence float64
}

// DecisionEventData records one orchestrator decision.
type DecisionEventData struct {
	StudentID            string
	Action               string
	ConceptID            string
	Reason               string
	TargetMisconceptions []string
	Struggling           bool
}

// LLMRequestEventData captures the data for a single LLM request event.
// Sequence and Timestamp are assigned on append and populated on read.
type LLMRequestEventData struct {
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
	CostUSD      float64
}

// LLMUsageStat aggregates LLM calls for one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM calls for one model ID.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// InstructorLabelEventData pairs an instructor label with the system
// diagnosis for the same attempt.
type InstructorLabelEventData struct {
	AttemptID     string
	StudentID     string
	SystemTag     string
	InstructorTag string
}

// EventRepo provides append and query access to the domain event log.
// Appends are safe for concurrent use; the global sequence counter
// orders events across all types.
type EventRepo interface {
	// AppendAttempt records an attempt and returns its sequence number.
	AppendAttempt(ctx context.Context, data AttemptEventData) (int64, error)
	AppendMastery(ctx context.Context, data MasteryEventData) error
	AppendDiagnosis(ctx context.Context, data DiagnosisEventData) error
	AppendDecision(ctx context.Context, data DecisionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	AppendInstructorLabel(ctx context.Context, data InstructorLabelEventData) error

	// LLMEvents returns LLM request rows, newest first.
	LLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventData, error)
	// LLMEventBySequence returns one LLM request row, nil if absent.
	LLMEventBySequence(ctx context.Context, seq int64) (*LLMRequestEventData, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// Attempts returns attempt rows in sequence order.
	Attempts(ctx context.Context, opts QueryOpts) ([]AttemptEventData, error)
	InstructorLabels(ctx context.Context) ([]InstructorLabelEventData, error)

	// ReteachCountsByTag counts RETEACH decisions per targeted
	// misconception tag; ReteachCountsByStudent per student.
	ReteachCountsByTag(ctx context.Context) (map[string]int, error)
	ReteachCountsByStudent(ctx context.Context) (map[string]int, error)

	// LastSequence returns the highest sequence number assigned so
	// far, the natural cursor for an analytics snapshot.
	LastSequence(ctx context.Context) (int64, error)
}

// SnapshotData wraps the serialized analytics report stored with a
// snapshot.
type SnapshotData struct {
	Version int             `json:"version"`
	Report  json.RawMessage `json:"report"`
}

// Snapshot represents a point-in-time analytics capture.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages persisted analytics snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

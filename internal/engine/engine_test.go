package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/abhisek/codetutor/internal/content"
	"github.com/abhisek/codetutor/internal/llm"
	"github.com/abhisek/codetutor/internal/mastery"
	"github.com/abhisek/codetutor/internal/metrics"
	"github.com/abhisek/codetutor/internal/orchestrator"
	"github.com/abhisek/codetutor/internal/store"
)

// fakeStudents is an in-memory StudentRepo. Reads return copies so the
// engine's mutations only land through Update, like a real database.
type fakeStudents struct {
	mu   sync.Mutex
	rows map[string]*store.Student
}

func newFakeStudents() *fakeStudents {
	return &fakeStudents{rows: make(map[string]*store.Student)}
}

func cloneStudent(s *store.Student) *store.Student {
	out := *s
	out.MasteryScores = make(map[string]float64, len(s.MasteryScores))
	for k, v := range s.MasteryScores {
		out.MasteryScores[k] = v
	}
	out.RecentTags = append([]string(nil), s.RecentTags...)
	out.Completed = append([]string(nil), s.Completed...)
	out.Skipped = append([]string(nil), s.Skipped...)
	return &out
}

func (f *fakeStudents) Create(_ context.Context, s *store.Student) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[s.ID]; ok {
		return errors.New("duplicate id")
	}
	f.rows[s.ID] = cloneStudent(s)
	return nil
}

func (f *fakeStudents) Get(_ context.Context, id string) (*store.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return cloneStudent(s), nil
}

func (f *fakeStudents) GetByUsername(_ context.Context, username string) (*store.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.rows {
		if s.Username == username {
			return cloneStudent(s), nil
		}
	}
	return nil, nil
}

func (f *fakeStudents) All(_ context.Context) ([]*store.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*store.Student, 0, len(f.rows))
	for _, s := range f.rows {
		out = append(out, cloneStudent(s))
	}
	return out, nil
}

func (f *fakeStudents) Update(_ context.Context, s *store.Student) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[s.ID]; !ok {
		return errors.New("no such student")
	}
	f.rows[s.ID] = cloneStudent(s)
	return nil
}

// fakeEvents is an in-memory EventRepo sharing one sequence counter
// across event types.
type fakeEvents struct {
	mu        sync.Mutex
	seq       int64
	attempts  []store.AttemptEventData
	mastery   []store.MasteryEventData
	diagnoses []store.DiagnosisEventData
	decisions []store.DecisionEventData
	llm       []store.LLMRequestEventData
	labels    []store.InstructorLabelEventData
}

func (f *fakeEvents) next() int64 {
	f.seq++
	return f.seq
}

func (f *fakeEvents) AppendAttempt(_ context.Context, data store.AttemptEventData) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data.Sequence = f.next()
	f.attempts = append(f.attempts, data)
	return data.Sequence, nil
}

func (f *fakeEvents) AppendMastery(_ context.Context, data store.MasteryEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next()
	f.mastery = append(f.mastery, data)
	return nil
}

func (f *fakeEvents) AppendDiagnosis(_ context.Context, data store.DiagnosisEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next()
	f.diagnoses = append(f.diagnoses, data)
	return nil
}

func (f *fakeEvents) AppendDecision(_ context.Context, data store.DecisionEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next()
	f.decisions = append(f.decisions, data)
	return nil
}

func (f *fakeEvents) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next()
	f.llm = append(f.llm, data)
	return nil
}

func (f *fakeEvents) AppendInstructorLabel(_ context.Context, data store.InstructorLabelEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next()
	f.labels = append(f.labels, data)
	return nil
}

func (f *fakeEvents) LLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEventData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]store.LLMRequestEventData(nil), f.llm...), nil
}

func (f *fakeEvents) LLMEventBySequence(_ context.Context, _ int64) (*store.LLMRequestEventData, error) {
	return nil, nil
}

func (f *fakeEvents) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}

func (f *fakeEvents) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func (f *fakeEvents) Attempts(_ context.Context, opts store.QueryOpts) ([]store.AttemptEventData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.AttemptEventData
	for _, a := range f.attempts {
		if opts.StudentID != "" && a.StudentID != opts.StudentID {
			continue
		}
		if opts.ConceptID != "" && a.ConceptID != opts.ConceptID {
			continue
		}
		if opts.Before > 0 && a.Sequence > opts.Before {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeEvents) InstructorLabels(_ context.Context) ([]store.InstructorLabelEventData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]store.InstructorLabelEventData(nil), f.labels...), nil
}

func (f *fakeEvents) ReteachCountsByTag(_ context.Context) (map[string]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[string]int)
	for _, d := range f.decisions {
		if d.Action != string(orchestrator.ActionReteach) {
			continue
		}
		for _, tag := range d.TargetMisconceptions {
			counts[tag]++
		}
	}
	return counts, nil
}

func (f *fakeEvents) ReteachCountsByStudent(_ context.Context) (map[string]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[string]int)
	for _, d := range f.decisions {
		if d.Action == string(orchestrator.ActionReteach) {
			counts[d.StudentID]++
		}
	}
	return counts, nil
}

func (f *fakeEvents) LastSequence(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seq, nil
}

// passRunner grades every submission as passing.
type passRunner struct{}

func (passRunner) Run(_ context.Context, _ string, _ []content.TestCase) (RunResult, error) {
	return RunResult{Passed: true, Output: "all tests passed"}, nil
}

func newTestEngine(t *testing.T, opts ...func(*Options)) (*Engine, *fakeStudents, *fakeEvents) {
	t.Helper()

	students := newFakeStudents()
	events := &fakeEvents{}

	// An empty mock queue fails every synthesis call, so content comes
	// deterministically from the seed bank.
	synth := content.NewLLMSynthesizer(llm.NewMockProvider(), content.DefaultConfig())
	svc := content.NewService(synth, content.DefaultConfig(), nil)

	o := Options{
		Students:  students,
		Events:    events,
		Content:   svc,
		Policy:    orchestrator.DefaultConfig(),
		Analytics: metrics.DefaultConfig(),
	}
	for _, fn := range opts {
		fn(&o)
	}

	e, err := New(o)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e, students, events
}

func registerStudent(t *testing.T, e *Engine) *store.Student {
	t.Helper()
	stu, err := e.Register(context.Background(), "ada", mastery.BaselineMedium)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return stu
}

func TestRegister_Validation(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	var verr *ValidationError
	if _, err := e.Register(ctx, "", mastery.BaselineMedium); !errors.As(err, &verr) {
		t.Errorf("empty username: err = %v, want ValidationError", err)
	}
	if _, err := e.Register(ctx, "ada", "expert"); !errors.As(err, &verr) {
		t.Errorf("bad baseline: err = %v, want ValidationError", err)
	}

	if _, err := e.Register(ctx, "ada", mastery.BaselineLow); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := e.Register(ctx, "ada", mastery.BaselineLow); !errors.As(err, &verr) {
		t.Errorf("duplicate username: err = %v, want ValidationError", err)
	}
}

func TestNext_FreshStudentGetsLessonOnFirstConcept(t *testing.T) {
	e, _, events := newTestEngine(t)
	stu := registerStudent(t, e)
	ctx := context.Background()

	p, err := e.Next(ctx, stu.ID)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if p.Decision.Action != orchestrator.ActionTeach {
		t.Fatalf("action = %q, want TEACH", p.Decision.Action)
	}
	if p.Decision.Concept != "variables" {
		t.Errorf("concept = %q, want variables", p.Decision.Concept)
	}
	if p.Lesson == nil || !p.Lesson.Fallback {
		t.Errorf("expected a seed-bank lesson, got %+v", p.Lesson)
	}
	if len(events.decisions) != 1 || events.decisions[0].Action != "TEACH" {
		t.Errorf("decision log = %+v", events.decisions)
	}
}

func TestNext_AfterLessonServesQuestion(t *testing.T) {
	e, _, _ := newTestEngine(t)
	stu := registerStudent(t, e)
	ctx := context.Background()

	if _, err := e.Next(ctx, stu.ID); err != nil {
		t.Fatalf("teach: %v", err)
	}
	p, err := e.Next(ctx, stu.ID)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if p.Decision.Action != orchestrator.ActionTest {
		t.Fatalf("action = %q, want TEST", p.Decision.Action)
	}
	if p.Question == nil {
		t.Fatal("expected a question payload")
	}
	if p.Question.Kind != content.KindMCQ {
		t.Errorf("kind = %q, want mcq at zero mastery", p.Question.Kind)
	}
	if p.Question.ID == "" {
		t.Error("question instance needs an ID")
	}
}

func TestNext_UnknownStudent(t *testing.T) {
	e, _, _ := newTestEngine(t)

	var verr *ValidationError
	if _, err := e.Next(context.Background(), "ghost"); !errors.As(err, &verr) {
		t.Errorf("err = %v, want ValidationError", err)
	}
}

func serveQuestion(t *testing.T, e *Engine, studentID string) *content.QuestionPayload {
	t.Helper()
	ctx := context.Background()
	if _, err := e.Next(ctx, studentID); err != nil {
		t.Fatalf("teach: %v", err)
	}
	p, err := e.Next(ctx, studentID)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if p.Question == nil {
		t.Fatal("no question served")
	}
	return p.Question
}

func TestSubmit_WrongAnswerDiagnosesAndReteaches(t *testing.T) {
	e, students, events := newTestEngine(t)
	stu := registerStudent(t, e)
	ctx := context.Background()

	q := serveQuestion(t, e, stu.ID)

	// Option A of the variables seed MCQ maps to a registry tag.
	res, err := e.Submit(ctx, stu.ID, q.ID, "A")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Correct {
		t.Fatal("option A should grade incorrect")
	}
	if len(res.Misconceptions) != 1 || res.Misconceptions[0] != "assignment_vs_equality" {
		t.Errorf("tags = %v, want [assignment_vs_equality]", res.Misconceptions)
	}
	if res.Decision.Action != orchestrator.ActionReteach {
		t.Errorf("decision = %q, want RETEACH at low mastery after a miss", res.Decision.Action)
	}
	if res.Feedback == "" {
		t.Error("expected feedback text")
	}

	row, _ := students.Get(ctx, stu.ID)
	if row.AttemptsOnConcept != 1 || row.LastAttemptCorrect {
		t.Errorf("loop state = %+v", row)
	}
	if len(events.attempts) != 1 || events.attempts[0].Correct {
		t.Errorf("attempt log = %+v", events.attempts)
	}
	if len(events.diagnoses) != 1 {
		t.Errorf("diagnosis log = %+v", events.diagnoses)
	}
	if len(events.mastery) != 1 {
		t.Errorf("mastery log = %+v", events.mastery)
	}
}

func TestSubmit_CorrectAnswerUpdatesMastery(t *testing.T) {
	e, students, _ := newTestEngine(t)
	stu := registerStudent(t, e)
	ctx := context.Background()

	q := serveQuestion(t, e, stu.ID)
	res, err := e.Submit(ctx, stu.ID, q.ID, q.CorrectKey)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Correct {
		t.Fatal("correct key should grade correct")
	}
	if res.Misconceptions != nil {
		t.Errorf("correct answer yielded tags %v", res.Misconceptions)
	}
	if res.Decision.Action != orchestrator.ActionTest {
		t.Errorf("decision = %q, want TEST below the advance threshold", res.Decision.Action)
	}

	row, _ := students.Get(ctx, stu.ID)
	got := row.MasteryScores["variables"]
	if diff := got - 0.3; diff < -1e-9 || diff > 1e-9 {
		t.Errorf("score = %v, want 0.3 after one correct from zero", got)
	}
}

func TestSubmit_Validation(t *testing.T) {
	e, students, _ := newTestEngine(t)
	stu := registerStudent(t, e)
	ctx := context.Background()
	q := serveQuestion(t, e, stu.ID)

	var verr *ValidationError
	if _, err := e.Submit(ctx, stu.ID, q.ID, "   "); !errors.As(err, &verr) {
		t.Errorf("blank response: err = %v, want ValidationError", err)
	}
	if _, err := e.Submit(ctx, stu.ID, "nope", "A"); !errors.As(err, &verr) {
		t.Errorf("unknown question: err = %v, want ValidationError", err)
	}
	if _, err := e.Submit(ctx, "ghost", q.ID, "A"); !errors.As(err, &verr) {
		t.Errorf("unknown student: err = %v, want ValidationError", err)
	}
	if _, err := e.Submit(ctx, stu.ID, q.ID, "Z"); !errors.As(err, &verr) {
		t.Errorf("bad option key: err = %v, want ValidationError", err)
	}

	// Rejected requests must not mutate state.
	row, _ := students.Get(ctx, stu.ID)
	if row.AttemptsOnConcept != 0 {
		t.Errorf("attempts = %d after rejected submissions, want 0", row.AttemptsOnConcept)
	}
}

func TestSubmit_CodingWithoutRunnerStaysLive(t *testing.T) {
	e, _, events := newTestEngine(t)
	stu := registerStudent(t, e)
	ctx := context.Background()

	q := &content.QuestionPayload{
		ID:        "coding-1",
		ConceptID: "variables",
		Kind:      content.KindCoding,
		Prompt:    "Double the input.",
	}
	e.questions.Store(q.ID, q)

	res, err := e.Submit(ctx, stu.ID, q.ID, "def f(x):\n    print(x * 2)")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Correct {
		t.Error("without a runner a coding attempt cannot pass")
	}
	// Structural diagnosis still works without execution output.
	if len(res.Misconceptions) != 1 || res.Misconceptions[0] != "return_vs_print" {
		t.Errorf("tags = %v, want [return_vs_print]", res.Misconceptions)
	}
	if events.attempts[0].ExecutionOutput == "" {
		t.Error("expected an explanatory execution output")
	}
}

func TestSubmit_CodingWithRunner(t *testing.T) {
	e, _, _ := newTestEngine(t, func(o *Options) { o.Runner = passRunner{} })
	stu := registerStudent(t, e)
	ctx := context.Background()

	q := &content.QuestionPayload{
		ID:        "coding-2",
		ConceptID: "variables",
		Kind:      content.KindCoding,
		Prompt:    "Double the input.",
	}
	e.questions.Store(q.ID, q)

	res, err := e.Submit(ctx, stu.ID, q.ID, "def f(x):\n    return x * 2")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Correct {
		t.Error("runner passed, attempt should grade correct")
	}
}

func TestNext_AdvanceMovesToNextConcept(t *testing.T) {
	e, students, _ := newTestEngine(t)
	stu := registerStudent(t, e)
	ctx := context.Background()

	// Put the student at mastery on variables with evidence.
	row, _ := students.Get(ctx, stu.ID)
	row.CurrentConcept = "variables"
	row.MasteryScores["variables"] = 0.85
	row.AttemptsOnConcept = 2
	row.LastAttemptCorrect = true
	row.LessonDelivered = true
	if err := students.Update(ctx, row); err != nil {
		t.Fatalf("seed state: %v", err)
	}

	p, err := e.Next(ctx, stu.ID)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if p.Decision.Action != orchestrator.ActionAdvance {
		t.Fatalf("action = %q, want ADVANCE", p.Decision.Action)
	}

	row, _ = students.Get(ctx, stu.ID)
	if row.CurrentConcept != "types" {
		t.Errorf("current concept = %q, want types", row.CurrentConcept)
	}
	if len(row.Completed) != 1 || row.Completed[0] != "variables" {
		t.Errorf("completed = %v", row.Completed)
	}
	if row.AttemptsOnConcept != 0 || row.LessonDelivered {
		t.Errorf("loop state not reset: %+v", row)
	}

	// The following step teaches the new concept.
	p, err = e.Next(ctx, stu.ID)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if p.Decision.Action != orchestrator.ActionTeach || p.Decision.Concept != "types" {
		t.Errorf("got %q on %q, want TEACH on types", p.Decision.Action, p.Decision.Concept)
	}
}

func TestSubmit_ConcurrentSameStudentSerializes(t *testing.T) {
	e, students, _ := newTestEngine(t)
	stu := registerStudent(t, e)
	ctx := context.Background()
	q := serveQuestion(t, e, stu.ID)

	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := e.Submit(ctx, stu.ID, q.ID, q.CorrectKey); err != nil {
				t.Errorf("submit: %v", err)
			}
		}()
	}
	wg.Wait()

	row, _ := students.Get(ctx, stu.ID)
	if row.AttemptsOnConcept != n {
		t.Errorf("attempts = %d, want %d", row.AttemptsOnConcept, n)
	}
	// Ten correct updates from zero with alpha 0.3: 1 - 0.7^10,
	// regardless of interleaving order.
	want := 1.0
	for i := 0; i < n; i++ {
		want *= 0.7
	}
	want = 1 - want
	got := row.MasteryScores["variables"]
	if diff := got - want; diff < -1e-9 || diff > 1e-9 {
		t.Errorf("score = %v, want %v", got, want)
	}
}

func TestRecordAssessment(t *testing.T) {
	e, students, _ := newTestEngine(t)
	stu := registerStudent(t, e)
	ctx := context.Background()

	if err := e.RecordAssessment(ctx, stu.ID, PhasePre, 0.35); err != nil {
		t.Fatalf("pre: %v", err)
	}
	if err := e.RecordAssessment(ctx, stu.ID, PhasePost, 0.7); err != nil {
		t.Fatalf("post: %v", err)
	}

	row, _ := students.Get(ctx, stu.ID)
	if row.PretestScore == nil || *row.PretestScore != 0.35 {
		t.Errorf("pretest = %v", row.PretestScore)
	}
	if row.PosttestScore == nil || *row.PosttestScore != 0.7 {
		t.Errorf("posttest = %v", row.PosttestScore)
	}

	var verr *ValidationError
	if err := e.RecordAssessment(ctx, stu.ID, "mid", 0.5); !errors.As(err, &verr) {
		t.Errorf("bad phase: err = %v, want ValidationError", err)
	}
	if err := e.RecordAssessment(ctx, stu.ID, PhasePre, 1.5); !errors.As(err, &verr) {
		t.Errorf("out-of-range score: err = %v, want ValidationError", err)
	}
	if err := e.RecordAssessment(ctx, "ghost", PhasePre, 0.5); !errors.As(err, &verr) {
		t.Errorf("unknown student: err = %v, want ValidationError", err)
	}
}

func TestProgressReportsHistory(t *testing.T) {
	e, _, _ := newTestEngine(t)
	stu := registerStudent(t, e)
	ctx := context.Background()

	q := serveQuestion(t, e, stu.ID)
	if _, err := e.Submit(ctx, stu.ID, q.ID, "A"); err != nil {
		t.Fatalf("submit wrong: %v", err)
	}
	if _, err := e.Submit(ctx, stu.ID, q.ID, q.CorrectKey); err != nil {
		t.Fatalf("submit right: %v", err)
	}

	p, err := e.Progress(ctx, stu.ID)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.TotalAttempts != 2 {
		t.Errorf("attempts = %d, want 2", p.TotalAttempts)
	}
	if diff := p.Accuracy - 0.5; diff < -1e-9 || diff > 1e-9 {
		t.Errorf("accuracy = %v, want 0.5", p.Accuracy)
	}
	if p.MisconceptionHistory["assignment_vs_equality"] != 1 {
		t.Errorf("history = %v", p.MisconceptionHistory)
	}
	if p.OverallMastery <= 0 {
		t.Errorf("overall mastery = %v, want > 0", p.OverallMastery)
	}
}

func TestExportAttempts(t *testing.T) {
	e, _, _ := newTestEngine(t)
	stu := registerStudent(t, e)
	ctx := context.Background()

	q := serveQuestion(t, e, stu.ID)
	if _, err := e.Submit(ctx, stu.ID, q.ID, "A"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	var csvBuf bytes.Buffer
	if err := e.ExportAttemptsCSV(ctx, &csvBuf); err != nil {
		t.Fatalf("csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(csvBuf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d CSV lines, want header + 1 row:\n%s", len(lines), csvBuf.String())
	}
	if lines[0] != "student_id,question_id,concept,response,is_correct,misconceptions,timestamp" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "assignment_vs_equality") || !strings.Contains(lines[1], "false") {
		t.Errorf("row = %q", lines[1])
	}

	var jsonBuf bytes.Buffer
	if err := e.ExportAttemptsJSON(ctx, &jsonBuf); err != nil {
		t.Fatalf("json: %v", err)
	}
	var records []map[string]any
	if err := json.Unmarshal(jsonBuf.Bytes(), &records); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	for _, key := range []string{"student_id", "question_id", "concept", "response", "is_correct", "misconceptions", "timestamp"} {
		if _, ok := records[0][key]; !ok {
			t.Errorf("record missing %q: %v", key, records[0])
		}
	}
	if records[0]["is_correct"] != false {
		t.Errorf("is_correct = %v", records[0]["is_correct"])
	}
}

func TestLabelAttemptPairsSystemTag(t *testing.T) {
	e, _, events := newTestEngine(t)
	stu := registerStudent(t, e)
	ctx := context.Background()

	q := serveQuestion(t, e, stu.ID)
	if _, err := e.Submit(ctx, stu.ID, q.ID, "A"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := e.LabelAttempt(ctx, stu.ID, q.ID, "off_by_one"); err != nil {
		t.Fatalf("label: %v", err)
	}
	if len(events.labels) != 1 {
		t.Fatalf("labels = %+v", events.labels)
	}
	if events.labels[0].SystemTag != "assignment_vs_equality" {
		t.Errorf("system tag = %q", events.labels[0].SystemTag)
	}
	if events.labels[0].InstructorTag != "off_by_one" {
		t.Errorf("instructor tag = %q", events.labels[0].InstructorTag)
	}

	var verr *ValidationError
	if err := e.LabelAttempt(ctx, stu.ID, "never-served", "off_by_one"); !errors.As(err, &verr) {
		t.Errorf("err = %v, want ValidationError", err)
	}
}

func TestDashboardSmoke(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := e.Register(ctx, fmt.Sprintf("user%d", i), mastery.BaselineMedium); err != nil {
			t.Fatalf("register %d: %v", i, err)
		}
	}

	dash, err := e.Dashboard(ctx)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dash.TotalStudents != 3 {
		t.Errorf("total students = %d, want 3", dash.TotalStudents)
	}
}

func TestSnapshotPersistsReport(t *testing.T) {
	snaps := &fakeSnapshots{}
	e, _, _ := newTestEngine(t, func(o *Options) { o.Snapshots = snaps })
	stu := registerStudent(t, e)
	ctx := context.Background()

	q := serveQuestion(t, e, stu.ID)
	if _, err := e.Submit(ctx, stu.ID, q.ID, q.CorrectKey); err != nil {
		t.Fatalf("submit: %v", err)
	}

	snap, err := e.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Summary.TotalAttempts != 1 {
		t.Errorf("total attempts = %d, want 1", snap.Summary.TotalAttempts)
	}
	if len(snaps.saved) != 1 {
		t.Fatalf("saved snapshots = %d, want 1", len(snaps.saved))
	}
	if len(snaps.saved[0].Data.Report) == 0 {
		t.Error("persisted report is empty")
	}
}

type fakeSnapshots struct {
	mu    sync.Mutex
	saved []*store.Snapshot
}

func (f *fakeSnapshots) Save(_ context.Context, snap *store.Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, snap)
	return nil
}

func (f *fakeSnapshots) Latest(_ context.Context) (*store.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.saved) == 0 {
		return nil, nil
	}
	return f.saved[len(f.saved)-1], nil
}

func (f *fakeSnapshots) Prune(_ context.Context, _ int) error { return nil }

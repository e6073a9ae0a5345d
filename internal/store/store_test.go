package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestStudentCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.StudentRepo()
	ctx := context.Background()

	// Missing student is nil, not an error.
	got, err := repo.Get(ctx, "nope")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for missing student")
	}

	stu := &Student{
		ID:       "4f1c0d6e-0000-0000-0000-000000000001",
		Username: "ada",
		Baseline: "low",
		Active:   true,
	}
	if err := repo.Create(ctx, stu); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err = repo.Get(ctx, stu.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected student")
	}
	if got.Username != "ada" || got.Baseline != "low" || !got.Active {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if got.MasteryScores == nil {
		t.Error("mastery scores should never come back nil")
	}

	byName, err := repo.GetByUsername(ctx, "ada")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if byName == nil || byName.ID != stu.ID {
		t.Errorf("lookup by username = %+v, want id %s", byName, stu.ID)
	}
}

func TestStudentUpdateLoopState(t *testing.T) {
	s := openTestStore(t)
	repo := s.StudentRepo()
	ctx := context.Background()

	stu := &Student{ID: "id-1", Username: "grace", Baseline: "medium", Active: true}
	if err := repo.Create(ctx, stu); err != nil {
		t.Fatalf("create: %v", err)
	}

	stu.CurrentConcept = "loops"
	stu.MasteryScores = map[string]float64{"variables": 0.85, "loops": 0.3}
	stu.RecentTags = []string{"off_by_one"}
	stu.AttemptsOnConcept = 2
	stu.LessonDelivered = true
	stu.Completed = []string{"variables"}
	if err := repo.Update(ctx, stu); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.Get(ctx, "id-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CurrentConcept != "loops" {
		t.Errorf("current concept = %q, want loops", got.CurrentConcept)
	}
	if got.MasteryScores["variables"] != 0.85 {
		t.Errorf("mastery = %v", got.MasteryScores)
	}
	if len(got.Completed) != 1 || got.Completed[0] != "variables" {
		t.Errorf("completed = %v", got.Completed)
	}
	if len(got.RecentTags) != 1 || got.RecentTags[0] != "off_by_one" {
		t.Errorf("recent tags = %v", got.RecentTags)
	}
}

func TestStudentUpdateMissingRow(t *testing.T) {
	s := openTestStore(t)
	repo := s.StudentRepo()

	err := repo.Update(context.Background(), &Student{ID: "ghost", Username: "ghost"})
	if err == nil {
		t.Fatal("expected error updating a missing student")
	}
}

func TestAttemptAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	seq1, err := events.AppendAttempt(ctx, AttemptEventData{
		StudentID:    "s1",
		QuestionID:   "q1",
		ConceptID:    "loops",
		QuestionKind: "mcq",
		Response:     "A",
		Correct:      false,
		Tags:         []string{"off_by_one"},
	})
	if err != nil {
		t.Fatalf("append 1: %v", err)
	}
	seq2, err := events.AppendAttempt(ctx, AttemptEventData{
		StudentID:    "s2",
		QuestionID:   "q1",
		ConceptID:    "loops",
		QuestionKind: "mcq",
		Response:     "B",
		Correct:      true,
	})
	if err != nil {
		t.Fatalf("append 2: %v", err)
	}
	if seq2 <= seq1 {
		t.Errorf("sequence not increasing: %d then %d", seq1, seq2)
	}

	all, err := events.Attempts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d attempts, want 2", len(all))
	}
	if all[0].Sequence != seq1 || all[1].Sequence != seq2 {
		t.Error("attempts not in sequence order")
	}
	if len(all[0].Tags) != 1 || all[0].Tags[0] != "off_by_one" {
		t.Errorf("tags = %v", all[0].Tags)
	}

	mine, err := events.Attempts(ctx, QueryOpts{StudentID: "s1"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(mine) != 1 || mine[0].StudentID != "s1" {
		t.Errorf("student filter returned %v", mine)
	}

	upTo, err := events.Attempts(ctx, QueryOpts{Before: seq1})
	if err != nil {
		t.Fatalf("query cursor: %v", err)
	}
	if len(upTo) != 1 {
		t.Errorf("cursor query returned %d rows, want 1", len(upTo))
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	seq1, err := events.AppendAttempt(ctx, AttemptEventData{
		StudentID: "s1", QuestionID: "q1", ConceptID: "loops",
		QuestionKind: "mcq", Response: "A",
	})
	if err != nil {
		t.Fatalf("append attempt: %v", err)
	}

	if err := events.AppendMastery(ctx, MasteryEventData{
		StudentID: "s1", ConceptID: "loops",
		FromScore: 0.2, ToScore: 0.44, Correct: true, Baseline: "medium",
	}); err != nil {
		t.Fatalf("append mastery: %v", err)
	}
	if err := events.AppendDecision(ctx, DecisionEventData{
		StudentID: "s1", Action: "TEST", ConceptID: "loops", Reason: "testing",
	}); err != nil {
		t.Fatalf("append decision: %v", err)
	}

	last, err := events.LastSequence(ctx)
	if err != nil {
		t.Fatalf("last sequence: %v", err)
	}
	if last != seq1+2 {
		t.Errorf("last sequence = %d, want %d", last, seq1+2)
	}
}

func TestReteachCounts(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	decisions := []DecisionEventData{
		{StudentID: "s1", Action: "RETEACH", ConceptID: "loops", TargetMisconceptions: []string{"off_by_one"}},
		{StudentID: "s1", Action: "RETEACH", ConceptID: "loops", TargetMisconceptions: []string{"off_by_one"}},
		{StudentID: "s2", Action: "RETEACH", ConceptID: "arrays", TargetMisconceptions: []string{"array_indexing_error"}},
		{StudentID: "s2", Action: "TEST", ConceptID: "arrays"},
	}
	for i, d := range decisions {
		if err := events.AppendDecision(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byTag, err := events.ReteachCountsByTag(ctx)
	if err != nil {
		t.Fatalf("by tag: %v", err)
	}
	if byTag["off_by_one"] != 2 || byTag["array_indexing_error"] != 1 {
		t.Errorf("tag counts = %v", byTag)
	}

	byStudent, err := events.ReteachCountsByStudent(ctx)
	if err != nil {
		t.Fatalf("by student: %v", err)
	}
	if byStudent["s1"] != 2 || byStudent["s2"] != 1 {
		t.Errorf("student counts = %v", byStudent)
	}
}

func TestInstructorLabelsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	err := events.AppendInstructorLabel(ctx, InstructorLabelEventData{
		AttemptID:     "a1",
		StudentID:     "s1",
		SystemTag:     "off_by_one",
		InstructorTag: "off_by_one",
	})
	if err != nil {
		t.Fatalf("append label: %v", err)
	}

	labels, err := events.InstructorLabels(ctx)
	if err != nil {
		t.Fatalf("query labels: %v", err)
	}
	if len(labels) != 1 {
		t.Fatalf("got %d labels, want 1", len(labels))
	}
	if labels[0].SystemTag != "off_by_one" || labels[0].InstructorTag != "off_by_one" {
		t.Errorf("label = %+v", labels[0])
	}
}

func TestLLMEventQueriesAndUsage(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	reqs := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "lesson-synthesis", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true, CostUSD: 0.001},
		{Provider: "anthropic", Model: "m1", Purpose: "lesson-synthesis", InputTokens: 300, OutputTokens: 150, LatencyMs: 400, Success: true, CostUSD: 0.003},
		{Provider: "openai", Model: "m2", Purpose: "question-synthesis", InputTokens: 80, OutputTokens: 40, LatencyMs: 100, Success: false, ErrorMessage: "timeout", RequestBody: "prompt", ResponseBody: ""},
	}
	for i, r := range reqs {
		if err := events.AppendLLMRequest(ctx, r); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	rows, err := events.LLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Sequence <= rows[1].Sequence {
		t.Errorf("expected newest first, got sequences %d, %d", rows[0].Sequence, rows[1].Sequence)
	}
	if rows[0].Purpose != "question-synthesis" || rows[0].ErrorMessage != "timeout" {
		t.Errorf("newest row = %+v", rows[0])
	}

	got, err := events.LLMEventBySequence(ctx, rows[0].Sequence)
	if err != nil {
		t.Fatalf("by sequence: %v", err)
	}
	if got == nil || got.RequestBody != "prompt" {
		t.Errorf("by sequence = %+v", got)
	}
	missing, err := events.LLMEventBySequence(ctx, 9999)
	if err != nil {
		t.Fatalf("missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown sequence, got %+v", missing)
	}

	byPurpose, err := events.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	stats := make(map[string]LLMUsageStat, len(byPurpose))
	for _, st := range byPurpose {
		stats[st.Purpose] = st
	}
	lesson := stats["lesson-synthesis"]
	if lesson.Calls != 2 || lesson.InputTokens != 400 || lesson.OutputTokens != 200 {
		t.Errorf("lesson usage = %+v", lesson)
	}
	if lesson.AvgLatencyMs != 300 {
		t.Errorf("avg latency = %d, want 300", lesson.AvgLatencyMs)
	}

	byModel, err := events.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	models := make(map[string]LLMModelUsage, len(byModel))
	for _, mu := range byModel {
		models[mu.Model] = mu
	}
	if models["m1"].Calls != 2 || models["m2"].InputTokens != 80 {
		t.Errorf("model usage = %v", models)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	report := json.RawMessage(`{"summary":{"total_attempts":12}}`)
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data:      SnapshotData{Version: 1, Report: report},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Version != 1 {
		t.Errorf("data.version = %d, want 1", snap.Data.Version)
	}
	if string(snap.Data.Report) == "" {
		t.Error("report payload lost in round trip")
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}

	cur, err := sc.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if cur != 5 {
		t.Errorf("current = %d, want 5", cur)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.StudentRepo().Create(ctx, &Student{ID: "id-1", Username: "ada"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.EventRepo().AppendAttempt(ctx, AttemptEventData{
		StudentID: "id-1", QuestionID: "q1", ConceptID: "loops",
		QuestionKind: "mcq", Response: "A",
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	students, err := s.StudentRepo().All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(students) != 0 {
		t.Errorf("students remain after reset: %d", len(students))
	}

	seq, err := s.EventRepo().LastSequence(ctx)
	if err != nil {
		t.Fatalf("last sequence: %v", err)
	}
	if seq != 0 {
		t.Errorf("sequence = %d after reset, want 0", seq)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"students", "attempt_events", "snapshots"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

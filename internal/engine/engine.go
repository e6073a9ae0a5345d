// Package engine composes the domain packages behind the external
// boundaries: attempt ingestion, content serving, progress queries,
// and instructor analytics. It owns per-student serialization; the
// packages underneath stay free of locking.
package engine

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/codetutor/internal/conceptgraph"
	"github.com/abhisek/codetutor/internal/content"
	"github.com/abhisek/codetutor/internal/diagnosis"
	"github.com/abhisek/codetutor/internal/mastery"
	"github.com/abhisek/codetutor/internal/metrics"
	"github.com/abhisek/codetutor/internal/orchestrator"
	"github.com/abhisek/codetutor/internal/store"
)

// Options carries the engine's dependencies. Students, Events, and
// Content are required; the rest default sensibly.
type Options struct {
	Students  store.StudentRepo
	Events    store.EventRepo
	Snapshots store.SnapshotRepo

	Content   *content.Service
	Diagnoser *diagnosis.Diagnoser
	Tracker   *mastery.Tracker
	Policy    orchestrator.Config
	Analytics metrics.Config

	// Runner executes coding submissions. Optional: without one,
	// coding attempts grade incorrect with an explanatory output and
	// the loop stays live.
	Runner Runner

	Logger *zap.Logger
}

// Engine is the composition root for the learning loop.
type Engine struct {
	students  store.StudentRepo
	events    store.EventRepo
	snapshots store.SnapshotRepo

	content   *content.Service
	diagnoser *diagnosis.Diagnoser
	tracker   *mastery.Tracker
	orch      *orchestrator.Orchestrator
	analytics *metrics.Engine
	runner    Runner
	logger    *zap.Logger

	// locks serializes attempt processing per student so concurrent
	// submissions cannot interleave past the mastery update. Distinct
	// students proceed in parallel.
	locks sync.Map // student ID -> *sync.Mutex

	// questions caches served question payloads by instance ID so
	// ingestion can grade and diagnose against them.
	questions sync.Map // question ID -> *content.QuestionPayload
}

// New validates the concept graph and builds an engine. A cyclic or
// dangling graph is fatal: the sequencing policy assumes acyclicity.
func New(opts Options) (*Engine, error) {
	if err := conceptgraph.Validate(); err != nil {
		return nil, fmt.Errorf("concept graph: %w", err)
	}
	if opts.Students == nil || opts.Events == nil {
		return nil, fmt.Errorf("engine requires student and event repositories")
	}
	if opts.Content == nil {
		return nil, fmt.Errorf("engine requires a content service")
	}
	if err := opts.Policy.Validate(); err != nil {
		return nil, fmt.Errorf("policy config: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tracker := opts.Tracker
	if tracker == nil {
		tracker = mastery.NewTracker(mastery.DefaultConfig())
	}
	diagnoser := opts.Diagnoser
	if diagnoser == nil {
		diagnoser = diagnosis.NewDiagnoser(diagnosis.DefaultConfig(), nil, logger)
	}

	return &Engine{
		students:  opts.Students,
		events:    opts.Events,
		snapshots: opts.Snapshots,
		content:   opts.Content,
		diagnoser: diagnoser,
		tracker:   tracker,
		orch:      orchestrator.New(opts.Policy),
		analytics: metrics.NewEngine(opts.Analytics, logger),
		runner:    opts.Runner,
		logger:    logger,
	}, nil
}

// lockFor returns the mutex serializing one student's loop.
func (e *Engine) lockFor(studentID string) *sync.Mutex {
	mu, _ := e.locks.LoadOrStore(studentID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// stateFromStudent converts the persisted row into decision input.
func stateFromStudent(s *store.Student) orchestrator.State {
	return orchestrator.State{
		CurrentConcept:     s.CurrentConcept,
		MasteryScores:      s.MasteryScores,
		RecentTags:         s.RecentTags,
		AttemptsOnConcept:  s.AttemptsOnConcept,
		LastAttemptCorrect: s.LastAttemptCorrect,
		LessonDelivered:    s.LessonDelivered,
		Completed:          toSet(s.Completed),
		Skipped:            toSet(s.Skipped),
	}
}

func toSet(ids []string) map[string]bool {
	if len(ids) == 0 {
		return nil
	}
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}

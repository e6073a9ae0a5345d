package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/codetutor/internal/mastery"
)

// Summary holds the headline numbers for a snapshot.
type Summary struct {
	TotalStudents   int
	ActiveStudents  int
	TotalAttempts   int
	OverallAccuracy float64
	AverageMastery  float64
}

// Snapshot is one full analytics run over a fixed-cursor dataset. It
// is derived and reproducible, never authoritative.
type Snapshot struct {
	Cursor    time.Time
	Items     []ItemStats
	Effect    EffectSize
	Agreement Agreement
	Equity    EquityReport
	Clusters  []Cluster
	Priority  []PriorityEntry
	Summary   Summary
}

// Engine computes snapshots. It holds no mutable state, so one engine
// may serve concurrent snapshot requests.
type Engine struct {
	cfg    Config
	logger *zap.Logger
}

// NewEngine creates an analytics engine. A nil logger disables logging.
func NewEngine(cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{cfg: cfg, logger: logger}
}

// Config returns the thresholds the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Snapshot computes every analytics section over the dataset. Sections
// are independent pure functions, so they run in parallel; the dataset
// is never written to.
func (e *Engine) Snapshot(ctx context.Context, ds Dataset) (*Snapshot, error) {
	start := time.Now()
	snap := &Snapshot{Cursor: ds.Cursor}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap.Items = AnalyzeItems(ds.Attempts)
		return nil
	})
	g.Go(func() error {
		snap.Effect = PrePostEffect(ds.PreScores, ds.PostScores)
		return nil
	})
	g.Go(func() error {
		snap.Agreement = DiagnosticAgreement(ds.Labeled)
		return nil
	})
	g.Go(func() error {
		snap.Equity = AnalyzeEquity(ds.Students)
		return nil
	})
	g.Go(func() error {
		snap.Clusters = ClusterMisconceptions(e.cfg, ds)
		return nil
	})
	g.Go(func() error {
		snap.Priority = RankPriority(e.cfg, ds)
		return nil
	})
	g.Go(func() error {
		snap.Summary = summarize(ds)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.Info("metrics snapshot computed",
		zap.Time("cursor", ds.Cursor),
		zap.Int("students", len(ds.Students)),
		zap.Int("attempts", len(ds.Attempts)),
		zap.Duration("elapsed", time.Since(start)))
	return snap, nil
}

func summarize(ds Dataset) Summary {
	s := Summary{
		TotalStudents: len(ds.Students),
		TotalAttempts: len(ds.Attempts),
	}

	correct := 0
	for _, a := range ds.Attempts {
		if a.Correct {
			correct++
		}
	}
	if s.TotalAttempts > 0 {
		s.OverallAccuracy = float64(correct) / float64(s.TotalAttempts)
	}

	var masterySum float64
	var withMastery int
	for _, st := range ds.Students {
		if st.Active {
			s.ActiveStudents++
		}
		if len(st.MasteryScores) > 0 {
			masterySum += mastery.Overall(st.MasteryScores)
			withMastery++
		}
	}
	if withMastery > 0 {
		s.AverageMastery = masterySum / float64(withMastery)
	}
	return s
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/codetutor/internal/content"
	"github.com/abhisek/codetutor/internal/diagnosis"
	"github.com/abhisek/codetutor/internal/engine"
	"github.com/abhisek/codetutor/internal/llm"
	"github.com/abhisek/codetutor/internal/mastery"
	"github.com/abhisek/codetutor/internal/metrics"
	"github.com/abhisek/codetutor/internal/orchestrator"
	"github.com/abhisek/codetutor/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "codetutor",
	Short: "Adaptive programming tutor",
	Long:  "CodeTutor — adaptive remediation engine that teaches programming concepts, diagnoses misconceptions, and steers each learner through the concept graph.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CODETUTOR_DB env var)")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(labelCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CODETUTOR_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// newLogger builds the CLI logger: quiet by default, verbose with
// CODETUTOR_DEBUG=1.
func newLogger() *zap.Logger {
	if os.Getenv("CODETUTOR_DEBUG") == "" {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// openEngine opens the store and assembles the engine behind it. The
// caller owns the returned store and must Close it.
func openEngine(cmd *cobra.Command) (*engine.Engine, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	logger := newLogger()
	ctx := cmd.Context()

	// The provider is optional: without one, lessons and questions come
	// from the deterministic seed bank and diagnosis stays rule-based.
	var refiner *diagnosis.Refiner
	provider, err := llm.NewProvider(ctx, llm.ConfigFromEnv(), st.EventRepo(), logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Content synthesis will use the built-in seed bank.")
		provider = llm.NewMockProvider()
	} else {
		refiner = diagnosis.NewRefiner(provider, diagnosis.DefaultRefinerConfig())
	}

	contentCfg := content.ConfigFromEnv()
	eng, err := engine.New(engine.Options{
		Students:  st.StudentRepo(),
		Events:    st.EventRepo(),
		Snapshots: st.SnapshotRepo(),
		Content:   content.NewService(content.NewLLMSynthesizer(provider, contentCfg), contentCfg, logger),
		Diagnoser: diagnosis.NewDiagnoser(diagnosis.ConfigFromEnv(), refiner, logger),
		Tracker:   mastery.NewTracker(mastery.ConfigFromEnv()),
		Policy:    orchestrator.ConfigFromEnv(),
		Analytics: metrics.ConfigFromEnv(),
		Logger:    logger,
	})
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("build engine: %w", err)
	}
	return eng, st, nil
}

// resolveStudent maps a username to its roster row.
func resolveStudent(cmd *cobra.Command, st *store.Store, username string) (*store.Student, error) {
	stu, err := st.StudentRepo().GetByUsername(cmd.Context(), username)
	if err != nil {
		return nil, err
	}
	if stu == nil {
		return nil, fmt.Errorf("unknown student %q (run: codetutor register %s)", username, username)
	}
	return stu, nil
}

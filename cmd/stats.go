package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/codetutor/internal/mastery"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Compute and show the research metrics snapshot",
	Long: `Run the full analytics pass over the event log: item difficulty and
discrimination, pre/post effect size, diagnostic agreement, and the
equity report. The snapshot is persisted for later export.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		snap, err := eng.Snapshot(cmd.Context())
		if err != nil {
			return err
		}

		s := snap.Summary
		fmt.Printf("Students:  %d (%d active)\n", s.TotalStudents, s.ActiveStudents)
		fmt.Printf("Attempts:  %d (%.0f%% correct)\n", s.TotalAttempts, s.OverallAccuracy*100)
		fmt.Printf("Mastery:   %.0f%% average\n", s.AverageMastery*100)

		if len(snap.Items) > 0 {
			fmt.Println()
			fmt.Printf("%-24s  %-12s  %8s  %8s  %14s\n", "Question", "Concept", "Attempts", "P-value", "Discrimination")
			fmt.Println(strings.Repeat("─", 76))
			for _, item := range snap.Items {
				disc := "n/a"
				if item.Valid {
					disc = fmt.Sprintf("%+.2f", item.Discrimination)
				}
				fmt.Printf("%-24s  %-12s  %8d  %8.2f  %14s\n",
					truncate(item.QuestionID, 24), item.ConceptID, item.Attempts, item.PValue, disc)
			}
		}

		if snap.Effect.Pairs > 0 {
			fmt.Println()
			fmt.Printf("Learning effect: d = %.2f (%s) over %d pre/post pairs (%.2f → %.2f)\n",
				snap.Effect.CohensD, snap.Effect.Interpretation, snap.Effect.Pairs,
				snap.Effect.PreMean, snap.Effect.PostMean)
		}

		if snap.Agreement.Labeled > 0 {
			fmt.Printf("Diagnostic agreement: κ = %.2f over %d labeled attempts\n",
				snap.Agreement.Kappa, snap.Agreement.Labeled)
		}

		if len(snap.Equity.GroupMeans) > 0 {
			fmt.Println()
			fmt.Printf("Equity: gap %.2f (%s)\n", snap.Equity.Gap, snap.Equity.Status)
			for _, level := range []mastery.BaselineLevel{mastery.BaselineLow, mastery.BaselineMedium, mastery.BaselineHigh} {
				if m, ok := snap.Equity.GroupMeans[level]; ok {
					fmt.Printf("  %-8s %5.0f%%  (%d students)\n", level, m*100, snap.Equity.GroupSizes[level])
				}
			}
		}

		fmt.Println()
		fmt.Println("Snapshot saved.")
		return nil
	},
}

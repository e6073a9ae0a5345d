package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress <username>",
	Short: "Show a student's mastery and misconception history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		stu, err := resolveStudent(cmd, st, args[0])
		if err != nil {
			return err
		}

		p, err := eng.Progress(cmd.Context(), stu.ID)
		if err != nil {
			return err
		}

		fmt.Printf("%s (baseline %s)\n", p.Username, p.Baseline)
		if p.CurrentConcept != "" {
			fmt.Printf("Current concept:  %s\n", p.CurrentConcept)
		}
		fmt.Printf("Overall mastery:  %.0f%%\n", p.OverallMastery*100)
		fmt.Printf("Attempts:         %d (%.0f%% correct)\n", p.TotalAttempts, p.Accuracy*100)

		if len(p.MasteryScores) > 0 {
			fmt.Println()
			fmt.Printf("%-16s  %s\n", "Concept", "Mastery")
			fmt.Println(strings.Repeat("─", 32))
			concepts := make([]string, 0, len(p.MasteryScores))
			for c := range p.MasteryScores {
				concepts = append(concepts, c)
			}
			sort.Strings(concepts)
			for _, c := range concepts {
				fmt.Printf("%-16s  %5.0f%%\n", c, p.MasteryScores[c]*100)
			}
		}

		if len(p.ConceptsCompleted) > 0 {
			fmt.Printf("\nCompleted: %s\n", strings.Join(p.ConceptsCompleted, ", "))
		}
		if len(p.ConceptsSkipped) > 0 {
			fmt.Printf("Needs review: %s\n", strings.Join(p.ConceptsSkipped, ", "))
		}

		if len(p.MisconceptionHistory) > 0 {
			fmt.Println()
			fmt.Println("Misconception history:")
			tags := make([]string, 0, len(p.MisconceptionHistory))
			for t := range p.MisconceptionHistory {
				tags = append(tags, t)
			}
			sort.Strings(tags)
			for _, t := range tags {
				fmt.Printf("  %-28s %d\n", t, p.MisconceptionHistory[t])
			}
		}
		return nil
	},
}

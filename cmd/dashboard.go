package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/codetutor/internal/conceptgraph"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the instructor dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		d, err := eng.Dashboard(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Class overview — %d students\n\n", d.TotalStudents)

		if len(d.StrugglingStudents) > 0 {
			fmt.Printf("Struggling (%d): %s\n\n", len(d.StrugglingStudents), strings.Join(d.StrugglingStudents, ", "))
		}

		fmt.Printf("%-16s  %10s  %10s  %8s\n", "Concept", "Struggling", "Developing", "Mastered")
		fmt.Println(strings.Repeat("─", 52))
		for _, c := range conceptgraph.All() {
			cell := d.ConceptHeatmap[c.ID]
			fmt.Printf("%-16s  %10d  %10d  %8d\n", c.ID, cell.Struggling, cell.Developing, cell.Mastered)
		}

		if len(d.Clusters) > 0 {
			fmt.Println()
			fmt.Println("Misconception clusters:")
			for _, cl := range d.Clusters {
				fmt.Printf("  [%s] %s — %d students (%.0f%%)\n", cl.Severity, cl.Tag, len(cl.Students), cl.Share*100)
				fmt.Printf("        %s\n", cl.Intervention)
			}
		}

		if len(d.Priority) > 0 {
			fmt.Println()
			fmt.Println("Priority students:")
			for i, p := range d.Priority {
				flag := ""
				if p.NeedsAttention {
					flag = "  ← needs attention"
				}
				fmt.Printf("  %2d. %-36s  score %.3f  mastery %.0f%%  reteach ×%d%s\n",
					i+1, p.StudentID, p.Score, p.AvgMastery*100, p.ReteachCycles, flag)
			}
		}

		if len(d.Suggestions) > 0 {
			fmt.Println()
			fmt.Println("Suggestions:")
			for _, s := range d.Suggestions {
				fmt.Printf("  • %s\n", s)
			}
		}
		return nil
	},
}

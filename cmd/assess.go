package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var assessCmd = &cobra.Command{
	Use:   "assess <username> <pre|post> <score>",
	Short: "Record a pretest or posttest score",
	Long: `Store an assessment score (0..1) for a student. Pre and post scores
bracket the learning loop and feed the effect-size metric in stats.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid score %q: %w", args[2], err)
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		stu, err := resolveStudent(cmd, st, args[0])
		if err != nil {
			return err
		}

		if err := eng.RecordAssessment(cmd.Context(), stu.ID, args[1], score); err != nil {
			return err
		}
		fmt.Printf("Recorded %s score %.2f for %s\n", args[1], score, args[0])
		return nil
	},
}

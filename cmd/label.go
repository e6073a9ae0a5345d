package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/codetutor/internal/misconception"
)

var labelCmd = &cobra.Command{
	Use:   "label <username> <question-id> <tag>",
	Short: "Record an instructor misconception label for an attempt",
	Long: `Attach an instructor's misconception judgment to a student's most
recent attempt on a question. Labels feed the diagnostic-agreement
metric (Cohen's kappa) in the stats snapshot.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, questionID, tag := args[0], args[1], args[2]

		if !misconception.Exists(tag) {
			return fmt.Errorf("unknown misconception tag %q (see: codetutor label tags)", tag)
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		stu, err := resolveStudent(cmd, st, username)
		if err != nil {
			return err
		}

		if err := eng.LabelAttempt(cmd.Context(), stu.ID, questionID, tag); err != nil {
			return err
		}
		fmt.Printf("Labeled %s's attempt on %s as %q\n", username, questionID, tag)
		return nil
	},
}

var labelTagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the misconception tags available for labeling",
	Run: func(cmd *cobra.Command, args []string) {
		for _, m := range misconception.All() {
			fmt.Printf("%-28s  %s\n", m.ID, m.Label)
		}
	},
}

func init() {
	labelCmd.AddCommand(labelTagsCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/codetutor/internal/mastery"
)

var registerCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Register a new student",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseline, _ := cmd.Flags().GetString("baseline")

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		stu, err := eng.Register(cmd.Context(), args[0], mastery.BaselineLevel(baseline))
		if err != nil {
			return err
		}

		fmt.Printf("Registered %s (baseline %s)\n", stu.Username, stu.Baseline)
		fmt.Printf("Student ID: %s\n", stu.ID)
		return nil
	},
}

func init() {
	registerCmd.Flags().String("baseline", "medium", "Prior-exposure level: low, medium, or high")
}

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the attempt log or analytics report",
}

var exportAttemptsCmd = &cobra.Command{
	Use:   "attempts",
	Short: "Export the raw attempt log",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		w, closeFn, err := openOutput(out)
		if err != nil {
			return err
		}
		defer closeFn()

		switch format {
		case "csv":
			return eng.ExportAttemptsCSV(cmd.Context(), w)
		case "json":
			return eng.ExportAttemptsJSON(cmd.Context(), w)
		default:
			return fmt.Errorf("unknown format %q: must be csv or json", format)
		}
	},
}

var exportReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export the latest analytics report as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		w, closeFn, err := openOutput(out)
		if err != nil {
			return err
		}
		defer closeFn()

		return eng.ExportReport(cmd.Context(), w)
	},
}

// openOutput returns stdout or the named file plus a close function.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

func init() {
	exportAttemptsCmd.Flags().StringP("format", "f", "csv", "Output format: csv or json")
	exportAttemptsCmd.Flags().StringP("out", "o", "", "Output file (default stdout)")
	exportReportCmd.Flags().StringP("out", "o", "", "Output file (default stdout)")

	exportCmd.AddCommand(exportAttemptsCmd)
	exportCmd.AddCommand(exportReportCmd)
}

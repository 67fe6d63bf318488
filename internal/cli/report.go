package cli

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"wikibench/internal/report"
)

func newReportCmd() *cobra.Command {
	var dir string
	var agentsFlag string
	var modesFlag string

	cmd := silenceUsageAndErrors(&cobra.Command{
		Use:   "report",
		Short: "Aggregate saved report artifacts into a CSV leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := report.Run(report.Options{
				Dir:    dir,
				Agents: splitCommaList(agentsFlag),
				Modes:  splitCommaList(modesFlag),
			})
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := sum.WriteCSV(&buf); err != nil {
				return err
			}
			_, err = os.Stdout.Write(buf.Bytes())
			return err
		},
	})

	cmd.Flags().StringVar(&dir, "dir", "results", "directory holding report artifacts")
	cmd.Flags().StringVar(&agentsFlag, "agents", "", "comma-separated agent list (default: all)")
	cmd.Flags().StringVar(&modesFlag, "modes", "", "comma-separated mode list (default: all)")

	return cmd
}

package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// Execute runs the CLI.
func Execute() error {
	root := silenceUsageAndErrors(&cobra.Command{
		Use:   "wikibench",
		Short: "Benchmark agents on finding link paths between Wikipedia pages.",
	})

	root.AddCommand(newRunCmd())
	root.AddCommand(newValidatePathCmd())
	root.AddCommand(newAgentsCmd())
	root.AddCommand(newReportCmd())
	executed, err := root.ExecuteC()
	if err != nil {
		maybePrintUsage(executed, root, err)
	}
	return err
}

func silenceUsageAndErrors(cmd *cobra.Command) *cobra.Command {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return cmd
}

func maybePrintUsage(cmd, root *cobra.Command, err error) {
	if err == nil {
		return
	}
	target := cmd
	if target == nil {
		target = root
	}
	if target == nil {
		return
	}
	if shouldShowUsage(err) {
		_ = target.Usage()
	}
}

// shouldShowUsage matches cobra's own argument/flag errors, for which usage
// output helps; other errors are printed plainly by main.
func shouldShowUsage(err error) bool {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.HasPrefix(msg, "unknown command"),
		strings.HasPrefix(msg, "unknown flag"),
		strings.HasPrefix(msg, "unknown shorthand flag"),
		strings.HasPrefix(msg, "invalid argument"),
		strings.Contains(msg, "flag needs an argument"),
		strings.Contains(msg, "required flag"):
		return true
	case strings.Contains(msg, "accepts") && strings.Contains(msg, "arg"):
		return true
	case strings.Contains(msg, "requires at least") && strings.Contains(msg, "arg"):
		return true
	}
	return false
}

func splitCommaList(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

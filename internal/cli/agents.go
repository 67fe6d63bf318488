package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"wikibench/internal/agents"
)

func newAgentsCmd() *cobra.Command {
	return silenceUsageAndErrors(&cobra.Command{
		Use:   "agents",
		Short: "List the built-in example agents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range agents.Names() {
				fmt.Println(name)
			}
			return nil
		},
	})
}

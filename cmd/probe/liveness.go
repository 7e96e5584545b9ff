package probe

import (
	"github.com/spf13/cobra"
)

func newLiveness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liveness",
		Short: "Runs liveness probes",
		Long:  "This command runs the liveness probe against the running server (/-/healthy).",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, "/-/healthy")
		},
	}

	addFlags(cmd)

	return cmd
}

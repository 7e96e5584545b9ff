package probe

import (
	"github.com/spf13/cobra"
)

func newReadiness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Runs readiness probes",
		Long: `This command runs the readiness probe against the running server (/-/ready).
The server is ready once all components are initialized and the chain RPC answers.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, "/-/ready")
		},
	}

	addFlags(cmd)

	return cmd
}

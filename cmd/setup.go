package cmd

import (
	"github.com/spf13/cobra"

	"umdev/internal/lifecycle"
)

func newSetupCmd(svc *lifecycle.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Create the virtual environment and install dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return svc.Setup(cmd.Context())
		},
	}
}

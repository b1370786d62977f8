package cmd

import (
	"github.com/spf13/cobra"

	"umdev/internal/lifecycle"
)

func newRunCmd(svc *lifecycle.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the API with auto-reload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return svc.Run(cmd.Context())
		},
	}
}

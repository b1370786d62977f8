package cmd

import (
	"github.com/spf13/cobra"

	"umdev/internal/lifecycle"
)

func newCleanCmd(svc *lifecycle.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove generated cache artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return svc.Clean(".")
		},
	}
}

package cmd

import (
	"github.com/spf13/cobra"

	"umdev/internal/lifecycle"
)

func newTestCmd(svc *lifecycle.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Run the test suite with coverage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return svc.Test(cmd.Context())
		},
	}
}

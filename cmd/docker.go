package cmd

import (
	"github.com/spf13/cobra"

	"umdev/internal/lifecycle"
)

func newDockerCmd(svc *lifecycle.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "docker",
		Short: "Build and start the Docker Compose stack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return svc.DockerUp(cmd.Context())
		},
	}
}

func newDockerStopCmd(svc *lifecycle.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "docker-stop",
		Short: "Stop the Docker Compose stack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return svc.DockerDown(cmd.Context())
		},
	}
}

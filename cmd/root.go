package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"umdev/config"
	"umdev/internal/execx"
	"umdev/internal/exitcode"
	"umdev/internal/lifecycle"
	"umdev/internal/ui"
)

func newRootCmd(svc *lifecycle.Service) *cobra.Command {
	root := &cobra.Command{
		Use:           "umdev",
		Short:         "Development lifecycle tool for the User Management API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation: usage to stderr, non-zero exit.
			fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
			return exitcode.New(exitcode.Failure)
		},
	}

	root.AddCommand(
		newSetupCmd(svc),
		newRunCmd(svc),
		newTestCmd(svc),
		newDockerCmd(svc),
		newDockerStopCmd(svc),
		newCleanCmd(svc),
		newVersionCmd(),
	)
	return root
}

// Run executes the command tree against args and returns the process exit
// code: 0 on success, 1 on usage or precondition failure, and a delegated
// external process's own code otherwise.
func Run(args []string, svc *lifecycle.Service, stdout, stderr io.Writer) int {
	root := newRootCmd(svc)
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		var ee *exitcode.Error
		if errors.As(err, &ee) {
			return ee.Code
		}
		ui.Error(stderr, "%v", err)
		fmt.Fprint(stderr, root.UsageString())
		return exitcode.Failure
	}
	return exitcode.Success
}

func Execute() {
	config.Init()

	svc := lifecycle.New(execx.NewSystem(), config.Load(), os.Stdout, os.Stderr)
	os.Exit(Run(os.Args[1:], svc, os.Stdout, os.Stderr))
}

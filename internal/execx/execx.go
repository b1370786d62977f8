// Package execx abstracts external process execution behind a narrow Runner
// capability so command handlers can be exercised in tests without spawning
// real processes.
package execx

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Result reports the outcome of one process invocation.
type Result struct {
	Code int
	Err  error
}

// Runner is the process-execution capability the lifecycle handlers depend on.
type Runner interface {
	// Run executes a command attached to the terminal: the child inherits
	// stdin/stdout/stderr and the call blocks until it exits.
	Run(ctx context.Context, name string, args ...string) Result

	// Capture executes a command and returns its stdout.
	Capture(ctx context.Context, name string, args ...string) (string, Result)

	// LookPath resolves an executable name against PATH.
	LookPath(name string) (string, error)
}

// System runs real processes.
type System struct{}

func NewSystem() System { return System{} }

func (System) Run(ctx context.Context, name string, args ...string) Result {
	trace(name, args)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return resultOf(cmd.Run())
}

func (System) Capture(ctx context.Context, name string, args ...string) (string, Result) {
	trace(name, args)
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	return string(out), resultOf(err)
}

func (System) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func resultOf(err error) Result {
	if err == nil {
		return Result{}
	}
	code := 1
	if ee, ok := err.(*exec.ExitError); ok {
		code = ee.ExitCode()
	}
	return Result{Code: code, Err: err}
}

func trace(name string, args []string) {
	if os.Getenv("UMDEV_DEBUG") == "1" {
		fmt.Fprintf(os.Stderr, "+ %s\n", strings.Join(append([]string{name}, args...), " "))
	}
}

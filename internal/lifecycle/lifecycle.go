// Package lifecycle implements the tool's actions: environment setup, API
// launch, test run, compose stack control and cache cleanup. Each action is
// a bounded, strictly sequential chain of external-process invocations; the
// first failing step aborts the rest and its exit status is surfaced to the
// caller unmodified.
package lifecycle

import (
	"context"
	"io"
	"strconv"

	"umdev/config"
	"umdev/internal/compose"
	"umdev/internal/execx"
	"umdev/internal/exitcode"
	"umdev/internal/logger"
	"umdev/internal/pyenv"
	"umdev/internal/ui"
)

// Service holds the dependencies the action handlers share.
type Service struct {
	Runner   execx.Runner
	Settings config.Settings
	Out      io.Writer
	Err      io.Writer
}

func New(r execx.Runner, s config.Settings, out, errw io.Writer) *Service {
	return &Service{Runner: r, Settings: s, Out: out, Err: errw}
}

func (s *Service) env() pyenv.Env {
	return pyenv.Env{Dir: s.Settings.VenvDir, Runner: s.Runner}
}

// interpreter gates an action on the Python precondition. On failure it
// reports the error and returns a plain exit 1 before any side effect.
func (s *Service) interpreter(ctx context.Context) (string, error) {
	py, err := pyenv.Interpreter(ctx, s.Runner, s.Settings.PythonBinary, s.Settings.PythonMinimum)
	if err != nil {
		ui.Error(s.Err, "%v", err)
		return "", exitcode.New(exitcode.Failure)
	}
	logger.Log.Debug("resolved interpreter", "path", py)
	return py, nil
}

// Setup creates the virtual environment if absent and installs the declared
// dependencies. Re-running against an existing environment warns and
// re-installs instead of failing.
func (s *Service) Setup(ctx context.Context) error {
	py, err := s.interpreter(ctx)
	if err != nil {
		return err
	}

	env := s.env()
	if env.Exists() {
		ui.Warn(s.Out, "virtual environment %s already exists, skipping creation", env.Dir)
	} else {
		ui.Step(s.Out, "Creating virtual environment in %s", env.Dir)
		if res := env.Create(ctx, py); res.Code != 0 {
			return exitcode.New(res.Code)
		}
	}

	ui.Step(s.Out, "Installing dependencies from %s", s.Settings.Requirements)
	if res := env.InstallRequirements(ctx, s.Settings.Requirements); res.Code != 0 {
		return exitcode.New(res.Code)
	}

	ui.Success(s.Out, "Setup complete. Start the API with 'umdev run'.")
	return nil
}

// Run starts the API with auto-reload, attached to the terminal until it
// exits or the user interrupts it.
func (s *Service) Run(ctx context.Context) error {
	if _, err := s.interpreter(ctx); err != nil {
		return err
	}
	env, err := s.requireEnv()
	if err != nil {
		return err
	}

	ui.Step(s.Out, "Starting API on %s:%d (auto-reload enabled)", s.Settings.Host, s.Settings.Port)
	res := s.Runner.Run(ctx, env.Bin("uvicorn"), s.Settings.AppImport,
		"--reload",
		"--host", s.Settings.Host,
		"--port", strconv.Itoa(s.Settings.Port))
	if res.Code != 0 {
		return exitcode.New(res.Code)
	}
	return nil
}

// Test runs the suite with coverage instrumentation reporting to the
// terminal. The test runner's exit status is the tool's.
func (s *Service) Test(ctx context.Context) error {
	if _, err := s.interpreter(ctx); err != nil {
		return err
	}
	env, err := s.requireEnv()
	if err != nil {
		return err
	}

	ui.Step(s.Out, "Running tests with coverage")
	res := s.Runner.Run(ctx, env.Bin("pytest"), "-v",
		"--cov="+s.Settings.CoverageSource,
		"--cov-report=term-missing")
	if res.Code != 0 {
		return exitcode.New(res.Code)
	}
	return nil
}

// DockerUp builds and starts the containerized stack attached to the
// terminal.
func (s *Service) DockerUp(ctx context.Context) error {
	cc, err := s.composeCommand(ctx)
	if err != nil {
		return err
	}

	ui.Step(s.Out, "Starting Docker stack")
	res := s.Runner.Run(ctx, cc.Name, cc.Args(s.Settings.ComposeFiles, "up", "--build")...)
	if res.Code != 0 {
		return exitcode.New(res.Code)
	}
	return nil
}

// DockerDown tears the containerized stack down.
func (s *Service) DockerDown(ctx context.Context) error {
	cc, err := s.composeCommand(ctx)
	if err != nil {
		return err
	}

	ui.Step(s.Out, "Stopping Docker stack")
	res := s.Runner.Run(ctx, cc.Name, cc.Args(s.Settings.ComposeFiles, "down")...)
	if res.Code != 0 {
		return exitcode.New(res.Code)
	}
	ui.Success(s.Out, "Docker stack stopped")
	return nil
}

func (s *Service) composeCommand(ctx context.Context) (compose.Command, error) {
	cc, err := compose.Resolve(ctx, s.Runner)
	if err != nil {
		ui.Error(s.Err, "%v", err)
		return compose.Command{}, exitcode.New(exitcode.Failure)
	}
	return cc, nil
}

func (s *Service) requireEnv() (pyenv.Env, error) {
	env := s.env()
	if !env.Exists() {
		ui.Error(s.Err, "virtual environment %s not found; run 'umdev setup' first", env.Dir)
		return pyenv.Env{}, exitcode.New(exitcode.Failure)
	}
	return env, nil
}

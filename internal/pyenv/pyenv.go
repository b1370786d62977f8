// Package pyenv locates the Python interpreter and manages the project's
// virtual environment. "Activation" is expressed by resolving tool paths
// through the environment's bin directory rather than by mutating the shell.
package pyenv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"umdev/internal/execx"
	"umdev/internal/version"
)

// Interpreter resolves the configured Python binary and verifies it meets
// the minimum version. It must pass before any environment or process step
// is attempted.
func Interpreter(ctx context.Context, r execx.Runner, binary, minimum string) (string, error) {
	if !version.IsValid(minimum) {
		return "", fmt.Errorf("invalid python.minimum setting %q: expected a dotted version such as 3.11", minimum)
	}

	path, err := r.LookPath(binary)
	if err != nil {
		return "", fmt.Errorf("%s not found: Python %s or newer is required", binary, minimum)
	}

	out, res := r.Capture(ctx, path, "--version")
	if res.Code != 0 {
		return "", fmt.Errorf("%s --version failed: Python %s or newer is required", binary, minimum)
	}

	have := version.Normalize(strings.TrimSpace(out))
	if !version.AtLeast(have, minimum) {
		return "", fmt.Errorf("found Python %s at %s, but Python %s or newer is required", have, path, minimum)
	}
	return path, nil
}

// Env is a handle to one virtual environment directory. The directory's
// contents are never inspected; only its presence and bin paths matter.
type Env struct {
	Dir    string
	Runner execx.Runner
}

// Exists reports whether the environment directory is present.
func (e Env) Exists() bool {
	st, err := os.Stat(e.Dir)
	return err == nil && st.IsDir()
}

// Create builds the environment with `python -m venv`. The raw result is
// returned so a failing child's exit status reaches the shell unmodified.
func (e Env) Create(ctx context.Context, python string) execx.Result {
	return e.Runner.Run(ctx, python, "-m", "venv", e.Dir)
}

// Bin returns the path of a tool installed inside the environment.
func (e Env) Bin(name string) string {
	return filepath.Join(e.Dir, "bin", name)
}

// InstallRequirements upgrades pip and installs the requirements file.
// The sequence is fail-fast: a failing step aborts the rest.
func (e Env) InstallRequirements(ctx context.Context, requirements string) execx.Result {
	pip := e.Bin("pip")
	if res := e.Runner.Run(ctx, pip, "install", "--upgrade", "pip"); res.Code != 0 {
		return res
	}
	return e.Runner.Run(ctx, pip, "install", "-r", requirements)
}

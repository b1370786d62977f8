package lifecycle

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"umdev/config"
	"umdev/internal/execx"
	"umdev/internal/exitcode"
)

func testSettings(venvDir string) config.Settings {
	return config.Settings{
		Host:           "0.0.0.0",
		Port:           8000,
		PythonBinary:   "python3",
		PythonMinimum:  "3.11",
		VenvDir:        venvDir,
		Requirements:   "requirements.txt",
		AppImport:      "app.main:app",
		ComposeFiles:   []string{"docker-compose.yml"},
		CoverageSource: "app",
	}
}

func newTestService(venvDir string) (*Service, *execx.Fake, *bytes.Buffer, *bytes.Buffer) {
	f := execx.NewFake()
	f.Outputs["python3 --version"] = "Python 3.11.4\n"
	var out, errw bytes.Buffer
	return New(f, testSettings(venvDir), &out, &errw), f, &out, &errw
}

func exitCodeOf(t *testing.T, err error) int {
	t.Helper()
	var ee *exitcode.Error
	if !errors.As(err, &ee) {
		t.Fatalf("expected exit error, got %v", err)
	}
	return ee.Code
}

func TestSetup_FreshEnvironment(t *testing.T) {
	venv := filepath.Join(t.TempDir(), "venv")
	svc, f, out, _ := newTestService(venv)

	if err := svc.Setup(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"python3 --version",
		"python3 -m venv " + venv,
		filepath.Join(venv, "bin", "pip") + " install --upgrade pip",
		filepath.Join(venv, "bin", "pip") + " install -r requirements.txt",
	}
	got := f.CommandLines()
	if len(got) != len(want) {
		t.Fatalf("unexpected invocations: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step %d: got %q, want %q", i, got[i], want[i])
		}
	}
	if !strings.Contains(out.String(), "==>") {
		t.Fatalf("expected progress markers in output, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Setup complete") {
		t.Fatalf("expected success message, got %q", out.String())
	}
}

func TestSetup_ExistingEnvironmentWarnsAndReinstalls(t *testing.T) {
	venv := t.TempDir()
	svc, f, out, _ := newTestService(venv)

	if err := svc.Setup(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "WARNING:") || !strings.Contains(out.String(), "already exists") {
		t.Fatalf("expected an already-exists warning, got %q", out.String())
	}
	for _, line := range f.CommandLines() {
		if strings.Contains(line, "-m venv") {
			t.Fatalf("environment must not be recreated: %v", f.CommandLines())
		}
	}
	// The dependency install still runs as an upgrade pass.
	last := f.Calls[len(f.Calls)-1].String()
	if !strings.HasSuffix(last, "install -r requirements.txt") {
		t.Fatalf("expected reinstall, last invocation was %q", last)
	}
}

func TestSetup_InterpreterMissingStopsBeforeSideEffects(t *testing.T) {
	venv := filepath.Join(t.TempDir(), "venv")
	svc, f, _, errw := newTestService(venv)
	f.Missing["python3"] = true

	err := svc.Setup(context.Background())
	if code := exitCodeOf(t, err); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if len(f.Calls) != 0 {
		t.Fatalf("expected no side effects, got %v", f.CommandLines())
	}
	if !strings.Contains(errw.String(), "ERROR:") || !strings.Contains(errw.String(), "3.11") {
		t.Fatalf("expected fatal message naming the minimum version, got %q", errw.String())
	}
}

func TestSetup_VenvCreateFailurePropagatesCode(t *testing.T) {
	venv := filepath.Join(t.TempDir(), "venv")
	svc, f, _, _ := newTestService(venv)
	f.Results["python3 -m venv "+venv] = execx.Result{Code: 3}

	err := svc.Setup(context.Background())
	if code := exitCodeOf(t, err); code != 3 {
		t.Fatalf("expected delegated code 3, got %d", code)
	}
	// Fail-fast: no install step may run after the failing creation.
	for _, line := range f.CommandLines() {
		if strings.Contains(line, "install") {
			t.Fatalf("install must not run after a failed venv creation: %v", f.CommandLines())
		}
	}
}

func TestSetup_InstallFailurePropagatesCode(t *testing.T) {
	venv := t.TempDir()
	svc, f, _, _ := newTestService(venv)
	pip := filepath.Join(venv, "bin", "pip")
	f.Results[pip+" install -r requirements.txt"] = execx.Result{Code: 2}

	err := svc.Setup(context.Background())
	if code := exitCodeOf(t, err); code != 2 {
		t.Fatalf("expected delegated code 2, got %d", code)
	}
}

func TestRun_InvokesUvicorn(t *testing.T) {
	venv := t.TempDir()
	svc, f, _, _ := newTestService(venv)

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := f.Calls[len(f.Calls)-1].String()
	want := filepath.Join(venv, "bin", "uvicorn") + " app.main:app --reload --host 0.0.0.0 --port 8000"
	if last != want {
		t.Fatalf("got %q, want %q", last, want)
	}
}

func TestRun_MissingEnvironment(t *testing.T) {
	venv := filepath.Join(t.TempDir(), "venv")
	svc, f, _, errw := newTestService(venv)

	err := svc.Run(context.Background())
	if code := exitCodeOf(t, err); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errw.String(), "umdev setup") {
		t.Fatalf("expected a setup hint, got %q", errw.String())
	}
	// Only the interpreter probe may have run.
	for _, line := range f.CommandLines() {
		if strings.Contains(line, "uvicorn") {
			t.Fatalf("API must not launch without an environment: %v", f.CommandLines())
		}
	}
}

func TestTest_DelegatesExitStatus(t *testing.T) {
	venv := t.TempDir()
	svc, f, _, _ := newTestService(venv)
	pytest := filepath.Join(venv, "bin", "pytest")
	f.Results[pytest+" -v --cov=app --cov-report=term-missing"] = execx.Result{Code: 3}

	err := svc.Test(context.Background())
	if code := exitCodeOf(t, err); code != 3 {
		t.Fatalf("expected delegated code 3, got %d", code)
	}
}

func TestTest_InterpreterMissing(t *testing.T) {
	venv := t.TempDir()
	svc, f, _, _ := newTestService(venv)
	f.Missing["python3"] = true

	err := svc.Test(context.Background())
	if code := exitCodeOf(t, err); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if len(f.Calls) != 0 {
		t.Fatalf("expected no process launch, got %v", f.CommandLines())
	}
}

func TestDockerUp(t *testing.T) {
	svc, f, _, _ := newTestService(t.TempDir())

	if err := svc.DockerUp(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := f.Calls[len(f.Calls)-1].String()
	if last != "docker compose -f docker-compose.yml up --build" {
		t.Fatalf("unexpected invocation %q", last)
	}
}

func TestDockerDown_DelegatesStatus(t *testing.T) {
	svc, f, out, _ := newTestService(t.TempDir())

	if err := svc.DockerDown(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := f.Calls[len(f.Calls)-1].String()
	if last != "docker compose -f docker-compose.yml down" {
		t.Fatalf("unexpected invocation %q", last)
	}
	if !strings.Contains(out.String(), "stopped") {
		t.Fatalf("expected completion message, got %q", out.String())
	}

	f.Results["docker compose -f docker-compose.yml down"] = execx.Result{Code: 5}
	err := svc.DockerDown(context.Background())
	if code := exitCodeOf(t, err); code != 5 {
		t.Fatalf("expected delegated code 5, got %d", code)
	}
}

func TestDocker_ComposeMissing(t *testing.T) {
	svc, f, _, errw := newTestService(t.TempDir())
	f.Missing["docker"] = true
	f.Missing["docker-compose"] = true

	err := svc.DockerUp(context.Background())
	if code := exitCodeOf(t, err); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errw.String(), "ERROR:") {
		t.Fatalf("expected error marker, got %q", errw.String())
	}
}

func TestClean_RemovesArtifacts(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "app", "__pycache__"))
	mustMkdir(t, filepath.Join(root, ".pytest_cache"))
	mustMkdir(t, filepath.Join(root, "htmlcov"))
	mustWrite(t, filepath.Join(root, "app", "__pycache__", "main.cpython-311.pyc"))
	mustWrite(t, filepath.Join(root, "app", "stale.pyc"))
	mustWrite(t, filepath.Join(root, ".coverage"))
	mustWrite(t, filepath.Join(root, "app", "main.py"))

	svc, _, out, _ := newTestService(filepath.Join(root, "venv"))
	if err := svc.Clean(root); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, gone := range []string{
		filepath.Join(root, "app", "__pycache__"),
		filepath.Join(root, ".pytest_cache"),
		filepath.Join(root, "htmlcov"),
		filepath.Join(root, "app", "stale.pyc"),
		filepath.Join(root, ".coverage"),
	} {
		if _, err := os.Stat(gone); !os.IsNotExist(err) {
			t.Fatalf("expected %s to be removed", gone)
		}
	}
	if _, err := os.Stat(filepath.Join(root, "app", "main.py")); err != nil {
		t.Fatalf("source file must survive cleanup: %v", err)
	}
	if !strings.Contains(out.String(), "Cleanup complete") {
		t.Fatalf("expected completion message, got %q", out.String())
	}
}

func TestClean_NothingToRemove(t *testing.T) {
	svc, _, out, _ := newTestService("venv")
	if err := svc.Clean(t.TempDir()); err != nil {
		t.Fatalf("clean must succeed with no artifacts: %v", err)
	}
	if !strings.Contains(out.String(), "Cleanup complete") {
		t.Fatalf("expected completion message, got %q", out.String())
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatal(err)
	}
}

func mustWrite(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

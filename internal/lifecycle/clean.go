package lifecycle

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"umdev/internal/ui"
)

// cacheDirs are generated directories removed wholesale.
var cacheDirs = map[string]bool{
	"__pycache__":   true,
	".pytest_cache": true,
	"htmlcov":       true,
}

// cacheFiles are generated files removed by exact name.
var cacheFiles = map[string]bool{
	".coverage": true,
}

// Clean removes generated cache artifacts under root: bytecode cache
// directories, compiled bytecode files, and test/coverage caches and
// reports. Removal is best-effort; a file that is already gone or cannot be
// deleted never fails the action.
func (s *Service) Clean(root string) error {
	ui.Step(s.Out, "Cleaning generated artifacts")

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		name := d.Name()
		switch {
		case d.IsDir() && name == ".git":
			return filepath.SkipDir
		case d.IsDir() && cacheDirs[name]:
			_ = os.RemoveAll(path)
			return filepath.SkipDir
		case !d.IsDir() && (cacheFiles[name] || strings.HasSuffix(name, ".pyc") || strings.HasSuffix(name, ".pyo")):
			_ = os.Remove(path)
		}
		return nil
	})

	ui.Success(s.Out, "Cleanup complete")
	return nil
}

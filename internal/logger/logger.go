// Package logger exposes the process-wide structured logger.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// Log is the shared logger. Diagnostics go to stderr so they never mix with
// the stdout of delegated processes.
var Log = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

// Package exitcode defines the process exit codes of the tool and a typed
// error for carrying a delegated child process's exit status out of a
// command handler.
package exitcode

import "fmt"

// Exit codes returned by the umdev CLI.
const (
	// Success indicates the command completed successfully.
	Success = 0

	// Failure indicates a usage error or a failed precondition
	// (missing interpreter, unknown command, missing argument).
	Failure = 1
)

// Error carries an exit code through the error return path. Handlers that
// delegate to an external process wrap the child's exit status in an Error
// so it reaches the shell unmodified.
type Error struct {
	Code int
}

func New(code int) *Error {
	return &Error{Code: code}
}

func (e *Error) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrToolNotFound is returned when a required toolchain executable
	// could not be located on the host.
	ErrToolNotFound = zerr.New("tool not found")

	// ErrNoSuchInput is returned when an operation is asked to process an
	// input file that does not exist. It is raised before any process is
	// spawned; it signals a caller error, not a tool failure.
	ErrNoSuchInput = zerr.New("no such input file")
)

// CommandError reports the abnormal termination of a child process. It
// carries the full argument list that was executed and the diagnostic
// lines the process produced, so callers can surface both unchanged.
type CommandError struct {
	Args   []string
	Output []string
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s", strings.Join(e.Args, " "))
	if len(e.Output) > 0 {
		msg += "\n" + strings.Join(e.Output, "\n")
	}
	return msg
}

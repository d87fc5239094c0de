// Package shell provides the process executor adapter.
package shell

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/jackal/internal/core/domain"
	"go.trai.ch/jackal/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new shell Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Execute runs the command and blocks until it exits.
//
// Stdout and stderr are captured into a single ordered line sequence,
// which is also streamed to the logger as it arrives. The process
// environment is os.Environ() with the command's overrides applied on
// top.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command) ([]string, error) {
	args := cmd.Args()
	if len(args) == 0 {
		return nil, zerr.New("empty command")
	}

	e.logger.Info("exec [" + cmd.ID() + "] " + strings.Join(args, " "))

	c := exec.CommandContext(ctx, args[0], args[1:]...) //nolint:gosec // caller provided command
	c.Env = mergeEnviron(os.Environ(), cmd.Environ())

	// One writer serves both streams: os/exec serializes writes when
	// Stdout and Stderr are the same value, which keeps the captured
	// line order intact.
	out := &captureWriter{stream: lineWriter{logger: e.logger}}
	c.Stdout = out
	c.Stderr = out

	runErr := c.Run()
	_ = out.stream.Close()

	lines := splitLines(out.buf.String())
	if runErr != nil {
		// Exit code is carried for logging only; the structured error is
		// what callers inspect.
		exitCode := -1
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		e.logger.Error(zerr.With(zerr.Wrap(runErr, "command failed"), "exit_code", exitCode))

		return nil, &domain.CommandError{Args: args, Output: lines}
	}

	return lines, nil
}

// captureWriter duplicates writes into the capture buffer and the log
// stream. Neither target can fail, so error handling collapses to the
// length bookkeeping io.Writer requires.
type captureWriter struct {
	buf    bytes.Buffer
	stream lineWriter
}

func (w *captureWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	_, _ = w.stream.Write(p)
	return len(p), nil
}

// lineWriter buffers writes and forwards complete lines to the logger.
type lineWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *lineWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logger.Info(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes any trailing partial line.
func (w *lineWriter) Close() error {
	if len(w.buf) > 0 {
		w.logger.Info(string(w.buf))
		w.buf = nil
	}
	return nil
}

// mergeEnviron applies the command's KEY=VALUE overrides on top of the
// base environment. Overrides win over base entries with the same key.
func mergeEnviron(base, overrides []string) []string {
	if len(overrides) == 0 {
		return base
	}

	overridden := make(map[string]struct{}, len(overrides))
	for _, entry := range overrides {
		if k, _, ok := strings.Cut(entry, "="); ok {
			overridden[k] = struct{}{}
		}
	}

	result := make([]string, 0, len(base)+len(overrides))
	for _, entry := range base {
		if k, _, ok := strings.Cut(entry, "="); ok {
			if _, shadowed := overridden[k]; shadowed {
				continue
			}
		}
		result = append(result, entry)
	}
	return append(result, overrides...)
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		// Carriage returns show up when tools force terminal output.
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

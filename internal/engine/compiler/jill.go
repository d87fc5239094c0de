package compiler

import (
	"context"
	"os"
	"strings"

	"go.trai.ch/jackal/internal/core/domain"
	"go.trai.ch/jackal/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	jarSuffix  = ".jar"
	jackSuffix = ".jack"
)

// Jill converts jar files into jack libraries.
//
// Unlike Jack, a missing Jill jar is not fatal at construction time;
// Convert reports domain.ErrToolNotFound when it is actually needed.
type Jill struct {
	location domain.ToolLocation
	executor ports.Executor
	logger   ports.Logger
}

// NewJill creates a converter for the given toolchain.
func NewJill(tc domain.Toolchain, executor ports.Executor, logger ports.Logger) *Jill {
	return &Jill{
		location: tc.Jill,
		executor: executor,
		logger:   logger,
	}
}

// Convert turns a jar file into a jack library and returns the path of
// the converted library. The converter's own output lines are
// discarded.
//
// A missing input file is a caller error (domain.ErrNoSuchInput),
// raised before any process is attempted. Execution failures are logged
// with the failing input and returned unchanged.
func (j *Jill) Convert(ctx context.Context, jarPath string) (string, error) {
	if _, err := os.Stat(jarPath); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrNoSuchInput, "no such jar file to convert"), "path", jarPath)
	}

	if !j.location.Found() {
		return "", zerr.Wrap(domain.ErrToolNotFound, "jill could not be found, check your environment setup")
	}

	outPath := convertedPath(jarPath)
	cmd := domain.NewCommand("java", "-jar", j.location.Path(), jarPath, "--output", outPath)

	if _, err := j.executor.Execute(ctx, cmd); err != nil {
		j.logger.Error(zerr.With(zerr.Wrap(err, "failed to convert jar to jack library"), "path", jarPath))
		return "", err
	}

	return outPath, nil
}

// convertedPath derives the output path by replacing a trailing ".jar"
// with ".jack". The replacement is anchored at the end of the path; a
// ".jar" appearing elsewhere is left alone. Inputs without the suffix
// get ".jack" appended.
func convertedPath(jarPath string) string {
	if strings.HasSuffix(jarPath, jarSuffix) {
		return jarPath[:len(jarPath)-len(jarSuffix)] + jackSuffix
	}
	return jarPath + jackSuffix
}

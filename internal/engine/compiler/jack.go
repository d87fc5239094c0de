// Package compiler drives the Jack ahead-of-time compiler and the Jill
// jar converter as child processes.
package compiler

import (
	"context"
	"strings"

	"go.trai.ch/jackal/internal/core/domain"
	"go.trai.ch/jackal/internal/core/ports"
	"go.trai.ch/zerr"
)

// Jack is a reusable, preconfigured Jack compiler invocation. The
// configuration methods accumulate arguments on an immutable command
// template; Compile derives a fresh command per call, so one Jack value
// can serve any number of differently-parameterized compilations.
type Jack struct {
	template domain.Command
	executor ports.Executor
	logger   ports.Logger
}

// New creates a compiler for the given toolchain. It fails with
// domain.ErrToolNotFound when the Jack jar is unresolved; the check is
// performed here, not deferred to the first compile.
func New(tc domain.Toolchain, executor ports.Executor, logger ports.Logger) (*Jack, error) {
	if !tc.Jack.Found() {
		return nil, zerr.Wrap(domain.ErrToolNotFound, "jack library not found, cannot use jack")
	}
	return NewFromArgs(executor, logger, []string{"java", "-jar", tc.Jack.Path()}), nil
}

// NewFromArgs creates a compiler seeded with the given argument tokens.
func NewFromArgs(executor ports.Executor, logger ports.Logger, args []string) *Jack {
	return &Jack{
		template: domain.NewCommand(args...),
		executor: executor,
		logger:   logger,
	}
}

// NewFromArgLine creates a compiler from a single preformatted argument
// string, split on whitespace.
//
// Known limitation: the split has no quoting grammar, so arguments with
// embedded spaces break. Prefer NewFromArgs.
func NewFromArgLine(executor ports.Executor, logger ports.Logger, line string) *Jack {
	return NewFromArgs(executor, logger, strings.Fields(line))
}

// ImportFile imports a jack library into the output.
func (j *Jack) ImportFile(path string) *Jack {
	return j.append("--import", path)
}

// ImportMeta imports a meta directory into the output.
func (j *Jack) ImportMeta(dir string) *Jack {
	return j.append("--import-meta", dir)
}

// ImportResource imports a resource directory into the output.
func (j *Jack) ImportResource(dir string) *Jack {
	return j.append("--import-resource", dir)
}

// IncrementalFolder enables incremental compilation using dir as the
// state directory.
func (j *Jack) IncrementalFolder(dir string) *Jack {
	return j.append("--incremental-folder", dir)
}

// MultiDex selects the multi-dex mode.
func (j *Jack) MultiDex(mode string) *Jack {
	return j.append("--multi-dex", mode)
}

// OutputDex sets the directory dex files are written into.
func (j *Jack) OutputDex(dir string) *Jack {
	return j.append("--output-dex", dir)
}

// OutputJack sets the path the output jack library is written to.
func (j *Jack) OutputJack(path string) *Jack {
	return j.append("--output-jack", path)
}

// Processor sets the annotation processor class names.
func (j *Jack) Processor(names string) *Jack {
	return j.append("--processor", names)
}

// ProcessorPath sets the annotation processor classpath.
func (j *Jack) ProcessorPath(path string) *Jack {
	return j.append("--processorpath", path)
}

// Verbose sets the compiler verbosity level.
func (j *Jack) Verbose(mode string) *Jack {
	return j.append("--verbose", mode)
}

// AnnotationProcessor passes an option to an annotation processor.
func (j *Jack) AnnotationProcessor(option string) *Jack {
	return j.append("-A", option)
}

// Property sets a compiler property in "name=value" form.
func (j *Jack) Property(property string) *Jack {
	return j.append("-D", property)
}

// Classpath sets the compilation classpath.
func (j *Jack) Classpath(classpath string) *Jack {
	return j.append("-cp", classpath)
}

// Debug enables debug info emission.
func (j *Jack) Debug() *Jack {
	return j.append("-g")
}

// Env sets an environment variable for the compiler process. The last
// call for the same key wins.
func (j *Jack) Env(key, value string) *Jack {
	j.template = j.template.WithEnv(key, value)
	return j
}

// The configuration methods append blindly; invalid values surface as
// compiler diagnostics at execution time, not here.
func (j *Jack) append(args ...string) *Jack {
	j.template = j.template.Append(args...)
	return j
}

// Compile runs the compiler over the given files and returns its output
// lines. The file paths are appended as trailing positional arguments in
// input order; Jack is order-sensitive for multi-file input.
//
// The preconfigured template is never mutated, so the same Jack value
// can compile further file sets afterwards. Execution failures are
// returned unchanged.
func (j *Jack) Compile(ctx context.Context, files []string) ([]string, error) {
	cmd := j.template.Append(files...)
	return j.executor.Execute(ctx, cmd)
}

// Package app implements the application layer for jackal.
package app

import (
	"context"
	"runtime"

	"go.trai.ch/jackal/internal/core/domain"
	"go.trai.ch/jackal/internal/core/ports"
	"go.trai.ch/jackal/internal/engine/compiler"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	loader     ports.ConfigLoader
	executor   ports.Executor
	logger     ports.Logger
	toolchain  domain.Toolchain
	configFile string
}

// New creates a new App instance. The toolchain is resolved exactly
// once, here; everything downstream receives the result by value.
// Unresolved tools are worth a warning up front, since the operations
// needing them will fail later.
func New(loader ports.ConfigLoader, locator ports.Locator, executor ports.Executor, logger ports.Logger) *App {
	toolchain := locator.Toolchain()
	if !toolchain.Jack.Found() {
		logger.Warn("jack.jar not found, compile will not work")
	}
	if !toolchain.Jill.Found() {
		logger.Warn("jill.jar not found, convert will not work")
	}

	return &App{
		loader:    loader,
		executor:  executor,
		logger:    logger,
		toolchain: toolchain,
	}
}

// SetConfigFile sets the configuration file path used by Compile. An
// empty path keeps the loader's default lookup.
func (a *App) SetConfigFile(path string) {
	a.configFile = path
}

// Toolchain returns the resolved toolchain locations.
func (a *App) Toolchain() domain.Toolchain {
	return a.toolchain
}

// CompileOptions are per-invocation settings from the command line.
// They are applied after the jackal.yaml defaults, so a flag wins over
// the configured value for scalar settings and extends it for lists.
type CompileOptions struct {
	OutputDex  string
	OutputJack string
	Classpath  string
	MultiDex   string
	Verbose    string
	Debug      bool
	Imports    []string
	Properties []string
}

// Compile compiles the given source files with the configured defaults
// and the supplied options, returning the compiler's output lines.
func (a *App) Compile(ctx context.Context, files []string, opts CompileOptions) ([]string, error) {
	if len(files) == 0 {
		return nil, zerr.New("no input files")
	}

	cfg, err := a.loader.Load(a.configFile)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	jack, err := compiler.New(a.toolchain, a.executor, a.logger)
	if err != nil {
		return nil, err
	}

	applyConfig(jack, cfg)
	applyOptions(jack, opts)

	return jack.Compile(ctx, files)
}

// Convert converts the given jar files into jack libraries and returns
// the converted paths in input order. Conversions of independent jars
// run concurrently; the first failure cancels the remaining ones and is
// reported to the caller unchanged.
func (a *App) Convert(ctx context.Context, jars []string) ([]string, error) {
	if len(jars) == 0 {
		return nil, zerr.New("no input files")
	}

	jill := compiler.NewJill(a.toolchain, a.executor, a.logger)

	results := make([]string, len(jars))
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, jar := range jars {
		g.Go(func() error {
			outPath, err := jill.Convert(groupCtx, jar)
			if err != nil {
				return err
			}
			results[i] = outPath
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func applyConfig(jack *compiler.Jack, cfg *domain.Config) {
	for _, path := range cfg.Imports {
		jack.ImportFile(path)
	}
	if cfg.OutputDex != "" {
		jack.OutputDex(cfg.OutputDex)
	}
	if cfg.Classpath != "" {
		jack.Classpath(cfg.Classpath)
	}
	if cfg.MultiDex != "" {
		jack.MultiDex(cfg.MultiDex)
	}
	if cfg.Verbose != "" {
		jack.Verbose(cfg.Verbose)
	}
	if cfg.IncrementalDir != "" {
		jack.IncrementalFolder(cfg.IncrementalDir)
	}
	for _, name := range cfg.Processors {
		jack.Processor(name)
	}
	for _, prop := range cfg.Properties {
		jack.Property(prop)
	}
	if cfg.Debug {
		jack.Debug()
	}
	for key, value := range cfg.Env {
		jack.Env(key, value)
	}
}

func applyOptions(jack *compiler.Jack, opts CompileOptions) {
	for _, path := range opts.Imports {
		jack.ImportFile(path)
	}
	if opts.OutputDex != "" {
		jack.OutputDex(opts.OutputDex)
	}
	if opts.OutputJack != "" {
		jack.OutputJack(opts.OutputJack)
	}
	if opts.Classpath != "" {
		jack.Classpath(opts.Classpath)
	}
	if opts.MultiDex != "" {
		jack.MultiDex(opts.MultiDex)
	}
	if opts.Verbose != "" {
		jack.Verbose(opts.Verbose)
	}
	for _, prop := range opts.Properties {
		jack.Property(prop)
	}
	if opts.Debug {
		jack.Debug()
	}
}

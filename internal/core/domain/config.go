package domain

// Config holds the project-level compiler defaults loaded from
// jackal.yaml. All fields are optional; zero values mean "not set" and
// are skipped when the settings are applied to a compiler.
type Config struct {
	// OutputDex is the directory the compiler writes dex files into.
	OutputDex string
	// Classpath is passed through to the compiler verbatim.
	Classpath string
	// MultiDex selects the multi-dex mode (e.g. "native", "legacy").
	MultiDex string
	// Verbose selects the compiler verbosity level (e.g. "error", "debug").
	Verbose string
	// Debug enables debug info emission.
	Debug bool
	// IncrementalDir enables incremental compilation using the given
	// state directory.
	IncrementalDir string
	// Imports are jack libraries imported into the output, in order.
	Imports []string
	// Processors are annotation processor class names.
	Processors []string
	// Properties are compiler properties in "name=value" form, in order.
	Properties []string
	// Env are environment variables set for the compiler process.
	Env map[string]string
}

package config

// jackalfile represents the structure of the jackal.yaml configuration
// file.
type jackalfile struct {
	Version  string      `yaml:"version"`
	Compiler compilerDTO `yaml:"compiler"`
}

// compilerDTO holds the compiler defaults section.
type compilerDTO struct {
	OutputDex      string            `yaml:"outputDex"`
	Classpath      string            `yaml:"classpath"`
	MultiDex       string            `yaml:"multiDex"`
	Verbose        string            `yaml:"verbose"`
	Debug          bool              `yaml:"debug"`
	IncrementalDir string            `yaml:"incrementalDir"`
	Imports        []string          `yaml:"imports"`
	Processors     []string          `yaml:"processors"`
	Properties     []string          `yaml:"properties"`
	Env            map[string]string `yaml:"env"`
}

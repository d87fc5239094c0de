// Package config provides the configuration loader for jackal.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/jackal/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working
// directory when no explicit path is given.
const DefaultFilename = "jackal.yaml"

var multiDexModes = map[string]bool{
	"none":   true,
	"native": true,
	"legacy": true,
}

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// NewLoader creates a loader for the default configuration filename.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: DefaultFilename}
}

// Load reads the configuration file at path. When path is empty the
// default filename is tried instead, and its absence yields an empty
// configuration so the compiler runs with flags from the command line
// only. A path the caller asked for explicitly must exist.
func (l *FileConfigLoader) Load(path string) (*domain.Config, error) {
	explicit := path != ""
	if !explicit {
		path = l.Filename
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return &domain.Config{}, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file jackalfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if file.Compiler.MultiDex != "" && !multiDexModes[file.Compiler.MultiDex] {
		return nil, zerr.With(zerr.New("invalid multiDex mode"), "mode", file.Compiler.MultiDex)
	}
	for _, prop := range file.Compiler.Properties {
		if !strings.Contains(prop, "=") {
			return nil, zerr.With(zerr.New("property must be name=value"), "property", prop)
		}
	}

	return &domain.Config{
		OutputDex:      file.Compiler.OutputDex,
		Classpath:      file.Compiler.Classpath,
		MultiDex:       file.Compiler.MultiDex,
		Verbose:        file.Compiler.Verbose,
		Debug:          file.Compiler.Debug,
		IncrementalDir: file.Compiler.IncrementalDir,
		Imports:        file.Compiler.Imports,
		Processors:     file.Compiler.Processors,
		Properties:     file.Compiler.Properties,
		Env:            file.Compiler.Env,
	}, nil
}

// Package sdk locates the Jack toolchain jars inside an Android build
// tree.
package sdk

import (
	"os"
	"path/filepath"

	"go.trai.ch/jackal/internal/core/domain"
	"go.trai.ch/jackal/internal/core/ports"
)

// Environment variables consulted during resolution.
const (
	// EnvBuildTop is the root of the AOSP checkout. Default tool
	// locations are computed relative to it.
	EnvBuildTop = "ANDROID_BUILD_TOP"
	// EnvJackJar overrides the Jack compiler jar location.
	EnvJackJar = "JACK_JAR"
	// EnvJillJar overrides the Jill converter jar location.
	EnvJillJar = "JILL_JAR"
)

// Default jar locations relative to the build tree root.
const (
	jackRelPath = "prebuilts/sdk/tools/jack.jar"
	jillRelPath = "prebuilts/sdk/tools/jill.jar"
)

// Locator implements ports.Locator against the process environment and
// the filesystem. The lookups are injectable so tests can fabricate
// both.
type Locator struct {
	getenv func(string) string
	stat   func(string) (os.FileInfo, error)
}

var _ ports.Locator = (*Locator)(nil)

// NewLocator creates a Locator backed by os.Getenv and os.Stat.
func NewLocator() *Locator {
	return &Locator{getenv: os.Getenv, stat: os.Stat}
}

// NewLocatorWithLookups creates a Locator with fabricated environment
// and filesystem lookups. Used by tests.
func NewLocatorWithLookups(getenv func(string) string, stat func(string) (os.FileInfo, error)) *Locator {
	return &Locator{getenv: getenv, stat: stat}
}

// Toolchain resolves the locations of all toolchain jars.
func (l *Locator) Toolchain() domain.Toolchain {
	return domain.Toolchain{
		Jack: l.locate(EnvJackJar, jackRelPath),
		Jill: l.locate(EnvJillJar, jillRelPath),
	}
}

// locate resolves a single tool. An explicit override that names an
// existing file always beats the convention-based default under the
// build tree root; when neither yields an existing file the result is
// an unresolved location. Deciding whether that is fatal is the
// caller's business.
func (l *Locator) locate(overrideVar, relPath string) domain.ToolLocation {
	if override := l.getenv(overrideVar); override != "" && l.exists(override) {
		return domain.NewToolLocation(override)
	}

	if root := l.getenv(EnvBuildTop); root != "" {
		candidate := filepath.Join(root, relPath)
		if l.exists(candidate) {
			return domain.NewToolLocation(candidate)
		}
	}

	return domain.ToolLocation{}
}

func (l *Locator) exists(path string) bool {
	info, err := l.stat(path)
	return err == nil && !info.IsDir()
}

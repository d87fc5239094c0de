package ports

import "go.trai.ch/jackal/internal/core/domain"

// Locator resolves the filesystem locations of the toolchain jars.
//
// Resolution performs environment lookups and existence checks only; a
// missing tool is reported as an unresolved location, never as an error.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type Locator interface {
	// Toolchain resolves all known tools. It is called once during
	// startup; the returned value is passed around by value afterwards.
	Toolchain() domain.Toolchain
}

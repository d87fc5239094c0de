// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/jackal/internal/adapters/config"
	_ "go.trai.ch/jackal/internal/adapters/logger"
	_ "go.trai.ch/jackal/internal/adapters/sdk"
	_ "go.trai.ch/jackal/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/jackal/internal/app"
)

// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/jackal/internal/core/domain"
)

// Executor defines the interface for running toolchain commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command and blocks until the child process exits.
	//
	// On success it returns the output lines the process produced, in
	// order. On abnormal termination it returns a *domain.CommandError
	// carrying the attempted argument list and the captured diagnostics.
	Execute(ctx context.Context, cmd domain.Command) ([]string, error)
}

// Package main is the entry point for the jackal CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/jackal/cmd/jackal/commands"
	"go.trai.ch/jackal/internal/app"
	"go.trai.ch/jackal/internal/core/domain"
	_ "go.trai.ch/jackal/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components.App)
	cli.SetConfigHook(components.App.SetConfigFile)

	if err := cli.Execute(ctx); err != nil {
		var cmdErr *domain.CommandError
		if errors.As(err, &cmdErr) {
			// The executor already streamed the child's diagnostics.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}

// Package main is the entry point for rehost.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/rehost/cmd/rehost/commands"
	"go.trai.ch/rehost/internal/app"
	_ "go.trai.ch/rehost/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(mainRun())
}

func mainRun() int {
	return run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, graftProvider)
}

func graftProvider(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	return c, func() {}, err
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	if l, ok := components.Logger.(interface{ SetOutput(w io.Writer) }); ok {
		l.SetOutput(stderr)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/peoplegen/internal/cli"
	"github.com/zarlcorp/peoplegen/internal/config"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

// run executes one command line and returns the process exit code.
func run(ctx context.Context, args []string) int {
	app := zapp.New(zapp.WithName("peoplegen"))

	ctx, cancel := zapp.SignalContext(ctx)
	defer cancel()

	if err := config.LoadDotEnv(); err != nil {
		slog.Warn("dotenv", "err", err)
	}

	if err := cli.Execute(ctx, version, args); err != nil {
		slog.Error("peoplegen", "err", err)
		_ = app.Close()
		return 1
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		return 1
	}
	return 0
}

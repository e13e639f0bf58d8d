// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

// Build-time variables set via ldflags
var (
	version = "v0.1.0"
)

func main() {
	cmd := &cli.Command{
		Name:     "fibrohash",
		Usage:    "Phrase-based password generator and auditor",
		Version:  version,
		Commands: getCommands(version),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}

// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	apperrors "github.com/allisson/crowdfund/internal/errors"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:     "crowdfund",
		Usage:    "Crowdfunding users, projects and donations",
		Version:  version,
		Commands: getCommands(version),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		attrs := []any{slog.Any("error", err)}
		if category := apperrors.Category(err); category != nil {
			attrs = append(attrs, slog.String("category", category.Error()))
		}
		slog.Error("application error", attrs...)
		os.Exit(1)
	}
}

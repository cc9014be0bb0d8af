package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"event_finder/internal/application"
	"event_finder/internal/config"
	"event_finder/internal/transport/cli"
	"event_finder/pkg/contextx"
	"event_finder/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config.Load", logx.Error(err))
		os.Exit(1)
	}

	// stdout belongs to the shell.
	log := application.NewLogger(os.Stderr, cfg.App)
	ctx = contextx.WithLogger(ctx, log)

	catalog, err := application.NewCatalog(ctx, cfg.Grid, nil)
	if err != nil {
		log.Error("application.NewCatalog", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	shell := cli.NewShell(catalog, os.Stdin, os.Stdout).WithLimit(cfg.Grid.SearchLimit)

	if err := shell.Run(ctx); err != nil {
		log.Error("shell.Run", logx.Error(err))
		os.Exit(1)
	}
}

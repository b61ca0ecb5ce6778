package main

import (
	"context"
	"log/slog"
	"os"

	"fitlife/internal/cli"
	"fitlife/internal/config"
	"fitlife/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, cleanup, err := cli.NewApp(cfg, log)
	if err != nil {
		log.Error(context.Background(), "failed to start", "err", err)
		os.Exit(1)
	}
	defer cleanup()

	app.Run(context.Background())
}

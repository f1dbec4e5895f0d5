package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"profassist/internal/application"
	"profassist/internal/config"
	"profassist/pkg/contextx"
	"profassist/pkg/logx"
)

var version = "dev" //nolint:gochecknoglobals

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logx.NewLogger(os.Stderr, "info", true).Error("config.Load", logx.Error(err))
		os.Exit(1)
	}

	noColor := cfg.Log.NoColor || !isatty.IsTerminal(os.Stdout.Fd())

	log := logx.NewLogger(os.Stdout, cfg.Log.Level, noColor)
	ctx = contextx.WithLogger(ctx, log)

	if err = application.Run(ctx, cfg, version); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log.Info("application stopped")
}

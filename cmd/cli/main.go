package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/bloodbank/internal/buildinfo"
	"github.com/dmitrijs2005/bloodbank/internal/client/cli"
	"github.com/dmitrijs2005/bloodbank/internal/client/config"
	"github.com/dmitrijs2005/bloodbank/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "err", err)
		os.Exit(1)
	}

	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		// Run stays blocked on stdin; release the store before leaving.
		logger.Info(context.Background(), "interrupted, exiting")
		if err := app.Close(); err != nil {
			logger.Error(context.Background(), "error closing local store", "err", err)
		}
	}
}

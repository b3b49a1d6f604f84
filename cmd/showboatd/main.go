package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofrs/flock"

	"showboat/internal/chunk"
	"showboat/internal/config"
	"showboat/internal/logging"
	"showboat/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	configPath := ""
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		logger.Error("ensure directories", logging.Error(err))
		os.Exit(1)
	}

	lock := flock.New(cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		logger.Error("acquire daemon lock", logging.Error(err))
		os.Exit(1)
	}
	if !locked {
		logger.Error("another showboatd instance is already serving this database",
			logging.String("lock", cfg.LockPath()))
		os.Exit(1)
	}
	defer func() { _ = lock.Unlock() }()

	store, err := chunk.Open(cfg)
	if err != nil {
		logger.Error("open chunk store", logging.Error(err))
		os.Exit(1)
	}
	defer store.Close()

	srv, err := server.New(cfg, store, logger)
	if err != nil {
		logger.Error("create server", logging.Error(err))
		os.Exit(1)
	}
	if err := srv.Start(ctx); err != nil {
		logger.Error("start server", logging.Error(err))
		os.Exit(1)
	}
	defer srv.Stop()

	<-ctx.Done()
	logger.Info("showboatd shutting down")
}

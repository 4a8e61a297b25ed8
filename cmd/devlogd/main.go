package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"devlog/internal/config"
	"devlog/internal/daemonrun"
	"devlog/internal/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, _, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	if err := daemonrun.Run(ctx, cfg, logger, ""); err != nil {
		logger.Error("devlogd exited", logging.Error(err))
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/LerianStudio/mini-ledger/internal/api"
	"github.com/LerianStudio/mini-ledger/internal/config"
	"github.com/LerianStudio/mini-ledger/internal/ledger"
	"github.com/LerianStudio/mini-ledger/pkg/log"
	"github.com/LerianStudio/mini-ledger/pkg/server"
	"github.com/LerianStudio/mini-ledger/pkg/zap"
)

func main() {
	cfg := config.Load()

	logger, _, err := zap.New(zap.Config{
		Environment: zap.Environment(cfg.Environment),
		Level:       cfg.LogLevel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}

	service := ledger.NewService(ledger.NewStore(), logger)
	app := api.NewApp(service, logger)

	logger.Log(context.Background(), log.LevelInfo, "starting mini-ledger",
		log.String("address", cfg.Address),
		log.String("environment", cfg.Environment),
	)

	manager := server.NewServerManager(logger).
		WithHTTPServer(app, cfg.Address).
		WithShutdownTimeout(cfg.ShutdownTimeout)

	if err := manager.StartWithGracefulShutdown(); err != nil {
		logger.Log(context.Background(), log.LevelError, "server terminated", log.Err(err))
		os.Exit(1)
	}
}

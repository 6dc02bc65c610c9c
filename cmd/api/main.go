package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pageza/lista/backend/config"
	"github.com/pageza/lista/backend/internal/database"
	"github.com/pageza/lista/backend/internal/logging"
	"github.com/pageza/lista/backend/internal/server"
	"github.com/pageza/lista/backend/internal/service"
)

const (
	moduleName = "lista-api"
	version    = "0.1.0"
)

func main() {
	logging.SetDefaultStructuredLogger(moduleName, version, "")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.LogLevel != "" {
		logging.SetDefaultStructuredLogger(moduleName, version, cfg.LogLevel)
	}

	redisClient, err := database.NewRedisClient(context.Background(), cfg)
	if err != nil {
		// Rate limiting is optional, extraction keeps working without it.
		slog.Warn("rate limiting disabled", "error", err)
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	srv, err := server.New(cfg, service.NewLLMService(cfg), redisClient)
	if err != nil {
		slog.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"staffhub/internal/config"
	"staffhub/internal/server"
	"staffhub/internal/version"
	"staffhub/pkg/logger"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg := config.New()
	log := logger.Must(cfg.Development)
	defer log.Sync()

	log.Info("starting staffhub", zap.String("version", version.Get().Version))

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Fatal("failed to create server", zap.Error(err))
	}
	defer srv.Close()

	if err := srv.Run(); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}

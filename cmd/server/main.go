package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/taskmaster/taskmaster-api/internal/config"
	"github.com/taskmaster/taskmaster-api/internal/handlers"
	"github.com/taskmaster/taskmaster-api/internal/store"
)

func main() {
	// A .env file is optional; real environment variables win either way.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           parseLogLevel(cfg.LogLevel),
	})

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	gin.SetMode(cfg.GinMode)

	var gw store.Gateway
	switch cfg.Backend {
	case config.BackendSupabase:
		// A failed connection is not fatal here: the gateway stays in an
		// unavailable state and rejects data operations fast.
		gw = store.NewPostgresStore(cfg, logger)
	case config.BackendSQLite:
		// Schema creation must complete before the server accepts requests.
		s, err := store.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			logger.Fatal("failed to initialize sqlite store", "err", err)
		}
		gw = s
	}

	r := handlers.NewRouter(gw, logger)

	logger.Info("server starting", "port", cfg.Port, "backend", cfg.Backend)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", "err", err)
	}
}

func parseLogLevel(level string) log.Level {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

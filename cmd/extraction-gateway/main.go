package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"receiptchain/internal/api/extraction"
	"receiptchain/internal/api/handlers"
	"receiptchain/internal/extractor"
	"receiptchain/internal/repository"
	"receiptchain/internal/service"
	"receiptchain/pkg/config"
	"receiptchain/pkg/logger"
	"receiptchain/pkg/postgres"
	"receiptchain/pkg/redis"

	"go.uber.org/zap"
)

// @title Extraction Gateway API
// @version 1.0.0
// @description Extracts structured fields from receipt and payment images.

// @host localhost:5001
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init("extraction-gateway", cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting extraction gateway", zap.String("engine", cfg.Extraction.Engine))

	ctx := context.Background()

	// Recognition history: Postgres when configured, in-memory otherwise
	var store service.RecognitionStore
	if cfg.Database.Enabled() {
		db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		store = repository.NewRecognitionRepository(db, appLogger)
	} else {
		appLogger.Info("DB_HOST not set, keeping recognition history in memory",
			zap.Int("history_size", cfg.Extraction.HistorySize))
		store = repository.NewMemoryRecognitionRepository(cfg.Extraction.HistorySize)
	}

	var cache service.ResultCache
	if cfg.Redis.Enabled() {
		rdb, err := redis.NewClient(ctx, &cfg.Redis, appLogger)
		if err != nil {
			appLogger.Warn("Redis unavailable, recognition cache disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			cache = repository.NewRecognitionCache(rdb, cfg.Extraction.CacheTTL, appLogger)
		}
	}

	var registry *extractor.Registry
	switch cfg.Extraction.Engine {
	case "gigachat":
		gc, err := extractor.NewGigaChat(ctx, &cfg.GigaChat, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize GigaChat extractor", zap.Error(err))
		}
		defer gc.Close()
		registry = extractor.NewGigaChatRegistry(gc)
	default:
		registry = extractor.NewMockRegistry()
	}

	recService := service.NewRecognitionService(registry, store, cache, cfg.Extraction.MaxImageSize, appLogger)
	recHandler := handlers.NewRecognitionHandler(recService, cfg.Extraction.ModelVersion, appLogger)

	app := extraction.SetupRouter(recHandler, cfg.ExtractionServer, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.ExtractionServer.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}

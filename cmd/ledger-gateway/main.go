package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"receiptchain/internal/api/handlers"
	"receiptchain/internal/api/ledger"
	"receiptchain/internal/chain"
	"receiptchain/internal/repository"
	"receiptchain/internal/service"
	"receiptchain/pkg/auth"
	"receiptchain/pkg/config"
	"receiptchain/pkg/logger"
	"receiptchain/pkg/postgres"

	"go.uber.org/zap"
)

// @title Ledger Gateway API
// @version 1.0.0
// @description Records bills, transactions and payments on a blockchain ledger.

// @host localhost:5002
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init("ledger-gateway", cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting ledger gateway")

	ctx := context.Background()

	client, err := chain.New(ctx, &cfg.Chain, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize chain client", zap.Error(err))
	}
	defer client.Close()

	// The journal is only kept when a database is configured
	var journal service.Journal
	if cfg.Database.Enabled() {
		db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		journal = repository.NewJournalRepository(db, appLogger)
	}

	var jwtManager *auth.JWTManager
	if cfg.JWT.Enabled() {
		jwtManager = auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration)
	}

	ledgerService := service.NewLedgerService(client, journal, appLogger)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService, appLogger)

	app := ledger.SetupRouter(ledgerHandler, jwtManager, cfg.LedgerServer, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.LedgerServer.Port
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

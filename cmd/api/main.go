package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"trade-custody/config"
	_ "trade-custody/docs" // Swagger docs
	"trade-custody/internal/httpserver"
	"trade-custody/internal/item/audit"
	"trade-custody/internal/item/repository"
	"trade-custody/internal/item/repository/memory"
	"trade-custody/internal/item/repository/postgre"
	"trade-custody/internal/item/repository/sqlite"
	"trade-custody/internal/item/seed"
	"trade-custody/pkg/log"
)

// @title       Trade Custody API
// @description Custody tracking for traded board games: pending, at_org, delivered.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Trade Custody...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Database driver: %s", cfg.Database.Driver)

	// 3. Item store
	repo, db, closeStore, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open item store: ", err)
		return
	}
	defer closeStore()

	if cfg.Database.SeedFile != "" {
		n, seedErr := seed.LoadFile(ctx, repo, cfg.Database.SeedFile)
		if seedErr != nil {
			logger.Error(ctx, "Failed to seed items: ", seedErr)
			return
		}
		logger.Infof(ctx, "Seeded %d items from %s", n, cfg.Database.SeedFile)
	}

	// 4. Audit: structured log line plus the store's audit table
	sink := audit.Multi(audit.NewLogSink(logger), audit.NewStoreSink(repo))

	// 5. HTTP Server
	var ready func() error
	if db != nil {
		ready = db.Ping
	}
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		SwaggerEnabled:  cfg.Swagger.Enabled,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		ItemRepository:  repo,
		AuditSink:       sink,
		ReadyCheck:      ready,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// openStore returns the repository for the configured driver. db is nil for
// the in-memory store.
func openStore(ctx context.Context, cfg config.DatabaseConfig, l log.Logger) (repository.Repository, *sql.DB, func(), error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.DSN)
		if err != nil {
			return nil, nil, nil, err
		}
		return sqlite.New(db, l), db, func() { _ = db.Close() }, nil
	case config.DriverPostgres:
		db, closeFn, err := postgre.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, nil, err
		}
		return postgre.New(db, l), db, closeFn, nil
	default:
		return memory.New(l), nil, func() {}, nil
	}
}

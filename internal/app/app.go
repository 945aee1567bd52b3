package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/salesledger/config"
	"github.com/guttosm/salesledger/internal/api"
	"github.com/guttosm/salesledger/internal/ingestion"
	"github.com/guttosm/salesledger/internal/logger"
	"github.com/guttosm/salesledger/internal/middleware"
	"github.com/guttosm/salesledger/internal/service"
	"github.com/guttosm/salesledger/internal/storage"
)

// seedTimeout bounds the startup import from SEED_DIR.
const seedTimeout = 2 * time.Minute

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Opens the sales store selected by STORAGE_DRIVER (see OpenRepository).
//   - Imports SEED_DIR, when set, before serving.
//   - Wires service, handler and router, and registers health probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	repo, ping, cleanup, err := OpenRepository(cfg)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Storage.SeedDir != "" {
		ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
		_, err := ingestion.ProcessDirectory(ctx, cfg.Storage.SeedDir, repo, cfg.Import.Parallelism)
		cancel()
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to seed from %s: %w", cfg.Storage.SeedDir, err)
		}
	}

	middleware.SetRateLimit(cfg.Server.RateLimitPerMinute, time.Minute)

	svc := service.NewSalesService(repo)
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

	api.NewHealthHandler(cfg.Storage.Driver, ping).Register(router)

	return router, cleanup, nil
}

// OpenRepository returns the sales store for cfg.Storage.Driver together with
// a readiness ping (nil when there is nothing to ping) and a cleanup func.
func OpenRepository(cfg config.Config) (storage.SalesRepository, func(context.Context) error, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		logger.L().Warn().Msg("using in-memory storage; data is lost on shutdown")
		return storage.NewMemoryRepository(), nil, func() {}, nil
	case config.DriverPostgres, "":
		// indirection for unit testing
		db, err := postgresOpener(cfg)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		return storage.NewSalesRepository(db), db.PingContext, func() { _ = db.Close() }, nil
	default:
		return nil, nil, nil, errors.New("unknown storage driver: " + cfg.Storage.Driver)
	}
}

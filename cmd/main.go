package main

//
//  @title           salesledger API
//  @version         1.0
//  @description     Sales recording and profit aggregation service.
//  @termsOfService  https://github.com/guttosm/salesledger
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/salesledger
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        sales
//  @tag.description Recording, updating and listing sales
//
//  @tag.name        profits
//  @tag.description Daily, monthly and yearly profit totals
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/salesledger/config"
	_ "github.com/guttosm/salesledger/docs" // swagger docs
	"github.com/guttosm/salesledger/internal/app"
	"github.com/guttosm/salesledger/internal/ingestion"
	"github.com/guttosm/salesledger/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// startServer starts serving router on port in a background goroutine and
// returns the server so the caller can shut it down.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown blocks until SIGINT or SIGTERM (or ctx is done), drains
// in-flight requests for up to shutdownTimeout, then runs cleanup.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-sigCtx.Done()
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Error().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runImport imports every .csv file of dir into the store selected by cfg.
func runImport(ctx context.Context, cfg config.Config, dir string, parallel int) (ingestion.Summary, error) {
	repo, _, cleanup, err := app.OpenRepository(cfg)
	if err != nil {
		return ingestion.Summary{}, err
	}
	defer cleanup()

	if parallel == 0 {
		parallel = cfg.Import.Parallelism
	}
	return ingestion.ProcessDirectory(ctx, dir, repo, parallel)
}

// main is the entry point of the salesledger application.
//
// Modes (selected via --mode flag):
//   - api:    Starts the REST API (seeding from SEED_DIR first, when set).
//   - import: Imports the sales CSV files of --dir and exits.
//
// Flags:
//   - --mode:     Execution mode ("api" or "import"). Default: "api".
//   - --dir:      Directory containing .csv sales files. Default: "./data/input".
//   - --parallel: Files imported concurrently (0 = IMPORT_PARALLELISM or auto, max 8).
//   - --port:     Port for the API server. Defaults to SERVER_PORT.
func main() {
	ctx := context.Background()

	config.LoadConfig()
	logger.Init()

	mode := flag.String("mode", "api", "Mode: api or import")
	dir := flag.String("dir", "./data/input", "Directory with .csv sales files")
	parallel := flag.Int("parallel", 0, "How many files to import concurrently (0=auto up to CPU, max 8)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "import":
		logger.L().Info().Str("dir", *dir).Str("driver", config.AppConfig.Storage.Driver).Msg("running import")
		if config.AppConfig.Storage.Driver == config.DriverMemory {
			logger.L().Warn().Msg("importing into memory storage; nothing will persist after exit")
		}

		ictx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		sum, err := runImport(ictx, config.AppConfig, *dir, *parallel)
		stop()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("import failed")
		}
		logger.L().Info().Int("files", sum.Files).Int("skipped", sum.Skipped).Int("sales", sum.Sales).Msg("import completed successfully")

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

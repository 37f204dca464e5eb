// Package main is the entry point for the quote service.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/quote-service/internal/adapters/http"
	"github.com/jsamuelsen/quote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-service/internal/adapters/repository/memory"
	"github.com/jsamuelsen/quote-service/internal/adapters/repository/sqldb"
	"github.com/jsamuelsen/quote-service/internal/app"
	"github.com/jsamuelsen/quote-service/internal/platform/config"
	"github.com/jsamuelsen/quote-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-service/internal/platform/telemetry"
	"github.com/jsamuelsen/quote-service/internal/ports"
	"github.com/jsamuelsen/quote-service/internal/sampledata"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	slog.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("repository", cfg.Repository.Variant),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// 6. Open the quote repository
	store, err := openRepository(ctx, cfg, healthRegistry)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := store.close(); closeErr != nil {
			logger.Error("closing repository", slog.Any("error", closeErr))
		}
	}()

	metrics, err := telemetry.NewQuoteMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("creating quote metrics: %w", err)
	}

	// 7. Create quote service (application layer)
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Repository: store.repo,
		Transactor: store.tx,
		Metrics:    metrics,
		Logger:     logger,
	})

	if cfg.Repository.LoadSampleData {
		loaded, loadErr := quoteService.LoadSampleQuotes(ctx, sampledata.Quotes())
		if loadErr != nil {
			return fmt.Errorf("loading sample quotes: %w", loadErr)
		}

		logger.Info("sample quotes loaded", slog.Int("count", loaded))
	}

	// 8. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime).WithRepository(cfg.Repository.Variant)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo).WithGatherer(prometheus.DefaultGatherer)
	quoteHandler := handlers.NewQuoteHandler(quoteService)
	pageHandler := handlers.NewPageHandler(quoteService)

	// 9. Create HTTP server
	server := http.New(&cfg.Server, logger)

	// 10. Setup router with all middleware and routes
	routerCfg := http.NewDefaultRouterConfig(logger, &cfg.App, healthHandler, quoteHandler, pageHandler)
	http.SetupRouter(server.Engine(), routerCfg)

	// 11. Start server (non-blocking)
	serverErr, err := server.Start()
	if err != nil {
		return err
	}

	// 12. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// repository bundles the configured quote repository with the resources
// it holds open.
type repository struct {
	repo  ports.QuoteRepository
	tx    ports.Transactor
	close func() error
}

// openRepository builds the repository selected by repository.variant.
// SQL variants open the database, run migrations when enabled and register
// the database as a readiness check.
func openRepository(ctx context.Context, cfg *config.Config, registry ports.HealthRegistry) (*repository, error) {
	if !cfg.Repository.UsesDatabase() {
		return &repository{
			repo:  memory.NewRepository(memory.NewStore()),
			tx:    ports.NoopTransactor{},
			close: func() error { return nil },
		}, nil
	}

	db, err := sqldb.Open(ctx, sqldb.Config{
		Driver:       cfg.Database.Driver,
		DSN:          cfg.Database.DSN,
		Migrate:      cfg.Database.Migrate,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	repo, err := sqldb.NewRepository(db, sqldb.Variant(cfg.Repository.Variant))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating repository: %w", err)
	}

	if err := registry.Register(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("registering database health check: %w", err)
	}

	return &repository{
		repo:  repo,
		tx:    sqldb.NewTransactor(db),
		close: db.Close,
	}, nil
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	// Listen for OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-serverErr:
		if !ok {
			return errors.New("http server stopped unexpectedly")
		}

		return err

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}

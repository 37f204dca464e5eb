//go:build integration

package integration

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/adapters/clients"
	"github.com/jsamuelsen/quote-service/internal/adapters/clients/acl"
	httpadapter "github.com/jsamuelsen/quote-service/internal/adapters/http"
	"github.com/jsamuelsen/quote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-service/internal/adapters/repository/memory"
	"github.com/jsamuelsen/quote-service/internal/adapters/repository/sqldb"
	"github.com/jsamuelsen/quote-service/internal/app"
	"github.com/jsamuelsen/quote-service/internal/platform/config"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

// variants lists every repository the service can run on. The SQL ones use
// a throwaway SQLite file.
var variants = []string{
	config.VariantMemory,
	config.VariantSQLRows,
	config.VariantSQLJSON,
	config.VariantSQLJSONObject,
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startService runs the full quote router over an empty repository of the
// given variant. dir holds the SQLite file for the SQL variants.
func startService(variant, dir string) (*httptest.Server, func(), error) {
	gin.SetMode(gin.TestMode)

	registry := ports.NewHealthRegistry()
	cleanup := func() {}

	var (
		repo ports.QuoteRepository
		tx   ports.Transactor = ports.NoopTransactor{}
	)

	if variant == config.VariantMemory {
		repo = memory.NewRepository(memory.NewStore())
	} else {
		db, err := sqldb.Open(context.Background(), sqldb.Config{
			Driver:  sqldb.DriverSQLite,
			DSN:     "file:" + filepath.Join(dir, "quotes.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
			Migrate: true,
		})
		if err != nil {
			return nil, nil, err
		}

		repo, err = sqldb.NewRepository(db, sqldb.Variant(variant))
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		if err := registry.Register(db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		tx = sqldb.NewTransactor(db)
		cleanup = func() { _ = db.Close() }
	}

	logger := discardLogger()
	service := app.NewQuoteService(app.QuoteServiceConfig{
		Repository: repo,
		Transactor: tx,
		Logger:     logger,
	})

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.NewDefaultRouterConfig(
		logger,
		&config.AppConfig{Name: "quote-service", Environment: "test", Version: "test"},
		handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "none", "now").WithRepository(variant)),
		handlers.NewQuoteHandler(service),
		handlers.NewPageHandler(service),
	))

	server := httptest.NewServer(engine)

	return server, func() {
		server.Close()
		cleanup()
	}, nil
}

// newQuoteService starts a service for variant and closes it with the test.
func newQuoteService(t *testing.T, variant string) *httptest.Server {
	t.Helper()

	server, stop, err := startService(variant, t.TempDir())
	if err != nil {
		t.Fatalf("starting %s service: %v", variant, err)
	}

	t.Cleanup(stop)

	return server
}

// testClientConfig returns a fast-failing client configuration.
func testClientConfig(baseURL string) *clients.Config {
	return &clients.Config{
		ServiceName: "quote-service",
		BaseURL:     baseURL,
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       100 * time.Millisecond,
			HalfOpenLimit: 1,
		},
		Logger: discardLogger(),
	}
}

// newQuoteClient returns the quote client for baseURL.
func newQuoteClient(t *testing.T, baseURL string) *acl.QuoteClient {
	t.Helper()

	client, err := clients.New(testClientConfig(baseURL))
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}

	return acl.NewQuoteClient(acl.QuoteClientConfig{Client: client, Logger: discardLogger()})
}

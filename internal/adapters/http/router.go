package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-service/internal/platform/config"
	"github.com/jsamuelsen/quote-service/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for quote requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	Logger    *slog.Logger
	AppConfig *config.AppConfig

	HealthHandler *handlers.HealthHandler
	QuoteHandler  *handlers.QuoteHandler
	PageHandler   *handlers.PageHandler

	// Timeout bounds each quote request. Zero disables it.
	Timeout time.Duration
}

// quotePrefixes are the groups the quote routes are mounted under: the
// historical unprefixed paths and the versioned API.
var quotePrefixes = []string{"", "/api/v1"}

// SetupRouter installs middleware and routes on engine. Middleware runs in
// this order:
//  1. Recovery
//  2. Context logger, request ID, correlation ID
//  3. OpenTelemetry tracing and metrics
//  4. Request logging, which skips /-/ paths
//  5. Timeout, on the quote groups only
//
// Operational routes live under /-/. The quote routes are served at every
// prefix in quotePrefixes over the same service; the HTML page only at the
// root.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(baseMiddleware(cfg.Logger)...)
	engine.Use(middleware.CorrelationID())
	engine.Use(telemetry.Middleware(cfg.AppConfig.Name)...)
	engine.Use(middleware.Logging())

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	for _, prefix := range quotePrefixes {
		group := engine.Group(prefix)
		if cfg.Timeout > 0 {
			group.Use(middleware.Timeout(cfg.Timeout))
		}

		if cfg.QuoteHandler != nil {
			cfg.QuoteHandler.RegisterQuoteRoutes(group)
		}

		if prefix == "" && cfg.PageHandler != nil {
			cfg.PageHandler.RegisterPageRoutes(group)
		}
	}
}

// SetupMinimalRouter serves only the operational routes.
func SetupMinimalRouter(engine *gin.Engine, logger *slog.Logger, healthHandler *handlers.HealthHandler) {
	engine.Use(baseMiddleware(logger)...)

	if healthHandler != nil {
		healthHandler.RegisterHealthRoutesOnEngine(engine)
	}
}

func baseMiddleware(logger *slog.Logger) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		middleware.Recovery(),
		middleware.ContextLogger(logger),
		middleware.RequestID(),
	}
}

// NewDefaultRouterConfig creates a RouterConfig with the default timeout.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	healthHandler *handlers.HealthHandler,
	quoteHandler *handlers.QuoteHandler,
	pageHandler *handlers.PageHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AppConfig:     appCfg,
		HealthHandler: healthHandler,
		QuoteHandler:  quoteHandler,
		PageHandler:   pageHandler,
		Timeout:       DefaultRequestTimeout,
	}
}

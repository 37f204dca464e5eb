package telemetry

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quote-service/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/quote-service/telemetry"

	// HeaderTraceID carries the trace ID back to the caller.
	HeaderTraceID = "X-Trace-ID"
)

// Metrics holds HTTP server metrics.
type Metrics struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	inFlight metric.Int64UpDownCounter
}

// NewMetrics creates HTTP server metrics on the global meter provider.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(instrumentationName)

	var m Metrics
	var errs [3]error

	m.duration, errs[0] = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of HTTP requests."), metric.WithUnit("s"))
	m.total, errs[1] = meter.Int64Counter("http.server.request.total",
		metric.WithDescription("HTTP requests served, by route and status."))
	m.inFlight, errs[2] = meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("HTTP requests in flight."))

	if err := errors.Join(errs[:]...); err != nil {
		return nil, fmt.Errorf("creating http metrics: %w", err)
	}

	return &m, nil
}

// Middleware returns the tracing and metrics handlers, in order. The
// otelgin handler starts the server span; the second handler exposes its
// trace ID in the X-Trace-ID header and on the request logger, then
// records the request metrics.
func Middleware(serviceName string) []gin.HandlerFunc {
	metrics, err := NewMetrics()
	if err != nil {
		otel.Handle(err)
	}

	return []gin.HandlerFunc{
		otelgin.Middleware(serviceName),
		metrics.handler,
	}
}

func (m *Metrics) handler(c *gin.Context) {
	start := time.Now()
	ctx := c.Request.Context()

	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		traceID := sc.TraceID().String()
		c.Header(HeaderTraceID, traceID)
		c.Request = c.Request.WithContext(logging.With(ctx, logging.KeyTraceID, traceID))
	}

	route := attribute.String("http.route", c.FullPath())
	method := attribute.String("http.method", c.Request.Method)

	if m != nil {
		m.inFlight.Add(ctx, 1, metric.WithAttributes(method, route))
		defer m.inFlight.Add(ctx, -1, metric.WithAttributes(method, route))
	}

	c.Next()

	if m == nil {
		return
	}

	attrs := metric.WithAttributes(method, route, attribute.Int("http.status_code", c.Writer.Status()))
	m.duration.Record(ctx, time.Since(start).Seconds(), attrs)
	m.total.Add(ctx, 1, attrs)
}

package telemetry

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// QuoteMetrics records quote store activity. Counters go to the OTLP meter
// and to a Prometheus registry so /-/metrics shows them without a collector.
type QuoteMetrics struct {
	added      metric.Int64Counter
	deleted    metric.Int64Counter
	opDuration metric.Float64Histogram

	changes *prometheus.CounterVec
}

// NewQuoteMetrics creates the quote instruments on the global meter provider
// and registers the Prometheus counter with reg. A nil reg skips Prometheus.
func NewQuoteMetrics(reg prometheus.Registerer) (*QuoteMetrics, error) {
	meter := otel.Meter(instrumentationName)

	added, err := meter.Int64Counter(
		"quotes.added",
		metric.WithDescription("Number of quotes added"),
	)
	if err != nil {
		return nil, err
	}

	deleted, err := meter.Int64Counter(
		"quotes.deleted",
		metric.WithDescription("Number of quote delete requests"),
	)
	if err != nil {
		return nil, err
	}

	opDuration, err := meter.Float64Histogram(
		"quotes.repository.duration",
		metric.WithDescription("Duration of quote repository operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	m := &QuoteMetrics{added: added, deleted: deleted, opDuration: opDuration}

	if reg != nil {
		m.changes = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quote_service",
			Name:      "quote_changes_total",
			Help:      "Quotes added and delete requests, by operation.",
		}, []string{"operation"})

		if err := reg.Register(m.changes); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Added counts n added quotes. Safe on a nil receiver.
func (m *QuoteMetrics) Added(ctx context.Context, n int) {
	if m == nil {
		return
	}

	m.added.Add(ctx, int64(n))

	if m.changes != nil {
		m.changes.WithLabelValues("add").Add(float64(n))
	}
}

// Deleted counts one delete request. Safe on a nil receiver.
func (m *QuoteMetrics) Deleted(ctx context.Context) {
	if m == nil {
		return
	}

	m.deleted.Add(ctx, 1)

	if m.changes != nil {
		m.changes.WithLabelValues("delete").Inc()
	}
}

// Observe records how long op took. Safe on a nil receiver.
func (m *QuoteMetrics) Observe(ctx context.Context, op string, start time.Time, err error) {
	if m == nil {
		return
	}

	m.opDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		attribute.String("quotes.operation", op),
		attribute.Bool("error", err != nil),
	))
}

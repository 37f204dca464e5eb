package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/jsamuelsen/quote-service/internal/adapters/clients"
	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

var (
	_ ports.QuoteClient   = (*QuoteClient)(nil)
	_ ports.HealthChecker = (*QuoteClient)(nil)
)

// QuoteClientConfig contains configuration for the quote client.
type QuoteClientConfig struct {
	// Client is the HTTP client to use; its BaseURL points at the quote service.
	Client *clients.Client

	// ServiceName labels errors and health checks. Defaults to "quote-service".
	ServiceName string

	Logger *slog.Logger
}

// QuoteClient implements ports.QuoteClient over the quote REST API.
type QuoteClient struct {
	api    endpoint
	logger *slog.Logger
}

// NewQuoteClient creates a new quote client adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewQuoteClient(cfg QuoteClientConfig) *QuoteClient {
	if cfg.Client == nil {
		panic("QuoteClient: Client is required")
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "quote-service"
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteClient{
		api:    endpoint{client: cfg.Client, service: serviceName},
		logger: logger,
	}
}

// quoteWire is a quote as the REST API serialises it.
type quoteWire struct {
	ID           int64    `json:"id"`
	Text         string   `json:"text"`
	AttributedTo string   `json:"attributedTo"`
	Subjects     []string `json:"subjects"`
}

// quoteDataWire is the POST /quote request body.
type quoteDataWire struct {
	Text         string   `json:"text"`
	AttributedTo string   `json:"attributedTo"`
	Subjects     []string `json:"subjects"`
}

// ListQuotes fetches every quote.
func (c *QuoteClient) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	return c.list(ctx, "/quotes.json", "list quotes")
}

// ListBySubject fetches quotes tagged with subject.
func (c *QuoteClient) ListBySubject(ctx context.Context, subject string) ([]domain.Quote, error) {
	q := url.Values{"subject": {subject}}
	return c.list(ctx, "/quotesBySubject.json?"+q.Encode(), "list quotes by subject")
}

// ListByAttributedTo fetches quotes attributed to attributedTo.
func (c *QuoteClient) ListByAttributedTo(ctx context.Context, attributedTo string) ([]domain.Quote, error) {
	q := url.Values{"attributedTo": {attributedTo}}
	return c.list(ctx, "/quotesByAttributedTo.json?"+q.Encode(), "list quotes by attribution")
}

// RandomQuote fetches one quote picked by the service.
func (c *QuoteClient) RandomQuote(ctx context.Context) (domain.Quote, error) {
	const path = "/randomQuote.json"
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", path))

	body, err := c.api.get(ctx, path, "random quote")
	if err != nil {
		return domain.Quote{}, err
	}

	return c.decodeQuote(ctx, body)
}

// AddQuote posts data and returns the stored quote with its assigned id.
func (c *QuoteClient) AddQuote(ctx context.Context, data domain.QuoteData) (domain.Quote, error) {
	payload, err := json.Marshal(quoteDataWire{
		Text:         data.Text,
		AttributedTo: data.AttributedTo,
		Subjects:     domain.CloneSubjects(data.Subjects),
	})
	if err != nil {
		return domain.Quote{}, fmt.Errorf("encoding quote: %w", err)
	}

	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", "/quote"))

	body, err := c.api.post(ctx, "/quote", bytes.NewReader(payload), "add quote")
	if err != nil {
		return domain.Quote{}, err
	}

	quote, err := c.decodeQuote(ctx, body)
	if err != nil {
		return domain.Quote{}, err
	}

	c.logger.DebugContext(ctx, "quote added", slog.Int64("quote_id", quote.ID))

	return quote, nil
}

// DeleteQuote deletes the quote with id. The service treats absent ids as
// a no-op, so this only fails on transport or server errors.
func (c *QuoteClient) DeleteQuote(ctx context.Context, id int64) error {
	path := "/quotes/" + strconv.FormatInt(id, 10)
	c.logger.Log(ctx, logging.LevelTrace, "starting request",
		slog.String("path", path),
		slog.Int64("quote_id", id))

	return c.api.discard(c.api.delete(ctx, path, "delete quote"))
}

func (c *QuoteClient) list(ctx context.Context, path, operation string) ([]domain.Quote, error) {
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", path))

	body, err := c.api.get(ctx, path, operation)
	if err != nil {
		return nil, err
	}

	wire, err := DecodeResponse[[]quoteWire](body)
	if err != nil {
		return nil, c.api.undecodable(err)
	}

	quotes, err := TranslateSlice(*wire, translateQuote)
	if err != nil {
		return nil, err
	}

	c.logger.Log(ctx, logging.LevelTrace, "translated quotes",
		slog.String("path", path),
		slog.Int("count", len(quotes)))

	return quotes, nil
}

func (c *QuoteClient) decodeQuote(ctx context.Context, body io.ReadCloser) (domain.Quote, error) {
	wire, err := DecodeResponse[quoteWire](body)
	if err != nil {
		return domain.Quote{}, c.api.undecodable(err)
	}

	quote, err := translateQuote(wire)
	if err != nil {
		return domain.Quote{}, err
	}

	c.logger.Log(ctx, logging.LevelTrace, "translated quote",
		slog.Int64("quote_id", quote.ID),
		slog.String("attributed_to", quote.AttributedTo))

	return quote, nil
}

// translateQuote rejects quotes the service could never have stored.
func translateQuote(w *quoteWire) (domain.Quote, error) {
	if err := ValidatePositive(w.ID, "id"); err != nil {
		return domain.Quote{}, err
	}

	if err := ValidateRequired(w.Text, "text"); err != nil {
		return domain.Quote{}, err
	}

	if err := ValidateRequired(w.AttributedTo, "attributedTo"); err != nil {
		return domain.Quote{}, err
	}

	return domain.NewQuote(w.ID, domain.QuoteData{
		Text:         w.Text,
		AttributedTo: w.AttributedTo,
		Subjects:     w.Subjects,
	}), nil
}

// Name implements ports.HealthChecker.
func (c *QuoteClient) Name() string {
	return c.api.service
}

// Check reports whether the quote service answers its liveness probe.
// Implements ports.HealthChecker.
func (c *QuoteClient) Check(ctx context.Context) error {
	return c.api.discard(c.api.get(ctx, "/-/live", "health check"))
}

// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/platform/telemetry"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

// QuoteService runs each quote use case as one unit of work against the
// repository: queries in a read-only transaction, changes in a read-write one.
type QuoteService struct {
	repo    ports.QuoteRepository
	tx      ports.Transactor
	metrics *telemetry.QuoteMetrics
	logger  *slog.Logger
	intn    func(n int) int
}

// QuoteServiceConfig contains the dependencies of the quote service.
type QuoteServiceConfig struct {
	Repository ports.QuoteRepository

	// Transactor defaults to ports.NoopTransactor.
	Transactor ports.Transactor

	// Metrics is optional.
	Metrics *telemetry.QuoteMetrics

	Logger *slog.Logger

	// Intn picks the index of the random quote. Defaults to math/rand/v2.IntN.
	Intn func(n int) int
}

// NewQuoteService creates a new quote service. It panics when no repository
// is given.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Repository == nil {
		panic("app: quote repository is required")
	}

	s := &QuoteService{
		repo:    cfg.Repository,
		tx:      cfg.Transactor,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
		intn:    cfg.Intn,
	}

	if s.tx == nil {
		s.tx = ports.NoopTransactor{}
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	if s.intn == nil {
		s.intn = rand.IntN
	}

	return s
}

// FindAllQuotes returns every quote.
func (s *QuoteService) FindAllQuotes(ctx context.Context) ([]domain.Quote, error) {
	return s.query(ctx, "find_all", func(ctx context.Context) ([]domain.Quote, error) {
		return s.repo.FindAllQuotes(ctx)
	})
}

// FindBySubject returns the quotes that carry subject.
func (s *QuoteService) FindBySubject(ctx context.Context, subject string) ([]domain.Quote, error) {
	return s.query(ctx, "find_by_subject", func(ctx context.Context) ([]domain.Quote, error) {
		return s.repo.FindBySubject(ctx, subject)
	})
}

// FindByAttributedTo returns the quotes attributed to attributedTo.
func (s *QuoteService) FindByAttributedTo(ctx context.Context, attributedTo string) ([]domain.Quote, error) {
	return s.query(ctx, "find_by_attributed_to", func(ctx context.Context) ([]domain.Quote, error) {
		return s.repo.FindByAttributedTo(ctx, attributedTo)
	})
}

// RandomQuote returns one quote picked uniformly from all quotes.
func (s *QuoteService) RandomQuote(ctx context.Context) (domain.Quote, error) {
	all, err := s.FindAllQuotes(ctx)
	if err != nil {
		return domain.Quote{}, err
	}

	if len(all) == 0 {
		return domain.Quote{}, domain.NewNotFoundError("no quotes stored")
	}

	return all[s.intn(len(all))], nil
}

// AddQuote validates data and stores it. The quote and its subjects are
// committed together or not at all.
func (s *QuoteService) AddQuote(ctx context.Context, data domain.QuoteData) (domain.Quote, error) {
	if err := data.Validate(); err != nil {
		return domain.Quote{}, err
	}

	var added domain.Quote

	start := time.Now()
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		added, err = s.repo.AddQuote(ctx, data)

		return err
	})
	s.metrics.Observe(ctx, "add", start, err)

	if err != nil {
		s.logger.ErrorContext(ctx, "failed to add quote",
			slog.String("attributed_to", data.AttributedTo),
			slog.Any("error", err),
		)

		return domain.Quote{}, err
	}

	s.metrics.Added(ctx, 1)
	s.logger.InfoContext(ctx, "added quote",
		slog.Int64("quote_id", added.ID),
		slog.String("attributed_to", added.AttributedTo),
	)

	return added, nil
}

// DeleteQuote removes the quote with id. Unknown ids are not an error.
func (s *QuoteService) DeleteQuote(ctx context.Context, id int64) error {
	start := time.Now()
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.DeleteQuote(ctx, id)
	})
	s.metrics.Observe(ctx, "delete", start, err)

	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete quote",
			slog.Int64("quote_id", id),
			slog.Any("error", err),
		)

		return err
	}

	s.metrics.Deleted(ctx)
	s.logger.InfoContext(ctx, "deleted quote", slog.Int64("quote_id", id))

	return nil
}

// LoadSampleQuotes adds quotes only when the store is empty, in a single
// transaction. It returns how many quotes were added.
func (s *QuoteService) LoadSampleQuotes(ctx context.Context, quotes []domain.QuoteData) (int, error) {
	loaded := 0

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.repo.FindAllQuotes(ctx)
		if err != nil {
			return err
		}

		if len(existing) > 0 {
			s.logger.WarnContext(ctx, "not loading sample quotes, store is not empty",
				slog.Int("existing", len(existing)),
			)

			return nil
		}

		for _, q := range quotes {
			if _, err := s.repo.AddQuote(ctx, q); err != nil {
				return err
			}

			loaded++
		}

		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load sample quotes", slog.Any("error", err))
		return 0, err
	}

	s.metrics.Added(ctx, loaded)
	s.logger.InfoContext(ctx, "loaded sample quotes", slog.Int("count", loaded))

	return loaded, nil
}

func (s *QuoteService) query(
	ctx context.Context,
	op string,
	fn func(ctx context.Context) ([]domain.Quote, error),
) ([]domain.Quote, error) {
	var quotes []domain.Quote

	start := time.Now()
	err := s.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		quotes, err = fn(ctx)

		return err
	})
	s.metrics.Observe(ctx, op, start, err)

	if err != nil {
		s.logger.ErrorContext(ctx, "quote query failed",
			slog.String("operation", op),
			slog.Any("error", err),
		)

		return nil, err
	}

	s.logger.DebugContext(ctx, "quote query",
		slog.String("operation", op),
		slog.Int("count", len(quotes)),
	)

	return quotes, nil
}

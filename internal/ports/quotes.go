// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrUnavailable, etc.)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/jsamuelsen/quote-service/internal/domain"
)

// QuoteRepository is the storage contract every quote backend satisfies.
//
// Implementations agree on results for identical state: quotes come back in
// ascending id order, filters are exact and case-sensitive, and deleting an
// absent id is not an error. Whether a filter is evaluated inside the
// backing engine or by scanning everything is an implementation detail.
type QuoteRepository interface {
	// FindAllQuotes returns every stored quote.
	FindAllQuotes(ctx context.Context) ([]domain.Quote, error)

	// FindBySubject returns quotes whose subjects contain subject.
	FindBySubject(ctx context.Context, subject string) ([]domain.Quote, error)

	// FindByAttributedTo returns quotes attributed exactly to attributedTo.
	FindByAttributedTo(ctx context.Context, attributedTo string) ([]domain.Quote, error)

	// AddQuote stores data under a freshly assigned id and returns it.
	AddQuote(ctx context.Context, data domain.QuoteData) (domain.Quote, error)

	// DeleteQuote removes the quote with id. Absent ids are a no-op.
	DeleteQuote(ctx context.Context, id int64) error
}

// Transactor demarcates units of work around repository calls.
//
// Implementations carry the active transaction in the context passed to fn,
// so repositories invoked with that context join it. fn's error rolls the
// unit back; a nil return commits it.
type Transactor interface {
	// WithinTx runs fn in a read-write transaction.
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error

	// WithinReadOnlyTx runs fn in a read-only transaction.
	WithinReadOnlyTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// NoopTransactor runs fn directly. It serves backends whose single
// operations are already atomic, such as the in-memory store.
type NoopTransactor struct{}

// WithinTx calls fn with ctx unchanged.
func (NoopTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// WithinReadOnlyTx calls fn with ctx unchanged.
func (NoopTransactor) WithinReadOnlyTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// QuoteClient talks to a remote quote service.
// Implementations map transport failures to domain.ErrUnavailable and
// missing resources to domain.ErrNotFound.
type QuoteClient interface {
	ListQuotes(ctx context.Context) ([]domain.Quote, error)
	ListBySubject(ctx context.Context, subject string) ([]domain.Quote, error)
	ListByAttributedTo(ctx context.Context, attributedTo string) ([]domain.Quote, error)
	RandomQuote(ctx context.Context) (domain.Quote, error)
	AddQuote(ctx context.Context, data domain.QuoteData) (domain.Quote, error)
	DeleteQuote(ctx context.Context, id int64) error
}

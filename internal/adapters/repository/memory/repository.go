package memory

import (
	"context"

	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

// Repository adapts a Store to ports.QuoteRepository. Filters are applied
// directly to a single snapshot.
type Repository struct {
	store *Store
}

var _ ports.QuoteRepository = (*Repository)(nil)

// NewRepository creates a repository backed by store.
func NewRepository(store *Store) *Repository {
	return &Repository{store: store}
}

// Store exposes the backing store, mainly so tests can reset it.
func (r *Repository) Store() *Store {
	return r.store
}

func (r *Repository) FindAllQuotes(_ context.Context) ([]domain.Quote, error) {
	return r.store.FindAll(), nil
}

func (r *Repository) FindBySubject(_ context.Context, subject string) ([]domain.Quote, error) {
	return domain.FilterBySubject(r.store.FindAll(), subject), nil
}

func (r *Repository) FindByAttributedTo(_ context.Context, attributedTo string) ([]domain.Quote, error) {
	return domain.FilterByAttributedTo(r.store.FindAll(), attributedTo), nil
}

func (r *Repository) AddQuote(_ context.Context, data domain.QuoteData) (domain.Quote, error) {
	return r.store.Add(data), nil
}

func (r *Repository) DeleteQuote(_ context.Context, id int64) error {
	r.store.Delete(id)
	return nil
}

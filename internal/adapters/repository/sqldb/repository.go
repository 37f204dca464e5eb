package sqldb

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

// Variant names a read strategy.
type Variant string

const (
	// VariantRows reads one row per (quote, subject) pair and groups them in Go.
	// Filters become WHERE clauses.
	VariantRows Variant = "sql-rows"

	// VariantJSON lets the database aggregate subjects into a JSON array.
	// Filters are applied after a full scan.
	VariantJSON Variant = "sql-json"

	// VariantJSONObject lets the database build a JSON object per quote.
	// Filters are applied after a full scan.
	VariantJSONObject Variant = "sql-json-object"
)

// Variants lists every supported read strategy.
var Variants = []Variant{VariantRows, VariantJSON, VariantJSONObject}

// NewRepository returns the repository for variant.
func NewRepository(db *DB, variant Variant) (ports.QuoteRepository, error) {
	base := writer{db: db}

	switch variant {
	case VariantRows:
		return &RowsRepository{writer: base}, nil
	case VariantJSON:
		return &JSONRepository{writer: base}, nil
	case VariantJSONObject:
		return &JSONObjectRepository{writer: base}, nil
	default:
		return nil, fmt.Errorf("unknown repository variant %q", variant)
	}
}

// writer is the insert and delete path shared by all variants.
type writer struct {
	db *DB
}

// AddQuote inserts the quote row and then one row per subject. Both happen
// in one transaction, joining the caller's when there is one.
func (w writer) AddQuote(ctx context.Context, data domain.QuoteData) (domain.Quote, error) {
	var id int64

	err := w.db.inTx(ctx, nil, func(ctx context.Context) error {
		conn := w.db.connOrTx(ctx)

		err := w.db.builder().
			Insert("quote").
			Columns("text", "attributed_to").
			Values(data.Text, data.AttributedTo).
			Suffix("RETURNING id").
			RunWith(conn).
			QueryRowContext(ctx).
			Scan(&id)
		if err != nil {
			return fmt.Errorf("inserting quote: %w", err)
		}

		if len(data.Subjects) == 0 {
			return nil
		}

		insert := w.db.builder().Insert("quote_subject").Columns("quote_id", "position", "subject")
		for i, s := range data.Subjects {
			insert = insert.Values(id, i, s)
		}

		if _, err := insert.RunWith(conn).ExecContext(ctx); err != nil {
			return fmt.Errorf("inserting subjects of quote %d: %w", id, err)
		}

		return nil
	})
	if err != nil {
		return domain.Quote{}, err
	}

	return domain.NewQuote(id, data), nil
}

// DeleteQuote removes the subject rows and then the quote row.
func (w writer) DeleteQuote(ctx context.Context, id int64) error {
	return w.db.inTx(ctx, nil, func(ctx context.Context) error {
		conn := w.db.connOrTx(ctx)

		for _, stmt := range []squirrel.DeleteBuilder{
			w.db.builder().Delete("quote_subject").Where(squirrel.Eq{"quote_id": id}),
			w.db.builder().Delete("quote").Where(squirrel.Eq{"id": id}),
		} {
			if _, err := stmt.RunWith(conn).ExecContext(ctx); err != nil {
				return fmt.Errorf("deleting quote %d: %w", id, err)
			}
		}

		return nil
	})
}

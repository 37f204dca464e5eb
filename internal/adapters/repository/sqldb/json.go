package sqldb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/jsamuelsen/quote-service/internal/domain"
)

// JSONRepository reads one row per quote with its subjects aggregated into
// a JSON array by the database. Filters run in Go over the full result.
type JSONRepository struct {
	writer
}

type quoteJSONRow struct {
	ID           int64  `db:"id"`
	Text         string `db:"text"`
	AttributedTo string `db:"attributed_to"`
	Subjects     string `db:"subjects"`
}

func (r *JSONRepository) FindAllQuotes(ctx context.Context) ([]domain.Quote, error) {
	stmt, args, err := r.db.builder().
		Select("q.id", "q.text", "q.attributed_to").
		Column(r.db.dialect.subjectsArray + " AS subjects").
		From("quote q").
		OrderBy("q.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building quote query: %w", err)
	}

	var rows []quoteJSONRow
	if err := sqlscan.Select(ctx, r.db.connOrTx(ctx), &rows, stmt, args...); err != nil {
		return nil, fmt.Errorf("selecting quotes: %w", err)
	}

	quotes := make([]domain.Quote, 0, len(rows))
	for _, row := range rows {
		subjects := []string{}
		if err := json.Unmarshal([]byte(row.Subjects), &subjects); err != nil {
			return nil, fmt.Errorf("decoding subjects of quote %d: %w", row.ID, err)
		}

		quotes = append(quotes, domain.Quote{
			ID:           row.ID,
			Text:         row.Text,
			AttributedTo: row.AttributedTo,
			Subjects:     subjects,
		})
	}

	return quotes, nil
}

func (r *JSONRepository) FindBySubject(ctx context.Context, subject string) ([]domain.Quote, error) {
	all, err := r.FindAllQuotes(ctx)
	if err != nil {
		return nil, err
	}

	return domain.FilterBySubject(all, subject), nil
}

func (r *JSONRepository) FindByAttributedTo(ctx context.Context, attributedTo string) ([]domain.Quote, error) {
	all, err := r.FindAllQuotes(ctx)
	if err != nil {
		return nil, err
	}

	return domain.FilterByAttributedTo(all, attributedTo), nil
}

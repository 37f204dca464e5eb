package sqldb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/jsamuelsen/quote-service/internal/domain"
)

// JSONObjectRepository reads each quote as a single JSON object built by
// the database, using the same field names as the REST API.
type JSONObjectRepository struct {
	writer
}

type quoteObject struct {
	ID           int64    `json:"id"`
	Text         string   `json:"text"`
	AttributedTo string   `json:"attributedTo"`
	Subjects     []string `json:"subjects"`
}

func (r *JSONObjectRepository) FindAllQuotes(ctx context.Context) ([]domain.Quote, error) {
	stmt, args, err := r.db.builder().
		Select(r.db.dialect.quoteObject + " AS quote").
		From("quote q").
		OrderBy("q.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building quote query: %w", err)
	}

	var docs []string
	if err := sqlscan.Select(ctx, r.db.connOrTx(ctx), &docs, stmt, args...); err != nil {
		return nil, fmt.Errorf("selecting quotes: %w", err)
	}

	quotes := make([]domain.Quote, 0, len(docs))
	for _, doc := range docs {
		var obj quoteObject
		if err := json.Unmarshal([]byte(doc), &obj); err != nil {
			return nil, fmt.Errorf("decoding quote object: %w", err)
		}

		quotes = append(quotes, domain.Quote{
			ID:           obj.ID,
			Text:         obj.Text,
			AttributedTo: obj.AttributedTo,
			Subjects:     domain.CloneSubjects(obj.Subjects),
		})
	}

	return quotes, nil
}

func (r *JSONObjectRepository) FindBySubject(ctx context.Context, subject string) ([]domain.Quote, error) {
	all, err := r.FindAllQuotes(ctx)
	if err != nil {
		return nil, err
	}

	return domain.FilterBySubject(all, subject), nil
}

func (r *JSONObjectRepository) FindByAttributedTo(ctx context.Context, attributedTo string) ([]domain.Quote, error) {
	all, err := r.FindAllQuotes(ctx)
	if err != nil {
		return nil, err
	}

	return domain.FilterByAttributedTo(all, attributedTo), nil
}

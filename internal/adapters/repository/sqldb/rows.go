package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/jsamuelsen/quote-service/internal/domain"
)

// RowsRepository reads quotes joined with their subjects, one row per
// subject, and filters in SQL.
type RowsRepository struct {
	writer
}

type quoteSubjectRow struct {
	ID           int64          `db:"id"`
	Text         string         `db:"text"`
	AttributedTo string         `db:"attributed_to"`
	Subject      sql.NullString `db:"subject"`
}

func (r *RowsRepository) FindAllQuotes(ctx context.Context) ([]domain.Quote, error) {
	return r.find(ctx, nil)
}

// FindBySubject selects the matching quote ids in a subquery so each quote
// still comes back with all of its subjects.
func (r *RowsRepository) FindBySubject(ctx context.Context, subject string) ([]domain.Quote, error) {
	return r.find(ctx, squirrel.Expr("q.id IN (SELECT quote_id FROM quote_subject WHERE subject = ?)", subject))
}

func (r *RowsRepository) FindByAttributedTo(ctx context.Context, attributedTo string) ([]domain.Quote, error) {
	return r.find(ctx, squirrel.Eq{"q.attributed_to": attributedTo})
}

func (r *RowsRepository) find(ctx context.Context, where squirrel.Sqlizer) ([]domain.Quote, error) {
	query := r.db.builder().
		Select("q.id", "q.text", "q.attributed_to", "s.subject").
		From("quote q").
		LeftJoin("quote_subject s ON q.id = s.quote_id").
		OrderBy("q.id", "s.position")
	if where != nil {
		query = query.Where(where)
	}

	stmt, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building quote query: %w", err)
	}

	var rows []quoteSubjectRow
	if err := sqlscan.Select(ctx, r.db.connOrTx(ctx), &rows, stmt, args...); err != nil {
		return nil, fmt.Errorf("selecting quotes: %w", err)
	}

	return groupRows(rows), nil
}

// groupRows folds consecutive rows of the same quote into one Quote. Rows
// must be ordered by quote id.
func groupRows(rows []quoteSubjectRow) []domain.Quote {
	quotes := make([]domain.Quote, 0, len(rows))

	for _, row := range rows {
		if n := len(quotes); n == 0 || quotes[n-1].ID != row.ID {
			quotes = append(quotes, domain.Quote{
				ID:           row.ID,
				Text:         row.Text,
				AttributedTo: row.AttributedTo,
				Subjects:     []string{},
			})
		}

		if row.Subject.Valid {
			last := &quotes[len(quotes)-1]
			last.Subjects = append(last.Subjects, row.Subject.String)
		}
	}

	return quotes
}

// Package repositorytest provides a conformance suite that every
// ports.QuoteRepository implementation runs from its own tests.
package repositorytest

import (
	"context"
	"slices"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/ports"
	"github.com/jsamuelsen/quote-service/internal/sampledata"
)

// Options describe behavior that legitimately differs between backends.
type Options struct {
	// ReusesDeletedMaxID is set when the next id is derived from the
	// current largest id, so deleting the newest quote frees its id.
	ReusesDeletedMaxID bool

	// Concurrency is the number of parallel adds in the concurrency test.
	// Zero skips it.
	Concurrency int
}

// Run exercises newRepo against the repository contract. newRepo must
// return an empty repository that is independent of any other it returned.
func Run(t *testing.T, newRepo func(t *testing.T) ports.QuoteRepository, opts Options) {
	t.Helper()

	ctx := context.Background()

	t.Run("assigns sequential ids starting at 1", func(t *testing.T) {
		repo := newRepo(t)

		for i := 1; i <= 5; i++ {
			q, err := repo.AddQuote(ctx, RandomQuoteData())
			require.NoError(t, err)
			assert.Equal(t, int64(i), q.ID)
		}
	})

	t.Run("round-trips every field", func(t *testing.T) {
		repo := newRepo(t)
		data := domain.QuoteData{
			Text:         "line one\nline two with ünïcode",
			AttributedTo: gofakeit.Name(),
			Subjects:     []string{"b", "a", "b"},
		}

		added, err := repo.AddQuote(ctx, data)
		require.NoError(t, err)
		assert.Equal(t, data, added.Data())

		all, err := repo.FindAllQuotes(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, added, all[0])
	})

	t.Run("quote without subjects has an empty list", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.AddQuote(ctx, domain.QuoteData{Text: "t", AttributedTo: "a"})
		require.NoError(t, err)

		all, err := repo.FindAllQuotes(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.NotNil(t, all[0].Subjects)
		assert.Empty(t, all[0].Subjects)
	})

	t.Run("deleted quote is gone and delete is idempotent", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo, 3)

		require.NoError(t, repo.DeleteQuote(ctx, 2))
		require.NoError(t, repo.DeleteQuote(ctx, 2))
		require.NoError(t, repo.DeleteQuote(ctx, 999))

		all, err := repo.FindAllQuotes(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 3}, ids(all))
	})

	t.Run("next id after deleting the newest quote", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo, 3)

		require.NoError(t, repo.DeleteQuote(ctx, 3))

		q, err := repo.AddQuote(ctx, RandomQuoteData())
		require.NoError(t, err)

		if opts.ReusesDeletedMaxID {
			assert.Equal(t, int64(3), q.ID)
		} else {
			assert.Greater(t, q.ID, int64(3))
		}

		all, err := repo.FindAllQuotes(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("filters agree with a full scan", func(t *testing.T) {
		repo := newRepo(t)
		for _, d := range sampledata.Quotes() {
			_, err := repo.AddQuote(ctx, d)
			require.NoError(t, err)
		}

		all, err := repo.FindAllQuotes(ctx)
		require.NoError(t, err)
		require.Len(t, all, len(sampledata.Quotes()))

		for _, subject := range []string{"liberty", "war", "hidden knowledge", "Liberty", "nothing"} {
			got, err := repo.FindBySubject(ctx, subject)
			require.NoError(t, err)
			assert.Equal(t, domain.FilterBySubject(all, subject), got, "subject %q", subject)
		}

		for _, who := range []string{"Ron Paul", "Isaac Newton", "ron paul", "Nobody"} {
			got, err := repo.FindByAttributedTo(ctx, who)
			require.NoError(t, err)
			assert.Equal(t, domain.FilterByAttributedTo(all, who), got, "attributedTo %q", who)
		}

		byNewton, err := repo.FindByAttributedTo(ctx, "Isaac Newton")
		require.NoError(t, err)
		assert.Len(t, byNewton, 3)

		liberty, err := repo.FindBySubject(ctx, "liberty")
		require.NoError(t, err)
		for _, q := range liberty {
			assert.Contains(t, q.Subjects, "liberty")
		}
		// filtering keeps the other subjects of a matching quote
		assert.True(t, slices.ContainsFunc(liberty, func(q domain.Quote) bool { return len(q.Subjects) > 1 }))
	})

	t.Run("genius is patience", func(t *testing.T) {
		repo := newRepo(t)

		q, err := repo.AddQuote(ctx, domain.QuoteData{
			Text:         "Genius is patience",
			AttributedTo: "Isaac Newton",
			Subjects:     []string{"genius"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), q.ID)

		found, err := repo.FindBySubject(ctx, "genius")
		require.NoError(t, err)
		assert.Equal(t, []domain.Quote{q}, found)

		require.NoError(t, repo.DeleteQuote(ctx, q.ID))

		found, err = repo.FindBySubject(ctx, "genius")
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	if opts.Concurrency > 0 {
		t.Run("concurrent adds get distinct ids", func(t *testing.T) {
			repo := newRepo(t)
			n := opts.Concurrency

			var g errgroup.Group
			for range n {
				g.Go(func() error {
					_, err := repo.AddQuote(ctx, RandomQuoteData())
					return err
				})
			}
			require.NoError(t, g.Wait())

			all, err := repo.FindAllQuotes(ctx)
			require.NoError(t, err)

			want := make([]int64, n)
			for i := range want {
				want[i] = int64(i + 1)
			}

			got := ids(all)
			slices.Sort(got)
			assert.Equal(t, want, got)
		})
	}
}

// RandomQuoteData returns a valid quote with fake content.
func RandomQuoteData() domain.QuoteData {
	subjects := make([]string, gofakeit.Number(0, 3))
	for i := range subjects {
		subjects[i] = gofakeit.BuzzWord()
	}

	return domain.QuoteData{
		Text:         gofakeit.Quote(),
		AttributedTo: gofakeit.Name(),
		Subjects:     subjects,
	}
}

func seed(t *testing.T, repo ports.QuoteRepository, n int) {
	t.Helper()

	for range n {
		_, err := repo.AddQuote(context.Background(), RandomQuoteData())
		require.NoError(t, err)
	}
}

func ids(quotes []domain.Quote) []int64 {
	out := make([]int64, len(quotes))
	for i, q := range quotes {
		out[i] = q.ID
	}

	return out
}

package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-service/internal/adapters/repository/memory"
	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/mocks"
	"github.com/jsamuelsen/quote-service/internal/sampledata"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingTransactor records which kind of transaction each call used.
type recordingTransactor struct {
	calls []string
}

func (r *recordingTransactor) WithinTx(ctx context.Context, fn func(context.Context) error) error {
	r.calls = append(r.calls, "rw")
	return fn(ctx)
}

func (r *recordingTransactor) WithinReadOnlyTx(ctx context.Context, fn func(context.Context) error) error {
	r.calls = append(r.calls, "ro")
	return fn(ctx)
}

var newton = domain.Quote{
	ID:           19,
	Text:         "Genius is patience",
	AttributedTo: "Isaac Newton",
	Subjects:     []string{"genius"},
}

func TestNewQuoteService_PanicsWithoutRepository(t *testing.T) {
	assert.Panics(t, func() {
		NewQuoteService(QuoteServiceConfig{Logger: discardLogger()})
	})
}

func TestNewQuoteService_Defaults(t *testing.T) {
	svc := NewQuoteService(QuoteServiceConfig{Repository: mocks.NewMockQuoteRepository(t)})

	require.NotNil(t, svc)
	assert.NotNil(t, svc.tx)
	assert.NotNil(t, svc.logger)
	assert.NotNil(t, svc.intn)
}

func TestQuoteService_Queries(t *testing.T) {
	storeErr := errors.New("database is locked")

	tests := []struct {
		name      string
		setupMock func(*mocks.MockQuoteRepository)
		call      func(*QuoteService) ([]domain.Quote, error)
		want      []domain.Quote
		wantErr   error
	}{
		{
			name: "find all",
			setupMock: func(m *mocks.MockQuoteRepository) {
				m.EXPECT().FindAllQuotes(mock.Anything).Return([]domain.Quote{newton}, nil)
			},
			call: func(s *QuoteService) ([]domain.Quote, error) { return s.FindAllQuotes(context.Background()) },
			want: []domain.Quote{newton},
		},
		{
			name: "find by subject",
			setupMock: func(m *mocks.MockQuoteRepository) {
				m.EXPECT().FindBySubject(mock.Anything, "genius").Return([]domain.Quote{newton}, nil)
			},
			call: func(s *QuoteService) ([]domain.Quote, error) {
				return s.FindBySubject(context.Background(), "genius")
			},
			want: []domain.Quote{newton},
		},
		{
			name: "find by attribution",
			setupMock: func(m *mocks.MockQuoteRepository) {
				m.EXPECT().FindByAttributedTo(mock.Anything, "Isaac Newton").Return([]domain.Quote{newton}, nil)
			},
			call: func(s *QuoteService) ([]domain.Quote, error) {
				return s.FindByAttributedTo(context.Background(), "Isaac Newton")
			},
			want: []domain.Quote{newton},
		},
		{
			name: "store failure propagates",
			setupMock: func(m *mocks.MockQuoteRepository) {
				m.EXPECT().FindAllQuotes(mock.Anything).Return(nil, storeErr)
			},
			call:    func(s *QuoteService) ([]domain.Quote, error) { return s.FindAllQuotes(context.Background()) },
			wantErr: storeErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockQuoteRepository(t)
			tt.setupMock(repo)
			tx := &recordingTransactor{}

			svc := NewQuoteService(QuoteServiceConfig{Repository: repo, Transactor: tx, Logger: discardLogger()})

			got, err := tt.call(svc)

			assert.Equal(t, []string{"ro"}, tx.calls)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuoteService_AddQuote(t *testing.T) {
	data := newton.Data()

	t.Run("stores valid quote in read-write transaction", func(t *testing.T) {
		repo := mocks.NewMockQuoteRepository(t)
		repo.EXPECT().AddQuote(mock.Anything, data).Return(newton, nil)
		tx := &recordingTransactor{}

		svc := NewQuoteService(QuoteServiceConfig{Repository: repo, Transactor: tx, Logger: discardLogger()})

		got, err := svc.AddQuote(context.Background(), data)

		require.NoError(t, err)
		assert.Equal(t, newton, got)
		assert.Equal(t, []string{"rw"}, tx.calls)
	})

	t.Run("invalid quote never reaches the repository", func(t *testing.T) {
		repo := mocks.NewMockQuoteRepository(t)
		tx := &recordingTransactor{}

		svc := NewQuoteService(QuoteServiceConfig{Repository: repo, Transactor: tx, Logger: discardLogger()})

		_, err := svc.AddQuote(context.Background(), domain.QuoteData{AttributedTo: "Isaac Newton"})

		require.True(t, domain.IsValidation(err))
		assert.Empty(t, tx.calls)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		repo := mocks.NewMockQuoteRepository(t)
		repo.EXPECT().AddQuote(mock.Anything, data).Return(domain.Quote{}, errors.New("disk full"))

		svc := NewQuoteService(QuoteServiceConfig{Repository: repo, Logger: discardLogger()})

		_, err := svc.AddQuote(context.Background(), data)
		require.EqualError(t, err, "disk full")
	})
}

func TestQuoteService_DeleteQuote(t *testing.T) {
	repo := mocks.NewMockQuoteRepository(t)
	repo.EXPECT().DeleteQuote(mock.Anything, int64(19)).Return(nil)
	tx := &recordingTransactor{}

	svc := NewQuoteService(QuoteServiceConfig{Repository: repo, Transactor: tx, Logger: discardLogger()})

	require.NoError(t, svc.DeleteQuote(context.Background(), 19))
	assert.Equal(t, []string{"rw"}, tx.calls)
}

func TestQuoteService_RandomQuote(t *testing.T) {
	t.Run("uses the picked index", func(t *testing.T) {
		svc := NewQuoteService(QuoteServiceConfig{
			Repository: memory.NewRepository(memory.NewStore(sampledata.Quotes()...)),
			Logger:     discardLogger(),
			Intn: func(n int) int {
				assert.Equal(t, 30, n)
				return 18
			},
		})

		got, err := svc.RandomQuote(context.Background())

		require.NoError(t, err)
		assert.Equal(t, newton, got)
	})

	t.Run("empty store is not found", func(t *testing.T) {
		svc := NewQuoteService(QuoteServiceConfig{
			Repository: memory.NewRepository(memory.NewStore()),
			Logger:     discardLogger(),
		})

		_, err := svc.RandomQuote(context.Background())
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestQuoteService_LoadSampleQuotes(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository(memory.NewStore())
	svc := NewQuoteService(QuoteServiceConfig{Repository: repo, Logger: discardLogger()})

	n, err := svc.LoadSampleQuotes(ctx, sampledata.Quotes())
	require.NoError(t, err)
	assert.Equal(t, 30, n)

	n, err = svc.LoadSampleQuotes(ctx, sampledata.Quotes())
	require.NoError(t, err)
	assert.Zero(t, n, "a non-empty store is left alone")

	all, err := svc.FindAllQuotes(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 30)
}

func TestQuoteService_EndToEnd(t *testing.T) {
	ctx := context.Background()
	svc := NewQuoteService(QuoteServiceConfig{
		Repository: memory.NewRepository(memory.NewStore()),
		Logger:     discardLogger(),
	})

	added, err := svc.AddQuote(ctx, newton.Data())
	require.NoError(t, err)
	assert.Equal(t, int64(1), added.ID)

	found, err := svc.FindBySubject(ctx, "genius")
	require.NoError(t, err)
	assert.Equal(t, []domain.Quote{added}, found)

	require.NoError(t, svc.DeleteQuote(ctx, added.ID))

	found, err = svc.FindBySubject(ctx, "genius")
	require.NoError(t, err)
	assert.Empty(t, found)
}

package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-service/internal/adapters/repository/repositorytest"
	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/ports"
	"github.com/jsamuelsen/quote-service/internal/sampledata"
)

func TestRepository_Conformance(t *testing.T) {
	repositorytest.Run(t, func(*testing.T) ports.QuoteRepository {
		return NewRepository(NewStore())
	}, repositorytest.Options{ReusesDeletedMaxID: true, Concurrency: 200})
}

func TestNewStore_Seeds(t *testing.T) {
	s := NewStore(sampledata.Quotes()...)

	all := s.FindAll()
	require.Len(t, all, 30)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(30), all[29].ID)
	assert.Equal(t, "Genius is patience", all[18].Text)
}

func TestStore_FindAllOnEmpty(t *testing.T) {
	all := NewStore().FindAll()

	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestStore_KeepsInsertionOrder(t *testing.T) {
	s := NewStore()
	s.Reset(map[int64]domain.Quote{
		5: {Text: "five", AttributedTo: "a"},
		2: {Text: "two", AttributedTo: "a"},
	})

	q := s.Add(domain.QuoteData{Text: "six", AttributedTo: "a"})
	assert.Equal(t, int64(6), q.ID)

	var texts []string
	for _, q := range s.FindAll() {
		texts = append(texts, q.Text)
	}
	assert.Equal(t, []string{"two", "five", "six"}, texts)
}

func TestStore_Reset(t *testing.T) {
	s := NewStore(sampledata.Quotes()...)

	s.Reset(map[int64]domain.Quote{
		7: {ID: 99, Text: "t", AttributedTo: "a", Subjects: []string{"x"}},
	})

	all := s.FindAll()
	require.Len(t, all, 1)
	assert.Equal(t, int64(7), all[0].ID, "id comes from the map key")
	assert.Equal(t, 1, s.Len())

	s.Reset(nil)
	assert.Empty(t, s.FindAll())
	assert.Equal(t, int64(1), s.Add(domain.QuoteData{Text: "t", AttributedTo: "a"}).ID)
}

func TestStore_ReturnedQuotesDoNotAliasState(t *testing.T) {
	s := NewStore()
	added := s.Add(domain.QuoteData{Text: "t", AttributedTo: "a", Subjects: []string{"x"}})
	added.Subjects[0] = "changed"

	found := s.FindAll()
	require.Len(t, found, 1)
	found[0].Subjects[0] = "changed again"

	assert.Equal(t, []string{"x"}, s.FindAll()[0].Subjects)
}

func TestStore_DeleteAbsentLeavesSnapshot(t *testing.T) {
	s := NewStore(domain.QuoteData{Text: "t", AttributedTo: "a"})
	before := s.current.Load()

	s.Delete(42)

	assert.Same(t, before, s.current.Load())
}

func TestStore_ConcurrentAddAndDelete(t *testing.T) {
	s := NewStore()

	const n = 100

	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q := s.Add(domain.QuoteData{Text: "t", AttributedTo: "a"})
			s.Delete(q.ID)
		}()
	}
	wg.Wait()

	// every added quote was deleted by its own goroutine
	assert.Empty(t, s.FindAll())
}

func TestRepository_DelegatesToStore(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(NewStore(sampledata.Quotes()...))

	byTesla, err := repo.FindByAttributedTo(ctx, "Nikola Tesla")
	require.NoError(t, err)
	assert.Len(t, byTesla, 2)

	hidden, err := repo.FindBySubject(ctx, "hidden knowledge")
	require.NoError(t, err)
	assert.Len(t, hidden, 3)

	repo.Store().Reset(nil)
	all, err := repo.FindAllQuotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

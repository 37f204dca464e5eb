// Package memory implements the quote repository on top of a process-wide
// in-memory store.
//
// The store holds an immutable snapshot behind an atomic pointer. Every
// mutation reads the current snapshot, builds the next one and installs it
// with compare-and-swap, retrying when another writer won the race. Readers
// never block and always observe a complete snapshot.
package memory

import (
	"maps"
	"slices"
	"sync/atomic"

	"github.com/jsamuelsen/quote-service/internal/domain"
)

// snapshot is never modified after it is published.
type snapshot struct {
	quotes map[int64]domain.Quote
	order  []int64 // insertion order
}

var emptySnapshot = &snapshot{quotes: map[int64]domain.Quote{}}

// nextID is one more than the largest id in use, or 1 when empty.
// Deleting the largest id therefore makes it available again.
func (s *snapshot) nextID() int64 {
	var maxID int64
	for id := range s.quotes {
		maxID = max(maxID, id)
	}

	return maxID + 1
}

func (s *snapshot) with(q domain.Quote) *snapshot {
	next := &snapshot{
		quotes: maps.Clone(s.quotes),
		order:  append(slices.Clip(s.order), q.ID),
	}
	next.quotes[q.ID] = q

	return next
}

func (s *snapshot) without(id int64) *snapshot {
	next := &snapshot{
		quotes: maps.Clone(s.quotes),
		order:  slices.DeleteFunc(slices.Clone(s.order), func(v int64) bool { return v == id }),
	}
	delete(next.quotes, id)

	return next
}

// Store is the in-memory quote store. The zero value is not usable; call
// NewStore.
type Store struct {
	current atomic.Pointer[snapshot]
}

// NewStore creates a store and adds initial in order, so the first datum
// gets id 1.
func NewStore(initial ...domain.QuoteData) *Store {
	s := &Store{}
	s.current.Store(emptySnapshot)

	for _, d := range initial {
		s.Add(d)
	}

	return s
}

// FindAll returns every quote in insertion order.
func (s *Store) FindAll() []domain.Quote {
	snap := s.current.Load()

	out := make([]domain.Quote, 0, len(snap.order))
	for _, id := range snap.order {
		out = append(out, snap.quotes[id].Clone())
	}

	return out
}

// Add stores data under the next free id and returns the stored quote.
func (s *Store) Add(data domain.QuoteData) domain.Quote {
	for {
		cur := s.current.Load()
		q := domain.NewQuote(cur.nextID(), data)

		if s.current.CompareAndSwap(cur, cur.with(q)) {
			return q.Clone()
		}
	}
}

// Delete removes the quote with id. Deleting an absent id changes nothing.
func (s *Store) Delete(id int64) {
	for {
		cur := s.current.Load()
		if _, ok := cur.quotes[id]; !ok {
			return
		}

		if s.current.CompareAndSwap(cur, cur.without(id)) {
			return
		}
	}
}

// Reset replaces the whole content of the store, ordered by id. Each quote
// takes its id from its key.
func (s *Store) Reset(content map[int64]domain.Quote) {
	next := &snapshot{
		quotes: make(map[int64]domain.Quote, len(content)),
		order:  slices.Sorted(maps.Keys(content)),
	}

	for id, q := range content {
		q = q.Clone()
		q.ID = id
		next.quotes[id] = q
	}

	s.current.Store(next)
}

// Len returns the number of stored quotes.
func (s *Store) Len() int {
	return len(s.current.Load().order)
}

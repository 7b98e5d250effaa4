package service

import (
	"context"
	"errors"
	"sync"

	"github.com/mmcdole/popcorn/internal/adapter"
	"github.com/mmcdole/popcorn/internal/domain"
)

var testLogger = adapter.NullLogger()

// fakeCatalog answers from canned functions and records every call
type fakeCatalog struct {
	mu       sync.Mutex
	search   func(ctx context.Context, query string) ([]domain.SearchResult, error)
	lookup   func(ctx context.Context, id string) (*domain.FilmDetail, error)
	searches []string
	lookups  []string
}

func (f *fakeCatalog) SearchByTitle(ctx context.Context, query string) ([]domain.SearchResult, error) {
	f.mu.Lock()
	f.searches = append(f.searches, query)
	f.mu.Unlock()
	return f.search(ctx, query)
}

func (f *fakeCatalog) LookupByID(ctx context.Context, id string) (*domain.FilmDetail, error) {
	f.mu.Lock()
	f.lookups = append(f.lookups, id)
	f.mu.Unlock()
	return f.lookup(ctx, id)
}

func (f *fakeCatalog) searchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.searches)
}

// memStore is an in-memory domain.WatchListStore
type memStore struct {
	saved   []domain.WatchedEntry
	saves   int
	failErr error
}

func (m *memStore) Load() ([]domain.WatchedEntry, error) {
	out := make([]domain.WatchedEntry, len(m.saved))
	copy(out, m.saved)
	return out, nil
}

func (m *memStore) Save(entries []domain.WatchedEntry) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.saves++
	m.saved = make([]domain.WatchedEntry, len(entries))
	copy(m.saved, entries)
	return nil
}

func (m *memStore) Close() error { return nil }

var errDiskFull = errors.New("disk full")

func results(titles ...string) []domain.SearchResult {
	out := make([]domain.SearchResult, len(titles))
	for i, t := range titles {
		out[i] = domain.SearchResult{ID: "tt" + t, Title: t, Year: "2000"}
	}
	return out
}

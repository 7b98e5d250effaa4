package domain

import "context"

// Catalog is the third-party movie catalog.
// Implementations must honor ctx cancellation and return an error wrapping
// context.Canceled when the request was abandoned.
type Catalog interface {
	// SearchByTitle returns matches in catalog order, or ErrMovieNotFound when there are none
	SearchByTitle(ctx context.Context, query string) ([]SearchResult, error)

	// LookupByID returns the full record for a catalog identifier
	LookupByID(ctx context.Context, id string) (*FilmDetail, error)
}

// WatchListStore persists the watch-list in a single slot.
// Load of an absent slot returns an empty list and no error.
type WatchListStore interface {
	Load() ([]WatchedEntry, error)
	Save(entries []WatchedEntry) error
	Close() error
}

package service

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/popcorn/internal/domain"
)

// WatchListService owns the in-memory watch-list and mirrors every change to
// the store. At rest the in-memory list equals the persisted one.
type WatchListService struct {
	store   domain.WatchListStore
	logger  *slog.Logger
	entries []domain.WatchedEntry
}

// NewWatchListService loads the persisted list and returns a service over it
func NewWatchListService(store domain.WatchListStore, logger *slog.Logger) (*WatchListService, error) {
	if logger == nil {
		logger = slog.Default()
	}

	entries, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading watch-list: %w", err)
	}
	logger.Info("watch-list loaded", "count", len(entries))

	return &WatchListService{
		store:   store,
		logger:  logger,
		entries: entries,
	}, nil
}

// Entries returns a copy of the list in insertion order
func (w *WatchListService) Entries() []domain.WatchedEntry {
	out := make([]domain.WatchedEntry, len(w.entries))
	copy(out, w.entries)
	return out
}

// Len returns the number of entries
func (w *WatchListService) Len() int {
	return len(w.entries)
}

// Add appends entry. Duplicate ids are not rejected.
func (w *WatchListService) Add(entry domain.WatchedEntry) error {
	next := make([]domain.WatchedEntry, len(w.entries), len(w.entries)+1)
	copy(next, w.entries)
	next = append(next, entry)

	if err := w.commit(next); err != nil {
		return fmt.Errorf("adding %s: %w", entry.ID, err)
	}
	w.logger.Info("watch-list add", "id", entry.ID, "title", entry.Title, "rating", entry.RatingUser)
	return nil
}

// Remove deletes every entry with the given id
func (w *WatchListService) Remove(id string) error {
	next := make([]domain.WatchedEntry, 0, len(w.entries))
	for _, e := range w.entries {
		if e.ID != id {
			next = append(next, e)
		}
	}

	if err := w.commit(next); err != nil {
		return fmt.Errorf("removing %s: %w", id, err)
	}
	w.logger.Info("watch-list remove", "id", id, "removed", len(w.entries)-len(next))
	return nil
}

// commit persists next and adopts it only once the save succeeded
func (w *WatchListService) commit(next []domain.WatchedEntry) error {
	if err := w.store.Save(next); err != nil {
		w.logger.Error("watch-list save failed", "error", err)
		return err
	}
	w.entries = next
	return nil
}

// Aggregates summarizes the current list
func (w *WatchListService) Aggregates() domain.Aggregates {
	return domain.ComputeAggregates(w.entries)
}

// Contains reports whether id is in the list
func (w *WatchListService) Contains(id string) bool {
	_, ok := w.UserRating(id)
	return ok
}

// UserRating returns the rating of the first entry with id
func (w *WatchListService) UserRating(id string) (int, bool) {
	for _, e := range w.entries {
		if e.ID == id {
			return e.RatingUser, true
		}
	}
	return 0, false
}

// Filter returns entries whose title fuzzily matches query, best match first.
// An empty query returns the whole list.
func (w *WatchListService) Filter(query string) []domain.WatchedEntry {
	if query == "" {
		return w.Entries()
	}

	titles := make([]string, len(w.entries))
	for i, e := range w.entries {
		titles[i] = e.Title
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.Stable(ranks)

	out := make([]domain.WatchedEntry, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, w.entries[r.OriginalIndex])
	}
	return out
}

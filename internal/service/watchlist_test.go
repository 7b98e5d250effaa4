package service

import (
	"testing"

	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id, title string, imdb float64, user, runtime int) domain.WatchedEntry {
	return domain.WatchedEntry{ID: id, Title: title, RatingExternal: imdb, RatingUser: user, RuntimeMinutes: runtime}
}

func newWatchList(t *testing.T, initial ...domain.WatchedEntry) (*WatchListService, *memStore) {
	t.Helper()
	st := &memStore{saved: initial}
	w, err := NewWatchListService(st, testLogger)
	require.NoError(t, err)
	return w, st
}

func TestWatchListLoadsAtStartup(t *testing.T) {
	w, _ := newWatchList(t, entry("tt1", "Heat", 8.3, 9, 170))
	assert.Equal(t, 1, w.Len())
	assert.Equal(t, "Heat", w.Entries()[0].Title)
}

func TestWatchListAddAppendsAndPersists(t *testing.T) {
	w, st := newWatchList(t, entry("tt1", "Heat", 8.3, 9, 170))

	require.NoError(t, w.Add(entry("tt2", "Ronin", 7.2, 7, 122)))
	require.NoError(t, w.Add(entry("tt3", "Thief", 7.4, 8, 123)))

	ids := []string{}
	for _, e := range w.Entries() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"tt1", "tt2", "tt3"}, ids, "insertion order is display order")
	assert.Equal(t, w.Entries(), st.saved, "memory and store agree at rest")
	assert.Equal(t, 2, st.saves)
}

func TestWatchListAddRemoveRoundTrip(t *testing.T) {
	w, st := newWatchList(t,
		entry("tt1", "Heat", 8.3, 9, 170),
		entry("tt2", "Ronin", 7.2, 7, 122),
	)
	before := w.Entries()

	require.NoError(t, w.Add(entry("tt3", "Thief", 7.4, 8, 123)))
	require.NoError(t, w.Remove("tt3"))

	assert.Equal(t, before, w.Entries())
	assert.Equal(t, before, st.saved)
}

func TestWatchListRemoveDropsAllCopies(t *testing.T) {
	w, _ := newWatchList(t)
	require.NoError(t, w.Add(entry("tt1", "Heat", 8.3, 9, 170)))
	require.NoError(t, w.Add(entry("tt2", "Ronin", 7.2, 7, 122)))
	require.NoError(t, w.Add(entry("tt1", "Heat", 8.3, 5, 170)))
	assert.Equal(t, 3, w.Len(), "duplicate adds are kept")

	require.NoError(t, w.Remove("tt1"))
	assert.Equal(t, []domain.WatchedEntry{entry("tt2", "Ronin", 7.2, 7, 122)}, w.Entries())
}

func TestWatchListSaveFailureRollsBack(t *testing.T) {
	w, st := newWatchList(t, entry("tt1", "Heat", 8.3, 9, 170))
	st.failErr = errDiskFull

	err := w.Add(entry("tt2", "Ronin", 7.2, 7, 122))
	assert.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, 1, w.Len())

	err = w.Remove("tt1")
	assert.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, 1, w.Len())
	assert.Equal(t, st.saved, w.Entries())
}

func TestWatchListEntriesIsACopy(t *testing.T) {
	w, _ := newWatchList(t, entry("tt1", "Heat", 8.3, 9, 170))
	got := w.Entries()
	got[0].Title = "changed"
	assert.Equal(t, "Heat", w.Entries()[0].Title)
}

func TestWatchListAggregates(t *testing.T) {
	w, _ := newWatchList(t)
	assert.Equal(t, domain.Aggregates{}, w.Aggregates())

	require.NoError(t, w.Add(entry("tt1", "Heat", 8.0, 9, 170)))
	require.NoError(t, w.Add(entry("tt2", "Ronin", 7.0, 7, 120)))

	agg := w.Aggregates()
	assert.Equal(t, 2, agg.Count)
	assert.InDelta(t, 7.5, agg.AvgImdbRating, 1e-9)
	assert.InDelta(t, 8.0, agg.AvgUserRating, 1e-9)
	assert.InDelta(t, 145.0, agg.AvgRuntime, 1e-9)

	// Aggregates are derived on every read
	require.NoError(t, w.Remove("tt1"))
	assert.Equal(t, 1, w.Aggregates().Count)
	assert.InDelta(t, 120.0, w.Aggregates().AvgRuntime, 1e-9)
}

func TestWatchListUserRating(t *testing.T) {
	w, _ := newWatchList(t, entry("tt1", "Heat", 8.3, 9, 170))

	rating, ok := w.UserRating("tt1")
	assert.True(t, ok)
	assert.Equal(t, 9, rating)
	assert.True(t, w.Contains("tt1"))
	assert.False(t, w.Contains("tt2"))
}

func TestWatchListFilter(t *testing.T) {
	w, _ := newWatchList(t,
		entry("tt1", "Heat", 8.3, 9, 170),
		entry("tt2", "The Dark Knight", 9.0, 10, 152),
		entry("tt3", "Dark City", 7.6, 8, 100),
	)

	assert.Len(t, w.Filter(""), 3)

	got := w.Filter("dark")
	require.Len(t, got, 2)
	assert.Equal(t, "Dark City", got[0].Title, "closer match ranks first")
	assert.Equal(t, "The Dark Knight", got[1].Title)

	assert.Empty(t, w.Filter("zzz"))
}

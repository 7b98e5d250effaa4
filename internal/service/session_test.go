package service

import (
	"context"
	"testing"

	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batmanCatalog() *fakeCatalog {
	return &fakeCatalog{
		search: func(_ context.Context, q string) ([]domain.SearchResult, error) {
			if q != "batman" {
				return nil, domain.ErrMovieNotFound
			}
			return []domain.SearchResult{
				{ID: "tt0372784", Title: "Batman Begins", Year: "2005"},
				{ID: "tt0096895", Title: "Batman", Year: "1989"},
			}, nil
		},
		lookup: lookupByTable(map[string]*domain.FilmDetail{
			"tt0372784": {ID: "tt0372784", Title: "Batman Begins", RuntimeMinutes: 140, RatingExternal: 8.2, PosterURL: "https://img/1.jpg"},
			"tt0096895": {ID: "tt0096895", Title: "Batman", RuntimeMinutes: 126, RatingExternal: 7.5},
		}),
	}
}

func TestSessionSearchSelectRateAdd(t *testing.T) {
	st, err := store.NewWatchListStore("", "")
	require.NoError(t, err)
	require.NoError(t, st.Save([]domain.WatchedEntry{entry("tt1", "Heat", 8.3, 9, 170)}))

	wl, err := NewWatchListService(st, testLogger)
	require.NoError(t, err)
	s := NewSession(batmanCatalog(), wl, SessionConfig{MinQuery: 3, DefaultTitle: "usePopcorn"}, testLogger)

	// Search
	s.Search.Apply(s.Search.Run(s.Search.SetQuery("batman")))
	res := s.Search.State().Results
	require.Len(t, res, 2)

	// Select the first result
	req := s.Select(res[0].ID)
	require.NotNil(t, req)
	id, open := s.Selection.Active()
	assert.True(t, open)
	assert.Equal(t, "tt0372784", id)
	assert.True(t, s.Detail.State().Loading)

	s.Detail.Apply(s.Detail.Run(req))
	assert.Equal(t, "Title | Batman Begins", s.Title.Current())

	// Rate and add
	require.NoError(t, s.AddSelected(8))
	assert.False(t, s.Selection.IsOpen())
	assert.Equal(t, "usePopcorn", s.Title.Current())

	persisted, err := st.Load()
	require.NoError(t, err)
	require.Len(t, persisted, 2)
	assert.Equal(t, domain.WatchedEntry{
		ID:             "tt0372784",
		PosterURL:      "https://img/1.jpg",
		Title:          "Batman Begins",
		RatingExternal: 8.2,
		RatingUser:     8,
		RuntimeMinutes: 140,
	}, persisted[1])
	assert.Equal(t, wl.Entries(), persisted)
}

func TestSessionSelectToggleClosesDetail(t *testing.T) {
	wl, _ := newWatchList(t)
	s := NewSession(batmanCatalog(), wl, SessionConfig{}, testLogger)

	s.Detail.Apply(s.Detail.Run(s.Select("tt0096895")))
	require.Equal(t, "Title | Batman", s.Title.Current())

	assert.Nil(t, s.Select("tt0096895"))
	assert.False(t, s.Selection.IsOpen())
	assert.Equal(t, DetailState{}, s.Detail.State())
	assert.Equal(t, DefaultTitle, s.Title.Current())
}

func TestSessionSwitchSelectionDropsSlowDetail(t *testing.T) {
	wl, _ := newWatchList(t)
	s := NewSession(batmanCatalog(), wl, SessionConfig{}, testLogger)

	first := s.Select("tt0372784")
	second := s.Select("tt0096895")

	s.Detail.Apply(s.Detail.Run(second))
	s.Detail.Apply(s.Detail.Run(first))
	assert.Equal(t, "Batman", s.Detail.State().Detail.Title)
}

func TestSessionAddRequiresLoadedDetail(t *testing.T) {
	wl, st := newWatchList(t)
	s := NewSession(batmanCatalog(), wl, SessionConfig{}, testLogger)

	assert.ErrorIs(t, s.AddSelected(8), ErrNoDetail)

	s.Select("tt0372784") // still loading
	assert.ErrorIs(t, s.AddSelected(8), ErrNoDetail)
	assert.Equal(t, 0, st.saves)
}

func TestSessionAddRejectsBadRating(t *testing.T) {
	wl, _ := newWatchList(t)
	s := NewSession(batmanCatalog(), wl, SessionConfig{}, testLogger)

	s.Detail.Apply(s.Detail.Run(s.Select("tt0372784")))
	assert.ErrorIs(t, s.AddSelected(0), domain.ErrInvalidRating)
	assert.True(t, s.Selection.IsOpen(), "failed add keeps the detail open")
	assert.Equal(t, 0, wl.Len())
}

func TestSessionAddSaveFailureKeepsDetailOpen(t *testing.T) {
	wl, st := newWatchList(t)
	s := NewSession(batmanCatalog(), wl, SessionConfig{}, testLogger)
	s.Detail.Apply(s.Detail.Run(s.Select("tt0372784")))

	st.failErr = errDiskFull
	assert.ErrorIs(t, s.AddSelected(8), errDiskFull)
	assert.True(t, s.Selection.IsOpen())
	assert.Equal(t, 0, wl.Len())
}

func TestSessionRemove(t *testing.T) {
	wl, st := newWatchList(t, entry("tt1", "Heat", 8.3, 9, 170))
	s := NewSession(batmanCatalog(), wl, SessionConfig{}, testLogger)

	require.NoError(t, s.Remove("tt1"))
	assert.Empty(t, st.saved)
}

func TestSessionShutdown(t *testing.T) {
	wl, _ := newWatchList(t)
	s := NewSession(batmanCatalog(), wl, SessionConfig{}, testLogger)

	search := s.Search.SetQuery("batman")
	detail := s.Select("tt0372784")
	s.Shutdown()

	assert.ErrorIs(t, search.ctx.Err(), context.Canceled)
	assert.ErrorIs(t, detail.ctx.Err(), context.Canceled)
	assert.False(t, s.Search.Apply(s.Search.Run(search)))
	assert.False(t, s.Detail.Apply(s.Detail.Run(detail)))
	assert.Equal(t, DefaultTitle, s.Title.Current())
}

package service

import (
	"context"
	"testing"

	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detailFor(id, title string) *domain.FilmDetail {
	return &domain.FilmDetail{ID: id, Title: title, RuntimeMinutes: 120, RatingExternal: 7.5}
}

func lookupByTable(table map[string]*domain.FilmDetail) func(context.Context, string) (*domain.FilmDetail, error) {
	return func(_ context.Context, id string) (*domain.FilmDetail, error) {
		if d, ok := table[id]; ok {
			return d, nil
		}
		return nil, domain.ErrMovieNotFound
	}
}

func TestTitleScope(t *testing.T) {
	ts := NewTitleScope("")
	assert.Equal(t, "usePopcorn", ts.Current())

	ts.Enter("Heat")
	assert.Equal(t, "Title | Heat", ts.Current())

	ts.Exit()
	ts.Exit()
	assert.Equal(t, "usePopcorn", ts.Current())
}

func TestDetailLoad(t *testing.T) {
	catalog := &fakeCatalog{lookup: lookupByTable(map[string]*domain.FilmDetail{
		"tt1": detailFor("tt1", "Heat"),
	})}
	title := NewTitleScope("Popcorn")
	f := NewDetailFetcher(catalog, title, testLogger)

	req := f.Load("tt1")
	assert.Equal(t, DetailState{ID: "tt1", Loading: true}, f.State())
	assert.Equal(t, "Popcorn", title.Current(), "title changes only once the detail is loaded")

	require.True(t, f.Apply(f.Run(req)))
	st := f.State()
	assert.False(t, st.Loading)
	assert.Equal(t, "Heat", st.Detail.Title)
	assert.Equal(t, "Title | Heat", title.Current())

	f.Reset()
	assert.Equal(t, DetailState{}, f.State())
	assert.Equal(t, "Popcorn", title.Current())
}

func TestDetailNewSelectionReplacesWholesale(t *testing.T) {
	catalog := &fakeCatalog{lookup: lookupByTable(map[string]*domain.FilmDetail{
		"tt1": detailFor("tt1", "Heat"),
		"tt2": {ID: "tt2", Title: "Ronin"},
	})}
	title := NewTitleScope("")
	f := NewDetailFetcher(catalog, title, testLogger)

	f.Apply(f.Run(f.Load("tt1")))
	require.Equal(t, "Title | Heat", title.Current())

	req := f.Load("tt2")
	assert.Nil(t, f.State().Detail, "previous detail is not merged")
	assert.Equal(t, "usePopcorn", title.Current(), "title restored when a different selection loads")

	f.Apply(f.Run(req))
	assert.Equal(t, &domain.FilmDetail{ID: "tt2", Title: "Ronin"}, f.State().Detail)
	assert.Equal(t, "Title | Ronin", title.Current())
}

func TestDetailStaleLookupDiscarded(t *testing.T) {
	catalog := &fakeCatalog{lookup: lookupByTable(map[string]*domain.FilmDetail{
		"tt1": detailFor("tt1", "Heat"),
		"tt2": detailFor("tt2", "Ronin"),
	})}
	title := NewTitleScope("")
	f := NewDetailFetcher(catalog, title, testLogger)

	first := f.Load("tt1")
	second := f.Load("tt2")
	assert.ErrorIs(t, first.ctx.Err(), context.Canceled)

	assert.True(t, f.Apply(f.Run(second)))
	assert.False(t, f.Apply(f.Run(first)))
	assert.Equal(t, "Ronin", f.State().Detail.Title)
	assert.Equal(t, "Title | Ronin", title.Current())
}

func TestDetailFailureSurfaced(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", domain.ErrMovieNotFound, "movie not found"},
		{"network", domain.ErrNetwork, "network problem"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := &fakeCatalog{lookup: func(context.Context, string) (*domain.FilmDetail, error) {
				return nil, tt.err
			}}
			title := NewTitleScope("")
			f := NewDetailFetcher(catalog, title, testLogger)

			assert.True(t, f.Apply(f.Run(f.Load("tt9"))))
			st := f.State()
			assert.Equal(t, tt.want, st.Err)
			assert.False(t, st.Loading)
			assert.Nil(t, st.Detail)
			assert.Equal(t, "usePopcorn", title.Current())
		})
	}
}

func TestDetailCancelledLookupIgnored(t *testing.T) {
	catalog := &fakeCatalog{lookup: func(ctx context.Context, _ string) (*domain.FilmDetail, error) {
		return nil, context.Canceled
	}}
	f := NewDetailFetcher(catalog, nil, testLogger)

	req := f.Load("tt1")
	assert.False(t, f.Apply(f.Run(req)))
	assert.True(t, f.State().Loading)
}

package domain

import (
	"strconv"
	"strings"
)

// SearchResult is a single catalog match for a title search
type SearchResult struct {
	ID        string // Catalog identifier (imdb id)
	Title     string
	Year      string
	PosterURL string
}

// FilmDetail holds the full catalog record for one title
type FilmDetail struct {
	ID             string
	Title          string
	Year           string
	PosterURL      string
	RuntimeMinutes int     // Parsed from "<N> min"; 0 when unknown
	RatingExternal float64 // Catalog (IMDb) rating on a 0-10 scale; 0 when unknown
	Plot           string
	Released       string
	Actors         string
	Director       string
	Genre          string
}

// WatchedEntry is a rated title kept in the persistent watch-list.
// JSON tags define the persisted format.
type WatchedEntry struct {
	ID             string  `json:"imdbID"`
	PosterURL      string  `json:"poster"`
	Title          string  `json:"title"`
	RatingExternal float64 `json:"imdbRating"`
	RatingUser     int     `json:"userRating"`
	RuntimeMinutes int     `json:"runtime"`
}

// Rating bounds for RatingUser
const (
	MinUserRating = 1
	MaxUserRating = 10
)

// NewWatchedEntry builds a watch-list entry from an open detail and a user rating
func NewWatchedEntry(detail FilmDetail, userRating int) (WatchedEntry, error) {
	if userRating < MinUserRating || userRating > MaxUserRating {
		return WatchedEntry{}, ErrInvalidRating
	}
	return WatchedEntry{
		ID:             detail.ID,
		PosterURL:      detail.PosterURL,
		Title:          detail.Title,
		RatingExternal: detail.RatingExternal,
		RatingUser:     userRating,
		RuntimeMinutes: detail.RuntimeMinutes,
	}, nil
}

// Aggregates summarizes a watch-list
type Aggregates struct {
	Count         int
	AvgImdbRating float64
	AvgUserRating float64
	AvgRuntime    float64
}

// ComputeAggregates derives summary statistics over entries.
// The mean of an empty list is 0.
func ComputeAggregates(entries []WatchedEntry) Aggregates {
	agg := Aggregates{Count: len(entries)}
	if len(entries) == 0 {
		return agg
	}

	n := float64(len(entries))
	for _, e := range entries {
		agg.AvgImdbRating += e.RatingExternal / n
		agg.AvgUserRating += float64(e.RatingUser) / n
		agg.AvgRuntime += float64(e.RuntimeMinutes) / n
	}
	return agg
}

// ParseRuntime converts a "<N> min" display string to whole minutes.
// Unknown values such as "N/A" yield 0.
func ParseRuntime(s string) int {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseRating converts a catalog rating string ("7.8") to a number.
// Unknown values such as "N/A" yield 0.
func ParseRating(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

package omdb

import "github.com/mmcdole/popcorn/internal/domain"

// notAvailable is the catalog's placeholder for a missing field
const notAvailable = "N/A"

// MapSearchResults converts search items to domain results, keeping catalog order
func MapSearchResults(items []SearchItem) []domain.SearchResult {
	results := make([]domain.SearchResult, 0, len(items))
	for _, it := range items {
		results = append(results, domain.SearchResult{
			ID:        it.ImdbID,
			Title:     it.Title,
			Year:      it.Year,
			PosterURL: posterURL(it.Poster),
		})
	}
	return results
}

// MapDetail converts a lookup reply to a domain detail record
func MapDetail(d DetailResponse) *domain.FilmDetail {
	return &domain.FilmDetail{
		ID:             d.ImdbID,
		Title:          d.Title,
		Year:           d.Year,
		PosterURL:      posterURL(d.Poster),
		RuntimeMinutes: domain.ParseRuntime(d.Runtime),
		RatingExternal: domain.ParseRating(d.ImdbRating),
		Plot:           d.Plot,
		Released:       d.Released,
		Actors:         d.Actors,
		Director:       d.Director,
		Genre:          d.Genre,
	}
}

func posterURL(p string) string {
	if p == notAvailable {
		return ""
	}
	return p
}

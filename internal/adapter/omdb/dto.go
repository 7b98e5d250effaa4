package omdb

// SearchResponse is the catalog reply to a title search (s=)
type SearchResponse struct {
	Response     string       `json:"Response"`
	Error        string       `json:"Error,omitempty"`
	TotalResults string       `json:"totalResults,omitempty"`
	Search       []SearchItem `json:"Search,omitempty"`
}

// SearchItem is one match in a SearchResponse
type SearchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	Poster string `json:"Poster"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type,omitempty"`
}

// DetailResponse is the catalog reply to an identifier lookup (i=)
type DetailResponse struct {
	Response   string `json:"Response"`
	Error      string `json:"Error,omitempty"`
	ImdbID     string `json:"imdbID"`
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Poster     string `json:"Poster"`
	Runtime    string `json:"Runtime"`
	ImdbRating string `json:"imdbRating"`
	Plot       string `json:"Plot"`
	Released   string `json:"Released"`
	Actors     string `json:"Actors"`
	Director   string `json:"Director"`
	Genre      string `json:"Genre"`
}

// isHit reports whether the catalog flagged the reply as a hit
func isHit(response string) bool {
	return response == "True"
}

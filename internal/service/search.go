package service

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/mmcdole/popcorn/internal/domain"
)

// DefaultMinQuery is the shortest trimmed query that reaches the catalog
const DefaultMinQuery = 3

// SearchState is the observable state of the search pipeline
type SearchState struct {
	Loading bool
	Err     string // User-visible message; empty when no error
	Results []domain.SearchResult
}

// SearchView identifies which of loading, error or results the UI shows
type SearchView int

const (
	SearchViewResults SearchView = iota
	SearchViewLoading
	SearchViewError
)

// View returns the single area the presentation renders. Error wins over
// loading, which wins over results.
func (s SearchState) View() SearchView {
	switch {
	case s.Err != "":
		return SearchViewError
	case s.Loading:
		return SearchViewLoading
	default:
		return SearchViewResults
	}
}

// SearchRequest is one issued catalog lookup, tagged with its generation
type SearchRequest struct {
	Query string
	gen   uint64
	ctx   context.Context
}

// SearchOutcome is the settled result of a SearchRequest
type SearchOutcome struct {
	Query   string
	Results []domain.SearchResult
	Err     error
	gen     uint64
}

// SearchPipeline owns the query text and the single live catalog search.
// SetQuery, Apply and Cancel must be called from one goroutine (the UI loop);
// Run may be called from any goroutine.
type SearchPipeline struct {
	catalog  domain.Catalog
	logger   *slog.Logger
	minQuery int

	query  string
	gen    uint64
	cancel context.CancelFunc
	state  SearchState
}

// NewSearchPipeline creates a new search pipeline
func NewSearchPipeline(catalog domain.Catalog, minQuery int, logger *slog.Logger) *SearchPipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if minQuery < 1 {
		minQuery = DefaultMinQuery
	}
	return &SearchPipeline{
		catalog:  catalog,
		logger:   logger,
		minQuery: minQuery,
	}
}

// Query returns the current query text
func (p *SearchPipeline) Query() string {
	return p.query
}

// Valid reports whether the current query is long enough to search
func (p *SearchPipeline) Valid() bool {
	return p.isValid(p.query)
}

func (p *SearchPipeline) isValid(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) >= p.minQuery
}

// State returns the current search state
func (p *SearchPipeline) State() SearchState {
	return p.state
}

// SetQuery updates the query and supersedes any in-flight search.
// It returns the request to run, or nil when the query is too short and the
// state was cleared synchronously.
func (p *SearchPipeline) SetQuery(text string) *SearchRequest {
	p.query = text
	p.supersede()

	if !p.isValid(text) {
		p.state = SearchState{}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.state = SearchState{Loading: true}

	query := strings.TrimSpace(text)
	p.logger.Debug("search issued", "query", query, "gen", p.gen)
	return &SearchRequest{Query: query, gen: p.gen, ctx: ctx}
}

// Run performs the catalog search for req. It never touches pipeline state.
func (p *SearchPipeline) Run(req *SearchRequest) SearchOutcome {
	results, err := p.catalog.SearchByTitle(req.ctx, req.Query)
	if err == nil && len(results) == 0 {
		err = domain.ErrMovieNotFound
	}
	return SearchOutcome{Query: req.Query, Results: results, Err: err, gen: req.gen}
}

// Apply folds a settled outcome into the state. Outcomes from superseded or
// cancelled requests are discarded; Apply reports whether state changed.
func (p *SearchPipeline) Apply(out SearchOutcome) bool {
	if out.gen != p.gen {
		p.logger.Debug("discarding stale search", "query", out.Query, "gen", out.gen, "current", p.gen)
		return false
	}
	if domain.IsCancelled(out.Err) {
		p.logger.Debug("search cancelled", "query", out.Query)
		return false
	}

	p.release()

	if out.Err != nil {
		p.logger.Warn("search failed", "query", out.Query, "error", out.Err)
		p.state = SearchState{Err: domain.UserMessage(out.Err)}
		return true
	}

	p.logger.Debug("search complete", "query", out.Query, "results", len(out.Results))
	p.state = SearchState{Results: out.Results}
	return true
}

// Cancel abandons any in-flight search without touching state
func (p *SearchPipeline) Cancel() {
	p.supersede()
}

// supersede cancels the live request and moves to a new generation
func (p *SearchPipeline) supersede() {
	p.release()
	p.gen++
}

// release frees the context of a request that completed
func (p *SearchPipeline) release() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

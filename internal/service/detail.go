package service

import (
	"context"
	"log/slog"

	"github.com/mmcdole/popcorn/internal/domain"
)

// DefaultTitle is the window title shown while no detail is open
const DefaultTitle = "usePopcorn"

// TitleScope holds the window title. Enter sets it for a loaded detail and
// Exit restores the default; Exit is safe to call in any state.
type TitleScope struct {
	defaultTitle string
	title        string
}

// NewTitleScope creates a title scope showing defaultTitle
func NewTitleScope(defaultTitle string) *TitleScope {
	if defaultTitle == "" {
		defaultTitle = DefaultTitle
	}
	return &TitleScope{defaultTitle: defaultTitle}
}

// Enter shows name as the current title
func (t *TitleScope) Enter(name string) {
	t.title = "Title | " + name
}

// Exit restores the default title
func (t *TitleScope) Exit() {
	t.title = ""
}

// Current returns the title to display
func (t *TitleScope) Current() string {
	if t.title == "" {
		return t.defaultTitle
	}
	return t.title
}

// DetailState is the observable state of the detail fetcher
type DetailState struct {
	ID      string
	Loading bool
	Err     string
	Detail  *domain.FilmDetail
}

// DetailRequest is one issued lookup, tagged with its generation
type DetailRequest struct {
	ID  string
	gen uint64
	ctx context.Context
}

// DetailOutcome is the settled result of a DetailRequest
type DetailOutcome struct {
	ID     string
	Detail *domain.FilmDetail
	Err    error
	gen    uint64
}

// DetailFetcher loads full details for the selected identifier. It follows the
// same generation discipline as SearchPipeline, so a slow lookup for an earlier
// selection never overwrites a newer one.
type DetailFetcher struct {
	catalog domain.Catalog
	title   *TitleScope
	logger  *slog.Logger

	gen    uint64
	cancel context.CancelFunc
	state  DetailState
}

// NewDetailFetcher creates a new detail fetcher
func NewDetailFetcher(catalog domain.Catalog, title *TitleScope, logger *slog.Logger) *DetailFetcher {
	if logger == nil {
		logger = slog.Default()
	}
	if title == nil {
		title = NewTitleScope("")
	}
	return &DetailFetcher{
		catalog: catalog,
		title:   title,
		logger:  logger,
	}
}

// State returns the current detail state
func (f *DetailFetcher) State() DetailState {
	return f.state
}

// Load starts fetching id, replacing whatever detail was shown
func (f *DetailFetcher) Load(id string) *DetailRequest {
	f.Reset()

	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	f.state = DetailState{ID: id, Loading: true}

	f.logger.Debug("detail fetch issued", "id", id, "gen", f.gen)
	return &DetailRequest{ID: id, gen: f.gen, ctx: ctx}
}

// Run performs the lookup for req. It never touches fetcher state.
func (f *DetailFetcher) Run(req *DetailRequest) DetailOutcome {
	detail, err := f.catalog.LookupByID(req.ctx, req.ID)
	return DetailOutcome{ID: req.ID, Detail: detail, Err: err, gen: req.gen}
}

// Apply folds a settled outcome into the state, discarding superseded or
// cancelled outcomes. It reports whether state changed.
func (f *DetailFetcher) Apply(out DetailOutcome) bool {
	if out.gen != f.gen {
		f.logger.Debug("discarding stale detail", "id", out.ID, "gen", out.gen, "current", f.gen)
		return false
	}
	if domain.IsCancelled(out.Err) {
		return false
	}

	f.release()

	if out.Err != nil {
		f.logger.Warn("detail fetch failed", "id", out.ID, "error", out.Err)
		f.state = DetailState{ID: out.ID, Err: domain.UserMessage(out.Err)}
		return true
	}

	f.state = DetailState{ID: out.ID, Detail: out.Detail}
	f.title.Enter(out.Detail.Title)
	return true
}

// Reset abandons any in-flight lookup, clears the detail and restores the title
func (f *DetailFetcher) Reset() {
	f.release()
	f.gen++
	f.state = DetailState{}
	f.title.Exit()
}

func (f *DetailFetcher) release() {
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

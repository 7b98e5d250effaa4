package service

import (
	"errors"
	"log/slog"

	"github.com/mmcdole/popcorn/internal/domain"
)

// ErrNoDetail indicates an add was attempted without a loaded detail
var ErrNoDetail = errors.New("no film detail is open")

// Session ties the search pipeline, selection, detail fetcher and watch-list
// together for one run of the application
type Session struct {
	Search    *SearchPipeline
	Detail    *DetailFetcher
	Selection *Selection
	WatchList *WatchListService
	Title     *TitleScope

	logger *slog.Logger
}

// SessionConfig holds session tuning
type SessionConfig struct {
	MinQuery     int
	DefaultTitle string
}

// NewSession creates a new session
func NewSession(catalog domain.Catalog, watchList *WatchListService, cfg SessionConfig, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	title := NewTitleScope(cfg.DefaultTitle)
	return &Session{
		Search:    NewSearchPipeline(catalog, cfg.MinQuery, logger),
		Detail:    NewDetailFetcher(catalog, title, logger),
		Selection: &Selection{},
		WatchList: watchList,
		Title:     title,
		logger:    logger,
	}
}

// Select toggles id and returns the detail request to run when it opened
func (s *Session) Select(id string) *DetailRequest {
	if !s.Selection.Select(id) {
		s.Detail.Reset()
		return nil
	}
	return s.Detail.Load(id)
}

// CloseDetail closes the selection and restores the title
func (s *Session) CloseDetail() {
	s.Selection.Close()
	s.Detail.Reset()
}

// AddSelected rates the open detail, appends it to the watch-list and closes
// the selection
func (s *Session) AddSelected(userRating int) error {
	id, open := s.Selection.Active()
	st := s.Detail.State()
	if !open || st.Detail == nil || st.ID != id {
		return ErrNoDetail
	}

	entry, err := domain.NewWatchedEntry(*st.Detail, userRating)
	if err != nil {
		return err
	}
	entry.ID = id
	if err := s.WatchList.Add(entry); err != nil {
		return err
	}

	s.CloseDetail()
	return nil
}

// Remove deletes id from the watch-list
func (s *Session) Remove(id string) error {
	return s.WatchList.Remove(id)
}

// Shutdown abandons in-flight requests and restores the title
func (s *Session) Shutdown() {
	s.Search.Cancel()
	s.CloseDetail()
	s.logger.Debug("session shut down")
}

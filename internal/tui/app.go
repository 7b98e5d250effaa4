package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/service"
	"github.com/mmcdole/popcorn/internal/tui/components"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

// Pane identifies the pane holding keyboard focus
type Pane int

const (
	PaneSearch Pane = iota
	PaneResults
	PaneDetail
	PaneWatched
)

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool
	Focus Pane

	// Session owns all domain state; the model only renders it
	Session *service.Session

	// UI Components
	SearchBar components.SearchBar
	Results   components.ResultsList
	Detail    components.DetailPanel
	Watched   components.WatchedPanel
	Spinner   spinner.Model

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool
	statusSeq   int
	windowTitle string

	logger *slog.Logger
}

// NewModel creates a new application model
func NewModel(session *service.Session, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	m := Model{
		State:     StateBrowsing,
		Focus:     PaneSearch,
		Session:   session,
		SearchBar: components.NewSearchBar(),
		Results:   components.NewResultsList(),
		Detail:    components.NewDetailPanel(),
		Watched:   components.NewWatchedPanel(),
		Spinner:   sp,
		logger:    logger,
	}
	m.syncViews()
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.Spinner.Tick,
		SetTitleCmd(m.Session.Title.Current()),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncViews()

	// The window title follows the detail scope
	if title := next.Session.Title.Current(); title != next.windowTitle {
		next.windowTitle = title
		cmd = tea.Batch(cmd, SetTitleCmd(title))
	}
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case SearchDoneMsg:
		if !m.Session.Search.Apply(msg.Outcome) {
			m.logger.Debug("search outcome ignored", "query", msg.Outcome.Query)
		}
		return m, nil

	case DetailDoneMsg:
		if !m.Session.Detail.Apply(msg.Outcome) {
			m.logger.Debug("detail outcome ignored", "id", msg.Outcome.ID)
		}
		return m, nil

	case StatusMsg:
		return m.setStatus(msg.Message, msg.IsError)

	case ClearStatusMsg:
		if msg.seq == m.statusSeq {
			m.StatusMsg = ""
			m.StatusIsErr = false
		}
		return m, nil
	}

	// Cursor blink and other input-internal messages
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.SearchBar, cmd, _ = m.SearchBar.Update(msg)
	cmds = append(cmds, cmd)
	m.Watched, cmd, _ = m.Watched.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// handleKeyMsg routes key presses to the focused pane
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, Keys.Force) {
		return m.quit()
	}

	if m.State == StateHelp {
		m.State = StateBrowsing
		return m, nil
	}

	switch {
	case key.Matches(msg, Keys.NextPane):
		cmd := m.setFocus(m.nextPane(1))
		return m, cmd
	case key.Matches(msg, Keys.PrevPane):
		cmd := m.setFocus(m.nextPane(-1))
		return m, cmd
	}

	switch m.Focus {
	case PaneSearch:
		return m.handleSearchKeys(msg)
	case PaneResults:
		return m.handleResultsKeys(msg)
	case PaneDetail:
		return m.handleDetailKeys(msg)
	case PaneWatched:
		return m.handleWatchedKeys(msg)
	}
	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyDown, tea.KeyEsc:
		cmd := m.setFocus(PaneResults)
		return m, cmd
	}

	var cmd tea.Cmd
	var changed bool
	m.SearchBar, cmd, changed = m.SearchBar.Update(msg)
	if !changed {
		return m, cmd
	}

	req := m.Session.Search.SetQuery(m.SearchBar.Value())
	return m, tea.Batch(cmd, SearchCmd(m.Session.Search, req))
}

// handleCommonKeys handles keys shared by non-typing panes
func (m Model) handleCommonKeys(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, Keys.Quit):
		next, cmd := m.quit()
		return next, cmd, true
	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil, true
	case key.Matches(msg, Keys.Search):
		cmd := m.setFocus(PaneSearch)
		return m, cmd, true
	}
	return m, nil, false
}

func (m Model) handleResultsKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	if next, cmd, ok := m.handleCommonKeys(msg); ok {
		return next, cmd
	}

	switch {
	case key.Matches(msg, Keys.Open):
		sel, ok := m.Results.Selected()
		if !ok {
			return m, nil
		}
		req := m.Session.Select(sel.ID)
		if req == nil {
			return m, nil
		}
		focus := m.setFocus(PaneDetail)
		return m, tea.Batch(focus, DetailCmd(m.Session.Detail, req))

	case key.Matches(msg, Keys.Back):
		if m.Session.Selection.IsOpen() {
			m.Session.CloseDetail()
			return m, nil
		}
		cmd := m.setFocus(PaneSearch)
		return m, cmd
	}

	var cmd tea.Cmd
	m.Results, cmd = m.Results.Update(msg)
	return m, cmd
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	if next, cmd, ok := m.handleCommonKeys(msg); ok {
		return next, cmd
	}

	switch {
	case key.Matches(msg, Keys.Back):
		m.Session.CloseDetail()
		cmd := m.setFocus(PaneResults)
		return m, cmd

	case key.Matches(msg, Keys.Add):
		if !m.Detail.CanAdd() {
			return m, nil
		}
		title := ""
		if d := m.Session.Detail.State().Detail; d != nil {
			title = d.Title
		}
		if err := m.Session.AddSelected(m.Detail.Rating()); err != nil {
			m.logger.Error("add to watch-list failed", "error", err)
			return m.setStatus(errorText(err), true)
		}
		m.setFocus(PaneResults)
		return m.setStatus(fmt.Sprintf("Added %s to your list", title), false)
	}

	var cmd tea.Cmd
	m.Detail, cmd = m.Detail.Update(msg)
	return m, cmd
}

func (m Model) handleWatchedKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.Watched.IsFilterTyping() {
		if next, cmd, ok := m.handleCommonKeys(msg); ok {
			return next, cmd
		}

		if key.Matches(msg, Keys.Remove) {
			entry, ok := m.Watched.Selected()
			if !ok {
				return m, nil
			}
			if err := m.Session.Remove(entry.ID); err != nil {
				m.logger.Error("remove from watch-list failed", "error", err)
				return m.setStatus(errorText(err), true)
			}
			return m.setStatus(fmt.Sprintf("Removed %s", entry.Title), false)
		}
	}

	var cmd tea.Cmd
	m.Watched, cmd, _ = m.Watched.Update(msg)
	return m, cmd
}

// quit cancels in-flight work before leaving the event loop
func (m Model) quit() (Model, tea.Cmd) {
	m.Session.Shutdown()
	return m, tea.Quit
}

// rightPane is the pane beside the results: the detail when a selection is
// open, the watch-list otherwise
func (m Model) rightPane() Pane {
	if m.Session.Selection.IsOpen() {
		return PaneDetail
	}
	return PaneWatched
}

func (m Model) nextPane(step int) Pane {
	order := []Pane{PaneSearch, PaneResults, m.rightPane()}
	idx := 0
	for i, p := range order {
		if p == m.Focus {
			idx = i
		}
	}
	return order[(idx+step+len(order))%len(order)]
}

// setFocus moves keyboard focus to p
func (m *Model) setFocus(p Pane) tea.Cmd {
	m.Focus = p
	m.Results.SetFocused(p == PaneResults)
	m.Detail.SetFocused(p == PaneDetail)
	m.Watched.SetFocused(p == PaneWatched)

	if p == PaneSearch {
		return m.SearchBar.Focus()
	}
	m.SearchBar.Blur()
	return nil
}

// setStatus shows a temporary status message
func (m Model) setStatus(text string, isErr bool) (Model, tea.Cmd) {
	m.statusSeq++
	m.StatusMsg = text
	m.StatusIsErr = isErr
	delay := 3 * time.Second
	if isErr {
		delay = 5 * time.Second
	}
	return m, ClearStatusCmd(m.statusSeq, delay)
}

// syncViews copies session state into the components
func (m *Model) syncViews() {
	sp := m.Spinner.View()

	st := m.Session.Search.State()
	m.Results.SetResults(st.Results)
	m.Results.SetLoading(st.Loading, sp)
	m.Results.SetError(st.Err)

	activeID, open := m.Session.Selection.Active()
	if !open {
		activeID = ""
	}
	m.Results.SetActive(activeID)

	ds := m.Session.Detail.State()
	m.Detail.SetDetail(ds.Detail)
	m.Detail.SetLoading(ds.Loading, sp)
	m.Detail.SetError(ds.Err)
	rating, watched := m.Session.WatchList.UserRating(ds.ID)
	m.Detail.SetWatched(rating, watched)

	m.Watched.SetSummary(m.Session.WatchList.Aggregates())
	m.Watched.SetEntries(m.Session.WatchList.Filter(m.Watched.FilterQuery()))

	// Focus can't stay on a pane that is no longer shown
	if m.Focus == PaneDetail && !open {
		m.setFocus(PaneResults)
	} else if m.Focus == PaneWatched && open {
		m.setFocus(PaneDetail)
	}
}

// errorText maps a mutation error to its status line text
func errorText(err error) string {
	if errors.Is(err, service.ErrNoDetail) {
		return err.Error()
	}
	return domain.UserMessage(err)
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/popcorn/internal/service"
)

// Command factories for async operations. Each runs the blocking half of a
// request off the UI loop; the loop applies the outcome.

// SearchCmd runs a catalog search
func SearchCmd(p *service.SearchPipeline, req *service.SearchRequest) tea.Cmd {
	if req == nil {
		return nil
	}
	return func() tea.Msg {
		return SearchDoneMsg{Outcome: p.Run(req)}
	}
}

// DetailCmd runs a detail lookup
func DetailCmd(f *service.DetailFetcher, req *service.DetailRequest) tea.Cmd {
	if req == nil {
		return nil
	}
	return func() tea.Msg {
		return DetailDoneMsg{Outcome: f.Run(req)}
	}
}

// SetTitleCmd sets the terminal window title
func SetTitleCmd(title string) tea.Cmd {
	return tea.SetWindowTitle(title)
}

// ClearStatusCmd clears the status message after a delay. seq ties the
// clear to the message it was issued for.
func ClearStatusCmd(seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{seq: seq}
	})
}

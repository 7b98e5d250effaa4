package tui

import (
	"github.com/mmcdole/popcorn/internal/service"
)

// Message types for the TUI

// SearchDoneMsg carries a settled catalog search back to the UI loop
type SearchDoneMsg struct {
	Outcome service.SearchOutcome
}

// DetailDoneMsg carries a settled detail lookup back to the UI loop
type DetailDoneMsg struct {
	Outcome service.DetailOutcome
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct {
	seq int
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}

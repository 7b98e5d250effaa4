package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// Layout constants for bordered panes
const (
	// Border adds 1 char on each side (left+right for width, top+bottom for height)
	BorderWidth  = 2
	BorderHeight = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2
)

// listCursor tracks the cursor and scroll window of a vertical list
type listCursor struct {
	cursor     int
	offset     int
	maxVisible int
}

// handleKey moves the cursor over count rows. It reports whether the key
// was a navigation key.
func (l *listCursor) handleKey(msg tea.KeyMsg, count int) bool {
	if count == 0 {
		return false
	}

	switch {
	case key.Matches(msg, listKeys.Down):
		if l.cursor < count-1 {
			l.cursor++
		}
	case key.Matches(msg, listKeys.Up):
		if l.cursor > 0 {
			l.cursor--
		}
	case key.Matches(msg, listKeys.Home):
		l.cursor = 0
	case key.Matches(msg, listKeys.End):
		l.cursor = count - 1
	case key.Matches(msg, listKeys.HalfDown):
		l.cursor = min(l.cursor+max(l.maxVisible/2, 1), count-1)
	case key.Matches(msg, listKeys.HalfUp):
		l.cursor = max(l.cursor-max(l.maxVisible/2, 1), 0)
	default:
		return false
	}
	l.ensureVisible()
	return true
}

// clamp keeps the cursor inside a list that may have shrunk
func (l *listCursor) clamp(count int) {
	if l.cursor >= count {
		l.cursor = max(count-1, 0)
	}
	if l.offset > l.cursor {
		l.offset = l.cursor
	}
	l.ensureVisible()
}

func (l *listCursor) reset() {
	l.cursor = 0
	l.offset = 0
}

func (l *listCursor) setMaxVisible(n int) {
	l.maxVisible = max(n, 1)
	l.ensureVisible()
}

func (l *listCursor) ensureVisible() {
	// Size not set yet
	if l.maxVisible <= 0 {
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.maxVisible {
		l.offset = l.cursor - l.maxVisible + 1
	}
}

// window returns the visible [start, end) rows of count
func (l *listCursor) window(count int) (int, int) {
	end := min(l.offset+l.maxVisible, count)
	return l.offset, end
}

// scrollHints returns the header and footer lines for a window. Both lines
// are always present so the layout doesn't shift.
func scrollHints(start, end, count int) (string, string) {
	header := " "
	if start > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if end < count {
		footer = styles.DimStyle.Render("↓ more")
	}
	return header, footer
}

// pane renders content inside a bordered box of exactly width x height
func pane(content string, width, height int, focused bool) string {
	style := styles.InactiveBorder
	if focused {
		style = styles.ActiveBorder
	}
	frameW, frameH := style.GetFrameSize()
	return style.
		Width(max(width-frameW, 0)).
		Height(max(height-frameH, 0)).
		Render(content)
}

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// summaryLines is the height of the summary block above the list
const summaryLines = 3

// WatchedPanel shows the watch-list summary and entries, with an inline
// title filter
type WatchedPanel struct {
	summary domain.Aggregates
	entries []domain.WatchedEntry
	nav     listCursor

	filterActive bool
	filterInput  textinput.Model

	width   int
	height  int
	focused bool
}

// NewWatchedPanel creates an empty watched panel
func NewWatchedPanel() WatchedPanel {
	ti := textinput.New()
	ti.Placeholder = "Filter..."
	ti.CharLimit = 50
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return WatchedPanel{filterInput: ti}
}

// SetSummary sets the aggregate figures
func (w *WatchedPanel) SetSummary(summary domain.Aggregates) {
	w.summary = summary
}

// SetEntries sets the visible entries, already filtered
func (w *WatchedPanel) SetEntries(entries []domain.WatchedEntry) {
	w.entries = entries
	w.nav.clamp(len(entries))
}

// SetSize sets the outer size including border
func (w *WatchedPanel) SetSize(width, height int) {
	w.width = width
	w.height = height
	w.recalcMaxVisible()
}

// SetFocused sets keyboard focus
func (w *WatchedPanel) SetFocused(focused bool) {
	w.focused = focused
}

// Selected returns the entry under the cursor
func (w WatchedPanel) Selected() (domain.WatchedEntry, bool) {
	if w.nav.cursor < 0 || w.nav.cursor >= len(w.entries) {
		return domain.WatchedEntry{}, false
	}
	return w.entries[w.nav.cursor], true
}

// FilterQuery returns the current filter text, empty when no filter is active
func (w WatchedPanel) FilterQuery() string {
	if !w.filterActive {
		return ""
	}
	return w.filterInput.Value()
}

// IsFilterTyping returns true if the filter input has focus
func (w WatchedPanel) IsFilterTyping() bool {
	return w.filterActive && w.filterInput.Focused()
}

// Update handles navigation and filter keys while focused. The bool reports
// whether the filter query changed.
func (w WatchedPanel) Update(msg tea.Msg) (WatchedPanel, tea.Cmd, bool) {
	if !w.focused {
		return w, nil, false
	}
	keyMsg, isKey := msg.(tea.KeyMsg)

	// Typing into the filter
	if w.IsFilterTyping() {
		if isKey {
			switch {
			case key.Matches(keyMsg, filterKeys.Clear):
				w.clearFilter()
				return w, nil, true
			case key.Matches(keyMsg, filterKeys.Accept):
				w.filterInput.Blur()
				return w, nil, false
			case keyMsg.String() == "backspace" && w.filterInput.Value() == "":
				w.clearFilter()
				return w, nil, true
			}
		}
		before := w.filterInput.Value()
		var cmd tea.Cmd
		w.filterInput, cmd = w.filterInput.Update(msg)
		changed := w.filterInput.Value() != before
		if changed {
			w.nav.reset()
		}
		return w, cmd, changed
	}

	if !isKey {
		return w, nil, false
	}

	switch {
	case key.Matches(keyMsg, filterKeys.Start):
		w.filterActive = true
		w.recalcMaxVisible()
		return w, w.filterInput.Focus(), false
	case w.filterActive && key.Matches(keyMsg, filterKeys.Clear):
		w.clearFilter()
		return w, nil, true
	}

	w.nav.handleKey(keyMsg, len(w.entries))
	return w, nil, false
}

// View renders the panel
func (w WatchedPanel) View() string {
	return pane(w.renderContent(), w.width, w.height, w.focused)
}

func (w *WatchedPanel) clearFilter() {
	w.filterActive = false
	w.filterInput.SetValue("")
	w.filterInput.Blur()
	w.nav.reset()
	w.recalcMaxVisible()
}

func (w *WatchedPanel) recalcMaxVisible() {
	n := w.height - BorderHeight - summaryLines - ScrollIndicatorLines
	if w.filterActive {
		n--
	}
	w.nav.setMaxVisible(n)
}

func (w WatchedPanel) renderContent() string {
	itemWidth := max(w.width-BorderWidth, 20)

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("MOVIES YOU WATCHED") + "\n")
	b.WriteString(SummaryText(w.summary) + "\n")
	b.WriteString(" \n")

	query := w.FilterQuery()
	count := len(w.entries)
	if count == 0 {
		empty := "Rate a movie to add it here"
		if query != "" {
			empty = "No matches"
		}
		b.WriteString(styles.DimStyle.Render(empty))
	} else {
		start, end := w.nav.window(count)
		header, footer := scrollHints(start, end, count)
		lines := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			lines = append(lines, w.renderEntry(w.entries[i], query, w.focused && i == w.nav.cursor, itemWidth))
		}
		b.WriteString(header + "\n" + strings.Join(lines, "\n") + "\n" + footer)
	}

	if w.filterActive {
		b.WriteString("\n" + w.renderFilterBar())
	}
	return b.String()
}

func (w WatchedPanel) renderEntry(e domain.WatchedEntry, query string, selected bool, width int) string {
	stats := fmt.Sprintf("⭐ %.1f  🌟 %d  ⏳ %d min", e.RatingExternal, e.RatingUser, e.RuntimeMinutes)
	statsFg := styles.DimGray
	titleWidth := max(width-lipgloss.Width(stats)-5, 5)

	title := styles.Truncate(e.Title, titleWidth)
	titleText := highlightMatches(title, matchIndexes(query, title), selected)
	pad := strings.Repeat(" ", max(titleWidth-lipgloss.Width(title), 0))

	parts := []styles.RowPart{
		{Text: titleText, Raw: true},
		{Text: pad + " "},
		{Text: stats, Foreground: &statsFg},
	}
	return styles.RenderListRow(parts, selected, width)
}

func (w WatchedPanel) renderFilterBar() string {
	return styles.FilterPromptStyle.Render("/") + " " + w.filterInput.View()
}

// SummaryText formats watch-list aggregates with two decimals
func SummaryText(a domain.Aggregates) string {
	return fmt.Sprintf("#️⃣ %d movies   ⭐ %.2f   🌟 %.2f   ⏳ %.2f min",
		a.Count, a.AvgImdbRating, a.AvgUserRating, a.AvgRuntime)
}

package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// ResultsList shows catalog search results, or the loader or error that
// replaces them
type ResultsList struct {
	results []domain.SearchResult
	nav     listCursor

	loading bool
	spinner string
	err     string

	// Identifier of the open detail, marked in the list
	activeID string

	width   int
	height  int
	focused bool
}

// NewResultsList creates an empty results list
func NewResultsList() ResultsList {
	return ResultsList{}
}

// SetResults replaces the results. The cursor returns to the top when the
// set changes.
func (r *ResultsList) SetResults(results []domain.SearchResult) {
	if !sameResults(r.results, results) {
		r.nav.reset()
	}
	r.results = results
	r.nav.clamp(len(results))
}

// SetLoading toggles the loader
func (r *ResultsList) SetLoading(loading bool, spinner string) {
	r.loading = loading
	r.spinner = spinner
}

// SetError sets the message shown instead of results
func (r *ResultsList) SetError(msg string) {
	r.err = msg
}

// SetActive marks the result whose detail is open
func (r *ResultsList) SetActive(id string) {
	r.activeID = id
}

// SetSize sets the outer size including border
func (r *ResultsList) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.nav.setMaxVisible(height - BorderHeight - ScrollIndicatorLines)
}

// SetFocused sets keyboard focus
func (r *ResultsList) SetFocused(focused bool) {
	r.focused = focused
}

// IsFocused returns whether the list has focus
func (r ResultsList) IsFocused() bool {
	return r.focused
}

// Len returns the number of results
func (r ResultsList) Len() int {
	return len(r.results)
}

// Selected returns the result under the cursor. Nothing is selectable while
// the loader or an error is shown.
func (r ResultsList) Selected() (domain.SearchResult, bool) {
	if r.loading || r.err != "" {
		return domain.SearchResult{}, false
	}
	if r.nav.cursor < 0 || r.nav.cursor >= len(r.results) {
		return domain.SearchResult{}, false
	}
	return r.results[r.nav.cursor], true
}

// Update handles navigation while focused
func (r ResultsList) Update(msg tea.Msg) (ResultsList, tea.Cmd) {
	if !r.focused {
		return r, nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		r.nav.handleKey(keyMsg, len(r.results))
	}
	return r, nil
}

// View renders the list
func (r ResultsList) View() string {
	return pane(r.renderContent(), r.width, r.height, r.focused)
}

func (r ResultsList) renderContent() string {
	itemWidth := max(r.width-BorderWidth, 10)

	switch {
	case r.err != "":
		return " \n" + styles.ErrorStyle.Render("⛔ "+styles.Truncate(r.err, itemWidth-3))
	case r.loading:
		return " \n" + styles.DimStyle.Render(r.spinner+" Loading...")
	case len(r.results) == 0:
		return " \n" + styles.DimStyle.Render("Search for a movie by title")
	}

	start, end := r.nav.window(len(r.results))
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, r.renderItem(r.results[i], i == r.nav.cursor, itemWidth))
	}

	header, footer := scrollHints(start, end, len(r.results))
	return header + "\n" + strings.Join(lines, "\n") + "\n" + footer
}

func (r ResultsList) renderItem(item domain.SearchResult, selected bool, width int) string {
	marker := "  "
	markerFg := styles.Kernel
	if item.ID != "" && item.ID == r.activeID {
		marker = "▸ "
	}

	year := "🗓 " + item.Year
	yearFg := styles.DimGray
	titleWidth := max(width-lipgloss.Width(marker)-lipgloss.Width(year)-4, 5)
	title := styles.Pad(styles.Truncate(item.Title, titleWidth), titleWidth)

	parts := []styles.RowPart{
		{Text: marker, Foreground: &markerFg},
		{Text: title},
		{Text: " " + year, Foreground: &yearFg},
	}
	return styles.RenderListRow(parts, selected, width)
}

// FoundText is the navbar result count
func FoundText(n int) string {
	return fmt.Sprintf("Found %d results", n)
}

func sameResults(a, b []domain.SearchResult) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

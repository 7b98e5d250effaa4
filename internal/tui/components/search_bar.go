package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// SearchBar is the navbar query input
type SearchBar struct {
	input textinput.Model
	width int
}

// NewSearchBar creates a focused search bar
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search movies..."
	ti.CharLimit = 100
	ti.Width = 30
	ti.Prompt = "/ "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(styles.Kernel).Background(styles.PopcornDim)
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White).Background(styles.PopcornDim)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.LightGray).Background(styles.PopcornDim)
	ti.Focus()

	return SearchBar{input: ti, width: 32}
}

// Focus gives the bar keyboard focus
func (s *SearchBar) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur removes keyboard focus
func (s *SearchBar) Blur() {
	s.input.Blur()
}

// Focused returns whether the bar receives keystrokes
func (s SearchBar) Focused() bool {
	return s.input.Focused()
}

// Value returns the raw query text
func (s SearchBar) Value() string {
	return s.input.Value()
}

// SetWidth sets the rendered width including the prompt
func (s *SearchBar) SetWidth(width int) {
	s.width = max(width, 12)
	s.input.Width = s.width - lipgloss.Width(s.input.Prompt) - 1
}

// Update routes input events to the text field and reports whether the
// value changed
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd, bool) {
	if !s.input.Focused() {
		return s, nil, false
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, s.input.Value() != before
}

// View renders the bar
func (s SearchBar) View() string {
	return lipgloss.NewStyle().
		Background(styles.PopcornDim).
		Width(s.width).
		Render(s.input.View())
}

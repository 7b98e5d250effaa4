package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/popcorn/internal/tui/components"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	right := m.Watched.View()
	if m.Session.Selection.IsOpen() {
		right = m.Detail.View()
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, m.Results.View(), right)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderNavbar(),
		content,
		m.renderFooter(),
	)
}

// renderNavbar renders the logo, search bar and result count
func (m Model) renderNavbar() string {
	logo := styles.LogoStyle.Render("🍿 usePopcorn")
	search := m.SearchBar.View()
	count := styles.NumResultsStyle.Render(components.FoundText(m.Results.Len()))

	// Padding(0, 1) on the bar
	inner := m.Width - 2
	available := inner - lipgloss.Width(logo) - lipgloss.Width(search) - lipgloss.Width(count)
	if available < 2 {
		return styles.NavbarStyle.Width(m.Width).Render(logo + " " + count)
	}

	leftPad := available / 2
	rightPad := available - leftPad
	gap := lipgloss.NewStyle().Background(styles.Popcorn)
	line := logo + gap.Render(strings.Repeat(" ", leftPad)) + search + gap.Render(strings.Repeat(" ", rightPad)) + count
	return styles.NavbarStyle.Width(m.Width).Render(line)
}

// renderFooter renders the status line and pane hints
func (m Model) renderFooter() string {
	// Left side: status message
	var left string
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.SuccessStyle.Render(m.StatusMsg)
		}
	}

	// Center section: hints for the focused pane
	center := m.paneHints()

	right := styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	if leftWidth+centerWidth+rightWidth >= m.Width {
		// Not enough space: just left + right
		gap := max(m.Width-leftWidth-rightWidth, 0)
		return left + strings.Repeat(" ", gap) + right
	}

	available := m.Width - leftWidth - rightWidth
	leftPad := (available - centerWidth) / 2
	rightPad := available - centerWidth - leftPad

	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}

func (m Model) paneHints() string {
	hint := func(k, desc string) string {
		return styles.HelpKeyStyle.Render(k) + styles.HelpDescStyle.Render(" "+desc)
	}

	var hints []string
	switch m.Focus {
	case PaneSearch:
		hints = []string{hint("enter", "results"), hint("tab", "next pane")}
	case PaneResults:
		hints = []string{hint("enter", "details"), hint("s", "search")}
	case PaneDetail:
		hints = []string{hint("←/→", "stars"), hint("enter", "rate")}
		if m.Detail.CanAdd() {
			hints = append(hints, hint("a", "add"))
		}
		hints = append(hints, hint("esc", "back"))
	case PaneWatched:
		hints = []string{hint("/", "filter"), hint("x", "remove")}
	}
	return strings.Join(hints, "  ")
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
SEARCH                          DETAILS
  s          Focus search          h/l        Fewer/more stars
  Enter/Esc  Leave search          Enter      Confirm rating
  Tab        Next pane             1-9, 0     Rate directly (0 = 10)
  Shift+Tab  Previous pane         a          Add to list
                                   Esc        Back
RESULTS
  j/k        Up/down             WATCHED
  g/G        First/last item       /          Filter by title
  Ctrl+u/d   Half page             x          Remove from list
  Enter      Open/close details
                                OTHER
                                   q          Quit
                                   ?          This help

Press any key to return...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}

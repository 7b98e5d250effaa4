package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Popcorn    = lipgloss.Color("#6741D9")
	PopcornDim = lipgloss.Color("#5B37C2")
	Kernel     = lipgloss.Color("#FCC419")
	SlateDark  = lipgloss.Color("#212529")
	SlateLight = lipgloss.Color("#343A40")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#ADB5BD")
	White      = lipgloss.Color("#DEE2E6")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#FA5252")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Popcorn)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Kernel)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)
)

// Navbar styles
var (
	NavbarStyle = lipgloss.NewStyle().
			Background(Popcorn).
			Foreground(White).
			Padding(0, 1)

	LogoStyle = lipgloss.NewStyle().
			Background(Popcorn).
			Foreground(White).
			Bold(true)

	NumResultsStyle = lipgloss.NewStyle().
			Background(Popcorn).
			Foreground(White)
)

// List item styles
var (
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(SlateLight).
				Padding(0, 1)

	NormalItemStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)
)

// Star rating characters
const (
	StarFullChar  = "★"
	StarEmptyChar = "☆"
)

// Star styles
var (
	StarFullStyle  = lipgloss.NewStyle().Foreground(Kernel)
	StarEmptyStyle = lipgloss.NewStyle().Foreground(DimGray)
)

// Button style for the add-to-list action
var (
	ButtonStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Popcorn).
			Padding(0, 2)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Popcorn).
			Padding(1, 2).
			Background(SlateDark)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Kernel)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Spinner style
var (
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(Kernel)
)

// Filter styles
var (
	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(Kernel).
				Bold(true)
)

// Match highlight styles for filtered titles
var (
	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(Kernel).
				Bold(true)

	MatchHighlightSelectedStyle = lipgloss.NewStyle().
					Foreground(Kernel).
					Background(SlateLight).
					Bold(true)
)

// Helper functions

// Truncate truncates a string to the given display width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

// Pad pads a string with spaces to the given display width
func Pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + spaces(width-w)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// RenderStars renders total stars with the first filled ones highlighted
func RenderStars(filled, total int) string {
	var out string
	for i := 1; i <= total; i++ {
		if i <= filled {
			out += StarFullStyle.Render(StarFullChar)
		} else {
			out += StarEmptyStyle.Render(StarEmptyChar)
		}
	}
	return out
}

// RenderListRow renders a list row with a uniform background when selected.
// Each part is styled on its own so ANSI resets don't clear the row background.
func RenderListRow(parts []RowPart, selected bool, width int) string {
	bg := SlateLight
	defaultFg := LightGray
	selectedFg := White

	var result string
	visibleLen := 0

	for _, part := range parts {
		style := lipgloss.NewStyle()
		if part.Foreground != nil {
			style = style.Foreground(*part.Foreground)
		} else if selected {
			style = style.Foreground(selectedFg)
		} else {
			style = style.Foreground(defaultFg)
		}
		if selected {
			style = style.Background(bg)
		}
		if part.Raw {
			result += part.Text
		} else {
			result += style.Render(part.Text)
		}
		visibleLen += lipgloss.Width(part.Text)
	}

	// Fill width, minus left/right margin
	paddingNeeded := width - visibleLen - 2
	if paddingNeeded > 0 {
		padStyle := lipgloss.NewStyle()
		if selected {
			padStyle = padStyle.Background(bg)
		}
		result += padStyle.Render(spaces(paddingNeeded))
	}

	marginStyle := lipgloss.NewStyle()
	if selected {
		marginStyle = marginStyle.Background(bg)
	}
	margin := marginStyle.Render(" ")

	return margin + result + margin
}

// RowPart is one segment of a row with an optional foreground color.
// Raw parts are already styled and written as-is.
type RowPart struct {
	Text       string
	Foreground *lipgloss.Color
	Raw        bool
}

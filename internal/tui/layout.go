package tui

// Layout proportions
const (
	// Results list share of the content width; the detail or watched pane
	// takes the rest
	ResultsColumnPercent = 45

	// Search bar share of the navbar width
	SearchBarPercent = 40

	MinColumnWidth = 24

	// Vertical layout: navbar line + footer line
	ChromeHeight = 2
)

// columnLayout holds calculated widths for the View
type columnLayout struct {
	resultsWidth int
	rightWidth   int
	searchWidth  int
}

// calculateLayout computes widths from the available terminal width
func (m Model) calculateLayout(availableWidth int) columnLayout {
	results := max(availableWidth*ResultsColumnPercent/100, MinColumnWidth)
	if results > availableWidth-MinColumnWidth {
		// Too narrow for two minimum columns: split evenly
		results = availableWidth / 2
	}
	return columnLayout{
		resultsWidth: results,
		rightWidth:   availableWidth - results,
		searchWidth:  availableWidth * SearchBarPercent / 100,
	}
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	contentHeight := max(m.Height-ChromeHeight, 3)
	layout := m.calculateLayout(m.Width)

	m.SearchBar.SetWidth(layout.searchWidth)
	m.Results.SetSize(layout.resultsWidth, contentHeight)
	m.Detail.SetSize(layout.rightWidth, contentHeight)
	m.Watched.SetSize(layout.rightWidth, contentHeight)
}

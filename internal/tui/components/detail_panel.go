package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// DetailPanel shows the open film detail with the rating picker, or the
// rating already given when the film is on the watch-list
type DetailPanel struct {
	detail  *domain.FilmDetail
	loading bool
	spinner string
	err     string

	rating      StarRating
	watched     bool
	watchedRate int

	width   int
	height  int
	focused bool
}

// NewDetailPanel creates an empty detail panel
func NewDetailPanel() DetailPanel {
	return DetailPanel{rating: NewStarRating(domain.MaxUserRating)}
}

// SetDetail sets the loaded detail. A different film resets the picker.
func (d *DetailPanel) SetDetail(detail *domain.FilmDetail) {
	if detail == nil || d.detail == nil || detail.ID != d.detail.ID {
		d.rating.Reset()
	}
	d.detail = detail
}

// SetLoading toggles the loader
func (d *DetailPanel) SetLoading(loading bool, spinner string) {
	d.loading = loading
	d.spinner = spinner
}

// SetError sets the message shown instead of the detail
func (d *DetailPanel) SetError(msg string) {
	d.err = msg
}

// SetWatched records the rating the user gave when the film is already
// on the watch-list
func (d *DetailPanel) SetWatched(rating int, watched bool) {
	d.watched = watched
	d.watchedRate = rating
}

// SetSize sets the outer size including border
func (d *DetailPanel) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// SetFocused sets keyboard focus
func (d *DetailPanel) SetFocused(focused bool) {
	d.focused = focused
}

// Rating returns the chosen rating, 0 when none was chosen
func (d DetailPanel) Rating() int {
	return d.rating.Value()
}

// CanAdd reports whether the add action is offered
func (d DetailPanel) CanAdd() bool {
	return d.detail != nil && !d.loading && !d.watched && d.rating.Value() > 0
}

// Update routes picker keys while focused
func (d DetailPanel) Update(msg tea.Msg) (DetailPanel, tea.Cmd) {
	if !d.focused || d.detail == nil || d.loading || d.watched {
		return d, nil
	}
	d.rating, _ = d.rating.Update(msg)
	return d, nil
}

// View renders the panel
func (d DetailPanel) View() string {
	return pane(d.renderContent(), d.width, d.height, d.focused)
}

func (d DetailPanel) renderContent() string {
	contentWidth := max(d.width-BorderWidth-2, 10)
	back := styles.DimStyle.Render("← back (esc)")

	switch {
	case d.err != "":
		return back + "\n\n" + styles.ErrorStyle.Render("⛔ "+d.err)
	case d.loading:
		return back + "\n\n" + styles.DimStyle.Render(d.spinner+" Loading...")
	case d.detail == nil:
		return back
	}

	f := d.detail
	var b strings.Builder
	b.WriteString(back + "\n\n")
	b.WriteString(styles.TitleStyle.Render(styles.Truncate(f.Title, contentWidth)) + "\n")

	meta := f.Released
	if f.RuntimeMinutes > 0 {
		meta = strings.TrimSpace(fmt.Sprintf("%s • %d min", meta, f.RuntimeMinutes))
	}
	b.WriteString(styles.SubtitleStyle.Render(meta) + "\n")
	if f.Genre != "" {
		b.WriteString(styles.SubtitleStyle.Render(f.Genre) + "\n")
	}
	b.WriteString(styles.AccentStyle.Render("⭐") + styles.SubtitleStyle.Render(fmt.Sprintf(" %.1f IMDb rating", f.RatingExternal)) + "\n\n")

	if d.watched {
		b.WriteString(styles.AccentStyle.Render(fmt.Sprintf("You rated this movie %d ⭐", d.watchedRate)) + "\n")
	} else {
		b.WriteString(d.rating.View() + "\n")
		if d.CanAdd() {
			b.WriteString(styles.ButtonStyle.Render("+ Add to list") + styles.DimStyle.Render("  (a)") + "\n")
		} else {
			b.WriteString(styles.DimStyle.Render("Rate it to add it to your list") + "\n")
		}
	}
	b.WriteString("\n")

	if f.Plot != "" {
		b.WriteString(styles.SubtitleStyle.Width(contentWidth).Render(f.Plot) + "\n\n")
	}
	if f.Actors != "" {
		b.WriteString(styles.DimStyle.Width(contentWidth).Render("Starring "+f.Actors) + "\n")
	}
	if f.Director != "" {
		b.WriteString(styles.DimStyle.Render("Directed by "+f.Director))
	}
	return b.String()
}

package components

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// StarRating is a 1..max star picker. The hover position previews a
// rating, confirming it makes it the value.
type StarRating struct {
	max   int
	value int
	hover int
}

// NewStarRating creates a picker with the given number of stars and no rating
func NewStarRating(stars int) StarRating {
	return StarRating{max: stars}
}

// Value returns the confirmed rating, 0 when none was chosen
func (s StarRating) Value() int {
	return s.value
}

// Hover returns the previewed rating
func (s StarRating) Hover() int {
	return s.hover
}

// Reset clears the rating
func (s *StarRating) Reset() {
	s.value = 0
	s.hover = 0
}

// Update handles picker keys and reports whether the confirmed value changed.
// Digit keys rate directly, with 0 meaning the top rating.
func (s StarRating) Update(msg tea.Msg) (StarRating, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, false
	}

	before := s.value
	switch {
	case key.Matches(keyMsg, ratingKeys.Less):
		s.hover = max(s.hover-1, 1)
	case key.Matches(keyMsg, ratingKeys.More):
		s.hover = min(s.hover+1, s.max)
	case key.Matches(keyMsg, ratingKeys.Confirm):
		if s.hover > 0 {
			s.value = s.hover
		}
	default:
		if n, ok := digitRating(keyMsg.String(), s.max); ok {
			s.hover = n
			s.value = n
		}
	}
	return s, s.value != before
}

// View renders the stars and the shown number
func (s StarRating) View() string {
	shown := s.value
	if s.hover > 0 {
		shown = s.hover
	}
	label := " "
	if shown > 0 {
		label = strconv.Itoa(shown)
	}
	return styles.RenderStars(shown, s.max) + "  " + styles.AccentStyle.Render(label)
}

func digitRating(k string, top int) (int, bool) {
	if len(k) != 1 || k[0] < '0' || k[0] > '9' {
		return 0, false
	}
	n := int(k[0] - '0')
	if n == 0 {
		n = 10
	}
	if n > top {
		return 0, false
	}
	return n, true
}

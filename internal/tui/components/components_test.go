package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/stretchr/testify/assert"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStarRatingDigits(t *testing.T) {
	tests := []struct {
		key  string
		want int
	}{
		{"1", 1},
		{"7", 7},
		{"0", 10},
		{"x", 0},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			s := NewStarRating(domain.MaxUserRating)
			s, changed := s.Update(runes(tt.key))
			assert.Equal(t, tt.want, s.Value())
			assert.Equal(t, tt.want != 0, changed)
		})
	}
}

func TestStarRatingHoverStaysInRange(t *testing.T) {
	s := NewStarRating(3)

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, s.Hover())

	for i := 0; i < 5; i++ {
		s, _ = s.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	assert.Equal(t, 3, s.Hover())
	assert.Equal(t, 0, s.Value())

	s, changed := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, changed)
	assert.Equal(t, 3, s.Value())

	s.Reset()
	assert.Equal(t, StarRating{max: 3}, s)
}

func TestMatchIndexes(t *testing.T) {
	assert.Nil(t, matchIndexes("", "Heat"))
	assert.Nil(t, matchIndexes("zz", "Heat"))
	assert.Equal(t, []int{0, 1}, matchIndexes("HE", "heat"))
	assert.Equal(t, []int{0, 1, 2}, matchIndexes("ron", "Ronin"))
}

func TestSummaryTextTwoDecimals(t *testing.T) {
	got := SummaryText(domain.Aggregates{Count: 3, AvgImdbRating: 7.666666, AvgUserRating: 8, AvgRuntime: 131.5})
	assert.Equal(t, "#️⃣ 3 movies   ⭐ 7.67   🌟 8.00   ⏳ 131.50 min", got)
}

func TestResultsListKeepsCursorForSameResults(t *testing.T) {
	r := NewResultsList()
	r.SetSize(40, 10)
	r.SetFocused(true)
	r.SetResults([]domain.SearchResult{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	r, _ = r.Update(runes("j"))
	r, _ = r.Update(runes("j"))
	sel, ok := r.Selected()
	assert.True(t, ok)
	assert.Equal(t, "c", sel.ID)

	// Same ids: cursor stays
	r.SetResults([]domain.SearchResult{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	sel, _ = r.Selected()
	assert.Equal(t, "c", sel.ID)

	// New set: back to the top
	r.SetResults([]domain.SearchResult{{ID: "x"}, {ID: "y"}})
	sel, _ = r.Selected()
	assert.Equal(t, "x", sel.ID)

	r.SetResults(nil)
	_, ok = r.Selected()
	assert.False(t, ok)
}

func TestResultsListNothingSelectableWhileHidden(t *testing.T) {
	r := NewResultsList()
	r.SetResults([]domain.SearchResult{{ID: "a"}})

	r.SetLoading(true, "*")
	_, ok := r.Selected()
	assert.False(t, ok)

	r.SetLoading(false, "")
	r.SetError("network problem")
	_, ok = r.Selected()
	assert.False(t, ok)

	r.SetError("")
	_, ok = r.Selected()
	assert.True(t, ok)
}

func TestFoundText(t *testing.T) {
	assert.Equal(t, "Found 0 results", FoundText(0))
	assert.Equal(t, "Found 10 results", FoundText(10))
}

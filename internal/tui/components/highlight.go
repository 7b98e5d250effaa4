package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/popcorn/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

// matchIndexes returns the byte offsets in text matched by query
func matchIndexes(query, text string) []int {
	if query == "" {
		return nil
	}
	matches := fuzzy.Find(strings.ToLower(query), []string{strings.ToLower(text)})
	if len(matches) == 0 {
		return nil
	}
	return matches[0].MatchedIndexes
}

// highlightMatches renders text with the matched byte offsets emphasized.
// Consecutive runes with the same match state are rendered as one batch.
func highlightMatches(text string, matchedIndexes []int, selected bool) string {
	normal := lipgloss.NewStyle().Foreground(styles.LightGray)
	match := styles.MatchHighlightStyle
	if selected {
		normal = lipgloss.NewStyle().Foreground(styles.White).Background(styles.SlateLight)
		match = styles.MatchHighlightSelectedStyle
	}
	if len(matchedIndexes) == 0 {
		return normal.Render(text)
	}

	matchSet := make(map[int]bool, len(matchedIndexes))
	for _, idx := range matchedIndexes {
		matchSet[idx] = true
	}

	var result, batch strings.Builder
	batchMatch := false
	flush := func() {
		if batch.Len() == 0 {
			return
		}
		if batchMatch {
			result.WriteString(match.Render(batch.String()))
		} else {
			result.WriteString(normal.Render(batch.String()))
		}
		batch.Reset()
	}

	for i, r := range text {
		if matchSet[i] != batchMatch {
			flush()
			batchMatch = matchSet[i]
		}
		batch.WriteRune(r)
	}
	flush()

	return result.String()
}

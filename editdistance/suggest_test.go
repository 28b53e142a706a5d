package editdistance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestBasic(t *testing.T) {
	candidates := []string{"paris", "bordeaux", "marseille"}
	got := Suggest("pariss", candidates, DefaultSuggestOptions())
	assert.NotEmpty(t, got)
	assert.Equal(t, "paris", got[0].Value)
}

func TestSuggestNoMatchesBelowThreshold(t *testing.T) {
	got := Suggest("xyz", []string{"abc", "def"}, DefaultSuggestOptions())
	assert.Empty(t, got)
}

func TestSuggestEmptyCandidates(t *testing.T) {
	got := Suggest("anything", nil, DefaultSuggestOptions())
	assert.Empty(t, got)
}

func TestSuggestRespectsMaxSuggestions(t *testing.T) {
	candidates := []string{"paris", "paris1", "paris2", "paris3"}
	got := Suggest("paris", candidates, SuggestOptions{MinScore: 0.5, MaxSuggestions: 2, CaseFold: true})
	assert.Len(t, got, 2)
}

func TestSuggestOrderingTieBreaksAlphabetically(t *testing.T) {
	// "ab" vs "ac" and "ab" vs "ad" both have score 0.5 (distance 1 / len 2).
	got := Suggest("ab", []string{"ad", "ac"}, SuggestOptions{MinScore: 0.1, MaxSuggestions: 2, CaseFold: true})
	assert.Equal(t, []Suggestion{{Value: "ac", Score: 0.5}, {Value: "ad", Score: 0.5}}, got)
}

package editdistance

import "strings"

// Suggestion is a ranked fuzzy-match result returned by Suggest, used by the
// engine's admin diagnostics surface ("did you mean...?") — it never
// participates in Search scoring.
type Suggestion struct {
	Value string
	Score float64
}

// SuggestOptions configures Suggest's ranking behavior.
type SuggestOptions struct {
	MinScore       float64
	MaxSuggestions int
	CaseFold       bool
}

// DefaultSuggestOptions returns {MinScore: 0.6, MaxSuggestions: 3, CaseFold: true}.
func DefaultSuggestOptions() SuggestOptions {
	return SuggestOptions{MinScore: 0.6, MaxSuggestions: 3, CaseFold: true}
}

type scoredCandidate struct {
	value string
	score float64
}

// Suggest ranks candidates against input by normalized edit-distance score,
// filters by MinScore, and returns the top MaxSuggestions (score descending,
// then alphabetically for ties).
func Suggest(input string, candidates []string, opts SuggestOptions) []Suggestion {
	minScore := opts.MinScore
	if minScore == 0 {
		minScore = 0.6
	}
	maxSuggestions := opts.MaxSuggestions
	if maxSuggestions == 0 {
		maxSuggestions = 3
	}

	if len(candidates) == 0 {
		return []Suggestion{}
	}

	normInput := input
	if opts.CaseFold {
		normInput = strings.ToLower(strings.TrimSpace(input))
	}

	scored := make([]scoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		normCandidate := candidate
		if opts.CaseFold {
			normCandidate = strings.ToLower(strings.TrimSpace(candidate))
		}
		score := Score(normInput, normCandidate)
		if score >= minScore {
			scored = append(scored, scoredCandidate{value: candidate, score: score})
		}
	}

	if len(scored) == 0 {
		return []Suggestion{}
	}

	for i := 1; i < len(scored); i++ {
		key := scored[i]
		j := i - 1
		for j >= 0 && shouldSwap(scored[j], key) {
			scored[j+1] = scored[j]
			j--
		}
		scored[j+1] = key
	}

	limit := maxSuggestions
	if limit > len(scored) {
		limit = len(scored)
	}

	results := make([]Suggestion, limit)
	for i := 0; i < limit; i++ {
		results[i] = Suggestion{Value: scored[i].value, Score: scored[i].score}
	}
	return results
}

func shouldSwap(a, b scoredCandidate) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	return a.value > b.value
}

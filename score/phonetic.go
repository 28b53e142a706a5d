package score

import (
	"strings"

	"github.com/fulmenhq/meilirank/model"
)

// EditDistance is the narrow surface PhoneticScorer needs for its bounded
// tolerant-regime comparison (spec §4.5).
type EditDistance interface {
	Distance(a, b string, ceiling int) int
}

// PhoneticResult is the PhoneticScorer's output (spec §4.5). A nil *PhoneticResult
// from Phonetic means "no phonetic score" (either soundex form was empty).
type PhoneticResult struct {
	Score     float64
	MatchType model.MatchType
	Tolerant  bool
	Details   model.PhoneticDetails
}

func phoneticTokens(s string) []string {
	out := make([]string, 0)
	for _, tok := range strings.Fields(s) {
		if len(tok) > 1 {
			out = append(out, tok)
		}
	}
	return out
}

// matchTokens greedily assigns each query token to an unused candidate
// token (spec §4.5 "match").
func matchTokens(dist EditDistance, qTokens, cTokens []string, tolerant bool) int {
	used := make([]bool, len(cTokens))
	matched := 0

	for _, q := range qTokens {
		for i, c := range cTokens {
			if used[i] {
				continue
			}
			if q == c {
				used[i] = true
				matched++
				break
			}
			minLen := len(q)
			if len(c) < minLen {
				minLen = len(c)
			}
			if (strings.HasPrefix(q, c) || strings.HasPrefix(c, q)) && minLen >= 4 {
				used[i] = true
				matched++
				break
			}
			if tolerant && minLen >= 6 {
				if dist.Distance(q, c, 1) <= 1 {
					used[i] = true
					matched++
					break
				}
			}
		}
	}
	return matched
}

func phoneticScoreFromRatio(ratio float64) float64 {
	s := 8 * ratio
	switch {
	case ratio == 1:
		return minF(7.5, s)
	case ratio >= 0.66:
		return minF(7.0, s)
	default:
		return minF(6.0, s)
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Phonetic runs the PhoneticScorer (spec §4.5). querySoundex and
// candidateSoundex are the raw space-separated soundex forms.
func Phonetic(dist EditDistance, querySoundex, candidateSoundex string) *PhoneticResult {
	qTokens := phoneticTokens(querySoundex)
	cTokens := phoneticTokens(candidateSoundex)
	if len(qTokens) == 0 || len(cTokens) == 0 {
		return nil
	}

	strictMatched := matchTokens(dist, qTokens, cTokens, false)
	strictRatio := float64(strictMatched) / float64(len(qTokens))
	strictScore := phoneticScoreFromRatio(strictRatio)

	result := PhoneticResult{
		Score:     strictScore,
		MatchType: model.MatchTypePhoneticStrict,
		Tolerant:  false,
		Details: model.PhoneticDetails{
			MatchedCount: strictMatched,
			QueryCount:   len(qTokens),
			Ratio:        strictRatio,
			Tolerant:     false,
		},
	}

	if strictScore < 6.0 {
		tolerantMatched := matchTokens(dist, qTokens, cTokens, true)
		tolerantRatio := float64(tolerantMatched) / float64(len(qTokens))
		if tolerantRatio > strictRatio {
			tolerantScore := phoneticScoreFromRatio(tolerantRatio)
			result = PhoneticResult{
				Score:     tolerantScore,
				MatchType: model.MatchTypePhoneticTolerant,
				Tolerant:  true,
				Details: model.PhoneticDetails{
					MatchedCount: tolerantMatched,
					QueryCount:   len(qTokens),
					Ratio:        tolerantRatio,
					Tolerant:     true,
				},
			}
		}
	}

	return &result
}

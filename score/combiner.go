package score

import "github.com/fulmenhq/meilirank/model"

// Combined is the FinalCombiner's output (spec §4.6) before the exact cap.
type Combined struct {
	Score     float64
	MatchType model.MatchType
	Method    model.ScoringMethod
	Weights   *model.ScoringWeights
}

// Combine implements the FinalCombiner (spec §4.6). phonetic may be nil
// when PhoneticScorer produced no score.
func Combine(main MainResult, phonetic *PhoneticResult) Combined {
	t := main.TotalScore
	p := 0.0
	if phonetic != nil {
		p = phonetic.Score
	}

	switch {
	case t >= 8.5:
		return Combined{Score: t, MatchType: main.MatchType, Method: model.ScoringTextOnly}

	case t >= 6.0 && t < 8.5 && p > 0:
		wt := 0.7 + t/40
		wp := 1 - wt
		return Combined{
			Score:     t*wt + p*wp,
			MatchType: model.MatchTypeHybrid,
			Method:    model.ScoringWeighted,
			Weights:   &model.ScoringWeights{Text: wt, Phonetic: wp},
		}

	case p > t:
		return Combined{Score: p, MatchType: phonetic.MatchType, Method: model.ScoringPhoneticFallback}

	default:
		return Combined{Score: t, MatchType: main.MatchType, Method: model.ScoringTextOnly}
	}
}

// ApplyExactCap enforces the exact cap (spec §3 invariant, §4.6 "Exact
// cap"): any score ≥ 10.0 is lowered to 9.99 and flagged, unless matchType
// is the reserved exact_full tag.
func ApplyExactCap(scoreVal float64, matchType model.MatchType) (capped float64, wasCapped bool) {
	if matchType != model.MatchTypeExactFull && scoreVal >= 10.0 {
		return 9.99, true
	}
	return scoreVal, false
}

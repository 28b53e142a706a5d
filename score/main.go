// Package score implements the MainScorer, PhoneticScorer, and
// FinalCombiner (spec §4.4–§4.6): the scoring stages that turn three
// FieldEvals into one enriched hit.
package score

import (
	"github.com/fulmenhq/meilirank/model"
)

// nameBonusWeight maps a match's position rank to its bonus weight
// (spec §4.4 "Name bonus").
func nameBonusWeight(rank int) float64 {
	switch {
	case rank == 0:
		return 1.0
	case rank == 1:
		return 0.7
	case rank == 2:
		return 0.4
	default:
		return 0.2
	}
}

// MainResult is the MainScorer's output (spec §4.4).
type MainResult struct {
	TotalScore      float64
	BaseScore       float64
	Bonus           float64
	MatchType       model.MatchType
	MatchPriority   int
	WinningStrategy string // "name_search", "no_space", or "none"
	PenaltyIndices  model.Penalties
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// adjustedFieldScore computes the adjusted field score from a FieldEval
// (spec §4.4 "adjusted field score").
func adjustedFieldScore(eval model.FieldEval, isNoSpace bool) float64 {
	if eval.FoundCount == 0 {
		return 0
	}

	raw := clamp(10-float64(eval.TotalDistance), 0, 10)
	penalty := 0.6*float64(len(eval.NotFound)) +
		0.5*max0(eval.AverageDistance) +
		1.0*(1-clamp(eval.LengthRatio, 0, 1)) +
		0.15*eval.ExtraLengthRatio*10

	adj := raw - penalty
	if adj < 0 {
		adj = 0
	}

	if isNoSpace && adj < 7.0 {
		return 0
	}
	return adj
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// nameBonus computes the name-field bonus from the name FieldEval and the
// original query word count (spec §4.4 "Name bonus").
func nameBonus(nameEval model.FieldEval, queryWordCount int) float64 {
	r := nameEval.ResultCount
	q := queryWordCount

	wcr := 0.0
	if r > 0 {
		wcr = ratioMinMax(q, r)
	}
	elr := nameEval.ExtraLengthRatio

	if wcr < 0.4 || elr > 1.0 {
		return 0
	}

	weightSum := 0.0
	for i, m := range nameEval.Found {
		_ = m
		weightSum += nameBonusWeight(i)
	}
	denom := q
	if denom < 1 {
		denom = 1
	}

	bonus := (weightSum / float64(denom)) * 2.0
	bonus -= 0.3 * float64(len(nameEval.NotFound))
	bonus -= 0.35 * max0(nameEval.AverageDistance)
	bonus -= 2.0 * elr * 0.6

	bonus = clamp(bonus, 0, 2.0)

	attenuation := clamp((wcr-0.4)/0.6, 0, 1)
	return bonus * attenuation
}

func ratioMinMax(q, r int) float64 {
	a, b := q, r
	if a > b {
		a, b = b, a
	}
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}

// Main runs the MainScorer: FieldEvals for name_search, no_space, and name
// must already be computed by the caller via field.Evaluate (spec §4.4).
func Main(nameSearchEval, noSpaceEval, nameEval model.FieldEval, queryWordCount int) MainResult {
	nameSearchAdj := adjustedFieldScore(nameSearchEval, false)
	noSpaceAdj := adjustedFieldScore(noSpaceEval, true)

	nameSearchValid := nameSearchAdj > 0 && nameSearchEval.FoundCount > 0
	noSpaceValid := noSpaceAdj > 0 && noSpaceEval.FoundCount > 0

	var winner string
	var baseScore float64
	var winningEval model.FieldEval

	switch {
	case noSpaceValid && (!nameSearchValid || noSpaceAdj >= nameSearchAdj):
		winner = "no_space"
		baseScore = noSpaceAdj
		winningEval = noSpaceEval
	case nameSearchValid:
		winner = "name_search"
		baseScore = nameSearchAdj
		winningEval = nameSearchEval
	default:
		winner = "none"
		baseScore = 0
		winningEval = model.FieldEval{}
	}

	bonus := nameBonus(nameEval, queryWordCount)
	totalScore := baseScore + bonus
	if totalScore > 12.0 {
		totalScore = 12.0
	}

	matchType, priority := classify(winningEval, winner, totalScore)

	return MainResult{
		TotalScore:      totalScore,
		BaseScore:       baseScore,
		Bonus:           bonus,
		MatchType:       matchType,
		MatchPriority:   priority,
		WinningStrategy: winner,
		PenaltyIndices:  winningEval.Penalties,
	}
}

// classify implements the match-type table (spec §4.4).
func classify(winningEval model.FieldEval, winner string, totalScore float64) (model.MatchType, int) {
	avg := winningEval.AverageDistance
	missing := len(winningEval.NotFound)

	switch {
	case winningEval.FoundCount == 0:
		return model.MatchTypePartial, model.MatchPriority[model.MatchTypePartial]
	case avg == 0 && missing == 0 && winner == "no_space":
		return model.MatchTypeNoSpaceMatch, model.MatchPriority[model.MatchTypeNoSpaceMatch]
	case avg == 0 && missing == 0 && winner == "name_search":
		return model.MatchTypeExactWithExtras, model.MatchPriority[model.MatchTypeExactWithExtras]
	case avg == 0 && missing > 0:
		return model.MatchTypeExactWithMissing, model.MatchPriority[model.MatchTypeExactWithMissing]
	case avg > 0 && missing == 0 && totalScore >= 8.0:
		return model.MatchTypeNearPerfect, model.MatchPriority[model.MatchTypeNearPerfect]
	case avg > 0 && missing == 0:
		return model.MatchTypeFuzzyFull, model.MatchPriority[model.MatchTypeFuzzyFull]
	default:
		return model.MatchTypeFuzzyPartial, model.MatchPriority[model.MatchTypeFuzzyPartial]
	}
}

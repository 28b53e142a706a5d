// Package rank implements the Ranker (spec §4.8): stable composite sort,
// the exact-only policy, and truncation.
package rank

import (
	"math"
	"sort"

	"github.com/fulmenhq/meilirank/model"
)

const (
	scoreEpsilon      = 1e-9
	extraLengthEpsilon = 0.01
	lengthRatioEpsilon = 0.001
)

// Sort orders hits by the composite key (spec §4.8) and returns a new
// slice; the input slice is left untouched.
func Sort(hits []model.ScoredHit) []model.ScoredHit {
	out := make([]model.ScoredHit, len(hits))
	copy(out, hits)

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

// less reports whether a should sort before b under the composite key.
func less(a, b model.ScoredHit) bool {
	if !almostEqual(a.Score, b.Score, scoreEpsilon) {
		return a.Score > b.Score
	}

	aElr := a.PenaltyIndices.ExtraLengthRatio
	bElr := b.PenaltyIndices.ExtraLengthRatio
	if !almostEqual(aElr, bElr, extraLengthEpsilon) {
		return aElr < bElr
	}

	aLr := a.PenaltyIndices.LengthRatio
	bLr := b.PenaltyIndices.LengthRatio
	if !almostEqual(aLr, bLr, lengthRatioEpsilon) {
		return aLr > bLr
	}

	aAvg := a.PenaltyIndices.AverageDistance
	bAvg := b.PenaltyIndices.AverageDistance
	if aAvg != bAvg {
		return aAvg < bAvg
	}

	aID, aOK := a.Candidate.Identifier()
	bID, bOK := b.Candidate.Identifier()
	if aOK && bOK && aID != bID {
		return aID < bID
	}

	return a.InputPosition() < b.InputPosition()
}

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// Select implements the exact-only policy: if any hit has score >= 10.0,
// only those survive (already sorted); otherwise every sorted hit survives.
// The result is then truncated to limit (spec §4.8).
func Select(sorted []model.ScoredHit, limit int) (hits []model.ScoredHit, exactCount int, hasExact bool) {
	exact := make([]model.ScoredHit, 0)
	for _, h := range sorted {
		if h.Score >= 10.0 {
			exact = append(exact, h)
		}
	}

	chosen := sorted
	if len(exact) > 0 {
		chosen = exact
	}

	if limit > 0 && len(chosen) > limit {
		chosen = chosen[:limit]
	}

	return chosen, len(exact), len(exact) > 0
}

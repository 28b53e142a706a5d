package score

import (
	"testing"

	"github.com/fulmenhq/meilirank/model"
	"github.com/stretchr/testify/assert"
)

func exactEval(tokens int) model.FieldEval {
	matches := make([]model.WordMatch, tokens)
	for i := range matches {
		matches[i] = model.WordMatch{Distance: 0, Type: model.MatchExact}
	}
	return model.FieldEval{
		Found:            matches,
		NotFound:         []string{},
		TotalDistance:    0,
		AverageDistance:  0,
		FoundCount:       tokens,
		QueryCount:       tokens,
		ResultCount:      tokens,
		LengthRatio:      1.0,
		ExtraLengthRatio: 0,
	}
}

func TestMainExactNameSearchWins(t *testing.T) {
	nameSearch := exactEval(2)
	noSpace := model.FieldEval{} // no match at all
	name := exactEval(2)

	result := Main(nameSearch, noSpace, name, 2)

	assert.Equal(t, "name_search", result.WinningStrategy)
	assert.Equal(t, model.MatchTypeExactWithExtras, result.MatchType)
	assert.GreaterOrEqual(t, result.TotalScore, 10.0)
}

func TestMainNoSpacePreferredWhenValidAndGreaterOrEqual(t *testing.T) {
	noSpace := exactEval(1)
	nameSearch := model.FieldEval{FoundCount: 0}
	name := exactEval(1)

	result := Main(nameSearch, noSpace, name, 1)

	assert.Equal(t, "no_space", result.WinningStrategy)
	assert.Equal(t, model.MatchTypeNoSpaceMatch, result.MatchType)
}

func TestMainNoStrategyValidGivesPartial(t *testing.T) {
	result := Main(model.FieldEval{}, model.FieldEval{}, model.FieldEval{}, 2)

	assert.Equal(t, "none", result.WinningStrategy)
	assert.Equal(t, 0.0, result.TotalScore)
	assert.Equal(t, model.MatchTypePartial, result.MatchType)
}

func TestMainTotalScoreCappedAt12(t *testing.T) {
	nameSearch := exactEval(3)
	noSpace := model.FieldEval{}
	name := exactEval(3)

	result := Main(nameSearch, noSpace, name, 3)

	assert.LessOrEqual(t, result.TotalScore, 12.0)
}

func TestAdjustedFieldScoreZeroWhenNoMatches(t *testing.T) {
	eval := model.FieldEval{FoundCount: 0}
	assert.Equal(t, 0.0, adjustedFieldScore(eval, false))
}

func TestAdjustedFieldScoreNoSpaceZeroedBelowThreshold(t *testing.T) {
	// A single match at distance 4 keeps raw=6, penalty small, adj<7 for no_space.
	eval := model.FieldEval{
		Found:           []model.WordMatch{{Distance: 4}},
		FoundCount:      1,
		TotalDistance:   4,
		AverageDistance: 4,
		LengthRatio:     1.0,
	}
	assert.Equal(t, 0.0, adjustedFieldScore(eval, true))
}

func TestNameBonusZeroWhenCoverageTooLow(t *testing.T) {
	eval := model.FieldEval{
		Found:       []model.WordMatch{{}},
		ResultCount: 100,
	}
	assert.Equal(t, 0.0, nameBonus(eval, 10))
}

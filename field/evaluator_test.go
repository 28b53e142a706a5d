package field

import (
	"testing"

	"github.com/fulmenhq/meilirank/align"
	"github.com/fulmenhq/meilirank/model"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateAllMatched(t *testing.T) {
	aligned := align.Result{
		Matches: []model.WordMatch{
			{QueryWord: "paris", MatchedWord: "paris", Distance: 0, Type: model.MatchExact, Position: 0},
		},
		NotFound:      []string{},
		UsedPositions: map[int]bool{0: true},
	}

	eval := Evaluate(aligned, []string{"paris"}, "paris")

	assert.Equal(t, 0, eval.TotalDistance)
	assert.Equal(t, 0.0, eval.AverageDistance)
	assert.Equal(t, 1, eval.FoundCount)
	assert.Equal(t, 1.0, eval.LengthRatio)
	assert.Equal(t, 0, eval.ExtraLength)
	assert.Equal(t, 0.0, eval.ExtraLengthRatio)
	assert.Equal(t, 0, eval.Penalties.Missing)
}

func TestEvaluateWithMissingAndExtra(t *testing.T) {
	aligned := align.Result{
		Matches: []model.WordMatch{
			{QueryWord: "saint", MatchedWord: "saint", Distance: 0, Type: model.MatchExact, Position: 0},
		},
		NotFound:      []string{"jean"},
		UsedPositions: map[int]bool{0: true},
	}

	eval := Evaluate(aligned, []string{"saint", "denis"}, "saint jean")

	assert.Equal(t, 1, eval.FoundCount)
	assert.Equal(t, 1, eval.Penalties.Missing)
	assert.Equal(t, 5, eval.ExtraLength) // "denis" unconsumed
	assert.InDelta(t, 0.5, eval.ExtraLengthRatio, 1e-9) // 5 / len("saint jean")=10
	assert.InDelta(t, 2.0/2.0, eval.LengthRatio, 1e-9)  // q=2, r=2
}

func TestEvaluateEmptyQueryTextGivesZeroExtraRatio(t *testing.T) {
	aligned := align.Result{
		Matches:       []model.WordMatch{},
		NotFound:      []string{},
		UsedPositions: map[int]bool{},
	}

	eval := Evaluate(aligned, []string{}, "")

	assert.Equal(t, 0.0, eval.ExtraLengthRatio)
	assert.Equal(t, 1.0, eval.LengthRatio)
}

func TestEvaluateAverageDistanceOverMultipleMatches(t *testing.T) {
	aligned := align.Result{
		Matches: []model.WordMatch{
			{QueryWord: "a", MatchedWord: "a", Distance: 0, Type: model.MatchExact, Position: 0},
			{QueryWord: "b", MatchedWord: "x", Distance: 2, Type: model.MatchLevenshtein, Position: 1},
		},
		NotFound:      []string{},
		UsedPositions: map[int]bool{0: true, 1: true},
	}

	eval := Evaluate(aligned, []string{"a", "x"}, "a b")

	assert.Equal(t, 2, eval.TotalDistance)
	assert.InDelta(t, 1.0, eval.AverageDistance, 1e-9)
}

package rank

import (
	"testing"

	"github.com/fulmenhq/meilirank/model"
	"github.com/stretchr/testify/assert"
)

func hit(id string, score float64, pos int) model.ScoredHit {
	return model.ScoredHit{
		Candidate: model.Candidate{ID: id},
		Score:     score,
	}.WithInputPosition(pos)
}

func TestSortOrdersByScoreDescending(t *testing.T) {
	hits := []model.ScoredHit{hit("a", 5.0, 0), hit("b", 9.0, 1), hit("c", 7.0, 2)}
	sorted := Sort(hits)

	assert.Equal(t, []string{"b", "c", "a"}, ids(sorted))
}

func TestSortTieBreaksOnExtraLengthRatioAscending(t *testing.T) {
	a := hit("a", 5.0, 0)
	a.PenaltyIndices.ExtraLengthRatio = 0.5
	b := hit("b", 5.0, 1)
	b.PenaltyIndices.ExtraLengthRatio = 0.1

	sorted := Sort([]model.ScoredHit{a, b})
	assert.Equal(t, []string{"b", "a"}, ids(sorted))
}

func TestSortTieBreaksOnIdentifierAscending(t *testing.T) {
	a := hit("zeta", 5.0, 0)
	b := hit("alpha", 5.0, 1)

	sorted := Sort([]model.ScoredHit{a, b})
	assert.Equal(t, []string{"alpha", "zeta"}, ids(sorted))
}

func TestSortStableOnFullTie(t *testing.T) {
	a := hit("same", 5.0, 0)
	b := hit("same", 5.0, 1)

	sorted := Sort([]model.ScoredHit{a, b})
	assert.Equal(t, 0, sorted[0].InputPosition())
	assert.Equal(t, 1, sorted[1].InputPosition())
}

func TestSelectExactOnlyPolicy(t *testing.T) {
	hits := []model.ScoredHit{hit("a", 10.0, 0), hit("b", 5.0, 1)}
	chosen, exactCount, hasExact := Select(hits, 10)

	assert.True(t, hasExact)
	assert.Equal(t, 1, exactCount)
	assert.Equal(t, []string{"a"}, ids(chosen))
}

func TestSelectAllHitsWhenNoneExact(t *testing.T) {
	hits := []model.ScoredHit{hit("a", 9.0, 0), hit("b", 5.0, 1)}
	chosen, exactCount, hasExact := Select(hits, 10)

	assert.False(t, hasExact)
	assert.Equal(t, 0, exactCount)
	assert.Len(t, chosen, 2)
}

func TestSelectTruncatesToLimit(t *testing.T) {
	hits := []model.ScoredHit{hit("a", 9.0, 0), hit("b", 8.0, 1), hit("c", 7.0, 2)}
	chosen, _, _ := Select(hits, 2)

	assert.Len(t, chosen, 2)
}

func ids(hits []model.ScoredHit) []string {
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.Candidate.ID
	}
	return out
}

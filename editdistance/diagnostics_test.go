package editdistance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranspositionDistanceIdentical(t *testing.T) {
	assert.Equal(t, 0, TranspositionDistance("hello", "hello"))
}

func TestSimilarityIdentical(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("hello", "hello"))
}

func TestSimilarityBounds(t *testing.T) {
	s := Similarity("martha", "marhta")
	assert.GreaterOrEqual(t, s, 0.0)
	assert.LessOrEqual(t, s, 1.0)
}

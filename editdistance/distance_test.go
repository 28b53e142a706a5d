package editdistance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceBasics(t *testing.T) {
	assert.Equal(t, 0, Distance("", ""))
	assert.Equal(t, 3, Distance("", "abc"))
	assert.Equal(t, 3, Distance("abc", ""))
	assert.Equal(t, 3, Distance("kitten", "sitting"))
	assert.Equal(t, 0, Distance("paris", "paris"))
	assert.Equal(t, 1, Distance("paris", "pariss"))
}

func TestBoundedDistanceMatchesUnboundedWhenCeilingGenerous(t *testing.T) {
	cases := [][2]string{
		{"kitten", "sitting"},
		{"paris", "pariss"},
		{"saintjean", "saintjean"},
		{"bordeaux", "bordo"},
	}
	for _, c := range cases {
		want := Distance(c[0], c[1])
		got := BoundedDistance(c[0], c[1], 100)
		assert.Equal(t, want, got, "%q vs %q", c[0], c[1])
	}
}

func TestBoundedDistanceSaturates(t *testing.T) {
	// "abc" vs "xyz" has distance 3; with ceiling 1 it must saturate to 2.
	assert.Equal(t, 2, BoundedDistance("abc", "xyz", 1))
	// Identical strings never saturate regardless of ceiling.
	assert.Equal(t, 0, BoundedDistance("abc", "abc", 0))
	// One substitution against a zero ceiling saturates to 1.
	assert.Equal(t, 1, BoundedDistance("abc", "abd", 0))
}

func TestBoundedDistanceNegativeCeilingTreatedAsZero(t *testing.T) {
	assert.Equal(t, BoundedDistance("abc", "abd", 0), BoundedDistance("abc", "abd", -5))
}

func TestBoundedDistanceLengthShortCircuit(t *testing.T) {
	// |lenA - lenB| = 5 > ceiling(2) short-circuits to ceiling+1 without scanning.
	assert.Equal(t, 3, BoundedDistance("a", "abcdef", 2))
}

func TestDynamicMax(t *testing.T) {
	assert.Equal(t, 1, DynamicMax("abc"))
	assert.Equal(t, 2, DynamicMax("abcdef"))
	assert.Equal(t, 3, DynamicMax("abcdefghi"))
	assert.Equal(t, 4, DynamicMax("abcdefghijklmnop"))
}

func TestScore(t *testing.T) {
	assert.Equal(t, 1.0, Score("", ""))
	assert.Equal(t, 1.0, Score("hello", "hello"))
	assert.InDelta(t, 0.5714, Score("kitten", "sitting"), 0.001)
}

func TestMatcherImplementsContract(t *testing.T) {
	m := NewMatcher()
	assert.Equal(t, 1, m.Distance("paris", "pariss", 4))
	assert.Equal(t, 2, m.DynamicMax("pariss"))
}

package synonym

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAndSameClass(t *testing.T) {
	tbl := New()
	tbl.Register("saint", "st", "ste")

	assert.True(t, tbl.SameClass("saint", "st"))
	assert.True(t, tbl.SameClass("St", "STE"))
	assert.False(t, tbl.SameClass("saint", "paris"))
}

func TestSameClassUnregisteredIsFalse(t *testing.T) {
	tbl := New()
	assert.False(t, tbl.SameClass("paris", "paris"))
}

func TestRegisterMergesExistingClasses(t *testing.T) {
	tbl := New()
	tbl.Register("saint", "st")
	tbl.Register("ste", "sainte")

	assert.False(t, tbl.SameClass("st", "ste"))

	// A later registration that bridges the two bases merges both classes.
	tbl.Register("st", "ste")

	assert.True(t, tbl.SameClass("saint", "sainte"))
	assert.True(t, tbl.SameClass("st", "ste"))
}

func TestRegisterEmptyIsNoop(t *testing.T) {
	tbl := New()
	tbl.Register("")
	assert.Empty(t, tbl.Classes())
}

func TestClassesSortedAndDeduped(t *testing.T) {
	tbl := New()
	tbl.Register("saint", "st", "saint")

	classes := tbl.Classes()
	if assert.Len(t, classes, 1) {
		assert.Equal(t, []string{"saint", "st"}, classes[0])
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	tbl := New()
	tbl.Register("saint", "st")

	snap := tbl.Snapshot()
	tbl.Register("paris", "ville-lumiere")

	assert.True(t, snap.SameClass("saint", "st"))
	assert.False(t, snap.SameClass("paris", "ville-lumiere"))
}

func TestReplaceSwapsContentsAtomically(t *testing.T) {
	tbl := New()
	tbl.Register("saint", "st")

	replacement := New()
	replacement.Register("paris", "city-of-light")

	tbl.Replace(replacement)

	assert.False(t, tbl.SameClass("saint", "st"))
	assert.True(t, tbl.SameClass("paris", "city-of-light"))
}

func TestReplaceWithNilClears(t *testing.T) {
	tbl := New()
	tbl.Register("saint", "st")

	tbl.Replace(nil)

	assert.False(t, tbl.SameClass("saint", "st"))
	assert.Empty(t, tbl.Classes())
}

func TestRegisterAllSkipsEmptyBaseButAppliesRest(t *testing.T) {
	tbl := New()
	err := tbl.RegisterAll(map[string][]string{
		"saint": {"st"},
		"":      {"orphan"},
	})

	assert.Error(t, err)
	assert.True(t, tbl.SameClass("saint", "st"))
}

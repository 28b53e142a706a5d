package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSoundexFRWord(t *testing.T) {
	assert.Equal(t, "P620", soundexFRWord("paris"))
	assert.Equal(t, "B630", soundexFRWord("bordeaux"))
	assert.Equal(t, "J500", soundexFRWord("jean"))
	assert.Equal(t, "S530", soundexFRWord("saint"))
	assert.Equal(t, "", soundexFRWord(""))
	assert.Equal(t, "", soundexFRWord("123"))
}

func TestSoundexFRMultiToken(t *testing.T) {
	assert.Equal(t, "S530 J500", SoundexFR("Saint Jean"))
	assert.Equal(t, "P620", SoundexFR("Paris"))
	assert.Equal(t, "", SoundexFR("   "))
}

func TestSoundexFRIgnoresCase(t *testing.T) {
	assert.Equal(t, soundexFRWord("bordeaux"), soundexFRWord("Bordeaux"))
}

func TestSoundexFRXIsSilent(t *testing.T) {
	// "deux" (d-e-u-x): first letter D, remaining e,u,x all silent -> "D000".
	assert.Equal(t, "D000", soundexFRWord("deux"))
}

package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeNote(t *testing.T) {
	assert.Equal(t, "Eb", NormalizeNote("eb"))
	assert.Equal(t, "C#", NormalizeNote("c#"))
	assert.Equal(t, "Bb", NormalizeNote("BB"))
	assert.Equal(t, "", NormalizeNote(""))
	assert.Equal(t, "", NormalizeNote("   "))

	// double accidentals collapse to the chromatic equivalent
	assert.Equal(t, "D", NormalizeNote("C##"))
	assert.Equal(t, "Bb", NormalizeNote("Cbb"))
	assert.Equal(t, "G", NormalizeNote("F##"))
}

func TestNoteIndex(t *testing.T) {
	cases := map[string]int{
		"C": 0, "C#": 1, "Db": 1, "D": 2, "Eb": 3, "E": 4,
		"F": 5, "F#": 6, "Gb": 6, "G": 7, "Ab": 8, "A": 9,
		"Bb": 10, "B": 11,
		// edge case spellings
		"Cb": 11, "Fb": 4, "E#": 5, "B#": 0,
	}
	for note, want := range cases {
		got, ok := NoteIndex(note)
		require.True(t, ok, "note %s", note)
		assert.Equal(t, want, got, "note %s", note)
	}

	_, ok := NoteIndex("H")
	assert.False(t, ok)
	_, ok = NoteIndex("")
	assert.False(t, ok)
}

func TestNoteAtIndex(t *testing.T) {
	assert.Equal(t, "C#", NoteAtIndex(1, false))
	assert.Equal(t, "Db", NoteAtIndex(1, true))
	assert.Equal(t, "C", NoteAtIndex(12, false))
	assert.Equal(t, "B", NoteAtIndex(-1, false))
	assert.Equal(t, "Bb", NoteAtIndex(-14, true))
}

func TestKeyPrefersFlats(t *testing.T) {
	for _, key := range []string{"F", "Bb", "Eb", "Ab", "Db", "Gb", "Cb", "Dm", "Gm", "Cm", "Fm", "Bbm", "Ebm", "Abm"} {
		assert.True(t, KeyPrefersFlats(key), "key %s", key)
	}
	for _, key := range []string{"C", "G", "D", "A", "E", "B", "F#", "C#", "Am", "Em", "Bm"} {
		assert.False(t, KeyPrefersFlats(key), "key %s", key)
	}
}

func TestEnharmonic(t *testing.T) {
	got, ok := Enharmonic("C#")
	require.True(t, ok)
	assert.Equal(t, "Db", got)

	// round trips back to itself
	back, ok := Enharmonic(got)
	require.True(t, ok)
	assert.Equal(t, "C#", back)

	for _, natural := range []string{"C", "D", "E", "F", "G", "A", "B"} {
		_, ok := Enharmonic(natural)
		assert.False(t, ok, "note %s", natural)
	}
}

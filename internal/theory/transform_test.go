package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chordsheet/internal/song"
)

func strp(s string) *string { return &s }

func testSong() *song.Song {
	return &song.Song{
		Title:  "Test",
		Artist: "Nobody",
		Key:    "C",
		Sections: []song.Section{{
			Type: song.Verse,
			Lines: []song.Line{{
				Lyrics: strp("hello there"),
				Chords: []song.ChordPosition{
					{Chord: song.Chord{Root: "C"}, Position: 0},
					{Chord: song.Chord{Root: "A", Quality: "m"}, Position: 6},
					{Chord: song.Chord{Root: "G", Bass: "B"}, Position: 9},
				},
			}},
		}},
	}
}

func TestTransposeSong(t *testing.T) {
	s := testSong()
	up := TransposeSong(s, 2)

	assert.Equal(t, "D", up.Key)
	chords := up.Sections[0].Lines[0].Chords
	assert.Equal(t, "D", chords[0].Chord.Root)
	assert.Equal(t, "B", chords[1].Chord.Root)
	assert.Equal(t, "m", chords[1].Chord.Quality)
	assert.Equal(t, "C#", chords[2].Chord.Bass)

	// original tree untouched
	assert.Equal(t, "C", s.Key)
	assert.Equal(t, "C", s.Sections[0].Lines[0].Chords[0].Chord.Root)
}

func TestTransposeSongKeySpelling(t *testing.T) {
	s := testSong()
	up := TransposeSong(s, 1)
	assert.Equal(t, "Db", up.Key, "accidental major keys spell flat")

	s.Key = "Am"
	upm := TransposeSong(s, 4)
	assert.Equal(t, "C#m", upm.Key, "accidental minor keys spell sharp")
}

func TestSongToNumbersAndBack(t *testing.T) {
	s := testSong()
	nums := SongToNumbers(s)

	chords := nums.Sections[0].Lines[0].Chords
	assert.Equal(t, "1", chords[0].Chord.Root)
	assert.Equal(t, "6", chords[1].Chord.Root)
	assert.Equal(t, "m", chords[1].Chord.Quality)
	assert.Equal(t, "5", chords[2].Chord.Root)
	assert.Equal(t, "7", chords[2].Chord.Bass)

	back := SongToLetters(nums)
	require.Equal(t, s.Sections, back.Sections)
}

func TestParseNumberChord(t *testing.T) {
	c := ParseNumberChord("b7m7/4")
	require.NotNil(t, c)
	assert.Equal(t, song.Chord{Root: "b7", Quality: "m7", Bass: "4"}, *c)

	assert.Nil(t, ParseNumberChord("Cmaj7"))
	assert.Nil(t, ParseNumberChord(""))
}

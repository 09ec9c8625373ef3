package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chordsheet/internal/song"
)

func TestSimpleMetadataScan(t *testing.T) {
	text := "Title: Amazing Grace\nArtist: John Newton\nKey: Eb\nTempo: 68\nTime: 3/4\n\n[VERSE 1]\nwords"
	res := ParseAs(text, FormatSimple, Options{})
	require.True(t, res.Success)

	assert.Equal(t, "Amazing Grace", res.Song.Title)
	assert.Equal(t, "John Newton", res.Song.Artist)
	assert.Equal(t, "Eb", res.Song.Key)
	assert.Equal(t, 68, res.Song.Tempo)
	assert.Equal(t, "3/4", res.Song.TimeSignature)
}

func TestSimpleMetadataEqualsForm(t *testing.T) {
	res := ParseAs("Song= My Song\nKey= f#m\n\n[CHORUS]\nwords", FormatSimple, Options{})
	require.True(t, res.Success)
	assert.Equal(t, "My Song", res.Song.Title)
	assert.Equal(t, "F#m", res.Song.Key)
}

func TestSimpleMetadataRejectsBadValues(t *testing.T) {
	res := ParseAs("Key: banana\nTempo: fast\n\n[VERSE]\nwords", FormatSimple, Options{})
	require.True(t, res.Success)
	assert.Equal(t, "C", res.Song.Key)
	assert.Zero(t, res.Song.Tempo)
}

func TestSimpleChordOverLyricPairing(t *testing.T) {
	text := "[VERSE 1]\nEb        Ab\nAmazing grace how sweet"
	res := ParseAs(text, FormatSimple, Options{})
	require.True(t, res.Success)
	require.Len(t, res.Song.Sections, 1)

	sec := res.Song.Sections[0]
	assert.Equal(t, song.Verse, sec.Type)
	assert.Equal(t, 1, sec.Number)
	require.Len(t, sec.Lines, 1)

	line := sec.Lines[0]
	require.NotNil(t, line.Lyrics)
	assert.Equal(t, "Amazing grace how sweet", *line.Lyrics)
	require.Len(t, line.Chords, 2)
	assert.Equal(t, "Eb", line.Chords[0].Chord.Root)
	assert.Equal(t, 0, line.Chords[0].Position)
	assert.Equal(t, "Ab", line.Chords[1].Chord.Root)
	assert.Equal(t, 10, line.Chords[1].Position, "offset taken from the chord line itself")
}

func TestSimpleChordOnlyIntro(t *testing.T) {
	text := "[INTRO]\nEb  Absus2  Eb  Absus2"
	res := ParseAs(text, FormatSimple, Options{})
	require.True(t, res.Success)
	require.Len(t, res.Song.Sections, 1)
	assert.Equal(t, song.Intro, res.Song.Sections[0].Type)

	line := res.Song.Sections[0].Lines[0]
	assert.Nil(t, line.Lyrics)
	require.Len(t, line.Chords, 4)
	assert.Equal(t, "Ab", line.Chords[1].Chord.Root)
	assert.Equal(t, "sus2", line.Chords[1].Chord.Quality)
}

func TestSimplePendingChordFlushedByBlank(t *testing.T) {
	text := "[VERSE]\nC  G\n\nwords with no chords"
	res := ParseAs(text, FormatSimple, Options{})
	require.True(t, res.Success)

	lines := res.Song.Sections[0].Lines
	require.Len(t, lines, 2)
	assert.Nil(t, lines[0].Lyrics, "chord line flushed alone by the blank")
	require.NotNil(t, lines[1].Lyrics)
	assert.Empty(t, lines[1].Chords)
}

func TestSimpleConsecutiveChordLines(t *testing.T) {
	text := "[INTRO]\nC  G\nAm F\nlyrics here"
	res := ParseAs(text, FormatSimple, Options{})
	require.True(t, res.Success)

	lines := res.Song.Sections[0].Lines
	require.Len(t, lines, 2)
	assert.Nil(t, lines[0].Lyrics)
	require.NotNil(t, lines[1].Lyrics)
	assert.Len(t, lines[1].Chords, 2)
}

func TestSimpleChordLineMajorityTieBreak(t *testing.T) {
	// exactly half the tokens valid: counts as a chord line
	text := "[VERSE]\nC banana\nlyrics under it"
	res := ParseAs(text, FormatSimple, Options{})
	require.True(t, res.Success)

	line := res.Song.Sections[0].Lines[0]
	require.NotNil(t, line.Lyrics)
	assert.Equal(t, "lyrics under it", *line.Lyrics)
	require.Len(t, line.Chords, 1, "the invalid token is skipped")
	assert.Equal(t, "C", line.Chords[0].Chord.Root)
}

func TestSimpleDynamicsAfterHeader(t *testing.T) {
	text := "[BRIDGE]\n(softly, piano only)\nwords"
	res := ParseAs(text, FormatSimple, Options{})
	require.True(t, res.Success)
	assert.Equal(t, "softly, piano only", res.Song.Sections[0].Dynamics)

	text = "[CHORUS]\nDynamics: full band\nwords"
	res = ParseAs(text, FormatSimple, Options{})
	require.True(t, res.Success)
	assert.Equal(t, "full band", res.Song.Sections[0].Dynamics)
}

func TestSimpleDynamicsOnlyWhileEmpty(t *testing.T) {
	text := "[VERSE]\nwords first\n(not dynamics anymore)"
	res := ParseAs(text, FormatSimple, Options{})
	require.True(t, res.Success)

	sec := res.Song.Sections[0]
	assert.Empty(t, sec.Dynamics)
	assert.Len(t, sec.Lines, 2)
}

func TestSimpleEmptyInput(t *testing.T) {
	res := ParseAs("  \n ", FormatSimple, Options{})
	assert.False(t, res.Success)
	assert.Nil(t, res.Song)
	require.Len(t, res.Errors, 1)
}

func TestSimpleMetadataOnlyWarning(t *testing.T) {
	res := ParseAs("Title: Nothing Else", FormatSimple, Options{})
	require.True(t, res.Success)
	assert.Empty(t, res.Song.Sections)
	assert.Contains(t, res.Warnings, "no sections found")
}

// the same song written in both dialects parses to the same structure
func TestCrossDialectEquivalence(t *testing.T) {
	chordpro := "{title: Same Song}\n{key: C}\n{section: Verse 1}\n[C]hello [G]world\n{section: Chorus}\n[Am]la [F]la la"
	simple := "Title: Same Song\nKey: C\n\n[VERSE 1]\nC     G\nhello world\n\n[CHORUS]\nAm F\nla la la"

	a := ParseAs(chordpro, FormatChordPro, Options{})
	b := ParseAs(simple, FormatSimple, Options{})
	require.True(t, a.Success)
	require.True(t, b.Success)

	require.Equal(t, len(a.Song.Sections), len(b.Song.Sections))
	for i := range a.Song.Sections {
		sa, sb := a.Song.Sections[i], b.Song.Sections[i]
		assert.Equal(t, sa.Type, sb.Type, "section %d", i)
		assert.Equal(t, sa.Number, sb.Number, "section %d", i)
		require.Equal(t, len(sa.Lines), len(sb.Lines), "section %d", i)
		for j := range sa.Lines {
			la, lb := sa.Lines[j], sb.Lines[j]
			require.Equal(t, len(la.Chords), len(lb.Chords))
			for k := range la.Chords {
				assert.Equal(t, la.Chords[k].Chord.Root, lb.Chords[k].Chord.Root)
			}
		}
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	text := "{title: Round Trip}\n{key: Eb}\n{section: Verse 1}\nHow great the [Eb]chasm\n{section: Intro}\n[Eb]   [Absus2]"
	first := ParseAs(text, FormatChordPro, Options{})
	require.True(t, first.Success)

	second := ParseAs(FormatChordProText(first.Song), FormatChordPro, Options{})
	require.True(t, second.Success)
	assert.Equal(t, first.Song, second.Song)
}

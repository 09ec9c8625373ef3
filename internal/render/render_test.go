package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chordsheet/internal/layout"
	"chordsheet/internal/parser"
)

const chart = `{title: Render Me}
{key: Eb}
{section: Intro}
[Eb]   [Absus2]
{section: Verse 1}
How great the [Eb]chasm`

func TestMeasurerModes(t *testing.T) {
	res := parser.Parse(chart, parser.Options{})
	require.True(t, res.Success)
	s := res.Song

	full := Measurer(s, DefaultStyle())

	chordsOnly := DefaultStyle()
	chordsOnly.Mode = ModeChordsOnly
	lyricsOnly := DefaultStyle()
	lyricsOnly.Mode = ModeLyricsOnly

	mc := Measurer(s, chordsOnly)
	ml := Measurer(s, lyricsOnly)

	// intro is chord-only: the lyrics-only mode keeps just the heading
	assert.Greater(t, full(0), ml(0))
	assert.Greater(t, mc(1), 0.0)
	assert.Greater(t, full(1), mc(1), "suppressing lyric rows shrinks the verse")

	// headings always measure, sections never reach zero
	assert.Greater(t, ml(0), 0.0)

	// out of range indexes are harmless
	assert.Zero(t, full(99))
}

func TestPageGeometry(t *testing.T) {
	geo := PageGeometry(DefaultStyle(), 2)
	assert.Equal(t, 2, geo.Columns)
	assert.Greater(t, geo.ColumnWidth, 3.0)
	assert.Less(t, geo.ColumnWidth, 4.25)
	assert.Greater(t, geo.ColumnHeight, 9.0)
	assert.InDelta(t, 2*geo.ColumnWidth+geo.ColumnGap+2*geo.Left, pageWidth, 1e-9)
}

func TestWritePDF(t *testing.T) {
	res := parser.Parse(chart, parser.Options{})
	require.True(t, res.Success)

	st := DefaultStyle()
	geo := PageGeometry(st, 2)
	flowed := layout.Flow(res.Song, geo, Measurer(res.Song, st))

	out := filepath.Join(t.TempDir(), "out.pdf")
	require.NoError(t, WritePDF(res.Song, flowed, st, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

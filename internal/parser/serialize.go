package parser

import (
	"fmt"
	"strings"

	"chordsheet/internal/song"
)

// FormatChordProText renders a song back to directive-dialect source
// text. Charts are persisted and edited as source text, so a parse of
// the output reproduces the same song tree.
func FormatChordProText(s *song.Song) string {
	var b strings.Builder

	fmt.Fprintf(&b, "{title: %s}\n", s.Title)
	fmt.Fprintf(&b, "{artist: %s}\n", s.Artist)
	fmt.Fprintf(&b, "{key: %s}\n", s.Key)
	if s.Tempo > 0 {
		fmt.Fprintf(&b, "{tempo: %d}\n", s.Tempo)
	}
	if s.TimeSignature != "" {
		fmt.Fprintf(&b, "{time: %s}\n", s.TimeSignature)
	}

	for _, sec := range s.Sections {
		b.WriteString("\n")
		fmt.Fprintf(&b, "{section: %s}\n", sec.DisplayName())
		if sec.Dynamics != "" {
			fmt.Fprintf(&b, "{dynamics: %s}\n", sec.Dynamics)
		}
		for _, line := range sec.Lines {
			if line.Annotation != "" {
				fmt.Fprintf(&b, "{dynamics: %s}\n", line.Annotation)
				continue
			}
			b.WriteString(formatLine(line))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// formatLine interleaves [chord] tokens back into the lyric text at
// their recorded positions.
func formatLine(line song.Line) string {
	if line.Lyrics == nil {
		// chord-only line: pad with spaces so the offsets survive a
		// round trip through the bracket scanner
		var b strings.Builder
		col := 0
		for _, cp := range line.Chords {
			for col < cp.Position {
				b.WriteByte(' ')
				col++
			}
			fmt.Fprintf(&b, "[%s]", cp.Chord.String())
		}
		return b.String()
	}
	lyrics := []rune(*line.Lyrics)

	var b strings.Builder
	ci := 0
	for pos := 0; pos <= len(lyrics); pos++ {
		for ci < len(line.Chords) && line.Chords[ci].Position == pos {
			fmt.Fprintf(&b, "[%s]", line.Chords[ci].Chord.String())
			ci++
		}
		if pos < len(lyrics) {
			b.WriteRune(lyrics[pos])
		}
	}
	// chords anchored past the end of the lyric text
	for ; ci < len(line.Chords); ci++ {
		fmt.Fprintf(&b, "[%s]", line.Chords[ci].Chord.String())
	}
	return b.String()
}

package render

import (
	"chordsheet/internal/layout"
	"chordsheet/internal/song"
)

// DisplayMode selects which rows of each line are rendered; the
// layout engine only ever sees the heights that result.
type DisplayMode string

const (
	ModeFull       DisplayMode = "full"
	ModeChordsOnly DisplayMode = "chords"
	ModeLyricsOnly DisplayMode = "lyrics"
)

// Style collects the knobs the renderer exposes. All sizes are font
// points; spacing is a ratio of line height to glyph height.
type Style struct {
	Mode          DisplayMode
	LyricFontPt   float64
	ChordFontPt   float64
	SectionFontPt float64
	TitleFontPt   float64
	SpacingRatio  float64
}

// DefaultStyle mirrors the proportions of the hand-tuned songsheet
// output.
func DefaultStyle() Style {
	return Style{
		Mode:          ModeFull,
		LyricFontPt:   11,
		ChordFontPt:   10,
		SectionFontPt: 12,
		TitleFontPt:   22,
		SpacingRatio:  1.5,
	}
}

func (st Style) lyricRowH() float64 {
	return st.SpacingRatio * GetFontHeight(st.LyricFontPt)
}

func (st Style) chordRowH() float64 {
	return st.SpacingRatio * GetFontHeight(st.ChordFontPt)
}

func (st Style) headerRowH() float64 {
	return st.SpacingRatio * GetFontHeight(st.SectionFontPt)
}

// lineHeight is the vertical space one parsed line occupies under the
// active display mode; zero when the mode suppresses it entirely.
func (st Style) lineHeight(l song.Line) float64 {
	if l.Annotation != "" {
		if st.Mode == ModeChordsOnly {
			return 0
		}
		return st.lyricRowH()
	}
	h := 0.0
	if len(l.Chords) > 0 && st.Mode != ModeLyricsOnly {
		h += st.chordRowH()
	}
	if l.HasLyrics() && st.Mode != ModeChordsOnly {
		h += st.lyricRowH()
	}
	return h
}

// sectionHeight measures one section. The heading always renders, even
// when the mode suppresses every line beneath it, so the reader can
// still follow the song structure.
func (st Style) sectionHeight(sec song.Section) float64 {
	h := st.headerRowH()
	if sec.Dynamics != "" && st.Mode != ModeChordsOnly {
		h += st.lyricRowH()
	}
	for _, l := range sec.Lines {
		h += st.lineHeight(l)
	}
	return h
}

// Measurer supplies the layout engine's height callback for a song.
func Measurer(s *song.Song, st Style) layout.MeasureFunc {
	return func(i int) float64 {
		if i < 0 || i >= len(s.Sections) {
			return 0
		}
		return st.sectionHeight(s.Sections[i])
	}
}

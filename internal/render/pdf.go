// Package render draws a laid-out song onto Letter pages with gofpdf.
// Everything is monospace courier so chord offsets line up with the
// lyric characters beneath them.
package render

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"chordsheet/internal/layout"
	"chordsheet/internal/song"
)

// NOTE padding is only added on the right and bottom sides of elements
// so that it is never doubled
const (
	pageWidth  = 8.5
	pageHeight = 11
	padding    = 0.25
)

// Pdf is the drawing surface subset the renderer needs, kept small so
// tests can substitute a recorder.
type Pdf interface {
	SetFont(familyStr, styleStr string, size float64)
	Text(x, y float64, txtStr string)
	SetLineWidth(width float64)
	Line(x1, y1, x2, y2 float64)
}

// PageGeometry computes the column geometry for the layout engine:
// the printable area below the song header split evenly into columns.
func PageGeometry(st Style, columns int) layout.Geometry {
	if columns <= 0 {
		columns = 2
	}
	top := padding + headerHeight(st)
	usable := pageWidth - 2*padding
	colGap := padding
	colWidth := (usable - colGap*float64(columns-1)) / float64(columns)

	return layout.Geometry{
		ColumnWidth:  colWidth,
		ColumnHeight: pageHeight - top - padding,
		Columns:      columns,
		SectionGap:   st.lyricRowH(),
		Left:         padding,
		Top:          top,
		ColumnGap:    colGap,
	}
}

func headerHeight(st Style) float64 {
	// title row plus the artist/key metadata row
	return 1.3*GetFontHeight(st.TitleFontPt) + 1.5*GetFontHeight(st.LyricFontPt) + padding
}

// WritePDF lays nothing out itself: it walks the placements computed by
// the layout engine and draws each section at its assigned coordinates.
func WritePDF(s *song.Song, res layout.Result, st Style, outPath string) error {
	pdf := gofpdf.New("P", "in", "Letter", "")
	pdf.SetMargins(0, 0, 0)

	for page := 0; page < res.PageCount; page++ {
		pdf.AddPage()
		drawHeader(pdf, s, st, page)
	}

	for _, p := range res.Placements {
		pdf.SetPage(p.Page + 1)
		x := res.Geometry.Left + float64(p.Column)*(res.Geometry.ColumnWidth+res.Geometry.ColumnGap)
		y := res.Geometry.Top + p.Y
		drawSection(pdf, s.Sections[p.SectionIndex], st, x, y)
	}

	return pdf.OutputFileAndClose(outPath)
}

// drawHeader prints the full title block on the first page and a
// running title on the rest.
func drawHeader(pdf Pdf, s *song.Song, st Style, page int) {
	titleH := GetFontHeight(st.TitleFontPt)
	if page > 0 {
		pdf.SetFont("courier", "", st.LyricFontPt)
		pdf.Text(padding, padding+GetFontHeight(st.LyricFontPt), s.Title)
		return
	}

	pdf.SetFont("courier", "", st.TitleFontPt)
	pdf.Text(padding, padding+titleH, s.Title)

	meta := fmt.Sprintf("%s   Key: %s", s.Artist, s.Key)
	if s.Tempo > 0 {
		meta += fmt.Sprintf("   %d BPM", s.Tempo)
	}
	if s.TimeSignature != "" {
		meta += "   " + s.TimeSignature
	}
	pdf.SetFont("courier", "", st.LyricFontPt)
	pdf.Text(padding, padding+1.3*titleH+GetFontHeight(st.LyricFontPt), meta)
}

func drawSection(pdf Pdf, sec song.Section, st Style, x, y float64) {
	headH := GetFontHeight(st.SectionFontPt)
	cursor := y + headH

	heading := strings.ToUpper(sec.DisplayName())
	pdf.SetFont("courier", "B", st.SectionFontPt)
	pdf.Text(x, cursor, heading)
	cursor += (st.SpacingRatio - 1) * headH

	if sec.Dynamics != "" && st.Mode != ModeChordsOnly {
		pdf.SetFont("courier", "I", st.LyricFontPt)
		pdf.Text(x, cursor+GetFontHeight(st.LyricFontPt), "("+sec.Dynamics+")")
		cursor += st.lyricRowH()
	}

	for _, line := range sec.Lines {
		cursor = drawLine(pdf, line, st, x, cursor)
	}
}

// drawLine prints the chord row above the lyric row. Chord x offsets
// are the chord's character position scaled by the lyric glyph width,
// which keeps the two rows aligned on the courier grid.
func drawLine(pdf Pdf, line song.Line, st Style, x, y float64) float64 {
	if line.Annotation != "" {
		if st.Mode == ModeChordsOnly {
			return y
		}
		pdf.SetFont("courier", "I", st.LyricFontPt)
		pdf.Text(x, y+GetFontHeight(st.LyricFontPt), "("+line.Annotation+")")
		return y + st.lyricRowH()
	}

	lyricW := GetCourierFontWidthFromHeight(GetFontHeight(st.LyricFontPt))

	if len(line.Chords) > 0 && st.Mode != ModeLyricsOnly {
		pdf.SetFont("courier", "B", st.ChordFontPt)
		chordY := y + GetFontHeight(st.ChordFontPt)
		for _, cp := range line.Chords {
			pdf.Text(x+float64(cp.Position)*lyricW, chordY, cp.Chord.String())
		}
		y += st.chordRowH()
	}

	if line.HasLyrics() && st.Mode != ModeChordsOnly {
		pdf.SetFont("courier", "", st.LyricFontPt)
		lyricY := y + GetFontHeight(st.LyricFontPt)
		// print each glyph on its own grid cell; font width metrics
		// drift too much over a whole line otherwise
		for i, ch := range []rune(*line.Lyrics) {
			pdf.Text(x+float64(i)*lyricW, lyricY, string(ch))
		}
		y += st.lyricRowH()
	}

	return y
}

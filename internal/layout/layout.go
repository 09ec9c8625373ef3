// Package layout maps a song's sections onto fixed page/column
// geometry. A section is always placed as one contiguous block in one
// column; it is never split.
package layout

import (
	"chordsheet/internal/song"
)

// Geometry describes the printable area the renderer hands us. All
// measurements share whatever unit the measure function uses (the PDF
// renderer works in inches).
type Geometry struct {
	ColumnWidth  float64 `json:"column_width"`
	ColumnHeight float64 `json:"column_height"`
	Columns      int     `json:"columns"`
	SectionGap   float64 `json:"section_gap"`

	// start offsets for converting logical coordinates to absolute
	// ones on the page
	Left      float64 `json:"left"`
	Top       float64 `json:"top"`
	ColumnGap float64 `json:"column_gap"`
}

// Placement locates one section: which page, which column, and the
// y offset within that column.
type Placement struct {
	SectionIndex int     `json:"section_index"`
	Page         int     `json:"page"`
	Column       int     `json:"column"`
	Y            float64 `json:"y"`
	Height       float64 `json:"height"`
}

// Result is the full layout of a song.
type Result struct {
	PageCount  int         `json:"page_count"`
	Placements []Placement `json:"placements"`
	Geometry   Geometry    `json:"geometry"`
}

// MeasureFunc reports the rendered height of a section. Display-mode
// line suppression lives with the renderer; the engine only sees the
// resulting number. A zero height means the section is filtered out
// entirely.
type MeasureFunc func(sectionIndex int) float64

// Flow places every section in document order with a single greedy
// pass. A section that will not fit in the remainder of a column moves
// to the top of the next one; a section too tall for even a fresh
// column is placed anyway and allowed to overflow, never truncated or
// split.
func Flow(s *song.Song, geo Geometry, measure MeasureFunc) Result {
	if geo.Columns <= 0 {
		geo.Columns = 2
	}

	page, column, y := 0, 0, 0.0
	lastPage := 0

	advance := func() {
		column++
		if column >= geo.Columns {
			column = 0
			page++
		}
		y = 0
	}

	var placements []Placement
	for i := range s.Sections {
		h := measure(i)
		if h <= 0 {
			continue
		}

		if y > 0 && y+h > geo.ColumnHeight {
			advance()
		}

		placements = append(placements, Placement{
			SectionIndex: i,
			Page:         page,
			Column:       column,
			Y:            y,
			Height:       h,
		})
		lastPage = page

		y += h + geo.SectionGap
		if y >= geo.ColumnHeight {
			// nothing more fits here, start the next section fresh
			advance()
		}
	}

	return Result{
		PageCount:  lastPage + 1,
		Placements: placements,
		Geometry:   geo,
	}
}

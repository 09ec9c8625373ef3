// Package song defines the in-memory model for a parsed chord chart.
package song

import "strconv"

// SectionType tags a structural block of a song.
type SectionType string

const (
	Intro        SectionType = "intro"
	Verse        SectionType = "verse"
	PreChorus    SectionType = "prechorus"
	Chorus       SectionType = "chorus"
	Bridge       SectionType = "bridge"
	Outro        SectionType = "outro"
	Tag          SectionType = "tag"
	Instrumental SectionType = "instrumental"
	Interlude    SectionType = "interlude"
	Vamp         SectionType = "vamp"
	Turnaround   SectionType = "turnaround"
	Ending       SectionType = "ending"
	Custom       SectionType = "custom"
	KeyChange    SectionType = "keychange"
)

// Chord is a single chord symbol. Root is a letter name with optional
// accidental ("Eb", "C#") or a scale degree ("1".."7", optionally
// alteration-prefixed "b7"/"#4"). Quality is the raw suffix ("m7",
// "sus4", ...) and Bass is only set for slash chords.
type Chord struct {
	Root    string `json:"root"`
	Quality string `json:"quality,omitempty"`
	Bass    string `json:"bass,omitempty"`
}

// String reassembles the chord text: root + quality + "/" + bass.
func (c Chord) String() string {
	out := c.Root + c.Quality
	if c.Bass != "" {
		out += "/" + c.Bass
	}
	return out
}

// ChordPosition anchors a chord at a 0-based character offset into the
// owning line's lyrics. For chord-only lines the offset orders the
// chords within the (absent) lyric text.
type ChordPosition struct {
	Chord    Chord `json:"chord"`
	Position int   `json:"position"`
}

// Line is one row of content within a section. Lyrics is nil for purely
// instrumental (chord-only) lines, which is distinct from an empty
// lyric string. Annotation carries a mid-section performance note.
type Line struct {
	Lyrics     *string         `json:"lyrics,omitempty"`
	Chords     []ChordPosition `json:"chords,omitempty"`
	Annotation string          `json:"annotation,omitempty"`
}

// HasLyrics reports whether the line carries lyric text.
func (l Line) HasLyrics() bool { return l.Lyrics != nil }

// Empty reports whether the line carries no content at all. Parsers
// filter such lines out rather than emitting them.
func (l Line) Empty() bool {
	return l.Lyrics == nil && len(l.Chords) == 0 && l.Annotation == ""
}

// Section is one structural block (verse, chorus, ...). Number
// disambiguates "Verse 1" from "Verse 2" (0 when unset). Label holds
// the verbatim display name for custom sections. Dynamics is a free
// text instrumentation note.
type Section struct {
	Type     SectionType `json:"type"`
	Number   int         `json:"number,omitempty"`
	Label    string      `json:"label,omitempty"`
	Dynamics string      `json:"dynamics,omitempty"`
	Lines    []Line      `json:"lines"`
}

// DisplayName is the section's human-readable heading.
func (s Section) DisplayName() string {
	name := s.Label
	if name == "" {
		name = string(s.Type)
	}
	if s.Number > 0 {
		return name + " " + strconv.Itoa(s.Number)
	}
	return name
}

// Song is the root aggregate produced by a single parse call. It is
// never mutated after construction; the transform methods return new
// trees.
type Song struct {
	Title         string    `json:"title"`
	Artist        string    `json:"artist"`
	Key           string    `json:"key"`
	Tempo         int       `json:"tempo,omitempty"`
	TimeSignature string    `json:"time_signature,omitempty"`
	Sections      []Section `json:"sections"`
}

// New returns a song carrying the documented defaults.
func New() *Song {
	return &Song{
		Title:  "Untitled",
		Artist: "Unknown",
		Key:    "C",
	}
}

// ParseResult is the uniform outcome of any parse call. On failure Song
// is nil and Errors holds exactly one entry. Warnings are non-fatal.
type ParseResult struct {
	Success  bool     `json:"success"`
	Song     *Song    `json:"song,omitempty"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Failure builds a failed result with a single error.
func Failure(err string) ParseResult {
	return ParseResult{Errors: []string{err}}
}

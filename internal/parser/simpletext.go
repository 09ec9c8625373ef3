package parser

import (
	"regexp"
	"strconv"
	"strings"

	"chordsheet/internal/song"
	"chordsheet/internal/theory"
)

const metadataScanLimit = 20

var (
	metaLineRe      = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z ]*?)\s*[:=]\s*(.*)$`)
	keyValueRe      = regexp.MustCompile(`^[A-Ga-g][#b]?m?$`)
	timeSigRe       = regexp.MustCompile(`^\d+/\d+$`)
	dynamicsParenRe = regexp.MustCompile(`^\((.+)\)$`)
	dynamicsLabelRe = regexp.MustCompile(`(?i)^dynamics\s*[:=]\s*(.+)$`)
)

// simpleState is the two-phase parser for the chords-above-lyrics
// dialect: a bounded metadata scan, then a body scan that pairs each
// chord line with the lyric line beneath it.
type simpleState struct {
	song       *song.Song
	current    *song.Section
	fresh      bool // current section has seen no content yet
	pending    string
	hasPending bool
	meta       metaTracker
	warnings   []string
}

func parseSimple(text string, opts Options) song.ParseResult {
	if strings.TrimSpace(text) == "" {
		return song.Failure("empty input")
	}

	st := &simpleState{song: song.New()}
	lines := splitLines(text)
	start := st.scanMetadata(lines)

	for _, line := range lines[start:] {
		st.handleLine(line)
	}
	st.flushPending()
	st.closeSection()

	if len(st.song.Sections) == 0 {
		st.warnings = append(st.warnings, "no sections found")
	}
	st.meta.applyDefaults(st.song, opts)
	return song.ParseResult{Success: true, Song: st.song, Warnings: st.warnings}
}

// scanMetadata recognizes leading Label: value lines within the first
// 20 lines of the chart, stopping at the first section header or
// non-metadata-shaped line. Returns the content start index.
func (st *simpleState) scanMetadata(lines []string) int {
	start := 0
	for i, raw := range lines {
		if i >= metadataScanLimit {
			break
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if simpleHeaderRe.MatchString(line) {
			break
		}
		m := metaLineRe.FindStringSubmatch(line)
		if m == nil {
			break
		}

		label := strings.ToLower(strings.TrimSpace(m[1]))
		value := strings.TrimSpace(m[2])
		recognized := true
		switch label {
		case "title", "song":
			if value != "" {
				st.song.Title = value
			}
		case "artist":
			if value != "" {
				st.song.Artist = value
			}
		case "key":
			if keyValueRe.MatchString(value) {
				st.song.Key = normalizeKey(value)
				st.meta.key = true
			}
		case "tempo", "bpm":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				st.song.Tempo = n
				st.meta.tempo = true
			}
		case "time", "time signature":
			if timeSigRe.MatchString(value) {
				st.song.TimeSignature = value
				st.meta.timeSig = true
			}
		default:
			recognized = false
		}
		if recognized {
			start = i + 1
		}
	}
	return start
}

func (st *simpleState) handleLine(raw string) {
	line := strings.TrimRight(raw, " \t")
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == "":
		st.flushPending()

	case simpleHeaderRe.MatchString(trimmed) || isHeaderLine(trimmed):
		st.flushPending()
		st.closeSection()
		sec := parseSectionName(trimmed[1 : len(trimmed)-1])
		st.current = &sec
		st.fresh = true

	case st.fresh && st.current.Dynamics == "" && isDynamicsLine(trimmed):
		st.current.Dynamics = dynamicsText(trimmed)
		st.fresh = false

	case isChordLine(trimmed):
		st.flushPending()
		st.pending = line
		st.hasPending = true
		st.fresh = false

	default:
		st.lyricLine(line)
		st.fresh = false
	}
}

// isHeaderLine matches bracketed headers that fall outside the
// all-caps detector shape, e.g. "[Verse 2]".
func isHeaderLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") &&
		!strings.Contains(trimmed[1:len(trimmed)-1], "[")
}

func isDynamicsLine(trimmed string) bool {
	return dynamicsParenRe.MatchString(trimmed) || dynamicsLabelRe.MatchString(trimmed)
}

func dynamicsText(trimmed string) string {
	if m := dynamicsParenRe.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := dynamicsLabelRe.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[1])
	}
	return trimmed
}

// isChordLine applies the majority heuristic: at least half of the
// whitespace-split tokens must independently parse as chords. An even
// split counts as a chord line.
func isChordLine(trimmed string) bool {
	tokens := strings.Fields(trimmed)
	if len(tokens) == 0 {
		return false
	}
	valid := 0
	for _, tok := range tokens {
		if theory.IsValidChord(tok) {
			valid++
		}
	}
	return valid*2 >= len(tokens)
}

// chordPositions parses the buffered chord line, keeping each token's
// character offset in the original line so chords stay aligned over
// the lyric text beneath them.
func chordPositions(line string) []song.ChordPosition {
	var out []song.ChordPosition
	runes := []rune(line)
	i := 0
	for i < len(runes) {
		if runes[i] == ' ' || runes[i] == '\t' {
			i++
			continue
		}
		start := i
		for i < len(runes) && runes[i] != ' ' && runes[i] != '\t' {
			i++
		}
		if c := theory.ParseChord(string(runes[start:i])); c != nil {
			out = append(out, song.ChordPosition{Chord: *c, Position: start})
		}
	}
	return out
}

func (st *simpleState) ensureSection() {
	if st.current == nil {
		sec := song.Section{Type: song.Verse}
		st.current = &sec
	}
}

// flushPending commits a buffered chord line that never found a lyric
// line to pair with, as a chord-only line.
func (st *simpleState) flushPending() {
	if !st.hasPending {
		return
	}
	chords := chordPositions(st.pending)
	st.pending = ""
	st.hasPending = false
	if len(chords) == 0 {
		return
	}
	st.ensureSection()
	st.current.Lines = append(st.current.Lines, song.Line{Chords: chords})
}

// lyricLine commits a lyric line, merging in the buffered chord line
// above it when present.
func (st *simpleState) lyricLine(line string) {
	var chords []song.ChordPosition
	if st.hasPending {
		chords = chordPositions(st.pending)
		st.pending = ""
		st.hasPending = false
	}
	text := line
	if strings.TrimSpace(text) == "" && len(chords) == 0 {
		return
	}
	st.ensureSection()
	st.current.Lines = append(st.current.Lines, song.Line{Lyrics: &text, Chords: chords})
}

func (st *simpleState) closeSection() {
	if st.current != nil && len(st.current.Lines) > 0 {
		st.song.Sections = append(st.song.Sections, *st.current)
	}
	st.current = nil
	st.fresh = false
}

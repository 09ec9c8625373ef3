package parser

import (
	"strconv"
	"strings"

	"chordsheet/internal/song"
	"chordsheet/internal/theory"
)

// chordProState is the line-oriented state machine for the directive
// dialect: {name: value} control lines and [chord] inline markup.
type chordProState struct {
	song            *song.Song
	current         *song.Section
	pendingDynamics string
	meta            metaTracker
	warnings        []string
}

func parseChordPro(text string, opts Options) song.ParseResult {
	if strings.TrimSpace(text) == "" {
		return song.Failure("empty input")
	}

	st := &chordProState{song: song.New()}
	for _, line := range splitLines(text) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if name, value, ok := parseDirective(trimmed); ok {
			st.handleDirective(name, value)
			continue
		}
		st.handleContent(trimmed)
	}
	st.closeSection()

	if len(st.song.Sections) == 0 {
		st.warnings = append(st.warnings, "no sections found")
	}
	st.meta.applyDefaults(st.song, opts)
	return song.ParseResult{Success: true, Song: st.song, Warnings: st.warnings}
}

// parseDirective recognizes a {name} or {name: value} control line.
func parseDirective(line string) (name, value string, ok bool) {
	if !directiveLineRe.MatchString(line) {
		return "", "", false
	}
	inner := strings.TrimSpace(line[1 : len(line)-1])
	if i := strings.Index(inner, ":"); i >= 0 {
		return strings.ToLower(strings.TrimSpace(inner[:i])), strings.TrimSpace(inner[i+1:]), true
	}
	return strings.ToLower(inner), "", true
}

func (st *chordProState) handleDirective(name, value string) {
	switch name {
	case "title", "t":
		if value != "" {
			st.song.Title = value
		}
	case "artist", "a":
		if value != "" {
			st.song.Artist = value
		}
	case "key", "k":
		if value != "" {
			st.song.Key = normalizeKey(value)
			st.meta.key = true
		}
	case "tempo", "bpm":
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			st.song.Tempo = n
			st.meta.tempo = true
		}
	case "time", "time_signature":
		if value != "" {
			st.song.TimeSignature = value
			st.meta.timeSig = true
		}

	case "section":
		st.openSection(parseSectionName(value))
	case "start_of_verse", "sov":
		st.openForcedSection(song.Verse, value)
	case "start_of_chorus", "soc":
		st.openForcedSection(song.Chorus, value)
	case "start_of_bridge", "sob":
		st.openForcedSection(song.Bridge, value)

	case "end_of_verse", "eov", "end_of_chorus", "eoc", "end_of_bridge", "eob":
		st.closeSection()

	case "dynamics", "comment", "c", "ci":
		st.noteDynamics(value)

	default:
		// unrecognized directives are ignored, forward compatible
	}
}

// openForcedSection opens a section whose type is pinned by the
// directive name; the value only contributes a number.
func (st *chordProState) openForcedSection(typ song.SectionType, value string) {
	sec := parseSectionName(value)
	sec.Type = typ
	sec.Label = ""
	st.openSection(sec)
}

func (st *chordProState) openSection(sec song.Section) {
	st.closeSection()
	if st.pendingDynamics != "" {
		sec.Dynamics = st.pendingDynamics
		st.pendingDynamics = ""
	}
	st.current = &sec
}

// closeSection appends the current section when it has content and
// clears the cursor.
func (st *chordProState) closeSection() {
	if st.current != nil && len(st.current.Lines) > 0 {
		st.song.Sections = append(st.song.Sections, *st.current)
	}
	st.current = nil
}

// noteDynamics attaches a performance note: to the open section while
// it is still empty, as an inline annotation line once it has content,
// or buffered for the next section when none is open.
func (st *chordProState) noteDynamics(value string) {
	if value == "" {
		return
	}
	switch {
	case st.current == nil:
		st.pendingDynamics = value
	case len(st.current.Lines) == 0 && st.current.Dynamics == "":
		st.current.Dynamics = value
	default:
		st.current.Lines = append(st.current.Lines, song.Line{Annotation: value})
	}
}

// handleContent scans a lyric line for [chord] tokens. Chord positions
// are indices into the stripped lyric text, not the raw line.
func (st *chordProState) handleContent(line string) {
	if st.current == nil {
		sec := song.Section{Type: song.Verse}
		if st.pendingDynamics != "" {
			sec.Dynamics = st.pendingDynamics
			st.pendingDynamics = ""
		}
		st.current = &sec
	}

	var lyrics []rune
	var chords []song.ChordPosition

	runes := []rune(line)
	for i := 0; i < len(runes); {
		if runes[i] == '[' {
			end := -1
			for j := i + 1; j < len(runes); j++ {
				if runes[j] == ']' {
					end = j
					break
				}
			}
			if end > i {
				if c := theory.ParseChord(string(runes[i+1 : end])); c != nil {
					chords = append(chords, song.ChordPosition{
						Chord:    *c,
						Position: len(lyrics),
					})
				}
				// unparseable bracket content is skipped outright
				i = end + 1
				continue
			}
		}
		lyrics = append(lyrics, runes[i])
		i++
	}

	newLine := song.Line{Chords: chords}
	text := string(lyrics)
	if strings.TrimSpace(text) != "" {
		newLine.Lyrics = &text
	}
	if newLine.Empty() {
		return
	}
	st.current.Lines = append(st.current.Lines, newLine)
}

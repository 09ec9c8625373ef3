package parser

import (
	"regexp"
	"strconv"
	"strings"

	"chordsheet/internal/song"
)

// section names and abbreviations recognized by both dialects
var sectionNames = map[string]song.SectionType{
	"intro":        song.Intro,
	"verse":        song.Verse,
	"v":            song.Verse,
	"prechorus":    song.PreChorus,
	"pre-chorus":   song.PreChorus,
	"pre chorus":   song.PreChorus,
	"pc":           song.PreChorus,
	"chorus":       song.Chorus,
	"c":            song.Chorus,
	"bridge":       song.Bridge,
	"b":            song.Bridge,
	"outro":        song.Outro,
	"tag":          song.Tag,
	"instrumental": song.Instrumental,
	"inst":         song.Instrumental,
	"interlude":    song.Interlude,
	"vamp":         song.Vamp,
	"turnaround":   song.Turnaround,
	"turn":         song.Turnaround,
	"ending":       song.Ending,
	"end":          song.Ending,
	"key change":   song.KeyChange,
	"keychange":    song.KeyChange,
	"key":          song.KeyChange,
}

var trailingNumberRe = regexp.MustCompile(`^(.*?)[\s.]*(\d+)$`)

// parseSectionName resolves a section heading like "Verse 2" or
// "Camp Medley" into a type, an optional number, and (for names outside
// the table) the verbatim label.
func parseSectionName(value string) song.Section {
	value = strings.TrimSpace(value)

	number := 0
	matchKey := value
	if m := trailingNumberRe.FindStringSubmatch(value); m != nil && m[1] != "" {
		matchKey = m[1]
		number, _ = strconv.Atoi(m[2])
	}

	if typ, ok := sectionNames[strings.ToLower(strings.TrimSpace(matchKey))]; ok {
		return song.Section{Type: typ, Number: number}
	}
	return song.Section{Type: song.Custom, Number: number, Label: strings.TrimSpace(matchKey)}
}

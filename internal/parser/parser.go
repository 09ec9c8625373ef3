// Package parser turns raw chord-chart text in either supported
// dialect into the song model. Malformed content never aborts a parse:
// bad tokens are dropped and the rest of the chart survives.
package parser

import (
	"fmt"
	"strings"
	"unicode"

	"chordsheet/internal/song"
)

// Options supplies fallback metadata, applied only when the source text
// itself does not specify the value.
type Options struct {
	DefaultKey           string
	DefaultTempo         int
	DefaultTimeSignature string
}

// Parse auto-detects the dialect and parses.
func Parse(text string, opts Options) song.ParseResult {
	return ParseAs(text, DetectFormat(text), opts)
}

// ParseAs parses with an explicit dialect. Unknown formats fail fast
// rather than silently defaulting.
func ParseAs(text string, format Format, opts Options) song.ParseResult {
	switch format {
	case FormatChordPro:
		return parseChordPro(text, opts)
	case FormatSimple:
		return parseSimple(text, opts)
	default:
		return song.Failure(fmt.Sprintf("unknown format %q", string(format)))
	}
}

// normalizeKey capitalizes the first letter of a key name, leaving the
// rest ("bm" -> "Bm") alone.
func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	runes := []rune(key)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// metaTracker records which song metadata the source text set, so
// option defaults never override explicit values.
type metaTracker struct {
	key, tempo, timeSig bool
}

func (m metaTracker) applyDefaults(s *song.Song, opts Options) {
	if !m.key && opts.DefaultKey != "" {
		s.Key = normalizeKey(opts.DefaultKey)
	}
	if !m.tempo && opts.DefaultTempo > 0 {
		s.Tempo = opts.DefaultTempo
	}
	if !m.timeSig && opts.DefaultTimeSignature != "" {
		s.TimeSignature = opts.DefaultTimeSignature
	}
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return lines
}

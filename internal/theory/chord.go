package theory

import (
	"regexp"
	"strings"

	"chordsheet/internal/song"
)

// quality suffixes seen in the wild often enough to whitelist outright
var knownQualities = map[string]bool{
	"": true, "m": true, "min": true, "maj": true, "-": true,
	"2": true, "5": true, "6": true, "7": true, "9": true, "11": true, "13": true,
	"m6": true, "m7": true, "m9": true, "m11": true, "m13": true,
	"maj7": true, "maj9": true, "maj11": true, "maj13": true,
	"min7": true, "min9": true, "m7b5": true, "7b9": true, "7#9": true,
	"dim": true, "dim7": true, "aug": true, "+": true, "o": true,
	"sus": true, "sus2": true, "sus4": true, "7sus": true, "7sus2": true, "7sus4": true,
	"6/9": true, "69": true,
}

// permissive structural patterns: the quality vocabulary in real charts
// is open ended, so this gate is a heuristic, not a grammar
var qualityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(m|min|maj|dim|aug)?[0-9]{0,2}(add[0-9]{1,2})+$`),
	regexp.MustCompile(`^(m|min|maj)?[0-9]{0,2}(sus[24]?)+$`),
	regexp.MustCompile(`^(m|min|maj)?[0-9]{0,2}[b#][0-9]{1,2}$`),
}

// parseRoot consumes a chord root from the front of s: a letter A-G
// (any case) with an optional accidental, or a scale degree 1-7 with an
// optional leading accidental. Returns the normalized root and the
// unconsumed remainder.
func parseRoot(s string) (root, rest string, ok bool) {
	if s == "" {
		return "", "", false
	}
	c := s[0]
	switch {
	case (c >= 'A' && c <= 'G') || (c >= 'a' && c <= 'g'):
		root = strings.ToUpper(s[:1])
		rest = s[1:]
		if len(rest) > 0 && (rest[0] == '#' || rest[0] == 'b') {
			root += string(rest[0])
			rest = rest[1:]
		}
		return root, rest, true

	case c >= '1' && c <= '7':
		return s[:1], s[1:], true

	case (c == '#' || c == 'b') && len(s) > 1 && s[1] >= '1' && s[1] <= '7':
		return s[:2], s[2:], true
	}
	return "", "", false
}

// IsNumberRoot reports whether the root is a scale degree rather than a
// letter name.
func IsNumberRoot(root string) bool {
	if root == "" {
		return false
	}
	d := root[len(root)-1]
	return d >= '1' && d <= '7'
}

// ParseChord parses chord text of the shape (root)(quality)(/bass)?.
// The last "/" splits off the bass, so qualities never contain one.
// Returns nil when no root can be recognized.
func ParseChord(text string) *song.Chord {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	body, bass := text, ""
	if i := strings.LastIndex(text, "/"); i > 0 && i < len(text)-1 {
		if b, rest, ok := parseRoot(text[i+1:]); ok && rest == "" {
			body, bass = text[:i], b
		}
	}

	root, quality, ok := parseRoot(body)
	if !ok {
		return nil
	}
	return &song.Chord{Root: root, Quality: quality, Bass: bass}
}

// IsValidChord reports whether the text parses as a chord whose quality
// is either whitelisted or structurally chord-shaped.
func IsValidChord(text string) bool {
	c := ParseChord(text)
	if c == nil {
		return false
	}
	if !IsNumberRoot(c.Root) {
		if _, ok := NoteIndex(c.Root); !ok {
			return false
		}
	}
	q := strings.ToLower(c.Quality)
	if knownQualities[q] {
		return true
	}
	for _, p := range qualityPatterns {
		if p.MatchString(q) {
			return true
		}
	}
	return false
}

// Transpose shifts the chord's root and bass by the signed semitone
// count, wrapping modulo 12. Scale-degree roots are already
// key-relative and pass through untouched.
func Transpose(c song.Chord, semitones int, preferFlats bool) song.Chord {
	if IsNumberRoot(c.Root) {
		return c
	}
	out := c
	if idx, ok := NoteIndex(c.Root); ok {
		out.Root = NoteAtIndex(idx+semitones, preferFlats)
	}
	if c.Bass != "" && !IsNumberRoot(c.Bass) {
		if idx, ok := NoteIndex(c.Bass); ok {
			out.Bass = NoteAtIndex(idx+semitones, preferFlats)
		}
	}
	return out
}

// Package theory implements note, scale and chord arithmetic: semitone
// indexing with correct enharmonic spelling, chord string parsing,
// transposition, and letter/Nashville-number conversion.
package theory

import (
	"strings"
	"unicode"
)

// The two spellings of the chromatic scale. Every pitch class must be
// reachable through either table.
var (
	sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	flatNames  = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

	// spellings that live outside both chromatic tables
	edgeCaseIndexes = map[string]int{
		"Cb": 11,
		"Fb": 4,
		"E#": 5,
		"B#": 0,
	}

	enharmonicPairs = map[string]string{
		"C#": "Db", "Db": "C#",
		"D#": "Eb", "Eb": "D#",
		"F#": "Gb", "Gb": "F#",
		"G#": "Ab", "Ab": "G#",
		"A#": "Bb", "Bb": "A#",
	}

	// keys whose conventional signature uses flats, with their
	// relative minors
	flatKeys = map[string]bool{
		"F": true, "Bb": true, "Eb": true, "Ab": true,
		"Db": true, "Gb": true, "Cb": true,
		"Dm": true, "Gm": true, "Cm": true, "Fm": true,
		"Bbm": true, "Ebm": true, "Abm": true,
	}
)

// NormalizeNote capitalizes the note letter, lowercases the remainder,
// and collapses double accidentals to their single-accidental chromatic
// equivalent ("C##" -> "D"). Empty input returns empty output.
func NormalizeNote(note string) string {
	note = strings.TrimSpace(note)
	if note == "" {
		return ""
	}
	runes := []rune(note)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	n := string(runes)

	if len(n) >= 3 {
		base, ok := NoteIndex(n[:1])
		if ok {
			switch n[1:3] {
			case "##":
				return NoteAtIndex(base+2, false)
			case "bb":
				return NoteAtIndex(base-2, true)
			}
		}
	}
	return n
}

// NoteIndex maps a note name to its semitone position 0..11. Both
// sharp and flat spellings are accepted for every pitch class.
func NoteIndex(note string) (int, bool) {
	n := NormalizeNote(note)
	if n == "" {
		return 0, false
	}
	for i, s := range sharpNames {
		if s == n {
			return i, true
		}
	}
	for i, f := range flatNames {
		if f == n {
			return i, true
		}
	}
	if idx, ok := edgeCaseIndexes[n]; ok {
		return idx, true
	}
	return 0, false
}

// NoteAtIndex is the inverse mapping. The index wraps modulo 12,
// including negative values.
func NoteAtIndex(index int, preferFlats bool) string {
	i := ((index % 12) + 12) % 12
	if preferFlats {
		return flatNames[i]
	}
	return sharpNames[i]
}

// KeyPrefersFlats reports whether the key's conventional signature is
// spelled with flats. Accepts major ("Eb") and minor ("Cm") names.
func KeyPrefersFlats(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}
	runes := []rune(key)
	runes[0] = unicode.ToUpper(runes[0])
	return flatKeys[string(runes)]
}

// Enharmonic returns the other common spelling of an ambiguous pitch
// class (C# <-> Db). Pitch classes with a single common spelling
// return ok=false.
func Enharmonic(note string) (string, bool) {
	other, ok := enharmonicPairs[NormalizeNote(note)]
	return other, ok
}

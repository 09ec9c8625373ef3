package theory

import (
	"fmt"
	"strings"
)

// ErrInvalidKeyRoot is returned by MajorScale for key roots outside
// the 15 conventional major keys. Guessing a spelling here would
// produce musically wrong charts, so the engine refuses instead.
var ErrInvalidKeyRoot = fmt.Errorf("invalid key root")

// The 15 standard major keys with their canonical spellings: each of
// the seven letter names appears exactly once per scale, so enharmonic
// collisions cannot occur.
var majorScales = map[string][7]string{
	"C":  {"C", "D", "E", "F", "G", "A", "B"},
	"G":  {"G", "A", "B", "C", "D", "E", "F#"},
	"D":  {"D", "E", "F#", "G", "A", "B", "C#"},
	"A":  {"A", "B", "C#", "D", "E", "F#", "G#"},
	"E":  {"E", "F#", "G#", "A", "B", "C#", "D#"},
	"B":  {"B", "C#", "D#", "E", "F#", "G#", "A#"},
	"F#": {"F#", "G#", "A#", "B", "C#", "D#", "E#"},
	"C#": {"C#", "D#", "E#", "F#", "G#", "A#", "B#"},
	"F":  {"F", "G", "A", "Bb", "C", "D", "E"},
	"Bb": {"Bb", "C", "D", "Eb", "F", "G", "A"},
	"Eb": {"Eb", "F", "G", "Ab", "Bb", "C", "D"},
	"Ab": {"Ab", "Bb", "C", "Db", "Eb", "F", "G"},
	"Db": {"Db", "Eb", "F", "Gb", "Ab", "Bb", "C"},
	"Gb": {"Gb", "Ab", "Bb", "Cb", "Db", "Eb", "F"},
	"Cb": {"Cb", "Db", "Eb", "Fb", "Gb", "Ab", "Bb"},
}

// Chromatic offsets from the key root for non-diatonic pitch classes,
// spelled as altered scale degrees.
var (
	sharpDegrees = map[int]string{1: "#1", 3: "#2", 6: "#4", 8: "#5", 10: "#6"}
	flatDegrees  = map[int]string{1: "b2", 3: "b3", 6: "b5", 8: "b6", 10: "b7"}
)

// MajorScale returns the canonically spelled 7-note major scale for one
// of the 15 standard key roots.
func MajorScale(keyRoot string) ([7]string, error) {
	scale, ok := majorScales[NormalizeNote(keyRoot)]
	if !ok {
		return [7]string{}, fmt.Errorf("%w: %q", ErrInvalidKeyRoot, keyRoot)
	}
	return scale, nil
}

// KeyRoot strips a trailing minor marker from a key name ("Cm" -> "C")
// and normalizes the spelling of what remains.
func KeyRoot(key string) string {
	key = strings.TrimSpace(key)
	key = strings.TrimSuffix(key, "m")
	return NormalizeNote(key)
}

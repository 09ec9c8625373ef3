package theory

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrUnparseableChord is returned by the notation converters when the
// input text has no recognizable root.
var ErrUnparseableChord = fmt.Errorf("unparseable chord")

// degreeOf locates a pitch class within the scale, matching by
// semitone index so either enharmonic spelling of a scale member is
// found. Returns the 1-indexed degree.
func degreeOf(scale [7]string, noteIdx int) (int, bool) {
	for i, name := range scale {
		idx, ok := NoteIndex(name)
		if ok && idx == noteIdx {
			return i + 1, true
		}
	}
	return 0, false
}

// numberRoot converts a letter root to its Nashville degree within the
// key: a diatonic member becomes its bare degree, anything else becomes
// a chromatically altered degree from the fixed offset tables.
func numberRoot(root string, scale [7]string, keyIdx int, preferFlats bool) (string, error) {
	noteIdx, ok := NoteIndex(root)
	if !ok {
		return "", fmt.Errorf("%w: bad root %q", ErrUnparseableChord, root)
	}
	if d, ok := degreeOf(scale, noteIdx); ok {
		return strconv.Itoa(d), nil
	}
	offset := ((noteIdx - keyIdx) % 12 + 12) % 12
	table := sharpDegrees
	if preferFlats {
		table = flatDegrees
	}
	deg, ok := table[offset]
	if !ok {
		return "", fmt.Errorf("%w: no degree at offset %d", ErrUnparseableChord, offset)
	}
	return deg, nil
}

// LetterToNumber converts a letter chord to Nashville-number notation
// relative to the given key, preserving quality and slash bass.
// Number-rooted input is returned unchanged.
func LetterToNumber(chordText, key string) (string, error) {
	c := ParseChord(chordText)
	if c == nil {
		return "", fmt.Errorf("%w: %q", ErrUnparseableChord, chordText)
	}
	if IsNumberRoot(c.Root) {
		return c.String(), nil
	}

	root := KeyRoot(key)
	scale, err := MajorScale(root)
	if err != nil {
		return "", err
	}
	keyIdx, ok := NoteIndex(root)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidKeyRoot, key)
	}
	preferFlats := KeyPrefersFlats(key)

	out, err := numberRoot(c.Root, scale, keyIdx, preferFlats)
	if err != nil {
		return "", err
	}
	out += c.Quality
	if c.Bass != "" && !IsNumberRoot(c.Bass) {
		b, err := numberRoot(c.Bass, scale, keyIdx, preferFlats)
		if err != nil {
			return "", err
		}
		out += "/" + b
	} else if c.Bass != "" {
		out += "/" + c.Bass
	}
	return out, nil
}

// letterRoot is the inverse of numberRoot: degree text (optionally
// alteration-prefixed) back to a letter spelling via the key's scale.
func letterRoot(degree string, scale [7]string) (string, error) {
	alter := 0
	switch {
	case strings.HasPrefix(degree, "#"):
		alter, degree = 1, degree[1:]
	case strings.HasPrefix(degree, "b"):
		alter, degree = -1, degree[1:]
	}
	d, err := strconv.Atoi(degree)
	if err != nil || d < 1 || d > 7 {
		return "", fmt.Errorf("%w: degree %q", ErrUnparseableChord, degree)
	}
	name := scale[d-1]
	if alter == 0 {
		return name, nil
	}
	idx, ok := NoteIndex(name)
	if !ok {
		return "", fmt.Errorf("%w: degree %q", ErrUnparseableChord, degree)
	}
	return NoteAtIndex(idx+alter, alter < 0), nil
}

// NumberToLetter converts Nashville-number chord text back to letter
// notation in the given key. Letter-rooted input is returned unchanged.
func NumberToLetter(numberText, key string) (string, error) {
	numberText = strings.TrimSpace(numberText)
	if numberText == "" {
		return "", fmt.Errorf("%w: empty input", ErrUnparseableChord)
	}

	scale, err := MajorScale(KeyRoot(key))
	if err != nil {
		return "", err
	}

	body, bass := numberText, ""
	if i := strings.LastIndex(numberText, "/"); i > 0 && i < len(numberText)-1 {
		body, bass = numberText[:i], numberText[i+1:]
	}

	// optional alteration, degree digit, trailing quality
	rootLen := 1
	if body[0] == '#' || body[0] == 'b' {
		rootLen = 2
	}
	if len(body) < rootLen {
		return "", fmt.Errorf("%w: %q", ErrUnparseableChord, numberText)
	}
	rootTxt, quality := body[:rootLen], body[rootLen:]
	d := rootTxt[len(rootTxt)-1]
	if d < '1' || d > '7' {
		// not number notation at all; letter chords pass through
		if c := ParseChord(numberText); c != nil && !IsNumberRoot(c.Root) {
			return c.String(), nil
		}
		return "", fmt.Errorf("%w: %q", ErrUnparseableChord, numberText)
	}

	out, err := letterRoot(rootTxt, scale)
	if err != nil {
		return "", err
	}
	out += quality
	if bass != "" {
		b, err := letterRoot(bass, scale)
		if err != nil {
			return "", err
		}
		out += "/" + b
	}
	return out, nil
}

package theory

import (
	"strings"

	"chordsheet/internal/song"
)

// cloneWith deep-copies the song, rewriting every chord through fn.
// The input tree is never touched, so callers may keep reading it
// concurrently.
func cloneWith(s *song.Song, fn func(song.Chord) song.Chord) *song.Song {
	out := *s
	out.Sections = make([]song.Section, len(s.Sections))
	for i, sec := range s.Sections {
		newSec := sec
		newSec.Lines = make([]song.Line, len(sec.Lines))
		for j, line := range sec.Lines {
			newLine := line
			if line.Lyrics != nil {
				lyr := *line.Lyrics
				newLine.Lyrics = &lyr
			}
			newLine.Chords = make([]song.ChordPosition, len(line.Chords))
			for k, cp := range line.Chords {
				newLine.Chords[k] = song.ChordPosition{
					Chord:    fn(cp.Chord),
					Position: cp.Position,
				}
			}
			newSec.Lines[j] = newLine
		}
		out.Sections[i] = newSec
	}
	return &out
}

// TransposeSong returns a new song shifted by the given semitone
// count. The key is transposed along with every chord, and the new
// key's signature decides sharp or flat spellings.
func TransposeSong(s *song.Song, semitones int) *song.Song {
	newKey := s.Key
	minor := strings.HasSuffix(s.Key, "m") && len(s.Key) > 1
	if idx, ok := NoteIndex(KeyRoot(s.Key)); ok {
		// pick the spelling whose signature is conventional: Db over
		// C#, but C#m over Dbm
		sharp := NoteAtIndex(idx+semitones, false)
		flat := NoteAtIndex(idx+semitones, true)
		suffix := ""
		if minor {
			suffix = "m"
		}
		if KeyPrefersFlats(flat + suffix) {
			newKey = flat + suffix
		} else {
			newKey = sharp + suffix
		}
	}
	preferFlats := KeyPrefersFlats(newKey)

	out := cloneWith(s, func(c song.Chord) song.Chord {
		return Transpose(c, semitones, preferFlats)
	})
	out.Key = newKey
	return out
}

// SongToNumbers returns a new song with every letter chord rewritten in
// Nashville-number notation relative to the song's key. Chords that
// cannot be converted are carried through unchanged.
func SongToNumbers(s *song.Song) *song.Song {
	return cloneWith(s, func(c song.Chord) song.Chord {
		text, err := LetterToNumber(c.String(), s.Key)
		if err != nil {
			return c
		}
		if converted := ParseNumberChord(text); converted != nil {
			return *converted
		}
		return c
	})
}

// SongToLetters is the inverse of SongToNumbers.
func SongToLetters(s *song.Song) *song.Song {
	return cloneWith(s, func(c song.Chord) song.Chord {
		if !IsNumberRoot(c.Root) {
			return c
		}
		text, err := NumberToLetter(c.String(), s.Key)
		if err != nil {
			return c
		}
		if converted := ParseChord(text); converted != nil {
			return *converted
		}
		return c
	})
}

// ParseNumberChord splits Nashville chord text into its parts, keeping
// alteration-prefixed degree roots ("b7", "#4") intact.
func ParseNumberChord(text string) *song.Chord {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	body, bass := text, ""
	if i := strings.LastIndex(text, "/"); i > 0 && i < len(text)-1 {
		body, bass = text[:i], text[i+1:]
	}
	rootLen := 1
	if body[0] == '#' || body[0] == 'b' {
		rootLen = 2
	}
	if len(body) < rootLen {
		return nil
	}
	d := body[rootLen-1]
	if d < '1' || d > '7' {
		return nil
	}
	return &song.Chord{Root: body[:rootLen], Quality: body[rootLen:], Bass: bass}
}

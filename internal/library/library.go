// Package library is the file-based song store. Songs are persisted as
// their raw source text, never as parsed trees, so they stay editable
// with any text editor and re-parse on every use.
package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"chordsheet/internal/parser"
)

const (
	indexFile = "index.yaml"
	trashDir  = ".trash"
)

var (
	ErrNotFound = fmt.Errorf("song not found")
)

// Entry is one stored song's metadata, kept in the index so listing
// does not require re-parsing every chart.
type Entry struct {
	ID        string    `yaml:"id"`
	Title     string    `yaml:"title"`
	Artist    string    `yaml:"artist"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

type index struct {
	Songs []Entry `yaml:"songs"`
}

// Library stores song source text under a single directory, one file
// per song plus a yaml index.
type Library struct {
	dir string
	log *logrus.Logger
}

func New(dir string, log *logrus.Logger) (*Library, error) {
	if log == nil {
		log = logrus.New()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating library dir: %w", err)
	}
	return &Library{dir: dir, log: log}, nil
}

func (l *Library) songPath(id string) string {
	return filepath.Join(l.dir, id+".txt")
}

// Save stores new song source text and returns its entry. Title and
// artist are read from a parse of the source; an unparseable chart is
// still saved, with placeholder metadata, because losing the user's
// text is worse than an ugly listing.
func (l *Library) Save(source string) (Entry, error) {
	entry := Entry{
		ID:        uuid.NewString(),
		Title:     "Untitled",
		Artist:    "Unknown",
		UpdatedAt: time.Now().UTC(),
	}
	if res := parser.Parse(source, parser.Options{}); res.Success {
		entry.Title = res.Song.Title
		entry.Artist = res.Song.Artist
	}

	if err := os.WriteFile(l.songPath(entry.ID), []byte(source), 0644); err != nil {
		return Entry{}, fmt.Errorf("writing song: %w", err)
	}
	if err := l.updateIndex(func(idx *index) {
		idx.Songs = append(idx.Songs, entry)
	}); err != nil {
		return Entry{}, err
	}

	l.log.WithFields(logrus.Fields{"id": entry.ID, "title": entry.Title}).Info("Song saved")
	return entry, nil
}

// Update replaces the source text of an existing song.
func (l *Library) Update(id, source string) error {
	if _, err := l.find(id); err != nil {
		return err
	}
	if err := os.WriteFile(l.songPath(id), []byte(source), 0644); err != nil {
		return fmt.Errorf("writing song: %w", err)
	}

	title, artist := "Untitled", "Unknown"
	if res := parser.Parse(source, parser.Options{}); res.Success {
		title, artist = res.Song.Title, res.Song.Artist
	}
	err := l.updateIndex(func(idx *index) {
		for i := range idx.Songs {
			if idx.Songs[i].ID == id {
				idx.Songs[i].Title = title
				idx.Songs[i].Artist = artist
				idx.Songs[i].UpdatedAt = time.Now().UTC()
			}
		}
	})
	if err != nil {
		return err
	}

	l.log.WithField("id", id).Info("Song updated")
	return nil
}

// Load returns the stored source text.
func (l *Library) Load(id string) (string, error) {
	if _, err := l.find(id); err != nil {
		return "", err
	}
	data, err := os.ReadFile(l.songPath(id))
	if err != nil {
		return "", fmt.Errorf("reading song: %w", err)
	}
	return string(data), nil
}

// List returns all entries, most recently updated first.
func (l *Library) List() ([]Entry, error) {
	idx, err := l.readIndex()
	if err != nil {
		return nil, err
	}
	sort.Slice(idx.Songs, func(i, j int) bool {
		return idx.Songs[i].UpdatedAt.After(idx.Songs[j].UpdatedAt)
	})
	return idx.Songs, nil
}

// Trash moves a song into the trash subdirectory and drops it from the
// index. The file itself is kept so a mistake is recoverable by hand.
func (l *Library) Trash(id string) error {
	if _, err := l.find(id); err != nil {
		return err
	}

	dest := filepath.Join(l.dir, trashDir)
	if err := os.MkdirAll(dest, 0755); err != nil {
		return fmt.Errorf("creating trash dir: %w", err)
	}
	if err := os.Rename(l.songPath(id), filepath.Join(dest, id+".txt")); err != nil {
		return fmt.Errorf("moving song to trash: %w", err)
	}
	err := l.updateIndex(func(idx *index) {
		kept := idx.Songs[:0]
		for _, e := range idx.Songs {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		idx.Songs = kept
	})
	if err != nil {
		return err
	}

	l.log.WithField("id", id).Info("Song trashed")
	return nil
}

func (l *Library) find(id string) (Entry, error) {
	idx, err := l.readIndex()
	if err != nil {
		return Entry{}, err
	}
	for _, e := range idx.Songs {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (l *Library) readIndex() (*index, error) {
	data, err := os.ReadFile(filepath.Join(l.dir, indexFile))
	if os.IsNotExist(err) {
		return &index{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}
	var idx index
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parsing index: %w", err)
	}
	return &idx, nil
}

func (l *Library) updateIndex(mutate func(*index)) error {
	idx, err := l.readIndex()
	if err != nil {
		return err
	}
	mutate(idx)
	data, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(l.dir, indexFile), data, 0644); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	return nil
}

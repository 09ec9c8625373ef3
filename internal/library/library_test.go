package library

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLib(t *testing.T) *Library {
	log := logrus.New()
	log.SetOutput(io.Discard)
	lib, err := New(t.TempDir(), log)
	require.NoError(t, err)
	return lib
}

const source = "{title: Stored Song}\n{artist: Somebody}\n{section: Verse}\n[C]la"

func TestSaveAndLoad(t *testing.T) {
	lib := testLib(t)

	entry, err := lib.Save(source)
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "Stored Song", entry.Title)
	assert.Equal(t, "Somebody", entry.Artist)

	got, err := lib.Load(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, source, got, "the raw source text round-trips untouched")
}

func TestSaveUnparseableStillStored(t *testing.T) {
	lib := testLib(t)

	entry, err := lib.Save("")
	require.NoError(t, err)
	assert.Equal(t, "Untitled", entry.Title)

	got, err := lib.Load(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestUpdate(t *testing.T) {
	lib := testLib(t)
	entry, err := lib.Save(source)
	require.NoError(t, err)

	updated := "{title: New Name}\n{section: Verse}\n[G]la"
	require.NoError(t, lib.Update(entry.ID, updated))

	entries, err := lib.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "New Name", entries[0].Title)

	got, err := lib.Load(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateMissing(t *testing.T) {
	lib := testLib(t)
	err := lib.Update("nope", "text")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList(t *testing.T) {
	lib := testLib(t)
	_, err := lib.Save("{title: One}\n{section: Verse}\n[C]x")
	require.NoError(t, err)
	_, err = lib.Save("{title: Two}\n{section: Verse}\n[D]x")
	require.NoError(t, err)

	entries, err := lib.List()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestTrash(t *testing.T) {
	lib := testLib(t)
	entry, err := lib.Save(source)
	require.NoError(t, err)

	require.NoError(t, lib.Trash(entry.ID))

	_, err = lib.Load(entry.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	entries, err := lib.List()
	require.NoError(t, err)
	assert.Empty(t, entries)

	// the file survives in the trash directory
	_, statErr := os.Stat(filepath.Join(lib.dir, trashDir, entry.ID+".txt"))
	assert.NoError(t, statErr)
}

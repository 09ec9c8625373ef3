package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, "test_config.yaml")
	configContent := `
defaults:
  key: Eb
  tempo: 72
  time_signature: 6/8
page:
  columns: 3
  mode: chords
library:
  dir: /tmp/songs
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	assert.NoError(t, err)

	cfg, err := Load(configPath)

	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "Eb", cfg.Defaults.Key)
	assert.Equal(t, 72, cfg.Defaults.Tempo)
	assert.Equal(t, "6/8", cfg.Defaults.TimeSignature)
	assert.Equal(t, 3, cfg.Page.Columns)
	assert.Equal(t, "chords", cfg.Page.Mode)
	assert.Equal(t, "/tmp/songs", cfg.Library.Dir)

	// unspecified values still get defaults
	assert.Equal(t, 11.0, cfg.Page.LyricFontPt)
}

func TestLoadNonExistentFile(t *testing.T) {
	cfg, err := Load("non_existent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, "invalid_config.yaml")
	configContent := `
page:
  columns: [this is not valid yaml
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	assert.NoError(t, err)

	cfg, err := Load(configPath)

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 2, cfg.Page.Columns)
	assert.Equal(t, "full", cfg.Page.Mode)
	assert.NotEmpty(t, cfg.Library.Dir)
	assert.Empty(t, cfg.Defaults.Key)
}

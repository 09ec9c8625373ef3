// Package config loads the yaml configuration file shared by the CLI
// commands.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Page     PageConfig     `yaml:"page"`
	Library  LibraryConfig  `yaml:"library"`
}

// DefaultsConfig fills song metadata the source text omits. Values the
// chart specifies always win.
type DefaultsConfig struct {
	Key           string `yaml:"key"`
	Tempo         int    `yaml:"tempo"`
	TimeSignature string `yaml:"time_signature"`
}

type PageConfig struct {
	Columns     int     `yaml:"columns"`
	LyricFontPt float64 `yaml:"lyric_font_pt"`
	ChordFontPt float64 `yaml:"chord_font_pt"`
	Mode        string  `yaml:"mode"`
}

type LibraryConfig struct {
	Dir string `yaml:"dir"`
}

// Load reads the config at path and fills in defaults for anything
// not provided.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config *Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	if config == nil {
		config = &Config{}
	}
	config.fillDefaults()
	return config, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	c := &Config{}
	c.fillDefaults()
	return c
}

func (c *Config) fillDefaults() {
	if c.Page.Columns == 0 {
		c.Page.Columns = 2
	}
	if c.Page.LyricFontPt == 0 {
		c.Page.LyricFontPt = 11
	}
	if c.Page.ChordFontPt == 0 {
		c.Page.ChordFontPt = 10
	}
	if c.Page.Mode == "" {
		c.Page.Mode = "full"
	}
	if c.Library.Dir == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			c.Library.Dir = home + "/.chordsheet/songs"
		} else {
			c.Library.Dir = ".chordsheet/songs"
		}
	}
}

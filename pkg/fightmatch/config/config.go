// Package config loads optional engine configuration files and constructs
// the components built from them. Every path is optional; a missing path
// falls back to the embedded defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/octagonmedia/fightmatch/pkg/fightmatch/textmatch"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/vocab"
)

// Settings is the CLI/service configuration file.
type Settings struct {
	DBPath       string `yaml:"db_path"`
	ContentCSV   string `yaml:"content_csv"`
	FightersCSV  string `yaml:"fighters_csv"`
	MappingCSV   string `yaml:"mapping_csv"`
	FightsCSV    string `yaml:"fights_csv"`
	VocabPath    string `yaml:"vocab_path"`
	UseAutomaton bool   `yaml:"use_automaton"`
}

// LoadSettings reads a settings YAML file.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Loader constructs the tagging components from configuration paths.
type Loader struct {
	VocabPath    string
	UseAutomaton bool
}

// Components holds the loaded tagging pieces.
type Components struct {
	Table   *vocab.Table
	Matcher textmatch.Matcher
}

// Load builds the vocabulary table and matcher. An empty VocabPath uses
// the embedded default vocabulary.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	if l.VocabPath != "" {
		table, err := vocab.LoadYAML(l.VocabPath)
		if err != nil {
			return nil, fmt.Errorf("load vocabulary: %w", err)
		}
		comp.Table = table
	} else {
		comp.Table = vocab.Default()
	}

	if l.UseAutomaton {
		comp.Matcher = textmatch.NewAhoMatcher(comp.Table)
	} else {
		comp.Matcher = textmatch.NewSubstringMatcher(comp.Table)
	}
	return comp, nil
}

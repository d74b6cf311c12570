package vocab

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/octagonmedia/fightmatch/pkg/fightmatch/internalerr"
)

// ThemeEntry pairs a theme id with its ordered trigger keywords.
type ThemeEntry struct {
	ID       string
	Keywords []string
}

// PatternRule adds themes when any keyword from Any occurs in the text and
// every keyword from All occurs. Rules are evaluated independently and never
// short-circuit each other.
type PatternRule struct {
	Any    []string
	All    []string
	Themes []string
}

// TypeRule expands a content type into themes. Type rules are ordered and
// exclusive: the first rule whose Match substring occurs in the type wins.
type TypeRule struct {
	Match  []string
	Themes []string
}

// ArchetypeEntry pairs a character archetype id with its trigger keywords.
type ArchetypeEntry struct {
	ID       string
	Keywords []string
}

// Table holds the shared theme vocabulary and every expansion table the
// taggers consume. Immutable after construction.
type Table struct {
	Themes []ThemeEntry

	GenreThemes     map[string][]string
	TypeThemes      []TypeRule
	ArchetypeThemes map[string][]string

	DescriptionRules []PatternRule
	TitleRules       []PatternRule
	LoreRules        []PatternRule

	ContentArchetypes []ArchetypeEntry
	FighterArchetypes []ArchetypeEntry

	index map[string]int
}

// Default returns the built-in table shared by fighters and content.
func Default() *Table {
	return defaultTable
}

func newTable(themes []ThemeEntry) *Table {
	t := &Table{Themes: themes}
	t.reindex()
	return t
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Themes))
	for i, e := range t.Themes {
		t.index[e.ID] = i
	}
}

// Has reports whether the theme id exists in the vocabulary.
func (t *Table) Has(id string) bool {
	_, ok := t.index[id]
	return ok
}

// Keywords returns the trigger keywords for a theme id, nil when unknown.
func (t *Table) Keywords(id string) []string {
	if i, ok := t.index[id]; ok {
		return t.Themes[i].Keywords
	}
	return nil
}

// ThemeIDs returns every theme id in table order.
func (t *Table) ThemeIDs() []string {
	ids := make([]string, len(t.Themes))
	for i, e := range t.Themes {
		ids[i] = e.ID
	}
	return ids
}

// FormatTheme renders a theme id for display: "championship_quest" becomes
// "Championship Quest".
func FormatTheme(id string) string {
	if id == "" {
		return ""
	}
	words := strings.Split(strings.ReplaceAll(id, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// FormatThemes renders a list of theme ids for display, dropping empties.
func FormatThemes(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		out = append(out, FormatTheme(id))
	}
	return out
}

// yamlVocab is the on-disk override format:
//
//	themes:
//	  - id: aggression
//	    keywords: [aggressive, relentless]
type yamlVocab struct {
	Themes []struct {
		ID       string   `yaml:"id"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"themes"`
}

// LoadYAML reads a vocabulary override file. The returned table carries the
// file's themes with the default expansion tables, so a deployment can swap
// trigger keywords without redefining genre or archetype maps.
func LoadYAML(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg yamlVocab
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Themes) == 0 {
		return nil, internalerr.ErrInvalidConfig
	}

	themes := make([]ThemeEntry, 0, len(cfg.Themes))
	for _, e := range cfg.Themes {
		id := strings.TrimSpace(strings.ToLower(e.ID))
		if id == "" {
			continue
		}
		kws := make([]string, 0, len(e.Keywords))
		for _, kw := range e.Keywords {
			kw = strings.TrimSpace(strings.ToLower(kw))
			if kw != "" {
				kws = append(kws, kw)
			}
		}
		themes = append(themes, ThemeEntry{ID: id, Keywords: kws})
	}

	t := newTable(themes)
	t.GenreThemes = defaultTable.GenreThemes
	t.TypeThemes = defaultTable.TypeThemes
	t.ArchetypeThemes = defaultTable.ArchetypeThemes
	t.DescriptionRules = defaultTable.DescriptionRules
	t.TitleRules = defaultTable.TitleRules
	t.LoreRules = defaultTable.LoreRules
	t.ContentArchetypes = defaultTable.ContentArchetypes
	t.FighterArchetypes = defaultTable.FighterArchetypes
	return t, nil
}

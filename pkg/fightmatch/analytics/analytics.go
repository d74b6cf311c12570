// Package analytics derives the observed vocabularies of a loaded catalog:
// which themes and genres actually occur, and how often. Filter UIs are
// populated from these rather than from the static vocabulary, so options
// never point at empty result sets.
package analytics

import (
	"sort"

	"github.com/octagonmedia/fightmatch/pkg/fightmatch/stats"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/store"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/textmatch"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/vocab"
)

// Analyzer scans catalogs for observed tag values.
type Analyzer struct {
	matcher textmatch.Matcher
}

// New builds an analyzer. A nil matcher falls back to the reference
// substring implementation over the default vocabulary.
func New(matcher textmatch.Matcher) *Analyzer {
	if matcher == nil {
		matcher = textmatch.NewSubstringMatcher(vocab.Default())
	}
	return &Analyzer{matcher: matcher}
}

// AllThemes returns every distinct theme observed across the catalog,
// sorted: seeded content themes, themes extracted from fighter lore, and
// themes inferred from fighter stats. Empty inputs yield an empty slice.
func (a *Analyzer) AllThemes(content []store.Content, fighters []store.Fighter) []string {
	set := make(map[string]struct{})
	for _, c := range content {
		for _, t := range c.Themes {
			set[t] = struct{}{}
		}
	}
	for _, f := range fighters {
		if f.Lore != "" {
			for _, t := range a.matcher.Themes(f.Lore) {
				set[t] = struct{}{}
			}
		}
		for _, t := range stats.Themes(f) {
			set[t] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// AllGenres returns every distinct genre in the content catalog, sorted.
func (a *Analyzer) AllGenres(content []store.Content) []string {
	set := make(map[string]struct{})
	for _, c := range content {
		for _, g := range c.Genres {
			set[g] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// Count is a tag value with its occurrence count.
type Count struct {
	Value string
	N     int
}

// ThemeCounts returns seeded content theme frequencies, most frequent
// first, ties broken by value.
func (a *Analyzer) ThemeCounts(content []store.Content) []Count {
	counts := make(map[string]int)
	for _, c := range content {
		for _, t := range c.Themes {
			counts[t]++
		}
	}
	return sortedCounts(counts)
}

// GenreCounts returns genre frequencies over the content catalog.
func (a *Analyzer) GenreCounts(content []store.Content) []Count {
	counts := make(map[string]int)
	for _, c := range content {
		for _, g := range c.Genres {
			counts[g]++
		}
	}
	return sortedCounts(counts)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedCounts(counts map[string]int) []Count {
	out := make([]Count, 0, len(counts))
	for v, n := range counts {
		out = append(out, Count{Value: v, N: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Value < out[j].Value
	})
	return out
}

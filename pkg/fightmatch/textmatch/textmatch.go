// Package textmatch extracts vocabulary themes from free text.
//
// Matching is case-insensitive substring containment: a theme fires when any
// of its trigger keywords occurs anywhere in the text, including inside other
// words. Both implementations honor exactly that contract so they can be
// swapped freely.
package textmatch

import (
	"sort"
	"strings"

	"github.com/octagonmedia/fightmatch/pkg/fightmatch/vocab"
)

// Matcher extracts theme ids from text. Implementations must be safe for
// concurrent use after construction.
type Matcher interface {
	// Themes returns the sorted distinct theme ids whose trigger keywords
	// occur in text. Empty text yields an empty slice.
	Themes(text string) []string
}

// SubstringMatcher is the reference implementation: a direct scan of every
// keyword with strings.Contains. It defines the matching semantics.
type SubstringMatcher struct {
	table *vocab.Table
}

// NewSubstringMatcher builds a matcher over the given vocabulary.
func NewSubstringMatcher(t *vocab.Table) *SubstringMatcher {
	return &SubstringMatcher{table: t}
}

func (m *SubstringMatcher) Themes(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	var ids []string
	for _, e := range m.table.Themes {
		for _, kw := range e.Keywords {
			if kw != "" && strings.Contains(lower, kw) {
				ids = append(ids, e.ID)
				break
			}
		}
	}
	sort.Strings(ids)
	return ids
}

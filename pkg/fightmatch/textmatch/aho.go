package textmatch

import (
	"sort"
	"strings"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"github.com/octagonmedia/fightmatch/pkg/fightmatch/vocab"
)

// AhoMatcher matches every trigger keyword in one pass over the text using an
// Aho-Corasick automaton. StandardMatch plus IterOverlapping reports every
// occurrence including overlaps, which keeps substring-containment semantics
// when one keyword contains another ("relentless pressure" vs "relentless").
type AhoMatcher struct {
	ac ahocorasick.AhoCorasick

	// patternTheme[i] holds the theme ids triggered by pattern i. A keyword
	// shared by several themes is built once and fans out here.
	patternTheme [][]string
}

// NewAhoMatcher compiles the vocabulary into an automaton. Keywords are
// lowercased at build time; input text is lowercased at match time, so ASCII
// case folding in the builder is unnecessary.
func NewAhoMatcher(t *vocab.Table) *AhoMatcher {
	byKeyword := make(map[string][]string)
	var patterns []string
	for _, e := range t.Themes {
		for _, kw := range e.Keywords {
			kw = strings.ToLower(kw)
			if kw == "" {
				continue
			}
			if _, seen := byKeyword[kw]; !seen {
				patterns = append(patterns, kw)
			}
			byKeyword[kw] = append(byKeyword[kw], e.ID)
		}
	}

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: false,
		MatchOnlyWholeWords:  false,
		MatchKind:            ahocorasick.StandardMatch, // required for IterOverlapping
		DFA:                  false,
	})
	ac := builder.Build(patterns)

	pt := make([][]string, len(patterns))
	for i, p := range patterns {
		pt[i] = byKeyword[p]
	}
	return &AhoMatcher{ac: ac, patternTheme: pt}
}

func (m *AhoMatcher) Themes(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	seen := make(map[string]struct{})
	iter := m.ac.IterOverlapping(lower)
	for {
		match := iter.Next()
		if match == nil {
			break
		}
		idx := match.Pattern()
		if idx >= len(m.patternTheme) {
			continue
		}
		for _, id := range m.patternTheme[idx] {
			seen[id] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

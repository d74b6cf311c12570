// Package recommend matches fighters to media content and back using the
// precomputed similarity mapping, with a direct tag-matching fallback when
// the mapping has no coverage for a filter selection.
package recommend

import (
	"sort"
	"strings"

	"github.com/octagonmedia/fightmatch/pkg/fightmatch/store"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/tagger"
)

// FighterRec is one recommended fighter.
type FighterRec struct {
	FighterName    string
	FightingStyle  string
	Score          float64
	Explanation    string
	Lore           string
	CommonThemes   string // comma-joined aggregate
	CommonGenres   string
	SourceContent  string // up to 3 source titles, comma-joined
	FighterCluster string
}

// ContentRec is one recommended content item.
type ContentRec struct {
	Title        string
	Type         string
	Description  string
	Score        float64
	Explanation  string
	CommonThemes string
	CommonGenres string
}

// Filters selects content rows for fighter discovery. Genre, theme and
// archetype filters combine with OR over the categories actually provided:
// a row passes when any provided category matches. Matching is
// case-insensitive substring containment against the raw catalog columns.
// Types and Titles are exact-membership restrictions applied afterwards.
type Filters struct {
	Genres     []string
	Themes     []string
	Archetypes []string
	Types      []string
	Titles     []string
}

func (f Filters) hasTagFilter() bool {
	return len(f.Genres) > 0 || len(f.Themes) > 0 || len(f.Archetypes) > 0
}

// Engine answers recommendation queries over loaded read-only catalogs.
type Engine struct {
	content  []store.Content
	fighters []store.Fighter
	mapping  []store.SimilarityEntry

	tg *tagger.Tagger

	contentByTitle   map[string]int
	fighterByName    map[string]int
	mappingByTitle   map[string][]int
	mappingByFighter map[string][]int
}

// New indexes the catalogs. The slices are shared, not copied; callers must
// not mutate them afterwards.
func New(content []store.Content, fighters []store.Fighter, mapping []store.SimilarityEntry, tg *tagger.Tagger) *Engine {
	if tg == nil {
		tg = tagger.New(nil, nil)
	}
	e := &Engine{
		content:          content,
		fighters:         fighters,
		mapping:          mapping,
		tg:               tg,
		contentByTitle:   make(map[string]int, len(content)),
		fighterByName:    make(map[string]int, len(fighters)),
		mappingByTitle:   make(map[string][]int),
		mappingByFighter: make(map[string][]int),
	}
	for i, c := range content {
		if _, dup := e.contentByTitle[c.Title]; !dup {
			e.contentByTitle[c.Title] = i
		}
	}
	for i, f := range fighters {
		if _, dup := e.fighterByName[f.Name]; !dup {
			e.fighterByName[f.Name] = i
		}
	}
	for i, m := range mapping {
		e.mappingByTitle[m.ContentTitle] = append(e.mappingByTitle[m.ContentTitle], i)
		e.mappingByFighter[m.FighterName] = append(e.mappingByFighter[m.FighterName], i)
	}
	return e
}

// fighterGroup accumulates the per-fighter aggregate while walking matches.
type fighterGroup struct {
	name       string
	score      float64
	style      string
	cluster    string
	themes     map[string]struct{}
	genres     map[string]struct{}
	narratives map[string]struct{}
	sources    []string
}

// FightersForContent aggregates the top mapping rows for the given titles
// into at most n fighter recommendations. Unknown titles contribute nothing.
func (e *Engine) FightersForContent(titles []string, n int) []FighterRec {
	if len(e.mapping) == 0 || len(titles) == 0 || n <= 0 {
		return nil
	}

	// Over-fetch per title so aggregation across titles still fills n slots.
	var combined []store.SimilarityEntry
	for _, title := range titles {
		idxs := e.mappingByTitle[title]
		rows := make([]store.SimilarityEntry, len(idxs))
		for i, idx := range idxs {
			rows[i] = e.mapping[idx]
		}
		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].Score != rows[j].Score {
				return rows[i].Score > rows[j].Score
			}
			return rows[i].FighterName < rows[j].FighterName
		})
		if len(rows) > 2*n {
			rows = rows[:2*n]
		}
		combined = append(combined, rows...)
	}
	if len(combined) == 0 {
		return nil
	}

	groups := make(map[string]*fighterGroup)
	var order []string
	for _, row := range combined {
		g, ok := groups[row.FighterName]
		if !ok {
			g = &fighterGroup{
				name:       row.FighterName,
				score:      row.Score,
				style:      row.FightingStyle,
				cluster:    row.FighterCluster,
				themes:     make(map[string]struct{}),
				genres:     make(map[string]struct{}),
				narratives: make(map[string]struct{}),
			}
			groups[row.FighterName] = g
			order = append(order, row.FighterName)
		}
		if row.Score > g.score {
			g.score = row.Score
		}
		addNonEmpty(g.themes, row.CommonThemes)
		addNonEmpty(g.genres, row.CommonGenres)
		addNonEmpty(g.narratives, row.CommonNarratives)
		if !hasString(g.sources, row.ContentTitle) && len(g.sources) < 3 {
			g.sources = append(g.sources, row.ContentTitle)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := groups[order[i]], groups[order[j]]
		if a.score != b.score {
			return a.score > b.score
		}
		return a.name < b.name
	})
	if len(order) > n {
		order = order[:n]
	}

	recs := make([]FighterRec, 0, len(order))
	for _, name := range order {
		g := groups[name]
		themes := joinSorted(g.themes)
		genres := joinSorted(g.genres)
		narratives := joinSorted(g.narratives)

		lore := ""
		if idx, ok := e.fighterByName[name]; ok {
			lore = e.fighters[idx].Lore
		}

		recs = append(recs, FighterRec{
			FighterName:    name,
			FightingStyle:  g.style,
			Score:          g.score,
			Explanation:    buildExplanation(themes, genres, narratives),
			Lore:           lore,
			CommonThemes:   themes,
			CommonGenres:   genres,
			SourceContent:  strings.Join(g.sources, ", "),
			FighterCluster: g.cluster,
		})
	}
	return recs
}

// FightersForFilters narrows the catalog by the filter selection, then
// recommends fighters for the surviving titles. When the mapping yields
// nothing for a tag-filtered selection, including when the similarity
// table is empty, it falls back to direct matching.
func (e *Engine) FightersForFilters(f Filters, n int) []FighterRec {
	if len(e.content) == 0 {
		return nil
	}

	var titles []string
	for _, c := range e.content {
		if f.hasTagFilter() {
			matched := matchesAnyColumn(f.Genres, c.Genres) ||
				matchesAnyColumn(f.Themes, c.Themes) ||
				matchesAnyColumn(f.Archetypes, c.Archetypes)
			if !matched {
				continue
			}
		}
		if len(f.Types) > 0 && !hasString(f.Types, c.Type) {
			continue
		}
		if len(f.Titles) > 0 && !hasString(f.Titles, c.Title) {
			continue
		}
		titles = append(titles, c.Title)
	}
	var recs []FighterRec
	if len(titles) > 0 {
		recs = e.FightersForContent(titles, n)
	}
	if len(recs) == 0 && f.hasTagFilter() {
		recs = e.MatchFightersByFilters(f.Genres, f.Themes, f.Archetypes, n)
	}
	return recs
}

// MatchFightersByFilters scores fighters directly against the selected tags
// when the similarity mapping cannot serve a selection. Theme matches weigh
// 0.5 each, archetypes 0.3, genre-derived themes 0.2; the total is capped
// at 1.0 and only positive scores are returned.
func (e *Engine) MatchFightersByFilters(genres, themes, archetypes []string, n int) []FighterRec {
	if len(e.fighters) == 0 || n <= 0 {
		return nil
	}

	// Themes observed on content carrying any selected genre.
	var genreThemes map[string]struct{}
	if len(genres) > 0 {
		selected := make(map[string]struct{}, len(genres))
		for _, g := range genres {
			selected[strings.ToLower(g)] = struct{}{}
		}
		genreThemes = make(map[string]struct{})
		for _, c := range e.content {
			hit := false
			for _, g := range c.Genres {
				if _, ok := selected[strings.ToLower(g)]; ok {
					hit = true
					break
				}
			}
			if !hit {
				continue
			}
			for _, t := range e.tg.TagContent(c).Themes {
				genreThemes[t] = struct{}{}
			}
		}
	}

	var recs []FighterRec
	for _, fighter := range e.fighters {
		if fighter.Name == "" {
			continue
		}
		tags := e.tg.TagFighter(fighter, nil)

		score := 0.0
		var details []string

		if len(themes) > 0 {
			var matched []string
			for _, t := range themes {
				if hasString(tags.Themes, t) {
					matched = append(matched, t)
				}
			}
			if len(matched) > 0 {
				score += float64(len(matched)) * 0.5
				details = append(details, "themes: "+strings.Join(head(matched, 3), ", "))
			}
		}

		if len(archetypes) > 0 {
			var matched []string
			for _, a := range archetypes {
				if hasString(tags.Archetypes, a) {
					matched = append(matched, a)
				}
			}
			if len(matched) > 0 {
				score += float64(len(matched)) * 0.3
				details = append(details, "characters: "+strings.Join(head(matched, 3), ", "))
			}
		}

		if len(genreThemes) > 0 {
			var matched []string
			for _, t := range tags.Themes {
				if _, ok := genreThemes[t]; ok {
					matched = append(matched, t)
				}
			}
			if len(matched) > 0 {
				score += float64(len(matched)) * 0.2
				details = append(details, "genre themes: "+strings.Join(head(matched, 3), ", "))
			}
		}

		if score <= 0 {
			continue
		}
		if score > 1.0 {
			score = 1.0
		}

		explanation := "general match"
		if len(details) > 0 {
			explanation = strings.Join(details, " | ")
		}
		recs = append(recs, FighterRec{
			FighterName:   fighter.Name,
			FightingStyle: tags.FightingStyle,
			Score:         score,
			Explanation:   explanation,
			Lore:          fighter.Lore,
			CommonThemes:  strings.Join(head(tags.Themes, 5), ", "),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].FighterName < recs[j].FighterName
	})
	if len(recs) > n {
		recs = recs[:n]
	}
	return recs
}

// ContentForFighter returns the fighter's top n mapping rows with content
// detail attached. An unknown fighter yields an empty result.
func (e *Engine) ContentForFighter(name string, n int) []ContentRec {
	if len(e.mapping) == 0 || n <= 0 {
		return nil
	}

	idxs := e.mappingByFighter[name]
	rows := make([]store.SimilarityEntry, len(idxs))
	for i, idx := range idxs {
		rows[i] = e.mapping[idx]
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return rows[i].ContentTitle < rows[j].ContentTitle
	})
	if len(rows) > n {
		rows = rows[:n]
	}

	recs := make([]ContentRec, 0, len(rows))
	for _, row := range rows {
		desc, ctype := "", ""
		if idx, ok := e.contentByTitle[row.ContentTitle]; ok {
			desc = e.content[idx].Description
			ctype = e.content[idx].Type
		}
		recs = append(recs, ContentRec{
			Title:        row.ContentTitle,
			Type:         ctype,
			Description:  desc,
			Score:        row.Score,
			Explanation:  buildExplanation(row.CommonThemes, row.CommonGenres, row.CommonNarratives),
			CommonThemes: row.CommonThemes,
			CommonGenres: row.CommonGenres,
		})
	}
	return recs
}

// FighterThemes returns the tagged themes for a fighter, folding in the
// common themes the similarity mapping recorded. Unknown fighter → empty.
func (e *Engine) FighterThemes(name string) []string {
	idx, ok := e.fighterByName[name]
	if !ok {
		return nil
	}
	var mapped []string
	for _, mi := range e.mappingByFighter[name] {
		if ct := e.mapping[mi].CommonThemes; strings.TrimSpace(ct) != "" {
			mapped = append(mapped, ct)
		}
	}
	return e.tg.TagFighter(e.fighters[idx], mapped).Themes
}

// ContentThemes returns the tagged themes for a content title. Unknown
// title → empty.
func (e *Engine) ContentThemes(title string) []string {
	idx, ok := e.contentByTitle[title]
	if !ok {
		return nil
	}
	return e.tg.TagContent(e.content[idx]).Themes
}

func buildExplanation(themes, genres, narratives string) string {
	var parts []string
	if strings.TrimSpace(themes) != "" {
		parts = append(parts, "shared themes: "+themes)
	}
	if strings.TrimSpace(genres) != "" {
		parts = append(parts, "matching genres: "+genres)
	}
	if strings.TrimSpace(narratives) != "" {
		parts = append(parts, "similar narratives: "+narratives)
	}
	if len(parts) == 0 {
		return "general match"
	}
	return strings.Join(parts, " and ")
}

// matchesAnyColumn reports whether any selected value occurs, case
// insensitively, inside any of the row's column values.
func matchesAnyColumn(selected, column []string) bool {
	if len(selected) == 0 {
		return false
	}
	for _, want := range selected {
		w := strings.ToLower(want)
		for _, have := range column {
			if strings.Contains(strings.ToLower(have), w) {
				return true
			}
		}
	}
	return false
}

func addNonEmpty(set map[string]struct{}, v string) {
	if strings.TrimSpace(v) != "" {
		set[v] = struct{}{}
	}
}

func joinSorted(set map[string]struct{}) string {
	if len(set) == 0 {
		return ""
	}
	vals := make([]string, 0, len(set))
	for v := range set {
		vals = append(vals, v)
	}
	sort.Strings(vals)
	return strings.Join(vals, ", ")
}

func hasString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func head(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

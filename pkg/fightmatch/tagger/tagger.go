// Package tagger turns catalog rows into thematic tag sets.
//
// Content tagging layers eight additive sources: seed themes, description
// extraction, description pattern rules, title extraction and title rules,
// type expansion, genre expansion, archetype inference, and a block of
// parity rules that project fighter-native themes onto content so the two
// vocabularies overlap. Fighter tagging layers lore extraction, lore pattern
// rules, stat inference, and mapping-observed themes.
package tagger

import (
	"sort"
	"strings"

	"github.com/octagonmedia/fightmatch/pkg/fightmatch/stats"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/store"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/textmatch"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/vocab"
)

// ContentTags is the thematic profile of one content row.
type ContentTags struct {
	Themes            []string
	Genres            []string
	Archetypes        []string
	NarrativePatterns []string
}

// FighterTags is the thematic profile of one fighter.
type FighterTags struct {
	Themes        []string
	FightingStyle string
	Archetypes    []string
}

// Tagger applies the vocabulary tables through a text matcher.
type Tagger struct {
	table   *vocab.Table
	matcher textmatch.Matcher
}

// New builds a tagger. A nil matcher falls back to the reference substring
// implementation.
func New(table *vocab.Table, matcher textmatch.Matcher) *Tagger {
	if table == nil {
		table = vocab.Default()
	}
	if matcher == nil {
		matcher = textmatch.NewSubstringMatcher(table)
	}
	return &Tagger{table: table, matcher: matcher}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func containsAll(text string, words []string) bool {
	for _, w := range words {
		if w == "" || !strings.Contains(text, w) {
			return false
		}
	}
	return true
}

func applyRules(text string, rules []vocab.PatternRule, themes *[]string) {
	for _, r := range rules {
		if containsAny(text, r.Any) && containsAll(text, r.All) {
			*themes = append(*themes, r.Themes...)
		}
	}
}

func hasString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func sortedUnique(list []string) []string {
	set := make(map[string]struct{}, len(list))
	for _, v := range list {
		if v != "" {
			set[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// TagContent derives the full thematic profile for a content row. Sources
// are additive; later parity rules read the running theme count, so rule
// order is part of the contract.
func (tg *Tagger) TagContent(c store.Content) ContentTags {
	themes := append([]string(nil), c.Themes...)

	descLower := strings.ToLower(c.Description)
	if c.Description != "" {
		themes = append(themes, tg.matcher.Themes(c.Description)...)
		applyRules(descLower, tg.table.DescriptionRules, &themes)
	}

	if c.Title != "" {
		themes = append(themes, tg.matcher.Themes(c.Title)...)
		applyRules(strings.ToLower(c.Title), tg.table.TitleRules, &themes)
	}

	// Type expansion is exclusive: first matching rule wins.
	if c.Type != "" {
		typeLower := strings.ToLower(c.Type)
		for _, r := range tg.table.TypeThemes {
			if containsAny(typeLower, r.Match) {
				themes = append(themes, r.Themes...)
				break
			}
		}
	}

	for _, genre := range c.Genres {
		if expanded, ok := tg.table.GenreThemes[strings.ToLower(genre)]; ok {
			themes = append(themes, expanded...)
		}
	}

	// Archetypes: seeded list plus keyword detection over the description.
	archetypes := append([]string(nil), c.Archetypes...)
	if c.Description != "" {
		for _, e := range tg.table.ContentArchetypes {
			if containsAny(descLower, e.Keywords) && !hasString(archetypes, e.ID) {
				archetypes = append(archetypes, e.ID)
			}
		}
	}
	for _, a := range archetypes {
		if expanded, ok := tg.table.ArchetypeThemes[a]; ok {
			themes = append(themes, expanded...)
		}
	}

	themes = tg.parityThemes(c, descLower, themes)

	return ContentTags{
		Themes:            sortedUnique(themes),
		Genres:            c.Genres,
		Archetypes:        sortedUnique(archetypes),
		NarrativePatterns: c.NarrativePatterns,
	}
}

// parityThemes projects fighter-native themes onto content so both sides of
// a match draw from the same vocabulary. Counts are over the raw running
// list including duplicates; dedup happens after this stage.
func (tg *Tagger) parityThemes(c store.Content, descLower string, themes []string) []string {
	genres := c.Genres
	typeLower := strings.ToLower(c.Type)

	if len(genres) > 2 || len(themes) > 10 {
		themes = append(themes, "versatility", "well_rounded", "adaptability")
	}

	if descLower != "" && containsAny(descLower, []string{"intense", "fast", "rapid", "relentless", "non-stop", "constant"}) {
		themes = append(themes, "pressure_fighting", "intense", "fast_paced")
	}

	if hasString(genres, "action") ||
		(descLower != "" && containsAny(descLower, []string{"power", "dominant", "overpowering", "force"})) {
		themes = append(themes, "physical_dominance", "power", "brutal_power")
	}

	switch {
	case descLower != "" && containsAny(descLower, []string{"precise", "methodical", "crafted", "polished", "refined", "technical", "surgical", "calculated"}):
		themes = append(themes, "precision", "technical_mastery", "precision_striker_narrative")
	case hasString(genres, "drama") && len(themes) > 8:
		themes = append(themes, "precision", "technical_mastery", "precision_striker_narrative")
	case hasString(genres, "thriller") || hasString(genres, "mystery"):
		themes = append(themes, "precision_striker_narrative", "precision")
	}

	switch {
	case descLower != "" && containsAny(descLower, []string{"constant", "relentless", "non-stop", "barrage", "overwhelming", "fast-paced", "rapid-fire"}):
		themes = append(themes, "volume_striker_narrative", "aggression", "pressure_fighting")
	case hasString(genres, "action"):
		themes = append(themes, "volume_striker_narrative", "pressure_fighting")
	}

	switch {
	case descLower != "" && containsAny(descLower, []string{"strategic", "control", "dominate", "tactical", "methodical", "manipulate", "orchestrate"}):
		themes = append(themes, "grappler_narrative", "strategy", "discipline")
	case hasString(genres, "thriller") || hasString(genres, "crime"):
		themes = append(themes, "grappler_narrative", "strategy")
	}

	if hasString(genres, "family") ||
		(descLower != "" && containsAny(descLower, []string{"family", "parent", "child", "sibling"})) {
		themes = append(themes, "family", "family_support", "family_friendly")
	}

	if descLower != "" && containsAny(descLower, []string{"military", "soldier", "training", "discipline", "regiment", "drill"}) {
		themes = append(themes, "discipline", "mental_toughness", "determination")
	}

	if (hasString(genres, "action") || hasString(genres, "thriller")) &&
		descLower != "" && containsAny(descLower, []string{"finish", "end", "conclude", "decisive", "final"}) {
		themes = append(themes, "knockout_artist", "finisher")
	}

	switch {
	case hasString(genres, "historical") || strings.Contains(typeLower, "period"):
		themes = append(themes, "historical", "period_drama", "past", "retro", "dated")
	case descLower != "" && containsAny(descLower, []string{"past", "history", "historical", "era", "period", "ancient"}):
		themes = append(themes, "historical", "past", "retro")
	}

	if hasString(genres, "war") ||
		(descLower != "" && containsAny(descLower, []string{"war", "battle", "conflict", "fight", "combat"})) {
		themes = append(themes, "conflict", "war", "aggression")
	}

	if descLower != "" && containsAny(descLower, []string{"calm", "composed", "steady", "unflappable", "cool under pressure"}) {
		themes = append(themes, "calm_under_pressure", "mental_toughness")
	}

	if descLower != "" && containsAny(descLower, []string{"tough", "grit", "fortitude", "resilience", "mental strength"}) {
		themes = append(themes, "mental_toughness", "resilience", "determination")
	}

	if strings.Contains(typeLower, "adult") ||
		(descLower != "" && containsAny(descLower, []string{"mature", "serious", "adult", "sophisticated"})) {
		themes = append(themes, "mature", "adult")
	}

	if hasString(genres, "contemporary") ||
		(descLower != "" && containsAny(descLower, []string{"modern", "current", "today", "present", "now"})) {
		themes = append(themes, "present_moment", "modern", "contemporary")
	}

	if descLower != "" && containsAny(descLower, []string{"specialist", "expert", "master", "focused", "specialized"}) {
		themes = append(themes, "specialist", "technical_mastery")
	}

	if len(genres) >= 2 && len(themes) > 8 {
		themes = append(themes, "well_rounded")
	}

	return themes
}

// TagFighter derives the full thematic profile for a fighter. mapped holds
// the comma-joined common_themes strings observed for the fighter in the
// similarity mapping; pass nil when no mapping is loaded.
func (tg *Tagger) TagFighter(f store.Fighter, mapped []string) FighterTags {
	var themes []string

	loreLower := strings.ToLower(f.Lore)
	if f.Lore != "" {
		themes = append(themes, tg.matcher.Themes(f.Lore)...)
		applyRules(loreLower, tg.table.LoreRules, &themes)
	}

	themes = append(themes, stats.Themes(f)...)

	for _, joined := range mapped {
		for _, t := range strings.Split(joined, ",") {
			if t = strings.TrimSpace(t); t != "" {
				themes = append(themes, t)
			}
		}
	}

	var archetypes []string
	if f.Lore != "" {
		for _, e := range tg.table.FighterArchetypes {
			if containsAny(loreLower, e.Keywords) {
				archetypes = append(archetypes, e.ID)
			}
		}
	}
	if len(archetypes) == 0 {
		if f.StrikesPerMin > 6.0 {
			archetypes = append(archetypes, "berserker")
		} else if f.StrikeAcc > 0.65 {
			archetypes = append(archetypes, "tactician")
		}
		// Raw age, not the estimate: a missing age counts as young here.
		if f.Age > 35 {
			archetypes = append(archetypes, "veteran")
		} else if f.Age < 25 {
			archetypes = append(archetypes, "prodigy")
		}
	}

	return FighterTags{
		Themes:        sortedUnique(themes),
		FightingStyle: stats.StyleLabel(f),
		Archetypes:    sortedUnique(archetypes),
	}
}

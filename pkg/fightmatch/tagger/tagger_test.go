package tagger

import (
	"reflect"
	"sort"
	"testing"

	"github.com/octagonmedia/fightmatch/pkg/fightmatch/store"
)

func has(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func TestTagContentLayersSources(t *testing.T) {
	tg := New(nil, nil)

	c := store.Content{
		Title:       "Top Gun: Maverick",
		Type:        "action movie",
		Description: "A veteran pilot returns for one last mission with a young team.",
		Genres:      []string{"action", "drama"},
		Themes:      []string{"courage"},
	}
	tags := tg.TagContent(c)

	checks := map[string]string{
		"courage":                  "seed theme",
		"rebel":                    "title rule (maverick)",
		"veteran_wisdom":           "description rule (veteran)",
		"aggression":               "type expansion (action)",
		"fast_paced":               "genre expansion (action)",
		"volume_striker_narrative": "parity rule (action genre)",
	}
	for theme, src := range checks {
		if !has(tags.Themes, theme) {
			t.Errorf("missing %q from %s, got %v", theme, src, tags.Themes)
		}
	}
	if !sort.StringsAreSorted(tags.Themes) {
		t.Errorf("themes not sorted: %v", tags.Themes)
	}
}

func TestTagContentTypeExpansionExclusive(t *testing.T) {
	tg := New(nil, nil)

	// "sports action" matches the sports rule first; the action rule must
	// not also fire through the type channel.
	tags := tg.TagContent(store.Content{Type: "sports action"})
	if !has(tags.Themes, "championship_quest") {
		t.Errorf("sports type expansion missing, got %v", tags.Themes)
	}
	if has(tags.Themes, "explosive_speed") {
		t.Errorf("action type expansion should be shadowed by sports, got %v", tags.Themes)
	}
}

func TestTagContentArchetypeDetection(t *testing.T) {
	tg := New(nil, nil)

	tags := tg.TagContent(store.Content{
		Description: "A lone warrior mentors a gifted student.",
	})
	for _, a := range []string{"warrior", "mentor", "prodigy"} {
		if !has(tags.Archetypes, a) {
			t.Errorf("missing archetype %q, got %v", a, tags.Archetypes)
		}
	}
	// Archetype expansion themes must follow.
	if !has(tags.Themes, "master_apprentice") {
		t.Errorf("mentor expansion missing, got %v", tags.Themes)
	}
}

func TestTagContentEmptyRow(t *testing.T) {
	tg := New(nil, nil)
	tags := tg.TagContent(store.Content{})
	if len(tags.Themes) != 0 || len(tags.Archetypes) != 0 {
		t.Errorf("empty row should produce no tags, got %+v", tags)
	}
}

func TestTagContentDeterministic(t *testing.T) {
	tg := New(nil, nil)
	c := store.Content{
		Title:       "Survivor",
		Type:        "reality",
		Description: "Contestants battle to outlast each other.",
		Genres:      []string{"adventure", "drama", "sports"},
	}
	first := tg.TagContent(c)
	for i := 0; i < 5; i++ {
		if again := tg.TagContent(c); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %+v vs %+v", i, first, again)
		}
	}
}

func TestTagFighterCombinesSources(t *testing.T) {
	tg := New(nil, nil)

	f := store.Fighter{
		Name:          "Iron Hands",
		Lore:          "A relentless champion who hunts the head with surgical precision.",
		StrikesPerMin: 6.5,
		StrikeAcc:     0.55,
		HeadRatio:     0.7,
		Wins:          14,
		Losses:        2,
	}
	tags := tg.TagFighter(f, []string{"triumph, legacy", "rivalry"})

	checks := map[string]string{
		"aggression":         "lore rule (relentless)",
		"knockout_artist":    "lore rule (head+hunt) and stats",
		"championship_quest": "lore rule (champion)",
		"precision":          "lore keyword and stats",
		"triumph":            "mapping common themes",
		"legacy":             "mapping common themes",
	}
	for theme, src := range checks {
		if !has(tags.Themes, theme) {
			t.Errorf("missing %q from %s, got %v", theme, src, tags.Themes)
		}
	}
	if tags.FightingStyle != "Aggressive Head Hunter" {
		t.Errorf("FightingStyle = %q", tags.FightingStyle)
	}
	// "relentless" puts the berserker archetype in play via lore.
	if !has(tags.Archetypes, "berserker") {
		t.Errorf("missing berserker archetype, got %v", tags.Archetypes)
	}
}

func TestTagFighterArchetypeStatFallback(t *testing.T) {
	tg := New(nil, nil)

	tags := tg.TagFighter(store.Fighter{Name: "No Lore", StrikesPerMin: 6.5, Age: 40}, nil)
	for _, a := range []string{"berserker", "veteran"} {
		if !has(tags.Archetypes, a) {
			t.Errorf("missing fallback archetype %q, got %v", a, tags.Archetypes)
		}
	}

	tags = tg.TagFighter(store.Fighter{Name: "Sniper", StrikeAcc: 0.7, Age: 23}, nil)
	for _, a := range []string{"tactician", "prodigy"} {
		if !has(tags.Archetypes, a) {
			t.Errorf("missing fallback archetype %q, got %v", a, tags.Archetypes)
		}
	}
}

func TestTagFighterNoLoreNoMapping(t *testing.T) {
	tg := New(nil, nil)
	tags := tg.TagFighter(store.Fighter{Name: "Fresh Face", Age: 30}, nil)
	if !has(tags.Themes, "competition") {
		t.Errorf("stat inference should still run without lore, got %v", tags.Themes)
	}
	if tags.FightingStyle != "Versatile Fighter" {
		t.Errorf("FightingStyle = %q", tags.FightingStyle)
	}
}

package analytics

import (
	"reflect"
	"sort"
	"testing"

	"github.com/octagonmedia/fightmatch/pkg/fightmatch/store"
)

func TestAllThemesCombinesSources(t *testing.T) {
	a := New(nil)

	content := []store.Content{
		{Title: "A", Themes: []string{"brotherhood", "competition"}},
		{Title: "B", Themes: []string{"competition", "legacy"}},
	}
	fighters := []store.Fighter{
		{Name: "Ana Silva", Lore: "A relentless champion.", StrikesPerMin: 6.5},
	}

	got := a.AllThemes(content, fighters)
	if !sort.StringsAreSorted(got) {
		t.Fatalf("not sorted: %v", got)
	}
	for _, want := range []string{
		"brotherhood", // seeded on content
		"legacy",
		"aggression", // lore keyword and stat inference
		"triumph",    // lore "champion"
	} {
		found := false
		for _, g := range got {
			if g == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing %q in %v", want, got)
		}
	}
}

func TestAllThemesEmpty(t *testing.T) {
	a := New(nil)
	if got := a.AllThemes(nil, nil); len(got) != 0 {
		t.Errorf("empty catalogs should yield empty, got %v", got)
	}
}

func TestAllGenres(t *testing.T) {
	a := New(nil)
	content := []store.Content{
		{Genres: []string{"action", "drama"}},
		{Genres: []string{"drama", "western"}},
	}
	got := a.AllGenres(content)
	want := []string{"action", "drama", "western"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AllGenres = %v, want %v", got, want)
	}
}

func TestGenreCountsOrder(t *testing.T) {
	a := New(nil)
	content := []store.Content{
		{Genres: []string{"action", "drama"}},
		{Genres: []string{"drama"}},
		{Genres: []string{"western"}},
	}
	got := a.GenreCounts(content)
	want := []Count{{"drama", 2}, {"action", 1}, {"western", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GenreCounts = %v, want %v", got, want)
	}
}

func TestThemeCounts(t *testing.T) {
	a := New(nil)
	content := []store.Content{
		{Themes: []string{"competition"}},
		{Themes: []string{"competition", "legacy"}},
	}
	got := a.ThemeCounts(content)
	want := []Count{{"competition", 2}, {"legacy", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ThemeCounts = %v, want %v", got, want)
	}
}

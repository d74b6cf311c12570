package fightmatch

import (
	"context"
	"reflect"
	"testing"

	"github.com/octagonmedia/fightmatch/pkg/fightmatch/recommend"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/store"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/store/memstore"
)

func testOptions() Options {
	return Options{
		Content: []store.Content{
			{
				Title:       "Warrior Saga",
				Type:        "movie",
				Description: "Two brothers battle in a tournament.",
				Genres:      []string{"action", "sports"},
				Themes:      []string{"brotherhood", "competition"},
			},
			{
				Title:       "Quiet Valley",
				Type:        "series",
				Description: "A family rebuilds a ranch.",
				Genres:      []string{"drama", "western"},
				Themes:      []string{"family", "legacy"},
			},
		},
		Fighters: []store.Fighter{
			{Name: "Ana Silva", Lore: "A relentless champion.", StrikesPerMin: 6.5, Wins: 12, Losses: 2},
			{Name: "Bo Reyes", Lore: "A patient counter-striker.", StrikeAcc: 0.6, StrikesPerMin: 3.0},
		},
		Mapping: []store.SimilarityEntry{
			{ContentTitle: "Warrior Saga", FighterName: "Ana Silva", Score: 0.8, CommonThemes: "aggression, competition"},
			{ContentTitle: "Warrior Saga", FighterName: "Bo Reyes", Score: 0.7},
			{ContentTitle: "Quiet Valley", FighterName: "Ana Silva", Score: 0.6, CommonThemes: "legacy"},
		},
		Fights: []store.Fight{
			{EventName: "Event A", EventDate: "15/03/2022", RedName: "Ana Silva", BlueName: "Bo Reyes", RedResult: "W", BlueResult: "L", BoutType: "Title Bout"},
		},
	}
}

func TestEngineEndToEnd(t *testing.T) {
	e := New(testOptions())

	recs := e.FightersForContent([]string{"Warrior Saga"}, 5)
	if len(recs) != 2 || recs[0].FighterName != "Ana Silva" {
		t.Fatalf("FightersForContent = %+v", recs)
	}

	content := e.ContentForFighter("Ana Silva", 5)
	if len(content) != 2 || content[0].Title != "Warrior Saga" {
		t.Fatalf("ContentForFighter = %+v", content)
	}

	filtered := e.FightersForFilters(recommend.Filters{Genres: []string{"western"}}, 5)
	if len(filtered) != 1 || filtered[0].FighterName != "Ana Silva" {
		t.Fatalf("FightersForFilters = %+v", filtered)
	}

	themes := e.FighterThemes("Ana Silva")
	if len(themes) == 0 {
		t.Fatal("FighterThemes empty")
	}

	b := e.CreateBundle("Warrior Saga", []string{"Ana Silva"})
	if b.Content == nil || len(b.Fights) != 1 {
		t.Fatalf("CreateBundle = %+v", b)
	}

	if fights := e.TitleFights("Ana Silva"); len(fights) != 1 {
		t.Errorf("TitleFights = %+v", fights)
	}

	if genres := e.AllGenres(); len(genres) != 4 {
		t.Errorf("AllGenres = %v", genres)
	}
}

func TestEngineReferentialTransparency(t *testing.T) {
	e := New(testOptions())

	first := e.FightersForContent([]string{"Warrior Saga", "Quiet Valley"}, 5)
	for i := 0; i < 5; i++ {
		again := e.FightersForContent([]string{"Warrior Saga", "Quiet Valley"}, 5)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs", i)
		}
	}
}

func TestEngineEmptyCatalogs(t *testing.T) {
	e := New(Options{})

	if recs := e.FightersForContent([]string{"Anything"}, 5); len(recs) != 0 {
		t.Errorf("empty engine returned recs: %v", recs)
	}
	if themes := e.AllThemes(); len(themes) != 0 {
		t.Errorf("empty engine returned themes: %v", themes)
	}
	if b := e.CreateBundle("X", nil); b.ThematicConnection != "Bundle components available." {
		t.Errorf("bundle explanation = %q", b.ThematicConnection)
	}
}

func TestLoadFromStore(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()

	opts := testOptions()
	for _, c := range opts.Content {
		if err := s.UpsertContent(ctx, c); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range opts.Fighters {
		if err := s.UpsertFighter(ctx, f); err != nil {
			t.Fatal(err)
		}
	}
	for _, m := range opts.Mapping {
		if err := s.UpsertSimilarity(ctx, m); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range opts.Fights {
		if err := s.UpsertFight(ctx, f); err != nil {
			t.Fatal(err)
		}
	}

	e, err := LoadFromStore(ctx, s, Options{})
	if err != nil {
		t.Fatal(err)
	}

	recs := e.FightersForContent([]string{"Warrior Saga"}, 5)
	if len(recs) != 2 {
		t.Fatalf("FightersForContent after LoadFromStore = %+v", recs)
	}
	if len(e.Fighters()) != 2 || len(e.Content()) != 2 {
		t.Errorf("catalogs not loaded: %d fighters, %d content", len(e.Fighters()), len(e.Content()))
	}
}

package sqlite

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/octagonmedia/fightmatch/pkg/fightmatch/store"
)

func openTestStore(t *testing.T) (store.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.db")
	s, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestSchemaIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	s1, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := s1.UpsertContent(ctx, store.Content{Title: "Warrior Saga"}); err != nil {
		t.Fatal(err)
	}
	if err := s1.Close(); err != nil {
		t.Fatal(err)
	}

	// Reopening must keep existing data and not fail re-applying the schema.
	s2, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer s2.Close()

	_, ok, err := s2.GetContent(ctx, "Warrior Saga")
	if err != nil || !ok {
		t.Fatalf("data lost across reopen: ok=%v err=%v", ok, err)
	}
}

func TestContentRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := openTestStore(t)

	c := store.Content{
		Title:             "Warrior Saga",
		Type:              "movie",
		Description:       "Two brothers battle.",
		Genres:            []string{"action", "sports"},
		Themes:            []string{"brotherhood"},
		Archetypes:        []string{"warrior"},
		NarrativePatterns: []string{"rivalry arc"},
	}
	if err := s.UpsertContent(ctx, c); err != nil {
		t.Fatal(err)
	}

	got, ok, err := s.GetContent(ctx, "Warrior Saga")
	if err != nil || !ok {
		t.Fatalf("GetContent: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(got, c) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, c)
	}

	if _, ok, _ := s.GetContent(ctx, "Missing"); ok {
		t.Error("unknown title should miss")
	}
}

func TestContentUpsertReplaces(t *testing.T) {
	ctx := context.Background()
	s, _ := openTestStore(t)

	s.UpsertContent(ctx, store.Content{Title: "A", Type: "movie"})
	s.UpsertContent(ctx, store.Content{Title: "A", Type: "series", Genres: []string{"drama"}})

	got, _, _ := s.GetContent(ctx, "A")
	if got.Type != "series" || len(got.Genres) != 1 {
		t.Errorf("replacement not applied: %+v", got)
	}

	list, err := s.ListContent(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Errorf("ListContent len = %d, want 1", len(list))
	}
}

func TestFighterRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := openTestStore(t)

	f := store.Fighter{
		Name:          "Ana Silva",
		Lore:          "A relentless champion.",
		StrikesPerMin: 6.5,
		StrikeAcc:     0.55,
		HeadRatio:     0.7,
		StatFights:    14,
		Age:           29,
		Nationality:   "Brazil",
		HeightInches:  68,
		ReachInches:   70,
		Stance:        "Orthodox",
		Wins:          12,
		Losses:        2,
		Draws:         1,
		Cluster:       2,
		HasCluster:    true,
	}
	if err := s.UpsertFighter(ctx, f); err != nil {
		t.Fatal(err)
	}

	got, ok, err := s.GetFighter(ctx, "Ana Silva")
	if err != nil || !ok {
		t.Fatalf("GetFighter: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(got, f) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, f)
	}
}

func TestSimilarityUpsertKeyedByPair(t *testing.T) {
	ctx := context.Background()
	s, _ := openTestStore(t)

	e := store.SimilarityEntry{ContentTitle: "Warrior Saga", FighterName: "Ana Silva", Score: 0.5}
	if err := s.UpsertSimilarity(ctx, e); err != nil {
		t.Fatal(err)
	}
	e.Score = 0.8
	e.CommonThemes = "aggression"
	if err := s.UpsertSimilarity(ctx, e); err != nil {
		t.Fatal(err)
	}

	list, err := s.ListSimilarity(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}
	if list[0].Score != 0.8 || list[0].CommonThemes != "aggression" {
		t.Errorf("update not applied: %+v", list[0])
	}
}

func TestFightsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s, _ := openTestStore(t)

	fights := []store.Fight{
		{EventName: "Event A", RedName: "Ana Silva", BlueName: "Bo Reyes", RedResult: "W"},
		{EventName: "Event B", RedName: "Cy Drake", BlueName: "Ana Silva", BlueResult: "W"},
	}
	for _, f := range fights {
		if err := s.UpsertFight(ctx, f); err != nil {
			t.Fatal(err)
		}
	}

	list, err := s.ListFights(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(list, fights) {
		t.Errorf("fights mismatch:\n got %+v\nwant %+v", list, fights)
	}
}

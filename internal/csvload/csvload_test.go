package csvload

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseListColumn(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"nan", nil},
		{"[]", nil},
		{"['drama', 'sports']", []string{"drama", "sports"}},
		{`["action"]`, []string{"action"}},
		{"['it''s complicated']", []string{"it''s complicated"}},
		{"drama, sports", []string{"drama", "sports"}},
		{"solo", []string{"solo"}},
		{"['family, found', 'war']", []string{"family, found", "war"}},
	}
	for _, tc := range cases {
		if got := ParseListColumn(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseListColumn(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func writeCSV(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadContent(t *testing.T) {
	path := writeCSV(t, "content.csv", `title,type,description,genres,themes,character_archetypes,narrative_patterns
Warrior Saga,movie,Two brothers battle.,"['action', 'sports']","['brotherhood']","['warrior']","['rivalry arc']"
,movie,missing title row,,,,
Quiet Valley,series,A family rebuilds.,"drama, western",,,
`)

	got, err := LoadContent(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (untitled row dropped)", len(got))
	}
	if !reflect.DeepEqual(got[0].Genres, []string{"action", "sports"}) {
		t.Errorf("Genres = %v", got[0].Genres)
	}
	if got[1].Themes != nil {
		t.Errorf("empty themes cell should be nil, got %v", got[1].Themes)
	}
	if !reflect.DeepEqual(got[1].Genres, []string{"drama", "western"}) {
		t.Errorf("comma fallback failed: %v", got[1].Genres)
	}
}

func TestLoadFighters(t *testing.T) {
	path := writeCSV(t, "fighters.csv", `fighter,lore,strikes_landed_per_min_mean,strike_accuracy_mean,strikes_landed_per_min_count,age,wins,losses,kmeans_cluster
Ana Silva,A relentless champion.,6.5,0.55,14.0,nan,12.0,2,3
Bo Reyes,,,,,,,,
`)

	got, err := LoadFighters(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	ana := got[0]
	if ana.StrikesPerMin != 6.5 || ana.StrikeAcc != 0.55 {
		t.Errorf("stat means wrong: %+v", ana)
	}
	if ana.StatFights != 14 || ana.Wins != 12 {
		t.Errorf("float-encoded ints not coerced: %+v", ana)
	}
	if ana.Age != 0 {
		t.Errorf("nan age should coerce to 0, got %d", ana.Age)
	}
	if !ana.HasCluster || ana.Cluster != 3 {
		t.Errorf("cluster not parsed: %+v", ana)
	}

	bo := got[1]
	if bo.StrikesPerMin != 0 || bo.HasCluster {
		t.Errorf("empty cells should be zero values: %+v", bo)
	}
}

func TestLoadMapping(t *testing.T) {
	path := writeCSV(t, "mapping.csv", `content_title,fighter_name,similarity_score,fighting_style,common_themes
Warrior Saga,Ana Silva,0.82,Pressure Fighter,"aggression, competition"
Warrior Saga,,0.5,,
`)

	got, err := LoadMapping(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 (row without fighter dropped)", len(got))
	}
	if got[0].Score != 0.82 || got[0].CommonThemes != "aggression, competition" {
		t.Errorf("mapping row wrong: %+v", got[0])
	}
}

func TestLoadFightsMissingFileIsEmpty(t *testing.T) {
	got, err := LoadFights(filepath.Join(t.TempDir(), "absent.csv"))
	if err != nil {
		t.Fatalf("missing fight file must not error, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("want empty, got %v", got)
	}
}

func TestLoadFights(t *testing.T) {
	path := writeCSV(t, "fights.csv", `event_name,event_date,red_fighter_name,blue_fighter_name,red_fighter_result,blue_fighter_result,method,round,bout_type
Event A,15/03/2022,Ana Silva,Bo Reyes,W,L,KO,2,Title Bout
`)

	got, err := LoadFights(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].RedName != "Ana Silva" || got[0].BoutType != "Title Bout" {
		t.Errorf("fight row wrong: %+v", got[0])
	}
}

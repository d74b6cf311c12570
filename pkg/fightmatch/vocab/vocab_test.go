package vocab

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultTableLookups(t *testing.T) {
	tab := Default()

	if !tab.Has("aggression") {
		t.Error("default table should carry aggression")
	}
	if tab.Has("no_such_theme") {
		t.Error("unknown id should report absent")
	}

	kws := tab.Keywords("aggression")
	if len(kws) == 0 {
		t.Fatal("Keywords(aggression) empty")
	}
	found := false
	for _, kw := range kws {
		if kw == "relentless" {
			found = true
		}
	}
	if !found {
		t.Errorf("Keywords(aggression) = %v, missing relentless", kws)
	}
	if tab.Keywords("no_such_theme") != nil {
		t.Error("unknown id should return nil keywords")
	}

	ids := tab.ThemeIDs()
	if len(ids) != len(tab.Themes) {
		t.Fatalf("ThemeIDs len = %d, want %d", len(ids), len(tab.Themes))
	}
	if ids[0] != "aggression" {
		t.Errorf("ThemeIDs()[0] = %q, want table order preserved", ids[0])
	}
}

func TestFormatTheme(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"championship_quest", "Championship Quest"},
		{"aggression", "Aggression"},
		{"rise_to_glory", "Rise To Glory"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := FormatTheme(tc.in); got != tc.want {
			t.Errorf("FormatTheme(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatThemes(t *testing.T) {
	got := FormatThemes([]string{"underdog", "", "family_support"})
	want := []string{"Underdog", "Family Support"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FormatThemes = %v, want %v", got, want)
	}
}

func TestLoadYAMLOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	data := `themes:
  - id: Grit
    keywords: [gritty, tough]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	tab, err := LoadYAML(path)
	if err != nil {
		t.Fatal(err)
	}
	if !tab.Has("grit") {
		t.Error("ids should be lowercased on load")
	}
	if tab.Has("aggression") {
		t.Error("override should replace the default themes")
	}
	if len(tab.GenreThemes) == 0 {
		t.Error("override should inherit the default expansion tables")
	}
}

func TestLoadYAMLEmptyIsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	if err := os.WriteFile(path, []byte("themes: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadYAML(path); err == nil {
		t.Error("empty theme list should be rejected")
	}
}

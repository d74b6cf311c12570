package stats

import (
	"sort"
	"strings"
	"testing"

	"github.com/octagonmedia/fightmatch/pkg/fightmatch/store"
)

func hasTheme(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func TestThemesVolumeAndAccuracy(t *testing.T) {
	f := store.Fighter{
		Name:          "Test Fighter",
		StrikesPerMin: 7.0,
		StrikeAcc:     0.6,
	}
	got := Themes(f)

	for _, want := range []string{
		"aggression",
		"volume_striker_narrative",
		"pressure_fighting",
		"brutal_power",
		"mental_toughness",
		"calm_under_pressure",
	} {
		if !hasTheme(got, want) {
			t.Errorf("Themes missing %q, got %v", want, got)
		}
	}
}

func TestThemesZeroStatsStillCompete(t *testing.T) {
	got := Themes(store.Fighter{Name: "Blank Slate"})
	if !hasTheme(got, "competition") {
		t.Errorf("competition must always be present, got %v", got)
	}
	if hasTheme(got, "rivalry") {
		t.Errorf("rivalry needs more than 3 fights, got %v", got)
	}
}

func TestThemesRecordLadders(t *testing.T) {
	cases := []struct {
		name    string
		f       store.Fighter
		want    []string
		wantNot []string
	}{
		{
			name: "dominant record",
			f:    store.Fighter{Name: "A", Wins: 16, Losses: 2},
			want: []string{"triumph", "championship_quest", "peak_performance", "comeback_story", "legacy", "veteran_wisdom"},
		},
		{
			name: "losing record",
			f:    store.Fighter{Name: "B", Wins: 2, Losses: 6},
			want: []string{"underdog", "resilience", "struggle"},
		},
		{
			name:    "short record",
			f:       store.Fighter{Name: "C", Wins: 2, Losses: 1},
			wantNot: []string{"triumph", "underdog", "rivalry"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Themes(tc.f)
			for _, id := range tc.want {
				if !hasTheme(got, id) {
					t.Errorf("missing %q in %v", id, got)
				}
			}
			for _, id := range tc.wantNot {
				if hasTheme(got, id) {
					t.Errorf("unexpected %q in %v", id, got)
				}
			}
		})
	}
}

func TestThemesAgeEstimatedFromFights(t *testing.T) {
	// 24 fights estimate to age 25+12=37, above the 35 ladder.
	f := store.Fighter{Name: "Old Hand", Wins: 18, Losses: 6}
	got := Themes(f)
	for _, want := range []string{"veteran_wisdom", "legacy", "mature"} {
		if !hasTheme(got, want) {
			t.Errorf("missing %q in %v", want, got)
		}
	}
	if hasTheme(got, "decline") {
		t.Errorf("decline needs age above 38, got %v", got)
	}
}

func TestThemesDeterministicAndSorted(t *testing.T) {
	f := store.Fighter{
		Name:          "Repeat Run",
		StrikesPerMin: 4.5,
		StrikeAcc:     0.58,
		TakedownAcc:   0.45,
		Wins:          12,
		Losses:        3,
	}
	first := Themes(f)
	if !sort.StringsAreSorted(first) {
		t.Fatalf("themes not sorted: %v", first)
	}
	for i := 0; i < 10; i++ {
		again := Themes(f)
		if strings.Join(first, ",") != strings.Join(again, ",") {
			t.Fatalf("run %d differs: %v vs %v", i, first, again)
		}
	}
}

func TestNameBucketStable(t *testing.T) {
	a := NameBucket("Jon Jones")
	for i := 0; i < 5; i++ {
		if NameBucket("Jon Jones") != a {
			t.Fatal("NameBucket not stable across calls")
		}
	}
	if a < 0 || a >= 100 {
		t.Fatalf("bucket out of range: %d", a)
	}
}

func TestFamilySupportFollowsNameBucket(t *testing.T) {
	names := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot"}
	for _, name := range names {
		got := Themes(store.Fighter{Name: name})
		wantFamily := NameBucket(name)%2 == 0
		if hasTheme(got, "family_support") != wantFamily {
			t.Errorf("%s: family_support=%v, want %v", name, !wantFamily, wantFamily)
		}
		if hasTheme(got, "family") != wantFamily {
			t.Errorf("%s: family should track family_support", name)
		}
	}
}

func TestEstimateAge(t *testing.T) {
	cases := []struct {
		age, fights, want int
	}{
		{30, 10, 30}, // known age wins
		{0, 0, 0},    // nothing to estimate from
		{0, 4, 27},
		{0, 20, 35},
		{0, 100, 40}, // capped at 15 added years
	}
	for _, tc := range cases {
		if got := EstimateAge(tc.age, tc.fights); got != tc.want {
			t.Errorf("EstimateAge(%d, %d) = %d, want %d", tc.age, tc.fights, got, tc.want)
		}
	}
}

func TestStyleLabel(t *testing.T) {
	cases := []struct {
		name string
		f    store.Fighter
		want string
	}{
		{"volume head hunter", store.Fighter{StrikesPerMin: 6.0, HeadRatio: 0.7}, "Aggressive Head Hunter"},
		{"volume striker", store.Fighter{StrikesPerMin: 6.0, HeadRatio: 0.5}, "High-Volume Striker"},
		{"counter striker", store.Fighter{StrikesPerMin: 3.0, StrikeAcc: 0.6}, "Precision Counter-Striker"},
		{"dominant grappler", store.Fighter{ControlRatio: 0.5}, "Dominant Grappler"},
		{"takedown specialist", store.Fighter{TakedownAcc: 0.6}, "Takedown Specialist"},
		{"striker grappler combo", store.Fighter{StrikesPerMin: 6.0, TakedownAcc: 0.6}, "High-Volume Striker / Takedown Specialist / Well-Rounded Fighter"},
		{"cluster fallback", store.Fighter{Cluster: 3, HasCluster: true}, "Cluster 3 Fighter"},
		{"plain fallback", store.Fighter{}, "Versatile Fighter"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StyleLabel(tc.f); got != tc.want {
				t.Errorf("StyleLabel = %q, want %q", got, tc.want)
			}
		})
	}
}

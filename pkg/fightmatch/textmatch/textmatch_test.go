package textmatch

import (
	"reflect"
	"sort"
	"testing"

	"github.com/octagonmedia/fightmatch/pkg/fightmatch/vocab"
)

func TestSubstringMatcherBasics(t *testing.T) {
	m := NewSubstringMatcher(vocab.Default())

	got := m.Themes("A relentless fighter with surgical precision")
	want := map[string]bool{"aggression": true, "precision": true}
	for id := range want {
		if !contains(got, id) {
			t.Errorf("Themes missing %q, got %v", id, got)
		}
	}

	if ids := m.Themes(""); len(ids) != 0 {
		t.Errorf("empty text: got %v, want empty", ids)
	}
}

func TestSubstringMatcherCaseInsensitive(t *testing.T) {
	m := NewSubstringMatcher(vocab.Default())

	lower := m.Themes("an aggressive champion")
	upper := m.Themes("AN AGGRESSIVE CHAMPION")
	if !reflect.DeepEqual(lower, upper) {
		t.Errorf("case sensitivity: %v != %v", lower, upper)
	}
}

func TestSubstringMatcherSorted(t *testing.T) {
	m := NewSubstringMatcher(vocab.Default())

	got := m.Themes("a veteran champion who survived a brutal war")
	if !sort.StringsAreSorted(got) {
		t.Errorf("results not sorted: %v", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i] == got[i-1] {
			t.Errorf("duplicate theme %q in %v", got[i], got)
		}
	}
}

// The automaton must report a keyword that is a substring of another matched
// keyword. "relentless pressure" triggers pressure_fighting while its prefix
// "relentless" triggers aggression.
func TestAhoMatcherOverlappingKeywords(t *testing.T) {
	m := NewAhoMatcher(vocab.Default())

	got := m.Themes("known for relentless pressure in every round")
	for _, id := range []string{"aggression", "pressure_fighting"} {
		if !contains(got, id) {
			t.Errorf("Themes missing %q, got %v", id, got)
		}
	}
}

func TestMatcherEquivalence(t *testing.T) {
	table := vocab.Default()
	sub := NewSubstringMatcher(table)
	aho := NewAhoMatcher(table)

	texts := []string{
		"",
		"nothing to see here qqq zzz",
		"A relentless pressure fighter with devastating power",
		"young prodigy chasing a championship title",
		"the veteran returned from injury and bounced back",
		"space opera with a found family on a road trip",
		"SURGICAL PRECISION and calm under pressure",
		"underdog story of redemption and sacrifice",
		"dark gritty crime thriller full of betrayal",
		"knockout artist who hunts the head",
	}
	for _, text := range texts {
		a := sub.Themes(text)
		b := aho.Themes(text)
		if len(a) == 0 && len(b) == 0 {
			continue
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("matchers disagree on %q:\n substring: %v\n aho:       %v", text, a, b)
		}
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

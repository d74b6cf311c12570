// Package stats derives narrative themes and a fighting style label from a
// fighter's statistical record.
//
// The rules are an ordered cascade of threshold checks. Rules are additive
// and never short-circuit one another; within one stat family the branches
// are exclusive ladders (the elif shape matters for the boundary values).
// Missing stats are zero and zero is neutral for every rule.
package stats

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/octagonmedia/fightmatch/pkg/fightmatch/store"
)

// EstimateAge fills in a missing age from fight count. Fighters typically
// start in their early twenties and average about two fights per year.
func EstimateAge(age, totalFights int) int {
	if age > 0 || totalFights == 0 {
		return age
	}
	years := totalFights / 2
	if years > 15 {
		years = 15
	}
	return 25 + years
}

// NameBucket maps a fighter name to a stable bucket in [0,100). Used to
// assign universal flavor themes to a deterministic half of the roster.
func NameBucket(name string) int {
	h := fnv.New64a()
	h.Write([]byte(name))
	return int(h.Sum64() % 100)
}

// Themes returns the sorted distinct themes inferred from the fighter's
// statistics. Every fighter gets competition; roughly half get family
// themes keyed on a stable name hash so repeated runs agree.
func Themes(f store.Fighter) []string {
	set := make(map[string]struct{})
	add := func(ids ...string) {
		for _, id := range ids {
			set[id] = struct{}{}
		}
	}

	totalFights := f.TotalFights()
	winRate := f.WinRate()
	age := EstimateAge(f.Age, totalFights)

	reachAdvantage := 0.0
	if f.HeightInches > 0 && f.ReachInches > 0 {
		reachAdvantage = f.ReachInches - f.HeightInches
	}

	// Striking volume
	switch {
	case f.StrikesPerMin > 6.0:
		add("aggression", "volume_striker_narrative", "pressure_fighting")
		if f.StrikeAcc > 0.5 {
			add("brutal_power")
		}
	case f.StrikesPerMin > 4.0:
		add("determination", "volume_striker_narrative")
	case f.StrikesPerMin > 2.0:
		add("patience")
	}

	// Precision
	switch {
	case f.StrikeAcc > 0.65:
		add("precision", "precision_striker_narrative", "technical_mastery")
		if f.StrikesPerMin < 3.0 {
			add("counter_striking", "calm_under_pressure")
		}
	case f.StrikeAcc > 0.55:
		add("precision", "precision_striker_narrative")
	}

	// Grappling
	switch {
	case f.ControlRatio > 0.5:
		add("grappler_narrative", "physical_dominance", "strategy", "discipline")
	case f.TakedownAcc > 0.6:
		add("grappler_narrative", "strategy", "technical_mastery")
	case f.TakedownAcc > 0.4 || f.ControlRatio > 0.3:
		add("grappler_narrative", "versatility")
	}

	// Strike targets
	switch {
	case f.HeadRatio > 0.7:
		add("knockout_artist", "courage", "precision")
	case f.HeadRatio > 0.65:
		add("knockout_artist", "precision")
	}
	switch {
	case f.BodyRatio > 0.45:
		add("strategy", "endurance", "calculated_risk")
	case f.BodyRatio > 0.35:
		add("strategy")
	}
	if f.LegRatio > 0.35 {
		add("technical_mastery", "strategy", "innovation")
	}

	// Clinch work
	if f.ClinchRatio > 0.3 {
		add("pressure_fighting", "physical_dominance")
	}

	// Career record
	switch {
	case winRate > 0.75 && totalFights > 10:
		add("triumph", "championship_quest", "peak_performance")
	case winRate > 0.7 && totalFights > 10:
		add("triumph", "legacy")
	case winRate < 0.35 && totalFights > 5:
		add("underdog", "resilience", "struggle")
	case winRate < 0.4 && totalFights > 5:
		add("underdog", "resilience")
	}

	// Age and experience
	switch {
	case age > 38 && totalFights > 15:
		add("veteran_wisdom", "legacy", "decline", "mature")
	case age > 35 && totalFights > 15:
		add("veteran_wisdom", "legacy", "mature")
	case age > 30 && totalFights > 10:
		add("legacy", "veteran_wisdom")
	case age < 24 && totalFights > 3:
		add("rookie_rise", "rise_to_glory", "explosive_speed", "youth_focused")
	case age < 27 && totalFights > 3:
		add("rise_to_glory", "speed", "youth_focused")
	}

	// Comeback: losses on the record but a strong winning rate
	if f.Losses > 0 && f.Wins > f.Losses && totalFights > 8 && winRate > 0.6 {
		add("comeback_story", "resilience")
	}

	// Versatility
	if (f.StrikesPerMin > 2.0 && f.TakedownAcc > 0.3) ||
		(f.StrikeAcc > 0.45 && f.ControlRatio > 0.2) {
		add("versatility", "adaptability", "well_rounded")
	}

	// Universal themes
	add("competition")
	if totalFights > 3 {
		add("rivalry")
	}
	if NameBucket(f.Name)%2 == 0 {
		add("family_support", "family")
	}

	// Longevity independent of age
	switch {
	case totalFights > 15:
		add("legacy", "veteran_wisdom")
	case totalFights > 10:
		add("legacy")
	}

	// Physical frame
	switch {
	case reachAdvantage > 4:
		add("reach_advantage", "strategic")
	case reachAdvantage < -3:
		add("underdog", "determination")
	}
	if f.HeightInches > 72 {
		add("size_advantage", "physical_dominance")
	}

	// Finishing ability
	if f.StrikeAcc > 0.6 && f.HeadRatio > 0.65 {
		add("finisher", "knockout_artist")
	}

	// Sustained accurate output
	if f.StrikeAcc > 0.55 && f.StrikesPerMin > 4.0 {
		add("mental_toughness", "calm_under_pressure")
	}

	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// StyleLabel builds the display label for a fighter's style from qualifying
// descriptor phrases joined with " / ". Falls back to the cluster id, then
// to "Versatile Fighter".
func StyleLabel(f store.Fighter) string {
	highVolume := f.StrikesPerMin > 5.0
	precise := f.StrikeAcc > 0.55 && f.StrikesPerMin < 4.0
	grappler := f.TakedownAcc > 0.5 || f.ControlRatio > 0.4
	headHunter := f.HeadRatio > 0.65
	balanced := f.StrikesPerMin > 2.0 && f.TakedownAcc > 0.3

	var parts []string
	if highVolume {
		if headHunter {
			parts = append(parts, "Aggressive Head Hunter")
		} else {
			parts = append(parts, "High-Volume Striker")
		}
	} else if precise {
		parts = append(parts, "Precision Counter-Striker")
	}

	if grappler {
		if f.ControlRatio > 0.4 {
			parts = append(parts, "Dominant Grappler")
		} else {
			parts = append(parts, "Takedown Specialist")
		}
	}

	if balanced {
		parts = append(parts, "Well-Rounded Fighter")
	}

	if len(parts) == 0 {
		if f.HasCluster {
			return fmt.Sprintf("Cluster %d Fighter", f.Cluster)
		}
		return "Versatile Fighter"
	}
	return strings.Join(parts, " / ")
}

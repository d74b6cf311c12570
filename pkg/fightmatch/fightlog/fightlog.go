// Package fightlog indexes historical fight records for bundle assembly.
package fightlog

import (
	"sort"
	"strings"
	"time"

	"github.com/octagonmedia/fightmatch/pkg/fightmatch/store"
)

// Record is one formatted fight result. Winner is empty for draws and
// no-contests.
type Record struct {
	EventName  string
	EventDate  string
	Fighter1   string
	Fighter2   string
	Winner     string
	Method     string
	Round      string
	RedResult  string
	BlueResult string
}

// rawFight keeps the source row plus its parsed date for sorting.
type rawFight struct {
	eventName  string
	eventDate  string
	red        string
	blue       string
	redUpper   string
	blueUpper  string
	redResult  string
	blueResult string
	method     string
	round      string
	boutType   string
	date       time.Time
	hasDate    bool
}

// Index answers fight lookups by fighter name. Immutable after New.
type Index struct {
	fights []rawFight
}

// New builds an index over the fight rows, sorted most recent first.
// Rows with unparseable dates sort after dated rows in input order.
func New(fights []store.Fight) *Index {
	raws := make([]rawFight, len(fights))
	for i, f := range fights {
		r := rawFight{
			eventName:  f.EventName,
			eventDate:  f.EventDate,
			red:        f.RedName,
			blue:       f.BlueName,
			redUpper:   strings.ToUpper(f.RedName),
			blueUpper:  strings.ToUpper(f.BlueName),
			redResult:  f.RedResult,
			blueResult: f.BlueResult,
			method:     f.Method,
			round:      f.Round,
			boutType:   f.BoutType,
		}
		if t, err := time.Parse("02/01/2006", strings.TrimSpace(f.EventDate)); err == nil {
			r.date = t
			r.hasDate = true
		}
		raws[i] = r
	}
	sort.SliceStable(raws, func(i, j int) bool {
		a, b := raws[i], raws[j]
		if a.hasDate != b.hasDate {
			return a.hasDate
		}
		if !a.hasDate {
			return false
		}
		return a.date.After(b.date)
	})
	return &Index{fights: raws}
}

// Len returns the number of indexed fights.
func (ix *Index) Len() int { return len(ix.fights) }

func (r rawFight) format() Record {
	winner := ""
	switch {
	case r.redResult == "W":
		winner = r.red
	case r.blueResult == "W":
		winner = r.blue
	}
	return Record{
		EventName:  r.eventName,
		EventDate:  r.eventDate,
		Fighter1:   r.red,
		Fighter2:   r.blue,
		Winner:     winner,
		Method:     r.method,
		Round:      r.round,
		RedResult:  r.redResult,
		BlueResult: r.blueResult,
	}
}

// FindForFighters returns up to limit fights involving any of the named
// fighters in either corner, most recent first. Name matching is case
// insensitive and exact.
func (ix *Index) FindForFighters(names []string, limit int) []Record {
	if len(ix.fights) == 0 || len(names) == 0 || limit <= 0 {
		return nil
	}
	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		wanted[strings.ToUpper(n)] = struct{}{}
	}

	var out []Record
	for _, f := range ix.fights {
		if _, red := wanted[f.redUpper]; !red {
			if _, blue := wanted[f.blueUpper]; !blue {
				continue
			}
		}
		out = append(out, f.format())
		if len(out) == limit {
			break
		}
	}
	return out
}

// RecentFights returns the fighter's n most recent fights.
func (ix *Index) RecentFights(name string, n int) []Record {
	return ix.FindForFighters([]string{name}, n)
}

// TitleFights returns every fight of the fighter whose bout type mentions a
// title, most recent first.
func (ix *Index) TitleFights(name string) []Record {
	if len(ix.fights) == 0 || name == "" {
		return nil
	}
	upper := strings.ToUpper(name)

	var out []Record
	for _, f := range ix.fights {
		if f.redUpper != upper && f.blueUpper != upper {
			continue
		}
		if !strings.Contains(strings.ToLower(f.boutType), "title") {
			continue
		}
		out = append(out, f.format())
	}
	return out
}

// Package csvload reads the four catalog CSV exports into typed records.
//
// The upstream pipeline serializes list-valued columns as Python list
// literals ("['drama', 'sports']"); ParseListColumn tolerates that form,
// plain comma-joined strings, and empty or NaN cells. Numeric columns
// coerce to zero on any parse failure so a sparse export still loads.
package csvload

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/octagonmedia/fightmatch/pkg/fightmatch/store"
)

// ParseListColumn parses a serialized list cell. Empty and NaN cells yield
// an empty list.
func ParseListColumn(value string) []string {
	v := strings.TrimSpace(value)
	if v == "" || v == "nan" || v == "NaN" || v == "[]" {
		return nil
	}

	if strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]") {
		return splitQuoted(v[1 : len(v)-1])
	}

	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// splitQuoted splits the inside of a list literal on commas that are not
// inside quotes, then strips the quotes from each element.
func splitQuoted(s string) []string {
	var out []string
	var cur strings.Builder
	var quote byte

	flush := func() {
		item := strings.TrimSpace(cur.String())
		item = strings.Trim(item, `'"`)
		if item != "" {
			out = append(out, item)
		}
		cur.Reset()
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
			cur.WriteByte(c)
		case c == '\'' || c == '"':
			quote = c
			cur.WriteByte(c)
		case c == ',':
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return out
}

// row pairs a CSV record with its header index for lookup by column name.
type row struct {
	header map[string]int
	record []string
}

func (r row) str(col string) string {
	if i, ok := r.header[col]; ok && i < len(r.record) {
		return strings.TrimSpace(r.record[i])
	}
	return ""
}

func (r row) float(col string) float64 {
	s := r.str(col)
	if s == "" || strings.EqualFold(s, "nan") {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func (r row) int(col string) int {
	// Exports write integers as floats ("12.0").
	return int(r.float(col))
}

func (r row) list(col string) []string {
	return ParseListColumn(r.str(col))
}

// forEachRow streams the file's data rows through fn.
func forEachRow(path string, fn func(row)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	headerRec, err := reader.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	header := make(map[string]int, len(headerRec))
	for i, name := range headerRec {
		header[strings.TrimSpace(name)] = i
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		fn(row{header: header, record: record})
	}
}

// LoadContent reads the content catalog CSV.
func LoadContent(path string) ([]store.Content, error) {
	var out []store.Content
	err := forEachRow(path, func(r row) {
		c := store.Content{
			Title:             r.str("title"),
			Type:              r.str("type"),
			Description:       r.str("description"),
			Genres:            r.list("genres"),
			Themes:            r.list("themes"),
			Archetypes:        r.list("character_archetypes"),
			NarrativePatterns: r.list("narrative_patterns"),
		}
		if c.Title != "" {
			out = append(out, c)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LoadFighters reads the fighter CSV, including the per-fighter stat means
// the inference rules consume.
func LoadFighters(path string) ([]store.Fighter, error) {
	var out []store.Fighter
	err := forEachRow(path, func(r row) {
		f := store.Fighter{
			Name:          r.str("fighter"),
			Lore:          r.str("lore"),
			StrikesPerMin: r.float("strikes_landed_per_min_mean"),
			StrikeAcc:     r.float("strike_accuracy_mean"),
			HeadRatio:     r.float("head_strike_ratio_mean"),
			BodyRatio:     r.float("body_strike_ratio_mean"),
			LegRatio:      r.float("leg_strike_ratio_mean"),
			TakedownAcc:   r.float("takedown_accuracy_mean"),
			ControlRatio:  r.float("control_time_ratio_mean"),
			ClinchRatio:   r.float("clinch_time_ratio_mean"),
			StatFights:    r.int("strikes_landed_per_min_count"),
			Age:           r.int("age"),
			Nationality:   r.str("nationality"),
			HeightInches:  r.float("height_inches"),
			ReachInches:   r.float("reach_inches"),
			Stance:        r.str("stance"),
			Wins:          r.int("wins"),
			Losses:        r.int("losses"),
			Draws:         r.int("draws"),
		}
		if cluster := r.str("kmeans_cluster"); cluster != "" && !strings.EqualFold(cluster, "nan") {
			f.Cluster = r.int("kmeans_cluster")
			f.HasCluster = true
		}
		if f.Name != "" {
			out = append(out, f)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LoadMapping reads the precomputed content-fighter similarity CSV.
func LoadMapping(path string) ([]store.SimilarityEntry, error) {
	var out []store.SimilarityEntry
	err := forEachRow(path, func(r row) {
		e := store.SimilarityEntry{
			ContentTitle:     r.str("content_title"),
			FighterName:      r.str("fighter_name"),
			Score:            r.float("similarity_score"),
			FightingStyle:    r.str("fighting_style"),
			FighterCluster:   r.str("fighter_cluster"),
			CommonThemes:     r.str("common_themes"),
			CommonGenres:     r.str("common_genres"),
			CommonNarratives: r.str("common_narratives"),
		}
		if e.ContentTitle != "" && e.FighterName != "" {
			out = append(out, e)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LoadFights reads the fight export. The file is optional: a missing path
// yields an empty table and no error.
func LoadFights(path string) ([]store.Fight, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	var out []store.Fight
	err := forEachRow(path, func(r row) {
		out = append(out, store.Fight{
			EventName:  r.str("event_name"),
			EventDate:  r.str("event_date"),
			RedName:    r.str("red_fighter_name"),
			BlueName:   r.str("blue_fighter_name"),
			RedResult:  r.str("red_fighter_result"),
			BlueResult: r.str("blue_fighter_result"),
			Method:     r.str("method"),
			Round:      r.str("round"),
			BoutType:   r.str("bout_type"),
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

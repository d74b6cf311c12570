// Package bundle assembles cross-media packages: one content item, its best
// matched fighters, their recent fights, and a thematic explanation of why
// the pieces belong together.
package bundle

import (
	"crypto/rand"
	"sort"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/octagonmedia/fightmatch/pkg/fightmatch/fightlog"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/recommend"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/store"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/tagger"
)

// fightLimit caps the fights attached to a bundle.
const fightLimit = 10

// ContentMeta is the content side of a bundle.
type ContentMeta struct {
	Title       string
	Type        string
	Description string
	Themes      []string
	Genres      []string
	Archetypes  []string
}

// FighterProfile is one fighter in a bundle.
type FighterProfile struct {
	Name          string
	FightingStyle string
	Lore          string
	Themes        []string
	Archetypes    []string
}

// Bundle packages content, fighters and fights with an explanation.
type Bundle struct {
	ID                 string
	Content            *ContentMeta
	Fighters           []FighterProfile
	Fights             []fightlog.Record
	Themes             []string // union of content and fighter themes, sorted
	Genres             []string
	ThematicConnection string
}

// Builder creates bundles over loaded catalogs.
type Builder struct {
	entropy *ulid.MonotonicEntropy

	contentByTitle map[string]store.Content
	fighterByName  map[string]store.Fighter
	mappedThemes   map[string][]string // fighter name -> common_themes cells

	tg     *tagger.Tagger
	rec    *recommend.Engine
	fights *fightlog.Index
}

// New builds a bundle builder. fights may be an empty index when no fight
// data was loaded.
func New(content []store.Content, fighters []store.Fighter, mapping []store.SimilarityEntry,
	tg *tagger.Tagger, rec *recommend.Engine, fights *fightlog.Index) *Builder {
	if tg == nil {
		tg = tagger.New(nil, nil)
	}
	if fights == nil {
		fights = fightlog.New(nil)
	}
	b := &Builder{
		entropy:        ulid.Monotonic(rand.Reader, 0),
		contentByTitle: make(map[string]store.Content, len(content)),
		fighterByName:  make(map[string]store.Fighter, len(fighters)),
		mappedThemes:   make(map[string][]string),
		tg:             tg,
		rec:            rec,
		fights:         fights,
	}
	for _, c := range content {
		if _, dup := b.contentByTitle[c.Title]; !dup {
			b.contentByTitle[c.Title] = c
		}
	}
	for _, f := range fighters {
		if _, dup := b.fighterByName[f.Name]; !dup {
			b.fighterByName[f.Name] = f
		}
	}
	for _, m := range mapping {
		if strings.TrimSpace(m.CommonThemes) != "" {
			b.mappedThemes[m.FighterName] = append(b.mappedThemes[m.FighterName], m.CommonThemes)
		}
	}
	return b
}

// CreateBundle assembles a bundle for the content title and fighter names.
// Unknown titles leave Content nil; unknown fighters are skipped.
func (b *Builder) CreateBundle(contentTitle string, fighterNames []string) Bundle {
	bundle := Bundle{
		ID: ulid.MustNew(ulid.Now(), b.entropy).String(),
	}

	themeSet := make(map[string]struct{})
	if c, ok := b.contentByTitle[contentTitle]; ok {
		tags := b.tg.TagContent(c)
		bundle.Content = &ContentMeta{
			Title:       contentTitle,
			Type:        c.Type,
			Description: c.Description,
			Themes:      tags.Themes,
			Genres:      tags.Genres,
			Archetypes:  tags.Archetypes,
		}
		bundle.Genres = tags.Genres
		for _, t := range tags.Themes {
			themeSet[t] = struct{}{}
		}
	}

	for _, name := range fighterNames {
		f, ok := b.fighterByName[name]
		if !ok {
			continue
		}
		tags := b.tg.TagFighter(f, b.mappedThemes[name])
		bundle.Fighters = append(bundle.Fighters, FighterProfile{
			Name:          name,
			FightingStyle: tags.FightingStyle,
			Lore:          f.Lore,
			Themes:        tags.Themes,
			Archetypes:    tags.Archetypes,
		})
		for _, t := range tags.Themes {
			themeSet[t] = struct{}{}
		}
	}

	bundle.Themes = make([]string, 0, len(themeSet))
	for t := range themeSet {
		bundle.Themes = append(bundle.Themes, t)
	}
	sort.Strings(bundle.Themes)

	if b.fights.Len() > 0 {
		bundle.Fights = b.fights.FindForFighters(fighterNames, fightLimit)
	}

	bundle.ThematicConnection = explain(bundle)
	return bundle
}

// BundlesForContent builds up to nBundles bundles, one per title, each
// holding the top nFightersPerBundle recommended fighters. Titles with no
// mapped fighters are skipped.
func (b *Builder) BundlesForContent(titles []string, nBundles, nFightersPerBundle int) []Bundle {
	if nBundles <= 0 || nFightersPerBundle <= 0 {
		return nil
	}
	if len(titles) > nBundles {
		titles = titles[:nBundles]
	}

	var bundles []Bundle
	for _, title := range titles {
		recs := b.rec.FightersForContent([]string{title}, nFightersPerBundle)
		if len(recs) == 0 {
			continue
		}
		names := make([]string, len(recs))
		for i, r := range recs {
			names[i] = r.FighterName
		}
		bundles = append(bundles, b.CreateBundle(title, names))
	}
	return bundles
}

// explain renders the thematic connection text. Deterministic for a given
// bundle: the theme slices it reads are already sorted.
func explain(bundle Bundle) string {
	if bundle.Content == nil || len(bundle.Fighters) == 0 {
		return "Bundle components available."
	}

	var parts []string

	contentThemes := headStrings(bundle.Content.Themes, 3)
	if len(contentThemes) > 0 {
		parts = append(parts, bundle.Content.Title+" features themes of "+strings.Join(contentThemes, ", "))
	} else {
		parts = append(parts, bundle.Content.Title+" offers compelling storytelling")
	}

	names := make([]string, 0, 3)
	for _, f := range bundle.Fighters {
		names = append(names, f.Name)
		if len(names) == 3 {
			break
		}
	}
	if len(names) == 1 {
		parts = append(parts, "Fighter "+names[0]+" embodies similar themes")
	} else {
		parts = append(parts, "Fighters "+strings.Join(names[:len(names)-1], ", ")+" and "+names[len(names)-1]+" share these thematic elements")
	}

	if len(bundle.Themes) > 0 {
		parts = append(parts, "connecting through themes like "+strings.Join(headStrings(bundle.Themes, 3), ", "))
	}

	return strings.Join(parts, ". ") + "."
}

func headStrings(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

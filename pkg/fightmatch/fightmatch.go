// Package fightmatch is a theme-tagging and similarity-matching engine that
// recommends fighters for media content and content for fighters. It
// consumes a precomputed similarity mapping together with content, fighter
// and fight catalogs, tags both sides against a shared theme vocabulary,
// and answers matching queries deterministically over the loaded data.
package fightmatch

import (
	"context"

	"github.com/octagonmedia/fightmatch/pkg/fightmatch/analytics"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/bundle"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/fightlog"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/recommend"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/store"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/tagger"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/textmatch"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/vocab"
)

// Options configures an Engine instance.
type Options struct {
	Content  []store.Content
	Fighters []store.Fighter
	Mapping  []store.SimilarityEntry
	Fights   []store.Fight

	// Vocab overrides the embedded default vocabulary when set.
	Vocab *vocab.Table
	// Matcher overrides the text matcher; nil builds the reference
	// substring matcher over Vocab.
	Matcher textmatch.Matcher
}

// Engine holds the loaded read-only catalogs and every collaborator built
// over them. All query methods are pure functions of the loaded data: same
// catalogs, same inputs, same outputs.
type Engine struct {
	table   *vocab.Table
	matcher textmatch.Matcher
	tg      *tagger.Tagger
	rec     *recommend.Engine
	bundles *bundle.Builder
	fights  *fightlog.Index
	stats   *analytics.Analyzer

	content  []store.Content
	fighters []store.Fighter
	mapping  []store.SimilarityEntry
}

// New builds an engine over the given catalogs.
func New(opts Options) *Engine {
	table := opts.Vocab
	if table == nil {
		table = vocab.Default()
	}
	matcher := opts.Matcher
	if matcher == nil {
		matcher = textmatch.NewSubstringMatcher(table)
	}

	tg := tagger.New(table, matcher)
	rec := recommend.New(opts.Content, opts.Fighters, opts.Mapping, tg)
	fights := fightlog.New(opts.Fights)

	return &Engine{
		table:    table,
		matcher:  matcher,
		tg:       tg,
		rec:      rec,
		bundles:  bundle.New(opts.Content, opts.Fighters, opts.Mapping, tg, rec, fights),
		fights:   fights,
		stats:    analytics.New(matcher),
		content:  opts.Content,
		fighters: opts.Fighters,
		mapping:  opts.Mapping,
	}
}

// LoadFromStore reads all four catalogs from a Store and builds an engine
// over them. Vocab and Matcher from opts are honored; catalog slices in
// opts are replaced by the store's contents.
func LoadFromStore(ctx context.Context, s store.Store, opts Options) (*Engine, error) {
	var err error
	if opts.Content, err = s.ListContent(ctx); err != nil {
		return nil, err
	}
	if opts.Fighters, err = s.ListFighters(ctx); err != nil {
		return nil, err
	}
	if opts.Mapping, err = s.ListSimilarity(ctx); err != nil {
		return nil, err
	}
	if opts.Fights, err = s.ListFights(ctx); err != nil {
		return nil, err
	}
	return New(opts), nil
}

// TagContent returns the thematic profile of a content row.
func (e *Engine) TagContent(c store.Content) tagger.ContentTags {
	return e.tg.TagContent(c)
}

// TagFighter returns the thematic profile of a fighter, folding in the
// common themes recorded for them in the similarity mapping.
func (e *Engine) TagFighter(f store.Fighter) tagger.FighterTags {
	var mapped []string
	for _, m := range e.mapping {
		if m.FighterName == f.Name && m.CommonThemes != "" {
			mapped = append(mapped, m.CommonThemes)
		}
	}
	return e.tg.TagFighter(f, mapped)
}

// FightersForContent recommends up to n fighters for the given titles.
func (e *Engine) FightersForContent(titles []string, n int) []recommend.FighterRec {
	return e.rec.FightersForContent(titles, n)
}

// FightersForFilters recommends fighters for a filter selection, falling
// back to direct tag matching when the mapping has no coverage.
func (e *Engine) FightersForFilters(f recommend.Filters, n int) []recommend.FighterRec {
	return e.rec.FightersForFilters(f, n)
}

// ContentForFighter recommends up to n content items for a fighter.
func (e *Engine) ContentForFighter(name string, n int) []recommend.ContentRec {
	return e.rec.ContentForFighter(name, n)
}

// FighterThemes returns the tagged themes of a fighter by name.
func (e *Engine) FighterThemes(name string) []string {
	return e.rec.FighterThemes(name)
}

// ContentThemes returns the tagged themes of a content title.
func (e *Engine) ContentThemes(title string) []string {
	return e.rec.ContentThemes(title)
}

// CreateBundle assembles a bundle for a content title and fighter names.
func (e *Engine) CreateBundle(contentTitle string, fighterNames []string) bundle.Bundle {
	return e.bundles.CreateBundle(contentTitle, fighterNames)
}

// BundlesForContent assembles up to nBundles bundles, one per title.
func (e *Engine) BundlesForContent(titles []string, nBundles, nFightersPerBundle int) []bundle.Bundle {
	return e.bundles.BundlesForContent(titles, nBundles, nFightersPerBundle)
}

// FightsForFighters returns up to limit fights involving any named fighter.
func (e *Engine) FightsForFighters(names []string, limit int) []fightlog.Record {
	return e.fights.FindForFighters(names, limit)
}

// RecentFights returns a fighter's most recent fights.
func (e *Engine) RecentFights(name string, n int) []fightlog.Record {
	return e.fights.RecentFights(name, n)
}

// TitleFights returns a fighter's title fights.
func (e *Engine) TitleFights(name string) []fightlog.Record {
	return e.fights.TitleFights(name)
}

// AllThemes returns every distinct theme observed across the catalogs.
func (e *Engine) AllThemes() []string {
	return e.stats.AllThemes(e.content, e.fighters)
}

// AllGenres returns every distinct genre in the content catalog.
func (e *Engine) AllGenres() []string {
	return e.stats.AllGenres(e.content)
}

// ThemeCounts returns seeded content theme frequencies.
func (e *Engine) ThemeCounts() []analytics.Count {
	return e.stats.ThemeCounts(e.content)
}

// GenreCounts returns genre frequencies over the content catalog.
func (e *Engine) GenreCounts() []analytics.Count {
	return e.stats.GenreCounts(e.content)
}

// Content returns the loaded content catalog.
func (e *Engine) Content() []store.Content { return e.content }

// Fighters returns the loaded fighter catalog.
func (e *Engine) Fighters() []store.Fighter { return e.fighters }

// Command fightmatch-cli answers matching queries over the loaded catalogs
// and prints the results as JSON. Catalogs come from a sqlite database
// produced by the bootstrap command or directly from the CSV files.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/octagonmedia/fightmatch/internal/csvload"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/analytics"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/config"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/fightlog"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/recommend"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/store/sqlite"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/vocab"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Optional settings YAML with catalog paths")
		dbPath      = flag.String("db", "", "Path to a bootstrapped sqlite database")
		contentCSV  = flag.String("content", "", "Path to the content catalog CSV")
		fightersCSV = flag.String("fighters", "", "Path to the fighter table CSV")
		mappingCSV  = flag.String("mapping", "", "Path to the similarity mapping CSV")
		fightsCSV   = flag.String("fights", "", "Path to the fight records CSV (optional)")
		vocabPath   = flag.String("vocab", "", "Optional vocabulary YAML overriding the built-in themes")
		automaton   = flag.Bool("automaton", false, "Use the Aho-Corasick matcher instead of substring scanning")

		mode       = flag.String("mode", "fighters", "Query mode: fighters, content, filter, bundles, themes, genres, fights")
		titles     = flag.String("titles", "", "Comma-separated content titles (fighters, bundles modes)")
		fighter    = flag.String("fighter", "", "Fighter name (content, fights modes)")
		genres     = flag.String("genres", "", "Comma-separated genre filter (filter mode)")
		themes     = flag.String("themes", "", "Comma-separated theme filter (filter mode)")
		archetypes = flag.String("archetypes", "", "Comma-separated archetype filter (filter mode)")
		types      = flag.String("types", "", "Comma-separated content type restriction (filter mode)")
		limit      = flag.Int("limit", 5, "Maximum results to return")
		nBundles   = flag.Int("bundles", 3, "Maximum bundles to assemble (bundles mode)")
		bundleSize = flag.Int("bundle-size", 3, "Fighters per bundle (bundles mode)")
	)
	flag.Parse()

	settings := &config.Settings{}
	if *configPath != "" {
		loaded, err := config.LoadSettings(*configPath)
		if err != nil {
			log.Fatalf("load settings: %v", err)
		}
		settings = loaded
	}
	applyOverride(&settings.DBPath, *dbPath)
	applyOverride(&settings.ContentCSV, *contentCSV)
	applyOverride(&settings.FightersCSV, *fightersCSV)
	applyOverride(&settings.MappingCSV, *mappingCSV)
	applyOverride(&settings.FightsCSV, *fightsCSV)
	applyOverride(&settings.VocabPath, *vocabPath)
	if *automaton {
		settings.UseAutomaton = true
	}

	ctx := context.Background()
	engine := buildEngine(ctx, settings)

	var result any
	switch *mode {
	case "fighters":
		selected := splitList(*titles)
		if len(selected) == 0 {
			log.Fatal("--titles required for fighters mode")
		}
		result = engine.FightersForContent(selected, *limit)
	case "content":
		if *fighter == "" {
			log.Fatal("--fighter required for content mode")
		}
		result = engine.ContentForFighter(*fighter, *limit)
	case "filter":
		result = engine.FightersForFilters(recommend.Filters{
			Genres:     splitList(*genres),
			Themes:     splitList(*themes),
			Archetypes: splitList(*archetypes),
			Types:      splitList(*types),
			Titles:     splitList(*titles),
		}, *limit)
	case "bundles":
		selected := splitList(*titles)
		if len(selected) == 0 {
			log.Fatal("--titles required for bundles mode")
		}
		result = engine.BundlesForContent(selected, *nBundles, *bundleSize)
	case "themes":
		allThemes := engine.AllThemes()
		result = struct {
			Themes  []string          `json:"themes"`
			Display []string          `json:"display"`
			Counts  []analytics.Count `json:"content_counts"`
		}{allThemes, vocab.FormatThemes(allThemes), engine.ThemeCounts()}
	case "genres":
		result = struct {
			Genres []string          `json:"genres"`
			Counts []analytics.Count `json:"content_counts"`
		}{engine.AllGenres(), engine.GenreCounts()}
	case "fights":
		if *fighter == "" {
			log.Fatal("--fighter required for fights mode")
		}
		result = struct {
			Recent []fightlog.Record `json:"recent"`
			Title  []fightlog.Record `json:"title_fights"`
		}{engine.RecentFights(*fighter, *limit), engine.TitleFights(*fighter)}
	default:
		log.Fatalf("unknown mode %q", *mode)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("marshal result: %v", err)
	}
	fmt.Println(string(out))
}

// buildEngine loads catalogs from the database when one is configured,
// otherwise from the CSV paths.
func buildEngine(ctx context.Context, settings *config.Settings) *fightmatch.Engine {
	loader := config.Loader{VocabPath: settings.VocabPath, UseAutomaton: settings.UseAutomaton}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load configs: %v", err)
	}

	opts := fightmatch.Options{Vocab: components.Table, Matcher: components.Matcher}

	if settings.DBPath != "" {
		db, err := sqlite.Open(ctx, settings.DBPath)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		defer db.Close()
		engine, err := fightmatch.LoadFromStore(ctx, db, opts)
		if err != nil {
			log.Fatalf("load catalogs: %v", err)
		}
		return engine
	}

	if settings.ContentCSV == "" || settings.FightersCSV == "" || settings.MappingCSV == "" {
		log.Fatal("either --db or --content, --fighters, and --mapping are required")
	}
	if opts.Content, err = csvload.LoadContent(settings.ContentCSV); err != nil {
		log.Fatalf("load content: %v", err)
	}
	if opts.Fighters, err = csvload.LoadFighters(settings.FightersCSV); err != nil {
		log.Fatalf("load fighters: %v", err)
	}
	if opts.Mapping, err = csvload.LoadMapping(settings.MappingCSV); err != nil {
		log.Fatalf("load mapping: %v", err)
	}
	if settings.FightsCSV != "" {
		if opts.Fights, err = csvload.LoadFights(settings.FightsCSV); err != nil {
			log.Fatalf("load fights: %v", err)
		}
	}
	return fightmatch.New(opts)
}

func applyOverride(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

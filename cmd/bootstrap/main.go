// Command bootstrap loads the CSV catalogs into a sqlite database so the
// CLI can start from a single file instead of re-parsing CSVs.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/octagonmedia/fightmatch/internal/csvload"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/store"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/store/sqlite"
)

func main() {
	var (
		dbPath      = flag.String("db", "fightmatch.db", "Path to the sqlite database to create or update")
		contentCSV  = flag.String("content", "", "Path to the content catalog CSV (required)")
		fightersCSV = flag.String("fighters", "", "Path to the fighter table CSV (required)")
		mappingCSV  = flag.String("mapping", "", "Path to the content-fighter similarity CSV (required)")
		fightsCSV   = flag.String("fights", "", "Path to the fight records CSV (optional)")
	)
	flag.Parse()

	if *contentCSV == "" || *fightersCSV == "" || *mappingCSV == "" {
		log.Fatal("--content, --fighters, and --mapping are required")
	}

	ctx := context.Background()

	content, err := csvload.LoadContent(*contentCSV)
	if err != nil {
		log.Fatalf("load content: %v", err)
	}
	fighters, err := csvload.LoadFighters(*fightersCSV)
	if err != nil {
		log.Fatalf("load fighters: %v", err)
	}
	mapping, err := csvload.LoadMapping(*mappingCSV)
	if err != nil {
		log.Fatalf("load mapping: %v", err)
	}
	var fights []store.Fight
	if *fightsCSV != "" {
		if fights, err = csvload.LoadFights(*fightsCSV); err != nil {
			log.Fatalf("load fights: %v", err)
		}
	}

	db, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	for _, c := range content {
		if err := db.UpsertContent(ctx, c); err != nil {
			log.Fatalf("upsert content %q: %v", c.Title, err)
		}
	}
	for _, f := range fighters {
		if err := db.UpsertFighter(ctx, f); err != nil {
			log.Fatalf("upsert fighter %q: %v", f.Name, err)
		}
	}
	for _, m := range mapping {
		if err := db.UpsertSimilarity(ctx, m); err != nil {
			log.Fatalf("upsert similarity %q/%q: %v", m.ContentTitle, m.FighterName, err)
		}
	}
	for _, f := range fights {
		if err := db.UpsertFight(ctx, f); err != nil {
			log.Fatalf("upsert fight %q: %v", f.EventName, err)
		}
	}

	log.Printf("Loaded %d content rows, %d fighters, %d mapping rows, %d fights", len(content), len(fighters), len(mapping), len(fights))
	fmt.Printf("Catalog database written to %s\n", *dbPath)
}

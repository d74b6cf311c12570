// Package sqlite persists the fightmatch catalogs in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	_ "modernc.org/sqlite"

	"github.com/octagonmedia/fightmatch/pkg/fightmatch/internalerr"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/store"
)

// sqliteStore implements the Store interface using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite catalog database with WAL mode enabled and the schema
// applied. Opening an existing database is idempotent.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL allows concurrent readers while the bootstrap writes.
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist.
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS content (
	title TEXT PRIMARY KEY,
	type TEXT,
	description TEXT,
	genres TEXT,
	themes TEXT,
	archetypes TEXT,
	narrative_patterns TEXT
);

CREATE TABLE IF NOT EXISTS fighters (
	name TEXT PRIMARY KEY,
	lore TEXT,
	strikes_per_min REAL DEFAULT 0,
	strike_acc REAL DEFAULT 0,
	head_ratio REAL DEFAULT 0,
	body_ratio REAL DEFAULT 0,
	leg_ratio REAL DEFAULT 0,
	takedown_acc REAL DEFAULT 0,
	control_ratio REAL DEFAULT 0,
	clinch_ratio REAL DEFAULT 0,
	stat_fights INTEGER DEFAULT 0,
	age INTEGER DEFAULT 0,
	nationality TEXT,
	height_inches REAL DEFAULT 0,
	reach_inches REAL DEFAULT 0,
	stance TEXT,
	wins INTEGER DEFAULT 0,
	losses INTEGER DEFAULT 0,
	draws INTEGER DEFAULT 0,
	cluster INTEGER DEFAULT 0,
	has_cluster INTEGER DEFAULT 0
);

CREATE TABLE IF NOT EXISTS similarity (
	content_title TEXT NOT NULL,
	fighter_name TEXT NOT NULL,
	score REAL NOT NULL,
	fighting_style TEXT,
	fighter_cluster TEXT,
	common_themes TEXT,
	common_genres TEXT,
	common_narratives TEXT,
	PRIMARY KEY(content_title, fighter_name)
);

CREATE TABLE IF NOT EXISTS fights (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	event_name TEXT,
	event_date TEXT,
	red_name TEXT,
	blue_name TEXT,
	red_result TEXT,
	blue_result TEXT,
	method TEXT,
	round TEXT,
	bout_type TEXT
);

CREATE INDEX IF NOT EXISTS idx_similarity_fighter ON similarity(fighter_name);
CREATE INDEX IF NOT EXISTS idx_fights_red ON fights(red_name);
CREATE INDEX IF NOT EXISTS idx_fights_blue ON fights(blue_name);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

func marshalList(list []string) (string, error) {
	if len(list) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalList(s string) ([]string, error) {
	if s == "" || s == "[]" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(s), &list); err != nil {
		return nil, err
	}
	return list, nil
}

// UpsertContent inserts or updates a content row, keyed by title.
func (s *sqliteStore) UpsertContent(ctx context.Context, c store.Content) error {
	if c.Title == "" {
		return internalerr.ErrInvalidInput
	}
	genres, err := marshalList(c.Genres)
	if err != nil {
		return err
	}
	themes, err := marshalList(c.Themes)
	if err != nil {
		return err
	}
	archetypes, err := marshalList(c.Archetypes)
	if err != nil {
		return err
	}
	narratives, err := marshalList(c.NarrativePatterns)
	if err != nil {
		return err
	}

	const stmt = `
INSERT INTO content (title, type, description, genres, themes, archetypes, narrative_patterns)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(title) DO UPDATE SET
	type=excluded.type,
	description=excluded.description,
	genres=excluded.genres,
	themes=excluded.themes,
	archetypes=excluded.archetypes,
	narrative_patterns=excluded.narrative_patterns;
`
	_, err = s.db.ExecContext(ctx, stmt, c.Title, c.Type, c.Description, genres, themes, archetypes, narratives)
	return err
}

func scanContent(rows interface{ Scan(...any) error }) (store.Content, error) {
	var c store.Content
	var genres, themes, archetypes, narratives string
	if err := rows.Scan(&c.Title, &c.Type, &c.Description, &genres, &themes, &archetypes, &narratives); err != nil {
		return store.Content{}, err
	}
	var err error
	if c.Genres, err = unmarshalList(genres); err != nil {
		return store.Content{}, err
	}
	if c.Themes, err = unmarshalList(themes); err != nil {
		return store.Content{}, err
	}
	if c.Archetypes, err = unmarshalList(archetypes); err != nil {
		return store.Content{}, err
	}
	if c.NarrativePatterns, err = unmarshalList(narratives); err != nil {
		return store.Content{}, err
	}
	return c, nil
}

const contentCols = `title, type, description, genres, themes, archetypes, narrative_patterns`

// GetContent returns a content row by title.
func (s *sqliteStore) GetContent(ctx context.Context, title string) (store.Content, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+contentCols+` FROM content WHERE title=?`, title)
	c, err := scanContent(row)
	if err == sql.ErrNoRows {
		return store.Content{}, false, nil
	}
	if err != nil {
		return store.Content{}, false, err
	}
	return c, true, nil
}

// ListContent returns all content rows ordered by title.
func (s *sqliteStore) ListContent(ctx context.Context) ([]store.Content, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+contentCols+` FROM content ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

const fighterCols = `name, lore, strikes_per_min, strike_acc, head_ratio, body_ratio, leg_ratio,
	takedown_acc, control_ratio, clinch_ratio, stat_fights, age, nationality,
	height_inches, reach_inches, stance, wins, losses, draws, cluster, has_cluster`

// UpsertFighter inserts or updates a fighter, keyed by name.
func (s *sqliteStore) UpsertFighter(ctx context.Context, f store.Fighter) error {
	if f.Name == "" {
		return internalerr.ErrInvalidInput
	}
	const stmt = `
INSERT INTO fighters (` + fighterCols + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
	lore=excluded.lore,
	strikes_per_min=excluded.strikes_per_min,
	strike_acc=excluded.strike_acc,
	head_ratio=excluded.head_ratio,
	body_ratio=excluded.body_ratio,
	leg_ratio=excluded.leg_ratio,
	takedown_acc=excluded.takedown_acc,
	control_ratio=excluded.control_ratio,
	clinch_ratio=excluded.clinch_ratio,
	stat_fights=excluded.stat_fights,
	age=excluded.age,
	nationality=excluded.nationality,
	height_inches=excluded.height_inches,
	reach_inches=excluded.reach_inches,
	stance=excluded.stance,
	wins=excluded.wins,
	losses=excluded.losses,
	draws=excluded.draws,
	cluster=excluded.cluster,
	has_cluster=excluded.has_cluster;
`
	hasCluster := 0
	if f.HasCluster {
		hasCluster = 1
	}
	_, err := s.db.ExecContext(ctx, stmt,
		f.Name, f.Lore, f.StrikesPerMin, f.StrikeAcc, f.HeadRatio, f.BodyRatio, f.LegRatio,
		f.TakedownAcc, f.ControlRatio, f.ClinchRatio, f.StatFights, f.Age, f.Nationality,
		f.HeightInches, f.ReachInches, f.Stance, f.Wins, f.Losses, f.Draws, f.Cluster, hasCluster)
	return err
}

func scanFighter(row interface{ Scan(...any) error }) (store.Fighter, error) {
	var f store.Fighter
	var hasCluster int
	err := row.Scan(&f.Name, &f.Lore, &f.StrikesPerMin, &f.StrikeAcc, &f.HeadRatio, &f.BodyRatio,
		&f.LegRatio, &f.TakedownAcc, &f.ControlRatio, &f.ClinchRatio, &f.StatFights, &f.Age,
		&f.Nationality, &f.HeightInches, &f.ReachInches, &f.Stance, &f.Wins, &f.Losses, &f.Draws,
		&f.Cluster, &hasCluster)
	if err != nil {
		return store.Fighter{}, err
	}
	f.HasCluster = hasCluster != 0
	return f, nil
}

// GetFighter returns a fighter by name.
func (s *sqliteStore) GetFighter(ctx context.Context, name string) (store.Fighter, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+fighterCols+` FROM fighters WHERE name=?`, name)
	f, err := scanFighter(row)
	if err == sql.ErrNoRows {
		return store.Fighter{}, false, nil
	}
	if err != nil {
		return store.Fighter{}, false, err
	}
	return f, true, nil
}

// ListFighters returns all fighters ordered by name.
func (s *sqliteStore) ListFighters(ctx context.Context) ([]store.Fighter, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+fighterCols+` FROM fighters ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Fighter
	for rows.Next() {
		f, err := scanFighter(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// UpsertSimilarity inserts or updates a mapping row, keyed by the
// (content title, fighter name) pair.
func (s *sqliteStore) UpsertSimilarity(ctx context.Context, e store.SimilarityEntry) error {
	if e.ContentTitle == "" || e.FighterName == "" {
		return internalerr.ErrInvalidInput
	}
	const stmt = `
INSERT INTO similarity (content_title, fighter_name, score, fighting_style, fighter_cluster,
	common_themes, common_genres, common_narratives)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(content_title, fighter_name) DO UPDATE SET
	score=excluded.score,
	fighting_style=excluded.fighting_style,
	fighter_cluster=excluded.fighter_cluster,
	common_themes=excluded.common_themes,
	common_genres=excluded.common_genres,
	common_narratives=excluded.common_narratives;
`
	_, err := s.db.ExecContext(ctx, stmt, e.ContentTitle, e.FighterName, e.Score,
		e.FightingStyle, e.FighterCluster, e.CommonThemes, e.CommonGenres, e.CommonNarratives)
	return err
}

// ListSimilarity returns all mapping rows ordered by content title then
// fighter name.
func (s *sqliteStore) ListSimilarity(ctx context.Context) ([]store.SimilarityEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT content_title, fighter_name, score, fighting_style, fighter_cluster,
	common_themes, common_genres, common_narratives
FROM similarity ORDER BY content_title, fighter_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.SimilarityEntry
	for rows.Next() {
		var e store.SimilarityEntry
		if err := rows.Scan(&e.ContentTitle, &e.FighterName, &e.Score, &e.FightingStyle,
			&e.FighterCluster, &e.CommonThemes, &e.CommonGenres, &e.CommonNarratives); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// UpsertFight appends a fight record.
func (s *sqliteStore) UpsertFight(ctx context.Context, f store.Fight) error {
	const stmt = `
INSERT INTO fights (event_name, event_date, red_name, blue_name, red_result, blue_result,
	method, round, bout_type)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
`
	_, err := s.db.ExecContext(ctx, stmt, f.EventName, f.EventDate, f.RedName, f.BlueName,
		f.RedResult, f.BlueResult, f.Method, f.Round, f.BoutType)
	return err
}

// ListFights returns all fight rows in insertion order.
func (s *sqliteStore) ListFights(ctx context.Context) ([]store.Fight, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT event_name, event_date, red_name, blue_name, red_result, blue_result, method, round, bout_type
FROM fights ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Fight
	for rows.Next() {
		var f store.Fight
		if err := rows.Scan(&f.EventName, &f.EventDate, &f.RedName, &f.BlueName,
			&f.RedResult, &f.BlueResult, &f.Method, &f.Round, &f.BoutType); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

package store

import "context"

// Store persists the four read-only catalogs the engine consumes.
// Implementations must be safe for concurrent readers once loaded.
type Store interface {
	Close() error

	// Content catalog
	UpsertContent(ctx context.Context, c Content) error
	GetContent(ctx context.Context, title string) (Content, bool, error)
	ListContent(ctx context.Context) ([]Content, error)

	// Fighters
	UpsertFighter(ctx context.Context, f Fighter) error
	GetFighter(ctx context.Context, name string) (Fighter, bool, error)
	ListFighters(ctx context.Context) ([]Fighter, error)

	// Content-fighter similarity mapping
	UpsertSimilarity(ctx context.Context, e SimilarityEntry) error
	ListSimilarity(ctx context.Context) ([]SimilarityEntry, error)

	// Fight records
	UpsertFight(ctx context.Context, f Fight) error
	ListFights(ctx context.Context) ([]Fight, error)
}

// Content is one row of the content catalog. List-valued CSV columns are
// parsed at load time so downstream tagging never sees serialized forms.
type Content struct {
	Title             string
	Type              string
	Description       string
	Genres            []string
	Themes            []string
	Archetypes        []string
	NarrativePatterns []string
}

// Fighter is one row of the fighter table. Missing numeric fields are
// coerced to zero at load time; zero is neutral for every threshold rule.
// Age zero means unknown and is estimated from fight count downstream.
type Fighter struct {
	Name          string
	Lore          string
	StrikesPerMin float64 // strikes landed per minute, career mean
	StrikeAcc     float64 // strike accuracy in [0,1]
	HeadRatio     float64 // head strike ratio in [0,1]
	BodyRatio     float64
	LegRatio      float64
	TakedownAcc   float64
	ControlRatio  float64 // control time ratio in [0,1]
	ClinchRatio   float64
	StatFights    int // fights backing the stat means, fallback fight count
	Age           int
	Nationality   string
	HeightInches  float64
	ReachInches   float64
	Stance        string
	Wins          int
	Losses        int
	Draws         int
	Cluster       int  // k-means style cluster id
	HasCluster    bool // false when the cluster column was absent
}

// TotalFights returns the recorded fight count, falling back to the
// stat-sample count when the win/loss record is empty.
func (f Fighter) TotalFights() int {
	if f.Wins > 0 || f.Losses > 0 {
		return f.Wins + f.Losses
	}
	return f.StatFights
}

// WinRate returns wins over total fights, zero when no fights are known.
func (f Fighter) WinRate() float64 {
	total := f.TotalFights()
	if total == 0 {
		return 0
	}
	return float64(f.Wins) / float64(total)
}

// SimilarityEntry is one row of the externally computed content-fighter
// similarity table. The engine aggregates these, it never recomputes them.
type SimilarityEntry struct {
	ContentTitle     string
	FighterName      string
	Score            float64
	FightingStyle    string
	FighterCluster   string
	CommonThemes     string // comma-joined
	CommonGenres     string
	CommonNarratives string
}

// Fight is one historical fight record, used by the bundle fight lookup.
type Fight struct {
	EventName  string
	EventDate  string // dd/mm/yyyy as delivered upstream
	RedName    string
	BlueName   string
	RedResult  string // "W", "L", "D"
	BlueResult string
	Method     string
	Round      string
	BoutType   string
}

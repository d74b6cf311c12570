// Package memstore is an in-memory implementation of store.Store, used in
// tests and for catalogs loaded directly from CSV files.
package memstore

import (
	"context"
	"sync"

	"github.com/octagonmedia/fightmatch/pkg/fightmatch/internalerr"
	"github.com/octagonmedia/fightmatch/pkg/fightmatch/store"
)

// Store holds the four catalogs in memory. Content and fighters are keyed
// by identity (title, name); similarity rows and fights append in order.
type Store struct {
	mu sync.RWMutex

	content      []store.Content
	contentIndex map[string]int

	fighters     []store.Fighter
	fighterIndex map[string]int

	similarity []store.SimilarityEntry
	simIndex   map[[2]string]int

	fights []store.Fight
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		contentIndex: make(map[string]int),
		fighterIndex: make(map[string]int),
		simIndex:     make(map[[2]string]int),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertContent inserts or replaces a content row, keyed by title.
func (s *Store) UpsertContent(ctx context.Context, c store.Content) error {
	if c.Title == "" {
		return internalerr.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.contentIndex[c.Title]; ok {
		s.content[i] = c
		return nil
	}
	s.contentIndex[c.Title] = len(s.content)
	s.content = append(s.content, c)
	return nil
}

// GetContent returns a content row by title.
func (s *Store) GetContent(ctx context.Context, title string) (store.Content, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i, ok := s.contentIndex[title]; ok {
		return s.content[i], true, nil
	}
	return store.Content{}, false, nil
}

// ListContent returns all content rows in insertion order.
func (s *Store) ListContent(ctx context.Context) ([]store.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Content, len(s.content))
	copy(out, s.content)
	return out, nil
}

// UpsertFighter inserts or replaces a fighter, keyed by name.
func (s *Store) UpsertFighter(ctx context.Context, f store.Fighter) error {
	if f.Name == "" {
		return internalerr.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.fighterIndex[f.Name]; ok {
		s.fighters[i] = f
		return nil
	}
	s.fighterIndex[f.Name] = len(s.fighters)
	s.fighters = append(s.fighters, f)
	return nil
}

// GetFighter returns a fighter by name.
func (s *Store) GetFighter(ctx context.Context, name string) (store.Fighter, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i, ok := s.fighterIndex[name]; ok {
		return s.fighters[i], true, nil
	}
	return store.Fighter{}, false, nil
}

// ListFighters returns all fighters in insertion order.
func (s *Store) ListFighters(ctx context.Context) ([]store.Fighter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Fighter, len(s.fighters))
	copy(out, s.fighters)
	return out, nil
}

// UpsertSimilarity inserts or replaces a mapping row, keyed by the
// (content title, fighter name) pair.
func (s *Store) UpsertSimilarity(ctx context.Context, e store.SimilarityEntry) error {
	if e.ContentTitle == "" || e.FighterName == "" {
		return internalerr.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := [2]string{e.ContentTitle, e.FighterName}
	if i, ok := s.simIndex[key]; ok {
		s.similarity[i] = e
		return nil
	}
	s.simIndex[key] = len(s.similarity)
	s.similarity = append(s.similarity, e)
	return nil
}

// ListSimilarity returns all mapping rows in insertion order.
func (s *Store) ListSimilarity(ctx context.Context) ([]store.SimilarityEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.SimilarityEntry, len(s.similarity))
	copy(out, s.similarity)
	return out, nil
}

// UpsertFight appends a fight record. Fight rows have no natural key
// upstream, so duplicates are the caller's concern.
func (s *Store) UpsertFight(ctx context.Context, f store.Fight) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fights = append(s.fights, f)
	return nil
}

// ListFights returns all fight rows in insertion order.
func (s *Store) ListFights(ctx context.Context) ([]store.Fight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Fight, len(s.fights))
	copy(out, s.fights)
	return out, nil
}

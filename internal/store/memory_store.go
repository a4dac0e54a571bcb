// Package store keeps the player and category pools in memory. Pools are
// loaded from a provider at boot (and on admin refresh) and read by the
// generator and HTTP layer; reads vastly outnumber writes.
package store

import (
	"sync"

	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/domain/players"
)

// MemoryStore keeps a thread-safe snapshot of the data pools in memory.
type MemoryStore struct {
	mu         sync.RWMutex
	players    []players.Player
	playerByID map[string]players.Player
	categories []categories.Category
	catByID    map[string]categories.Category
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		playerByID: make(map[string]players.Player),
		catByID:    make(map[string]categories.Category),
	}
}

// ListPlayers returns a copy of the current player pool in load order.
func (s *MemoryStore) ListPlayers() []players.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]players.Player(nil), s.players...)
}

// GetPlayer retrieves a player by ID.
func (s *MemoryStore) GetPlayer(id string) (players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.playerByID[id]
	return p, ok
}

// ListCategories returns a copy of the current category pool in load order.
func (s *MemoryStore) ListCategories() []categories.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]categories.Category(nil), s.categories...)
}

// GetCategory retrieves a category by ID.
func (s *MemoryStore) GetCategory(id string) (categories.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.catByID[id]
	return c, ok
}

// SetPlayers replaces the player pool with a new snapshot.
func (s *MemoryStore) SetPlayers(pool []players.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = append([]players.Player(nil), pool...)
	s.playerByID = make(map[string]players.Player, len(pool))
	for _, p := range pool {
		s.playerByID[p.ID] = p
	}
}

// SetCategories replaces the category pool with a new snapshot.
func (s *MemoryStore) SetCategories(pool []categories.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories = append([]categories.Category(nil), pool...)
	s.catByID = make(map[string]categories.Category, len(pool))
	for _, c := range pool {
		s.catByID[c.ID] = c
	}
}

// Counts reports pool sizes, used by readiness checks.
func (s *MemoryStore) Counts() (playerCount, categoryCount int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players), len(s.categories)
}

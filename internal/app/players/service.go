// Package players exposes read access to the player and category pools.
package players

import (
	"cricket-bingo-service/internal/domain/categories"
	domainplayers "cricket-bingo-service/internal/domain/players"
)

// Store defines the contract for reading the data pools.
type Store interface {
	ListPlayers() []domainplayers.Player
	GetPlayer(id string) (domainplayers.Player, bool)
	ListCategories() []categories.Category
	GetCategory(id string) (categories.Category, bool)
}

// Service coordinates pool reads using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Players returns the current player pool.
func (s *Service) Players() []domainplayers.Player {
	return s.store.ListPlayers()
}

// PlayerByID returns a single player if present.
func (s *Service) PlayerByID(id string) (domainplayers.Player, bool) {
	return s.store.GetPlayer(id)
}

// Categories returns the current category pool.
func (s *Service) Categories() []categories.Category {
	return s.store.ListCategories()
}

// CategoryByID returns a single category if present.
func (s *Service) CategoryByID(id string) (categories.Category, bool) {
	return s.store.GetCategory(id)
}

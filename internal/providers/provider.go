package providers

import (
	"context"

	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/domain/players"
)

// PlayerProvider fetches the normalized player pool used to build games.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context) ([]players.Player, error)
}

// CategoryProvider fetches the category pool. Providers must return
// categories with predicates already parsed (see categories.Normalize).
type CategoryProvider interface {
	FetchCategories(ctx context.Context) ([]categories.Category, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	PlayerProvider
	CategoryProvider
}

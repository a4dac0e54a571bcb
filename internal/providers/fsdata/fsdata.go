// Package fsdata loads the player pool and category pool from JSON files on
// disk. It backs deployments that ship a curated data set alongside the
// binary instead of calling an upstream API.
package fsdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/domain/players"
)

const (
	playersFile    = "players.json"
	categoriesFile = "categories.json"
)

// Provider reads data files from a directory.
type Provider struct {
	dir string
}

// New creates a filesystem provider rooted at dir.
func New(dir string) *Provider {
	return &Provider{dir: dir}
}

// FetchPlayers decodes players.json from the data directory.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx

	raw, err := os.ReadFile(filepath.Join(p.dir, playersFile))
	if err != nil {
		return nil, fmt.Errorf("fsdata: read players: %w", err)
	}

	var pool []players.Player
	if err := json.Unmarshal(raw, &pool); err != nil {
		return nil, fmt.Errorf("fsdata: decode players: %w", err)
	}
	if len(pool) == 0 {
		return nil, errors.New("fsdata: players file is empty")
	}
	return pool, nil
}

// FetchCategories decodes categories.json and parses every validator key.
// When the file is absent the built-in catalog is returned, so a deployment
// only needs a categories file to override the defaults.
func (p *Provider) FetchCategories(ctx context.Context) ([]categories.Category, error) {
	_ = ctx

	raw, err := os.ReadFile(filepath.Join(p.dir, categoriesFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return categories.Catalog, nil
		}
		return nil, fmt.Errorf("fsdata: read categories: %w", err)
	}

	var pool []categories.Category
	if err := json.Unmarshal(raw, &pool); err != nil {
		return nil, fmt.Errorf("fsdata: decode categories: %w", err)
	}
	for i := range pool {
		if err := categories.Normalize(&pool[i]); err != nil {
			return nil, fmt.Errorf("fsdata: category %q: %w", pool[i].ID, err)
		}
	}
	return pool, nil
}

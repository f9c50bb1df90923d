// Package food persists food log entries as a JSON array on disk.
package food

import (
	"context"

	"github.com/eats-health/eats/internal/models"
)

// Repository is the food log storage contract.
type Repository interface {
	// GetAll returns every entry in file order. A missing file yields an
	// empty slice.
	GetAll(ctx context.Context) ([]models.FoodEntry, error)

	// Append adds one entry to the end of the log.
	Append(ctx context.Context, entry models.FoodEntry) error

	// DeleteByID removes the entry with the given ID, returning
	// common.ErrNotFound when no entry matches.
	DeleteByID(ctx context.Context, id string) error

	// Clear removes every entry.
	Clear(ctx context.Context) error
}

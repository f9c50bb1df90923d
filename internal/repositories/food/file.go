package food

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/eats-health/eats/internal/common"
	"github.com/eats-health/eats/internal/filex"
	"github.com/eats-health/eats/internal/models"
)

// FileRepository stores the log in a single JSON array file. Unlike the
// credential store it keeps nothing in memory: every operation is a
// read-modify-write cycle under the mutex.
type FileRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// GetAll implements Repository.
func (r *FileRepository) GetAll(ctx context.Context) ([]models.FoodEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readLocked()
}

// Append implements Repository.
func (r *FileRepository) Append(ctx context.Context, entry models.FoodEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.readLocked()
	if err != nil {
		return err
	}
	return r.writeLocked(append(entries, entry))
}

// DeleteByID implements Repository.
func (r *FileRepository) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.readLocked()
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return common.ErrNotFound
	}
	return r.writeLocked(kept)
}

// Clear implements Repository.
func (r *FileRepository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writeLocked([]models.FoodEntry{})
}

func (r *FileRepository) readLocked() ([]models.FoodEntry, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.FoodEntry{}, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %w", common.ErrStorage, r.path, err)
	}

	if len(data) == 0 {
		return []models.FoodEntry{}, nil
	}

	var entries []models.FoodEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", common.ErrStorage, r.path, err)
	}
	return entries, nil
}

func (r *FileRepository) writeLocked(entries []models.FoodEntry) error {
	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encoding food log: %w", common.ErrStorage, err)
	}
	if err := filex.WriteFileAtomic(r.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	return nil
}

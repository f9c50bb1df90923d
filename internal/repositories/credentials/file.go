package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/eats-health/eats/internal/common"
	"github.com/eats-health/eats/internal/filex"
	"github.com/eats-health/eats/internal/logging"
	"github.com/eats-health/eats/internal/models"
)

// storedCredential is the on-disk value shape. The username lives in the
// enclosing object key, so a record carries exactly these two fields.
type storedCredential struct {
	PasswordHash string `json:"password_hash"`
	Salt         string `json:"salt"`
}

// FileRepository holds the mapping in memory and mirrors every mutation to a
// JSON file. One RWMutex guards both: lookups share the read lock, mutations
// take the write lock for the whole read-modify-write cycle.
type FileRepository struct {
	path   string
	logger logging.Logger

	mu      sync.RWMutex
	records map[string]models.Credential
}

// NewFileRepository opens the store backed by path and loads whatever state
// the file holds. A missing or malformed file starts the store empty; an
// unreadable one is a storage error.
func NewFileRepository(ctx context.Context, path string, logger logging.Logger) (*FileRepository, error) {
	r := &FileRepository{
		path:    path,
		logger:  logger,
		records: make(map[string]models.Credential),
	}
	if _, err := r.Load(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// Load implements Repository.
func (r *FileRepository) Load(ctx context.Context) (map[string]models.Credential, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.readFile(ctx)
	if err != nil {
		return nil, err
	}
	r.records = records

	return copyRecords(records), nil
}

// readFile parses the store file without touching in-memory state.
func (r *FileRepository) readFile(ctx context.Context) (map[string]models.Credential, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]models.Credential), nil
		}
		return nil, fmt.Errorf("%w: reading %s: %w", common.ErrStorage, r.path, err)
	}

	if len(data) == 0 {
		return make(map[string]models.Credential), nil
	}

	var stored map[string]storedCredential
	if err := json.Unmarshal(data, &stored); err != nil {
		r.logger.Warn(ctx, "credential file is malformed, starting empty",
			"path", r.path, "error", err.Error())
		return make(map[string]models.Credential), nil
	}

	records := make(map[string]models.Credential, len(stored))
	for username, sc := range stored {
		c := models.Credential{
			Username:     username,
			PasswordHash: sc.PasswordHash,
			Salt:         sc.Salt,
		}
		if err := c.Validate(); err != nil {
			r.logger.Warn(ctx, "credential file failed validation, starting empty",
				"path", r.path, "error", err.Error())
			return make(map[string]models.Credential), nil
		}
		records[username] = c
	}

	return records, nil
}

// Persist implements Repository.
func (r *FileRepository) Persist(ctx context.Context, records map[string]models.Credential) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.writeLocked(records); err != nil {
		return err
	}
	r.records = copyRecords(records)
	return nil
}

// Insert implements Repository.
func (r *FileRepository) Insert(ctx context.Context, record models.Credential) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := record.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[record.Username]; exists {
		return common.ErrDuplicateUsername
	}

	r.records[record.Username] = record
	if err := r.writeLocked(r.records); err != nil {
		// Roll back so memory matches disk.
		delete(r.records, record.Username)
		return err
	}
	return nil
}

// Get implements Repository.
func (r *FileRepository) Get(ctx context.Context, username string) (models.Credential, error) {
	if err := ctx.Err(); err != nil {
		return models.Credential{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[username]
	if !ok {
		return models.Credential{}, common.ErrNotFound
	}
	return record, nil
}

// Count implements Repository.
func (r *FileRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.records), nil
}

// writeLocked rewrites the whole store file. Callers must hold the write
// lock. The file is replaced atomically so a reader never sees a partial
// mapping, and it stays owner-only because it holds password hashes.
func (r *FileRepository) writeLocked(records map[string]models.Credential) error {
	stored := make(map[string]storedCredential, len(records))
	for username, c := range records {
		stored[username] = storedCredential{PasswordHash: c.PasswordHash, Salt: c.Salt}
	}

	data, err := json.MarshalIndent(stored, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encoding credentials: %w", common.ErrStorage, err)
	}

	if err := filex.WriteFileAtomic(r.path, data, 0o600); err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	return nil
}

func copyRecords(records map[string]models.Credential) map[string]models.Credential {
	out := make(map[string]models.Credential, len(records))
	for k, v := range records {
		out[k] = v
	}
	return out
}

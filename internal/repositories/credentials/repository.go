// Package credentials persists the username → credential mapping behind the
// authenticator. The only implementation keeps the mapping as a single JSON
// file that is rewritten in full on every mutation.
package credentials

import (
	"context"

	"github.com/eats-health/eats/internal/models"
)

// Repository is the credential store contract. Implementations must be safe
// for concurrent readers and must serialize mutations.
type Repository interface {
	// Load reads the persisted mapping and replaces the in-memory state
	// with it. A missing file yields an empty mapping, not an error;
	// malformed content is discarded the same way.
	Load(ctx context.Context) (map[string]models.Credential, error)

	// Persist replaces both the in-memory state and the persisted file
	// with records.
	Persist(ctx context.Context, records map[string]models.Credential) error

	// Insert adds a new record and persists synchronously, returning
	// common.ErrDuplicateUsername when the username is already present.
	// A failed write leaves the in-memory state untouched.
	Insert(ctx context.Context, record models.Credential) error

	// Get returns the record for username or common.ErrNotFound.
	Get(ctx context.Context, username string) (models.Credential, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}

// Package cryptox implements the password-hashing primitives of the
// credential subsystem: PBKDF2-HMAC-SHA256 with a per-user random salt.
package cryptox

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"

	"github.com/eats-health/eats/internal/common"
)

const (
	// Iterations is the PBKDF2 round count. It is part of the stored-hash
	// contract: changing it invalidates every persisted credential.
	Iterations = 100_000

	// SaltSize is the number of random bytes drawn per salt. Salts are kept
	// hex-encoded, so the stored form is twice this long.
	SaltSize = 16
)

// NewSalt returns a fresh hex-encoded random salt.
func NewSalt() (string, error) {
	return common.MakeRandHexString(SaltSize)
}

// HashPassword derives the hex-encoded PBKDF2-HMAC-SHA256 digest of password.
// The salt argument is the stored hex string's bytes, not the decoded bytes;
// decoding it would produce digests incompatible with existing records.
func HashPassword(password, salt []byte) string {
	key := pbkdf2.Key(password, salt, Iterations, sha256.Size, sha256.New)
	return hex.EncodeToString(key)
}

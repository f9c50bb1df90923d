// Package models defines the records EatS persists: stored credentials and
// the food, sleep, and BMI tracker entries.
package models

import (
	"encoding/hex"
	"errors"
	"fmt"
)

const (
	// PasswordHashLength is the width of a hex-encoded SHA-256 digest.
	PasswordHashLength = 64
	// SaltLength is the width of a hex-encoded 16-byte salt.
	SaltLength = 32
)

// Credential is one stored user record. Username is the unique,
// case-sensitive key; PasswordHash and Salt are lowercase hex strings.
// The plaintext password is never part of the record.
type Credential struct {
	// Username identifies the account.
	Username string

	// PasswordHash is the PBKDF2-HMAC-SHA256 digest of the password.
	PasswordHash string

	// Salt is the per-user random salt the digest was derived with.
	Salt string
}

// Validate reports whether the record is structurally sound. The credential
// store runs it on every record read from disk rather than trusting the
// persisted shape.
func (c Credential) Validate() error {
	if c.Username == "" {
		return errors.New("credential has empty username")
	}
	if len(c.PasswordHash) != PasswordHashLength || !isHex(c.PasswordHash) {
		return fmt.Errorf("credential %q: malformed password hash", c.Username)
	}
	if len(c.Salt) != SaltLength || !isHex(c.Salt) {
		return fmt.Errorf("credential %q: malformed salt", c.Username)
	}
	return nil
}

func isHex(s string) bool {
	_, err := hex.DecodeString(s)
	return err == nil
}

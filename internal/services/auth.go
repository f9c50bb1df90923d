// Package services contains the EatS application logic. This file implements
// AuthService, which handles account registration and password verification
// on top of the credential repository.
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/eats-health/eats/internal/common"
	"github.com/eats-health/eats/internal/cryptox"
	"github.com/eats-health/eats/internal/logging"
	"github.com/eats-health/eats/internal/models"
	"github.com/eats-health/eats/internal/repositories/credentials"
)

// MinPasswordLength is the registration policy minimum, in characters.
const MinPasswordLength = 8

// Reply lines shown to interactive users. ErrUserNotFound and
// ErrInvalidCredentials stay distinguishable here, matching the messages the
// application has always shown.
const (
	MsgRegistered      = "Registration successful"
	MsgUsernameTaken   = "Username already exists"
	MsgPasswordTooWeak = "Password must be at least 8 characters"
	MsgLoggedIn        = "Login successful"
	MsgUserNotFound    = "Username not found"
	MsgWrongPassword   = "Incorrect password"
)

// AuthService provides credential operations:
// - Register: create an account with a salted password hash
// - Authenticate: verify a username/password pair
//
// It holds no state of its own; everything durable lives in the repository.
type AuthService struct {
	repo   credentials.Repository
	logger logging.Logger
}

// NewAuthService constructs an AuthService over the given repository.
func NewAuthService(repo credentials.Repository, logger logging.Logger) *AuthService {
	return &AuthService{repo: repo, logger: logger}
}

// Register creates a new credential for username.
//
// It returns common.ErrUsernameTaken when the username is already present
// (the empty username is treated as permanently taken) and
// common.ErrPasswordTooWeak when the password is shorter than
// MinPasswordLength characters. The password is hashed with a fresh random
// salt and never stored in plaintext.
func (s *AuthService) Register(ctx context.Context, username string, password []byte) error {
	if username == "" {
		// The empty username is never available.
		return common.ErrUsernameTaken
	}

	if _, err := s.repo.Get(ctx, username); err == nil {
		return common.ErrUsernameTaken
	} else if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	// Characters, not bytes: a multibyte password is as long as it reads.
	if utf8.RuneCount(password) < MinPasswordLength {
		return common.ErrPasswordTooWeak
	}

	salt, err := cryptox.NewSalt()
	if err != nil {
		return fmt.Errorf("error generating salt: %w", err)
	}

	record := models.Credential{
		Username:     username,
		PasswordHash: cryptox.HashPassword(password, []byte(salt)),
		Salt:         salt,
	}

	if err := s.repo.Insert(ctx, record); err != nil {
		// The availability check above is not atomic with the insert; the
		// repository's own duplicate detection is authoritative.
		if errors.Is(err, common.ErrDuplicateUsername) {
			return common.ErrUsernameTaken
		}
		return err
	}

	s.logger.Info(ctx, "user registered", "username", username)
	return nil
}

// Authenticate verifies a username/password pair against the stored
// credential. Unknown usernames yield common.ErrUserNotFound; a wrong
// password yields common.ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username string, password []byte) error {
	record, err := s.repo.Get(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrUserNotFound
		}
		return err
	}

	candidate := cryptox.HashPassword(password, []byte(record.Salt))
	if !checkDigest(record.PasswordHash, candidate) {
		return common.ErrInvalidCredentials
	}

	s.logger.Info(ctx, "user authenticated", "username", username)
	return nil
}

// UserCount returns the number of registered accounts.
func (s *AuthService) UserCount(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// checkDigest compares two hex digests in constant time, so a mismatch
// reveals nothing about how many leading characters matched.
func checkDigest(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// RegisterMessage runs Register and flattens the outcome into the
// (ok, message) pair interactive frontends print verbatim.
func (s *AuthService) RegisterMessage(ctx context.Context, username string, password []byte) (bool, string) {
	err := s.Register(ctx, username, password)
	switch {
	case err == nil:
		return true, MsgRegistered
	case errors.Is(err, common.ErrUsernameTaken):
		return false, MsgUsernameTaken
	case errors.Is(err, common.ErrPasswordTooWeak):
		return false, MsgPasswordTooWeak
	default:
		return false, err.Error()
	}
}

// LoginMessage is the login counterpart of RegisterMessage.
func (s *AuthService) LoginMessage(ctx context.Context, username string, password []byte) (bool, string) {
	err := s.Authenticate(ctx, username, password)
	switch {
	case err == nil:
		return true, MsgLoggedIn
	case errors.Is(err, common.ErrUserNotFound):
		return false, MsgUserNotFound
	case errors.Is(err, common.ErrInvalidCredentials):
		return false, MsgWrongPassword
	default:
		return false, err.Error()
	}
}

// Package common defines shared constants and sentinel errors used across
// the EatS storage and service layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("duplicate username")

	// ErrStorage marks a persistent medium that cannot be read or written
	// (bad path, permissions, full disk). It wraps the underlying I/O
	// error so callers can still inspect the cause.
	ErrStorage = errors.New("storage error")

	// Registration and login policy errors.
	ErrUsernameTaken      = errors.New("username already exists")
	ErrPasswordTooWeak    = errors.New("password too weak")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

package cryptox

import (
	"encoding/hex"
	"testing"
)

func TestHashPassword_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("a81b01b1d2b52fbd7e431b1b9ee8266f")

	h1 := HashPassword(password, salt)
	h2 := HashPassword(password, salt)

	if h1 != h2 {
		t.Errorf("expected same result for same inputs, got different")
	}
}

func TestHashPassword_KnownAnswer(t *testing.T) {
	// The salt goes into the KDF exactly as stored: the hex string's
	// bytes, never the 16 bytes it encodes. Credential files already on
	// disk verify only under this interpretation.
	password := []byte("S3curePass")
	salt := []byte("a81b01aab38b21fd6e1a7fd196e406f4")
	want := "9dfd75290ea3d809eaa631a65cad7c3ca084911759939538ab15517ca0ea2be9"

	if got := HashPassword(password, salt); got != want {
		t.Errorf("expected digest %s, got %s", want, got)
	}
}

func TestHashPassword_Shape(t *testing.T) {
	h := HashPassword([]byte("secret-password"), []byte("some-salt"))

	if len(h) != 64 {
		t.Errorf("expected 64 hex chars for a SHA-256 digest, got %d", len(h))
	}
	if _, err := hex.DecodeString(h); err != nil {
		t.Errorf("digest is not valid hex: %v", err)
	}
}

func TestHashPassword_DifferentSalts(t *testing.T) {
	password := []byte("secret-password")

	h1 := HashPassword(password, []byte("salt-1"))
	h2 := HashPassword(password, []byte("salt-2"))

	if h1 == h2 {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestHashPassword_DifferentPasswords(t *testing.T) {
	salt := []byte("fixed-salt")

	h1 := HashPassword([]byte("password-one"), salt)
	h2 := HashPassword([]byte("password-two"), salt)

	if h1 == h2 {
		t.Errorf("expected different results for different passwords, got same")
	}
}

func TestNewSalt(t *testing.T) {
	s1, err := NewSalt()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s2, err := NewSalt()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(s1) != 2*SaltSize {
		t.Errorf("expected %d hex chars, got %d", 2*SaltSize, len(s1))
	}
	if _, err := hex.DecodeString(s1); err != nil {
		t.Errorf("salt is not valid hex: %v", err)
	}
	if s1 == s2 {
		t.Errorf("two generated salts are identical; extremely unlikely")
	}
}

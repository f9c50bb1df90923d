package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eats-health/eats/internal/logging"
	"github.com/eats-health/eats/internal/repositories/credentials"
	"github.com/eats-health/eats/internal/services"
)

// newTestApp builds an App with a real auth service over a temp credential
// store. Tracker services stay nil; these tests only exercise auth.
func newTestApp(t *testing.T) *App {
	t.Helper()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	path := filepath.Join(t.TempDir(), "users.json")
	repo, err := credentials.NewFileRepository(context.Background(), path, logger)
	require.NoError(t, err)
	return &App{
		logger:      logger,
		authService: services.NewAuthService(repo, logger),
		reader:      bufio.NewReader(strings.NewReader("")),
	}
}

// stubInput routes the username prompt and the password read to canned
// values. The password stub hands out a fresh copy per call because the
// handlers wipe the slice they receive.
func stubInput(t *testing.T, username string, password []byte) {
	t.Helper()
	origText, origPass := getSimpleText, getPassword
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) {
		return username, nil
	}
	getPassword = func(io.Writer) ([]byte, error) {
		pw := make([]byte, len(password))
		copy(pw, password)
		return pw, nil
	}
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPass })
}

func TestRegisterThenLogin(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	stubInput(t, "alice", []byte("S3curePass"))

	require.NoError(t, app.Register(ctx))
	require.False(t, app.isLoggedIn(), "registration alone must not open a session")

	require.NoError(t, app.Login(ctx))
	require.True(t, app.isLoggedIn())
	require.Equal(t, "alice", app.userName)
}

func TestLogin_WrongPassword(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	stubInput(t, "alice", []byte("S3curePass"))
	require.NoError(t, app.Register(ctx))

	stubInput(t, "alice", []byte("WrongPass1"))
	require.NoError(t, app.Login(ctx))
	require.False(t, app.isLoggedIn())
}

func TestLogin_UnknownUser(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	stubInput(t, "ghost", []byte("S3curePass"))

	require.NoError(t, app.Login(ctx))
	require.False(t, app.isLoggedIn())
}

func TestRegister_DuplicateKeepsOriginalPassword(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	stubInput(t, "alice", []byte("S3curePass"))
	require.NoError(t, app.Register(ctx))

	stubInput(t, "alice", []byte("AnotherPass1"))
	require.NoError(t, app.Register(ctx))

	stubInput(t, "alice", []byte("S3curePass"))
	require.NoError(t, app.Login(ctx))
	require.True(t, app.isLoggedIn())
}

func TestLogout(t *testing.T) {
	app := newTestApp(t)
	app.userName = "alice"

	require.NoError(t, app.Logout(context.Background()))
	require.False(t, app.isLoggedIn())
	require.Equal(t, "", app.userName)
}

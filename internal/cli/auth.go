package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/eats-health/eats/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a username and password and attempts to
// create a new account via the AuthService.
//
// The outcome message from the service is printed verbatim, so the user sees
// "Registration successful", "Username already exists" or "Password must be
// at least 8 characters". The password byte slice is securely wiped before
// returning. Any I/O error is returned unchanged.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	_, msg := a.authService.RegisterMessage(ctx, userName, password)
	fmt.Println(msg)
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
//
// On success it prints "Login successful" and records the username on the
// App, which unlocks the tracker commands. On failure the service message
// ("Username not found" or "Incorrect password") is printed and the session
// state is left untouched. The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ok, msg := a.authService.LoginMessage(ctx, userName, password)
	fmt.Println(msg)
	if ok {
		a.userName = userName
	}
	return nil
}

// Logout ends the current session. Tracker data stays on disk; only the
// in-memory username is cleared.
func (a *App) Logout(ctx context.Context) error {
	a.userName = ""
	fmt.Println("Logged out.")
	return nil
}

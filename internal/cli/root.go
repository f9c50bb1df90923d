package cli

import (
	"bufio"
	"context"
	"log"
	"os"
)

// getStatus returns a short marker for the REPL prompt reflecting the
// current session state.
func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return "(not logged in)"
	}
	return "(" + a.userName + ")"
}

// Root greets the user and hands control to the command loop.
func (a *App) Root(ctx context.Context) error {
	log.Println("Welcome to EatS, your personal health tracker! Type 'help' to see available commands.")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
	return nil
}

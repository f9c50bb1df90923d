package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	About() error
	Profile(ctx context.Context) error
	AddFood(ctx context.Context) error
	FoodLog(ctx context.Context) error
	DeleteFood(ctx context.Context, id string) error
	ClearFood(ctx context.Context) error
	AddSleep(ctx context.Context) error
	SleepLog(ctx context.Context) error
	DeleteSleep(ctx context.Context, id string) error
	ClearSleep(ctx context.Context) error
	RecordBMI(ctx context.Context) error
	BMILog(ctx context.Context) error
}

// loginRequired lists the commands that only make sense with an active
// session.
var loginRequired = map[string]struct{}{
	"food": {}, "foodlog": {}, "delfood": {}, "clearfood": {},
	"sleep": {}, "sleeplog": {}, "delsleep": {}, "clearsleep": {},
	"bmi": {}, "bmilog": {},
	"profile": {}, "logout": {},
}

// runREPL starts a simple read-eval-print loop for the EatS CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - about          — about the application
//	  - exit | quit    — leave the program
//
//	Logged in (in addition to help/about/exit):
//	  - food           — log a food entry
//	  - foodlog        — view the food log
//	  - delfood <id>   — delete one food entry
//	  - clearfood      — clear the food log
//	  - sleep          — log a sleep entry
//	  - sleeplog       — view the sleep log
//	  - delsleep <id>  — delete one sleep entry
//	  - clearsleep     — clear the sleep log
//	  - bmi            — record a BMI measurement
//	  - bmilog         — view the BMI history
//	  - profile        — session and tracker overview
//	  - logout         — log out
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("eats %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		if _, need := loginRequired[cmd]; need && !a.isLoggedIn() {
			printlnFn("Please login first.")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: food, foodlog, delfood <id>, clearfood, sleep, sleeplog, delsleep <id>, clearsleep, bmi, bmilog, profile, about, logout, exit")
			} else {
				printlnFn("Available commands: register, login, about, exit")
			}

		case "register":
			if a.isLoggedIn() {
				printlnFn("Already logged in; logout first.")
				continue
			}
			_ = a.Register(ctx)

		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in; logout first.")
				continue
			}
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "about":
			_ = a.About()

		case "profile":
			_ = a.Profile(ctx)

		case "food":
			_ = a.AddFood(ctx)

		case "foodlog":
			_ = a.FoodLog(ctx)

		case "delfood":
			if len(args) == 0 {
				printlnFn("Usage: delfood <id>")
				continue
			}
			_ = a.DeleteFood(ctx, args[0])

		case "clearfood":
			_ = a.ClearFood(ctx)

		case "sleep":
			_ = a.AddSleep(ctx)

		case "sleeplog":
			_ = a.SleepLog(ctx)

		case "delsleep":
			if len(args) == 0 {
				printlnFn("Usage: delsleep <id>")
				continue
			}
			_ = a.DeleteSleep(ctx, args[0])

		case "clearsleep":
			_ = a.ClearSleep(ctx)

		case "bmi":
			_ = a.RecordBMI(ctx)

		case "bmilog":
			_ = a.BMILog(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// Package cli provides the interactive EatS command-line client.
//
// It wires configuration, the file-backed stores, and the application
// services into an interactive REPL. Typical flow: register or log in, then
// work with the food, sleep, and BMI trackers.
//
// Key features:
//   - Register / Login / Logout against the local credential store
//   - Food log: add, list (today / all / by date), delete, clear
//   - Sleep log: add, list, delete, clear
//   - BMI: record a measurement, view the history
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

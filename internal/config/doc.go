// Package config handles configuration for the EatS CLI.
//
// Configuration is assembled in three stages, later stages overriding
// earlier ones:
//
//  1. Built-in defaults (LoadDefaults).
//  2. An optional JSON file named by the -c/-config flags.
//  3. Command-line flags.
package config

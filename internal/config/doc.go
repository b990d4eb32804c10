// Package config loads BetterRest's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/betterrest/config.toml
//  3. If the file doesn't exist, use Defaults()
//  4. If the file exists but fields are missing or blank, use defaults for them
//
// # TOML Format
//
//	model_path = "~/models/sleep.toml"  # optional coefficient table override
//	log_file = "~/.local/state/betterrest/betterrest.log"  # "" disables logging
//	log_level = "info"
//	default_wake = "07:00"
//	default_sleep = 8.0
//	default_coffee = 1
//
// Paths get tilde expansion and are made absolute.
//
// # Error Handling
//
// Load returns errors for unreadable files, malformed TOML, and values wrapped
// with ErrInvalidConfig: a default_wake that is not HH:MM, a default_sleep
// outside 4 to 12 hours in quarter-hour steps, or a default_coffee outside 1 to
// 19 cups. A missing file is not an error.
package config

// Package app is the composition root for BetterRest.
//
// # Overview
//
// Setup wires configuration, logging and the sleep estimator; Run adds the
// state store and starts the TUI. The calc subcommand reuses Setup without the
// UI.
//
//	┌──────────────┐
//	│   Setup()    │
//	└──────┬───────┘
//	       ├─────> config.Load()          Read ~/.config/betterrest/config.toml
//	       ├─────> logging.New()          zap logger (file, stderr or no-op)
//	       ├─────> estimator model        embedded table or model_path override
//	       ├─────> prefs.Load()           theme and clock format
//	       └─────> bedtime.NewCalculator()
//
//	┌──────────────┐
//	│    Run()     │ Setup + state.Store{} + ui.Run() (blocks)
//	└──────────────┘
//
// # Error Handling
//
// Fatal (returned from Setup/Run):
//   - config file unreadable, malformed or invalid
//   - log file cannot be created
//
// Not fatal:
//   - coefficient table missing or malformed: logged at error level; every
//     calculation then reports the generic failure in the UI
//   - prefs file unreadable: defaults are used
package app

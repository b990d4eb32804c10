// Package state holds the latest bedtime calculation for display.
//
// # Overview
//
// Each input change produces one calculation. The Store keeps the most recent
// successful Result together with the outcome of the latest attempt, so the
// UI can keep showing the last good bedtime while reporting a failure.
//
// # Update Semantics
//
//	// Success: replace the result
//	store.Update(&result, nil)
//	→ snapshot.Result = result
//	→ snapshot.LastError = nil
//	→ snapshot.ConsecutiveFailures = 0
//
//	// Failure: keep the old result, record the error
//	store.Update(nil, err)
//	→ snapshot.Result = <unchanged>
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//
// Both cases bump Calculations and LastUpdated.
//
// # Concurrency Model
//
// Update takes the write lock, Snapshot the read lock. Snapshots are returned
// by value and the error is re-wrapped so callers never share the stored
// instance. The zero Store is ready to use.
package state

package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/betterrest/internal/bedtime"
)

// Snapshot represents the latest calculation available to the UI.
type Snapshot struct {
	Result              bedtime.Result
	HasResult           bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive failed calculations
	Calculations        int
}

// Failing returns true when the most recent calculation failed.
func (s Snapshot) Failing() bool {
	return s.ConsecutiveFailures > 0
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records a calculation. When err is non-nil the previous result is
// kept but the error is recorded for visibility.
func (s *Store) Update(result *bedtime.Result, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Calculations++
	s.snapshot.LastUpdated = time.Now()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	if result != nil {
		s.snapshot.Result = *result
		s.snapshot.HasResult = true
	} else {
		s.snapshot.Result = bedtime.Result{}
		s.snapshot.HasResult = false
	}
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

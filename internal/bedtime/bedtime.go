package bedtime

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/five82/betterrest/internal/estimator"
)

// Default wake time when the user has not picked one.
const (
	DefaultWakeHour   = 7
	DefaultWakeMinute = 0
)

const secondsPerDay = 24 * 60 * 60

// MaxActualSleep is the largest predicted sleep, in hours, that fits in a
// time.Duration.
const MaxActualSleep = float64(math.MaxInt64 / int64(time.Hour))

// DefaultWakeTime returns today's default wake time in now's location.
func DefaultWakeTime(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), DefaultWakeHour, DefaultWakeMinute, 0, 0, now.Location())
}

// ParseWake parses an "HH:MM" clock string into a time on now's date.
func ParseWake(clock string, now time.Time) (time.Time, error) {
	parsed, err := time.Parse("15:04", strings.TrimSpace(clock))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse wake time %q: %w", clock, err)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, now.Location()), nil
}

// WakeSeconds returns the time of day of t in seconds since midnight. The date
// and any seconds are discarded; only hour and minute count.
func WakeSeconds(t time.Time) float64 {
	return float64(t.Hour()*60*60 + t.Minute()*60)
}

// Bedtime subtracts actualSleep hours from wake. The result may fall on the
// previous day. Predictions that are not finite or do not fit in a
// time.Duration fail with estimator.ErrComputation.
func Bedtime(wake time.Time, actualSleep float64) (time.Time, error) {
	if err := checkActualSleep(actualSleep); err != nil {
		return time.Time{}, err
	}
	return wake.Add(-estimator.Prediction{ActualSleep: actualSleep}.Duration()), nil
}

// BedtimeOfDay is Bedtime expressed as seconds since midnight, wrapped into
// [0, 86400).
func BedtimeOfDay(wakeSeconds, actualSleep float64) (float64, error) {
	if err := checkActualSleep(actualSleep); err != nil {
		return 0, err
	}
	if math.IsNaN(wakeSeconds) || math.IsInf(wakeSeconds, 0) {
		return 0, fmt.Errorf("%w: wake time %g seconds is not finite", estimator.ErrComputation, wakeSeconds)
	}
	s := math.Mod(wakeSeconds-actualSleep*60*60, secondsPerDay)
	if s < 0 {
		s += secondsPerDay
	}
	if s >= secondsPerDay {
		s = 0
	}
	return s, nil
}

func checkActualSleep(hours float64) error {
	if math.IsNaN(hours) || math.Abs(hours) > MaxActualSleep {
		return fmt.Errorf("%w: actual sleep %g hours is out of range", estimator.ErrComputation, hours)
	}
	return nil
}

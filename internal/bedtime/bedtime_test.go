package bedtime

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/betterrest/internal/estimator"
)

func TestDefaultWakeTime(t *testing.T) {
	loc := time.FixedZone("Test", 2*60*60)
	now := time.Date(2021, 2, 25, 18, 42, 11, 5, loc)

	got := DefaultWakeTime(now)
	assert.Equal(t, time.Date(2021, 2, 25, 7, 0, 0, 0, loc), got)
	assert.Equal(t, 25200.0, WakeSeconds(got))
}

func TestParseWake(t *testing.T) {
	now := time.Date(2021, 2, 25, 12, 0, 0, 0, time.UTC)

	got, err := ParseWake(" 06:45 ", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 2, 25, 6, 45, 0, 0, time.UTC), got)

	_, err = ParseWake("7am", now)
	require.ErrorContains(t, err, "parse wake time")
}

func TestWakeSeconds(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want float64
	}{
		{"midnight", time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), 0},
		{"seven", time.Date(2021, 1, 1, 7, 0, 0, 0, time.UTC), 25200},
		{"seconds dropped", time.Date(2021, 1, 1, 7, 30, 59, 999, time.UTC), 27000},
		{"date ignored", time.Date(1999, 12, 31, 23, 59, 0, 0, time.UTC), 86340},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WakeSeconds(tc.in))
		})
	}
}

func TestBedtime_WrapsToPreviousDay(t *testing.T) {
	wake := time.Date(2021, 2, 25, 7, 0, 0, 0, time.UTC)

	got, err := Bedtime(wake, 7.5)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 2, 24, 23, 30, 0, 0, time.UTC), got)
	assert.Equal(t, "23:30", FormatClock(got, Clock24h))
}

func TestBedtime_RejectsUnrepresentableSleep(t *testing.T) {
	wake := time.Date(2021, 2, 25, 7, 0, 0, 0, time.UTC)

	for _, hours := range []float64{8e10, -8e10, math.Inf(1), math.NaN(), MaxActualSleep + 1} {
		_, err := Bedtime(wake, hours)
		require.ErrorIs(t, err, estimator.ErrComputation, "hours=%g", hours)
	}

	got, err := Bedtime(wake, MaxActualSleep)
	require.NoError(t, err)
	assert.True(t, got.Before(wake))
}

func TestBedtimeOfDay(t *testing.T) {
	cases := []struct {
		name        string
		wake, sleep float64
		want        float64
	}{
		{"wraps midnight", 25200, 7.5, 84600},
		{"same day", 12 * 3600, 1.5, 10.5 * 3600},
		{"exact midnight", 8 * 3600, 8, 0},
		{"more than a day", 3600, 25, 0},
		{"negative sleep", 23 * 3600, -2, 3600},
		{"many days", 25200, 2e6, 82800},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BedtimeOfDay(tc.wake, tc.sleep)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-6)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, float64(secondsPerDay))
		})
	}
}

func TestBedtimeOfDay_RejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name        string
		wake, sleep float64
	}{
		{"huge sleep", 25200, 1e20},
		{"huge negative sleep", 25200, -1e20},
		{"infinite sleep", 25200, math.Inf(-1)},
		{"nan sleep", 25200, math.NaN()},
		{"infinite wake", math.Inf(1), 8},
		{"nan wake", math.NaN(), 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			done := make(chan error, 1)
			go func() {
				_, err := BedtimeOfDay(tc.wake, tc.sleep)
				done <- err
			}()
			select {
			case err := <-done:
				require.ErrorIs(t, err, estimator.ErrComputation)
			case <-time.After(2 * time.Second):
				t.Fatalf("BedtimeOfDay(%g, %g) did not return", tc.wake, tc.sleep)
			}
		})
	}
}

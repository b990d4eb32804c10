package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/five82/betterrest/internal/bedtime"
)

// field identifies one input control.
type field int

const (
	fieldWake field = iota
	fieldSleep
	fieldCoffee
	fieldCount
)

func (f field) next() field { return (f + 1) % fieldCount }
func (f field) prev() field { return (f + fieldCount - 1) % fieldCount }

// label returns the prompt shown above the field.
func (f field) label() string {
	switch f {
	case fieldWake:
		return "When do you want to wake up?"
	case fieldSleep:
		return "Desired amount of sleep?"
	case fieldCoffee:
		return "Daily coffee intake"
	default:
		return ""
	}
}

// stepWake moves t by minutes, wrapping around midnight while keeping the date.
func stepWake(t time.Time, minutes int) time.Time {
	const minutesPerDay = 24 * 60
	m := (t.Hour()*60 + t.Minute() + minutes) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return time.Date(t.Year(), t.Month(), t.Day(), m/60, m%60, 0, 0, t.Location())
}

// stepSleep moves v by quarter-hour steps, clamped to the stepper range.
func stepSleep(v float64, steps int) float64 {
	v = math.Round(v/bedtime.SleepGoalStep)*bedtime.SleepGoalStep + float64(steps)*bedtime.SleepGoalStep
	return math.Min(bedtime.MaxSleepGoal, math.Max(bedtime.MinSleepGoal, v))
}

// stepCoffee moves v by delta cups, clamped to the picker range.
func stepCoffee(v, delta int) int {
	v += delta
	if v < bedtime.MinCoffee {
		return bedtime.MinCoffee
	}
	if v > bedtime.MaxCoffee {
		return bedtime.MaxCoffee
	}
	return v
}

// adjust returns in with field f moved by n steps (big selects the large step).
func adjust(in bedtime.Inputs, f field, n int, big bool) bedtime.Inputs {
	switch f {
	case fieldWake:
		step := wakeStepMinutes
		if big {
			step = wakeBigStepMinutes
		}
		in.Wake = stepWake(in.Wake, n*step)
	case fieldSleep:
		if big {
			n *= sleepBigStepQuarter
		}
		in.SleepGoal = stepSleep(in.SleepGoal, n)
	case fieldCoffee:
		if big {
			n *= coffeeBigStep
		}
		in.Coffee = stepCoffee(in.Coffee, n)
	}
	return in
}

func formatSleepGoal(hours float64) string {
	return fmt.Sprintf("%g hours", hours)
}

func formatCoffee(cups int) string {
	if cups == 1 {
		return "1 cup"
	}
	return fmt.Sprintf("%d cups", cups)
}

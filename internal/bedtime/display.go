package bedtime

import (
	"fmt"
	"strings"
	"time"
)

// Titles and messages shown to the user.
const (
	SuccessTitle   = "Your ideal bedtime is..."
	FailureTitle   = "Error"
	FailureMessage = "Sorry, there was a problem calculating your bedtime"
)

// ClockFormat selects how a time of day is rendered.
type ClockFormat string

const (
	Clock12h ClockFormat = "12h"
	Clock24h ClockFormat = "24h"
)

// ParseClockFormat accepts "12h" or "24h" (case-insensitive). Blank means 12h.
func ParseClockFormat(s string) (ClockFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "12h", "12":
		return Clock12h, nil
	case "24h", "24":
		return Clock24h, nil
	default:
		return "", fmt.Errorf("unknown clock format: %s", s)
	}
}

// Toggle returns the other format.
func (f ClockFormat) Toggle() ClockFormat {
	if f == Clock24h {
		return Clock12h
	}
	return Clock24h
}

// FormatClock renders the time of day of t in short style.
func FormatClock(t time.Time, f ClockFormat) string {
	if f == Clock24h {
		return t.Format("15:04")
	}
	return t.Format("3:04 PM")
}

// Display is what the user sees after a calculation.
type Display struct {
	Title   string
	Message string
	Failed  bool
}

// Present maps a calculation outcome to a Display. Any error produces the
// same generic failure; the cause is for logs, not for the user.
func Present(res Result, err error, f ClockFormat) Display {
	if err != nil {
		return Display{Title: FailureTitle, Message: FailureMessage, Failed: true}
	}
	return Display{Title: SuccessTitle, Message: FormatClock(res.Bedtime, f)}
}

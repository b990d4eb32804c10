package ui

import "time"

// Timing constants.
const (
	// RecalcDebounce is the quiet period after an input change before the
	// bedtime is recalculated.
	RecalcDebounce = 150 * time.Millisecond
)

// Field steps.
const (
	wakeStepMinutes     = 5
	wakeBigStepMinutes  = 60
	sleepBigStepQuarter = 4
	coffeeBigStep       = 5
)

// Terminal width below which the result panel is stacked under the inputs.
const layoutCompactWidth = 72

// Package ui is the BetterRest terminal interface, built on Bubble Tea.
//
// # Overview
//
// The UI collects three inputs and shows one answer:
//
//   - Wake time: when the user wants to get up (defaults to 07:00)
//   - Sleep goal: desired hours of sleep, 4 to 12 in quarter hours
//   - Coffee: daily cups, 1 to 19
//
// Every change builds a fresh bedtime.Inputs value and schedules a
// recalculation. Changes arriving within RecalcDebounce of each other collapse
// into a single calculation; results for superseded inputs are dropped.
//
// # Event Flow
//
//  1. Key press adjusts a field and bumps the input sequence number
//  2. A debounce tick carrying that sequence number is scheduled
//  3. If the tick is still current, the calculation runs as a tea.Cmd
//  4. The result is recorded in state.Store and mapped with bedtime.Present
//  5. View renders the inputs, the bedtime and, after a failure, the last
//     good bedtime
//
// # Key Bindings
//
//   - tab / shift+tab, left / right: Move between fields
//   - up / k, down / j: Adjust the focused field by one step
//   - pgup / pgdown: Adjust by a large step (1 h, 1 h, 5 cups)
//   - r: Reset inputs to defaults
//   - c: Toggle 12h/24h clock
//   - T: Cycle theme
//   - h / ?: Toggle help
//   - q / ctrl+c: Quit
package ui

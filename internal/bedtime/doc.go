// Package bedtime turns wake-up time, sleep goal and coffee intake into a
// recommended bedtime.
//
// The package is the caller side of the estimator: it normalizes the wake time
// to seconds since midnight, asks a Predictor for the actual sleep needed,
// subtracts that from the wake time and maps the outcome to a display state.
//
//	Inputs ──> WakeSeconds ──> Predictor.Estimate ──> Bedtime ──> Present
//	                                  │
//	                                  └── error ──> Present (generic failure)
//
// Nothing here is persisted. Every input change builds a fresh Inputs value
// and a fresh Result.
//
// Range checks (sleep goal 4–12 h in quarter hours, 1–19 cups) belong to
// whoever collects the inputs; Inputs.Validate is offered for that purpose and
// is never called by Calculator.
package bedtime

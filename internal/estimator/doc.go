// Package estimator predicts how much sleep a person actually needs.
//
// # Overview
//
// The prediction is a closed-form linear model over three features:
//
//	actualSleep = intercept + wake·wakeSeconds + estimatedSleep·sleepGoalHours + coffee·coffeeCups
//
// The coefficients live in a small versioned TOML table. The default table is
// embedded in the binary (model.toml) and parsed once per process; an override
// table can be loaded from disk with LoadModel.
//
// # Failure Semantics
//
// Estimate either returns a finite prediction or an error wrapping
// ErrComputation. There is no other error kind, no retry and no fallback:
//
//   - nil model, or a model with a missing version or non-finite coefficient
//   - NaN or infinite result (NaN inputs, overflow)
//
// Inputs are never range checked here. Keeping wake times inside a day, sleep
// goals inside [4, 12] and coffee inside [1, 19] is the caller's job.
//
// # Concurrency
//
// An Estimator holds no mutable state after construction. Estimate may be
// called from any number of goroutines without synchronization and returns
// bit-identical results for identical inputs.
//
// # Usage Example
//
//	model, err := estimator.DefaultModel()
//	if err != nil {
//		return err
//	}
//	est := estimator.New(model)
//	pred, err := est.Estimate(7*60*60, 8, 2)
//	if err != nil {
//		return err // errors.Is(err, estimator.ErrComputation)
//	}
//	fmt.Printf("%.2f hours\n", pred.ActualSleep)
package estimator

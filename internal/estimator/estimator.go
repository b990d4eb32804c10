package estimator

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrComputation is the only error kind Estimate returns.
var ErrComputation = errors.New("sleep prediction could not be computed")

// Prediction is the model output.
type Prediction struct {
	ActualSleep float64 // hours
}

// Duration converts ActualSleep to a time.Duration.
func (p Prediction) Duration() time.Duration {
	return time.Duration(p.ActualSleep * float64(time.Hour))
}

// Estimator evaluates a coefficient table.
type Estimator struct {
	coef Coefficients
	err  error
}

// New returns an Estimator for model. A nil or invalid model is accepted; the
// resulting Estimator fails every call with ErrComputation.
func New(model *Model) *Estimator {
	if err := model.Validate(); err != nil {
		return &Estimator{err: fmt.Errorf("model unavailable: %w", err)}
	}
	return &Estimator{coef: model.Coefficients}
}

// Estimate predicts actual sleep in hours for a wake time (seconds since
// midnight), a desired sleep duration (hours) and a coffee count.
func (e *Estimator) Estimate(wakeSeconds, sleepGoalHours, coffeeCups float64) (Prediction, error) {
	if e == nil {
		return Prediction{}, fmt.Errorf("%w: estimator is nil", ErrComputation)
	}
	if e.err != nil {
		return Prediction{}, fmt.Errorf("%w: %w", ErrComputation, e.err)
	}

	c := e.coef
	actual := c.Intercept +
		c.Wake*wakeSeconds +
		c.EstimatedSleep*sleepGoalHours +
		c.Coffee*coffeeCups

	if math.IsNaN(actual) || math.IsInf(actual, 0) {
		return Prediction{}, fmt.Errorf("%w: non-finite result for wake=%g sleep=%g coffee=%g",
			ErrComputation, wakeSeconds, sleepGoalHours, coffeeCups)
	}
	return Prediction{ActualSleep: actual}, nil
}

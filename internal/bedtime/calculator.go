package bedtime

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/five82/betterrest/internal/estimator"
)

// Predictor estimates actual sleep hours from the three model features.
type Predictor interface {
	Estimate(wakeSeconds, sleepGoalHours, coffeeCups float64) (estimator.Prediction, error)
}

// Result is one successful calculation.
type Result struct {
	Inputs       Inputs
	ActualSleep  float64 // hours
	Bedtime      time.Time
	BedtimeOfDay float64 // seconds since midnight
}

// Calculator runs the predict-then-subtract flow.
type Calculator struct {
	predictor Predictor
	logger    *zap.Logger
}

// NewCalculator returns a Calculator. A nil logger is replaced with a no-op.
func NewCalculator(p Predictor, logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{predictor: p, logger: logger}
}

// Calculate predicts actual sleep for in and derives the bedtime. Errors from
// the predictor are returned unchanged so callers can match them with
// errors.Is(err, estimator.ErrComputation).
func (c *Calculator) Calculate(in Inputs) (Result, error) {
	if c == nil || c.predictor == nil {
		return Result{}, fmt.Errorf("%w: no predictor configured", estimator.ErrComputation)
	}

	wake := WakeSeconds(in.Wake)
	pred, err := c.predictor.Estimate(wake, in.SleepGoal, float64(in.Coffee))
	if err != nil {
		return Result{}, c.fail(in, wake, err)
	}

	bed, err := Bedtime(in.Wake, pred.ActualSleep)
	if err != nil {
		return Result{}, c.fail(in, wake, err)
	}
	ofDay, err := BedtimeOfDay(wake, pred.ActualSleep)
	if err != nil {
		return Result{}, c.fail(in, wake, err)
	}

	res := Result{
		Inputs:       in,
		ActualSleep:  pred.ActualSleep,
		Bedtime:      bed,
		BedtimeOfDay: ofDay,
	}
	c.logger.Debug("bedtime calculated",
		zap.Float64("wake_seconds", wake),
		zap.Float64("sleep_goal", in.SleepGoal),
		zap.Int("coffee", in.Coffee),
		zap.Float64("actual_sleep", res.ActualSleep),
		zap.Time("bedtime", res.Bedtime))
	return res, nil
}

func (c *Calculator) fail(in Inputs, wake float64, err error) error {
	c.logger.Warn("bedtime calculation failed",
		zap.Float64("wake_seconds", wake),
		zap.Float64("sleep_goal", in.SleepGoal),
		zap.Int("coffee", in.Coffee),
		zap.Error(err))
	return err
}

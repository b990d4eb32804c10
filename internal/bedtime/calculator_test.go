package bedtime

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/five82/betterrest/internal/estimator"
)

type fakePredictor struct {
	actual float64
	err    error
	calls  [][3]float64
}

func (f *fakePredictor) Estimate(wake, sleep, coffee float64) (estimator.Prediction, error) {
	f.calls = append(f.calls, [3]float64{wake, sleep, coffee})
	if f.err != nil {
		return estimator.Prediction{}, f.err
	}
	return estimator.Prediction{ActualSleep: f.actual}, nil
}

func TestCalculate_DerivesBedtime(t *testing.T) {
	p := &fakePredictor{actual: 7.5}
	calc := NewCalculator(p, nil)
	wake := time.Date(2021, 2, 25, 7, 0, 30, 0, time.UTC)

	res, err := calc.Calculate(Inputs{Wake: wake, SleepGoal: 8, Coffee: 2})
	require.NoError(t, err)

	require.Len(t, p.calls, 1)
	assert.Equal(t, [3]float64{25200, 8, 2}, p.calls[0])
	assert.Equal(t, 7.5, res.ActualSleep)
	assert.Equal(t, wake.Add(-7*time.Hour-30*time.Minute), res.Bedtime)
	assert.Equal(t, 84600.0, res.BedtimeOfDay)
	assert.Equal(t, 2, res.Inputs.Coffee)
}

func TestCalculate_PropagatesComputationError(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	cause := fmt.Errorf("%w: boom", estimator.ErrComputation)
	calc := NewCalculator(&fakePredictor{err: cause}, zap.New(core))

	res, err := calc.Calculate(DefaultInputs(time.Now()))
	require.ErrorIs(t, err, estimator.ErrComputation)
	assert.Zero(t, res)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "bedtime calculation failed", logs.All()[0].Message)
}

func TestCalculate_PredictionTooLarge(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	model := &estimator.Model{Version: "huge", Coefficients: estimator.Coefficients{EstimatedSleep: 1e10}}
	calc := NewCalculator(estimator.New(model), zap.New(core))
	wake := time.Date(2021, 2, 25, 7, 0, 0, 0, time.UTC)

	res, err := calc.Calculate(Inputs{Wake: wake, SleepGoal: 8, Coffee: 1})
	require.ErrorIs(t, err, estimator.ErrComputation)
	assert.Zero(t, res)
	assert.Equal(t, 1, logs.Len())

	display := Present(res, err, Clock24h)
	assert.True(t, display.Failed)
}

func TestCalculate_UnavailableModel(t *testing.T) {
	calc := NewCalculator(estimator.New(nil), zap.NewNop())

	_, err := calc.Calculate(DefaultInputs(time.Now()))
	require.ErrorIs(t, err, estimator.ErrComputation)
}

func TestCalculate_NoPredictor(t *testing.T) {
	var calc *Calculator
	_, err := calc.Calculate(DefaultInputs(time.Now()))
	require.ErrorIs(t, err, estimator.ErrComputation)

	_, err = NewCalculator(nil, nil).Calculate(DefaultInputs(time.Now()))
	require.ErrorIs(t, err, estimator.ErrComputation)
}

func TestCalculate_DefaultModel(t *testing.T) {
	model, err := estimator.DefaultModel()
	require.NoError(t, err)
	calc := NewCalculator(estimator.New(model), nil)
	wake := time.Date(2021, 2, 25, 7, 0, 0, 0, time.UTC)

	res, err := calc.Calculate(Inputs{Wake: wake, SleepGoal: 8, Coffee: 1})
	require.NoError(t, err)
	assert.True(t, res.Bedtime.Before(wake))
	assert.Equal(t, 24, res.Bedtime.Day())
	assert.Equal(t, "10:53 PM", FormatClock(res.Bedtime, Clock12h))
}

func TestPresent(t *testing.T) {
	res := Result{Bedtime: time.Date(2021, 2, 24, 23, 30, 0, 0, time.UTC)}

	ok := Present(res, nil, Clock12h)
	assert.Equal(t, Display{Title: SuccessTitle, Message: "11:30 PM"}, ok)

	ok24 := Present(res, nil, Clock24h)
	assert.Equal(t, "23:30", ok24.Message)

	failed := Present(res, errors.New("anything"), Clock12h)
	assert.Equal(t, Display{Title: FailureTitle, Message: FailureMessage, Failed: true}, failed)
}

func TestParseClockFormat(t *testing.T) {
	cases := map[string]ClockFormat{"": Clock12h, "12h": Clock12h, " 24H ": Clock24h, "24": Clock24h}
	for in, want := range cases {
		got, err := ParseClockFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseClockFormat("metric")
	require.Error(t, err)

	assert.Equal(t, Clock24h, Clock12h.Toggle())
	assert.Equal(t, Clock12h, Clock24h.Toggle())
}

package bedtime

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Ranges offered by the input controls.
const (
	MinSleepGoal     = 4.0
	MaxSleepGoal     = 12.0
	SleepGoalStep    = 0.25
	DefaultSleepGoal = 8.0

	MinCoffee     = 1
	MaxCoffee     = 19
	DefaultCoffee = 1
)

// Inputs is the immutable tuple handed to the calculator on every change.
type Inputs struct {
	Wake      time.Time
	SleepGoal float64 `validate:"gte=4,lte=12,quarter"`
	Coffee    int     `validate:"gte=1,lte=19"`
}

// DefaultInputs returns the inputs shown before the user touches anything.
func DefaultInputs(now time.Time) Inputs {
	return Inputs{
		Wake:      DefaultWakeTime(now),
		SleepGoal: DefaultSleepGoal,
		Coffee:    DefaultCoffee,
	}
}

var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("quarter", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Mod(f/SleepGoalStep, 1) == 0
	})
	return v
})

// Validate checks the ranges the input controls enforce.
func (in Inputs) Validate() error {
	err := validate().Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate inputs: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid inputs: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Field() {
	case "SleepGoal":
		if fe.Tag() == "quarter" {
			return fmt.Sprintf("sleep goal %v is not a multiple of %v hours", fe.Value(), SleepGoalStep)
		}
		return fmt.Sprintf("sleep goal %v outside [%v, %v] hours", fe.Value(), MinSleepGoal, MaxSleepGoal)
	case "Coffee":
		return fmt.Sprintf("coffee %v outside [%d, %d] cups", fe.Value(), MinCoffee, MaxCoffee)
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

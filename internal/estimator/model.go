package estimator

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

//go:embed model.toml
var embeddedModel []byte

// Coefficients is the fixed parameter table of the linear sleep model.
type Coefficients struct {
	Intercept      float64 `toml:"intercept"`
	Wake           float64 `toml:"wake"`            // hours per second since midnight
	EstimatedSleep float64 `toml:"estimated_sleep"` // hours per desired hour
	Coffee         float64 `toml:"coffee"`          // hours per cup
}

// Model is a versioned, read-only coefficient table.
type Model struct {
	Name         string       `toml:"name"`
	Version      string       `toml:"version"`
	Coefficients Coefficients `toml:"coefficients"`
}

// Validate reports whether the table can be used for predictions.
func (m *Model) Validate() error {
	if m == nil {
		return errors.New("model is nil")
	}
	if strings.TrimSpace(m.Version) == "" {
		return errors.New("model version is empty")
	}
	c := m.Coefficients
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"intercept", c.Intercept},
		{"wake", c.Wake},
		{"estimated_sleep", c.EstimatedSleep},
		{"coffee", c.Coffee},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("coefficient %s is not finite", v.name)
		}
	}
	return nil
}

// ParseModel decodes and validates a TOML coefficient table. Unknown keys are
// rejected so a typo cannot silently zero a coefficient.
func ParseModel(data []byte) (*Model, error) {
	var m Model
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}
	m.Name = strings.TrimSpace(m.Name)
	m.Version = strings.TrimSpace(m.Version)
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model: %w", err)
	}
	return &m, nil
}

// LoadModel reads a coefficient table from path.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	return ParseModel(data)
}

var defaultModel = sync.OnceValues(func() (*Model, error) {
	return ParseModel(embeddedModel)
})

// DefaultModel returns the embedded coefficient table. It is parsed on first
// use and shared afterwards; callers must not mutate it.
func DefaultModel() (*Model, error) {
	return defaultModel()
}

package estimator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultModel_Embedded(t *testing.T) {
	model, err := DefaultModel()
	require.NoError(t, err)
	assert.Equal(t, "sleep-calculator", model.Name)
	assert.Equal(t, "2021.02", model.Version)
	assert.Equal(t, Coefficients{
		Intercept:      0.62,
		Wake:           -0.0000095,
		EstimatedSleep: 0.94,
		Coffee:         0.21,
	}, model.Coefficients)

	again, err := DefaultModel()
	require.NoError(t, err)
	assert.Same(t, model, again)
}

func TestParseModel(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name: "valid",
			data: `
version = " v2 "
[coefficients]
intercept = 1
wake = 0
estimated_sleep = 0.5
coffee = 0.1
`,
		},
		{
			name:    "malformed",
			data:    `version = [`,
			wantErr: "parse model",
		},
		{
			name: "unknown key",
			data: `
version = "v2"
[coefficients]
cofee = 0.1
`,
			wantErr: "parse model",
		},
		{
			name: "missing version",
			data: `
[coefficients]
coffee = 0.1
`,
			wantErr: "invalid model",
		},
		{
			name: "non-finite",
			data: `
version = "v2"
[coefficients]
coffee = nan
`,
			wantErr: "invalid model",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			model, err := ParseModel([]byte(tc.data))
			if tc.wantErr != "" {
				require.ErrorContains(t, err, tc.wantErr)
				assert.Nil(t, model)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "v2", model.Version)
			assert.Equal(t, 0.5, model.Coefficients.EstimatedSleep)
		})
	}
}

func TestLoadModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
name = "custom"
version = "2024.01"
[coefficients]
estimated_sleep = 1.0
`), 0o600))

	model, err := LoadModel(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", model.Name)

	pred, err := New(model).Estimate(sevenAM, 8, 3)
	require.NoError(t, err)
	assert.Equal(t, 8.0, pred.ActualSleep)
}

func TestLoadModel_Missing(t *testing.T) {
	_, err := LoadModel(filepath.Join(t.TempDir(), "nope.toml"))
	require.ErrorContains(t, err, "read model")
}

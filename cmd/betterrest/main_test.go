package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/betterrest/internal/config"
	"github.com/five82/betterrest/internal/estimator"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)

	base := []string{
		"--config", filepath.Join(home, "missing.toml"),
		"--prefs", filepath.Join(home, "prefs.toml"),
		"--log-file", filepath.Join(home, "betterrest.log"),
	}
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, base...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCalc_Defaults(t *testing.T) {
	out, err := execute(t, "calc")
	require.NoError(t, err)
	assert.Equal(t, "Your ideal bedtime is...\n10:53 PM\n", out)
}

func TestCalc_Flags(t *testing.T) {
	out, err := execute(t, "calc", "--wake", "06:30", "--sleep", "9", "--coffee", "1", "--clock", "24h")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Your ideal bedtime is...", lines[0])
	assert.Regexp(t, `^2[01]:\d\d$`, lines[1])
}

func TestCalc_RejectsOutOfRangeInputs(t *testing.T) {
	_, err := execute(t, "calc", "--coffee", "25")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coffee 25 outside [1, 19] cups")

	_, err = execute(t, "calc", "--wake", "7am")
	require.Error(t, err)

	_, err = execute(t, "calc", "--clock", "36h")
	require.Error(t, err)
}

func TestCalc_BrokenModelShowsFailure(t *testing.T) {
	dir := t.TempDir()
	model := filepath.Join(dir, "model.toml")
	require.NoError(t, os.WriteFile(model, []byte("version = \"\"\n"), 0o600))

	out, err := execute(t, "calc", "--model", model)
	require.ErrorIs(t, err, estimator.ErrComputation)
	assert.Equal(t, "Error\nSorry, there was a problem calculating your bedtime\n", out)
}

func TestCalc_RejectsOutOfRangeConfigDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cfg := filepath.Join(home, "config.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("default_sleep = 3.1\ndefault_coffee = 0\n"), 0o600))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"calc", "--config", cfg, "--log-file", filepath.Join(home, "br.log")})

	err := cmd.Execute()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Empty(t, out.String())
}

func TestCalc_HugePredictionFails(t *testing.T) {
	dir := t.TempDir()
	model := filepath.Join(dir, "model.toml")
	require.NoError(t, os.WriteFile(model, []byte("version = \"huge\"\n[coefficients]\nestimated_sleep = 1e10\n"), 0o600))

	out, err := execute(t, "calc", "--model", model)
	require.ErrorIs(t, err, estimator.ErrComputation)
	assert.Equal(t, "Error\nSorry, there was a problem calculating your bedtime\n", out)
}

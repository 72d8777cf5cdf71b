package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "avldemo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	c, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30, 40, 50, 25}, c.Demo.Values)
	assert.Equal(t, RangeConfig{Low: 20, High: 40}, c.Demo.Range)
	assert.Equal(t, "info", c.Logging.Level)

	c, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), *c)
}

func TestLoadConfig_Override(t *testing.T) {
	path := writeConfig(t, `
demo:
  values: [5, 3, 8]
  remove: []
stress:
  ops: 50
  seed: 7
logging:
  level: debug
  console: true
`)
	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3, 8}, c.Demo.Values)
	assert.Empty(t, c.Demo.Remove)
	assert.Equal(t, RangeConfig{Low: 20, High: 40}, c.Demo.Range, "unset keys keep their defaults")
	assert.Equal(t, StressConfig{Ops: 50, Seed: 7, ValueRange: 1000}, c.Stress)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.True(t, c.Logging.Console)
	assert.Equal(t, "avldemo.log", c.Logging.File)
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "demo: [unterminated"))
	assert.ErrorContains(t, err, "failed to parse config")

	_, err = LoadConfig(writeConfig(t, "logging:\n  level: loud\n"))
	assert.ErrorContains(t, err, "unknown logging.level")

	_, err = LoadConfig(writeConfig(t, "stress:\n  value_range: 0\n"))
	assert.ErrorContains(t, err, "value_range")
}

package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/breakeven/internal/logging"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("breakeven", pflag.ContinueOnError)
	flags.Bool("no-color-devices", false, "")
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.False(t, cfg.NoColorDevices)
	assert.True(t, cfg.RandomizeColors())
	assert.False(t, cfg.ClearOnSubmit)
	assert.Empty(t, cfg.LogLevel)
	assert.Equal(t, logging.DefaultLogFile, cfg.LogFile)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("BREAKEVEN_NO_COLOR_DEVICES", "true")
	t.Setenv("BREAKEVEN_LOG_LEVEL", "DEBUG")
	t.Setenv("BREAKEVEN_LOG_FILE", "/tmp/breakeven-test.log")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.True(t, cfg.NoColorDevices)
	assert.False(t, cfg.RandomizeColors())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/breakeven-test.log", cfg.LogFile)
}

func TestLoad_FlagOverridesEnvironment(t *testing.T) {
	t.Setenv("BREAKEVEN_NO_COLOR_DEVICES", "false")
	t.Setenv("BREAKEVEN_CLEAR_ON_SUBMIT", "true")
	t.Setenv("BREAKEVEN_LOG_LEVEL", "warn")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--no-color-devices"}))

	cfg, err := Load(flags)
	require.NoError(t, err)

	assert.True(t, cfg.NoColorDevices)
	assert.True(t, cfg.ClearOnSubmit)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_UnsetFlagKeepsEnvironment(t *testing.T) {
	t.Setenv("BREAKEVEN_NO_COLOR_DEVICES", "true")

	flags := newFlags()
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load(flags)
	require.NoError(t, err)

	assert.True(t, cfg.NoColorDevices)
}

func TestLoad_OnlyColorFlagIsBound(t *testing.T) {
	flags := newFlags()
	flags.String("log-level", "", "")
	require.NoError(t, flags.Parse([]string{"--log-level", "debug"}))

	cfg, err := Load(flags)
	require.NoError(t, err)

	assert.Empty(t, cfg.LogLevel)
}

func TestLoad_InvalidLevel(t *testing.T) {
	t.Setenv("BREAKEVEN_LOG_LEVEL", "loud")

	_, err := Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

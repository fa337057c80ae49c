package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/natural-unit/pkg/system"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, Config{From: system.CGS, To: system.SI, Precision: 6}, cfg)
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load(newFlags(t, "--from", "natural", "--to", "geom", "--precision", "3", "-v"))
	require.NoError(t, err)
	assert.Equal(t, system.Natural, cfg.From)
	assert.Equal(t, system.Geometrized, cfg.To)
	assert.Equal(t, 3, cfg.Precision)
	assert.True(t, cfg.Verbose)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("NATUNIT_TO", "natural")
	t.Setenv("NATUNIT_PRECISION", "9")

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, system.Natural, cfg.To)
	assert.Equal(t, 9, cfg.Precision)
}

func TestLoadFlagOverridesEnv(t *testing.T) {
	t.Setenv("NATUNIT_TO", "natural")

	cfg, err := Load(newFlags(t, "--to", "cgs"))
	require.NoError(t, err)
	assert.Equal(t, system.CGS, cfg.To)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "natunit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("from: si\nto: geometrized\nprecision: 4\n"), 0o644))

	cfg, err := Load(newFlags(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, system.SI, cfg.From)
	assert.Equal(t, system.Geometrized, cfg.To)
	assert.Equal(t, 4, cfg.Precision)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown source", args: []string{"--from", "imperial"}},
		{name: "unknown target", args: []string{"--to", "planck"}},
		{name: "negative precision", args: []string{"--precision", "-1"}},
		{name: "missing config file", args: []string{"--config", "/nonexistent/natunit.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newFlags(t, tt.args...))
			assert.Error(t, err)
		})
	}
}

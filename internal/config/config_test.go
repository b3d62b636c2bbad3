package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feather-lang/testmodule"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfig, EnvLogLevel, EnvLogDev} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, testmodule.VariantReverse, cfg.Demo.ParsedVariant())
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "tm.yaml", `
log:
  level: debug
  development: true
demo:
  int: -7
  string: hello
  variant: copy
  grid:
    - [1.5, 2, 3]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, int64(-7), cfg.Demo.Int)
	assert.Equal(t, "hello", cfg.Demo.String)
	assert.Equal(t, testmodule.VariantCopy, cfg.Demo.ParsedVariant())
	assert.Equal(t, [][]float64{{1.5, 2, 3}}, cfg.Demo.Grid)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "tm.yaml", "log:\n  level: info\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, Default().Demo, cfg.Demo)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "tm.yaml", "demo:\n  int: 42\n")
	t.Setenv(EnvConfig, path)
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogDev, "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Demo.Int)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "bad.yaml", "log: [unclosed"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "int.yaml", "demo:\n  int: 4294967296\n"))
	assert.ErrorIs(t, err, testmodule.ErrInvalidArgument)

	_, err = Load(writeFile(t, "variant.yaml", "demo:\n  variant: shuffle\n"))
	assert.ErrorIs(t, err, testmodule.ErrInvalidArgument)

	_, err = Load(writeFile(t, "ragged.yaml", "demo:\n  grid: [[1, 2], [3]]\n"))
	assert.ErrorIs(t, err, testmodule.ErrInvalidArgument)

	_, err = Load(writeFile(t, "level.yaml", "log:\n  level: loud\n"))
	assert.Error(t, err)

	t.Setenv(EnvLogDev, "maybe")
	_, err = Load("")
	assert.Error(t, err)
}

func TestReadGrid(t *testing.T) {
	g, err := ReadGrid(writeFile(t, "grid.yaml", "- [1, 2]\n- [3, 4]\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, g.Data())

	_, err = ReadGrid(writeFile(t, "grid.yaml", "- [1, 2]\n- [3]\n"))
	assert.ErrorIs(t, err, testmodule.ErrInvalidArgument)

	_, err = ReadGrid(writeFile(t, "grid.yaml", "not: a grid"))
	assert.Error(t, err)
}

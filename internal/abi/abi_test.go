package abi

import (
	"fmt"
	"math"
	"os"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/feather-lang/testmodule"
	"github.com/feather-lang/testmodule/internal/cmem"
	"github.com/feather-lang/testmodule/internal/config"
)

func ptr(buf []float64) unsafe.Pointer {
	if len(buf) == 0 {
		return nil
	}
	return unsafe.Pointer(&buf[0])
}

// =============================================================================
// Strings
// =============================================================================

func TestDuplicate(t *testing.T) {
	in, err := cmem.CString([]byte("1234"))
	require.NoError(t, err)
	defer cmem.Free(in)

	out, err := Duplicate(in)
	require.NoError(t, err)
	defer cmem.Free(out)

	assert.NotEqual(t, in, out)
	assert.Equal(t, 4, cmem.Strlen(out))
	assert.Equal(t, "1234\x00", string(cmem.Bytes(out, 5)))
}

func TestDuplicateEmpty(t *testing.T) {
	in, err := cmem.CString(nil)
	require.NoError(t, err)
	defer cmem.Free(in)

	out, err := Duplicate(in)
	require.NoError(t, err)
	defer cmem.Free(out)
	assert.Equal(t, 0, cmem.Strlen(out))
}

func TestDuplicateNil(t *testing.T) {
	before := cmem.Live()
	out, err := Duplicate(nil)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, testmodule.ErrInvalidArgument)
	assert.Equal(t, StatusInvalid, StatusOf(err))
	assert.Equal(t, before, cmem.Live())
}

// =============================================================================
// Grids
// =============================================================================

func TestGridReverse(t *testing.T) {
	in := []float64{1, 2, 3, 4}
	out := make([]float64, 4)

	require.NoError(t, GridReverse(2, 2, ptr(in), ptr(out)))
	assert.Equal(t, []float64{1, 2, 3, 4}, out)
	assert.Equal(t, []float64{4, 3, 2, 1}, in)
}

func TestGridCopy(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5, 6}
	out := make([]float64, 6)

	require.NoError(t, GridCopy(2, 3, ptr(in), ptr(out)))
	assert.Equal(t, in, out)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, in)
}

func TestGridEmptyNeverTouchesBuffers(t *testing.T) {
	assert.NoError(t, GridReverse(0, 5, nil, nil))
	assert.NoError(t, GridReverse(5, 0, nil, nil))
	assert.NoError(t, GridReverse(0, math.MaxUint64, nil, nil))
	assert.NoError(t, GridReverse(1<<63, 0, nil, nil))
	assert.NoError(t, GridCopy(0, 0, nil, nil))
	assert.NoError(t, GridCopy(3, 0, nil, nil))
}

func TestGridErrors(t *testing.T) {
	buf := make([]float64, 4)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil input", GridReverse(2, 2, nil, ptr(buf)), StatusInvalid},
		{"nil output", GridCopy(2, 2, ptr(buf), nil), StatusInvalid},
		{"negative dims", GridCopy(-1, 2, ptr(buf), ptr(buf)), StatusInvalid},
		// A negative side is rejected even when the other side is zero.
		{"zero height, negative width", GridCopy(0, -3, nil, nil), StatusInvalid},
		{"overflow", GridReverse(math.MaxUint64, 2, ptr(buf), ptr(buf)), StatusOverflow},
		{"area overflow", GridReverse(1<<40, 1<<40, ptr(buf), ptr(buf)), StatusOverflow},
		{"same buffer reverse", GridReverse(2, 2, ptr(buf), ptr(buf)), StatusOverlap},
		{"same buffer copy", GridCopy(2, 2, ptr(buf), ptr(buf)), StatusOverlap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, StatusOK, StatusOf(nil))
	assert.Equal(t, StatusAlloc, StatusOf(fmt.Errorf("x: %w", testmodule.ErrAllocation)))
	assert.Equal(t, StatusInvalid, StatusOf(testmodule.ErrDimensionMismatch))
}

func TestStrerror(t *testing.T) {
	assert.Equal(t, "ok", Strerror(StatusOK))
	assert.Equal(t, "dimension overflow", Strerror(StatusOverflow))
	assert.Equal(t, "unknown status 99", Strerror(99))
}

// =============================================================================
// Logger
// =============================================================================

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvConfig, config.EnvLogLevel, config.EnvLogDev} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestNewLogger(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvLogLevel, "info")

	l, err := NewLogger()
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLoggerBadConfigFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvLogDev, "maybe")

	l, err := NewLogger()
	require.Error(t, err)
	require.NotNil(t, l)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel), "level from the environment survives a config error")

	t.Setenv(config.EnvLogDev, "")
	t.Setenv(config.EnvConfig, "/nonexistent/testmodule.yaml")
	l, err = NewLogger()
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotNil(t, l)
}

// Package abi holds the logic behind the libtestmodule C exports. The
// exported cgo wrappers only convert C types and call into this package,
// which keeps it reachable from tests and from the memory tester.
package abi

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	"github.com/feather-lang/testmodule"
	"github.com/feather-lang/testmodule/internal/cmem"
	"github.com/feather-lang/testmodule/internal/config"
	"github.com/feather-lang/testmodule/internal/log"
)

// Version is reported by testmodule_version.
const Version = "0.1.0"

// Status codes returned across the C ABI (matching testmodule.h).
const (
	StatusOK       = 0
	StatusInvalid  = 1
	StatusOverflow = 2
	StatusOverlap  = 3
	StatusAlloc    = 4
)

var statusMessages = map[int]string{
	StatusOK:       "ok",
	StatusInvalid:  testmodule.ErrInvalidArgument.Error(),
	StatusOverflow: testmodule.ErrOverflow.Error(),
	StatusOverlap:  testmodule.ErrOverlap.Error(),
	StatusAlloc:    testmodule.ErrAllocation.Error(),
}

// StatusOf maps a Go error to a C status code.
func StatusOf(err error) int {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, testmodule.ErrOverflow):
		return StatusOverflow
	case errors.Is(err, testmodule.ErrOverlap):
		return StatusOverlap
	case errors.Is(err, testmodule.ErrAllocation):
		return StatusAlloc
	}
	return StatusInvalid
}

// Strerror returns the message for a status code.
func Strerror(code int) string {
	if msg, ok := statusMessages[code]; ok {
		return msg
	}
	return fmt.Sprintf("unknown status %d", code)
}

// NewLogger builds the library logger from the environment. When the
// configuration cannot be loaded it still returns a logger, at the level
// named by $TESTMODULE_LOG_LEVEL, together with the load error.
func NewLogger() (*log.Logger, error) {
	cfg, err := config.Load("")
	if err != nil {
		return log.New(os.Getenv(config.EnvLogLevel), false), fmt.Errorf("loading config: %w", err)
	}
	return log.New(cfg.Log.Level, cfg.Log.Development), nil
}

// Duplicate copies the zero-terminated string at in into a new C buffer
// that the caller releases with c_string_free.
func Duplicate(in unsafe.Pointer) (unsafe.Pointer, error) {
	if in == nil {
		return nil, fmt.Errorf("c_string: nil input: %w", testmodule.ErrInvalidArgument)
	}
	return cmem.CString(cmem.Bytes(in, cmem.Strlen(in)))
}

// viewGrids wraps the caller's buffers as grids of dims d. Empty grids
// never touch either pointer.
func viewGrids(d testmodule.Dims, in, out unsafe.Pointer) (src, dst *testmodule.Grid, err error) {
	n := d.Len()
	if n > 0 && (in == nil || out == nil) {
		return nil, nil, fmt.Errorf("nil buffer for %s grid: %w", d, testmodule.ErrInvalidArgument)
	}
	src, err = testmodule.GridOf(d.Height, d.Width, cmem.Float64s(in, n))
	if err != nil {
		return nil, nil, err
	}
	dst, err = testmodule.GridOf(d.Height, d.Width, cmem.Float64s(out, n))
	if err != nil {
		return nil, nil, err
	}
	return src, dst, nil
}

// GridReverse is c_ptr: copy in to out, then rewrite in as out reversed.
func GridReverse(h, w uint64, in, out unsafe.Pointer) error {
	d, err := testmodule.DimsFromUint64(h, w)
	if err != nil {
		return err
	}
	src, dst, err := viewGrids(d, in, out)
	if err != nil {
		return err
	}
	return testmodule.CopyGridReverse(dst, src)
}

// GridCopy is c_ptr_copy: copy in to out, leaving in untouched. Negative
// dimensions are rejected, zero ones copy nothing.
func GridCopy(h, w int32, in, out unsafe.Pointer) error {
	d, err := testmodule.DimsFromInt32(h, w)
	if err != nil {
		return err
	}
	src, dst, err := viewGrids(d, in, out)
	if err != nil {
		return err
	}
	return testmodule.CopyGrid(dst, src)
}

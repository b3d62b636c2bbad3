// Package cmem manages memory on the C heap for values handed across the
// C ABI. Anything returned to C is allocated here so that C code can
// release it with free.
package cmem

/*
#include <stdlib.h>
#include <string.h>

// cgo's C.malloc aborts on failure; call malloc directly so a NULL
// result reaches Go.
static inline void* cmem_malloc(size_t n) {
    return malloc(n);
}
*/
import "C"

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/feather-lang/testmodule"
)

// live counts allocations made by Malloc and not yet released by Free.
var live atomic.Int64

// Live returns the number of C allocations made through this package that
// have not been freed.
func Live() int64 {
	return live.Load()
}

// Malloc allocates n bytes on the C heap. A zero-byte request allocates one
// byte so the result is always a distinct, freeable pointer.
func Malloc(n int) (unsafe.Pointer, error) {
	if n < 0 {
		return nil, fmt.Errorf("malloc %d bytes: %w", n, testmodule.ErrInvalidArgument)
	}
	if n == 0 {
		n = 1
	}
	p := C.cmem_malloc(C.size_t(n))
	if p == nil {
		return nil, fmt.Errorf("malloc %d bytes: %w", n, testmodule.ErrAllocation)
	}
	live.Add(1)
	return p, nil
}

// Free releases memory obtained from Malloc or CString. Nil is ignored.
func Free(p unsafe.Pointer) {
	if p != nil {
		C.free(p)
		live.Add(-1)
	}
}

// CString copies b into a new zero-terminated C buffer of len(b)+1 bytes.
// b is copied as is; callers wanting C string semantics pass
// testmodule.Duplicate(b) or trim at the first zero byte themselves.
func CString(b []byte) (unsafe.Pointer, error) {
	p, err := Malloc(len(b) + 1)
	if err != nil {
		return nil, err
	}
	dst := unsafe.Slice((*byte)(p), len(b)+1)
	copy(dst, b)
	dst[len(b)] = 0
	return p, nil
}

// Strlen returns the length of the zero-terminated string at p.
func Strlen(p unsafe.Pointer) int {
	if p == nil {
		return 0
	}
	return int(C.strlen((*C.char)(p)))
}

// Bytes returns a view of n bytes at p. The slice aliases C memory and is
// valid only as long as the memory is.
func Bytes(p unsafe.Pointer, n int) []byte {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

// Float64s returns a view of n float64 values at p. The slice aliases the
// caller's memory.
func Float64s(p unsafe.Pointer, n int) []float64 {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*float64)(p), n)
}

// Package main exports testmodule functions for use as a C shared library.
// Build with: go build -buildmode=c-shared -o libtestmodule.so .
package main

/*
#include <stdlib.h>
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/feather-lang/testmodule"
	"github.com/feather-lang/testmodule/internal/abi"
	"github.com/feather-lang/testmodule/internal/cmem"
	"github.com/feather-lang/testmodule/internal/log"
)

func init() {
	l, err := abi.NewLogger()
	log.InitWith(l)
	if err != nil {
		log.L.Warn("using default configuration", zap.Error(err))
	}
}

// -----------------------------------------------------------------------------
// Integers
// -----------------------------------------------------------------------------

//export c_int
func c_int(in C.int32_t) C.int32_t {
	return C.int32_t(testmodule.Identity(int32(in)))
}

// -----------------------------------------------------------------------------
// Strings
// -----------------------------------------------------------------------------

//export c_string
func c_string(in *C.char) *C.char {
	out, err := abi.Duplicate(unsafe.Pointer(in))
	if err != nil {
		log.L.Rejected("c_string", err)
		return nil
	}
	return (*C.char)(out)
}

//export c_string_free
func c_string_free(s *C.char) {
	cmem.Free(unsafe.Pointer(s))
}

// -----------------------------------------------------------------------------
// Grids
// -----------------------------------------------------------------------------

//export c_ptr
func c_ptr(h, w C.uint64_t, in, out *C.double) C.int {
	err := abi.GridReverse(uint64(h), uint64(w), unsafe.Pointer(in), unsafe.Pointer(out))
	if err != nil {
		log.L.Rejected("c_ptr", err, zap.Uint64("h", uint64(h)), zap.Uint64("w", uint64(w)))
	}
	return C.int(abi.StatusOf(err))
}

//export c_ptr_copy
func c_ptr_copy(h, w C.int32_t, in, out *C.double) C.int {
	err := abi.GridCopy(int32(h), int32(w), unsafe.Pointer(in), unsafe.Pointer(out))
	if err != nil {
		log.L.Rejected("c_ptr_copy", err, zap.Int32("h", int32(h)), zap.Int32("w", int32(w)))
	}
	return C.int(abi.StatusOf(err))
}

// -----------------------------------------------------------------------------
// Library info
// -----------------------------------------------------------------------------

//export testmodule_strerror
func testmodule_strerror(code C.int) *C.char {
	p, err := cmem.CString([]byte(abi.Strerror(int(code))))
	if err != nil {
		return nil
	}
	return (*C.char)(p)
}

//export testmodule_version
func testmodule_version() *C.char {
	p, err := cmem.CString([]byte(abi.Version))
	if err != nil {
		return nil
	}
	return (*C.char)(p)
}

// Package testmodule provides the native example operations that the
// libtestmodule shared library exports over a C ABI.
//
// # Overview
//
// testmodule is the smallest useful surface for checking an FFI binding:
//
//   - An identity function for a round-trip sanity check
//   - String duplication into a freshly owned buffer
//   - Copying a row-major grid of float64 values, in two named variants
//
// The package itself is pure Go. Buffers carry their own lengths and every
// precondition the C contract left to the caller is checked and reported
// as an error. The cgo exports live in cmd/libtestmodule.
//
// # Quick Start
//
//	import "github.com/feather-lang/testmodule"
//
//	func main() {
//	    fmt.Println(testmodule.Identity(1234)) // 1234
//
//	    dup := testmodule.Duplicate([]byte("1234"))
//	    fmt.Println(string(dup)) // "1234"
//
//	    src, _ := testmodule.GridFromRows([][]float64{{1, 2}, {3, 4}})
//	    dst, _ := testmodule.NewGrid(2, 2)
//	    _ = testmodule.CopyGridReverse(dst, src)
//	    fmt.Println(dst.Data(), src.Data()) // [1 2 3 4] [4 3 2 1]
//	}
//
// # Grid Variants
//
// Two grid transforms exist and are kept apart by name:
//
//   - CopyGrid copies src into dst and leaves src alone.
//   - CopyGridReverse copies src into dst, then rewrites src so that
//     src[i] = dst[len-1-i].
//
// Transform dispatches on a Variant, which is what the CLI and the
// configuration file use.
//
// # Dimensions
//
// Dimensions are Go ints. Values coming from the C ABI (uint64 for the
// reverse variant, int32 for the copy variant) go through DimsFromUint64 or
// DimsFromInt32, which reject negative sizes and any area whose byte size
// does not fit in an int.
//
// # Strings
//
// Duplicate treats its input the way C treats a char*: the string ends at
// the first zero byte, or at the end of the slice if there is none. The
// returned slice never aliases the input and is backed by a zero-terminated
// array, so it can be passed to C as is. DuplicateInto writes into a
// caller-provided buffer instead and reports ErrShortBuffer when it is too
// small for the bytes plus the terminator.
package testmodule

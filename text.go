package testmodule

import (
	"bytes"
	"fmt"
)

// Identity returns v unchanged. It exists as a baseline FFI round trip.
func Identity(v int32) int32 {
	return v
}

// TerminatedLen returns the number of bytes in b before the first zero
// byte, or len(b) if b holds no zero byte.
func TerminatedLen(b []byte) int {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return i
	}
	return len(b)
}

// Duplicate returns a new copy of the string held in src. The copy has
// length TerminatedLen(src), never shares memory with src, and its backing
// array ends with a zero byte one past the returned length.
func Duplicate(src []byte) []byte {
	n := TerminatedLen(src)
	buf := make([]byte, n+1)
	copy(buf, src[:n])
	return buf[:n]
}

// DuplicateInto writes the string held in src, followed by a zero byte,
// into dst and returns the string's length. dst must hold at least
// TerminatedLen(src)+1 bytes; otherwise dst is left untouched.
func DuplicateInto(dst, src []byte) (int, error) {
	n := TerminatedLen(src)
	if len(dst) < n+1 {
		return 0, fmt.Errorf("need %d bytes, have %d: %w", n+1, len(dst), ErrShortBuffer)
	}
	copy(dst, src[:n])
	dst[n] = 0
	return n, nil
}

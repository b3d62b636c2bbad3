package testmodule

import (
	"fmt"
	"strings"
)

// Variant selects one of the grid transforms.
type Variant int

const (
	// VariantCopy copies the input grid and leaves it untouched.
	VariantCopy Variant = iota
	// VariantReverse copies the input grid, then rewrites the input with
	// the output in reverse order.
	VariantReverse
)

func (v Variant) String() string {
	switch v {
	case VariantCopy:
		return "copy"
	case VariantReverse:
		return "reverse"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant parses "copy" or "reverse" (case-insensitive).
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "copy":
		return VariantCopy, nil
	case "reverse":
		return VariantReverse, nil
	}
	return 0, fmt.Errorf("unknown grid variant %q: %w", s, ErrInvalidArgument)
}

// Transform runs the grid transform selected by v.
func Transform(v Variant, dst, src *Grid) error {
	switch v {
	case VariantCopy:
		return CopyGrid(dst, src)
	case VariantReverse:
		return CopyGridReverse(dst, src)
	}
	return fmt.Errorf("transform %s: %w", v, ErrInvalidArgument)
}

// CopyGrid copies every element of src into dst at the same row-major
// position. src is not modified.
func CopyGrid(dst, src *Grid) error {
	if err := checkPair(dst, src); err != nil {
		return err
	}
	copy(dst.data, src.data)
	return nil
}

// CopyGridReverse copies src into dst, then overwrites src so that
// src[i] = dst[n-1-i] for every flat index i, n = Height*Width.
//
// Applying it twice to the same pair leaves src as it started and dst
// holding src reversed; it is not an involution on the pair.
func CopyGridReverse(dst, src *Grid) error {
	if err := checkPair(dst, src); err != nil {
		return err
	}
	copy(dst.data, src.data)
	n := len(dst.data)
	for i := range src.data {
		src.data[i] = dst.data[n-1-i]
	}
	return nil
}

func checkPair(dst, src *Grid) error {
	if dst == nil || src == nil {
		return fmt.Errorf("nil grid: %w", ErrInvalidArgument)
	}
	if dst.dims != src.dims {
		return fmt.Errorf("dst %s, src %s: %w", dst.dims, src.dims, ErrDimensionMismatch)
	}
	if overlaps(dst.data, src.data) {
		return fmt.Errorf("grid %s: %w", dst.dims, ErrOverlap)
	}
	return nil
}

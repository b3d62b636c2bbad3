package testmodule

import (
	"fmt"
	"math"
	"math/bits"
)

// float64Size is the size in bytes of one grid element.
const float64Size = 8

// Dims holds the height and width of a row-major grid.
type Dims struct {
	Height int
	Width  int
}

// NewDims checks height and width and returns them as Dims.
func NewDims(height, width int) (Dims, error) {
	if height < 0 || width < 0 {
		return Dims{}, fmt.Errorf("dims %dx%d: %w", height, width, ErrInvalidArgument)
	}
	if _, err := area(uint64(height), uint64(width)); err != nil {
		return Dims{}, err
	}
	return Dims{Height: height, Width: width}, nil
}

// DimsFromUint64 converts dimensions from the unsigned 64-bit ABI domain.
// A zero side makes the grid empty whatever the other side is; a side too
// large for an int is then reported as 0.
func DimsFromUint64(height, width uint64) (Dims, error) {
	if height == 0 || width == 0 {
		return Dims{Height: clampInt(height), Width: clampInt(width)}, nil
	}
	if height > math.MaxInt || width > math.MaxInt {
		return Dims{}, fmt.Errorf("dims %dx%d: %w", height, width, ErrOverflow)
	}
	return NewDims(int(height), int(width))
}

func clampInt(v uint64) int {
	if v > math.MaxInt {
		return 0
	}
	return int(v)
}

// DimsFromInt32 converts dimensions from the signed 32-bit ABI domain.
func DimsFromInt32(height, width int32) (Dims, error) {
	return NewDims(int(height), int(width))
}

// area returns height*width, rejecting products whose byte size would not
// fit in an int.
func area(height, width uint64) (int, error) {
	hi, n := bits.Mul64(height, width)
	if hi != 0 || n > math.MaxInt/float64Size {
		return 0, fmt.Errorf("dims %dx%d: %w", height, width, ErrOverflow)
	}
	return int(n), nil
}

// Len returns the number of elements, Height*Width.
func (d Dims) Len() int {
	return d.Height * d.Width
}

// Empty reports whether the grid holds no elements.
func (d Dims) Empty() bool {
	return d.Len() == 0
}

// Index returns the flat row-major index of (row, col).
func (d Dims) Index(row, col int) int {
	if row < 0 || row >= d.Height || col < 0 || col >= d.Width {
		panic(fmt.Sprintf("testmodule: index (%d, %d) out of range for %s", row, col, d))
	}
	return row*d.Width + col
}

func (d Dims) String() string {
	return fmt.Sprintf("%dx%d", d.Height, d.Width)
}

package testmodule

import "errors"

var (
	// ErrInvalidArgument is returned for nil inputs, negative dimensions,
	// ragged rows and unknown variants.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOverflow is returned when a grid's area or byte size does not fit
	// in an int.
	ErrOverflow = errors.New("dimension overflow")

	// ErrShortBuffer is returned when a caller-provided buffer is smaller
	// than the data that has to be written into it.
	ErrShortBuffer = errors.New("short buffer")

	// ErrDimensionMismatch is returned when two grids passed to a transform
	// do not have the same height and width.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrOverlap is returned when input and output grids share memory.
	ErrOverlap = errors.New("overlapping buffers")

	// ErrAllocation is returned when memory for a result cannot be obtained.
	ErrAllocation = errors.New("allocation failure")
)

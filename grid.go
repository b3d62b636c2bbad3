package testmodule

import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"
)

// Grid is a row-major grid of float64 values that owns or views a flat
// buffer of exactly Height*Width elements.
type Grid struct {
	dims Dims
	data []float64
}

// NewGrid returns a zero-filled grid.
func NewGrid(height, width int) (*Grid, error) {
	d, err := NewDims(height, width)
	if err != nil {
		return nil, err
	}
	return &Grid{dims: d, data: make([]float64, d.Len())}, nil
}

// GridOf wraps data as a height x width grid without copying it. Only the
// first height*width elements belong to the grid; writes through the grid
// are visible in data.
func GridOf(height, width int, data []float64) (*Grid, error) {
	d, err := NewDims(height, width)
	if err != nil {
		return nil, err
	}
	n := d.Len()
	if len(data) < n {
		return nil, fmt.Errorf("grid %s needs %d elements, have %d: %w", d, n, len(data), ErrShortBuffer)
	}
	return &Grid{dims: d, data: data[:n:n]}, nil
}

// GridFromRows copies rows into a new grid. All rows must have the same
// length.
func GridFromRows(rows [][]float64) (*Grid, error) {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), width, ErrInvalidArgument)
		}
	}
	g, err := NewGrid(height, width)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		copy(g.data[i*width:], row)
	}
	return g, nil
}

// Dims returns the grid's dimensions.
func (g *Grid) Dims() Dims { return g.dims }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.dims.Height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.dims.Width }

// Len returns Height*Width.
func (g *Grid) Len() int { return len(g.data) }

// At returns the element at (row, col).
func (g *Grid) At(row, col int) float64 {
	return g.data[g.dims.Index(row, col)]
}

// Set stores v at (row, col).
func (g *Grid) Set(row, col int, v float64) {
	g.data[g.dims.Index(row, col)] = v
}

// Row returns row r as a slice sharing the grid's memory.
func (g *Grid) Row(r int) []float64 {
	if r < 0 || r >= g.dims.Height {
		panic(fmt.Sprintf("testmodule: row %d out of range for %s", r, g.dims))
	}
	w := g.dims.Width
	return g.data[r*w : (r+1)*w : (r+1)*w]
}

// Rows returns a copy of the grid as a slice of rows.
func (g *Grid) Rows() [][]float64 {
	rows := make([][]float64, g.dims.Height)
	for r := range rows {
		rows[r] = append([]float64(nil), g.Row(r)...)
	}
	return rows
}

// Data returns the flat row-major buffer. It shares the grid's memory.
func (g *Grid) Data() []float64 { return g.data }

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{dims: g.dims, data: append([]float64(nil), g.data...)}
}

// Equal reports whether g and other have the same dimensions and elements.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.dims != other.dims {
		return false
	}
	for i, v := range g.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// String formats the grid as rows separated by newlines.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.dims.Height; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, v := range g.Row(r) {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	return b.String()
}

// overlaps reports whether the backing arrays of a and b share any element.
func overlaps(a, b []float64) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	aStart := uintptr(unsafe.Pointer(&a[0]))
	bStart := uintptr(unsafe.Pointer(&b[0]))
	aEnd := aStart + uintptr(len(a))*float64Size
	bEnd := bStart + uintptr(len(b))*float64Size
	return aStart < bEnd && bStart < aEnd
}

// Package grid provides a fixed-size dense 2D array addressed by
// column-major linear indexing.
package grid

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is wrapped by every out-of-bounds access error.
var ErrIndexOutOfRange = errors.New("grid: index out of range")

// IndexError describes an out-of-bounds access.
// At, Set and Mut panic with an *IndexError; Lookup returns one.
type IndexError struct {
	X, Y         int
	SizeX, SizeY int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("grid: index (%d,%d) out of range for %dx%d grid", e.X, e.Y, e.SizeX, e.SizeY)
}

// Unwrap lets errors.Is match ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// Grid is a dense sizeX*sizeY array of T.
// Cell (x, y) lives at offset x*sizeY + y. The grid is never resized.
type Grid[T any] struct {
	sizeX  int
	sizeY  int
	values []T
}

// New allocates a grid of w*h zero-valued cells.
// Panics if either dimension is negative.
func New[T any](w, h int) *Grid[T] {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("grid: invalid size %dx%d", w, h))
	}
	return &Grid[T]{
		sizeX:  w,
		sizeY:  h,
		values: make([]T, w*h),
	}
}

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.sizeX && y >= 0 && y < g.sizeY
}

// Index returns the linear offset of (x, y) without bounds checking.
func (g *Grid[T]) Index(x, y int) int {
	return x*g.sizeY + y
}

// offset returns the linear offset of (x, y), panicking when out of range.
// A bad y must not silently land in the neighbouring column.
func (g *Grid[T]) offset(x, y int) int {
	if !g.InBounds(x, y) {
		panic(g.indexError(x, y))
	}
	return g.Index(x, y)
}

func (g *Grid[T]) indexError(x, y int) *IndexError {
	return &IndexError{X: x, Y: y, SizeX: g.sizeX, SizeY: g.sizeY}
}

// At returns a copy of the cell at (x, y).
func (g *Grid[T]) At(x, y int) T {
	return g.values[g.offset(x, y)]
}

// Lookup is the non-panicking form of At.
func (g *Grid[T]) Lookup(x, y int) (T, error) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, g.indexError(x, y)
	}
	return g.values[g.Index(x, y)], nil
}

// Set stores v at (x, y).
func (g *Grid[T]) Set(x, y int, v T) {
	g.values[g.offset(x, y)] = v
}

// Mut returns a pointer to the cell at (x, y) for in-place mutation.
// The pointer stays valid for the lifetime of the grid.
func (g *Grid[T]) Mut(x, y int) *T {
	return &g.values[g.offset(x, y)]
}

// Size returns the grid dimensions.
func (g *Grid[T]) Size() (int, int) {
	return g.sizeX, g.sizeY
}

// SizeX returns the number of columns.
func (g *Grid[T]) SizeX() int {
	return g.sizeX
}

// SizeY returns the number of rows.
func (g *Grid[T]) SizeY() int {
	return g.sizeY
}

// Len returns the number of cells.
func (g *Grid[T]) Len() int {
	return len(g.values)
}

// Each calls fn for every cell in storage order (column by column).
func (g *Grid[T]) Each(fn func(x, y int, v T)) {
	for x := 0; x < g.sizeX; x++ {
		col := g.values[x*g.sizeY : (x+1)*g.sizeY]
		for y, v := range col {
			fn(x, y, v)
		}
	}
}

// Fill sets every cell to the value returned by fn.
func (g *Grid[T]) Fill(fn func(x, y int) T) {
	for x := 0; x < g.sizeX; x++ {
		for y := 0; y < g.sizeY; y++ {
			g.values[g.Index(x, y)] = fn(x, y)
		}
	}
}

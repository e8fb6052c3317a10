// Package core provides fundamental types and utilities shared by the world,
// layout and frontends. It contains no rendering dependencies (no Bubble Tea,
// no ebiten) to keep game logic pure and testable.
package core

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Point is an integer coordinate, used for world tiles and screen cells.
type Point struct {
	X, Y int
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns p minus other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Vec converts the point to a float vector.
func (p Point) Vec() Vec2 {
	return Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Vec2 is a 2D float vector in logical or screen pixel space.
type Vec2 struct {
	X, Y float64
}

// V is a convenience constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Splat returns a vector with both components set to v.
func Splat(v float64) Vec2 {
	return Vec2{X: v, Y: v}
}

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns the component-wise product.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Div returns the component-wise quotient.
func (v Vec2) Div(o Vec2) Vec2 {
	return Vec2{X: v.X / o.X, Y: v.Y / o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Floor rounds both components down.
func (v Vec2) Floor() Vec2 {
	return Vec2{X: math.Floor(v.X), Y: math.Floor(v.Y)}
}

// MinElem returns the smaller component.
func (v Vec2) MinElem() float64 {
	return math.Min(v.X, v.Y)
}

// Point truncates the vector to integer coordinates.
func (v Vec2) Point() Point {
	return Point{X: int(v.X), Y: int(v.Y)}
}

// Rect represents an axis-aligned integer rectangle (screen cells).
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlap of two rectangles (zero-sized if disjoint).
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// RectF is a float rectangle in screen pixel space.
type RectF struct {
	Min  Vec2 // Top-left corner
	Size Vec2
}

// RF builds a RectF from an origin and a size.
func RF(origin, size Vec2) RectF {
	return RectF{Min: origin, Size: size}
}

// Max returns the bottom-right corner.
func (r RectF) Max() Vec2 {
	return r.Min.Add(r.Size)
}

// Contains reports whether p lies inside the rectangle (max edges exclusive).
func (r RectF) Contains(p Vec2) bool {
	m := r.Max()
	return p.X >= r.Min.X && p.X < m.X && p.Y >= r.Min.Y && p.Y < m.Y
}

// Round converts the rectangle to integer cells by flooring both corners.
func (r RectF) Round() Rect {
	x0 := int(math.Floor(r.Min.X))
	y0 := int(math.Floor(r.Min.Y))
	m := r.Max()
	return Rect{X: x0, Y: y0, W: int(math.Floor(m.X)) - x0, H: int(math.Floor(m.Y)) - y0}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp[T constraints.Ordered](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampPoint clamps both components of p into [lo, hi].
func ClampPoint(p, lo, hi Point) Point {
	return Point{X: Clamp(p.X, lo.X, hi.X), Y: Clamp(p.Y, lo.Y, hi.Y)}
}

// Abs returns the absolute value of a signed number.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Package geometry provides the value types of the staging core: absolute
// rectangles in surface coordinates and relative rectangles that compose
// with them to place children.
package geometry

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in surface coordinates.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in surface coordinates.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents an absolute rectangle using left, top, right, bottom
// coordinates in a single output surface's coordinate space. A zero or
// negative extent denotes a degenerate region; nothing in this package
// rejects one.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether the point lies inside the rectangle.
// Points on the left/top edge are inside, right/bottom edge outside,
// so adjacent rectangles never both claim their shared edge.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Intersect returns the intersection of two rectangles.
// Returns empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right, other.Right)
	bottom := math.Min(r.Bottom, other.Bottom)
	if left >= right || top >= bottom {
		return Rect{} // Empty
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// ApproxEqual returns true if both rectangles match within epsilon on every
// coordinate.
func (r Rect) ApproxEqual(other Rect) bool {
	return floatEqual(r.Left, other.Left) &&
		floatEqual(r.Top, other.Top) &&
		floatEqual(r.Right, other.Right) &&
		floatEqual(r.Bottom, other.Bottom)
}

// Insets represents distances inset from each edge of a rectangle.
type Insets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// UniformInsets creates insets with the same value on every edge.
func UniformInsets(value float64) Insets {
	return Insets{Left: value, Top: value, Right: value, Bottom: value}
}

// Deflate shrinks the rectangle inward by the insets. The result may be
// degenerate when the insets exceed the rectangle's extent.
func (i Insets) Deflate(r Rect) Rect {
	return Rect{
		Left:   r.Left + i.Left,
		Top:    r.Top + i.Top,
		Right:  r.Right - i.Right,
		Bottom: r.Bottom - i.Bottom,
	}
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

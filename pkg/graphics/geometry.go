package graphics

import "math"

// Vec2 is a 2D vector or point.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Size is a width and height pair.
type Size struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle described by its origin and extent.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RectFromPosSize builds a Rect from an origin and a size.
func RectFromPosSize(pos Vec2, size Size) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height}
}

// Position returns the top-left corner.
func (r Rect) Position() Vec2 { return Vec2{X: r.X, Y: r.Y} }

// Size returns the extent of the rectangle.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside the rectangle. All edges are inclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Inset shrinks the rectangle by amount on every side. The result never
// has a negative extent.
func (r Rect) Inset(amount float64) Rect {
	return Rect{
		X:      r.X + amount,
		Y:      r.Y + amount,
		Width:  math.Max(0, r.Width-2*amount),
		Height: math.Max(0, r.Height-2*amount),
	}
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Sanitize replaces NaN or infinite coordinates with zero and negative
// extents with zero, so layout never propagates invalid geometry.
func (r Rect) Sanitize() Rect {
	return Rect{
		X:      finite(r.X),
		Y:      finite(r.Y),
		Width:  NonNegative(r.Width),
		Height: NonNegative(r.Height),
	}
}

// Sanitize clamps both dimensions with NonNegative.
func (s Size) Sanitize() Size {
	return Size{Width: NonNegative(s.Width), Height: NonNegative(s.Height)}
}

// NonNegative returns v, or 0 when v is negative, NaN or infinite.
func NonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Package core provides fundamental types and utilities shared by the simulation
// kernel and the platform layer. It has no external dependencies (especially no
// Bubble Tea) so game logic stays pure and testable.
package core

import "math"

// Vec is an immutable 2D vector in level units.
// One unit is one grid cell.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by f on both axes.
func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// IsFinite reports whether both components are finite numbers.
func (v Vec) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Box is an axis-aligned bounding box given by its top-left corner and size.
type Box struct {
	Pos  Vec
	Size Vec
}

// Right and Bottom are the far edges of the box.
func (b Box) Right() float64  { return b.Pos.X + b.Size.X }
func (b Box) Bottom() float64 { return b.Pos.Y + b.Size.Y }

// Intersects returns true if the open interiors of both boxes overlap.
// Boxes that only share an edge do not intersect.
func (b Box) Intersects(other Box) bool {
	if b.Pos.X >= other.Right() || other.Pos.X >= b.Right() {
		return false
	}
	if b.Pos.Y >= other.Bottom() || other.Pos.Y >= b.Bottom() {
		return false
	}
	return true
}

// Rect is an area of screen cells.
type Rect struct {
	X, Y, W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right and Bottom are exclusive.
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// ClampF limits v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Package core provides fundamental types and utilities shared by the
// simulation and its frontends. It has no dependency on any terminal or
// window library so simulation logic stays pure and testable.
package core

// Vec is a point or displacement in arena units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect is an axis-aligned rectangle given by two opposite corners.
// Callers keep X1 <= X2 and Y1 <= Y2.
type Rect struct {
	X1, Y1 float64 // Top-left corner
	X2, Y2 float64 // Bottom-right corner
}

// NewRect creates a rectangle from its top-left corner and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Circle is a disk given by its center and radius.
type Circle struct {
	Center Vec
	Radius float64
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

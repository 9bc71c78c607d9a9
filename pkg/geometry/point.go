package geometry

import "math"

// Point2 represents a 2D point in screen or projected space
type Point2 struct {
	X, Y float64
}

// NewPoint2 creates a new 2D point
func NewPoint2(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

// Bounds2 represents an axis-aligned 2D bounding box
type Bounds2 struct {
	Min Point2
	Max Point2
}

// NewBounds2 creates an empty bounding box ready for Extend
func NewBounds2() Bounds2 {
	return Bounds2{
		Min: Point2{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point2{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}
}

// Extend expands the bounding box to include a point
func (b *Bounds2) Extend(p Point2) {
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
}

// Width returns the horizontal extent of the bounding box
func (b Bounds2) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent of the bounding box
func (b Bounds2) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Center returns the center point of the bounding box
func (b Bounds2) Center() Point2 {
	return Point2{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
	}
}

package geometry

// Rect represents an axis-aligned rectangle on the floor plan,
// positioned by its top-left corner, in meters
type Rect struct {
	X, Y float64
	W, D float64
}

// NewRect creates a new rectangle
func NewRect(x, y, w, d float64) Rect {
	return Rect{X: x, Y: y, W: w, D: d}
}

// Right returns the X coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the Y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.D
}

// CenterX returns the X coordinate of the rectangle center
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the Y coordinate of the rectangle center
func (r Rect) CenterY() float64 {
	return r.Y + r.D/2
}

// Contains reports whether the point (x, y) lies inside the rectangle
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// OverlapX returns the overlapping range of two rectangles along the
// X axis as (start, end); the range is empty when end < start
func (r Rect) OverlapX(other Rect) (float64, float64) {
	start := r.X
	if other.X > start {
		start = other.X
	}
	end := r.Right()
	if other.Right() < end {
		end = other.Right()
	}
	return start, end
}

// OverlapY returns the overlapping range of two rectangles along the
// Y axis as (start, end); the range is empty when end < start
func (r Rect) OverlapY(other Rect) (float64, float64) {
	start := r.Y
	if other.Y > start {
		start = other.Y
	}
	end := r.Bottom()
	if other.Bottom() < end {
		end = other.Bottom()
	}
	return start, end
}

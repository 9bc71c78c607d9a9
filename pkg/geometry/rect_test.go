package geometry

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if r.Right() != 6 {
		t.Errorf("Right failed: expected 6, got %v", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom failed: expected 8, got %v", r.Bottom())
	}
	if r.CenterX() != 4 {
		t.Errorf("CenterX failed: expected 4, got %v", r.CenterX())
	}
	if r.CenterY() != 5.5 {
		t.Errorf("CenterY failed: expected 5.5, got %v", r.CenterY())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	if !r.Contains(5, 5) {
		t.Error("Contains failed: interior point rejected")
	}
	if !r.Contains(0, 0) || !r.Contains(10, 10) {
		t.Error("Contains failed: edge points rejected")
	}
	if r.Contains(10.1, 5) {
		t.Error("Contains failed: exterior point accepted")
	}
}

func TestRectOverlap(t *testing.T) {
	a := NewRect(0, 0, 4, 4)
	b := NewRect(2, 3, 4, 4)

	start, end := a.OverlapX(b)
	if start != 2 || end != 4 {
		t.Errorf("OverlapX failed: expected (2, 4), got (%v, %v)", start, end)
	}

	start, end = a.OverlapY(b)
	if start != 3 || end != 4 {
		t.Errorf("OverlapY failed: expected (3, 4), got (%v, %v)", start, end)
	}

	// Disjoint rectangles produce an empty range
	c := NewRect(10, 0, 2, 2)
	start, end = a.OverlapX(c)
	if end >= start {
		t.Errorf("OverlapX failed: expected empty range, got (%v, %v)", start, end)
	}
}

func TestBounds2Extend(t *testing.T) {
	b := NewBounds2()
	b.Extend(NewPoint2(1, 2))
	b.Extend(NewPoint2(-3, 5))
	b.Extend(NewPoint2(4, -1))

	if b.Min != NewPoint2(-3, -1) {
		t.Errorf("Min failed: got %v", b.Min)
	}
	if b.Max != NewPoint2(4, 5) {
		t.Errorf("Max failed: got %v", b.Max)
	}
	if math.Abs(b.Width()-7) > 1e-10 || math.Abs(b.Height()-6) > 1e-10 {
		t.Errorf("Size failed: got %v x %v", b.Width(), b.Height())
	}

	center := b.Center()
	if center != NewPoint2(0.5, 2) {
		t.Errorf("Center failed: got %v", center)
	}
}

package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/planfab/goplan/pkg/geometry"
)

// Software raster primitives. The renderers draw everything through
// these so that output depends only on the scene passed in.

func setPixel(img *image.RGBA, x, y int, col color.RGBA) {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		img.SetRGBA(x, y, col)
	}
}

// drawLine draws a line using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		setPixel(img, x1, y1, col)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func drawLineF(img *image.RGBA, x1, y1, x2, y2 float64, col color.RGBA) {
	drawLine(img, round(x1), round(y1), round(x2), round(y2), col)
}

// drawThickLineF widens a line by stamping parallel offsets
func drawThickLineF(img *image.RGBA, x1, y1, x2, y2 float64, thickness int, col color.RGBA) {
	if thickness <= 1 {
		drawLineF(img, x1, y1, x2, y2, col)
		return
	}
	// Offset perpendicular to the line direction.
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		setPixel(img, round(x1), round(y1), col)
		return
	}
	nx := -dy / length
	ny := dx / length
	for i := 0; i < thickness; i++ {
		off := float64(i) - float64(thickness-1)/2
		drawLineF(img, x1+nx*off, y1+ny*off, x2+nx*off, y2+ny*off, col)
	}
}

// drawDashedLineF draws a line as alternating on/off segments of
// dashLen pixels each
func drawDashedLineF(img *image.RGBA, x1, y1, x2, y2, dashLen float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	steps := int(length / dashLen)
	for i := 0; i <= steps; i += 2 {
		t0 := float64(i) * dashLen / length
		t1 := math.Min(float64(i+1)*dashLen/length, 1)
		drawLineF(img, x1+dx*t0, y1+dy*t0, x1+dx*t1, y1+dy*t1, col)
	}
}

// fillRect fills an axis-aligned rectangle clipped to the image
func fillRect(img *image.RGBA, x, y, w, h float64, col color.RGBA) {
	bounds := img.Bounds()
	x0 := max(round(x), bounds.Min.X)
	y0 := max(round(y), bounds.Min.Y)
	x1 := min(round(x+w), bounds.Max.X)
	y1 := min(round(y+h), bounds.Max.Y)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			img.SetRGBA(px, py, col)
		}
	}
}

// strokeRect outlines an axis-aligned rectangle
func strokeRect(img *image.RGBA, x, y, w, h float64, thickness int, col color.RGBA) {
	drawThickLineF(img, x, y, x+w, y, thickness, col)
	drawThickLineF(img, x+w, y, x+w, y+h, thickness, col)
	drawThickLineF(img, x+w, y+h, x, y+h, thickness, col)
	drawThickLineF(img, x, y+h, x, y, thickness, col)
}

// fillTriangle fills a triangle using a scanline sweep
func fillTriangle(img *image.RGBA, x1, y1, x2, y2, x3, y3 float64, col color.RGBA) {
	// Sort vertices by Y coordinate (top to bottom).
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y2 > y3 {
		x2, y2, x3, y3 = x3, y3, x2, y2
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	bounds := img.Bounds()

	for y := max(round(y1), bounds.Min.Y); y <= min(round(y3), bounds.Max.Y-1); y++ {
		fy := float64(y)

		intersections := make([]float64, 0, 2)
		if y1 != y2 && fy >= y1 && fy <= y2 {
			t := (fy - y1) / (y2 - y1)
			intersections = append(intersections, x1+t*(x2-x1))
		}
		if y2 != y3 && fy >= y2 && fy <= y3 {
			t := (fy - y2) / (y3 - y2)
			intersections = append(intersections, x2+t*(x3-x2))
		}
		if y1 != y3 && fy >= y1 && fy <= y3 {
			t := (fy - y1) / (y3 - y1)
			intersections = append(intersections, x1+t*(x3-x1))
		}

		if len(intersections) >= 2 {
			xStart := math.Min(intersections[0], intersections[1])
			xEnd := math.Max(intersections[0], intersections[1])
			for x := max(round(xStart), bounds.Min.X); x <= min(round(xEnd), bounds.Max.X-1); x++ {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// fillQuad fills a convex quadrilateral given in winding order
func fillQuad(img *image.RGBA, p1, p2, p3, p4 geometry.Point2, col color.RGBA) {
	fillTriangle(img, p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y, col)
	fillTriangle(img, p1.X, p1.Y, p3.X, p3.Y, p4.X, p4.Y, col)
}

// strokeQuad outlines a quadrilateral given in winding order
func strokeQuad(img *image.RGBA, p1, p2, p3, p4 geometry.Point2, col color.RGBA) {
	drawLineF(img, p1.X, p1.Y, p2.X, p2.Y, col)
	drawLineF(img, p2.X, p2.Y, p3.X, p3.Y, col)
	drawLineF(img, p3.X, p3.Y, p4.X, p4.Y, col)
	drawLineF(img, p4.X, p4.Y, p1.X, p1.Y, col)
}

// fillCircle fills a circle by testing pixels of its bounding square
func fillCircle(img *image.RGBA, cx, cy, radius float64, col color.RGBA) {
	r2 := radius * radius
	for y := round(cy - radius); y <= round(cy+radius); y++ {
		for x := round(cx - radius); x <= round(cx+radius); x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				setPixel(img, x, y, col)
			}
		}
	}
}

// strokeCircle outlines a circle with short line segments
func strokeCircle(img *image.RGBA, cx, cy, radius float64, col color.RGBA) {
	steps := max(16, round(radius))
	for i := 0; i < steps; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(steps)
		a1 := 2 * math.Pi * float64(i+1) / float64(steps)
		drawLineF(img,
			cx+radius*math.Cos(a0), cy+radius*math.Sin(a0),
			cx+radius*math.Cos(a1), cy+radius*math.Sin(a1),
			col)
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

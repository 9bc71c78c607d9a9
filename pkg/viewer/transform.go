package viewer

import (
	"math"

	"github.com/planfab/goplan/pkg/plan"
)

const (
	// DefaultPadding is the margin kept between the site and the
	// viewport edges, in pixels
	DefaultPadding = 40.0

	// MinZoom and MaxZoom bound the user zoom multiplier
	MinZoom = 0.5
	MaxZoom = 10.0
)

// ViewTransform is the user's current pan/zoom state. It is an
// ephemeral per-render value, never persisted.
type ViewTransform struct {
	Scale float64 // zoom multiplier, clamped to [MinZoom, MaxZoom]
	PanX  float64 // pixel offset
	PanY  float64
}

// NewViewTransform returns the identity view
func NewViewTransform() ViewTransform {
	return ViewTransform{Scale: 1}
}

// Clamped returns the view with the zoom multiplier bounded
func (v ViewTransform) Clamped() ViewTransform {
	v.Scale = math.Max(MinZoom, math.Min(MaxZoom, v.Scale))
	return v
}

// PlanTransform maps between physical meters and canvas pixels for
// one render of the top-down view
type PlanTransform struct {
	Scale   float64 // pixels per meter after zoom
	OriginX float64 // pixel position of the site origin
	OriginY float64
}

// FitSite computes the transform that fits the site into the viewport
// with the given padding, then applies the user's pan/zoom. Zero site
// dimensions are treated as 1 when deriving the scale so the transform
// stays finite; callers render a placeholder for undefined sites
// before any geometry is mapped.
func FitSite(site plan.Site, pixelWidth, pixelHeight, padding float64, view ViewTransform) PlanTransform {
	view = view.Clamped()

	w := site.Width
	if w <= 0 {
		w = 1
	}
	l := site.Length
	if l <= 0 {
		l = 1
	}

	baseScale := math.Min((pixelWidth-2*padding)/w, (pixelHeight-2*padding)/l)
	scale := baseScale * view.Scale

	drawWidth := site.Width * scale
	drawLength := site.Length * scale

	return PlanTransform{
		Scale:   scale,
		OriginX: (pixelWidth-drawWidth)/2 + view.PanX,
		OriginY: (pixelHeight-drawLength)/2 + view.PanY,
	}
}

// ToPixels maps a point in meters to canvas pixels
func (t PlanTransform) ToPixels(mx, my float64) (float64, float64) {
	return t.OriginX + mx*t.Scale, t.OriginY + my*t.Scale
}

// ToMeters maps a canvas pixel back to meters
func (t PlanTransform) ToMeters(px, py float64) (float64, float64) {
	return (px - t.OriginX) / t.Scale, (py - t.OriginY) / t.Scale
}

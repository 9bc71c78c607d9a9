package viewer

import (
	"math"
	"testing"

	"github.com/planfab/goplan/pkg/plan"
)

func TestTransformRoundTrip(t *testing.T) {
	site := plan.Site{Width: 30, Length: 50}
	views := []ViewTransform{
		NewViewTransform(),
		{Scale: 2.5, PanX: 120, PanY: -40},
		{Scale: 0.5, PanX: -300, PanY: 75},
		{Scale: 10, PanX: 0, PanY: 0},
	}
	points := [][2]float64{{0, 0}, {30, 50}, {15.25, 49.9}, {3.33, 7.77}}

	for _, view := range views {
		tr := FitSite(site, 800, 600, DefaultPadding, view)
		for _, p := range points {
			px, py := tr.ToPixels(p[0], p[1])
			mx, my := tr.ToMeters(px, py)
			if math.Abs(mx-p[0]) > 1e-9 || math.Abs(my-p[1]) > 1e-9 {
				t.Errorf("round trip failed for %v at view %+v: got (%v, %v)", p, view, mx, my)
			}
		}
	}
}

func TestFitInvariant(t *testing.T) {
	sites := []plan.Site{
		{Width: 30, Length: 50},
		{Width: 100, Length: 10},
		{Width: 1, Length: 1},
	}
	for _, site := range sites {
		tr := FitSite(site, 800, 600, DefaultPadding, NewViewTransform())

		drawWidth := site.Width * tr.Scale
		drawLength := site.Length * tr.Scale
		if drawWidth > 800-2*DefaultPadding+1e-9 {
			t.Errorf("site %+v: draw width %v exceeds padded viewport", site, drawWidth)
		}
		if drawLength > 600-2*DefaultPadding+1e-9 {
			t.Errorf("site %+v: draw length %v exceeds padded viewport", site, drawLength)
		}
	}
}

func TestFitCentersWithoutPan(t *testing.T) {
	site := plan.Site{Width: 10, Length: 10}
	tr := FitSite(site, 800, 600, DefaultPadding, NewViewTransform())

	x0, y0 := tr.ToPixels(0, 0)
	x1, y1 := tr.ToPixels(site.Width, site.Length)
	if math.Abs((x0+x1)/2-400) > 1e-9 {
		t.Errorf("horizontal center: expected 400, got %v", (x0+x1)/2)
	}
	if math.Abs((y0+y1)/2-300) > 1e-9 {
		t.Errorf("vertical center: expected 300, got %v", (y0+y1)/2)
	}
}

func TestZeroDimensionGuard(t *testing.T) {
	tr := FitSite(plan.Site{Width: 0, Length: 10}, 800, 600, DefaultPadding, NewViewTransform())
	if math.IsInf(tr.Scale, 0) || math.IsNaN(tr.Scale) {
		t.Errorf("zero width must not produce a degenerate scale, got %v", tr.Scale)
	}
}

func TestViewTransformClamp(t *testing.T) {
	v := ViewTransform{Scale: 100}
	if v.Clamped().Scale != MaxZoom {
		t.Errorf("expected zoom clamped to %v, got %v", MaxZoom, v.Clamped().Scale)
	}

	v = ViewTransform{Scale: 0.01}
	if v.Clamped().Scale != MinZoom {
		t.Errorf("expected zoom clamped to %v, got %v", MinZoom, v.Clamped().Scale)
	}
}

package viewer

import (
	"math"
	"testing"

	"github.com/planfab/goplan/pkg/plan"
)

func TestIsoProjectBasis(t *testing.T) {
	cos30 := math.Cos(math.Pi / 6)
	sin30 := math.Sin(math.Pi / 6)

	p := IsoProject(4, 1, 2)
	wantX := (4 - 1) * cos30
	wantY := (4+1)*sin30 - 2
	if math.Abs(p.X-wantX) > 1e-9 || math.Abs(p.Y-wantY) > 1e-9 {
		t.Errorf("expected (%v, %v), got (%v, %v)", wantX, wantY, p.X, p.Y)
	}

	// The origin projects to the origin.
	if o := IsoProject(0, 0, 0); o.X != 0 || o.Y != 0 {
		t.Errorf("origin moved: %v", o)
	}

	// Raising a point moves it straight up on screen.
	lifted := IsoProject(4, 1, 5)
	if lifted.X != p.X || lifted.Y >= p.Y {
		t.Errorf("z must only decrease screen Y: %v vs %v", lifted, p)
	}
}

func TestRenderHeight(t *testing.T) {
	p := plan.NewProject("t", plan.DomainIndustrial)
	p.Site = plan.Site{Width: 10, Length: 10}

	// Floor of 5 m with no ceiling and no objects.
	if h := RenderHeight(p); h != 5 {
		t.Errorf("expected floor height 5, got %v", h)
	}

	p.Site.CeilingHeight = 8
	if h := RenderHeight(p); h != 8 {
		t.Errorf("expected ceiling height 8, got %v", h)
	}

	obj := p.AddObject(plan.KindMezzanine, 2, 2, 1, 9)
	if obj == nil {
		t.Fatal("AddObject failed")
	}
	if h := RenderHeight(p); h != 10 {
		t.Errorf("expected tallest object top 10, got %v", h)
	}
}

func TestFitIsoCentersBoundingBox(t *testing.T) {
	site := plan.Site{Width: 20, Length: 30}
	proj := FitIso(site, 8, 800, 600, DefaultPadding)

	// Recompute the projected bounds through the fitted projection;
	// they must be centered in the viewport and inside the padding.
	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	for _, c := range [][3]float64{
		{0, 0, 0}, {20, 0, 0}, {20, 30, 0}, {0, 30, 0},
		{0, 0, 8}, {20, 0, 8}, {20, 30, 8}, {0, 30, 8},
	} {
		p := proj.ToScreen(c[0], c[1], c[2])
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	if math.Abs((minX+maxX)/2-400) > 1e-6 || math.Abs((minY+maxY)/2-300) > 1e-6 {
		t.Errorf("projected bounds not centered: (%v, %v)", (minX+maxX)/2, (minY+maxY)/2)
	}
	if minX < DefaultPadding-1e-6 || maxX > 800-DefaultPadding+1e-6 {
		t.Errorf("projected bounds exceed horizontal padding: [%v, %v]", minX, maxX)
	}
	if minY < DefaultPadding-1e-6 || maxY > 600-DefaultPadding+1e-6 {
		t.Errorf("projected bounds exceed vertical padding: [%v, %v]", minY, maxY)
	}
}

package viewer

import (
	"testing"

	"github.com/planfab/goplan/pkg/plan"
)

func TestHitTestFindsTopmostObject(t *testing.T) {
	p := plan.NewProject("Hit", plan.DomainIndustrial)
	p.Site = plan.Site{Width: 10, Length: 10}
	ground := p.AddObject(plan.KindRack, 4, 4, 2, 0)
	elevated := p.AddObject(plan.KindMezzanine, 4, 4, 0.4, 3)
	p.MoveObject(ground.ID, 2, 2)
	p.MoveObject(elevated.ID, 2, 2)

	v := NewPlanViewer(p)
	v.width = 800
	v.height = 600

	// Pixel at the shared center: the elevated object paints last and
	// must win the hit test.
	tr := v.transform()
	px, py := tr.ToPixels(4, 4)
	hit := v.hitTest(px, py)
	if hit == nil {
		t.Fatal("expected a hit at the object center")
	}
	if hit.ID != elevated.ID {
		t.Errorf("expected topmost (elevated) object, got %q", hit.Label)
	}

	// A pixel outside every footprint hits nothing.
	px, py = tr.ToPixels(9.5, 9.5)
	if v.hitTest(px, py) != nil {
		t.Error("expected no hit outside object footprints")
	}
}

func TestHitTestUndefinedSite(t *testing.T) {
	p := plan.NewProject("Hit", plan.DomainIndustrial)
	v := NewPlanViewer(p)
	v.width = 800
	v.height = 600

	if v.hitTest(400, 300) != nil {
		t.Error("undefined site must not hit-test objects")
	}
}

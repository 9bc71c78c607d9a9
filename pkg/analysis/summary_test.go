package analysis

import (
	"math"
	"testing"

	"github.com/planfab/goplan/pkg/plan"
)

func TestAnalyzeProject(t *testing.T) {
	p := plan.NewProject("Depot", plan.DomainIndustrial)
	p.Site = plan.Site{Width: 20, Length: 40, CeilingHeight: 8}
	p.Lighting = plan.LightingConfig{
		Active:             true,
		Orientation:        plan.OrientationLongitudinal,
		Mode:               plan.ModeQuantity,
		Value:              3,
		Offset:             2,
		FixturesPerProfile: 4,
	}
	p.AddObject(plan.KindRack, 2, 10, 6, 0)
	p.AddObject(plan.KindRack, 2, 10, 6, 0)
	p.AddObject(plan.KindMezzanine, 5, 4, 0.4, 3.5)

	s := AnalyzeProject(p)

	if s.SiteArea != 800 {
		t.Errorf("site area: expected 800, got %v", s.SiteArea)
	}
	if s.ObjectCount != 3 {
		t.Errorf("object count: expected 3, got %d", s.ObjectCount)
	}
	if s.CountByKind[plan.KindRack] != 2 || s.CountByKind[plan.KindMezzanine] != 1 {
		t.Errorf("kind counts wrong: %v", s.CountByKind)
	}
	if math.Abs(s.FootprintArea-60) > 1e-9 {
		t.Errorf("footprint area: expected 60, got %v", s.FootprintArea)
	}
	if math.Abs(s.UtilizationPct-7.5) > 1e-9 {
		t.Errorf("utilization: expected 7.5%%, got %v", s.UtilizationPct)
	}
	if s.TallestPoint != 6 {
		t.Errorf("tallest point: expected 6, got %v", s.TallestPoint)
	}
	if s.ProfileCount != 3 {
		t.Errorf("profile count: expected 3, got %d", s.ProfileCount)
	}
	if s.FixtureCount != 12 {
		t.Errorf("fixture count: expected 12, got %d", s.FixtureCount)
	}
}

func TestAnalyzeEmptyProject(t *testing.T) {
	p := plan.NewProject("Empty", plan.DomainIndustrial)
	s := AnalyzeProject(p)

	if s.ObjectCount != 0 || s.UtilizationPct != 0 || s.ProfileCount != 0 {
		t.Errorf("empty project summary not zeroed: %+v", s)
	}
}

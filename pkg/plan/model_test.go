package plan

import (
	"math"
	"testing"
)

func newTestProject() *Project {
	p := NewProject("Test Warehouse", DomainIndustrial)
	p.Site = Site{Width: 10, Length: 20, CeilingHeight: 6}
	return p
}

func TestAddObjectGeneratesIdentity(t *testing.T) {
	p := newTestProject()

	a := p.AddObject(KindRack, 2, 3, 4, 0)
	b := p.AddObject(KindRack, 2, 3, 4, 0)

	if a == nil || b == nil {
		t.Fatal("AddObject rejected valid objects")
	}
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("expected unique non-empty identifiers, got %q and %q", a.ID, b.ID)
	}
	if a.Label != "Rack 1" || b.Label != "Rack 2" {
		t.Errorf("default labels wrong: %q, %q", a.Label, b.Label)
	}
}

func TestAddObjectRejectsNonPositiveFootprint(t *testing.T) {
	p := newTestProject()

	if obj := p.AddObject(KindRack, 0, 3, 4, 0); obj != nil {
		t.Error("expected rejection for zero width")
	}
	if obj := p.AddObject(KindRack, 2, -1, 4, 0); obj != nil {
		t.Error("expected rejection for negative depth")
	}
	if len(p.Objects) != 0 {
		t.Errorf("rejected objects must not be added, have %d", len(p.Objects))
	}
}

func TestMoveObjectClampsIndustrial(t *testing.T) {
	p := newTestProject()
	obj := p.AddObject(KindRack, 2, 2, 4, 0)

	p.MoveObject(obj.ID, -5, 0)
	if obj.X != 0 {
		t.Errorf("expected x clamped to 0, got %v", obj.X)
	}

	p.MoveObject(obj.ID, 9, 0)
	if obj.X != 8 {
		t.Errorf("expected x clamped to 8, got %v", obj.X)
	}
}

func TestMoveObjectSnapsToGrid(t *testing.T) {
	p := newTestProject()
	obj := p.AddObject(KindRack, 2, 2, 4, 0)

	p.MoveObject(obj.ID, 3.26, 4.74)
	if obj.X != 3.5 || obj.Y != 4.5 {
		t.Errorf("expected snapped position (3.5, 4.5), got (%v, %v)", obj.X, obj.Y)
	}
}

func TestMoveObjectSportsMargin(t *testing.T) {
	p := NewProject("Pitch", DomainSports)
	p.Site = Site{Width: 40, Length: 20}
	obj := p.AddObject(KindPost, 1, 1, 2.5, 0)

	p.MoveObject(obj.ID, -20, 0)
	if obj.X != -SportsMargin {
		t.Errorf("expected x clamped to -%v, got %v", SportsMargin, obj.X)
	}

	p.MoveObject(obj.ID, 100, 0)
	want := p.Site.Width - obj.Width + SportsMargin
	if obj.X != want {
		t.Errorf("expected x clamped to %v, got %v", want, obj.X)
	}
}

func TestMoveObjectMissingID(t *testing.T) {
	p := newTestProject()
	if p.MoveObject("gone", 1, 1) {
		t.Error("expected MoveObject to report a missing identifier")
	}
}

func TestRemoveObject(t *testing.T) {
	p := newTestProject()
	obj := p.AddObject(KindMezzanine, 3, 3, 0.5, 3)

	if !p.RemoveObject(obj.ID) {
		t.Fatal("RemoveObject failed for existing object")
	}
	if p.Object(obj.ID) != nil {
		t.Error("object still resolvable after removal")
	}
	if p.RemoveObject(obj.ID) {
		t.Error("second removal should report absence")
	}
}

func TestSnapToGrid(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{0.2, 0},
		{0.25, 0.5},
		{0.74, 0.5},
		{0.76, 1},
		{-0.3, -0.5},
	}
	for _, c := range cases {
		if got := SnapToGrid(c.in); math.Abs(got-c.want) > 1e-10 {
			t.Errorf("SnapToGrid(%v): expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestDepthKey(t *testing.T) {
	o := &PlacedObject{X: 2, Y: 3, Elevation: 1.5}
	if o.DepthKey() != 6.5 {
		t.Errorf("DepthKey failed: expected 6.5, got %v", o.DepthKey())
	}
}

func TestTallestPoint(t *testing.T) {
	p := newTestProject()
	p.AddObject(KindRack, 2, 2, 4, 0)
	p.AddObject(KindMezzanine, 3, 3, 0.5, 5)

	if got := p.TallestPoint(); got != 5.5 {
		t.Errorf("TallestPoint failed: expected 5.5, got %v", got)
	}
}

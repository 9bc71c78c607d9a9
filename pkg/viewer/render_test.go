package viewer

import (
	"bytes"
	"testing"

	"github.com/planfab/goplan/pkg/plan"
)

func testProject() *plan.Project {
	p := plan.NewProject("Render Test", plan.DomainIndustrial)
	p.Site = plan.Site{Width: 30, Length: 50, CeilingHeight: 8}
	p.Lighting = plan.LightingConfig{
		Active:             true,
		Orientation:        plan.OrientationLongitudinal,
		Mode:               plan.ModeQuantity,
		Value:              3,
		Offset:             2,
		FixturesPerProfile: 4,
	}
	p.AddObject(plan.KindRack, 2.7, 12, 6, 0)
	p.AddObject(plan.KindMezzanine, 8, 8, 0.4, 3.5)
	p.AddObject(plan.KindPost, 1, 1, 4, 0)
	return p
}

func TestRender2DIdempotent(t *testing.T) {
	p := testProject()
	scene := Scene{Project: p, View: ViewTransform{Scale: 1.5, PanX: 20, PanY: -10}}

	first := Render2D(scene, 640, 480)
	second := Render2D(scene, 640, 480)
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("rendering the same 2D scene twice produced different pixels")
	}
}

func TestRender3DIdempotent(t *testing.T) {
	p := testProject()
	scene := Scene{Project: p, View: NewViewTransform()}

	first := Render3D(scene, 640, 480)
	second := Render3D(scene, 640, 480)
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("rendering the same 3D scene twice produced different pixels")
	}
}

func TestDegenerateSiteRendersPlaceholderOnly(t *testing.T) {
	// A project with objects and lighting but no site dimensions must
	// render exactly like an empty undefined project: the placeholder
	// path only, no geometry.
	full := testProject()
	full.Site = plan.Site{}

	empty := plan.NewProject("Render Test", plan.DomainIndustrial)

	full2D := Render2D(Scene{Project: full, View: NewViewTransform()}, 640, 480)
	empty2D := Render2D(Scene{Project: empty, View: NewViewTransform()}, 640, 480)
	if !bytes.Equal(full2D.Pix, empty2D.Pix) {
		t.Error("2D: degenerate site must skip all object and lighting geometry")
	}

	full3D := Render3D(Scene{Project: full, View: NewViewTransform()}, 640, 480)
	empty3D := Render3D(Scene{Project: empty, View: NewViewTransform()}, 640, 480)
	if !bytes.Equal(full3D.Pix, empty3D.Pix) {
		t.Error("3D: degenerate site must skip all object and lighting geometry")
	}
}

func TestHoverChangesOutput(t *testing.T) {
	p := testProject()
	base := Render2D(Scene{Project: p, View: NewViewTransform()}, 640, 480)
	hovered := Render2D(Scene{Project: p, View: NewViewTransform(), HoverID: p.Objects[0].ID}, 640, 480)
	if bytes.Equal(base.Pix, hovered.Pix) {
		t.Error("hover styling produced no visible difference")
	}
}

func TestDragShowsAnnotations(t *testing.T) {
	p := testProject()
	base := Render2D(Scene{Project: p, View: NewViewTransform()}, 640, 480)
	dragged := Render2D(Scene{Project: p, View: NewViewTransform(), DragID: p.Objects[0].ID}, 640, 480)
	if bytes.Equal(base.Pix, dragged.Pix) {
		t.Error("drag annotations produced no visible difference")
	}
}

func TestSportsDomainDiffersFromIndustrial(t *testing.T) {
	industrial := testProject()
	sports := testProject()
	sports.Domain = plan.DomainSports

	a := Render2D(Scene{Project: industrial, View: NewViewTransform()}, 640, 480)
	b := Render2D(Scene{Project: sports, View: NewViewTransform()}, 640, 480)
	if bytes.Equal(a.Pix, b.Pix) {
		t.Error("domain flag must change floor styling")
	}
}

func TestDrawOrder2DElevationAscending(t *testing.T) {
	objs := []*plan.PlacedObject{
		{ID: "high", Elevation: 3},
		{ID: "ground", Elevation: 0},
		{ID: "mid", Elevation: 1.5},
	}
	ordered := drawOrder2D(objs)
	want := []string{"ground", "mid", "high"}
	for i, id := range want {
		if ordered[i].ID != id {
			t.Fatalf("2D order: expected %v, got %v at %d", want, ordered[i].ID, i)
		}
	}
}

func TestDrawOrder3DDepthKeyAscending(t *testing.T) {
	objs := []*plan.PlacedObject{
		{ID: "near", X: 10, Y: 10},
		{ID: "far", X: 1, Y: 1},
		{ID: "mid", X: 3, Y: 4},
	}
	ordered := drawOrder3D(objs)
	want := []string{"far", "mid", "near"}
	for i, id := range want {
		if ordered[i].ID != id {
			t.Fatalf("3D order: expected %v, got %v at %d", want, ordered[i].ID, i)
		}
	}
}

package viewer

import (
	"image"
	"sort"

	"github.com/planfab/goplan/pkg/plan"
)

// Scene is everything one render call depends on. Rendering the same
// scene twice produces identical pixels.
type Scene struct {
	Project *plan.Project
	View    ViewTransform
	HoverID string // object under the pointer, empty for none
	DragID  string // object being dragged, empty for none
}

// drawOrder2D returns the objects in plan-view paint order: ascending
// elevation so elevated objects draw over floor-standing ones, with
// the shared depth key breaking ties.
func drawOrder2D(objects []*plan.PlacedObject) []*plan.PlacedObject {
	ordered := make([]*plan.PlacedObject, len(objects))
	copy(ordered, objects)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Elevation != ordered[j].Elevation {
			return ordered[i].Elevation < ordered[j].Elevation
		}
		return ordered[i].DepthKey() < ordered[j].DepthKey()
	})
	return ordered
}

// drawOrder3D returns the objects in painter's-algorithm order for the
// isometric view: ascending depth key, so farther and lower objects
// are drawn first.
func drawOrder3D(objects []*plan.PlacedObject) []*plan.PlacedObject {
	ordered := make([]*plan.PlacedObject, len(objects))
	copy(ordered, objects)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DepthKey() < ordered[j].DepthKey()
	})
	return ordered
}

// drawPlaceholder renders the undefined-dimensions message used by
// both views when the site has no usable plan dimensions
func drawPlaceholder(img *image.RGBA, width, height int) {
	fillRect(img, 0, 0, float64(width), float64(height), colorPlaceholderBg)
	drawTextCentered(img, float64(width)/2, float64(height)/2-6, 16, colorTextMuted,
		"Site dimensions not defined")
	drawTextCentered(img, float64(width)/2, float64(height)/2+14, 12, colorTextMuted,
		"Enter width and length to see the plan")
}

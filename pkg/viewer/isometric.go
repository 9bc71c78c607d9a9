package viewer

import (
	"math"

	"github.com/planfab/goplan/pkg/geometry"
	"github.com/planfab/goplan/pkg/plan"
)

// minRenderHeight keeps the 3D view from collapsing flat when a
// project has no ceiling and no tall objects
const minRenderHeight = 5.0

var (
	isoCos = math.Cos(math.Pi / 6)
	isoSin = math.Sin(math.Pi / 6)
)

// IsoProject maps a 3D point in meters onto the unscaled isometric
// plane using a fixed 30 degree basis
func IsoProject(x, y, z float64) geometry.Point2 {
	return geometry.Point2{
		X: (x - y) * isoCos,
		Y: (x+y)*isoSin - z,
	}
}

// RenderHeight returns the vertical extent of the 3D scene: the
// ceiling, the tallest object top, or minRenderHeight, whichever is
// largest
func RenderHeight(p *plan.Project) float64 {
	return math.Max(minRenderHeight, math.Max(p.Site.CeilingHeight, p.TallestPoint()))
}

// IsoProjection fits the projected site volume into a viewport. All
// points of one render share the same fit scale and offset.
type IsoProjection struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// FitIso projects the 8 corners of the site's bounding volume and
// derives the uniform scale and translation that center the projected
// bounding box in the viewport
func FitIso(site plan.Site, height, pixelWidth, pixelHeight, padding float64) IsoProjection {
	w := site.Width
	if w <= 0 {
		w = 1
	}
	l := site.Length
	if l <= 0 {
		l = 1
	}

	bounds := geometry.NewBounds2()
	for _, corner := range []geometry.Vector3{
		{X: 0, Y: 0, Z: 0}, {X: w, Y: 0, Z: 0},
		{X: w, Y: l, Z: 0}, {X: 0, Y: l, Z: 0},
		{X: 0, Y: 0, Z: height}, {X: w, Y: 0, Z: height},
		{X: w, Y: l, Z: height}, {X: 0, Y: l, Z: height},
	} {
		bounds.Extend(IsoProject(corner.X, corner.Y, corner.Z))
	}

	scale := math.Min(
		(pixelWidth-2*padding)/bounds.Width(),
		(pixelHeight-2*padding)/bounds.Height(),
	)
	center := bounds.Center()

	return IsoProjection{
		Scale:   scale,
		OffsetX: pixelWidth/2 - center.X*scale,
		OffsetY: pixelHeight/2 - center.Y*scale,
	}
}

// ToScreen projects a 3D point in meters to viewport pixels
func (p IsoProjection) ToScreen(x, y, z float64) geometry.Point2 {
	pt := IsoProject(x, y, z)
	return geometry.Point2{
		X: pt.X*p.Scale + p.OffsetX,
		Y: pt.Y*p.Scale + p.OffsetY,
	}
}

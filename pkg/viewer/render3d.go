package viewer

import (
	"image"

	"github.com/planfab/goplan/pkg/geometry"
	"github.com/planfab/goplan/pkg/plan"
)

// Render3D produces the fixed-function isometric rendering of a scene.
// There is no depth buffer: occlusion comes entirely from painter's
// order, farther and lower objects first.
func Render3D(scene Scene, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillRect(img, 0, 0, float64(width), float64(height), colorBackground)

	project := scene.Project
	site := project.Site
	if !site.Defined() {
		drawPlaceholder(img, width, height)
		return img
	}

	renderHeight := RenderHeight(project)
	proj := FitIso(site, renderHeight, float64(width), float64(height), DefaultPadding)

	drawFloor3D(img, project, proj)

	for _, obj := range drawOrder3D(project.Objects) {
		drawBox3D(img, obj, proj)
	}

	if project.Domain == plan.DomainIndustrial && site.CeilingHeight > 0 {
		drawCeiling3D(img, site, proj)
	}

	drawFloorLabels(img, site, proj)

	return img
}

func floorCorners(site plan.Site, proj IsoProjection) [4]geometry.Point2 {
	return [4]geometry.Point2{
		proj.ToScreen(0, 0, 0),
		proj.ToScreen(site.Width, 0, 0),
		proj.ToScreen(site.Width, site.Length, 0),
		proj.ToScreen(0, site.Length, 0),
	}
}

func drawFloor3D(img *image.RGBA, project *plan.Project, proj IsoProjection) {
	corners := floorCorners(project.Site, proj)

	floor := colorFloor
	if project.Domain == plan.DomainSports {
		floor = colorFieldGreen
	}
	fillQuad(img, corners[0], corners[1], corners[2], corners[3], floor)
	strokeQuad(img, corners[0], corners[1], corners[2], corners[3], colorWall)
}

// drawBox3D draws one object as an extruded box: ground shadow and
// bottom face when elevated, then the top face, then the two visible
// side faces in distinct shades
func drawBox3D(img *image.RGBA, obj *plan.PlacedObject, proj IsoProjection) {
	style := StyleFor(obj.Kind)
	base := style.Fill
	z0 := obj.Elevation
	z1 := obj.Elevation + obj.Height

	quadAt := func(z float64) [4]geometry.Point2 {
		return [4]geometry.Point2{
			proj.ToScreen(obj.X, obj.Y, z),
			proj.ToScreen(obj.X+obj.Width, obj.Y, z),
			proj.ToScreen(obj.X+obj.Width, obj.Y+obj.Depth, z),
			proj.ToScreen(obj.X, obj.Y+obj.Depth, z),
		}
	}

	if obj.Elevation > 0 {
		shadow := quadAt(0)
		fillQuad(img, shadow[0], shadow[1], shadow[2], shadow[3], colorShadow)

		bottom := quadAt(z0)
		fillQuad(img, bottom[0], bottom[1], bottom[2], bottom[3], shade(base, 0.85))
	}

	top := quadAt(z1)
	fillQuad(img, top[0], top[1], top[2], top[3], base)
	strokeQuad(img, top[0], top[1], top[2], top[3], style.Stroke)

	// Visible side faces in this basis: the south face (y+depth) and
	// the east face (x+width), each a darker shade of the base color.
	south := [4]geometry.Point2{
		proj.ToScreen(obj.X, obj.Y+obj.Depth, z1),
		proj.ToScreen(obj.X+obj.Width, obj.Y+obj.Depth, z1),
		proj.ToScreen(obj.X+obj.Width, obj.Y+obj.Depth, z0),
		proj.ToScreen(obj.X, obj.Y+obj.Depth, z0),
	}
	fillQuad(img, south[0], south[1], south[2], south[3], shade(base, 0.72))
	strokeQuad(img, south[0], south[1], south[2], south[3], style.Stroke)

	east := [4]geometry.Point2{
		proj.ToScreen(obj.X+obj.Width, obj.Y, z1),
		proj.ToScreen(obj.X+obj.Width, obj.Y+obj.Depth, z1),
		proj.ToScreen(obj.X+obj.Width, obj.Y+obj.Depth, z0),
		proj.ToScreen(obj.X+obj.Width, obj.Y, z0),
	}
	fillQuad(img, east[0], east[1], east[2], east[3], shade(base, 0.55))
	strokeQuad(img, east[0], east[1], east[2], east[3], style.Stroke)
}

// drawCeiling3D draws the wireframe ceiling outline with dashed
// corner pillars and the height label
func drawCeiling3D(img *image.RGBA, site plan.Site, proj IsoProjection) {
	h := site.CeilingHeight

	ceiling := [4]geometry.Point2{
		proj.ToScreen(0, 0, h),
		proj.ToScreen(site.Width, 0, h),
		proj.ToScreen(site.Width, site.Length, h),
		proj.ToScreen(0, site.Length, h),
	}
	strokeQuad(img, ceiling[0], ceiling[1], ceiling[2], ceiling[3], colorAccent)

	floor := floorCorners(site, proj)
	for i := range floor {
		drawDashedLineF(img, floor[i].X, floor[i].Y, ceiling[i].X, ceiling[i].Y, 5, colorAccent)
	}

	// Height label beside the front-left pillar.
	label := formatMeters(h)
	mid := geometry.Point2{
		X: (floor[3].X + ceiling[3].X) / 2,
		Y: (floor[3].Y + ceiling[3].Y) / 2,
	}
	drawText(img, mid.X-textWidth(11, label)-6, mid.Y+4, 11, colorAccent, label)
}

// drawFloorLabels annotates the floor's front edges with the site
// width and length
func drawFloorLabels(img *image.RGBA, site plan.Site, proj IsoProjection) {
	// Width along the south edge, length along the east edge.
	widthMid := proj.ToScreen(site.Width/2, site.Length, 0)
	drawTextCentered(img, widthMid.X, widthMid.Y+18, 11, colorText, formatMeters(site.Width))

	lengthMid := proj.ToScreen(site.Width, site.Length/2, 0)
	drawText(img, lengthMid.X+10, lengthMid.Y+14, 11, colorText, formatMeters(site.Length))
}

package viewer

import (
	"fmt"
	"image"

	"github.com/planfab/goplan/pkg/dimension"
	"github.com/planfab/goplan/pkg/lighting"
	"github.com/planfab/goplan/pkg/plan"
)

// gridCoarseThreshold is the final scale in px/m below which the
// industrial floor grid switches from 5 m to 10 m cells
const gridCoarseThreshold = 5.0

// Render2D produces the complete top-down technical drawing of a
// scene into a fresh image of the given pixel size
func Render2D(scene Scene, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillRect(img, 0, 0, float64(width), float64(height), colorBackground)

	project := scene.Project
	if !project.Site.Defined() {
		drawPlaceholder(img, width, height)
		return img
	}

	t := FitSite(project.Site, float64(width), float64(height), DefaultPadding, scene.View)

	drawFloor2D(img, project, t)
	drawWalls2D(img, project.Site, t)
	drawSiteDimensions(img, project.Site, t)

	if project.Domain == plan.DomainIndustrial {
		drawLighting2D(img, project, t)
	}

	for _, obj := range drawOrder2D(project.Objects) {
		drawObject2D(img, obj, t, obj.ID == scene.HoverID, obj.ID == scene.DragID)
	}

	if scene.DragID != "" {
		if dragged := project.Object(scene.DragID); dragged != nil {
			drawDragAnnotations(img, project, dragged, t)
		}
	}

	return img
}

func drawFloor2D(img *image.RGBA, project *plan.Project, t PlanTransform) {
	site := project.Site
	x0, y0 := t.ToPixels(0, 0)
	w := site.Width * t.Scale
	l := site.Length * t.Scale

	if project.Domain == plan.DomainSports {
		fillRect(img, x0, y0, w, l, colorFieldGreen)
		drawFieldMarkings(img, site, t)
		return
	}

	fillRect(img, x0, y0, w, l, colorFloor)

	// Light reference grid, coarser when zoomed out.
	cell := 5.0
	if t.Scale < gridCoarseThreshold {
		cell = 10.0
	}
	for gx := cell; gx < site.Width; gx += cell {
		px, _ := t.ToPixels(gx, 0)
		drawLineF(img, px, y0, px, y0+l, colorGrid)
	}
	for gy := cell; gy < site.Length; gy += cell {
		_, py := t.ToPixels(0, gy)
		drawLineF(img, x0, py, x0+w, py, colorGrid)
	}
}

func drawFieldMarkings(img *image.RGBA, site plan.Site, t PlanTransform) {
	x0, y0 := t.ToPixels(0, 0)
	w := site.Width * t.Scale
	l := site.Length * t.Scale

	// Boundary just inside the walls.
	inset := 0.5 * t.Scale
	strokeRect(img, x0+inset, y0+inset, w-2*inset, l-2*inset, 2, colorFieldLine)

	// Centerline across the shorter axis and the center circle.
	cx, cy := t.ToPixels(site.Width/2, site.Length/2)
	if site.Width >= site.Length {
		drawLineF(img, cx, y0+inset, cx, y0+l-inset, colorFieldLine)
	} else {
		drawLineF(img, x0+inset, cy, x0+w-inset, cy, colorFieldLine)
	}

	radius := 9.15
	if limit := min(site.Width, site.Length) / 4; radius > limit {
		radius = limit
	}
	strokeCircle(img, cx, cy, radius*t.Scale, colorFieldLine)
}

func drawWalls2D(img *image.RGBA, site plan.Site, t PlanTransform) {
	x0, y0 := t.ToPixels(0, 0)
	strokeRect(img, x0, y0, site.Width*t.Scale, site.Length*t.Scale, 3, colorWall)
}

// drawSiteDimensions draws the global width/length annotations along
// the two outer edges
func drawSiteDimensions(img *image.RGBA, site plan.Site, t PlanTransform) {
	x0, y0 := t.ToPixels(0, 0)
	x1, y1 := t.ToPixels(site.Width, site.Length)

	const offset = 18.0
	const tick = 4.0

	// Width along the top edge.
	yLine := y0 - offset
	drawLineF(img, x0, yLine, x1, yLine, colorDimension)
	drawLineF(img, x0, yLine-tick, x0, yLine+tick, colorDimension)
	drawLineF(img, x1, yLine-tick, x1, yLine+tick, colorDimension)
	drawTextCentered(img, (x0+x1)/2, yLine-5, 12, colorDimension, formatMeters(site.Width))

	// Length along the left edge.
	xLine := x0 - offset
	drawLineF(img, xLine, y0, xLine, y1, colorDimension)
	drawLineF(img, xLine-tick, y0, xLine+tick, y0, colorDimension)
	drawLineF(img, xLine-tick, y1, xLine+tick, y1, colorDimension)
	drawText(img, xLine-tick-textWidth(12, formatMeters(site.Length)), (y0+y1)/2+4, 12, colorDimension, formatMeters(site.Length))
}

func drawLighting2D(img *image.RGBA, project *plan.Project, t PlanTransform) {
	profiles := lighting.Layout(project.Lighting, project.Site)
	longitudinal := project.Lighting.Orientation == plan.OrientationLongitudinal

	for _, profile := range profiles {
		var x1, y1, x2, y2 float64
		if longitudinal {
			x1, y1 = t.ToPixels(profile.Position, 0)
			x2, y2 = t.ToPixels(profile.Position, profile.Length)
		} else {
			x1, y1 = t.ToPixels(0, profile.Position)
			x2, y2 = t.ToPixels(profile.Length, profile.Position)
		}
		drawDashedLineF(img, x1, y1, x2, y2, 6, colorLightProfile)

		for _, along := range profile.Fixtures {
			var fx, fy float64
			if longitudinal {
				fx, fy = t.ToPixels(profile.Position, along)
			} else {
				fx, fy = t.ToPixels(along, profile.Position)
			}
			// Glow halo behind the fixture dot.
			fillCircle(img, fx, fy, 5, colorLightGlow)
			fillCircle(img, fx, fy, 2.5, colorLightProfile)
		}
	}
}

func drawObject2D(img *image.RGBA, obj *plan.PlacedObject, t PlanTransform, hovered, dragged bool) {
	style := StyleFor(obj.Kind)

	fill := style.Fill
	if hovered && !dragged {
		fill = lighten(fill, 0.35)
	}
	stroke := style.Stroke
	strokeThickness := 1
	if dragged {
		stroke = colorAccent
		strokeThickness = 2
	}

	px, py := t.ToPixels(obj.X, obj.Y)
	pw := obj.Width * t.Scale
	pd := obj.Depth * t.Scale

	if style.Shape == ShapeCircle {
		cx := px + pw/2
		cy := py + pd/2
		radius := min(pw, pd) / 2
		fillCircle(img, cx, cy, radius, fill)
		strokeCircle(img, cx, cy, radius, stroke)
		if dragged {
			strokeCircle(img, cx, cy, radius+1, stroke)
		}
	} else {
		fillRect(img, px, py, pw, pd, fill)
		strokeRect(img, px, py, pw, pd, strokeThickness, stroke)
	}

	// Centered label and a secondary line with the vertical extent.
	cx := px + pw/2
	cy := py + pd/2
	drawTextCentered(img, cx, cy-2, 11, colorText, obj.Label)

	secondary := fmt.Sprintf("h %s", formatMeters(obj.Height))
	if obj.Elevation > 0 {
		secondary = fmt.Sprintf("+%s", formatMeters(obj.Elevation))
	}
	drawTextCentered(img, cx, cy+11, 10, colorTextMuted, secondary)
}

// drawDragAnnotations draws wall-distance dimensions and
// nearest-neighbor gap dimensions for the dragged object
func drawDragAnnotations(img *image.RGBA, project *plan.Project, obj *plan.PlacedObject, t PlanTransform) {
	site := project.Site
	cy := obj.Y + obj.Depth/2
	cx := obj.X + obj.Width/2

	walls := dimension.Walls(obj, site)

	// Horizontal wall clearance at the object's vertical midpoint.
	if walls.FromLeft {
		drawDimension(img, t, 0, cy, obj.X, cy, walls.DistX)
		guideX, guideY := t.ToPixels(0, cy)
		drawDashedLineF(img, guideX, guideY, guideX, t.OriginY, 4, colorTextMuted)
	} else {
		drawDimension(img, t, obj.X+obj.Width, cy, site.Width, cy, walls.DistX)
		guideX, guideY := t.ToPixels(site.Width, cy)
		drawDashedLineF(img, guideX, guideY, guideX, t.OriginY, 4, colorTextMuted)
	}

	// Vertical wall clearance at the object's horizontal midpoint.
	if walls.FromTop {
		drawDimension(img, t, cx, 0, cx, obj.Y, walls.DistY)
		guideX, guideY := t.ToPixels(cx, 0)
		drawDashedLineF(img, guideX, guideY, t.OriginX, guideY, 4, colorTextMuted)
	} else {
		drawDimension(img, t, cx, obj.Y+obj.Depth, cx, site.Length, walls.DistY)
		guideX, guideY := t.ToPixels(cx, site.Length)
		drawDashedLineF(img, guideX, guideY, t.OriginX, guideY, 4, colorTextMuted)
	}

	// Edge-to-edge gaps to the nearest aligned neighbor per side.
	for _, gap := range dimension.NeighborGaps(obj, project.Objects) {
		switch gap.Side {
		case dimension.SideLeft:
			drawDimension(img, t, obj.X-gap.Distance, gap.Anchor, obj.X, gap.Anchor, gap.Distance)
		case dimension.SideRight:
			drawDimension(img, t, obj.X+obj.Width, gap.Anchor, obj.X+obj.Width+gap.Distance, gap.Anchor, gap.Distance)
		case dimension.SideTop:
			drawDimension(img, t, gap.Anchor, obj.Y-gap.Distance, gap.Anchor, obj.Y, gap.Distance)
		case dimension.SideBottom:
			drawDimension(img, t, gap.Anchor, obj.Y+obj.Depth, gap.Anchor, obj.Y+obj.Depth+gap.Distance, gap.Distance)
		}
	}
}

// drawDimension draws one dimension line between two points in meters
// with end ticks and a centered distance label
func drawDimension(img *image.RGBA, t PlanTransform, mx1, my1, mx2, my2, value float64) {
	x1, y1 := t.ToPixels(mx1, my1)
	x2, y2 := t.ToPixels(mx2, my2)

	drawLineF(img, x1, y1, x2, y2, colorDimension)

	const tick = 4.0
	if y1 == y2 {
		// Horizontal dimension: vertical end ticks, label above.
		drawLineF(img, x1, y1-tick, x1, y1+tick, colorDimension)
		drawLineF(img, x2, y2-tick, x2, y2+tick, colorDimension)
		drawTextCentered(img, (x1+x2)/2, y1-4, 10, colorDimension, formatMeters(value))
	} else {
		drawLineF(img, x1-tick, y1, x1+tick, y1, colorDimension)
		drawLineF(img, x2-tick, y2, x2+tick, y2, colorDimension)
		drawText(img, (x1+x2)/2+tick+1, (y1+y2)/2+3, 10, colorDimension, formatMeters(value))
	}
}

func formatMeters(v float64) string {
	return fmt.Sprintf("%.2f m", v)
}

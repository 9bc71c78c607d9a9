package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/planfab/goplan/pkg/plan"
)

// ViewMode selects which renderer the viewer draws with
type ViewMode int

const (
	Mode2D ViewMode = iota
	Mode3D
)

const zoomStep = 1.1

// dragSession tracks one active object drag: the object and the
// offset in meters between the pointer and the object origin when the
// drag started. It exists only between mouse-down on an object and
// mouse-up (or the pointer leaving the canvas).
type dragSession struct {
	id     string
	grabDX float64
	grabDY float64
}

// PlanViewer is the interactive plan canvas. It renders the project
// through Render2D/Render3D and owns the pointer interaction: object
// hit-testing and drag-to-move, secondary-button panning, and scroll
// zoom. Position changes go through plan.Project.MoveObject and are
// reported via the move callback.
type PlanViewer struct {
	widget.BaseWidget

	project     *plan.Project
	view        ViewTransform
	mode        ViewMode
	interactive bool

	hoverID string
	drag    *dragSession
	panning bool

	onMove func(id string, x, y float64)

	width  float64
	height float64
}

// NewPlanViewer creates a viewer for the given project
func NewPlanViewer(project *plan.Project) *PlanViewer {
	v := &PlanViewer{
		project: project,
		view:    NewViewTransform(),
		mode:    Mode2D,
	}
	v.ExtendBaseWidget(v)
	return v
}

// SetOnMove sets the callback invoked with the snapped, clamped
// position after every drag update
func (v *PlanViewer) SetOnMove(callback func(id string, x, y float64)) {
	v.onMove = callback
}

// SetProject swaps the rendered project and drops any active session
func (v *PlanViewer) SetProject(project *plan.Project) {
	v.project = project
	v.endSessions()
	v.hoverID = ""
	v.Refresh()
}

// SetMode switches between the 2D plan and the 3D isometric view
func (v *PlanViewer) SetMode(mode ViewMode) {
	v.mode = mode
	v.Refresh()
}

// Mode returns the active view mode
func (v *PlanViewer) Mode() ViewMode {
	return v.mode
}

// SetInteractive enables object hit-testing and drag-to-move
func (v *PlanViewer) SetInteractive(interactive bool) {
	v.interactive = interactive
}

// ResetView restores the identity pan/zoom
func (v *PlanViewer) ResetView() {
	v.view = NewViewTransform()
	v.Refresh()
}

// Scene returns the value rendered on the next draw
func (v *PlanViewer) Scene() Scene {
	return Scene{
		Project: v.project,
		View:    v.view,
		HoverID: v.hoverID,
		DragID:  v.dragID(),
	}
}

// Snapshot renders the current project at the given pixel size
// without any interaction state, for export
func (v *PlanViewer) Snapshot(mode ViewMode, width, height int) *image.RGBA {
	scene := Scene{Project: v.project, View: NewViewTransform()}
	if mode == Mode3D {
		return Render3D(scene, width, height)
	}
	return Render2D(scene, width, height)
}

func (v *PlanViewer) dragID() string {
	if v.drag == nil {
		return ""
	}
	return v.drag.id
}

func (v *PlanViewer) transform() PlanTransform {
	return FitSite(v.project.Site, v.width, v.height, DefaultPadding, v.view)
}

// hitTest returns the topmost object under the given pixel, or nil
func (v *PlanViewer) hitTest(px, py float64) *plan.PlacedObject {
	if !v.project.Site.Defined() {
		return nil
	}
	mx, my := v.transform().ToMeters(px, py)

	// Scan in reverse paint order so the topmost object wins.
	ordered := drawOrder2D(v.project.Objects)
	for i := len(ordered) - 1; i >= 0; i-- {
		if ordered[i].Footprint().Contains(mx, my) {
			return ordered[i]
		}
	}
	return nil
}

func (v *PlanViewer) endSessions() {
	v.drag = nil
	v.panning = false
}

// MouseDown starts a drag session on a hit object, or a pan session
// on the secondary button
func (v *PlanViewer) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button == desktop.MouseButtonSecondary {
		v.panning = true
		return
	}
	if ev.Button != desktop.MouseButtonPrimary || !v.interactive || v.mode != Mode2D {
		return
	}

	hit := v.hitTest(float64(ev.Position.X), float64(ev.Position.Y))
	if hit == nil {
		return
	}
	mx, my := v.transform().ToMeters(float64(ev.Position.X), float64(ev.Position.Y))
	v.drag = &dragSession{
		id:     hit.ID,
		grabDX: mx - hit.X,
		grabDY: my - hit.Y,
	}
	v.Refresh()
}

// MouseUp unconditionally ends any drag or pan session
func (v *PlanViewer) MouseUp(*desktop.MouseEvent) {
	if v.drag != nil || v.panning {
		v.endSessions()
		v.Refresh()
	}
}

// Dragged moves the dragged object or pans the view
func (v *PlanViewer) Dragged(ev *fyne.DragEvent) {
	if v.drag != nil {
		obj := v.project.Object(v.drag.id)
		if obj == nil {
			// Object removed mid-drag: skip the move, drop the session.
			v.drag = nil
			return
		}
		mx, my := v.transform().ToMeters(float64(ev.Position.X), float64(ev.Position.Y))
		if v.project.MoveObject(obj.ID, mx-v.drag.grabDX, my-v.drag.grabDY) && v.onMove != nil {
			v.onMove(obj.ID, obj.X, obj.Y)
		}
		v.Refresh()
		return
	}

	if v.panning {
		v.view.PanX += float64(ev.Dragged.DX)
		v.view.PanY += float64(ev.Dragged.DY)
		v.Refresh()
	}
}

// DragEnd ends any active session
func (v *PlanViewer) DragEnd() {
	if v.drag != nil || v.panning {
		v.endSessions()
		v.Refresh()
	}
}

// Scrolled zooms the view within the allowed range
func (v *PlanViewer) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		v.view.Scale *= zoomStep
	} else if ev.Scrolled.DY < 0 {
		v.view.Scale /= zoomStep
	}
	v.view = v.view.Clamped()
	v.Refresh()
}

// MouseIn implements desktop.Hoverable
func (v *PlanViewer) MouseIn(*desktop.MouseEvent) {}

// MouseMoved updates the hovered object
func (v *PlanViewer) MouseMoved(ev *desktop.MouseEvent) {
	if !v.interactive || v.mode != Mode2D {
		return
	}
	hoverID := ""
	if hit := v.hitTest(float64(ev.Position.X), float64(ev.Position.Y)); hit != nil {
		hoverID = hit.ID
	}
	if hoverID != v.hoverID {
		v.hoverID = hoverID
		v.Refresh()
	}
}

// MouseOut clears hover state and ends any session, like mouse-up
func (v *PlanViewer) MouseOut() {
	v.hoverID = ""
	v.endSessions()
	v.Refresh()
}

// CreateRenderer creates the Fyne renderer for the widget
func (v *PlanViewer) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	img.ScaleMode = canvas.ImageScalePixels
	return &planViewerRenderer{viewer: v, img: img}
}

type planViewerRenderer struct {
	viewer *PlanViewer
	img    *canvas.Image
}

func (r *planViewerRenderer) Layout(size fyne.Size) {
	r.viewer.width = float64(size.Width)
	r.viewer.height = float64(size.Height)
	r.img.Resize(size)
	r.redraw()
}

func (r *planViewerRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

func (r *planViewerRenderer) Refresh() {
	r.redraw()
}

func (r *planViewerRenderer) redraw() {
	w := int(r.viewer.width)
	h := int(r.viewer.height)
	if w <= 0 || h <= 0 {
		return
	}

	scene := r.viewer.Scene()
	if r.viewer.mode == Mode3D {
		r.img.Image = Render3D(scene, w, h)
	} else {
		r.img.Image = Render2D(scene, w, h)
	}
	canvas.Refresh(r.img)
}

func (r *planViewerRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.img}
}

func (r *planViewerRenderer) Destroy() {}

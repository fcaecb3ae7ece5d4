package viewer

import (
	"image/color"
	"log/slog"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/goprim/pkg/analysis"
	"github.com/philipparndt/goprim/pkg/geometry"
	"github.com/philipparndt/goprim/pkg/vertex"
)

// pickRadius is how close, in pixels, a tap must land to select a vertex.
const pickRadius = 20

// MeshView is a fyne widget that shows a vertex buffer as a wireframe or,
// in filled mode, as a shaded software render.
type MeshView struct {
	widget.BaseWidget
	buf            vertex.Buffer
	camera         *Camera
	opts           Options
	filled         bool
	lines          []*canvas.Line
	image          *canvas.Image
	selectedPoints []geometry.Vector3
	pointMarkers   []*canvas.Circle
	dragStart      *fyne.Position
	isDragging     bool
	width          float64
	height         float64
	onPointSelect  func(point geometry.Vector3)
}

// NewMeshView creates a view framed on buf.
func NewMeshView(buf vertex.Buffer) *MeshView {
	opts := DefaultOptions()
	v := &MeshView{
		buf:    buf,
		camera: NewCamera(analysis.Bounds(buf)),
		opts:   opts,
	}
	v.camera.SetAngles(opts.Pitch, opts.Yaw)
	v.ExtendBaseWidget(v)
	return v
}

// SetOnPointSelect sets the callback for when a point is selected
func (v *MeshView) SetOnPointSelect(callback func(point geometry.Vector3)) {
	v.onPointSelect = callback
}

// SetBuffer swaps the displayed mesh, keeping the camera angles and
// dropping the selection.
func (v *MeshView) SetBuffer(buf vertex.Buffer) {
	v.buf = buf
	v.camera.Frame(analysis.Bounds(buf))
	v.selectedPoints = nil
	v.Render(v.width, v.height)
}

// SetFilledMode switches between wireframe and shaded rendering.
func (v *MeshView) SetFilledMode(filled bool) {
	v.filled = filled
	v.Render(v.width, v.height)
}

// CreateRenderer creates the renderer for the widget
func (v *MeshView) CreateRenderer() fyne.WidgetRenderer {
	return &meshViewRenderer{view: v}
}

// Render updates the view for the given size.
func (v *MeshView) Render(width, height float64) {
	v.width = width
	v.height = height
	v.lines = nil
	v.image = nil

	if width < 1 || height < 1 || v.buf.IsEmpty() {
		v.updatePointMarkers()
		v.Refresh()
		return
	}

	if v.filled {
		v.renderFilled()
	} else {
		v.renderWireframe()
	}

	v.updatePointMarkers()
	v.Refresh()
}

func (v *MeshView) renderFilled() {
	opts := v.opts
	opts.Width = int(v.width)
	opts.Height = int(v.height)
	opts.Supersample = 1

	img, err := render(v.buf, v.camera, opts)
	if err != nil {
		slog.Warn("Filled render failed", "error", err)
		v.renderWireframe()
		return
	}

	v.image = canvas.NewImageFromImage(img)
	v.image.FillMode = canvas.ImageFillStretch
	v.image.Resize(fyne.NewSize(float32(v.width), float32(v.height)))
}

func (v *MeshView) renderWireframe() {
	for i := 0; i < v.buf.TriangleCount(); i++ {
		tri := v.buf.Triangle(i)
		for k := 0; k < 3; k++ {
			x1, y1, z1 := v.camera.Project(geometry.FromVec3(tri[k].Position), v.width, v.height)
			x2, y2, z2 := v.camera.Project(geometry.FromVec3(tri[(k+1)%3].Position), v.width, v.height)

			// Nearer edges are brighter
			avgZ := (z1 + z2) / 2
			brightness := uint8(math.Max(60, math.Min(255, 255-avgZ*20)))

			line := canvas.NewLine(color.RGBA{brightness, brightness, brightness, 255})
			line.StrokeWidth = 1
			line.Position1 = fyne.NewPos(float32(x1), float32(y1))
			line.Position2 = fyne.NewPos(float32(x2), float32(y2))

			v.lines = append(v.lines, line)
		}
	}
}

// updatePointMarkers updates the visual markers for selected points
func (v *MeshView) updatePointMarkers() {
	v.pointMarkers = nil

	colors := []color.Color{
		color.RGBA{255, 0, 0, 255},
		color.RGBA{0, 255, 0, 255},
	}

	for i, point := range v.selectedPoints {
		x, y, _ := v.camera.Project(point, v.width, v.height)

		marker := canvas.NewCircle(colors[i%len(colors)])
		marker.StrokeColor = color.White
		marker.StrokeWidth = 2
		size := float32(10)
		marker.Resize(fyne.NewSize(size, size))
		marker.Move(fyne.NewPos(float32(x)-size/2, float32(y)-size/2))

		v.pointMarkers = append(v.pointMarkers, marker)
	}
}

// Dragged rotates the camera.
func (v *MeshView) Dragged(event *fyne.DragEvent) {
	if v.dragStart != nil {
		deltaX := event.Position.X - v.dragStart.X
		deltaY := event.Position.Y - v.dragStart.Y

		v.camera.Rotate(float64(deltaY)*0.01, float64(-deltaX)*0.01)
		v.Render(v.width, v.height)
	}
	v.dragStart = &event.Position
	v.isDragging = true
}

// DragEnd handles the end of a drag event
func (v *MeshView) DragEnd() {
	v.dragStart = nil
	v.isDragging = false
}

// Tapped selects the vertex nearest to the tap.
func (v *MeshView) Tapped(event *fyne.PointEvent) {
	if v.isDragging {
		return
	}

	point, dist := nearestVertex(v.camera, v.buf, float64(event.Position.X), float64(event.Position.Y), v.width, v.height)
	if dist < pickRadius {
		v.addSelectedPoint(point)
	}
}

// nearestVertex finds the position in buf that projects closest to the
// screen coordinates. The distance is +Inf when nothing is in front of
// the camera.
func nearestVertex(camera *Camera, buf vertex.Buffer, screenX, screenY, width, height float64) (geometry.Vector3, float64) {
	var nearest geometry.Vector3
	minDist := math.Inf(1)

	seen := make(map[geometry.Vector3]bool)
	for _, r := range buf.Records() {
		p := geometry.FromVec3(r.Position)
		if seen[p] {
			continue
		}
		seen[p] = true

		x, y, z := camera.Project(p, width, height)
		if z <= 0.01 {
			continue
		}
		if dist := math.Hypot(x-screenX, y-screenY); dist < minDist {
			minDist = dist
			nearest = p
		}
	}

	return nearest, minDist
}

// addSelectedPoint keeps the last two selected points.
func (v *MeshView) addSelectedPoint(point geometry.Vector3) {
	v.selectedPoints = append(v.selectedPoints, point)
	if len(v.selectedPoints) > 2 {
		v.selectedPoints = v.selectedPoints[len(v.selectedPoints)-2:]
	}

	v.updatePointMarkers()
	v.Refresh()

	if v.onPointSelect != nil {
		v.onPointSelect(point)
	}
}

// SelectedPoints returns the currently selected points
func (v *MeshView) SelectedPoints() []geometry.Vector3 {
	return v.selectedPoints
}

// ClearSelection clears all selected points
func (v *MeshView) ClearSelection() {
	v.selectedPoints = nil
	v.pointMarkers = nil
	v.Refresh()
}

// Scrolled zooms the camera.
func (v *MeshView) Scrolled(event *fyne.ScrollEvent) {
	v.camera.Zoom(-float64(event.Scrolled.DY) * 0.001)
	v.Render(v.width, v.height)
}

type meshViewRenderer struct {
	view    *MeshView
	objects []fyne.CanvasObject
}

func (m *meshViewRenderer) Layout(size fyne.Size) {
	if float64(size.Width) == m.view.width && float64(size.Height) == m.view.height {
		return
	}
	m.view.Render(float64(size.Width), float64(size.Height))
}

func (m *meshViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (m *meshViewRenderer) Refresh() {
	m.objects = m.objects[:0]

	if m.view.image != nil {
		m.objects = append(m.objects, m.view.image)
	}
	for _, line := range m.view.lines {
		m.objects = append(m.objects, line)
	}
	for _, marker := range m.view.pointMarkers {
		m.objects = append(m.objects, marker)
	}

	canvas.Refresh(m.view)
}

func (m *meshViewRenderer) Objects() []fyne.CanvasObject {
	return m.objects
}

func (m *meshViewRenderer) Destroy() {}

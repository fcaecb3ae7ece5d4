package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/goprim/internal/logging"
	"github.com/philipparndt/goprim/internal/source"
	"github.com/philipparndt/goprim/pkg/analysis"
	"github.com/philipparndt/goprim/pkg/geometry"
	"github.com/philipparndt/goprim/pkg/shape"
	"github.com/philipparndt/goprim/pkg/viewer"
	"github.com/philipparndt/goprim/pkg/watcher"
)

type App struct {
	window          fyne.Window
	src             *source.Source
	view            *viewer.MeshView
	shapeInfoLabel  *widget.Label
	measurementInfo *MeasurementInfo
	stopWatch       context.CancelFunc
}

type MeasurementInfo struct {
	point1Label    *widget.Label
	point2Label    *widget.Label
	distanceXLabel *widget.Label
	distanceYLabel *widget.Label
	distanceZLabel *widget.Label
	totalDistLabel *widget.Label
}

func main() {
	logging.Setup(false)

	a := app.New()
	w := a.NewWindow("goprim - Primitive Inspector")

	appInstance := &App{window: w}
	appInstance.setupMainUI()

	arg := string(shape.KindCube)
	if len(os.Args) > 1 {
		arg = os.Args[1]
	}
	appInstance.load(arg)

	w.SetOnClosed(appInstance.stopWatching)
	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) showFileDialog() {
	open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.load(reader.URI().Path())
	}, a.window)
	open.SetFilter(storage.NewExtensionFileFilter([]string{".yaml", ".yml"}))
	open.Show()
}

// load replaces the displayed source and, for scene files, starts
// watching the file.
func (a *App) load(arg string) {
	src, err := source.Load(arg)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load %s: %w", arg, err), a.window)
		return
	}
	a.show(src)

	a.stopWatching()
	if src.Watchable() {
		ctx, cancel := context.WithCancel(context.Background())
		a.stopWatch = cancel
		go func() {
			err := watcher.WatchScene(ctx, src.Path, watcher.DefaultDebounce, func(b watcher.SceneBuild) {
				fyne.Do(func() { a.applyBuild(b) })
			})
			if err != nil {
				slog.Error("Watching stopped", "path", src.Path, "error", err)
			}
		}()
	}
}

func (a *App) stopWatching() {
	if a.stopWatch != nil {
		a.stopWatch()
		a.stopWatch = nil
	}
}

func (a *App) applyBuild(b watcher.SceneBuild) {
	if b.Err != nil {
		a.shapeInfoLabel.SetText(fmt.Sprintf("Reload failed:\n%v", b.Err))
		return
	}
	name := b.Scene.Name
	if name == "" {
		name = a.src.Name
	}
	a.show(&source.Source{Name: name, Path: b.Path, Shapes: b.Shapes, Buffer: b.Buffer})
}

func (a *App) show(src *source.Source) {
	a.src = src
	a.view.SetBuffer(src.Buffer)
	a.window.SetTitle("goprim - " + src.Name)

	var info strings.Builder
	fmt.Fprintf(&info, "Source: %s\nShapes: %d\nTriangles: %d\n\n", src.Name, len(src.Shapes), src.Buffer.TriangleCount())
	for _, r := range src.Shapes {
		analysis.Summarize(r).Print(&info)
	}
	a.shapeInfoLabel.SetText(info.String())
	a.updateMeasurements()
}

func (a *App) setupMainUI() {
	a.measurementInfo = &MeasurementInfo{
		point1Label:    widget.NewLabel("Point 1: Not selected"),
		point2Label:    widget.NewLabel("Point 2: Not selected"),
		distanceXLabel: widget.NewLabel("Distance X: -"),
		distanceYLabel: widget.NewLabel("Distance Y: -"),
		distanceZLabel: widget.NewLabel("Distance Z: -"),
		totalDistLabel: widget.NewLabel("Total Distance: -"),
	}
	a.measurementInfo.totalDistLabel.TextStyle = fyne.TextStyle{Bold: true}
	a.shapeInfoLabel = widget.NewLabel("")

	a.view = viewer.NewMeshView(shape.NewCube(shape.DefaultCubeParams()).Vertices())
	a.view.SetOnPointSelect(func(point geometry.Vector3) {
		a.updateMeasurements()
	})

	kinds := make([]string, 0, len(shape.Kinds()))
	for _, k := range shape.Kinds() {
		kinds = append(kinds, string(k))
	}
	shapeSelect := widget.NewSelect(kinds, func(kind string) {
		a.load(kind)
	})
	shapeSelect.PlaceHolder = "Primitive"

	openButton := widget.NewButton("Open Scene", func() {
		a.showFileDialog()
	})

	clearButton := widget.NewButton("Clear Selection", func() {
		a.view.ClearSelection()
		a.updateMeasurements()
	})

	filledModeCheck := widget.NewCheck("Show Filled", func(checked bool) {
		a.view.SetFilledMode(checked)
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Click on vertices to select points\n" +
			"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out\n" +
			"• Scene files reload when saved",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Primitive:"),
		shapeSelect,
		openButton,
		widget.NewSeparator(),
		a.shapeInfoLabel,
		widget.NewSeparator(),
		widget.NewLabel("Measurements:"),
		a.measurementInfo.point1Label,
		a.measurementInfo.point2Label,
		a.measurementInfo.distanceXLabel,
		a.measurementInfo.distanceYLabel,
		a.measurementInfo.distanceZLabel,
		a.measurementInfo.totalDistLabel,
		clearButton,
		widget.NewSeparator(),
		widget.NewLabel("Display Options:"),
		filledModeCheck,
		widget.NewSeparator(),
		instructions,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(320, 0))

	a.window.SetContent(container.NewBorder(nil, nil, nil, infoScroll, a.view))
}

func (a *App) updateMeasurements() {
	m := a.measurementInfo
	points := a.view.SelectedPoints()

	if len(points) == 0 {
		m.point1Label.SetText("Point 1: Not selected")
	} else {
		p1 := points[0]
		m.point1Label.SetText(fmt.Sprintf("Point 1: (%.3f, %.3f, %.3f)", p1.X, p1.Y, p1.Z))
	}

	if len(points) < 2 {
		m.point2Label.SetText("Point 2: Click to select")
		m.distanceXLabel.SetText("Distance X: -")
		m.distanceYLabel.SetText("Distance Y: -")
		m.distanceZLabel.SetText("Distance Z: -")
		m.totalDistLabel.SetText("Total Distance: -")
		return
	}

	p1, p2 := points[0], points[1]
	m.point2Label.SetText(fmt.Sprintf("Point 2: (%.3f, %.3f, %.3f)", p2.X, p2.Y, p2.Z))
	m.distanceXLabel.SetText(fmt.Sprintf("Distance X: %.6f units", math.Abs(p2.X-p1.X)))
	m.distanceYLabel.SetText(fmt.Sprintf("Distance Y: %.6f units", math.Abs(p2.Y-p1.Y)))
	m.distanceZLabel.SetText(fmt.Sprintf("Distance Z: %.6f units", math.Abs(p2.Z-p1.Z)))
	m.totalDistLabel.SetText(fmt.Sprintf("Total Distance: %.6f units", p1.Distance(p2)))
}

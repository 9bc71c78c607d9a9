package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/planfab/goplan/pkg/analysis"
	"github.com/planfab/goplan/pkg/plan"
	"github.com/planfab/goplan/pkg/report"
	"github.com/planfab/goplan/pkg/viewer"
)

// App holds the GUI state
type App struct {
	window  fyne.Window
	project *plan.Project
	viewer  *viewer.PlanViewer

	summaryLabel *widget.Label
	statusLabel  *widget.Label
}

func main() {
	a := app.New()
	w := a.NewWindow("GoPlan - Layout Planner")

	appInstance := &App{window: w}

	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(1280, 840))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to GoPlan")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Start a new layout or open an existing project file")

	newIndustrialButton := widget.NewButton("New Warehouse Layout", func() {
		a.project = plan.NewProject("New Warehouse", plan.DomainIndustrial)
		a.setupMainUI()
	})
	newSportsButton := widget.NewButton("New Sports Facility", func() {
		a.project = plan.NewProject("New Facility", plan.DomainSports)
		a.setupMainUI()
	})
	openButton := widget.NewButton("Open Project File", func() {
		a.showOpenDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(newIndustrialButton),
		container.NewCenter(newSportsButton),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showOpenDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	project, err := plan.Load(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load project: %w", err), a.window)
		if a.project == nil {
			a.showWelcomeScreen()
		}
		return
	}

	a.project = project
	a.setupMainUI()
}

func (a *App) setupMainUI() {
	a.viewer = viewer.NewPlanViewer(a.project)
	a.viewer.SetInteractive(true)
	a.summaryLabel = widget.NewLabel("")
	a.statusLabel = widget.NewLabel("")

	a.viewer.SetOnMove(func(id string, x, y float64) {
		if obj := a.project.Object(id); obj != nil {
			a.statusLabel.SetText(fmt.Sprintf("%s moved to (%.2f m, %.2f m)", obj.Label, x, y))
		}
	})

	viewToggle := widget.NewSelect([]string{"2D plan", "3D perspective"}, func(choice string) {
		if strings.HasPrefix(choice, "3D") {
			a.viewer.SetMode(viewer.Mode3D)
		} else {
			a.viewer.SetMode(viewer.Mode2D)
		}
	})
	viewToggle.SetSelected("2D plan")

	resetButton := widget.NewButton("Reset View", func() {
		a.viewer.ResetView()
	})
	exportButton := widget.NewButton("Download Image", func() {
		a.showExportDialog()
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag objects to reposition them\n" +
			"• Right-drag to pan the view\n" +
			"• Scroll to zoom in/out\n" +
			"• Distances appear while dragging",
	)
	instructions.Wrapping = fyne.TextWrapWord

	sidePanel := container.NewVBox(
		widget.NewLabel("Project:"),
		widget.NewSeparator(),
		a.buildProjectForm(),
		widget.NewSeparator(),
		widget.NewLabel("Summary:"),
		a.summaryLabel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		viewToggle,
		resetButton,
		exportButton,
		a.statusLabel,
	)

	sideScroll := container.NewVScroll(sidePanel)
	sideScroll.SetMinSize(fyne.NewSize(320, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		sideScroll, // right
		a.viewer,   // center
	)

	a.window.SetContent(content)
	a.refreshSummary()
}

func (a *App) refreshSummary() {
	s := analysis.AnalyzeProject(a.project)
	text := fmt.Sprintf(
		"Site: %s × %s\nObjects: %d\nOccupied: %s (%.1f %%)",
		analysis.FormatMeters(a.project.Site.Width),
		analysis.FormatMeters(a.project.Site.Length),
		s.ObjectCount,
		analysis.FormatArea(s.FootprintArea),
		s.UtilizationPct,
	)
	if a.project.Lighting.Active {
		text += fmt.Sprintf("\nProfiles: %d, luminaires: %d", s.ProfileCount, s.FixtureCount)
	}
	a.summaryLabel.SetText(text)
	a.viewer.Refresh()
}

func (a *App) showExportDialog() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		img := report.Compose(a.project, report.Options{
			Date: time.Now().Format("2006-01-02"),
		})

		format := strings.TrimPrefix(strings.ToLower(writer.URI().Extension()), ".")
		if err := report.Encode(writer, img, format); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.statusLabel.SetText("Report exported")
	}, a.window)
}

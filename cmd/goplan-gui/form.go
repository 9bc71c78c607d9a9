package main

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/planfab/goplan/pkg/plan"
)

// parseMeasure reads a numeric entry tolerant of a decimal comma.
// An empty entry means zero.
func parseMeasure(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func measureEntry(value float64) *widget.Entry {
	entry := widget.NewEntry()
	if value != 0 {
		entry.SetText(strconv.FormatFloat(value, 'f', -1, 64))
	}
	return entry
}

func (a *App) buildProjectForm() fyne.CanvasObject {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(a.project.Name)
	nameEntry.OnChanged = func(s string) {
		a.project.Name = s
	}

	widthEntry := measureEntry(a.project.Site.Width)
	lengthEntry := measureEntry(a.project.Site.Length)
	ceilingEntry := measureEntry(a.project.Site.CeilingHeight)

	applySite := func(string) {
		w, errW := parseMeasure(widthEntry.Text)
		l, errL := parseMeasure(lengthEntry.Text)
		c, errC := parseMeasure(ceilingEntry.Text)
		if errW != nil || errL != nil || errC != nil {
			return
		}
		a.project.Site = plan.Site{Width: w, Length: l, CeilingHeight: c}
		a.refreshSummary()
	}
	widthEntry.OnChanged = applySite
	lengthEntry.OnChanged = applySite
	ceilingEntry.OnChanged = applySite

	domainSelect := widget.NewSelect([]string{"Warehouse", "Sports facility"}, func(choice string) {
		if choice == "Sports facility" {
			a.project.Domain = plan.DomainSports
		} else {
			a.project.Domain = plan.DomainIndustrial
		}
		a.refreshSummary()
	})
	if a.project.Domain == plan.DomainSports {
		domainSelect.SetSelected("Sports facility")
	} else {
		domainSelect.SetSelected("Warehouse")
	}

	observationsEntry := widget.NewMultiLineEntry()
	observationsEntry.SetPlaceHolder("Observations for the report...")
	observationsEntry.SetText(a.project.Observations)
	observationsEntry.OnChanged = func(s string) {
		a.project.Observations = s
	}

	return container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Width (m)", widthEntry),
			widget.NewFormItem("Length (m)", lengthEntry),
			widget.NewFormItem("Ceiling (m)", ceilingEntry),
			widget.NewFormItem("Type", domainSelect),
		),
		widget.NewSeparator(),
		a.buildObjectSection(),
		widget.NewSeparator(),
		a.buildLightingSection(),
		widget.NewSeparator(),
		widget.NewLabel("Observations:"),
		observationsEntry,
	)
}

func (a *App) buildObjectSection() fyne.CanvasObject {
	widthEntry := measureEntry(2.7)
	depthEntry := measureEntry(1.1)
	heightEntry := measureEntry(6)
	elevationEntry := measureEntry(0)

	kindSelect := widget.NewSelect([]string{
		plan.KindRack.DisplayName(),
		plan.KindMezzanine.DisplayName(),
		plan.KindCovering.DisplayName(),
		plan.KindPost.DisplayName(),
	}, nil)
	kindSelect.SetSelected(plan.KindRack.DisplayName())

	kinds := map[string]plan.ObjectKind{
		plan.KindRack.DisplayName():      plan.KindRack,
		plan.KindMezzanine.DisplayName(): plan.KindMezzanine,
		plan.KindCovering.DisplayName():  plan.KindCovering,
		plan.KindPost.DisplayName():      plan.KindPost,
	}

	addButton := widget.NewButton("Add Object", func() {
		w, errW := parseMeasure(widthEntry.Text)
		d, errD := parseMeasure(depthEntry.Text)
		h, errH := parseMeasure(heightEntry.Text)
		e, errE := parseMeasure(elevationEntry.Text)
		if errW != nil || errD != nil || errH != nil || errE != nil {
			a.statusLabel.SetText("Invalid object dimensions")
			return
		}
		obj := a.project.AddObject(kinds[kindSelect.Selected], w, d, h, e)
		if obj == nil {
			a.statusLabel.SetText("Object needs a positive width and depth")
			return
		}
		a.statusLabel.SetText(fmt.Sprintf("Added %s", obj.Label))
		a.refreshSummary()
	})

	removeButton := widget.NewButton("Remove Last", func() {
		if len(a.project.Objects) == 0 {
			return
		}
		last := a.project.Objects[len(a.project.Objects)-1]
		a.project.RemoveObject(last.ID)
		a.statusLabel.SetText(fmt.Sprintf("Removed %s", last.Label))
		a.refreshSummary()
	})

	return container.NewVBox(
		widget.NewLabel("Objects:"),
		widget.NewForm(
			widget.NewFormItem("Kind", kindSelect),
			widget.NewFormItem("Width (m)", widthEntry),
			widget.NewFormItem("Depth (m)", depthEntry),
			widget.NewFormItem("Height (m)", heightEntry),
			widget.NewFormItem("Elevation (m)", elevationEntry),
		),
		container.NewGridWithColumns(2, addButton, removeButton),
	)
}

func (a *App) buildLightingSection() fyne.CanvasObject {
	valueEntry := measureEntry(a.project.Lighting.Value)
	offsetEntry := measureEntry(a.project.Lighting.Offset)
	fixturesEntry := widget.NewEntry()
	if a.project.Lighting.FixturesPerProfile != 0 {
		fixturesEntry.SetText(strconv.Itoa(a.project.Lighting.FixturesPerProfile))
	}

	orientationSelect := widget.NewSelect([]string{"Longitudinal", "Transversal"}, nil)
	modeSelect := widget.NewSelect([]string{"Quantity", "Distance"}, nil)
	if a.project.Lighting.Orientation == plan.OrientationTransversal {
		orientationSelect.SetSelected("Transversal")
	} else {
		orientationSelect.SetSelected("Longitudinal")
	}
	if a.project.Lighting.Mode == plan.ModeDistance {
		modeSelect.SetSelected("Distance")
	} else {
		modeSelect.SetSelected("Quantity")
	}

	apply := func() {
		value, errV := parseMeasure(valueEntry.Text)
		offset, errO := parseMeasure(offsetEntry.Text)
		fixtures := 0
		if s := strings.TrimSpace(fixturesEntry.Text); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return
			}
			fixtures = n
		}
		if errV != nil || errO != nil {
			return
		}

		orientation := plan.OrientationLongitudinal
		if orientationSelect.Selected == "Transversal" {
			orientation = plan.OrientationTransversal
		}
		mode := plan.ModeQuantity
		if modeSelect.Selected == "Distance" {
			mode = plan.ModeDistance
		}

		a.project.Lighting = plan.LightingConfig{
			Active:             a.project.Lighting.Active,
			Orientation:        orientation,
			Mode:               mode,
			Value:              value,
			Offset:             offset,
			FixturesPerProfile: fixtures,
		}
		a.refreshSummary()
	}

	activeCheck := widget.NewCheck("Show lighting layout", func(on bool) {
		a.project.Lighting.Active = on
		apply()
	})
	activeCheck.SetChecked(a.project.Lighting.Active)

	onChanged := func(string) { apply() }
	valueEntry.OnChanged = onChanged
	offsetEntry.OnChanged = onChanged
	fixturesEntry.OnChanged = onChanged
	orientationSelect.OnChanged = onChanged
	modeSelect.OnChanged = onChanged

	return container.NewVBox(
		widget.NewLabel("Lighting:"),
		activeCheck,
		widget.NewForm(
			widget.NewFormItem("Orientation", orientationSelect),
			widget.NewFormItem("Mode", modeSelect),
			widget.NewFormItem("Value", valueEntry),
			widget.NewFormItem("Offset (m)", offsetEntry),
			widget.NewFormItem("Luminaires", fixturesEntry),
		),
	)
}

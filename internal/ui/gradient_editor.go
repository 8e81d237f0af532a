package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PulseBoard/internal/model"
	"github.com/piwi3910/PulseBoard/internal/refresh"
)

// GradientEditor edits the current panel theme's background gradient:
// angle, per-stop colors, and stop positions. Stop rows are rebuilt
// only when the structure or the resolved colors actually change, so a
// theme-wide refresh does not tear widgets out from under the user.
type GradientEditor struct {
	app   *App
	guard refresh.UpdateGuard

	angle      *widget.Slider
	angleLabel *widget.Label
	stopRows   *fyne.Container
	resolved   []model.Color
	gen        int

	root fyne.CanvasObject
}

func NewGradientEditor(a *App) *GradientEditor {
	ge := &GradientEditor{app: a}

	ge.angleLabel = widget.NewLabel("0°")
	ge.angle = widget.NewSlider(0, 360)
	ge.angle.Step = 5
	ge.angle.OnChanged = func(v float64) {
		if ge.guard.Active() {
			return
		}
		g := ge.gradient()
		if g == nil {
			return
		}
		g.Angle = v
		ge.angleLabel.SetText(fmt.Sprintf("%.0f°", v))
		a.styleEdited()
	}

	ge.stopRows = container.NewVBox()

	addBtn := widget.NewButtonWithIcon("Add Stop", theme.ContentAddIcon(), func() {
		g := ge.gradient()
		if g == nil {
			return
		}
		g.AddStop()
		ge.Rebuild()
		a.themeEdited()
	})
	copyBtn := widget.NewButtonWithIcon("Copy", theme.ContentCopyIcon(), func() {
		g := ge.gradient()
		if g == nil {
			return
		}
		a.clipboard.CopyStops(g.Stops)
	})
	pasteBtn := widget.NewButtonWithIcon("Paste", theme.ContentPasteIcon(), func() {
		g := ge.gradient()
		if g == nil {
			return
		}
		stops, ok := a.clipboard.PasteStops()
		if !ok {
			dialog.ShowInformation("Clipboard Empty", "No gradient stops have been copied yet.", a.window)
			return
		}
		a.pushHistory("Paste Gradient Stops")
		g.Stops = stops
		ge.Rebuild()
		a.themeEdited()
	})

	ge.root = container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Angle"), ge.angleLabel, ge.angle),
		ge.stopRows,
		container.NewHBox(addBtn, layout.NewSpacer(), copyBtn, pasteBtn),
	)

	a.bus.Subscribe("gradient_editor", ge.RefreshFromTheme)
	ge.Rebuild()
	return ge
}

func (ge *GradientEditor) Object() fyne.CanvasObject {
	return ge.root
}

func (ge *GradientEditor) gradient() *model.GradientConfig {
	p := ge.app.currentPanel()
	if p == nil {
		return nil
	}
	return &p.Style.Theme.Gradient
}

// RefreshFromTheme re-resolves the stop colors and rebuilds the rows
// only when they differ from what is shown. Called via the refresh bus
// whenever theme colors change elsewhere.
func (ge *GradientEditor) RefreshFromTheme() {
	g := ge.gradient()
	if g == nil {
		return
	}
	cols := resolveStopColors(g.Stops, ge.app.currentTheme())
	if colorsEqual(cols, ge.resolved) {
		return
	}
	ge.Rebuild()
}

// Rebuild regenerates every stop row from the current gradient state.
func (ge *GradientEditor) Rebuild() {
	ge.gen++
	ge.stopRows.RemoveAll()

	g := ge.gradient()
	if g == nil {
		ge.resolved = nil
		ge.stopRows.Refresh()
		return
	}

	pt := ge.app.currentTheme()
	ge.resolved = resolveStopColors(g.Stops, pt)

	ge.guard.Begin()
	ge.angle.SetValue(g.Angle)
	ge.guard.End()
	ge.angleLabel.SetText(fmt.Sprintf("%.0f°", g.Angle))

	for i := range g.Stops {
		ge.stopRows.Add(ge.stopRow(g, i, pt))
	}
	ge.stopRows.Refresh()
}

// stopRow builds the editor row for stop i. Rows go stale after any
// Rebuild; the generation check drops late events from orphaned widgets.
func (ge *GradientEditor) stopRow(g *model.GradientConfig, i int, pt model.PanelTheme) fyne.CanvasObject {
	gen := ge.gen
	a := ge.app

	swatch := newColorSwatch(g.Stops[i].Color.Resolve(pt))

	posLabel := widget.NewLabel(fmt.Sprintf("%3.0f%%", g.Stops[i].Position*100))
	pos := widget.NewSlider(0, 1)
	pos.Step = 0.01
	pos.Value = g.Stops[i].Position
	pos.OnChanged = func(v float64) {
		if ge.guard.Active() || gen != ge.gen {
			return
		}
		idx := g.SetStopPosition(i, v)
		if idx != i {
			ge.Rebuild()
		} else {
			posLabel.SetText(fmt.Sprintf("%3.0f%%", g.Stops[i].Position*100))
		}
		a.styleEdited()
	}
	pos.OnChangeEnded = func(float64) {
		if gen != ge.gen {
			return
		}
		a.themeEdited()
	}

	colorBtn := widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), func() {
		if gen != ge.gen {
			return
		}
		a.showColorSourceDialog("Stop Color", g.Stops[i].Color, func(src model.ColorSource) {
			g.Stops[i].Color = src
			a.themeEdited()
		})
	})

	removeBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		if gen != ge.gen {
			return
		}
		if !g.RemoveStop(i) {
			dialog.ShowInformation("Cannot Remove", "A gradient needs at least two stops.", a.window)
			return
		}
		ge.Rebuild()
		a.themeEdited()
	})
	if len(g.Stops) <= 2 {
		removeBtn.Disable()
	}

	return container.NewBorder(nil, nil,
		container.NewHBox(swatch, colorBtn),
		container.NewHBox(posLabel, removeBtn),
		pos,
	)
}

// resolveStopColors maps a stop list to its concrete colors under pt.
func resolveStopColors(stops []model.GradientStop, pt model.PanelTheme) []model.Color {
	out := make([]model.Color, len(stops))
	for i, s := range stops {
		out[i] = s.Color.Resolve(pt)
	}
	return out
}

func colorsEqual(a, b []model.Color) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

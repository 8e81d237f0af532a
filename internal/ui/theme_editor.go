package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PulseBoard/internal/model"
)

// buildThemeTab assembles the theme editor for the current panel:
// preset picker, the four color slots, the two font slots, the
// background gradient, and a live reference card showing the resolved
// values every themed source currently points at.
func (a *App) buildThemeTab() fyne.CanvasObject {
	p := a.currentPanel()
	if p == nil {
		return widget.NewLabel("No panel selected.")
	}

	// Closures fetch the theme live so they never write through a stale
	// pointer after the panel list is rebuilt.
	themeOf := func() *model.PanelTheme {
		if cur := a.currentPanel(); cur != nil {
			return &cur.Style.Theme
		}
		return nil
	}

	presetSelect := widget.NewSelect(model.GetPresetNames(), func(name string) {
		if a.guard.Active() {
			return
		}
		a.pushHistory("Apply Theme Preset")
		a.applyPreset(model.GetPreset(name))
	})
	a.guard.Begin()
	presetSelect.SetSelected(p.Style.Style)
	a.guard.End()
	manageBtn := widget.NewButton("Manage Presets...", func() {
		a.ShowPresetManager()
	})
	presetCard := widget.NewCard("Theme Preset", "",
		container.NewBorder(nil, nil, nil, manageBtn, presetSelect))

	colorGrid := container.NewGridWithColumns(6)
	for slot := 1; slot <= 4; slot++ {
		s := slot
		col := p.Style.Theme.GetColor(s)

		editBtn := widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), func() {
			th := themeOf()
			if th == nil {
				return
			}
			picker := dialog.NewColorPicker(themeColorName(s), "Pick the new slot color", func(c color.Color) {
				if th := themeOf(); th != nil {
					th.SetColor(s, colorFromFyne(c))
					a.themeEdited()
					a.rebuildThemeTab()
				}
			}, a.window)
			picker.Advanced = true
			picker.SetColor(th.GetColor(s).NRGBA())
			picker.Show()
		})
		copyBtn := newIconButtonWithTooltip(theme.ContentCopyIcon(), "Copy color", func() {
			if th := themeOf(); th != nil {
				a.clipboard.CopyColor(model.CustomColor(th.GetColor(s)))
			}
		})
		pasteBtn := newIconButtonWithTooltip(theme.ContentPasteIcon(), "Paste color", func() {
			th := themeOf()
			if th == nil {
				return
			}
			src, ok := a.clipboard.PasteColor()
			if !ok {
				dialog.ShowInformation("Clipboard Empty", "No color has been copied yet.", a.window)
				return
			}
			th.SetColor(s, src.Resolve(*th))
			a.themeEdited()
			a.rebuildThemeTab()
		})

		colorGrid.Add(widget.NewLabel(themeColorName(s)))
		colorGrid.Add(newColorSwatch(col))
		colorGrid.Add(widget.NewLabel(col.Hex()))
		colorGrid.Add(editBtn)
		colorGrid.Add(copyBtn)
		colorGrid.Add(pasteBtn)
	}
	colorCard := widget.NewCard("Colors", "", colorGrid)

	fontBox := container.NewVBox()
	for slot := 1; slot <= 2; slot++ {
		s := slot
		f := p.Style.Theme.GetFont(s)

		family := widget.NewEntry()
		family.SetText(f.Family)
		family.OnChanged = func(v string) {
			if th := themeOf(); th != nil {
				cur := th.GetFont(s)
				cur.Family = v
				th.SetFont(s, cur)
				a.themeEdited()
			}
		}

		sizeLabel := widget.NewLabel(fmt.Sprintf("%.0fpt", f.Size))
		size := widget.NewSlider(model.MinFontSize, model.MaxFontSize)
		size.Step = 1
		size.Value = f.Size
		size.OnChanged = func(v float64) {
			if th := themeOf(); th != nil {
				cur := th.GetFont(s)
				cur.Size = v
				th.SetFont(s, cur)
				sizeLabel.SetText(fmt.Sprintf("%.0fpt", v))
				a.styleEdited()
			}
		}
		size.OnChangeEnded = func(float64) {
			a.themeEdited()
		}

		fontBox.Add(widget.NewLabelWithStyle(themeFontName(s), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
		fontBox.Add(container.NewBorder(nil, nil, widget.NewLabel("Family"), nil, family))
		fontBox.Add(container.NewBorder(nil, nil, widget.NewLabel("Size"), sizeLabel, size))
	}
	fontCard := widget.NewCard("Fonts", "", fontBox)

	gradEditor := NewGradientEditor(a)
	gradCard := widget.NewCard("Background Gradient", "", gradEditor.Object())

	// Reference card: resolved values, refreshed through the bus after
	// any theme edit. Subscribed after the gradient editor so the editor
	// re-resolves its swatches before this card reads them.
	refBox := container.NewVBox()
	rebuildRef := func() {
		refBox.RemoveAll()
		pt := a.currentTheme()
		for slot := 1; slot <= 4; slot++ {
			col := pt.GetColor(slot)
			c := col
			copyHex := newIconButtonWithTooltip(theme.ContentCopyIcon(), "Copy hex value", func() {
				if err := a.clipboard.CopyHex(c); err != nil {
					dialog.ShowError(err, a.window)
				}
			})
			refBox.Add(container.NewHBox(
				newColorSwatch(col),
				widget.NewLabel(fmt.Sprintf("%s  %s", themeColorName(slot), col.Hex())),
				layout.NewSpacer(),
				copyHex,
			))
		}
		for slot := 1; slot <= 2; slot++ {
			f := pt.GetFont(slot)
			refBox.Add(widget.NewLabel(fmt.Sprintf("%s  %s %.0fpt", themeFontName(slot), f.Family, f.Size)))
		}
		for _, stop := range pt.Gradient.Resolve(pt).Stops {
			c := stop.Color
			copyHex := newIconButtonWithTooltip(theme.ContentCopyIcon(), "Copy hex value", func() {
				if err := a.clipboard.CopyHex(c); err != nil {
					dialog.ShowError(err, a.window)
				}
			})
			refBox.Add(container.NewHBox(
				newColorSwatch(stop.Color),
				widget.NewLabel(fmt.Sprintf("Stop %3.0f%%  %s", stop.Position*100, stop.Color.Hex())),
				layout.NewSpacer(),
				copyHex,
			))
		}
		refBox.Refresh()
	}
	rebuildRef()
	a.bus.Subscribe("theme_reference", rebuildRef)
	refCard := widget.NewCard("Resolved Values", "What themed sources currently resolve to", refBox)

	return container.NewVScroll(container.NewVBox(
		presetCard,
		colorCard,
		fontCard,
		gradCard,
		refCard,
	))
}

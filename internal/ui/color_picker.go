package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PulseBoard/internal/model"
)

// Display names for the four theme color slots.
var themeSlotNames = [4]string{"Primary", "Secondary", "Accent", "Highlight"}

func themeColorName(slot int) string {
	if slot >= 1 && slot <= 4 {
		return themeSlotNames[slot-1]
	}
	return fmt.Sprintf("Color %d", slot)
}

func themeFontName(slot int) string {
	if slot == 2 {
		return "Detail"
	}
	return "Heading"
}

// colorSourceLabel describes a color source for button captions:
// the slot name for theme references, the hex value for custom colors.
func colorSourceLabel(src model.ColorSource, pt model.PanelTheme) string {
	if src.IsTheme() {
		return fmt.Sprintf("%s (%s)", themeColorName(src.Slot), src.Resolve(pt).Hex())
	}
	return src.Resolve(pt).Hex()
}

func fontSourceLabel(src model.FontSource, pt model.PanelTheme) string {
	f := src.Resolve(pt)
	if src.Kind == model.SourceTheme {
		return fmt.Sprintf("%s (%s %.0fpt)", themeFontName(src.Slot), f.Family, f.Size)
	}
	return fmt.Sprintf("%s %.0fpt", f.Family, f.Size)
}

func newColorSwatch(col model.Color) *canvas.Rectangle {
	r := canvas.NewRectangle(col.NRGBA())
	r.SetMinSize(fyne.NewSize(28, 20))
	r.StrokeColor = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	r.StrokeWidth = 1
	r.CornerRadius = 3
	return r
}

func colorFromFyne(c color.Color) model.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return model.ColorFromRGBA8(n.R, n.G, n.B, n.A)
}

// showColorSourceDialog lets the user repoint a themed color: at one of
// the four theme slots, at a custom picked color, or at whatever is on
// the style clipboard. onSet fires once per choice with the new source.
func (a *App) showColorSourceDialog(title string, current model.ColorSource, onSet func(model.ColorSource)) {
	pt := a.currentTheme()

	var d dialog.Dialog

	slotRow := func(slot int) fyne.CanvasObject {
		col := pt.GetColor(slot)
		btn := widget.NewButton(fmt.Sprintf("%s (%s)", themeColorName(slot), col.Hex()), func() {
			onSet(model.ThemeColor(slot))
			d.Hide()
		})
		return container.NewBorder(nil, nil, newColorSwatch(col), nil, btn)
	}

	customBtn := widget.NewButtonWithIcon("Custom Color...", theme.ColorPaletteIcon(), func() {
		d.Hide()
		picker := dialog.NewColorPicker(title, "Pick a custom color", func(c color.Color) {
			onSet(model.CustomColor(colorFromFyne(c)))
		}, a.window)
		picker.Advanced = true
		picker.SetColor(current.Resolve(pt).NRGBA())
		picker.Show()
	})

	copyBtn := widget.NewButtonWithIcon("Copy", theme.ContentCopyIcon(), func() {
		a.clipboard.CopyColor(current)
	})
	pasteBtn := widget.NewButtonWithIcon("Paste", theme.ContentPasteIcon(), func() {
		src, ok := a.clipboard.PasteColor()
		if !ok {
			dialog.ShowInformation("Clipboard Empty", "No color has been copied yet.", a.window)
			return
		}
		onSet(src)
		d.Hide()
	})
	hexBtn := widget.NewButton("Copy Hex", func() {
		if err := a.clipboard.CopyHex(current.Resolve(pt)); err != nil {
			dialog.ShowError(err, a.window)
		}
	})

	content := container.NewVBox(
		widget.NewLabel("Theme colors:"),
		slotRow(1),
		slotRow(2),
		slotRow(3),
		slotRow(4),
		widget.NewSeparator(),
		customBtn,
		widget.NewSeparator(),
		container.NewHBox(copyBtn, pasteBtn, hexBtn),
	)

	d = dialog.NewCustom(title, "Cancel", content, a.window)
	d.Show()
}

// showFontSourceDialog is the font counterpart: pick one of the two
// theme font slots or enter a custom family and size.
func (a *App) showFontSourceDialog(title string, current model.FontSource, onSet func(model.FontSource)) {
	pt := a.currentTheme()
	resolved := current.Resolve(pt)

	var d dialog.Dialog

	slotRow := func(slot int) fyne.CanvasObject {
		f := pt.GetFont(slot)
		return widget.NewButton(fmt.Sprintf("%s (%s %.0fpt)", themeFontName(slot), f.Family, f.Size), func() {
			onSet(model.ThemeFont(slot))
			d.Hide()
		})
	}

	familyEntry := widget.NewEntry()
	familyEntry.SetText(resolved.Family)

	sizeLabel := widget.NewLabel(fmt.Sprintf("%.0fpt", resolved.Size))
	sizeSlider := widget.NewSlider(model.MinFontSize, model.MaxFontSize)
	sizeSlider.Step = 1
	sizeSlider.Value = resolved.Size
	sizeSlider.OnChanged = func(v float64) {
		sizeLabel.SetText(fmt.Sprintf("%.0fpt", v))
	}

	useCustomBtn := widget.NewButton("Use Custom Font", func() {
		onSet(model.CustomFont(familyEntry.Text, sizeSlider.Value))
		d.Hide()
	})

	copyBtn := widget.NewButtonWithIcon("Copy", theme.ContentCopyIcon(), func() {
		a.clipboard.CopyFont(current)
	})
	pasteBtn := widget.NewButtonWithIcon("Paste", theme.ContentPasteIcon(), func() {
		src, ok := a.clipboard.PasteFont()
		if !ok {
			dialog.ShowInformation("Clipboard Empty", "No font has been copied yet.", a.window)
			return
		}
		onSet(src)
		d.Hide()
	})

	content := container.NewVBox(
		widget.NewLabel("Theme fonts:"),
		slotRow(1),
		slotRow(2),
		widget.NewSeparator(),
		widget.NewForm(
			widget.NewFormItem("Family", familyEntry),
			widget.NewFormItem("Size", container.NewBorder(nil, nil, nil, sizeLabel, sizeSlider)),
		),
		useCustomBtn,
		widget.NewSeparator(),
		container.NewHBox(copyBtn, pasteBtn),
	)

	d = dialog.NewCustom(title, "Cancel", content, a.window)
	d.Resize(fyne.NewSize(420, 420))
	d.Show()
}

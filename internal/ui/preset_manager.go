package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PulseBoard/internal/model"
	"github.com/piwi3910/PulseBoard/internal/project"
)

// ShowPresetManager opens the theme preset management window where users
// can view, create, edit, duplicate, delete, import, and export presets.
func (a *App) ShowPresetManager() {
	w := fyne.CurrentApp().NewWindow("Theme Presets")
	w.Resize(fyne.NewSize(700, 500))

	var listWidget *widget.List
	var selectedIdx int = -1
	var detailContainer *fyne.Container

	names := model.GetPresetNames()

	detailContainer = container.NewVBox(
		widget.NewLabel("Select a preset to view details."),
	)

	resetDetail := func() {
		selectedIdx = -1
		listWidget.UnselectAll()
		detailContainer.RemoveAll()
		detailContainer.Add(widget.NewLabel("Select a preset to view details."))
		detailContainer.Refresh()
	}

	listWidget = widget.NewList(
		func() int {
			return len(names)
		},
		func() fyne.CanvasObject {
			return container.NewHBox(
				widget.NewIcon(theme.ColorPaletteIcon()),
				widget.NewLabel("Preset Name"),
				layout.NewSpacer(),
				widget.NewLabel("(built-in)"),
			)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			box := obj.(*fyne.Container)
			nameLabel := box.Objects[1].(*widget.Label)
			tagLabel := box.Objects[3].(*widget.Label)
			name := names[id]
			nameLabel.SetText(name)
			if _, ok := model.CustomPresets[name]; ok {
				tagLabel.SetText("(custom)")
			} else {
				tagLabel.SetText("(built-in)")
			}
		},
	)

	refreshList := func() {
		names = model.GetPresetNames()
		listWidget.Refresh()
	}

	listWidget.OnSelected = func(id widget.ListItemID) {
		selectedIdx = id
		a.showPresetDetail(detailContainer, names[id], w, func() {
			refreshList()
			resetDetail()
		})
	}

	newBtn := widget.NewButtonWithIcon("New", theme.ContentAddIcon(), func() {
		nameEntry := widget.NewEntry()
		nameEntry.SetPlaceHolder("My Theme")

		form := dialog.NewForm("New Preset", "Create", "Cancel",
			[]*widget.FormItem{
				widget.NewFormItem("Preset Name", nameEntry),
			},
			func(ok bool) {
				if !ok {
					return
				}
				name := strings.TrimSpace(nameEntry.Text)
				if name == "" {
					dialog.ShowError(fmt.Errorf("preset name cannot be empty"), w)
					return
				}
				t := a.currentTheme().Clone()
				t.Name = name
				model.AddCustomPreset(t)
				a.savePresets()
				refreshList()
			},
			w,
		)
		form.Resize(fyne.NewSize(400, 150))
		form.Show()
	})

	duplicateBtn := widget.NewButtonWithIcon("Duplicate", theme.ContentCopyIcon(), func() {
		if selectedIdx < 0 || selectedIdx >= len(names) {
			dialog.ShowInformation("No Selection", "Select a preset to duplicate.", w)
			return
		}
		source := names[selectedIdx]
		nameEntry := widget.NewEntry()
		nameEntry.SetText(source + " (Copy)")

		form := dialog.NewForm("Duplicate Preset", "Create", "Cancel",
			[]*widget.FormItem{
				widget.NewFormItem("New Preset Name", nameEntry),
			},
			func(ok bool) {
				if !ok {
					return
				}
				name := strings.TrimSpace(nameEntry.Text)
				if name == "" {
					dialog.ShowError(fmt.Errorf("preset name cannot be empty"), w)
					return
				}
				dup := model.GetPreset(source)
				dup.Name = name
				model.AddCustomPreset(dup)
				a.savePresets()
				refreshList()
			},
			w,
		)
		form.Resize(fyne.NewSize(400, 150))
		form.Show()
	})

	importBtn := widget.NewButtonWithIcon("Import", theme.FolderOpenIcon(), func() {
		dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			defer reader.Close()

			preset, err := project.ImportPreset(reader.URI().Path())
			if err != nil {
				dialog.ShowError(fmt.Errorf("failed to import preset: %w", err), w)
				return
			}
			if preset.Name == "" {
				dialog.ShowError(fmt.Errorf("the preset file has no name"), w)
				return
			}
			model.AddCustomPreset(preset)
			a.savePresets()
			refreshList()
			dialog.ShowInformation("Import Complete",
				fmt.Sprintf("Preset %q imported successfully.", preset.Name), w)
		}, w)
	})

	exportBtn := widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), func() {
		if selectedIdx < 0 || selectedIdx >= len(names) {
			dialog.ShowInformation("No Selection", "Select a preset to export.", w)
			return
		}
		name := names[selectedIdx]
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()

			if err := project.ExportPreset(writer.URI().Path(), model.GetPreset(name)); err != nil {
				dialog.ShowError(fmt.Errorf("failed to export preset: %w", err), w)
				return
			}
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Preset %q exported successfully.", name), w)
		}, w)
		d.SetFileName(strings.ReplaceAll(strings.ToLower(name), " ", "_") + "_theme.json")
		d.Show()
	})

	deleteBtn := widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), func() {
		if selectedIdx < 0 || selectedIdx >= len(names) {
			dialog.ShowInformation("No Selection", "Select a preset to delete.", w)
			return
		}
		name := names[selectedIdx]
		if _, ok := model.CustomPresets[name]; !ok {
			dialog.ShowInformation("Cannot Delete", "Built-in presets cannot be deleted.", w)
			return
		}
		dialog.ShowConfirm("Delete Preset",
			fmt.Sprintf("Delete custom preset %q?", name),
			func(ok bool) {
				if !ok {
					return
				}
				model.RemoveCustomPreset(name)
				a.savePresets()
				refreshList()
				resetDetail()
			},
			w,
		)
	})

	toolbar := container.NewHBox(newBtn, duplicateBtn, importBtn, exportBtn, deleteBtn)

	listPanel := container.NewBorder(
		widget.NewLabelWithStyle("Presets", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		toolbar,
		nil, nil,
		listWidget,
	)

	detailScroll := container.NewVScroll(detailContainer)
	detailPanel := container.NewBorder(
		widget.NewLabelWithStyle("Preset Details", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		detailScroll,
	)

	split := container.NewHSplit(listPanel, detailPanel)
	split.SetOffset(0.35)

	w.SetContent(split)
	w.Show()
}

// showPresetDetail populates the detail pane with the preset's colors,
// fonts, and gradient summary, plus apply and edit actions.
func (a *App) showPresetDetail(c *fyne.Container, name string, w fyne.Window, onChanged func()) {
	c.RemoveAll()

	pt := model.GetPreset(name)
	_, isCustom := model.CustomPresets[name]

	applyBtn := widget.NewButtonWithIcon("Apply to Current Panel", theme.ConfirmIcon(), func() {
		a.pushHistory("Apply Theme Preset")
		a.applyPreset(model.GetPreset(name))
	})
	applyBtn.Importance = widget.HighImportance
	c.Add(applyBtn)

	if isCustom {
		editBtn := widget.NewButtonWithIcon("Edit Preset", theme.DocumentCreateIcon(), func() {
			a.showEditPresetDialog(name, onChanged)
		})
		c.Add(editBtn)
	} else {
		c.Add(widget.NewLabel("Built-in presets are read-only. Duplicate to customize."))
	}

	colorRows := container.NewVBox()
	for slot := 1; slot <= 4; slot++ {
		col := pt.GetColor(slot)
		colorRows.Add(container.NewHBox(
			newColorSwatch(col),
			widget.NewLabel(themeColorName(slot)),
			layout.NewSpacer(),
			widget.NewLabel(col.Hex()),
		))
	}

	fontRows := container.NewVBox()
	for slot := 1; slot <= 2; slot++ {
		f := pt.GetFont(slot)
		fontRows.Add(container.NewHBox(
			widget.NewLabel(themeFontName(slot)),
			layout.NewSpacer(),
			widget.NewLabel(fmt.Sprintf("%s %.1fpt", f.Family, f.Size)),
		))
	}

	info := container.NewVBox(
		widget.NewLabelWithStyle(name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Colors", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		colorRows,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Fonts", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		fontRows,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Gradient", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel(fmt.Sprintf("%d stops, %.0f° angle", len(pt.Gradient.Stops), pt.Gradient.Angle)),
	)

	c.Add(info)
	c.Refresh()
}

// showEditPresetDialog opens an editing window for a custom preset.
func (a *App) showEditPresetDialog(name string, onSaved func()) {
	work := model.GetPreset(name)

	editWindow := fyne.CurrentApp().NewWindow("Edit Preset: " + name)
	editWindow.Resize(fyne.NewSize(520, 460))

	nameEntry := widget.NewEntry()
	nameEntry.SetText(work.Name)

	colorRows := container.NewVBox()
	for slot := 1; slot <= 4; slot++ {
		s := slot
		swatch := newColorSwatch(work.GetColor(s))
		hexLabel := widget.NewLabel(work.GetColor(s).Hex())
		editBtn := widget.NewButton("Edit", func() {
			picker := dialog.NewColorPicker("Pick Color", themeColorName(s), func(c color.Color) {
				col := colorFromFyne(c)
				work.SetColor(s, col)
				swatch.FillColor = col.NRGBA()
				swatch.Refresh()
				hexLabel.SetText(col.Hex())
			}, editWindow)
			picker.Advanced = true
			picker.SetColor(work.GetColor(s).NRGBA())
			picker.Show()
		})
		colorRows.Add(container.NewHBox(
			swatch,
			widget.NewLabel(themeColorName(s)),
			layout.NewSpacer(),
			hexLabel,
			editBtn,
		))
	}
	colorsTab := container.NewTabItem("Colors", container.NewVBox(colorRows))

	fontRows := container.NewVBox()
	for slot := 1; slot <= 2; slot++ {
		s := slot
		familyEntry := widget.NewEntry()
		familyEntry.SetText(work.GetFont(s).Family)
		familyEntry.OnChanged = func(text string) {
			f := work.GetFont(s)
			f.Family = text
			work.SetFont(s, f)
		}
		sizeEntry := widget.NewEntry()
		sizeEntry.SetText(strconv.FormatFloat(work.GetFont(s).Size, 'f', 1, 64))
		sizeEntry.OnChanged = func(text string) {
			v, err := strconv.ParseFloat(text, 64)
			if err != nil || v < model.MinFontSize || v > model.MaxFontSize {
				return
			}
			f := work.GetFont(s)
			f.Size = v
			work.SetFont(s, f)
		}
		fontRows.Add(container.NewGridWithColumns(3,
			widget.NewLabel(themeFontName(s)),
			familyEntry,
			sizeEntry,
		))
	}
	fontsTab := container.NewTabItem("Fonts", container.NewVBox(
		container.NewGridWithColumns(3,
			widget.NewLabel(""),
			widget.NewLabelWithStyle("Family", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Size", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		),
		fontRows,
	))

	tabs := container.NewAppTabs(colorsTab, fontsTab)

	saveBtn := widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
		newName := strings.TrimSpace(nameEntry.Text)
		if newName == "" {
			dialog.ShowError(fmt.Errorf("preset name cannot be empty"), editWindow)
			return
		}
		if newName != name {
			model.RemoveCustomPreset(name)
		}
		work.Name = newName
		model.AddCustomPreset(work)
		a.savePresets()
		onSaved()
		editWindow.Close()
	})
	saveBtn.Importance = widget.HighImportance

	content := container.NewBorder(
		container.NewBorder(nil, nil, widget.NewLabel("Name"), nil, nameEntry),
		container.NewHBox(layout.NewSpacer(), saveBtn),
		nil, nil,
		tabs,
	)

	editWindow.SetContent(content)
	editWindow.Show()
}

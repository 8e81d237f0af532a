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
	"github.com/piwi3910/PulseBoard/internal/project"
)

func layoutSummary(cfg model.TransferableConfig) string {
	items := 0
	for _, n := range cfg.GroupItemCounts {
		items += n
	}
	return fmt.Sprintf("%d groups, %d items", cfg.GroupCount, items)
}

// showLibraryDialog opens the layout library browser: saved panel
// layouts that can be applied to the current panel, renamed, deleted,
// or exchanged with other machines as JSON.
func (a *App) showLibraryDialog() {
	listBox := container.NewVBox()

	var refreshList func()
	refreshList = func() {
		listBox.RemoveAll()

		if len(a.library.Presets) == 0 {
			listBox.Add(widget.NewLabel("The library is empty. Save the current panel layout to start one."))
			listBox.Refresh()
			return
		}

		listBox.Add(container.NewGridWithColumns(4,
			widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Description", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Layout", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Actions", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		))
		listBox.Add(widget.NewSeparator())

		for i := range a.library.Presets {
			preset := a.library.Presets[i]

			applyBtn := widget.NewButton("Apply", func() {
				p := a.currentPanel()
				if p == nil {
					return
				}
				a.pushHistory("Apply Layout")
				a.applyLayout(p, preset.Config)
				a.structureChanged()
			})
			editBtn := newIconButtonWithTooltip(theme.DocumentCreateIcon(), "Rename layout", func() {
				a.showRenameLayoutDialog(preset.ID, refreshList)
			})
			deleteBtn := newIconButtonWithTooltip(theme.DeleteIcon(), "Delete layout", func() {
				dialog.ShowConfirm("Delete Layout",
					fmt.Sprintf("Delete layout '%s' from the library?", preset.Name),
					func(ok bool) {
						if !ok {
							return
						}
						a.library.RemovePreset(preset.ID)
						a.saveLibrary()
						refreshList()
					}, a.window)
			})

			listBox.Add(container.NewGridWithColumns(4,
				widget.NewLabel(preset.Name),
				widget.NewLabel(preset.Description),
				widget.NewLabel(layoutSummary(preset.Config)),
				container.NewHBox(applyBtn, editBtn, deleteBtn),
			))
		}
		listBox.Refresh()
	}
	refreshList()

	saveBtn := widget.NewButtonWithIcon("Save Current Layout", theme.ContentAddIcon(), func() {
		a.showSaveLayoutDialog(refreshList)
	})
	importBtn := widget.NewButtonWithIcon("Import...", theme.UploadIcon(), func() {
		dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			path := reader.URI().Path()
			reader.Close()

			merged, err := project.ImportLibrary(path, a.library)
			if err != nil {
				dialog.ShowError(fmt.Errorf("import failed: %w", err), a.window)
				return
			}
			a.library = merged
			a.saveLibrary()
			refreshList()
			dialog.ShowInformation("Import Complete",
				fmt.Sprintf("The library now holds %d layouts.", len(a.library.Presets)), a.window)
		}, a.window)
	})
	exportBtn := widget.NewButtonWithIcon("Export...", theme.DownloadIcon(), func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			path := writer.URI().Path()
			writer.Close()
			if err := project.ExportLibrary(path, a.library); err != nil {
				dialog.ShowError(fmt.Errorf("export failed: %w", err), a.window)
			}
		}, a.window)
		d.SetFileName("layout_library.json")
		d.Show()
	})

	toolbar := container.NewHBox(saveBtn, layout.NewSpacer(), importBtn, exportBtn)
	content := container.NewBorder(toolbar, nil, nil, nil, container.NewVScroll(listBox))

	d := dialog.NewCustom("Layout Library", "Close", content, a.window)
	d.Resize(fyne.NewSize(700, 500))
	d.Show()
}

// showSaveLayoutDialog captures the current panel's layout into the
// library under a new name.
func (a *App) showSaveLayoutDialog(onSaved func()) {
	p := a.currentPanel()
	if p == nil {
		return
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetText(p.Name)
	descEntry := widget.NewEntry()
	descEntry.SetPlaceHolder("optional description")

	items := []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
		widget.NewFormItem("Description", descEntry),
	}

	d := dialog.NewForm("Save Layout", "Save", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		if nameEntry.Text == "" {
			dialog.ShowError(fmt.Errorf("the layout needs a name"), a.window)
			return
		}
		preset := model.NewLayoutPreset(nameEntry.Text, descEntry.Text, p.Style.Transferable())
		a.library.AddPreset(preset)
		a.saveLibrary()
		if onSaved != nil {
			onSaved()
		}
	}, a.window)
	d.Resize(fyne.NewSize(420, 220))
	d.Show()
}

func (a *App) showRenameLayoutDialog(id string, onSaved func()) {
	preset := a.library.FindPresetByID(id)
	if preset == nil {
		return
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetText(preset.Name)
	descEntry := widget.NewEntry()
	descEntry.SetText(preset.Description)

	items := []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
		widget.NewFormItem("Description", descEntry),
	}

	d := dialog.NewForm("Rename Layout", "Save", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		if nameEntry.Text == "" {
			dialog.ShowError(fmt.Errorf("the layout needs a name"), a.window)
			return
		}
		preset.Name = nameEntry.Text
		preset.Description = descEntry.Text
		a.saveLibrary()
		if onSaved != nil {
			onSaved()
		}
	}, a.window)
	d.Resize(fyne.NewSize(420, 220))
	d.Show()
}

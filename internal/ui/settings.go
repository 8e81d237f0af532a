package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PulseBoard/internal/model"
	"github.com/piwi3910/PulseBoard/internal/project"
)

// showSettingsDialog displays the application settings editor: the
// app-wide preferences plus the defaults stamped onto new panels.
func (a *App) showSettingsDialog() {
	cfg := a.config

	intEntry := func(val *int) *widget.Entry {
		entry := widget.NewEntry()
		entry.SetText(strconv.Itoa(*val))
		entry.OnChanged = func(s string) {
			if v, err := strconv.Atoi(s); err == nil && v >= 0 {
				*val = v
			}
		}
		return entry
	}
	floatEntry := func(val *float64) *widget.Entry {
		entry := widget.NewEntry()
		entry.SetText(fmt.Sprintf("%g", *val))
		entry.OnChanged = func(s string) {
			if v, err := strconv.ParseFloat(s, 64); err == nil && v > 0 {
				*val = v
			}
		}
		return entry
	}

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(s string) {
		cfg.Theme = s
	})
	themeSelect.SetSelected(cfg.Theme)

	autoSaveEntry := intEntry(&cfg.AutoSaveInterval)

	presetSelect := widget.NewSelect(model.GetPresetNames(), func(s string) {
		cfg.DefaultPreset = s
	})
	presetSelect.SetSelected(cfg.DefaultPreset)

	intervalEntry := widget.NewEntry()
	intervalEntry.SetText(strconv.FormatInt(cfg.DefaultUpdateIntervalMS, 10))
	intervalEntry.OnChanged = func(s string) {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil && v > 0 {
			cfg.DefaultUpdateIntervalMS = v
		}
	}

	animCheck := widget.NewCheck("", func(b bool) {
		cfg.DefaultAnimationEnabled = b
	})
	animCheck.Checked = cfg.DefaultAnimationEnabled

	speedEntry := floatEntry(&cfg.DefaultAnimationSpeed)

	orientSelect := widget.NewSelect(orientationOptions, func(s string) {
		cfg.DefaultLayoutOrientation = string(orientationFromLabel(s))
	})
	orientSelect.SetSelected(orientationLabel(model.LayoutOrientation(cfg.DefaultLayoutOrientation)))

	items := []*widget.FormItem{
		widget.NewFormItem("Appearance", themeSelect),
		widget.NewFormItem("Auto-save (minutes, 0 = off)", autoSaveEntry),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("New panel preset", presetSelect),
		widget.NewFormItem("New panel interval (ms)", intervalEntry),
		widget.NewFormItem("New panel animations", animCheck),
		widget.NewFormItem("New panel anim speed", speedEntry),
		widget.NewFormItem("New panel layout", orientSelect),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		a.config = cfg
		if err := a.saveConfig(); err != nil {
			dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			return
		}
		a.applyThemeVariant()
	}, a.window)
	d.Resize(fyne.NewSize(480, 480))
	d.Show()
}

// showImportExportDialog handles full-data backup and restore: the app
// configuration, custom theme presets, and the layout library travel
// together in one JSON file.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButtonWithIcon("Export All Data...", theme.DownloadIcon(), func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			path := writer.URI().Path()
			writer.Close()
			if err := project.ExportAllData(path, a.config, project.CurrentCustomPresets(), a.library); err != nil {
				dialog.ShowError(fmt.Errorf("export failed: %w", err), a.window)
				return
			}
			dialog.ShowInformation("Export Complete",
				"Settings, theme presets, and the layout library were exported.", a.window)
		}, a.window)
		d.SetFileName("pulseboard-backup.json")
		d.Show()
	})

	importBtn := widget.NewButtonWithIcon("Import Data...", theme.UploadIcon(), func() {
		dialog.ShowConfirm("Import Data",
			"Importing will replace your application settings, custom theme presets, and layout library. Continue?",
			func(ok bool) {
				if !ok {
					return
				}
				dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					path := reader.URI().Path()
					reader.Close()

					backup, err := project.ImportAllData(path)
					if err != nil {
						dialog.ShowError(fmt.Errorf("import failed: %w", err), a.window)
						return
					}

					a.config = backup.Config
					if err := a.saveConfig(); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
						return
					}
					project.RegisterCustomPresets(backup.CustomPresets)
					a.savePresets()
					a.library = backup.Library
					a.saveLibrary()
					a.applyThemeVariant()
					a.rebuildEditors()

					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Backup from %s imported.", backup.CreatedAt), a.window)
				}, a.window)
			}, a.window)
	})

	content := container.NewVBox(
		widget.NewLabel("Back up or restore your settings, theme presets, and layout library."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Data", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

// saveConfig persists the application configuration to the default path.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(project.DefaultConfigPath(), a.config)
}

// savePresets persists the registered custom theme presets, reporting
// failures in a dialog since callers run from button handlers.
func (a *App) savePresets() {
	if err := project.SaveCustomPresets(project.DefaultPresetsPath(), project.CurrentCustomPresets()); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save theme presets: %w", err), a.window)
	}
}

// saveLibrary persists the layout library to the path it was loaded from.
func (a *App) saveLibrary() {
	if a.libraryPath == "" {
		return
	}
	if err := project.SaveLibrary(a.libraryPath, a.library); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save layout library: %w", err), a.window)
	}
}

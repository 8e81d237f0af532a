package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/piwi3910/PulseBoard/internal/export"
	"github.com/piwi3910/PulseBoard/internal/importer"
	"github.com/piwi3910/PulseBoard/internal/metrics"
	"github.com/piwi3910/PulseBoard/internal/model"
	"github.com/piwi3910/PulseBoard/internal/project"
	"github.com/piwi3910/PulseBoard/internal/refresh"
	"github.com/piwi3910/PulseBoard/internal/ui/widgets"
)

// Editor tab indices, in display order.
const (
	tabPreview = iota
	tabGroups
	tabContent
	tabTheme
	tabSettings
)

// animationFrameInterval paces the easing loop at roughly 30 fps.
const animationFrameInterval = 33 * time.Millisecond

// autosaveCheckInterval is how often the autosave timer wakes up to
// compare against the configured save interval.
const autosaveCheckInterval = 30 * time.Second

// App holds all application state and UI references.
type App struct {
	fyneApp fyne.App
	window  fyne.Window

	project     model.Project
	projectPath string
	config      model.AppConfig
	library     model.Library
	libraryPath string

	registry *metrics.Registry
	sampler  *metrics.Sampler

	clipboard *Clipboard
	history   *History
	bus       *refresh.Bus
	guard     refresh.UpdateGuard
	log       *logrus.Entry

	selected    int    // index of the panel being edited
	contentSlot string // slot shown in the content tab
	lastSave    time.Time

	tabs        *container.AppTabs
	canvas      *widgets.PanelCanvas
	panelSelect *widget.Select
	undoBtn     *ttwidget.Button
	redoBtn     *ttwidget.Button
}

// NewApp creates the application state: loads the stored config,
// custom presets and layout library, and prepares a fresh dashboard
// with one panel carrying the user's defaults.
func NewApp(application fyne.App, window fyne.Window) *App {
	a := &App{
		fyneApp:   application,
		window:    window,
		registry:  metrics.DefaultRegistry(),
		clipboard: NewClipboard(),
		history:   NewHistory(),
		bus:       refresh.NewBus(),
		log:       logrus.WithField("component", "app"),
		lastSave:  time.Now(),
	}

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		a.log.WithError(err).Warn("failed to load app config, using defaults")
		config = model.DefaultAppConfig()
	}
	a.config = config

	presets, err := project.LoadCustomPresets(project.DefaultPresetsPath())
	if err != nil {
		a.log.WithError(err).Warn("failed to load custom presets")
	} else {
		project.RegisterCustomPresets(presets)
	}

	lib, libPath, err := project.LoadOrCreateLibrary()
	if err != nil {
		a.log.WithError(err).Warn("failed to load layout library")
	}
	a.library = lib
	a.libraryPath = libPath

	a.project = model.NewProject()
	a.config.ApplyToPanel(&a.project.Panels[0])

	a.sampler = metrics.NewSampler(a.registry, func(snapshot map[string]string) {
		fyne.Do(func() { a.applySnapshot(snapshot) })
	})

	a.applyThemeVariant()
	return a
}

// SetupMenus creates the native menu bar. Called again whenever the
// recent-projects list changes, since menus are static once set.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Dashboard", func() {
			a.newProject()
		}),
		fyne.NewMenuItem("New From Template...", func() {
			a.showTemplatesDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Open...", func() {
			a.loadProject()
		}),
		a.openRecentItem(),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save", func() {
			a.saveProject()
		}),
		fyne.NewMenuItem("Save As...", func() {
			a.saveProjectAs()
		}),
		fyne.NewMenuItem("Rename Dashboard...", func() {
			a.renameProject()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Bindings from CSV...", func() {
			a.importCSV()
		}),
		fyne.NewMenuItem("Import Bindings from Excel...", func() {
			a.importExcel()
		}),
		fyne.NewMenuItem("Import Shared Layout...", func() {
			a.importSharedLayout()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Summary PDF...", func() {
			a.exportPDF()
		}),
		fyne.NewMenuItem("Export Faceplate DXF...", func() {
			a.exportDXF()
		}),
		fyne.NewMenuItem("Share Panel as QR...", func() {
			a.shareQR()
		}),
		fyne.NewMenuItem("Share Card PDF...", func() {
			a.shareCard()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() {
			a.undo()
		}),
		fyne.NewMenuItem("Redo", func() {
			a.redo()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Copy Panel Style", func() {
			a.clipboard.CopyStyle(a.currentPanel().Style.Transferable())
		}),
		fyne.NewMenuItem("Paste Panel Style", func() {
			a.pastePanelStyle()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Add Panel", func() {
			a.addPanel()
		}),
		fyne.NewMenuItem("Duplicate Panel", func() {
			a.duplicatePanel()
		}),
		fyne.NewMenuItem("Remove Panel", func() {
			a.removePanel()
		}),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Share Panel as QR...", func() {
			a.shareQR()
		}),
		fyne.NewMenuItem("Share Card PDF...", func() {
			a.shareCard()
		}),
		fyne.NewMenuItem("Import Shared Layout...", func() {
			a.importSharedLayout()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Layout Library...", func() {
			a.showLibraryDialog()
		}),
		fyne.NewMenuItem("Theme Presets...", func() {
			a.ShowPresetManager()
		}),
		fyne.NewMenuItem("Templates...", func() {
			a.showTemplatesDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", func() {
			a.showSettingsDialog()
		}),
		fyne.NewMenuItem("Import & Export Data...", func() {
			a.showImportExportDialog()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu))
}

// openRecentItem builds the Open Recent submenu from the stored list.
func (a *App) openRecentItem() *fyne.MenuItem {
	item := fyne.NewMenuItem("Open Recent", nil)
	if len(a.config.RecentProjects) == 0 {
		none := fyne.NewMenuItem("(empty)", nil)
		none.Disabled = true
		item.ChildMenu = fyne.NewMenu("", none)
		return item
	}
	items := make([]*fyne.MenuItem, 0, len(a.config.RecentProjects))
	for _, recent := range a.config.RecentProjects {
		path := recent
		items = append(items, fyne.NewMenuItem(filepath.Base(path), func() {
			a.openProjectPath(path)
		}))
	}
	item.ChildMenu = fyne.NewMenu("", items...)
	return item
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About PulseBoard",
		"PulseBoard — System Dashboard\n\n"+
			"A cross-platform desktop dashboard showing live system\n"+
			"metrics in themed, fully configurable panels.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.canvas = widgets.NewPanelCanvas(a.currentPanel(), 520, 340)

	previewTab := container.NewTabItem("Preview", a.buildPreviewTab())
	groupsTab := container.NewTabItem("Groups", a.buildGroupsTab())
	contentTab := container.NewTabItem("Content", a.buildContentTab())
	themeTab := container.NewTabItem("Theme", a.buildThemeTab())
	settingsTab := container.NewTabItem("Settings", a.buildSettingsTab())

	a.tabs = container.NewAppTabs(previewTab, groupsTab, contentTab, themeTab, settingsTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	return container.NewBorder(a.buildTopBar(), nil, nil, nil, a.tabs)
}

// buildTopBar creates the panel selector row shown above the tabs.
func (a *App) buildTopBar() fyne.CanvasObject {
	a.panelSelect = widget.NewSelect(a.project.PanelNames(), func(string) {
		if a.guard.Active() {
			return
		}
		a.selectPanel(a.panelSelect.SelectedIndex())
	})
	a.guard.Begin()
	a.panelSelect.SetSelectedIndex(a.selected)
	a.guard.End()

	addBtn := newIconButtonWithTooltip(theme.ContentAddIcon(), "Add panel", func() {
		a.addPanel()
	})
	dupBtn := newIconButtonWithTooltip(theme.ContentCopyIcon(), "Duplicate panel", func() {
		a.duplicatePanel()
	})
	delBtn := newIconButtonWithTooltip(theme.DeleteIcon(), "Remove panel", func() {
		a.removePanel()
	})

	a.undoBtn = newIconButtonWithTooltip(theme.ContentUndoIcon(), "Undo", func() {
		a.undo()
	})
	a.redoBtn = newIconButtonWithTooltip(theme.ContentRedoIcon(), "Redo", func() {
		a.redo()
	})
	a.refreshUndoRedo()

	bar := container.NewHBox(
		widget.NewLabel("Panel:"),
		a.panelSelect,
		addBtn, dupBtn, delBtn,
		layout.NewSpacer(),
		a.undoBtn, a.redoBtn,
	)
	return container.NewVBox(bar, widget.NewSeparator())
}

func (a *App) buildPreviewTab() fyne.CanvasObject {
	return container.NewPadded(a.canvas)
}

// Start begins live sampling, the animation frame loop, and the
// autosave timer. Call after the window content is set.
func (a *App) Start() {
	a.rebindSampler()
	a.sampler.Start()
	go a.animationLoop()
	go a.autosaveLoop()
	a.log.WithField("sources", len(a.registry.IDs())).Info("sampling started")
}

func (a *App) animationLoop() {
	ticker := time.NewTicker(animationFrameInterval)
	defer ticker.Stop()
	for range ticker.C {
		fyne.Do(func() {
			if a.canvas.Step() {
				a.canvas.Refresh()
			}
		})
	}
}

func (a *App) autosaveLoop() {
	ticker := time.NewTicker(autosaveCheckInterval)
	defer ticker.Stop()
	for range ticker.C {
		fyne.Do(a.autosaveTick)
	}
}

// autosaveTick saves the project in place once the configured number
// of minutes has passed since the last save. Unsaved dashboards are
// skipped: there is no path to save to yet.
func (a *App) autosaveTick() {
	if a.config.AutoSaveInterval <= 0 || a.projectPath == "" {
		return
	}
	if time.Since(a.lastSave) < time.Duration(a.config.AutoSaveInterval)*time.Minute {
		return
	}
	if err := project.Save(a.projectPath, a.project); err != nil {
		a.log.WithError(err).Warn("autosave failed")
		return
	}
	a.lastSave = time.Now()
	a.log.WithField("path", a.projectPath).Debug("autosaved dashboard")
}

// applySnapshot feeds the latest sampled fields into the preview.
// Runs on the UI event loop.
func (a *App) applySnapshot(snapshot map[string]string) {
	a.canvas.SetFields(snapshot)
}

// ─── Panel selection ───────────────────────────────────────

// currentPanel returns the panel being edited. The index is clamped so
// a stale selection after structural changes still resolves.
func (a *App) currentPanel() *model.Panel {
	if a.selected >= len(a.project.Panels) {
		a.selected = len(a.project.Panels) - 1
	}
	if a.selected < 0 {
		a.selected = 0
	}
	return &a.project.Panels[a.selected]
}

// currentTheme returns the current panel's theme.
func (a *App) currentTheme() model.PanelTheme {
	return a.currentPanel().Style.Theme
}

// selectPanel switches the editor to panel i: the preview, sampler and
// every editor tab move to the new panel.
func (a *App) selectPanel(i int) {
	if i < 0 || i >= len(a.project.Panels) {
		return
	}
	a.selected = i
	a.contentSlot = ""
	a.canvas.SetPanel(a.currentPanel())
	a.rebindSampler()
	a.refreshPanelSelector()
	a.rebuildEditors()
}

// refreshPanelSelector syncs the top-bar dropdown with the panel list.
func (a *App) refreshPanelSelector() {
	a.guard.Begin()
	defer a.guard.End()
	a.panelSelect.Options = a.project.PanelNames()
	a.panelSelect.SetSelectedIndex(a.selected)
	a.panelSelect.Refresh()
}

func (a *App) addPanel() {
	a.pushHistory("Add Panel")
	p := a.project.AddPanel(fmt.Sprintf("Panel %d", len(a.project.Panels)+1))
	a.config.ApplyToPanel(p)
	a.selectPanel(len(a.project.Panels) - 1)
}

func (a *App) duplicatePanel() {
	a.pushHistory("Duplicate Panel")
	src := a.currentPanel()
	dup := src.Clone()
	dup.ID = uuid.New().String()[:8]
	dup.Name = src.Name + " (Copy)"
	a.project.Panels = append(a.project.Panels, dup)
	a.selectPanel(len(a.project.Panels) - 1)
}

func (a *App) removePanel() {
	if len(a.project.Panels) <= 1 {
		dialog.ShowInformation("Cannot Remove", "The dashboard needs at least one panel.", a.window)
		return
	}
	p := a.currentPanel()
	dialog.ShowConfirm("Remove Panel",
		fmt.Sprintf("Remove panel %q?", p.Name),
		func(ok bool) {
			if !ok {
				return
			}
			a.pushHistory("Remove Panel")
			a.project.RemovePanel(p.ID)
			if a.selected >= len(a.project.Panels) {
				a.selected = len(a.project.Panels) - 1
			}
			a.selectPanel(a.selected)
		},
		a.window,
	)
}

// ─── Edit propagation ──────────────────────────────────────

// styleEdited redraws the preview after a style-only change.
func (a *App) styleEdited() {
	a.canvas.Refresh()
}

// themeEdited re-resolves every theme-dependent editor widget, then
// redraws the preview.
func (a *App) themeEdited() {
	a.bus.Notify()
	a.styleEdited()
}

// structureChanged rebuilds everything that depends on the slot grid:
// group or item counts changed, so slots appeared or disappeared.
func (a *App) structureChanged() {
	a.rebindSampler()
	a.rebuildGroupsTab()
	a.rebuildContentTab()
	a.rebuildSettingsTab()
	a.styleEdited()
}

func (a *App) rebuildGroupsTab() {
	a.tabs.Items[tabGroups].Content = a.buildGroupsTab()
	a.tabs.Refresh()
}

func (a *App) rebuildContentTab() {
	a.tabs.Items[tabContent].Content = a.buildContentTab()
	a.tabs.Refresh()
}

func (a *App) rebuildThemeTab() {
	a.tabs.Items[tabTheme].Content = a.buildThemeTab()
	a.tabs.Refresh()
}

func (a *App) rebuildSettingsTab() {
	a.tabs.Items[tabSettings].Content = a.buildSettingsTab()
	a.tabs.Refresh()
}

// rebuildEditors rebuilds every editor tab against the current panel.
func (a *App) rebuildEditors() {
	a.rebuildGroupsTab()
	a.rebuildContentTab()
	a.rebuildThemeTab()
	a.rebuildSettingsTab()
}

// rebindSampler points the sampler at the current panel's bindings.
// Needed after any source, caption, interval or slot-grid edit: the
// sampler captures slot configs at bind time.
func (a *App) rebindSampler() {
	a.sampler.Bind(a.currentPanel().Source)
}

// applyPreset replaces the current panel's theme.
func (a *App) applyPreset(t model.PanelTheme) {
	p := a.currentPanel()
	p.Style.Style = t.Name
	p.Style.Theme = t
	a.themeEdited()
	a.rebuildThemeTab()
}

// applyLayout applies a transferable style to a panel and pushes the
// resulting group shape into the source side, so the slot grid and the
// bindings stay aligned. The applied counts are captured first:
// resizing the source groups syncs back into the style vectors.
func (a *App) applyLayout(p *model.Panel, cfg model.TransferableConfig) {
	p.Style.ApplyTransferable(cfg)

	counts := append([]int(nil), p.Style.GroupItemCounts...)
	weights := append([]float64(nil), p.Style.GroupSizeWeights...)
	p.SetGroupCount(p.Style.GroupCount)
	for i, count := range counts {
		p.SetGroupItemCount(i, count)
	}
	for i, w := range weights {
		p.SetGroupWeight(i, w)
	}
}

// applyThemeVariant pushes the configured light/dark preference into
// the Fyne theme.
func (a *App) applyThemeVariant() {
	var variant fyne.ThemeVariant
	switch a.config.Theme {
	case "light":
		variant = theme.VariantLight
	case "dark":
		variant = theme.VariantDark
	default:
		variant = a.fyneApp.Settings().ThemeVariant()
	}
	a.fyneApp.Settings().SetTheme(NewPulseBoardThemeWithVariant(variant))
}

// ─── History ───────────────────────────────────────────────

// pushHistory snapshots the dashboard before a modification.
func (a *App) pushHistory(label string) {
	a.history.Push(MakeSnapshot(a.project, label))
	a.refreshUndoRedo()
}

func (a *App) undo() {
	snap, ok := a.history.Undo(MakeSnapshot(a.project, ""))
	if !ok {
		return
	}
	a.restoreSnapshot(snap)
}

func (a *App) redo() {
	snap, ok := a.history.Redo(MakeSnapshot(a.project, ""))
	if !ok {
		return
	}
	a.restoreSnapshot(snap)
}

func (a *App) restoreSnapshot(s Snapshot) {
	a.project.Name = s.ProjectName
	a.project.Panels = copyPanels(s.Panels)
	if len(a.project.Panels) == 0 {
		a.project.Panels = []model.Panel{model.NewPanel("Panel 1")}
	}
	if a.selected >= len(a.project.Panels) {
		a.selected = len(a.project.Panels) - 1
	}
	a.contentSlot = ""
	a.canvas.SetPanel(a.currentPanel())
	a.rebindSampler()
	a.refreshPanelSelector()
	a.rebuildEditors()
	a.refreshUndoRedo()
}

func (a *App) refreshUndoRedo() {
	if a.undoBtn == nil {
		return
	}
	if a.history.CanUndo() {
		a.undoBtn.Enable()
	} else {
		a.undoBtn.Disable()
	}
	if a.history.CanRedo() {
		a.redoBtn.Enable()
	} else {
		a.redoBtn.Disable()
	}
}

func (a *App) pastePanelStyle() {
	cfg, ok := a.clipboard.PasteStyle()
	if !ok {
		dialog.ShowInformation("Nothing to Paste", "Copy a panel style first.", a.window)
		return
	}
	a.pushHistory("Paste Panel Style")
	a.applyLayout(a.currentPanel(), cfg)
	a.structureChanged()
	a.rebuildThemeTab()
}

// ─── Project lifecycle ─────────────────────────────────────

// afterProjectChange resets the editor onto a newly loaded or created
// project. History is cleared: undoing across a file switch would pair
// old panels with the new save path.
func (a *App) afterProjectChange() {
	if len(a.project.Panels) == 0 {
		a.project.Panels = []model.Panel{model.NewPanel("Panel 1")}
	}
	a.history.Clear()
	a.selected = 0
	a.contentSlot = ""
	a.lastSave = time.Now()
	a.canvas.SetPanel(a.currentPanel())
	a.rebindSampler()
	a.refreshPanelSelector()
	a.rebuildEditors()
	a.refreshUndoRedo()
}

func (a *App) newProject() {
	a.project = model.NewProject()
	a.config.ApplyToPanel(&a.project.Panels[0])
	a.projectPath = ""
	a.afterProjectChange()
}

func (a *App) renameProject() {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(a.project.Name)
	dialog.ShowForm("Rename Dashboard", "Rename", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Name", nameEntry)},
		func(ok bool) {
			if !ok || nameEntry.Text == "" {
				return
			}
			a.project.Name = nameEntry.Text
		},
		a.window,
	)
}

// saveProject saves in place, or falls through to Save As for a
// dashboard that has never been saved.
func (a *App) saveProject() {
	if a.projectPath == "" {
		a.saveProjectAs()
		return
	}
	if err := project.Save(a.projectPath, a.project); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save dashboard: %w", err), a.window)
		return
	}
	a.lastSave = time.Now()
}

func (a *App) saveProjectAs() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := project.Save(path, a.project); err != nil {
			dialog.ShowError(fmt.Errorf("failed to save dashboard: %w", err), a.window)
			return
		}
		a.projectPath = path
		a.lastSave = time.Now()
		a.rememberProject(path)
	}, a.window)
	d.SetFileName(a.project.Name + project.FileExtension)
	d.Show()
}

func (a *App) loadProject() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.openProjectPath(reader.URI().Path())
	}, a.window)
	d.Show()
}

func (a *App) openProjectPath(path string) {
	proj, err := project.Load(path)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to open dashboard: %w", err), a.window)
		return
	}
	a.project = proj
	a.projectPath = path
	a.rememberProject(path)
	a.afterProjectChange()
}

// rememberProject records a path in the recent list and rebuilds the
// menu bar so Open Recent reflects it.
func (a *App) rememberProject(path string) {
	a.config.RememberProject(path)
	if err := a.saveConfig(); err != nil {
		a.log.WithError(err).Warn("failed to save recent projects")
	}
	a.SetupMenus()
}

// ─── Import ────────────────────────────────────────────────

func (a *App) importCSV() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.handleImportResult(importer.ImportCSV(reader.URI().Path()))
	}, a.window)
}

func (a *App) importExcel() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.handleImportResult(importer.ImportExcel(reader.URI().Path()))
	}, a.window)
}

// handleImportResult applies imported slot bindings to the current
// panel and reports errors and warnings.
func (a *App) handleImportResult(result importer.ImportResult) {
	if len(result.Errors) > 0 {
		dialog.ShowError(fmt.Errorf("errors encountered during import:\n\n%s",
			strings.Join(result.Errors, "\n")), a.window)
	}
	if len(result.Bindings) == 0 {
		return
	}

	a.pushHistory("Import Bindings")
	p := a.currentPanel()
	warnings := append(result.Warnings, result.ApplyTo(&p.Source)...)
	a.rebindSampler()
	a.rebuildSettingsTab()

	msg := fmt.Sprintf("Imported %d slot bindings.", len(result.Bindings))
	if len(warnings) > 0 {
		msg += "\n\n" + strings.Join(warnings, "\n")
	}
	if len(result.Errors) > 0 {
		msg += fmt.Sprintf("\n\n%d rows had errors and were skipped.", len(result.Errors))
	}
	dialog.ShowInformation("Import Complete", msg, a.window)
}

// ─── Export and sharing ────────────────────────────────────

func (a *App) exportPDF() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := export.ExportPDF(writer.URI().Path(), a.project); err != nil {
			dialog.ShowError(fmt.Errorf("failed to export PDF: %w", err), a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Dashboard summary saved to %s", writer.URI().Path()), a.window)
	}, a.window)
	d.SetFileName(exportFileName(a.project.Name) + ".pdf")
	d.Show()
}

func (a *App) exportDXF() {
	p := a.currentPanel()
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		stats, err := export.ExportDXF(writer.URI().Path(), *p)
		if err != nil {
			dialog.ShowError(fmt.Errorf("failed to export DXF: %w", err), a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Faceplate saved: %d groups, %.0f units of cut length.",
				stats.GroupCount, stats.TotalCutLength), a.window)
	}, a.window)
	d.SetFileName(exportFileName(p.Name) + ".dxf")
	d.Show()
}

func (a *App) shareQR() {
	p := a.currentPanel()
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := export.ShareQR(writer.URI().Path(), *p); err != nil {
			dialog.ShowError(fmt.Errorf("failed to share panel: %w", err), a.window)
			return
		}
		dialog.ShowInformation("Share Complete",
			fmt.Sprintf("QR code saved to %s", writer.URI().Path()), a.window)
	}, a.window)
	d.SetFileName(exportFileName(p.Name) + "_share.png")
	d.Show()
}

func (a *App) shareCard() {
	p := a.currentPanel()
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := export.ShareCard(writer.URI().Path(), *p); err != nil {
			dialog.ShowError(fmt.Errorf("failed to create share card: %w", err), a.window)
			return
		}
		dialog.ShowInformation("Share Complete",
			fmt.Sprintf("Share card saved to %s", writer.URI().Path()), a.window)
	}, a.window)
	d.SetFileName(exportFileName(p.Name) + "_card.pdf")
	d.Show()
}

// importSharedLayout reads a share payload file (the JSON behind a
// share QR code) and applies it to the current panel after
// confirmation. Source bindings are untouched: the payload carries
// none.
func (a *App) importSharedLayout() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		data, err := os.ReadFile(reader.URI().Path())
		if err != nil {
			dialog.ShowError(fmt.Errorf("failed to read share file: %w", err), a.window)
			return
		}
		payload, err := export.DecodeShare(data)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}

		dialog.ShowConfirm("Import Shared Layout",
			fmt.Sprintf("Apply the layout %q to the current panel? Its groups, content, and theme will be replaced.", payload.Panel),
			func(ok bool) {
				if !ok {
					return
				}
				a.pushHistory("Import Shared Layout")
				a.applyLayout(a.currentPanel(), payload.Config)
				a.structureChanged()
				a.rebuildThemeTab()
			},
			a.window,
		)
	}, a.window)
}

// exportFileName turns a display name into a safe lowercase file stem.
func exportFileName(name string) string {
	stem := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
	if stem == "" {
		return "panel"
	}
	return stem
}

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

// showTemplatesDialog lists the built-in dashboard templates and the
// user's saved ones. Using a template replaces the whole project;
// saving captures the current dashboard for later reuse.
func (a *App) showTemplatesDialog() {
	store, err := project.LoadDefaultTemplates()
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load templates: %w", err), a.window)
		store = model.NewTemplateStore()
	}

	useTemplate := func(t model.ProjectTemplate) {
		dialog.ShowConfirm("New Dashboard",
			fmt.Sprintf("Replace the current dashboard with '%s'?", t.Name),
			func(ok bool) {
				if !ok {
					return
				}
				a.project = t.ToProject(t.Name)
				a.projectPath = ""
				a.afterProjectChange()
			}, a.window)
	}

	listBox := container.NewVBox()
	var refreshList func()
	refreshList = func() {
		listBox.RemoveAll()

		listBox.Add(container.NewGridWithColumns(4,
			widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Description", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Panels", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Actions", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		))
		listBox.Add(widget.NewSeparator())

		for _, tmpl := range model.BuiltInTemplates() {
			t := tmpl
			useBtn := widget.NewButton("Use", func() { useTemplate(t) })
			listBox.Add(container.NewGridWithColumns(4,
				widget.NewLabel(t.Name),
				widget.NewLabel(t.Description),
				widget.NewLabel(fmt.Sprintf("%d", len(t.Panels))),
				container.NewHBox(useBtn, widget.NewLabel("(built-in)")),
			))
		}

		for i := range store.Templates {
			t := store.Templates[i]
			useBtn := widget.NewButton("Use", func() { useTemplate(t) })
			deleteBtn := newIconButtonWithTooltip(theme.DeleteIcon(), "Delete template", func() {
				dialog.ShowConfirm("Delete Template",
					fmt.Sprintf("Delete template '%s'?", t.Name),
					func(ok bool) {
						if !ok {
							return
						}
						store.Remove(t.ID)
						if err := project.SaveDefaultTemplates(store); err != nil {
							dialog.ShowError(fmt.Errorf("failed to save templates: %w", err), a.window)
						}
						refreshList()
					}, a.window)
			})
			listBox.Add(container.NewGridWithColumns(4,
				widget.NewLabel(t.Name),
				widget.NewLabel(t.Description),
				widget.NewLabel(fmt.Sprintf("%d", len(t.Panels))),
				container.NewHBox(useBtn, deleteBtn),
			))
		}
		listBox.Refresh()
	}
	refreshList()

	saveBtn := widget.NewButtonWithIcon("Save Dashboard as Template", theme.ContentAddIcon(), func() {
		nameEntry := widget.NewEntry()
		nameEntry.SetText(a.project.Name)
		descEntry := widget.NewEntry()
		descEntry.SetPlaceHolder("optional description")

		items := []*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Description", descEntry),
		}
		d := dialog.NewForm("Save Template", "Save", "Cancel", items, func(ok bool) {
			if !ok {
				return
			}
			if nameEntry.Text == "" {
				dialog.ShowError(fmt.Errorf("the template needs a name"), a.window)
				return
			}
			t := model.NewProjectTemplate(nameEntry.Text, descEntry.Text, a.project.Panels)
			store.Add(t)
			if err := project.SaveDefaultTemplates(store); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save templates: %w", err), a.window)
				return
			}
			refreshList()
		}, a.window)
		d.Resize(fyne.NewSize(420, 220))
		d.Show()
	})

	toolbar := container.NewHBox(saveBtn, layout.NewSpacer())
	content := container.NewBorder(toolbar, nil, nil, nil, container.NewVScroll(listBox))

	d := dialog.NewCustom("Dashboard Templates", "Close", content, a.window)
	d.Resize(fyne.NewSize(700, 500))
	d.Show()
}

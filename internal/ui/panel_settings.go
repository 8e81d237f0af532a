package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// buildSettingsTab assembles the per-panel settings: identity, refresh
// and animation behaviour, and which metric source feeds each slot.
func (a *App) buildSettingsTab() fyne.CanvasObject {
	p := a.currentPanel()
	if p == nil {
		return widget.NewLabel("No panel selected.")
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetText(p.Name)
	nameEntry.OnChanged = func(s string) {
		if s == "" {
			return
		}
		p.Name = s
		a.refreshPanelSelector()
	}

	intervalEntry := widget.NewEntry()
	intervalEntry.SetText(strconv.FormatInt(p.Source.UpdateIntervalMS, 10))
	intervalEntry.OnChanged = func(s string) {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil && v > 0 {
			p.Source.UpdateIntervalMS = v
			a.rebindSampler()
		}
	}

	panelCard := widget.NewCard("Panel", "", container.NewGridWithColumns(2,
		widget.NewLabel("Name"), nameEntry,
		widget.NewLabel("Update interval (ms)"), intervalEntry,
	))

	animCard := widget.NewCard("Animation", "", container.NewGridWithColumns(2,
		a.boolCheck("Enable animations", &p.Style.AnimationEnabled), widget.NewLabel(""),
		widget.NewLabel("Speed"), a.floatField(&p.Style.AnimationSpeed),
	))

	ids := a.registry.IDs()
	options := make([]string, 0, len(ids)+1)
	options = append(options, "None")
	for _, id := range ids {
		options = append(options, a.registry.DisplayName(id))
	}
	idForLabel := func(label string) string {
		for _, id := range ids {
			if a.registry.DisplayName(id) == label {
				return id
			}
		}
		return ""
	}
	labelForID := func(id string) string {
		if id == "" || id == "none" || !a.registry.Has(id) {
			return "None"
		}
		return a.registry.DisplayName(id)
	}

	grid := container.NewGridWithColumns(3,
		widget.NewLabelWithStyle("Slot", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Source", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Caption Override", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
	for _, slot := range p.Style.SlotNames() {
		s := slot
		cfg := p.Source.Slot(s)

		srcSelect := widget.NewSelect(options, func(v string) {
			if a.guard.Active() {
				return
			}
			a.pushHistory("Change Source")
			c := p.Source.Slot(s)
			c.SourceID = idForLabel(v)
			p.Source.SetSlot(s, c)
			a.rebindSampler()
		})
		a.guard.Begin()
		srcSelect.SetSelected(labelForID(cfg.SourceID))
		a.guard.End()

		capEntry := widget.NewEntry()
		capEntry.SetPlaceHolder("source default")
		capEntry.SetText(cfg.CaptionOverride)
		capEntry.OnChanged = func(v string) {
			c := p.Source.Slot(s)
			c.CaptionOverride = v
			p.Source.SetSlot(s, c)
			a.rebindSampler()
		}

		grid.Add(widget.NewLabel(s))
		grid.Add(srcSelect)
		grid.Add(capEntry)
	}
	srcCard := widget.NewCard("Data Sources", "Which metric feeds each slot", grid)

	return container.NewVScroll(container.NewVBox(panelCard, animCard, srcCard))
}

package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PulseBoard/internal/model"
)

func orientationLabel(o model.LayoutOrientation) string {
	if o == model.OrientationHorizontal {
		return "Horizontal"
	}
	return "Vertical"
}

func orientationFromLabel(s string) model.LayoutOrientation {
	if s == "Horizontal" {
		return model.OrientationHorizontal
	}
	return model.OrientationVertical
}

var orientationOptions = []string{"Vertical", "Horizontal"}

func intOptions(lo, hi int) []string {
	out := make([]string, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, strconv.Itoa(i))
	}
	return out
}

// buildGroupsTab assembles the group layout editor for the current
// panel: how many groups, how many items each holds, relative sizes,
// stacking direction, and the divider geometry between them.
func (a *App) buildGroupsTab() fyne.CanvasObject {
	p := a.currentPanel()
	if p == nil {
		return widget.NewLabel("No panel selected.")
	}

	floatEntry := func(val *float64) *widget.Entry {
		entry := widget.NewEntry()
		entry.SetText(fmt.Sprintf("%g", *val))
		entry.OnChanged = func(s string) {
			if v, err := strconv.ParseFloat(s, 64); err == nil {
				*val = v
				a.styleEdited()
			}
		}
		return entry
	}

	layoutSelect := widget.NewSelect(orientationOptions, func(s string) {
		if a.guard.Active() {
			return
		}
		p.Style.LayoutOrientation = orientationFromLabel(s)
		a.styleEdited()
	})
	countSelect := widget.NewSelect(intOptions(1, model.MaxGroupItems), func(s string) {
		if a.guard.Active() {
			return
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return
		}
		a.pushHistory("Change Group Count")
		p.SetGroupCount(n)
		a.structureChanged()
	})
	a.guard.Begin()
	layoutSelect.SetSelected(orientationLabel(p.Style.LayoutOrientation))
	countSelect.SetSelected(strconv.Itoa(len(p.Source.Groups)))
	a.guard.End()

	layoutCard := widget.NewCard("Panel Layout", "", container.NewGridWithColumns(2,
		widget.NewLabel("Stack groups"), layoutSelect,
		widget.NewLabel("Group count"), countSelect,
	))

	groupsBox := container.NewVBox()
	for i := range p.Source.Groups {
		idx := i

		itemsSelect := widget.NewSelect(intOptions(model.MinGroupItems, model.MaxGroupItems), func(s string) {
			if a.guard.Active() {
				return
			}
			n, err := strconv.Atoi(s)
			if err != nil {
				return
			}
			a.pushHistory("Change Item Count")
			p.SetGroupItemCount(idx, n)
			a.structureChanged()
		})

		weight := p.Style.SizeWeight(idx)
		weightEntry := widget.NewEntry()
		weightEntry.SetText(fmt.Sprintf("%g", weight))
		weightEntry.OnChanged = func(s string) {
			if v, err := strconv.ParseFloat(s, 64); err == nil && v > 0 {
				p.SetGroupWeight(idx, v)
				a.styleEdited()
			}
		}

		orientSelect := widget.NewSelect(orientationOptions, func(s string) {
			if a.guard.Active() {
				return
			}
			if idx < len(p.Style.GroupItemOrientations) {
				p.Style.GroupItemOrientations[idx] = orientationFromLabel(s)
				a.styleEdited()
			}
		})

		a.guard.Begin()
		itemsSelect.SetSelected(strconv.Itoa(p.Source.Groups[idx].ItemCount))
		orientSelect.SetSelected(orientationLabel(p.Style.GroupOrientation(idx)))
		a.guard.End()

		groupsBox.Add(widget.NewCard(fmt.Sprintf("Group %d", idx+1), "", container.NewGridWithColumns(2,
			widget.NewLabel("Items"), itemsSelect,
			widget.NewLabel("Size weight"), weightEntry,
			widget.NewLabel("Item flow"), orientSelect,
		)))
	}

	geomCard := widget.NewCard("Dividers & Spacing", "", container.NewGridWithColumns(2,
		widget.NewLabel("Divider width"), floatEntry(&p.Style.DividerWidth),
		widget.NewLabel("Divider padding"), floatEntry(&p.Style.DividerPadding),
		widget.NewLabel("Content padding"), floatEntry(&p.Style.ContentPadding),
		widget.NewLabel("Item spacing"), floatEntry(&p.Style.ItemSpacing),
	))

	return container.NewVScroll(container.NewVBox(layoutCard, groupsBox, geomCard))
}

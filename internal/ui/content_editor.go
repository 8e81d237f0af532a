package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PulseBoard/internal/model"
)

func displayTypeOptions() []string {
	out := make([]string, len(model.DisplayTypes))
	for i, t := range model.DisplayTypes {
		out[i] = model.DisplayTypeLabel(t)
	}
	return out
}

func displayTypeFromLabel(s string) model.ContentDisplayType {
	for _, t := range model.DisplayTypes {
		if model.DisplayTypeLabel(t) == s {
			return t
		}
	}
	return model.DisplayBar
}

var barStyleOptions = []string{"Full", "Rectangle", "Segmented"}

func barStyleLabel(s model.BarStyle) string {
	switch s {
	case model.BarRectangle:
		return "Rectangle"
	case model.BarSegmented:
		return "Segmented"
	default:
		return "Full"
	}
}

func barStyleFromLabel(s string) model.BarStyle {
	switch s {
	case "Rectangle":
		return model.BarRectangle
	case "Segmented":
		return model.BarSegmented
	default:
		return model.BarFull
	}
}

var barOrientationOptions = []string{"Horizontal", "Vertical"}

func barOrientationLabel(o model.BarOrientation) string {
	if o == model.BarVertical {
		return "Vertical"
	}
	return "Horizontal"
}

func barOrientationFromLabel(s string) model.BarOrientation {
	if s == "Vertical" {
		return model.BarVertical
	}
	return model.BarHorizontal
}

var fillDirectionOptions = []string{"Left to Right", "Right to Left", "Bottom to Top", "Top to Bottom"}

func fillDirectionLabel(d model.FillDirection) string {
	switch d {
	case model.FillRightToLeft:
		return "Right to Left"
	case model.FillBottomToTop:
		return "Bottom to Top"
	case model.FillTopToBottom:
		return "Top to Bottom"
	default:
		return "Left to Right"
	}
}

func fillDirectionFromLabel(s string) model.FillDirection {
	switch s {
	case "Right to Left":
		return model.FillRightToLeft
	case "Bottom to Top":
		return model.FillBottomToTop
	case "Top to Bottom":
		return model.FillTopToBottom
	default:
		return model.FillLeftToRight
	}
}

var textPositionList = []model.TextPosition{
	model.PosTopLeft, model.PosTopCenter, model.PosTopRight,
	model.PosCenterLeft, model.PosCenter, model.PosCenterRight,
	model.PosBottomLeft, model.PosBottomCenter, model.PosBottomRight,
}

func textPositionLabel(p model.TextPosition) string {
	switch p {
	case model.PosTopLeft:
		return "Top Left"
	case model.PosTopCenter:
		return "Top Center"
	case model.PosTopRight:
		return "Top Right"
	case model.PosCenterLeft:
		return "Center Left"
	case model.PosCenterRight:
		return "Center Right"
	case model.PosBottomLeft:
		return "Bottom Left"
	case model.PosBottomCenter:
		return "Bottom Center"
	case model.PosBottomRight:
		return "Bottom Right"
	default:
		return "Center"
	}
}

func textPositionFromLabel(s string) model.TextPosition {
	for _, p := range textPositionList {
		if textPositionLabel(p) == s {
			return p
		}
	}
	return model.PosCenter
}

func textPositionOptions() []string {
	out := make([]string, len(textPositionList))
	for i, p := range textPositionList {
		out[i] = textPositionLabel(p)
	}
	return out
}

// floatField binds an entry to a float so edits reach the style and
// repaint the preview. Unparseable input is ignored until fixed.
func (a *App) floatField(val *float64) *widget.Entry {
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

func (a *App) intField(val *int) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(strconv.Itoa(*val))
	entry.OnChanged = func(s string) {
		if v, err := strconv.Atoi(s); err == nil {
			*val = v
			a.styleEdited()
		}
	}
	return entry
}

func (a *App) boolCheck(label string, val *bool) *widget.Check {
	c := widget.NewCheck(label, func(b bool) {
		*val = b
		a.styleEdited()
	})
	c.Checked = *val
	return c
}

// colorSourceButton shows a swatch plus the source's label and opens
// the color source dialog on tap, updating both in place.
func (a *App) colorSourceButton(title string, src *model.ColorSource) fyne.CanvasObject {
	pt := a.currentTheme()
	swatch := newColorSwatch(src.Resolve(pt))
	var btn *widget.Button
	btn = widget.NewButton(colorSourceLabel(*src, pt), func() {
		a.showColorSourceDialog(title, *src, func(next model.ColorSource) {
			*src = next
			cur := a.currentTheme()
			swatch.FillColor = next.Resolve(cur).NRGBA()
			swatch.Refresh()
			btn.SetText(colorSourceLabel(next, cur))
			a.styleEdited()
		})
	})
	return container.NewBorder(nil, nil, swatch, nil, btn)
}

func (a *App) fontSourceButton(title string, src *model.FontSource) fyne.CanvasObject {
	var btn *widget.Button
	btn = widget.NewButton(fontSourceLabel(*src, a.currentTheme()), func() {
		a.showFontSourceDialog(title, *src, func(next model.FontSource) {
			*src = next
			btn.SetText(fontSourceLabel(next, a.currentTheme()))
			a.styleEdited()
		})
	})
	return btn
}

// fillEditor edits a FillConfig in place: kind plus the controls that
// kind needs. Gradient fills get seed stops on first switch so the
// start/end buttons have something to edit.
func (a *App) fillEditor(name string, f *model.FillConfig) fyne.CanvasObject {
	box := container.NewVBox()

	var rebuild func()
	rebuild = func() {
		box.RemoveAll()

		kindSelect := widget.NewSelect([]string{"Solid", "Gradient", "Transparent"}, func(s string) {
			if a.guard.Active() {
				return
			}
			switch s {
			case "Gradient":
				f.Kind = model.FillGradient
			case "Transparent":
				f.Kind = model.FillTransparent
			default:
				f.Kind = model.FillSolid
			}
			a.styleEdited()
			rebuild()
		})
		a.guard.Begin()
		switch f.Kind {
		case model.FillGradient:
			kindSelect.SetSelected("Gradient")
		case model.FillTransparent:
			kindSelect.SetSelected("Transparent")
		default:
			kindSelect.SetSelected("Solid")
		}
		a.guard.End()

		box.Add(container.NewBorder(nil, nil, widget.NewLabelWithStyle(name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), nil, kindSelect))

		switch f.Kind {
		case model.FillSolid:
			box.Add(a.colorSourceButton(name+" Color", &f.Color))
		case model.FillGradient:
			if len(f.Stops) < 2 {
				f.Stops = []model.GradientStop{
					{Position: 0.0, Color: model.ThemeColor(1)},
					{Position: 1.0, Color: model.ThemeColor(2)},
				}
			}
			box.Add(container.NewGridWithColumns(2,
				widget.NewLabel("Start"), a.colorSourceButton(name+" Start", &f.Stops[0].Color),
				widget.NewLabel("End"), a.colorSourceButton(name+" End", &f.Stops[len(f.Stops)-1].Color),
				widget.NewLabel("Angle"), a.floatField(&f.Angle),
			))
		}
		box.Refresh()
	}
	rebuild()
	return box
}

func (a *App) borderEditor(b *model.BorderConfig) fyne.CanvasObject {
	return container.NewGridWithColumns(2,
		a.boolCheck("Border", &b.Enabled), widget.NewLabel(""),
		widget.NewLabel("Width"), a.floatField(&b.Width),
		widget.NewLabel("Color"), a.colorSourceButton("Border Color", &b.Color),
	)
}

// textLinesEditor edits the ordered lines of a TextConfig: which field
// each line shows, its font, style, color, and anchor position.
func (a *App) textLinesEditor(tc *model.TextConfig) fyne.CanvasObject {
	box := container.NewVBox()

	var rebuild func()
	rebuild = func() {
		box.RemoveAll()

		for i := range tc.Lines {
			idx := i
			line := &tc.Lines[idx]

			fieldEntry := widget.NewSelectEntry([]string{
				model.FieldCaption, model.FieldValue, model.FieldUnit, model.FieldNumerical,
			})
			fieldEntry.SetText(line.FieldID)
			fieldEntry.OnChanged = func(s string) {
				line.FieldID = s
				a.styleEdited()
			}

			posSelect := widget.NewSelect(textPositionOptions(), func(s string) {
				if a.guard.Active() {
					return
				}
				line.Position = textPositionFromLabel(s)
				a.styleEdited()
			})
			a.guard.Begin()
			posSelect.SetSelected(textPositionLabel(line.Position))
			a.guard.End()

			boldCheck := a.boolCheck("B", &line.Bold)
			italicCheck := a.boolCheck("I", &line.Italic)

			fontBtn := widget.NewButton("Aa", func() {
				a.showFontSourceDialog("Line Font", line.Font, func(next model.FontSource) {
					line.Font = next
					a.styleEdited()
				})
			})
			colorBtn := newIconButtonWithTooltip(theme.ColorPaletteIcon(), "Line color", func() {
				a.showColorSourceDialog("Line Color", line.Color, func(next model.ColorSource) {
					line.Color = next
					a.styleEdited()
				})
			})

			upBtn := newIconButtonWithTooltip(theme.MoveUpIcon(), "Move line up", func() {
				if idx > 0 {
					tc.Lines[idx-1], tc.Lines[idx] = tc.Lines[idx], tc.Lines[idx-1]
					a.styleEdited()
					rebuild()
				}
			})
			downBtn := newIconButtonWithTooltip(theme.MoveDownIcon(), "Move line down", func() {
				if idx < len(tc.Lines)-1 {
					tc.Lines[idx], tc.Lines[idx+1] = tc.Lines[idx+1], tc.Lines[idx]
					a.styleEdited()
					rebuild()
				}
			})
			delBtn := newIconButtonWithTooltip(theme.DeleteIcon(), "Remove line", func() {
				tc.Lines = append(tc.Lines[:idx], tc.Lines[idx+1:]...)
				a.styleEdited()
				rebuild()
			})

			box.Add(container.NewBorder(nil, nil, nil,
				container.NewHBox(boldCheck, italicCheck, fontBtn, colorBtn, upBtn, downBtn, delBtn),
				container.NewGridWithColumns(2, fieldEntry, posSelect),
			))
		}

		addBtn := widget.NewButtonWithIcon("Add Line", theme.ContentAddIcon(), func() {
			tc.Lines = append(tc.Lines, model.TextLine{
				FieldID:  model.FieldValue,
				Font:     model.ThemeFont(1),
				Color:    model.CustomColor(model.NewColor(1, 1, 1)),
				Position: model.PosCenter,
			})
			a.styleEdited()
			rebuild()
		})
		box.Add(addBtn)
		box.Refresh()
	}
	rebuild()
	return box
}

func (a *App) overlayCard(o *model.TextOverlayConfig) *widget.Card {
	return widget.NewCard("Text Overlay", "", container.NewVBox(
		a.boolCheck("Show text over the display", &o.Enabled),
		a.textLinesEditor(&o.Text),
	))
}

// slotFieldMetadata describes the fields the slot's bound source
// publishes, with slot-prefixed IDs, for display type suggestions.
func (a *App) slotFieldMetadata(p *model.Panel, slot string) []model.FieldMetadata {
	cfg := p.Source.Slot(slot)
	if cfg.SourceID == "" || cfg.SourceID == "none" {
		return nil
	}
	src, err := a.registry.Create(cfg.SourceID)
	if err != nil {
		return nil
	}
	fields := src.Fields()
	out := make([]model.FieldMetadata, len(fields))
	for i, f := range fields {
		f.ID = model.FieldKey(slot, f.ID)
		out[i] = f
	}
	return out
}

// buildContentTab assembles the per-slot display editor: pick a slot,
// pick how it draws, then tune the controls for that display type.
func (a *App) buildContentTab() fyne.CanvasObject {
	p := a.currentPanel()
	if p == nil {
		return widget.NewLabel("No panel selected.")
	}
	slots := p.Style.SlotNames()
	if len(slots) == 0 {
		return widget.NewLabel("This panel has no content slots.")
	}

	known := false
	for _, s := range slots {
		if s == a.contentSlot {
			known = true
			break
		}
	}
	if !known {
		a.contentSlot = slots[0]
	}

	slotSelect := widget.NewSelect(slots, func(s string) {
		if a.guard.Active() {
			return
		}
		a.contentSlot = s
		a.rebuildContentTab()
	})

	item := p.Style.ContentItem(a.contentSlot, a.slotFieldMetadata(p, a.contentSlot))

	displaySelect := widget.NewSelect(displayTypeOptions(), func(s string) {
		if a.guard.Active() {
			return
		}
		item.DisplayAs = displayTypeFromLabel(s)
		a.styleEdited()
		a.rebuildContentTab()
	})

	a.guard.Begin()
	slotSelect.SetSelected(a.contentSlot)
	displaySelect.SetSelected(model.DisplayTypeLabel(item.DisplayAs))
	a.guard.End()

	pickCard := widget.NewCard("Slot", "", container.NewGridWithColumns(2,
		widget.NewLabel("Slot"), slotSelect,
		widget.NewLabel("Display as"), displaySelect,
		a.boolCheck("Auto height", &item.AutoHeight), widget.NewLabel(""),
		widget.NewLabel("Item height"), a.floatField(&item.ItemHeight),
	))

	sections := []fyne.CanvasObject{pickCard}
	switch item.DisplayAs {
	case model.DisplayBar, model.DisplayLevelBar:
		sections = append(sections, a.barSections(&item.Bar)...)
	case model.DisplayText:
		sections = append(sections, widget.NewCard("Text Lines", "", a.textLinesEditor(&item.Bar.TextOverlay.Text)))
	case model.DisplayGraph:
		sections = append(sections, a.graphSections(&item.Graph)...)
	case model.DisplayCoreBars:
		sections = append(sections, a.coreBarsSections(&item.CoreBars)...)
	case model.DisplayStatic:
		sections = append(sections,
			widget.NewCard("Background", "", a.fillEditor("Background", &item.Static.Background)),
			a.overlayCard(&item.Static.TextOverlay),
		)
	case model.DisplayArc:
		sections = append(sections, a.arcSections(&item.Arc)...)
	case model.DisplaySpeedometer:
		sections = append(sections, a.speedometerSections(&item.Speedometer)...)
	}

	return container.NewVScroll(container.NewVBox(sections...))
}

func (a *App) barSections(bar *model.BarConfig) []fyne.CanvasObject {
	styleSelect := widget.NewSelect(barStyleOptions, func(s string) {
		if a.guard.Active() {
			return
		}
		bar.Style = barStyleFromLabel(s)
		a.styleEdited()
	})
	orientSelect := widget.NewSelect(barOrientationOptions, func(s string) {
		if a.guard.Active() {
			return
		}
		bar.Orientation = barOrientationFromLabel(s)
		a.styleEdited()
	})
	dirSelect := widget.NewSelect(fillDirectionOptions, func(s string) {
		if a.guard.Active() {
			return
		}
		bar.FillDirection = fillDirectionFromLabel(s)
		a.styleEdited()
	})
	a.guard.Begin()
	styleSelect.SetSelected(barStyleLabel(bar.Style))
	orientSelect.SetSelected(barOrientationLabel(bar.Orientation))
	dirSelect.SetSelected(fillDirectionLabel(bar.FillDirection))
	a.guard.End()

	shapeCard := widget.NewCard("Shape", "", container.NewGridWithColumns(2,
		widget.NewLabel("Style"), styleSelect,
		widget.NewLabel("Orientation"), orientSelect,
		widget.NewLabel("Fill direction"), dirSelect,
		widget.NewLabel("Corner radius"), a.floatField(&bar.CornerRadius),
		widget.NewLabel("Padding"), a.floatField(&bar.Padding),
		widget.NewLabel("Rectangle width"), a.floatField(&bar.RectangleWidth),
		widget.NewLabel("Rectangle height"), a.floatField(&bar.RectangleHeight),
		widget.NewLabel("Segments"), a.intField(&bar.SegmentCount),
		widget.NewLabel("Segment spacing"), a.floatField(&bar.SegmentSpacing),
	))

	fillCard := widget.NewCard("Fill", "", container.NewVBox(
		a.fillEditor("Foreground", &bar.Foreground),
		widget.NewSeparator(),
		a.fillEditor("Background", &bar.Background),
		widget.NewSeparator(),
		a.borderEditor(&bar.Border),
	))

	animCard := widget.NewCard("Animation", "", container.NewGridWithColumns(2,
		a.boolCheck("Smooth value changes", &bar.SmoothAnimation), widget.NewLabel(""),
		widget.NewLabel("Speed"), a.floatField(&bar.AnimationSpeed),
	))

	return []fyne.CanvasObject{shapeCard, fillCard, animCard, a.overlayCard(&bar.TextOverlay)}
}

func (a *App) graphSections(g *model.GraphConfig) []fyne.CanvasObject {
	lineCard := widget.NewCard("Line", "", container.NewGridWithColumns(2,
		widget.NewLabel("Width"), a.floatField(&g.LineWidth),
		widget.NewLabel("Color"), a.colorSourceButton("Line Color", &g.LineColor),
		a.boolCheck("Smooth lines", &g.SmoothLines), widget.NewLabel(""),
		a.boolCheck("Show points", &g.ShowPoints), widget.NewLabel(""),
		widget.NewLabel("Point radius"), a.floatField(&g.PointRadius),
		widget.NewLabel("Point color"), a.colorSourceButton("Point Color", &g.PointColor),
	))

	fillBox := container.NewVBox()
	var rebuildFill func()
	rebuildFill = func() {
		fillBox.RemoveAll()
		modeSelect := widget.NewSelect([]string{"None", "Solid", "Gradient"}, func(s string) {
			if a.guard.Active() {
				return
			}
			switch s {
			case "Solid":
				g.FillMode = model.GraphFillSolid
			case "Gradient":
				g.FillMode = model.GraphFillGradient
			default:
				g.FillMode = model.GraphFillNone
			}
			a.styleEdited()
			rebuildFill()
		})
		a.guard.Begin()
		switch g.FillMode {
		case model.GraphFillSolid:
			modeSelect.SetSelected("Solid")
		case model.GraphFillGradient:
			modeSelect.SetSelected("Gradient")
		default:
			modeSelect.SetSelected("None")
		}
		a.guard.End()

		fillBox.Add(container.NewBorder(nil, nil, widget.NewLabel("Fill under line"), nil, modeSelect))
		switch g.FillMode {
		case model.GraphFillSolid:
			fillBox.Add(a.colorSourceButton("Fill Color", &g.FillColor))
		case model.GraphFillGradient:
			fillBox.Add(container.NewGridWithColumns(2,
				widget.NewLabel("Top"), a.colorSourceButton("Fill Top", &g.FillGradientStart),
				widget.NewLabel("Bottom"), a.colorSourceButton("Fill Bottom", &g.FillGradientEnd),
			))
		}
		fillBox.Refresh()
	}
	rebuildFill()
	fillCard := widget.NewCard("Fill", "", fillBox)

	scaleCard := widget.NewCard("Scale", "", container.NewGridWithColumns(2,
		a.boolCheck("Auto scale", &g.AutoScale), widget.NewLabel(""),
		widget.NewLabel("Min value"), a.floatField(&g.MinValue),
		widget.NewLabel("Max value"), a.floatField(&g.MaxValue),
		widget.NewLabel("Headroom %"), a.floatField(&g.ValuePadding),
		widget.NewLabel("History points"), a.intField(&g.MaxDataPoints),
	))

	return []fyne.CanvasObject{lineCard, fillCard, scaleCard, a.overlayCard(&g.TextOverlay)}
}

func (a *App) coreBarsSections(c *model.CoreBarsConfig) []fyne.CanvasObject {
	orientSelect := widget.NewSelect(barOrientationOptions, func(s string) {
		if a.guard.Active() {
			return
		}
		c.Orientation = barOrientationFromLabel(s)
		a.styleEdited()
	})
	dirSelect := widget.NewSelect(fillDirectionOptions, func(s string) {
		if a.guard.Active() {
			return
		}
		c.FillDirection = fillDirectionFromLabel(s)
		a.styleEdited()
	})
	a.guard.Begin()
	orientSelect.SetSelected(barOrientationLabel(c.Orientation))
	dirSelect.SetSelected(fillDirectionLabel(c.FillDirection))
	a.guard.End()

	rangeCard := widget.NewCard("Core Range", "", container.NewGridWithColumns(2,
		widget.NewLabel("First core"), a.intField(&c.StartCore),
		widget.NewLabel("Last core"), a.intField(&c.EndCore),
	))

	shapeCard := widget.NewCard("Bars", "", container.NewGridWithColumns(2,
		widget.NewLabel("Orientation"), orientSelect,
		widget.NewLabel("Fill direction"), dirSelect,
		widget.NewLabel("Corner radius"), a.floatField(&c.CornerRadius),
		widget.NewLabel("Bar spacing"), a.floatField(&c.BarSpacing),
		widget.NewLabel("Segments"), a.intField(&c.SegmentCount),
		widget.NewLabel("Segment spacing"), a.floatField(&c.SegmentSpacing),
	))

	fillCard := widget.NewCard("Fill", "", container.NewVBox(
		a.fillEditor("Foreground", &c.Foreground),
		widget.NewSeparator(),
		a.fillEditor("Background", &c.Background),
		widget.NewSeparator(),
		a.borderEditor(&c.Border),
	))

	labelEntry := widget.NewEntry()
	labelEntry.SetText(c.LabelPrefix)
	labelEntry.OnChanged = func(s string) {
		c.LabelPrefix = s
		a.styleEdited()
	}
	labelsCard := widget.NewCard("Labels", "", container.NewGridWithColumns(2,
		a.boolCheck("Show core labels", &c.ShowLabels), widget.NewLabel(""),
		widget.NewLabel("Prefix"), labelEntry,
		a.boolCheck("Bold", &c.LabelBold), widget.NewLabel(""),
		widget.NewLabel("Font"), a.fontSourceButton("Label Font", &c.LabelFont),
		widget.NewLabel("Color"), a.colorSourceButton("Label Color", &c.LabelColor),
	))

	animCard := widget.NewCard("Animation", "", container.NewGridWithColumns(2,
		a.boolCheck("Smooth value changes", &c.Animate), widget.NewLabel(""),
		widget.NewLabel("Speed"), a.floatField(&c.AnimationSpeed),
	))

	return []fyne.CanvasObject{rangeCard, shapeCard, fillCard, labelsCard, animCard, a.overlayCard(&c.TextOverlay)}
}

func (a *App) arcSections(c *model.ArcConfig) []fyne.CanvasObject {
	geomCard := widget.NewCard("Geometry", "", container.NewGridWithColumns(2,
		widget.NewLabel("Start angle"), a.floatField(&c.StartAngle),
		widget.NewLabel("End angle"), a.floatField(&c.EndAngle),
		widget.NewLabel("Arc width"), a.floatField(&c.ArcWidth),
		widget.NewLabel("Radius"), a.floatField(&c.RadiusPercent),
	))

	segCard := widget.NewCard("Segments", "", container.NewGridWithColumns(2,
		a.boolCheck("Segmented", &c.Segmented), widget.NewLabel(""),
		widget.NewLabel("Count"), a.intField(&c.SegmentCount),
		widget.NewLabel("Spacing °"), a.floatField(&c.SegmentSpacing),
	))

	bgCard := widget.NewCard("Background Arc", "", container.NewGridWithColumns(2,
		a.boolCheck("Show background arc", &c.ShowBackgroundArc), widget.NewLabel(""),
		widget.NewLabel("Color"), a.colorSourceButton("Background Arc Color", &c.BackgroundColor),
	))

	animCard := widget.NewCard("Animation", "", container.NewGridWithColumns(2,
		a.boolCheck("Animate value changes", &c.Animate), widget.NewLabel(""),
		widget.NewLabel("Duration s"), a.floatField(&c.AnimationDuration),
	))

	return []fyne.CanvasObject{geomCard, segCard, bgCard, animCard, a.overlayCard(&c.TextOverlay)}
}

func (a *App) speedometerSections(c *model.SpeedometerConfig) []fyne.CanvasObject {
	geomCard := widget.NewCard("Geometry", "", container.NewGridWithColumns(2,
		widget.NewLabel("Start angle"), a.floatField(&c.StartAngle),
		widget.NewLabel("End angle"), a.floatField(&c.EndAngle),
		widget.NewLabel("Arc width"), a.floatField(&c.ArcWidth),
		widget.NewLabel("Radius"), a.floatField(&c.RadiusPercent),
	))

	trackCard := widget.NewCard("Track", "", container.NewGridWithColumns(2,
		a.boolCheck("Show track", &c.ShowTrack), widget.NewLabel(""),
		widget.NewLabel("Color"), a.colorSourceButton("Track Color", &c.TrackColor),
	))

	ticksCard := widget.NewCard("Ticks", "", container.NewGridWithColumns(2,
		a.boolCheck("Major ticks", &c.ShowMajorTicks), widget.NewLabel(""),
		widget.NewLabel("Major count"), a.intField(&c.MajorTickCount),
		widget.NewLabel("Major length"), a.floatField(&c.MajorTickLength),
		widget.NewLabel("Major width"), a.floatField(&c.MajorTickWidth),
		widget.NewLabel("Major color"), a.colorSourceButton("Major Tick Color", &c.MajorTickColor),
		a.boolCheck("Minor ticks", &c.ShowMinorTicks), widget.NewLabel(""),
		widget.NewLabel("Per major"), a.intField(&c.MinorTicksPerMajor),
		widget.NewLabel("Minor length"), a.floatField(&c.MinorTickLength),
		widget.NewLabel("Minor width"), a.floatField(&c.MinorTickWidth),
		widget.NewLabel("Minor color"), a.colorSourceButton("Minor Tick Color", &c.MinorTickColor),
		a.boolCheck("Tick labels", &c.ShowTickLabels), widget.NewLabel(""),
		widget.NewLabel("Label font"), a.fontSourceButton("Tick Label Font", &c.TickLabelFont),
		widget.NewLabel("Label color"), a.colorSourceButton("Tick Label Color", &c.TickLabelColor),
	))

	needleCard := widget.NewCard("Needle & Hub", "", container.NewGridWithColumns(2,
		a.boolCheck("Needle", &c.ShowNeedle), widget.NewLabel(""),
		widget.NewLabel("Length"), a.floatField(&c.NeedleLength),
		widget.NewLabel("Width"), a.floatField(&c.NeedleWidth),
		widget.NewLabel("Color"), a.colorSourceButton("Needle Color", &c.NeedleColor),
		a.boolCheck("Center hub", &c.ShowCenterHub), widget.NewLabel(""),
		widget.NewLabel("Hub radius"), a.floatField(&c.CenterHubRadius),
		widget.NewLabel("Hub color"), a.colorSourceButton("Hub Color", &c.CenterHubColor),
		a.boolCheck("Bezel", &c.ShowBezel), widget.NewLabel(""),
		widget.NewLabel("Bezel width"), a.floatField(&c.BezelWidth),
		widget.NewLabel("Bezel color"), a.colorSourceButton("Bezel Color", &c.BezelColor),
	))

	animCard := widget.NewCard("Animation", "", container.NewGridWithColumns(2,
		a.boolCheck("Animate needle", &c.Animate), widget.NewLabel(""),
		widget.NewLabel("Duration s"), a.floatField(&c.AnimationDuration),
	))

	return []fyne.CanvasObject{geomCard, trackCard, ticksCard, needleCard, animCard, a.overlayCard(&c.TextOverlay)}
}

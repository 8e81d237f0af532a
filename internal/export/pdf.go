// Package export renders panel layouts to shareable file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/PulseBoard/internal/engine"
	"github.com/piwi3910/PulseBoard/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// Reference size the panel layout is computed at before scaling onto
// the page. 4:3, matching the preview canvas.
const (
	panelRefWidth  = 400.0
	panelRefHeight = 300.0
)

// panelLayout is the computed geometry of one panel at the reference size.
type panelLayout struct {
	content  engine.Rect
	groups   []engine.Rect
	dividers []engine.Rect
	items    [][]engine.Rect
	stats    engine.LayoutStats
}

// computeLayout runs the layout engine for a panel at the reference size.
func computeLayout(panel model.Panel) panelLayout {
	style := panel.Style
	content := engine.Rect{
		X: style.ContentPadding,
		Y: style.ContentPadding,
		W: panelRefWidth - 2*style.ContentPadding,
		H: panelRefHeight - 2*style.ContentPadding,
	}

	groups := engine.CalculateGroupLayouts(content, style.GroupCount,
		style.GroupSizeWeights, style.DividerWidth, style.DividerPadding, style.LayoutOrientation)
	dividers := engine.DividerRects(content, groups,
		style.DividerWidth, style.DividerPadding, style.LayoutOrientation)

	items := make([][]engine.Rect, len(groups))
	for gi, g := range groups {
		count := 0
		if gi < len(style.GroupItemCounts) {
			count = style.GroupItemCounts[gi]
		}
		sizes := make([]engine.ItemSize, count)
		for n := 0; n < count; n++ {
			slot := model.GroupSlot(gi+1, n+1).String()
			if item, ok := style.ContentItems[slot]; ok && item != nil {
				sizes[n] = engine.ItemSizeFor(*item)
			}
		}
		items[gi] = engine.CalculateItemLayouts(g, sizes, style.ItemSpacing, style.GroupOrientation(gi))
	}

	return panelLayout{
		content:  content,
		groups:   groups,
		dividers: dividers,
		items:    items,
		stats:    engine.CalculateLayoutStats(content, groups, dividers, style.GroupItemCounts),
	}
}

// ExportPDF generates a PDF document with one page per panel, drawing
// the computed layout to scale with the panel's resolved theme colors,
// followed by a summary page.
func ExportPDF(path string, proj model.Project) error {
	if len(proj.Panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, panel := range proj.Panels {
		pdf.AddPage()
		renderPanelPage(pdf, panel, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, proj)

	return pdf.OutputFileAndClose(path)
}

// renderPanelPage draws a single panel layout on the current PDF page.
func renderPanelPage(pdf *fpdf.Fpdf, panel model.Panel, pageNum int) {
	layout := computeLayout(panel)
	theme := panel.Style.Theme

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Panel %d: %s (%s)", pageNum, panel.Name, panel.Style.Style)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Groups: %d | Items: %d | Utilization: %.1f%% | Cut length: %.0f units",
		layout.stats.GroupCount, layout.stats.ItemCount, layout.stats.UtilizationPct, layout.stats.TotalCutLength)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Calculate drawing area and scale
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	scale := math.Min(drawWidth/panelRefWidth, drawHeight/panelRefHeight)
	canvasW := panelRefWidth * scale
	canvasH := panelRefHeight * scale

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Panel background from the resolved gradient midpoint
	bg := theme.Gradient.Resolve(theme).ColorAt(0.5)
	setFill(pdf, bg)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Group rectangles, outlined in the primary color
	for gi, g := range layout.groups {
		if g.W <= 0 || g.H <= 0 {
			continue
		}
		setDraw(pdf, theme.GetColor(1))
		pdf.SetLineWidth(0.4)
		pdf.Rect(offsetX+g.X*scale, offsetY+g.Y*scale, g.W*scale, g.H*scale, "D")

		drawGroupItems(pdf, panel, layout.items[gi], gi, theme, scale, offsetX, offsetY)
	}

	// Divider bars in the primary color
	setFill(pdf, theme.GetColor(1))
	for _, d := range layout.dividers {
		if d.W <= 0 || d.H <= 0 {
			continue
		}
		pdf.Rect(offsetX+d.X*scale, offsetY+d.Y*scale, d.W*scale, d.H*scale, "F")
	}

	drawDimensionAnnotations(pdf, scale, offsetX, offsetY, canvasW, canvasH)
	drawSlotLegend(pdf, panel, theme, offsetY+canvasH+5)
}

// drawGroupItems renders the item rectangles of one group with their
// slot bindings as labels.
func drawGroupItems(pdf *fpdf.Fpdf, panel model.Panel, items []engine.Rect, gi int, theme model.PanelTheme, scale, offsetX, offsetY float64) {
	for n, item := range items {
		if item.W <= 0 || item.H <= 0 {
			continue
		}
		iw := item.W * scale
		ih := item.H * scale
		ix := offsetX + item.X*scale
		iy := offsetY + item.Y*scale

		setDraw(pdf, theme.GetColor(3))
		pdf.SetLineWidth(0.2)
		pdf.Rect(ix, iy, iw, ih, "D")

		// Slot label (only if rectangle is large enough)
		if iw > 15 && ih > 8 {
			slot := model.GroupSlot(gi+1, n+1).String()
			label := slotLabel(panel.Source.Slot(slot), slot)

			pdf.SetFont("Helvetica", "", labelFontSize(iw, ih))
			setText(pdf, theme.GetColor(4))
			labelW := pdf.GetStringWidth(label)
			if labelW < iw-2 {
				pdf.SetXY(ix+(iw-labelW)/2, iy+ih/2-2)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
		}
	}
	pdf.SetTextColor(0, 0, 0)
}

// slotLabel renders a slot binding for display: the caption override if
// set, else the source ID, else the slot name alone.
func slotLabel(cfg model.SlotConfig, slot string) string {
	switch {
	case cfg.CaptionOverride != "":
		return cfg.CaptionOverride
	case cfg.SourceID != "" && cfg.SourceID != "none":
		return cfg.SourceID
	default:
		return slot
	}
}

// drawDimensionAnnotations adds reference-unit dimension labels outside
// the panel rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, scale, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.0f units", panelRefWidth)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%.0f units", panelRefHeight)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawSlotLegend renders a compact legend of slot bindings at the
// bottom of the panel page.
func drawSlotLegend(pdf *fpdf.Fpdf, panel model.Panel, theme model.PanelTheme, startY float64) {
	slots := panel.Source.SlotNames()
	if len(slots) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Slot bindings:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for _, slot := range slots {
		cfg := panel.Source.Slot(slot)
		label := slot + ": "
		if cfg.SourceID == "" || cfg.SourceID == "none" {
			label += "(unbound)"
		} else {
			label += cfg.SourceID
			if cfg.CaptionOverride != "" {
				label += fmt.Sprintf(" %q", cfg.CaptionOverride)
			}
		}
		labelW := pdf.GetStringWidth(label) + 6

		// Wrap to next line if needed
		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		// Color swatch
		setFill(pdf, theme.GetColor(3))
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final summary page: per-panel breakdown
// and theme swatches.
func renderSummaryPage(pdf *fpdf.Fpdf, proj model.Project) {
	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	title := proj.Name
	if title == "" {
		title = "Dashboard"
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, title+" - Layout Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	// Per-panel breakdown table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Panel Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{15, 70, 45, 25, 25, 35, 40}
	headers := []string{"#", "Panel", "Theme", "Groups", "Items", "Utilization", "Cut Length"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, panel := range proj.Panels {
		layout := computeLayout(panel)
		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			panel.Name,
			panel.Style.Style,
			fmt.Sprintf("%d", layout.stats.GroupCount),
			fmt.Sprintf("%d", layout.stats.ItemCount),
			fmt.Sprintf("%.1f%%", layout.stats.UtilizationPct),
			fmt.Sprintf("%.0f units", layout.stats.TotalCutLength),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	y += 10

	// Theme swatches per panel
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Theme Colors", "", 0, "L", false, 0, "")
	y += 9

	for _, panel := range proj.Panels {
		theme := panel.Style.Theme

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(55, 6, panel.Name, "", 0, "L", false, 0, "")

		xPos = marginLeft + 62
		for slot := 1; slot <= 4; slot++ {
			c := theme.GetColor(slot)
			setFill(pdf, c)
			pdf.SetDrawColor(100, 100, 100)
			pdf.SetLineWidth(0.2)
			pdf.Rect(xPos, y+0.5, 5, 5, "FD")

			pdf.SetFont("Helvetica", "", 7)
			pdf.SetTextColor(80, 80, 80)
			pdf.SetXY(xPos+6, y+1)
			pdf.CellFormat(18, 4, c.Hex(), "", 0, "L", false, 0, "")

			xPos += 28
		}
		y += 8

		if y > pageHeight-marginBottom-15 {
			break
		}
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by PulseBoard - System Dashboard Builder", "", 0, "C", false, 0, "")
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}

// setFill applies a theme color as the PDF fill color.
func setFill(pdf *fpdf.Fpdf, c model.Color) {
	r, g, b, _ := c.RGBA8()
	pdf.SetFillColor(int(r), int(g), int(b))
}

// setDraw applies a theme color as the PDF stroke color.
func setDraw(pdf *fpdf.Fpdf, c model.Color) {
	r, g, b, _ := c.RGBA8()
	pdf.SetDrawColor(int(r), int(g), int(b))
}

// setText applies a theme color as the PDF text color.
func setText(pdf *fpdf.Fpdf, c model.Color) {
	r, g, b, _ := c.RGBA8()
	pdf.SetTextColor(int(r), int(g), int(b))
}

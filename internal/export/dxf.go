package export

import (
	"fmt"

	"github.com/yofu/dxf"
	dxfcolor "github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/PulseBoard/internal/engine"
	"github.com/piwi3910/PulseBoard/internal/model"
)

// DXF layer names for the faceplate geometry.
const (
	layerOutline  = "OUTLINE"
	layerGroups   = "GROUPS"
	layerDividers = "DIVIDERS"
)

// ExportDXF writes the faceplate geometry of a panel as a layered DXF
// file: the panel outline, the group boundary rectangles, and one cut
// line per divider. Returns the layout stats so callers can report the
// total trim length.
//
// DXF uses a Y-up coordinate system; panel coordinates are Y-down, so
// everything is flipped against the reference height.
func ExportDXF(path string, panel model.Panel) (engine.LayoutStats, error) {
	layout := computeLayout(panel)

	d := dxf.NewDrawing()

	if _, err := d.AddLayer(layerOutline, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return layout.stats, fmt.Errorf("adding outline layer: %w", err)
	}
	if err := dxfRect(d, engine.Rect{X: 0, Y: 0, W: panelRefWidth, H: panelRefHeight}); err != nil {
		return layout.stats, fmt.Errorf("drawing panel outline: %w", err)
	}

	if _, err := d.AddLayer(layerGroups, dxfcolor.Cyan, dxf.DefaultLineType, true); err != nil {
		return layout.stats, fmt.Errorf("adding groups layer: %w", err)
	}
	for _, g := range layout.groups {
		if g.W <= 0 || g.H <= 0 {
			continue
		}
		if err := dxfRect(d, g); err != nil {
			return layout.stats, fmt.Errorf("drawing group boundary: %w", err)
		}
	}

	if _, err := d.AddLayer(layerDividers, dxfcolor.Red, dxf.DefaultLineType, true); err != nil {
		return layout.stats, fmt.Errorf("adding dividers layer: %w", err)
	}
	for _, div := range layout.dividers {
		if div.W <= 0 || div.H <= 0 {
			continue
		}
		if err := dxfCutLine(d, div); err != nil {
			return layout.stats, fmt.Errorf("drawing divider cut: %w", err)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return layout.stats, fmt.Errorf("writing DXF file: %w", err)
	}
	return layout.stats, nil
}

// dxfRect draws a rectangle as a closed LWPOLYLINE, flipped to Y-up.
func dxfRect(d *drawing.Drawing, r engine.Rect) error {
	_, err := d.LwPolyline(true,
		[]float64{r.X, panelRefHeight - (r.Y + r.H)},
		[]float64{r.X + r.W, panelRefHeight - (r.Y + r.H)},
		[]float64{r.X + r.W, panelRefHeight - r.Y},
		[]float64{r.X, panelRefHeight - r.Y},
	)
	return err
}

// dxfCutLine draws one straight cut along a divider's long edge,
// centered in the bar.
func dxfCutLine(d *drawing.Drawing, div engine.Rect) error {
	var err error
	if div.W > div.H {
		cy := panelRefHeight - (div.Y + div.H/2)
		_, err = d.Line(div.X, cy, 0, div.X+div.W, cy, 0)
	} else {
		cx := div.X + div.W/2
		_, err = d.Line(cx, panelRefHeight-div.Y, 0, cx, panelRefHeight-(div.Y+div.H), 0)
	}
	return err
}

package widgets

import (
	"image"
	"math"

	"fyne.io/fyne/v2/canvas"

	"github.com/piwi3910/PulseBoard/internal/engine"
	"github.com/piwi3910/PulseBoard/internal/model"
)

// Graph rasters render at a capped resolution and scale up with their
// item, keeping the per-frame redraw cost flat.
const (
	graphMaxWidth  = 320
	graphMaxHeight = 200
)

// renderGraph draws the scrolling history trace of one slot: the fill
// under the line, the line itself and the optional sample points. The
// trace grows in from the right edge until the buffer is full.
func (r *panelCanvasRenderer) renderGraph(slot string, cfg model.GraphConfig, rect engine.Rect, data model.ItemData, theme model.PanelTheme) {
	points := r.pc.history.Points(slot)
	raster := canvas.NewRaster(graphGenerator(cfg, theme, points))
	placeObject(raster, rect)
	r.objects = append(r.objects, raster)
	if cfg.TextOverlay.Enabled {
		r.renderText(slot, cfg.TextOverlay.Text, rect, data, theme)
	}
}

// graphGenerator renders a graph config and its history into an image.
func graphGenerator(cfg model.GraphConfig, theme model.PanelTheme, points []engine.GraphPoint) func(w, h int) image.Image {
	return func(w, h int) image.Image {
		iw, ih := w, h
		if iw > graphMaxWidth {
			iw = graphMaxWidth
		}
		if ih > graphMaxHeight {
			ih = graphMaxHeight
		}
		if iw < 2 {
			iw = 2
		}
		if ih < 2 {
			ih = 2
		}
		img := image.NewNRGBA(image.Rect(0, 0, iw, ih))

		n := len(points)
		if n == 0 {
			return img
		}

		lo, hi := cfg.MinValue, cfg.MaxValue
		if cfg.AutoScale {
			lo, hi = autoRange(points, cfg.ValuePadding)
		}
		if hi <= lo {
			hi = lo + 1
		}

		maxPoints := cfg.MaxDataPoints
		if maxPoints < 2 {
			maxPoints = 2
		}
		step := float64(iw-1) / float64(maxPoints-1)
		toX := func(i int) float64 {
			return float64(iw-1) - float64(n-1-i)*step
		}
		toY := func(v float64) float64 {
			return (1 - clamp01((v-lo)/(hi-lo))) * float64(ih-1)
		}

		lineColor := cfg.LineColor.Resolve(theme)
		if n == 1 {
			stampDisc(img, toX(0), toY(points[0].Value), math.Max(1, cfg.LineWidth/2), lineColor)
			return img
		}

		if cfg.FillMode != model.GraphFillNone {
			fillGraphArea(img, cfg, theme, points, toX, toY)
		}

		rad := math.Max(0.5, cfg.LineWidth/2)
		for i := 0; i+1 < n; i++ {
			stampSegment(img, toX(i), toY(points[i].Value), toX(i+1), toY(points[i+1].Value), rad, lineColor)
		}

		if cfg.ShowPoints && cfg.PointRadius > 0 {
			pointColor := cfg.PointColor.Resolve(theme)
			for i := 0; i < n; i++ {
				stampDisc(img, toX(i), toY(points[i].Value), cfg.PointRadius, pointColor)
			}
		}
		return img
	}
}

// autoRange finds the value range of the history plus the configured
// percent headroom on both ends.
func autoRange(points []engine.GraphPoint, padPercent float64) (lo, hi float64) {
	lo, hi = points[0].Value, points[0].Value
	for _, p := range points[1:] {
		if p.Value < lo {
			lo = p.Value
		}
		if p.Value > hi {
			hi = p.Value
		}
	}
	span := hi - lo
	if span <= 0 {
		return lo - 1, hi + 1
	}
	pad := span * padPercent / 100
	return lo - pad, hi + pad
}

// fillGraphArea paints the columns under the trace. Solid mode uses the
// fill color throughout; gradient mode fades from the start color at
// the top of the item to the end color at the bottom. With smoothing
// off the trace holds each value until the next sample.
func fillGraphArea(img *image.NRGBA, cfg model.GraphConfig, theme model.PanelTheme, points []engine.GraphPoint, toX func(int) float64, toY func(float64) float64) {
	bounds := img.Bounds()
	iw, ih := bounds.Dx(), bounds.Dy()
	n := len(points)

	var rows []model.Color
	solid := cfg.FillColor.Resolve(theme)
	if cfg.FillMode == model.GraphFillGradient {
		ramp := model.LinearGradient{Stops: []model.ColorStop{
			{Position: 0, Color: cfg.FillGradientStart.Resolve(theme)},
			{Position: 1, Color: cfg.FillGradientEnd.Resolve(theme)},
		}}
		rows = make([]model.Color, ih)
		for y := 0; y < ih; y++ {
			rows[y] = ramp.ColorAt(float64(y) / float64(ih-1))
		}
	}

	x0, x1 := toX(0), toX(n-1)
	step := x1 - x0
	if n > 1 {
		step /= float64(n - 1)
	}
	if step <= 0 {
		return
	}

	for x := int(math.Ceil(x0)); x < iw; x++ {
		f := (float64(x) - x0) / step
		i := int(math.Floor(f))
		if i < 0 {
			i = 0
		}
		if i >= n-1 {
			i = n - 2
		}
		v := points[i].Value
		if cfg.SmoothLines {
			t := f - float64(i)
			v += (points[i+1].Value - points[i].Value) * clamp01(t)
		}
		top := int(math.Ceil(toY(v)))
		if top < 0 {
			top = 0
		}
		for y := top; y < ih; y++ {
			if rows != nil {
				img.SetNRGBA(x, y, rows[y].NRGBA())
			} else {
				img.SetNRGBA(x, y, solid.NRGBA())
			}
		}
	}
}

// stampSegment stamps discs along a line segment at sub-pixel steps.
func stampSegment(img *image.NRGBA, x0, y0, x1, y1, rad float64, col model.Color) {
	dist := math.Hypot(x1-x0, y1-y0)
	steps := int(math.Ceil(dist / 0.5))
	if steps < 1 {
		steps = 1
	}
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		stampDisc(img, x0+(x1-x0)*t, y0+(y1-y0)*t, rad, col)
	}
}

// stampDisc fills a filled circle of the given radius into the image.
func stampDisc(img *image.NRGBA, cx, cy, rad float64, col model.Color) {
	bounds := img.Bounds()
	c := col.NRGBA()
	r2 := rad * rad
	for y := int(math.Floor(cy - rad)); y <= int(math.Ceil(cy+rad)); y++ {
		if y < 0 || y >= bounds.Dy() {
			continue
		}
		for x := int(math.Floor(cx - rad)); x <= int(math.Ceil(cx+rad)); x++ {
			if x < 0 || x >= bounds.Dx() {
				continue
			}
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= r2 {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

package widgets

import (
	"fmt"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/piwi3910/PulseBoard/internal/engine"
	"github.com/piwi3910/PulseBoard/internal/model"
)

// arcStepDegrees is the chord step used to approximate arcs. At four
// degrees the chord deviates from the true arc by well under a pixel at
// preview sizes.
const arcStepDegrees = 4.0

// renderArc draws the arc gauge: an optional background arc over the
// full sweep and the value arc colored by the configured ramp.
func (r *panelCanvasRenderer) renderArc(slot string, cfg model.ArcConfig, rect engine.Rect, data model.ItemData, theme model.PanelTheme) {
	cx := rect.X + rect.W/2
	cy := rect.Y + rect.H/2
	radius := frac01(cfg.RadiusPercent) * math.Min(rect.W, rect.H) / 2
	width := cfg.ArcWidth * radius
	if radius <= 0 || width <= 0 {
		return
	}
	span := sweepSpan(cfg.StartAngle, cfg.EndAngle)
	frac := clamp01(r.pc.animator.Bar(slot).Current)

	if cfg.ShowBackgroundArc {
		r.strokeArc(cx, cy, radius, width, cfg.StartAngle, span, cfg.BackgroundColor.Resolve(theme), nil, 0, 0)
	}

	ramp := resolveStops(cfg.ColorStops, theme)
	if cfg.Segmented {
		count := cfg.SegmentCount
		if count < 1 {
			count = 1
		}
		segSpan := (span - float64(count-1)*cfg.SegmentSpacing) / float64(count)
		if segSpan <= 0 {
			segSpan = span / float64(count)
			cfg.SegmentSpacing = 0
		}
		lit := int(math.Round(frac * float64(count)))
		for i := 0; i < lit; i++ {
			a0 := cfg.StartAngle + float64(i)*(segSpan+cfg.SegmentSpacing)
			col := theme.GetColor(1)
			if ramp != nil {
				col = ramp.ColorAt((float64(i) + 0.5) / float64(count))
			}
			r.strokeArc(cx, cy, radius, width, a0, segSpan, col, nil, 0, 0)
		}
	} else if frac > 0 {
		r.strokeArc(cx, cy, radius, width, cfg.StartAngle, span*frac, theme.GetColor(1), ramp, 0, frac)
	}

	if cfg.TextOverlay.Enabled {
		r.renderText(slot, cfg.TextOverlay.Text, rect, data, theme)
	}
}

// renderSpeedometer draws the needle gauge: bezel, track, value zones,
// tick marks with labels, the needle and the center hub.
func (r *panelCanvasRenderer) renderSpeedometer(slot string, cfg model.SpeedometerConfig, rect engine.Rect, data model.ItemData, theme model.PanelTheme) {
	cx := rect.X + rect.W/2
	cy := rect.Y + rect.H/2
	radius := frac01(cfg.RadiusPercent) * math.Min(rect.W, rect.H) / 2
	width := cfg.ArcWidth * radius
	if radius <= 0 {
		return
	}
	span := sweepSpan(cfg.StartAngle, cfg.EndAngle)
	frac := clamp01(r.pc.animator.Bar(slot).Current)

	if cfg.ShowBezel && cfg.BezelWidth > 0 {
		bezel := canvas.NewCircle(color.Transparent)
		bezel.StrokeColor = cfg.BezelColor.Resolve(theme).NRGBA()
		bezel.StrokeWidth = float32(cfg.BezelWidth * radius)
		placeObject(bezel, engine.Rect{X: cx - radius, Y: cy - radius, W: 2 * radius, H: 2 * radius})
		r.objects = append(r.objects, bezel)
	}

	if cfg.ShowTrack && width > 0 {
		ramp := resolveStops(cfg.TrackColorStops, theme)
		r.strokeArc(cx, cy, radius, width, cfg.StartAngle, span, cfg.TrackColor.Resolve(theme), ramp, 0, 1)
	}

	for _, zone := range cfg.Zones {
		z0 := clamp01(zone.StartPercent / 100)
		z1 := clamp01(zone.EndPercent / 100)
		if z1 <= z0 || width <= 0 {
			continue
		}
		col := zone.Color
		col.A = zone.Alpha
		r.strokeArc(cx, cy, radius, width, cfg.StartAngle+span*z0, span*(z1-z0), col, nil, 0, 0)
	}

	if cfg.ShowMajorTicks && cfg.MajorTickCount > 0 {
		r.renderTicks(cx, cy, radius, width, span, cfg, data, theme)
	}

	if cfg.ShowNeedle && cfg.NeedleLength > 0 {
		deg := cfg.StartAngle + span*frac
		tipX, tipY := polar(cx, cy, cfg.NeedleLength*radius, deg)
		needle := canvas.NewLine(cfg.NeedleColor.Resolve(theme).NRGBA())
		needle.StrokeWidth = float32(cfg.NeedleWidth)
		needle.Position1 = fyne.NewPos(float32(cx), float32(cy))
		needle.Position2 = fyne.NewPos(float32(tipX), float32(tipY))
		r.objects = append(r.objects, needle)
	}

	if cfg.ShowCenterHub && cfg.CenterHubRadius > 0 {
		hubRad := cfg.CenterHubRadius * radius
		hub := canvas.NewCircle(cfg.CenterHubColor.Resolve(theme).NRGBA())
		placeObject(hub, engine.Rect{X: cx - hubRad, Y: cy - hubRad, W: 2 * hubRad, H: 2 * hubRad})
		r.objects = append(r.objects, hub)
	}

	if cfg.TextOverlay.Enabled {
		r.renderText(slot, cfg.TextOverlay.Text, rect, data, theme)
	}
}

// renderTicks draws the major and minor tick marks plus value labels.
// MajorTickCount counts intervals, so ticks sit on both ends of the
// sweep; labels read the slot's limits.
func (r *panelCanvasRenderer) renderTicks(cx, cy, radius, width, span float64, cfg model.SpeedometerConfig, data model.ItemData, theme model.PanelTheme) {
	outer := radius + width/2
	majorLen := cfg.MajorTickLength * radius
	majorColor := cfg.MajorTickColor.Resolve(theme).NRGBA()

	var labelFont model.Font
	if cfg.ShowTickLabels {
		labelFont = cfg.TickLabelFont.Resolve(theme)
	}
	valueSpan := data.MaxLimit - data.MinLimit

	for i := 0; i <= cfg.MajorTickCount; i++ {
		t := float64(i) / float64(cfg.MajorTickCount)
		deg := cfg.StartAngle + span*t

		x1, y1 := polar(cx, cy, outer, deg)
		x2, y2 := polar(cx, cy, outer-majorLen, deg)
		tick := canvas.NewLine(majorColor)
		tick.StrokeWidth = float32(cfg.MajorTickWidth)
		tick.Position1 = fyne.NewPos(float32(x1), float32(y1))
		tick.Position2 = fyne.NewPos(float32(x2), float32(y2))
		r.objects = append(r.objects, tick)

		if cfg.ShowTickLabels {
			text := formatTickValue(data.MinLimit+valueSpan*t, valueSpan)
			label := canvas.NewText(text, cfg.TickLabelColor.Resolve(theme).NRGBA())
			label.TextSize = float32(labelFont.Size)
			measured := fyne.MeasureText(text, label.TextSize, fyne.TextStyle{})
			lx, ly := polar(cx, cy, outer-majorLen-4-float64(measured.Height)/2, deg)
			label.Move(fyne.NewPos(float32(lx)-measured.Width/2, float32(ly)-measured.Height/2))
			r.objects = append(r.objects, label)
		}

		if cfg.ShowMinorTicks && cfg.MinorTicksPerMajor > 1 && i < cfg.MajorTickCount {
			minorLen := cfg.MinorTickLength * radius
			minorColor := cfg.MinorTickColor.Resolve(theme).NRGBA()
			for j := 1; j < cfg.MinorTicksPerMajor; j++ {
				mt := t + float64(j)/float64(cfg.MinorTicksPerMajor)/float64(cfg.MajorTickCount)
				mdeg := cfg.StartAngle + span*mt
				mx1, my1 := polar(cx, cy, outer, mdeg)
				mx2, my2 := polar(cx, cy, outer-minorLen, mdeg)
				minor := canvas.NewLine(minorColor)
				minor.StrokeWidth = float32(cfg.MinorTickWidth)
				minor.Position1 = fyne.NewPos(float32(mx1), float32(my1))
				minor.Position2 = fyne.NewPos(float32(mx2), float32(my2))
				r.objects = append(r.objects, minor)
			}
		}
	}
}

// strokeArc draws an arc as short chord segments centered on the given
// radius. With a ramp, each segment takes the ramp color at its
// position interpolated between rampFrom and rampTo; otherwise every
// segment uses the solid color.
func (r *panelCanvasRenderer) strokeArc(cx, cy, radius, width, startDeg, spanDeg float64, solid model.Color, ramp *model.LinearGradient, rampFrom, rampTo float64) {
	if spanDeg <= 0 || radius <= 0 || width <= 0 {
		return
	}
	steps := int(math.Ceil(spanDeg / arcStepDegrees))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i < steps; i++ {
		a0 := startDeg + spanDeg*float64(i)/float64(steps)
		a1 := startDeg + spanDeg*float64(i+1)/float64(steps)
		col := solid
		if ramp != nil {
			t := rampFrom + (rampTo-rampFrom)*(float64(i)+0.5)/float64(steps)
			col = ramp.ColorAt(t)
		}
		x0, y0 := polar(cx, cy, radius, a0)
		x1, y1 := polar(cx, cy, radius, a1)
		seg := canvas.NewLine(col.NRGBA())
		seg.StrokeWidth = float32(width)
		seg.Position1 = fyne.NewPos(float32(x0), float32(y0))
		seg.Position2 = fyne.NewPos(float32(x1), float32(y1))
		r.objects = append(r.objects, seg)
	}
}

// polar converts a gauge angle in degrees to a point at the given
// radius around a center. Angle 0 points right and angles grow
// clockwise on screen.
func polar(cx, cy, radius, deg float64) (float64, float64) {
	a := deg * math.Pi / 180
	return cx + radius*math.Cos(a), cy + radius*math.Sin(a)
}

// sweepSpan returns the clockwise span between start and end angles,
// wrapping forward when the end sits numerically behind the start.
func sweepSpan(start, end float64) float64 {
	span := end - start
	for span <= 0 {
		span += 360
	}
	return span
}

// resolveStops resolves an editable stop list into a paintable ramp,
// or nil when no stops are configured.
func resolveStops(stops []model.GradientStop, theme model.PanelTheme) *model.LinearGradient {
	if len(stops) == 0 {
		return nil
	}
	grad := model.GradientConfig{Stops: stops}.Resolve(theme)
	return &grad
}

// formatTickValue keeps tick labels short: whole numbers for wide
// ranges, one decimal for narrow ones.
func formatTickValue(v, span float64) string {
	if math.Abs(span) >= 10 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

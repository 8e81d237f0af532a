package widgets

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PulseBoard/internal/engine"
	"github.com/piwi3910/PulseBoard/internal/model"
)

// snapThreshold is where an eased value snaps onto its target.
const snapThreshold = 0.001

// textInset keeps anchored text off the item edge.
const textInset = 2

// PanelCanvas renders a live preview of one dashboard panel: the themed
// gradient background, the group layout with its dividers, and every
// content item drawing the latest sampled data. Feed snapshots in with
// SetFields and drive eased displays with Step from a frame ticker.
// All access happens on the UI event loop.
type PanelCanvas struct {
	widget.BaseWidget

	panel    *model.Panel
	fields   map[string]string
	animator *engine.Animator
	history  *engine.GraphHistory
	started  time.Time

	minWidth  float32
	minHeight float32
}

// NewPanelCanvas creates a preview canvas for a panel with the given
// minimum size. The canvas stretches with its container.
func NewPanelCanvas(panel *model.Panel, minW, minH float32) *PanelCanvas {
	pc := &PanelCanvas{
		panel:     panel,
		fields:    map[string]string{},
		animator:  engine.NewAnimator(),
		history:   engine.NewGraphHistory(),
		started:   time.Now(),
		minWidth:  minW,
		minHeight: minH,
	}
	pc.ExtendBaseWidget(pc)
	return pc
}

// SetPanel switches the canvas to another panel. Animation and graph
// state from the previous panel is dropped.
func (pc *PanelCanvas) SetPanel(panel *model.Panel) {
	pc.panel = panel
	pc.fields = map[string]string{}
	pc.animator = engine.NewAnimator()
	pc.history = engine.NewGraphHistory()
	pc.started = time.Now()
	pc.Refresh()
}

// SetFields feeds a sampled snapshot into the canvas: bar-style items
// get new animation targets, graphs extend their history, and the
// canvas redraws.
func (pc *PanelCanvas) SetFields(fields map[string]string) {
	pc.fields = fields
	style := &pc.panel.Style
	animate := style.AnimationEnabled
	now := time.Since(pc.started).Seconds()

	slots := style.SlotNames()
	for _, slot := range slots {
		item := pc.contentItem(slot)
		data := model.ExtractItemData(fields, slot)
		switch item.DisplayAs {
		case model.DisplayBar, model.DisplayLevelBar:
			pc.animator.Bar(slot).SetTarget(data.Fraction(), animate && item.Bar.SmoothAnimation)
		case model.DisplayArc:
			pc.animator.Bar(slot).SetTarget(data.Fraction(), animate && item.Arc.Animate)
		case model.DisplaySpeedometer:
			pc.animator.Bar(slot).SetTarget(data.Fraction(), animate && item.Speedometer.Animate)
		case model.DisplayGraph:
			pc.history.Push(slot, data.Numerical, now, item.Graph.MaxDataPoints)
		case model.DisplayCoreBars:
			vals := coreValues(fields, slot, item.CoreBars)
			cores := pc.animator.Cores(slot, len(vals))
			for i, v := range vals {
				cores[i].SetTarget(v, animate && item.CoreBars.Animate)
			}
		}
	}
	pc.animator.CleanupPrefixes(slots)
	pc.history.CleanupPrefixes(slots)
	pc.Refresh()
}

// Step advances every eased value by one frame. The caller refreshes
// the canvas when Step reports movement.
func (pc *PanelCanvas) Step() bool {
	style := pc.panel.Style
	if !style.AnimationEnabled {
		return false
	}
	speed := style.AnimationSpeed
	if speed <= 0 {
		speed = 1
	}
	return pc.animator.Step(speed, snapThreshold)
}

// contentItem reads a slot's content config without inserting into the
// style map, so rendering never mutates the panel.
func (pc *PanelCanvas) contentItem(slot string) model.ContentItemConfig {
	if item, ok := pc.panel.Style.ContentItems[slot]; ok && item != nil {
		return *item
	}
	return model.DefaultContentItem()
}

func (pc *PanelCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newPanelCanvasRenderer(pc)
}

type panelCanvasRenderer struct {
	pc      *PanelCanvas
	size    fyne.Size
	objects []fyne.CanvasObject
}

func newPanelCanvasRenderer(pc *PanelCanvas) *panelCanvasRenderer {
	r := &panelCanvasRenderer{pc: pc, size: fyne.NewSize(pc.minWidth, pc.minHeight)}
	r.rebuild()
	return r
}

func (r *panelCanvasRenderer) rebuild() {
	r.objects = nil

	style := &r.pc.panel.Style
	theme := style.Theme
	w := float64(r.size.Width)
	h := float64(r.size.Height)
	if w <= 0 || h <= 0 {
		return
	}

	// Themed gradient background
	bg := canvas.NewRaster(gradientGenerator(theme.Gradient.Resolve(theme)))
	placeObject(bg, engine.Rect{X: 0, Y: 0, W: w, H: h})
	r.objects = append(r.objects, bg)

	content := engine.Rect{
		X: style.ContentPadding,
		Y: style.ContentPadding,
		W: w - 2*style.ContentPadding,
		H: h - 2*style.ContentPadding,
	}
	if content.W <= 0 || content.H <= 0 {
		return
	}

	groups := engine.CalculateGroupLayouts(content, style.GroupCount,
		style.GroupSizeWeights, style.DividerWidth, style.DividerPadding, style.LayoutOrientation)
	dividers := engine.DividerRects(content, groups,
		style.DividerWidth, style.DividerPadding, style.LayoutOrientation)

	for _, div := range dividers {
		rect := canvas.NewRectangle(theme.GetColor(2).NRGBA())
		rect.CornerRadius = float32(style.DividerWidth / 2)
		placeObject(rect, div)
		r.objects = append(r.objects, rect)
	}

	for gi, group := range groups {
		count := 0
		if gi < len(style.GroupItemCounts) {
			count = style.GroupItemCounts[gi]
		}
		slots := make([]string, count)
		items := make([]model.ContentItemConfig, count)
		sizes := make([]engine.ItemSize, count)
		for n := 0; n < count; n++ {
			slots[n] = model.GroupSlot(gi+1, n+1).String()
			items[n] = r.pc.contentItem(slots[n])
			sizes[n] = engine.ItemSizeFor(items[n])
		}
		rects := engine.CalculateItemLayouts(group, sizes, style.ItemSpacing, style.GroupOrientation(gi))
		for n, rect := range rects {
			r.renderItem(slots[n], items[n], rect)
		}
	}
}

// renderItem dispatches one content item to its display renderer.
func (r *panelCanvasRenderer) renderItem(slot string, item model.ContentItemConfig, rect engine.Rect) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	theme := r.pc.panel.Style.Theme
	data := model.ExtractItemData(r.pc.fields, slot)

	switch item.DisplayAs {
	case model.DisplayText:
		r.renderText(slot, item.Bar.TextOverlay.Text, rect, data, theme)
	case model.DisplayGraph:
		r.renderGraph(slot, item.Graph, rect, data, theme)
	case model.DisplayCoreBars:
		r.renderCoreBars(slot, item.CoreBars, rect, data, theme)
	case model.DisplayStatic:
		r.renderStatic(slot, item.Static, rect, data, theme)
	case model.DisplayArc:
		r.renderArc(slot, item.Arc, rect, data, theme)
	case model.DisplaySpeedometer:
		r.renderSpeedometer(slot, item.Speedometer, rect, data, theme)
	default: // bar and level bar
		r.renderBar(slot, item.Bar, rect, data, theme)
	}
}

// renderBar draws the bar and level bar displays: a background fill,
// the value fill clipped by the eased fraction, an optional border and
// the text overlay.
func (r *panelCanvasRenderer) renderBar(slot string, cfg model.BarConfig, rect engine.Rect, data model.ItemData, theme model.PanelTheme) {
	body := insetRect(rect, cfg.Padding)
	if cfg.Style == model.BarRectangle {
		body = centeredRect(body, cfg.RectangleWidth, cfg.RectangleHeight)
	}
	if body.W <= 0 || body.H <= 0 {
		return
	}

	frac := clamp01(r.pc.animator.Bar(slot).Current)

	r.addFill(cfg.Background, theme, body, cfg.CornerRadius)
	if cfg.Style == model.BarSegmented {
		r.renderSegments(cfg, body, frac, theme)
	} else {
		r.addFill(cfg.Foreground, theme, barFillRect(body, frac, fillDirection(cfg)), cfg.CornerRadius)
	}
	if cfg.Border.Enabled {
		r.addBorder(cfg.Border, theme, body)
	}
	if cfg.TextOverlay.Enabled {
		r.renderText(slot, cfg.TextOverlay.Text, rect, data, theme)
	}
}

// renderSegments draws the LED-style segmented bar: segments along the
// fill axis light up in order, and the segment at the value edge is
// clipped proportionally.
func (r *panelCanvasRenderer) renderSegments(cfg model.BarConfig, body engine.Rect, frac float64, theme model.PanelTheme) {
	count := cfg.SegmentCount
	if count < 1 {
		count = 1
	}
	dir := fillDirection(cfg)
	axis := body.W
	if dir == model.FillBottomToTop || dir == model.FillTopToBottom {
		axis = body.H
	}
	seg := (axis - float64(count-1)*cfg.SegmentSpacing) / float64(count)
	if seg <= 0 {
		// Too small to segment: fall back to a continuous fill.
		r.addFill(cfg.Foreground, theme, barFillRect(body, frac, dir), cfg.CornerRadius)
		return
	}

	lit := frac * float64(count)
	for i := 0; i < count; i++ {
		segFrac := clamp01(lit - float64(i))
		if segFrac <= 0 {
			break
		}
		offset := float64(i) * (seg + cfg.SegmentSpacing)
		extent := seg * segFrac
		var rect engine.Rect
		switch dir {
		case model.FillRightToLeft:
			rect = engine.Rect{X: body.Right() - offset - extent, Y: body.Y, W: extent, H: body.H}
		case model.FillBottomToTop:
			rect = engine.Rect{X: body.X, Y: body.Bottom() - offset - extent, W: body.W, H: extent}
		case model.FillTopToBottom:
			rect = engine.Rect{X: body.X, Y: body.Y + offset, W: body.W, H: extent}
		default:
			rect = engine.Rect{X: body.X + offset, Y: body.Y, W: extent, H: body.H}
		}
		r.addFill(cfg.Foreground, theme, rect, cfg.CornerRadius)
	}
}

// renderCoreBars draws one mini bar per core in the configured range.
// Horizontal bars stack top to bottom; vertical bars line up left to
// right. Labels reserve a gutter on the leading edge.
func (r *panelCanvasRenderer) renderCoreBars(slot string, cfg model.CoreBarsConfig, rect engine.Rect, data model.ItemData, theme model.PanelTheme) {
	vals := coreValues(r.pc.fields, slot, cfg)
	cores := r.pc.animator.Cores(slot, len(vals))
	n := len(cores)
	if n == 0 {
		return
	}
	horizontal := cfg.Orientation == model.BarHorizontal

	body := rect
	var labelFont model.Font
	var labelStyle fyne.TextStyle
	if cfg.ShowLabels {
		labelFont = cfg.LabelFont.Resolve(theme)
		labelStyle = fyne.TextStyle{Bold: cfg.LabelBold}
		widest := fyne.MeasureText(coreLabel(cfg, cfg.StartCore+n-1), float32(labelFont.Size), labelStyle)
		if horizontal {
			body.X += float64(widest.Width) + 4
			body.W -= float64(widest.Width) + 4
		} else {
			body.H -= float64(widest.Height) + 2
		}
	}
	if body.W <= 0 || body.H <= 0 {
		return
	}

	across := body.H
	if !horizontal {
		across = body.W
	}
	thick := (across - float64(n-1)*cfg.BarSpacing) / float64(n)
	if thick <= 0 {
		return
	}

	// Reuse the bar segment renderer through a bar view of this config.
	barCfg := model.BarConfig{
		Orientation:    cfg.Orientation,
		FillDirection:  cfg.FillDirection,
		Foreground:     cfg.Foreground,
		Background:     cfg.Background,
		CornerRadius:   cfg.CornerRadius,
		SegmentCount:   cfg.SegmentCount,
		SegmentSpacing: cfg.SegmentSpacing,
	}

	for i := 0; i < n; i++ {
		var barRect engine.Rect
		if horizontal {
			barRect = engine.Rect{X: body.X, Y: body.Y + float64(i)*(thick+cfg.BarSpacing), W: body.W, H: thick}
		} else {
			barRect = engine.Rect{X: body.X + float64(i)*(thick+cfg.BarSpacing), Y: body.Y, W: thick, H: body.H}
		}
		frac := clamp01(cores[i].Current)

		r.addFill(cfg.Background, theme, barRect, cfg.CornerRadius)
		if cfg.SegmentCount > 1 {
			r.renderSegments(barCfg, barRect, frac, theme)
		} else {
			r.addFill(cfg.Foreground, theme, barFillRect(barRect, frac, fillDirection(barCfg)), cfg.CornerRadius)
		}
		if cfg.Border.Enabled {
			r.addBorder(cfg.Border, theme, barRect)
		}

		if cfg.ShowLabels {
			label := canvas.NewText(coreLabel(cfg, cfg.StartCore+i), cfg.LabelColor.Resolve(theme).NRGBA())
			label.TextSize = float32(labelFont.Size)
			label.TextStyle = labelStyle
			measured := fyne.MeasureText(label.Text, label.TextSize, labelStyle)
			if horizontal {
				label.Move(fyne.NewPos(float32(rect.X), float32(barRect.Y+(barRect.H-float64(measured.Height))/2)))
			} else {
				label.Move(fyne.NewPos(float32(barRect.X+(barRect.W-float64(measured.Width))/2), float32(barRect.Bottom()+2)))
			}
			r.objects = append(r.objects, label)
		}
	}
	if cfg.TextOverlay.Enabled {
		r.renderText(slot, cfg.TextOverlay.Text, rect, data, theme)
	}
}

// renderStatic fills the item and optionally overlays text.
func (r *panelCanvasRenderer) renderStatic(slot string, cfg model.StaticConfig, rect engine.Rect, data model.ItemData, theme model.PanelTheme) {
	r.addFill(cfg.Background, theme, rect, 0)
	if cfg.TextOverlay.Enabled {
		r.renderText(slot, cfg.TextOverlay.Text, rect, data, theme)
	}
}

// renderText draws the lines of a text config anchored inside the item
// rectangle. Lines whose field resolves to an empty string are skipped.
func (r *panelCanvasRenderer) renderText(slot string, cfg model.TextConfig, rect engine.Rect, data model.ItemData, theme model.PanelTheme) {
	for _, line := range cfg.Lines {
		text := fieldText(r.pc.fields, slot, line.FieldID, data)
		if text == "" {
			continue
		}
		font := line.Font.Resolve(theme)
		style := fyne.TextStyle{Bold: line.Bold, Italic: line.Italic}
		obj := canvas.NewText(text, line.Color.Resolve(theme).NRGBA())
		obj.TextSize = float32(font.Size)
		obj.TextStyle = style
		measured := fyne.MeasureText(text, obj.TextSize, style)
		obj.Move(anchorText(rect, measured, line.Position))
		r.objects = append(r.objects, obj)
	}
}

// addFill paints one fill config into a rectangle. Gradient fills
// rasterize; the corner radius only applies to solid fills.
func (r *panelCanvasRenderer) addFill(cfg model.FillConfig, theme model.PanelTheme, rect engine.Rect, cornerRadius float64) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	switch cfg.Kind {
	case model.FillTransparent:
		return
	case model.FillGradient:
		grad := model.GradientConfig{Angle: cfg.Angle, Stops: cfg.Stops}.Resolve(theme)
		if len(grad.Stops) == 0 {
			return
		}
		raster := canvas.NewRaster(gradientGenerator(grad))
		placeObject(raster, rect)
		r.objects = append(r.objects, raster)
	default:
		fill := canvas.NewRectangle(cfg.Color.Resolve(theme).NRGBA())
		fill.CornerRadius = float32(cornerRadius)
		placeObject(fill, rect)
		r.objects = append(r.objects, fill)
	}
}

// addBorder outlines a rectangle with the configured stroke.
func (r *panelCanvasRenderer) addBorder(cfg model.BorderConfig, theme model.PanelTheme, rect engine.Rect) {
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = cfg.Color.Resolve(theme).NRGBA()
	border.StrokeWidth = float32(cfg.Width)
	placeObject(border, rect)
	r.objects = append(r.objects, border)
}

func (r *panelCanvasRenderer) Layout(size fyne.Size) {
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	r.size = size
	r.rebuild()
}
func (r *panelCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *panelCanvasRenderer) Destroy()                     {}
func (r *panelCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *panelCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(r.pc.minWidth, r.pc.minHeight)
}

// gradientGenerator renders a resolved gradient into a raster image.
// The image is generated at a reduced resolution and scaled up by the
// canvas, which is invisible for smooth gradients and keeps rebuilds
// cheap.
func gradientGenerator(grad model.LinearGradient) func(w, h int) image.Image {
	return func(w, h int) image.Image {
		const maxEdge = 160
		iw, ih := w, h
		if iw > maxEdge || ih > maxEdge {
			scale := float64(maxEdge) / math.Max(float64(iw), float64(ih))
			iw = int(math.Max(1, float64(iw)*scale))
			ih = int(math.Max(1, float64(ih)*scale))
		}
		if iw < 1 {
			iw = 1
		}
		if ih < 1 {
			ih = 1
		}

		img := image.NewNRGBA(image.Rect(0, 0, iw, ih))
		rad := grad.Angle * math.Pi / 180
		dx, dy := math.Cos(rad), math.Sin(rad)
		span := math.Abs(float64(iw)*dx) + math.Abs(float64(ih)*dy)
		if span <= 0 {
			span = 1
		}
		cx, cy := float64(iw)/2, float64(ih)/2
		for y := 0; y < ih; y++ {
			for x := 0; x < iw; x++ {
				t := ((float64(x)-cx)*dx+(float64(y)-cy)*dy)/span + 0.5
				img.SetNRGBA(x, y, grad.ColorAt(t).NRGBA())
			}
		}
		return img
	}
}

// fieldText resolves a text line's field id against the slot's data.
func fieldText(fields map[string]string, slot, fieldID string, data model.ItemData) string {
	switch fieldID {
	case model.FieldCaption:
		return data.Caption
	case model.FieldValue:
		return data.Value
	case model.FieldUnit:
		return data.Unit
	case model.FieldNumerical:
		return model.FormatMetric(data.Numerical)
	default:
		return fields[model.FieldKey(slot, fieldID)]
	}
}

// anchorText places measured text at one of the nine item anchors.
func anchorText(rect engine.Rect, size fyne.Size, pos model.TextPosition) fyne.Position {
	var x, y float64
	switch pos {
	case model.PosTopLeft, model.PosCenterLeft, model.PosBottomLeft:
		x = rect.X + textInset
	case model.PosTopCenter, model.PosCenter, model.PosBottomCenter:
		x = rect.X + (rect.W-float64(size.Width))/2
	default:
		x = rect.Right() - float64(size.Width) - textInset
	}
	switch pos {
	case model.PosTopLeft, model.PosTopCenter, model.PosTopRight:
		y = rect.Y + textInset
	case model.PosCenterLeft, model.PosCenter, model.PosCenterRight:
		y = rect.Y + (rect.H-float64(size.Height))/2
	default:
		y = rect.Bottom() - float64(size.Height) - textInset
	}
	return fyne.NewPos(float32(x), float32(y))
}

// fillDirection reconciles the configured direction with the bar's
// orientation, so a horizontal bar never fills top to bottom.
func fillDirection(cfg model.BarConfig) model.FillDirection {
	horizontal := cfg.Orientation == model.BarHorizontal
	switch cfg.FillDirection {
	case model.FillLeftToRight, model.FillRightToLeft:
		if horizontal {
			return cfg.FillDirection
		}
	case model.FillBottomToTop, model.FillTopToBottom:
		if !horizontal {
			return cfg.FillDirection
		}
	}
	if horizontal {
		return model.FillLeftToRight
	}
	return model.FillBottomToTop
}

// barFillRect returns the filled part of a bar body for a fraction and
// fill direction.
func barFillRect(body engine.Rect, frac float64, dir model.FillDirection) engine.Rect {
	frac = clamp01(frac)
	switch dir {
	case model.FillRightToLeft:
		w := body.W * frac
		return engine.Rect{X: body.Right() - w, Y: body.Y, W: w, H: body.H}
	case model.FillBottomToTop:
		h := body.H * frac
		return engine.Rect{X: body.X, Y: body.Bottom() - h, W: body.W, H: h}
	case model.FillTopToBottom:
		return engine.Rect{X: body.X, Y: body.Y, W: body.W, H: body.H * frac}
	default:
		return engine.Rect{X: body.X, Y: body.Y, W: body.W * frac, H: body.H}
	}
}

// coreValues reads the configured core range out of a snapshot as 0-1
// fractions. Cores the machine does not have are trimmed off the end of
// the range; a core missing mid-range reads as zero so the strip keeps
// a stable shape.
func coreValues(fields map[string]string, slot string, cfg model.CoreBarsConfig) []float64 {
	n := cfg.CoreCount()
	if n <= 0 {
		return nil
	}
	if n > 128 {
		n = 128
	}
	vals := make([]float64, 0, n)
	present := make([]bool, 0, n)
	for core := cfg.StartCore; core < cfg.StartCore+n; core++ {
		key := model.FieldKey(slot, fmt.Sprintf("core%d_%s", core, model.FieldNumerical))
		v := 0.0
		ok := false
		if raw, has := fields[key]; has {
			if f, err := strconv.ParseFloat(raw, 64); err == nil {
				v = f / 100.0 // per-core values are percentages
				ok = true
			}
		}
		vals = append(vals, clamp01(v))
		present = append(present, ok)
	}
	for len(vals) > 1 && !present[len(vals)-1] {
		vals = vals[:len(vals)-1]
		present = present[:len(present)-1]
	}
	return vals
}

// coreLabel formats the label of one core bar.
func coreLabel(cfg model.CoreBarsConfig, core int) string {
	return cfg.LabelPrefix + strconv.Itoa(core)
}

func placeObject(obj fyne.CanvasObject, rect engine.Rect) {
	obj.Resize(fyne.NewSize(float32(rect.W), float32(rect.H)))
	obj.Move(fyne.NewPos(float32(rect.X), float32(rect.Y)))
}

func insetRect(rect engine.Rect, pad float64) engine.Rect {
	return engine.Rect{X: rect.X + pad, Y: rect.Y + pad, W: rect.W - 2*pad, H: rect.H - 2*pad}
}

// centeredRect shrinks a rectangle to the given width and height
// fractions, keeping its center.
func centeredRect(rect engine.Rect, wFrac, hFrac float64) engine.Rect {
	w := rect.W * frac01(wFrac)
	h := rect.H * frac01(hFrac)
	return engine.Rect{X: rect.X + (rect.W-w)/2, Y: rect.Y + (rect.H-h)/2, W: w, H: h}
}

// frac01 clamps a size fraction into (0,1], treating out-of-range
// values as full size.
func frac01(f float64) float64 {
	if f <= 0 || f > 1 {
		return 1
	}
	return f
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package widgets

import (
	"math"
	"testing"

	"fyne.io/fyne/v2"

	"github.com/piwi3910/PulseBoard/internal/engine"
	"github.com/piwi3910/PulseBoard/internal/model"
)

func TestAnchorTextCorners(t *testing.T) {
	rect := engine.Rect{X: 10, Y: 20, W: 100, H: 50}
	size := fyne.NewSize(20, 10)

	cases := []struct {
		pos  model.TextPosition
		x, y float32
	}{
		{model.PosTopLeft, 12, 22},
		{model.PosCenter, 50, 40},
		{model.PosBottomRight, 88, 58},
		{model.PosCenterLeft, 12, 40},
		{model.PosTopRight, 88, 22},
		{model.PosBottomCenter, 50, 58},
	}
	for _, c := range cases {
		got := anchorText(rect, size, c.pos)
		if got.X != c.x || got.Y != c.y {
			t.Errorf("%s: expected (%v, %v), got (%v, %v)", c.pos, c.x, c.y, got.X, got.Y)
		}
	}
}

func TestFillDirectionReconciliation(t *testing.T) {
	cases := []struct {
		orientation model.BarOrientation
		configured  model.FillDirection
		want        model.FillDirection
	}{
		{model.BarHorizontal, model.FillLeftToRight, model.FillLeftToRight},
		{model.BarHorizontal, model.FillRightToLeft, model.FillRightToLeft},
		{model.BarHorizontal, model.FillTopToBottom, model.FillLeftToRight},
		{model.BarVertical, model.FillBottomToTop, model.FillBottomToTop},
		{model.BarVertical, model.FillTopToBottom, model.FillTopToBottom},
		{model.BarVertical, model.FillLeftToRight, model.FillBottomToTop},
	}
	for _, c := range cases {
		cfg := model.BarConfig{Orientation: c.orientation, FillDirection: c.configured}
		if got := fillDirection(cfg); got != c.want {
			t.Errorf("%s/%s: expected %s, got %s", c.orientation, c.configured, c.want, got)
		}
	}
}

func TestBarFillRect(t *testing.T) {
	body := engine.Rect{X: 0, Y: 0, W: 100, H: 40}

	r := barFillRect(body, 0.5, model.FillLeftToRight)
	if r.X != 0 || r.W != 50 || r.H != 40 {
		t.Errorf("left_to_right: got %+v", r)
	}

	r = barFillRect(body, 0.5, model.FillRightToLeft)
	if r.X != 50 || r.W != 50 {
		t.Errorf("right_to_left: got %+v", r)
	}

	r = barFillRect(body, 0.5, model.FillBottomToTop)
	if r.Y != 20 || r.H != 20 || r.W != 100 {
		t.Errorf("bottom_to_top: got %+v", r)
	}

	r = barFillRect(body, 0.5, model.FillTopToBottom)
	if r.Y != 0 || r.H != 20 {
		t.Errorf("top_to_bottom: got %+v", r)
	}

	// Fractions clamp to the body
	r = barFillRect(body, 1.5, model.FillLeftToRight)
	if r.W != 100 {
		t.Errorf("overflow fraction should clamp, got width %v", r.W)
	}
}

func TestCoreValuesTrimsMissingTail(t *testing.T) {
	fields := map[string]string{
		"group1_1_core0_numerical_value": "50",
		"group1_1_core1_numerical_value": "100",
	}
	cfg := model.CoreBarsConfig{StartCore: 0, EndCore: 3}

	vals := coreValues(fields, "group1_1", cfg)
	if len(vals) != 2 {
		t.Fatalf("expected cores 2 and 3 trimmed, got %d values", len(vals))
	}
	if vals[0] != 0.5 || vals[1] != 1.0 {
		t.Errorf("expected [0.5, 1.0], got %v", vals)
	}
}

func TestCoreValuesKeepsMidGap(t *testing.T) {
	fields := map[string]string{
		"group1_1_core0_numerical_value": "40",
		"group1_1_core2_numerical_value": "80",
	}
	cfg := model.CoreBarsConfig{StartCore: 0, EndCore: 2}

	vals := coreValues(fields, "group1_1", cfg)
	if len(vals) != 3 {
		t.Fatalf("expected 3 values, got %d", len(vals))
	}
	if vals[1] != 0 {
		t.Errorf("missing mid-range core should read 0, got %v", vals[1])
	}
}

func TestCoreValuesEmptyRange(t *testing.T) {
	cfg := model.CoreBarsConfig{StartCore: 5, EndCore: 2}
	if vals := coreValues(map[string]string{}, "group1_1", cfg); vals != nil {
		t.Errorf("inverted range should yield nil, got %v", vals)
	}
}

func TestCoreLabel(t *testing.T) {
	cfg := model.CoreBarsConfig{LabelPrefix: "C"}
	if got := coreLabel(cfg, 3); got != "C3" {
		t.Errorf("expected C3, got %q", got)
	}
}

func TestSweepSpan(t *testing.T) {
	if got := sweepSpan(135, 45); got != 270 {
		t.Errorf("135..45 should sweep 270, got %v", got)
	}
	if got := sweepSpan(0, 90); got != 90 {
		t.Errorf("0..90 should sweep 90, got %v", got)
	}
	if got := sweepSpan(90, 90); got != 360 {
		t.Errorf("equal angles should sweep a full circle, got %v", got)
	}
}

func TestPolar(t *testing.T) {
	x, y := polar(0, 0, 10, 0)
	if math.Abs(x-10) > 1e-9 || math.Abs(y) > 1e-9 {
		t.Errorf("angle 0 should point right, got (%v, %v)", x, y)
	}
	x, y = polar(0, 0, 10, 90)
	if math.Abs(x) > 1e-9 || math.Abs(y-10) > 1e-9 {
		t.Errorf("angle 90 should point down, got (%v, %v)", x, y)
	}
}

func TestAutoRange(t *testing.T) {
	points := []engine.GraphPoint{{Value: 10}, {Value: 30}, {Value: 20}}
	lo, hi := autoRange(points, 10)
	if lo != 8 || hi != 32 {
		t.Errorf("expected (8, 32), got (%v, %v)", lo, hi)
	}

	flat := []engine.GraphPoint{{Value: 5}, {Value: 5}}
	lo, hi = autoRange(flat, 10)
	if lo != 4 || hi != 6 {
		t.Errorf("flat series should expand by 1 each way, got (%v, %v)", lo, hi)
	}
}

func TestFormatTickValue(t *testing.T) {
	if got := formatTickValue(50, 100); got != "50" {
		t.Errorf("wide range: expected 50, got %q", got)
	}
	if got := formatTickValue(2.5, 5); got != "2.5" {
		t.Errorf("narrow range: expected 2.5, got %q", got)
	}
}

func TestCenteredRect(t *testing.T) {
	rect := engine.Rect{X: 0, Y: 0, W: 100, H: 50}
	got := centeredRect(rect, 0.5, 0.4)
	if got.X != 25 || got.Y != 15 || got.W != 50 || got.H != 20 {
		t.Errorf("got %+v", got)
	}

	// Out-of-range fractions keep the full size
	got = centeredRect(rect, 0, 2)
	if got.W != 100 || got.H != 50 {
		t.Errorf("out-of-range fractions: got %+v", got)
	}
}

func TestInsetRect(t *testing.T) {
	got := insetRect(engine.Rect{X: 10, Y: 10, W: 100, H: 50}, 5)
	if got.X != 15 || got.Y != 15 || got.W != 90 || got.H != 40 {
		t.Errorf("got %+v", got)
	}
}

func TestGradientGeneratorHorizontalRamp(t *testing.T) {
	grad := model.LinearGradient{Angle: 0, Stops: []model.ColorStop{
		{Position: 0, Color: model.NewColor(0, 0, 0)},
		{Position: 1, Color: model.NewColor(1, 1, 1)},
	}}
	img := gradientGenerator(grad)(100, 10)
	bounds := img.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 10 {
		t.Fatalf("small images should not downsample, got %v", bounds)
	}

	lr, _, _, _ := img.At(2, 5).RGBA()
	rr, _, _, _ := img.At(97, 5).RGBA()
	if lr >= rr {
		t.Errorf("angle 0 should brighten left to right, got %d >= %d", lr, rr)
	}
}

func TestGradientGeneratorDownsamples(t *testing.T) {
	grad := model.LinearGradient{Angle: 90, Stops: []model.ColorStop{
		{Position: 0, Color: model.NewColor(1, 0, 0)},
	}}
	img := gradientGenerator(grad)(800, 600)
	bounds := img.Bounds()
	if bounds.Dx() > 160 || bounds.Dy() > 160 {
		t.Errorf("large images should downsample, got %v", bounds)
	}
}

func TestGraphGeneratorEmptyHistory(t *testing.T) {
	cfg := model.DefaultGraphConfig()
	img := graphGenerator(cfg, model.PanelTheme{}, nil)(100, 50)
	_, _, _, a := img.At(50, 25).RGBA()
	if a != 0 {
		t.Errorf("empty history should render transparent, got alpha %d", a)
	}
}

func TestGraphGeneratorTraceGrowsFromRight(t *testing.T) {
	cfg := model.DefaultGraphConfig()
	cfg.FillMode = model.GraphFillNone
	cfg.AutoScale = false
	cfg.MinValue = 0
	cfg.MaxValue = 100
	cfg.MaxDataPoints = 10
	cfg.LineColor = model.CustomColor(model.NewColor(1, 0, 0))

	points := []engine.GraphPoint{
		{Value: 50}, {Value: 50}, {Value: 50}, {Value: 50}, {Value: 50},
	}
	img := graphGenerator(cfg, model.PanelTheme{}, points)(100, 50)

	// Newest sample sits at the right edge
	_, _, _, a := img.At(99, 25).RGBA()
	if a == 0 {
		t.Error("expected trace pixel at the right edge")
	}
	// With half the buffer filled, the left side stays empty
	_, _, _, a = img.At(10, 25).RGBA()
	if a != 0 {
		t.Error("left side should be empty while the buffer fills")
	}
}

func TestGraphGeneratorFillsUnderTrace(t *testing.T) {
	cfg := model.DefaultGraphConfig()
	cfg.FillMode = model.GraphFillSolid
	cfg.FillColor = model.CustomColor(model.NewColor(0, 0, 1))
	cfg.AutoScale = false
	cfg.MinValue = 0
	cfg.MaxValue = 100
	cfg.MaxDataPoints = 4

	points := []engine.GraphPoint{
		{Value: 80}, {Value: 80}, {Value: 80}, {Value: 80},
	}
	img := graphGenerator(cfg, model.PanelTheme{}, points)(100, 50)

	// Below the trace the fill is present, above it is not
	_, _, _, below := img.At(50, 45).RGBA()
	if below == 0 {
		t.Error("expected fill below the trace")
	}
	_, _, _, above := img.At(50, 2).RGBA()
	if above != 0 {
		t.Error("expected no fill above the trace")
	}
}

func TestFieldText(t *testing.T) {
	data := model.ItemData{Caption: "CPU", Value: "42.0", Unit: "%", Numerical: 42.0}
	fields := map[string]string{"group1_1_hostname": "box1"}

	if got := fieldText(fields, "group1_1", model.FieldCaption, data); got != "CPU" {
		t.Errorf("caption: got %q", got)
	}
	if got := fieldText(fields, "group1_1", model.FieldNumerical, data); got != "42.0" {
		t.Errorf("numerical: got %q", got)
	}
	if got := fieldText(fields, "group1_1", "hostname", data); got != "box1" {
		t.Errorf("custom field: got %q", got)
	}
	if got := fieldText(fields, "group1_1", "missing", data); got != "" {
		t.Errorf("missing field: got %q", got)
	}
}

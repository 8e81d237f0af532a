package ui

import (
	"testing"

	"github.com/piwi3910/PulseBoard/internal/model"
)

func TestResolveStopColors(t *testing.T) {
	pt := model.PanelTheme{
		Color1: model.NewColor(1, 0, 0),
		Color2: model.NewColor(0, 1, 0),
	}
	stops := []model.GradientStop{
		{Position: 0, Color: model.ThemeColor(1)},
		{Position: 0.5, Color: model.CustomColor(model.NewColor(0, 0, 1))},
		{Position: 1, Color: model.ThemeColor(2)},
	}

	cols := resolveStopColors(stops, pt)
	if len(cols) != 3 {
		t.Fatalf("got %d colors, want 3", len(cols))
	}
	if cols[0] != pt.Color1 {
		t.Errorf("stop 0 resolved to %+v, want theme color 1", cols[0])
	}
	if cols[1] != model.NewColor(0, 0, 1) {
		t.Errorf("stop 1 resolved to %+v, want custom blue", cols[1])
	}
	if cols[2] != pt.Color2 {
		t.Errorf("stop 2 resolved to %+v, want theme color 2", cols[2])
	}
}

func TestColorsEqual(t *testing.T) {
	red := model.NewColor(1, 0, 0)
	green := model.NewColor(0, 1, 0)

	if !colorsEqual(nil, nil) {
		t.Error("two nil slices should be equal")
	}
	if !colorsEqual([]model.Color{red, green}, []model.Color{red, green}) {
		t.Error("identical slices should be equal")
	}
	if colorsEqual([]model.Color{red}, []model.Color{red, green}) {
		t.Error("different lengths should not be equal")
	}
	if colorsEqual([]model.Color{red, green}, []model.Color{green, red}) {
		t.Error("different order should not be equal")
	}
}

// A theme slot edit must change what the editor would show, so the
// change detection cannot swallow it.
func TestResolveStopColorsTracksThemeEdits(t *testing.T) {
	pt := model.PanelTheme{Color1: model.NewColor(1, 0, 0)}
	stops := []model.GradientStop{{Position: 0, Color: model.ThemeColor(1)}}

	before := resolveStopColors(stops, pt)
	pt.Color1 = model.NewColor(0, 0, 1)
	after := resolveStopColors(stops, pt)

	if colorsEqual(before, after) {
		t.Error("resolved colors should differ after the theme slot changed")
	}
}

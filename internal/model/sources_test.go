package model

import (
	"math"
	"testing"
)

func testTheme() PanelTheme {
	return PanelTheme{
		Name:   "test",
		Color1: NewColor(1.0, 0.0, 0.0),
		Color2: NewColor(0.0, 1.0, 0.0),
		Color3: NewColor(0.0, 0.0, 1.0),
		Color4: NewColor(1.0, 1.0, 0.0),
		Font1:  Font{Family: "Orbitron", Size: 14},
		Font2:  Font{Family: "Mono", Size: 10},
	}
}

func TestThemeColorResolvesSlot(t *testing.T) {
	theme := testTheme()

	tests := []struct {
		slot int
		want Color
	}{
		{1, theme.Color1},
		{2, theme.Color2},
		{3, theme.Color3},
		{4, theme.Color4},
	}
	for _, tt := range tests {
		got := ThemeColor(tt.slot).Resolve(theme)
		if got != tt.want {
			t.Errorf("ThemeColor(%d).Resolve = %+v, want %+v", tt.slot, got, tt.want)
		}
	}
}

func TestThemeColorOutOfRangeFallsBackToGray(t *testing.T) {
	theme := testTheme()
	for _, slot := range []int{0, 5, -1, 99} {
		got := ThemeColor(slot).Resolve(theme)
		if got != fallbackColor {
			t.Errorf("ThemeColor(%d).Resolve = %+v, want mid-gray fallback", slot, got)
		}
	}
}

func TestCustomColorResolvesToItself(t *testing.T) {
	c := NewColor(0.25, 0.5, 0.75)
	got := CustomColor(c).Resolve(testTheme())
	if got != c {
		t.Errorf("CustomColor.Resolve = %+v, want %+v", got, c)
	}
}

func TestFontSourceResolve(t *testing.T) {
	theme := testTheme()

	if got := ThemeFont(1).Resolve(theme); got != theme.Font1 {
		t.Errorf("ThemeFont(1) = %+v, want %+v", got, theme.Font1)
	}
	if got := ThemeFont(2).Resolve(theme); got != theme.Font2 {
		t.Errorf("ThemeFont(2) = %+v, want %+v", got, theme.Font2)
	}
	// Out-of-range slots borrow font 1
	if got := ThemeFont(7).Resolve(theme); got != theme.Font1 {
		t.Errorf("ThemeFont(7) = %+v, want font 1 fallback", got)
	}

	custom := CustomFont("Hack", 18)
	if got := custom.Resolve(theme); got.Family != "Hack" || got.Size != 18 {
		t.Errorf("CustomFont.Resolve = %+v", got)
	}
}

func TestCustomFontBorrowsGapsFromFontOne(t *testing.T) {
	theme := testTheme()

	noFamily := FontSource{Kind: SourceCustom, Size: 20}
	got := noFamily.Resolve(theme)
	if got.Family != theme.Font1.Family {
		t.Errorf("empty family resolved to %q, want %q", got.Family, theme.Font1.Family)
	}
	if got.Size != 20 {
		t.Errorf("size = %v, want 20", got.Size)
	}

	noSize := FontSource{Kind: SourceCustom, Family: "Hack"}
	got = noSize.Resolve(theme)
	if got.Size != theme.Font1.Size {
		t.Errorf("zero size resolved to %v, want %v", got.Size, theme.Font1.Size)
	}
}

// ─── Gradient editing ───────────────────────────────────────────────

func TestDefaultGradientResolvesInOrder(t *testing.T) {
	theme := testTheme()
	g := DefaultGradient()

	resolved := g.Resolve(theme)
	if len(resolved.Stops) != 2 {
		t.Fatalf("expected 2 stops, got %d", len(resolved.Stops))
	}
	if resolved.Stops[0].Position > resolved.Stops[1].Position {
		t.Error("resolved stops not in ascending position order")
	}
	if resolved.Stops[0].Color != theme.Color1 {
		t.Errorf("first stop = %+v, want theme color 1", resolved.Stops[0].Color)
	}
	if resolved.Stops[1].Color != theme.Color2 {
		t.Errorf("second stop = %+v, want theme color 2", resolved.Stops[1].Color)
	}
}

func TestAddStopEmptyGradient(t *testing.T) {
	g := GradientConfig{Angle: 90}
	idx := g.AddStop()
	if len(g.Stops) != 1 {
		t.Fatalf("expected 1 stop, got %d", len(g.Stops))
	}
	if idx != 0 {
		t.Errorf("index = %d, want 0", idx)
	}
	if g.Stops[0].Position != 0.5 {
		t.Errorf("position = %v, want 0.5", g.Stops[0].Position)
	}
}

func TestAddStopPastLastWhenTailGapLargest(t *testing.T) {
	g := GradientConfig{Stops: []GradientStop{
		{Position: 0.0, Color: ThemeColor(1)},
		{Position: 0.2, Color: ThemeColor(2)},
	}}
	idx := g.AddStop()
	// Tail gap 0.2..1.0 is the largest; new stop lands at (1+0.2)/2.
	if len(g.Stops) != 3 {
		t.Fatalf("expected 3 stops, got %d", len(g.Stops))
	}
	got := g.Stops[idx].Position
	if math.Abs(got-0.6) > 1e-9 {
		t.Errorf("new stop at %v, want 0.6", got)
	}
}

func TestAddStopSingleStopPicksBiggerSide(t *testing.T) {
	g := GradientConfig{Stops: []GradientStop{{Position: 0.8, Color: ThemeColor(1)}}}
	idx := g.AddStop()
	// Run-in 0..0.8 beats run-out 0.8..1.0.
	if got := g.Stops[idx].Position; math.Abs(got-0.4) > 1e-9 {
		t.Errorf("new stop at %v, want 0.4", got)
	}

	g = GradientConfig{Stops: []GradientStop{{Position: 0.2, Color: ThemeColor(1)}}}
	idx = g.AddStop()
	if got := g.Stops[idx].Position; math.Abs(got-0.6) > 1e-9 {
		t.Errorf("new stop at %v, want 0.6 past the last stop", got)
	}
}

func TestAddStopLargestInteriorGap(t *testing.T) {
	g := GradientConfig{Stops: []GradientStop{
		{Position: 0.0, Color: ThemeColor(1)},
		{Position: 0.1, Color: ThemeColor(2)},
		{Position: 0.9, Color: ThemeColor(3)},
		{Position: 1.0, Color: ThemeColor(4)},
	}}
	idx := g.AddStop()
	got := g.Stops[idx].Position
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("new stop at %v, want midpoint 0.5 of the 0.1..0.9 gap", got)
	}
	// Order must stay ascending after insert.
	for i := 1; i < len(g.Stops); i++ {
		if g.Stops[i-1].Position > g.Stops[i].Position {
			t.Fatal("stops out of order after AddStop")
		}
	}
}

func TestRemoveStopRefusesBelowTwo(t *testing.T) {
	g := DefaultGradient()
	if g.RemoveStop(0) {
		t.Error("RemoveStop succeeded at 2 stops; minimum is 2")
	}
	if len(g.Stops) != 2 {
		t.Errorf("stop count changed to %d", len(g.Stops))
	}

	g.AddStop()
	if !g.RemoveStop(1) {
		t.Error("RemoveStop failed at 3 stops")
	}
	if len(g.Stops) != 2 {
		t.Errorf("expected 2 stops after removal, got %d", len(g.Stops))
	}
}

func TestRemoveStopBadIndex(t *testing.T) {
	g := DefaultGradient()
	g.AddStop()
	if g.RemoveStop(-1) || g.RemoveStop(99) {
		t.Error("RemoveStop accepted an out-of-range index")
	}
}

func TestSetStopPositionClampsToUnitRange(t *testing.T) {
	g := DefaultGradient()
	idx := g.SetStopPosition(0, -5.0)
	if g.Stops[idx].Position != 0.0 {
		t.Errorf("position = %v, want clamp to 0", g.Stops[idx].Position)
	}
	idx = g.SetStopPosition(idx, 7.0)
	pos := g.Stops[idx].Position
	if pos > 1.0 || pos < 0.98 {
		t.Errorf("position = %v, want clamped near 1.0", pos)
	}
}

func TestSetStopPositionKeepsMinimumSeparation(t *testing.T) {
	g := GradientConfig{Stops: []GradientStop{
		{Position: 0.0, Color: ThemeColor(1)},
		{Position: 0.5, Color: ThemeColor(2)},
		{Position: 1.0, Color: ThemeColor(3)},
	}}
	// 0.005 lands inside the protected band around the stop at 0 and
	// gets pushed to the far side of it.
	idx := g.SetStopPosition(1, 0.005)
	pos := g.Stops[idx].Position
	if math.Abs(pos-minStopSeparation) > 1e-12 {
		t.Errorf("stop moved to %v, want pushed to %v", pos, minStopSeparation)
	}
	for i := 1; i < len(g.Stops); i++ {
		gap := g.Stops[i].Position - g.Stops[i-1].Position
		if gap < minStopSeparation-1e-12 {
			t.Errorf("gap %d = %v below minimum separation", i, gap)
		}
	}
}

func TestSetStopPositionResortsAndReturnsNewIndex(t *testing.T) {
	g := GradientConfig{Stops: []GradientStop{
		{Position: 0.1, Color: ThemeColor(1)},
		{Position: 0.5, Color: ThemeColor(2)},
		{Position: 0.9, Color: ThemeColor(3)},
	}}
	// Drag the first stop past the last.
	idx := g.SetStopPosition(0, 0.95)
	if idx != 2 {
		t.Errorf("new index = %d, want 2 after re-sort", idx)
	}
	if g.Stops[idx].Color != ThemeColor(1) {
		t.Error("returned index does not track the moved stop")
	}
	for i := 1; i < len(g.Stops); i++ {
		if g.Stops[i-1].Position > g.Stops[i].Position {
			t.Fatal("stops out of order after SetStopPosition")
		}
	}
}

func TestGradientResolveMissingThemeColorFallsBack(t *testing.T) {
	g := GradientConfig{Stops: []GradientStop{
		{Position: 0.0, Color: ThemeColor(9)},
		{Position: 1.0, Color: ThemeColor(2)},
	}}
	resolved := g.Resolve(testTheme())
	if resolved.Stops[0].Color != fallbackColor {
		t.Errorf("unresolvable stop = %+v, want mid-gray", resolved.Stops[0].Color)
	}
}

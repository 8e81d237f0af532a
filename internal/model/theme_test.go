package model

import "testing"

func TestGetColorSlots(t *testing.T) {
	theme := testTheme()
	if theme.GetColor(1) != theme.Color1 || theme.GetColor(4) != theme.Color4 {
		t.Error("GetColor does not map slots 1-4 to Color1-Color4")
	}
	for _, slot := range []int{0, 5, -3} {
		if theme.GetColor(slot) != fallbackColor {
			t.Errorf("GetColor(%d) did not fall back to mid-gray", slot)
		}
	}
}

func TestGetFontSlots(t *testing.T) {
	theme := testTheme()
	if theme.GetFont(1) != theme.Font1 {
		t.Error("GetFont(1) != Font1")
	}
	if theme.GetFont(2) != theme.Font2 {
		t.Error("GetFont(2) != Font2")
	}
	if theme.GetFont(3) != theme.Font1 {
		t.Error("GetFont(3) should fall back to font 1")
	}
}

func TestGetFontEmptySecondSlotFallsBack(t *testing.T) {
	theme := testTheme()
	theme.Font2 = Font{}
	if theme.GetFont(2) != theme.Font1 {
		t.Error("empty font 2 should borrow font 1")
	}
}

func TestGetFontZeroThemeUsesDefault(t *testing.T) {
	var theme PanelTheme
	got := theme.GetFont(1)
	if got != defaultFont {
		t.Errorf("zero theme font = %+v, want default %+v", got, defaultFont)
	}
}

func TestBuiltInPresetsCoverDisplayOrder(t *testing.T) {
	for _, name := range presetOrder {
		preset, ok := BuiltInPresets[name]
		if !ok {
			t.Errorf("preset %q listed in display order but not defined", name)
			continue
		}
		if preset.Name != name {
			t.Errorf("preset %q carries name %q", name, preset.Name)
		}
		if len(preset.Gradient.Stops) < 2 {
			t.Errorf("preset %q gradient has %d stops, want at least 2", name, len(preset.Gradient.Stops))
		}
		if preset.Font1.Family == "" {
			t.Errorf("preset %q has no primary font", name)
		}
	}
}

func TestGetPresetFallsBackToFirst(t *testing.T) {
	got := GetPreset("no-such-theme")
	if got.Name != presetOrder[0] {
		t.Errorf("unknown preset resolved to %q, want %q", got.Name, presetOrder[0])
	}
}

func TestCustomPresetShadowsBuiltIn(t *testing.T) {
	CustomPresets = map[string]PanelTheme{}
	defer func() { CustomPresets = map[string]PanelTheme{} }()

	shadow := testTheme()
	shadow.Name = "lcars"
	AddCustomPreset(shadow)

	got := GetPreset("lcars")
	if got.Color1 != shadow.Color1 {
		t.Error("custom preset did not shadow the built-in of the same name")
	}

	RemoveCustomPreset("lcars")
	got = GetPreset("lcars")
	if got.Color1 == shadow.Color1 {
		t.Error("built-in did not reappear after removing the shadowing custom preset")
	}
}

func TestAddCustomPresetIgnoresEmptyName(t *testing.T) {
	CustomPresets = map[string]PanelTheme{}
	defer func() { CustomPresets = map[string]PanelTheme{} }()

	AddCustomPreset(PanelTheme{})
	if len(CustomPresets) != 0 {
		t.Error("nameless preset was stored")
	}
}

func TestGetPresetNamesOrderAndCustomTail(t *testing.T) {
	CustomPresets = map[string]PanelTheme{}
	defer func() { CustomPresets = map[string]PanelTheme{} }()

	zebra := testTheme()
	zebra.Name = "zebra"
	aqua := testTheme()
	aqua.Name = "aqua"
	AddCustomPreset(zebra)
	AddCustomPreset(aqua)

	names := GetPresetNames()
	if len(names) != len(presetOrder)+2 {
		t.Fatalf("got %d names, want %d", len(names), len(presetOrder)+2)
	}
	for i, want := range presetOrder {
		if names[i] != want {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want)
		}
	}
	if names[len(presetOrder)] != "aqua" || names[len(presetOrder)+1] != "zebra" {
		t.Errorf("custom tail = %v, want alphabetical [aqua zebra]", names[len(presetOrder):])
	}
}

func TestAllPresetsMergesCustom(t *testing.T) {
	CustomPresets = map[string]PanelTheme{}
	defer func() { CustomPresets = map[string]PanelTheme{} }()

	mine := testTheme()
	mine.Name = "mine"
	AddCustomPreset(mine)

	all := AllPresets()
	if _, ok := all["mine"]; !ok {
		t.Error("custom preset missing from AllPresets")
	}
	if _, ok := all["cyberpunk"]; !ok {
		t.Error("built-in preset missing from AllPresets")
	}
}

func TestSetColorAndFontSlots(t *testing.T) {
	var pt PanelTheme
	red := NewColor(1, 0, 0)

	pt.SetColor(3, red)
	if pt.GetColor(3) != red {
		t.Error("SetColor(3) did not stick")
	}
	pt.SetColor(9, red) // ignored
	if pt.Color1 != (Color{}) && pt.Color2 != (Color{}) {
		t.Error("out-of-range SetColor touched a real slot")
	}

	mono := Font{Family: "Mono", Size: 11}
	pt.SetFont(2, mono)
	if pt.Font2 != mono {
		t.Error("SetFont(2) did not stick")
	}
	pt.SetFont(0, Font{Family: "Nope"})
	if pt.Font1.Family == "Nope" {
		t.Error("out-of-range SetFont touched slot 1")
	}
}

func TestGetPresetReturnsPrivateCopy(t *testing.T) {
	got := GetPreset("lcars")
	if len(got.Gradient.Stops) == 0 {
		t.Fatal("lcars preset should carry gradient stops")
	}
	orig := got.Gradient.Stops[0].Position
	got.Gradient.Stops[0].Position = orig + 0.25

	if BuiltInPresets["lcars"].Gradient.Stops[0].Position != orig {
		t.Error("editing a GetPreset result reached the stored preset")
	}
}

func TestThemeCloneIndependentStops(t *testing.T) {
	orig := testTheme()
	orig.Gradient = DefaultGradient()

	cp := orig.Clone()
	cp.Gradient.Stops[0].Position = 0.4

	if orig.Gradient.Stops[0].Position == 0.4 {
		t.Error("clone shares gradient stops with the original")
	}
}

package model

import "sort"

// Font is a concrete font choice: a family name plus a point size.
type Font struct {
	Family string  `json:"family"`
	Size   float64 `json:"size"`
}

// Editable font size range.
const (
	MinFontSize = 6.0
	MaxFontSize = 72.0
)

// defaultFont is used when a theme has no fonts set at all.
var defaultFont = Font{Family: "Sans", Size: 12.0}

// PanelTheme is the styling contract for a panel: four named color
// slots, two font slots, and a background gradient. Every themed value
// in a panel resolves against one of these slots.
type PanelTheme struct {
	Name     string         `json:"name"`
	Color1   Color          `json:"color1"`
	Color2   Color          `json:"color2"`
	Color3   Color          `json:"color3"`
	Color4   Color          `json:"color4"`
	Font1    Font           `json:"font1"`
	Font2    Font           `json:"font2"`
	Gradient GradientConfig `json:"gradient"`
}

// GetColor returns the color in slot 1-4. Out-of-range slots resolve
// to mid-gray so a stale reference still paints.
func (t PanelTheme) GetColor(slot int) Color {
	switch slot {
	case 1:
		return t.Color1
	case 2:
		return t.Color2
	case 3:
		return t.Color3
	case 4:
		return t.Color4
	default:
		return fallbackColor
	}
}

// GetFont returns the font in slot 1-2, falling back to the primary
// font for anything else.
func (t PanelTheme) GetFont(slot int) Font {
	if slot == 2 && t.Font2.Family != "" {
		return t.Font2
	}
	if t.Font1.Family != "" {
		return t.Font1
	}
	return defaultFont
}

// SetColor writes the color in slot 1-4. Out-of-range slots are ignored.
func (t *PanelTheme) SetColor(slot int, c Color) {
	switch slot {
	case 1:
		t.Color1 = c
	case 2:
		t.Color2 = c
	case 3:
		t.Color3 = c
	case 4:
		t.Color4 = c
	}
}

// SetFont writes the font in slot 1-2. Out-of-range slots are ignored.
func (t *PanelTheme) SetFont(slot int, f Font) {
	switch slot {
	case 1:
		t.Font1 = f
	case 2:
		t.Font2 = f
	}
}

// Clone returns a copy that shares nothing with the receiver. Needed
// because the gradient stop list is a slice; a plain struct copy would
// keep both themes writing into the same stops.
func (t PanelTheme) Clone() PanelTheme {
	cp := t
	cp.Gradient.Stops = append([]GradientStop(nil), t.Gradient.Stops...)
	return cp
}

// bgGradient builds a vertical background gradient between two fixed colors.
func bgGradient(top, bottom Color) GradientConfig {
	return GradientConfig{
		Angle: 90.0,
		Stops: []GradientStop{
			{Position: 0.0, Color: CustomColor(top)},
			{Position: 1.0, Color: CustomColor(bottom)},
		},
	}
}

// presetOrder fixes the display order of built-in themes. The first
// entry doubles as the fallback for unknown preset names.
var presetOrder = []string{
	"lcars",
	"cyberpunk",
	"synthwave",
	"industrial",
	"material",
	"material_light",
	"material_dark",
	"retro_terminal",
	"fighter_hud",
	"steampunk",
	"art_deco",
	"art_nouveau",
}

// BuiltInPresets contains the predefined panel themes.
var BuiltInPresets = map[string]PanelTheme{
	"lcars": {
		Name:     "lcars",
		Color1:   ColorFromRGBA8(255, 153, 102, 255),
		Color2:   ColorFromRGBA8(204, 153, 204, 255),
		Color3:   ColorFromRGBA8(153, 153, 255, 255),
		Color4:   ColorFromRGBA8(255, 204, 153, 255),
		Font1:    Font{Family: "Antonio", Size: 16.0},
		Font2:    Font{Family: "Antonio", Size: 12.0},
		Gradient: bgGradient(ColorFromRGBA8(17, 17, 34, 255), ColorFromRGBA8(0, 0, 0, 255)),
	},
	"cyberpunk": {
		Name:     "cyberpunk",
		Color1:   ColorFromRGBA8(0, 255, 255, 255),
		Color2:   ColorFromRGBA8(255, 0, 128, 255),
		Color3:   ColorFromRGBA8(255, 255, 0, 255),
		Color4:   ColorFromRGBA8(128, 0, 255, 255),
		Font1:    Font{Family: "Rajdhani", Size: 15.0},
		Font2:    Font{Family: "Share Tech Mono", Size: 12.0},
		Gradient: bgGradient(ColorFromRGBA8(10, 10, 30, 255), ColorFromRGBA8(30, 0, 40, 255)),
	},
	"synthwave": {
		Name:     "synthwave",
		Color1:   ColorFromRGBA8(255, 56, 140, 255),
		Color2:   ColorFromRGBA8(128, 66, 255, 255),
		Color3:   ColorFromRGBA8(54, 219, 255, 255),
		Color4:   ColorFromRGBA8(255, 184, 77, 255),
		Font1:    Font{Family: "Orbitron", Size: 14.0},
		Font2:    Font{Family: "VCR OSD Mono", Size: 12.0},
		Gradient: bgGradient(ColorFromRGBA8(45, 12, 66, 255), ColorFromRGBA8(16, 5, 32, 255)),
	},
	"industrial": {
		Name:     "industrial",
		Color1:   ColorFromRGBA8(255, 121, 0, 255),
		Color2:   ColorFromRGBA8(158, 158, 158, 255),
		Color3:   ColorFromRGBA8(255, 214, 0, 255),
		Color4:   ColorFromRGBA8(96, 125, 139, 255),
		Font1:    Font{Family: "Oswald", Size: 15.0},
		Font2:    Font{Family: "Roboto Condensed", Size: 12.0},
		Gradient: bgGradient(ColorFromRGBA8(38, 38, 38, 255), ColorFromRGBA8(18, 18, 18, 255)),
	},
	"material": {
		Name:     "material",
		Color1:   ColorFromRGBA8(63, 81, 181, 255),
		Color2:   ColorFromRGBA8(0, 150, 136, 255),
		Color3:   ColorFromRGBA8(255, 193, 7, 255),
		Color4:   ColorFromRGBA8(255, 87, 34, 255),
		Font1:    Font{Family: "Roboto", Size: 14.0},
		Font2:    Font{Family: "Roboto Mono", Size: 12.0},
		Gradient: bgGradient(ColorFromRGBA8(48, 48, 48, 255), ColorFromRGBA8(33, 33, 33, 255)),
	},
	"material_light": {
		Name:     "material_light",
		Color1:   ColorFromRGBA8(25, 118, 210, 255),
		Color2:   ColorFromRGBA8(56, 142, 60, 255),
		Color3:   ColorFromRGBA8(245, 124, 0, 255),
		Color4:   ColorFromRGBA8(123, 31, 162, 255),
		Font1:    Font{Family: "Roboto", Size: 14.0},
		Font2:    Font{Family: "Roboto Mono", Size: 12.0},
		Gradient: bgGradient(ColorFromRGBA8(250, 250, 250, 255), ColorFromRGBA8(224, 224, 224, 255)),
	},
	"material_dark": {
		Name:     "material_dark",
		Color1:   ColorFromRGBA8(144, 202, 249, 255),
		Color2:   ColorFromRGBA8(129, 199, 132, 255),
		Color3:   ColorFromRGBA8(255, 183, 77, 255),
		Color4:   ColorFromRGBA8(206, 147, 216, 255),
		Font1:    Font{Family: "Roboto", Size: 14.0},
		Font2:    Font{Family: "Roboto Mono", Size: 12.0},
		Gradient: bgGradient(ColorFromRGBA8(18, 18, 18, 255), ColorFromRGBA8(5, 5, 5, 255)),
	},
	"retro_terminal": {
		Name:     "retro_terminal",
		Color1:   ColorFromRGBA8(51, 255, 51, 255),
		Color2:   ColorFromRGBA8(0, 187, 0, 255),
		Color3:   ColorFromRGBA8(136, 255, 136, 255),
		Color4:   ColorFromRGBA8(0, 102, 0, 255),
		Font1:    Font{Family: "VT323", Size: 18.0},
		Font2:    Font{Family: "IBM Plex Mono", Size: 13.0},
		Gradient: bgGradient(ColorFromRGBA8(0, 16, 0, 255), ColorFromRGBA8(0, 5, 0, 255)),
	},
	"fighter_hud": {
		Name:     "fighter_hud",
		Color1:   ColorFromRGBA8(0, 255, 102, 255),
		Color2:   ColorFromRGBA8(255, 191, 0, 255),
		Color3:   ColorFromRGBA8(102, 255, 178, 255),
		Color4:   ColorFromRGBA8(255, 64, 64, 255),
		Font1:    Font{Family: "B612 Mono", Size: 13.0},
		Font2:    Font{Family: "B612", Size: 11.0},
		Gradient: bgGradient(ColorFromRGBA8(6, 12, 8, 255), ColorFromRGBA8(0, 0, 0, 255)),
	},
	"steampunk": {
		Name:     "steampunk",
		Color1:   ColorFromRGBA8(205, 149, 69, 255),
		Color2:   ColorFromRGBA8(140, 94, 49, 255),
		Color3:   ColorFromRGBA8(236, 204, 162, 255),
		Color4:   ColorFromRGBA8(94, 66, 41, 255),
		Font1:    Font{Family: "IM Fell English", Size: 15.0},
		Font2:    Font{Family: "Special Elite", Size: 12.0},
		Gradient: bgGradient(ColorFromRGBA8(43, 31, 23, 255), ColorFromRGBA8(24, 17, 12, 255)),
	},
	"art_deco": {
		Name:     "art_deco",
		Color1:   ColorFromRGBA8(212, 175, 55, 255),
		Color2:   ColorFromRGBA8(10, 186, 181, 255),
		Color3:   ColorFromRGBA8(240, 234, 214, 255),
		Color4:   ColorFromRGBA8(128, 0, 32, 255),
		Font1:    Font{Family: "Poiret One", Size: 16.0},
		Font2:    Font{Family: "Josefin Sans", Size: 12.0},
		Gradient: bgGradient(ColorFromRGBA8(26, 26, 29, 255), ColorFromRGBA8(10, 10, 12, 255)),
	},
	"art_nouveau": {
		Name:     "art_nouveau",
		Color1:   ColorFromRGBA8(156, 175, 136, 255),
		Color2:   ColorFromRGBA8(107, 79, 58, 255),
		Color3:   ColorFromRGBA8(201, 169, 97, 255),
		Color4:   ColorFromRGBA8(233, 226, 208, 255),
		Font1:    Font{Family: "Cormorant Garamond", Size: 16.0},
		Font2:    Font{Family: "EB Garamond", Size: 13.0},
		Gradient: bgGradient(ColorFromRGBA8(42, 48, 40, 255), ColorFromRGBA8(24, 28, 23, 255)),
	},
}

// CustomPresets stores user-defined themes, keyed by name.
var CustomPresets = map[string]PanelTheme{}

// GetPreset returns a theme by name. Custom presets shadow built-in
// ones. Unknown names fall back to the first built-in preset. The
// result is a private copy: editing it never reaches the stored preset.
func GetPreset(name string) PanelTheme {
	if t, ok := CustomPresets[name]; ok {
		return t.Clone()
	}
	if t, ok := BuiltInPresets[name]; ok {
		return t.Clone()
	}
	return BuiltInPresets[presetOrder[0]].Clone()
}

// GetPresetNames returns built-in preset names in display order
// followed by custom preset names sorted alphabetically.
func GetPresetNames() []string {
	names := make([]string, 0, len(presetOrder)+len(CustomPresets))
	names = append(names, presetOrder...)

	custom := make([]string, 0, len(CustomPresets))
	for name := range CustomPresets {
		if _, builtin := BuiltInPresets[name]; builtin {
			continue
		}
		custom = append(custom, name)
	}
	sort.Strings(custom)
	return append(names, custom...)
}

// AllPresets returns every available theme keyed by name, with custom
// presets shadowing built-in ones of the same name.
func AllPresets() map[string]PanelTheme {
	all := make(map[string]PanelTheme, len(BuiltInPresets)+len(CustomPresets))
	for name, t := range BuiltInPresets {
		all[name] = t
	}
	for name, t := range CustomPresets {
		all[name] = t
	}
	return all
}

// AddCustomPreset registers or replaces a user-defined theme.
func AddCustomPreset(t PanelTheme) {
	if t.Name == "" {
		return
	}
	CustomPresets[t.Name] = t
}

// RemoveCustomPreset deletes a user-defined theme. Built-in presets
// cannot be removed.
func RemoveCustomPreset(name string) {
	delete(CustomPresets, name)
}

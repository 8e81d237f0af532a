package model

import (
	"math"
	"sort"
)

// SourceKind says where a themed value comes from.
type SourceKind string

const (
	SourceTheme  SourceKind = "theme"
	SourceCustom SourceKind = "custom"
)

// fallbackColor is returned whenever a source cannot be resolved.
var fallbackColor = Color{R: 0.5, G: 0.5, B: 0.5, A: 1.0}

// ColorSource selects one of the panel theme's color slots or carries
// a custom color of its own.
type ColorSource struct {
	Kind  SourceKind `json:"kind"`
	Slot  int        `json:"slot,omitempty"`  // 1-4 when Kind == SourceTheme
	Color Color      `json:"color,omitempty"` // used when Kind == SourceCustom
}

// ThemeColor references theme color slot n (1-4).
func ThemeColor(n int) ColorSource {
	return ColorSource{Kind: SourceTheme, Slot: n}
}

// CustomColor carries a literal color.
func CustomColor(c Color) ColorSource {
	return ColorSource{Kind: SourceCustom, Color: c}
}

// Resolve returns the concrete color for this source under the given theme.
// Unknown kinds and out-of-range slots resolve to mid-gray so painting
// never fails.
func (s ColorSource) Resolve(theme PanelTheme) Color {
	switch s.Kind {
	case SourceTheme:
		return theme.GetColor(s.Slot)
	case SourceCustom:
		return s.Color
	default:
		return fallbackColor
	}
}

// IsTheme reports whether the source tracks the theme.
func (s ColorSource) IsTheme() bool {
	return s.Kind == SourceTheme
}

// FontSource selects one of the panel theme's font slots or carries a
// custom family and size of its own.
type FontSource struct {
	Kind   SourceKind `json:"kind"`
	Slot   int        `json:"slot,omitempty"`   // 1-2 when Kind == SourceTheme
	Family string     `json:"family,omitempty"` // used when Kind == SourceCustom
	Size   float64    `json:"size,omitempty"`
}

// ThemeFont references theme font slot n (1-2).
func ThemeFont(n int) FontSource {
	return FontSource{Kind: SourceTheme, Slot: n}
}

// CustomFont carries a literal font family and size.
func CustomFont(family string, size float64) FontSource {
	return FontSource{Kind: SourceCustom, Family: family, Size: size}
}

// Resolve returns the concrete font for this source. Unknown kinds and
// out-of-range slots fall back to the theme's primary font; a custom
// source with gaps borrows the missing part from font slot 1.
func (s FontSource) Resolve(theme PanelTheme) Font {
	switch s.Kind {
	case SourceTheme:
		return theme.GetFont(s.Slot)
	case SourceCustom:
		f := Font{Family: s.Family, Size: s.Size}
		primary := theme.GetFont(1)
		if f.Family == "" {
			f.Family = primary.Family
		}
		if f.Size <= 0 {
			f.Size = primary.Size
		}
		return f
	default:
		return theme.GetFont(1)
	}
}

// GradientStop is one stop of an editable gradient. Its color is itself
// a source, so a stop can track a theme slot and restyle with the theme.
type GradientStop struct {
	Position float64     `json:"position"`
	Color    ColorSource `json:"color"`
}

// GradientConfig is an editable linear gradient whose stops may
// reference theme colors. Stops are kept sorted ascending by position.
type GradientConfig struct {
	Angle float64        `json:"angle"`
	Stops []GradientStop `json:"stops"`
}

// minStopSeparation is the smallest allowed gap between neighbouring
// stop positions when editing.
const minStopSeparation = 0.01

// DefaultGradient is a two-stop gradient between theme colors 1 and 2.
func DefaultGradient() GradientConfig {
	return GradientConfig{
		Angle: 90.0,
		Stops: []GradientStop{
			{Position: 0.0, Color: ThemeColor(1)},
			{Position: 1.0, Color: ThemeColor(2)},
		},
	}
}

// Resolve produces the concrete gradient for painting under the given
// theme. The result's stops are sorted ascending.
func (g GradientConfig) Resolve(theme PanelTheme) LinearGradient {
	out := LinearGradient{Angle: g.Angle, Stops: make([]ColorStop, len(g.Stops))}
	for i, s := range g.Stops {
		out.Stops[i] = ColorStop{Position: s.Position, Color: s.Color.Resolve(theme)}
	}
	sort.SliceStable(out.Stops, func(i, j int) bool {
		return out.Stops[i].Position < out.Stops[j].Position
	})
	return out
}

// sortStops keeps the editable stop list ordered ascending by position.
func (g *GradientConfig) sortStops() {
	sort.SliceStable(g.Stops, func(i, j int) bool {
		return g.Stops[i].Position < g.Stops[j].Position
	})
}

// AddStop inserts a new stop at the midpoint of the largest gap,
// counting the run-in before the first stop and the run-out past the
// last one, and returns its index. An empty gradient gets its first
// stop at 0.5. The new stop starts as a custom mid-gray so the user
// sees it immediately.
func (g *GradientConfig) AddStop() int {
	g.sortStops()

	var pos float64
	if len(g.Stops) == 0 {
		pos = 0.5
	} else {
		maxGap := g.Stops[0].Position
		pos = g.Stops[0].Position / 2.0
		for i := 1; i < len(g.Stops); i++ {
			gap := g.Stops[i].Position - g.Stops[i-1].Position
			if gap > maxGap {
				maxGap = gap
				pos = (g.Stops[i-1].Position + g.Stops[i].Position) / 2.0
			}
		}
		last := g.Stops[len(g.Stops)-1].Position
		if 1.0-last > maxGap {
			pos = (1.0 + last) / 2.0
		}
	}

	g.Stops = append(g.Stops, GradientStop{Position: pos, Color: CustomColor(fallbackColor)})
	g.sortStops()
	for i, s := range g.Stops {
		if s.Position == pos {
			return i
		}
	}
	return len(g.Stops) - 1
}

// RemoveStop deletes the stop at index i. A gradient keeps at least two
// stops; removal below that is refused.
func (g *GradientConfig) RemoveStop(i int) bool {
	if len(g.Stops) <= 2 {
		return false
	}
	if i < 0 || i >= len(g.Stops) {
		return false
	}
	g.Stops = append(g.Stops[:i], g.Stops[i+1:]...)
	return true
}

// SetStopPosition moves stop i to pos, clamped to [0,1]. A position
// landing within minStopSeparation of another stop is pushed to the
// far side of it; a stop may cross its neighbours, so the list is
// re-sorted and the stop's new index returned.
func (g *GradientConfig) SetStopPosition(i int, pos float64) int {
	if i < 0 || i >= len(g.Stops) {
		return i
	}
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	for j, other := range g.Stops {
		if j == i {
			continue
		}
		d := math.Abs(pos - other.Position)
		if d < minStopSeparation && d > 0 {
			if pos < other.Position {
				pos = math.Max(other.Position-minStopSeparation, 0.0)
			} else {
				pos = math.Min(other.Position+minStopSeparation, 1.0)
			}
		}
	}
	g.Stops[i].Position = pos
	moved := g.Stops[i]
	g.sortStops()
	for idx, s := range g.Stops {
		if s == moved {
			return idx
		}
	}
	return i
}

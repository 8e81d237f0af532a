package model

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an RGBA color with components in the 0.0 to 1.0 range.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// NewColor creates an opaque color from 0-1 components.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1.0}
}

// ColorFromRGBA8 converts 8-bit channel values to a Color.
func ColorFromRGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
		A: float64(a) / 255.0,
	}
}

// clamp8 converts a 0-1 component to an 8-bit channel value.
func clamp8(v float64) uint8 {
	scaled := math.Round(v * 255.0)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}

// RGBA8 returns the color as 8-bit channel values.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return clamp8(c.R), clamp8(c.G), clamp8(c.B), clamp8(c.A)
}

// NRGBA converts the color for use with the rendering toolkit.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Hex returns the color as a #RRGGBB string (alpha ignored).
func (c Color) Hex() string {
	r, g, b, _ := c.RGBA8()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// ColorStop is a concrete gradient stop: a resolved color at a position in [0,1].
type ColorStop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

// LinearGradient is a fully resolved gradient ready for painting.
// Stops are ordered ascending by position.
type LinearGradient struct {
	Angle float64     `json:"angle"` // degrees, 90 = top to bottom
	Stops []ColorStop `json:"stops"`
}

// ColorAt returns the interpolated color at position t in [0,1].
// Positions outside the stop range clamp to the nearest stop.
func (g LinearGradient) ColorAt(t float64) Color {
	if len(g.Stops) == 0 {
		return fallbackColor
	}
	if t <= g.Stops[0].Position {
		return g.Stops[0].Color
	}
	last := g.Stops[len(g.Stops)-1]
	if t >= last.Position {
		return last.Color
	}
	for i := 1; i < len(g.Stops); i++ {
		hi := g.Stops[i]
		if t > hi.Position {
			continue
		}
		lo := g.Stops[i-1]
		span := hi.Position - lo.Position
		if span <= 0 {
			return hi.Color
		}
		f := (t - lo.Position) / span
		return Color{
			R: lo.Color.R + (hi.Color.R-lo.Color.R)*f,
			G: lo.Color.G + (hi.Color.G-lo.Color.G)*f,
			B: lo.Color.B + (hi.Color.B-lo.Color.B)*f,
			A: lo.Color.A + (hi.Color.A-lo.Color.A)*f,
		}
	}
	return last.Color
}

package model

import (
	"math"
	"testing"
)

func TestColorHex(t *testing.T) {
	cases := []struct {
		name string
		c    Color
		want string
	}{
		{"black", NewColor(0, 0, 0), "#000000"},
		{"white", NewColor(1, 1, 1), "#FFFFFF"},
		{"red", NewColor(1, 0, 0), "#FF0000"},
		{"mid gray", NewColor(0.5, 0.5, 0.5), "#808080"},
		{"overflow clamps", Color{R: 2.0, G: -1.0, B: 0.5, A: 1.0}, "#FF0080"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Hex(); got != tc.want {
				t.Errorf("hex = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestColorFromRGBA8RoundTrip(t *testing.T) {
	c := ColorFromRGBA8(255, 128, 0, 255)
	r, g, b, a := c.RGBA8()
	if r != 255 || g != 128 || b != 0 || a != 255 {
		t.Errorf("round trip = %d,%d,%d,%d", r, g, b, a)
	}
}

func TestColorNRGBA(t *testing.T) {
	n := NewColor(1, 0.5, 0).NRGBA()
	if n.R != 255 || n.G != 128 || n.B != 0 || n.A != 255 {
		t.Errorf("nrgba = %+v", n)
	}
}

func TestGradientColorAt(t *testing.T) {
	g := LinearGradient{
		Angle: 90,
		Stops: []ColorStop{
			{Position: 0.2, Color: NewColor(0, 0, 0)},
			{Position: 0.8, Color: NewColor(1, 1, 1)},
		},
	}

	if c := g.ColorAt(0.0); c != NewColor(0, 0, 0) {
		t.Errorf("before first stop = %+v, want first stop color", c)
	}
	if c := g.ColorAt(1.0); c != NewColor(1, 1, 1) {
		t.Errorf("after last stop = %+v, want last stop color", c)
	}

	mid := g.ColorAt(0.5)
	if math.Abs(mid.R-0.5) > 1e-9 || math.Abs(mid.G-0.5) > 1e-9 {
		t.Errorf("midpoint = %+v, want 50%% blend", mid)
	}

	quarter := g.ColorAt(0.35)
	if math.Abs(quarter.R-0.25) > 1e-9 {
		t.Errorf("quarter = %+v, want 25%% blend", quarter)
	}
}

func TestGradientColorAtEmptyStops(t *testing.T) {
	c := LinearGradient{}.ColorAt(0.5)
	if c != fallbackColor {
		t.Errorf("empty gradient = %+v, want fallback gray", c)
	}
}

func TestGradientColorAtCoincidentStops(t *testing.T) {
	g := LinearGradient{
		Stops: []ColorStop{
			{Position: 0.5, Color: NewColor(1, 0, 0)},
			{Position: 0.5, Color: NewColor(0, 1, 0)},
			{Position: 0.9, Color: NewColor(0, 0, 1)},
		},
	}
	// No interpolation across a zero-width span.
	c := g.ColorAt(0.5)
	if c != NewColor(1, 0, 0) && c != NewColor(0, 1, 0) {
		t.Errorf("coincident stops = %+v, want one of the stop colors", c)
	}
}

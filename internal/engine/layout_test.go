package engine

import (
	"testing"

	"github.com/piwi3910/PulseBoard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateGroupLayouts_SingleGroupFillsContent(t *testing.T) {
	content := Rect{X: 10, Y: 20, W: 400, H: 300}
	groups := CalculateGroupLayouts(content, 1, []float64{1.0}, 4, 4, model.OrientationVertical)

	require.Len(t, groups, 1)
	assert.Equal(t, content, groups[0], "a single group takes the whole content rectangle")
}

func TestCalculateGroupLayouts_EqualWeightsVertical(t *testing.T) {
	content := Rect{X: 0, Y: 0, W: 200, H: 320}
	// Two groups, divider 4 wide with 8 padding: 20 consumed, 300 shared.
	groups := CalculateGroupLayouts(content, 2, []float64{1.0, 1.0}, 4, 8, model.OrientationVertical)

	require.Len(t, groups, 2)
	assert.InDelta(t, 150.0, groups[0].H, 1e-9)
	assert.InDelta(t, 150.0, groups[1].H, 1e-9)
	assert.InDelta(t, 0.0, groups[0].Y, 1e-9)
	assert.InDelta(t, 170.0, groups[1].Y, 1e-9, "second group starts after the padded divider")

	for _, g := range groups {
		assert.Equal(t, 200.0, g.W, "groups span the full cross axis")
		assert.Equal(t, 0.0, g.X)
	}
}

func TestCalculateGroupLayouts_WeightProportions(t *testing.T) {
	content := Rect{X: 0, Y: 0, W: 100, H: 330}
	// Weights 1:2 over 300 available (one divider of 10+2*10).
	groups := CalculateGroupLayouts(content, 2, []float64{1.0, 2.0}, 10, 10, model.OrientationVertical)

	require.Len(t, groups, 2)
	assert.InDelta(t, 100.0, groups[0].H, 1e-9)
	assert.InDelta(t, 200.0, groups[1].H, 1e-9)
	assert.InDelta(t, 2.0, groups[1].H/groups[0].H, 1e-9, "sizes follow the weight ratio")
}

func TestCalculateGroupLayouts_TilesTheSplitAxis(t *testing.T) {
	content := Rect{X: 5, Y: 7, W: 640, H: 480}
	weights := []float64{1.0, 3.0, 2.0}
	dw, dp := 4.0, 4.0
	groups := CalculateGroupLayouts(content, 3, weights, dw, dp, model.OrientationVertical)

	require.Len(t, groups, 3)

	// Groups plus padded dividers add up to the full content height.
	total := 0.0
	for _, g := range groups {
		total += g.H
	}
	total += 2 * (dw + 2*dp)
	assert.InDelta(t, content.H, total, 1e-9)

	// Sequential placement: each group starts one padded divider after
	// the previous one ends.
	assert.InDelta(t, content.Y, groups[0].Y, 1e-9)
	assert.InDelta(t, groups[0].Bottom()+dw+2*dp, groups[1].Y, 1e-9)
	assert.InDelta(t, groups[1].Bottom()+dw+2*dp, groups[2].Y, 1e-9)
	assert.InDelta(t, content.Bottom(), groups[2].Bottom(), 1e-9)
}

func TestCalculateGroupLayouts_Horizontal(t *testing.T) {
	content := Rect{X: 0, Y: 0, W: 330, H: 120}
	groups := CalculateGroupLayouts(content, 2, []float64{1.0, 2.0}, 10, 10, model.OrientationHorizontal)

	require.Len(t, groups, 2)
	assert.InDelta(t, 100.0, groups[0].W, 1e-9)
	assert.InDelta(t, 200.0, groups[1].W, 1e-9)
	assert.InDelta(t, 130.0, groups[1].X, 1e-9)
	for _, g := range groups {
		assert.Equal(t, 120.0, g.H, "groups span the full height when splitting horizontally")
		assert.Equal(t, 0.0, g.Y)
	}
}

func TestCalculateGroupLayouts_ShortWeightVectorDefaultsToOne(t *testing.T) {
	content := Rect{X: 0, Y: 0, W: 100, H: 300}
	groups := CalculateGroupLayouts(content, 3, []float64{2.0}, 0, 0, model.OrientationVertical)

	require.Len(t, groups, 3)
	// Weights read as [2, 1, 1]: total 4 over 300.
	assert.InDelta(t, 150.0, groups[0].H, 1e-9)
	assert.InDelta(t, 75.0, groups[1].H, 1e-9)
	assert.InDelta(t, 75.0, groups[2].H, 1e-9)
}

func TestCalculateGroupLayouts_ZeroTotalWeightSplitsEvenly(t *testing.T) {
	content := Rect{X: 0, Y: 0, W: 100, H: 300}
	groups := CalculateGroupLayouts(content, 3, []float64{0, 0, 0}, 0, 0, model.OrientationVertical)

	require.Len(t, groups, 3)
	for i, g := range groups {
		assert.InDelta(t, 100.0, g.H, 1e-9, "group %d should get an even share", i)
	}
}

func TestCalculateGroupLayouts_ZeroCountTreatedAsOne(t *testing.T) {
	content := Rect{X: 0, Y: 0, W: 100, H: 100}
	groups := CalculateGroupLayouts(content, 0, nil, 4, 4, model.OrientationVertical)
	require.Len(t, groups, 1)
	assert.Equal(t, content, groups[0])
}

func TestCalculateGroupLayouts_OverflowIsNotClamped(t *testing.T) {
	// Content shorter than the divider space: sizes go negative so the
	// caller can see how far the layout overflowed.
	content := Rect{X: 0, Y: 0, W: 100, H: 10}
	groups := CalculateGroupLayouts(content, 3, nil, 10, 5, model.OrientationVertical)

	require.Len(t, groups, 3)
	for _, g := range groups {
		assert.Less(t, g.H, 0.0, "degenerate layouts keep their negative sizes")
	}
}

func TestDividerRects_Vertical(t *testing.T) {
	content := Rect{X: 0, Y: 0, W: 200, H: 320}
	dw, dp := 4.0, 8.0
	groups := CalculateGroupLayouts(content, 2, nil, dw, dp, model.OrientationVertical)
	dividers := DividerRects(content, groups, dw, dp, model.OrientationVertical)

	require.Len(t, dividers, 1)
	d := dividers[0]
	assert.InDelta(t, groups[0].Bottom()+dp, d.Y, 1e-9, "divider sits after the padding")
	assert.Equal(t, dw, d.H)
	assert.Equal(t, content.W, d.W, "divider spans the full cross axis")
	assert.InDelta(t, d.Bottom()+dp, groups[1].Y, 1e-9, "next group starts after the far padding")
}

func TestDividerRects_Horizontal(t *testing.T) {
	content := Rect{X: 10, Y: 0, W: 330, H: 120}
	dw, dp := 10.0, 10.0
	groups := CalculateGroupLayouts(content, 2, nil, dw, dp, model.OrientationHorizontal)
	dividers := DividerRects(content, groups, dw, dp, model.OrientationHorizontal)

	require.Len(t, dividers, 1)
	d := dividers[0]
	assert.InDelta(t, groups[0].Right()+dp, d.X, 1e-9)
	assert.Equal(t, dw, d.W)
	assert.Equal(t, content.H, d.H)
}

func TestDividerRects_NoneForSingleGroup(t *testing.T) {
	content := Rect{W: 100, H: 100}
	groups := CalculateGroupLayouts(content, 1, nil, 4, 4, model.OrientationVertical)
	assert.Empty(t, DividerRects(content, groups, 4, 4, model.OrientationVertical))
}

func TestRectArea(t *testing.T) {
	assert.Equal(t, 200.0, Rect{W: 10, H: 20}.Area())
	assert.Equal(t, 0.0, Rect{W: -10, H: 20}.Area(), "degenerate rectangles have zero area")
	assert.Equal(t, 0.0, Rect{}.Area())
}

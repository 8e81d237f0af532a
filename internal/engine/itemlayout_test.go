package engine

import (
	"testing"

	"github.com/piwi3910/PulseBoard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateItemLayouts_FlexSplitsEvenly(t *testing.T) {
	group := Rect{X: 0, Y: 10, W: 200, H: 310}
	sizes := []ItemSize{{}, {}, {}}
	rects := CalculateItemLayouts(group, sizes, 5, model.OrientationVertical)

	require.Len(t, rects, 3)
	for i, r := range rects {
		assert.InDelta(t, 100.0, r.H, 1e-9, "item %d should get an even share", i)
		assert.Equal(t, 200.0, r.W)
	}
	assert.InDelta(t, 10.0, rects[0].Y, 1e-9)
	assert.InDelta(t, 115.0, rects[1].Y, 1e-9)
	assert.InDelta(t, 220.0, rects[2].Y, 1e-9)
	assert.InDelta(t, group.Bottom(), rects[2].Bottom(), 1e-9)
}

func TestCalculateItemLayouts_FixedItemsKeepTheirExtent(t *testing.T) {
	group := Rect{X: 0, Y: 0, W: 200, H: 300}
	sizes := []ItemSize{
		{Fixed: true, Extent: 60},
		{},
		{Fixed: true, Extent: 40},
	}
	rects := CalculateItemLayouts(group, sizes, 0, model.OrientationVertical)

	require.Len(t, rects, 3)
	assert.Equal(t, 60.0, rects[0].H)
	assert.InDelta(t, 200.0, rects[1].H, 1e-9, "the flex item takes everything the fixed ones left")
	assert.Equal(t, 40.0, rects[2].H)
}

func TestCalculateItemLayouts_Horizontal(t *testing.T) {
	group := Rect{X: 10, Y: 0, W: 310, H: 80}
	sizes := []ItemSize{{}, {}}
	rects := CalculateItemLayouts(group, sizes, 10, model.OrientationHorizontal)

	require.Len(t, rects, 2)
	assert.InDelta(t, 150.0, rects[0].W, 1e-9)
	assert.InDelta(t, 150.0, rects[1].W, 1e-9)
	assert.InDelta(t, 170.0, rects[1].X, 1e-9)
	for _, r := range rects {
		assert.Equal(t, 80.0, r.H)
	}
}

func TestCalculateItemLayouts_FlexClampsToRemainingSpace(t *testing.T) {
	// Fixed items eat more than the group has; flex items bottom out at
	// zero instead of going negative.
	group := Rect{X: 0, Y: 0, W: 100, H: 100}
	sizes := []ItemSize{
		{Fixed: true, Extent: 120},
		{},
		{},
	}
	rects := CalculateItemLayouts(group, sizes, 0, model.OrientationVertical)

	require.Len(t, rects, 3)
	assert.Equal(t, 120.0, rects[0].H, "fixed items keep their extent even when overflowing")
	assert.Equal(t, 0.0, rects[1].H)
	assert.Equal(t, 0.0, rects[2].H)
}

func TestCalculateItemLayouts_Empty(t *testing.T) {
	assert.Nil(t, CalculateItemLayouts(Rect{W: 100, H: 100}, nil, 4, model.OrientationVertical))
}

func TestItemSizeFor(t *testing.T) {
	item := model.DefaultContentItem()
	assert.Equal(t, ItemSize{}, ItemSizeFor(item), "auto-height bar items flex")

	item.AutoHeight = false
	item.ItemHeight = 90
	assert.Equal(t, ItemSize{Fixed: true, Extent: 90}, ItemSizeFor(item))

	graph := model.DefaultContentItem()
	graph.DisplayAs = model.DisplayGraph
	got := ItemSizeFor(graph)
	assert.True(t, got.Fixed, "graphs keep a fixed height")
	assert.Equal(t, graph.ItemHeight, got.Extent)
}

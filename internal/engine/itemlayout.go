package engine

import (
	"github.com/piwi3910/PulseBoard/internal/model"
)

// ItemSize describes how one content item participates in the layout
// of its group: either a fixed extent along the stacking axis, or a
// flexible share of whatever is left.
type ItemSize struct {
	Fixed  bool
	Extent float64
}

// ItemSizeFor derives the layout behaviour of a content item. Graphs
// keep their configured height so the history trace stays readable;
// anything else is fixed only when auto-height is switched off.
func ItemSizeFor(item model.ContentItemConfig) ItemSize {
	if item.DisplayAs == model.DisplayGraph || !item.AutoHeight {
		return ItemSize{Fixed: true, Extent: item.ItemHeight}
	}
	return ItemSize{}
}

// CalculateItemLayouts stacks the items of one group along its item
// orientation. Fixed items take their extent; flexible items split the
// leftover evenly. A flexible item never reaches past the group edge:
// its size clamps to the space still remaining, bottoming out at zero,
// so every item gets a rectangle even when the group is too small.
func CalculateItemLayouts(group Rect, sizes []ItemSize, spacing float64, orientation model.LayoutOrientation) []Rect {
	n := len(sizes)
	if n == 0 {
		return nil
	}

	total := group.H
	if orientation == model.OrientationHorizontal {
		total = group.W
	}

	fixedTotal := 0.0
	flexCount := 0
	for _, s := range sizes {
		if s.Fixed {
			fixedTotal += s.Extent
		} else {
			flexCount++
		}
	}

	leftover := total - float64(n-1)*spacing - fixedTotal
	flexEach := 0.0
	if flexCount > 0 && leftover > 0 {
		flexEach = leftover / float64(flexCount)
	}

	rects := make([]Rect, n)
	offset := 0.0
	for i, s := range sizes {
		extent := flexEach
		if s.Fixed {
			extent = s.Extent
		} else {
			if remaining := total - offset; extent > remaining {
				extent = remaining
			}
			if extent < 0 {
				extent = 0
			}
		}

		if orientation == model.OrientationHorizontal {
			rects[i] = Rect{X: group.X + offset, Y: group.Y, W: extent, H: group.H}
		} else {
			rects[i] = Rect{X: group.X, Y: group.Y + offset, W: group.W, H: extent}
		}

		offset += extent
		if i < n-1 {
			offset += spacing
		}
	}
	return rects
}

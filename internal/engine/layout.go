package engine

import (
	"github.com/piwi3910/PulseBoard/internal/model"
)

// Rect is an axis-aligned rectangle in panel coordinates.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Area returns the rectangle's area. Degenerate rectangles yield 0.
func (r Rect) Area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// CalculateGroupLayouts splits a content rectangle into groupCount
// rectangles along the split axis, sized proportionally to the weight
// vector and separated by padded dividers.
//
// Each divider consumes dividerWidth + 2*dividerPadding along the split
// axis. The remaining extent is divided between the groups by weight;
// a weight vector shorter than groupCount reads as 1.0 for the missing
// entries. Every group spans the full cross-axis extent.
//
// Content too small for its dividers produces negative-sized
// rectangles rather than clamped ones: renderers clip, and tests can
// still see how far the layout overflowed.
func CalculateGroupLayouts(content Rect, groupCount int, weights []float64, dividerWidth, dividerPadding float64, orientation model.LayoutOrientation) []Rect {
	if groupCount < 1 {
		groupCount = 1
	}
	if groupCount == 1 {
		return []Rect{content}
	}

	dividerSpace := float64(groupCount-1) * (dividerWidth + 2*dividerPadding)

	extent := content.H
	if orientation == model.OrientationHorizontal {
		extent = content.W
	}
	available := extent - dividerSpace

	totalWeight := 0.0
	for i := 0; i < groupCount; i++ {
		totalWeight += weightAt(weights, i)
	}

	rects := make([]Rect, groupCount)
	offset := 0.0
	for i := 0; i < groupCount; i++ {
		var size float64
		if totalWeight <= 0 {
			size = available / float64(groupCount)
		} else {
			size = available * (weightAt(weights, i) / totalWeight)
		}

		if orientation == model.OrientationHorizontal {
			rects[i] = Rect{X: content.X + offset, Y: content.Y, W: size, H: content.H}
		} else {
			rects[i] = Rect{X: content.X, Y: content.Y + offset, W: content.W, H: size}
		}

		offset += size
		if i < groupCount-1 {
			offset += dividerWidth + 2*dividerPadding
		}
	}
	return rects
}

// weightAt reads the weight vector with a 1.0 default past its end.
func weightAt(weights []float64, i int) float64 {
	if i >= len(weights) {
		return 1.0
	}
	return weights[i]
}

// DividerRects returns the divider bar between each consecutive pair
// of group rectangles: dividerWidth thick, centered in the padded gap,
// spanning the full cross-axis extent of the content rectangle.
func DividerRects(content Rect, groups []Rect, dividerWidth, dividerPadding float64, orientation model.LayoutOrientation) []Rect {
	if len(groups) < 2 {
		return nil
	}
	dividers := make([]Rect, 0, len(groups)-1)
	for i := 0; i < len(groups)-1; i++ {
		if orientation == model.OrientationHorizontal {
			dividers = append(dividers, Rect{
				X: groups[i].Right() + dividerPadding,
				Y: content.Y,
				W: dividerWidth,
				H: content.H,
			})
		} else {
			dividers = append(dividers, Rect{
				X: content.X,
				Y: groups[i].Bottom() + dividerPadding,
				W: content.W,
				H: dividerWidth,
			})
		}
	}
	return dividers
}

package engine

// LayoutStats holds the results of measuring a computed panel layout.
type LayoutStats struct {
	ContentArea    float64 `json:"content_area"`     // Area of the content rectangle (sq units)
	GroupArea      float64 `json:"group_area"`       // Area covered by group rectangles
	DividerArea    float64 `json:"divider_area"`     // Area covered by divider bars
	UtilizationPct float64 `json:"utilization_pct"`  // Group area as a percentage of content area
	OutlineLength  float64 `json:"outline_length"`   // Perimeter of the content rectangle
	DividerLength  float64 `json:"divider_length"`   // Summed long-edge length of all dividers
	TotalCutLength float64 `json:"total_cut_length"` // Outline plus divider cut length
	GroupCount     int     `json:"group_count"`      // Number of groups
	ItemCount      int     `json:"item_count"`       // Number of content items across all groups
}

// CalculateLayoutStats measures a computed layout. The cut lengths
// describe the physical faceplate: the outline is cut once around, and
// each divider is one straight cut along its long edge.
func CalculateLayoutStats(content Rect, groups, dividers []Rect, itemCounts []int) LayoutStats {
	stats := LayoutStats{
		ContentArea:   content.Area(),
		OutlineLength: 2 * (content.W + content.H),
		GroupCount:    len(groups),
	}

	for _, g := range groups {
		stats.GroupArea += g.Area()
	}
	for _, d := range dividers {
		stats.DividerArea += d.Area()
		if d.W > d.H {
			stats.DividerLength += d.W
		} else {
			stats.DividerLength += d.H
		}
	}
	for _, n := range itemCounts {
		stats.ItemCount += n
	}

	if stats.ContentArea > 0 {
		stats.UtilizationPct = stats.GroupArea / stats.ContentArea * 100.0
	}
	stats.TotalCutLength = stats.OutlineLength + stats.DividerLength

	return stats
}

// GroupStat is a per-group breakdown of the layout.
type GroupStat struct {
	Index     int     `json:"index"`      // 0-based group index
	Rect      Rect    `json:"rect"`       // Computed rectangle
	AreaPct   float64 `json:"area_pct"`   // Share of the content area
	ItemCount int     `json:"item_count"` // Items inside this group
}

// CalculateGroupStats returns a breakdown of area share per group.
func CalculateGroupStats(content Rect, groups []Rect, itemCounts []int) []GroupStat {
	contentArea := content.Area()
	stats := make([]GroupStat, len(groups))
	for i, g := range groups {
		s := GroupStat{Index: i, Rect: g}
		if contentArea > 0 {
			s.AreaPct = g.Area() / contentArea * 100.0
		}
		if i < len(itemCounts) {
			s.ItemCount = itemCounts[i]
		}
		stats[i] = s
	}
	return stats
}

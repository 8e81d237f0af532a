package model

// TransferableConfig is the portable slice of a panel style: the group
// layout, divider geometry, theme, and content items, but not the
// source bindings (those stay with the panel that owns the data). It
// is the payload for style copy/paste, the layout library, and QR
// sharing.
type TransferableConfig struct {
	Style                 string                        `json:"style,omitempty"`
	GroupCount            int                           `json:"group_count"`
	GroupItemCounts       []int                         `json:"group_item_counts"`
	GroupSizeWeights      []float64                     `json:"group_size_weights"`
	GroupItemOrientations []LayoutOrientation           `json:"group_item_orientations"`
	LayoutOrientation     LayoutOrientation             `json:"layout_orientation"`
	DividerWidth          float64                       `json:"divider_width"`
	DividerPadding        float64                       `json:"divider_padding"`
	ContentPadding        float64                       `json:"content_padding"`
	ItemSpacing           float64                       `json:"item_spacing"`
	Theme                 PanelTheme                    `json:"theme"`
	ContentItems          map[string]*ContentItemConfig `json:"content_items,omitempty"`
}

// HasContent reports whether the config carries anything worth
// applying. A zero value (empty clipboard slot, blank library entry)
// does not.
func (t TransferableConfig) HasContent() bool {
	return t.GroupCount > 0 || len(t.ContentItems) > 0
}

// Transferable snapshots the portable part of the style config. The
// snapshot is deep: mutating it afterwards never reaches back into the
// panel it came from.
func (c PanelStyleConfig) Transferable() TransferableConfig {
	return TransferableConfig{
		Style:                 c.Style,
		GroupCount:            c.GroupCount,
		GroupItemCounts:       append([]int(nil), c.GroupItemCounts...),
		GroupSizeWeights:      append([]float64(nil), c.GroupSizeWeights...),
		GroupItemOrientations: append([]LayoutOrientation(nil), c.GroupItemOrientations...),
		LayoutOrientation:     c.LayoutOrientation,
		DividerWidth:          c.DividerWidth,
		DividerPadding:        c.DividerPadding,
		ContentPadding:        c.ContentPadding,
		ItemSpacing:           c.ItemSpacing,
		Theme:                 c.Theme.Clone(),
		ContentItems:          copyContentItems(c.ContentItems),
	}
}

// ApplyTransferable overwrites the portable part of the style config
// with a previously captured snapshot, then normalizes. Animation
// settings are left alone: they belong to the receiving panel.
func (c *PanelStyleConfig) ApplyTransferable(t TransferableConfig) {
	if !t.HasContent() {
		return
	}
	if t.Style != "" {
		c.Style = t.Style
	}
	c.GroupCount = t.GroupCount
	c.GroupItemCounts = append([]int(nil), t.GroupItemCounts...)
	c.GroupSizeWeights = append([]float64(nil), t.GroupSizeWeights...)
	c.GroupItemOrientations = append([]LayoutOrientation(nil), t.GroupItemOrientations...)
	c.LayoutOrientation = t.LayoutOrientation
	c.DividerWidth = t.DividerWidth
	c.DividerPadding = t.DividerPadding
	c.ContentPadding = t.ContentPadding
	c.ItemSpacing = t.ItemSpacing
	c.Theme = t.Theme.Clone()
	c.ContentItems = copyContentItems(t.ContentItems)
	c.Normalize()
}

func copyContentItems(items map[string]*ContentItemConfig) map[string]*ContentItemConfig {
	out := make(map[string]*ContentItemConfig, len(items))
	for key, item := range items {
		if item == nil {
			continue
		}
		cp := item.Clone()
		out[key] = &cp
	}
	return out
}

package model

import "strings"

// LayoutOrientation selects the axis along which groups (or the items
// inside a group) are stacked.
type LayoutOrientation string

const (
	OrientationVertical   LayoutOrientation = "vertical"
	OrientationHorizontal LayoutOrientation = "horizontal"
)

// Display-side defaults. These only apply to freshly created panels;
// saved files carry their own values.
const (
	defaultGroupItemCount = 2
	defaultDividerWidth   = 4.0
	defaultDividerPadding = 4.0
	defaultContentPadding = 8.0
	defaultItemSpacing    = 4.0
	defaultAnimationSpeed = 10.0
)

// PanelStyleConfig is the display side of a panel: how many groups the
// content area splits into, how they are weighted and oriented, the
// divider geometry, the theme, and the per-slot content items. The
// three per-group vectors (item counts, weights, orientations) are
// parallel and always resized together.
type PanelStyleConfig struct {
	Style                 string                        `json:"style"`
	GroupCount            int                           `json:"group_count"`
	GroupItemCounts       []int                         `json:"group_item_counts"`
	GroupSizeWeights      []float64                     `json:"group_size_weights"`
	GroupItemOrientations []LayoutOrientation           `json:"group_item_orientations"`
	LayoutOrientation     LayoutOrientation             `json:"layout_orientation"`
	DividerWidth          float64                       `json:"divider_width"`
	DividerPadding        float64                       `json:"divider_padding"`
	ContentPadding        float64                       `json:"content_padding"`
	ItemSpacing           float64                       `json:"item_spacing"`
	AnimationEnabled      bool                          `json:"animation_enabled"`
	AnimationSpeed        float64                       `json:"animation_speed"`
	Theme                 PanelTheme                    `json:"theme"`
	ContentItems          map[string]*ContentItemConfig `json:"content_items"`
}

// DefaultStyleConfig returns a one-group config on the first built-in
// theme preset.
func DefaultStyleConfig() PanelStyleConfig {
	return PanelStyleConfig{
		Style:                 presetOrder[0],
		GroupCount:            1,
		GroupItemCounts:       []int{defaultGroupItemCount},
		GroupSizeWeights:      []float64{1.0},
		GroupItemOrientations: []LayoutOrientation{OrientationVertical},
		LayoutOrientation:     OrientationVertical,
		DividerWidth:          defaultDividerWidth,
		DividerPadding:        defaultDividerPadding,
		ContentPadding:        defaultContentPadding,
		ItemSpacing:           defaultItemSpacing,
		AnimationEnabled:      true,
		AnimationSpeed:        defaultAnimationSpeed,
		Theme:                 GetPreset(presetOrder[0]),
		ContentItems:          map[string]*ContentItemConfig{},
	}
}

// SetGroupCount changes the number of groups and resizes the parallel
// per-group vectors. New groups get the defaults (2 items, weight 1.0,
// vertical items); retained groups keep their values untouched, so
// editing the count never silently resets another group's weight.
func (c *PanelStyleConfig) SetGroupCount(n int) {
	if n < 1 {
		n = 1
	}
	c.GroupCount = n
	c.GroupItemCounts = resizeInts(c.GroupItemCounts, n, defaultGroupItemCount)
	c.GroupSizeWeights = resizeFloats(c.GroupSizeWeights, n, 1.0)
	c.GroupItemOrientations = resizeOrientations(c.GroupItemOrientations, n, OrientationVertical)
}

func resizeInts(v []int, n, fill int) []int {
	for len(v) < n {
		v = append(v, fill)
	}
	return v[:n]
}

func resizeFloats(v []float64, n int, fill float64) []float64 {
	for len(v) < n {
		v = append(v, fill)
	}
	return v[:n]
}

func resizeOrientations(v []LayoutOrientation, n int, fill LayoutOrientation) []LayoutOrientation {
	for len(v) < n {
		v = append(v, fill)
	}
	return v[:n]
}

// Normalize repairs a config straight out of a saved file: group count
// at least 1, parallel vectors at matching length, item counts inside
// 1..8, weights positive, geometry non-negative. Values inside range
// pass through unchanged.
func (c *PanelStyleConfig) Normalize() {
	if c.Style == "" {
		c.Style = presetOrder[0]
	}
	if c.GroupCount < 1 {
		c.GroupCount = 1
	}
	c.SetGroupCount(c.GroupCount)
	for i, n := range c.GroupItemCounts {
		if n < MinGroupItems {
			c.GroupItemCounts[i] = MinGroupItems
		} else if n > MaxGroupItems {
			c.GroupItemCounts[i] = MaxGroupItems
		}
	}
	for i, w := range c.GroupSizeWeights {
		if w <= 0 {
			c.GroupSizeWeights[i] = 1.0
		}
	}
	for i, o := range c.GroupItemOrientations {
		if o != OrientationHorizontal {
			c.GroupItemOrientations[i] = OrientationVertical
		}
	}
	if c.LayoutOrientation != OrientationHorizontal {
		c.LayoutOrientation = OrientationVertical
	}
	if c.DividerWidth < 0 {
		c.DividerWidth = 0
	}
	if c.DividerPadding < 0 {
		c.DividerPadding = 0
	}
	if c.ContentPadding < 0 {
		c.ContentPadding = 0
	}
	if c.ItemSpacing < 0 {
		c.ItemSpacing = 0
	}
	if c.AnimationSpeed <= 0 {
		c.AnimationSpeed = defaultAnimationSpeed
	}
	if c.ContentItems == nil {
		c.ContentItems = map[string]*ContentItemConfig{}
	}
}

// SlotNames lists every display slot in group order, then item order:
// group1_1, group1_2, ..., group2_1, ...
func (c PanelStyleConfig) SlotNames() []string {
	var names []string
	for g, count := range c.GroupItemCounts {
		for n := 1; n <= count; n++ {
			names = append(names, GroupSlot(g+1, n).String())
		}
	}
	return names
}

// GroupOrientation returns the item orientation of group i (0-based),
// falling back to vertical out of range.
func (c PanelStyleConfig) GroupOrientation(i int) LayoutOrientation {
	if i < 0 || i >= len(c.GroupItemOrientations) {
		return OrientationVertical
	}
	return c.GroupItemOrientations[i]
}

// SizeWeight returns the weight of group i (0-based), falling back to
// 1.0 out of range.
func (c PanelStyleConfig) SizeWeight(i int) float64 {
	if i < 0 || i >= len(c.GroupSizeWeights) {
		return 1.0
	}
	return c.GroupSizeWeights[i]
}

// ContentItem returns the content config for a slot, inserting a
// default one on first access. The default's display type comes from
// SuggestDisplayType over the fields whose ids carry the slot prefix;
// when no fields match, the bar default stands.
func (c *PanelStyleConfig) ContentItem(slot string, fields []FieldMetadata) *ContentItemConfig {
	if c.ContentItems == nil {
		c.ContentItems = map[string]*ContentItemConfig{}
	}
	if item, ok := c.ContentItems[slot]; ok {
		return item
	}
	item := DefaultContentItem()
	if matched := FilterFieldsByPrefix(fields, slot); len(matched) > 0 {
		item.DisplayAs = SuggestDisplayType(matched)
	}
	c.ContentItems[slot] = &item
	return &item
}

// RenameContentPrefix moves every content item keyed "{old}_..." to the
// "{new}_..." key, keeping its embedded configs. A key whose target
// already exists stays where it is, so entries are never duplicated or
// dropped.
func (c *PanelStyleConfig) RenameContentPrefix(old, new string) {
	if c.ContentItems == nil || old == new {
		return
	}
	prefix := old + "_"
	renames := map[string]string{}
	for key := range c.ContentItems {
		if rest, ok := strings.CutPrefix(key, prefix); ok {
			renames[key] = new + "_" + rest
		}
	}
	c.applyRenames(renames)
}

// MigrateContentKeys rewrites legacy primary/secondary content-item
// keys into group naming. Runs on every load; already-migrated keys
// parse as non-legacy and pass through untouched.
func (c *PanelStyleConfig) MigrateContentKeys() {
	renames := map[string]string{}
	for key := range c.ContentItems {
		if k, ok := ParseSlotKey(key); ok && k.Legacy {
			renames[key] = k.Migrated().String()
		}
	}
	c.applyRenames(renames)
}

func (c *PanelStyleConfig) applyRenames(renames map[string]string) {
	for key, target := range renames {
		if _, taken := c.ContentItems[target]; taken {
			continue
		}
		c.ContentItems[target] = c.ContentItems[key]
		delete(c.ContentItems, key)
	}
}

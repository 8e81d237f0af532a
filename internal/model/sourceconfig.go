package model

import "time"

// SourceMode selects the slot naming convention a panel's source uses.
type SourceMode string

const (
	// ModeGroups is the standard multi-group naming, group{G}_{N}.
	ModeGroups SourceMode = "groups"
	// ModeSingle is used by single-slot gauge panels.
	ModeSingle SourceMode = "single"
)

// Group item counts stay inside this range.
const (
	MinGroupItems = 1
	MaxGroupItems = 8
)

const defaultUpdateIntervalMS = 1000

// SlotConfig binds one content slot to a data source. SourceConfig is
// passed opaquely to the source named by SourceID and never
// interpreted here.
type SlotConfig struct {
	SourceID        string         `json:"source_id"`
	CaptionOverride string         `json:"caption_override"`
	SourceConfig    map[string]any `json:"source_config,omitempty"`
}

// GroupConfig describes one group of content slots.
type GroupConfig struct {
	ItemCount  int     `json:"item_count"`
	SizeWeight float64 `json:"size_weight"`
}

// DefaultGroup returns a single-item group of weight 1.
func DefaultGroup() GroupConfig {
	return GroupConfig{ItemCount: 1, SizeWeight: 1.0}
}

// PanelSourceConfig is the data-source side of a panel: which groups
// exist, which source feeds each slot, and how often to refresh.
// PrimaryCount and SecondaryCount only survive in old saved files;
// MigrateLegacy folds them into Groups and they stay zero afterwards,
// which keeps them out of newly written files.
type PanelSourceConfig struct {
	Mode             SourceMode            `json:"mode"`
	Groups           []GroupConfig         `json:"groups"`
	PrimaryCount     int                   `json:"primary_count,omitempty"`
	SecondaryCount   int                   `json:"secondary_count,omitempty"`
	Slots            map[string]SlotConfig `json:"slots"`
	UpdateIntervalMS int64                 `json:"update_interval_ms"`
}

// DefaultSourceConfig returns a fresh config with one two-item group.
func DefaultSourceConfig() PanelSourceConfig {
	return PanelSourceConfig{
		Mode:             ModeGroups,
		Groups:           []GroupConfig{{ItemCount: 2, SizeWeight: 1.0}},
		Slots:            map[string]SlotConfig{},
		UpdateIntervalMS: defaultUpdateIntervalMS,
	}
}

// MigrateLegacy folds the old primary/secondary scheme into the groups
// scheme. It runs on every load and is idempotent: once Groups is
// non-empty nothing is touched except the final never-empty guarantee.
// Slot keys are rewritten through ParseSlotKey; keys that do not parse
// are kept as they are.
func (c *PanelSourceConfig) MigrateLegacy() {
	if len(c.Groups) == 0 && (c.PrimaryCount > 0 || c.SecondaryCount > 0) {
		if c.PrimaryCount > 0 {
			c.Groups = append(c.Groups, GroupConfig{ItemCount: c.PrimaryCount, SizeWeight: 1.0})
		}
		if c.SecondaryCount > 0 {
			c.Groups = append(c.Groups, GroupConfig{ItemCount: c.SecondaryCount, SizeWeight: 1.0})
		}

		newSlots := make(map[string]SlotConfig, len(c.Slots))
		for name, slot := range c.Slots {
			if key, ok := ParseSlotKey(name); ok && key.Legacy {
				name = key.Migrated().String()
			}
			newSlots[name] = slot
		}
		c.Slots = newSlots

		c.PrimaryCount = 0
		c.SecondaryCount = 0
	}

	if len(c.Groups) == 0 {
		c.Groups = append(c.Groups, GroupConfig{ItemCount: 2, SizeWeight: 1.0})
	}
	if c.Slots == nil {
		c.Slots = map[string]SlotConfig{}
	}
}

// Normalize clamps group item counts and weights into their valid
// ranges. Malformed saved files are repaired rather than rejected.
func (c *PanelSourceConfig) Normalize() {
	for i, g := range c.Groups {
		if g.ItemCount < MinGroupItems {
			g.ItemCount = MinGroupItems
		}
		if g.ItemCount > MaxGroupItems {
			g.ItemCount = MaxGroupItems
		}
		if g.SizeWeight <= 0 {
			g.SizeWeight = 1.0
		}
		c.Groups[i] = g
	}
	if c.UpdateIntervalMS <= 0 {
		c.UpdateIntervalMS = defaultUpdateIntervalMS
	}
	if c.Mode == "" {
		c.Mode = ModeGroups
	}
}

// TotalItemCount sums the item counts of all groups.
func (c PanelSourceConfig) TotalItemCount() int {
	total := 0
	for _, g := range c.Groups {
		total += g.ItemCount
	}
	return total
}

// SlotNames derives every slot name for the current groups, in group
// then item order.
func (c PanelSourceConfig) SlotNames() []string {
	names := make([]string, 0, c.TotalItemCount())
	for gi, g := range c.Groups {
		for n := 1; n <= g.ItemCount; n++ {
			names = append(names, GroupSlot(gi+1, n).String())
		}
	}
	return names
}

// Slot returns the configuration for a slot name, or a zero config
// when the slot has never been bound.
func (c PanelSourceConfig) Slot(name string) SlotConfig {
	return c.Slots[name]
}

// SetSlot stores the configuration for a slot name.
func (c *PanelSourceConfig) SetSlot(name string, slot SlotConfig) {
	if c.Slots == nil {
		c.Slots = map[string]SlotConfig{}
	}
	c.Slots[name] = slot
}

// UpdateInterval returns the refresh interval as a duration.
func (c PanelSourceConfig) UpdateInterval() time.Duration {
	return time.Duration(c.UpdateIntervalMS) * time.Millisecond
}

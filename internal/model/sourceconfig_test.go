package model

import (
	"testing"
	"time"
)

func TestMigrateLegacyBuildsGroupsFromCounts(t *testing.T) {
	c := PanelSourceConfig{
		PrimaryCount:   3,
		SecondaryCount: 2,
		Slots: map[string]SlotConfig{
			"primary_1":   {SourceID: "cpu"},
			"primary_2":   {SourceID: "memory"},
			"secondary_1": {SourceID: "disk"},
		},
	}
	c.MigrateLegacy()

	if len(c.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(c.Groups))
	}
	if c.Groups[0].ItemCount != 3 || c.Groups[1].ItemCount != 2 {
		t.Errorf("group item counts = %d/%d, want 3/2", c.Groups[0].ItemCount, c.Groups[1].ItemCount)
	}
	if c.PrimaryCount != 0 || c.SecondaryCount != 0 {
		t.Error("legacy counts not zeroed after migration")
	}

	if got := c.Slot("group1_1").SourceID; got != "cpu" {
		t.Errorf("group1_1 source = %q, want cpu", got)
	}
	if got := c.Slot("group1_2").SourceID; got != "memory" {
		t.Errorf("group1_2 source = %q, want memory", got)
	}
	if got := c.Slot("group2_1").SourceID; got != "disk" {
		t.Errorf("group2_1 source = %q, want disk", got)
	}
	if _, ok := c.Slots["primary_1"]; ok {
		t.Error("legacy key survived migration")
	}
}

func TestMigrateLegacySecondaryOnly(t *testing.T) {
	c := PanelSourceConfig{
		SecondaryCount: 2,
		Slots:          map[string]SlotConfig{"secondary_2": {SourceID: "network"}},
	}
	c.MigrateLegacy()

	// Only one group exists, built from the secondary count; its slots
	// still map to group 2 per their role.
	if len(c.Groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(c.Groups))
	}
	if c.Groups[0].ItemCount != 2 {
		t.Errorf("item count = %d, want 2", c.Groups[0].ItemCount)
	}
	if got := c.Slot("group2_2").SourceID; got != "network" {
		t.Errorf("group2_2 source = %q, want network", got)
	}
}

func TestMigrateLegacyIdempotent(t *testing.T) {
	c := PanelSourceConfig{
		PrimaryCount: 1,
		Slots:        map[string]SlotConfig{"primary_1": {SourceID: "cpu"}},
	}
	c.MigrateLegacy()
	snapshot := c.SlotNames()

	c.PrimaryCount = 7 // junk written after the fact must not re-trigger
	c.MigrateLegacy()
	if len(c.Groups) != 1 {
		t.Errorf("second migration changed groups: %+v", c.Groups)
	}
	names := c.SlotNames()
	if len(names) != len(snapshot) {
		t.Errorf("second migration changed slots: %v vs %v", names, snapshot)
	}
}

func TestMigrateLegacyKeepsUnparseableKeys(t *testing.T) {
	c := PanelSourceConfig{
		PrimaryCount: 1,
		Slots: map[string]SlotConfig{
			"primary_1": {SourceID: "cpu"},
			"weird-key": {SourceID: "host"},
		},
	}
	c.MigrateLegacy()
	if got := c.Slot("weird-key").SourceID; got != "host" {
		t.Error("unparseable key was not preserved as-is")
	}
}

func TestMigrateLegacyDefaultsWhenEmpty(t *testing.T) {
	var c PanelSourceConfig
	c.MigrateLegacy()
	if len(c.Groups) != 1 || c.Groups[0].ItemCount != 2 {
		t.Errorf("empty config migrated to %+v, want one two-item group", c.Groups)
	}
	if c.Slots == nil {
		t.Error("slots map left nil")
	}
}

func TestMigrateLegacyAlreadyMigratedUntouched(t *testing.T) {
	c := PanelSourceConfig{
		Groups: []GroupConfig{{ItemCount: 4, SizeWeight: 2.5}},
		Slots:  map[string]SlotConfig{"group1_4": {SourceID: "cpu"}},
	}
	c.MigrateLegacy()
	if len(c.Groups) != 1 || c.Groups[0].ItemCount != 4 || c.Groups[0].SizeWeight != 2.5 {
		t.Errorf("migration disturbed a migrated config: %+v", c.Groups)
	}
	if got := c.Slot("group1_4").SourceID; got != "cpu" {
		t.Error("migration disturbed a migrated slot key")
	}
}

func TestNormalizeClampsRanges(t *testing.T) {
	c := PanelSourceConfig{
		Groups: []GroupConfig{
			{ItemCount: 0, SizeWeight: -1},
			{ItemCount: 99, SizeWeight: 3},
		},
		UpdateIntervalMS: -5,
	}
	c.Normalize()

	if c.Groups[0].ItemCount != MinGroupItems {
		t.Errorf("item count 0 clamped to %d, want %d", c.Groups[0].ItemCount, MinGroupItems)
	}
	if c.Groups[1].ItemCount != MaxGroupItems {
		t.Errorf("item count 99 clamped to %d, want %d", c.Groups[1].ItemCount, MaxGroupItems)
	}
	if c.Groups[0].SizeWeight != 1.0 {
		t.Errorf("weight -1 repaired to %v, want 1.0", c.Groups[0].SizeWeight)
	}
	if c.Groups[1].SizeWeight != 3.0 {
		t.Errorf("valid weight disturbed: %v", c.Groups[1].SizeWeight)
	}
	if c.UpdateIntervalMS != defaultUpdateIntervalMS {
		t.Errorf("interval = %d, want default", c.UpdateIntervalMS)
	}
	if c.Mode != ModeGroups {
		t.Errorf("mode = %q, want groups", c.Mode)
	}
}

func TestSlotNamesGroupThenItemOrder(t *testing.T) {
	c := PanelSourceConfig{Groups: []GroupConfig{
		{ItemCount: 2, SizeWeight: 1},
		{ItemCount: 3, SizeWeight: 1},
	}}
	want := []string{"group1_1", "group1_2", "group2_1", "group2_2", "group2_3"}
	got := c.SlotNames()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if c.TotalItemCount() != 5 {
		t.Errorf("TotalItemCount = %d, want 5", c.TotalItemCount())
	}
}

func TestUpdateInterval(t *testing.T) {
	c := PanelSourceConfig{UpdateIntervalMS: 250}
	if c.UpdateInterval() != 250*time.Millisecond {
		t.Errorf("UpdateInterval = %v, want 250ms", c.UpdateInterval())
	}
}

func TestSetSlotInitializesMap(t *testing.T) {
	var c PanelSourceConfig
	c.SetSlot("group1_1", SlotConfig{SourceID: "cpu"})
	if got := c.Slot("group1_1").SourceID; got != "cpu" {
		t.Errorf("slot = %q, want cpu", got)
	}
}

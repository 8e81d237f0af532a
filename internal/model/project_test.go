package model

import (
	"reflect"
	"testing"
)

func TestNewPanel(t *testing.T) {
	p := NewPanel("CPU")
	if p.Name != "CPU" {
		t.Errorf("name = %q, want CPU", p.Name)
	}
	if len(p.ID) != 8 {
		t.Errorf("id %q should be 8 chars", p.ID)
	}
	if len(p.Source.Groups) != 1 || p.Style.GroupCount != 1 {
		t.Error("fresh panel should start with one group on both halves")
	}
}

func TestPanelSetGroupCountSyncsBothHalves(t *testing.T) {
	p := NewPanel("test")
	p.SetGroupCount(3)

	if len(p.Source.Groups) != 3 {
		t.Fatalf("source groups = %d, want 3", len(p.Source.Groups))
	}
	if p.Style.GroupCount != 3 || len(p.Style.GroupSizeWeights) != 3 {
		t.Errorf("style side not resized: count %d weights %v", p.Style.GroupCount, p.Style.GroupSizeWeights)
	}
	for i, g := range p.Source.Groups {
		if g.ItemCount != p.Style.GroupItemCounts[i] {
			t.Errorf("group %d: source count %d != style count %d", i, g.ItemCount, p.Style.GroupItemCounts[i])
		}
	}
}

func TestPanelSetGroupItemCount(t *testing.T) {
	p := NewPanel("test")
	p.SetGroupCount(2)

	p.SetGroupItemCount(1, 5)
	if p.Source.Groups[1].ItemCount != 5 || p.Style.GroupItemCounts[1] != 5 {
		t.Error("item count not applied to both halves")
	}

	p.SetGroupItemCount(0, 99)
	if p.Source.Groups[0].ItemCount != MaxGroupItems {
		t.Errorf("count = %d, want clamped to %d", p.Source.Groups[0].ItemCount, MaxGroupItems)
	}
	p.SetGroupItemCount(0, 0)
	if p.Source.Groups[0].ItemCount != MinGroupItems {
		t.Errorf("count = %d, want clamped to %d", p.Source.Groups[0].ItemCount, MinGroupItems)
	}

	p.SetGroupItemCount(7, 3) // out of range, no-op
	if len(p.Source.Groups) != 2 {
		t.Error("out-of-range group index should be ignored")
	}
}

func TestPanelSetGroupWeight(t *testing.T) {
	p := NewPanel("test")
	p.SetGroupCount(2)

	p.SetGroupWeight(0, 2.5)
	if p.Source.Groups[0].SizeWeight != 2.5 || p.Style.GroupSizeWeights[0] != 2.5 {
		t.Error("weight not applied to both halves")
	}

	p.SetGroupWeight(0, -1.0)
	if p.Source.Groups[0].SizeWeight != 2.5 {
		t.Error("non-positive weight should be ignored")
	}
	p.SetGroupWeight(0, 0)
	if p.Source.Groups[0].SizeWeight != 2.5 {
		t.Error("zero weight should be ignored")
	}
}

func TestPanelNormalizeMigratesBothHalves(t *testing.T) {
	p := Panel{
		ID:   "abc123",
		Name: "legacy",
		Source: PanelSourceConfig{
			PrimaryCount:   2,
			SecondaryCount: 1,
			Slots: map[string]SlotConfig{
				"primary_item_1": {SourceID: "cpu"},
			},
		},
		Style: PanelStyleConfig{
			ContentItems: map[string]*ContentItemConfig{
				"primary_item_1": {DisplayAs: DisplayGraph},
			},
		},
	}
	p.Normalize()

	if len(p.Source.Groups) != 2 {
		t.Fatalf("groups = %d, want 2 from legacy counts", len(p.Source.Groups))
	}
	if _, ok := p.Source.Slots["group1_1"]; !ok {
		t.Error("legacy slot binding not migrated")
	}
	if _, ok := p.Style.ContentItems["group1_1"]; !ok {
		t.Error("legacy content key not migrated")
	}
	if p.Style.GroupCount != 2 {
		t.Errorf("style group count = %d, want synced to source", p.Style.GroupCount)
	}
}

func TestPanelNormalizeSourceCountsWin(t *testing.T) {
	p := NewPanel("test")
	p.Source.Groups = []GroupConfig{
		{ItemCount: 3, SizeWeight: 2.0},
		{ItemCount: 1, SizeWeight: 1.0},
	}
	p.Style.SetGroupCount(4)
	p.Style.GroupItemCounts = []int{8, 8, 8, 8}

	p.Normalize()

	if p.Style.GroupCount != 2 {
		t.Errorf("style group count = %d, want 2 from source", p.Style.GroupCount)
	}
	if !reflect.DeepEqual(p.Style.GroupItemCounts, []int{3, 1}) {
		t.Errorf("style item counts = %v, want source values", p.Style.GroupItemCounts)
	}
	if p.Style.GroupSizeWeights[0] != 2.0 {
		t.Errorf("style weight = %v, want source value 2.0", p.Style.GroupSizeWeights[0])
	}
}

func TestPanelClone(t *testing.T) {
	p := NewPanel("orig")
	p.SetGroupCount(2)
	p.Source.SetSlot("group1_1", SlotConfig{SourceID: "cpu"})
	item := DefaultContentItem()
	p.Style.ContentItems["group1_1"] = &item

	c := p.Clone()
	if c.ID != p.ID || c.Name != p.Name {
		t.Error("clone should keep identity")
	}

	c.Source.SetSlot("group1_1", SlotConfig{SourceID: "memory"})
	c.Style.ContentItems["group1_1"].DisplayAs = DisplayArc
	c.Source.Groups[0].ItemCount = 7

	if p.Source.Slots["group1_1"].SourceID != "cpu" {
		t.Error("clone shares slot map with original")
	}
	if p.Style.ContentItems["group1_1"].DisplayAs != DisplayBar {
		t.Error("clone shares content items with original")
	}
	if p.Source.Groups[0].ItemCount == 7 {
		t.Error("clone shares group slice with original")
	}
}

func TestNewProject(t *testing.T) {
	proj := NewProject()
	if proj.Name != "Untitled Dashboard" {
		t.Errorf("name = %q", proj.Name)
	}
	if len(proj.Panels) != 1 || proj.Panels[0].Name != "Panel 1" {
		t.Errorf("panels = %v, want a single Panel 1", proj.PanelNames())
	}
}

func TestProjectPanelManagement(t *testing.T) {
	proj := NewProject()
	added := proj.AddPanel("Network")
	if added == nil || added.Name != "Network" {
		t.Fatal("AddPanel should return the new panel")
	}
	if !reflect.DeepEqual(proj.PanelNames(), []string{"Panel 1", "Network"}) {
		t.Errorf("names = %v", proj.PanelNames())
	}

	if proj.FindPanel(added.ID) == nil {
		t.Error("FindPanel missed an existing panel")
	}
	if proj.FindPanel("nope") != nil {
		t.Error("FindPanel invented a panel")
	}

	if !proj.RemovePanel(added.ID) {
		t.Error("RemovePanel should report success")
	}
	if proj.RemovePanel(added.ID) {
		t.Error("second removal should report failure")
	}
	if len(proj.Panels) != 1 {
		t.Errorf("panels left = %d, want 1", len(proj.Panels))
	}
}

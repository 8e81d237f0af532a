package model

import (
	"reflect"
	"testing"
)

func TestTransferableRoundTrip(t *testing.T) {
	src := DefaultStyleConfig()
	src.SetGroupCount(3)
	src.GroupSizeWeights = []float64{1.0, 2.0, 0.5}
	src.GroupItemCounts = []int{1, 4, 2}
	src.LayoutOrientation = OrientationHorizontal
	src.DividerWidth = 6.0
	src.Theme = GetPreset("cyberpunk")
	item := DefaultContentItem()
	item.DisplayAs = DisplayGraph
	src.ContentItems["group2_1"] = &item

	snap := src.Transferable()

	dst := DefaultStyleConfig()
	dst.AnimationEnabled = false
	dst.AnimationSpeed = 3.0
	dst.ApplyTransferable(snap)

	if dst.GroupCount != 3 {
		t.Errorf("group count = %d, want 3", dst.GroupCount)
	}
	if !reflect.DeepEqual(dst.GroupSizeWeights, src.GroupSizeWeights) {
		t.Errorf("weights = %v, want %v", dst.GroupSizeWeights, src.GroupSizeWeights)
	}
	if dst.LayoutOrientation != OrientationHorizontal || dst.DividerWidth != 6.0 {
		t.Error("layout geometry not carried over")
	}
	if !reflect.DeepEqual(dst.Theme, src.Theme) {
		t.Error("theme not carried over")
	}
	if got, ok := dst.ContentItems["group2_1"]; !ok || got.DisplayAs != DisplayGraph {
		t.Error("content items not carried over")
	}
	if dst.AnimationEnabled || dst.AnimationSpeed != 3.0 {
		t.Error("receiving panel's animation settings should be left alone")
	}
}

func TestTransferableSnapshotIsDeep(t *testing.T) {
	src := DefaultStyleConfig()
	src.SetGroupCount(2)
	src.GroupSizeWeights = []float64{1.0, 2.0}
	item := DefaultContentItem()
	src.ContentItems["group1_1"] = &item

	snap := src.Transferable()
	snap.GroupSizeWeights[1] = 99.0
	snap.ContentItems["group1_1"].DisplayAs = DisplayArc

	if src.GroupSizeWeights[1] != 2.0 {
		t.Error("mutating the snapshot reached back into the source weights")
	}
	if src.ContentItems["group1_1"].DisplayAs != DisplayBar {
		t.Error("mutating the snapshot reached back into a source content item")
	}
}

func TestApplyTransferableIgnoresEmptySnapshots(t *testing.T) {
	c := DefaultStyleConfig()
	c.SetGroupCount(4)
	before := c.GroupCount

	c.ApplyTransferable(TransferableConfig{})
	if c.GroupCount != before {
		t.Errorf("empty snapshot changed the config: count %d -> %d", before, c.GroupCount)
	}
}

func TestTransferableHasContent(t *testing.T) {
	if (TransferableConfig{}).HasContent() {
		t.Error("zero value should report no content")
	}
	if !(TransferableConfig{GroupCount: 1}).HasContent() {
		t.Error("group count should count as content")
	}
	withItems := TransferableConfig{
		ContentItems: map[string]*ContentItemConfig{"group1_1": {}},
	}
	if !withItems.HasContent() {
		t.Error("content items should count as content")
	}
}

func TestApplyTransferableNormalizes(t *testing.T) {
	c := DefaultStyleConfig()
	c.ApplyTransferable(TransferableConfig{
		GroupCount:       2,
		GroupItemCounts:  []int{0},
		GroupSizeWeights: []float64{-5.0},
	})
	if !reflect.DeepEqual(c.GroupItemCounts, []int{MinGroupItems, 2}) {
		t.Errorf("item counts = %v, want repaired values", c.GroupItemCounts)
	}
	if !reflect.DeepEqual(c.GroupSizeWeights, []float64{1.0, 1.0}) {
		t.Errorf("weights = %v, want repaired values", c.GroupSizeWeights)
	}
}

package model

import (
	"reflect"
	"testing"
)

func TestFieldKey(t *testing.T) {
	if got := FieldKey("group1_2", FieldValue); got != "group1_2_value" {
		t.Errorf("key = %q, want group1_2_value", got)
	}
}

func TestSlotPrefix(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{"cpu_value", "cpu"},
		{"group1_2_numerical_value", "group1_2"},
		{"group1_2_min_limit", "group1_2"},
		{"group1_2_max_limit", "group1_2"},
		{"net_rx_caption", "net_rx"},
		{"plain", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SlotPrefix(tc.key); got != tc.want {
			t.Errorf("SlotPrefix(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestExtractItemData(t *testing.T) {
	fields := map[string]string{
		"cpu_caption":         "CPU",
		"cpu_value":           "42.5",
		"cpu_unit":            "%",
		"cpu_numerical_value": "42.5",
		"cpu_min_limit":       "0",
		"cpu_max_limit":       "100",
	}
	d := ExtractItemData(fields, "cpu")
	if d.Caption != "CPU" || d.Value != "42.5" || d.Unit != "%" {
		t.Errorf("display fields = %+v", d)
	}
	if d.Numerical != 42.5 || d.MinLimit != 0 || d.MaxLimit != 100 {
		t.Errorf("numeric fields = %+v", d)
	}
}

func TestExtractItemDataFallsBackToDisplayValue(t *testing.T) {
	d := ExtractItemData(map[string]string{"mem_value": " 63.2 "}, "mem")
	if d.Numerical != 63.2 {
		t.Errorf("numerical = %v, want parsed from display value", d.Numerical)
	}
	if d.MinLimit != 0 || d.MaxLimit != 100 {
		t.Errorf("limits = %v..%v, want default 0..100", d.MinLimit, d.MaxLimit)
	}
}

func TestExtractItemDataNonNumericValue(t *testing.T) {
	d := ExtractItemData(map[string]string{"host_value": "fedora"}, "host")
	if d.Numerical != 0 {
		t.Errorf("numerical = %v, want 0 for non-numeric value", d.Numerical)
	}
}

func TestItemDataFraction(t *testing.T) {
	cases := []struct {
		name string
		d    ItemData
		want float64
	}{
		{"mid range", ItemData{Numerical: 50, MaxLimit: 100}, 0.5},
		{"below min", ItemData{Numerical: -5, MaxLimit: 100}, 0},
		{"above max", ItemData{Numerical: 150, MaxLimit: 100}, 1},
		{"offset range", ItemData{Numerical: 30, MinLimit: 20, MaxLimit: 40}, 0.5},
		{"degenerate range", ItemData{Numerical: 50, MinLimit: 100, MaxLimit: 100}, 0},
		{"inverted range", ItemData{Numerical: 50, MinLimit: 100, MaxLimit: 0}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.d.Fraction(); got != tc.want {
				t.Errorf("fraction = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterFieldsByPrefix(t *testing.T) {
	fields := []FieldMetadata{
		NewFieldMetadata("group1_1_value", "Value", "", FieldTypePercentage, PurposeValue),
		NewFieldMetadata("group1_1_caption", "Caption", "", FieldTypeText, PurposeCaption),
		NewFieldMetadata("group1_2_value", "Value", "", FieldTypeText, PurposeValue),
		NewFieldMetadata("group10_1_value", "Value", "", FieldTypeText, PurposeValue),
	}

	got := FilterFieldsByPrefix(fields, "group1_1")
	if len(got) != 2 {
		t.Fatalf("matched %d fields, want 2", len(got))
	}
	if got[0].ID != "value" || got[1].ID != "caption" {
		t.Errorf("prefix not stripped: %v %v", got[0].ID, got[1].ID)
	}
	if fields[0].ID != "group1_1_value" {
		t.Error("input slice mutated")
	}

	if got := FilterFieldsByPrefix(fields, "group2_1"); len(got) != 0 {
		t.Errorf("matched %d fields for an unused slot, want 0", len(got))
	}
}

func TestDefaultSlotFields(t *testing.T) {
	fields := DefaultSlotFields()
	var ids []string
	for _, f := range fields {
		ids = append(ids, f.ID)
	}
	want := []string{FieldCaption, FieldValue, FieldUnit, FieldNumerical}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %v, want %v", ids, want)
	}
}

func TestFormatMetric(t *testing.T) {
	if got := FormatMetric(42.567); got != "42.6" {
		t.Errorf("formatted = %q, want 42.6", got)
	}
	if got := FormatMetric(0); got != "0.0" {
		t.Errorf("formatted = %q, want 0.0", got)
	}
}

package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Field suffixes published by metric sources. A source exposing a slot
// named "cpu" publishes "cpu_caption", "cpu_value" and so on.
const (
	FieldCaption   = "caption"
	FieldValue     = "value"
	FieldUnit      = "unit"
	FieldNumerical = "numerical_value"
	FieldMinLimit  = "min_limit"
	FieldMaxLimit  = "max_limit"
)

// FieldKey builds the map key for a slot field, e.g. FieldKey("cpu",
// FieldValue) == "cpu_value".
func FieldKey(prefix, field string) string {
	return prefix + "_" + field
}

// SlotPrefix returns the slot prefix of a field key, or "" when the
// key carries no known suffix.
func SlotPrefix(key string) string {
	for _, f := range []string{FieldNumerical, FieldMinLimit, FieldMaxLimit, FieldCaption, FieldValue, FieldUnit} {
		suffix := "_" + f
		if strings.HasSuffix(key, suffix) {
			return strings.TrimSuffix(key, suffix)
		}
	}
	return ""
}

// ItemData is the resolved view of one slot's fields, ready for a
// content item to display.
type ItemData struct {
	Caption   string
	Value     string
	Unit      string
	Numerical float64
	MinLimit  float64
	MaxLimit  float64
}

// Fraction returns the numerical value scaled into [0,1] against the
// limits. A degenerate range yields 0.
func (d ItemData) Fraction() float64 {
	span := d.MaxLimit - d.MinLimit
	if span <= 0 {
		return 0
	}
	f := (d.Numerical - d.MinLimit) / span
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// ExtractItemData collects the fields for one slot prefix out of a
// field map. Missing numerical values fall back to parsing the display
// value; missing limits default to 0 and 100.
func ExtractItemData(fields map[string]string, prefix string) ItemData {
	d := ItemData{
		Caption:  fields[FieldKey(prefix, FieldCaption)],
		Value:    fields[FieldKey(prefix, FieldValue)],
		Unit:     fields[FieldKey(prefix, FieldUnit)],
		MaxLimit: 100.0,
	}

	if raw, ok := fields[FieldKey(prefix, FieldNumerical)]; ok {
		if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			d.Numerical = v
		}
	} else if v, err := strconv.ParseFloat(strings.TrimSpace(d.Value), 64); err == nil {
		d.Numerical = v
	}

	if raw, ok := fields[FieldKey(prefix, FieldMinLimit)]; ok {
		if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			d.MinLimit = v
		}
	}
	if raw, ok := fields[FieldKey(prefix, FieldMaxLimit)]; ok {
		if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			d.MaxLimit = v
		}
	}
	return d
}

// FormatMetric renders a numerical value the way sources publish it.
func FormatMetric(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// FieldType classifies the data a field carries.
type FieldType string

const (
	FieldTypeText       FieldType = "text"
	FieldTypeNumerical  FieldType = "numerical"
	FieldTypePercentage FieldType = "percentage"
	FieldTypeBoolean    FieldType = "boolean"
)

// FieldPurpose says what role a field plays in a slot's data.
type FieldPurpose string

const (
	PurposeCaption        FieldPurpose = "caption"
	PurposeValue          FieldPurpose = "value"
	PurposeUnit           FieldPurpose = "unit"
	PurposeSecondaryValue FieldPurpose = "secondary_value"
	PurposeStatus         FieldPurpose = "status"
	PurposeOther          FieldPurpose = "other"
)

// FieldMetadata describes one data field a source can publish.
type FieldMetadata struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Type        FieldType    `json:"type"`
	Purpose     FieldPurpose `json:"purpose"`
}

// NewFieldMetadata builds a metadata record.
func NewFieldMetadata(id, name, description string, ft FieldType, purpose FieldPurpose) FieldMetadata {
	return FieldMetadata{ID: id, Name: name, Description: description, Type: ft, Purpose: purpose}
}

// FilterFieldsByPrefix returns the fields belonging to one slot,
// with the "{slot}_" prefix stripped from their IDs.
func FilterFieldsByPrefix(fields []FieldMetadata, slot string) []FieldMetadata {
	prefix := slot + "_"
	var out []FieldMetadata
	for _, f := range fields {
		if !strings.HasPrefix(f.ID, prefix) {
			continue
		}
		short := f
		short.ID = strings.TrimPrefix(f.ID, prefix)
		out = append(out, short)
	}
	return out
}

// DefaultSlotFields is the assumed field set for a slot whose source
// publishes no metadata.
func DefaultSlotFields() []FieldMetadata {
	return []FieldMetadata{
		NewFieldMetadata(FieldCaption, "Caption", "Label text", FieldTypeText, PurposeCaption),
		NewFieldMetadata(FieldValue, "Value", "Current value", FieldTypeText, PurposeValue),
		NewFieldMetadata(FieldUnit, "Unit", "Unit of measurement", FieldTypeText, PurposeUnit),
		NewFieldMetadata(FieldNumerical, "Numeric Value", "Raw numeric value", FieldTypeNumerical, PurposeValue),
	}
}

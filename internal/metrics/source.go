// Package metrics reads live system data and publishes it as the field
// maps content slots consume. Sources return unprefixed field keys such
// as "value" and "numerical_value"; the sampler prefixes them with the
// slot name before handing the merged snapshot to the UI.
package metrics

import (
	"strconv"

	"github.com/piwi3910/PulseBoard/internal/model"
)

// Source is one kind of system data a slot can bind to. Implementations
// may keep state between samples (rate counters and the like), so every
// slot gets its own instance via the registry.
type Source interface {
	// ID is the stable identifier stored in slot bindings.
	ID() string
	// Name is shown in source pickers.
	Name() string
	// Fields describes the data this source publishes.
	Fields() []model.FieldMetadata
	// Sample reads the system once. opts is the slot's opaque source
	// settings; unknown keys are ignored.
	Sample(opts map[string]any) (map[string]string, error)
}

const (
	bytesPerKB = 1024.0
	bytesPerMB = bytesPerKB * 1024
	bytesPerGB = bytesPerMB * 1024
)

// optString reads a string option, with def when absent or blank.
func optString(opts map[string]any, key, def string) string {
	if opts == nil {
		return def
	}
	if v, ok := opts[key].(string); ok && v != "" {
		return v
	}
	return def
}

// optFloat reads a numeric option. JSON decoding hands numbers over as
// float64; ints and numeric strings are accepted for convenience.
func optFloat(opts map[string]any, key string, def float64) float64 {
	if opts == nil {
		return def
	}
	switch v := opts[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

// formatExact renders a number without display rounding. The
// numerical_value field feeds bars and graphs, so precision is kept.
func formatExact(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// putMetric fills the standard value and limit fields for a numeric
// reading. Display value is rounded the usual way; numerical_value
// carries full precision.
func putMetric(out map[string]string, value float64, unit string, minLimit, maxLimit float64) {
	out[model.FieldValue] = model.FormatMetric(value)
	out[model.FieldUnit] = unit
	out[model.FieldNumerical] = formatExact(value)
	out[model.FieldMinLimit] = formatExact(minLimit)
	out[model.FieldMaxLimit] = formatExact(maxLimit)
}

// limitOverrides applies the slot's configured limit overrides on top
// of a source's defaults.
func limitOverrides(opts map[string]any, minLimit, maxLimit float64) (float64, float64) {
	return optFloat(opts, "min_limit", minLimit), optFloat(opts, "max_limit", maxLimit)
}

// standardFields is the metadata shared by every numeric source.
func standardFields(valueDesc string) []model.FieldMetadata {
	return []model.FieldMetadata{
		model.NewFieldMetadata(model.FieldCaption, "Caption", "Display label", model.FieldTypeText, model.PurposeCaption),
		model.NewFieldMetadata(model.FieldValue, "Value", valueDesc, model.FieldTypeNumerical, model.PurposeValue),
		model.NewFieldMetadata(model.FieldUnit, "Unit", "Unit of measurement", model.FieldTypeText, model.PurposeUnit),
		model.NewFieldMetadata(model.FieldNumerical, "Numeric Value", "Raw numeric value", model.FieldTypeNumerical, model.PurposeValue),
		model.NewFieldMetadata(model.FieldMinLimit, "Min Limit", "Lower bound for scaling", model.FieldTypeNumerical, model.PurposeOther),
		model.NewFieldMetadata(model.FieldMaxLimit, "Max Limit", "Upper bound for scaling", model.FieldTypeNumerical, model.PurposeOther),
	}
}

// toUnit converts a byte count into the named unit. Unknown units fall
// back to GB.
func toUnit(bytes uint64, unit string) float64 {
	switch unit {
	case "B":
		return float64(bytes)
	case "KB":
		return float64(bytes) / bytesPerKB
	case "MB":
		return float64(bytes) / bytesPerMB
	default:
		return float64(bytes) / bytesPerGB
	}
}

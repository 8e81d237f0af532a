package metrics

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/piwi3910/PulseBoard/internal/model"
)

// DiskSource publishes filesystem usage for one mount point. Options:
// "path" selects the mount point ("/" default), "field" picks the main
// reading (percent default, used, free), "unit" converts byte readings
// (GB default).
type DiskSource struct{}

// NewDiskSource returns a fresh disk source.
func NewDiskSource() *DiskSource {
	return &DiskSource{}
}

func (*DiskSource) ID() string   { return "disk" }
func (*DiskSource) Name() string { return "Disk Space" }

func (*DiskSource) Fields() []model.FieldMetadata {
	fields := standardFields("Configured disk reading")
	fields = append(fields,
		model.NewFieldMetadata("mount_point", "Mount Point", "Sampled mount point", model.FieldTypeText, model.PurposeOther),
		model.NewFieldMetadata("raw_used", "Used", "Used space in configured units", model.FieldTypeNumerical, model.PurposeOther),
		model.NewFieldMetadata("raw_free", "Free", "Free space in configured units", model.FieldTypeNumerical, model.PurposeOther),
		model.NewFieldMetadata("raw_total", "Total", "Total space in configured units", model.FieldTypeNumerical, model.PurposeOther),
		model.NewFieldMetadata("raw_percent", "Percent", "Used space percentage", model.FieldTypePercentage, model.PurposeOther),
	)
	return fields
}

func (*DiskSource) Sample(opts map[string]any) (map[string]string, error) {
	path := optString(opts, "path", "/")
	usage, err := disk.Usage(path)
	if err != nil {
		return nil, fmt.Errorf("reading disk usage for %s: %w", path, err)
	}

	field := optString(opts, "field", "percent")
	unit := optString(opts, "unit", "GB")

	out := map[string]string{
		model.FieldCaption: diskCaption(path, field),
		"mount_point":      path,
	}

	var value, maxLimit float64
	valueUnit := unit
	switch field {
	case "used":
		value, maxLimit = toUnit(usage.Used, unit), toUnit(usage.Total, unit)
	case "free":
		value, maxLimit = toUnit(usage.Free, unit), toUnit(usage.Total, unit)
	default:
		value, maxLimit, valueUnit = usage.UsedPercent, 100, "%"
	}

	minLimit, maxLimit := limitOverrides(opts, 0, maxLimit)
	putMetric(out, value, valueUnit, minLimit, maxLimit)

	out["raw_used"] = formatExact(toUnit(usage.Used, unit))
	out["raw_free"] = formatExact(toUnit(usage.Free, unit))
	out["raw_total"] = formatExact(toUnit(usage.Total, unit))
	out["raw_percent"] = formatExact(usage.UsedPercent)
	return out, nil
}

// diskCaption shortens the mount point to its last component and tags
// the configured reading.
func diskCaption(path, field string) string {
	label := "Root"
	if path != "/" {
		trimmed := strings.TrimRight(path, "/")
		if i := strings.LastIndex(trimmed, "/"); i >= 0 && i+1 < len(trimmed) {
			label = trimmed[i+1:]
		} else if trimmed != "" {
			label = trimmed
		}
	}
	switch field {
	case "used":
		return label + " Used"
	case "free":
		return label + " Free"
	default:
		return label + " %"
	}
}

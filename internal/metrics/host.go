package metrics

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/piwi3910/PulseBoard/internal/model"
)

// HostSource publishes identity and uptime readings for the machine
// itself. The "field" option picks the main value: uptime (default),
// os, hostname, kernel or procs. Text readings publish no limits; the
// uptime value is formatted for display while numerical_value carries
// hours for bars and graphs.
type HostSource struct{}

// NewHostSource returns a fresh host source.
func NewHostSource() *HostSource {
	return &HostSource{}
}

func (*HostSource) ID() string   { return "host" }
func (*HostSource) Name() string { return "Host Info" }

func (*HostSource) Fields() []model.FieldMetadata {
	return []model.FieldMetadata{
		model.NewFieldMetadata(model.FieldCaption, "Caption", "Display label", model.FieldTypeText, model.PurposeCaption),
		model.NewFieldMetadata(model.FieldValue, "Value", "Configured host reading", model.FieldTypeText, model.PurposeValue),
		model.NewFieldMetadata(model.FieldUnit, "Unit", "Unit of measurement", model.FieldTypeText, model.PurposeUnit),
		model.NewFieldMetadata("hostname", "Hostname", "Machine hostname", model.FieldTypeText, model.PurposeOther),
		model.NewFieldMetadata("platform", "Platform", "OS name and version", model.FieldTypeText, model.PurposeOther),
		model.NewFieldMetadata("kernel_version", "Kernel", "Kernel version", model.FieldTypeText, model.PurposeOther),
		model.NewFieldMetadata("uptime_hours", "Uptime Hours", "Uptime in hours", model.FieldTypeNumerical, model.PurposeOther),
	}
}

func (*HostSource) Sample(opts map[string]any) (map[string]string, error) {
	info, err := host.Info()
	if err != nil {
		return nil, fmt.Errorf("reading host info: %w", err)
	}

	platform := info.Platform
	if info.PlatformVersion != "" {
		platform = fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion)
	}
	uptimeHours := float64(info.Uptime) / 3600.0

	out := map[string]string{
		"hostname":       info.Hostname,
		"platform":       platform,
		"kernel_version": info.KernelVersion,
		"uptime_hours":   formatExact(uptimeHours),
	}

	switch optString(opts, "field", "uptime") {
	case "os":
		out[model.FieldCaption] = "OS"
		out[model.FieldValue] = platform
		out[model.FieldUnit] = ""
	case "hostname":
		out[model.FieldCaption] = "Host"
		out[model.FieldValue] = info.Hostname
		out[model.FieldUnit] = ""
	case "kernel":
		out[model.FieldCaption] = "Kernel"
		out[model.FieldValue] = info.KernelVersion
		out[model.FieldUnit] = ""
	case "procs":
		out[model.FieldCaption] = "Procs"
		minLimit, maxLimit := limitOverrides(opts, 0, 1000)
		putMetric(out, float64(info.Procs), "", minLimit, maxLimit)
	default:
		out[model.FieldCaption] = "Uptime"
		out[model.FieldValue] = formatUptime(info.Uptime)
		out[model.FieldUnit] = ""
		minLimit, maxLimit := limitOverrides(opts, 0, 720)
		out[model.FieldNumerical] = formatExact(uptimeHours)
		out[model.FieldMinLimit] = formatExact(minLimit)
		out[model.FieldMaxLimit] = formatExact(maxLimit)
	}
	return out, nil
}

// formatUptime renders seconds as "3d 04:12" or "04:12" under a day.
func formatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60
	if days > 0 {
		return fmt.Sprintf("%dd %02d:%02d", days, hours, minutes)
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

package metrics

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/piwi3910/PulseBoard/internal/model"
)

// MemorySource publishes RAM and swap usage. The "field" option picks
// which reading drives the main value:
//
//	percent (default), used, free, available, swap_percent, swap_used
//
// Byte readings are converted with the "unit" option (GB default, MB).
type MemorySource struct{}

// NewMemorySource returns a fresh memory source.
func NewMemorySource() *MemorySource {
	return &MemorySource{}
}

func (*MemorySource) ID() string   { return "memory" }
func (*MemorySource) Name() string { return "Memory (RAM)" }

func (*MemorySource) Fields() []model.FieldMetadata {
	fields := standardFields("Configured memory reading")
	fields = append(fields,
		model.NewFieldMetadata("raw_used", "Used", "Used RAM in configured units", model.FieldTypeNumerical, model.PurposeOther),
		model.NewFieldMetadata("raw_free", "Free", "Free RAM in configured units", model.FieldTypeNumerical, model.PurposeOther),
		model.NewFieldMetadata("raw_available", "Available", "Available RAM in configured units", model.FieldTypeNumerical, model.PurposeOther),
		model.NewFieldMetadata("raw_total", "Total", "Total RAM in configured units", model.FieldTypeNumerical, model.PurposeOther),
		model.NewFieldMetadata("raw_percent", "Percent", "RAM usage percentage", model.FieldTypePercentage, model.PurposeOther),
	)
	return fields
}

func (*MemorySource) Sample(opts map[string]any) (map[string]string, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("reading virtual memory: %w", err)
	}
	swap, err := mem.SwapMemory()
	if err != nil {
		swap = &mem.SwapMemoryStat{}
	}

	field := optString(opts, "field", "percent")
	unit := optString(opts, "unit", "GB")

	out := map[string]string{model.FieldCaption: memoryCaption(field)}

	var value, minLimit, maxLimit float64
	valueUnit := unit
	switch field {
	case "used":
		value, maxLimit = toUnit(vm.Used, unit), toUnit(vm.Total, unit)
	case "free":
		value, maxLimit = toUnit(vm.Free, unit), toUnit(vm.Total, unit)
	case "available":
		value, maxLimit = toUnit(vm.Available, unit), toUnit(vm.Total, unit)
	case "swap_used":
		value, maxLimit = toUnit(swap.Used, unit), toUnit(swap.Total, unit)
	case "swap_percent":
		value, maxLimit, valueUnit = swap.UsedPercent, 100, "%"
	default:
		value, maxLimit, valueUnit = vm.UsedPercent, 100, "%"
	}

	minLimit, maxLimit = limitOverrides(opts, minLimit, maxLimit)
	putMetric(out, value, valueUnit, minLimit, maxLimit)

	out["raw_used"] = formatExact(toUnit(vm.Used, unit))
	out["raw_free"] = formatExact(toUnit(vm.Free, unit))
	out["raw_available"] = formatExact(toUnit(vm.Available, unit))
	out["raw_total"] = formatExact(toUnit(vm.Total, unit))
	out["raw_percent"] = formatExact(vm.UsedPercent)
	out["raw_swap_used"] = formatExact(toUnit(swap.Used, unit))
	out["raw_swap_total"] = formatExact(toUnit(swap.Total, unit))
	out["raw_swap_percent"] = formatExact(swap.UsedPercent)
	return out, nil
}

// memoryCaption names the configured reading the way the picker does.
func memoryCaption(field string) string {
	switch field {
	case "used":
		return "RAM Used"
	case "free":
		return "RAM Free"
	case "available":
		return "RAM Avail"
	case "swap_used":
		return "Swap Used"
	case "swap_percent":
		return "Swap %"
	default:
		return "RAM %"
	}
}

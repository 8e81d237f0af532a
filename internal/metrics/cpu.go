package metrics

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/piwi3910/PulseBoard/internal/model"
)

// CPUSource publishes overall and per-core CPU usage percentages.
// Usage is computed from the time deltas between consecutive samples,
// so each slot's instance tracks its own baseline and the first sample
// reads as zero.
type CPUSource struct {
	prevOverall []cpu.TimesStat
	prevPerCore []cpu.TimesStat
}

// NewCPUSource returns a fresh CPU source.
func NewCPUSource() *CPUSource {
	return &CPUSource{}
}

func (*CPUSource) ID() string   { return "cpu" }
func (*CPUSource) Name() string { return "CPU Usage" }

func (*CPUSource) Fields() []model.FieldMetadata {
	fields := standardFields("CPU usage percentage")
	n, err := cpu.Counts(true)
	if err != nil {
		return fields
	}
	for i := 0; i < n; i++ {
		fields = append(fields, model.NewFieldMetadata(
			fmt.Sprintf("core%d_%s", i, model.FieldValue),
			fmt.Sprintf("Core %d Usage", i),
			fmt.Sprintf("Core %d usage percentage", i),
			model.FieldTypePercentage, model.PurposeValue))
	}
	return fields
}

// Sample reads CPU times and derives usage from the delta against the
// previous call. The "core" option narrows the main value to a single
// core; per-core values are always published alongside.
func (s *CPUSource) Sample(opts map[string]any) (map[string]string, error) {
	overall, err := cpu.Times(false)
	if err != nil {
		return nil, fmt.Errorf("reading cpu times: %w", err)
	}
	perCore, err := cpu.Times(true)
	if err != nil {
		return nil, fmt.Errorf("reading per-core cpu times: %w", err)
	}

	total := 0.0
	if len(overall) > 0 && len(s.prevOverall) > 0 {
		total = percentBetween(s.prevOverall[0], overall[0])
	}
	corePcts := make([]float64, len(perCore))
	for i := range perCore {
		if i < len(s.prevPerCore) {
			corePcts[i] = percentBetween(s.prevPerCore[i], perCore[i])
		}
	}
	s.prevOverall = overall
	s.prevPerCore = perCore

	out := map[string]string{model.FieldCaption: "CPU"}
	value := total
	if core := int(optFloat(opts, "core", -1)); core >= 0 && core < len(corePcts) {
		value = corePcts[core]
		out[model.FieldCaption] = fmt.Sprintf("Core %d", core)
	}

	minLimit, maxLimit := limitOverrides(opts, 0, 100)
	putMetric(out, value, "%", minLimit, maxLimit)

	for i, pct := range corePcts {
		out[fmt.Sprintf("core%d_%s", i, model.FieldValue)] = model.FormatMetric(pct)
		out[fmt.Sprintf("core%d_%s", i, model.FieldNumerical)] = formatExact(pct)
	}
	out["core_count"] = fmt.Sprintf("%d", len(corePcts))
	return out, nil
}

// busyTotal splits a times reading into busy and total jiffies.
func busyTotal(t cpu.TimesStat) (busy, total float64) {
	busy = t.User + t.System + t.Nice + t.Irq + t.Softirq + t.Steal
	total = busy + t.Idle + t.Iowait
	return busy, total
}

// percentBetween computes the usage percentage across two readings,
// clamped to [0,100]. A non-advancing clock reads as zero.
func percentBetween(prev, cur cpu.TimesStat) float64 {
	prevBusy, prevTotal := busyTotal(prev)
	curBusy, curTotal := busyTotal(cur)
	if curTotal <= prevTotal {
		return 0
	}
	pct := (curBusy - prevBusy) / (curTotal - prevTotal) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

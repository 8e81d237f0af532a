package metrics

import (
	"strconv"
	"testing"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/PulseBoard/internal/model"
)

func TestPercentBetween_UsageFromDeltas(t *testing.T) {
	prev := cpu.TimesStat{User: 100, System: 50, Idle: 850}
	cur := cpu.TimesStat{User: 150, System: 75, Idle: 1275}

	// Busy advanced 75 over a total advance of 500.
	assert.InDelta(t, 15.0, percentBetween(prev, cur), 1e-9)
}

func TestPercentBetween_Clamps(t *testing.T) {
	// Fully busy interval pegs at 100.
	prev := cpu.TimesStat{}
	cur := cpu.TimesStat{User: 10}
	assert.Equal(t, 100.0, percentBetween(prev, cur))

	// A clock that has not advanced reads as idle.
	same := cpu.TimesStat{User: 5, Idle: 5}
	assert.Equal(t, 0.0, percentBetween(same, same))

	// Going backwards reads as idle rather than negative.
	back := cpu.TimesStat{User: 1, Idle: 20}
	assert.Equal(t, 0.0, percentBetween(cpu.TimesStat{User: 5, Idle: 5}, back))
}

func TestBusyTotal(t *testing.T) {
	busy, total := busyTotal(cpu.TimesStat{
		User: 1, System: 2, Nice: 3, Irq: 4, Softirq: 5, Steal: 6,
		Idle: 70, Iowait: 9,
	})
	assert.Equal(t, 21.0, busy)
	assert.Equal(t, 100.0, total)
}

func TestByteRate(t *testing.T) {
	assert.InDelta(t, 1000.0, byteRate(3000, 1000, 2*time.Second), 1e-9)
	assert.Equal(t, 0.0, byteRate(3000, 1000, 0), "no baseline yet")
	assert.Equal(t, 0.0, byteRate(500, 1000, time.Second), "counter reset")
}

func TestUnitConversions(t *testing.T) {
	assert.Equal(t, 1.0, toUnit(1<<30, "GB"))
	assert.Equal(t, 1.0, toUnit(1<<20, "MB"))
	assert.Equal(t, 1.0, toUnit(1<<10, "KB"))
	assert.Equal(t, 512.0, toUnit(512, "B"))
	assert.Equal(t, 1.0, toUnit(1<<30, "parsecs"), "unknown units fall back to GB")

	assert.Equal(t, 2.0, toRateUnit(2*bytesPerMB, "MB/s"))
	assert.Equal(t, 4.0, toRateUnit(4*bytesPerKB, "KB/s"))
	assert.Equal(t, 8.0, toRateUnit(8, "B/s"))
	assert.Equal(t, 1.0, toRateUnit(bytesPerGB, "GB/s"))
	assert.Equal(t, 3.0, toRateUnit(3*bytesPerMB, ""), "blank unit falls back to MB/s")
}

func TestOptHelpers(t *testing.T) {
	opts := map[string]any{
		"field":  "used",
		"empty":  "",
		"core":   2, // int, as tests and code hand it over
		"max":    75.5,
		"numstr": "12.5",
		"junk":   []string{"x"},
	}

	assert.Equal(t, "used", optString(opts, "field", "percent"))
	assert.Equal(t, "percent", optString(opts, "missing", "percent"))
	assert.Equal(t, "percent", optString(opts, "empty", "percent"), "blank reads as unset")
	assert.Equal(t, "percent", optString(nil, "field", "percent"))

	assert.Equal(t, 2.0, optFloat(opts, "core", -1))
	assert.Equal(t, 75.5, optFloat(opts, "max", 0))
	assert.Equal(t, 12.5, optFloat(opts, "numstr", 0))
	assert.Equal(t, -1.0, optFloat(opts, "missing", -1))
	assert.Equal(t, -1.0, optFloat(opts, "junk", -1))
	assert.Equal(t, -1.0, optFloat(nil, "core", -1))
}

func TestLimitOverrides(t *testing.T) {
	minL, maxL := limitOverrides(map[string]any{"max_limit": 50.0}, 0, 100)
	assert.Equal(t, 0.0, minL)
	assert.Equal(t, 50.0, maxL)

	minL, maxL = limitOverrides(nil, 5, 95)
	assert.Equal(t, 5.0, minL)
	assert.Equal(t, 95.0, maxL)
}

func TestMemoryCaption(t *testing.T) {
	cases := map[string]string{
		"used":         "RAM Used",
		"free":         "RAM Free",
		"available":    "RAM Avail",
		"swap_used":    "Swap Used",
		"swap_percent": "Swap %",
		"percent":      "RAM %",
		"":             "RAM %",
	}
	for field, want := range cases {
		assert.Equal(t, want, memoryCaption(field), "field %q", field)
	}
}

func TestDiskCaption(t *testing.T) {
	assert.Equal(t, "Root %", diskCaption("/", "percent"))
	assert.Equal(t, "data Used", diskCaption("/home/data", "used"))
	assert.Equal(t, "disk Free", diskCaption("/mnt/disk/", "free"))
	assert.Equal(t, "mnt %", diskCaption("/mnt", "percent"))
}

func TestNetworkCaption(t *testing.T) {
	assert.Equal(t, "Net DL", networkCaption("", "rx", "speed"))
	assert.Equal(t, "eth0 UL", networkCaption("eth0", "tx", "speed"))
	assert.Equal(t, "eth0 Total DL", networkCaption("eth0", "rx", "total"))
	assert.Equal(t, "Net Total UL", networkCaption("", "tx", "total"))
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "1d 01:01", formatUptime(90061))
	assert.Equal(t, "01:05", formatUptime(3900))
	assert.Equal(t, "00:00", formatUptime(59))
	assert.Equal(t, "12d 00:00", formatUptime(12*86400))
}

func TestPutMetric(t *testing.T) {
	out := map[string]string{}
	putMetric(out, 42.26, "%", 0, 100)

	assert.Equal(t, "42.3", out[model.FieldValue], "display value is rounded")
	assert.Equal(t, "%", out[model.FieldUnit])
	assert.Equal(t, "42.26", out[model.FieldNumerical], "numeric value keeps precision")
	assert.Equal(t, "0", out[model.FieldMinLimit])
	assert.Equal(t, "100", out[model.FieldMaxLimit])
}

// The live samples below read the real system once and only check the
// shape of the result, so they hold on any machine the suite runs on.

func requireNumericField(t *testing.T, values map[string]string, key string) float64 {
	t.Helper()
	raw, ok := values[key]
	require.True(t, ok, "missing field %q", key)
	v, err := strconv.ParseFloat(raw, 64)
	require.NoError(t, err, "field %q is not numeric: %q", key, raw)
	return v
}

func TestCPUSource_LiveSample(t *testing.T) {
	src := NewCPUSource()

	first, err := src.Sample(nil)
	require.NoError(t, err)
	assert.Equal(t, "CPU", first[model.FieldCaption])
	assert.Equal(t, 0.0, requireNumericField(t, first, model.FieldNumerical), "no baseline on the first sample")

	second, err := src.Sample(nil)
	require.NoError(t, err)
	v := requireNumericField(t, second, model.FieldNumerical)
	assert.GreaterOrEqual(t, v, 0.0)
	assert.LessOrEqual(t, v, 100.0)
	assert.Equal(t, "%", second[model.FieldUnit])
	assert.Contains(t, second, "core0_"+model.FieldValue)
}

func TestCPUSource_CoreOption(t *testing.T) {
	src := NewCPUSource()
	_, err := src.Sample(nil)
	require.NoError(t, err)

	values, err := src.Sample(map[string]any{"core": 0})
	require.NoError(t, err)
	assert.Equal(t, "Core 0", values[model.FieldCaption])
}

func TestMemorySource_LiveSample(t *testing.T) {
	src := NewMemorySource()

	values, err := src.Sample(nil)
	require.NoError(t, err)
	assert.Equal(t, "RAM %", values[model.FieldCaption])
	pct := requireNumericField(t, values, model.FieldNumerical)
	assert.GreaterOrEqual(t, pct, 0.0)
	assert.LessOrEqual(t, pct, 100.0)

	used, err := src.Sample(map[string]any{"field": "used", "unit": "MB"})
	require.NoError(t, err)
	assert.Equal(t, "RAM Used", used[model.FieldCaption])
	assert.Equal(t, "MB", used[model.FieldUnit])
	total := requireNumericField(t, used, model.FieldMaxLimit)
	assert.Greater(t, total, 0.0, "total RAM bounds the reading")
}

func TestDiskSource_LiveSample(t *testing.T) {
	src := NewDiskSource()

	values, err := src.Sample(nil)
	require.NoError(t, err)
	assert.Equal(t, "Root %", values[model.FieldCaption])
	assert.Equal(t, "/", values["mount_point"])
	pct := requireNumericField(t, values, model.FieldNumerical)
	assert.GreaterOrEqual(t, pct, 0.0)
	assert.LessOrEqual(t, pct, 100.0)

	_, err = src.Sample(map[string]any{"path": "/definitely/not/mounted/anywhere"})
	assert.Error(t, err)
}

func TestNetSource_LiveSample(t *testing.T) {
	src := NewNetSource()

	first, err := src.Sample(map[string]any{"direction": "rx"})
	require.NoError(t, err)
	assert.Equal(t, "Net DL", first[model.FieldCaption])
	assert.Equal(t, 0.0, requireNumericField(t, first, model.FieldNumerical), "no baseline on the first sample")
	assert.Contains(t, first, "total_download")
	assert.Contains(t, first, "total_upload")

	second, err := src.Sample(map[string]any{"direction": "tx"})
	require.NoError(t, err)
	assert.Equal(t, "Net UL", second[model.FieldCaption])
	assert.GreaterOrEqual(t, requireNumericField(t, second, model.FieldNumerical), 0.0)
}

func TestHostSource_LiveSample(t *testing.T) {
	src := NewHostSource()

	values, err := src.Sample(nil)
	require.NoError(t, err)
	assert.Equal(t, "Uptime", values[model.FieldCaption])
	assert.NotEmpty(t, values[model.FieldValue])
	assert.GreaterOrEqual(t, requireNumericField(t, values, model.FieldNumerical), 0.0)

	hostname, err := src.Sample(map[string]any{"field": "hostname"})
	require.NoError(t, err)
	assert.Equal(t, "Host", hostname[model.FieldCaption])
	assert.Equal(t, hostname["hostname"], hostname[model.FieldValue])
}

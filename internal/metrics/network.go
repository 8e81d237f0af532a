package metrics

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/net"

	"github.com/piwi3910/PulseBoard/internal/model"
)

// NetSource publishes network throughput as byte-rate deltas between
// consecutive samples. Options: "interface" narrows to one NIC (all
// interfaces combined by default), "direction" picks rx or tx for the
// main value (rx default), "field" switches between the transfer rate
// and the running total (speed default, total), "unit" scales rates
// (MB/s default; B/s, KB/s, GB/s) and totals (GB default).
//
// The first sample has no baseline and reads as zero.
type NetSource struct {
	prevRx, prevTx uint64
	prevAt         time.Time
}

// NewNetSource returns a fresh network source.
func NewNetSource() *NetSource {
	return &NetSource{}
}

func (*NetSource) ID() string   { return "network" }
func (*NetSource) Name() string { return "Network Traffic" }

func (*NetSource) Fields() []model.FieldMetadata {
	fields := standardFields("Configured traffic reading")
	fields = append(fields,
		model.NewFieldMetadata("interface_name", "Interface", "Sampled interface", model.FieldTypeText, model.PurposeOther),
		model.NewFieldMetadata("download_speed", "Download Speed", "Receive rate in configured units", model.FieldTypeNumerical, model.PurposeOther),
		model.NewFieldMetadata("upload_speed", "Upload Speed", "Transmit rate in configured units", model.FieldTypeNumerical, model.PurposeOther),
		model.NewFieldMetadata("total_download", "Total Download", "Bytes received since boot", model.FieldTypeNumerical, model.PurposeOther),
		model.NewFieldMetadata("total_upload", "Total Upload", "Bytes sent since boot", model.FieldTypeNumerical, model.PurposeOther),
	)
	return fields
}

func (s *NetSource) Sample(opts map[string]any) (map[string]string, error) {
	iface := optString(opts, "interface", "")

	rx, tx, err := readCounters(iface)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var elapsed time.Duration
	if !s.prevAt.IsZero() {
		elapsed = now.Sub(s.prevAt)
	}
	rxRate := byteRate(rx, s.prevRx, elapsed)
	txRate := byteRate(tx, s.prevTx, elapsed)
	s.prevRx, s.prevTx, s.prevAt = rx, tx, now

	direction := optString(opts, "direction", "rx")
	field := optString(opts, "field", "speed")
	speedUnit := optString(opts, "unit", "MB/s")
	totalUnit := optString(opts, "total_unit", "GB")

	out := map[string]string{
		model.FieldCaption: networkCaption(iface, direction, field),
		"interface_name":   iface,
	}

	var value, maxLimit float64
	valueUnit := speedUnit
	if field == "total" {
		valueUnit = totalUnit
		maxLimit = 1000
		if direction == "tx" {
			value = toUnit(tx, totalUnit)
		} else {
			value = toUnit(rx, totalUnit)
		}
	} else {
		maxLimit = 100
		if direction == "tx" {
			value = toRateUnit(txRate, speedUnit)
		} else {
			value = toRateUnit(rxRate, speedUnit)
		}
	}

	minLimit, maxLimit := limitOverrides(opts, 0, maxLimit)
	putMetric(out, value, valueUnit, minLimit, maxLimit)

	out["download_speed"] = formatExact(toRateUnit(rxRate, speedUnit))
	out["upload_speed"] = formatExact(toRateUnit(txRate, speedUnit))
	out["total_download"] = formatExact(toUnit(rx, totalUnit))
	out["total_upload"] = formatExact(toUnit(tx, totalUnit))
	return out, nil
}

// readCounters reads the byte counters for one interface, or the
// combined counters when iface is empty.
func readCounters(iface string) (rx, tx uint64, err error) {
	if iface == "" {
		counters, err := net.IOCounters(false)
		if err != nil {
			return 0, 0, fmt.Errorf("reading network counters: %w", err)
		}
		if len(counters) == 0 {
			return 0, 0, nil
		}
		return counters[0].BytesRecv, counters[0].BytesSent, nil
	}

	counters, err := net.IOCounters(true)
	if err != nil {
		return 0, 0, fmt.Errorf("reading network counters: %w", err)
	}
	for _, c := range counters {
		if c.Name == iface {
			return c.BytesRecv, c.BytesSent, nil
		}
	}
	return 0, 0, fmt.Errorf("network interface %q not found", iface)
}

// byteRate turns two counter readings into bytes per second. Counter
// resets and a missing baseline read as zero.
func byteRate(cur, prev uint64, elapsed time.Duration) float64 {
	if elapsed <= 0 || cur < prev {
		return 0
	}
	return float64(cur-prev) / elapsed.Seconds()
}

// toRateUnit scales a bytes-per-second rate into the named unit.
func toRateUnit(bytesPerSec float64, unit string) float64 {
	switch unit {
	case "B/s":
		return bytesPerSec
	case "KB/s":
		return bytesPerSec / bytesPerKB
	case "GB/s":
		return bytesPerSec / bytesPerGB
	default:
		return bytesPerSec / bytesPerMB
	}
}

// networkCaption labels the configured reading, shortening the missing
// interface case to a generic "Net".
func networkCaption(iface, direction, field string) string {
	label := iface
	if label == "" {
		label = "Net"
	}
	dir := "DL"
	if direction == "tx" {
		dir = "UL"
	}
	if field == "total" {
		return fmt.Sprintf("%s Total %s", label, dir)
	}
	return fmt.Sprintf("%s %s", label, dir)
}

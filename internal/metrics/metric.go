// Package metrics holds the chart's data model: the fixed set of tracked
// metrics, their ring-buffered histories and snapshot ingestion.
package metrics

import (
	"fmt"
	"image/color"
)

// Metric identifies one tracked series. The set is closed; the declaration
// order is the draw, legend and hit-test iteration order.
type Metric int

const (
	CPUTemp Metric = iota
	CPUUsage
	RAM
	Swap
	Disk
	NetRecv
	NetSent

	metricCount
)

// Unit of a metric's values.
type Unit int

const (
	UnitCelsius Unit = iota
	UnitPercent
	UnitMBps
)

// String returns the unit suffix appended to formatted values.
func (u Unit) String() string {
	switch u {
	case UnitCelsius:
		return "°C"
	case UnitPercent:
		return "%"
	case UnitMBps:
		return "MB/s"
	default:
		return ""
	}
}

type metricInfo struct {
	key      string
	unit     Unit
	nameKey  string // i18n key of the base name
	suffix   string // appended to the localized name in the legend
	infoTail string // appended to the localized name in the hover readout
	rgb      [3]float64
}

var metricTable = [metricCount]metricInfo{
	CPUTemp:  {key: "cpu_temp", unit: UnitCelsius, nameKey: "cpu", suffix: " °C", infoTail: " (°C)", rgb: [3]float64{0.93, 0.36, 0.36}},
	CPUUsage: {key: "cpu_usage", unit: UnitPercent, nameKey: "cpu", suffix: " %", infoTail: " (%)", rgb: [3]float64{0.23, 0.62, 0.95}},
	RAM:      {key: "ram", unit: UnitPercent, nameKey: "ram", infoTail: " (%)", rgb: [3]float64{0.31, 0.78, 0.47}},
	Swap:     {key: "swap", unit: UnitPercent, nameKey: "swap", infoTail: " (%)", rgb: [3]float64{0.60, 0.49, 0.80}},
	Disk:     {key: "disk", unit: UnitPercent, nameKey: "disk", infoTail: " (%)", rgb: [3]float64{0.90, 0.90, 0.90}},
	NetRecv:  {key: "net_recv", unit: UnitMBps, nameKey: "network", suffix: " ↓", infoTail: " ↓", rgb: [3]float64{0.00, 0.75, 1.00}},
	NetSent:  {key: "net_sent", unit: UnitMBps, nameKey: "network", suffix: " ↑", infoTail: " ↑", rgb: [3]float64{1.00, 0.65, 0.00}},
}

// All returns every metric in iteration order.
func All() []Metric {
	all := make([]Metric, metricCount)
	for i := range all {
		all[i] = Metric(i)
	}
	return all
}

// Count returns the number of tracked metrics.
func Count() int {
	return int(metricCount)
}

// ParseMetric maps a metric key such as "net_recv" back to its Metric.
func ParseMetric(key string) (Metric, error) {
	for i, info := range metricTable {
		if info.key == key {
			return Metric(i), nil
		}
	}
	return 0, fmt.Errorf("unknown metric %q", key)
}

// Valid reports whether m is one of the tracked metrics.
func (m Metric) Valid() bool {
	return m >= 0 && m < metricCount
}

// info returns the table row of m. Out-of-range metrics get a row with no
// unit, a neutral gray and their Key as the name key.
func (m Metric) info() metricInfo {
	if !m.Valid() {
		return metricInfo{key: m.Key(), unit: Unit(-1), nameKey: m.Key(), rgb: [3]float64{0.5, 0.5, 0.5}}
	}
	return metricTable[m]
}

// Key returns the stable identifier used in configuration.
func (m Metric) Key() string {
	if !m.Valid() {
		return fmt.Sprintf("metric(%d)", int(m))
	}
	return metricTable[m].key
}

// String implements fmt.Stringer.
func (m Metric) String() string {
	return m.Key()
}

// Unit returns the unit of the metric's values.
func (m Metric) Unit() Unit {
	return m.info().unit
}

// NameKey returns the localization key of the metric's base name.
func (m Metric) NameKey() string {
	return m.info().nameKey
}

// LegendName builds the legend label from a localized base name.
func (m Metric) LegendName(base string) string {
	return base + m.info().suffix
}

// InfoName builds the hover readout label from a localized base name.
func (m Metric) InfoName(base string) string {
	return base + m.info().infoTail
}

// Color returns the default series color.
func (m Metric) Color() color.RGBA {
	rgb := m.info().rgb
	return color.RGBA{
		R: uint8(rgb[0]*255 + 0.5),
		G: uint8(rgb[1]*255 + 0.5),
		B: uint8(rgb[2]*255 + 0.5),
		A: 255,
	}
}

// FormatValue formats v with the metric's precision:
// throughput two decimals, percentages one, temperature none.
func (m Metric) FormatValue(v float64) string {
	switch m.Unit() {
	case UnitMBps:
		return fmt.Sprintf("%.2f", v)
	case UnitPercent:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// FormatWithUnit formats v followed by the unit suffix.
func (m Metric) FormatWithUnit(v float64) string {
	return m.FormatValue(v) + m.Unit().String()
}

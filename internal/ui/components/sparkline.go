// Package components provides the reusable pieces of the symo TUI.
package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// sparkBlocks are the single-line levels from lowest to highest.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// SparklineConfig holds configuration for sparkline rendering.
type SparklineConfig struct {
	// Width is the number of characters for the sparkline
	Width int
	// Height is the number of lines (1 for compact, 2+ for asciigraph)
	Height int
	Color  lipgloss.Color
	// Caption is shown below multi-line graphs
	Caption string
	// Bounded pins the scale to Min..Max instead of the data range
	Bounded  bool
	Min, Max float64
}

// DefaultSparklineConfig returns defaults for inline menu sparklines.
func DefaultSparklineConfig() SparklineConfig {
	return SparklineConfig{
		Width:  12,
		Height: 1,
		Color:  lipgloss.Color("117"), // Light blue
	}
}

// PercentSparklineConfig pins the scale to 0..100.
func PercentSparklineConfig(width int, color lipgloss.Color) SparklineConfig {
	return SparklineConfig{
		Width:   width,
		Height:  1,
		Color:   color,
		Bounded: true,
		Min:     0,
		Max:     100,
	}
}

// RenderSparkline renders data as a compact block line when Height is 1
// and as an asciigraph plot otherwise. Non-finite samples are skipped.
func RenderSparkline(data []float64, config SparklineConfig) string {
	data = finiteOnly(data)
	if len(data) == 0 {
		return strings.Repeat("─", max(config.Width, 0))
	}
	if config.Height <= 1 {
		return RenderUnicodeSparkline(data, config)
	}
	return RenderAsciigraphSparkline(data, config)
}

// RenderUnicodeSparkline renders a single line using ▁▂▃▄▅▆▇█.
func RenderUnicodeSparkline(data []float64, config SparklineConfig) string {
	data = finiteOnly(data)
	if len(data) == 0 {
		return strings.Repeat("─", max(config.Width, 0))
	}

	lo, hi := bounds(data)
	if config.Bounded {
		lo, hi = config.Min, config.Max
	}
	span := hi - lo
	if span <= 0 {
		span = 1
	}

	var sb strings.Builder
	for _, v := range resampleData(data, config.Width) {
		idx := int((v - lo) / span * float64(len(sparkBlocks)-1))
		idx = min(max(idx, 0), len(sparkBlocks)-1)
		sb.WriteRune(sparkBlocks[idx])
	}

	if config.Color == "" {
		return sb.String()
	}
	return lipgloss.NewStyle().Foreground(config.Color).Render(sb.String())
}

// RenderAsciigraphSparkline renders a multi-line plot using asciigraph.
func RenderAsciigraphSparkline(data []float64, config SparklineConfig) string {
	data = finiteOnly(data)
	if len(data) == 0 {
		return ""
	}

	opts := []asciigraph.Option{
		asciigraph.Height(config.Height),
		asciigraph.Width(config.Width),
		asciigraph.Precision(1),
	}
	if config.Bounded {
		opts = append(opts, asciigraph.LowerBound(config.Min), asciigraph.UpperBound(config.Max))
	}
	if config.Caption != "" {
		opts = append(opts, asciigraph.Caption(config.Caption))
	}

	graph := asciigraph.Plot(resampleData(data, config.Width), opts...)
	if config.Color == "" {
		return graph
	}

	style := lipgloss.NewStyle().Foreground(config.Color)
	lines := strings.Split(graph, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

// resampleData averages data down to at most width buckets.
func resampleData(data []float64, width int) []float64 {
	if width <= 0 || len(data) <= width {
		return data
	}

	out := make([]float64, width)
	bucket := float64(len(data)) / float64(width)
	for i := range out {
		start := int(float64(i) * bucket)
		end := min(int(float64(i+1)*bucket), len(data))
		if start >= end {
			start = end - 1
		}

		sum := 0.0
		for _, v := range data[start:end] {
			sum += v
		}
		out[i] = sum / float64(end-start)
	}
	return out
}

func finiteOnly(data []float64) []float64 {
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out := make([]float64, 0, len(data))
			for _, w := range data {
				if !math.IsNaN(w) && !math.IsInf(w, 0) {
					out = append(out, w)
				}
			}
			return out
		}
	}
	return data
}

func bounds(data []float64) (lo, hi float64) {
	lo, hi = data[0], data[0]
	for _, v := range data[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// Trend is the overall direction of a series.
type Trend int

const (
	TrendStable Trend = iota
	TrendUp
	TrendDown
)

// GetTrend compares the averages of the first and last thirds of data.
func GetTrend(data []float64) Trend {
	data = finiteOnly(data)
	if len(data) < 2 {
		return TrendStable
	}

	third := max(len(data)/3, 1)
	var first, last float64
	for _, v := range data[:third] {
		first += v
	}
	for _, v := range data[len(data)-third:] {
		last += v
	}
	first /= float64(third)
	last /= float64(third)

	// 10% of the starting level, at least one unit
	threshold := math.Max(math.Abs(first)*0.1, 1)
	switch diff := last - first; {
	case diff > threshold:
		return TrendUp
	case diff < -threshold:
		return TrendDown
	default:
		return TrendStable
	}
}

// String returns an arrow for the trend.
func (t Trend) String() string {
	switch t {
	case TrendUp:
		return "↗"
	case TrendDown:
		return "↘"
	default:
		return "→"
	}
}

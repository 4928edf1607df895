package chart

import (
	"math"

	"github.com/symo-dev/symo/internal/metrics"
)

// DefaultHoverRadius is the pointer hit radius in pixels.
const DefaultHoverRadius = 8.0

// Series pairs a metric with its history for hit-testing and drawing.
type Series struct {
	Metric metrics.Metric
	Buffer *metrics.SeriesBuffer
}

// HoverState is the sample nearest to the pointer. At most one exists per
// view; nil means no hover.
type HoverState struct {
	Metric metrics.Metric
	Index  int
	Value  float64
	X      float64
	Y      float64
	// Age is how many samples ago the hovered sample was taken; 0 is the newest.
	Age      int
	Distance float64
}

// Locate finds the plotted sample nearest to (px, py) within radius.
//
// Series are scanned in slice order and samples oldest to newest. Points
// outside the plot rectangle and non-finite samples are skipped. A candidate
// replaces the current best when its squared distance is less than or equal
// to the best so far, so on an exact tie the last scanned sample wins.
func Locate(px, py float64, series []Series, geom Geometry, radius float64) *HoverState {
	var best *HoverState
	bestDist2 := radius * radius

	for _, s := range series {
		if s.Buffer == nil {
			continue
		}
		values := s.Buffer.Values()
		for idx, v := range values {
			if !finite(v) {
				continue
			}
			x, y := geom.ToScreen(idx, v)
			if !geom.Contains(x, y) {
				continue
			}
			dx, dy := x-px, y-py
			d2 := dx*dx + dy*dy
			if d2 > bestDist2 {
				continue
			}
			bestDist2 = d2
			if best == nil {
				best = &HoverState{}
			}
			*best = HoverState{
				Metric: s.Metric,
				Index:  idx,
				Value:  v,
				X:      x,
				Y:      y,
				Age:    len(values) - 1 - idx,
			}
		}
	}

	if best != nil {
		best.Distance = math.Sqrt(bestDist2)
	}
	return best
}

// SeriesOf returns the series of set in metric order, keeping only those
// for which visible reports true. A nil visible keeps all of them.
func SeriesOf(set *metrics.SeriesSet, visible func(metrics.Metric) bool) []Series {
	out := make([]Series, 0, metrics.Count())
	for _, m := range metrics.All() {
		if visible != nil && !visible(m) {
			continue
		}
		out = append(out, Series{Metric: m, Buffer: set.Buffer(m)})
	}
	return out
}

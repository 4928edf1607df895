package chart

import (
	"math"

	"github.com/symo-dev/symo/internal/metrics"
)

const (
	// flatThreshold is the range below which data is treated as constant.
	flatThreshold = 1e-6
	// flatPad widens a constant domain on each side.
	flatPad = 1.0
	// padRatio is the share of the range added above and below the data.
	padRatio = 0.05
)

// Domain is the shared vertical value range of one frame.
type Domain struct {
	Min float64
	Max float64
}

// Span returns Max - Min.
func (d Domain) Span() float64 {
	return d.Max - d.Min
}

// Mid returns the midpoint of the domain.
func (d Domain) Mid() float64 {
	return (d.Min + d.Max) / 2
}

// ComputeDomain derives the shared Y domain from the union of every sample in
// buffers. Flat data is widened by exactly one unit each way; otherwise the
// range is padded by 5% on both ends. ok is false when no buffer holds a
// finite sample, in which case nothing should be drawn.
//
// Callers pass every buffer, hidden series included, so that all metrics
// share one axis regardless of what is on screen.
func ComputeDomain(buffers ...*metrics.SeriesBuffer) (Domain, bool) {
	lo, hi := math.Inf(1), math.Inf(-1)
	found := false

	for _, buf := range buffers {
		if buf == nil {
			continue
		}
		for _, v := range buf.Values() {
			if !finite(v) {
				continue
			}
			found = true
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	if !found {
		return Domain{}, false
	}

	if hi-lo < flatThreshold {
		return Domain{Min: lo - flatPad, Max: hi + flatPad}, true
	}

	pad := padRatio * (hi - lo)
	return Domain{Min: lo - pad, Max: hi + pad}, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

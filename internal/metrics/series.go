package metrics

// SeriesSet owns one SeriesBuffer per tracked metric and ingests snapshots
// into them. Like SeriesBuffer it is not synchronized: ingest and read from
// the same goroutine.
type SeriesSet struct {
	buffers  [metricCount]*SeriesBuffer
	capacity int
	ticks    int
}

// NewSeriesSet creates buffers of the given capacity for every metric.
func NewSeriesSet(capacity int) *SeriesSet {
	if capacity < 1 {
		capacity = 1
	}
	s := &SeriesSet{capacity: capacity}
	for i := range s.buffers {
		s.buffers[i] = NewSeriesBuffer(capacity)
	}
	return s
}

// Ingest pushes exactly one normalized value into every buffer.
func (s *SeriesSet) Ingest(snap Snapshot) {
	for i, buf := range s.buffers {
		buf.Push(snap.Value(Metric(i)))
	}
	s.ticks++
}

// Buffer returns the history of m.
func (s *SeriesSet) Buffer(m Metric) *SeriesBuffer {
	return s.buffers[m]
}

// Buffers returns all buffers in metric order.
func (s *SeriesSet) Buffers() []*SeriesBuffer {
	out := make([]*SeriesBuffer, len(s.buffers))
	copy(out, s.buffers[:])
	return out
}

// Capacity returns the configured per-series capacity.
func (s *SeriesSet) Capacity() int {
	return s.capacity
}

// Ticks returns how many snapshots have been ingested.
func (s *SeriesSet) Ticks() int {
	return s.ticks
}

// TotalSamples returns the number of samples held across all buffers.
func (s *SeriesSet) TotalSamples() int {
	total := 0
	for _, buf := range s.buffers {
		total += buf.Len()
	}
	return total
}

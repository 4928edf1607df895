package metrics

// DefaultCapacity is the default number of samples kept per series
// (five minutes of history at one sample per second).
const DefaultCapacity = 300

// SeriesBuffer is a fixed-size ring of samples for one metric.
// It evicts the oldest sample once full. It is not safe for concurrent use;
// callers that push and read from different goroutines must synchronize.
type SeriesBuffer struct {
	data     []float64
	capacity int
	head     int // Next write position
	size     int // Current element count
}

// NewSeriesBuffer creates a SeriesBuffer holding at most capacity samples.
// Capacities below 1 are raised to 1.
func NewSeriesBuffer(capacity int) *SeriesBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &SeriesBuffer{
		data:     make([]float64, capacity),
		capacity: capacity,
	}
}

// Push appends a sample, evicting the oldest if at capacity.
// Non-finite values are stored unchanged so that no tick is dropped.
func (b *SeriesBuffer) Push(v float64) {
	b.data[b.head] = v
	b.head = (b.head + 1) % b.capacity

	if b.size < b.capacity {
		b.size++
	}
}

// Values returns a copy of all samples, oldest first.
func (b *SeriesBuffer) Values() []float64 {
	if b.size == 0 {
		return nil
	}

	result := make([]float64, b.size)
	oldest := (b.head - b.size + b.capacity) % b.capacity
	for i := 0; i < b.size; i++ {
		result[i] = b.data[(oldest+i)%b.capacity]
	}
	return result
}

// Recent returns the n most recent samples in chronological order.
func (b *SeriesBuffer) Recent(n int) []float64 {
	if n <= 0 || b.size == 0 {
		return nil
	}
	if n > b.size {
		n = b.size
	}

	result := make([]float64, n)
	start := (b.head - n + b.capacity) % b.capacity
	for i := 0; i < n; i++ {
		result[i] = b.data[(start+i)%b.capacity]
	}
	return result
}

// At returns the sample at position i counted from the oldest sample.
func (b *SeriesBuffer) At(i int) (float64, bool) {
	if i < 0 || i >= b.size {
		return 0, false
	}
	oldest := (b.head - b.size + b.capacity) % b.capacity
	return b.data[(oldest+i)%b.capacity], true
}

// Latest returns the most recent sample.
// Returns false if the buffer is empty.
func (b *SeriesBuffer) Latest() (float64, bool) {
	if b.size == 0 {
		return 0, false
	}
	// head points to next write position, so latest is at head-1
	return b.data[(b.head-1+b.capacity)%b.capacity], true
}

// Len returns the current number of samples.
func (b *SeriesBuffer) Len() int {
	return b.size
}

// Cap returns the fixed capacity.
func (b *SeriesBuffer) Cap() int {
	return b.capacity
}

// IsEmpty returns true if the buffer holds no samples.
func (b *SeriesBuffer) IsEmpty() bool {
	return b.size == 0
}

// IsFull returns true if the buffer is at capacity.
func (b *SeriesBuffer) IsFull() bool {
	return b.size == b.capacity
}

// Clear drops all samples without releasing the backing storage.
func (b *SeriesBuffer) Clear() {
	b.head = 0
	b.size = 0
	for i := range b.data {
		b.data[i] = 0
	}
}

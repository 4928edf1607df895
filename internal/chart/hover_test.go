package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symo-dev/symo/internal/metrics"
)

func geometryFor(t *testing.T, capacity int, buffers ...*metrics.SeriesBuffer) Geometry {
	t.Helper()
	domain, ok := ComputeDomain(buffers...)
	require.True(t, ok)
	return NewGeometry(1000, 400, capacity, domain, DefaultLayout())
}

func TestLocate_ExactPoint(t *testing.T) {
	buf := bufferOf(10, 10, 20, 30, 40)
	geom := geometryFor(t, 10, buf)
	x, y := geom.ToScreen(2, 30)

	hover := Locate(x, y, []Series{{Metric: metrics.RAM, Buffer: buf}}, geom, DefaultHoverRadius)

	require.NotNil(t, hover)
	assert.Equal(t, metrics.RAM, hover.Metric)
	assert.Equal(t, 2, hover.Index)
	assert.Equal(t, 30.0, hover.Value)
	assert.Equal(t, 0.0, hover.Distance)
	assert.Equal(t, 1, hover.Age)
	assert.Equal(t, x, hover.X)
	assert.Equal(t, y, hover.Y)
}

func TestLocate_RadiusBoundary(t *testing.T) {
	buf := bufferOf(10, 42)
	geom := geometryFor(t, 10, buf)
	x, y := geom.ToScreen(0, 42)
	series := []Series{{Metric: metrics.CPUTemp, Buffer: buf}}

	assert.Nil(t, Locate(x+DefaultHoverRadius+1, y, series, geom, DefaultHoverRadius))
	assert.Nil(t, Locate(x, y-DefaultHoverRadius-1, series, geom, DefaultHoverRadius))

	hover := Locate(x+DefaultHoverRadius, y, series, geom, DefaultHoverRadius)
	require.NotNil(t, hover)
	assert.InDelta(t, DefaultHoverRadius, hover.Distance, 1e-9)
}

func TestLocate_Age(t *testing.T) {
	buf := bufferOf(10, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	geom := geometryFor(t, 10, buf)
	series := []Series{{Metric: metrics.CPUUsage, Buffer: buf}}

	x, y := geom.ToScreen(7, 7)
	hover := Locate(x, y, series, geom, DefaultHoverRadius)
	require.NotNil(t, hover)
	assert.Equal(t, 7, hover.Index)
	assert.Equal(t, 2, hover.Age)

	x, y = geom.ToScreen(9, 9)
	hover = Locate(x, y, series, geom, DefaultHoverRadius)
	require.NotNil(t, hover)
	assert.Equal(t, 0, hover.Age)
	assert.Equal(t, "now", FormatAge(hover.Age))
}

func TestLocate_Nearest(t *testing.T) {
	low := bufferOf(10, 10, 10, 10)
	high := bufferOf(10, 90, 90, 90)
	geom := geometryFor(t, 10, low, high)
	series := []Series{
		{Metric: metrics.CPUUsage, Buffer: low},
		{Metric: metrics.RAM, Buffer: high},
	}

	x, y := geom.ToScreen(1, 90)
	hover := Locate(x+1, y+2, series, geom, DefaultHoverRadius)

	require.NotNil(t, hover)
	assert.Equal(t, metrics.RAM, hover.Metric)
	assert.Equal(t, 1, hover.Index)
}

func TestLocate_TieGoesToLastScanned(t *testing.T) {
	a := bufferOf(10, 50, 50)
	b := bufferOf(10, 50, 50)
	geom := geometryFor(t, 10, a, b)
	x, y := geom.ToScreen(1, 50)
	series := []Series{
		{Metric: metrics.CPUUsage, Buffer: a},
		{Metric: metrics.Disk, Buffer: b},
	}

	hover := Locate(x, y, series, geom, DefaultHoverRadius)
	require.NotNil(t, hover)
	assert.Equal(t, metrics.Disk, hover.Metric)

	// Swapping the order swaps the winner
	hover = Locate(x, y, []Series{series[1], series[0]}, geom, DefaultHoverRadius)
	require.NotNil(t, hover)
	assert.Equal(t, metrics.CPUUsage, hover.Metric)
}

func TestLocate_RejectsPointsOutsidePlot(t *testing.T) {
	buf := bufferOf(10, 5, 20)
	// Domain deliberately narrower than the data
	geom := NewGeometry(1000, 400, 10, Domain{Min: 0, Max: 10}, DefaultLayout())
	x, y := geom.ToScreen(1, 20)
	require.False(t, geom.Contains(x, y))

	assert.Nil(t, Locate(x, y, []Series{{Metric: metrics.RAM, Buffer: buf}}, geom, DefaultHoverRadius))
}

func TestLocate_EmptyInputs(t *testing.T) {
	geom := NewGeometry(1000, 400, 10, Domain{Min: 0, Max: 10}, DefaultLayout())

	assert.Nil(t, Locate(200, 100, nil, geom, DefaultHoverRadius))
	assert.Nil(t, Locate(200, 100, []Series{{Metric: metrics.RAM, Buffer: bufferOf(10)}}, geom, DefaultHoverRadius))
	assert.Nil(t, Locate(200, 100, []Series{{Metric: metrics.RAM}}, geom, DefaultHoverRadius))
}

func TestSeriesOf(t *testing.T) {
	set := metrics.NewSeriesSet(5)

	all := SeriesOf(set, nil)
	require.Len(t, all, metrics.Count())
	assert.Equal(t, metrics.CPUTemp, all[0].Metric)
	assert.Same(t, set.Buffer(metrics.CPUTemp), all[0].Buffer)

	net := SeriesOf(set, func(m metrics.Metric) bool {
		return m == metrics.NetRecv || m == metrics.NetSent
	})
	require.Len(t, net, 2)
	assert.Equal(t, metrics.NetRecv, net[0].Metric)
	assert.Equal(t, metrics.NetSent, net[1].Metric)
}

func TestLocate_NewestSampleOnRightEdge(t *testing.T) {
	const capacity = 300
	buf := metrics.NewSeriesBuffer(capacity)
	for i := 0; i < capacity; i++ {
		buf.Push(float64(i % 50))
	}
	domain, ok := ComputeDomain(buf)
	require.True(t, ok)
	series := []Series{{Metric: metrics.CPUUsage, Buffer: buf}}
	newest, _ := buf.Latest()

	for w := 200; w <= 2000; w++ {
		geom := NewGeometry(float64(w), 400, capacity, domain, DefaultLayout())
		x, y := geom.ToScreen(capacity-1, newest)
		require.Equal(t, geom.Plot.Right(), x, "width %d", w)

		hover := Locate(x, y, series, geom, DefaultHoverRadius)
		require.NotNil(t, hover, "width %d", w)
		assert.Equal(t, capacity-1, hover.Index, "width %d", w)
		assert.Equal(t, 0, hover.Age, "width %d", w)
		assert.Equal(t, 0.0, hover.Distance, "width %d", w)
	}
}

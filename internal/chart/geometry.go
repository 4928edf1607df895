package chart

// Rect is an axis-aligned rectangle.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Right returns X + W.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns Y + H.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// PlotRect returns the plot area of a width x height surface: the surface
// minus the legend column and margins, never smaller than 1x1.
func PlotRect(width, height float64, layout Layout) Rect {
	left := layout.LegendWidth + layout.Margins.Left
	top := layout.Margins.Top
	return Rect{
		X: left,
		Y: top,
		W: max(1, width-left-layout.Margins.Right),
		H: max(1, height-top-layout.Margins.Bottom),
	}
}

// Geometry is the per-frame mapping from (sample index, value) to surface
// coordinates. It is rebuilt for every draw and every pointer query.
type Geometry struct {
	Width    float64
	Height   float64
	Plot     Rect
	Domain   Domain
	Capacity int
	// XStep is the horizontal distance between consecutive samples. It
	// depends on the configured capacity, not on how many samples exist, so
	// a partially filled history occupies the left part of the plot.
	XStep float64
}

// NewGeometry builds the geometry of a width x height surface.
func NewGeometry(width, height float64, capacity int, domain Domain, layout Layout) Geometry {
	plot := PlotRect(width, height, layout)
	return Geometry{
		Width:    width,
		Height:   height,
		Plot:     plot,
		Domain:   domain,
		Capacity: capacity,
		XStep:    plot.W / float64(max(1, capacity-1)),
	}
}

// ToScreen maps a sample to surface coordinates. Screen Y grows downward, so
// the domain maximum lands on the plot top and the minimum on its bottom.
// The last slot of a full history lands exactly on the plot's right edge.
func (g Geometry) ToScreen(index int, value float64) (x, y float64) {
	if last := g.Capacity - 1; last > 0 && index == last {
		x = g.Plot.Right()
	} else {
		x = g.Plot.X + g.Plot.W*float64(index)/float64(max(1, last))
	}
	y = g.Plot.Y + (1-(value-g.Domain.Min)/g.Domain.Span())*g.Plot.H
	return x, y
}

// ValueY maps a value alone to its screen Y.
func (g Geometry) ValueY(value float64) float64 {
	_, y := g.ToScreen(0, value)
	return y
}

// Contains reports whether (x, y) lies within the plot rectangle.
func (g Geometry) Contains(x, y float64) bool {
	return g.Plot.Contains(x, y)
}

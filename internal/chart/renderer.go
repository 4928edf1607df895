package chart

import (
	"fmt"
	"image/color"

	"github.com/symo-dev/symo/internal/metrics"
)

// Renderer paints one frame of the chart. It keeps no state between frames:
// the domain, geometry and every mapped point are recomputed on each call.
type Renderer struct {
	Layout Layout
	// Capacity sets the horizontal step. Zero uses the SeriesSet capacity.
	Capacity int
	// Colors overrides the per-metric series colors.
	Colors map[metrics.Metric]color.Color
	// Names returns the localized base name of a metric. Nil uses its name key.
	Names func(metrics.Metric) string
}

// NewRenderer creates a Renderer with default colors and names.
func NewRenderer(layout Layout, capacity int) *Renderer {
	return &Renderer{
		Layout:   layout,
		Capacity: capacity,
	}
}

// Color returns the series color of m.
func (r *Renderer) Color(m metrics.Metric) color.Color {
	if c, ok := r.Colors[m]; ok && c != nil {
		return c
	}
	return m.Color()
}

// Name returns the localized base name of m.
func (r *Renderer) Name(m metrics.Metric) string {
	if r.Names != nil {
		return r.Names(m)
	}
	return m.NameKey()
}

// InfoText returns the readout shown for a hovered sample, for example
// "CPU (%): 12.5% • 3s ago". It returns "" for a nil hover.
func (r *Renderer) InfoText(h *HoverState) string {
	if h == nil {
		return ""
	}
	m := h.Metric
	return fmt.Sprintf("%s: %s • %s", m.InfoName(r.Name(m)), m.FormatWithUnit(h.Value), FormatAge(h.Age))
}

// Geometry returns the geometry of the next frame on a w x h surface, or
// false when no series holds a sample yet.
func (r *Renderer) Geometry(w, h float64, set *metrics.SeriesSet) (Geometry, bool) {
	domain, ok := ComputeDomain(set.Buffers()...)
	if !ok {
		return Geometry{}, false
	}
	return NewGeometry(w, h, r.capacity(set), domain, r.Layout), true
}

func (r *Renderer) capacity(set *metrics.SeriesSet) int {
	if r.Capacity > 0 {
		return r.Capacity
	}
	return set.Capacity()
}

// Render draws a full frame: background, grid and axes, axis labels, series
// polylines, the hover guideline and marker, the legend and the hover
// readout. Series for which visible returns false are skipped; a nil visible
// draws everything. Before the first sample only the background is drawn.
func (r *Renderer) Render(s Surface, set *metrics.SeriesSet, visible func(metrics.Metric) bool, hover *HoverState) {
	w, h := s.Size()
	pal := r.Layout.Palette

	s.FillRect(0, 0, w, h, pal.Background)

	geom, ok := r.Geometry(w, h, set)
	if !ok {
		return
	}

	r.drawGrid(s, geom)
	r.drawAxisLabels(s, geom)

	for _, series := range SeriesOf(set, visible) {
		r.drawSeries(s, geom, series)
	}

	if hover != nil {
		r.drawHover(s, geom, hover)
	}

	r.drawLegend(s, visible)

	if hover != nil {
		r.drawInfo(s, geom, hover)
	}
}

func (r *Renderer) drawGrid(s Surface, geom Geometry) {
	l := r.Layout
	plot := geom.Plot

	divisions := max(1, l.GridDivisions)
	for i := 0; i <= divisions; i++ {
		y := plot.Y + plot.H*float64(i)/float64(divisions)
		s.Line(plot.X, y, plot.Right(), y, l.GridWidth, l.Palette.Grid)
	}

	s.Line(plot.X, plot.Y, plot.X, plot.Bottom(), l.AxisWidth, l.Palette.Axis)
	s.Line(plot.X, plot.Bottom(), plot.Right(), plot.Bottom(), l.AxisWidth, l.Palette.Axis)
}

func (r *Renderer) drawAxisLabels(s Surface, geom Geometry) {
	l := r.Layout
	d := geom.Domain
	for _, v := range []float64{d.Min, d.Mid(), d.Max} {
		y := geom.ValueY(v)
		s.Text(geom.Plot.X+l.LabelOffsetX, y+l.LabelOffsetY, FormatAxisLabel(v), l.LabelSize, l.Palette.Label)
	}
}

func (r *Renderer) drawSeries(s Surface, geom Geometry, series Series) {
	values := series.Buffer.Values()
	if len(values) < 2 {
		return
	}

	c := withAlpha(r.Color(series.Metric), r.Layout.SeriesAlpha)
	prevX, prevY := geom.ToScreen(0, values[0])
	prevOK := finite(values[0])
	for idx := 1; idx < len(values); idx++ {
		x, y := geom.ToScreen(idx, values[idx])
		ok := finite(values[idx])
		if ok && prevOK {
			s.Line(prevX, prevY, x, y, r.Layout.SeriesWidth, c)
		}
		prevX, prevY, prevOK = x, y, ok
	}
}

func (r *Renderer) drawHover(s Surface, geom Geometry, hover *HoverState) {
	l := r.Layout
	s.Line(hover.X, geom.Plot.Y, hover.X, geom.Plot.Bottom(), l.GuideWidth, l.Palette.Guide)
	s.FillCircle(hover.X, hover.Y, l.MarkerRadius, r.Color(hover.Metric))
}

func (r *Renderer) drawLegend(s Surface, visible func(metrics.Metric) bool) {
	l := r.Layout
	top := l.Margins.Top + l.LegendTop

	for i, m := range metrics.All() {
		y := top + float64(i)*l.LegendRowHeight

		swatch := withAlpha(r.Color(m), l.SeriesAlpha)
		text := l.Palette.LegendText
		if visible != nil && !visible(m) {
			swatch = l.Palette.Muted
			text = l.Palette.Muted
		}

		s.FillRect(l.LegendX, y+l.SwatchOffsetY, l.SwatchSize, l.SwatchSize, swatch)
		s.Text(l.LegendX+l.LegendTextGap, y+l.LegendTextDY, m.LegendName(r.Name(m)), l.LegendSize, text)
	}
}

func (r *Renderer) drawInfo(s Surface, geom Geometry, hover *HoverState) {
	l := r.Layout
	info := r.InfoText(hover)
	tw := s.TextWidth(info, l.InfoSize)
	x := (geom.Width - tw) / 2
	y := geom.Height - l.Margins.Bottom/2
	s.Text(x, y, info, l.InfoSize, l.Palette.Info)
}

func withAlpha(c color.Color, a uint8) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return n
}

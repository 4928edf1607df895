package chart

import "image/color"

// Margins around the plot rectangle, in surface units.
type Margins struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Palette holds the non-series colors of a frame.
type Palette struct {
	Background color.Color
	Grid       color.Color
	Axis       color.Color
	Label      color.Color
	LegendText color.Color
	Muted      color.Color
	Guide      color.Color
	Info       color.Color
}

// Layout fixes the placement and sizing of every chart element. Units are
// whatever the target surface measures in: pixels for raster images, braille
// dots for the terminal.
type Layout struct {
	// LegendWidth is the left column reserved for the legend.
	LegendWidth float64
	// Margins are applied after the legend column.
	Margins Margins

	GridDivisions int

	// Y labels are drawn at (plot left + LabelOffsetX, y + LabelOffsetY).
	LabelOffsetX float64
	LabelOffsetY float64
	LabelSize    float64

	// Legend rows start at (LegendX, Margins.Top + LegendTop).
	LegendX         float64
	LegendTop       float64
	LegendRowHeight float64
	SwatchSize      float64
	SwatchOffsetY   float64
	LegendTextGap   float64
	LegendTextDY    float64
	LegendSize      float64

	InfoSize float64

	GridWidth    float64
	AxisWidth    float64
	SeriesWidth  float64
	GuideWidth   float64
	MarkerRadius float64

	// SeriesAlpha is applied to series line and swatch colors.
	SeriesAlpha uint8

	Palette Palette
}

// DefaultPalette is the dark theme used on every surface.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 26, G: 26, B: 31, A: 255},
		Grid:       color.NRGBA{R: 255, G: 255, B: 255, A: 20},
		Axis:       color.NRGBA{R: 255, G: 255, B: 255, A: 64},
		Label:      color.NRGBA{R: 255, G: 255, B: 255, A: 179},
		LegendText: color.NRGBA{R: 255, G: 255, B: 255, A: 230},
		Muted:      color.NRGBA{R: 255, G: 255, B: 255, A: 60},
		Guide:      color.NRGBA{R: 255, G: 255, B: 255, A: 46},
		Info:       color.NRGBA{R: 255, G: 255, B: 255, A: 217},
	}
}

// DefaultLayout is the pixel layout used for raster surfaces.
func DefaultLayout() Layout {
	return Layout{
		LegendWidth: 60,
		Margins:     Margins{Left: 100, Top: 20, Right: 15, Bottom: 30},

		GridDivisions: 5,

		LabelOffsetX: -20,
		LabelOffsetY: 4,
		LabelSize:    10,

		LegendX:         12,
		LegendTop:       20,
		LegendRowHeight: 22,
		SwatchSize:      14,
		SwatchOffsetY:   -9,
		LegendTextGap:   20,
		LegendTextDY:    2,
		LegendSize:      11,

		InfoSize: 14,

		GridWidth:    1,
		AxisWidth:    1.2,
		SeriesWidth:  1.8,
		GuideWidth:   1,
		MarkerRadius: 3.5,

		SeriesAlpha: 242,

		Palette: DefaultPalette(),
	}
}

// TerminalLayout is the layout for braille surfaces, where one cell is
// 2 dots wide and 4 dots tall and text occupies whole cells.
func TerminalLayout() Layout {
	return Layout{
		LegendWidth: 26,
		Margins:     Margins{Left: 12, Top: 4, Right: 2, Bottom: 8},

		GridDivisions: 5,

		LabelOffsetX: -12,
		LabelOffsetY: 0,
		LabelSize:    1,

		LegendX:         0,
		LegendTop:       0,
		LegendRowHeight: 4,
		SwatchSize:      2,
		SwatchOffsetY:   0,
		LegendTextGap:   4,
		LegendTextDY:    0,
		LegendSize:      1,

		InfoSize: 1,

		GridWidth:    1,
		AxisWidth:    1,
		SeriesWidth:  1,
		GuideWidth:   1,
		MarkerRadius: 1,

		SeriesAlpha: 255,

		Palette: DefaultPalette(),
	}
}

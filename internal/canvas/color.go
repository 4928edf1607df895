// Package canvas provides chart.Surface implementations: a braille cell
// canvas for terminals and an RGBA raster for image export.
package canvas

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// flatten composites c over bg and returns an opaque color. Terminals have
// no alpha, so translucent chart colors are blended here.
func flatten(c, bg color.Color) colorful.Color {
	fg := color.NRGBAModel.Convert(c).(color.NRGBA)
	top := colorful.Color{
		R: float64(fg.R) / 255,
		G: float64(fg.G) / 255,
		B: float64(fg.B) / 255,
	}
	if fg.A == 255 || bg == nil {
		return top
	}

	base, _ := colorful.MakeColor(bg)
	return base.BlendRgb(top, float64(fg.A)/255).Clamped()
}

// terminalColor converts c, composited over bg, to a lipgloss color.
func terminalColor(c, bg color.Color) lipgloss.Color {
	return lipgloss.Color(flatten(c, bg).Hex())
}

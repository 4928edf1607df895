package chart

import "image/color"

// Surface is the immediate-mode drawing context a frame is painted on.
// Coordinates are in surface units with the origin at the top-left corner.
type Surface interface {
	// Size returns the drawable width and height.
	Size() (w, h float64)
	FillRect(x, y, w, h float64, c color.Color)
	Line(x1, y1, x2, y2, width float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	// Text draws s with its baseline starting at (x, y).
	Text(x, y float64, s string, size float64, c color.Color)
	TextWidth(s string, size float64) float64
}

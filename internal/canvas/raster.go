package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// asciiText replaces symbols the 7x13 bitmap face cannot draw.
var asciiText = strings.NewReplacer(
	"•", "-",
	"↓", "v",
	"↑", "^",
	"°", "",
)

// Raster is an RGBA image surface measured in pixels. Text uses the fixed
// 7x13 bitmap face; the requested size is ignored.
type Raster struct {
	img  *image.RGBA
	face font.Face
}

// NewRaster creates a transparent w x h image surface.
func NewRaster(w, h int) *Raster {
	return &Raster{
		img:  image.NewRGBA(image.Rect(0, 0, max(1, w), max(1, h))),
		face: basicfont.Face7x13,
	}
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Size returns the image size in pixels.
func (r *Raster) Size() (w, h float64) {
	b := r.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// FillRect composites c over the rectangle.
func (r *Raster) FillRect(x, y, w, h float64, c color.Color) {
	rect := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	)
	draw.Draw(r.img, rect, image.NewUniform(c), image.Point{}, draw.Over)
}

// Line strokes a segment of the given width. Every pixel whose center lies
// within width/2 of the segment is painted once.
func (r *Raster) Line(x1, y1, x2, y2, width float64, c color.Color) {
	if !finite(x1, y1, x2, y2) {
		return
	}
	half := math.Max(width, 1) / 2

	minX := int(math.Floor(math.Min(x1, x2) - half))
	maxX := int(math.Ceil(math.Max(x1, x2) + half))
	minY := int(math.Floor(math.Min(y1, y2) - half))
	maxY := int(math.Ceil(math.Max(y1, y2) + half))

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			if segmentDistance(float64(px)+0.5, float64(py)+0.5, x1, y1, x2, y2) <= half {
				r.blend(px, py, c)
			}
		}
	}
}

// FillCircle paints every pixel whose center lies within radius of (cx, cy).
func (r *Raster) FillCircle(cx, cy, radius float64, c color.Color) {
	if !finite(cx, cy, radius) {
		return
	}
	for py := int(math.Floor(cy - radius)); py <= int(math.Ceil(cy+radius)); py++ {
		for px := int(math.Floor(cx - radius)); px <= int(math.Ceil(cx+radius)); px++ {
			dx, dy := float64(px)+0.5-cx, float64(py)+0.5-cy
			if dx*dx+dy*dy <= radius*radius {
				r.blend(px, py, c)
			}
		}
	}
}

// Text draws s with its baseline at (x, y).
func (r *Raster) Text(x, y float64, s string, _ float64, c color.Color) {
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot:  fixed.Point26_6{X: fixed.I(round(x)), Y: fixed.I(round(y))},
	}
	d.DrawString(asciiText.Replace(s))
}

// TextWidth returns the advance of s in pixels.
func (r *Raster) TextWidth(s string, _ float64) float64 {
	return float64(font.MeasureString(r.face, asciiText.Replace(s)).Ceil())
}

// SavePNG writes the image to path. The format follows the extension.
func (r *Raster) SavePNG(path string) error {
	if err := imaging.Save(r.img, path); err != nil {
		return fmt.Errorf("failed to save chart image: %w", err)
	}
	return nil
}

// EncodePNG writes the image to w as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := imaging.Encode(w, r.img, imaging.PNG); err != nil {
		return fmt.Errorf("failed to encode chart image: %w", err)
	}
	return nil
}

// Preview renders the image into at most cols x rows terminal cells using
// upper half-blocks with 24-bit foreground and background colors.
func (r *Raster) Preview(cols, rows int) string {
	resized := imaging.Fit(r.img, max(1, cols), max(1, rows)*2, imaging.Lanczos)
	bounds := resized.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	var b strings.Builder
	for y := 0; y < h; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			top := resized.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
			var bot color.NRGBA
			if y+1 < h {
				bot = resized.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y+1)
			}
			fmt.Fprintf(&b, "\033[38;2;%d;%d;%dm\033[48;2;%d;%d;%dm▀\033[0m",
				top.R, top.G, top.B, bot.R, bot.G, bot.B)
		}
	}
	return b.String()
}

// blend composites c over the pixel at (x, y).
func (r *Raster) blend(x, y int, c color.Color) {
	if !image.Pt(x, y).In(r.img.Rect) {
		return
	}
	sr, sg, sb, sa := c.RGBA()
	if sa == 0 {
		return
	}
	d := r.img.RGBAAt(x, y)
	inv := 0xffff - sa
	over := func(dst uint8, src uint32) uint8 {
		return uint8((uint32(dst)*0x101*inv/0xffff + src) >> 8)
	}
	r.img.SetRGBA(x, y, color.RGBA{
		R: over(d.R, sr),
		G: over(d.G, sg),
		B: over(d.B, sb),
		A: over(d.A, sa),
	})
}

// segmentDistance returns the distance from (px, py) to the segment a-b.
func segmentDistance(px, py, ax, ay, bx, by float64) float64 {
	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = ((px-ax)*dx + (py-ay)*dy) / lenSq
		t = math.Max(0, math.Min(1, t))
	}
	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}

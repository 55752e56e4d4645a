// Package surface defines the 2D immediate-mode drawing target the particle
// field renders onto, plus a gg-backed canvas and an in-memory recorder.
package surface

import (
	"image/color"
	"math"

	"surreal/internal/core"

	"github.com/gogpu/gg"
)

// Surface is a viewport-sized drawing context. Implementations own their
// pixels; callers clear and redraw every frame.
type Surface interface {
	Size() core.Size
	// Resize changes the surface dimensions. Contents are discarded.
	Resize(size core.Size)
	// Clear repaints the whole surface with the page background.
	Clear()
	// FillGlow paints a disc whose colour is c at the centre and fully
	// transparent at radius.
	FillGlow(x, y, radius float64, c color.NRGBA)
	// StrokeLine draws a straight segment.
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)
}

// WithAlpha returns c with its alpha replaced by a in [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(a*255 + 0.5)
	return c
}

// Hex parses "#rrggbb" into an opaque colour.
func Hex(s string) color.NRGBA {
	return toNRGBA(gg.Hex(s))
}

func toNRGBA(c gg.RGBA) color.NRGBA {
	return color.NRGBA{R: unit8(c.R), G: unit8(c.G), B: unit8(c.B), A: unit8(c.A)}
}

func unit8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

func toRGBA(c color.NRGBA) gg.RGBA {
	return gg.RGBA2(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}

package surface

import (
	"image"
	"image/color"
	"io"

	"surreal/internal/core"
	"surreal/internal/logging"

	"github.com/gogpu/gg"
)

// BackgroundStops are the page gradient colours, painted at 45 degrees.
var BackgroundStops = []string{"#fff1f2", "#eff6ff", "#f5f3ff", "#fdf2f8"}

// backgroundBrush builds a 45 degree linear gradient running from the
// bottom-left corner to the top-right corner.
func backgroundBrush(size core.Size) *gg.LinearGradientBrush {
	w, h := float64(size.W), float64(size.H)
	cx, cy := w/2, h/2
	half := (w + h) / 4
	b := gg.NewLinearGradientBrush(cx-half, cy+half, cx+half, cy-half)
	last := float64(len(BackgroundStops) - 1)
	for i, hex := range BackgroundStops {
		b.AddColorStop(float64(i)/last, gg.Hex(hex))
	}
	return b
}

// RenderBackground rasterises the page background at the given size.
func RenderBackground(size core.Size) image.Image {
	size = atLeastOne(size)
	dc := gg.NewContext(size.W, size.H)
	defer dc.Close()
	dc.SetFillBrush(backgroundBrush(size))
	dc.DrawRectangle(0, 0, float64(size.W), float64(size.H))
	if err := dc.Fill(); err != nil {
		logging.Logger().Debug("background fill failed", "err", err)
	}
	return dc.Image()
}

// Canvas is a software Surface backed by a gg context.
type Canvas struct {
	dc       *gg.Context
	size     core.Size
	bg       *gg.LinearGradientBrush
	failures int
}

// NewCanvas allocates a canvas of the given size.
func NewCanvas(size core.Size) *Canvas {
	c := &Canvas{}
	c.Resize(size)
	return c
}

// Size returns the logical size last passed to Resize.
func (c *Canvas) Size() core.Size { return c.size }

// Resize reallocates the backing context. The new context starts out showing
// the background.
func (c *Canvas) Resize(size core.Size) {
	if c.dc != nil {
		_ = c.dc.Close()
	}
	c.size = size
	alloc := atLeastOne(size)
	c.dc = gg.NewContext(alloc.W, alloc.H)
	c.bg = backgroundBrush(alloc)
	c.Clear()
}

// Clear repaints the background gradient.
func (c *Canvas) Clear() {
	c.dc.SetFillBrush(c.bg)
	c.dc.DrawRectangle(0, 0, float64(c.dc.Width()), float64(c.dc.Height()))
	c.absorb(c.dc.Fill())
}

// FillGlow paints a radial gradient disc.
func (c *Canvas) FillGlow(x, y, radius float64, col color.NRGBA) {
	if radius <= 0 {
		return
	}
	edge := col
	edge.A = 0
	brush := gg.NewRadialGradientBrush(x, y, 0, radius).
		AddColorStop(0, toRGBA(col)).
		AddColorStop(1, toRGBA(edge))
	c.dc.SetFillBrush(brush)
	c.dc.DrawCircle(x, y, radius)
	c.absorb(c.dc.Fill())
}

// StrokeLine draws a solid segment.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col color.NRGBA) {
	c.dc.SetStrokeBrush(gg.Solid(toRGBA(col)))
	c.dc.SetLineWidth(width)
	c.dc.MoveTo(x0, y0)
	c.dc.LineTo(x1, y1)
	c.absorb(c.dc.Stroke())
}

// Failures counts draw calls the rasteriser rejected.
func (c *Canvas) Failures() int { return c.failures }

// Image returns the current pixels.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// EncodePNG writes the current pixels as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

// SavePNG writes the current pixels to a PNG file.
func (c *Canvas) SavePNG(path string) error { return c.dc.SavePNG(path) }

// Close releases the backing context.
func (c *Canvas) Close() error { return c.dc.Close() }

// absorb drops draw errors: a failed stroke must never reach the page.
func (c *Canvas) absorb(err error) {
	if err == nil {
		return
	}
	c.failures++
	logging.Logger().Debug("canvas draw failed", "err", err)
}

func atLeastOne(s core.Size) core.Size {
	if s.W < 1 {
		s.W = 1
	}
	if s.H < 1 {
		s.H = 1
	}
	return s
}

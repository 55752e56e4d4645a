//go:build ebiten

package render

import (
	"image/color"

	"surreal/internal/core"
	"surreal/internal/surface"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const spriteDiameter = 64

// Screen is a Surface backed by an offscreen ebiten image. The image keeps its
// contents between frames, so a frame that draws nothing shows the previous
// picture.
type Screen struct {
	size core.Size
	img  *ebiten.Image
	bg   *ebiten.Image
	glow *ebiten.Image
}

// NewScreen allocates an offscreen surface of the given size.
func NewScreen(size core.Size) *Screen {
	s := &Screen{glow: ebiten.NewImage(spriteDiameter, spriteDiameter)}
	s.glow.WritePixels(GlowPixels(spriteDiameter))
	s.Resize(size)
	return s
}

func (s *Screen) Size() core.Size { return s.size }

// Resize reallocates the offscreen image and re-renders the background. The
// new image starts out showing the background.
func (s *Screen) Resize(size core.Size) {
	s.size = size
	if s.img != nil {
		s.img.Deallocate()
		s.bg.Deallocate()
	}
	s.bg = ebiten.NewImageFromImage(surface.RenderBackground(size))
	b := s.bg.Bounds()
	s.img = ebiten.NewImage(b.Dx(), b.Dy())
	s.img.DrawImage(s.bg, nil)
}

func (s *Screen) Clear() {
	op := &ebiten.DrawImageOptions{}
	op.Blend = ebiten.BlendCopy
	s.img.DrawImage(s.bg, op)
}

func (s *Screen) FillGlow(x, y, radius float64, c color.NRGBA) {
	if radius <= 0 {
		return
	}
	k := 2 * radius / spriteDiameter
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(x-radius, y-radius)
	op.ColorScale.ScaleWithColor(c)
	op.Filter = ebiten.FilterLinear
	s.img.DrawImage(s.glow, op)
}

func (s *Screen) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

// Image returns the offscreen image to compose onto the window.
func (s *Screen) Image() *ebiten.Image { return s.img }

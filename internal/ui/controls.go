//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"surreal/internal/core"
	"surreal/internal/experience"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Controls renders the experience buttons in the bottom-right corner and
// forwards clicks to them.
type Controls struct {
	exp   *experience.Experience
	rects []image.Rectangle
	hover int
	pixel *ebiten.Image
}

// NewControls constructs the button stack for exp.
func NewControls(exp *experience.Experience) *Controls {
	c := &Controls{exp: exp, hover: -1}
	c.pixel = ebiten.NewImage(1, 1)
	c.pixel.Fill(color.White)
	return c
}

// Update lays the buttons out for the screen size and handles clicks. It
// reports whether a click landed on a button.
func (c *Controls) Update(screen core.Size) bool {
	if c == nil {
		return false
	}
	buttons := c.exp.Buttons()
	labels := make([]string, len(buttons))
	for i, b := range buttons {
		labels[i] = b.Label
	}
	c.rects = ButtonRects(screen, labels)

	mx, my := ebiten.CursorPosition()
	c.hover = HitTest(c.rects, mx, my)
	if c.hover < 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return c.exp.Press(c.hover) == nil
}

// Draw paints the buttons laid out by the last Update.
func (c *Controls) Draw(screen *ebiten.Image) {
	if c == nil {
		return
	}
	buttons := c.exp.Buttons()
	for i, rect := range c.rects {
		if i >= len(buttons) {
			break
		}
		c.drawButton(screen, rect, buttons[i].Label, i == c.hover)
	}
}

func (c *Controls) drawButton(dst *ebiten.Image, rect image.Rectangle, label string, hover bool) {
	bg := color.RGBA{R: 255, G: 255, B: 255, A: 204}
	fg := color.RGBA{R: 31, G: 41, B: 55, A: 255}
	if hover {
		bg = color.RGBA{R: 255, G: 255, B: 255, A: 242}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	dst.DrawImage(c.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, label, face, x, y, fg)
}

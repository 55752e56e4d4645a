//go:build ebiten

package ui

import (
	"image/color"

	"surreal/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// Overlay draws optional debugging visuals on top of the scene: a stats panel
// (key 1) and a crosshair on the last known pointer (key 2).
type Overlay struct {
	src           parameterProvider
	showStats     bool
	showCrosshair bool
	lines         []string
	panel         *ebiten.Image
}

// NewOverlay constructs an overlay reading parameters from src.
func NewOverlay(src parameterProvider) *Overlay {
	return &Overlay{src: src}
}

// Update handles the toggle keys and refreshes the panel text.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showStats = !o.showStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showCrosshair = !o.showCrosshair
	}
	if o.showStats && o.src != nil {
		o.lines = FormatSnapshot(o.src.Parameters())
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, pointer core.Pointer) {
	if o.showCrosshair && pointer.Valid() {
		o.drawCrosshair(screen, pointer)
	}
	if o.showStats {
		o.drawStats(screen)
	}
}

func (o *Overlay) drawCrosshair(screen *ebiten.Image, p core.Pointer) {
	const arm = 10
	clr := color.RGBA{R: 219, G: 39, B: 119, A: 255}
	x, y := float32(p.X), float32(p.Y)
	vector.StrokeLine(screen, x-arm, y, x+arm, y, 1, clr, true)
	vector.StrokeLine(screen, x, y-arm, x, y+arm, 1, clr, true)
	vector.StrokeCircle(screen, x, y, arm/2, 1, clr, true)
}

func (o *Overlay) drawStats(screen *ebiten.Image) {
	if len(o.lines) == 0 {
		return
	}
	const (
		padding = 8
		lineH   = 16
	)
	face := basicfont.Face7x13
	w := 0
	for _, l := range o.lines {
		if b := text.BoundString(face, l); b.Dx() > w {
			w = b.Dx()
		}
	}
	w += 2 * padding
	h := len(o.lines)*lineH + 2*padding
	if o.panel == nil || o.panel.Bounds().Dx() != w || o.panel.Bounds().Dy() != h {
		if o.panel != nil {
			o.panel.Deallocate()
		}
		o.panel = ebiten.NewImage(w, h)
	}
	o.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	for i, l := range o.lines {
		text.Draw(o.panel, l, face, padding, padding+(i+1)*lineH-4, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(screenMargin, screenMargin)
	screen.DrawImage(o.panel, op)
}

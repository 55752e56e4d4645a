// Package particles implements the drifting particle field: spawning,
// boundary reflection, proximity links and drawing onto a surface.
package particles

import (
	"image/color"

	"surreal/internal/core"
	"surreal/internal/surface"
)

// Palette holds the particle colours.
var Palette = []color.NRGBA{
	surface.Hex("#8b5cf6"),
	surface.Hex("#db2777"),
	surface.Hex("#2563eb"),
}

const (
	minSize   = 1.5
	sizeRange = 2.0
	maxSpeed  = 0.2
)

// Particle is a point in screen space moving by a fixed velocity per tick.
type Particle struct {
	X, Y   float64
	DX, DY float64
	Size   float64
	Color  color.NRGBA
}

// Spawn creates a particle at a random position inside bounds, inset from the
// top-left edges by twice its size. Surfaces smaller than the inset clamp the
// position to the bounds.
func Spawn(rng *core.RNG, bounds core.Size) Particle {
	size := rng.Float64()*sizeRange + minSize
	inset := size * 2
	w, h := float64(bounds.W), float64(bounds.H)
	return Particle{
		X:     clamp(rng.Float64()*(w-inset)+inset, 0, w),
		Y:     clamp(rng.Float64()*(h-inset)+inset, 0, h),
		DX:    rng.Range(-maxSpeed, maxSpeed),
		DY:    rng.Range(-maxSpeed, maxSpeed),
		Size:  size,
		Color: Palette[rng.IntN(len(Palette))],
	}
}

// Advance moves p by one tick. A velocity component whose next position would
// leave [0, extent] is negated first, then the velocity is applied and the
// position clamped, so the result is always inside bounds.
func Advance(p Particle, bounds core.Size) Particle {
	w, h := float64(bounds.W), float64(bounds.H)
	if nx := p.X + p.DX; nx > w || nx < 0 {
		p.DX = -p.DX
	}
	if ny := p.Y + p.DY; ny > h || ny < 0 {
		p.DY = -p.DY
	}
	p.X = clamp(p.X+p.DX, 0, w)
	p.Y = clamp(p.Y+p.DY, 0, h)
	return p
}

// Render paints p as a disc fading from its colour to transparent at twice
// its size.
func Render(p Particle, s surface.Surface) {
	s.FillGlow(p.X, p.Y, p.Size*2, p.Color)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

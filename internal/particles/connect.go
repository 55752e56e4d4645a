package particles

import (
	"image/color"

	"surreal/internal/core"
	"surreal/internal/surface"
)

const (
	// opacityFalloff is the squared distance at which a link fades out.
	opacityFalloff = 20000.0

	// ParticleLinkScale scales the opacity of particle-particle links.
	ParticleLinkScale = 0.3
	// PointerLinkScale scales the opacity of particle-pointer links.
	PointerLinkScale = 0.5

	linkWidth = 1.0
)

// LinkColor is the stroke colour of every link before opacity is applied.
var LinkColor = color.NRGBA{R: 55, G: 65, B: 81, A: 255}

// Opacity maps a squared distance to a stroke opacity. It works in squared
// space throughout and never returns a negative value.
func Opacity(dist2, scale float64) float64 {
	o := (1 - dist2/opacityFalloff) * scale
	if o < 0 {
		return 0
	}
	return o
}

// Link is a segment between a particle and either another particle or the
// pointer.
type Link struct {
	X0, Y0, X1, Y1 float64
	Alpha          float64
	Pointer        bool
}

// Connect visits every unordered particle pair once, a before b, and emits a
// link for each pair closer than threshold (squared). After a particle's pair
// scan it emits the particle's pointer link when the pointer is valid and
// close enough. It returns the number of pair links and pointer links.
func Connect(ps []Particle, pointer core.Pointer, threshold float64, emit func(Link)) (pairs, pointers int) {
	hasPointer := pointer.Valid()
	for a := range ps {
		pa := ps[a]
		for b := a + 1; b < len(ps); b++ {
			pb := ps[b]
			dx := pa.X - pb.X
			dy := pa.Y - pb.Y
			d2 := dx*dx + dy*dy
			if d2 >= threshold {
				continue
			}
			pairs++
			if emit != nil {
				emit(Link{X0: pa.X, Y0: pa.Y, X1: pb.X, Y1: pb.Y, Alpha: Opacity(d2, ParticleLinkScale)})
			}
		}
		if !hasPointer {
			continue
		}
		dx := pa.X - pointer.X
		dy := pa.Y - pointer.Y
		d2 := dx*dx + dy*dy
		if d2 >= threshold {
			continue
		}
		pointers++
		if emit != nil {
			emit(Link{X0: pa.X, Y0: pa.Y, X1: pointer.X, Y1: pointer.Y, Alpha: Opacity(d2, PointerLinkScale), Pointer: true})
		}
	}
	return pairs, pointers
}

// DrawLink strokes l onto s.
func DrawLink(s surface.Surface, l Link) {
	s.StrokeLine(l.X0, l.Y0, l.X1, l.Y1, linkWidth, surface.WithAlpha(LinkColor, l.Alpha))
}

package particles

import (
	"surreal/internal/core"
	"surreal/internal/logging"
	"surreal/internal/surface"
)

// Field owns a batch of particles sized for one surface and quality mode.
type Field struct {
	size      core.Size
	mode      core.Mode
	rng       *core.RNG
	particles []Particle
	batches   int
}

// NewField returns an empty field drawing randomness from seed.
func NewField(seed int64) *Field {
	return &Field{rng: core.NewRNG(seed), mode: core.ModeHigh}
}

// Regenerate discards every particle and spawns a fresh batch whose count is
// derived from the surface area and the mode density.
func (f *Field) Regenerate(size core.Size, mode core.Mode) {
	f.size = size
	f.mode = mode
	n := mode.ParticleCount(size)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = Spawn(f.rng, size)
	}
	f.batches++
	logging.Logger().Debug("particle field regenerated",
		"width", size.W, "height", size.H, "mode", mode.String(), "particles", n)
}

// Step advances every particle by one tick.
func (f *Field) Step() {
	for i, p := range f.particles {
		f.particles[i] = Advance(p, f.size)
	}
}

// Particles exposes the current batch. Callers must not retain it across
// Regenerate.
func (f *Field) Particles() []Particle { return f.particles }

// Len returns the number of particles.
func (f *Field) Len() int { return len(f.particles) }

// Size returns the bounds the batch was generated for.
func (f *Field) Size() core.Size { return f.size }

// Mode returns the mode the batch was generated for.
func (f *Field) Mode() core.Mode { return f.mode }

// Batches counts Regenerate calls.
func (f *Field) Batches() int { return f.batches }

// Stats describes one drawn frame.
type Stats struct {
	Particles    int
	Links        int
	PointerLinks int
}

// DrawScene renders one frame: clear, advance and draw every particle, then
// draw the proximity links for the mode's threshold.
func DrawScene(s surface.Surface, f *Field, pointer core.Pointer) Stats {
	s.Clear()
	f.Step()
	for _, p := range f.particles {
		Render(p, s)
	}
	pairs, pointers := Connect(f.particles, pointer, f.mode.ConnectDistance(), func(l Link) {
		DrawLink(s, l)
	})
	return Stats{Particles: len(f.particles), Links: pairs, PointerLinks: pointers}
}

// Parameters reports the field configuration for display.
func (f *Field) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Field",
		Params: []core.Parameter{
			core.StringParam("mode", "Mode", f.mode.String()),
			core.IntParam("particles", "Particles", len(f.particles)),
			core.IntParam("width", "Width", f.size.W),
			core.IntParam("height", "Height", f.size.H),
			core.FloatParam("connect_distance", "Link dist²", f.mode.ConnectDistance(), 0),
			core.IntParam("frame_stride", "Frame stride", f.mode.FrameStride()),
		},
	}}}
}

// Package follower implements the cursor follower rig: a few soft circles
// that chase the pointer, each eased by its own damped spring.
package follower

import (
	"image/color"
	"math"

	"surreal/internal/core"
	"surreal/internal/host"
	"surreal/internal/surface"

	"github.com/charmbracelet/harmonica"
)

// Spring is a physical spring profile.
type Spring struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// AngularFrequency returns sqrt(k/m).
func (s Spring) AngularFrequency() float64 {
	if s.Mass <= 0 || s.Stiffness <= 0 {
		return 0
	}
	return math.Sqrt(s.Stiffness / s.Mass)
}

// DampingRatio returns c / (2*sqrt(k*m)).
func (s Spring) DampingRatio() float64 {
	km := s.Stiffness * s.Mass
	if km <= 0 {
		return 0
	}
	return s.Damping / (2 * math.Sqrt(km))
}

// Config describes one follower circle.
type Config struct {
	Diameter float64
	// Color is the centre colour; it fades to transparent at the rim.
	Color  color.NRGBA
	Spring Spring
}

const fillAlpha = 0.5

// DefaultConfigs returns the three followers: large and slow to small and
// snappy.
func DefaultConfigs() []Config {
	return []Config{
		{Diameter: 60, Color: surface.WithAlpha(color.NRGBA{R: 168, G: 85, B: 247}, fillAlpha), Spring: Spring{Stiffness: 200, Damping: 20, Mass: 0.5}},
		{Diameter: 45, Color: surface.WithAlpha(color.NRGBA{R: 239, G: 68, B: 68}, fillAlpha), Spring: Spring{Stiffness: 400, Damping: 30, Mass: 0.5}},
		{Diameter: 30, Color: surface.WithAlpha(color.NRGBA{R: 59, G: 130, B: 246}, fillAlpha), Spring: Spring{Stiffness: 600, Damping: 40, Mass: 0.5}},
	}
}

type follower struct {
	cfg    Config
	spring harmonica.Spring
	x, y   float64
	vx, vy float64
}

// Rig animates a set of followers toward the shared pointer position.
type Rig struct {
	followers []follower
	target    core.Pointer
	placed    bool

	h       host.Host
	frame   host.FrameID
	pending bool
	remove  func()
}

// NewRig builds a rig stepping at fps frames per second.
func NewRig(fps int, cfgs []Config) *Rig {
	if fps <= 0 {
		fps = 60
	}
	r := &Rig{followers: make([]follower, len(cfgs))}
	for i, c := range cfgs {
		r.followers[i] = follower{
			cfg:    c,
			spring: harmonica.NewSpring(harmonica.FPS(fps), c.Spring.AngularFrequency(), c.Spring.DampingRatio()),
		}
	}
	return r
}

// Update advances every follower one frame toward pointer. Invalid pointers
// leave the followers where they are. The first valid pointer places the
// followers on it directly.
func (r *Rig) Update(pointer core.Pointer) {
	if pointer.Valid() {
		r.target = pointer
	}
	if !r.target.Valid() {
		return
	}
	if !r.placed {
		for i := range r.followers {
			r.followers[i].x, r.followers[i].y = r.target.X, r.target.Y
		}
		r.placed = true
		return
	}
	for i := range r.followers {
		f := &r.followers[i]
		f.x, f.vx = f.spring.Update(f.x, f.vx, r.target.X)
		f.y, f.vy = f.spring.Update(f.y, f.vy, r.target.Y)
	}
}

// Draw paints each follower centred on its current position. Nothing is drawn
// before a pointer position has been observed.
func (r *Rig) Draw(s surface.Surface) {
	if !r.placed {
		return
	}
	for _, f := range r.followers {
		s.FillGlow(f.x, f.y, f.cfg.Diameter/2, f.cfg.Color)
	}
}

// Positions returns follower centres, or nil before the first pointer.
func (r *Rig) Positions() []core.Pointer {
	if !r.placed {
		return nil
	}
	out := make([]core.Pointer, len(r.followers))
	for i, f := range r.followers {
		out[i] = core.At(f.x, f.y)
	}
	return out
}

// Mount subscribes to pointer moves and starts stepping once per frame.
// Drawing is left to the owner so the rig can share a surface.
func (r *Rig) Mount(h host.Host) {
	if r.h != nil {
		return
	}
	r.h = h
	r.remove = h.AddPointerListener(func(x, y float64) {
		if p := core.At(x, y); p.Valid() {
			r.target = p
		}
	})
	r.schedule()
}

// Unmount cancels the pending frame and removes the pointer listener.
func (r *Rig) Unmount() {
	if r.h == nil {
		return
	}
	if r.pending {
		r.h.CancelFrame(r.frame)
		r.pending = false
	}
	if r.remove != nil {
		r.remove()
		r.remove = nil
	}
	r.h = nil
}

// Mounted reports whether the rig is attached to a host.
func (r *Rig) Mounted() bool { return r.h != nil }

func (r *Rig) schedule() {
	r.frame = r.h.RequestFrame(r.tick)
	r.pending = true
}

func (r *Rig) tick() {
	r.pending = false
	if r.h == nil {
		return
	}
	r.Update(core.Pointer{})
	r.schedule()
}

// Package experience composes the animated page background: the particle
// field component, the optional cursor followers and the two toggles that
// control them.
package experience

import (
	"surreal/internal/core"
	"surreal/internal/host"
	"surreal/internal/logging"
	"surreal/internal/particles"
	"surreal/internal/surface"
)

// Options configures a Background at construction.
type Options struct {
	Running bool
	Mode    core.Mode
	Seed    int64
}

// Background is the particle field component. It is mounted into a host,
// draws on the host surface once per scheduled frame while running, and
// releases every registration on Unmount.
type Background struct {
	running bool
	mode    core.Mode

	field   *particles.Field
	pointer core.Pointer

	h       host.Host
	surf    surface.Surface
	frame   host.FrameID
	pending bool
	removes []func()

	frames  uint64
	redraws uint64
	stats   particles.Stats

	// afterDraw runs after each redraw on the same surface.
	afterDraw func(surface.Surface)
}

// NewBackground returns an unmounted background.
func NewBackground(opts Options) *Background {
	mode := opts.Mode
	if mode == "" {
		mode = core.ModeHigh
	}
	return &Background{
		running: opts.Running,
		mode:    mode,
		field:   particles.NewField(opts.Seed),
	}
}

// Mount attaches the background to h. When the host has no drawing surface
// the background stays inert: nothing is registered, scheduled or reported.
func (b *Background) Mount(h host.Host) {
	if b.h != nil {
		return
	}
	s, ok := h.Surface()
	if !ok {
		return
	}
	b.h = h
	b.surf = s
	b.frames = 0
	b.fit(h.Viewport())
	b.removes = append(b.removes,
		h.AddResizeListener(b.onResize),
		h.AddPointerListener(b.onPointer),
	)
	logging.Logger().Debug("background mounted",
		"mode", b.mode.String(), "running", b.running, "particles", b.field.Len())
	if b.running {
		b.schedule()
	}
}

// Unmount cancels any pending frame and removes every listener. It is safe to
// call more than once, and from inside a frame or event callback.
func (b *Background) Unmount() {
	if b.h == nil {
		return
	}
	b.cancel()
	for _, remove := range b.removes {
		remove()
	}
	b.removes = nil
	b.h = nil
	b.surf = nil
	logging.Logger().Debug("background unmounted", "frames", b.frames, "redraws", b.redraws)
}

// Mounted reports whether the background is attached to a host with a surface.
func (b *Background) Mounted() bool { return b.h != nil }

// SetRunning pauses or resumes the frame loop. Pausing cancels the pending
// frame; the last drawn picture stays on the surface. Resuming keeps the
// current particles.
func (b *Background) SetRunning(running bool) {
	if b.running == running {
		return
	}
	b.running = running
	if b.h == nil {
		return
	}
	if running {
		b.schedule()
		return
	}
	b.cancel()
}

// SetMode switches the quality preset and regenerates the particle batch.
func (b *Background) SetMode(mode core.Mode) {
	if b.mode == mode {
		return
	}
	b.mode = mode
	b.frames = 0
	if b.h == nil {
		return
	}
	b.field.Regenerate(b.surf.Size(), mode)
}

// Running reports whether the frame loop is active.
func (b *Background) Running() bool { return b.running }

// Mode returns the active quality preset.
func (b *Background) Mode() core.Mode { return b.mode }

// Frames returns the number of frame callbacks run since mount or the last
// mode switch, including skipped ones.
func (b *Background) Frames() uint64 { return b.frames }

// Redraws returns the number of frames actually drawn since construction.
func (b *Background) Redraws() uint64 { return b.redraws }

// Stats describes the last drawn frame.
func (b *Background) Stats() particles.Stats { return b.stats }

// Pointer returns the last known pointer position.
func (b *Background) Pointer() core.Pointer { return b.pointer }

// Field exposes the particle batch.
func (b *Background) Field() *particles.Field { return b.field }

// Parameters reports the field configuration and loop counters.
func (b *Background) Parameters() core.ParameterSnapshot {
	snap := b.field.Parameters()
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Loop",
		Params: []core.Parameter{
			core.BoolParam("running", "Running", b.running),
			core.IntParam("frames", "Frames", int(b.frames)),
			core.IntParam("redraws", "Redraws", int(b.redraws)),
			core.IntParam("links", "Links", b.stats.Links),
			core.IntParam("pointer_links", "Pointer links", b.stats.PointerLinks),
		},
	})
	return snap
}

func (b *Background) fit(size core.Size) {
	b.surf.Resize(size)
	b.field.Regenerate(size, b.mode)
}

func (b *Background) onResize(size core.Size) {
	if b.h == nil {
		return
	}
	b.fit(size)
}

func (b *Background) onPointer(x, y float64) {
	b.pointer = core.At(x, y)
}

func (b *Background) schedule() {
	b.frame = b.h.RequestFrame(b.tick)
	b.pending = true
}

func (b *Background) cancel() {
	if !b.pending {
		return
	}
	b.h.CancelFrame(b.frame)
	b.pending = false
}

// tick is one animation frame. The successor is scheduled before drawing so
// a frame that unmounts or pauses the component can cancel it.
func (b *Background) tick() {
	b.pending = false
	if !b.running || b.h == nil {
		return
	}
	b.schedule()
	b.frames++
	if stride := uint64(b.mode.FrameStride()); stride > 1 && b.frames%stride != 0 {
		return
	}
	b.draw(b.surf, b.field, b.pointer)
}

func (b *Background) draw(s surface.Surface, f *particles.Field, pointer core.Pointer) {
	b.stats = particles.DrawScene(s, f, pointer)
	b.redraws++
	if b.afterDraw != nil {
		b.afterDraw(s)
	}
}

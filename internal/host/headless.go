package host

import (
	"context"
	"time"

	"surreal/internal/core"
	"surreal/internal/surface"
)

// Headless is a Host without a window. Frames run when the owner pumps them.
type Headless struct {
	Runtime
	size core.Size
	surf surface.Surface
}

// NewHeadless returns a host with the given viewport. A nil surface models a
// host whose drawing context cannot be acquired.
func NewHeadless(size core.Size, s surface.Surface) *Headless {
	return &Headless{size: size, surf: s}
}

func (h *Headless) Viewport() core.Size { return h.size }

func (h *Headless) Surface() (surface.Surface, bool) {
	if h.surf == nil {
		return nil, false
	}
	return h.surf, true
}

// SetViewport changes the viewport and notifies resize listeners.
func (h *Headless) SetViewport(size core.Size) {
	h.size = size
	h.DispatchResize(size)
}

// MovePointer notifies pointer listeners.
func (h *Headless) MovePointer(x, y float64) { h.DispatchPointer(x, y) }

// Pump runs n frame batches and returns how many callbacks ran.
func (h *Headless) Pump(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += h.RunFrames()
	}
	return total
}

// Run delivers up to frames batches paced at fps. It returns early with nil
// once nothing is scheduled, or with the context error on cancellation.
func (h *Headless) Run(ctx context.Context, fps, frames int) error {
	step := core.NewFixedStep(fps).Step()
	ticker := time.NewTicker(step)
	defer ticker.Stop()
	for i := 0; i < frames; i++ {
		if h.Pending() == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			h.RunFrames()
		}
	}
	return nil
}

// Package host models the UI runtime a widget is mounted into: an
// animation-frame scheduler, pointer-move and resize notifications, and a
// viewport-sized drawing surface. Everything runs on one goroutine.
package host

import (
	"surreal/internal/core"
	"surreal/internal/surface"
)

// FrameID identifies a scheduled frame callback. Zero is never issued.
type FrameID uint64

// Host is what a mounted component may use.
type Host interface {
	Viewport() core.Size
	// Surface returns the drawing surface, or false when none is available.
	Surface() (surface.Surface, bool)
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
	AddPointerListener(fn func(x, y float64)) (remove func())
	AddResizeListener(fn func(size core.Size)) (remove func())
}

type frameReq struct {
	id FrameID
	fn func()
}

type listener[T any] struct {
	id uint64
	fn T
}

// Runtime is the frame queue and listener registry shared by concrete hosts.
// It is not safe for concurrent use.
type Runtime struct {
	nextFrame FrameID
	queue     []frameReq
	cancelled map[FrameID]struct{}

	nextListener uint64
	pointer      []listener[func(x, y float64)]
	resize       []listener[func(core.Size)]

	frames uint64
}

// RequestFrame queues fn for the next RunFrames batch.
func (r *Runtime) RequestFrame(fn func()) FrameID {
	r.nextFrame++
	r.queue = append(r.queue, frameReq{id: r.nextFrame, fn: fn})
	return r.nextFrame
}

// CancelFrame drops a queued callback. Unknown or already-run ids are ignored.
func (r *Runtime) CancelFrame(id FrameID) {
	for i, req := range r.queue {
		if req.id == id {
			r.queue = append(r.queue[:i], r.queue[i+1:]...)
			return
		}
	}
	if r.cancelled != nil {
		r.cancelled[id] = struct{}{}
	}
}

// RunFrames runs every callback queued before the call, in request order.
// Callbacks requested while running wait for the next batch. It returns the
// number of callbacks run.
func (r *Runtime) RunFrames() int {
	if len(r.queue) == 0 {
		return 0
	}
	batch := r.queue
	r.queue = nil
	r.cancelled = make(map[FrameID]struct{})
	ran := 0
	for _, req := range batch {
		if _, dead := r.cancelled[req.id]; dead {
			continue
		}
		req.fn()
		ran++
	}
	r.cancelled = nil
	r.frames++
	return ran
}

// Pending returns the number of queued callbacks.
func (r *Runtime) Pending() int { return len(r.queue) }

// Batches returns the number of non-empty RunFrames calls.
func (r *Runtime) Batches() uint64 { return r.frames }

// AddPointerListener registers fn for pointer moves.
func (r *Runtime) AddPointerListener(fn func(x, y float64)) func() {
	r.nextListener++
	id := r.nextListener
	r.pointer = append(r.pointer, listener[func(x, y float64)]{id: id, fn: fn})
	return func() { r.pointer = removeListener(r.pointer, id) }
}

// AddResizeListener registers fn for viewport resizes.
func (r *Runtime) AddResizeListener(fn func(core.Size)) func() {
	r.nextListener++
	id := r.nextListener
	r.resize = append(r.resize, listener[func(core.Size)]{id: id, fn: fn})
	return func() { r.resize = removeListener(r.resize, id) }
}

// DispatchPointer notifies pointer listeners.
func (r *Runtime) DispatchPointer(x, y float64) {
	for _, l := range snapshot(r.pointer) {
		if registered(r.pointer, l.id) {
			l.fn(x, y)
		}
	}
}

// DispatchResize notifies resize listeners.
func (r *Runtime) DispatchResize(size core.Size) {
	for _, l := range snapshot(r.resize) {
		if registered(r.resize, l.id) {
			l.fn(size)
		}
	}
}

// Listeners returns the number of registered pointer and resize listeners.
func (r *Runtime) Listeners() int { return len(r.pointer) + len(r.resize) }

func removeListener[T any](ls []listener[T], id uint64) []listener[T] {
	for i, l := range ls {
		if l.id == id {
			return append(ls[:i:i], ls[i+1:]...)
		}
	}
	return ls
}

func registered[T any](ls []listener[T], id uint64) bool {
	for _, l := range ls {
		if l.id == id {
			return true
		}
	}
	return false
}

// snapshot lets listeners add or remove listeners while being dispatched.
// Listeners removed mid-dispatch are skipped.
func snapshot[T any](ls []listener[T]) []listener[T] {
	return append([]listener[T](nil), ls...)
}

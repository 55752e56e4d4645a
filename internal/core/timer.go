package core

import "time"

// FixedStep gates animation-frame delivery at a steady frames-per-second rate
// regardless of how often the host loop polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep targeting the given rate. The first
// poll always fires.
func NewFixedStep(fps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetFPS(fps)
	fs.accumulator = fs.step
	return fs
}

// SetFPS changes the rate. Non-positive values fall back to 60.
func (f *FixedStep) SetFPS(fps int) {
	if fps <= 0 {
		fps = 60
	}
	f.step = time.Second / time.Duration(fps)
}

// Step returns the interval between frames.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether a frame is due. At most one frame is reported per
// call; a long stall does not produce a burst larger than one pending frame.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	return true
}

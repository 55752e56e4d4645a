package surface

import (
	"image/color"

	"surreal/internal/core"
)

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpClear OpKind = iota
	OpGlow
	OpLine
	OpResize
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpGlow:
		return "glow"
	case OpLine:
		return "line"
	case OpResize:
		return "resize"
	}
	return "unknown"
}

// Op is one recorded draw call. Fields not meaningful for a kind are zero.
type Op struct {
	Kind           OpKind
	X0, Y0, X1, Y1 float64
	Radius, Width  float64
	Color          color.NRGBA
}

// Recorder is a Surface that keeps every call in memory. Ops since the last
// Clear are retained; Counts accumulate for the recorder's lifetime.
type Recorder struct {
	size  core.Size
	ops   []Op
	clear int
	glows int
	lines int
}

// NewRecorder returns a recorder of the given logical size.
func NewRecorder(size core.Size) *Recorder { return &Recorder{size: size} }

func (r *Recorder) Size() core.Size { return r.size }

func (r *Recorder) Resize(size core.Size) {
	r.size = size
	r.ops = append(r.ops[:0], Op{Kind: OpResize, X1: float64(size.W), Y1: float64(size.H)})
}

func (r *Recorder) Clear() {
	r.clear++
	r.ops = append(r.ops[:0], Op{Kind: OpClear})
}

func (r *Recorder) FillGlow(x, y, radius float64, c color.NRGBA) {
	r.glows++
	r.ops = append(r.ops, Op{Kind: OpGlow, X0: x, Y0: y, Radius: radius, Color: c})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	r.lines++
	r.ops = append(r.ops, Op{Kind: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: c})
}

// Ops returns the calls made since the last Clear or Resize.
func (r *Recorder) Ops() []Op { return r.ops }

// Frame returns the ops of the given kind since the last Clear.
func (r *Recorder) Frame(kind OpKind) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Clears returns the total number of Clear calls.
func (r *Recorder) Clears() int { return r.clear }

// Glows returns the total number of FillGlow calls.
func (r *Recorder) Glows() int { return r.glows }

// Lines returns the total number of StrokeLine calls.
func (r *Recorder) Lines() int { return r.lines }

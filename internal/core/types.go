package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownMode is returned when a quality mode name cannot be parsed.
var ErrUnknownMode = errors.New("core: unknown quality mode")

// Size describes the dimensions of a drawing surface in pixels.
type Size struct {
	W int
	H int
}

// Area returns W*H, or zero for degenerate sizes.
func (s Size) Area() int {
	if s.Empty() {
		return 0
	}
	return s.W * s.H
}

// Empty reports whether the size has no drawable pixels.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Mode selects one of the two quality presets of the particle field.
type Mode string

const (
	// ModeHigh draws every frame with the dense particle population.
	ModeHigh Mode = "high"
	// ModeSmooth halves the redraw rate and thins the population.
	ModeSmooth Mode = "smooth"
)

const (
	highDensity   = 20000.0
	smoothDensity = 35000.0

	highConnect   = 160 * 160
	smoothConnect = 120 * 120
)

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeHigh, ModeSmooth:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m Mode) String() string { return string(m) }

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeSmooth {
		return ModeHigh
	}
	return ModeSmooth
}

// Density is the surface area in px² that accounts for one particle.
func (m Mode) Density() float64 {
	if m == ModeSmooth {
		return smoothDensity
	}
	return highDensity
}

// ConnectDistance is the squared distance below which two points are linked.
func (m Mode) ConnectDistance() float64 {
	if m == ModeSmooth {
		return smoothConnect
	}
	return highConnect
}

// FrameStride is the number of scheduled frames per redraw.
func (m Mode) FrameStride() int {
	if m == ModeSmooth {
		return 2
	}
	return 1
}

// ParticleCount returns floor(area / density) for the given surface.
func (m Mode) ParticleCount(s Size) int {
	return int(math.Floor(float64(s.Area()) / m.Density()))
}

// Pointer is the last known cursor coordinate.
type Pointer struct {
	X, Y  float64
	Known bool
}

// At returns a known pointer at (x, y).
func At(x, y float64) Pointer { return Pointer{X: x, Y: y, Known: true} }

// Valid reports whether the pointer has been observed and holds finite
// coordinates.
func (p Pointer) Valid() bool {
	if !p.Known {
		return false
	}
	return finite(p.X) && finite(p.Y)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

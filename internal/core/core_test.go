package core

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestParseMode(t *testing.T) {
	for _, name := range []string{"high", "smooth"} {
		m, err := ParseMode(name)
		if err != nil {
			t.Fatalf("ParseMode(%q) failed: %v", name, err)
		}
		if m.String() != name {
			t.Fatalf("ParseMode(%q) = %q", name, m)
		}
	}
	if _, err := ParseMode("ultra"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestModePresets(t *testing.T) {
	tests := []struct {
		mode      Mode
		threshold float64
		stride    int
		toggled   Mode
	}{
		{ModeHigh, 25600, 1, ModeSmooth},
		{ModeSmooth, 14400, 2, ModeHigh},
	}
	for _, tt := range tests {
		if got := tt.mode.ConnectDistance(); got != tt.threshold {
			t.Errorf("%s: threshold %v, want %v", tt.mode, got, tt.threshold)
		}
		if got := tt.mode.FrameStride(); got != tt.stride {
			t.Errorf("%s: stride %d, want %d", tt.mode, got, tt.stride)
		}
		if got := tt.mode.Toggle(); got != tt.toggled {
			t.Errorf("%s: toggle %s, want %s", tt.mode, got, tt.toggled)
		}
	}
}

func TestParticleCount(t *testing.T) {
	tests := []struct {
		mode Mode
		size Size
		want int
	}{
		{ModeHigh, Size{800, 600}, 24},
		{ModeSmooth, Size{800, 600}, 13},
		{ModeHigh, Size{1920, 1080}, 103},
		{ModeSmooth, Size{1920, 1080}, 59},
		{ModeHigh, Size{100, 100}, 0},
		{ModeHigh, Size{0, 600}, 0},
		{ModeHigh, Size{-5, 600}, 0},
	}
	for _, tt := range tests {
		if got := tt.mode.ParticleCount(tt.size); got != tt.want {
			t.Errorf("%s %v: got %d particles, want %d", tt.mode, tt.size, got, tt.want)
		}
	}
}

func TestPointerValid(t *testing.T) {
	if (Pointer{}).Valid() {
		t.Fatal("zero pointer must be unknown")
	}
	if !At(0, 0).Valid() {
		t.Fatal("origin is a valid pointer position")
	}
	if At(math.NaN(), 4).Valid() {
		t.Fatal("NaN coordinate must be rejected")
	}
	if At(3, math.Inf(1)).Valid() {
		t.Fatal("infinite coordinate must be rejected")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 32; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("sequence diverged at %d", i)
		}
	}
	r := NewRNG(3)
	for i := 0; i < 1000; i++ {
		v := r.Range(-0.2, 0.2)
		if v < -0.2 || v >= 0.2 {
			t.Fatalf("Range produced %v outside [-0.2, 0.2)", v)
		}
	}
	if r.IntN(0) != 0 {
		t.Fatal("IntN(0) must be 0")
	}
}

func TestFixedStepGatesFrames(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(50)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first poll must fire")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, frame must not fire")
	}
	clock = clock.Add(fs.Step())
	if !fs.ShouldStep() {
		t.Fatal("a full step elapsed, frame must fire")
	}

	// A long stall leaves at most one extra frame pending.
	clock = clock.Add(10 * fs.Step())
	fired := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep() {
			fired++
		}
	}
	if fired != 2 {
		t.Fatalf("expected 2 frames after stall, got %d", fired)
	}
}

func TestParameterLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{{
		Name:   "Field",
		Params: []Parameter{IntParam("particles", "Particles", 24), StringParam("mode", "Mode", "high")},
	}}}
	p, ok := snap.Lookup("particles")
	if !ok || p.Value != "24" {
		t.Fatalf("lookup particles = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("missing key must not be found")
	}
}

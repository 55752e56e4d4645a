package follower

import (
	"math"
	"testing"

	"surreal/internal/core"
	"surreal/internal/host"
	"surreal/internal/surface"
)

func TestSpringConversion(t *testing.T) {
	tests := []struct {
		spring Spring
		omega  float64
		zeta   float64
	}{
		{Spring{Stiffness: 200, Damping: 20, Mass: 0.5}, 20, 1},
		{Spring{Stiffness: 400, Damping: 30, Mass: 0.5}, math.Sqrt(800), 30 / (2 * math.Sqrt(200))},
		{Spring{Stiffness: 0, Damping: 10, Mass: 1}, 0, 0},
	}
	for _, tt := range tests {
		if got := tt.spring.AngularFrequency(); math.Abs(got-tt.omega) > 1e-9 {
			t.Errorf("%+v: omega %v, want %v", tt.spring, got, tt.omega)
		}
		if got := tt.spring.DampingRatio(); math.Abs(got-tt.zeta) > 1e-9 {
			t.Errorf("%+v: zeta %v, want %v", tt.spring, got, tt.zeta)
		}
	}
}

func TestDefaultConfigs(t *testing.T) {
	cfgs := DefaultConfigs()
	if len(cfgs) != 3 {
		t.Fatalf("expected three followers, got %d", len(cfgs))
	}
	for i := 1; i < len(cfgs); i++ {
		if cfgs[i].Diameter >= cfgs[i-1].Diameter {
			t.Errorf("follower %d should be smaller than follower %d", i, i-1)
		}
		if cfgs[i].Spring.Stiffness <= cfgs[i-1].Spring.Stiffness {
			t.Errorf("follower %d should be stiffer than follower %d", i, i-1)
		}
	}
	for _, c := range cfgs {
		if c.Color.A != 128 {
			t.Errorf("fill alpha %d, want 128", c.Color.A)
		}
	}
}

func TestRigDrawsNothingBeforePointer(t *testing.T) {
	rig := NewRig(60, DefaultConfigs())
	rec := surface.NewRecorder(core.Size{W: 100, H: 100})
	rig.Update(core.Pointer{})
	rig.Update(core.At(math.NaN(), 3))
	rig.Draw(rec)
	if rec.Glows() != 0 || rig.Positions() != nil {
		t.Fatal("followers must stay hidden until a pointer is observed")
	}
}

func TestRigSnapsThenConverges(t *testing.T) {
	rig := NewRig(60, DefaultConfigs())
	rig.Update(core.At(10, 10))
	for _, p := range rig.Positions() {
		if p.X != 10 || p.Y != 10 {
			t.Fatalf("first observation should place followers on the pointer, got %+v", p)
		}
	}

	rig.Update(core.At(200, 100))
	first := rig.Positions()
	for i, p := range first {
		if p.X <= 10 || p.X >= 200 {
			t.Fatalf("follower %d should be between start and target after one frame, x=%v", i, p.X)
		}
	}
	// The stiffest spring moves furthest in the first frame.
	if !(first[2].X > first[1].X && first[1].X > first[0].X) {
		t.Fatalf("expected stiffer springs to lead: %v", first)
	}

	for i := 0; i < 240; i++ {
		rig.Update(core.Pointer{})
	}
	for i, p := range rig.Positions() {
		if math.Abs(p.X-200) > 0.5 || math.Abs(p.Y-100) > 0.5 {
			t.Fatalf("follower %d did not settle on target: %+v", i, p)
		}
	}

	rec := surface.NewRecorder(core.Size{W: 300, H: 300})
	rig.Draw(rec)
	glows := rec.Frame(surface.OpGlow)
	if len(glows) != 3 {
		t.Fatalf("expected 3 follower discs, got %d", len(glows))
	}
	if glows[0].Radius != 30 || glows[2].Radius != 15 {
		t.Fatalf("disc radii %v and %v, want 30 and 15", glows[0].Radius, glows[2].Radius)
	}
}

func TestRigMountLifecycle(t *testing.T) {
	h := host.NewHeadless(core.Size{W: 100, H: 100}, nil)
	rig := NewRig(60, DefaultConfigs())
	rig.Mount(h)
	if !rig.Mounted() || h.Listeners() != 1 || h.Pending() != 1 {
		t.Fatalf("mount should register one listener and one frame: listeners=%d pending=%d", h.Listeners(), h.Pending())
	}

	h.MovePointer(50, 50)
	h.Pump(1)
	if ps := rig.Positions(); len(ps) != 3 || ps[0].X != 50 {
		t.Fatalf("rig should follow host pointer, got %v", ps)
	}

	rig.Unmount()
	if rig.Mounted() || h.Listeners() != 0 || h.Pending() != 0 {
		t.Fatalf("unmount must release everything: listeners=%d pending=%d", h.Listeners(), h.Pending())
	}
	h.MovePointer(90, 90)
	h.Pump(5)
	if ps := rig.Positions(); ps[0].X != 50 {
		t.Fatalf("rig moved after unmount: %v", ps)
	}
	rig.Unmount()
}

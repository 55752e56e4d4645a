package experience

import (
	"testing"

	"surreal/internal/core"
	"surreal/internal/host"
	"surreal/internal/surface"
)

func mounted(t *testing.T, opts Options, size core.Size) (*Background, *host.Headless, *surface.Recorder) {
	t.Helper()
	rec := surface.NewRecorder(core.Size{})
	h := host.NewHeadless(size, rec)
	b := NewBackground(opts)
	b.Mount(h)
	if !b.Mounted() {
		t.Fatal("background should mount on a host with a surface")
	}
	return b, h, rec
}

func TestMountSizesAndPopulates(t *testing.T) {
	tests := []struct {
		mode core.Mode
		want int
	}{
		{core.ModeHigh, 24},
		{core.ModeSmooth, 13},
	}
	for _, tt := range tests {
		b, h, rec := mounted(t, Options{Running: true, Mode: tt.mode, Seed: 1}, core.Size{W: 800, H: 600})
		if rec.Size() != (core.Size{W: 800, H: 600}) {
			t.Fatalf("%s: surface not sized to viewport: %v", tt.mode, rec.Size())
		}
		if b.Field().Len() != tt.want {
			t.Fatalf("%s: %d particles, want %d", tt.mode, b.Field().Len(), tt.want)
		}
		if h.Listeners() != 2 || h.Pending() != 1 {
			t.Fatalf("%s: listeners=%d pending=%d", tt.mode, h.Listeners(), h.Pending())
		}
	}
}

func TestHighModeDrawsEveryFrame(t *testing.T) {
	b, h, rec := mounted(t, Options{Running: true, Mode: core.ModeHigh, Seed: 2}, core.Size{W: 800, H: 600})
	h.Pump(5)
	if b.Frames() != 5 || b.Redraws() != 5 || rec.Clears() != 5 {
		t.Fatalf("frames=%d redraws=%d clears=%d, want 5 each", b.Frames(), b.Redraws(), rec.Clears())
	}
	if got := len(rec.Frame(surface.OpGlow)); got != 24 {
		t.Fatalf("last frame drew %d discs, want 24", got)
	}
	if b.Stats().Particles != 24 {
		t.Fatalf("stats report %d particles", b.Stats().Particles)
	}
}

func TestSmoothModeSkipsOddFrames(t *testing.T) {
	b, h, rec := mounted(t, Options{Running: true, Mode: core.ModeSmooth, Seed: 3}, core.Size{W: 800, H: 600})

	h.Pump(1)
	if b.Frames() != 1 || b.Redraws() != 0 {
		t.Fatalf("frame 1 must be skipped: frames=%d redraws=%d", b.Frames(), b.Redraws())
	}
	if h.Pending() != 1 {
		t.Fatal("a skipped frame still schedules its successor")
	}
	h.Pump(1)
	if b.Redraws() != 1 {
		t.Fatalf("frame 2 must draw, redraws=%d", b.Redraws())
	}
	h.Pump(8)
	if b.Frames() != 10 || b.Redraws() != 5 || rec.Clears() != 5 {
		t.Fatalf("frames=%d redraws=%d clears=%d", b.Frames(), b.Redraws(), rec.Clears())
	}
}

func TestSmoothModeMovesParticlesOnlyOnDrawnFrames(t *testing.T) {
	b, h, _ := mounted(t, Options{Running: true, Mode: core.ModeSmooth, Seed: 4}, core.Size{W: 800, H: 600})
	before := append([]core.Pointer(nil), positions(b)...)
	h.Pump(1)
	after := positions(b)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("particle %d moved on a skipped frame", i)
		}
	}
}

func positions(b *Background) []core.Pointer {
	ps := b.Field().Particles()
	out := make([]core.Pointer, len(ps))
	for i, p := range ps {
		out[i] = core.At(p.X, p.Y)
	}
	return out
}

func TestPauseAndResume(t *testing.T) {
	b, h, rec := mounted(t, Options{Running: true, Mode: core.ModeHigh, Seed: 5}, core.Size{W: 400, H: 300})
	h.Pump(3)
	b.SetRunning(false)
	if h.Pending() != 0 {
		t.Fatalf("pause must cancel the pending frame, pending=%d", h.Pending())
	}
	kept := positions(b)
	clears := rec.Clears()
	h.Pump(10)
	if rec.Clears() != clears || b.Frames() != 3 {
		t.Fatal("paused background drew or counted frames")
	}

	b.SetRunning(true)
	if h.Pending() != 1 {
		t.Fatal("resume must schedule a frame")
	}
	resumed := positions(b)
	for i := range kept {
		if kept[i] != resumed[i] {
			t.Fatal("resume must keep the particle batch")
		}
	}
	h.Pump(2)
	if b.Frames() != 5 {
		t.Fatalf("frames=%d after resume, want 5", b.Frames())
	}
	b.SetRunning(true)
	if h.Pending() != 1 {
		t.Fatal("setting the same running state must not schedule twice")
	}
}

func TestMountedPaused(t *testing.T) {
	b, h, rec := mounted(t, Options{Running: false, Mode: core.ModeHigh, Seed: 6}, core.Size{W: 400, H: 300})
	if h.Pending() != 0 {
		t.Fatal("a paused mount must not schedule frames")
	}
	h.Pump(3)
	if rec.Clears() != 0 || b.Redraws() != 0 {
		t.Fatal("paused mount drew")
	}
	if b.Field().Len() != 6 {
		t.Fatalf("paused mount still populates, got %d", b.Field().Len())
	}
}

func TestModeSwitchRegenerates(t *testing.T) {
	b, h, _ := mounted(t, Options{Running: true, Mode: core.ModeHigh, Seed: 7}, core.Size{W: 800, H: 600})
	h.Pump(3)
	batches := b.Field().Batches()
	b.SetMode(core.ModeSmooth)
	if b.Field().Len() != 13 || b.Field().Batches() != batches+1 {
		t.Fatalf("mode switch should regenerate 13 particles, got %d", b.Field().Len())
	}
	if b.Frames() != 0 {
		t.Fatalf("mode switch resets the frame counter, got %d", b.Frames())
	}
	h.Pump(1)
	if b.Redraws() != 3 {
		t.Fatalf("first frame after switching to smooth is skipped, redraws=%d", b.Redraws())
	}
	if h.Pending() != 1 {
		t.Fatal("mode switch must not disturb the loop")
	}
}

func TestResizeRegenerates(t *testing.T) {
	b, h, rec := mounted(t, Options{Running: true, Mode: core.ModeHigh, Seed: 8}, core.Size{W: 800, H: 600})
	h.SetViewport(core.Size{W: 1920, H: 1080})
	if rec.Size() != (core.Size{W: 1920, H: 1080}) {
		t.Fatalf("surface not resized: %v", rec.Size())
	}
	if b.Field().Len() != 103 {
		t.Fatalf("resize should regenerate 103 particles, got %d", b.Field().Len())
	}
	h.SetViewport(core.Size{})
	if b.Field().Len() != 0 {
		t.Fatal("an empty viewport holds no particles")
	}
	h.Pump(2)
	if b.Stats().Particles != 0 || b.Stats().Links != 0 {
		t.Fatalf("empty field drew %+v", b.Stats())
	}
}

func TestPointerLinks(t *testing.T) {
	b, h, _ := mounted(t, Options{Running: true, Mode: core.ModeHigh, Seed: 9}, core.Size{W: 200, H: 200})
	h.Pump(1)
	if b.Stats().PointerLinks != 0 {
		t.Fatal("no pointer links before the pointer is known")
	}
	h.MovePointer(100, 100)
	if b.Pointer() != core.At(100, 100) {
		t.Fatalf("pointer not tracked: %+v", b.Pointer())
	}
	h.Pump(1)
	// Every particle of a 200x200 field lies within 160px of its centre.
	if got, want := b.Stats().PointerLinks, b.Field().Len(); want == 0 || got != want {
		t.Fatalf("pointer links %d, want %d", got, want)
	}
}

func TestUnmountReleasesEverything(t *testing.T) {
	b, h, rec := mounted(t, Options{Running: true, Mode: core.ModeHigh, Seed: 10}, core.Size{W: 400, H: 300})
	h.Pump(2)
	b.Unmount()
	if h.Pending() != 0 || h.Listeners() != 0 {
		t.Fatalf("pending=%d listeners=%d after unmount", h.Pending(), h.Listeners())
	}
	clears := rec.Clears()
	h.MovePointer(10, 10)
	h.SetViewport(core.Size{W: 800, H: 600})
	h.Pump(5)
	if rec.Clears() != clears || b.Field().Len() != 6 {
		t.Fatal("unmounted background reacted to host events")
	}
	b.Unmount()
}

func TestRemountRestartsFrameCounter(t *testing.T) {
	b, h, _ := mounted(t, Options{Running: true, Mode: core.ModeSmooth, Seed: 12}, core.Size{W: 400, H: 300})
	h.Pump(3)
	b.Unmount()
	b.Mount(h)
	if b.Frames() != 0 {
		t.Fatalf("frames=%d after remount, want 0", b.Frames())
	}
	h.Pump(1)
	if b.Redraws() != 1 {
		t.Fatalf("first frame after remount in smooth mode is skipped, redraws=%d", b.Redraws())
	}
	h.Pump(1)
	if b.Frames() != 2 || b.Redraws() != 2 {
		t.Fatalf("frames=%d redraws=%d, want 2 and 2", b.Frames(), b.Redraws())
	}
}

func TestUnmountFromFrameCallback(t *testing.T) {
	b, h, _ := mounted(t, Options{Running: true, Mode: core.ModeHigh, Seed: 11}, core.Size{W: 400, H: 300})
	b.afterDraw = func(surface.Surface) { b.Unmount() }
	h.Pump(1)
	if b.Mounted() || h.Pending() != 0 || h.Listeners() != 0 {
		t.Fatalf("unmount inside a frame left pending=%d listeners=%d", h.Pending(), h.Listeners())
	}
	h.Pump(3)
	if b.Redraws() != 1 {
		t.Fatalf("redraws=%d, want 1", b.Redraws())
	}
}

func TestSurfaceUnavailable(t *testing.T) {
	h := host.NewHeadless(core.Size{W: 800, H: 600}, nil)
	b := NewBackground(Options{Running: true, Mode: core.ModeHigh})
	b.Mount(h)
	if b.Mounted() || h.Pending() != 0 || h.Listeners() != 0 {
		t.Fatal("no surface must leave the background inert")
	}
	b.SetRunning(false)
	b.SetRunning(true)
	b.SetMode(core.ModeSmooth)
	if h.Pending() != 0 {
		t.Fatal("toggles on an inert background must not schedule")
	}
	b.Unmount()
}

func TestExperienceDefaults(t *testing.T) {
	e := New(DefaultExperienceConfig())
	if !e.Running() || e.Mode() != core.ModeHigh || e.Followers() {
		t.Fatalf("unexpected defaults: running=%v mode=%s followers=%v", e.Running(), e.Mode(), e.Followers())
	}
	buttons := e.Buttons()
	if len(buttons) != 2 || buttons[0].Label != "Pause Animations" || buttons[1].Label != "Switch to Smooth Mode" {
		t.Fatalf("unexpected buttons: %+v", buttons)
	}
}

func TestExperienceButtons(t *testing.T) {
	rec := surface.NewRecorder(core.Size{})
	h := host.NewHeadless(core.Size{W: 800, H: 600}, rec)
	e := New(DefaultExperienceConfig())
	e.Mount(h)

	if err := e.Press(0); err != nil {
		t.Fatal(err)
	}
	if e.Running() || e.Buttons()[0].Label != "Resume Animations" || h.Pending() != 0 {
		t.Fatal("first button should pause")
	}
	if err := e.Press(1); err != nil {
		t.Fatal(err)
	}
	if e.Mode() != core.ModeSmooth || e.Buttons()[1].Label != "Switch to High Quality" {
		t.Fatal("second button should switch to smooth")
	}
	if e.Background().Field().Len() != 13 {
		t.Fatalf("smooth mode while paused still regenerates, got %d", e.Background().Field().Len())
	}
	e.ToggleRunning()
	e.ToggleMode()
	if !e.Running() || e.Mode() != core.ModeHigh {
		t.Fatal("toggles should round trip")
	}
	if err := e.Press(2); err == nil {
		t.Fatal("expected error for missing button")
	}
	if err := e.Press(-1); err == nil {
		t.Fatal("expected error for negative index")
	}
	e.Unmount()
	if h.Pending() != 0 || h.Listeners() != 0 {
		t.Fatal("experience unmount must release the host")
	}
}

func TestExperienceFollowers(t *testing.T) {
	rec := surface.NewRecorder(core.Size{})
	h := host.NewHeadless(core.Size{W: 200, H: 200}, rec)
	cfg := DefaultExperienceConfig()
	cfg.Followers = true
	e := New(cfg)
	e.Mount(h)
	if !e.Rig().Mounted() || h.Listeners() != 3 {
		t.Fatalf("follower rig should mount with the background, listeners=%d", h.Listeners())
	}

	h.MovePointer(100, 100)
	h.Pump(2)
	glows := rec.Frame(surface.OpGlow)
	n := e.Background().Field().Len()
	if len(glows) != n+3 {
		t.Fatalf("expected %d particle discs plus 3 followers, got %d", n, len(glows))
	}
	last := glows[len(glows)-1]
	if last.X0 != 100 || last.Y0 != 100 || last.Radius != 15 {
		t.Fatalf("smallest follower should sit on the pointer: %+v", last)
	}

	e.ToggleFollowers()
	if e.Rig().Mounted() || h.Listeners() != 2 {
		t.Fatal("disabling followers unmounts the rig")
	}
	h.Pump(1)
	if got := len(rec.Frame(surface.OpGlow)); got != n {
		t.Fatalf("disabled followers still drawn: %d glows", got)
	}
	e.Unmount()
}

func TestExperienceWithoutSurfaceKeepsFollowersOff(t *testing.T) {
	h := host.NewHeadless(core.Size{W: 200, H: 200}, nil)
	cfg := DefaultExperienceConfig()
	cfg.Followers = true
	e := New(cfg)
	e.Mount(h)
	if e.Rig().Mounted() || h.Listeners() != 0 || h.Pending() != 0 {
		t.Fatal("nothing may mount without a surface")
	}
	e.ToggleFollowers()
	e.ToggleFollowers()
	if h.Pending() != 0 {
		t.Fatal("toggling followers without a surface must not schedule")
	}
	e.Unmount()
}

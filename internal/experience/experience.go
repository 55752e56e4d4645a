package experience

import (
	"fmt"

	"surreal/internal/core"
	"surreal/internal/follower"
	"surreal/internal/host"
	"surreal/internal/surface"
)

// Config seeds the root widget.
type Config struct {
	Running   bool
	Mode      core.Mode
	Seed      int64
	FPS       int
	Followers bool
}

// DefaultExperienceConfig returns the initial state: running, high quality,
// followers off.
func DefaultExperienceConfig() Config {
	return Config{Running: true, Mode: core.ModeHigh, FPS: 60}
}

// Button is one on-screen control.
type Button struct {
	Label  string
	Action func()
}

// Experience is the root widget. It owns the two toggles, the particle
// background and the optional follower rig.
type Experience struct {
	bg        *Background
	rig       *follower.Rig
	followers bool
	h         host.Host
}

// New builds an unmounted experience.
func New(cfg Config) *Experience {
	e := &Experience{
		bg: NewBackground(Options{
			Running: cfg.Running,
			Mode:    cfg.Mode,
			Seed:    cfg.Seed,
		}),
		rig:       follower.NewRig(cfg.FPS, follower.DefaultConfigs()),
		followers: cfg.Followers,
	}
	e.bg.afterDraw = e.Draw
	return e
}

// Mount attaches the background, and the followers when enabled, to h.
func (e *Experience) Mount(h host.Host) {
	if e.h != nil {
		return
	}
	e.h = h
	e.bg.Mount(h)
	if e.followers && e.bg.Mounted() {
		e.rig.Mount(h)
	}
}

// Unmount detaches everything from the host.
func (e *Experience) Unmount() {
	if e.h == nil {
		return
	}
	e.rig.Unmount()
	e.bg.Unmount()
	e.h = nil
}

// Running reports the running toggle.
func (e *Experience) Running() bool { return e.bg.Running() }

// Mode reports the quality toggle.
func (e *Experience) Mode() core.Mode { return e.bg.Mode() }

// Followers reports whether the follower rig is enabled.
func (e *Experience) Followers() bool { return e.followers }

// Background returns the particle field component.
func (e *Experience) Background() *Background { return e.bg }

// Rig returns the follower rig.
func (e *Experience) Rig() *follower.Rig { return e.rig }

// ToggleRunning flips between running and paused.
func (e *Experience) ToggleRunning() { e.bg.SetRunning(!e.bg.Running()) }

// ToggleMode flips between high quality and smooth.
func (e *Experience) ToggleMode() { e.bg.SetMode(e.bg.Mode().Toggle()) }

// SetFollowers enables or disables the follower rig.
func (e *Experience) SetFollowers(on bool) {
	if e.followers == on {
		return
	}
	e.followers = on
	if e.h == nil || !e.bg.Mounted() {
		return
	}
	if on {
		e.rig.Mount(e.h)
		return
	}
	e.rig.Unmount()
}

// ToggleFollowers flips the follower rig on or off.
func (e *Experience) ToggleFollowers() { e.SetFollowers(!e.followers) }

// Buttons returns the control stack, top to bottom.
func (e *Experience) Buttons() []Button {
	running := "Pause Animations"
	if !e.Running() {
		running = "Resume Animations"
	}
	mode := "Switch to Smooth Mode"
	if e.Mode() == core.ModeSmooth {
		mode = "Switch to High Quality"
	}
	return []Button{
		{Label: running, Action: e.ToggleRunning},
		{Label: mode, Action: e.ToggleMode},
	}
}

// Press activates button i.
func (e *Experience) Press(i int) error {
	buttons := e.Buttons()
	if i < 0 || i >= len(buttons) {
		return fmt.Errorf("button %d out of range [0,%d)", i, len(buttons))
	}
	buttons[i].Action()
	return nil
}

// Draw paints the enabled overlays on s. It runs after every field redraw.
func (e *Experience) Draw(s surface.Surface) {
	if e.followers {
		e.rig.Draw(s)
	}
}

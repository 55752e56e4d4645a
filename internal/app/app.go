//go:build ebiten

package app

import (
	"surreal/internal/config"
	"surreal/internal/core"
	"surreal/internal/experience"
	"surreal/internal/host"
	"surreal/internal/render"
	"surreal/internal/surface"
	"surreal/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the experience to the ebiten.Game interface. It is also the
// host the experience is mounted into: animation frames queued by the
// experience run from Update at the configured rate.
type Game struct {
	host.Runtime

	exp      *experience.Experience
	screen   *render.Screen
	controls *ui.Controls
	overlay  *ui.Overlay
	step     *core.FixedStep

	size core.Size

	cursorX, cursorY int
	cursorInit       bool
}

// New constructs a Game and mounts the experience into it.
func New(cfg *config.Config) *Game {
	g := &Game{
		exp:    experience.New(cfg.Experience()),
		screen: render.NewScreen(cfg.Size()),
		step:   core.NewFixedStep(cfg.FPS),
		size:   cfg.Size(),
	}
	g.overlay = ui.NewOverlay(g.exp.Background())
	if cfg.Controls {
		g.controls = ui.NewControls(g.exp)
	}
	g.exp.Mount(g)
	return g
}

// Viewport returns the current logical window size.
func (g *Game) Viewport() core.Size { return g.size }

// Surface returns the offscreen drawing surface.
func (g *Game) Surface() (surface.Surface, bool) { return g.screen, true }

// Experience exposes the mounted root widget.
func (g *Game) Experience() *experience.Experience { return g.exp }

// Close unmounts the experience.
func (g *Game) Close() { g.exp.Unmount() }

// Update handles input and delivers due animation frames.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.exp.ToggleRunning()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.exp.ToggleMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.exp.ToggleFollowers()
	}

	g.overlay.Update()
	g.controls.Update(g.size)
	g.trackCursor()

	if g.step.ShouldStep() {
		g.RunFrames()
	}
	return nil
}

// trackCursor dispatches a pointer event whenever the cursor moves. The
// position reported before any movement is not treated as a pointer event.
func (g *Game) trackCursor() {
	x, y := ebiten.CursorPosition()
	if !g.cursorInit {
		g.cursorX, g.cursorY, g.cursorInit = x, y, true
		return
	}
	if x == g.cursorX && y == g.cursorY {
		return
	}
	g.cursorX, g.cursorY = x, y
	g.DispatchPointer(float64(x), float64(y))
}

// Draw composes the offscreen scene and the UI layers.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.screen.Image(), nil)
	g.overlay.Draw(screen, g.exp.Background().Pointer())
	g.controls.Draw(screen)
}

// Layout follows the window size and notifies resize listeners on change.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := core.Size{W: outsideWidth, H: outsideHeight}
	if size != g.size {
		g.size = size
		g.DispatchResize(size)
	}
	return outsideWidth, outsideHeight
}

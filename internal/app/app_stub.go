//go:build !ebiten

package app

import (
	"fmt"

	"surreal/internal/config"
)

// Game stands in for the window host when built without ebiten.
type Game struct{}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(*config.Config) *Game {
	panic("app.New requires building with the 'ebiten' tag")
}

// Close is a no-op placeholder.
func (g *Game) Close() {}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error {
	return fmt.Errorf("app.Game.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout reports an empty window.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }

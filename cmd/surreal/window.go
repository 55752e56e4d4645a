//go:build ebiten

package main

import (
	"errors"

	"surreal/internal/app"
	"surreal/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

func runWindow(cfg *config.Config) error {
	game := app.New(cfg)
	defer game.Close()

	ebiten.SetWindowTitle("surreal")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

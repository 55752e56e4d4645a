//go:build !ebiten

package main

import (
	"errors"

	"surreal/internal/config"
)

var errNoWindow = errors.New("the window requires the ebiten build tag; re-run with `go run -tags ebiten ./cmd/surreal` or use the snapshot command")

func runWindow(*config.Config) error { return errNoWindow }

//go:build !ebiten

package ui

import "surreal/internal/core"

// Overlay draws nothing without the ebiten tag.
type Overlay struct{}

// NewOverlay ignores its parameter source.
func NewOverlay(interface{ Parameters() core.ParameterSnapshot }) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, core.Pointer) {}

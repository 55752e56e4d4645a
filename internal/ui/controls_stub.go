//go:build !ebiten

package ui

import (
	"surreal/internal/core"
	"surreal/internal/experience"
)

// Controls is a no-op placeholder for headless builds.
type Controls struct{}

// NewControls returns nil in the headless build.
func NewControls(*experience.Experience) *Controls { return nil }

// Update is a no-op in the headless build.
func (c *Controls) Update(core.Size) bool { return false }

// Draw is a no-op in the headless build.
func (c *Controls) Draw(any) {}

package config

import (
	"sort"

	"surreal/internal/core"
)

// Presets holds the named starting configurations.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"low-power": {
		Width: DefaultWidth, Height: DefaultHeight, Mode: core.ModeSmooth, Running: true,
		Seed: DefaultSeed, FPS: 30, Controls: true, LogLevel: "off",
	},
	"showcase": {
		Width: 1920, Height: 1080, Mode: core.ModeHigh, Running: true,
		Seed: DefaultSeed, FPS: DefaultFPS, Followers: true, Controls: true, LogLevel: "off",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

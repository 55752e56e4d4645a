package main

import (
	"fmt"
	"strconv"
	"strings"

	"surreal/internal/config"
	"surreal/internal/core"
	"surreal/internal/experience"
	"surreal/internal/host"
	"surreal/internal/logging"
	"surreal/internal/surface"

	"github.com/spf13/cobra"
)

func newSnapshotCmd() *cobra.Command {
	var (
		out     string
		frames  int
		pointer string
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render frames headlessly and save the last one as PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames <= 0 {
				return fmt.Errorf("frames must be positive, got %d", frames)
			}
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			p, err := parsePointer(pointer)
			if err != nil {
				return err
			}
			if err := snapshot(cfg, out, frames, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, %d frames)\n", out, cfg.Width, cfg.Height, frames)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "surreal.png", "output PNG path")
	cmd.Flags().IntVar(&frames, "frames", 60, "animation frames to run before saving")
	cmd.Flags().StringVar(&pointer, "pointer", "", "pointer position as x,y")
	return cmd
}

func snapshot(cfg *config.Config, path string, frames int, pointer core.Pointer) error {
	canvas := surface.NewCanvas(cfg.Size())
	defer canvas.Close()

	h := host.NewHeadless(cfg.Size(), canvas)
	exp := experience.New(cfg.Experience())
	exp.Mount(h)
	if pointer.Valid() {
		h.MovePointer(pointer.X, pointer.Y)
	}
	h.Pump(frames)
	exp.Unmount()

	if n := canvas.Failures(); n > 0 {
		logging.Logger().Warn("snapshot drawing failures", "count", n)
	}
	return canvas.SavePNG(path)
}

// parsePointer parses "x,y". An empty string means no pointer.
func parsePointer(s string) (core.Pointer, error) {
	if s == "" {
		return core.Pointer{}, nil
	}
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return core.Pointer{}, fmt.Errorf("pointer %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return core.Pointer{}, fmt.Errorf("pointer %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return core.Pointer{}, fmt.Errorf("pointer %q: %w", s, err)
	}
	p := core.At(x, y)
	if !p.Valid() {
		return core.Pointer{}, fmt.Errorf("pointer %q: coordinates must be finite", s)
	}
	return p, nil
}

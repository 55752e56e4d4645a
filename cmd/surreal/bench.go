package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"surreal/internal/config"
	"surreal/internal/core"
	"surreal/internal/experience"
	"surreal/internal/host"
	"surreal/internal/surface"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444466")).Padding(0, 1)
)

type benchResult struct {
	Mode      core.Mode
	Size      core.Size
	Frames    uint64
	Redraws   uint64
	Particles int
	Glows     int
	Lines     int
	Elapsed   time.Duration
	// Links holds the link count of every redraw.
	Links []float64
}

func newBenchCmd() *cobra.Command {
	var (
		frames  int
		pointer string
		plot    bool
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "run the field headlessly and report draw statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			p, err := parsePointer(pointer)
			if err != nil {
				return err
			}
			res := bench(cfg, frames, p)
			return writeReport(cmd.OutOrStdout(), res, plot)
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 300, "animation frames to run")
	cmd.Flags().StringVar(&pointer, "pointer", "", "pointer position as x,y")
	cmd.Flags().BoolVar(&plot, "plot", true, "plot links per redraw")
	return cmd
}

func bench(cfg *config.Config, frames int, pointer core.Pointer) benchResult {
	rec := surface.NewRecorder(cfg.Size())
	h := host.NewHeadless(cfg.Size(), rec)
	ec := cfg.Experience()
	ec.Running = true
	exp := experience.New(ec)
	exp.Mount(h)
	if pointer.Valid() {
		h.MovePointer(pointer.X, pointer.Y)
	}

	bg := exp.Background()
	res := benchResult{Mode: bg.Mode(), Size: cfg.Size(), Particles: bg.Field().Len()}
	start := time.Now()
	for i := 0; i < frames; i++ {
		before := bg.Redraws()
		h.Pump(1)
		if bg.Redraws() != before {
			s := bg.Stats()
			res.Links = append(res.Links, float64(s.Links+s.PointerLinks))
		}
	}
	res.Elapsed = time.Since(start)
	res.Frames = bg.Frames()
	res.Redraws = bg.Redraws()
	res.Glows = rec.Glows()
	res.Lines = rec.Lines()
	exp.Unmount()
	return res
}

func writeReport(w io.Writer, res benchResult, plot bool) error {
	rows := [][2]string{
		{"mode", res.Mode.String()},
		{"viewport", fmt.Sprintf("%dx%d", res.Size.W, res.Size.H)},
		{"particles", fmt.Sprint(res.Particles)},
		{"frames", fmt.Sprint(res.Frames)},
		{"redraws", fmt.Sprint(res.Redraws)},
		{"discs drawn", fmt.Sprint(res.Glows)},
		{"links drawn", fmt.Sprint(res.Lines)},
		{"elapsed", res.Elapsed.Round(time.Microsecond).String()},
	}
	if res.Redraws > 0 {
		per := res.Elapsed / time.Duration(res.Redraws)
		rows = append(rows, [2]string{"per redraw", per.Round(time.Microsecond).String()})
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("surreal bench"))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(labelStyle.Render(r[0]) + valueStyle.Render(r[1]) + "\n")
	}
	if _, err := fmt.Fprintln(w, panelStyle.Render(strings.TrimRight(b.String(), "\n"))); err != nil {
		return err
	}

	if !plot || len(res.Links) < 2 {
		return nil
	}
	graph := asciigraph.Plot(res.Links,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("links per redraw"),
	)
	_, err := fmt.Fprintln(w, graph)
	return err
}

// Package ui draws the on-screen controls and the debug overlay.
package ui

import (
	"fmt"
	"image"

	"surreal/internal/core"
)

const (
	glyphWidth    = 7
	buttonHeight  = 28
	buttonPadding = 14
	buttonGap     = 8
	screenMargin  = 16
)

// ButtonRects stacks one button per label in the bottom-right corner of a
// screen of the given size. All buttons share the width of the longest label.
// The first label is the top button.
func ButtonRects(screen core.Size, labels []string) []image.Rectangle {
	if len(labels) == 0 {
		return nil
	}
	widest := 0
	for _, l := range labels {
		if n := len(l); n > widest {
			widest = n
		}
	}
	w := widest*glyphWidth + 2*buttonPadding
	right := screen.W - screenMargin
	bottom := screen.H - screenMargin
	top := bottom - len(labels)*buttonHeight - (len(labels)-1)*buttonGap

	rects := make([]image.Rectangle, len(labels))
	for i := range labels {
		y := top + i*(buttonHeight+buttonGap)
		rects[i] = image.Rect(right-w, y, right, y+buttonHeight)
	}
	return rects
}

// HitTest returns the index of the rectangle containing (x, y), or -1.
func HitTest(rects []image.Rectangle, x, y int) int {
	for i, r := range rects {
		if pointInRect(x, y, r) {
			return i
		}
	}
	return -1
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// FormatSnapshot renders a parameter snapshot as panel lines: a header per
// group followed by "label: value" rows.
func FormatSnapshot(snap core.ParameterSnapshot) []string {
	var lines []string
	for _, g := range snap.Groups {
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}

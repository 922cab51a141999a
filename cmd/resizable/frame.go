package main

import (
	"os"

	resizable "github.com/grindlemire/go-resizable"
	"github.com/grindlemire/go-resizable/internal/layout"
	"github.com/grindlemire/go-resizable/internal/render"
	"golang.org/x/term"
)

const (
	defaultWidth          = 80
	defaultHeight         = 7
	defaultVerticalHeight = 20
)

// frameFor snapshots g for drawing. active is the highlighted boundary or -1.
func frameFor(g *resizable.Group, width, height, active int) render.Frame {
	panels := g.Panels()
	sizes := g.Sizes()

	f := render.Frame{
		Sizes:     sizes,
		Labels:    make([]string, len(panels)),
		Collapsed: make([]bool, len(panels)),
		Direction: g.Direction(),
		Width:     width,
		Height:    height,
		Active:    active,
	}
	for i, p := range panels {
		f.Labels[i] = panelName(p)
		if i < len(sizes) {
			f.Collapsed[i] = layout.IsCollapsed(sizes[i], p.Constraint)
		}
	}
	return f
}

// terminalWidth returns the width of stdout, or defaultWidth when stdout is
// not a terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

func heightFor(dir resizable.Direction) int {
	if dir == resizable.Vertical {
		return defaultVerticalHeight
	}
	return defaultHeight
}

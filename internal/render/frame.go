package render

import "github.com/grindlemire/go-resizable/internal/layout"

// Frame is everything needed to draw one state of a group.
type Frame struct {
	Sizes     []float64
	Labels    []string
	Collapsed []bool
	Direction layout.Direction

	// Width and Height are in terminal cells for Bars and pixels for SVG.
	Width  int
	Height int

	// Active is the highlighted boundary, or -1.
	Active int
}

func (f Frame) label(i int) string {
	if i < len(f.Labels) {
		return f.Labels[i]
	}
	return ""
}

func (f Frame) collapsed(i int) bool {
	return i < len(f.Collapsed) && f.Collapsed[i]
}

// touchesActive reports whether panel i is on either side of the active boundary.
func (f Frame) touchesActive(i int) bool {
	return f.Active >= 0 && (i == f.Active || i == f.Active+1)
}

// extent is the size of the layout axis.
func (f Frame) extent() int {
	if f.Direction == layout.Vertical {
		return f.Height
	}
	return f.Width
}

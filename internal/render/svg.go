package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/grindlemire/go-resizable/internal/layout"
)

const (
	svgPanelStyle     = "fill:#f4f4f5;stroke:#52525b;stroke-width:1"
	svgActiveStyle    = "fill:#fdf2f8;stroke:#db2777;stroke-width:2"
	svgCollapsedStyle = "fill:#e4e4e7;stroke:#a1a1aa;stroke-width:1"
	svgTextStyle      = "text-anchor:middle;dominant-baseline:middle;font-family:monospace;font-size:12px;fill:#18181b"
)

// SVG writes the frame as an SVG document of Width x Height pixels.
func SVG(w io.Writer, f Frame) {
	canvas := svg.New(w)
	canvas.Start(f.Width, f.Height)
	canvas.Title(fmt.Sprintf("%d panels, %s", len(f.Sizes), f.Direction))

	offset := 0
	for i, n := range Cells(f.Sizes, f.extent()) {
		x, y, pw, ph := offset, 0, n, f.Height
		if f.Direction == layout.Vertical {
			x, y, pw, ph = 0, offset, f.Width, n
		}
		offset += n

		style := svgPanelStyle
		switch {
		case f.touchesActive(i):
			style = svgActiveStyle
		case f.collapsed(i):
			style = svgCollapsedStyle
		}
		canvas.Rect(x, y, pw, ph, style)
		if n > 0 {
			canvas.Text(x+pw/2, y+ph/2, fmt.Sprintf("%s %.1f%%", f.label(i), f.Sizes[i]), svgTextStyle)
		}
	}

	canvas.End()
}

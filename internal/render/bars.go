package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/grindlemire/go-resizable/internal/layout"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Align(lipgloss.Center, lipgloss.Center)

	activeColor    = lipgloss.Color("212")
	collapsedColor = lipgloss.Color("240")
)

// Bars renders the frame as bordered boxes, one per panel, laid out along
// the frame's direction. The result is exactly Width x Height cells.
func Bars(f Frame) string {
	cells := Cells(f.Sizes, f.extent())

	var blocks []string
	for i, n := range cells {
		if n == 0 {
			continue
		}
		w, h := n, f.Height
		if f.Direction == layout.Vertical {
			w, h = f.Width, n
		}
		blocks = append(blocks, f.box(i, w, h))
	}

	if f.Direction == layout.Vertical {
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func (f Frame) box(i, w, h int) string {
	// Too small for a border: keep the space, draw nothing.
	if w < 3 || h < 3 {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, "")
	}

	content := fmt.Sprintf("%s %.1f%%", f.label(i), f.Sizes[i])
	if h-2 >= 2 {
		content = fmt.Sprintf("%s\n%.1f%%", f.label(i), f.Sizes[i])
	}

	style := boxStyle.
		Width(w - 2).
		Height(h - 2).
		MaxWidth(w).
		MaxHeight(h)
	switch {
	case f.touchesActive(i):
		style = style.BorderForeground(activeColor)
	case f.collapsed(i):
		style = style.BorderForeground(collapsedColor).Faint(true)
	}
	return style.Render(content)
}

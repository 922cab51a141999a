// Package render draws a panel group's size vector, either as terminal boxes
// (lipgloss) or as an SVG document.
package render

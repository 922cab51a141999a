package layout

import (
	"math"
	"slices"
)

// Adjust moves boundary by delta and returns the new size vector. sizes is
// not modified.
//
// Only the two panels on either side of the boundary change, and their
// combined size is preserved exactly. A positive delta grows the left panel.
// Collapsible panels snap to CollapsedSize when dragged below MinSize, and a
// collapsed panel has to be dragged past a small dead zone (see
// CollapseHysteresisRatio) before it expands again. Everything else is
// clamped to the intersection of both panels' min/max.
//
// An out of range boundary returns an unchanged copy.
func (p Policy) Adjust(sizes []float64, boundary int, delta float64, panels []Constraint) []float64 {
	next := slices.Clone(sizes)
	if boundary < 0 || boundary >= len(next)-1 {
		return next
	}

	left, right := panels[boundary], panels[boundary+1]
	initialLeft := next[boundary]
	total := initialLeft + next[boundary+1]
	targetLeft := initialLeft + delta

	leftCollapsed := p.collapses(left, initialLeft, targetLeft, delta > 0)
	rightCollapsed := p.collapses(right, total-initialLeft, total-targetLeft, delta < 0)

	var finalLeft float64
	switch {
	case leftCollapsed:
		finalLeft = left.CollapsedSize
	case rightCollapsed:
		finalLeft = total - right.CollapsedSize
	default:
		lo := math.Max(left.MinSize, total-right.MaxSize)
		hi := math.Min(left.MaxSize, total-right.MinSize)
		finalLeft = Clamp(targetLeft, lo, hi)
	}

	next[boundary] = finalLeft
	next[boundary+1] = total - finalLeft
	return next
}

// collapses reports whether a panel moving from current to target should
// rest at its collapsed size. opening is true when the drag grows the panel.
func (p Policy) collapses(c Constraint, current, target float64, opening bool) bool {
	if !c.Collapsible {
		return false
	}

	// Expanded: anything under MinSize goes straight to collapsed.
	if current > c.CollapsedSize {
		return target < c.MinSize
	}

	switch {
	case target <= c.CollapsedSize:
		return true
	case target >= c.MinSize:
		return false
	case !opening:
		return true
	default:
		return target <= p.threshold(c)
	}
}

// threshold is the upper edge of the dead zone above CollapsedSize.
func (p Policy) threshold(c Constraint) float64 {
	return c.CollapsedSize + (c.MinSize-c.CollapsedSize)*p.HysteresisRatio
}

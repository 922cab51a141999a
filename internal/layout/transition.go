package layout

import "fmt"

// TransitionKind says whether a panel entered or left its collapsed size.
type TransitionKind uint8

const (
	Collapse TransitionKind = iota
	Expand
)

func (k TransitionKind) String() string {
	switch k {
	case Collapse:
		return "collapse"
	case Expand:
		return "expand"
	default:
		return fmt.Sprintf("TransitionKind(%d)", uint8(k))
	}
}

// Transition records one panel changing collapse state between two vectors.
type Transition struct {
	Index int
	Kind  TransitionKind
}

// IsCollapsed reports whether size is the collapsed size of a collapsible panel.
func IsCollapsed(size float64, c Constraint) bool {
	return c.Collapsible && ApproxEqual(size, c.CollapsedSize)
}

// Diff compares prev and next and returns a Transition for every panel
// whose collapsed state differs, in index order. Vectors of different
// lengths, or a nil prev, produce no transitions.
func Diff(prev, next []float64, panels []Constraint) []Transition {
	if prev == nil || len(prev) != len(next) || len(next) != len(panels) {
		return nil
	}

	var out []Transition
	for i, panel := range panels {
		was, is := IsCollapsed(prev[i], panel), IsCollapsed(next[i], panel)
		switch {
		case !was && is:
			out = append(out, Transition{Index: i, Kind: Collapse})
		case was && !is:
			out = append(out, Transition{Index: i, Kind: Expand})
		}
	}
	return out
}

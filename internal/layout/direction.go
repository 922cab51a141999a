package layout

import "fmt"

// Direction specifies the axis a group's panels are laid out along.
type Direction uint8

const (
	Horizontal Direction = iota // Panels laid out left-to-right
	Vertical                    // Panels laid out top-to-bottom
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ParseDirection parses "horizontal" or "vertical". An empty string is horizontal.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "horizontal", "row":
		return Horizontal, nil
	case "vertical", "column":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("unknown direction %q", s)
	}
}

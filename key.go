package resizable

// Key represents a keyboard key that can move a boundary.
type Key uint8

const (
	// KeyNone represents no key (zero value).
	KeyNone Key = iota

	// Arrow keys move by the keyboard step along the group's axis.
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Home and End push the boundary as far as it goes.
	KeyHome
	KeyEnd
)

// DefaultKeyboardStep is the percentage moved by one arrow key press.
const DefaultKeyboardStep = 10.0

var keyNames = map[Key]string{
	KeyNone:  "None",
	KeyUp:    "Up",
	KeyDown:  "Down",
	KeyLeft:  "Left",
	KeyRight: "Right",
	KeyHome:  "Home",
	KeyEnd:   "End",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ParseKey maps terminal-style key names ("left", "up", "home", ...) to a Key.
// Unknown names return KeyNone.
func ParseKey(s string) Key {
	switch s {
	case "up", "k":
		return KeyUp
	case "down", "j":
		return KeyDown
	case "left", "h":
		return KeyLeft
	case "right", "l":
		return KeyRight
	case "home":
		return KeyHome
	case "end":
		return KeyEnd
	default:
		return KeyNone
	}
}

// Step moves boundary for a single key press as a complete drag session:
// start, one resize, end, all under one lock so no other session can
// interleave. It reports false, with no error, for keys that do not act on
// the group's axis.
//
// Arrow keys are screen directions and follow reverse and RTL. Home and End
// are in layout order: Home shrinks the panel before the boundary as far as
// it goes and End grows it.
func (g *Group) Step(boundary int, key Key) (bool, error) {
	g.mu.Lock()
	calls, handled, err := g.stepLocked(boundary, key)
	g.mu.Unlock()

	emit(calls)
	return handled, err
}

func (g *Group) stepLocked(boundary int, key Key) ([]func(), bool, error) {
	delta, ok := g.keyDeltaLocked(key)
	if !ok {
		return nil, false, nil
	}

	calls, err := g.startResizeLocked(boundary)
	if err != nil {
		return nil, false, err
	}
	_, resized, err := g.resizeLocked(delta)
	calls = append(calls, resized...)
	ended, endErr := g.endResizeLocked()
	calls = append(calls, ended...)
	if err != nil {
		return calls, false, err
	}
	return calls, true, endErr
}

func (g *Group) keyDeltaLocked(key Key) (float64, bool) {
	var delta float64
	switch {
	case key == KeyHome:
		return -Total, true
	case key == KeyEnd:
		return Total, true
	case g.direction == Horizontal && key == KeyLeft, g.direction == Vertical && key == KeyUp:
		delta = -g.step
	case g.direction == Horizontal && key == KeyRight, g.direction == Vertical && key == KeyDown:
		delta = g.step
	default:
		return 0, false
	}
	return g.orientLocked(delta), true
}

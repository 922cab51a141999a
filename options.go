package resizable

import (
	"fmt"
	"math"
	"slices"

	"github.com/sirupsen/logrus"
)

// GroupOption is a functional option for configuring a Group.
type GroupOption func(*Group) error

// WithID sets the group identity used as the storage key.
// Default is a random UUID.
func WithID(id string) GroupOption {
	return func(g *Group) error {
		if id == "" {
			return fmt.Errorf("group id cannot be empty")
		}
		g.id = id
		return nil
	}
}

// WithDirection sets the axis the panels are laid out along.
// Default is Horizontal.
func WithDirection(d Direction) GroupOption {
	return func(g *Group) error {
		if d != Horizontal && d != Vertical {
			return fmt.Errorf("unknown direction %v", d)
		}
		g.direction = d
		return nil
	}
}

// WithReverse flips the sign of pixel and keyboard deltas.
func WithReverse() GroupOption {
	return func(g *Group) error {
		g.reverse = true
		return nil
	}
}

// WithRTL flips pixel and keyboard deltas of horizontal groups.
func WithRTL() GroupOption {
	return func(g *Group) error {
		g.rtl = true
		return nil
	}
}

// WithDisabled starts the group with resizing disabled.
func WithDisabled() GroupOption {
	return func(g *Group) error {
		g.disabled = true
		return nil
	}
}

// WithSizes seeds the group with explicit sizes. They are used whenever the
// number of panels matches their length.
func WithSizes(sizes []float64) GroupOption {
	return func(g *Group) error {
		for _, s := range sizes {
			if math.IsNaN(s) || math.IsInf(s, 0) {
				return fmt.Errorf("%w: size %v", ErrInvalidInput, s)
			}
		}
		g.controlled = slices.Clone(sizes)
		return nil
	}
}

// WithPolicy replaces the allocation policy.
func WithPolicy(p Policy) GroupOption {
	return func(g *Group) error {
		if p.HysteresisRatio < 0 || p.HysteresisRatio > 1 {
			return fmt.Errorf("hysteresis ratio must be within 0-1, got %v", p.HysteresisRatio)
		}
		g.policy = p
		return nil
	}
}

// WithKeyboardStep sets the percentage moved by one arrow key press.
// Default is DefaultKeyboardStep. Valid range is (0, 100].
func WithKeyboardStep(step float64) GroupOption {
	return func(g *Group) error {
		if !(step > 0 && step <= Total) {
			return fmt.Errorf("keyboard step must be within (0, %v], got %v", Total, step)
		}
		g.step = step
		return nil
	}
}

// WithStorage persists sizes at the end of every resize and restores them
// when the panel count matches.
func WithStorage(s Storage) GroupOption {
	return func(g *Group) error {
		g.storage = s
		return nil
	}
}

// WithLogger sets the logger for session diagnostics.
// Default is the debug logger, which discards unless RESIZABLE_DEBUG is set.
func WithLogger(l logrus.FieldLogger) GroupOption {
	return func(g *Group) error {
		if l == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		g.log = l
		return nil
	}
}

// OnResizeStart sets the callback fired when a drag session starts.
func OnResizeStart(fn func(boundary int)) GroupOption {
	return func(g *Group) error {
		g.onResizeStart = fn
		return nil
	}
}

// OnResize sets the callback fired after every applied delta.
func OnResize(fn func(sizes []float64)) GroupOption {
	return func(g *Group) error {
		g.onResize = fn
		return nil
	}
}

// OnResizeEnd sets the callback fired when a drag session ends.
func OnResizeEnd(fn func(sizes []float64)) GroupOption {
	return func(g *Group) error {
		g.onResizeEnd = fn
		return nil
	}
}

// OnCollapse sets the callback fired when a panel reaches its collapsed size.
func OnCollapse(fn func(panelID string)) GroupOption {
	return func(g *Group) error {
		g.onCollapse = fn
		return nil
	}
}

// OnExpand sets the callback fired when a panel leaves its collapsed size.
func OnExpand(fn func(panelID string)) GroupOption {
	return func(g *Group) error {
		g.onExpand = fn
		return nil
	}
}

// OnChange sets the callback fired whenever the size vector changes,
// whatever the cause.
func OnChange(fn func(sizes []float64)) GroupOption {
	return func(g *Group) error {
		g.onChange = fn
		return nil
	}
}

// OnReorder sets the callback fired after MovePanel.
func OnReorder(fn func(from, to int)) GroupOption {
	return func(g *Group) error {
		g.onReorder = fn
		return nil
	}
}

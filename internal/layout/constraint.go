package layout

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidConstraint reports a constraint whose bounds are inconsistent.
	ErrInvalidConstraint = errors.New("invalid panel constraint")
	// ErrInvalidInput reports a NaN or infinite number.
	ErrInvalidInput = errors.New("invalid numeric input")
)

// Constraint describes the sizing rules of one panel. All sizes are
// percentages of the group's total extent.
//
// Distribute and Adjust assume 0 <= MinSize <= MaxSize <= 100 and, for
// collapsible panels, 0 <= CollapsedSize <= MinSize. They do not check this;
// use Validate at the edge where constraints enter the program.
type Constraint struct {
	MinSize float64
	MaxSize float64

	// DefaultSize is used only when no current size is known.
	DefaultSize Value

	// Collapsible panels may shrink below MinSize, all the way to CollapsedSize.
	Collapsible   bool
	CollapsedSize float64

	// Grow panels absorb leftover or missing extent during distribution.
	Grow bool
}

// DefaultConstraint returns an unconstrained panel: 0-100, no default size.
func DefaultConstraint() Constraint {
	return Constraint{
		MinSize:     0,
		MaxSize:     Total,
		DefaultSize: Auto(),
	}
}

// Validate reports the first way c breaks the preconditions of the engine.
// It never modifies c.
func (c Constraint) Validate() error {
	values := []struct {
		name string
		v    float64
	}{
		{"min size", c.MinSize},
		{"max size", c.MaxSize},
		{"default size", c.DefaultSize.Resolve(0)},
		{"collapsed size", c.CollapsedSize},
	}
	for _, f := range values {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidInput, f.name, f.v)
		}
	}

	switch {
	case c.MinSize < 0:
		return fmt.Errorf("%w: min size %v is negative", ErrInvalidConstraint, c.MinSize)
	case c.MaxSize > Total:
		return fmt.Errorf("%w: max size %v exceeds %v", ErrInvalidConstraint, c.MaxSize, Total)
	case c.MinSize > c.MaxSize:
		return fmt.Errorf("%w: min size %v is greater than max size %v", ErrInvalidConstraint, c.MinSize, c.MaxSize)
	}

	if c.Collapsible {
		if c.CollapsedSize < 0 {
			return fmt.Errorf("%w: collapsed size %v is negative", ErrInvalidConstraint, c.CollapsedSize)
		}
		if c.CollapsedSize > c.MinSize {
			return fmt.Errorf("%w: collapsed size %v is greater than min size %v", ErrInvalidConstraint, c.CollapsedSize, c.MinSize)
		}
	}
	return nil
}

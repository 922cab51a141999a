package resizable

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/grindlemire/go-resizable/internal/layout"
)

// Panel is one region of a Group.
type Panel struct {
	// ID is the stable identity used in callbacks and lookups.
	ID string

	// Label is free text for renderers.
	Label string

	// Order positions the panel inside its group. Ties keep insertion order.
	Order int

	// Resizable is false for panels whose adjacent boundaries cannot be dragged.
	Resizable bool

	Constraint Constraint
}

// PanelOption is a functional option for configuring a Panel.
type PanelOption func(*Panel) error

// NewPanel creates a panel with the given options. An empty id is replaced
// with a random UUID. The resulting constraint is validated but never
// corrected: inconsistent bounds are reported as ErrInvalidConstraint.
func NewPanel(id string, opts ...PanelOption) (*Panel, error) {
	if id == "" {
		id = uuid.NewString()
	}

	p := &Panel{
		ID:         id,
		Resizable:  true,
		Constraint: layout.DefaultConstraint(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, fmt.Errorf("panel %q: %w", id, err)
		}
	}

	if err := p.Constraint.Validate(); err != nil {
		return nil, fmt.Errorf("panel %q: %w", id, err)
	}
	return p, nil
}

// WithMinSize sets the minimum size in percent.
func WithMinSize(size float64) PanelOption {
	return func(p *Panel) error {
		p.Constraint.MinSize = size
		return nil
	}
}

// WithMaxSize sets the maximum size in percent. Default is 100.
func WithMaxSize(size float64) PanelOption {
	return func(p *Panel) error {
		p.Constraint.MaxSize = size
		return nil
	}
}

// WithDefaultSize sets the size used when no current size is known.
// A default of 0 means "equal share", the same as leaving it unset.
func WithDefaultSize(size float64) PanelOption {
	return func(p *Panel) error {
		if size < 0 || size > Total {
			return fmt.Errorf("%w: default size %v outside 0-%v", ErrInvalidConstraint, size, Total)
		}
		p.Constraint.DefaultSize = layout.Percent(size)
		return nil
	}
}

// WithCollapsible lets the panel collapse to collapsedSize when dragged
// below its minimum.
func WithCollapsible(collapsedSize float64) PanelOption {
	return func(p *Panel) error {
		p.Constraint.Collapsible = true
		p.Constraint.CollapsedSize = collapsedSize
		return nil
	}
}

// WithGrow makes the panel absorb leftover extent during distribution.
func WithGrow() PanelOption {
	return func(p *Panel) error {
		p.Constraint.Grow = true
		return nil
	}
}

// WithOrder sets the panel's position key inside its group.
func WithOrder(order int) PanelOption {
	return func(p *Panel) error {
		p.Order = order
		return nil
	}
}

// WithLabel sets a display label.
func WithLabel(label string) PanelOption {
	return func(p *Panel) error {
		p.Label = label
		return nil
	}
}

// WithFixed disables dragging of both boundaries next to this panel.
func WithFixed() PanelOption {
	return func(p *Panel) error {
		p.Resizable = false
		return nil
	}
}

// WithConstraint replaces the whole constraint.
func WithConstraint(c Constraint) PanelOption {
	return func(p *Panel) error {
		p.Constraint = c
		return nil
	}
}

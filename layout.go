// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package resizable

import "github.com/grindlemire/go-resizable/internal/layout"

// Direction specifies the axis a group's panels are laid out along.
type Direction = layout.Direction

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// Value represents a panel dimension (percent or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitPercent = layout.UnitPercent
)

// Constraint holds the sizing rules for one panel.
type Constraint = layout.Constraint

// Policy holds the tunable parts of the allocation engine.
type Policy = layout.Policy

// Normalization selects how distribution restores the sum-to-100 invariant.
type Normalization = layout.Normalization

const (
	NormalizeExactSum      = layout.NormalizeExactSum
	NormalizeRespectBounds = layout.NormalizeRespectBounds
	NormalizeNone          = layout.NormalizeNone
)

// Transition records one panel collapsing or expanding.
type Transition = layout.Transition

// TransitionKind says whether a panel collapsed or expanded.
type TransitionKind = layout.TransitionKind

const (
	Collapse = layout.Collapse
	Expand   = layout.Expand
)

// CollapseHysteresisRatio is the default collapse dead zone ratio.
const CollapseHysteresisRatio = layout.CollapseHysteresisRatio

// Total is the extent every size vector sums to.
const Total = layout.Total

// Auto returns a Value that leaves the size to the distributor.
func Auto() Value { return layout.Auto() }

// Percent returns a Value representing a percentage of the total extent.
func Percent(p float64) Value { return layout.Percent(p) }

// DefaultConstraint returns an unconstrained panel.
func DefaultConstraint() Constraint { return layout.DefaultConstraint() }

// DefaultPolicy returns the engine's default policy.
func DefaultPolicy() Policy { return layout.DefaultPolicy() }

// Distribute builds a size vector for panels. See layout.Policy.Distribute.
func Distribute(panels []Constraint, current []float64) []float64 {
	return layout.Distribute(panels, current)
}

// Adjust moves boundary by delta. See layout.Policy.Adjust.
func Adjust(sizes []float64, boundary int, delta float64, panels []Constraint) []float64 {
	return layout.Adjust(sizes, boundary, delta, panels)
}

// Diff reports panels whose collapsed state differs between prev and next.
func Diff(prev, next []float64, panels []Constraint) []Transition {
	return layout.Diff(prev, next, panels)
}

// ParseDirection parses "horizontal" or "vertical".
func ParseDirection(s string) (Direction, error) { return layout.ParseDirection(s) }

// ParseNormalization parses "exact-sum", "respect-bounds" or "none".
func ParseNormalization(s string) (Normalization, error) { return layout.ParseNormalization(s) }

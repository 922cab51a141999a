package layout

import "fmt"

// CollapseHysteresisRatio sizes the dead zone just above a collapsed panel's
// CollapsedSize, as a fraction of the gap between CollapsedSize and MinSize.
// A collapsed panel dragged open only leaves the collapsed state once the
// target passes CollapsedSize + ratio*(MinSize-CollapsedSize).
const CollapseHysteresisRatio = 0.05

// Normalization selects how Distribute restores the sum-to-100 invariant
// after clamping and grow distribution.
type Normalization uint8

const (
	// NormalizeExactSum rescales every size by 100/sum. The sum is always
	// exact, but a panel can end up outside its own min/max.
	NormalizeExactSum Normalization = iota

	// NormalizeRespectBounds spreads the residual across panels that still
	// have room inside their bounds, and rescales only when the bounds make
	// a sum of 100 impossible.
	NormalizeRespectBounds

	// NormalizeNone leaves the clamped sizes as they are.
	NormalizeNone
)

func (n Normalization) String() string {
	switch n {
	case NormalizeExactSum:
		return "exact-sum"
	case NormalizeRespectBounds:
		return "respect-bounds"
	case NormalizeNone:
		return "none"
	default:
		return fmt.Sprintf("Normalization(%d)", uint8(n))
	}
}

// ParseNormalization parses the names produced by Normalization.String.
func ParseNormalization(s string) (Normalization, error) {
	switch s {
	case "", "exact-sum":
		return NormalizeExactSum, nil
	case "respect-bounds":
		return NormalizeRespectBounds, nil
	case "none":
		return NormalizeNone, nil
	default:
		return NormalizeExactSum, fmt.Errorf("unknown normalization %q", s)
	}
}

// Policy holds the tunable parts of the engine.
type Policy struct {
	HysteresisRatio float64
	Normalization   Normalization
}

// DefaultPolicy returns the policy used by the package-level functions.
func DefaultPolicy() Policy {
	return Policy{
		HysteresisRatio: CollapseHysteresisRatio,
		Normalization:   NormalizeExactSum,
	}
}

// Distribute builds a size vector for panels using DefaultPolicy.
func Distribute(panels []Constraint, current []float64) []float64 {
	return DefaultPolicy().Distribute(panels, current)
}

// Adjust moves boundary by delta using DefaultPolicy.
func Adjust(sizes []float64, boundary int, delta float64, panels []Constraint) []float64 {
	return DefaultPolicy().Adjust(sizes, boundary, delta, panels)
}

package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size chosen by the distributor
	UnitPercent             // Percentage of the group's total extent
)

// Value represents a panel dimension that is either a percentage or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that leaves the size to the distributor.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Percent returns a Value representing a percentage of the total extent.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve returns the percentage amount, or fallback for UnitAuto.
func (v Value) Resolve(fallback float64) float64 {
	switch v.Unit {
	case UnitPercent:
		return v.Amount
	case UnitAuto:
		return fallback
	default:
		return fallback
	}
}

// IsAuto returns true if this value should be chosen by the distributor.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

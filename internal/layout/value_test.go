package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_Constructors(t *testing.T) {
	type tc struct {
		value  Value
		isAuto bool
		unit   Unit
		amount float64
	}

	tests := map[string]tc{
		"Auto": {
			value:  Auto(),
			isAuto: true,
			unit:   UnitAuto,
			amount: 0,
		},
		"Percent": {
			value:  Percent(50),
			isAuto: false,
			unit:   UnitPercent,
			amount: 50,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.isAuto, tt.value.IsAuto())
			assert.Equal(t, tt.unit, tt.value.Unit)
			assert.Equal(t, tt.amount, tt.value.Amount)
		})
	}
}

func TestValue_Resolve(t *testing.T) {
	type tc struct {
		value    Value
		fallback float64
		expected float64
	}

	tests := map[string]tc{
		"percent ignores fallback": {
			value:    Percent(30),
			fallback: 99,
			expected: 30,
		},
		"percent zero": {
			value:    Percent(0),
			fallback: 50,
			expected: 0,
		},
		"auto returns fallback": {
			value:    Auto(),
			fallback: 25,
			expected: 25,
		},
		"unknown unit returns fallback": {
			value:    Value{Amount: 10, Unit: Unit(99)},
			fallback: 7,
			expected: 7,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.Resolve(tt.fallback))
		})
	}
}

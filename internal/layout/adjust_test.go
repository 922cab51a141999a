package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collapsible(lo, hi, collapsed float64) Constraint {
	c := bounded(lo, hi)
	c.Collapsible = true
	c.CollapsedSize = collapsed
	return c
}

func TestAdjust(t *testing.T) {
	type tc struct {
		sizes    []float64
		boundary int
		delta    float64
		panels   []Constraint
		expected []float64
	}

	tests := map[string]tc{
		"drag within bounds": {
			sizes:    []float64{40, 60},
			delta:    5,
			panels:   []Constraint{bounded(10, 90), bounded(10, 90)},
			expected: []float64{45, 55},
		},
		"drag left within bounds": {
			sizes:    []float64{40, 60},
			delta:    -15,
			panels:   []Constraint{bounded(10, 90), bounded(10, 90)},
			expected: []float64{25, 75},
		},
		"clamped by left min": {
			sizes:    []float64{40, 60},
			delta:    -35,
			panels:   []Constraint{bounded(10, 90), bounded(10, 90)},
			expected: []float64{10, 90},
		},
		"clamped by left max": {
			sizes:    []float64{40, 60},
			delta:    45,
			panels:   []Constraint{bounded(10, 70), bounded(0, 100)},
			expected: []float64{70, 30},
		},
		"clamped by right min": {
			sizes:    []float64{40, 60},
			delta:    55,
			panels:   []Constraint{bounded(0, 100), bounded(20, 100)},
			expected: []float64{80, 20},
		},
		"clamped by right max": {
			sizes:    []float64{40, 60},
			delta:    -30,
			panels:   []Constraint{bounded(0, 100), bounded(0, 65)},
			expected: []float64{35, 65},
		},
		"only the boundary pair moves": {
			sizes:    []float64{20, 30, 50},
			boundary: 1,
			delta:    10,
			panels:   []Constraint{bounded(0, 100), bounded(0, 100), bounded(0, 100)},
			expected: []float64{20, 40, 40},
		},
		"left snaps to collapsed": {
			sizes:    []float64{20, 80},
			delta:    -16,
			panels:   []Constraint{collapsible(20, 100, 5), bounded(20, 80)},
			expected: []float64{5, 95},
		},
		"left collapses from any expanded size": {
			sizes:    []float64{30, 70},
			delta:    -11,
			panels:   []Constraint{collapsible(20, 100, 0), bounded(0, 100)},
			expected: []float64{0, 100},
		},
		"right snaps to collapsed": {
			sizes:    []float64{70, 30},
			delta:    15,
			panels:   []Constraint{bounded(0, 100), collapsible(20, 100, 0)},
			expected: []float64{100, 0},
		},
		"collapsed left stays inside dead zone": {
			sizes:    []float64{0, 100},
			delta:    0.5,
			panels:   []Constraint{collapsible(20, 100, 0), bounded(0, 100)},
			expected: []float64{0, 100},
		},
		"collapsed left at threshold stays collapsed": {
			sizes:    []float64{0, 100},
			delta:    1,
			panels:   []Constraint{collapsible(20, 100, 0), bounded(0, 100)},
			expected: []float64{0, 100},
		},
		"collapsed left past dead zone expands to min": {
			sizes:    []float64{0, 100},
			delta:    5,
			panels:   []Constraint{collapsible(20, 100, 0), bounded(0, 100)},
			expected: []float64{20, 80},
		},
		"collapsed left dragged beyond min": {
			sizes:    []float64{0, 100},
			delta:    30,
			panels:   []Constraint{collapsible(20, 100, 0), bounded(0, 100)},
			expected: []float64{30, 70},
		},
		"collapsed left pushed further stays collapsed": {
			sizes:    []float64{5, 95},
			delta:    -3,
			panels:   []Constraint{collapsible(20, 100, 5), bounded(0, 100)},
			expected: []float64{5, 95},
		},
		"collapsed right stays inside dead zone": {
			sizes:    []float64{100, 0},
			delta:    -0.5,
			panels:   []Constraint{bounded(0, 100), collapsible(20, 100, 0)},
			expected: []float64{100, 0},
		},
		"collapsed right past dead zone expands to min": {
			sizes:    []float64{100, 0},
			delta:    -5,
			panels:   []Constraint{bounded(0, 100), collapsible(20, 100, 0)},
			expected: []float64{80, 20},
		},
		"left collapse wins over right": {
			sizes:    []float64{22, 22},
			delta:    -5,
			panels:   []Constraint{collapsible(20, 100, 0), collapsible(30, 100, 0)},
			expected: []float64{0, 44},
		},
		"subtotal preserved when pair is not the whole": {
			sizes:    []float64{10, 15, 75},
			boundary: 1,
			delta:    -12,
			panels:   []Constraint{bounded(0, 100), collapsible(10, 100, 2), bounded(0, 100)},
			expected: []float64{10, 2, 88},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Adjust(tt.sizes, tt.boundary, tt.delta, tt.panels)
			assert.InDeltaSlice(t, tt.expected, got, Epsilon)
		})
	}
}

func TestAdjust_InvalidBoundaryIsNoOp(t *testing.T) {
	sizes := []float64{30, 30, 40}
	panels := []Constraint{bounded(0, 100), bounded(0, 100), bounded(0, 100)}

	for name, boundary := range map[string]int{
		"negative":  -1,
		"last":      len(sizes) - 1,
		"past end":  len(sizes) + 3,
		"far below": -40,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, sizes, Adjust(sizes, boundary, 12, panels))
		})
	}
}

func TestAdjust_SinglePanelIsNoOp(t *testing.T) {
	assert.Equal(t, []float64{100}, Adjust([]float64{100}, 0, 10, []Constraint{bounded(0, 100)}))
}

func TestAdjust_DoesNotMutateInput(t *testing.T) {
	sizes := []float64{40, 60}
	got := Adjust(sizes, 0, 10, []Constraint{bounded(0, 100), bounded(0, 100)})

	assert.Equal(t, []float64{40, 60}, sizes)
	assert.Equal(t, []float64{50, 50}, got)
}

func TestAdjust_ZeroDeltaIsIdempotent(t *testing.T) {
	panels := []Constraint{bounded(10, 60), collapsible(20, 80, 5), bounded(10, 90)}
	for name, sizes := range map[string][]float64{
		"expanded":  {30, 40, 30},
		"collapsed": {45, 5, 50},
		"at bounds": {60, 20, 20},
	} {
		t.Run(name, func(t *testing.T) {
			for b := 0; b < len(sizes)-1; b++ {
				assert.InDeltaSlice(t, sizes, Adjust(sizes, b, 0, panels), Epsilon)
			}
		})
	}
}

func TestAdjust_SubtotalPreserved(t *testing.T) {
	panels := []Constraint{collapsible(15, 60, 3), bounded(10, 90), collapsible(25, 70, 0), bounded(5, 50)}
	sizes := Distribute(panels, []float64{20, 30, 30, 20})

	for _, delta := range []float64{-100, -40, -12.5, -0.3, 0, 0.3, 7, 33, 100} {
		for b := 0; b < len(sizes)-1; b++ {
			got := Adjust(sizes, b, delta, panels)
			assert.InDelta(t, sizes[b]+sizes[b+1], got[b]+got[b+1], Epsilon, "boundary %d delta %v", b, delta)
			assert.InDelta(t, Sum(sizes), Sum(got), Epsilon, "boundary %d delta %v", b, delta)
		}
	}
}

func TestAdjust_NonCollapsibleStaysInBounds(t *testing.T) {
	panels := []Constraint{bounded(15, 45), bounded(25, 85)}
	sizes := []float64{35, 65}

	for _, delta := range []float64{-60, -20, -1, 1, 20, 60} {
		got := Adjust(sizes, 0, delta, panels)
		assert.GreaterOrEqual(t, got[0], panels[0].MinSize)
		assert.LessOrEqual(t, got[0], panels[0].MaxSize)
		assert.GreaterOrEqual(t, got[1], panels[1].MinSize)
		assert.LessOrEqual(t, got[1], panels[1].MaxSize)
	}
}

func TestAdjust_SequentialVersusCoalesced(t *testing.T) {
	panels := []Constraint{collapsible(20, 100, 0), bounded(0, 100)}
	start := []float64{0, 100}

	// Each small step lands inside the dead zone and snaps back.
	sequential := start
	for range 2 {
		sequential = Adjust(sequential, 0, 0.8, panels)
	}
	assert.InDeltaSlice(t, []float64{0, 100}, sequential, Epsilon)

	// The summed delta clears the dead zone in one call.
	coalesced := Adjust(start, 0, 1.6, panels)
	assert.InDeltaSlice(t, []float64{20, 80}, coalesced, Epsilon)
}

func TestAdjust_HysteresisRatio(t *testing.T) {
	panels := []Constraint{collapsible(20, 100, 0), bounded(0, 100)}
	start := []float64{0, 100}

	wide := DefaultPolicy()
	wide.HysteresisRatio = 0.5

	assert.InDeltaSlice(t, []float64{0, 100}, wide.Adjust(start, 0, 9, panels), Epsilon)
	assert.InDeltaSlice(t, []float64{20, 80}, wide.Adjust(start, 0, 11, panels), Epsilon)

	none := DefaultPolicy()
	none.HysteresisRatio = 0
	assert.InDeltaSlice(t, []float64{20, 80}, none.Adjust(start, 0, 0.01, panels), Epsilon)
}

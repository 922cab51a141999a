package render

import (
	"cmp"
	"math"
	"slices"
)

// Cells converts percentage sizes into whole cells out of extent using the
// largest remainder method. The result always sums to extent (for a positive
// extent and at least one positive size). Negative, NaN and infinite sizes
// count as zero.
func Cells(sizes []float64, extent int) []int {
	cells := make([]int, len(sizes))
	if len(sizes) == 0 || extent <= 0 {
		return cells
	}

	var total float64
	for _, s := range sizes {
		total += usable(s)
	}
	if total <= 0 {
		return cells
	}

	type remainder struct {
		index int
		frac  float64
	}
	rems := make([]remainder, len(sizes))

	used := 0
	for i, s := range sizes {
		exact := usable(s) / total * float64(extent)
		cells[i] = int(math.Floor(exact))
		used += cells[i]
		rems[i] = remainder{index: i, frac: exact - float64(cells[i])}
	}

	slices.SortStableFunc(rems, func(a, b remainder) int { return cmp.Compare(b.frac, a.frac) })
	for k := 0; used < extent; k++ {
		cells[rems[k%len(rems)].index]++
		used++
	}
	return cells
}

// usable maps a size to its drawable amount.
func usable(s float64) float64 {
	if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		return 0
	}
	return s
}

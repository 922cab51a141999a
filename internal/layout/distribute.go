package layout

// Distribute returns a size vector with one entry per panel.
//
// Each panel is seeded with current[i] when current has that index, else its
// DefaultSize, else 0. A zero seed becomes an equal share of the total. Seeds
// are clamped to [MinSize, MaxSize], the leftover is split evenly across grow
// panels (clamped again), and finally the vector is normalized according to
// p.Normalization.
func (p Policy) Distribute(panels []Constraint, current []float64) []float64 {
	sizes := make([]float64, len(panels))
	if len(panels) == 0 {
		return sizes
	}

	remaining := Total
	for i, panel := range panels {
		size := panel.DefaultSize.Resolve(0)
		if i < len(current) {
			size = current[i]
		}
		if size == 0 {
			size = Total / float64(len(panels))
		}

		size = Clamp(size, panel.MinSize, panel.MaxSize)
		sizes[i] = size
		remaining -= size
	}

	if remaining != 0 {
		grow(sizes, panels, remaining)
	}

	return p.normalize(sizes, panels)
}

// grow splits remaining evenly across grow panels. Clamping can leave part
// of it unabsorbed.
func grow(sizes []float64, panels []Constraint, remaining float64) {
	var growing []int
	for i, panel := range panels {
		if panel.Grow {
			growing = append(growing, i)
		}
	}
	if len(growing) == 0 {
		return
	}

	share := remaining / float64(len(growing))
	for _, i := range growing {
		sizes[i] = Clamp(sizes[i]+share, panels[i].MinSize, panels[i].MaxSize)
	}
}

func (p Policy) normalize(sizes []float64, panels []Constraint) []float64 {
	switch p.Normalization {
	case NormalizeNone:
		return sizes
	case NormalizeRespectBounds:
		if spread(sizes, panels) {
			return sizes
		}
	}
	return rescale(sizes)
}

// rescale scales every size by Total/sum so the vector sums to Total.
// Individual bounds are not consulted.
func rescale(sizes []float64) []float64 {
	total := Sum(sizes)
	if total != Total && total > 0 {
		for i := range sizes {
			sizes[i] = sizes[i] / total * Total
		}
	}
	return sizes
}

// spread moves the residual into panels that have room before their bound,
// one even share per pass. Every pass either absorbs the residual or pins at
// least one more panel to a bound, so len(panels)+1 passes are enough.
// Reports whether the vector now sums to Total.
func spread(sizes []float64, panels []Constraint) bool {
	for pass := 0; pass <= len(panels); pass++ {
		residual := Total - Sum(sizes)
		if ApproxEqual(residual, 0) {
			return true
		}

		var open []int
		for i, panel := range panels {
			if residual > 0 && sizes[i] < panel.MaxSize || residual < 0 && sizes[i] > panel.MinSize {
				open = append(open, i)
			}
		}
		if len(open) == 0 {
			return false
		}

		share := residual / float64(len(open))
		for _, i := range open {
			sizes[i] = Clamp(sizes[i]+share, panels[i].MinSize, panels[i].MaxSize)
		}
	}
	return ApproxEqual(Sum(sizes), Total)
}

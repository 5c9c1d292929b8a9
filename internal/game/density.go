package game

// Density tracks the user-adjustable ray count. It belongs to the
// input side of the frame loop: the visibility core receives the
// current count as a plain parameter and never mutates it.
type Density struct {
	count int
	max   int
}

// NewDensity returns a counter starting at initial, clamped to [0, max].
func NewDensity(initial, max int) Density {
	return Density{count: clampInt(initial, 0, max), max: max}
}

// Adjust moves the count by delta, clamping to [0, max]. Out-of-range
// requests are clamped, never an error.
func (d *Density) Adjust(delta int) {
	d.count = clampInt(d.count+delta, 0, d.max)
}

// Count returns the current ray count.
func (d *Density) Count() int {
	return d.count
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package grid

import "math/rand"

// Random returns a height x width map in which each cell is
// impassable with probability density, drawn from rnd.
func Random(rnd *rand.Rand, height, width uint32, density float64) *Bool2D {
	m := New(height, width)
	for i := range m.values {
		m.values[i] = rnd.Float64() >= density
	}
	return m
}

package vecmath

import (
	"math"
	"math/rand"
)

// RandomUnitVector returns a uniformly distributed point on the unit
// sphere, using rejection sampling the way the teacher's sampling
// helpers generate hemisphere/sphere directions.
func RandomUnitVector(rng *rand.Rand) Vector {
	for {
		p := Vector{
			X: 2*rng.Float64() - 1,
			Y: 2*rng.Float64() - 1,
			Z: 2*rng.Float64() - 1,
		}
		lengthSq := p.LengthSquared()
		if lengthSq > 1e-160 && lengthSq <= 1 {
			return p.Scale(1 / math.Sqrt(lengthSq))
		}
	}
}

// RandomInUnitDisk returns a uniformly distributed point within the
// unit disk in the XY plane, used for depth-of-field aperture sampling.
func RandomInUnitDisk(rng *rand.Rand) (x, y float64) {
	for {
		x = 2*rng.Float64() - 1
		y = 2*rng.Float64() - 1
		if x*x+y*y <= 1 {
			return x, y
		}
	}
}

// RandomRange returns a uniform float64 in [lo, hi).
func RandomRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

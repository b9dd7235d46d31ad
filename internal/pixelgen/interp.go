package pixelgen

import (
	"math"
)

// Fade curves remap a linear interpolation parameter t in [0,1] to a
// smoothed weight, hiding lattice seams in coherent noise.

// LinearFade is the identity curve.
func LinearFade(t Real) Real {
	return t
}

// CosineFade is (1 - cos(tπ)) / 2.
func CosineFade(t Real) Real {
	return (1 - math.Cos(t*math.Pi)) / 2
}

// SmoothFade is Perlin's quintic 6t^5 - 15t^4 + 10t^3. Zero first and second
// derivative at both ends, which keeps stacked octaves seam-free.
func SmoothFade(t Real) Real {
	return t * t * t * (t*(t*6-15) + 10)
}

// Lerp interpolates between a and b by t.
func Lerp(a, b, t Real) Real {
	return a + t*(b-a)
}

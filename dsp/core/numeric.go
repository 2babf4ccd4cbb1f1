package core

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

const defaultEpsilon = 1e-12

// Float is the sample precision of the engine: float32 or float64.
type Float interface {
	algofft.Float
}

// Complex is the spectrum precision matching a Float.
type Complex interface {
	algofft.Complex
}

// averageSplit is the length from which Average switches to an
// incremental mean.
const averageSplit = 1000

// Average returns the arithmetic mean of x, or 0 for an empty slice.
//
// Short slices are summed and divided once. Longer ones use an incremental
// mean so the accumulator stays in the magnitude range of the samples.
func Average[F Float](x []F) F {
	n := len(x)
	if n == 0 {
		return 0
	}

	if n < averageSplit {
		var sum F
		for _, v := range x {
			sum += v
		}
		return sum / F(n)
	}

	var mean F
	for i, v := range x {
		mean += (v - mean) / F(i+1)
	}
	return mean
}

// NearlyEqual reports whether a and b are equal within eps, absolute for
// values near zero and relative otherwise.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// WrapPhase maps an angle in radians to (-pi, pi].
func WrapPhase(phi float64) float64 {
	phi = math.Mod(phi, 2*math.Pi)
	if phi <= -math.Pi {
		phi += 2 * math.Pi
	} else if phi > math.Pi {
		phi -= 2 * math.Pi
	}
	return phi
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// PrecisionBits reports the mantissa width of F, 24 or 53.
func PrecisionBits[F Float]() int {
	var z F
	if _, ok := any(z).(float32); ok {
		return 24
	}
	return 53
}

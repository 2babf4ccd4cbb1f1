package frequency

import (
	"math"

	"github.com/cwbudde/algo-lockin/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// PeakInfo describes the largest bin of a magnitude spectrum.
type PeakInfo struct {
	Bin       int     `yaml:"bin"`
	Frequency float64 `yaml:"frequency"` // bin center (Hz)
	Magnitude float64 `yaml:"magnitude"`
	// Refined is the parabolic interpolation of the peak position (Hz).
	Refined float64 `yaml:"refined"`
}

// Peak returns the largest bin of magnitude. Bins 0 and the last bin are
// not refined.
func Peak[F core.Float](magnitude []F, resolution float64) PeakInfo {
	if len(magnitude) == 0 {
		return PeakInfo{}
	}
	x := core.ToFloat64(magnitude)
	k := floats.MaxIdx(x)
	p := PeakInfo{
		Bin:       k,
		Frequency: float64(k) * resolution,
		Magnitude: x[k],
		Refined:   float64(k) * resolution,
	}
	if k > 0 && k < len(x)-1 {
		a, b, c := x[k-1], x[k], x[k+1]
		if denom := a - 2*b + c; denom != 0 {
			p.Refined = (float64(k) + 0.5*(a-c)/denom) * resolution
		}
	}
	return p
}

// Centroid returns the magnitude weighted mean frequency in Hz.
//
//	centroid = sum(k*fr * |X_k|) / sum(|X_k|)
func Centroid[F core.Float](magnitude []F, resolution float64) float64 {
	x := core.ToFloat64(magnitude)
	total := floats.Sum(x)
	if len(x) < 2 || total == 0 {
		return 0
	}
	var weighted float64
	for k, v := range x {
		weighted += float64(k) * resolution * v
	}
	return weighted / total
}

// Bandwidth returns the 3 dB bandwidth around the spectral peak in Hz,
// interpolating linearly between the bins that straddle peak/sqrt(2).
func Bandwidth[F core.Float](magnitude []F, resolution float64) float64 {
	x := core.ToFloat64(magnitude)
	n := len(x)
	if n < 2 {
		return 0
	}
	peakBin := floats.MaxIdx(x)
	if x[peakBin] <= 0 {
		return 0
	}
	threshold := x[peakBin] / math.Sqrt2

	lower := 0.0
	for i := peakBin; i >= 1; i-- {
		if x[i-1] <= threshold && x[i] > threshold {
			lower = crossing(i-1, x[i-1], x[i], threshold)
			break
		}
	}
	upper := float64(n - 1)
	for i := peakBin; i < n-1; i++ {
		if x[i+1] <= threshold && x[i] > threshold {
			upper = crossing(i, x[i], x[i+1], threshold)
			break
		}
	}
	if upper < lower {
		return 0
	}
	return (upper - lower) * resolution
}

// crossing returns the fractional bin between k and k+1 where the
// magnitude reaches threshold.
func crossing(k int, lo, hi, threshold float64) float64 {
	denom := hi - lo
	if denom == 0 {
		return float64(k) + 0.5
	}
	return float64(k) + (threshold-lo)/denom
}

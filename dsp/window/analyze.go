package window

import "math"

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is S1/N, the DC response of the window.
	CoherentGain float64
	// NENBW is the normalized equivalent noise bandwidth in bins.
	NENBW float64
	// Bandwidth3dB is the two-sided half-power main lobe width in bins.
	Bandwidth3dB float64
	// ScallopLossdB is the response half a bin off center relative to DC.
	ScallopLossdB float64
	// HighestSidelobedB is the largest response past the main lobe relative to DC.
	HighestSidelobedB float64
}

// Analyze evaluates the discrete-time Fourier transform of coeffs on a fine
// grid to characterize the window's main lobe and side lobes.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	var s1, s2 float64
	for _, c := range coeffs {
		s1 += c
		s2 += c * c
	}
	dc := s1 * s1
	if dc == 0 {
		return Analysis{}
	}

	nf := float64(n)
	return Analysis{
		CoherentGain:      s1 / nf,
		NENBW:             nf * s2 / dc,
		Bandwidth3dB:      halfPowerWidth(coeffs, dc) * nf,
		ScallopLossdB:     10 * math.Log10(responseSq(coeffs, 0.5/nf)/dc),
		HighestSidelobedB: highestSidelobe(coeffs, dc),
	}
}

// responseSq returns |W(f)|^2 at the normalized frequency f in cycles per sample.
func responseSq(coeffs []float64, f float64) float64 {
	var re, im float64
	omega := 2 * math.Pi * f
	for k, c := range coeffs {
		s, co := math.Sincos(omega * float64(k))
		re += c * co
		im -= c * s
	}
	return re*re + im*im
}

// halfPowerWidth bisects for the frequency where the response drops to half
// of the DC power and returns the two-sided width.
func halfPowerWidth(coeffs []float64, dc float64) float64 {
	lo, hi := 0.0, 0.5
	for range 60 {
		mid := (lo + hi) / 2
		if responseSq(coeffs, mid) > dc/2 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 2 * lo
}

// highestSidelobe walks down the main lobe until the response turns upward
// and reports the largest value seen afterwards.
func highestSidelobe(coeffs []float64, dc float64) float64 {
	step := 1 / (8 * float64(len(coeffs)))
	prev := dc
	inMain := true
	peak := 0.0
	for f := step; f < 0.5; f += step {
		v := responseSq(coeffs, f)
		if inMain {
			if v > prev && prev < dc/10 {
				inMain = false
				peak = v
			}
			prev = v
			continue
		}
		peak = max(peak, v)
	}
	if peak <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(peak/dc)
}

package spectrum

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-lockin/dsp/core"
	"github.com/cwbudde/algo-lockin/internal/fourier"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

// getScratch returns re, im and mag slices of length n backed by one
// pooled buffer.
func getScratch(n int) (re, im, mag []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	buf.data = core.EnsureLen(buf.data, 3*n)
	return buf.data[:n], buf.data[n : 2*n], buf.data[2*n:], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude[F core.Float, C core.Complex](in []C) []F {
	if len(in) == 0 {
		return nil
	}
	out := make([]F, len(in))
	AccumulateMagnitude(out, in)
	return out
}

// AccumulateMagnitude adds |X[k]| to acc[k]. acc and in must have the same
// length. The float64 path runs on the vectorized magnitude kernel.
func AccumulateMagnitude[F core.Float, C core.Complex](acc []F, in []C) {
	if acc64, ok := any(acc).([]float64); ok {
		re, im, mag, buf := getScratch(len(in))
		for i, z := range in {
			re[i], im[i] = fourier.Parts[float64](z)
		}
		MagnitudeFromParts(mag, re, im)
		for i, m := range mag {
			acc64[i] += m
		}
		putScratch(buf)
		return
	}

	for i, z := range in {
		acc[i] += fourier.Abs[F](z)
	}
}

// MagnitudeFromParts computes |X[k]| = sqrt(re[k]^2 + im[k]^2) into dst.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// UnwrapPhase removes 2*pi jumps between consecutive phase values.
func UnwrapPhase[F core.Float](phase []F) []F {
	if len(phase) == 0 {
		return nil
	}
	out := make([]F, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := float64(phase[i] - phase[i-1])
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi * math.Ceil((d-math.Pi)/(2*math.Pi))
		case d < -math.Pi:
			offset += 2 * math.Pi * math.Ceil((-d-math.Pi)/(2*math.Pi))
		}
		out[i] = F(float64(phase[i]) + offset)
	}
	return out
}

// Package testutil provides deterministic recordings and tolerance checks
// shared by the package tests.
package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-lockin/dsp/core"
)

// Tone generates amplitude*sin(2*pi*freqHz*i/sampleRate + phase).
func Tone[F core.Float](freqHz, sampleRate, amplitude, phase float64, length int) []F {
	out := make([]F, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = F(amplitude * math.Sin(step*float64(i)+phase))
	}
	return out
}

// DeterministicSine generates a float64 sine wave starting at phase zero.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	return Tone[float64](freqHz, sampleRate, amplitude, 0, length)
}

// TwoTone sums two sine waves of unit amplitude.
func TwoTone(f1, f2, sampleRate float64, length int) []float64 {
	a := DeterministicSine(f1, sampleRate, 1, length)
	b := DeterministicSine(f2, sampleRate, 1, length)
	for i := range a {
		a[i] += b[i]
	}
	return a
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Add returns the element-wise sum of a and b over the shorter length.
func Add(a, b []float64) []float64 {
	out := make([]float64, min(len(a), len(b)))
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}

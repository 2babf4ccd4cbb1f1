package fir

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-lockin/dsp/core"
	"github.com/cwbudde/algo-lockin/dsp/window"
)

// Kernel returns the windowed sinc kernel of length n together with the
// window that tapered it. High-pass and band kernels need an odd length, so
// an even n is reduced by one for them.
func (f *FilterT[F, C]) Kernel(n int) ([]F, *window.Window[F], error) {
	if f.kind == KindNone {
		return nil, nil, fmt.Errorf("fir: %w: %s has no kernel", core.ErrInvalidConfiguration, f.kind)
	}
	if f.kind.OddLength() && n%2 == 0 {
		n--
	}
	if n < 1 {
		return nil, nil, fmt.Errorf("fir: %w: kernel length %d", core.ErrInsufficientData, n)
	}

	fs := float64(f.sampleRate)
	ft1 := float64(f.f1) / fs
	ft2 := float64(f.f2) / fs

	h := make([]F, n)
	shift := float64(n-1) / 2
	for i := range n / 2 {
		x := float64(i) - shift
		var v float64
		switch f.kind {
		case KindLowPass:
			v = sincAt(ft1, x)
		case KindHighPass:
			v = -sincAt(ft1, x)
		case KindBandPass:
			v = sincAt(ft2, x) - sincAt(ft1, x)
		case KindBandStop:
			v = sincAt(ft1, x) - sincAt(ft2, x)
		}
		h[i] = F(v)
		h[n-1-i] = F(v)
	}

	if n%2 == 1 {
		var center float64
		switch f.kind {
		case KindLowPass:
			center = 2 * ft1
		case KindHighPass:
			center = 1 - 2*ft1
		case KindBandPass:
			center = 2 * (ft2 - ft1)
		case KindBandStop:
			center = 1 - 2*(ft2-ft1)
		}
		h[n/2] = F(center)
	}

	win, err := window.GenerateT[F](f.cfg.window, n)
	if err != nil {
		return nil, nil, fmt.Errorf("fir: %w", err)
	}
	if err := win.ApplyInPlace(h); err != nil {
		return nil, nil, fmt.Errorf("fir: %w", err)
	}
	return h, win, nil
}

// sincAt is the ideal low-pass impulse response sin(2*pi*ft*x)/(pi*x) for
// a normalized cutoff ft at a non-zero offset x from the center tap.
func sincAt(ft, x float64) float64 {
	return math.Sin(2*math.Pi*ft*x) / (math.Pi * x)
}

// Response computes the frequency response of the length-n kernel at the
// given frequency (Hz), referenced to the kernel center so a symmetric
// kernel yields a real value.
func (f *FilterT[F, C]) Response(freqHz float64, n int) (complex128, error) {
	h, _, err := f.Kernel(n)
	if err != nil {
		return 0, err
	}
	w := 2 * math.Pi * freqHz / float64(f.sampleRate)
	center := float64(len(h)-1) / 2
	var resp complex128
	for k, c := range h {
		resp += complex(float64(c), 0) * cmplx.Exp(complex(0, -w*(float64(k)-center)))
	}
	return resp, nil
}

// MagnitudeDB returns the magnitude response of the length-n kernel in dB.
func (f *FilterT[F, C]) MagnitudeDB(freqHz float64, n int) (float64, error) {
	resp, err := f.Response(freqHz, n)
	if err != nil {
		return 0, err
	}
	return core.LinearToDB(cmplx.Abs(resp)), nil
}

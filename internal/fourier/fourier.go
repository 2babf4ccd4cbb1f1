// Package fourier provides real-input discrete Fourier transforms of any
// length on top of power-of-two algo-fft plans.
//
// Power-of-two lengths run directly on a plan. Other lengths are evaluated
// with Bluestein's chirp-z algorithm, so the segment and filter lengths of
// the DSP packages do not have to be powers of two.
package fourier

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-lockin/dsp/core"
)

// minPlanLen is the smallest plan length used; shorter power-of-two
// transforms go through the chirp path.
const minPlanLen = 16

var (
	// ErrLength is returned for a transform length below one.
	ErrLength = errors.New("fourier: length must be positive")
	// ErrBufferSize is returned when a buffer does not match the plan length.
	ErrBufferSize = errors.New("fourier: buffer size mismatch")
)

// Real computes forward (real to half complex) and inverse (half complex to
// real) transforms of a fixed length n.
//
// A Real owns its scratch buffers and is not safe for concurrent use.
type Real[F core.Float, C core.Complex] struct {
	n    int
	m    int
	plan *algofft.Plan[C]

	// chirp and filter are nil on the direct power-of-two path.
	chirp  []C
	filter []C

	full []C
	work []C
	spec []C
}

// Real64 is the float64 specialization of Real.
type Real64 = Real[float64, complex128]

// Real32 is the float32 specialization of Real.
type Real32 = Real[float32, complex64]

// NewReal prepares transforms of length n.
func NewReal[F core.Float, C core.Complex](n int) (*Real[F, C], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrLength, n)
	}

	r := &Real[F, C]{n: n, full: make([]C, n)}
	if n == 1 {
		return r, nil
	}

	if isPowerOf2(n) && n >= minPlanLen {
		r.m = n
	} else {
		r.m = max(nextPowerOf2(2*n-1), minPlanLen)
	}

	plan, err := algofft.NewPlanT[C](r.m)
	if err != nil {
		return nil, fmt.Errorf("fourier: failed to create FFT plan: %w", err)
	}
	r.plan = plan
	r.work = make([]C, r.m)
	r.spec = make([]C, r.m)

	if r.m != n {
		r.initChirp()
		if err := r.plan.Forward(r.spec, r.filter); err != nil {
			return nil, fmt.Errorf("fourier: chirp transform: %w", err)
		}
		copy(r.filter, r.spec)
	}

	return r, nil
}

// initChirp fills chirp[k] = exp(-i*pi*k^2/n) and the zero-padded,
// wrapped conjugate chirp that is convolved with the modulated input.
func (r *Real[F, C]) initChirp() {
	n := r.n
	r.chirp = make([]C, n)
	r.filter = make([]C, r.m)

	twoN := uint64(2 * n)
	for k := range n {
		// k^2 mod 2n keeps the argument small for large k.
		k2 := (uint64(k) * uint64(k)) % twoN
		phi := -math.Pi * float64(k2) / float64(n)
		re, im := math.Cos(phi), math.Sin(phi)
		r.chirp[k] = cplx[C](re, im)
		r.filter[k] = cplx[C](re, -im)
		if k > 0 {
			r.filter[r.m-k] = cplx[C](re, -im)
		}
	}
}

// Len returns the transform length n.
func (r *Real[F, C]) Len() int { return r.n }

// Bins returns the number of non-redundant bins, n/2+1.
func (r *Real[F, C]) Bins() int { return r.n/2 + 1 }

// Forward writes the first n/2+1 bins of the unnormalized DFT of src to dst.
func (r *Real[F, C]) Forward(dst []C, src []F) error {
	if len(src) != r.n || len(dst) < r.Bins() {
		return fmt.Errorf("%w: src=%d dst=%d, n=%d", ErrBufferSize, len(src), len(dst), r.n)
	}

	for i, v := range src {
		r.full[i] = cplx[C](float64(v), 0)
	}

	if err := r.dft(r.full, r.full); err != nil {
		return err
	}

	copy(dst[:r.Bins()], r.full)
	return nil
}

// Inverse reconstructs the real sequence whose first n/2+1 bins are src,
// normalized by 1/n so Inverse(Forward(x)) == x. The imaginary parts of the
// DC and Nyquist bins are ignored.
func (r *Real[F, C]) Inverse(dst []F, src []C) error {
	bins := r.Bins()
	if len(dst) != r.n || len(src) < bins {
		return fmt.Errorf("%w: src=%d dst=%d, n=%d", ErrBufferSize, len(src), len(dst), r.n)
	}

	n := r.n
	re, _ := parts(src[0])
	r.full[0] = cplx[C](re, 0)
	for k := 1; k < bins; k++ {
		r.full[k] = src[k]
	}
	if n%2 == 0 {
		re, _ = parts(src[n/2])
		r.full[n/2] = cplx[C](re, 0)
	}
	for k := bins; k < n; k++ {
		re, im := parts(src[n-k])
		r.full[k] = cplx[C](re, -im)
	}

	// Inverse via conj(DFT(conj(X)))/n.
	conjugate(r.full)
	if err := r.dft(r.full, r.full); err != nil {
		return err
	}

	scale := 1 / float64(n)
	for i := range dst {
		re, _ := parts(r.full[i])
		dst[i] = F(re * scale)
	}
	return nil
}

// dft computes the unnormalized forward DFT of length n. dst and src may alias.
func (r *Real[F, C]) dft(dst, src []C) error {
	if r.n == 1 {
		dst[0] = src[0]
		return nil
	}

	if r.chirp == nil {
		if err := r.plan.Forward(r.work, src); err != nil {
			return fmt.Errorf("fourier: forward transform: %w", err)
		}
		copy(dst, r.work)
		return nil
	}

	for k := range r.n {
		r.work[k] = src[k] * r.chirp[k]
	}
	clear(r.work[r.n:])

	if err := r.plan.Forward(r.spec, r.work); err != nil {
		return fmt.Errorf("fourier: forward transform: %w", err)
	}
	for k := range r.spec {
		r.spec[k] *= r.filter[k]
	}
	// The plan's inverse is normalized by 1/m, matching the circular
	// convolution the chirp relies on.
	if err := r.plan.Inverse(r.work, r.spec); err != nil {
		return fmt.Errorf("fourier: inverse transform: %w", err)
	}

	for k := range r.n {
		dst[k] = r.work[k] * r.chirp[k]
	}
	return nil
}

func conjugate[C core.Complex](x []C) {
	for i, v := range x {
		re, im := parts(v)
		x[i] = cplx[C](re, -im)
	}
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

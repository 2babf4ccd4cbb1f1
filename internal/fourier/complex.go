package fourier

import (
	"math"

	"github.com/cwbudde/algo-lockin/dsp/core"
)

// cplx builds a C from float64 parts.
func cplx[C core.Complex](re, im float64) C {
	var z C
	switch p := any(&z).(type) {
	case *complex64:
		*p = complex(float32(re), float32(im))
	case *complex128:
		*p = complex(re, im)
	}
	return z
}

// parts returns the real and imaginary parts of z as float64.
func parts[C core.Complex](z C) (float64, float64) {
	switch v := any(z).(type) {
	case complex64:
		return float64(real(v)), float64(imag(v))
	case complex128:
		return real(v), imag(v)
	}
	return 0, 0
}

// Abs returns |z| in the precision of F.
func Abs[F core.Float, C core.Complex](z C) F {
	re, im := parts(z)
	return F(math.Hypot(re, im))
}

// Parts returns the real and imaginary parts of z in the precision of F.
func Parts[F core.Float, C core.Complex](z C) (F, F) {
	re, im := parts(z)
	return F(re), F(im)
}

// Scale returns z multiplied by the real factor s.
func Scale[F core.Float, C core.Complex](z C, s F) C {
	re, im := parts(z)
	return cplx[C](re*float64(s), im*float64(s))
}

// FromParts builds a C from parts in the precision of F.
func FromParts[F core.Float, C core.Complex](re, im F) C {
	return cplx[C](float64(re), float64(im))
}

package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-lockin/dsp/core"
)

// Window holds the coefficients of one window and their normalization sums.
// Coefficients are symmetric: Coeffs[i] == Coeffs[len-1-i].
type Window[F core.Float] struct {
	Type   Type
	Coeffs []F
	// S1 is the sum of the coefficients.
	S1 F
	// S2 is the sum of the squared coefficients.
	S2 F
}

// GenerateT returns the window t of the given length in precision F.
//
// Only the first half is evaluated; it is mirrored onto the second half and
// S1/S2 count each mirrored pair twice and the odd midpoint once. A window of
// length 1 is the single coefficient 1.
func GenerateT[F core.Float](t Type, length int) (*Window[F], error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}
	if !t.Valid() {
		return nil, fmt.Errorf("window: %w: unknown type %d", core.ErrInvalidConfiguration, int(t))
	}

	w := &Window[F]{Type: t, Coeffs: make([]F, length)}
	if length == 1 {
		w.Coeffs[0], w.S1, w.S2 = 1, 1, 1
		return w, nil
	}

	def := &definitions[t]
	last := float64(length - 1)
	half := length / 2

	var s1, s2 F
	for i := range half {
		c := F(evaluate(def, float64(i)/last))
		w.Coeffs[i] = c
		w.Coeffs[length-1-i] = c
		s1 += 2 * c
		s2 += 2 * c * c
	}
	if length%2 == 1 {
		c := F(evaluate(def, 0.5))
		w.Coeffs[half] = c
		s1 += c
		s2 += c * c
	}

	w.S1, w.S2 = s1, s2
	return w, nil
}

// Generate returns the float64 window t of the given length.
func Generate(t Type, length int) (*Window[float64], error) {
	return GenerateT[float64](t, length)
}

// Generate32 returns the float32 window t of the given length.
func Generate32(t Type, length int) (*Window[float32], error) {
	return GenerateT[float32](t, length)
}

// Len returns the number of coefficients.
func (w *Window[F]) Len() int { return len(w.Coeffs) }

// NENBW returns the normalized equivalent noise bandwidth N*S2/S1^2 in bins.
func (w *Window[F]) NENBW() (F, error) {
	if w.S1 == 0 || w.S2 == 0 {
		return 0, fmt.Errorf("window: %w: %s has zero sum", core.ErrNumericDegenerate, w.Type)
	}
	return F(len(w.Coeffs)) * w.S2 / (w.S1 * w.S1), nil
}

// ENBW returns the equivalent noise bandwidth in Hz for a frequency
// resolution in Hz.
func (w *Window[F]) ENBW(resolution F) (F, error) {
	nenbw, err := w.NENBW()
	if err != nil {
		return 0, err
	}
	return nenbw * resolution, nil
}

// Apply writes src multiplied by the window into dst.
func (w *Window[F]) Apply(dst, src []F) error {
	if len(src) != len(w.Coeffs) || len(dst) != len(w.Coeffs) {
		return fmt.Errorf("%w: window=%d src=%d dst=%d", errMismatchedLength, len(w.Coeffs), len(src), len(dst))
	}

	if d, ok := any(dst).([]float64); ok {
		vecmath.MulBlock(d, any(src).([]float64), any(w.Coeffs).([]float64))
		return nil
	}
	for i, c := range w.Coeffs {
		dst[i] = src[i] * c
	}
	return nil
}

// ApplyInPlace multiplies buf by the window.
func (w *Window[F]) ApplyInPlace(buf []F) error {
	if len(buf) != len(w.Coeffs) {
		return fmt.Errorf("%w: window=%d buf=%d", errMismatchedLength, len(w.Coeffs), len(buf))
	}

	if b, ok := any(buf).([]float64); ok {
		vecmath.MulBlockInPlace(b, any(w.Coeffs).([]float64))
		return nil
	}
	for i, c := range w.Coeffs {
		buf[i] *= c
	}
	return nil
}

// evaluate returns the window value at normalized position x in [0, 1].
func evaluate(def *definition, x float64) float64 {
	switch def.Family {
	case FamilyRectangular:
		return 1
	case FamilyPolynomial:
		return 1 - math.Pow(math.Abs(2*x-1), def.power)
	case FamilyKaiser:
		return kaiserAt(x, def.Alpha)
	default:
		return cosineSum(x, def.terms)
	}
}

func cosineSum(x float64, terms []float64) float64 {
	z := 2 * math.Pi * x
	sum := 0.0
	for k, a := range terms {
		sum += a * math.Cos(float64(k)*z)
	}
	return sum
}

// kaiserAt evaluates I0(pi*alpha*sqrt(1-u^2)) / I0(pi*alpha) with u = 2x-1.
func kaiserAt(x, alpha float64) float64 {
	u := 2*x - 1
	r := 1 - u*u
	if r < 0 {
		r = 0
	}
	beta := math.Pi * alpha
	return besselI0(beta*math.Sqrt(r)) / besselI0(beta)
}

// besselI0 is the power series of the modified Bessel function of the first
// kind, order zero. It converges quickly for the arguments used here
// (below 23).
func besselI0(x float64) float64 {
	q := x * x / 4
	sum, term := 1.0, 1.0
	for k := 1; k < 200; k++ {
		term *= q / float64(k*k)
		sum += term
		if term < sum*1e-17 {
			break
		}
	}
	return sum
}

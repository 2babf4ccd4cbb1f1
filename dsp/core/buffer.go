package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen[T any](buf []T, n int) []T {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]T, n)
}

// Zero sets all values in buf to their zero value.
func Zero[T any](buf []T) {
	clear(buf)
}

// ZeroPad returns a new slice of length n holding src followed by zeros.
// src is truncated when it is longer than n.
func ZeroPad[F Float](src []F, n int) []F {
	out := make([]F, n)
	copy(out, src)
	return out
}

// ToFloat64 widens x into a new float64 slice.
func ToFloat64[F Float](x []F) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}

// FromFloat64 narrows x into a new slice of F.
func FromFloat64[F Float](x []float64) []F {
	out := make([]F, len(x))
	for i, v := range x {
		out[i] = F(v)
	}
	return out
}

package buffer

import "github.com/cwbudde/algo-lockin/dsp/core"

// Buffer wraps a sample slice with reuse-friendly semantics.
type Buffer[F core.Float] struct {
	samples []F
}

// New returns a zero-filled Buffer of the given length.
func New[F core.Float](length int) *Buffer[F] {
	return &Buffer[F]{samples: make([]F, max(length, 0))}
}

// Samples returns the underlying slice.
func (b *Buffer[F]) Samples() []F {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer[F]) Len() int {
	return len(b.samples)
}

// Cap returns the capacity of the backing slice.
func (b *Buffer[F]) Cap() int {
	return cap(b.samples)
}

// Resize sets the length to n, reusing capacity when possible. All samples
// are zero afterwards.
func (b *Buffer[F]) Resize(n int) {
	b.samples = core.EnsureLen(b.samples, max(n, 0))
	core.Zero(b.samples)
}

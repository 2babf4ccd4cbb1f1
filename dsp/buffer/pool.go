package buffer

import (
	"sync"

	"github.com/cwbudde/algo-lockin/dsp/core"
)

// Pool recycles buffers between calls. It is safe for concurrent use.
type Pool[F core.Float] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[F core.Float]() *Pool[F] {
	return &Pool[F]{
		pool: sync.Pool{
			New: func() any {
				return &Buffer[F]{}
			},
		},
	}
}

// Get returns a zeroed Buffer of the requested length. Callers must return
// it via Put when done.
func (p *Pool[F]) Get(length int) *Buffer[F] {
	b := p.pool.Get().(*Buffer[F])
	b.Resize(length)
	return b
}

// Put returns b to the pool. The caller must not use b afterwards.
func (p *Pool[F]) Put(b *Buffer[F]) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}

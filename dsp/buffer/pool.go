package buffer

import "sync"

// Pool hands out fixed-length Buffers backed by a sync.Pool so that
// per-window snapshots do not allocate in steady state.
type Pool struct {
	length int
	pool   sync.Pool
}

// NewPool returns a Pool of Buffers holding length samples.
func NewPool(length int) *Pool {
	if length < 0 {
		length = 0
	}
	return &Pool{
		length: length,
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Length returns the buffer length served by the pool.
func (p *Pool) Length() int {
	return p.length
}

// Get returns a zeroed Buffer of the pool length.
// Callers must return it via Put when done.
func (p *Pool) Get() *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(p.length)
	b.Zero()
	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}

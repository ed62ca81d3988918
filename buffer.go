package pfmt

import "sync"

// buffer is the scratch sink behind Sprintf, pooled to keep repeated renders
// allocation-light.
type buffer []byte

var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 256)
		return (*buffer)(&b)
	},
}

func newBuffer() *buffer {
	return bufPool.Get().(*buffer)
}

func (b *buffer) free() {
	// Return only reasonably-sized buffers to the pool.
	const maxKeep = 16 << 10
	if cap(*b) <= maxKeep {
		*b = (*b)[:0]
		bufPool.Put(b)
	}
}

func (b *buffer) Write(p []byte) (int, error) {
	*b = append(*b, p...)
	return len(p), nil
}

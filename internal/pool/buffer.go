// Package pool provides a pooled output buffer for Encode, so that repeated
// Encode calls in a long-running process (a sync server, a backup tool)
// don't allocate and discard one delta-sized buffer per call.
package pool

import "sync"

// DefaultBufferSize is the initial capacity of a pooled Buffer, sized for
// small-to-medium deltas; larger deltas simply grow the buffer once, same as
// append would.
const DefaultBufferSize = 4 * 1024

// MaxPooledBufferSize bounds how large a Buffer may be and still be returned
// to the pool; anything bigger is one-off and discarded so that one huge
// delta doesn't permanently inflate the pool's steady-state memory.
const MaxPooledBufferSize = 4 * 1024 * 1024

// Buffer wraps a byte slice sized for accumulating one delta's worth of
// output.
type Buffer struct {
	B []byte
}

// Reset empties the buffer while retaining its backing array.
func (buf *Buffer) Reset() {
	buf.B = buf.B[:0]
}

var bufferPool = sync.Pool{
	New: func() any {
		return &Buffer{B: make([]byte, 0, DefaultBufferSize)}
	},
}

// Get retrieves an empty Buffer from the pool.
func Get() *Buffer {
	buf, _ := bufferPool.Get().(*Buffer)

	return buf
}

// Put returns buf to the pool, discarding it instead if it has grown beyond
// MaxPooledBufferSize.
func Put(buf *Buffer) {
	if buf == nil {
		return
	}

	if cap(buf.B) > MaxPooledBufferSize {
		return
	}

	buf.Reset()
	bufferPool.Put(buf)
}

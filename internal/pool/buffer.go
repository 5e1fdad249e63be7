// Package pool provides a pooled growable byte buffer. The LowCardinality
// codec borrows one as scratch space when encoding dictionary keys.
package pool

import "sync"

const (
	// DefaultSize is the initial capacity handed out by Get.
	DefaultSize = 4 * 1024
	// MaxThreshold is the capacity above which a returned buffer is discarded
	// instead of pooled, to avoid retaining one oversized column's memory.
	MaxThreshold = 256 * 1024
)

// Buffer is a growable byte buffer with amortized growth, mirroring
// bytes.Buffer but exposing the raw slice for direct little-endian writes.
type Buffer struct {
	b []byte
}

// NewBuffer creates a Buffer with the given initial capacity.
func NewBuffer(size int) *Buffer {
	return &Buffer{b: make([]byte, 0, size)}
}

// Bytes returns the accumulated bytes. The slice is valid until the next
// Grow, Write, or Reset call.
func (buf *Buffer) Bytes() []byte { return buf.b }

// Len returns the number of bytes written so far.
func (buf *Buffer) Len() int { return len(buf.b) }

// Reset empties the buffer but keeps its backing array for reuse.
func (buf *Buffer) Reset() { buf.b = buf.b[:0] }

// Grow ensures at least n more bytes can be appended without reallocating.
func (buf *Buffer) Grow(n int) {
	available := cap(buf.b) - len(buf.b)
	if available >= n {
		return
	}

	growBy := DefaultSize
	if cap(buf.b) > 4*DefaultSize {
		growBy = cap(buf.b) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(buf.b), len(buf.b)+growBy)
	copy(newBuf, buf.b)
	buf.b = newBuf
}

// Write appends data to the buffer, growing it as needed.
func (buf *Buffer) Write(data []byte) {
	buf.Grow(len(data))
	buf.b = append(buf.b, data...)
}

// Extend grows Len() by n bytes in place, returning the slice for the
// extension so the caller can fill it directly (e.g. a fixed-width field).
// The extension is not cleared: after a Reset it can still hold bytes
// written earlier. Callers must Grow(n) first.
func (buf *Buffer) Extend(n int) []byte {
	start := len(buf.b)
	buf.b = buf.b[:start+n]
	return buf.b[start : start+n]
}

// Pool recycles Buffers via sync.Pool.
type Pool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewPool creates a Pool whose buffers start at defaultSize and are discarded
// (not retained) once they grow past maxThreshold.
func NewPool(defaultSize, maxThreshold int) *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any { return NewBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a Buffer from the pool.
func (p *Pool) Get() *Buffer {
	buf, _ := p.pool.Get().(*Buffer)
	return buf
}

// Put returns a Buffer to the pool for reuse, or discards it if it grew too large.
func (p *Pool) Put(buf *Buffer) {
	if buf == nil {
		return
	}
	if p.maxThreshold > 0 && cap(buf.b) > p.maxThreshold {
		return
	}
	buf.Reset()
	p.pool.Put(buf)
}

var defaultPool = NewPool(DefaultSize, MaxThreshold)

// Get retrieves a Buffer from the package-level default pool.
func Get() *Buffer { return defaultPool.Get() }

// Put returns a Buffer to the package-level default pool.
func Put(buf *Buffer) { defaultPool.Put(buf) }

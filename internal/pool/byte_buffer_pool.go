// Package pool provides a reusable byte buffer pool for assembling
// packed GFF output without an allocation per Pack call.
package pool

import (
	"io"
	"sync"
)

// DefaultSize and MaxThreshold size the package-level default pool.
// GFF files (character sheets, dialogs, modules) are typically well
// under a megabyte; buffers that grow past MaxThreshold are discarded
// instead of retained, so one oversized file doesn't bloat the pool.
const (
	DefaultSize  = 4 * 1024
	MaxThreshold = 1024 * 1024
)

// ByteBuffer is a growable byte slice meant to be reused via Pool.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given starting capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Len returns the number of bytes written so far.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Reset empties the buffer while retaining its capacity.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Grow ensures the buffer can accept requiredBytes more bytes without
// reallocating. Capacity grows by DefaultSize (or by 25% of the current
// capacity once past 4x the default size), or by requiredBytes when
// that is larger.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := DefaultSize
	if cap(bb.B) > 4*DefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write implements io.Writer, growing the buffer as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.Grow(len(data))
	bb.B = append(bb.B, data...)

	return len(data), nil
}

// MustWrite appends data, growing the buffer as needed. Write never
// fails for a ByteBuffer, so this drops the unused error return.
func (bb *ByteBuffer) MustWrite(data []byte) {
	_, _ = bb.Write(data)
}

// WriteTo implements io.WriterTo.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)

	return int64(n), err
}

// Pool is a sync.Pool of ByteBuffers with a size ceiling above which
// buffers are discarded rather than retained.
type Pool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewPool creates a Pool whose buffers start at defaultSize and are
// discarded on Put once their capacity exceeds maxThreshold (0 for no
// limit).
func NewPool(defaultSize, maxThreshold int) *Pool {
	return &Pool{
		pool:         sync.Pool{New: func() any { return NewByteBuffer(defaultSize) }},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a reset ByteBuffer from the pool.
func (p *Pool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)

	return bb
}

// Put returns bb to the pool, discarding it instead if it grew past
// maxThreshold.
func (p *Pool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var defaultPool = NewPool(DefaultSize, MaxThreshold)

// Get retrieves a ByteBuffer from the package's default pool.
func Get() *ByteBuffer { return defaultPool.Get() }

// Put returns a ByteBuffer to the package's default pool.
func Put(bb *ByteBuffer) { defaultPool.Put(bb) }

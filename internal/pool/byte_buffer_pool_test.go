package pool

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(16)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 16, cap(bb.B))
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(0)
	bb.MustWrite([]byte("hello"))
	assert.Equal(t, []byte("hello"), bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(0)
	bb.MustWrite([]byte("hello"))
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.GreaterOrEqual(t, cap(bb.B), 5)
}

func TestByteBuffer_Len(t *testing.T) {
	bb := NewByteBuffer(0)
	bb.MustWrite([]byte("abc"))
	assert.Equal(t, 3, bb.Len())
}

func TestByteBuffer_MustWrite_Appends(t *testing.T) {
	bb := NewByteBuffer(0)
	bb.MustWrite([]byte("ab"))
	bb.MustWrite([]byte("cd"))
	assert.Equal(t, []byte("abcd"), bb.Bytes())
}

func TestByteBuffer_Write_ReturnsLength(t *testing.T) {
	bb := NewByteBuffer(0)
	n, err := bb.Write([]byte("abcde"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(0)
	bb.MustWrite([]byte("payload"))

	var dst bytes.Buffer
	n, err := bb.WriteTo(&dst)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "payload", dst.String())
}

func TestByteBuffer_WriteTo_PropagatesError(t *testing.T) {
	bb := NewByteBuffer(0)
	bb.MustWrite([]byte("payload"))

	_, err := bb.WriteTo(errorWriter{})
	assert.Error(t, err)
}

func TestByteBuffer_Grow_NoopWhenCapacitySuffices(t *testing.T) {
	bb := NewByteBuffer(64)
	before := cap(bb.B)
	bb.Grow(10)
	assert.Equal(t, before, cap(bb.B))
}

func TestByteBuffer_Grow_ExpandsWhenNeeded(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.Grow(100)
	assert.GreaterOrEqual(t, cap(bb.B), 100)
}

func TestByteBuffer_Grow_PreservesExistingData(t *testing.T) {
	bb := NewByteBuffer(0)
	bb.MustWrite([]byte("keepme"))
	bb.Grow(1000)
	assert.Equal(t, []byte("keepme"), bb.Bytes())
}

func TestGet_ReturnsResetBuffer(t *testing.T) {
	bb := Get()
	assert.Equal(t, 0, bb.Len())
	Put(bb)
}

func TestPut_NilBufferIsNoop(t *testing.T) {
	assert.NotPanics(t, func() { Put(nil) })
}

func TestGetPut_BufferReuse(t *testing.T) {
	bb := Get()
	bb.MustWrite([]byte("data"))
	Put(bb)

	again := Get()
	assert.Equal(t, 0, again.Len())
	Put(again)
}

func TestPool_ResetsOnPut(t *testing.T) {
	p := NewPool(8, 0)
	bb := p.Get()
	bb.MustWrite([]byte("abc"))
	p.Put(bb)

	reused := p.Get()
	assert.Equal(t, 0, reused.Len())
}

func TestPool_MaxThreshold_DiscardsOversizedBuffer(t *testing.T) {
	p := NewPool(8, 32)
	bb := p.Get()
	bb.Grow(64)
	p.Put(bb)

	// The oversized buffer should not come back; a fresh one is made instead.
	fresh := p.Get()
	assert.Less(t, cap(fresh.B), 64)
}

func TestPool_MaxThreshold_ZeroMeansNoLimit(t *testing.T) {
	p := NewPool(8, 0)
	bb := p.Get()
	bb.Grow(1 << 20)
	assert.NotPanics(t, func() { p.Put(bb) })
}

func TestPool_ConcurrentAccess(t *testing.T) {
	p := NewPool(16, 1024)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				bb := p.Get()
				bb.MustWrite([]byte("x"))
				p.Put(bb)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferWriteGrow(t *testing.T) {
	buf := NewBuffer(4)
	buf.Write([]byte("hello"))
	require.Equal(t, []byte("hello"), buf.Bytes())
	require.Equal(t, 5, buf.Len())

	buf.Reset()
	require.Equal(t, 0, buf.Len())
}

func TestBufferExtend(t *testing.T) {
	buf := NewBuffer(8)
	buf.Grow(4)
	ext := buf.Extend(4)
	copy(ext, []byte{1, 2, 3, 4})
	require.Equal(t, []byte{1, 2, 3, 4}, buf.Bytes())
}

func TestPoolPutDiscardsOversized(t *testing.T) {
	p := NewPool(8, 16)
	buf := p.Get()
	buf.Write(make([]byte, 64))
	p.Put(buf)

	fresh := p.Get()
	require.NotSame(t, buf, fresh)
	require.Equal(t, 0, fresh.Len())
}

func TestDefaultPool(t *testing.T) {
	buf := Get()
	buf.Write([]byte("x"))
	Put(buf)
}

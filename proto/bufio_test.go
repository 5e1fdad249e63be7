package proto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chdriver/chwire/errs"
)

func TestUvarintRoundTrip(t *testing.T) {
	tests := []uint64{0, 1, 127, 128, 300, 1 << 20, 1<<63 - 1}

	for _, v := range tests {
		var buf bytes.Buffer
		w := NewBufWriter(&buf)
		require.NoError(t, w.WriteUvarint(v))

		r := NewBufReader(&buf)
		got, err := r.ReadUvarint()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestReadFullShortBufferErrors(t *testing.T) {
	r := NewBufReader(bytes.NewReader([]byte{1, 2}))
	buf := make([]byte, 4)
	err := r.ReadFull(buf)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrProtocolError)
}

func TestReadUvarintTruncatedErrors(t *testing.T) {
	// continuation bit set on the only byte available: the stream ends
	// before the varint terminates.
	r := NewBufReader(bytes.NewReader([]byte{0x80}))
	_, err := r.ReadUvarint()
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrProtocolError)
}

func TestReadByteOnEmptyStreamErrors(t *testing.T) {
	r := NewBufReader(bytes.NewReader(nil))
	_, err := r.ReadByte()
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrProtocolError)
}

func TestFixedWidthHelpers(t *testing.T) {
	var b [8]byte
	PutUint16(b[:2], 0x0102)
	require.Equal(t, uint16(0x0102), Uint16(b[:2]))

	PutUint32(b[:4], 0x01020304)
	require.Equal(t, uint32(0x01020304), Uint32(b[:4]))

	PutUint64(b[:], 0x0102030405060708)
	require.Equal(t, uint64(0x0102030405060708), Uint64(b[:]))
}

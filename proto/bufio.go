package proto

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/chdriver/chwire/errs"
)

// BufReader is the default Reader implementation, backed by any io.Reader
// (typically a bufio.Reader wrapping the transport's TCP connection). It is
// also what the codec tests use directly against a bytes.Reader.
type BufReader struct {
	r io.Reader
}

// NewBufReader wraps r as a proto.Reader.
func NewBufReader(r io.Reader) *BufReader {
	return &BufReader{r: r}
}

func (r *BufReader) ReadFull(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	_, err := io.ReadFull(r.r, buf)
	if err != nil {
		return fmt.Errorf("%w: read %d bytes: %v", errs.ErrProtocolError, len(buf), err)
	}

	return nil
}

func (r *BufReader) ReadByte() (byte, error) {
	var b [1]byte
	if err := r.ReadFull(b[:]); err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadUvarint reads a ClickHouse-style LEB128 unsigned varint: 7 payload bits
// per byte, little-endian, high bit set means another byte follows.
func (r *BufReader) ReadUvarint() (uint64, error) {
	var result uint64
	for shift := uint(0); shift < 64; shift += 7 {
		b, err := r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("%w: truncated varint: %v", errs.ErrProtocolError, err)
		}

		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
	}

	return 0, fmt.Errorf("%w: varint too long", errs.ErrProtocolError)
}

// BufWriter is the default Writer implementation, backed by any io.Writer.
type BufWriter struct {
	w io.Writer
}

// NewBufWriter wraps w as a proto.Writer.
func NewBufWriter(w io.Writer) *BufWriter {
	return &BufWriter{w: w}
}

func (w *BufWriter) Write(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	_, err := w.w.Write(buf)

	return err
}

// WriteUvarint writes v as a LEB128 unsigned varint.
func (w *BufWriter) WriteUvarint(v uint64) error {
	var tmp [MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)

	return w.Write(tmp[:n])
}

package column

import (
	"fmt"

	"github.com/chdriver/chwire/chtype"
	"github.com/chdriver/chwire/errs"
	"github.com/chdriver/chwire/proto"
	"github.com/chdriver/chwire/value"
)

// stringCodec implements spec.md §4.5: String is a varint length prefix
// followed by raw bytes; FixedString(n) is exactly n raw bytes, NUL-padded
// on write and erroring on truncation.
type stringCodec struct {
	noPrefix
	noSuffix
}

func (stringCodec) Read(t *chtype.Type, r proto.Reader, _ *proto.DeserializerState) (value.Value, error) {
	if t.Kind() == chtype.KindFixedString {
		buf := make([]byte, t.Size())
		if err := r.ReadFull(buf); err != nil {
			return value.Value{}, err
		}

		return value.FixedString(string(buf)), nil
	}

	n, err := r.ReadUvarint()
	if err != nil {
		return value.Value{}, err
	}
	buf := make([]byte, n)
	if err := r.ReadFull(buf); err != nil {
		return value.Value{}, err
	}

	return value.String(string(buf)), nil
}

func (c stringCodec) ReadN(t *chtype.Type, r proto.Reader, n int, st *proto.DeserializerState) ([]value.Value, error) {
	out := make([]value.Value, n)
	for i := 0; i < n; i++ {
		v, err := c.Read(t, r, st)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func (stringCodec) Write(t *chtype.Type, v value.Value, w proto.Writer, _ *proto.SerializerState) error {
	if t.Kind() == chtype.KindFixedString {
		s := v.Str()
		if len(s) > t.Size() {
			return fmt.Errorf("%w: FixedString(%d) value of length %d does not fit", errs.ErrTypeMismatch, t.Size(), len(s))
		}
		buf := make([]byte, t.Size())
		copy(buf, s)

		return w.Write(buf)
	}

	s := v.Str()
	if err := w.WriteUvarint(uint64(len(s))); err != nil {
		return err
	}

	return w.Write([]byte(s))
}

func (c stringCodec) WriteN(t *chtype.Type, vs []value.Value, w proto.Writer, st *proto.SerializerState) error {
	for _, v := range vs {
		if err := c.Write(t, v, w, st); err != nil {
			return err
		}
	}

	return nil
}

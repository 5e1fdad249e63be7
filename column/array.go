package column

import (
	"github.com/chdriver/chwire/chtype"
	"github.com/chdriver/chwire/proto"
	"github.com/chdriver/chwire/value"
)

// arrayCodec implements spec.md §4.6. A column has no prefix of its own
// beyond its element type's prefix. The body is n cumulative u64 offsets
// followed by the flattened element body, encoded as one run of
// offsets[n-1] values using the element codec — this is why ReadN/WriteN
// cannot default to looping Read/Write: the element run spans all rows at
// once.
type arrayCodec struct {
	noSuffix
}

func (arrayCodec) ReadPrefix(t *chtype.Type, r proto.Reader, st *proto.DeserializerState) error {
	elem := t.Elem()

	return For(elem).ReadPrefix(elem, r, st)
}

func (arrayCodec) WritePrefix(t *chtype.Type, w proto.Writer, st *proto.SerializerState) error {
	elem := t.Elem()

	return For(elem).WritePrefix(elem, w, st)
}

func (c arrayCodec) Read(t *chtype.Type, r proto.Reader, st *proto.DeserializerState) (value.Value, error) {
	out, err := c.ReadN(t, r, 1, st)
	if err != nil {
		return value.Value{}, err
	}

	return out[0], nil
}

func (arrayCodec) ReadN(t *chtype.Type, r proto.Reader, n int, st *proto.DeserializerState) ([]value.Value, error) {
	offsets := make([]uint64, n)
	if n > 0 {
		buf := make([]byte, n*8)
		if err := r.ReadFull(buf); err != nil {
			return nil, err
		}
		for i := range offsets {
			offsets[i] = proto.Uint64(buf[i*8 : i*8+8])
		}
	}

	elem := t.Elem()
	ec := For(elem)

	var total int
	if n > 0 {
		total = int(offsets[n-1])
	}
	flat, err := ec.ReadN(elem, r, total, st)
	if err != nil {
		return nil, err
	}

	out := make([]value.Value, n)
	var prev uint64
	for i := 0; i < n; i++ {
		out[i] = value.Array(flat[prev:offsets[i]])
		prev = offsets[i]
	}

	return out, nil
}

func (c arrayCodec) Write(t *chtype.Type, v value.Value, w proto.Writer, st *proto.SerializerState) error {
	return c.WriteN(t, []value.Value{v}, w, st)
}

func (arrayCodec) WriteN(t *chtype.Type, vs []value.Value, w proto.Writer, st *proto.SerializerState) error {
	n := len(vs)
	offsets := make([]byte, n*8)
	var cumulative uint64
	var flat []value.Value

	for i, v := range vs {
		cumulative += uint64(len(v.Elems()))
		proto.PutUint64(offsets[i*8:i*8+8], cumulative)
		flat = append(flat, v.Elems()...)
	}

	if err := w.Write(offsets); err != nil {
		return err
	}

	elem := t.Elem()

	return For(elem).WriteN(elem, flat, w, st)
}

package column

import (
	"github.com/chdriver/chwire/chtype"
	"github.com/chdriver/chwire/proto"
	"github.com/chdriver/chwire/value"
)

// mapCodec implements spec.md §4.9. Map(K,V) is wire-identical to
// Array(Tuple(K,V)): per-row cumulative u64 offsets followed by the
// flattened (key,value) pairs written column-wise, key column first. The
// prefix is key's prefix followed by value's prefix.
type mapCodec struct {
	noSuffix
}

func (mapCodec) ReadPrefix(t *chtype.Type, r proto.Reader, st *proto.DeserializerState) error {
	if err := For(t.Key()).ReadPrefix(t.Key(), r, st); err != nil {
		return err
	}

	return For(t.Val()).ReadPrefix(t.Val(), r, st)
}

func (mapCodec) WritePrefix(t *chtype.Type, w proto.Writer, st *proto.SerializerState) error {
	if err := For(t.Key()).WritePrefix(t.Key(), w, st); err != nil {
		return err
	}

	return For(t.Val()).WritePrefix(t.Val(), w, st)
}

func (c mapCodec) Read(t *chtype.Type, r proto.Reader, st *proto.DeserializerState) (value.Value, error) {
	out, err := c.ReadN(t, r, 1, st)
	if err != nil {
		return value.Value{}, err
	}

	return out[0], nil
}

func (mapCodec) ReadN(t *chtype.Type, r proto.Reader, n int, st *proto.DeserializerState) ([]value.Value, error) {
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

	var total int
	if n > 0 {
		total = int(offsets[n-1])
	}

	kt, vt := t.Key(), t.Val()
	keys, err := For(kt).ReadN(kt, r, total, st)
	if err != nil {
		return nil, err
	}
	vals, err := For(vt).ReadN(vt, r, total, st)
	if err != nil {
		return nil, err
	}

	out := make([]value.Value, n)
	var prev uint64
	for i := 0; i < n; i++ {
		out[i] = value.Map(keys[prev:offsets[i]], vals[prev:offsets[i]])
		prev = offsets[i]
	}

	return out, nil
}

func (c mapCodec) Write(t *chtype.Type, v value.Value, w proto.Writer, st *proto.SerializerState) error {
	return c.WriteN(t, []value.Value{v}, w, st)
}

func (mapCodec) WriteN(t *chtype.Type, vs []value.Value, w proto.Writer, st *proto.SerializerState) error {
	n := len(vs)
	offsets := make([]byte, n*8)
	var cumulative uint64
	var flatKeys, flatVals []value.Value

	for i, v := range vs {
		cumulative += uint64(len(v.MapKeys()))
		proto.PutUint64(offsets[i*8:i*8+8], cumulative)
		flatKeys = append(flatKeys, v.MapKeys()...)
		flatVals = append(flatVals, v.MapVals()...)
	}

	if err := w.Write(offsets); err != nil {
		return err
	}

	kt, vt := t.Key(), t.Val()
	if err := For(kt).WriteN(kt, flatKeys, w, st); err != nil {
		return err
	}

	return For(vt).WriteN(vt, flatVals, w, st)
}

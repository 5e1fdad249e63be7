package column

import (
	"github.com/chdriver/chwire/chtype"
	"github.com/chdriver/chwire/proto"
	"github.com/chdriver/chwire/value"
)

// nullableCodec implements spec.md §4.8. Nullable(T) has no prefix beyond
// T's own prefix. The body is an n-byte null mask (1 = null) followed by n
// values of T written in full — including a placeholder at null positions,
// since the inner codec always reads/writes exactly n values regardless of
// which are logically null.
type nullableCodec struct {
	noSuffix
}

func (nullableCodec) ReadPrefix(t *chtype.Type, r proto.Reader, st *proto.DeserializerState) error {
	inner := t.Elem()

	return For(inner).ReadPrefix(inner, r, st)
}

func (nullableCodec) WritePrefix(t *chtype.Type, w proto.Writer, st *proto.SerializerState) error {
	inner := t.Elem()

	return For(inner).WritePrefix(inner, w, st)
}

func (c nullableCodec) Read(t *chtype.Type, r proto.Reader, st *proto.DeserializerState) (value.Value, error) {
	out, err := c.ReadN(t, r, 1, st)
	if err != nil {
		return value.Value{}, err
	}

	return out[0], nil
}

func (nullableCodec) ReadN(t *chtype.Type, r proto.Reader, n int, st *proto.DeserializerState) ([]value.Value, error) {
	mask := make([]byte, n)
	if n > 0 {
		if err := r.ReadFull(mask); err != nil {
			return nil, err
		}
	}

	inner := t.Elem()
	vals, err := For(inner).ReadN(inner, r, n, st)
	if err != nil {
		return nil, err
	}

	out := make([]value.Value, n)
	for i := 0; i < n; i++ {
		if mask[i] != 0 {
			out[i] = value.Null()
		} else {
			out[i] = vals[i]
		}
	}

	return out, nil
}

func (c nullableCodec) Write(t *chtype.Type, v value.Value, w proto.Writer, st *proto.SerializerState) error {
	return c.WriteN(t, []value.Value{v}, w, st)
}

func (nullableCodec) WriteN(t *chtype.Type, vs []value.Value, w proto.Writer, st *proto.SerializerState) error {
	n := len(vs)
	mask := make([]byte, n)
	inner := t.Elem()
	vals := make([]value.Value, n)

	for i, v := range vs {
		if v.IsNull() {
			mask[i] = 1
			vals[i] = zeroValue(inner)
		} else {
			vals[i] = v
		}
	}

	if err := w.Write(mask); err != nil {
		return err
	}

	return For(inner).WriteN(inner, vals, w, st)
}

// zeroValue returns an arbitrary well-formed value of t to serve as the
// placeholder written at null positions; its bytes are never read back as
// meaningful data, only the null mask decides that.
func zeroValue(t *chtype.Type) value.Value {
	switch t.Kind() {
	case chtype.KindString:
		return value.String("")
	case chtype.KindFixedString:
		return value.FixedString("")
	case chtype.KindArray:
		return value.Array(nil)
	case chtype.KindTuple:
		elems := make([]value.Value, len(t.Elems()))
		for i, et := range t.Elems() {
			elems[i] = zeroValue(et)
		}

		return value.Tuple(elems)
	case chtype.KindMap:
		return value.Map(nil, nil)
	default:
		v, err := decodeSized(t, make([]byte, t.Width()))
		if err != nil {
			return value.Value{}
		}

		return v
	}
}

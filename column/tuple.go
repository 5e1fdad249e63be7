package column

import (
	"github.com/chdriver/chwire/chtype"
	"github.com/chdriver/chwire/proto"
	"github.com/chdriver/chwire/value"
)

// tupleCodec implements spec.md §4.7. Tuple(T1..Tk) serializes column-wise:
// prefix-then-body of T1 for all n rows, then T2, and so on — which is why
// ReadN/WriteN cannot default to looping Read/Write (bulk order differs
// from per-row order). Because each element's prefix is interleaved with
// its own body rather than hoisted to the column's single prefix slot, the
// outer ReadPrefix/WritePrefix are no-ops: ReadN/WriteN drive every
// element's prefix themselves.
type tupleCodec struct{}

func (tupleCodec) ReadPrefix(*chtype.Type, proto.Reader, *proto.DeserializerState) error { return nil }
func (tupleCodec) WritePrefix(*chtype.Type, proto.Writer, *proto.SerializerState) error   { return nil }
func (tupleCodec) WriteSuffix(*chtype.Type, proto.Writer, *proto.SerializerState) error   { return nil }

func (c tupleCodec) Read(t *chtype.Type, r proto.Reader, st *proto.DeserializerState) (value.Value, error) {
	out, err := c.ReadN(t, r, 1, st)
	if err != nil {
		return value.Value{}, err
	}

	return out[0], nil
}

func (tupleCodec) ReadN(t *chtype.Type, r proto.Reader, n int, st *proto.DeserializerState) ([]value.Value, error) {
	elemTypes := t.Elems()
	columns := make([][]value.Value, len(elemTypes))

	for i, et := range elemTypes {
		ec := For(et)
		if err := ec.ReadPrefix(et, r, st); err != nil {
			return nil, err
		}
		col, err := ec.ReadN(et, r, n, st)
		if err != nil {
			return nil, err
		}
		columns[i] = col
	}

	out := make([]value.Value, n)
	for row := 0; row < n; row++ {
		elems := make([]value.Value, len(elemTypes))
		for i := range elemTypes {
			elems[i] = columns[i][row]
		}
		out[row] = value.Tuple(elems)
	}

	return out, nil
}

func (c tupleCodec) Write(t *chtype.Type, v value.Value, w proto.Writer, st *proto.SerializerState) error {
	return c.WriteN(t, []value.Value{v}, w, st)
}

func (tupleCodec) WriteN(t *chtype.Type, vs []value.Value, w proto.Writer, st *proto.SerializerState) error {
	elemTypes := t.Elems()

	for i, et := range elemTypes {
		ec := For(et)
		if err := ec.WritePrefix(et, w, st); err != nil {
			return err
		}
		col := make([]value.Value, len(vs))
		for row, v := range vs {
			col[row] = v.Elems()[i]
		}
		if err := ec.WriteN(et, col, w, st); err != nil {
			return err
		}
	}

	return nil
}

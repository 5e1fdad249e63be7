package column

import (
	"fmt"

	"github.com/chdriver/chwire/chtype"
	"github.com/chdriver/chwire/errs"
	"github.com/chdriver/chwire/internal/dict"
	"github.com/chdriver/chwire/internal/pool"
	"github.com/chdriver/chwire/proto"
	"github.com/chdriver/chwire/value"
)

// lowCardinalityCodec implements spec.md §4.10: a per-column dictionary
// plus a vector of indices. The dictionary is built in first-seen
// insertion order (modeled on mebo's collision.Tracker, see
// internal/dict), deduplicated by the inner codec's own wire encoding of
// each value rather than by value equality, so two values the inner codec
// would serialize identically share a dictionary slot.
type lowCardinalityCodec struct {
	noSuffix
}

func (lowCardinalityCodec) ReadPrefix(_ *chtype.Type, r proto.Reader, _ *proto.DeserializerState) error {
	v, err := readU64(r)
	if err != nil {
		return err
	}
	if v != lcKeyVersion {
		return fmt.Errorf("%w: unexpected LowCardinality key version %d", errs.ErrProtocolError, v)
	}

	return nil
}

func (lowCardinalityCodec) WritePrefix(_ *chtype.Type, w proto.Writer, _ *proto.SerializerState) error {
	return writeU64(w, lcKeyVersion)
}

func dictTypeOf(t *chtype.Type) (inner *chtype.Type, outerNullable bool) {
	inner = t.Elem()
	if inner.Kind() == chtype.KindNullable {
		return inner.StripNullable(), true
	}

	return inner, false
}

func (c lowCardinalityCodec) Read(t *chtype.Type, r proto.Reader, st *proto.DeserializerState) (value.Value, error) {
	out, err := c.ReadN(t, r, 1, st)
	if err != nil {
		return value.Value{}, err
	}

	return out[0], nil
}

func (lowCardinalityCodec) ReadN(t *chtype.Type, r proto.Reader, _ int, st *proto.DeserializerState) ([]value.Value, error) {
	flags, err := readU64(r)
	if err != nil {
		return nil, err
	}
	width := lcIndexWidth(flags)

	dsize, err := readU64(r)
	if err != nil {
		return nil, err
	}

	dictType, outerNullable := dictTypeOf(t)
	dc := For(dictType)
	if err := dc.ReadPrefix(dictType, r, st); err != nil {
		return nil, err
	}
	dictVals, err := dc.ReadN(dictType, r, int(dsize), st)
	if err != nil {
		return nil, err
	}

	rowCount, err := readU64(r)
	if err != nil {
		return nil, err
	}
	rc := int(rowCount)

	idxBuf := make([]byte, rc*width)
	if rc > 0 {
		if err := r.ReadFull(idxBuf); err != nil {
			return nil, err
		}
	}

	out := make([]value.Value, rc)
	for i := 0; i < rc; i++ {
		idx := decodeIndex(idxBuf[i*width:(i+1)*width], width)
		if idx >= len(dictVals) {
			return nil, fmt.Errorf("%w: dictionary index %d out of range [0,%d)", errs.ErrProtocolError, idx, len(dictVals))
		}
		if outerNullable && idx == 0 {
			out[i] = value.Null()
		} else {
			out[i] = dictVals[idx]
		}
	}

	return out, nil
}

func (c lowCardinalityCodec) Write(t *chtype.Type, v value.Value, w proto.Writer, st *proto.SerializerState) error {
	return c.WriteN(t, []value.Value{v}, w, st)
}

func (lowCardinalityCodec) WriteN(t *chtype.Type, vs []value.Value, w proto.Writer, st *proto.SerializerState) error {
	dictType, outerNullable := dictTypeOf(t)
	dc := For(dictType)

	b := dict.NewBuilder()
	var ordered []value.Value
	indices := make([]int, len(vs))

	for i, v := range vs {
		if outerNullable && v.IsNull() {
			indices[i] = 0

			continue
		}

		key, err := encodeDictKey(dc, dictType, v)
		if err != nil {
			return err
		}
		slot := b.Slot(key)
		if slot > len(ordered) {
			ordered = append(ordered, v)
		}
		indices[i] = slot
	}

	dictSize := len(ordered) + 1
	width := lcWidthFor(dictSize)

	if err := writeU64(w, lcFlags(width)); err != nil {
		return err
	}
	if err := writeU64(w, uint64(dictSize)); err != nil {
		return err
	}

	dictVals := make([]value.Value, dictSize)
	dictVals[0] = zeroValue(dictType)
	copy(dictVals[1:], ordered)

	if err := dc.WritePrefix(dictType, w, st); err != nil {
		return err
	}
	if err := dc.WriteN(dictType, dictVals, w, st); err != nil {
		return err
	}

	if err := writeU64(w, uint64(len(vs))); err != nil {
		return err
	}

	idxBuf := make([]byte, len(vs)*width)
	for i, idx := range indices {
		encodeIndex(idxBuf[i*width:(i+1)*width], idx, width)
	}

	return w.Write(idxBuf)
}

// encodeDictKey renders v through the inner codec's own wire encoding, so
// dictionary deduplication matches what would actually be written to the
// wire rather than some separate notion of value equality. The scratch
// buffer is borrowed from the pool every column write amortizes against.
func encodeDictKey(dc Codec, t *chtype.Type, v value.Value) (string, error) {
	buf := pool.Get()
	defer pool.Put(buf)

	if err := dc.Write(t, v, &bufWriter{buf}, nil); err != nil {
		return "", err
	}

	return string(buf.Bytes()), nil
}

type bufWriter struct {
	buf *pool.Buffer
}

func (w *bufWriter) Write(p []byte) error {
	w.buf.Write(p)

	return nil
}

func (w *bufWriter) WriteUvarint(v uint64) error {
	var tmp [proto.MaxVarintLen64]byte
	n := 0
	for v >= 0x80 {
		tmp[n] = byte(v) | 0x80
		v >>= 7
		n++
	}
	tmp[n] = byte(v)
	n++

	return w.Write(tmp[:n])
}

func readU64(r proto.Reader) (uint64, error) {
	var buf [8]byte
	if err := r.ReadFull(buf[:]); err != nil {
		return 0, err
	}

	return proto.Uint64(buf[:]), nil
}

func writeU64(w proto.Writer, v uint64) error {
	var buf [8]byte
	proto.PutUint64(buf[:], v)

	return w.Write(buf[:])
}

func decodeIndex(b []byte, width int) int {
	switch width {
	case 1:
		return int(b[0])
	case 2:
		return int(proto.Uint16(b))
	case 4:
		return int(proto.Uint32(b))
	default:
		return int(proto.Uint64(b))
	}
}

func encodeIndex(b []byte, idx, width int) {
	switch width {
	case 1:
		b[0] = byte(idx)
	case 2:
		proto.PutUint16(b, uint16(idx))
	case 4:
		proto.PutUint32(b, uint32(idx))
	default:
		proto.PutUint64(b, uint64(idx))
	}
}

package column

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"net/netip"

	"github.com/chdriver/chwire/chtype"
	"github.com/chdriver/chwire/errs"
	"github.com/chdriver/chwire/proto"
	"github.com/chdriver/chwire/value"
)

// sizedCodec implements spec.md §4.4: every fixed-width scalar (integers,
// floats, decimals, Uuid, Date, DateTime, DateTime64, Ipv4, Ipv6, Enum8/16).
// There is no column prefix or suffix; each value is its little-endian
// binary form at t.Width() bytes.
type sizedCodec struct {
	noPrefix
	noSuffix
}

func (sizedCodec) Read(t *chtype.Type, r proto.Reader, _ *proto.DeserializerState) (value.Value, error) {
	var buf [32]byte
	w := t.Width()
	if err := r.ReadFull(buf[:w]); err != nil {
		return value.Value{}, err
	}

	return decodeSized(t, buf[:w])
}

func (c sizedCodec) ReadN(t *chtype.Type, r proto.Reader, n int, st *proto.DeserializerState) ([]value.Value, error) {
	w := t.Width()
	buf := make([]byte, n*w)
	if n > 0 {
		if err := r.ReadFull(buf); err != nil {
			return nil, err
		}
	}

	out := make([]value.Value, n)
	for i := 0; i < n; i++ {
		v, err := decodeSized(t, buf[i*w:(i+1)*w])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func (sizedCodec) Write(t *chtype.Type, v value.Value, w proto.Writer, _ *proto.SerializerState) error {
	var buf [32]byte
	width := t.Width()
	if err := encodeSized(t, v, buf[:width]); err != nil {
		return err
	}

	return w.Write(buf[:width])
}

func (c sizedCodec) WriteN(t *chtype.Type, vs []value.Value, w proto.Writer, _ *proto.SerializerState) error {
	width := t.Width()
	buf := make([]byte, len(vs)*width)
	for i, v := range vs {
		if err := encodeSized(t, v, buf[i*width:(i+1)*width]); err != nil {
			return err
		}
	}

	return w.Write(buf)
}

func decodeSized(t *chtype.Type, b []byte) (value.Value, error) {
	switch t.Kind() {
	case chtype.KindInt8:
		return value.Int8(int8(b[0])), nil
	case chtype.KindInt16:
		return value.Int16(int16(proto.Uint16(b))), nil
	case chtype.KindInt32:
		return value.Int32(int32(proto.Uint32(b))), nil
	case chtype.KindInt64:
		return value.Int64(int64(proto.Uint64(b))), nil
	case chtype.KindInt128:
		return value.Int128(getBigLE(b, true)), nil
	case chtype.KindInt256:
		return value.Int256(getBigLE(b, true)), nil

	case chtype.KindUInt8:
		return value.UInt8(b[0]), nil
	case chtype.KindUInt16:
		return value.UInt16(proto.Uint16(b)), nil
	case chtype.KindUInt32:
		return value.UInt32(proto.Uint32(b)), nil
	case chtype.KindUInt64:
		return value.UInt64(proto.Uint64(b)), nil
	case chtype.KindUInt128:
		return value.UInt128(getBigLE(b, false)), nil
	case chtype.KindUInt256:
		return value.UInt256(getBigLE(b, false)), nil

	case chtype.KindFloat32:
		return value.Float32(math.Float32frombits(proto.Uint32(b))), nil
	case chtype.KindFloat64:
		return value.Float64(math.Float64frombits(proto.Uint64(b))), nil

	case chtype.KindDecimal32, chtype.KindDecimal64, chtype.KindDecimal128, chtype.KindDecimal256:
		return value.Decimal(t.Kind(), getBigLE(b, true), t.Scale()), nil

	case chtype.KindDate:
		return value.Date(int32(proto.Uint16(b))), nil
	case chtype.KindDateTime:
		return value.DateTime(int64(proto.Uint32(b)), t.Location()), nil
	case chtype.KindDateTime64:
		return value.DateTime64(int64(proto.Uint64(b)), t.Scale(), t.Location()), nil

	case chtype.KindUUID:
		var raw [16]byte
		copy(raw[:], b)

		return value.UUID(raw), nil

	case chtype.KindIPv4:
		n := proto.Uint32(b) // wire is little-endian...
		var be [4]byte
		binary.BigEndian.PutUint32(be[:], n) // ...of the natural big-endian address value.

		return value.IPv4(netip.AddrFrom4(be)), nil

	case chtype.KindIPv6:
		var raw [16]byte
		copy(raw[:], b)

		return value.IPv6(netip.AddrFrom16(raw)), nil

	case chtype.KindEnum8:
		return value.Enum(chtype.KindEnum8, int16(int8(b[0])), ""), nil
	case chtype.KindEnum16:
		return value.Enum(chtype.KindEnum16, int16(proto.Uint16(b)), ""), nil

	default:
		return value.Value{}, fmt.Errorf("%w: %s is not a Sized type", errs.ErrInvalidType, t.Kind())
	}
}

func encodeSized(t *chtype.Type, v value.Value, b []byte) error {
	switch t.Kind() {
	case chtype.KindInt8:
		b[0] = byte(int8(v.Int()))
	case chtype.KindInt16:
		proto.PutUint16(b, uint16(int16(v.Int())))
	case chtype.KindInt32:
		proto.PutUint32(b, uint32(int32(v.Int())))
	case chtype.KindInt64:
		proto.PutUint64(b, uint64(v.Int()))
	case chtype.KindInt128, chtype.KindInt256:
		putBigLE(b, v.Big(), true)

	case chtype.KindUInt8:
		b[0] = byte(v.Uint())
	case chtype.KindUInt16:
		proto.PutUint16(b, uint16(v.Uint()))
	case chtype.KindUInt32:
		proto.PutUint32(b, uint32(v.Uint()))
	case chtype.KindUInt64:
		proto.PutUint64(b, v.Uint())
	case chtype.KindUInt128, chtype.KindUInt256:
		putBigLE(b, v.Big(), false)

	case chtype.KindFloat32:
		proto.PutUint32(b, math.Float32bits(float32(v.Float())))
	case chtype.KindFloat64:
		proto.PutUint64(b, math.Float64bits(v.Float()))

	case chtype.KindDecimal32, chtype.KindDecimal64, chtype.KindDecimal128, chtype.KindDecimal256:
		m := v.Big()
		if m == nil {
			m = big.NewInt(0)
		}
		putBigLE(b, m, true)

	case chtype.KindDate:
		proto.PutUint16(b, uint16(v.Int()))
	case chtype.KindDateTime:
		proto.PutUint32(b, uint32(v.Int()))
	case chtype.KindDateTime64:
		proto.PutUint64(b, uint64(v.Int()))

	case chtype.KindUUID:
		raw := v.UUIDBytes()
		copy(b, raw[:])

	case chtype.KindIPv4:
		be := v.IP().As4()
		n := binary.BigEndian.Uint32(be[:])
		proto.PutUint32(b, n)

	case chtype.KindIPv6:
		raw := v.IP().As16()
		copy(b, raw[:])

	case chtype.KindEnum8:
		b[0] = byte(int8(v.Int()))
	case chtype.KindEnum16:
		proto.PutUint16(b, uint16(int16(v.Int())))

	default:
		return fmt.Errorf("%w: %s is not a Sized type", errs.ErrInvalidType, t.Kind())
	}

	return nil
}

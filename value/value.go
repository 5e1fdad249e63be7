// Package value implements the runtime value model of spec.md §3: a tagged
// union mirroring the chtype grammar, carrying the minimum state needed to
// round-trip through the column codecs in package column.
package value

import (
	"math/big"
	"net/netip"
	"time"

	"github.com/chdriver/chwire/chtype"
)

// Value is an immutable, by-value tagged union. Container variants
// (Array, Tuple, Map) own their child Values by value; copying a Value
// copies the backing slices' headers, not a deep clone.
type Value struct {
	kind   chtype.Kind
	isNull bool

	i64 int64    // signed integers, Enum8/16 numeric code, Date (days), DateTime (seconds), DateTime64 (ticks)
	u64 uint64   // unsigned integers <= 64 bits
	big *big.Int // Int128/256, UInt128/256, Decimal* mantissa (all widths, for uniformity)
	f64 float64  // Float32, Float64

	str string // String, FixedString, Enum8/16 name (optional, informational)

	scale int            // Decimal scale / DateTime64 precision (redundant with the declaring type, per spec.md §3)
	loc   *time.Location // DateTime, DateTime64 timezone

	uuid [16]byte
	ip   netip.Addr

	arr  []Value // Array, Tuple elements
	keys []Value // Map keys
	vals []Value // Map values
}

// Kind reports the value's variant tag. Calling Kind on a Null value returns
// the zero Kind; use IsNull to test for Null first.
func (v Value) Kind() chtype.Kind { return v.kind }

// IsNull reports whether v is the distinguished Null variant.
func (v Value) IsNull() bool { return v.isNull }

// Null constructs the Null variant.
func Null() Value { return Value{isNull: true} }

func Int8(n int8) Value   { return Value{kind: chtype.KindInt8, i64: int64(n)} }
func Int16(n int16) Value { return Value{kind: chtype.KindInt16, i64: int64(n)} }
func Int32(n int32) Value { return Value{kind: chtype.KindInt32, i64: int64(n)} }
func Int64(n int64) Value { return Value{kind: chtype.KindInt64, i64: n} }

func Int128(n *big.Int) Value { return Value{kind: chtype.KindInt128, big: n} }
func Int256(n *big.Int) Value { return Value{kind: chtype.KindInt256, big: n} }

func UInt8(n uint8) Value   { return Value{kind: chtype.KindUInt8, u64: uint64(n)} }
func UInt16(n uint16) Value { return Value{kind: chtype.KindUInt16, u64: uint64(n)} }
func UInt32(n uint32) Value { return Value{kind: chtype.KindUInt32, u64: uint64(n)} }
func UInt64(n uint64) Value { return Value{kind: chtype.KindUInt64, u64: n} }

func UInt128(n *big.Int) Value { return Value{kind: chtype.KindUInt128, big: n} }
func UInt256(n *big.Int) Value { return Value{kind: chtype.KindUInt256, big: n} }

func Float32(f float32) Value { return Value{kind: chtype.KindFloat32, f64: float64(f)} }
func Float64(f float64) Value { return Value{kind: chtype.KindFloat64, f64: f} }

// Decimal constructs a Decimal value of the given width kind from an
// unscaled big.Int mantissa and its scale. kind must be one of
// chtype.KindDecimal32/64/128/256.
func Decimal(kind chtype.Kind, mantissa *big.Int, scale int) Value {
	return Value{kind: kind, big: mantissa, scale: scale}
}

func String(s string) Value      { return Value{kind: chtype.KindString, str: s} }
func FixedString(s string) Value { return Value{kind: chtype.KindFixedString, str: s} }

// Date constructs a Date value from days since 1970-01-01.
func Date(days int32) Value { return Value{kind: chtype.KindDate, i64: int64(days)} }

// DateTime constructs a DateTime value from epoch seconds and its timezone.
// A nil loc means UTC.
func DateTime(seconds int64, loc *time.Location) Value {
	return Value{kind: chtype.KindDateTime, i64: seconds, loc: loc}
}

// DateTime64 constructs a DateTime64 value from raw ticks (10^-precision
// seconds since epoch), its precision, and timezone.
func DateTime64(ticks int64, precision int, loc *time.Location) Value {
	return Value{kind: chtype.KindDateTime64, i64: ticks, scale: precision, loc: loc}
}

func UUID(b [16]byte) Value { return Value{kind: chtype.KindUUID, uuid: b} }

func IPv4(addr netip.Addr) Value { return Value{kind: chtype.KindIPv4, ip: addr} }
func IPv6(addr netip.Addr) Value { return Value{kind: chtype.KindIPv6, ip: addr} }

// Enum constructs an Enum8/Enum16 value from its numeric code. name is
// optional and informational only — equality and wire encoding use Int().
func Enum(kind chtype.Kind, code int16, name string) Value {
	return Value{kind: kind, i64: int64(code), str: name}
}

func Array(elems []Value) Value { return Value{kind: chtype.KindArray, arr: elems} }
func Tuple(elems []Value) Value { return Value{kind: chtype.KindTuple, arr: elems} }

// Map constructs a Map value from parallel key/value slices of equal length.
func Map(keys, vals []Value) Value {
	return Value{kind: chtype.KindMap, keys: keys, vals: vals}
}

// Int returns the signed integer payload (Int8..Int64, Enum8/16, Date days,
// DateTime seconds, DateTime64 ticks).
func (v Value) Int() int64 { return v.i64 }

// Uint returns the unsigned integer payload (UInt8..UInt64).
func (v Value) Uint() uint64 { return v.u64 }

// Big returns the big.Int payload (Int128/256, UInt128/256, Decimal* mantissa).
func (v Value) Big() *big.Int { return v.big }

// Float returns the floating-point payload (Float32, Float64).
func (v Value) Float() float64 { return v.f64 }

// Str returns the string payload (String, FixedString) or the Enum name,
// if one was supplied.
func (v Value) Str() string { return v.str }

// Scale returns the Decimal scale or DateTime64 precision carried inline on
// the value itself (spec.md §3's "defensive redundancy").
func (v Value) Scale() int { return v.scale }

// Loc returns the DateTime/DateTime64 timezone, defaulting to UTC.
func (v Value) Loc() *time.Location {
	if v.loc == nil {
		return time.UTC
	}

	return v.loc
}

// UUIDBytes returns the 16-byte UUID payload.
func (v Value) UUIDBytes() [16]byte { return v.uuid }

// IP returns the IPv4/IPv6 payload.
func (v Value) IP() netip.Addr { return v.ip }

// Elems returns the Array/Tuple element payload.
func (v Value) Elems() []Value { return v.arr }

// MapKeys returns the Map key payload.
func (v Value) MapKeys() []Value { return v.keys }

// MapVals returns the Map value payload.
func (v Value) MapVals() []Value { return v.vals }

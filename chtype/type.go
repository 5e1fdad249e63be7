package chtype

import "time"

// EnumMember is one name/value pair of an Enum8 or Enum16 declaration.
type EnumMember struct {
	Name  string
	Value int16
}

// Type is an immutable node in the type grammar of spec.md §3. Two Types are
// equal iff Equal reports true; zero values are never valid Types (use the
// constructors below).
type Type struct {
	kind Kind

	// scale holds Decimal*'s fractional-digit scale or DateTime64's tick
	// precision; unused otherwise.
	scale int8
	// size holds FixedString's byte length; unused otherwise.
	size int
	// loc holds DateTime/DateTime64's timezone; nil means UTC.
	loc *time.Location

	members []EnumMember // Enum8, Enum16

	elem *Type // Array element, LowCardinality inner, Nullable inner
	key  *Type // Map key
	val  *Type // Map value
	elems []*Type // Tuple elements
}

// Kind returns the type's constructor.
func (t *Type) Kind() Kind { return t.kind }

// Scale returns the Decimal scale or DateTime64 precision. Panics if Kind is
// not one of those.
func (t *Type) Scale() int {
	switch t.kind {
	case KindDecimal32, KindDecimal64, KindDecimal128, KindDecimal256, KindDateTime64:
		return int(t.scale)
	default:
		panic("chtype: Scale called on " + t.kind.String())
	}
}

// Size returns FixedString's declared byte length. Panics otherwise.
func (t *Type) Size() int {
	if t.kind != KindFixedString {
		panic("chtype: Size called on " + t.kind.String())
	}

	return t.size
}

// Location returns the DateTime/DateTime64 timezone, defaulting to UTC.
// Panics if Kind is neither.
func (t *Type) Location() *time.Location {
	if t.kind != KindDateTime && t.kind != KindDateTime64 {
		panic("chtype: Location called on " + t.kind.String())
	}
	if t.loc == nil {
		return time.UTC
	}

	return t.loc
}

// Members returns the Enum8/Enum16 declaration list. Panics otherwise.
func (t *Type) Members() []EnumMember {
	if t.kind != KindEnum8 && t.kind != KindEnum16 {
		panic("chtype: Members called on " + t.kind.String())
	}

	return t.members
}

// Elem returns the Array element type, the LowCardinality inner type, or the
// Nullable inner type. Panics otherwise.
func (t *Type) Elem() *Type {
	switch t.kind {
	case KindArray, KindLowCardinality, KindNullable:
		return t.elem
	default:
		panic("chtype: Elem called on " + t.kind.String())
	}
}

// Key returns the Map key type. Panics otherwise.
func (t *Type) Key() *Type {
	if t.kind != KindMap {
		panic("chtype: Key called on " + t.kind.String())
	}

	return t.key
}

// Val returns the Map value type. Panics otherwise.
func (t *Type) Val() *Type {
	if t.kind != KindMap {
		panic("chtype: Val called on " + t.kind.String())
	}

	return t.val
}

// Elems returns the Tuple element types. Panics otherwise.
func (t *Type) Elems() []*Type {
	if t.kind != KindTuple {
		panic("chtype: Elems called on " + t.kind.String())
	}

	return t.elems
}

// StripNullable returns t.Elem() if t is Nullable, otherwise t itself. It is
// used by the LowCardinality validator and by the LowCardinality codec,
// which both need to reason about the "real" inner type regardless of
// nullability — following the original klickhouse implementation's
// strip_null helper.
func (t *Type) StripNullable() *Type {
	if t.kind == KindNullable {
		return t.elem
	}

	return t
}

// Equal reports whether t and other denote the same type, structurally.
func (t *Type) Equal(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.kind != other.kind {
		return false
	}

	switch t.kind {
	case KindDecimal32, KindDecimal64, KindDecimal128, KindDecimal256:
		return t.scale == other.scale
	case KindDateTime:
		return t.Location().String() == other.Location().String()
	case KindDateTime64:
		return t.scale == other.scale && t.Location().String() == other.Location().String()
	case KindFixedString:
		return t.size == other.size
	case KindEnum8, KindEnum16:
		if len(t.members) != len(other.members) {
			return false
		}
		for i, m := range t.members {
			if m != other.members[i] {
				return false
			}
		}

		return true
	case KindArray, KindLowCardinality, KindNullable:
		return t.elem.Equal(other.elem)
	case KindMap:
		return t.key.Equal(other.key) && t.val.Equal(other.val)
	case KindTuple:
		if len(t.elems) != len(other.elems) {
			return false
		}
		for i, e := range t.elems {
			if !e.Equal(other.elems[i]) {
				return false
			}
		}

		return true
	default:
		return true
	}
}

// Simple scalar constructors.
func newScalar(k Kind) *Type { return &Type{kind: k} }

func Int8() *Type    { return newScalar(KindInt8) }
func Int16() *Type   { return newScalar(KindInt16) }
func Int32() *Type   { return newScalar(KindInt32) }
func Int64() *Type   { return newScalar(KindInt64) }
func Int128() *Type  { return newScalar(KindInt128) }
func Int256() *Type  { return newScalar(KindInt256) }
func UInt8() *Type   { return newScalar(KindUInt8) }
func UInt16() *Type  { return newScalar(KindUInt16) }
func UInt32() *Type  { return newScalar(KindUInt32) }
func UInt64() *Type  { return newScalar(KindUInt64) }
func UInt128() *Type { return newScalar(KindUInt128) }
func UInt256() *Type { return newScalar(KindUInt256) }
func Float32() *Type { return newScalar(KindFloat32) }
func Float64() *Type { return newScalar(KindFloat64) }
func StringType() *Type { return newScalar(KindString) }
func Date() *Type    { return newScalar(KindDate) }
func UUID() *Type    { return newScalar(KindUUID) }
func IPv4() *Type    { return newScalar(KindIPv4) }
func IPv6() *Type    { return newScalar(KindIPv6) }

// FixedString constructs FixedString(n).
func FixedString(n int) *Type {
	return &Type{kind: KindFixedString, size: n}
}

// Decimal constructs the narrowest DecimalN(scale) that can hold precision p,
// per spec.md §4.1's mapping: p≤9→32, p≤18→64, p≤38→128, p≤76→256.
func Decimal(precision, scale int) *Type {
	switch {
	case precision <= 9:
		return Decimal32(scale)
	case precision <= 18:
		return Decimal64(scale)
	case precision <= 38:
		return Decimal128(scale)
	default:
		return Decimal256(scale)
	}
}

func Decimal32(scale int) *Type  { return &Type{kind: KindDecimal32, scale: int8(scale)} }
func Decimal64(scale int) *Type  { return &Type{kind: KindDecimal64, scale: int8(scale)} }
func Decimal128(scale int) *Type { return &Type{kind: KindDecimal128, scale: int8(scale)} }
func Decimal256(scale int) *Type { return &Type{kind: KindDecimal256, scale: int8(scale)} }

// DateTime constructs DateTime with the given timezone; a nil loc means UTC.
func DateTime(loc *time.Location) *Type {
	return &Type{kind: KindDateTime, loc: loc}
}

// DateTime64 constructs DateTime64(precision, tz); a nil loc means UTC.
func DateTime64(precision int, loc *time.Location) *Type {
	return &Type{kind: KindDateTime64, scale: int8(precision), loc: loc}
}

func Enum8(members []EnumMember) *Type {
	return &Type{kind: KindEnum8, members: members}
}

func Enum16(members []EnumMember) *Type {
	return &Type{kind: KindEnum16, members: members}
}

func Array(elem *Type) *Type {
	return &Type{kind: KindArray, elem: elem}
}

func Tuple(elems ...*Type) *Type {
	return &Type{kind: KindTuple, elems: elems}
}

func Nullable(inner *Type) *Type {
	return &Type{kind: KindNullable, elem: inner}
}

func MapType(key, val *Type) *Type {
	return &Type{kind: KindMap, key: key, val: val}
}

func LowCardinality(inner *Type) *Type {
	return &Type{kind: KindLowCardinality, elem: inner}
}

// Width returns the fixed encoded width in bytes of a Sized-codec type
// (spec.md §4.4). Panics for variable-width or container kinds.
func (t *Type) Width() int {
	switch t.kind {
	case KindInt8, KindUInt8, KindEnum8:
		return 1
	case KindInt16, KindUInt16, KindEnum16, KindDate:
		return 2
	case KindInt32, KindUInt32, KindFloat32, KindDecimal32, KindDateTime, KindIPv4:
		return 4
	case KindInt64, KindUInt64, KindFloat64, KindDecimal64, KindDateTime64:
		return 8
	case KindInt128, KindUInt128, KindDecimal128, KindUUID, KindIPv6:
		return 16
	case KindInt256, KindUInt256, KindDecimal256:
		return 32
	default:
		panic("chtype: Width called on non-sized kind " + t.kind.String())
	}
}

// IsSized reports whether t is handled by the Sized codec (spec.md §4.4).
func (t *Type) IsSized() bool {
	switch t.kind {
	case KindInt8, KindInt16, KindInt32, KindInt64, KindInt128, KindInt256,
		KindUInt8, KindUInt16, KindUInt32, KindUInt64, KindUInt128, KindUInt256,
		KindFloat32, KindFloat64,
		KindDecimal32, KindDecimal64, KindDecimal128, KindDecimal256,
		KindDate, KindDateTime, KindDateTime64,
		KindUUID, KindIPv4, KindIPv6,
		KindEnum8, KindEnum16:
		return true
	default:
		return false
	}
}

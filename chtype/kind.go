// Package chtype implements the ClickHouse native-protocol type grammar: the
// closed sum of type constructors in spec.md §3, its textual parser and
// printer (§4.1), and the composability validator (§4.2).
package chtype

// Kind is the closed enum over every type constructor ClickHouse's native
// protocol names. A Type is immutable once constructed and compares
// structurally via Equal.
type Kind uint8

const (
	KindInt8 Kind = iota + 1
	KindInt16
	KindInt32
	KindInt64
	KindInt128
	KindInt256
	KindUInt8
	KindUInt16
	KindUInt32
	KindUInt64
	KindUInt128
	KindUInt256
	KindFloat32
	KindFloat64
	KindDecimal32
	KindDecimal64
	KindDecimal128
	KindDecimal256
	KindString
	KindFixedString
	KindDate
	KindDateTime
	KindDateTime64
	KindUUID
	KindIPv4
	KindIPv6
	KindEnum8
	KindEnum16
	KindArray
	KindTuple
	KindNullable
	KindMap
	KindLowCardinality
)

// String names the constructor, as used in error messages; it is not the
// canonical textual type form (use Type.String for that).
func (k Kind) String() string {
	switch k {
	case KindInt8:
		return "Int8"
	case KindInt16:
		return "Int16"
	case KindInt32:
		return "Int32"
	case KindInt64:
		return "Int64"
	case KindInt128:
		return "Int128"
	case KindInt256:
		return "Int256"
	case KindUInt8:
		return "UInt8"
	case KindUInt16:
		return "UInt16"
	case KindUInt32:
		return "UInt32"
	case KindUInt64:
		return "UInt64"
	case KindUInt128:
		return "UInt128"
	case KindUInt256:
		return "UInt256"
	case KindFloat32:
		return "Float32"
	case KindFloat64:
		return "Float64"
	case KindDecimal32:
		return "Decimal32"
	case KindDecimal64:
		return "Decimal64"
	case KindDecimal128:
		return "Decimal128"
	case KindDecimal256:
		return "Decimal256"
	case KindString:
		return "String"
	case KindFixedString:
		return "FixedString"
	case KindDate:
		return "Date"
	case KindDateTime:
		return "DateTime"
	case KindDateTime64:
		return "DateTime64"
	case KindUUID:
		return "UUID"
	case KindIPv4:
		return "IPv4"
	case KindIPv6:
		return "IPv6"
	case KindEnum8:
		return "Enum8"
	case KindEnum16:
		return "Enum16"
	case KindArray:
		return "Array"
	case KindTuple:
		return "Tuple"
	case KindNullable:
		return "Nullable"
	case KindMap:
		return "Map"
	case KindLowCardinality:
		return "LowCardinality"
	default:
		return "Unknown"
	}
}

// IsInteger reports whether k is one of the signed or unsigned integer kinds.
func (k Kind) IsInteger() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64, KindInt128, KindInt256,
		KindUInt8, KindUInt16, KindUInt32, KindUInt64, KindUInt128, KindUInt256:
		return true
	default:
		return false
	}
}

// Package column implements the seven columnar codec strategies of
// spec.md §4.3–§4.10: Sized, String, Array, Tuple, Nullable, Map, and
// LowCardinality. Each strategy is keyed by type shape and shares one
// Codec interface; column.For resolves a *chtype.Type to its strategy once
// per column, as spec.md §4.3 describes.
package column

import (
	"github.com/chdriver/chwire/chtype"
	"github.com/chdriver/chwire/proto"
	"github.com/chdriver/chwire/value"
)

// Codec is the uniform contract every strategy implements (spec.md §4.3).
// The caller invokes ReadPrefix/WritePrefix exactly once per column, before
// the row body, then ReadN/WriteN for the column's n rows. WriteSuffix is
// invoked once per column after the body, for strategies that need
// column-trailing bytes (none in this module emit any, but the hook exists
// per the contract).
type Codec interface {
	// ReadPrefix consumes any column-level header bytes that precede the body.
	ReadPrefix(t *chtype.Type, r proto.Reader, st *proto.DeserializerState) error
	// Read consumes one value.
	Read(t *chtype.Type, r proto.Reader, st *proto.DeserializerState) (value.Value, error)
	// ReadN consumes n values.
	ReadN(t *chtype.Type, r proto.Reader, n int, st *proto.DeserializerState) ([]value.Value, error)

	// WritePrefix emits any column-level header bytes that precede the body.
	WritePrefix(t *chtype.Type, w proto.Writer, st *proto.SerializerState) error
	// Write emits one value.
	Write(t *chtype.Type, v value.Value, w proto.Writer, st *proto.SerializerState) error
	// WriteN emits n values.
	WriteN(t *chtype.Type, vs []value.Value, w proto.Writer, st *proto.SerializerState) error
	// WriteSuffix emits any column-trailing bytes.
	WriteSuffix(t *chtype.Type, w proto.Writer, st *proto.SerializerState) error
}

// For resolves t to its codec strategy. Dispatch is a closed switch over
// chtype.Kind, per spec.md §9's "Open set of codecs" note: this module
// dispatches inline per operation rather than caching a resolved codec
// object, since every strategy here is a stateless value type.
func For(t *chtype.Type) Codec {
	switch t.Kind() {
	case chtype.KindString, chtype.KindFixedString:
		return stringCodec{}
	case chtype.KindArray:
		return arrayCodec{}
	case chtype.KindTuple:
		return tupleCodec{}
	case chtype.KindNullable:
		return nullableCodec{}
	case chtype.KindMap:
		return mapCodec{}
	case chtype.KindLowCardinality:
		return lowCardinalityCodec{}
	default:
		return sizedCodec{}
	}
}

// noPrefix/noSuffix are embedded by strategies with no column-level header
// or trailer, so they only need to implement Read/ReadN/Write/WriteN.
type noPrefix struct{}

func (noPrefix) ReadPrefix(*chtype.Type, proto.Reader, *proto.DeserializerState) error   { return nil }
func (noPrefix) WritePrefix(*chtype.Type, proto.Writer, *proto.SerializerState) error    { return nil }

type noSuffix struct{}

func (noSuffix) WriteSuffix(*chtype.Type, proto.Writer, *proto.SerializerState) error { return nil }

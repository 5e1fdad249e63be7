package column

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chdriver/chwire/chtype"
	"github.com/chdriver/chwire/errs"
	"github.com/chdriver/chwire/proto"
	"github.com/chdriver/chwire/value"
)

func encodeColumn(t *testing.T, ty *chtype.Type, vs []value.Value) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := proto.NewBufWriter(&buf)
	c := For(ty)
	require.NoError(t, c.WritePrefix(ty, w, nil))
	require.NoError(t, c.WriteN(ty, vs, w, nil))
	require.NoError(t, c.WriteSuffix(ty, w, nil))

	return buf.Bytes()
}

func decodeColumn(t *testing.T, ty *chtype.Type, raw []byte, n int) []value.Value {
	t.Helper()
	r := proto.NewBufReader(bytes.NewReader(raw))
	c := For(ty)
	require.NoError(t, c.ReadPrefix(ty, r, nil))
	vs, err := c.ReadN(ty, r, n, nil)
	require.NoError(t, err)

	return vs
}

func TestS1_UInt32Column(t *testing.T) {
	ty := chtype.UInt32()
	vs := []value.Value{value.UInt32(1), value.UInt32(258), value.UInt32(65536)}

	got := encodeColumn(t, ty, vs)
	want := []byte{
		0x01, 0x00, 0x00, 0x00,
		0x02, 0x01, 0x00, 0x00,
		0x00, 0x00, 0x01, 0x00,
	}
	require.Equal(t, want, got)

	back := decodeColumn(t, ty, got, 3)
	require.Len(t, back, 3)
	for i, v := range vs {
		require.Equal(t, v.Uint(), back[i].Uint())
	}
}

func TestS2_StringColumn(t *testing.T) {
	ty := chtype.StringType()
	vs := []value.Value{value.String(""), value.String("hi")}

	got := encodeColumn(t, ty, vs)
	want := []byte{0x00, 0x02, 'h', 'i'}
	require.Equal(t, want, got)

	back := decodeColumn(t, ty, got, 2)
	require.Equal(t, "", back[0].Str())
	require.Equal(t, "hi", back[1].Str())
}

func TestS3_NullableInt8Column(t *testing.T) {
	ty := chtype.Nullable(chtype.Int8())
	vs := []value.Value{value.Int8(5), value.Null(), value.Int8(-1)}

	got := encodeColumn(t, ty, vs)
	want := []byte{0x00, 0x01, 0x00, 0x05, 0x00, 0xFF}
	require.Equal(t, want, got)

	back := decodeColumn(t, ty, got, 3)
	require.False(t, back[0].IsNull())
	require.Equal(t, int64(5), back[0].Int())
	require.True(t, back[1].IsNull())
	require.False(t, back[2].IsNull())
	require.Equal(t, int64(-1), back[2].Int())
}

func TestS4_ArrayUInt8Column(t *testing.T) {
	ty := chtype.Array(chtype.UInt8())
	vs := []value.Value{
		value.Array([]value.Value{value.UInt8(1), value.UInt8(2), value.UInt8(3)}),
		value.Array(nil),
	}

	got := encodeColumn(t, ty, vs)
	want := append([]byte{}, 0x03, 0, 0, 0, 0, 0, 0, 0)
	want = append(want, 0x03, 0, 0, 0, 0, 0, 0, 0)
	want = append(want, 0x01, 0x02, 0x03)
	require.Equal(t, want, got)

	back := decodeColumn(t, ty, got, 2)
	require.Len(t, back[0].Elems(), 3)
	require.Len(t, back[1].Elems(), 0)
}

func TestS5_LowCardinalityNullableStringColumn(t *testing.T) {
	ty := chtype.LowCardinality(chtype.Nullable(chtype.StringType()))
	vs := []value.Value{value.String("a"), value.Null(), value.String("b"), value.String("a")}

	got := encodeColumn(t, ty, vs)

	var want []byte
	want = append(want, le64(1)...)       // key version prefix
	want = append(want, le64(lcFlags(1))...) // flags: width u8
	want = append(want, le64(3)...)       // dict size
	want = append(want, 0x00)             // "" placeholder (varint len 0)
	want = append(want, 0x01, 'a')        // "a"
	want = append(want, 0x01, 'b')        // "b"
	want = append(want, le64(4)...)       // row count
	want = append(want, 0x01, 0x00, 0x02, 0x01)

	require.Equal(t, want, got)

	back := decodeColumn(t, ty, got, 4)
	require.Equal(t, "a", back[0].Str())
	require.True(t, back[1].IsNull())
	require.Equal(t, "b", back[2].Str())
	require.Equal(t, "a", back[3].Str())
}

func TestS6_TupleColumn(t *testing.T) {
	ty := chtype.Tuple(chtype.UInt8(), chtype.StringType())
	vs := []value.Value{
		value.Tuple([]value.Value{value.UInt8(7), value.String("x")}),
		value.Tuple([]value.Value{value.UInt8(8), value.String("yy")}),
	}

	got := encodeColumn(t, ty, vs)
	want := []byte{0x07, 0x08, 0x01, 'x', 0x02, 'y', 'y'}
	require.Equal(t, want, got)

	back := decodeColumn(t, ty, got, 2)
	require.Equal(t, uint64(7), back[0].Elems()[0].Uint())
	require.Equal(t, "x", back[0].Elems()[1].Str())
	require.Equal(t, uint64(8), back[1].Elems()[0].Uint())
	require.Equal(t, "yy", back[1].Elems()[1].Str())
}

func TestMapColumnRoundTrip(t *testing.T) {
	ty := chtype.MapType(chtype.StringType(), chtype.UInt32())
	vs := []value.Value{
		value.Map(
			[]value.Value{value.String("a"), value.String("b")},
			[]value.Value{value.UInt32(1), value.UInt32(2)},
		),
		value.Map(nil, nil),
	}

	got := encodeColumn(t, ty, vs)
	back := decodeColumn(t, ty, got, 2)
	require.Len(t, back[0].MapKeys(), 2)
	require.Equal(t, "a", back[0].MapKeys()[0].Str())
	require.Equal(t, uint64(1), back[0].MapVals()[0].Uint())
	require.Len(t, back[1].MapKeys(), 0)
}

func TestLowCardinalityNonNullableColumn(t *testing.T) {
	ty := chtype.LowCardinality(chtype.StringType())
	vs := []value.Value{value.String("x"), value.String("x"), value.String("y")}

	got := encodeColumn(t, ty, vs)
	back := decodeColumn(t, ty, got, 3)
	require.Equal(t, "x", back[0].Str())
	require.Equal(t, "x", back[1].Str())
	require.Equal(t, "y", back[2].Str())
}

// TestWireErrors exercises the ProtocolError scenarios spec.md §7 calls out
// by name: an unexpected LowCardinality key version, a truncated varint
// mid-stream, and a dictionary index out of range.
func TestWireErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T) error
	}{
		{
			name: "unexpected LowCardinality key version",
			run: func(t *testing.T) error {
				ty := chtype.LowCardinality(chtype.StringType())
				r := proto.NewBufReader(bytes.NewReader(le64(999)))

				return For(ty).ReadPrefix(ty, r, nil)
			},
		},
		{
			name: "truncated varint mid-stream",
			run: func(t *testing.T) error {
				// continuation bit set on the only byte available: the
				// stream ends before the varint terminates.
				r := proto.NewBufReader(bytes.NewReader([]byte{0x80}))
				_, err := r.ReadUvarint()

				return err
			},
		},
		{
			name: "truncated varint in a String column length prefix",
			run: func(t *testing.T) error {
				ty := chtype.StringType()
				r := proto.NewBufReader(bytes.NewReader([]byte{0x80}))
				_, err := For(ty).Read(ty, r, nil)

				return err
			},
		},
		{
			name: "dictionary index out of range",
			run: func(t *testing.T) error {
				ty := chtype.LowCardinality(chtype.StringType())

				var raw []byte
				raw = append(raw, le64(lcFlags(1))...) // flags: width u8
				raw = append(raw, le64(1)...)           // dict size 1 (placeholder only)
				raw = append(raw, 0x00)                 // dict value "" (varint len 0)
				raw = append(raw, le64(1)...)            // row count 1
				raw = append(raw, 0x05)                  // index 5, out of range [0,1)

				r := proto.NewBufReader(bytes.NewReader(raw))
				_, err := For(ty).ReadN(ty, r, 1, nil)

				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run(t)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrProtocolError)
		})
	}
}

func le64(v uint64) []byte {
	b := make([]byte, 8)
	proto.PutUint64(b, v)

	return b
}

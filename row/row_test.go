package row

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chdriver/chwire/chtype"
	"github.com/chdriver/chwire/value"
)

func TestDeserializeSerializeRow(t *testing.T) {
	cols := []Column{
		{Name: "id", Type: chtype.UInt32(), Value: value.UInt32(7)},
		{Name: "name", Type: chtype.StringType(), Value: value.String("x")},
	}

	r, err := DeserializeRow(cols)
	require.NoError(t, err)

	out := SerializeRow(r)
	require.Len(t, out, 2)
	require.Equal(t, "id", out[0].Name)
	require.Equal(t, uint64(7), out[0].Value.Uint())
	require.Equal(t, "x", out[1].Value.Str())
}

func TestDeserializeRowInvalidValue(t *testing.T) {
	cols := []Column{
		{Name: "id", Type: chtype.UInt32(), Value: value.String("not a uint")},
	}
	_, err := DeserializeRow(cols)
	require.Error(t, err)
}

func TestScalar(t *testing.T) {
	r, err := DeserializeRow([]Column{{Name: "n", Type: chtype.Int8(), Value: value.Int8(1)}})
	require.NoError(t, err)

	v, err := Scalar(r)
	require.NoError(t, err)
	require.Equal(t, int64(1), v.Int())
}

func TestScalarRejectsMultiColumn(t *testing.T) {
	r, err := DeserializeRow([]Column{
		{Name: "a", Type: chtype.Int8(), Value: value.Int8(1)},
		{Name: "b", Type: chtype.Int8(), Value: value.Int8(2)},
	})
	require.NoError(t, err)

	_, err = Scalar(r)
	require.Error(t, err)
}

package chtype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		ty   *Type
	}{
		{"nullable array", Nullable(Array(Int8()))},
		{"nullable nullable", Nullable(Nullable(Int8()))},
		{"triple nested array", Array(Array(Array(Int8())))},
		{"lc array", LowCardinality(Array(Int8()))},
		{"map bad key", MapType(Float32(), Int8())},
		{"decimal32 scale 0", Decimal32(0)},
		{"decimal32 scale 10", Decimal32(10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.ty.Validate())
		})
	}
}

func TestValidateAccepts(t *testing.T) {
	tests := []*Type{
		Int8(),
		Nullable(Int8()),
		Array(Array(Int8())),
		LowCardinality(StringType()),
		LowCardinality(Nullable(StringType())),
		MapType(StringType(), Array(UInt32())),
		Decimal32(9),
		Decimal256(76),
		Tuple(Int8(), StringType(), Array(Int8())),
	}
	for _, ty := range tests {
		t.Run(ty.String(), func(t *testing.T) {
			require.NoError(t, ty.Validate())
		})
	}
}

func TestValidateMonotonicity(t *testing.T) {
	ty := Array(Nullable(Int8()))
	require.NoError(t, ty.Validate())
	require.NoError(t, ty.Elem().Validate())
}

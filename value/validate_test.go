package value

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chdriver/chwire/chtype"
)

func TestValidateScalar(t *testing.T) {
	require.NoError(t, Validate(Int8(5), chtype.Int8()))
	require.Error(t, Validate(String("x"), chtype.Int8()))
	require.Error(t, Validate(Null(), chtype.Int8()))
}

func TestValidateNullable(t *testing.T) {
	ty := chtype.Nullable(chtype.Int8())
	require.NoError(t, Validate(Null(), ty))
	require.NoError(t, Validate(Int8(1), ty))
}

func TestValidateLowCardinality(t *testing.T) {
	ty := chtype.LowCardinality(chtype.Nullable(chtype.StringType()))
	require.NoError(t, Validate(Null(), ty))
	require.NoError(t, Validate(String("a"), ty))
}

func TestValidateDecimalScale(t *testing.T) {
	ty := chtype.Decimal32(2)
	require.NoError(t, Validate(Decimal(chtype.KindDecimal32, big.NewInt(100), 2), ty))
	require.Error(t, Validate(Decimal(chtype.KindDecimal32, big.NewInt(100), 3), ty))
}

func TestValidateFixedStringOverflow(t *testing.T) {
	ty := chtype.FixedString(2)
	require.NoError(t, Validate(FixedString("ab"), ty))
	require.Error(t, Validate(FixedString("abc"), ty))
}

func TestValidateEnumMembership(t *testing.T) {
	ty := chtype.Enum8([]chtype.EnumMember{{Name: "a", Value: 1}, {Name: "b", Value: 2}})
	require.NoError(t, Validate(Enum(chtype.KindEnum8, 1, "a"), ty))
	require.Error(t, Validate(Enum(chtype.KindEnum8, 9, "z"), ty))
}

func TestValidateArrayElementWise(t *testing.T) {
	ty := chtype.Array(chtype.Int8())
	require.NoError(t, Validate(Array([]Value{Int8(1), Int8(2)}), ty))
	require.Error(t, Validate(Array([]Value{Int8(1), String("x")}), ty))
}

func TestValidateMapParallelLength(t *testing.T) {
	ty := chtype.MapType(chtype.StringType(), chtype.UInt32())
	require.NoError(t, Validate(Map([]Value{String("a")}, []Value{UInt32(1)}), ty))
	require.Error(t, Validate(Map([]Value{String("a")}, nil), ty))
}

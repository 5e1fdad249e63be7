package chtype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePrintRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"int8", "Int8"},
		{"uint64", "UInt64"},
		{"string", "String"},
		{"fixed string", "FixedString(16)"},
		{"decimal32", "Decimal32(4)"},
		{"decimal256", "Decimal256(10)"},
		{"date", "Date"},
		{"datetime no tz", "DateTime"},
		{"datetime64 utc", "DateTime64(3, UTC)"},
		{"uuid", "UUID"},
		{"ipv4", "IPv4"},
		{"ipv6", "IPv6"},
		{"array", "Array(UInt8)"},
		{"nested array", "Array(Array(String))"},
		{"nullable", "Nullable(Int32)"},
		{"low cardinality", "LowCardinality(String)"},
		{"nullable low cardinality", "Nullable(LowCardinality(String))"},
		{"map", "Map(String, UInt32)"},
		{"tuple", "Tuple(UInt8, String)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ty, err := Parse(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.in, ty.String())
		})
	}
}

func TestParseDecimalNarrowing(t *testing.T) {
	ty, err := Parse("Decimal(20, 4)")
	require.NoError(t, err)
	require.Equal(t, KindDecimal128, ty.Kind())
	require.Equal(t, "Decimal128(4)", ty.String())
}

func TestParseDateTime64DefaultsToUTC(t *testing.T) {
	ty, err := Parse("DateTime64(6)")
	require.NoError(t, err)
	require.Equal(t, "DateTime64(6, UTC)", ty.String())
}

func TestParseUnknownIdentifier(t *testing.T) {
	_, err := Parse("NotAType")
	require.Error(t, err)
}

func TestEqual(t *testing.T) {
	require.True(t, Decimal32(2).Equal(Decimal32(2)))
	require.False(t, Decimal32(2).Equal(Decimal32(3)))
	require.True(t, Array(Int8()).Equal(Array(Int8())))
	require.False(t, Array(Int8()).Equal(Array(Int16())))
	require.True(t, Tuple(Int8(), StringType()).Equal(Tuple(Int8(), StringType())))
	require.False(t, Tuple(Int8()).Equal(Tuple(Int8(), StringType())))
}

func TestStripNullable(t *testing.T) {
	require.Equal(t, KindString, Nullable(StringType()).StripNullable().Kind())
	require.Equal(t, KindString, StringType().StripNullable().Kind())
}

func TestWidth(t *testing.T) {
	require.Equal(t, 1, Int8().Width())
	require.Equal(t, 16, UUID().Width())
	require.Equal(t, 32, Int256().Width())
	require.Panics(t, func() { StringType().Width() })
}

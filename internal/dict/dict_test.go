package dict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderFirstSeenOrderDedup(t *testing.T) {
	b := NewBuilder()

	require.Equal(t, 1, b.Slot("a"))
	require.Equal(t, 2, b.Slot("b"))
	require.Equal(t, 1, b.Slot("a")) // repeat reuses slot 1
	require.Equal(t, 3, b.Slot("c"))

	require.Equal(t, []string{"a", "b", "c"}, b.Keys())
	require.Equal(t, 3, b.Len())
}

func TestBuilderEmpty(t *testing.T) {
	b := NewBuilder()
	require.Equal(t, 0, b.Len())
	require.Empty(t, b.Keys())
}

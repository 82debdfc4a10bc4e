package bloom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitArray(t *testing.T) {
	b := newBitArray(63)
	require.Equal(t, uint64(63), b.size())
	require.Equal(t, uint64(0), b.popCount())

	b.set(0)
	b.set(62)
	b.set(62)
	require.True(t, b.test(0))
	require.True(t, b.test(62))
	require.False(t, b.test(1))
	require.Equal(t, uint64(2), b.popCount())

	b.clearAll()
	require.Equal(t, uint64(0), b.popCount())
	require.False(t, b.test(62))

	// Never resized.
	require.Equal(t, uint64(63), b.size())
}

package bloom

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndices(t *testing.T) {
	require.Equal(t, []uint64{3, 1, 6, 4}, slices.Collect(Indices(3, 5, 4, 7)))

	// h2 == 0 steps by one.
	require.Equal(t, []uint64{2, 3, 4}, slices.Collect(Indices(2, 0, 3, 10)))

	// Arithmetic wraps at 64 bits before the modulus.
	require.Equal(t, []uint64{5, 0, 1}, slices.Collect(Indices(math.MaxUint64, 1, 3, 10)))

	require.Empty(t, slices.Collect(Indices(1, 2, 0, 10)))
}

func TestIndicesInRange(t *testing.T) {
	src := XXHash(DefaultSeeds)
	for i := 0; i < 1000; i++ {
		h1, h2 := src.HashPair(appendKey(nil, i))
		n := 0
		for idx := range Indices(h1, h2, 11, 97) {
			require.Less(t, idx, uint64(97))
			n++
		}
		require.Equal(t, 11, n)
	}
}

func TestIndicesStopEarly(t *testing.T) {
	var seen []uint64
	for idx := range Indices(0, 1, 100, 1000) {
		seen = append(seen, idx)
		if len(seen) == 3 {
			break
		}
	}
	require.Equal(t, []uint64{0, 1, 2}, seen)
}

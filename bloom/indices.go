package bloom

import "iter"

// Indices yields the k bit positions for the hash pair (h1, h2) in an m bit
// array using double hashing:
//
//	index_i = (h1 + i*h2) mod m,  i in [0, k)
//
// Arithmetic wraps at 64 bits. h2 == 0 is treated as 1 so that the positions
// never collapse onto h1. The caller guarantees m > 0.
func Indices(h1, h2, k, m uint64) iter.Seq[uint64] {
	if h2 == 0 {
		h2 = 1
	}
	return func(yield func(uint64) bool) {
		for i := uint64(0); i < k; i++ {
			if !yield((h1 + i*h2) % m) {
				return
			}
		}
	}
}

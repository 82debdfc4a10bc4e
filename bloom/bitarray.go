package bloom

import "github.com/bits-and-blooms/bitset"

// bitArray is a fixed size array of m bits. It is never resized and has no
// per bit clear.
type bitArray struct {
	bits *bitset.BitSet
	m    uint64
}

func newBitArray(m uint64) *bitArray {
	return &bitArray{bits: bitset.New(uint(m)), m: m}
}

func (b *bitArray) set(i uint64)       { b.bits.Set(uint(i)) }
func (b *bitArray) test(i uint64) bool { return b.bits.Test(uint(i)) }
func (b *bitArray) clearAll()          { b.bits.ClearAll() }
func (b *bitArray) size() uint64       { return b.m }

// popCount returns the number of bits currently set.
func (b *bitArray) popCount() uint64 {
	return uint64(b.bits.Count())
}

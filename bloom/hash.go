package bloom

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// HashSource derives the base hash pair for an encoded key.
//
// Implementations must be deterministic and use at most two underlying hash
// evaluations per call.
type HashSource interface {
	HashPair(key []byte) (h1 uint64, h2 uint64)
}

// Hashing builds a HashSource from a seed pair.
type Hashing func(seeds SeedPair) HashSource

// XXHash hashes keys with two seeded xxhash64 evaluations. It is the default.
var XXHash Hashing = func(seeds SeedPair) HashSource {
	return xxhashSource{seeds: seeds}
}

// Murmur3 hashes keys with a single 128 bit murmur3 evaluation over
// S1BE || S2BE || key and uses the two halves as the pair.
var Murmur3 Hashing = func(seeds SeedPair) HashSource {
	return murmurSource{seeds: seeds}
}

type xxhashSource struct {
	seeds SeedPair
}

// HashPair computes xxhash64(seedBE || key) once per seed.
func (s xxhashSource) HashPair(key []byte) (uint64, uint64) {
	var buf [64]byte
	b := append(appendU64BE(buf[:0], s.seeds.S1), key...)
	h1 := xxhash.Sum64(b)

	// Same key bytes, second seed.
	binary.BigEndian.PutUint64(b, s.seeds.S2)
	h2 := xxhash.Sum64(b)
	return h1, h2
}

type murmurSource struct {
	seeds SeedPair
}

func (s murmurSource) HashPair(key []byte) (uint64, uint64) {
	var buf [64]byte
	b := appendU64BE(buf[:0], s.seeds.S1)
	b = appendU64BE(b, s.seeds.S2)
	return murmur3.Sum128(append(b, key...))
}

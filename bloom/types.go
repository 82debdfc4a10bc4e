package bloom

import (
	"errors"
	"math"
)

const (
	// SaturatedCardinality is returned by ApproxCardinality once every bit
	// is set and the estimate is no longer defined.
	SaturatedCardinality uint64 = math.MaxUint64

	// MaxBitCount bounds the bit array size so that it can always be
	// addressed with an int.
	MaxBitCount uint64 = math.MaxInt64
)

var (
	ErrBadCapacity  = errors.New("bloom: capacity must be greater than zero")
	ErrBadFPRate    = errors.New("bloom: false positive rate must be in (0, 1)")
	ErrBadSize      = errors.New("bloom: size too small for the false positive rate")
	ErrSizeOverflow = errors.New("bloom: size computation overflow")

	ErrBadK     = errors.New("bloom: hash count invalid")
	ErrBadMBits = errors.New("bloom: bit count invalid")
)

// SeedPair holds the two seeds every key hash is derived from.
type SeedPair struct {
	S1 uint64
	S2 uint64
}

// DefaultSeeds are used when no seed pair is supplied.
var DefaultSeeds = SeedPair{
	S1: 0x9E3779B97F4A7C15,
	S2: 0xC2B2AE3D27D4EB4F,
}

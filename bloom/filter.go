package bloom

import (
	"iter"
	"math"

	"go.uber.org/zap"

	"github.com/forestrie/go-mqfilter/filter"
)

var (
	_ filter.Insertable[string] = (*Filter[string])(nil)
	_ filter.Clearable          = (*Filter[string])(nil)
)

// Filter is a Bloom filter over keys of type K.
//
// Keys are never stored, only the bit positions derived from them. A Filter
// is not safe for concurrent use when any goroutine calls Insert or Clear.
type Filter[K comparable] struct {
	cfg    Config
	seeds  SeedPair
	source HashSource
	bits   *bitArray
}

// New is WithCapacity.
func New[K comparable](capacity uint64, fpRate float64, opts ...Option) (*Filter[K], error) {
	return WithCapacity[K](capacity, fpRate, opts...)
}

// WithCapacity creates a filter sized to hold capacity elements at fpRate.
func WithCapacity[K comparable](capacity uint64, fpRate float64, opts ...Option) (*Filter[K], error) {
	o := NewOptions(opts...)
	cfg, err := NewConfig(capacity, fpRate)
	if err != nil {
		o.Logger.Debug("bloom: rejected configuration",
			zap.Uint64("capacity", capacity), zap.Float64("fpRate", fpRate), zap.Error(err))
		return nil, filter.Wrap(err, "bad capacity %d or false positive rate %g", capacity, fpRate)
	}
	return newFilter[K](cfg, o), nil
}

// WithSize creates a filter using about sizeBytes of storage at fpRate.
//
// The capacity that fits in sizeBytes is computed first and the filter is
// then sized from it, so the bit array can differ slightly from sizeBytes*8.
func WithSize[K comparable](sizeBytes uint64, fpRate float64, opts ...Option) (*Filter[K], error) {
	o := NewOptions(opts...)
	cfg, err := NewConfigForSize(sizeBytes, fpRate)
	if err != nil {
		o.Logger.Debug("bloom: rejected configuration",
			zap.Uint64("sizeBytes", sizeBytes), zap.Float64("fpRate", fpRate), zap.Error(err))
		return nil, filter.Wrap(err, "bad size %d or false positive rate %g", sizeBytes, fpRate)
	}
	return newFilter[K](cfg, o), nil
}

// WithCapacityAndSeeds is WithCapacity with an explicit seed pair.
func WithCapacityAndSeeds[K comparable](capacity uint64, fpRate float64, seeds SeedPair, opts ...Option) (*Filter[K], error) {
	return WithCapacity[K](capacity, fpRate, append(opts[:len(opts):len(opts)], WithSeeds(seeds))...)
}

// WithSizeAndSeeds is WithSize with an explicit seed pair.
func WithSizeAndSeeds[K comparable](sizeBytes uint64, fpRate float64, seeds SeedPair, opts ...Option) (*Filter[K], error) {
	return WithSize[K](sizeBytes, fpRate, append(opts[:len(opts):len(opts)], WithSeeds(seeds))...)
}

func newFilter[K comparable](cfg Config, o Options) *Filter[K] {
	o.Logger.Debug("bloom: filter sized", zap.Object("config", cfg))
	return &Filter[K]{
		cfg:    cfg,
		seeds:  o.Seeds,
		source: o.Hashing(o.Seeds),
		bits:   newBitArray(cfg.BitCount),
	}
}

func (f *Filter[K]) indices(key K) iter.Seq[uint64] {
	var buf [32]byte
	h1, h2 := f.source.HashPair(appendKey(buf[:0], key))
	return Indices(h1, h2, f.cfg.HashCount, f.bits.size())
}

// Contains reports whether key may have been inserted. false is definitive.
func (f *Filter[K]) Contains(key K) bool {
	for i := range f.indices(key) {
		if !f.bits.test(i) {
			return false
		}
	}
	return true
}

// Insert adds key to the filter. Inserting a key again changes nothing.
func (f *Filter[K]) Insert(key K) {
	for i := range f.indices(key) {
		f.bits.set(i)
	}
}

// Clear forgets every inserted key.
func (f *Filter[K]) Clear() {
	f.bits.clearAll()
}

// ApproxCardinality estimates the number of distinct keys inserted since the
// filter was created or last cleared:
//
//	round(-(m/k) * ln(1 - ones/m))
//
// Once every bit is set the estimate is undefined and SaturatedCardinality
// is returned.
func (f *Filter[K]) ApproxCardinality() uint64 {
	ones := f.bits.popCount()
	if ones == 0 {
		return 0
	}
	if ones >= f.bits.size() {
		return SaturatedCardinality
	}
	m := float64(f.bits.size())
	k := float64(f.cfg.HashCount)
	est := math.Round(-(m / k) * math.Log(1-float64(ones)/m))

	// 2^64 is exactly representable, MaxUint64 is not.
	if math.IsNaN(est) || est >= 1<<64 {
		return SaturatedCardinality
	}
	return uint64(est)
}

// FPRateAt returns the theoretical false positive rate for the current
// cardinality estimate.
func (f *Filter[K]) FPRateAt() float64 {
	n := f.ApproxCardinality()
	if n == SaturatedCardinality {
		return 1
	}
	return EstimateFPRate(n, f.cfg.BitCount, f.cfg.HashCount)
}

// IsEmpty is true when no bit is set.
func (f *Filter[K]) IsEmpty() bool { return f.bits.popCount() == 0 }

// Ones returns the population count of the bit array.
func (f *Filter[K]) Ones() uint64 { return f.bits.popCount() }

func (f *Filter[K]) Config() Config    { return f.cfg }
func (f *Filter[K]) Seeds() SeedPair   { return f.seeds }
func (f *Filter[K]) Capacity() uint64  { return f.cfg.Capacity }
func (f *Filter[K]) FPRate() float64   { return f.cfg.FPRate }
func (f *Filter[K]) BitCount() uint64  { return f.cfg.BitCount }
func (f *Filter[K]) HashCount() uint64 { return f.cfg.HashCount }

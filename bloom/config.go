package bloom

import "go.uber.org/zap/zapcore"

// Config is the sizing of a filter, fixed at construction.
type Config struct {
	Capacity  uint64  // n, expected distinct elements
	FPRate    float64 // p, target false positive rate
	BitCount  uint64  // m
	HashCount uint64  // k
}

// NewConfig derives m and k for capacity elements at fpRate.
func NewConfig(capacity uint64, fpRate float64) (Config, error) {
	if err := CheckParams(capacity, fpRate); err != nil {
		return Config{}, err
	}
	m := OptimalBitCount(capacity, fpRate)
	c := Config{
		Capacity:  capacity,
		FPRate:    fpRate,
		BitCount:  m,
		HashCount: OptimalHashCount(capacity, m),
	}
	return c, c.Validate()
}

// NewConfigForSize derives the capacity that sizeBytes can hold at fpRate
// and then sizes as NewConfig does.
func NewConfigForSize(sizeBytes uint64, fpRate float64) (Config, error) {
	if sizeBytes == 0 {
		return Config{}, ErrBadSize
	}
	if err := checkFPRate(fpRate); err != nil {
		return Config{}, err
	}
	m, err := bitCountForSize(sizeBytes)
	if err != nil {
		return Config{}, err
	}
	capacity := OptimalCapacity(m, fpRate)
	if capacity == 0 {
		return Config{}, ErrBadSize
	}
	return NewConfig(capacity, fpRate)
}

// Validate checks the invariants every filter relies on.
func (c Config) Validate() error {
	if c.Capacity == 0 {
		return ErrBadCapacity
	}
	if err := checkFPRate(c.FPRate); err != nil {
		return err
	}
	if c.BitCount == 0 {
		return ErrBadMBits
	}
	if c.BitCount > MaxBitCount {
		return ErrSizeOverflow
	}
	if c.HashCount == 0 {
		return ErrBadK
	}
	return nil
}

// SizeBytes is the storage needed for the bit array, ceil(m/8).
func (c Config) SizeBytes() uint64 {
	return (c.BitCount + 7) / 8
}

// MarshalLogObject lets a Config be logged with zap.Object.
func (c Config) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint64("capacity", c.Capacity)
	enc.AddFloat64("fpRate", c.FPRate)
	enc.AddUint64("bitCount", c.BitCount)
	enc.AddUint64("hashCount", c.HashCount)
	enc.AddUint64("sizeBytes", c.SizeBytes())
	return nil
}

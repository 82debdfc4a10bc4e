package bloom

import "go.uber.org/zap"

// Options configures filter construction.
type Options struct {
	Seeds   SeedPair
	Hashing Hashing
	Logger  *zap.Logger
}

type Option func(*Options)

// NewOptions returns the defaults with opts applied in order.
func NewOptions(opts ...Option) Options {
	o := Options{
		Seeds:   DefaultSeeds,
		Hashing: XXHash,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Hashing == nil {
		o.Hashing = XXHash
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// WithSeeds sets the seed pair passed to the hash source.
func WithSeeds(seeds SeedPair) Option {
	return func(o *Options) {
		o.Seeds = seeds
	}
}

// WithHashing selects the hash source, for example Murmur3.
func WithHashing(h Hashing) Option {
	return func(o *Options) {
		o.Hashing = h
	}
}

// WithLogger sets the logger used during construction. Filter operations
// never log.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = log
	}
}

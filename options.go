package randsource

import "math/rand"

// Config collects construction settings shared by New, NewShared and
// NewPooled. Options mutate it; callers never build one directly.
type Config struct {
	seed    *int64
	src     rand.Source
	drawCBs []DrawCallback
}

// An Option can be passed to New, NewShared or NewPooled
type Option func(*Config)

// WithSeed specifies a random number seed, for repeatable runs.
// The same seed and the same call sequence reproduce the same outputs.
func WithSeed(seed int64) Option {
	return func(cfg *Config) {
		cfg.seed = &seed
	}
}

// WithSource supplies the engine directly, overriding any seed. Useful for
// injecting a LockedSource or a test double.
func WithSource(src rand.Source) Option {
	return func(cfg *Config) {
		cfg.src = src
	}
}

// OnDraw specifies a callback for every draw
func OnDraw(cb DrawCallback) Option {
	return func(cfg *Config) {
		cfg.drawCBs = append(cfg.drawCBs, cb)
	}
}

func applyOptions(opts []Option) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (cfg *Config) engineSource() rand.Source {
	switch {
	case cfg.src != nil:
		return cfg.src
	case cfg.seed != nil:
		return rand.NewSource(*cfg.seed)
	}
	return rand.NewSource(entropySeed())
}

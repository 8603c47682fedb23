// Package randsource provides uniform sampling, range-filling, shuffling and
// random-selection helpers on top of a single pseudo-random engine.
//
// A Source owns one engine and is cheap but not safe for concurrent use. Wrap
// it in a SharedSource to serialize callers through one engine, or use a
// PooledSource to give each goroutine its own engine transparently.
package randsource

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Generator is the sampling surface shared by every source variant. Container
// helpers like FillInt and Item accept any Generator, so they work the same
// over unshared, shared and pooled engines.
type Generator interface {
	// Next returns a uniformly distributed int in [0, max].
	Next(max int) int
	// NextInt returns a uniformly distributed int in [min, max].
	NextInt(min, max int) int
	// NextFloat returns a uniformly distributed float64 in [min, max].
	NextFloat(min, max float64) float64
	// NextFloat01 returns a uniformly distributed float64 in [0, 1].
	NextFloat01() float64
	// Shuffle exchanges elements using swap such that every permutation of n
	// elements is equally likely.
	Shuffle(n int, swap func(i, j int))
}

// Source produces uniformly distributed values from one internally owned
// engine. Every call advances the engine stream; a call sequence is only
// reproducible against an identically seeded Source.
//
// A Source must not be used from multiple goroutines at once.
type Source struct {
	rnd     *rand.Rand
	drawCBs []DrawCallback
}

var _ Generator = (*Source)(nil)

// New creates a Source. Without options the engine is seeded from the
// operating system's entropy source; pass WithSeed for repeatable runs.
func New(opts ...Option) *Source {
	cfg := applyOptions(opts)
	return &Source{
		rnd:     rand.New(cfg.engineSource()),
		drawCBs: cfg.drawCBs,
	}
}

// entropySeed draws a seed from the OS entropy pool, falling back to the
// clock if that fails (some containers have no usable /dev/urandom).
func entropySeed() int64 {
	var seed int64
	if err := binary.Read(crand.Reader, binary.LittleEndian, &seed); err != nil {
		return time.Now().UnixNano()
	}
	return seed
}

// Next returns a uniformly distributed int in [0, max].
// It panics if max is negative.
func (s *Source) Next(max int) int {
	return s.NextInt(0, max)
}

// NextInt returns a uniformly distributed int in [min, max]. Repeated calls
// with the same bounds yield an i.i.d. uniform sequence from the single
// engine stream. Any bounds with min <= max are valid, including ranges as
// wide as the whole int type.
//
// min > max is caller misuse and panics.
func (s *Source) NextInt(min, max int) int {
	if min > max {
		panic(fmt.Sprintf("randsource: inverted bounds: min=%d max=%d", min, max))
	}
	s.observe(KindInt)

	// The span is computed in uint64 so wide bounds cannot overflow.
	span := uint64(max) - uint64(min) + 1
	if span == 0 {
		// min and max straddle the whole int range; any draw is in bounds
		return int(s.rnd.Uint64())
	}
	if span <= math.MaxInt64 {
		return min + int(s.rnd.Int63n(int64(span)))
	}
	// The span needs all 64 bits; reject draws past it
	for {
		if v := s.rnd.Uint64(); v < span {
			return min + int(v)
		}
	}
}

// NextFloat returns a uniformly distributed float64 in [min, max].
//
// min > max is caller misuse and panics.
func (s *Source) NextFloat(min, max float64) float64 {
	if min > max {
		panic(fmt.Sprintf("randsource: inverted bounds: min=%v max=%v", min, max))
	}
	s.observe(KindFloat)
	return min + s.rnd.Float64()*(max-min)
}

// NextFloat01 returns a uniformly distributed float64 in [0, 1].
func (s *Source) NextFloat01() float64 {
	return s.NextFloat(0, 1)
}

// Shuffle exchanges elements via swap, visiting a uniformly random
// permutation. Most callers want the generic Shuffle helper instead.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.observe(KindShuffle)
	s.rnd.Shuffle(n, swap)
}

func (s *Source) observe(kind Kind) {
	for _, cb := range s.drawCBs {
		cb(kind)
	}
}

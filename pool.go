package randsource

import (
	"math/rand"
	"sync"

	"github.com/dyikot/randsource/internal/safepool"
)

// PooledSource keeps a pool of engines so concurrent goroutines never share
// one. Each operation borrows an engine for its duration, so there is no
// locking around draws, at the cost of global reproducibility: even with
// WithSeed, which engine a goroutine borrows depends on scheduling, so only
// each individual engine's stream is deterministic.
type PooledSource struct {
	// rand.Rand is not concurrency safe, so keep a pool of them for
	// goroutine-independent use
	pool    *safepool.RandPool
	drawCBs []DrawCallback
}

var _ Generator = (*PooledSource)(nil)

// NewPooled creates a PooledSource. It takes the same options as New; with
// WithSeed, engine seeds are derived from the given seed through a splitmix
// sequence so distinct engines still get distinct streams.
func NewPooled(opts ...Option) *PooledSource {
	cfg := applyOptions(opts)

	newEngine := func() *rand.Rand {
		return rand.New(rand.NewSource(entropySeed()))
	}
	if cfg.seed != nil {
		seeds := newSeedSequence(*cfg.seed)
		newEngine = func() *rand.Rand {
			return rand.New(rand.NewSource(seeds.next()))
		}
	}

	return &PooledSource{
		pool:    safepool.NewRandPool(newEngine),
		drawCBs: cfg.drawCBs,
	}
}

func (p *PooledSource) Next(max int) int {
	s := p.borrow()
	defer p.pool.Put(s.rnd)
	return s.Next(max)
}

func (p *PooledSource) NextInt(min, max int) int {
	s := p.borrow()
	defer p.pool.Put(s.rnd)
	return s.NextInt(min, max)
}

func (p *PooledSource) NextFloat(min, max float64) float64 {
	s := p.borrow()
	defer p.pool.Put(s.rnd)
	return s.NextFloat(min, max)
}

func (p *PooledSource) NextFloat01() float64 {
	s := p.borrow()
	defer p.pool.Put(s.rnd)
	return s.NextFloat01()
}

func (p *PooledSource) Shuffle(n int, swap func(i, j int)) {
	s := p.borrow()
	defer p.pool.Put(s.rnd)
	s.Shuffle(n, swap)
}

// borrow wraps a pooled engine in a transient Source so pooled draws share
// the bounds checks and callbacks of the unshared path.
func (p *PooledSource) borrow() Source {
	return Source{rnd: p.pool.Get(), drawCBs: p.drawCBs}
}

// seedSequence derives a stream of engine seeds from one caller seed using
// the splitmix64 finalizer.
type seedSequence struct {
	mtx   sync.Mutex
	state uint64
}

const goldenRatio64 = 0x9e3779b97f4a7c15

func newSeedSequence(seed int64) *seedSequence {
	return &seedSequence{state: uint64(seed)}
}

func (sq *seedSequence) next() int64 {
	sq.mtx.Lock()
	sq.state += goldenRatio64
	x := sq.state
	sq.mtx.Unlock()

	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

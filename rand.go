package randsource

import (
	"math/rand"
	"sync"
)

// The default rand.Source is not thread-safe. LockedSource is one with a
// mutex, so it can be used concurrently, e.g. as the engine behind a plain
// Source via WithSource.
type LockedSource struct {
	src rand.Source
	mtx sync.Mutex
}

var _ rand.Source = (*LockedSource)(nil)

// NewLockedSource returns a LockedSource seeded with seed.
func NewLockedSource(seed int64) *LockedSource {
	return &LockedSource{src: rand.NewSource(seed)}
}

func (ls *LockedSource) Int63() int64 {
	ls.mtx.Lock()
	defer ls.mtx.Unlock()
	return ls.src.Int63()
}

func (ls *LockedSource) Seed(s int64) {
	ls.mtx.Lock()
	defer ls.mtx.Unlock()
	ls.src.Seed(s)
}

package randsource

import "sync"

// SharedSource serializes every operation of one underlying Source through a
// single mutex, making one engine safe for concurrent callers. Contended
// callers block until the lock is free; distribution contracts are unchanged.
type SharedSource struct {
	mtx sync.Mutex
	src *Source
}

var _ Generator = (*SharedSource)(nil)

// NewShared creates a SharedSource. It takes the same options as New.
func NewShared(opts ...Option) *SharedSource {
	return &SharedSource{src: New(opts...)}
}

func (ss *SharedSource) Next(max int) int {
	ss.mtx.Lock()
	defer ss.mtx.Unlock()
	return ss.src.Next(max)
}

func (ss *SharedSource) NextInt(min, max int) int {
	ss.mtx.Lock()
	defer ss.mtx.Unlock()
	return ss.src.NextInt(min, max)
}

func (ss *SharedSource) NextFloat(min, max float64) float64 {
	ss.mtx.Lock()
	defer ss.mtx.Unlock()
	return ss.src.NextFloat(min, max)
}

func (ss *SharedSource) NextFloat01() float64 {
	ss.mtx.Lock()
	defer ss.mtx.Unlock()
	return ss.src.NextFloat01()
}

func (ss *SharedSource) Shuffle(n int, swap func(i, j int)) {
	ss.mtx.Lock()
	defer ss.mtx.Unlock()
	ss.src.Shuffle(n, swap)
}

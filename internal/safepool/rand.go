// Package safepool pools *rand.Rand engines so each goroutine can borrow one
// without locking. rand.Rand is not concurrency safe; the pool hands every
// borrower exclusive use of an engine between Get and Put.
package safepool

import (
	"math/rand"
	"sync"
)

type RandPool struct {
	p sync.Pool
}

// NewRandPool creates a pool whose engines are built by newFn. newFn runs
// whenever the pool is empty, so it may be called from any goroutine and
// must be safe for concurrent use.
func NewRandPool(newFn func() *rand.Rand) *RandPool {
	return &RandPool{
		p: sync.Pool{
			New: func() interface{} {
				return newFn()
			},
		},
	}
}

func (p *RandPool) Get() *rand.Rand {
	return p.p.Get().(*rand.Rand)
}

func (p *RandPool) Put(item *rand.Rand) {
	p.p.Put(item)
}

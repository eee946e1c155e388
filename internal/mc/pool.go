package mc

import (
	"sync"

	"github.com/san-kum/quantsim/internal/quant"
)

// statePool recycles fixed-size state slices for the draw scratch in the
// hot simulation loop.
type statePool struct {
	pool sync.Pool
	size int
}

func newStatePool(stateSize int) *statePool {
	return &statePool{
		size: stateSize,
		pool: sync.Pool{
			New: func() interface{} {
				return make(quant.State, stateSize)
			},
		},
	}
}

func (p *statePool) Get() quant.State {
	return p.pool.Get().(quant.State)
}

func (p *statePool) Put(s quant.State) {
	if len(s) == p.size {
		for i := range s {
			s[i] = 0
		}
		p.pool.Put(s)
	}
}

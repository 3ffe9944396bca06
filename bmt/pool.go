// Copyright 2018 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package bmt

import (
	"sync"
	"sync/atomic"

	"github.com/holisticode/baotree/metrics"
)

// reservedCount is the number of scratch bundles currently checked out of
// any statePool, across every pool SetPoolCapacity has ever installed.
// metrics.PoolReserved mirrors it on every reserve/release.
var reservedCount int64

// scratch bundles the two fixed-capacity, value-typed pieces of state a
// single encode needs: the post-order subtree stack (B) and the flipper's
// parent stack (D). Pooling the bundle means a caller issuing many small
// encodes back to back doesn't re-zero and doesn't re-derive capacity for
// either one from scratch each time.
type scratch struct {
	tree    treeState
	flipper FlipperState
}

// statePool is a capacity-bounded pool of reusable scratch state, modeled
// directly on the teacher bmt.TreePool: a buffered channel of resources,
// reserve() drains it or allocates fresh until the pool reaches capacity
// (after which reserve blocks), release() always succeeds because the
// channel is sized to capacity.
type statePool struct {
	lock     sync.Mutex
	c        chan *scratch
	capacity int
	count    int
}

// newStatePool creates a pool that holds at most capacity resources
// in flight. A capacity of 0 or less is treated as 1.
func newStatePool(capacity int) *statePool {
	if capacity <= 0 {
		capacity = 1
	}
	return &statePool{
		c:        make(chan *scratch, capacity),
		capacity: capacity,
	}
}

// defaultPool is the package-level pool Encode and NewWriter draw from
// until bootstrap.Init (or a direct SetPoolCapacity call) resizes it from
// config.Config.PoolCapacity.
var defaultPool = newStatePool(8)

// SetPoolCapacity replaces the package-level pool with one of the given
// capacity. It is meant to be called once during process startup — see
// bootstrap.Init, which drives it from config.Config.PoolCapacity — before
// any concurrent Encode or Writer use; it does not migrate resources
// already checked out of the old pool.
func SetPoolCapacity(capacity int) {
	defaultPool = newStatePool(capacity)
}

func (p *statePool) reserve() *scratch {
	p.lock.Lock()
	if p.count < p.capacity {
		select {
		case s := <-p.c:
			p.lock.Unlock()
			metrics.PoolReserved.Update(atomic.AddInt64(&reservedCount, 1))
			return s
		default:
			p.count++
			p.lock.Unlock()
			metrics.PoolReserved.Update(atomic.AddInt64(&reservedCount, 1))
			return &scratch{}
		}
	}
	p.lock.Unlock()
	s := <-p.c
	metrics.PoolReserved.Update(atomic.AddInt64(&reservedCount, 1))
	return s
}

// release resets the scratch state and returns it to the pool. This can
// never block: the channel is sized to capacity and release is always
// paired with a prior reserve.
func (p *statePool) release(s *scratch) {
	s.tree.reset()
	s.flipper = FlipperState{}
	p.c <- s
	metrics.PoolReserved.Update(atomic.AddInt64(&reservedCount, -1))
}

// Drain shrinks the pool's free list down to at most n idle resources,
// mirroring TreePool.Drain.
func (p *statePool) Drain(n int) {
	p.lock.Lock()
	defer p.lock.Unlock()
	for len(p.c) > n {
		<-p.c
		p.count--
	}
}

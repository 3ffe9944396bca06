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

package cache

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/holisticode/baotree/bmt"
)

func TestRootCacheMemoizes(t *testing.T) {
	c, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var loads int32
	load := func() ([]byte, error) {
		atomic.AddInt32(&loads, 1)
		return make([]byte, bmt.ChunkSize+1), nil
	}

	first, err := c.Get("doc", load)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	second, err := c.Get("doc", load)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if first.Root != second.Root {
		t.Fatalf("cached root differs between calls")
	}
	if atomic.LoadInt32(&loads) != 1 {
		t.Fatalf("load called %d times, want 1", loads)
	}
}

// TestRootCacheDeduplicatesConcurrentLoads checks that many goroutines
// requesting the same uncached key collapse into a single load/encode,
// exercising the singleflight.Group path rather than the lru.Cache hit path.
func TestRootCacheDeduplicatesConcurrentLoads(t *testing.T) {
	c, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var loads int32
	start := make(chan struct{})
	load := func() ([]byte, error) {
		<-start
		atomic.AddInt32(&loads, 1)
		return make([]byte, bmt.ChunkSize), nil
	}

	const n = 16
	results := make([]Result, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.Get("shared", load)
		}(i)
	}
	close(start)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("goroutine %d: Get: %v", i, err)
		}
	}
	for i := 1; i < n; i++ {
		if results[i].Root != results[0].Root {
			t.Fatalf("goroutine %d got a different root than goroutine 0", i)
		}
	}
	if got := atomic.LoadInt32(&loads); got != 1 {
		t.Fatalf("load called %d times, want 1", got)
	}
}

func TestRootCachePurge(t *testing.T) {
	c, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var loads int32
	load := func() ([]byte, error) {
		atomic.AddInt32(&loads, 1)
		return make([]byte, bmt.ChunkSize), nil
	}
	if _, err := c.Get("doc", load); err != nil {
		t.Fatalf("Get: %v", err)
	}
	c.Purge()
	if _, err := c.Get("doc", load); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got := atomic.LoadInt32(&loads); got != 2 {
		t.Fatalf("load called %d times after purge, want 2", got)
	}
}

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

import "github.com/fjl/memsize"

// PoolMemSize scans the default scratch pool and reports its retained heap
// size, for operational visibility into how much memory repeated Encode /
// NewWriter calls are holding onto between requests.
func PoolMemSize() memsize.Report {
	defaultPool.lock.Lock()
	idle := make([]*scratch, 0, len(defaultPool.c))
	for len(defaultPool.c) > 0 {
		s := <-defaultPool.c
		idle = append(idle, s)
	}
	for _, s := range idle {
		defaultPool.c <- s
	}
	defaultPool.lock.Unlock()
	return memsize.Scan(idle)
}

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

// Package cache memoizes whole bmt.Encode results behind a caller-supplied
// key, so that repeatedly encoding the same content (by path, by logical
// document id, whatever the caller uses to name it) does the real work
// once. It does not persist anything and does not change how any single
// tree is built; it only short-circuits repeat requests for a result
// already computed.
package cache

import (
	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/singleflight"

	"github.com/holisticode/baotree/bmt"
)

// Result is a cached encode outcome.
type Result struct {
	Root    bmt.Hash
	Encoded []byte
}

// RootCache bounds how many encode results are kept in memory and
// collapses concurrent requests for the same key into a single Encode
// call, mirroring storage.netstore's fetchers *lru.Cache +
// requestGroup singleflight.Group pairing.
type RootCache struct {
	entries      *lru.Cache
	requestGroup singleflight.Group
}

// New creates a RootCache holding at most capacity entries.
func New(capacity int) (*RootCache, error) {
	entries, err := lru.New(capacity)
	if err != nil {
		return nil, err
	}
	return &RootCache{entries: entries}, nil
}

// Get returns the cached Result for key if present; otherwise it calls
// load to obtain the input bytes, encodes them, caches the result under
// key, and returns it. Concurrent Get calls for the same key share one
// underlying Encode call.
func (c *RootCache) Get(key string, load func() ([]byte, error)) (Result, error) {
	if v, ok := c.entries.Get(key); ok {
		return v.(Result), nil
	}

	v, err, _ := c.requestGroup.Do(key, func() (interface{}, error) {
		if v, ok := c.entries.Get(key); ok {
			return v.(Result), nil
		}
		input, err := load()
		if err != nil {
			return Result{}, err
		}
		root, encoded := bmt.Encode(input)
		result := Result{Root: root, Encoded: encoded}
		c.entries.Add(key, result)
		return result, nil
	})
	if err != nil {
		return Result{}, err
	}
	return v.(Result), nil
}

// Purge discards all cached entries.
func (c *RootCache) Purge() {
	c.entries.Purge()
}

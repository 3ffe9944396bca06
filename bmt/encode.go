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
	"io"

	"github.com/holisticode/baotree/metrics"
)

// encodePostOrder writes input to dst as a post-order encoding — chunks
// and parent payloads in the order they become known, followed by the
// 8-byte length trailer — and returns the root hash. The tree argument is
// caller-owned scratch state (drawn from a statePool) so repeated calls
// don't reallocate the subtree stack.
func encodePostOrder(dst io.Writer, input []byte, tree *treeState) (Hash, error) {
	length := uint64(len(input))
	fin := rootFinalization(length)

	if length <= ChunkSize {
		if _, err := dst.Write(input); err != nil {
			return Hash{}, err
		}
		trailer := encodeLen(length)
		if _, err := dst.Write(trailer[:]); err != nil {
			return Hash{}, err
		}
		metrics.EncodeChunks.Inc(1)
		return hashChunk(input, fin), nil
	}

	tree.reset()
	n := CountChunks(length)
	for c := uint64(0); c < n; c++ {
		start := c * ChunkSize
		end := start + uint64(chunkSize(c, length))
		chunk := input[start:end]

		if _, err := dst.Write(chunk); err != nil {
			return Hash{}, err
		}
		tree.pushSubtree(hashChunk(chunk, notRoot()))
		metrics.EncodeChunks.Inc(1)

		if c+1 < n {
			for {
				payload, ok := tree.mergeParent()
				if !ok {
					break
				}
				if _, err := dst.Write(payload[:]); err != nil {
					return Hash{}, err
				}
			}
		} else {
			for {
				payload, root, done := tree.mergeFinish(fin)
				if _, err := dst.Write(payload[:]); err != nil {
					return Hash{}, err
				}
				if done {
					trailer := encodeLen(length)
					if _, err := dst.Write(trailer[:]); err != nil {
						return Hash{}, err
					}
					return root, nil
				}
			}
		}
	}
	// Unreachable: CountChunks always returns >= 1, so the loop above
	// always takes the final-chunk branch before falling through.
	panic("bmt: encodePostOrder: no chunks processed")
}

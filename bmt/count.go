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
	"math/bits"
)

// CountChunks returns the number of chunks an input of the given length
// splits into. The zero-length input still counts as one (empty) chunk.
func CountChunks(length uint64) uint64 {
	full := length / ChunkSize
	if length%ChunkSize != 0 {
		full++
	}
	if full == 0 {
		return 1
	}
	return full
}

// chunkSize returns the byte length of chunk index c (0-based) of an input
// of the given total length.
func chunkSize(c, length uint64) int {
	start := c * ChunkSize
	remaining := length - start
	if remaining > ChunkSize {
		return ChunkSize
	}
	return int(remaining)
}

// EncodedSize returns the total byte length of the encoding of an input of
// the given length: the content itself, one parent payload per internal
// node (chunks-1 of them), and the 8-byte header.
//
// This can overflow a uint64 only when length is within ParentSize of
// 2^64-1 chunks' worth of parent overhead, which is far beyond any input
// this implementation can realistically be asked to encode; callers
// working at that extreme should widen to a 128-bit intermediate
// themselves, as spec.md documents.
func EncodedSize(length uint64) uint64 {
	numParents := CountChunks(length) - 1
	return length + numParents*ParentSize + HeaderSize
}

// PostOrderParentNodesNonFinal returns the number of parent nodes emitted
// immediately after writing chunk c, when c is not the final chunk of the
// tree. This is the number of trailing one-bits of c: exactly the
// right-siblings that just completed.
func PostOrderParentNodesNonFinal(c uint64) int {
	return bits.TrailingZeros64(^c)
}

// PostOrderParentNodesFinal returns the number of parent nodes emitted
// after writing the final chunk (index c = N-1): every subtree still open
// on the stack must now be folded, one per set bit of c.
func PostOrderParentNodesFinal(c uint64) int {
	return bits.OnesCount64(c)
}

// PreOrderParentNodes returns the number of parent nodes that appear
// before chunk c in the pre-order encoding of an input of the given total
// length.
func PreOrderParentNodes(c, length uint64) int {
	n := CountChunks(length)
	remaining := n - c
	startingBound := bits.Len64(remaining - 1)
	interiorBound := bits.TrailingZeros64(c) // 64 when c == 0, i.e. unbounded
	if interiorBound < startingBound {
		return interiorBound
	}
	return startingBound
}

// largestPowerOfTwoLessThan returns the largest power of two strictly less
// than n, for n > 1. This is the authoritative tree-shape rule: every
// subtree spanning n > 1 chunks splits its left child at this many chunks.
func largestPowerOfTwoLessThan(n uint64) uint64 {
	return uint64(1) << (bits.Len64(n-1) - 1)
}

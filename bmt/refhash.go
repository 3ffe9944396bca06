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

// RefHash is a reference implementation of the root hash, built by
// recursively splitting the input per the tree-shape rule (the largest
// power of two strictly less than the remaining span) instead of the
// streaming post-order/flip machinery in encode.go, flip.go and
// treehash.go. It is optimized for being obviously correct, not for
// speed or memory, and exists to cross-check those components in tests —
// the same role the teacher bmt package's doc comment describes for a
// "RefHasher... optimized for code simplicity".
func RefHash(input []byte) Hash {
	return refHashSubtree(input, rootFinalization(uint64(len(input))))
}

func refHashSubtree(input []byte, fin finalization) Hash {
	if len(input) <= ChunkSize {
		return hashChunk(input, fin)
	}
	split := int(largestPowerOfTwoLessThan(CountChunks(uint64(len(input))))) * ChunkSize
	left := refHashSubtree(input[:split], notRoot())
	right := refHashSubtree(input[split:], notRoot())
	var payload ParentNode
	copy(payload[:HashSize], left[:])
	copy(payload[HashSize:], right[:])
	return hashParent(payload, fin)
}

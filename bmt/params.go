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

const (
	// ChunkSize is the maximum number of content bytes per leaf chunk.
	ChunkSize = 4096

	// HashSize is the length in bytes of a chunk or parent node hash.
	HashSize = 32

	// ParentSize is the length in bytes of a parent node payload:
	// left child hash concatenated with right child hash.
	ParentSize = 2 * HashSize

	// HeaderSize is the length in bytes of the little-endian content
	// length that prefixes (pre-order) or trails (post-order) an
	// encoding.
	HeaderSize = 8

	// MaxDepth bounds the subtree stack (component B) and the flipper's
	// parent stack (component D). It comfortably covers every chunk
	// count representable by a uint64 content length: ceil(log2(2^64 /
	// ChunkSize)) is well under 64.
	MaxDepth = 64
)

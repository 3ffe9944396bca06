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

// Package bmt provides a binary merkle tree implementation over a streamed
// chunked input. Unlike a fixed-branching chunk hash, the tree here is a
// strict binary tree whose shape is determined purely by the number of
// chunks: every internal node splits at the largest power of two strictly
// less than its span, so a tree over N chunks always has exactly N-1 parent
// nodes.
//
// Construction happens in two passes. encodePostOrder (behind Encode) and
// the incremental Writer each stream the input once, hashing chunks and folding completed
// subtrees on a bounded stack, emitting chunk and parent bytes in the order
// they become known — post-order. FlipperState then walks that buffer from
// the tail and rewrites it in place into pre-order, the layout a verifier
// needs to walk the tree top-down without buffering the whole input.
package bmt

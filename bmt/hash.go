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
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Hash is a chunk or parent node hash.
type Hash [HashSize]byte

// ParentNode is the literal left||right payload stored at an internal node.
type ParentNode [ParentSize]byte

// finalization selects whether a hash is being computed for the root of the
// whole tree. Root finalization mixes the total content length into the
// hash input; NotRoot does not. This is what makes the root hash of a given
// input differ from the hash any non-root node of the same bytes would
// produce.
type finalization struct {
	root   bool
	length uint64
}

func notRoot() finalization {
	return finalization{}
}

func rootFinalization(length uint64) finalization {
	return finalization{root: true, length: length}
}

// doSum resets a fresh BLAKE2b state, writes each part in order, and
// returns the digest. Mirrors the reset-write-sum shape of the teacher
// bmt.Hasher's doSum helper, adapted to the variable-depth bao tree instead
// of a fixed-depth segment tree.
func doSum(parts ...[]byte) Hash {
	h, err := blake2b.New(HashSize, nil)
	if err != nil {
		// Only returns an error for an invalid key or out-of-range
		// size, neither of which can happen with fixed arguments.
		panic("bmt: blake2b.New: " + err.Error())
	}
	for _, p := range parts {
		h.Write(p)
	}
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

// finalizationSuffix is the domain-separation tail mixed into the hash
// input after the node's own bytes: a single 0x00 for NotRoot, or the
// little-endian content length followed by 0x01 for Root.
func finalizationSuffix(fin finalization) []byte {
	if !fin.root {
		return []byte{0x00}
	}
	suffix := make([]byte, HeaderSize+1)
	binary.LittleEndian.PutUint64(suffix[:HeaderSize], fin.length)
	suffix[HeaderSize] = 0x01
	return suffix
}

// hashChunk hashes a chunk's content bytes under the given finalization.
func hashChunk(data []byte, fin finalization) Hash {
	return doSum(data, finalizationSuffix(fin))
}

// hashParent hashes a parent payload (left||right) under the given
// finalization.
func hashParent(payload ParentNode, fin finalization) Hash {
	return doSum(payload[:], finalizationSuffix(fin))
}

// encodeLen returns the little-endian 8-byte encoding of a content length.
func encodeLen(length uint64) [HeaderSize]byte {
	var out [HeaderSize]byte
	binary.LittleEndian.PutUint64(out[:], length)
	return out
}

// decodeLen is the inverse of encodeLen.
func decodeLen(header [HeaderSize]byte) uint64 {
	return binary.LittleEndian.Uint64(header[:])
}
